package bookings

import (
	"context"
	"sort"
	"sync"
)

// Store defines the interface for booking persistence.
type Store interface {
	Put(ctx context.Context, booking *Booking) error
	Get(ctx context.Context, bookingID string) (*Booking, error)
	Update(ctx context.Context, booking *Booking) error
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
}

// InMemoryStore keeps bookings in memory for tests and local dev.
type InMemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
}

// NewInMemoryStore creates an empty in-memory booking store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{bookings: make(map[string]*Booking)}
}

// Put stores a new booking.
func (s *InMemoryStore) Put(ctx context.Context, booking *Booking) error {
	s.mu.Lock()
	cp := *booking
	s.bookings[booking.ID] = &cp
	s.mu.Unlock()
	return nil
}

// Get retrieves a booking by ID.
func (s *InMemoryStore) Get(ctx context.Context, bookingID string) (*Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, ErrBookingNotFound
	}
	cp := *booking
	return &cp, nil
}

// Update overwrites an existing booking.
func (s *InMemoryStore) Update(ctx context.Context, booking *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[booking.ID]; !ok {
		return ErrBookingNotFound
	}
	cp := *booking
	s.bookings[booking.ID] = &cp
	return nil
}

// ListByUser returns the user's bookings, newest first.
func (s *InMemoryStore) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// ListAll returns every booking, newest first.
func (s *InMemoryStore) ListAll(ctx context.Context) ([]*Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		cp := *b
		out = append(out, &cp)
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(list []*Booking) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
