package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for profile storage.
type Repository interface {
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)
	Get(ctx context.Context, userID string) (*User, error)
}

// InMemoryRepository stores profiles in memory for tests and local dev.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

// NewInMemoryRepository creates an empty in-memory profile store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

// Create validates the request and stores a new profile.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user := &User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      req.Role,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.users[user.ID] = user
	r.mu.Unlock()

	return user, nil
}

// Get retrieves a profile by ID.
func (r *InMemoryRepository) Get(ctx context.Context, userID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}
