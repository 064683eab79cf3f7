package directory

import (
	"context"
	"sync"
)

// Repository defines the interface for the doctor and specialty catalog.
type Repository interface {
	GetDoctor(ctx context.Context, doctorID string) (*Doctor, error)
	ListSpecialties(ctx context.Context) ([]*Specialty, error)
	ListDoctorsBySpecialty(ctx context.Context, specialtyID string) ([]*Doctor, error)
	PutDoctor(ctx context.Context, doctor *Doctor) error
	PutSpecialty(ctx context.Context, specialty *Specialty) error
}

// InMemoryRepository is an in-memory catalog used by tests and local dev.
type InMemoryRepository struct {
	mu          sync.RWMutex
	doctors     map[string]*Doctor
	specialties map[string]*Specialty
	order       []string
}

// NewInMemoryRepository creates an empty in-memory catalog.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		doctors:     make(map[string]*Doctor),
		specialties: make(map[string]*Specialty),
	}
}

// GetDoctor retrieves a doctor by ID.
func (r *InMemoryRepository) GetDoctor(ctx context.Context, doctorID string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.doctors[doctorID]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	cp := *doctor
	return &cp, nil
}

// ListSpecialties returns specialties in insertion order.
func (r *InMemoryRepository) ListSpecialties(ctx context.Context) ([]*Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Specialty, 0, len(r.order))
	for _, id := range r.order {
		if s, ok := r.specialties[id]; ok {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ListDoctorsBySpecialty returns every doctor attached to the specialty.
func (r *InMemoryRepository) ListDoctorsBySpecialty(ctx context.Context, specialtyID string) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Doctor
	for _, d := range r.doctors {
		if d.SpecialtyID == specialtyID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

// PutDoctor stores a doctor after validation.
func (r *InMemoryRepository) PutDoctor(ctx context.Context, doctor *Doctor) error {
	if err := doctor.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	cp := *doctor
	r.doctors[doctor.ID] = &cp
	r.mu.Unlock()
	return nil
}

// PutSpecialty stores a specialty.
func (r *InMemoryRepository) PutSpecialty(ctx context.Context, specialty *Specialty) error {
	r.mu.Lock()
	if _, exists := r.specialties[specialty.ID]; !exists {
		r.order = append(r.order, specialty.ID)
	}
	cp := *specialty
	r.specialties[specialty.ID] = &cp
	r.mu.Unlock()
	return nil
}
