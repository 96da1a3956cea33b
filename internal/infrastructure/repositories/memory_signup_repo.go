package repositories

import (
	"context"
	"sync"

	"github.com/volatiletech/null/v8"

	"bootcamp-signup.backend/internal/domain/entities"
	domainerrors "bootcamp-signup.backend/internal/domain/errors"
	"bootcamp-signup.backend/pkg/utils"
)

// MemorySignupRepository keeps signups in-process. Used for DB_DRIVER=memory
// and headless runs; contents are lost on restart.
type MemorySignupRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entities.Signup
	order   []string
}

// NewMemorySignupRepository initializes an empty in-memory repository
func NewMemorySignupRepository() *MemorySignupRepository {
	return &MemorySignupRepository{byEmail: make(map[string]entities.Signup)}
}

// FindByEmail returns a copy of the stored signup
func (r *MemorySignupRepository) FindByEmail(_ context.Context, email string) (*entities.Signup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byEmail[email]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &s, nil
}

// Create stores the signup, enforcing email uniqueness
func (r *MemorySignupRepository) Create(_ context.Context, signup *entities.Signup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[signup.Email]; exists {
		return domainerrors.ErrAlreadyExists
	}

	signup.ID = utils.GenerateUUIDv7()
	signup.CreatedAt = null.TimeFrom(nowUTC())
	if signup.ExperienceLevel == "" {
		signup.ExperienceLevel = entities.ExperienceBeginner
	}
	r.byEmail[signup.Email] = *signup
	r.order = append(r.order, signup.Email)
	return nil
}

// Count returns the number of stored signups
func (r *MemorySignupRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byEmail)), nil
}

// List returns signups in insertion order
func (r *MemorySignupRepository) List() []entities.Signup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]entities.Signup, 0, len(r.order))
	for _, email := range r.order {
		res = append(res, r.byEmail[email])
	}
	return res
}

// Ping always succeeds
func (r *MemorySignupRepository) Ping(context.Context) error {
	return nil
}
