package repositories

import (
	"context"

	"bootcamp-signup.backend/internal/domain/entities"
)

// SignupRepository defines signup data operations
type SignupRepository interface {
	// FindByEmail returns ErrNotFound when no record has the exact email.
	FindByEmail(ctx context.Context, email string) (*entities.Signup, error)
	// Create assigns ID and CreatedAt. A unique index violation surfaces
	// as ErrAlreadyExists.
	Create(ctx context.Context, signup *entities.Signup) error
	Count(ctx context.Context) (int64, error)
}
