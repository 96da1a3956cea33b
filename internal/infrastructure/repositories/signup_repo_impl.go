package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bootcamp-signup.backend/internal/domain/entities"
	domainerrors "bootcamp-signup.backend/internal/domain/errors"
	"bootcamp-signup.backend/internal/infrastructure/models"
	"bootcamp-signup.backend/pkg/utils"
)

// SignupRepository implements signup data operations on top of GORM
type SignupRepository struct {
	db *gorm.DB
}

// NewSignupRepository creates a new signup repository
func NewSignupRepository(db *gorm.DB) *SignupRepository {
	return &SignupRepository{db: db}
}

var nowUTC = func() time.Time { return time.Now().UTC() }

// FindByEmail gets a signup by exact email match
func (r *SignupRepository) FindByEmail(ctx context.Context, email string) (*entities.Signup, error) {
	var m models.BootcampSignup
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toSignupEntity(&m), nil
}

// Create inserts a new signup and fills in the store-assigned fields
func (r *SignupRepository) Create(ctx context.Context, signup *entities.Signup) error {
	m := &models.BootcampSignup{
		ID:              utils.GenerateUUIDv7(),
		FullName:        signup.FullName,
		Email:           signup.Email,
		Phone:           signup.Phone,
		ExperienceLevel: string(signup.ExperienceLevel),
		CreatedAt:       nowUTC(),
	}
	if m.ExperienceLevel == "" {
		m.ExperienceLevel = string(entities.ExperienceBeginner)
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	signup.ID = m.ID
	signup.ExperienceLevel = entities.ExperienceLevel(m.ExperienceLevel)
	signup.CreatedAt = null.TimeFrom(m.CreatedAt)
	return nil
}

// Count returns the number of stored signups
func (r *SignupRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BootcampSignup{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ping checks the underlying connection
func (r *SignupRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func toSignupEntity(m *models.BootcampSignup) *entities.Signup {
	return &entities.Signup{
		ID:              m.ID,
		FullName:        m.FullName,
		Email:           m.Email,
		Phone:           m.Phone,
		ExperienceLevel: entities.ExperienceLevel(m.ExperienceLevel),
		CreatedAt:       null.TimeFrom(m.CreatedAt),
	}
}

// isUniqueViolation covers connections opened without TranslateError.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
