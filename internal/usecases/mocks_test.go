package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bootcamp-signup.backend/internal/domain/entities"
)

// Mock SignupRepository
type MockSignupRepository struct {
	mock.Mock
}

func (m *MockSignupRepository) FindByEmail(ctx context.Context, email string) (*entities.Signup, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Signup), args.Error(1)
}

func (m *MockSignupRepository) Create(ctx context.Context, signup *entities.Signup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

func (m *MockSignupRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock EmailLocker
type MockEmailLocker struct {
	mock.Mock
}

func (m *MockEmailLocker) Acquire(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmailLocker) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Mock OutcomeRecorder
type MockOutcomeRecorder struct {
	mock.Mock
}

func (m *MockOutcomeRecorder) ObserveOutcome(outcome string) {
	m.Called(outcome)
}
