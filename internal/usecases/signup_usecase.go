package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"bootcamp-signup.backend/internal/domain/entities"
	domainerrors "bootcamp-signup.backend/internal/domain/errors"
	"bootcamp-signup.backend/internal/domain/repositories"
	"bootcamp-signup.backend/pkg/logger"
)

// EmailLocker guards the check-then-insert pair for one email across
// server instances
type EmailLocker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// OutcomeRecorder receives one call per signup attempt
type OutcomeRecorder interface {
	ObserveOutcome(outcome string)
}

// SignupUsecase runs the duplicate-check-then-insert workflow
type SignupUsecase struct {
	signupRepo repositories.SignupRepository
	locker     EmailLocker
	recorder   OutcomeRecorder
}

// NewSignupUsecase creates a new signup usecase. locker and recorder are optional.
func NewSignupUsecase(
	signupRepo repositories.SignupRepository,
	locker EmailLocker,
	recorder OutcomeRecorder,
) *SignupUsecase {
	return &SignupUsecase{
		signupRepo: signupRepo,
		locker:     locker,
		recorder:   recorder,
	}
}

// TrySignup checks whether the email is taken and inserts the draft if not.
// The check and the insert are not atomic; the store's unique index and the
// optional locker narrow the window. Failures never escape as errors: they
// come back as a Failed outcome whose Reason carries the cause.
func (u *SignupUsecase) TrySignup(ctx context.Context, draft entities.SignupInput) entities.SignupOutcome {
	outcome := u.trySignup(ctx, draft)
	if u.recorder != nil {
		u.recorder.ObserveOutcome(string(outcome.Kind))
	}
	return outcome
}

func (u *SignupUsecase) trySignup(ctx context.Context, draft entities.SignupInput) entities.SignupOutcome {
	if u.locker != nil {
		acquired, err := u.locker.Acquire(ctx, draft.Email)
		switch {
		case err != nil:
			logger.Warn(ctx, "Signup lock unavailable, continuing unguarded", zap.Error(err))
		case !acquired:
			return entities.Failed(domainerrors.ErrSubmissionInFlight)
		default:
			defer u.release(ctx, draft.Email)
		}
	}

	existing, err := u.signupRepo.FindByEmail(ctx, draft.Email)
	if err == nil && existing != nil {
		return entities.Duplicate()
	}
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		logger.Error(ctx, "Signup existence check failed", zap.Error(err))
		return entities.Failed(domainerrors.PersistenceFailure("find signup by email", err))
	}

	signup := draft.ToSignup()
	if err := u.signupRepo.Create(ctx, signup); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			logger.Info(ctx, "Signup rejected by unique index after passing existence check")
			return entities.Duplicate()
		}
		logger.Error(ctx, "Signup insert failed", zap.Error(err))
		return entities.Failed(domainerrors.PersistenceFailure("create signup", err))
	}

	logger.Info(ctx, "Signup created",
		zap.String("signup_id", signup.ID.String()),
		zap.String("experience_level", string(signup.ExperienceLevel)),
	)
	return entities.Created(signup)
}

func (u *SignupUsecase) release(ctx context.Context, email string) {
	if err := u.locker.Release(context.WithoutCancel(ctx), email); err != nil {
		logger.Warn(ctx, "Failed to release signup lock", zap.Error(err))
	}
}
