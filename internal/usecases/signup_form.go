package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bootcamp-signup.backend/internal/domain/entities"
	domainerrors "bootcamp-signup.backend/internal/domain/errors"
)

// Form field names
const (
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldExperienceLevel = "experience_level"
)

// Notification messages shown after a submission settles
const (
	MessageSignupCreated  = "Successfully signed up for the bootcamp!"
	MessageDuplicateEmail = "This email has already been registered"
	MessageSignupFailed   = "Something went wrong. Please try again."
)

var ErrUnknownField = errors.New("unknown form field")

// NotificationKind is the style of a transient notification
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient message for the user
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// NotificationFor maps a settled outcome to what the user sees. Failure
// causes are never included.
func NotificationFor(outcome entities.SignupOutcome) Notification {
	switch outcome.Kind {
	case entities.OutcomeCreated:
		return Notification{Kind: NotificationSuccess, Message: MessageSignupCreated}
	case entities.OutcomeDuplicate:
		return Notification{Kind: NotificationError, Message: MessageDuplicateEmail}
	default:
		return Notification{Kind: NotificationError, Message: MessageSignupFailed}
	}
}

// SignupWorkflow is the part of SignupUsecase the form depends on
type SignupWorkflow interface {
	TrySignup(ctx context.Context, draft entities.SignupInput) entities.SignupOutcome
}

// SignupForm owns one draft and its in-flight flag. Any UI layer, or a
// test, drives it through these methods.
type SignupForm struct {
	workflow SignupWorkflow

	mu         sync.Mutex
	draft      entities.SignupInput
	submitting bool
}

// NewSignupForm creates a form with a default draft
func NewSignupForm(workflow SignupWorkflow) *SignupForm {
	return &SignupForm{
		workflow: workflow,
		draft:    entities.DefaultSignupInput(),
	}
}

// UpdateField replaces one field of the draft. Only the experience level
// is constrained here, matching its single-choice control.
func (f *SignupForm) UpdateField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldFullName:
		f.draft.FullName = value
	case FieldEmail:
		f.draft.Email = value
	case FieldPhone:
		f.draft.Phone = value
	case FieldExperienceLevel:
		level := entities.ExperienceLevel(value)
		if !level.Valid() {
			return fmt.Errorf("%w: experience level %q", domainerrors.ErrInvalidInput, value)
		}
		f.draft.ExperienceLevel = level
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// Reset replaces the draft with a fresh default one
func (f *SignupForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = entities.DefaultSignupInput()
}

// Draft returns a copy of the current draft
func (f *SignupForm) Draft() entities.SignupInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// IsSubmitting reports whether a submission is in flight
func (f *SignupForm) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the draft and hands a copy to the workflow. While the
// workflow runs, further submissions fail with ErrSubmissionInFlight. The
// draft is reset only when a record was created.
func (f *SignupForm) Submit(ctx context.Context) (entities.SignupOutcome, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return entities.SignupOutcome{}, domainerrors.ErrSubmissionInFlight
	}
	draft := f.draft
	if err := draft.Validate(); err != nil {
		f.mu.Unlock()
		return entities.SignupOutcome{}, domainerrors.InvalidInput(err)
	}
	f.submitting = true
	f.mu.Unlock()

	outcome := f.workflow.TrySignup(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if outcome.Kind == entities.OutcomeCreated {
		f.draft = entities.DefaultSignupInput()
	}
	return outcome, nil
}
