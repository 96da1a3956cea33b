package entities

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ExperienceLevel is the self-reported coding experience of an applicant
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Valid reports whether the level is one of the known values
func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// Signup represents a persisted bootcamp signup.
// ID and CreatedAt are assigned by the store on insert.
type Signup struct {
	ID              uuid.UUID       `json:"id"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	CreatedAt       null.Time       `json:"created_at"`
}

// SignupInput is the draft a user fills in before submitting
type SignupInput struct {
	FullName        string          `json:"full_name" form:"full_name" binding:"required"`
	Email           string          `json:"email" form:"email" binding:"required,email"`
	Phone           string          `json:"phone" form:"phone" binding:"required"`
	ExperienceLevel ExperienceLevel `json:"experience_level" form:"experience_level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

// DefaultSignupInput returns an empty draft
func DefaultSignupInput() SignupInput {
	return SignupInput{ExperienceLevel: ExperienceBeginner}
}

// WithDefaults fills in the experience level when it was left blank
func (in SignupInput) WithDefaults() SignupInput {
	if in.ExperienceLevel == "" {
		in.ExperienceLevel = ExperienceBeginner
	}
	return in
}

// Validate applies the same constraints the form inputs enforce
func (in SignupInput) Validate() error {
	err := signupValidator.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// ToSignup builds an unsaved record from the draft
func (in SignupInput) ToSignup() *Signup {
	in = in.WithDefaults()
	return &Signup{
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		ExperienceLevel: in.ExperienceLevel,
	}
}

// OutcomeKind enumerates the results of a signup attempt
type OutcomeKind string

const (
	OutcomeCreated   OutcomeKind = "created"
	OutcomeDuplicate OutcomeKind = "duplicate"
	OutcomeFailed    OutcomeKind = "failed"
)

// SignupOutcome is the result of one submission. Signup is set when
// created; Reason is set when failed.
type SignupOutcome struct {
	Kind   OutcomeKind
	Signup *Signup
	Reason error
}

func Created(s *Signup) SignupOutcome {
	return SignupOutcome{Kind: OutcomeCreated, Signup: s}
}

func Duplicate() SignupOutcome {
	return SignupOutcome{Kind: OutcomeDuplicate}
}

func Failed(reason error) SignupOutcome {
	return SignupOutcome{Kind: OutcomeFailed, Reason: reason}
}

var signupValidator = newSignupValidator()

func newSignupValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
