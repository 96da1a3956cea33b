package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// Error codes returned to API clients
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, ErrInvalidInput)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}

// DuplicateEmail is returned when a signup with the same email exists
func DuplicateEmail(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeDuplicateEmail, message, ErrDuplicateEmail)
}

// PersistenceFailure hides the cause behind a generic message. The cause
// stays reachable through errors.Is / errors.As for logging.
func PersistenceFailure(op string, cause error) *AppError {
	return NewAppError(
		http.StatusInternalServerError,
		CodePersistenceFailure,
		"Something went wrong. Please try again.",
		fmt.Errorf("%s: %w: %w", op, ErrPersistenceFailure, cause),
	)
}

// InvalidInput wraps a validation error so callers can match ErrInvalidInput
func InvalidInput(err error) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, err.Error(), fmt.Errorf("%w: %w", ErrInvalidInput, err))
}
