package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeBadRequest, "bad", ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrInvalidInput.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternal, internal.Code)

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.ErrorIs(t, badReq, ErrInvalidInput)

	dup := DuplicateEmail("taken")
	assert.Equal(t, http.StatusConflict, dup.Status)
	assert.Equal(t, CodeDuplicateEmail, dup.Code)
	assert.ErrorIs(t, dup, ErrDuplicateEmail)
}

func TestAppError_MessageWithoutCause(t *testing.T) {
	err := NewAppError(http.StatusTeapot, "TEAPOT", "short and stout", nil)
	assert.Equal(t, "short and stout", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestPersistenceFailure_KeepsCauseHidesMessage(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := PersistenceFailure("find signup by email", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, CodePersistenceFailure, err.Code)
	assert.Equal(t, "Something went wrong. Please try again.", err.Message)
	assert.ErrorIs(t, err, ErrPersistenceFailure)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "find signup by email")
}

func TestInvalidInput_WrapsSentinel(t *testing.T) {
	err := InvalidInput(stderrors.New("email is required"))
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "email is required", err.Message)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var appErr *AppError
	assert.True(t, stderrors.As(error(err), &appErr))
}
