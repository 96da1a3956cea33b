package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"bootcamp-signup.backend/internal/domain/entities"
	domainerrors "bootcamp-signup.backend/internal/domain/errors"
	"bootcamp-signup.backend/internal/interfaces/http/response"
	"bootcamp-signup.backend/internal/usecases"
)

// SignupHandler handles the JSON signup endpoint
type SignupHandler struct {
	signupUsecase usecases.SignupWorkflow
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(signupUsecase usecases.SignupWorkflow) *SignupHandler {
	return &SignupHandler{signupUsecase: signupUsecase}
}

// CreateSignup registers a new applicant
// POST /api/v1/signups
func (h *SignupHandler) CreateSignup(c *gin.Context) {
	var input entities.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			if friendly := input.Validate(); friendly != nil {
				err = friendly
			}
		}
		response.Error(c, domainerrors.InvalidInput(err))
		return
	}

	outcome := h.signupUsecase.TrySignup(c.Request.Context(), input.WithDefaults())
	switch outcome.Kind {
	case entities.OutcomeCreated:
		response.Success(c, http.StatusCreated, gin.H{
			"message": usecases.MessageSignupCreated,
			"signup":  outcome.Signup,
		})
	case entities.OutcomeDuplicate:
		response.Error(c, domainerrors.DuplicateEmail(usecases.MessageDuplicateEmail))
	default:
		response.Error(c, failureError(outcome.Reason))
	}
}

// failureError keeps the generic message for every failure cause
func failureError(reason error) error {
	var appErr *domainerrors.AppError
	if errors.As(reason, &appErr) {
		return appErr
	}
	return domainerrors.PersistenceFailure("signup", reason)
}
