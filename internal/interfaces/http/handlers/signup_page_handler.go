package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bootcamp-signup.backend/internal/domain/entities"
	domainerrors "bootcamp-signup.backend/internal/domain/errors"
	"bootcamp-signup.backend/internal/interfaces/http/templates"
	"bootcamp-signup.backend/internal/usecases"
	"bootcamp-signup.backend/pkg/logger"
)

var experienceLevels = []entities.ExperienceLevel{
	entities.ExperienceBeginner,
	entities.ExperienceIntermediate,
	entities.ExperienceAdvanced,
}

var formFields = []string{
	usecases.FieldFullName,
	usecases.FieldEmail,
	usecases.FieldPhone,
	usecases.FieldExperienceLevel,
}

type signupPageData struct {
	Draft        entities.SignupInput
	Levels       []entities.ExperienceLevel
	Notification *usecases.Notification
}

// SignupPageHandler serves the server-rendered signup form. Each request
// gets its own SignupForm, so the in-flight guard is per page submission.
type SignupPageHandler struct {
	signupUsecase usecases.SignupWorkflow
}

// NewSignupPageHandler creates a new signup page handler
func NewSignupPageHandler(signupUsecase usecases.SignupWorkflow) *SignupPageHandler {
	return &SignupPageHandler{signupUsecase: signupUsecase}
}

// ShowForm renders an empty form
// GET /
func (h *SignupPageHandler) ShowForm(c *gin.Context) {
	form := usecases.NewSignupForm(h.signupUsecase)
	h.render(c, http.StatusOK, form.Draft(), nil)
}

// SubmitForm applies the posted fields and submits them
// POST /
func (h *SignupPageHandler) SubmitForm(c *gin.Context) {
	form := usecases.NewSignupForm(h.signupUsecase)
	for _, field := range formFields {
		value, ok := c.GetPostForm(field)
		if !ok {
			continue
		}
		if err := form.UpdateField(field, value); err != nil {
			h.render(c, http.StatusUnprocessableEntity, form.Draft(), &usecases.Notification{
				Kind:    usecases.NotificationError,
				Message: "Please choose a valid experience level.",
			})
			return
		}
	}

	outcome, err := form.Submit(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		message := usecases.MessageSignupFailed
		var appErr *domainerrors.AppError
		if errors.Is(err, domainerrors.ErrInvalidInput) && errors.As(err, &appErr) {
			status = http.StatusUnprocessableEntity
			message = appErr.Message
		}
		h.render(c, status, form.Draft(), &usecases.Notification{Kind: usecases.NotificationError, Message: message})
		return
	}

	notification := usecases.NotificationFor(outcome)
	status := http.StatusOK
	switch outcome.Kind {
	case entities.OutcomeDuplicate:
		status = http.StatusConflict
	case entities.OutcomeFailed:
		status = http.StatusInternalServerError
		logger.Warn(c.Request.Context(), "Signup form submission failed", zap.Error(outcome.Reason))
	}
	h.render(c, status, form.Draft(), &notification)
}

func (h *SignupPageHandler) render(c *gin.Context, status int, draft entities.SignupInput, notification *usecases.Notification) {
	c.HTML(status, templates.SignupPage, signupPageData{
		Draft:        draft,
		Levels:       experienceLevels,
		Notification: notification,
	})
}
