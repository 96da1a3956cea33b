package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bootcamp-signup.backend/pkg/logger"
)

const (
	serviceName    = "bootcamp-signup-backend"
	serviceVersion = "0.1.0"
)

type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service and store liveness
type HealthHandler struct {
	store storePinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store storePinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check pings the signup store
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	body := gin.H{
		"status":  "ok",
		"service": serviceName,
		"version": serviceVersion,
	}
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			logger.Warn(c.Request.Context(), "Health check: store unavailable", zap.Error(err))
			body["status"] = "degraded"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
	}
	c.JSON(http.StatusOK, body)
}
