package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bootcamp-signup.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	healthHandler     *handlers.HealthHandler
	signupHandler     *handlers.SignupHandler
	signupPageHandler *handlers.SignupPageHandler
	metricsHandler    http.Handler
	// nil when Redis is disabled
	idempotency gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Check)
}

func registerMetricsRoute(r *gin.Engine, h http.Handler) {
	r.GET("/metrics", gin.WrapH(h))
}

func registerPageRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/", d.signupPageHandler.ShowForm)
	r.POST("/", d.signupPageHandler.SubmitForm)
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		signups := v1.Group("/signups")
		if d.idempotency != nil {
			signups.Use(d.idempotency)
		}
		signups.POST("", d.signupHandler.CreateSignup)
	}
}
