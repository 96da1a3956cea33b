package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-signup.backend/internal/infrastructure/repositories"
	"bootcamp-signup.backend/internal/interfaces/http/handlers"
	"bootcamp-signup.backend/internal/usecases"
	"bootcamp-signup.backend/pkg/metrics"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repositories.NewMemorySignupRepository()
	reg := metrics.New()
	uc := usecases.NewSignupUsecase(repo, nil, reg)

	return newRouter(routeDeps{
		healthHandler:     handlers.NewHealthHandler(repo),
		signupHandler:     handlers.NewSignupHandler(uc),
		signupPageHandler: handlers.NewSignupPageHandler(uc),
		metricsHandler:    reg.Handler(),
	})
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	r := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"POST /",
		"GET /health",
		"GET /metrics",
		"POST /api/v1/signups",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestApplyCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_HealthRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "bootcamp-signup-backend", body["service"])
}

func TestRouter_SignupFlowUpdatesMetrics(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{
		"full_name":        {"Jane Doe"},
		"email":            {"jane@example.com"},
		"phone":            {"5550001111"},
		"experience_level": {"beginner"},
	}
	for _, want := range []int{http.StatusOK, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, want, rec.Code)
		require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `signup_outcomes_total{outcome="created"} 1`)
	assert.Contains(t, body, `signup_outcomes_total{outcome="duplicate"} 1`)
}
