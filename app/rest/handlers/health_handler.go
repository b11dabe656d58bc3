package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// DependencyChecker reports whether a backing dependency is reachable.
type DependencyChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	checkers map[string]DependencyChecker
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checkers map[string]DependencyChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger.With("component", "health_handler"),
	}
}

// HealthResponse is the liveness/health body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Uptime    string    `json:"uptime"`
}

// ReadinessResponse reports per-dependency readiness.
type ReadinessResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthCheck performs a basic health check
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "slidealbum-service",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck verifies the backing dependencies are reachable.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	checks := make(map[string]string, len(h.checkers))
	allHealthy := true

	for name, checker := range h.checkers {
		if err := checker.HealthCheck(c.Request().Context()); err != nil {
			h.logger.Warn("readiness check failed", "dependency", name, "error", err)
			checks[name] = "unreachable"
			allHealthy = false
			continue
		}
		checks[name] = "healthy"
	}

	status := "ready"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, ReadinessResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}

// LivenessCheck reports that the process is alive.
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
		Service:   "slidealbum-service",
		Uptime:    time.Since(startTime).String(),
	})
}

var startTime = time.Now()
