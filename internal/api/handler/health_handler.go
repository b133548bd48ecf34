package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/volunteer-ngo/signup-gateway/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready — readiness probe.
// The gateway is ready when the volunteer backend URL is configured and,
// if Redis backs the submit guard, Redis answers a ping.
type HealthDependenciesHandler struct {
	redis     *redis.Client
	serverURL ports.BaseURLFunc
}

// NewHealthDependenciesHandler accepts a nil rdb when Redis is not in use.
func NewHealthDependenciesHandler(rdb *redis.Client, serverURL ports.BaseURLFunc) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		redis:     rdb,
		serverURL: serverURL,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Volunteer backend configured ---
	if h.serverURL == nil || h.serverURL() == "" {
		deps["volunteer_backend"] = dependencyStatus{Status: "unhealthy", Error: "server url not configured"}
		healthy = false
	} else {
		deps["volunteer_backend"] = dependencyStatus{Status: "ok"}
	}

	// --- Redis ping ---
	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
