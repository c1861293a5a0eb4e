package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/baton-ci/baton/pkg/database"
	"github.com/baton-ci/baton/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only baton's own components are checked; external runners are deliberately
// excluded so a sick fleet cannot get the orchestrator restarted.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	var dbHealth *database.HealthStatus
	if s.dbClient != nil {
		var err error
		dbHealth, err = database.Health(reqCtx, s.dbClient.DB())
		if err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.bus != nil {
		// The scheduler holds a bus subscription for its life; zero
		// subscribers means the dispatch loop is gone.
		if s.bus.SubscriberCount() == 0 {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["event_bus"] = HealthCheck{Status: healthStatusDegraded, Message: "no subscribers"}
		} else {
			checks["event_bus"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:   status,
		Version:  version.GitCommit,
		Database: dbHealth,
		Checks:   checks,
	})
}
