package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

// registerRunnerHandler handles POST /runners.
func (s *Server) registerRunnerHandler(c *echo.Context) error {
	var req RegisterRunnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rnr, err := s.store.CreateRunner(c.Request().Context(), store.CreateRunnerInput{
		Name:              req.Name,
		Type:              req.Type,
		EndpointURL:       req.EndpointURL,
		HealthCheckURL:    req.HealthCheckURL,
		Capabilities:      req.Capabilities,
		MaxConcurrentJobs: req.MaxConcurrentJobs,
		Priority:          req.Priority,
		Metadata:          req.Metadata,
	})
	if err != nil {
		return mapServiceError(err)
	}

	s.fleet.Upsert(rnr)
	s.publisher.RunnerRegistered(c.Request().Context(), rnr)
	// New capacity may unblock queued work.
	s.scheduler.Wake()

	return c.JSON(http.StatusCreated, &RegisterRunnerResponse{
		RunnerID:     rnr.ID,
		Name:         rnr.Name,
		WebhookToken: rnr.WebhookToken,
	})
}

// listRunnersHandler handles GET /runners.
func (s *Server) listRunnersHandler(c *echo.Context) error {
	runners, err := s.store.ListRunners(c.Request().Context(), models.RunnerFilter{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
		Health: c.QueryParam("health"),
	})
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]RunnerWithInflight, 0, len(runners))
	for _, rnr := range runners {
		items = append(items, RunnerWithInflight{
			Runner:   rnr,
			Inflight: s.fleet.Inflight(rnr.ID),
		})
	}
	return c.JSON(http.StatusOK, &RunnerListResponse{Runners: items})
}

// updateRunnerHandler handles PATCH /runners/:id.
func (s *Server) updateRunnerHandler(c *echo.Context) error {
	id, err := runnerID(c)
	if err != nil {
		return err
	}

	var req UpdateRunnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rnr, err := s.store.UpdateRunner(c.Request().Context(), id, store.UpdateRunnerInput{
		Name:              req.Name,
		EndpointURL:       req.EndpointURL,
		HealthCheckURL:    req.HealthCheckURL,
		Capabilities:      req.Capabilities,
		MaxConcurrentJobs: req.MaxConcurrentJobs,
		Priority:          req.Priority,
		Metadata:          req.Metadata,
	})
	if err != nil {
		return mapServiceError(err)
	}

	s.fleet.Upsert(rnr)
	return c.JSON(http.StatusOK, rnr)
}

// pauseRunnerHandler handles POST /runners/:id/pause.
func (s *Server) pauseRunnerHandler(c *echo.Context) error {
	return s.setRunnerStatus(c, runner.StatusPaused)
}

// resumeRunnerHandler handles POST /runners/:id/resume.
func (s *Server) resumeRunnerHandler(c *echo.Context) error {
	return s.setRunnerStatus(c, runner.StatusActive)
}

// decommissionRunnerHandler handles POST /runners/:id/decommission.
// Terminal: a decommissioned runner never comes back under the same id.
func (s *Server) decommissionRunnerHandler(c *echo.Context) error {
	return s.setRunnerStatus(c, runner.StatusDecommissioned)
}

func (s *Server) setRunnerStatus(c *echo.Context, status runner.Status) error {
	id, err := runnerID(c)
	if err != nil {
		return err
	}

	rnr, err := s.store.SetRunnerStatus(c.Request().Context(), id, status)
	if err != nil {
		return mapServiceError(err)
	}

	s.fleet.Upsert(rnr)
	if status == runner.StatusActive {
		// Resumed capacity may unblock queued work.
		s.scheduler.Wake()
	}
	return c.JSON(http.StatusOK, rnr)
}

func runnerID(c *echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid runner id")
	}
	return id, nil
}
