package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

// cancelReasonClient is the status_reason recorded for client cancellations.
const cancelReasonClient = "client_cancelled"

// createExecutionHandler handles POST /executions.
// Accepts the request, persists it queued, and returns immediately; the
// scheduler picks it up asynchronously.
func (s *Server) createExecutionHandler(c *echo.Context) error {
	var req CreateExecutionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := store.CreateExecutionInput{
		TestSuite:           req.TestSuite,
		Environment:         req.Environment,
		Branch:              req.Branch,
		CommitSHA:           req.CommitSHA,
		RequestedBy:         extractAuthor(c),
		Priority:            req.Priority,
		EstimatedDurationMs: req.EstimatedDurationMs,
		RequestedRunnerType: req.RequestedRunnerType,
		RequestedRunnerID:   req.RequestedRunnerID,
		TotalShards:         req.TotalShards,
		IdempotencyKey:      c.Request().Header.Get("Idempotency-Key"),
		WebhookURL:          req.WebhookURL,
		Metadata:            req.Metadata,
	}

	exec, err := s.store.CreateExecution(c.Request().Context(), in)
	if err != nil {
		return mapServiceError(err)
	}

	s.metrics.ExecutionEnqueued()
	s.publisher.ExecutionQueued(c.Request().Context(), exec)
	s.scheduler.Wake()

	return c.JSON(http.StatusCreated, &CreateExecutionResponse{
		ExecutionID: exec.ID,
		Status:      string(exec.Status),
	})
}

// getExecutionHandler handles GET /executions/:id.
func (s *Server) getExecutionHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "execution id is required")
	}

	exec, err := s.store.GetExecution(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, exec)
}

// listExecutionsHandler handles GET /executions.
func (s *Server) listExecutionsHandler(c *echo.Context) error {
	filter := models.ExecutionFilter{
		Status:      c.QueryParam("status"),
		TestSuite:   c.QueryParam("test_suite"),
		Environment: c.QueryParam("environment"),
		Page:        1,
		PageSize:    20,
	}

	if v := c.QueryParam("runner_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid runner_id")
		}
		filter.RunnerID = id
	}
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			filter.PageSize = ps
		}
	}

	items, total, err := s.store.ListExecutions(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ExecutionListResponse{
		Executions: items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	})
}

// cancelExecutionHandler handles POST /executions/:id/cancel.
// The cancel commits first; driver-side cancellation and bookkeeping are
// best-effort afterwards. A 200 means the execution is cancelled regardless
// of whether the runner ever acknowledges.
func (s *Server) cancelExecutionHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "execution id is required")
	}

	exec, prior, err := s.store.CancelExecution(c.Request().Context(), id, cancelReasonClient)
	if err != nil {
		return mapServiceError(err)
	}

	// Dispatched executions hold a runner slot and possibly a live job.
	if prior == execution.StatusAssigned || prior == execution.StatusRunning {
		if exec.AssignedRunnerID != nil {
			s.fleet.DecInflight(*exec.AssignedRunnerID)
			if rnr, err := s.store.GetRunner(c.Request().Context(), *exec.AssignedRunnerID); err == nil {
				s.gateway.Cancel(exec, rnr)
			}
		}
	}

	s.metrics.ExecutionFinalized(string(exec.Status))
	s.publisher.ExecutionCompleted(c.Request().Context(), exec, cancelReasonClient)
	if s.notifier != nil {
		s.notifier.NotifyCompletion(exec)
	}
	// Freed capacity may unblock queued work.
	s.scheduler.Wake()

	return c.JSON(http.StatusOK, &CancelExecutionResponse{
		ExecutionID: exec.ID,
		Status:      string(exec.Status),
	})
}
