package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/baton-ci/baton/pkg/ingest"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

// runnerWebhookHandler handles POST /webhooks/runner.
//
// Status contract, because runners retry on 5xx and must not retry on 4xx:
//   - 200: transition applied, or an idempotent duplicate
//   - 400: malformed or irreconcilable payload
//   - 401: missing or mismatched bearer token
//   - 404: unknown execution
//   - 409: stale (execution already terminal) or invalid transition
//   - 503: transient store failure; safe to retry
func (s *Server) runnerWebhookHandler(c *echo.Context) error {
	token := extractBearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "bearer token required")
	}

	var hook models.RunnerWebhook
	if err := c.Bind(&hook); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ack, err := s.ingest.Process(c.Request().Context(), hook, token)
	if err != nil {
		s.metrics.WebhookProcessed(hook.Type, "error")
		return mapWebhookError(err)
	}

	s.metrics.WebhookProcessed(hook.Type, ack.Outcome.String())
	if ack.Execution != nil && store.IsTerminal(ack.Execution.Status) && ack.Outcome == store.OutcomeApplied {
		s.metrics.ExecutionFinalized(string(ack.Execution.Status))
		// A finished job frees a slot.
		s.scheduler.Wake()
	}

	httpStatus := http.StatusOK
	switch ack.Outcome {
	case store.OutcomeStale, store.OutcomeInvalid:
		httpStatus = http.StatusConflict
	}

	resp := &WebhookAck{Outcome: ack.Outcome.String()}
	if ack.Execution != nil {
		resp.ExecutionID = ack.Execution.ID
		resp.Status = string(ack.Execution.Status)
	}
	return c.JSON(httpStatus, resp)
}

// mapWebhookError is the webhook-specific variant of mapServiceError:
// anything not clearly the runner's fault is a 503 so the runner retries.
func mapWebhookError(err error) *echo.HTTPError {
	var validErr *store.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, ingest.ErrBadToken) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid webhook token")
	}
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown execution")
	}
	if errors.Is(err, store.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, "conflicting shard result")
	}
	return echo.NewHTTPError(http.StatusServiceUnavailable, "transient failure, retry")
}
