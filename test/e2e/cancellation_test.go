package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/pkg/models"
)

// TestCancelMidFlight cancels a running execution: the runner gets a cancel
// POST, the slot frees up, and the runner's late final bounces with 409.
func TestCancelMidFlight(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "cancel-pool", runner, map[string]any{"max_concurrent_jobs": 1})

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	msg := runner.waitForStart(t)

	code, _ := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeRunning,
	})
	require.Equal(t, http.StatusOK, code)

	code, resp := doJSON(t, http.MethodPost, app.URL("/api/v1/executions/"+execID+"/cancel"), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "cancelled", resp["status"])

	// Best-effort stop reaches the runner.
	assert.Equal(t, execID, runner.waitForCancel(t))

	final := getExecution(t, app, execID)
	assert.Equal(t, "cancelled", final["status"])
	assert.Equal(t, "client_cancelled", final["status_reason"])

	// The runner missed the memo and reports anyway: too late.
	code, ack := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeFinal,
		Status:      models.ResultPassed,
		Results:     &models.ResultCounts{Total: 10, Passed: 10},
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "stale", ack["outcome"])
	assert.Equal(t, "cancelled", ack["status"], "terminal state is untouched by the late final")

	// Cancelling again is a conflict, not a second transition.
	code, _ = doJSON(t, http.MethodPost, app.URL("/api/v1/executions/"+execID+"/cancel"), nil)
	assert.Equal(t, http.StatusConflict, code)

	// The freed slot takes new work.
	nextID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	next := runner.waitForStart(t)
	assert.Equal(t, nextID, next.ExecutionID)
}

// TestCancelQueued cancels before assignment: no runner involved at all.
func TestCancelQueued(t *testing.T) {
	app := newTestApp(t)

	// No runners registered, so the execution stays queued.
	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})

	code, resp := doJSON(t, http.MethodPost, app.URL("/api/v1/executions/"+execID+"/cancel"), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "cancelled", resp["status"])

	code, _ = doJSON(t, http.MethodPost, app.URL("/api/v1/executions/no-such-id/cancel"), nil)
	assert.Equal(t, http.StatusNotFound, code)
}
