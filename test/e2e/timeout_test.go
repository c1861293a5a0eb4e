package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/pkg/models"
)

// TestStartTimeout covers a runner that accepts the dispatch and then goes
// silent: the sweep errors the execution and frees the slot.
func TestStartTimeout(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "silent-pool", runner, map[string]any{"max_concurrent_jobs": 1})

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	runner.waitForStart(t)
	waitForStatus(t, app, execID, "assigned")

	app.ExpireExecutions(context.Background())

	final := getExecution(t, app, execID)
	assert.Equal(t, "error", final["status"])
	assert.Equal(t, "start_timeout", final["status_reason"])

	// The slot was released, so fresh work still dispatches.
	nextID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	next := runner.waitForStart(t)
	assert.Equal(t, nextID, next.ExecutionID)
}

// TestExecutionTimeout covers a run that started but never finished.
func TestExecutionTimeout(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "stuck-pool", runner, nil)

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "soak", "environment": "staging",
	})
	msg := runner.waitForStart(t)

	code, _ := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeRunning,
	})
	require.Equal(t, http.StatusOK, code)

	app.ExpireExecutions(context.Background())

	final := getExecution(t, app, execID)
	assert.Equal(t, "error", final["status"])
	assert.Equal(t, "execution_timeout", final["status_reason"])

	// A post-mortem final from the runner is stale, not a resurrection.
	code, ack := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeFinal,
		Status:      models.ResultPassed,
		Results:     &models.ResultCounts{Total: 5, Passed: 5},
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "stale", ack["outcome"])
}

// TestDispatchFailure covers a runner whose start endpoint keeps erroring:
// the gateway exhausts its retries, the execution errors, and the slot frees.
func TestDispatchFailure(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	runner.refuseStarts(http.StatusInternalServerError)
	registerRunner(t, app, "broken-pool", runner, map[string]any{"max_concurrent_jobs": 1})

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})

	final := waitForStatus(t, app, execID, "error")
	assert.Equal(t, "driver_unavailable", final["status_reason"])

	// Once the runner recovers, the freed slot takes new work.
	runner.refuseStarts(http.StatusOK)
	nextID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	next := runner.waitForStart(t)
	assert.Equal(t, nextID, next.ExecutionID)
}
