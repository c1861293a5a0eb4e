package e2e

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runnerHealth reads one runner's probed health through the list endpoint.
func runnerHealth(t *testing.T, app *TestApp, runnerID int) string {
	t.Helper()
	code, resp := doJSON(t, http.MethodGet, app.URL("/api/v1/runners"), nil)
	require.Equal(t, http.StatusOK, code)
	for _, item := range resp["runners"].([]any) {
		r := item.(map[string]any)
		if int(r["id"].(float64)) == runnerID {
			return r["health"].(string)
		}
	}
	t.Fatalf("runner %d not in listing", runnerID)
	return ""
}

// TestHealthProbeGating flips a runner unhealthy and back: while unhealthy the
// scheduler must not dispatch to it, and recovery resumes dispatching.
func TestHealthProbeGating(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	runner := newFakeRunner(t)
	runnerID := registerRunner(t, app, "probed-pool", runner, map[string]any{
		"health_check_url": runner.healthEndpoint(),
	})
	require.Equal(t, "unknown", runnerHealth(t, app, runnerID))

	runner.setHealth(http.StatusServiceUnavailable)
	app.Prober.ProbeRound(ctx)
	require.Equal(t, "unhealthy", runnerHealth(t, app, runnerID))

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})

	// Several scheduler ticks pass without the unhealthy runner being chosen.
	assert.Never(t, func() bool {
		return runner.startCount() > 0
	}, time.Second, 100*time.Millisecond, "dispatched to an unhealthy runner")
	assert.Equal(t, "queued", getExecution(t, app, execID)["status"])

	runner.setHealth(http.StatusOK)
	app.Prober.ProbeRound(ctx)
	require.Equal(t, "healthy", runnerHealth(t, app, runnerID))

	app.Scheduler.Wake()
	msg := runner.waitForStart(t)
	assert.Equal(t, execID, msg.ExecutionID)
}

// TestPausedRunnerExcluded: pausing takes a runner out of rotation without
// touching its health, and resuming puts it back.
func TestPausedRunnerExcluded(t *testing.T) {
	app := newTestApp(t)

	runner := newFakeRunner(t)
	runnerID := registerRunner(t, app, "paused-pool", runner, nil)

	code, _ := doJSON(t, http.MethodPost, app.URL("/api/v1/runners/"+strconv.Itoa(runnerID)+"/pause"), nil)
	require.Equal(t, http.StatusOK, code)

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	assert.Never(t, func() bool {
		return runner.startCount() > 0
	}, time.Second, 100*time.Millisecond, "dispatched to a paused runner")

	code, _ = doJSON(t, http.MethodPost, app.URL("/api/v1/runners/"+strconv.Itoa(runnerID)+"/resume"), nil)
	require.Equal(t, http.StatusOK, code)

	app.Scheduler.Wake()
	msg := runner.waitForStart(t)
	assert.Equal(t, execID, msg.ExecutionID)
}
