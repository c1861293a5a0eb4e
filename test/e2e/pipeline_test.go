package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/pkg/models"
)

// TestExecutionLifecycle walks the whole happy path: submit, schedule,
// dispatch, runner progress webhooks, finalization, client notification,
// capacity release.
func TestExecutionLifecycle(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "pool-1", runner, nil)

	notifications := make(chan map[string]any, 4)
	notifyTarget := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		notifications <- body
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(notifyTarget.Close)

	execID := submitExecution(t, app, map[string]any{
		"test_suite":  "smoke",
		"environment": "staging",
		"branch":      "main",
		"commit":      "4f2a9c1",
		"webhook_url": notifyTarget.URL,
	})

	// The scheduler dispatches to the registered runner.
	msg := runner.waitForStart(t)
	assert.Equal(t, execID, msg.ExecutionID)
	assert.Equal(t, "smoke", msg.TestSuite)
	assert.Equal(t, "staging", msg.Environment)
	assert.Equal(t, 1, msg.TotalShards)
	require.NotEmpty(t, msg.CallbackURL)
	require.NotEmpty(t, msg.CallbackToken)

	// Runner reports running.
	code, ack := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeRunning,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "applied", ack["outcome"])
	assert.Equal(t, "running", ack["status"])

	// Runner reports the final result.
	finalHook := models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeFinal,
		Status:      models.ResultPassed,
		Results:     &models.ResultCounts{Total: 120, Passed: 120},
	}
	code, ack = runner.report(t, msg, finalHook)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "applied", ack["outcome"])
	assert.Equal(t, "completed", ack["status"])

	final := getExecution(t, app, execID)
	assert.Equal(t, "completed", final["status"])
	agg, ok := final["aggregated_results"].(map[string]any)
	require.True(t, ok, "terminal execution carries aggregated results")
	assert.Equal(t, float64(120), agg["passed"])
	assert.Equal(t, float64(1), agg["shards"])

	// A redelivered final is an idempotent duplicate.
	code, ack = runner.report(t, msg, finalHook)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "duplicate", ack["outcome"])

	// The client webhook fires once with the terminal snapshot.
	select {
	case n := <-notifications:
		assert.Equal(t, execID, n["execution_id"])
		assert.Equal(t, "completed", n["status"])
	case <-time.After(10 * time.Second):
		t.Fatal("client notification never delivered")
	}

	// The slot is free again.
	require.Eventually(t, func() bool {
		code, resp := doJSON(t, http.MethodGet, app.URL("/api/v1/runners"), nil)
		require.Equal(t, http.StatusOK, code)
		runners := resp["runners"].([]any)
		return len(runners) == 1 && runners[0].(map[string]any)["inflight"] == float64(0)
	}, 10*time.Second, 50*time.Millisecond)
}

// TestRootPathsServeAPI: the documented paths live at the root; /api/v1 is
// an alias, and both reach the same handlers.
func TestRootPathsServeAPI(t *testing.T) {
	app := newTestApp(t)

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})

	code, resp := doJSON(t, http.MethodGet, app.URL("/executions/"+execID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, execID, resp["execution_id"])

	code, root := doJSON(t, http.MethodGet, app.URL("/queue/status"), nil)
	require.Equal(t, http.StatusOK, code)
	code, aliased := doJSON(t, http.MethodGet, app.URL("/api/v1/queue/status"), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, root["queued"], aliased["queued"])
}

func TestIdempotentSubmission(t *testing.T) {
	app := newTestApp(t)

	body := map[string]any{"test_suite": "smoke", "environment": "staging"}
	key := map[string]string{"Idempotency-Key": "nightly-2025-06-01"}

	code, _ := doJSON(t, http.MethodPost, app.URL("/api/v1/executions"), body, key)
	require.Equal(t, http.StatusCreated, code)

	code, second := doJSON(t, http.MethodPost, app.URL("/api/v1/executions"), body, key)
	assert.Equal(t, http.StatusConflict, code, "replayed key must not create a second execution: %v", second)

	code, _ = doJSON(t, http.MethodPost, app.URL("/api/v1/executions"), body,
		map[string]string{"Idempotency-Key": "nightly-2025-06-02"})
	assert.Equal(t, http.StatusCreated, code)
}

func TestWebhookAuthentication(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "auth-pool", runner, nil)

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	msg := runner.waitForStart(t)

	t.Run("wrong token", func(t *testing.T) {
		forged := msg
		forged.CallbackToken = "not-the-token"
		code, _ := runner.report(t, forged, models.RunnerWebhook{
			ExecutionID: execID,
			Type:        models.WebhookTypeRunning,
		})
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("missing token", func(t *testing.T) {
		code, _ := doJSON(t, http.MethodPost, app.URL("/api/v1/webhooks/runner"), map[string]any{
			"execution_id": execID,
			"type":         "running",
		})
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("unknown execution", func(t *testing.T) {
		code, _ := runner.report(t, msg, models.RunnerWebhook{
			ExecutionID: "no-such-execution",
			Type:        models.WebhookTypeRunning,
		})
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("valid token still works", func(t *testing.T) {
		code, ack := runner.report(t, msg, models.RunnerWebhook{
			ExecutionID: execID,
			Type:        models.WebhookTypeRunning,
		})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "applied", ack["outcome"])
	})
}

func TestQueueStatusReflectsLifecycle(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "status-pool", runner, map[string]any{"max_concurrent_jobs": 1})

	first := submitExecution(t, app, map[string]any{"test_suite": "smoke", "environment": "staging"})
	second := submitExecution(t, app, map[string]any{"test_suite": "smoke", "environment": "staging"})

	msg := runner.waitForStart(t)
	require.Equal(t, first, msg.ExecutionID, "submission order is dispatch order at equal priority")

	// One slot means the second execution waits in queue.
	require.Eventually(t, func() bool {
		code, resp := doJSON(t, http.MethodGet, app.URL("/api/v1/queue/status"), nil)
		require.Equal(t, http.StatusOK, code)
		return resp["queued"] == float64(1) && resp["assigned"] == float64(1)
	}, 10*time.Second, 50*time.Millisecond)

	// Finishing the first frees the slot for the second.
	code, _ := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: first,
		Type:        models.WebhookTypeFinal,
		Status:      models.ResultPassed,
		Results:     &models.ResultCounts{Total: 10, Passed: 10},
	})
	require.Equal(t, http.StatusOK, code)

	next := runner.waitForStart(t)
	assert.Equal(t, second, next.ExecutionID)
}
