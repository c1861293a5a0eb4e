package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/pkg/models"
)

// TestShardedExecutionAggregation runs a two-shard execution where one shard
// fails: the roll-up must sum the shards and the worst shard status decides
// the terminal state.
func TestShardedExecutionAggregation(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "shard-pool", runner, nil)

	execID := submitExecution(t, app, map[string]any{
		"test_suite":   "regression",
		"environment":  "staging",
		"total_shards": 2,
	})

	msg := runner.waitForStart(t)
	require.Equal(t, 2, msg.TotalShards)

	one := 1
	code, ack := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeShardComplete,
		ShardID:     &one,
		Status:      models.ResultPassed,
		Results:     &models.ResultCounts{Total: 93, Passed: 93},
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "applied", ack["outcome"])
	assert.Equal(t, "running", ack["status"], "first shard result implies the run started")

	// The last shard closes the execution without a separate final webhook.
	two := 2
	code, ack = runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeShardComplete,
		ShardID:     &two,
		Status:      models.ResultFailed,
		Results:     &models.ResultCounts{Total: 7, Failed: 7},
		FailedTests: []models.FailedTest{{Title: "checkout keeps cart on refresh", File: "checkout.spec.ts"}},
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "applied", ack["outcome"])
	assert.Equal(t, "failed", ack["status"])

	final := getExecution(t, app, execID)
	assert.Equal(t, "failed", final["status"])

	agg := final["aggregated_results"].(map[string]any)
	assert.Equal(t, float64(100), agg["total"])
	assert.Equal(t, float64(93), agg["passed"])
	assert.Equal(t, float64(7), agg["failed"])
	assert.Equal(t, float64(2), agg["shards"])
	assert.Equal(t, "failed", agg["status"])

	failed := agg["failed_tests"].([]any)
	require.Len(t, failed, 1)
	assert.Equal(t, "checkout keeps cart on refresh", failed[0].(map[string]any)["title"])
}

// TestShardConflictRejected covers a runner contradicting itself: the second,
// different result for the same shard is refused and the stored result stands.
func TestShardConflictRejected(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "conflict-pool", runner, nil)

	execID := submitExecution(t, app, map[string]any{
		"test_suite":   "regression",
		"environment":  "staging",
		"total_shards": 2,
	})
	msg := runner.waitForStart(t)

	one := 1
	code, _ := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeShardComplete,
		ShardID:     &one,
		Status:      models.ResultPassed,
		Results:     &models.ResultCounts{Total: 50, Passed: 50},
	})
	require.Equal(t, http.StatusOK, code)

	code, _ = runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeShardComplete,
		ShardID:     &one,
		Status:      models.ResultFailed,
		Results:     &models.ResultCounts{Total: 50, Failed: 50},
	})
	assert.Equal(t, http.StatusConflict, code)

	// An early final with shards missing closes the run as error.
	code, ack := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeFinal,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "error", ack["status"])

	final := getExecution(t, app, execID)
	assert.Equal(t, "error", final["status"])
	assert.Equal(t, "missing_shards", final["status_reason"])
	assert.Nil(t, final["aggregated_results"], "partial runs carry no roll-up")
}
