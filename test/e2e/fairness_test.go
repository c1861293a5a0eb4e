package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundRobinSpread registers two runners under a round-robin rule and
// checks that four submissions land two on each. The cursor walks runner ids
// in order, so the split is exact, not probabilistic.
func TestRoundRobinSpread(t *testing.T) {
	app := newTestApp(t)

	left := newFakeRunner(t)
	right := newFakeRunner(t)
	registerRunner(t, app, "spread-left", left, map[string]any{"max_concurrent_jobs": 4})
	registerRunner(t, app, "spread-right", right, map[string]any{"max_concurrent_jobs": 4})

	code, resp := doJSON(t, http.MethodPost, app.URL("/api/v1/rules"), map[string]any{
		"name": "spread-everything",
		"kind": "round-robin",
	})
	require.Equal(t, http.StatusCreated, code, "rule creation failed: %v", resp)

	seen := map[string]bool{}
	for range 4 {
		id := submitExecution(t, app, map[string]any{
			"test_suite": "smoke", "environment": "staging",
		})
		seen[id] = true
	}

	require.Eventually(t, func() bool {
		return left.startCount()+right.startCount() == 4
	}, 15*time.Second, 50*time.Millisecond, "not all submissions dispatched")

	assert.Equal(t, 2, left.startCount())
	assert.Equal(t, 2, right.startCount())

	// Every dispatch carried a distinct submission.
	left.mu.Lock()
	right.mu.Lock()
	for _, msg := range append(append([]startMessage{}, left.starts...), right.starts...) {
		assert.True(t, seen[msg.ExecutionID], "unexpected execution %s dispatched", msg.ExecutionID)
		delete(seen, msg.ExecutionID)
	}
	right.mu.Unlock()
	left.mu.Unlock()
	assert.Empty(t, seen)

	// The rule's cursor remembers the last pick.
	code, resp = doJSON(t, http.MethodGet, app.URL("/api/v1/rules"), nil)
	require.Equal(t, http.StatusOK, code)
	rules := resp["rules"].([]any)
	require.Len(t, rules, 1)
	assert.Greater(t, rules[0].(map[string]any)["cursor"], float64(0))
}

// TestTypeFilterRuleFields pins the request field a type-filter rule is
// created with and its echo in the response.
func TestTypeFilterRuleFields(t *testing.T) {
	app := newTestApp(t)

	code, resp := doJSON(t, http.MethodPost, app.URL("/api/v1/rules"), map[string]any{
		"name": "docker-jobs", "kind": "type-filter", "runner_type_filter": "docker",
	})
	require.Equal(t, http.StatusCreated, code, "rule creation failed: %v", resp)
	assert.Equal(t, "docker", resp["runner_type_filter"])

	// The filter has to name a type.
	code, _ = doJSON(t, http.MethodPost, app.URL("/api/v1/rules"), map[string]any{
		"name": "typeless-filter", "kind": "type-filter",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

// TestRuleValidation: malformed rules are rejected at creation.
func TestRuleValidation(t *testing.T) {
	app := newTestApp(t)

	code, _ := doJSON(t, http.MethodPost, app.URL("/api/v1/rules"), map[string]any{
		"name": "bad-kind", "kind": "coin-flip",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, http.MethodPost, app.URL("/api/v1/rules"), map[string]any{
		"name": "bad-glob", "kind": "round-robin", "test_suite_pattern": "[",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, http.MethodPost, app.URL("/api/v1/rules"), map[string]any{
		"name": "affinity-without-caps", "kind": "affinity",
	})
	assert.Equal(t, http.StatusBadRequest, code)
}
