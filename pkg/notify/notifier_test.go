package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/models"
)

func testConfig() *config.NotifyConfig {
	return &config.NotifyConfig{Retries: 3, Backoff: time.Millisecond}
}

func stopNotifier(t *testing.T, n *Notifier) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, n.Stop(ctx))
}

func terminalExec(url string) *ent.Execution {
	now := time.Now()
	return &ent.Execution{
		ID:           "exec-1",
		Status:       execution.StatusCompleted,
		WebhookURL:   url,
		CreatedAt:    now.Add(-time.Minute),
		StartedAt:    &now,
		CompletedAt:  &now,
		AggregatedResults: &models.AggregatedResults{
			Status: models.ResultPassed, Total: 10, Passed: 10, Shards: 1,
		},
	}
}

func TestNotifyCompletionDeliversPayload(t *testing.T) {
	var got models.ClientNotification
	received := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		close(received)
	}))
	defer srv.Close()

	n := New(testConfig(), srv.Client())
	n.NotifyCompletion(terminalExec(srv.URL))
	stopNotifier(t, n)

	select {
	case <-received:
	default:
		t.Fatal("notification never arrived")
	}
	assert.Equal(t, "exec-1", got.ExecutionID)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.AggregatedResults)
	assert.Equal(t, 10, got.AggregatedResults.Total)
}

func TestNotifyCompletionRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := New(testConfig(), srv.Client())
	n.NotifyCompletion(terminalExec(srv.URL))
	stopNotifier(t, n)

	assert.Equal(t, int32(3), calls.Load())
}

func TestNotifyCompletionGivesUpAfterBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := New(testConfig(), srv.Client())
	n.NotifyCompletion(terminalExec(srv.URL))
	stopNotifier(t, n)

	assert.Equal(t, int32(3), calls.Load())
}

func TestNotifyCompletionSkipsExecutionsWithoutURL(t *testing.T) {
	n := New(testConfig(), nil)
	exec := terminalExec("")
	n.NotifyCompletion(exec)
	stopNotifier(t, n)
}
