package driver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent"
)

func webhookRequest(endpoint string) Request {
	return Request{
		Execution: &ent.Execution{
			ID:          "exec-1",
			TestSuite:   "smoke",
			Environment: "staging",
			TotalShards: 2,
		},
		Runner:      &ent.Runner{ID: 1, Name: "hook-1", Type: "webhook", EndpointURL: endpoint},
		CallbackURL: "http://baton.internal/webhooks/runner",
		Token:       "secret-token",
	}
}

func TestWebhookStartPayload(t *testing.T) {
	var got startPayload
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	drv := NewWebhook("webhook", srv.Client())
	require.NoError(t, drv.Start(context.Background(), webhookRequest(srv.URL+"/start")))

	assert.Equal(t, "/start", path)
	assert.Equal(t, "exec-1", got.ExecutionID)
	assert.Equal(t, "smoke", got.TestSuite)
	assert.Equal(t, 2, got.TotalShards)
	assert.Equal(t, "http://baton.internal/webhooks/runner", got.CallbackURL)
	assert.Equal(t, "secret-token", got.CallbackToken)
}

func TestWebhookCancelHitsCancelPath(t *testing.T) {
	var path string
	var got cancelPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	drv := NewWebhook("webhook", srv.Client())
	require.NoError(t, drv.Cancel(context.Background(), webhookRequest(srv.URL+"/jobs/")))

	assert.Equal(t, "/jobs/cancel", path)
	assert.Equal(t, "exec-1", got.ExecutionID)
}

func TestWebhookStatusClassification(t *testing.T) {
	tests := []struct {
		code      int
		kind      ErrorKind
		retryable bool
	}{
		{http.StatusBadRequest, KindBadRequest, false},
		{http.StatusUnprocessableEntity, KindBadRequest, false},
		{http.StatusUnauthorized, KindUnauthorized, false},
		{http.StatusForbidden, KindUnauthorized, false},
		{http.StatusTooManyRequests, KindUnavailable, true},
		{http.StatusServiceUnavailable, KindUnavailable, true},
		{http.StatusInternalServerError, KindTransient, true},
		{http.StatusBadGateway, KindTransient, true},
	}

	for _, tc := range tests {
		err := classifyStatus(tc.code, "http://runner")
		require.Error(t, err, "code %d", tc.code)
		var derr *Error
		require.ErrorAs(t, err, &derr, "code %d", tc.code)
		assert.Equal(t, tc.kind, derr.Kind, "code %d", tc.code)
		assert.Equal(t, tc.retryable, Retryable(err), "code %d", tc.code)
	}

	assert.NoError(t, classifyStatus(http.StatusOK, "http://runner"))
	assert.NoError(t, classifyStatus(http.StatusAccepted, "http://runner"))
}

func TestWebhookNetworkErrorIsTransient(t *testing.T) {
	drv := NewWebhook("webhook", &http.Client{})
	err := drv.Start(context.Background(), webhookRequest("http://127.0.0.1:1/start"))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, KindTransient, derr.Kind)
	assert.True(t, Retryable(err))
}
