package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// doJSON performs one JSON request against the test server and decodes the
// response body into a generic map.
func doJSON(t *testing.T, method, url string, body any, headers ...map[string]string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, hs := range headers {
		for k, v := range hs {
			req.Header.Set(k, v)
		}
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

// registerRunner registers a fake runner through the API and returns its id.
func registerRunner(t *testing.T, app *TestApp, name string, r *fakeRunner, extra map[string]any) int {
	t.Helper()

	body := map[string]any{
		"name":         name,
		"type":         "webhook",
		"endpoint_url": r.endpoint(),
	}
	for k, v := range extra {
		body[k] = v
	}

	code, resp := doJSON(t, http.MethodPost, app.URL("/api/v1/runners"), body)
	require.Equal(t, http.StatusCreated, code, "runner registration failed: %v", resp)
	return int(resp["runner_id"].(float64))
}

// submitExecution submits an execution request and returns its id.
func submitExecution(t *testing.T, app *TestApp, body map[string]any) string {
	t.Helper()

	code, resp := doJSON(t, http.MethodPost, app.URL("/api/v1/executions"), body)
	require.Equal(t, http.StatusCreated, code, "execution submit failed: %v", resp)
	return resp["execution_id"].(string)
}

// getExecution fetches one execution through the API.
func getExecution(t *testing.T, app *TestApp, id string) map[string]any {
	t.Helper()

	code, resp := doJSON(t, http.MethodGet, app.URL("/api/v1/executions/"+id), nil)
	require.Equal(t, http.StatusOK, code)
	return resp
}

// waitForStatus polls until the execution reaches the wanted status.
func waitForStatus(t *testing.T, app *TestApp, id, status string) map[string]any {
	t.Helper()

	var last map[string]any
	require.Eventually(t, func() bool {
		last = getExecution(t, app, id)
		return last["status"] == status
	}, 15*time.Second, 50*time.Millisecond,
		"execution %s never reached status %q", id, status)
	return last
}
