package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/pkg/models"
)

// startMessage is the dispatch payload a fake runner receives.
type startMessage struct {
	ExecutionID   string         `json:"execution_id"`
	TestSuite     string         `json:"test_suite"`
	Environment   string         `json:"environment"`
	Branch        string         `json:"branch"`
	CommitSHA     string         `json:"commit_sha"`
	TotalShards   int            `json:"total_shards"`
	Metadata      map[string]any `json:"metadata"`
	CallbackURL   string         `json:"callback_url"`
	CallbackToken string         `json:"callback_token"`
}

// fakeRunner plays a CI runner behind the webhook driver: it accepts start
// and cancel POSTs and reports progress back through the callback URL it was
// handed, exactly like a real runner would.
type fakeRunner struct {
	server *httptest.Server

	mu         sync.Mutex
	startCode  int
	healthCode int
	starts     []startMessage
	cancels    []string

	startCh  chan startMessage
	cancelCh chan string
}

func newFakeRunner(t *testing.T) *fakeRunner {
	t.Helper()
	f := &fakeRunner{
		startCode:  http.StatusOK,
		healthCode: http.StatusOK,
		startCh:    make(chan startMessage, 16),
		cancelCh:   make(chan string, 16),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		code := f.healthCode
		f.mu.Unlock()
		w.WriteHeader(code)
	})
	mux.HandleFunc("/cancel", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ExecutionID string `json:"execution_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.cancels = append(f.cancels, body.ExecutionID)
		f.mu.Unlock()
		f.cancelCh <- body.ExecutionID
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		var msg startMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)

		f.mu.Lock()
		code := f.startCode
		if code < 300 {
			f.starts = append(f.starts, msg)
		}
		f.mu.Unlock()
		if code < 300 {
			f.startCh <- msg
		}
		w.WriteHeader(code)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

// endpoint is what the runner registers as its endpoint_url.
func (f *fakeRunner) endpoint() string {
	return f.server.URL
}

// refuseStarts makes subsequent start POSTs fail with the given status.
func (f *fakeRunner) refuseStarts(code int) {
	f.mu.Lock()
	f.startCode = code
	f.mu.Unlock()
}

// healthEndpoint is what the runner registers as its health_check_url.
func (f *fakeRunner) healthEndpoint() string {
	return f.server.URL + "/healthz"
}

// setHealth changes what subsequent health probes see.
func (f *fakeRunner) setHealth(code int) {
	f.mu.Lock()
	f.healthCode = code
	f.mu.Unlock()
}

// waitForStart blocks until the runner receives a dispatch.
func (f *fakeRunner) waitForStart(t *testing.T) startMessage {
	t.Helper()
	select {
	case msg := <-f.startCh:
		return msg
	case <-time.After(10 * time.Second):
		t.Fatal("fake runner never received a start dispatch")
		return startMessage{}
	}
}

// waitForCancel blocks until the runner receives a cancel.
func (f *fakeRunner) waitForCancel(t *testing.T) string {
	t.Helper()
	select {
	case id := <-f.cancelCh:
		return id
	case <-time.After(10 * time.Second):
		t.Fatal("fake runner never received a cancel")
		return ""
	}
}

// startCount reports how many dispatches this runner accepted.
func (f *fakeRunner) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.starts)
}

// report posts a runner webhook through the callback the dispatch carried.
// Returns the HTTP status and the decoded ack body.
func (f *fakeRunner) report(t *testing.T, msg startMessage, hook models.RunnerWebhook) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(hook)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, msg.CallbackURL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+msg.CallbackToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var ack map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&ack)
	return resp.StatusCode, ack
}
