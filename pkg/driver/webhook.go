package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// WebhookTypes are the runner types served by the generic HTTP driver. CI
// providers differ in what runs behind the endpoint, not in how we call it.
var WebhookTypes = []string{"webhook", "github-actions", "jenkins", "gitlab-ci"}

// Webhook drives runners that accept plain HTTP: POST {endpoint} to start,
// POST {endpoint}/cancel to cancel. The runner reports progress back through
// the callback URL in the payload.
type Webhook struct {
	runnerType string
	client     *http.Client
}

// NewWebhook creates an HTTP driver registered under the given runner type.
func NewWebhook(runnerType string, client *http.Client) *Webhook {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Webhook{runnerType: runnerType, client: client}
}

func (w *Webhook) Type() string {
	return w.runnerType
}

// startPayload is the body POSTed to the runner's endpoint.
type startPayload struct {
	ExecutionID   string         `json:"execution_id"`
	TestSuite     string         `json:"test_suite"`
	Environment   string         `json:"environment"`
	Branch        string         `json:"branch,omitempty"`
	CommitSHA     string         `json:"commit_sha,omitempty"`
	TotalShards   int            `json:"total_shards"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CallbackURL   string         `json:"callback_url"`
	CallbackToken string         `json:"callback_token"`
}

type cancelPayload struct {
	ExecutionID string `json:"execution_id"`
}

func (w *Webhook) Start(ctx context.Context, req Request) error {
	payload := startPayload{
		ExecutionID:   req.Execution.ID,
		TestSuite:     req.Execution.TestSuite,
		Environment:   req.Execution.Environment,
		Branch:        req.Execution.Branch,
		CommitSHA:     req.Execution.CommitSha,
		TotalShards:   req.Execution.TotalShards,
		Metadata:      req.Execution.Metadata,
		CallbackURL:   req.CallbackURL,
		CallbackToken: req.Token,
	}
	return w.post(ctx, req.Runner.EndpointURL, payload)
}

func (w *Webhook) Cancel(ctx context.Context, req Request) error {
	url := strings.TrimRight(req.Runner.EndpointURL, "/") + "/cancel"
	return w.post(ctx, url, cancelPayload{ExecutionID: req.Execution.ID})
}

func (w *Webhook) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return badRequest("failed to encode payload", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return badRequest("failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(httpReq)
	if err != nil {
		return transient("runner unreachable", err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return classifyStatus(resp.StatusCode, url)
}

// classifyStatus maps an HTTP response onto the retry policy.
func classifyStatus(code int, url string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return unauthorized(fmt.Sprintf("runner rejected credentials (%d) at %s", code, url), nil)
	case code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable:
		return unavailable(fmt.Sprintf("runner refused work (%d) at %s", code, url), nil)
	case code >= 400 && code < 500:
		return badRequest(fmt.Sprintf("runner rejected request (%d) at %s", code, url), nil)
	default:
		return transient(fmt.Sprintf("runner returned %d at %s", code, url), nil)
	}
}
