// Package notify delivers client completion webhooks: when an execution
// reaches a terminal state and carries a webhook_url, its owner gets a POST
// with the outcome. Delivery is asynchronous and best-effort with a small
// retry budget; the Store remains queryable either way.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/avast/retry-go"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/models"
)

// Notifier posts terminal-state notifications. Safe for concurrent use.
type Notifier struct {
	cfg    *config.NotifyConfig
	client *http.Client
	logger *slog.Logger

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a notifier. client may be nil for a default.
func New(cfg *config.NotifyConfig, client *http.Client) *Notifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Notifier{
		cfg:    cfg,
		client: client,
		logger: slog.With("component", "client_notifier"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// NotifyCompletion fires the client webhook for a terminal execution, in the
// background. Executions without a webhook_url are skipped.
func (n *Notifier) NotifyCompletion(exec *ent.Execution) {
	if exec.WebhookURL == "" {
		return
	}

	payload := models.ClientNotification{
		ExecutionID:       exec.ID,
		Status:            string(exec.Status),
		Reason:            exec.StatusReason,
		AggregatedResults: exec.AggregatedResults,
		CreatedAt:         exec.CreatedAt,
		StartedAt:         exec.StartedAt,
		CompletedAt:       exec.CompletedAt,
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.deliver(exec.ID, exec.WebhookURL, payload)
	}()
}

func (n *Notifier) deliver(execID, url string, payload models.ClientNotification) {
	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error("failed to encode client notification", "execution_id", execID, "error", err)
		return
	}

	err = retry.Do(
		func() error {
			return n.post(url, body)
		},
		retry.Attempts(uint(n.cfg.Retries)),
		retry.Delay(n.cfg.Backoff),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(func(_ error) bool {
			return n.ctx.Err() == nil
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		n.logger.Warn("client notification delivery failed",
			"execution_id", execID, "webhook_url", url, "error", err)
		return
	}
	n.logger.Info("client notified", "execution_id", execID, "status", payload.Status)
}

func (n *Notifier) post(url string, body []byte) error {
	req, err := http.NewRequestWithContext(n.ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("client webhook returned %d", resp.StatusCode)
}

// Stop waits for in-flight deliveries up to the context deadline, then cuts
// them off.
func (n *Notifier) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.cancel()
		return nil
	case <-ctx.Done():
		n.cancel()
		return fmt.Errorf("notifier shutdown timed out: %w", ctx.Err())
	}
}
