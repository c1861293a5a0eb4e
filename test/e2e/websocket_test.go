package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/pkg/models"
)

// wsClient is a thin wrapper over one WebSocket connection for scenarios.
type wsClient struct {
	conn *websocket.Conn
	ctx  context.Context
}

func dialWS(t *testing.T, app *TestApp) *wsClient {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, app.URL("/api/v1/ws"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	c := &wsClient{conn: conn, ctx: ctx}
	hello := c.read(t)
	require.Equal(t, "connection.established", hello["type"])
	return c
}

func (c *wsClient) send(t *testing.T, msg map[string]any) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, c.conn.Write(c.ctx, websocket.MessageText, data))
}

func (c *wsClient) read(t *testing.T) map[string]any {
	t.Helper()
	_, data, err := c.conn.Read(c.ctx)
	require.NoError(t, err, "websocket read failed")
	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribe sends a subscribe message and waits for the confirmation.
func (c *wsClient) subscribe(t *testing.T, channel string) {
	t.Helper()
	c.send(t, map[string]any{"action": "subscribe", "channel": channel})
	confirm := c.read(t)
	require.Equal(t, "subscription.confirmed", confirm["type"])
	require.Equal(t, channel, confirm["channel"])
}

// readUntil consumes events until one of the wanted type arrives, returning
// every event seen along the way (the wanted one last).
func (c *wsClient) readUntil(t *testing.T, wanted string) []map[string]any {
	t.Helper()
	var seen []map[string]any
	for {
		msg := c.read(t)
		seen = append(seen, msg)
		if msg["type"] == wanted {
			return seen
		}
		require.Less(t, len(seen), 50, "event %q never arrived; saw %v", wanted, seen)
	}
}

// TestWebSocketLiveStream subscribes to an execution's channel before it runs
// and observes the whole lifecycle as events.
func TestWebSocketLiveStream(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "stream-pool", runner, nil)

	client := dialWS(t, app)
	client.subscribe(t, "executions")

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	msg := runner.waitForStart(t)

	code, _ := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeRunning,
	})
	require.Equal(t, http.StatusOK, code)

	code, _ = runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeFinal,
		Status:      models.ResultPassed,
		Results:     &models.ResultCounts{Total: 12, Passed: 12},
	})
	require.Equal(t, http.StatusOK, code)

	seen := client.readUntil(t, "execution.completed")

	types := make([]string, 0, len(seen))
	for _, ev := range seen {
		if ev["execution_id"] == execID {
			types = append(types, ev["type"].(string))
		}
	}
	assert.Equal(t,
		[]string{"execution.queued", "execution.assigned", "execution.started", "execution.completed"},
		types, "lifecycle events arrive in commit order")

	last := seen[len(seen)-1]
	assert.Equal(t, "completed", last["status"])
	agg := last["aggregated_results"].(map[string]any)
	assert.Equal(t, float64(12), agg["passed"])
}

// TestWebSocketCatchup subscribes after the execution already finished: the
// audit-backed catch-up replays the missed lifecycle.
func TestWebSocketCatchup(t *testing.T) {
	app := newTestApp(t)
	runner := newFakeRunner(t)
	registerRunner(t, app, "catchup-pool", runner, nil)

	execID := submitExecution(t, app, map[string]any{
		"test_suite": "smoke", "environment": "staging",
	})
	msg := runner.waitForStart(t)

	code, _ := runner.report(t, msg, models.RunnerWebhook{
		ExecutionID: execID,
		Type:        models.WebhookTypeFinal,
		Status:      models.ResultPassed,
		Results:     &models.ResultCounts{Total: 3, Passed: 3},
	})
	require.Equal(t, http.StatusOK, code)
	waitForStatus(t, app, execID, "completed")

	// A fresh subscriber with no cursor gets the full history for the channel.
	client := dialWS(t, app)
	client.subscribe(t, "execution:"+execID)

	seen := client.readUntil(t, "execution.completed")
	types := make([]string, 0, len(seen))
	var lastID float64
	for _, ev := range seen {
		types = append(types, ev["type"].(string))
		id, ok := ev["id"].(float64)
		require.True(t, ok, "replayed event carries its audit id: %v", ev)
		assert.Greater(t, id, lastID, "replay preserves commit order")
		lastID = id
	}
	assert.Contains(t, types, "execution.queued")
	assert.Contains(t, types, "execution.assigned")

	// Ping still works on a subscribed connection.
	client.send(t, map[string]any{"action": "ping"})
	assert.Equal(t, "pong", client.read(t)["type"])
}
