package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/pkg/events"
	"github.com/baton-ci/baton/pkg/store"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []store.CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) CatchupAuditEvents(_ context.Context, _ string, sinceID, limit int) ([]store.CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]store.CatchupEvent, 0, len(m.events))
	for _, evt := range m.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func setupTestManager(t *testing.T, catchup CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(catchup, nil, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(server.Close)
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, msg events.ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func subscribe(t *testing.T, conn *websocket.Conn, channel string) {
	t.Helper()
	send(t, conn, events.ClientMessage{Action: "subscribe", Channel: channel})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])
	require.Equal(t, channel, msg["channel"])
}

func TestConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestSubscribeAndBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	channel := events.ExecutionChannel("exec-42")
	subscribe(t, conn1, channel)
	subscribe(t, conn2, channel)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "execution.started", "execution_id": "exec-42"})
	manager.Broadcast(channel, payload)

	msg1 := readJSON(t, conn1)
	msg2 := readJSON(t, conn2)
	assert.Equal(t, "execution.started", msg1["type"])
	assert.Equal(t, "execution.started", msg2["type"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribe(t, conn, "runners")
	require.Eventually(t, func() bool {
		return manager.subscriberCount("runners") == 1
	}, 2*time.Second, 10*time.Millisecond)

	send(t, conn, events.ClientMessage{Action: "unsubscribe", Channel: "runners"})
	require.Eventually(t, func() bool {
		return manager.subscriberCount("runners") == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPingPong(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	send(t, conn, events.ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestSubscribeReplaysCatchupWithCursor(t *testing.T) {
	catchup := &mockCatchupQuerier{events: []store.CatchupEvent{
		{ID: 11, Payload: map[string]any{"type": "execution.queued", "execution_id": "exec-1"}},
		{ID: 12, Payload: map[string]any{"type": "execution.assigned", "execution_id": "exec-1"}},
	}}
	_, server := setupTestManager(t, catchup)
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribe(t, conn, "executions")

	first := readJSON(t, conn)
	assert.Equal(t, "execution.queued", first["type"])
	assert.Equal(t, float64(11), first["id"], "audit id injected as catch-up cursor")

	second := readJSON(t, conn)
	assert.Equal(t, "execution.assigned", second["type"])
	assert.Equal(t, float64(12), second["id"])
}

func TestCatchupOverflowTellsClientToReload(t *testing.T) {
	manyEvents := make([]store.CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = store.CatchupEvent{
			ID:      i + 1,
			Payload: map[string]any{"type": "execution.queued", "seq": i},
		}
	}
	_, server := setupTestManager(t, &mockCatchupQuerier{events: manyEvents})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribe(t, conn, "executions")

	var overflowReceived bool
	for i := 0; i < catchupLimit+1; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow after the replay limit")
}

func TestBusEventsRouteToSubscribedChannels(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})

	bus := events.NewBus(16)
	defer bus.Close()
	manager.Start(bus)
	defer manager.Stop()

	conn := connectWS(t, server)
	readJSON(t, conn)
	subscribe(t, conn, "executions")
	require.Eventually(t, func() bool {
		return manager.subscriberCount("executions") == 1
	}, 2*time.Second, 10*time.Millisecond)

	data, _ := json.Marshal(map[string]string{"type": "execution.queued", "execution_id": "exec-7"})
	bus.Publish(events.Event{
		Kind:        events.KindExecutionQueued,
		ExecutionID: "exec-7",
		Channels:    []string{"executions", events.ExecutionChannel("exec-7")},
		Data:        data,
	})

	msg := readJSON(t, conn)
	assert.Equal(t, "execution.queued", msg["type"])
	assert.Equal(t, "exec-7", msg["execution_id"])
}
