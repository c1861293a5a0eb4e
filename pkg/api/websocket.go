package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/baton-ci/baton/pkg/events"
	"github.com/baton-ci/baton/pkg/metrics"
	"github.com/baton-ci/baton/pkg/store"
)

// catchupLimit is the maximum number of events returned in a catchup response.
// If more events were missed, a catchup.overflow message tells the client to
// do a full REST reload.
const catchupLimit = 200

// CatchupQuerier replays persisted events for late subscribers. Implemented
// by the Store over the audit table.
type CatchupQuerier interface {
	CatchupAuditEvents(ctx context.Context, channel string, sinceID, limit int) ([]store.CatchupEvent, error)
}

// ConnectionManager owns every WebSocket client: channel subscriptions,
// fan-out of bus events, and audit-table catch-up. One instance per process.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel → set of connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	catchup CatchupQuerier
	metrics *metrics.Metrics
	logger  *slog.Logger

	// Write timeout for WebSocket sends
	writeTimeout time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all reads
// and writes (subscribe, unsubscribe, unregisterConnection) happen on the
// single goroutine that owns this connection (HandleConnection's read loop
// and its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a ConnectionManager. metrics may be nil.
func NewConnectionManager(catchup CatchupQuerier, m *metrics.Metrics, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		catchup:      catchup,
		metrics:      m,
		logger:       slog.With("component", "ws_manager"),
		writeTimeout: writeTimeout,
		done:         make(chan struct{}),
	}
}

// Start subscribes to the bus and fans events out to channel subscribers.
func (m *ConnectionManager) Start(bus *events.Bus) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	sub := bus.Subscribe("ws_manager")
	go m.route(ctx, sub)
}

// Stop closes the bus subscription and every client connection.
func (m *ConnectionManager) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done

	m.mu.Lock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, c := range m.connections {
		conns = append(conns, c)
	}
	m.mu.Unlock()
	for _, c := range conns {
		c.cancel()
	}
}

// route is the bus → WebSocket pump.
func (m *ConnectionManager) route(ctx context.Context, sub *events.Subscription) {
	defer close(m.done)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			if ev.Kind == events.KindLagged {
				// The manager itself fell behind; every client needs a
				// resync hint regardless of channel.
				m.broadcastAll(ev.Data)
				continue
			}
			for _, channel := range ev.Channels {
				m.Broadcast(channel, ev.Data)
			}
		}
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	// Read loop — process client messages until the connection closes.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg events.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			m.logger.Warn("invalid websocket message", "connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends an event payload to all connections subscribed to the channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot pointers before sending so a slow write (up to writeTimeout)
	// never stalls register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			m.logger.Warn("failed to send to websocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// broadcastAll sends a payload to every active connection.
func (m *ConnectionManager) broadcastAll(event []byte) {
	m.mu.RLock()
	conns := make([]*Connection, 0, len(m.connections))
	for _, conn := range m.connections {
		conns = append(conns, conn)
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			m.logger.Warn("failed to send to websocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *events.ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		m.subscribe(c, msg.Channel)
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up: replay prior events so late subscribers miss nothing.
		since := 0
		if msg.LastEventID != nil {
			since = *msg.LastEventID
		}
		m.handleCatchup(ctx, c, msg.Channel, since)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection for a channel. Fan-out is in-process off
// the bus, so unlike a LISTEN/NOTIFY design there is nothing that can fail
// here.
func (m *ConnectionManager) subscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	c.subscriptions[channel] = true
}

// unsubscribe removes a connection from a channel.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// handleCatchup sends missed events since lastEventID to the client.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, lastEventID int) {
	if m.catchup == nil {
		return
	}

	// Query one past the limit to detect overflow.
	evts, err := m.catchup.CatchupAuditEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		m.logger.Error("catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(evts) > catchupLimit
	if hasMore {
		evts = evts[:catchupLimit]
	}

	// Replay in order, injecting the audit id as the client's cursor. Stored
	// payloads don't carry it; the publisher only adds it on the live path.
	for _, evt := range evts {
		evt.Payload["id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			m.logger.Warn("failed to send catchup event", "connection_id", c.ID, "error", err)
			return
		}
	}

	// More events were missed than the catchup limit; the client should do
	// a full REST reload instead of paginating catchup requests.
	if hasMore {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	m.connections[c.ID] = c
	m.mu.Unlock()
	m.metrics.WSConnected()
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	m.metrics.WSDisconnected()
	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.logger.Warn("failed to marshal websocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		m.logger.Warn("failed to send websocket message", "connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
