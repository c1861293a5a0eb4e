// Package events is baton's in-process domain event bus plus the publisher
// that feeds it.
//
// Delivery contract:
//   - Publish never blocks. Each subscriber owns a bounded inbox drained by
//     its own pump goroutine; a slow subscriber only hurts itself.
//   - On inbox overflow the oldest buffered event is dropped and the pump
//     delivers a subscription.lagged marker before newer events, so the
//     subscriber knows to resync from the Store.
//   - Delivery is at-least-once. Events for one execution are enqueued in
//     commit order, so a subscriber that keeps up sees state transitions
//     in order; the Store remains the ground truth either way.
//
// Persistent events are also appended to the audit_events table by the
// Publisher — that table backs WebSocket catch-up after reconnects.
package events

// Kind identifies a domain event type.
type Kind string

// Domain event kinds.
const (
	KindExecutionQueued     Kind = "execution.queued"
	KindExecutionAssigned   Kind = "execution.assigned"
	KindExecutionStarted    Kind = "execution.started"
	KindShardCompleted      Kind = "shard.completed"
	KindExecutionCompleted  Kind = "execution.completed"
	KindRunnerRegistered    Kind = "runner.registered"
	KindRunnerHealthChanged Kind = "runner.health_changed"
	KindRuleConfigured      Kind = "rule.configured"
	KindQueueDepth          Kind = "queue.depth"

	// KindLagged is synthesized by the bus itself when a subscriber's inbox
	// overflowed. It is never published by callers.
	KindLagged Kind = "subscription.lagged"
)

// Broadcast channels for WebSocket routing and audit persistence.
const (
	// ExecutionsChannel carries every execution lifecycle event.
	ExecutionsChannel = "executions"

	// RunnersChannel carries runner registration and health events.
	RunnersChannel = "runners"
)

// ExecutionChannel returns the per-execution channel name.
// Format: "execution:{execution_id}"
func ExecutionChannel(executionID string) string {
	return "execution:" + executionID
}

// Event is one bus message. Data is the marshaled payload (see payloads.go);
// Channels lists the broadcast channels the event belongs to. AuditID is the
// audit-table cursor, 0 for transient events (queue.depth, lagged markers).
type Event struct {
	Kind        Kind
	ExecutionID string
	Channels    []string
	AuditID     int
	Data        []byte
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "executions", "execution:abc-123", "runners"
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
