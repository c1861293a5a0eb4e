package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent holds the schema definition for the AuditEvent entity.
// Append-only trail of domain events; the serial id doubles as the
// WebSocket catch-up cursor. Deliberately has no FK edges so the trail
// outlives whatever it references.
type AuditEvent struct {
	ent.Schema
}

// Fields of the AuditEvent.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			Comment("Broadcast channel ('executions', 'execution:{id}', 'runners')"),
		field.String("execution_id").
			Optional().
			Comment("Set for execution-scoped events"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Catch-up reads: WHERE channel = ? AND id > ? ORDER BY id
		index.Fields("channel", "id"),
		index.Fields("execution_id"),
		index.Fields("created_at"),
	}
}
