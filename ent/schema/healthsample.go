package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HealthSample holds the schema definition for the HealthSample entity.
// One row per probe; rotated by the retention service.
type HealthSample struct {
	ent.Schema
}

// Fields of the HealthSample.
func (HealthSample) Fields() []ent.Field {
	return []ent.Field{
		field.Int("runner_id").
			Immutable(),
		field.Enum("health").
			Values("healthy", "unhealthy"),
		field.Int64("latency_ms"),
		field.String("error").
			Optional().
			Comment("Probe failure detail"),
		field.Time("checked_at").
			Default(time.Now),
	}
}

// Edges of the HealthSample.
func (HealthSample) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("runner", Runner.Type).
			Ref("health_samples").
			Field("runner_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HealthSample.
func (HealthSample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("runner_id", "checked_at"),
		index.Fields("checked_at"),
	}
}
