package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResourceAllocation holds the schema definition for the ResourceAllocation
// entity. One live ('allocated') row per assigned/running execution; released
// in the same transaction as the terminal transition. Live rows back both the
// capacity check and the advisory load scores.
type ResourceAllocation struct {
	ent.Schema
}

// Fields of the ResourceAllocation.
func (ResourceAllocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("execution_id").
			Immutable(),
		field.Int("runner_id").
			Immutable(),
		field.Float("cpu_allocated").
			Default(1.0).
			Comment("Advisory CPU units"),
		field.Float("memory_allocated").
			Default(512).
			Comment("Advisory MB"),
		field.Enum("state").
			Values("allocated", "released").
			Default("allocated"),
		field.Time("allocated_at").
			Default(time.Now),
		field.Time("released_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ResourceAllocation.
func (ResourceAllocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", Execution.Type).
			Ref("allocations").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
		edge.From("runner", Runner.Type).
			Ref("allocations").
			Field("runner_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ResourceAllocation.
// A partial UNIQUE index (one 'allocated' row per execution) lives in
// pkg/database/migrations.go — Ent/Atlas cannot express it.
func (ResourceAllocation) Indexes() []ent.Index {
	return []ent.Index{
		// Capacity counts and load scores scan live rows per runner
		index.Fields("runner_id", "state"),
		index.Fields("execution_id", "state"),
	}
}
