package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Runner holds the schema definition for the Runner entity.
// Runners are externally managed; baton tracks registration, lifecycle
// status (operator-driven) and health (prober-driven) separately.
type Runner struct {
	ent.Schema
}

// Fields of the Runner.
func (Runner) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Natural key; duplicate registration is a conflict"),
		field.String("type").
			Comment("Driver routing key (e.g., 'webhook', 'docker', 'grpc-agent')"),
		field.String("endpoint_url").
			Comment("Where the driver reaches the runner"),
		field.String("health_check_url").
			Optional().
			Comment("Absent means health stays 'unknown'"),
		field.String("webhook_token").
			Sensitive().
			Comment("Bearer token the runner presents on /webhooks/runner"),
		field.JSON("capabilities", []string{}).
			Optional().
			Comment("Matched by affinity rules"),
		field.Int("max_concurrent_jobs").
			Default(1).
			Positive(),
		field.Int("priority").
			Default(0).
			Comment("Higher wins under priority-based selection"),
		field.Enum("status").
			Values("active", "paused", "decommissioned").
			Default("active"),
		field.Enum("health").
			Values("healthy", "unhealthy", "unknown").
			Default("unknown"),
		field.Time("last_health_check_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Driver-specific settings (e.g., docker image)"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Runner.
func (Runner) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("executions", Execution.Type),
		edge.To("allocations", ResourceAllocation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("health_samples", HealthSample.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Runner.
func (Runner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("status", "health"),
	}
}
