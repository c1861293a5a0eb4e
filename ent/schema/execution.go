package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/baton-ci/baton/pkg/models"
)

// Execution holds the schema definition for the Execution entity.
// One row per test-execution request; status transitions are CAS-guarded
// in pkg/store and never leave a terminal state.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("test_suite").
			Comment("Suite identifier, matched by rule globs"),
		field.String("environment").
			Comment("Target environment (e.g., 'staging', 'prod-eu')"),
		field.String("branch").
			Optional(),
		field.String("commit_sha").
			Optional(),
		field.String("requested_by").
			Optional().
			Comment("From proxy auth headers when present"),
		field.Int("priority").
			Default(50).
			Comment("0-100, higher schedules first"),
		field.Int64("estimated_duration_ms").
			Optional().
			Nillable(),
		field.String("requested_runner_type").
			Optional().
			Nillable().
			Comment("Pin to a runner type"),
		field.Int("requested_runner_id").
			Optional().
			Nillable().
			Comment("Pin to a specific runner"),
		field.Enum("status").
			Values("queued", "assigned", "running", "completed", "failed", "error", "cancelled").
			Default("queued"),
		field.String("status_reason").
			Optional().
			Comment("Set on every terminal transition"),
		field.Int("assigned_runner_id").
			Optional().
			Nillable(),
		field.Int("total_shards").
			Default(1).
			Positive(),
		field.JSON("shard_results", map[string]models.ShardResult{}).
			Optional().
			Comment("Keyed by decimal shard index; JSON object keys are strings"),
		field.JSON("aggregated_results", &models.AggregatedResults{}).
			Optional().
			Comment("Null until terminal; null on error/cancelled terminals"),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Unique(),
		field.String("webhook_url").
			Optional().
			Comment("Client notification target on terminal states"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("assigned_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("last_progress_at").
			Optional().
			Nillable().
			Comment("Bumped on the running signal and every shard result; the completion sweeper keys on it"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Execution.
func (Execution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("runner", Runner.Type).
			Ref("executions").
			Field("assigned_runner_id").
			Unique(),
		edge.To("allocations", ResourceAllocation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("test_suite"),
		index.Fields("environment"),

		// Scheduler claim ordering and sweeper scans
		index.Fields("status", "created_at"),
		index.Fields("status", "started_at"),
		index.Fields("status", "last_progress_at"),
		index.Fields("status", "assigned_at"),

		// Capacity counts per runner
		index.Fields("assigned_runner_id", "status"),
	}
}
