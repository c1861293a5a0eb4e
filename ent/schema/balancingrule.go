package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BalancingRule holds the schema definition for the BalancingRule entity.
// Rules are evaluated highest priority first; the first rule whose patterns
// match the execution decides the selection strategy. The round-robin cursor
// is persisted here and advanced only after a committed assignment.
type BalancingRule struct {
	ent.Schema
}

// Fields of the BalancingRule.
func (BalancingRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Bool("active").
			Default(true),
		field.Int("priority").
			Default(0).
			Comment("Higher evaluates first; ties break on id"),
		field.Enum("kind").
			Values("priority_based", "resource_based", "round_robin", "affinity", "type_filter").
			Comment("Wire format uses dashes; normalized at the API"),
		field.String("test_suite_pattern").
			Optional().
			Comment("Glob; empty matches every suite"),
		field.String("environment_pattern").
			Optional().
			Comment("Glob; empty matches every environment"),
		field.JSON("required_capabilities", []string{}).
			Optional().
			Comment("Affinity rules only"),
		field.String("runner_type_filter").
			Optional().
			Comment("Glob over the execution's requested runner type; doubles as the type-filter kind's candidate restriction"),
		field.Int("cursor").
			Default(0).
			Comment("Round-robin position, survives restarts"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the BalancingRule.
func (BalancingRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active", "priority"),
	}
}
