// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_channel_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[1], AuditEventsColumns[0]},
			},
			{
				Name:    "auditevent_execution_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[2]},
			},
			{
				Name:    "auditevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[4]},
			},
		},
	}
	// BalancingRulesColumns holds the columns for the "balancing_rules" table.
	BalancingRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"priority_based", "resource_based", "round_robin", "affinity", "type_filter"}},
		{Name: "test_suite_pattern", Type: field.TypeString, Nullable: true},
		{Name: "environment_pattern", Type: field.TypeString, Nullable: true},
		{Name: "required_capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "runner_type_filter", Type: field.TypeString, Nullable: true},
		{Name: "cursor", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BalancingRulesTable holds the schema information for the "balancing_rules" table.
	BalancingRulesTable = &schema.Table{
		Name:       "balancing_rules",
		Columns:    BalancingRulesColumns,
		PrimaryKey: []*schema.Column{BalancingRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "balancingrule_active_priority",
				Unique:  false,
				Columns: []*schema.Column{BalancingRulesColumns[2], BalancingRulesColumns[3]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "test_suite", Type: field.TypeString},
		{Name: "environment", Type: field.TypeString},
		{Name: "branch", Type: field.TypeString, Nullable: true},
		{Name: "commit_sha", Type: field.TypeString, Nullable: true},
		{Name: "requested_by", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 50},
		{Name: "estimated_duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "requested_runner_type", Type: field.TypeString, Nullable: true},
		{Name: "requested_runner_id", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "assigned", "running", "completed", "failed", "error", "cancelled"}, Default: "queued"},
		{Name: "status_reason", Type: field.TypeString, Nullable: true},
		{Name: "total_shards", Type: field.TypeInt, Default: 1},
		{Name: "shard_results", Type: field.TypeJSON, Nullable: true},
		{Name: "aggregated_results", Type: field.TypeJSON, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_progress_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "assigned_runner_id", Type: field.TypeInt, Nullable: true},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "executions_runners_executions",
				Columns:    []*schema.Column{ExecutionsColumns[23]},
				RefColumns: []*schema.Column{RunnersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "execution_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[10]},
			},
			{
				Name:    "execution_test_suite",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1]},
			},
			{
				Name:    "execution_environment",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2]},
			},
			{
				Name:    "execution_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[10], ExecutionsColumns[18]},
			},
			{
				Name:    "execution_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[10], ExecutionsColumns[20]},
			},
			{
				Name:    "execution_status_last_progress_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[10], ExecutionsColumns[21]},
			},
			{
				Name:    "execution_status_assigned_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[10], ExecutionsColumns[19]},
			},
			{
				Name:    "execution_assigned_runner_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[23], ExecutionsColumns[10]},
			},
		},
	}
	// HealthSamplesColumns holds the columns for the "health_samples" table.
	HealthSamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "health", Type: field.TypeEnum, Enums: []string{"healthy", "unhealthy"}},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "checked_at", Type: field.TypeTime},
		{Name: "runner_id", Type: field.TypeInt},
	}
	// HealthSamplesTable holds the schema information for the "health_samples" table.
	HealthSamplesTable = &schema.Table{
		Name:       "health_samples",
		Columns:    HealthSamplesColumns,
		PrimaryKey: []*schema.Column{HealthSamplesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "health_samples_runners_health_samples",
				Columns:    []*schema.Column{HealthSamplesColumns[5]},
				RefColumns: []*schema.Column{RunnersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "healthsample_runner_id_checked_at",
				Unique:  false,
				Columns: []*schema.Column{HealthSamplesColumns[5], HealthSamplesColumns[4]},
			},
			{
				Name:    "healthsample_checked_at",
				Unique:  false,
				Columns: []*schema.Column{HealthSamplesColumns[4]},
			},
		},
	}
	// ResourceAllocationsColumns holds the columns for the "resource_allocations" table.
	ResourceAllocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cpu_allocated", Type: field.TypeFloat64, Default: 1},
		{Name: "memory_allocated", Type: field.TypeFloat64, Default: 512},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"allocated", "released"}, Default: "allocated"},
		{Name: "allocated_at", Type: field.TypeTime},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "runner_id", Type: field.TypeInt},
	}
	// ResourceAllocationsTable holds the schema information for the "resource_allocations" table.
	ResourceAllocationsTable = &schema.Table{
		Name:       "resource_allocations",
		Columns:    ResourceAllocationsColumns,
		PrimaryKey: []*schema.Column{ResourceAllocationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "resource_allocations_executions_allocations",
				Columns:    []*schema.Column{ResourceAllocationsColumns[6]},
				RefColumns: []*schema.Column{ExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "resource_allocations_runners_allocations",
				Columns:    []*schema.Column{ResourceAllocationsColumns[7]},
				RefColumns: []*schema.Column{RunnersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "resourceallocation_runner_id_state",
				Unique:  false,
				Columns: []*schema.Column{ResourceAllocationsColumns[7], ResourceAllocationsColumns[3]},
			},
			{
				Name:    "resourceallocation_execution_id_state",
				Unique:  false,
				Columns: []*schema.Column{ResourceAllocationsColumns[6], ResourceAllocationsColumns[3]},
			},
		},
	}
	// RunnersColumns holds the columns for the "runners" table.
	RunnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "endpoint_url", Type: field.TypeString},
		{Name: "health_check_url", Type: field.TypeString, Nullable: true},
		{Name: "webhook_token", Type: field.TypeString},
		{Name: "capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "max_concurrent_jobs", Type: field.TypeInt, Default: 1},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "decommissioned"}, Default: "active"},
		{Name: "health", Type: field.TypeEnum, Enums: []string{"healthy", "unhealthy", "unknown"}, Default: "unknown"},
		{Name: "last_health_check_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RunnersTable holds the schema information for the "runners" table.
	RunnersTable = &schema.Table{
		Name:       "runners",
		Columns:    RunnersColumns,
		PrimaryKey: []*schema.Column{RunnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runner_type",
				Unique:  false,
				Columns: []*schema.Column{RunnersColumns[2]},
			},
			{
				Name:    "runner_status_health",
				Unique:  false,
				Columns: []*schema.Column{RunnersColumns[9], RunnersColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEventsTable,
		BalancingRulesTable,
		ExecutionsTable,
		HealthSamplesTable,
		ResourceAllocationsTable,
		RunnersTable,
	}
)

func init() {
	ExecutionsTable.ForeignKeys[0].RefTable = RunnersTable
	HealthSamplesTable.ForeignKeys[0].RefTable = RunnersTable
	ResourceAllocationsTable.ForeignKeys[0].RefTable = ExecutionsTable
	ResourceAllocationsTable.ForeignKeys[1].RefTable = RunnersTable
}
