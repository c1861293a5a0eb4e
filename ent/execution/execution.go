// Code generated by ent, DO NOT EDIT.

package execution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the execution type in the database.
	Label = "execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldTestSuite holds the string denoting the test_suite field in the database.
	FieldTestSuite = "test_suite"
	// FieldEnvironment holds the string denoting the environment field in the database.
	FieldEnvironment = "environment"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldCommitSha holds the string denoting the commit_sha field in the database.
	FieldCommitSha = "commit_sha"
	// FieldRequestedBy holds the string denoting the requested_by field in the database.
	FieldRequestedBy = "requested_by"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldEstimatedDurationMs holds the string denoting the estimated_duration_ms field in the database.
	FieldEstimatedDurationMs = "estimated_duration_ms"
	// FieldRequestedRunnerType holds the string denoting the requested_runner_type field in the database.
	FieldRequestedRunnerType = "requested_runner_type"
	// FieldRequestedRunnerID holds the string denoting the requested_runner_id field in the database.
	FieldRequestedRunnerID = "requested_runner_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusReason holds the string denoting the status_reason field in the database.
	FieldStatusReason = "status_reason"
	// FieldAssignedRunnerID holds the string denoting the assigned_runner_id field in the database.
	FieldAssignedRunnerID = "assigned_runner_id"
	// FieldTotalShards holds the string denoting the total_shards field in the database.
	FieldTotalShards = "total_shards"
	// FieldShardResults holds the string denoting the shard_results field in the database.
	FieldShardResults = "shard_results"
	// FieldAggregatedResults holds the string denoting the aggregated_results field in the database.
	FieldAggregatedResults = "aggregated_results"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldWebhookURL holds the string denoting the webhook_url field in the database.
	FieldWebhookURL = "webhook_url"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldLastProgressAt holds the string denoting the last_progress_at field in the database.
	FieldLastProgressAt = "last_progress_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeRunner holds the string denoting the runner edge name in mutations.
	EdgeRunner = "runner"
	// EdgeAllocations holds the string denoting the allocations edge name in mutations.
	EdgeAllocations = "allocations"
	// RunnerFieldID holds the string denoting the ID field of the Runner.
	RunnerFieldID = "id"
	// ResourceAllocationFieldID holds the string denoting the ID field of the ResourceAllocation.
	ResourceAllocationFieldID = "id"
	// Table holds the table name of the execution in the database.
	Table = "executions"
	// RunnerTable is the table that holds the runner relation/edge.
	RunnerTable = "executions"
	// RunnerInverseTable is the table name for the Runner entity.
	// It exists in this package in order to avoid circular dependency with the "runner" package.
	RunnerInverseTable = "runners"
	// RunnerColumn is the table column denoting the runner relation/edge.
	RunnerColumn = "assigned_runner_id"
	// AllocationsTable is the table that holds the allocations relation/edge.
	AllocationsTable = "resource_allocations"
	// AllocationsInverseTable is the table name for the ResourceAllocation entity.
	// It exists in this package in order to avoid circular dependency with the "resourceallocation" package.
	AllocationsInverseTable = "resource_allocations"
	// AllocationsColumn is the table column denoting the allocations relation/edge.
	AllocationsColumn = "execution_id"
)

// Columns holds all SQL columns for execution fields.
var Columns = []string{
	FieldID,
	FieldTestSuite,
	FieldEnvironment,
	FieldBranch,
	FieldCommitSha,
	FieldRequestedBy,
	FieldPriority,
	FieldEstimatedDurationMs,
	FieldRequestedRunnerType,
	FieldRequestedRunnerID,
	FieldStatus,
	FieldStatusReason,
	FieldAssignedRunnerID,
	FieldTotalShards,
	FieldShardResults,
	FieldAggregatedResults,
	FieldIdempotencyKey,
	FieldWebhookURL,
	FieldMetadata,
	FieldCreatedAt,
	FieldAssignedAt,
	FieldStartedAt,
	FieldLastProgressAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultTotalShards holds the default value on creation for the "total_shards" field.
	DefaultTotalShards int
	// TotalShardsValidator is a validator for the "total_shards" field. It is called by the builders before save.
	TotalShardsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusAssigned  Status = "assigned"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusError     Status = "error"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusAssigned, StatusRunning, StatusCompleted, StatusFailed, StatusError, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("execution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Execution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTestSuite orders the results by the test_suite field.
func ByTestSuite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestSuite, opts...).ToFunc()
}

// ByEnvironment orders the results by the environment field.
func ByEnvironment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnvironment, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByCommitSha orders the results by the commit_sha field.
func ByCommitSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitSha, opts...).ToFunc()
}

// ByRequestedBy orders the results by the requested_by field.
func ByRequestedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedBy, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByEstimatedDurationMs orders the results by the estimated_duration_ms field.
func ByEstimatedDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDurationMs, opts...).ToFunc()
}

// ByRequestedRunnerType orders the results by the requested_runner_type field.
func ByRequestedRunnerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedRunnerType, opts...).ToFunc()
}

// ByRequestedRunnerID orders the results by the requested_runner_id field.
func ByRequestedRunnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedRunnerID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStatusReason orders the results by the status_reason field.
func ByStatusReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusReason, opts...).ToFunc()
}

// ByAssignedRunnerID orders the results by the assigned_runner_id field.
func ByAssignedRunnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedRunnerID, opts...).ToFunc()
}

// ByTotalShards orders the results by the total_shards field.
func ByTotalShards(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalShards, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByWebhookURL orders the results by the webhook_url field.
func ByWebhookURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByLastProgressAt orders the results by the last_progress_at field.
func ByLastProgressAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProgressAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByRunnerField orders the results by runner field.
func ByRunnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunnerStep(), sql.OrderByField(field, opts...))
	}
}

// ByAllocationsCount orders the results by allocations count.
func ByAllocationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAllocationsStep(), opts...)
	}
}

// ByAllocations orders the results by allocations terms.
func ByAllocations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAllocationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRunnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunnerInverseTable, RunnerFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunnerTable, RunnerColumn),
	)
}
func newAllocationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AllocationsInverseTable, ResourceAllocationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AllocationsTable, AllocationsColumn),
	)
}
