// Code generated by ent, DO NOT EDIT.

package runner

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the runner type in the database.
	Label = "runner"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldEndpointURL holds the string denoting the endpoint_url field in the database.
	FieldEndpointURL = "endpoint_url"
	// FieldHealthCheckURL holds the string denoting the health_check_url field in the database.
	FieldHealthCheckURL = "health_check_url"
	// FieldWebhookToken holds the string denoting the webhook_token field in the database.
	FieldWebhookToken = "webhook_token"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldMaxConcurrentJobs holds the string denoting the max_concurrent_jobs field in the database.
	FieldMaxConcurrentJobs = "max_concurrent_jobs"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldHealth holds the string denoting the health field in the database.
	FieldHealth = "health"
	// FieldLastHealthCheckAt holds the string denoting the last_health_check_at field in the database.
	FieldLastHealthCheckAt = "last_health_check_at"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// EdgeAllocations holds the string denoting the allocations edge name in mutations.
	EdgeAllocations = "allocations"
	// EdgeHealthSamples holds the string denoting the health_samples edge name in mutations.
	EdgeHealthSamples = "health_samples"
	// ExecutionFieldID holds the string denoting the ID field of the Execution.
	ExecutionFieldID = "execution_id"
	// Table holds the table name of the runner in the database.
	Table = "runners"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "executions"
	// ExecutionsInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionsInverseTable = "executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "assigned_runner_id"
	// AllocationsTable is the table that holds the allocations relation/edge.
	AllocationsTable = "resource_allocations"
	// AllocationsInverseTable is the table name for the ResourceAllocation entity.
	// It exists in this package in order to avoid circular dependency with the "resourceallocation" package.
	AllocationsInverseTable = "resource_allocations"
	// AllocationsColumn is the table column denoting the allocations relation/edge.
	AllocationsColumn = "runner_id"
	// HealthSamplesTable is the table that holds the health_samples relation/edge.
	HealthSamplesTable = "health_samples"
	// HealthSamplesInverseTable is the table name for the HealthSample entity.
	// It exists in this package in order to avoid circular dependency with the "healthsample" package.
	HealthSamplesInverseTable = "health_samples"
	// HealthSamplesColumn is the table column denoting the health_samples relation/edge.
	HealthSamplesColumn = "runner_id"
)

// Columns holds all SQL columns for runner fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldType,
	FieldEndpointURL,
	FieldHealthCheckURL,
	FieldWebhookToken,
	FieldCapabilities,
	FieldMaxConcurrentJobs,
	FieldPriority,
	FieldStatus,
	FieldHealth,
	FieldLastHealthCheckAt,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultMaxConcurrentJobs holds the default value on creation for the "max_concurrent_jobs" field.
	DefaultMaxConcurrentJobs int
	// MaxConcurrentJobsValidator is a validator for the "max_concurrent_jobs" field. It is called by the builders before save.
	MaxConcurrentJobsValidator func(int) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive         Status = "active"
	StatusPaused         Status = "paused"
	StatusDecommissioned Status = "decommissioned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusDecommissioned:
		return nil
	default:
		return fmt.Errorf("runner: invalid enum value for status field: %q", s)
	}
}

// Health defines the type for the "health" enum field.
type Health string

// HealthUnknown is the default value of the Health enum.
const DefaultHealth = HealthUnknown

// Health values.
const (
	HealthHealthy   Health = "healthy"
	HealthUnhealthy Health = "unhealthy"
	HealthUnknown   Health = "unknown"
)

func (h Health) String() string {
	return string(h)
}

// HealthValidator is a validator for the "health" field enum values. It is called by the builders before save.
func HealthValidator(h Health) error {
	switch h {
	case HealthHealthy, HealthUnhealthy, HealthUnknown:
		return nil
	default:
		return fmt.Errorf("runner: invalid enum value for health field: %q", h)
	}
}

// OrderOption defines the ordering options for the Runner queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByEndpointURL orders the results by the endpoint_url field.
func ByEndpointURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpointURL, opts...).ToFunc()
}

// ByHealthCheckURL orders the results by the health_check_url field.
func ByHealthCheckURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthCheckURL, opts...).ToFunc()
}

// ByWebhookToken orders the results by the webhook_token field.
func ByWebhookToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookToken, opts...).ToFunc()
}

// ByMaxConcurrentJobs orders the results by the max_concurrent_jobs field.
func ByMaxConcurrentJobs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxConcurrentJobs, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByHealth orders the results by the health field.
func ByHealth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealth, opts...).ToFunc()
}

// ByLastHealthCheckAt orders the results by the last_health_check_at field.
func ByLastHealthCheckAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHealthCheckAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByHealthSamplesCount orders the results by health_samples count.
func ByHealthSamplesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHealthSamplesStep(), opts...)
	}
}

// ByHealthSamples orders the results by health_samples terms.
func ByHealthSamples(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHealthSamplesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, ExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
func newAllocationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AllocationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AllocationsTable, AllocationsColumn),
	)
}
func newHealthSamplesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HealthSamplesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HealthSamplesTable, HealthSamplesColumn),
	)
}
