// Code generated by ent, DO NOT EDIT.

package resourceallocation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the resourceallocation type in the database.
	Label = "resource_allocation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldRunnerID holds the string denoting the runner_id field in the database.
	FieldRunnerID = "runner_id"
	// FieldCPUAllocated holds the string denoting the cpu_allocated field in the database.
	FieldCPUAllocated = "cpu_allocated"
	// FieldMemoryAllocated holds the string denoting the memory_allocated field in the database.
	FieldMemoryAllocated = "memory_allocated"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldAllocatedAt holds the string denoting the allocated_at field in the database.
	FieldAllocatedAt = "allocated_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// EdgeRunner holds the string denoting the runner edge name in mutations.
	EdgeRunner = "runner"
	// ExecutionFieldID holds the string denoting the ID field of the Execution.
	ExecutionFieldID = "execution_id"
	// Table holds the table name of the resourceallocation in the database.
	Table = "resource_allocations"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "resource_allocations"
	// ExecutionInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionInverseTable = "executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "execution_id"
	// RunnerTable is the table that holds the runner relation/edge.
	RunnerTable = "resource_allocations"
	// RunnerInverseTable is the table name for the Runner entity.
	// It exists in this package in order to avoid circular dependency with the "runner" package.
	RunnerInverseTable = "runners"
	// RunnerColumn is the table column denoting the runner relation/edge.
	RunnerColumn = "runner_id"
)

// Columns holds all SQL columns for resourceallocation fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldRunnerID,
	FieldCPUAllocated,
	FieldMemoryAllocated,
	FieldState,
	FieldAllocatedAt,
	FieldReleasedAt,
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
	// DefaultCPUAllocated holds the default value on creation for the "cpu_allocated" field.
	DefaultCPUAllocated float64
	// DefaultMemoryAllocated holds the default value on creation for the "memory_allocated" field.
	DefaultMemoryAllocated float64
	// DefaultAllocatedAt holds the default value on creation for the "allocated_at" field.
	DefaultAllocatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateAllocated is the default value of the State enum.
const DefaultState = StateAllocated

// State values.
const (
	StateAllocated State = "allocated"
	StateReleased  State = "released"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateAllocated, StateReleased:
		return nil
	default:
		return fmt.Errorf("resourceallocation: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResourceAllocation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByRunnerID orders the results by the runner_id field.
func ByRunnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunnerID, opts...).ToFunc()
}

// ByCPUAllocated orders the results by the cpu_allocated field.
func ByCPUAllocated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPUAllocated, opts...).ToFunc()
}

// ByMemoryAllocated orders the results by the memory_allocated field.
func ByMemoryAllocated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryAllocated, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByAllocatedAt orders the results by the allocated_at field.
func ByAllocatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllocatedAt, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}

// ByRunnerField orders the results by runner field.
func ByRunnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunnerStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, ExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
func newRunnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunnerTable, RunnerColumn),
	)
}
