// Code generated by ent, DO NOT EDIT.

package healthsample

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the healthsample type in the database.
	Label = "health_sample"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunnerID holds the string denoting the runner_id field in the database.
	FieldRunnerID = "runner_id"
	// FieldHealth holds the string denoting the health field in the database.
	FieldHealth = "health"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldCheckedAt holds the string denoting the checked_at field in the database.
	FieldCheckedAt = "checked_at"
	// EdgeRunner holds the string denoting the runner edge name in mutations.
	EdgeRunner = "runner"
	// Table holds the table name of the healthsample in the database.
	Table = "health_samples"
	// RunnerTable is the table that holds the runner relation/edge.
	RunnerTable = "health_samples"
	// RunnerInverseTable is the table name for the Runner entity.
	// It exists in this package in order to avoid circular dependency with the "runner" package.
	RunnerInverseTable = "runners"
	// RunnerColumn is the table column denoting the runner relation/edge.
	RunnerColumn = "runner_id"
)

// Columns holds all SQL columns for healthsample fields.
var Columns = []string{
	FieldID,
	FieldRunnerID,
	FieldHealth,
	FieldLatencyMs,
	FieldError,
	FieldCheckedAt,
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
	// DefaultCheckedAt holds the default value on creation for the "checked_at" field.
	DefaultCheckedAt func() time.Time
)

// Health defines the type for the "health" enum field.
type Health string

// Health values.
const (
	HealthHealthy   Health = "healthy"
	HealthUnhealthy Health = "unhealthy"
)

func (h Health) String() string {
	return string(h)
}

// HealthValidator is a validator for the "health" field enum values. It is called by the builders before save.
func HealthValidator(h Health) error {
	switch h {
	case HealthHealthy, HealthUnhealthy:
		return nil
	default:
		return fmt.Errorf("healthsample: invalid enum value for health field: %q", h)
	}
}

// OrderOption defines the ordering options for the HealthSample queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunnerID orders the results by the runner_id field.
func ByRunnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunnerID, opts...).ToFunc()
}

// ByHealth orders the results by the health field.
func ByHealth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealth, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByCheckedAt orders the results by the checked_at field.
func ByCheckedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckedAt, opts...).ToFunc()
}

// ByRunnerField orders the results by runner field.
func ByRunnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunnerStep(), sql.OrderByField(field, opts...))
	}
}
func newRunnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunnerTable, RunnerColumn),
	)
}
