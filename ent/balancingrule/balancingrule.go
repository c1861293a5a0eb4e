// Code generated by ent, DO NOT EDIT.

package balancingrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the balancingrule type in the database.
	Label = "balancing_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTestSuitePattern holds the string denoting the test_suite_pattern field in the database.
	FieldTestSuitePattern = "test_suite_pattern"
	// FieldEnvironmentPattern holds the string denoting the environment_pattern field in the database.
	FieldEnvironmentPattern = "environment_pattern"
	// FieldRequiredCapabilities holds the string denoting the required_capabilities field in the database.
	FieldRequiredCapabilities = "required_capabilities"
	// FieldRunnerTypeFilter holds the string denoting the runner_type_filter field in the database.
	FieldRunnerTypeFilter = "runner_type_filter"
	// FieldCursor holds the string denoting the cursor field in the database.
	FieldCursor = "cursor"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the balancingrule in the database.
	Table = "balancing_rules"
)

// Columns holds all SQL columns for balancingrule fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldActive,
	FieldPriority,
	FieldKind,
	FieldTestSuitePattern,
	FieldEnvironmentPattern,
	FieldRequiredCapabilities,
	FieldRunnerTypeFilter,
	FieldCursor,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCursor holds the default value on creation for the "cursor" field.
	DefaultCursor int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindPriorityBased Kind = "priority_based"
	KindResourceBased Kind = "resource_based"
	KindRoundRobin    Kind = "round_robin"
	KindAffinity      Kind = "affinity"
	KindTypeFilter    Kind = "type_filter"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindPriorityBased, KindResourceBased, KindRoundRobin, KindAffinity, KindTypeFilter:
		return nil
	default:
		return fmt.Errorf("balancingrule: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the BalancingRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTestSuitePattern orders the results by the test_suite_pattern field.
func ByTestSuitePattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestSuitePattern, opts...).ToFunc()
}

// ByEnvironmentPattern orders the results by the environment_pattern field.
func ByEnvironmentPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnvironmentPattern, opts...).ToFunc()
}

// ByRunnerTypeFilter orders the results by the runner_type_filter field.
func ByRunnerTypeFilter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunnerTypeFilter, opts...).ToFunc()
}

// ByCursor orders the results by the cursor field.
func ByCursor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCursor, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
