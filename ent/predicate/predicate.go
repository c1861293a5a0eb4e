// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditEvent is the predicate function for auditevent builders.
type AuditEvent func(*sql.Selector)

// BalancingRule is the predicate function for balancingrule builders.
type BalancingRule func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// HealthSample is the predicate function for healthsample builders.
type HealthSample func(*sql.Selector)

// ResourceAllocation is the predicate function for resourceallocation builders.
type ResourceAllocation func(*sql.Selector)

// Runner is the predicate function for runner builders.
type Runner func(*sql.Selector)
