// Code generated by ent, DO NOT EDIT.

package resourceallocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/baton-ci/baton/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLTE(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldExecutionID, v))
}

// RunnerID applies equality check predicate on the "runner_id" field. It's identical to RunnerIDEQ.
func RunnerID(v int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldRunnerID, v))
}

// CPUAllocated applies equality check predicate on the "cpu_allocated" field. It's identical to CPUAllocatedEQ.
func CPUAllocated(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldCPUAllocated, v))
}

// MemoryAllocated applies equality check predicate on the "memory_allocated" field. It's identical to MemoryAllocatedEQ.
func MemoryAllocated(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldMemoryAllocated, v))
}

// AllocatedAt applies equality check predicate on the "allocated_at" field. It's identical to AllocatedAtEQ.
func AllocatedAt(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldAllocatedAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldReleasedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldContainsFold(FieldExecutionID, v))
}

// RunnerIDEQ applies the EQ predicate on the "runner_id" field.
func RunnerIDEQ(v int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldRunnerID, v))
}

// RunnerIDNEQ applies the NEQ predicate on the "runner_id" field.
func RunnerIDNEQ(v int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNEQ(FieldRunnerID, v))
}

// RunnerIDIn applies the In predicate on the "runner_id" field.
func RunnerIDIn(vs ...int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIn(FieldRunnerID, vs...))
}

// RunnerIDNotIn applies the NotIn predicate on the "runner_id" field.
func RunnerIDNotIn(vs ...int) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotIn(FieldRunnerID, vs...))
}

// CPUAllocatedEQ applies the EQ predicate on the "cpu_allocated" field.
func CPUAllocatedEQ(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldCPUAllocated, v))
}

// CPUAllocatedNEQ applies the NEQ predicate on the "cpu_allocated" field.
func CPUAllocatedNEQ(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNEQ(FieldCPUAllocated, v))
}

// CPUAllocatedIn applies the In predicate on the "cpu_allocated" field.
func CPUAllocatedIn(vs ...float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIn(FieldCPUAllocated, vs...))
}

// CPUAllocatedNotIn applies the NotIn predicate on the "cpu_allocated" field.
func CPUAllocatedNotIn(vs ...float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotIn(FieldCPUAllocated, vs...))
}

// CPUAllocatedGT applies the GT predicate on the "cpu_allocated" field.
func CPUAllocatedGT(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGT(FieldCPUAllocated, v))
}

// CPUAllocatedGTE applies the GTE predicate on the "cpu_allocated" field.
func CPUAllocatedGTE(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGTE(FieldCPUAllocated, v))
}

// CPUAllocatedLT applies the LT predicate on the "cpu_allocated" field.
func CPUAllocatedLT(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLT(FieldCPUAllocated, v))
}

// CPUAllocatedLTE applies the LTE predicate on the "cpu_allocated" field.
func CPUAllocatedLTE(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLTE(FieldCPUAllocated, v))
}

// MemoryAllocatedEQ applies the EQ predicate on the "memory_allocated" field.
func MemoryAllocatedEQ(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldMemoryAllocated, v))
}

// MemoryAllocatedNEQ applies the NEQ predicate on the "memory_allocated" field.
func MemoryAllocatedNEQ(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNEQ(FieldMemoryAllocated, v))
}

// MemoryAllocatedIn applies the In predicate on the "memory_allocated" field.
func MemoryAllocatedIn(vs ...float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIn(FieldMemoryAllocated, vs...))
}

// MemoryAllocatedNotIn applies the NotIn predicate on the "memory_allocated" field.
func MemoryAllocatedNotIn(vs ...float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotIn(FieldMemoryAllocated, vs...))
}

// MemoryAllocatedGT applies the GT predicate on the "memory_allocated" field.
func MemoryAllocatedGT(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGT(FieldMemoryAllocated, v))
}

// MemoryAllocatedGTE applies the GTE predicate on the "memory_allocated" field.
func MemoryAllocatedGTE(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGTE(FieldMemoryAllocated, v))
}

// MemoryAllocatedLT applies the LT predicate on the "memory_allocated" field.
func MemoryAllocatedLT(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLT(FieldMemoryAllocated, v))
}

// MemoryAllocatedLTE applies the LTE predicate on the "memory_allocated" field.
func MemoryAllocatedLTE(v float64) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLTE(FieldMemoryAllocated, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotIn(FieldState, vs...))
}

// AllocatedAtEQ applies the EQ predicate on the "allocated_at" field.
func AllocatedAtEQ(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldAllocatedAt, v))
}

// AllocatedAtNEQ applies the NEQ predicate on the "allocated_at" field.
func AllocatedAtNEQ(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNEQ(FieldAllocatedAt, v))
}

// AllocatedAtIn applies the In predicate on the "allocated_at" field.
func AllocatedAtIn(vs ...time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIn(FieldAllocatedAt, vs...))
}

// AllocatedAtNotIn applies the NotIn predicate on the "allocated_at" field.
func AllocatedAtNotIn(vs ...time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotIn(FieldAllocatedAt, vs...))
}

// AllocatedAtGT applies the GT predicate on the "allocated_at" field.
func AllocatedAtGT(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGT(FieldAllocatedAt, v))
}

// AllocatedAtGTE applies the GTE predicate on the "allocated_at" field.
func AllocatedAtGTE(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGTE(FieldAllocatedAt, v))
}

// AllocatedAtLT applies the LT predicate on the "allocated_at" field.
func AllocatedAtLT(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLT(FieldAllocatedAt, v))
}

// AllocatedAtLTE applies the LTE predicate on the "allocated_at" field.
func AllocatedAtLTE(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLTE(FieldAllocatedAt, v))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.FieldNotNull(FieldReleasedAt))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.ResourceAllocation {
	return predicate.ResourceAllocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.Execution) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRunner applies the HasEdge predicate on the "runner" edge.
func HasRunner() predicate.ResourceAllocation {
	return predicate.ResourceAllocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunnerTable, RunnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunnerWith applies the HasEdge predicate on the "runner" edge with a given conditions (other predicates).
func HasRunnerWith(preds ...predicate.Runner) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(func(s *sql.Selector) {
		step := newRunnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResourceAllocation) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResourceAllocation) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResourceAllocation) predicate.ResourceAllocation {
	return predicate.ResourceAllocation(sql.NotPredicates(p))
}
