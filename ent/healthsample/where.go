// Code generated by ent, DO NOT EDIT.

package healthsample

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/baton-ci/baton/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldLTE(FieldID, id))
}

// RunnerID applies equality check predicate on the "runner_id" field. It's identical to RunnerIDEQ.
func RunnerID(v int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldRunnerID, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldLatencyMs, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldError, v))
}

// CheckedAt applies equality check predicate on the "checked_at" field. It's identical to CheckedAtEQ.
func CheckedAt(v time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldCheckedAt, v))
}

// RunnerIDEQ applies the EQ predicate on the "runner_id" field.
func RunnerIDEQ(v int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldRunnerID, v))
}

// RunnerIDNEQ applies the NEQ predicate on the "runner_id" field.
func RunnerIDNEQ(v int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNEQ(FieldRunnerID, v))
}

// RunnerIDIn applies the In predicate on the "runner_id" field.
func RunnerIDIn(vs ...int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldIn(FieldRunnerID, vs...))
}

// RunnerIDNotIn applies the NotIn predicate on the "runner_id" field.
func RunnerIDNotIn(vs ...int) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNotIn(FieldRunnerID, vs...))
}

// HealthEQ applies the EQ predicate on the "health" field.
func HealthEQ(v Health) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldHealth, v))
}

// HealthNEQ applies the NEQ predicate on the "health" field.
func HealthNEQ(v Health) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNEQ(FieldHealth, v))
}

// HealthIn applies the In predicate on the "health" field.
func HealthIn(vs ...Health) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldIn(FieldHealth, vs...))
}

// HealthNotIn applies the NotIn predicate on the "health" field.
func HealthNotIn(vs ...Health) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNotIn(FieldHealth, vs...))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldLTE(FieldLatencyMs, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.HealthSample {
	return predicate.HealthSample(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldContainsFold(FieldError, v))
}

// CheckedAtEQ applies the EQ predicate on the "checked_at" field.
func CheckedAtEQ(v time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldEQ(FieldCheckedAt, v))
}

// CheckedAtNEQ applies the NEQ predicate on the "checked_at" field.
func CheckedAtNEQ(v time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNEQ(FieldCheckedAt, v))
}

// CheckedAtIn applies the In predicate on the "checked_at" field.
func CheckedAtIn(vs ...time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldIn(FieldCheckedAt, vs...))
}

// CheckedAtNotIn applies the NotIn predicate on the "checked_at" field.
func CheckedAtNotIn(vs ...time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldNotIn(FieldCheckedAt, vs...))
}

// CheckedAtGT applies the GT predicate on the "checked_at" field.
func CheckedAtGT(v time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldGT(FieldCheckedAt, v))
}

// CheckedAtGTE applies the GTE predicate on the "checked_at" field.
func CheckedAtGTE(v time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldGTE(FieldCheckedAt, v))
}

// CheckedAtLT applies the LT predicate on the "checked_at" field.
func CheckedAtLT(v time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldLT(FieldCheckedAt, v))
}

// CheckedAtLTE applies the LTE predicate on the "checked_at" field.
func CheckedAtLTE(v time.Time) predicate.HealthSample {
	return predicate.HealthSample(sql.FieldLTE(FieldCheckedAt, v))
}

// HasRunner applies the HasEdge predicate on the "runner" edge.
func HasRunner() predicate.HealthSample {
	return predicate.HealthSample(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunnerTable, RunnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunnerWith applies the HasEdge predicate on the "runner" edge with a given conditions (other predicates).
func HasRunnerWith(preds ...predicate.Runner) predicate.HealthSample {
	return predicate.HealthSample(func(s *sql.Selector) {
		step := newRunnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HealthSample) predicate.HealthSample {
	return predicate.HealthSample(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HealthSample) predicate.HealthSample {
	return predicate.HealthSample(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HealthSample) predicate.HealthSample {
	return predicate.HealthSample(sql.NotPredicates(p))
}
