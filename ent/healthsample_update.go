// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/predicate"
)

// HealthSampleUpdate is the builder for updating HealthSample entities.
type HealthSampleUpdate struct {
	config
	hooks    []Hook
	mutation *HealthSampleMutation
}

// Where appends a list predicates to the HealthSampleUpdate builder.
func (_u *HealthSampleUpdate) Where(ps ...predicate.HealthSample) *HealthSampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHealth sets the "health" field.
func (_u *HealthSampleUpdate) SetHealth(v healthsample.Health) *HealthSampleUpdate {
	_u.mutation.SetHealth(v)
	return _u
}

// SetNillableHealth sets the "health" field if the given value is not nil.
func (_u *HealthSampleUpdate) SetNillableHealth(v *healthsample.Health) *HealthSampleUpdate {
	if v != nil {
		_u.SetHealth(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *HealthSampleUpdate) SetLatencyMs(v int64) *HealthSampleUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *HealthSampleUpdate) SetNillableLatencyMs(v *int64) *HealthSampleUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *HealthSampleUpdate) AddLatencyMs(v int64) *HealthSampleUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetError sets the "error" field.
func (_u *HealthSampleUpdate) SetError(v string) *HealthSampleUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *HealthSampleUpdate) SetNillableError(v *string) *HealthSampleUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *HealthSampleUpdate) ClearError() *HealthSampleUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetCheckedAt sets the "checked_at" field.
func (_u *HealthSampleUpdate) SetCheckedAt(v time.Time) *HealthSampleUpdate {
	_u.mutation.SetCheckedAt(v)
	return _u
}

// SetNillableCheckedAt sets the "checked_at" field if the given value is not nil.
func (_u *HealthSampleUpdate) SetNillableCheckedAt(v *time.Time) *HealthSampleUpdate {
	if v != nil {
		_u.SetCheckedAt(*v)
	}
	return _u
}

// Mutation returns the HealthSampleMutation object of the builder.
func (_u *HealthSampleUpdate) Mutation() *HealthSampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HealthSampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthSampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HealthSampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthSampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthSampleUpdate) check() error {
	if v, ok := _u.mutation.Health(); ok {
		if err := healthsample.HealthValidator(v); err != nil {
			return &ValidationError{Name: "health", err: fmt.Errorf(`ent: validator failed for field "HealthSample.health": %w`, err)}
		}
	}
	if _u.mutation.RunnerCleared() && len(_u.mutation.RunnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HealthSample.runner"`)
	}
	return nil
}

func (_u *HealthSampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthsample.Table, healthsample.Columns, sqlgraph.NewFieldSpec(healthsample.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Health(); ok {
		_spec.SetField(healthsample.FieldHealth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(healthsample.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(healthsample.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(healthsample.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(healthsample.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CheckedAt(); ok {
		_spec.SetField(healthsample.FieldCheckedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthsample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HealthSampleUpdateOne is the builder for updating a single HealthSample entity.
type HealthSampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HealthSampleMutation
}

// SetHealth sets the "health" field.
func (_u *HealthSampleUpdateOne) SetHealth(v healthsample.Health) *HealthSampleUpdateOne {
	_u.mutation.SetHealth(v)
	return _u
}

// SetNillableHealth sets the "health" field if the given value is not nil.
func (_u *HealthSampleUpdateOne) SetNillableHealth(v *healthsample.Health) *HealthSampleUpdateOne {
	if v != nil {
		_u.SetHealth(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *HealthSampleUpdateOne) SetLatencyMs(v int64) *HealthSampleUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *HealthSampleUpdateOne) SetNillableLatencyMs(v *int64) *HealthSampleUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *HealthSampleUpdateOne) AddLatencyMs(v int64) *HealthSampleUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetError sets the "error" field.
func (_u *HealthSampleUpdateOne) SetError(v string) *HealthSampleUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *HealthSampleUpdateOne) SetNillableError(v *string) *HealthSampleUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *HealthSampleUpdateOne) ClearError() *HealthSampleUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetCheckedAt sets the "checked_at" field.
func (_u *HealthSampleUpdateOne) SetCheckedAt(v time.Time) *HealthSampleUpdateOne {
	_u.mutation.SetCheckedAt(v)
	return _u
}

// SetNillableCheckedAt sets the "checked_at" field if the given value is not nil.
func (_u *HealthSampleUpdateOne) SetNillableCheckedAt(v *time.Time) *HealthSampleUpdateOne {
	if v != nil {
		_u.SetCheckedAt(*v)
	}
	return _u
}

// Mutation returns the HealthSampleMutation object of the builder.
func (_u *HealthSampleUpdateOne) Mutation() *HealthSampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the HealthSampleUpdate builder.
func (_u *HealthSampleUpdateOne) Where(ps ...predicate.HealthSample) *HealthSampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HealthSampleUpdateOne) Select(field string, fields ...string) *HealthSampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HealthSample entity.
func (_u *HealthSampleUpdateOne) Save(ctx context.Context) (*HealthSample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthSampleUpdateOne) SaveX(ctx context.Context) *HealthSample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HealthSampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthSampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthSampleUpdateOne) check() error {
	if v, ok := _u.mutation.Health(); ok {
		if err := healthsample.HealthValidator(v); err != nil {
			return &ValidationError{Name: "health", err: fmt.Errorf(`ent: validator failed for field "HealthSample.health": %w`, err)}
		}
	}
	if _u.mutation.RunnerCleared() && len(_u.mutation.RunnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HealthSample.runner"`)
	}
	return nil
}

func (_u *HealthSampleUpdateOne) sqlSave(ctx context.Context) (_node *HealthSample, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthsample.Table, healthsample.Columns, sqlgraph.NewFieldSpec(healthsample.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HealthSample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, healthsample.FieldID)
		for _, f := range fields {
			if !healthsample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != healthsample.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Health(); ok {
		_spec.SetField(healthsample.FieldHealth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(healthsample.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(healthsample.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(healthsample.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(healthsample.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CheckedAt(); ok {
		_spec.SetField(healthsample.FieldCheckedAt, field.TypeTime, value)
	}
	_node = &HealthSample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthsample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
