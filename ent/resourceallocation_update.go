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
	"github.com/baton-ci/baton/ent/predicate"
	"github.com/baton-ci/baton/ent/resourceallocation"
)

// ResourceAllocationUpdate is the builder for updating ResourceAllocation entities.
type ResourceAllocationUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceAllocationMutation
}

// Where appends a list predicates to the ResourceAllocationUpdate builder.
func (_u *ResourceAllocationUpdate) Where(ps ...predicate.ResourceAllocation) *ResourceAllocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCPUAllocated sets the "cpu_allocated" field.
func (_u *ResourceAllocationUpdate) SetCPUAllocated(v float64) *ResourceAllocationUpdate {
	_u.mutation.ResetCPUAllocated()
	_u.mutation.SetCPUAllocated(v)
	return _u
}

// SetNillableCPUAllocated sets the "cpu_allocated" field if the given value is not nil.
func (_u *ResourceAllocationUpdate) SetNillableCPUAllocated(v *float64) *ResourceAllocationUpdate {
	if v != nil {
		_u.SetCPUAllocated(*v)
	}
	return _u
}

// AddCPUAllocated adds value to the "cpu_allocated" field.
func (_u *ResourceAllocationUpdate) AddCPUAllocated(v float64) *ResourceAllocationUpdate {
	_u.mutation.AddCPUAllocated(v)
	return _u
}

// SetMemoryAllocated sets the "memory_allocated" field.
func (_u *ResourceAllocationUpdate) SetMemoryAllocated(v float64) *ResourceAllocationUpdate {
	_u.mutation.ResetMemoryAllocated()
	_u.mutation.SetMemoryAllocated(v)
	return _u
}

// SetNillableMemoryAllocated sets the "memory_allocated" field if the given value is not nil.
func (_u *ResourceAllocationUpdate) SetNillableMemoryAllocated(v *float64) *ResourceAllocationUpdate {
	if v != nil {
		_u.SetMemoryAllocated(*v)
	}
	return _u
}

// AddMemoryAllocated adds value to the "memory_allocated" field.
func (_u *ResourceAllocationUpdate) AddMemoryAllocated(v float64) *ResourceAllocationUpdate {
	_u.mutation.AddMemoryAllocated(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ResourceAllocationUpdate) SetState(v resourceallocation.State) *ResourceAllocationUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ResourceAllocationUpdate) SetNillableState(v *resourceallocation.State) *ResourceAllocationUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAllocatedAt sets the "allocated_at" field.
func (_u *ResourceAllocationUpdate) SetAllocatedAt(v time.Time) *ResourceAllocationUpdate {
	_u.mutation.SetAllocatedAt(v)
	return _u
}

// SetNillableAllocatedAt sets the "allocated_at" field if the given value is not nil.
func (_u *ResourceAllocationUpdate) SetNillableAllocatedAt(v *time.Time) *ResourceAllocationUpdate {
	if v != nil {
		_u.SetAllocatedAt(*v)
	}
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ResourceAllocationUpdate) SetReleasedAt(v time.Time) *ResourceAllocationUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ResourceAllocationUpdate) SetNillableReleasedAt(v *time.Time) *ResourceAllocationUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ResourceAllocationUpdate) ClearReleasedAt() *ResourceAllocationUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the ResourceAllocationMutation object of the builder.
func (_u *ResourceAllocationUpdate) Mutation() *ResourceAllocationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceAllocationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceAllocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceAllocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceAllocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceAllocationUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := resourceallocation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResourceAllocation.state": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResourceAllocation.execution"`)
	}
	if _u.mutation.RunnerCleared() && len(_u.mutation.RunnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResourceAllocation.runner"`)
	}
	return nil
}

func (_u *ResourceAllocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourceallocation.Table, resourceallocation.Columns, sqlgraph.NewFieldSpec(resourceallocation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CPUAllocated(); ok {
		_spec.SetField(resourceallocation.FieldCPUAllocated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUAllocated(); ok {
		_spec.AddField(resourceallocation.FieldCPUAllocated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryAllocated(); ok {
		_spec.SetField(resourceallocation.FieldMemoryAllocated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemoryAllocated(); ok {
		_spec.AddField(resourceallocation.FieldMemoryAllocated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(resourceallocation.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllocatedAt(); ok {
		_spec.SetField(resourceallocation.FieldAllocatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(resourceallocation.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(resourceallocation.FieldReleasedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourceallocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceAllocationUpdateOne is the builder for updating a single ResourceAllocation entity.
type ResourceAllocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceAllocationMutation
}

// SetCPUAllocated sets the "cpu_allocated" field.
func (_u *ResourceAllocationUpdateOne) SetCPUAllocated(v float64) *ResourceAllocationUpdateOne {
	_u.mutation.ResetCPUAllocated()
	_u.mutation.SetCPUAllocated(v)
	return _u
}

// SetNillableCPUAllocated sets the "cpu_allocated" field if the given value is not nil.
func (_u *ResourceAllocationUpdateOne) SetNillableCPUAllocated(v *float64) *ResourceAllocationUpdateOne {
	if v != nil {
		_u.SetCPUAllocated(*v)
	}
	return _u
}

// AddCPUAllocated adds value to the "cpu_allocated" field.
func (_u *ResourceAllocationUpdateOne) AddCPUAllocated(v float64) *ResourceAllocationUpdateOne {
	_u.mutation.AddCPUAllocated(v)
	return _u
}

// SetMemoryAllocated sets the "memory_allocated" field.
func (_u *ResourceAllocationUpdateOne) SetMemoryAllocated(v float64) *ResourceAllocationUpdateOne {
	_u.mutation.ResetMemoryAllocated()
	_u.mutation.SetMemoryAllocated(v)
	return _u
}

// SetNillableMemoryAllocated sets the "memory_allocated" field if the given value is not nil.
func (_u *ResourceAllocationUpdateOne) SetNillableMemoryAllocated(v *float64) *ResourceAllocationUpdateOne {
	if v != nil {
		_u.SetMemoryAllocated(*v)
	}
	return _u
}

// AddMemoryAllocated adds value to the "memory_allocated" field.
func (_u *ResourceAllocationUpdateOne) AddMemoryAllocated(v float64) *ResourceAllocationUpdateOne {
	_u.mutation.AddMemoryAllocated(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ResourceAllocationUpdateOne) SetState(v resourceallocation.State) *ResourceAllocationUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ResourceAllocationUpdateOne) SetNillableState(v *resourceallocation.State) *ResourceAllocationUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAllocatedAt sets the "allocated_at" field.
func (_u *ResourceAllocationUpdateOne) SetAllocatedAt(v time.Time) *ResourceAllocationUpdateOne {
	_u.mutation.SetAllocatedAt(v)
	return _u
}

// SetNillableAllocatedAt sets the "allocated_at" field if the given value is not nil.
func (_u *ResourceAllocationUpdateOne) SetNillableAllocatedAt(v *time.Time) *ResourceAllocationUpdateOne {
	if v != nil {
		_u.SetAllocatedAt(*v)
	}
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *ResourceAllocationUpdateOne) SetReleasedAt(v time.Time) *ResourceAllocationUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *ResourceAllocationUpdateOne) SetNillableReleasedAt(v *time.Time) *ResourceAllocationUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *ResourceAllocationUpdateOne) ClearReleasedAt() *ResourceAllocationUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the ResourceAllocationMutation object of the builder.
func (_u *ResourceAllocationUpdateOne) Mutation() *ResourceAllocationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResourceAllocationUpdate builder.
func (_u *ResourceAllocationUpdateOne) Where(ps ...predicate.ResourceAllocation) *ResourceAllocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceAllocationUpdateOne) Select(field string, fields ...string) *ResourceAllocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResourceAllocation entity.
func (_u *ResourceAllocationUpdateOne) Save(ctx context.Context) (*ResourceAllocation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceAllocationUpdateOne) SaveX(ctx context.Context) *ResourceAllocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceAllocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceAllocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceAllocationUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := resourceallocation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResourceAllocation.state": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResourceAllocation.execution"`)
	}
	if _u.mutation.RunnerCleared() && len(_u.mutation.RunnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ResourceAllocation.runner"`)
	}
	return nil
}

func (_u *ResourceAllocationUpdateOne) sqlSave(ctx context.Context) (_node *ResourceAllocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resourceallocation.Table, resourceallocation.Columns, sqlgraph.NewFieldSpec(resourceallocation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResourceAllocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resourceallocation.FieldID)
		for _, f := range fields {
			if !resourceallocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resourceallocation.FieldID {
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
	if value, ok := _u.mutation.CPUAllocated(); ok {
		_spec.SetField(resourceallocation.FieldCPUAllocated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCPUAllocated(); ok {
		_spec.AddField(resourceallocation.FieldCPUAllocated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryAllocated(); ok {
		_spec.SetField(resourceallocation.FieldMemoryAllocated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemoryAllocated(); ok {
		_spec.AddField(resourceallocation.FieldMemoryAllocated, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(resourceallocation.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllocatedAt(); ok {
		_spec.SetField(resourceallocation.FieldAllocatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(resourceallocation.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(resourceallocation.FieldReleasedAt, field.TypeTime)
	}
	_node = &ResourceAllocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourceallocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
