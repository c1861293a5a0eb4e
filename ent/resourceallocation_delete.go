// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/baton-ci/baton/ent/predicate"
	"github.com/baton-ci/baton/ent/resourceallocation"
)

// ResourceAllocationDelete is the builder for deleting a ResourceAllocation entity.
type ResourceAllocationDelete struct {
	config
	hooks    []Hook
	mutation *ResourceAllocationMutation
}

// Where appends a list predicates to the ResourceAllocationDelete builder.
func (_d *ResourceAllocationDelete) Where(ps ...predicate.ResourceAllocation) *ResourceAllocationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ResourceAllocationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResourceAllocationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ResourceAllocationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(resourceallocation.Table, sqlgraph.NewFieldSpec(resourceallocation.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ResourceAllocationDeleteOne is the builder for deleting a single ResourceAllocation entity.
type ResourceAllocationDeleteOne struct {
	_d *ResourceAllocationDelete
}

// Where appends a list predicates to the ResourceAllocationDelete builder.
func (_d *ResourceAllocationDeleteOne) Where(ps ...predicate.ResourceAllocation) *ResourceAllocationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ResourceAllocationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{resourceallocation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ResourceAllocationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
