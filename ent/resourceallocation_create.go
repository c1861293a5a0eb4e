// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
)

// ResourceAllocationCreate is the builder for creating a ResourceAllocation entity.
type ResourceAllocationCreate struct {
	config
	mutation *ResourceAllocationMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ResourceAllocationCreate) SetExecutionID(v string) *ResourceAllocationCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetRunnerID sets the "runner_id" field.
func (_c *ResourceAllocationCreate) SetRunnerID(v int) *ResourceAllocationCreate {
	_c.mutation.SetRunnerID(v)
	return _c
}

// SetCPUAllocated sets the "cpu_allocated" field.
func (_c *ResourceAllocationCreate) SetCPUAllocated(v float64) *ResourceAllocationCreate {
	_c.mutation.SetCPUAllocated(v)
	return _c
}

// SetNillableCPUAllocated sets the "cpu_allocated" field if the given value is not nil.
func (_c *ResourceAllocationCreate) SetNillableCPUAllocated(v *float64) *ResourceAllocationCreate {
	if v != nil {
		_c.SetCPUAllocated(*v)
	}
	return _c
}

// SetMemoryAllocated sets the "memory_allocated" field.
func (_c *ResourceAllocationCreate) SetMemoryAllocated(v float64) *ResourceAllocationCreate {
	_c.mutation.SetMemoryAllocated(v)
	return _c
}

// SetNillableMemoryAllocated sets the "memory_allocated" field if the given value is not nil.
func (_c *ResourceAllocationCreate) SetNillableMemoryAllocated(v *float64) *ResourceAllocationCreate {
	if v != nil {
		_c.SetMemoryAllocated(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ResourceAllocationCreate) SetState(v resourceallocation.State) *ResourceAllocationCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ResourceAllocationCreate) SetNillableState(v *resourceallocation.State) *ResourceAllocationCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAllocatedAt sets the "allocated_at" field.
func (_c *ResourceAllocationCreate) SetAllocatedAt(v time.Time) *ResourceAllocationCreate {
	_c.mutation.SetAllocatedAt(v)
	return _c
}

// SetNillableAllocatedAt sets the "allocated_at" field if the given value is not nil.
func (_c *ResourceAllocationCreate) SetNillableAllocatedAt(v *time.Time) *ResourceAllocationCreate {
	if v != nil {
		_c.SetAllocatedAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *ResourceAllocationCreate) SetReleasedAt(v time.Time) *ResourceAllocationCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *ResourceAllocationCreate) SetNillableReleasedAt(v *time.Time) *ResourceAllocationCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetExecution sets the "execution" edge to the Execution entity.
func (_c *ResourceAllocationCreate) SetExecution(v *Execution) *ResourceAllocationCreate {
	return _c.SetExecutionID(v.ID)
}

// SetRunner sets the "runner" edge to the Runner entity.
func (_c *ResourceAllocationCreate) SetRunner(v *Runner) *ResourceAllocationCreate {
	return _c.SetRunnerID(v.ID)
}

// Mutation returns the ResourceAllocationMutation object of the builder.
func (_c *ResourceAllocationCreate) Mutation() *ResourceAllocationMutation {
	return _c.mutation
}

// Save creates the ResourceAllocation in the database.
func (_c *ResourceAllocationCreate) Save(ctx context.Context) (*ResourceAllocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceAllocationCreate) SaveX(ctx context.Context) *ResourceAllocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceAllocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceAllocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceAllocationCreate) defaults() {
	if _, ok := _c.mutation.CPUAllocated(); !ok {
		v := resourceallocation.DefaultCPUAllocated
		_c.mutation.SetCPUAllocated(v)
	}
	if _, ok := _c.mutation.MemoryAllocated(); !ok {
		v := resourceallocation.DefaultMemoryAllocated
		_c.mutation.SetMemoryAllocated(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := resourceallocation.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.AllocatedAt(); !ok {
		v := resourceallocation.DefaultAllocatedAt()
		_c.mutation.SetAllocatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceAllocationCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ResourceAllocation.execution_id"`)}
	}
	if _, ok := _c.mutation.RunnerID(); !ok {
		return &ValidationError{Name: "runner_id", err: errors.New(`ent: missing required field "ResourceAllocation.runner_id"`)}
	}
	if _, ok := _c.mutation.CPUAllocated(); !ok {
		return &ValidationError{Name: "cpu_allocated", err: errors.New(`ent: missing required field "ResourceAllocation.cpu_allocated"`)}
	}
	if _, ok := _c.mutation.MemoryAllocated(); !ok {
		return &ValidationError{Name: "memory_allocated", err: errors.New(`ent: missing required field "ResourceAllocation.memory_allocated"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ResourceAllocation.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := resourceallocation.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ResourceAllocation.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllocatedAt(); !ok {
		return &ValidationError{Name: "allocated_at", err: errors.New(`ent: missing required field "ResourceAllocation.allocated_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "ResourceAllocation.execution"`)}
	}
	if len(_c.mutation.RunnerIDs()) == 0 {
		return &ValidationError{Name: "runner", err: errors.New(`ent: missing required edge "ResourceAllocation.runner"`)}
	}
	return nil
}

func (_c *ResourceAllocationCreate) sqlSave(ctx context.Context) (*ResourceAllocation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResourceAllocationCreate) createSpec() (*ResourceAllocation, *sqlgraph.CreateSpec) {
	var (
		_node = &ResourceAllocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resourceallocation.Table, sqlgraph.NewFieldSpec(resourceallocation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CPUAllocated(); ok {
		_spec.SetField(resourceallocation.FieldCPUAllocated, field.TypeFloat64, value)
		_node.CPUAllocated = value
	}
	if value, ok := _c.mutation.MemoryAllocated(); ok {
		_spec.SetField(resourceallocation.FieldMemoryAllocated, field.TypeFloat64, value)
		_node.MemoryAllocated = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(resourceallocation.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.AllocatedAt(); ok {
		_spec.SetField(resourceallocation.FieldAllocatedAt, field.TypeTime, value)
		_node.AllocatedAt = value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(resourceallocation.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   resourceallocation.ExecutionTable,
			Columns: []string{resourceallocation.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   resourceallocation.RunnerTable,
			Columns: []string{resourceallocation.RunnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runner.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResourceAllocationCreateBulk is the builder for creating many ResourceAllocation entities in bulk.
type ResourceAllocationCreateBulk struct {
	config
	err      error
	builders []*ResourceAllocationCreate
}

// Save creates the ResourceAllocation entities in the database.
func (_c *ResourceAllocationCreateBulk) Save(ctx context.Context) ([]*ResourceAllocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResourceAllocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceAllocationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResourceAllocationCreateBulk) SaveX(ctx context.Context) []*ResourceAllocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceAllocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceAllocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
