// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/runner"
)

// HealthSampleCreate is the builder for creating a HealthSample entity.
type HealthSampleCreate struct {
	config
	mutation *HealthSampleMutation
	hooks    []Hook
}

// SetRunnerID sets the "runner_id" field.
func (_c *HealthSampleCreate) SetRunnerID(v int) *HealthSampleCreate {
	_c.mutation.SetRunnerID(v)
	return _c
}

// SetHealth sets the "health" field.
func (_c *HealthSampleCreate) SetHealth(v healthsample.Health) *HealthSampleCreate {
	_c.mutation.SetHealth(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *HealthSampleCreate) SetLatencyMs(v int64) *HealthSampleCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetError sets the "error" field.
func (_c *HealthSampleCreate) SetError(v string) *HealthSampleCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *HealthSampleCreate) SetNillableError(v *string) *HealthSampleCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCheckedAt sets the "checked_at" field.
func (_c *HealthSampleCreate) SetCheckedAt(v time.Time) *HealthSampleCreate {
	_c.mutation.SetCheckedAt(v)
	return _c
}

// SetNillableCheckedAt sets the "checked_at" field if the given value is not nil.
func (_c *HealthSampleCreate) SetNillableCheckedAt(v *time.Time) *HealthSampleCreate {
	if v != nil {
		_c.SetCheckedAt(*v)
	}
	return _c
}

// SetRunner sets the "runner" edge to the Runner entity.
func (_c *HealthSampleCreate) SetRunner(v *Runner) *HealthSampleCreate {
	return _c.SetRunnerID(v.ID)
}

// Mutation returns the HealthSampleMutation object of the builder.
func (_c *HealthSampleCreate) Mutation() *HealthSampleMutation {
	return _c.mutation
}

// Save creates the HealthSample in the database.
func (_c *HealthSampleCreate) Save(ctx context.Context) (*HealthSample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HealthSampleCreate) SaveX(ctx context.Context) *HealthSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthSampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthSampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HealthSampleCreate) defaults() {
	if _, ok := _c.mutation.CheckedAt(); !ok {
		v := healthsample.DefaultCheckedAt()
		_c.mutation.SetCheckedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HealthSampleCreate) check() error {
	if _, ok := _c.mutation.RunnerID(); !ok {
		return &ValidationError{Name: "runner_id", err: errors.New(`ent: missing required field "HealthSample.runner_id"`)}
	}
	if _, ok := _c.mutation.Health(); !ok {
		return &ValidationError{Name: "health", err: errors.New(`ent: missing required field "HealthSample.health"`)}
	}
	if v, ok := _c.mutation.Health(); ok {
		if err := healthsample.HealthValidator(v); err != nil {
			return &ValidationError{Name: "health", err: fmt.Errorf(`ent: validator failed for field "HealthSample.health": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "HealthSample.latency_ms"`)}
	}
	if _, ok := _c.mutation.CheckedAt(); !ok {
		return &ValidationError{Name: "checked_at", err: errors.New(`ent: missing required field "HealthSample.checked_at"`)}
	}
	if len(_c.mutation.RunnerIDs()) == 0 {
		return &ValidationError{Name: "runner", err: errors.New(`ent: missing required edge "HealthSample.runner"`)}
	}
	return nil
}

func (_c *HealthSampleCreate) sqlSave(ctx context.Context) (*HealthSample, error) {
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

func (_c *HealthSampleCreate) createSpec() (*HealthSample, *sqlgraph.CreateSpec) {
	var (
		_node = &HealthSample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(healthsample.Table, sqlgraph.NewFieldSpec(healthsample.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Health(); ok {
		_spec.SetField(healthsample.FieldHealth, field.TypeEnum, value)
		_node.Health = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(healthsample.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(healthsample.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.CheckedAt(); ok {
		_spec.SetField(healthsample.FieldCheckedAt, field.TypeTime, value)
		_node.CheckedAt = value
	}
	if nodes := _c.mutation.RunnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   healthsample.RunnerTable,
			Columns: []string{healthsample.RunnerColumn},
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

// HealthSampleCreateBulk is the builder for creating many HealthSample entities in bulk.
type HealthSampleCreateBulk struct {
	config
	err      error
	builders []*HealthSampleCreate
}

// Save creates the HealthSample entities in the database.
func (_c *HealthSampleCreateBulk) Save(ctx context.Context) ([]*HealthSample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HealthSample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HealthSampleMutation)
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
func (_c *HealthSampleCreateBulk) SaveX(ctx context.Context) []*HealthSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthSampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthSampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
