// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/baton-ci/baton/ent/balancingrule"
)

// BalancingRuleCreate is the builder for creating a BalancingRule entity.
type BalancingRuleCreate struct {
	config
	mutation *BalancingRuleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *BalancingRuleCreate) SetName(v string) *BalancingRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *BalancingRuleCreate) SetActive(v bool) *BalancingRuleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *BalancingRuleCreate) SetNillableActive(v *bool) *BalancingRuleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *BalancingRuleCreate) SetPriority(v int) *BalancingRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *BalancingRuleCreate) SetNillablePriority(v *int) *BalancingRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *BalancingRuleCreate) SetKind(v balancingrule.Kind) *BalancingRuleCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTestSuitePattern sets the "test_suite_pattern" field.
func (_c *BalancingRuleCreate) SetTestSuitePattern(v string) *BalancingRuleCreate {
	_c.mutation.SetTestSuitePattern(v)
	return _c
}

// SetNillableTestSuitePattern sets the "test_suite_pattern" field if the given value is not nil.
func (_c *BalancingRuleCreate) SetNillableTestSuitePattern(v *string) *BalancingRuleCreate {
	if v != nil {
		_c.SetTestSuitePattern(*v)
	}
	return _c
}

// SetEnvironmentPattern sets the "environment_pattern" field.
func (_c *BalancingRuleCreate) SetEnvironmentPattern(v string) *BalancingRuleCreate {
	_c.mutation.SetEnvironmentPattern(v)
	return _c
}

// SetNillableEnvironmentPattern sets the "environment_pattern" field if the given value is not nil.
func (_c *BalancingRuleCreate) SetNillableEnvironmentPattern(v *string) *BalancingRuleCreate {
	if v != nil {
		_c.SetEnvironmentPattern(*v)
	}
	return _c
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_c *BalancingRuleCreate) SetRequiredCapabilities(v []string) *BalancingRuleCreate {
	_c.mutation.SetRequiredCapabilities(v)
	return _c
}

// SetRunnerTypeFilter sets the "runner_type_filter" field.
func (_c *BalancingRuleCreate) SetRunnerTypeFilter(v string) *BalancingRuleCreate {
	_c.mutation.SetRunnerTypeFilter(v)
	return _c
}

// SetNillableRunnerTypeFilter sets the "runner_type_filter" field if the given value is not nil.
func (_c *BalancingRuleCreate) SetNillableRunnerTypeFilter(v *string) *BalancingRuleCreate {
	if v != nil {
		_c.SetRunnerTypeFilter(*v)
	}
	return _c
}

// SetCursor sets the "cursor" field.
func (_c *BalancingRuleCreate) SetCursor(v int) *BalancingRuleCreate {
	_c.mutation.SetCursor(v)
	return _c
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_c *BalancingRuleCreate) SetNillableCursor(v *int) *BalancingRuleCreate {
	if v != nil {
		_c.SetCursor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BalancingRuleCreate) SetCreatedAt(v time.Time) *BalancingRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BalancingRuleCreate) SetNillableCreatedAt(v *time.Time) *BalancingRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BalancingRuleCreate) SetUpdatedAt(v time.Time) *BalancingRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BalancingRuleCreate) SetNillableUpdatedAt(v *time.Time) *BalancingRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the BalancingRuleMutation object of the builder.
func (_c *BalancingRuleCreate) Mutation() *BalancingRuleMutation {
	return _c.mutation
}

// Save creates the BalancingRule in the database.
func (_c *BalancingRuleCreate) Save(ctx context.Context) (*BalancingRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BalancingRuleCreate) SaveX(ctx context.Context) *BalancingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BalancingRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BalancingRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BalancingRuleCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := balancingrule.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := balancingrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		v := balancingrule.DefaultCursor
		_c.mutation.SetCursor(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := balancingrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := balancingrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BalancingRuleCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "BalancingRule.name"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "BalancingRule.active"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "BalancingRule.priority"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "BalancingRule.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := balancingrule.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "BalancingRule.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		return &ValidationError{Name: "cursor", err: errors.New(`ent: missing required field "BalancingRule.cursor"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BalancingRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BalancingRule.updated_at"`)}
	}
	return nil
}

func (_c *BalancingRuleCreate) sqlSave(ctx context.Context) (*BalancingRule, error) {
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

func (_c *BalancingRuleCreate) createSpec() (*BalancingRule, *sqlgraph.CreateSpec) {
	var (
		_node = &BalancingRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(balancingrule.Table, sqlgraph.NewFieldSpec(balancingrule.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(balancingrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(balancingrule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(balancingrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(balancingrule.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.TestSuitePattern(); ok {
		_spec.SetField(balancingrule.FieldTestSuitePattern, field.TypeString, value)
		_node.TestSuitePattern = value
	}
	if value, ok := _c.mutation.EnvironmentPattern(); ok {
		_spec.SetField(balancingrule.FieldEnvironmentPattern, field.TypeString, value)
		_node.EnvironmentPattern = value
	}
	if value, ok := _c.mutation.RequiredCapabilities(); ok {
		_spec.SetField(balancingrule.FieldRequiredCapabilities, field.TypeJSON, value)
		_node.RequiredCapabilities = value
	}
	if value, ok := _c.mutation.RunnerTypeFilter(); ok {
		_spec.SetField(balancingrule.FieldRunnerTypeFilter, field.TypeString, value)
		_node.RunnerTypeFilter = value
	}
	if value, ok := _c.mutation.Cursor(); ok {
		_spec.SetField(balancingrule.FieldCursor, field.TypeInt, value)
		_node.Cursor = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(balancingrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(balancingrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BalancingRuleCreateBulk is the builder for creating many BalancingRule entities in bulk.
type BalancingRuleCreateBulk struct {
	config
	err      error
	builders []*BalancingRuleCreate
}

// Save creates the BalancingRule entities in the database.
func (_c *BalancingRuleCreateBulk) Save(ctx context.Context) ([]*BalancingRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BalancingRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BalancingRuleMutation)
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
func (_c *BalancingRuleCreateBulk) SaveX(ctx context.Context) []*BalancingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BalancingRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BalancingRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
