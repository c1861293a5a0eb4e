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
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
)

// RunnerCreate is the builder for creating a Runner entity.
type RunnerCreate struct {
	config
	mutation *RunnerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *RunnerCreate) SetName(v string) *RunnerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *RunnerCreate) SetType(v string) *RunnerCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetEndpointURL sets the "endpoint_url" field.
func (_c *RunnerCreate) SetEndpointURL(v string) *RunnerCreate {
	_c.mutation.SetEndpointURL(v)
	return _c
}

// SetHealthCheckURL sets the "health_check_url" field.
func (_c *RunnerCreate) SetHealthCheckURL(v string) *RunnerCreate {
	_c.mutation.SetHealthCheckURL(v)
	return _c
}

// SetNillableHealthCheckURL sets the "health_check_url" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableHealthCheckURL(v *string) *RunnerCreate {
	if v != nil {
		_c.SetHealthCheckURL(*v)
	}
	return _c
}

// SetWebhookToken sets the "webhook_token" field.
func (_c *RunnerCreate) SetWebhookToken(v string) *RunnerCreate {
	_c.mutation.SetWebhookToken(v)
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *RunnerCreate) SetCapabilities(v []string) *RunnerCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetMaxConcurrentJobs sets the "max_concurrent_jobs" field.
func (_c *RunnerCreate) SetMaxConcurrentJobs(v int) *RunnerCreate {
	_c.mutation.SetMaxConcurrentJobs(v)
	return _c
}

// SetNillableMaxConcurrentJobs sets the "max_concurrent_jobs" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableMaxConcurrentJobs(v *int) *RunnerCreate {
	if v != nil {
		_c.SetMaxConcurrentJobs(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RunnerCreate) SetPriority(v int) *RunnerCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *RunnerCreate) SetNillablePriority(v *int) *RunnerCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunnerCreate) SetStatus(v runner.Status) *RunnerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableStatus(v *runner.Status) *RunnerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetHealth sets the "health" field.
func (_c *RunnerCreate) SetHealth(v runner.Health) *RunnerCreate {
	_c.mutation.SetHealth(v)
	return _c
}

// SetNillableHealth sets the "health" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableHealth(v *runner.Health) *RunnerCreate {
	if v != nil {
		_c.SetHealth(*v)
	}
	return _c
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (_c *RunnerCreate) SetLastHealthCheckAt(v time.Time) *RunnerCreate {
	_c.mutation.SetLastHealthCheckAt(v)
	return _c
}

// SetNillableLastHealthCheckAt sets the "last_health_check_at" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableLastHealthCheckAt(v *time.Time) *RunnerCreate {
	if v != nil {
		_c.SetLastHealthCheckAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *RunnerCreate) SetMetadata(v map[string]interface{}) *RunnerCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunnerCreate) SetCreatedAt(v time.Time) *RunnerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableCreatedAt(v *time.Time) *RunnerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RunnerCreate) SetUpdatedAt(v time.Time) *RunnerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RunnerCreate) SetNillableUpdatedAt(v *time.Time) *RunnerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_c *RunnerCreate) AddExecutionIDs(ids ...string) *RunnerCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_c *RunnerCreate) AddExecutions(v ...*Execution) *RunnerCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// AddAllocationIDs adds the "allocations" edge to the ResourceAllocation entity by IDs.
func (_c *RunnerCreate) AddAllocationIDs(ids ...int) *RunnerCreate {
	_c.mutation.AddAllocationIDs(ids...)
	return _c
}

// AddAllocations adds the "allocations" edges to the ResourceAllocation entity.
func (_c *RunnerCreate) AddAllocations(v ...*ResourceAllocation) *RunnerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAllocationIDs(ids...)
}

// AddHealthSampleIDs adds the "health_samples" edge to the HealthSample entity by IDs.
func (_c *RunnerCreate) AddHealthSampleIDs(ids ...int) *RunnerCreate {
	_c.mutation.AddHealthSampleIDs(ids...)
	return _c
}

// AddHealthSamples adds the "health_samples" edges to the HealthSample entity.
func (_c *RunnerCreate) AddHealthSamples(v ...*HealthSample) *RunnerCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHealthSampleIDs(ids...)
}

// Mutation returns the RunnerMutation object of the builder.
func (_c *RunnerCreate) Mutation() *RunnerMutation {
	return _c.mutation
}

// Save creates the Runner in the database.
func (_c *RunnerCreate) Save(ctx context.Context) (*Runner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunnerCreate) SaveX(ctx context.Context) *Runner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunnerCreate) defaults() {
	if _, ok := _c.mutation.MaxConcurrentJobs(); !ok {
		v := runner.DefaultMaxConcurrentJobs
		_c.mutation.SetMaxConcurrentJobs(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := runner.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := runner.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Health(); !ok {
		v := runner.DefaultHealth
		_c.mutation.SetHealth(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runner.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := runner.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunnerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Runner.name"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Runner.type"`)}
	}
	if _, ok := _c.mutation.EndpointURL(); !ok {
		return &ValidationError{Name: "endpoint_url", err: errors.New(`ent: missing required field "Runner.endpoint_url"`)}
	}
	if _, ok := _c.mutation.WebhookToken(); !ok {
		return &ValidationError{Name: "webhook_token", err: errors.New(`ent: missing required field "Runner.webhook_token"`)}
	}
	if _, ok := _c.mutation.MaxConcurrentJobs(); !ok {
		return &ValidationError{Name: "max_concurrent_jobs", err: errors.New(`ent: missing required field "Runner.max_concurrent_jobs"`)}
	}
	if v, ok := _c.mutation.MaxConcurrentJobs(); ok {
		if err := runner.MaxConcurrentJobsValidator(v); err != nil {
			return &ValidationError{Name: "max_concurrent_jobs", err: fmt.Errorf(`ent: validator failed for field "Runner.max_concurrent_jobs": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Runner.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Runner.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := runner.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Runner.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Health(); !ok {
		return &ValidationError{Name: "health", err: errors.New(`ent: missing required field "Runner.health"`)}
	}
	if v, ok := _c.mutation.Health(); ok {
		if err := runner.HealthValidator(v); err != nil {
			return &ValidationError{Name: "health", err: fmt.Errorf(`ent: validator failed for field "Runner.health": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Runner.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Runner.updated_at"`)}
	}
	return nil
}

func (_c *RunnerCreate) sqlSave(ctx context.Context) (*Runner, error) {
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

func (_c *RunnerCreate) createSpec() (*Runner, *sqlgraph.CreateSpec) {
	var (
		_node = &Runner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runner.Table, sqlgraph.NewFieldSpec(runner.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(runner.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(runner.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.EndpointURL(); ok {
		_spec.SetField(runner.FieldEndpointURL, field.TypeString, value)
		_node.EndpointURL = value
	}
	if value, ok := _c.mutation.HealthCheckURL(); ok {
		_spec.SetField(runner.FieldHealthCheckURL, field.TypeString, value)
		_node.HealthCheckURL = value
	}
	if value, ok := _c.mutation.WebhookToken(); ok {
		_spec.SetField(runner.FieldWebhookToken, field.TypeString, value)
		_node.WebhookToken = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(runner.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.MaxConcurrentJobs(); ok {
		_spec.SetField(runner.FieldMaxConcurrentJobs, field.TypeInt, value)
		_node.MaxConcurrentJobs = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(runner.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(runner.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Health(); ok {
		_spec.SetField(runner.FieldHealth, field.TypeEnum, value)
		_node.Health = value
	}
	if value, ok := _c.mutation.LastHealthCheckAt(); ok {
		_spec.SetField(runner.FieldLastHealthCheckAt, field.TypeTime, value)
		_node.LastHealthCheckAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(runner.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(runner.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   runner.ExecutionsTable,
			Columns: []string{runner.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AllocationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   runner.AllocationsTable,
			Columns: []string{runner.AllocationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resourceallocation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HealthSamplesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   runner.HealthSamplesTable,
			Columns: []string{runner.HealthSamplesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(healthsample.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunnerCreateBulk is the builder for creating many Runner entities in bulk.
type RunnerCreateBulk struct {
	config
	err      error
	builders []*RunnerCreate
}

// Save creates the Runner entities in the database.
func (_c *RunnerCreateBulk) Save(ctx context.Context) ([]*Runner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Runner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunnerMutation)
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
func (_c *RunnerCreateBulk) SaveX(ctx context.Context) []*Runner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
