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
	"github.com/baton-ci/baton/pkg/models"
)

// ExecutionCreate is the builder for creating a Execution entity.
type ExecutionCreate struct {
	config
	mutation *ExecutionMutation
	hooks    []Hook
}

// SetTestSuite sets the "test_suite" field.
func (_c *ExecutionCreate) SetTestSuite(v string) *ExecutionCreate {
	_c.mutation.SetTestSuite(v)
	return _c
}

// SetEnvironment sets the "environment" field.
func (_c *ExecutionCreate) SetEnvironment(v string) *ExecutionCreate {
	_c.mutation.SetEnvironment(v)
	return _c
}

// SetBranch sets the "branch" field.
func (_c *ExecutionCreate) SetBranch(v string) *ExecutionCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableBranch(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetCommitSha sets the "commit_sha" field.
func (_c *ExecutionCreate) SetCommitSha(v string) *ExecutionCreate {
	_c.mutation.SetCommitSha(v)
	return _c
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCommitSha(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetCommitSha(*v)
	}
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *ExecutionCreate) SetRequestedBy(v string) *ExecutionCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableRequestedBy(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetRequestedBy(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ExecutionCreate) SetPriority(v int) *ExecutionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillablePriority(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEstimatedDurationMs sets the "estimated_duration_ms" field.
func (_c *ExecutionCreate) SetEstimatedDurationMs(v int64) *ExecutionCreate {
	_c.mutation.SetEstimatedDurationMs(v)
	return _c
}

// SetNillableEstimatedDurationMs sets the "estimated_duration_ms" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableEstimatedDurationMs(v *int64) *ExecutionCreate {
	if v != nil {
		_c.SetEstimatedDurationMs(*v)
	}
	return _c
}

// SetRequestedRunnerType sets the "requested_runner_type" field.
func (_c *ExecutionCreate) SetRequestedRunnerType(v string) *ExecutionCreate {
	_c.mutation.SetRequestedRunnerType(v)
	return _c
}

// SetNillableRequestedRunnerType sets the "requested_runner_type" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableRequestedRunnerType(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetRequestedRunnerType(*v)
	}
	return _c
}

// SetRequestedRunnerID sets the "requested_runner_id" field.
func (_c *ExecutionCreate) SetRequestedRunnerID(v int) *ExecutionCreate {
	_c.mutation.SetRequestedRunnerID(v)
	return _c
}

// SetNillableRequestedRunnerID sets the "requested_runner_id" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableRequestedRunnerID(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetRequestedRunnerID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionCreate) SetStatus(v execution.Status) *ExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStatus(v *execution.Status) *ExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusReason sets the "status_reason" field.
func (_c *ExecutionCreate) SetStatusReason(v string) *ExecutionCreate {
	_c.mutation.SetStatusReason(v)
	return _c
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStatusReason(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetStatusReason(*v)
	}
	return _c
}

// SetAssignedRunnerID sets the "assigned_runner_id" field.
func (_c *ExecutionCreate) SetAssignedRunnerID(v int) *ExecutionCreate {
	_c.mutation.SetAssignedRunnerID(v)
	return _c
}

// SetNillableAssignedRunnerID sets the "assigned_runner_id" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableAssignedRunnerID(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetAssignedRunnerID(*v)
	}
	return _c
}

// SetTotalShards sets the "total_shards" field.
func (_c *ExecutionCreate) SetTotalShards(v int) *ExecutionCreate {
	_c.mutation.SetTotalShards(v)
	return _c
}

// SetNillableTotalShards sets the "total_shards" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableTotalShards(v *int) *ExecutionCreate {
	if v != nil {
		_c.SetTotalShards(*v)
	}
	return _c
}

// SetShardResults sets the "shard_results" field.
func (_c *ExecutionCreate) SetShardResults(v map[string]models.ShardResult) *ExecutionCreate {
	_c.mutation.SetShardResults(v)
	return _c
}

// SetAggregatedResults sets the "aggregated_results" field.
func (_c *ExecutionCreate) SetAggregatedResults(v *models.AggregatedResults) *ExecutionCreate {
	_c.mutation.SetAggregatedResults(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *ExecutionCreate) SetIdempotencyKey(v string) *ExecutionCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableIdempotencyKey(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *ExecutionCreate) SetWebhookURL(v string) *ExecutionCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableWebhookURL(v *string) *ExecutionCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExecutionCreate) SetMetadata(v map[string]interface{}) *ExecutionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionCreate) SetCreatedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCreatedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *ExecutionCreate) SetAssignedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableAssignedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionCreate) SetStartedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableStartedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastProgressAt sets the "last_progress_at" field.
func (_c *ExecutionCreate) SetLastProgressAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetLastProgressAt(v)
	return _c
}

// SetNillableLastProgressAt sets the "last_progress_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableLastProgressAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetLastProgressAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionCreate) SetCompletedAt(v time.Time) *ExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionCreate) SetNillableCompletedAt(v *time.Time) *ExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionCreate) SetID(v string) *ExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRunnerID sets the "runner" edge to the Runner entity by ID.
func (_c *ExecutionCreate) SetRunnerID(id int) *ExecutionCreate {
	_c.mutation.SetRunnerID(id)
	return _c
}

// SetNillableRunnerID sets the "runner" edge to the Runner entity by ID if the given value is not nil.
func (_c *ExecutionCreate) SetNillableRunnerID(id *int) *ExecutionCreate {
	if id != nil {
		_c = _c.SetRunnerID(*id)
	}
	return _c
}

// SetRunner sets the "runner" edge to the Runner entity.
func (_c *ExecutionCreate) SetRunner(v *Runner) *ExecutionCreate {
	return _c.SetRunnerID(v.ID)
}

// AddAllocationIDs adds the "allocations" edge to the ResourceAllocation entity by IDs.
func (_c *ExecutionCreate) AddAllocationIDs(ids ...int) *ExecutionCreate {
	_c.mutation.AddAllocationIDs(ids...)
	return _c
}

// AddAllocations adds the "allocations" edges to the ResourceAllocation entity.
func (_c *ExecutionCreate) AddAllocations(v ...*ResourceAllocation) *ExecutionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAllocationIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_c *ExecutionCreate) Mutation() *ExecutionMutation {
	return _c.mutation
}

// Save creates the Execution in the database.
func (_c *ExecutionCreate) Save(ctx context.Context) (*Execution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionCreate) SaveX(ctx context.Context) *Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := execution.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := execution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalShards(); !ok {
		v := execution.DefaultTotalShards
		_c.mutation.SetTotalShards(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := execution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionCreate) check() error {
	if _, ok := _c.mutation.TestSuite(); !ok {
		return &ValidationError{Name: "test_suite", err: errors.New(`ent: missing required field "Execution.test_suite"`)}
	}
	if _, ok := _c.mutation.Environment(); !ok {
		return &ValidationError{Name: "environment", err: errors.New(`ent: missing required field "Execution.environment"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Execution.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Execution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalShards(); !ok {
		return &ValidationError{Name: "total_shards", err: errors.New(`ent: missing required field "Execution.total_shards"`)}
	}
	if v, ok := _c.mutation.TotalShards(); ok {
		if err := execution.TotalShardsValidator(v); err != nil {
			return &ValidationError{Name: "total_shards", err: fmt.Errorf(`ent: validator failed for field "Execution.total_shards": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Execution.created_at"`)}
	}
	return nil
}

func (_c *ExecutionCreate) sqlSave(ctx context.Context) (*Execution, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Execution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionCreate) createSpec() (*Execution, *sqlgraph.CreateSpec) {
	var (
		_node = &Execution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(execution.Table, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TestSuite(); ok {
		_spec.SetField(execution.FieldTestSuite, field.TypeString, value)
		_node.TestSuite = value
	}
	if value, ok := _c.mutation.Environment(); ok {
		_spec.SetField(execution.FieldEnvironment, field.TypeString, value)
		_node.Environment = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(execution.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.CommitSha(); ok {
		_spec.SetField(execution.FieldCommitSha, field.TypeString, value)
		_node.CommitSha = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(execution.FieldRequestedBy, field.TypeString, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(execution.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.EstimatedDurationMs(); ok {
		_spec.SetField(execution.FieldEstimatedDurationMs, field.TypeInt64, value)
		_node.EstimatedDurationMs = &value
	}
	if value, ok := _c.mutation.RequestedRunnerType(); ok {
		_spec.SetField(execution.FieldRequestedRunnerType, field.TypeString, value)
		_node.RequestedRunnerType = &value
	}
	if value, ok := _c.mutation.RequestedRunnerID(); ok {
		_spec.SetField(execution.FieldRequestedRunnerID, field.TypeInt, value)
		_node.RequestedRunnerID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusReason(); ok {
		_spec.SetField(execution.FieldStatusReason, field.TypeString, value)
		_node.StatusReason = value
	}
	if value, ok := _c.mutation.TotalShards(); ok {
		_spec.SetField(execution.FieldTotalShards, field.TypeInt, value)
		_node.TotalShards = value
	}
	if value, ok := _c.mutation.ShardResults(); ok {
		_spec.SetField(execution.FieldShardResults, field.TypeJSON, value)
		_node.ShardResults = value
	}
	if value, ok := _c.mutation.AggregatedResults(); ok {
		_spec.SetField(execution.FieldAggregatedResults, field.TypeJSON, value)
		_node.AggregatedResults = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(execution.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(execution.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(execution.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(execution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(execution.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.LastProgressAt(); ok {
		_spec.SetField(execution.FieldLastProgressAt, field.TypeTime, value)
		_node.LastProgressAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RunnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   execution.RunnerTable,
			Columns: []string{execution.RunnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runner.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssignedRunnerID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AllocationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   execution.AllocationsTable,
			Columns: []string{execution.AllocationsColumn},
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
	return _node, _spec
}

// ExecutionCreateBulk is the builder for creating many Execution entities in bulk.
type ExecutionCreateBulk struct {
	config
	err      error
	builders []*ExecutionCreate
}

// Save creates the Execution entities in the database.
func (_c *ExecutionCreateBulk) Save(ctx context.Context) ([]*Execution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Execution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMutation)
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
func (_c *ExecutionCreateBulk) SaveX(ctx context.Context) []*Execution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
