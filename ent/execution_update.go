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
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/predicate"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestSuite sets the "test_suite" field.
func (_u *ExecutionUpdate) SetTestSuite(v string) *ExecutionUpdate {
	_u.mutation.SetTestSuite(v)
	return _u
}

// SetNillableTestSuite sets the "test_suite" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTestSuite(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetTestSuite(*v)
	}
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *ExecutionUpdate) SetEnvironment(v string) *ExecutionUpdate {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableEnvironment(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// SetBranch sets the "branch" field.
func (_u *ExecutionUpdate) SetBranch(v string) *ExecutionUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableBranch(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *ExecutionUpdate) ClearBranch() *ExecutionUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *ExecutionUpdate) SetCommitSha(v string) *ExecutionUpdate {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCommitSha(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *ExecutionUpdate) ClearCommitSha() *ExecutionUpdate {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ExecutionUpdate) SetRequestedBy(v string) *ExecutionUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableRequestedBy(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *ExecutionUpdate) ClearRequestedBy() *ExecutionUpdate {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ExecutionUpdate) SetPriority(v int) *ExecutionUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillablePriority(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ExecutionUpdate) AddPriority(v int) *ExecutionUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEstimatedDurationMs sets the "estimated_duration_ms" field.
func (_u *ExecutionUpdate) SetEstimatedDurationMs(v int64) *ExecutionUpdate {
	_u.mutation.ResetEstimatedDurationMs()
	_u.mutation.SetEstimatedDurationMs(v)
	return _u
}

// SetNillableEstimatedDurationMs sets the "estimated_duration_ms" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableEstimatedDurationMs(v *int64) *ExecutionUpdate {
	if v != nil {
		_u.SetEstimatedDurationMs(*v)
	}
	return _u
}

// AddEstimatedDurationMs adds value to the "estimated_duration_ms" field.
func (_u *ExecutionUpdate) AddEstimatedDurationMs(v int64) *ExecutionUpdate {
	_u.mutation.AddEstimatedDurationMs(v)
	return _u
}

// ClearEstimatedDurationMs clears the value of the "estimated_duration_ms" field.
func (_u *ExecutionUpdate) ClearEstimatedDurationMs() *ExecutionUpdate {
	_u.mutation.ClearEstimatedDurationMs()
	return _u
}

// SetRequestedRunnerType sets the "requested_runner_type" field.
func (_u *ExecutionUpdate) SetRequestedRunnerType(v string) *ExecutionUpdate {
	_u.mutation.SetRequestedRunnerType(v)
	return _u
}

// SetNillableRequestedRunnerType sets the "requested_runner_type" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableRequestedRunnerType(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetRequestedRunnerType(*v)
	}
	return _u
}

// ClearRequestedRunnerType clears the value of the "requested_runner_type" field.
func (_u *ExecutionUpdate) ClearRequestedRunnerType() *ExecutionUpdate {
	_u.mutation.ClearRequestedRunnerType()
	return _u
}

// SetRequestedRunnerID sets the "requested_runner_id" field.
func (_u *ExecutionUpdate) SetRequestedRunnerID(v int) *ExecutionUpdate {
	_u.mutation.ResetRequestedRunnerID()
	_u.mutation.SetRequestedRunnerID(v)
	return _u
}

// SetNillableRequestedRunnerID sets the "requested_runner_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableRequestedRunnerID(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetRequestedRunnerID(*v)
	}
	return _u
}

// AddRequestedRunnerID adds value to the "requested_runner_id" field.
func (_u *ExecutionUpdate) AddRequestedRunnerID(v int) *ExecutionUpdate {
	_u.mutation.AddRequestedRunnerID(v)
	return _u
}

// ClearRequestedRunnerID clears the value of the "requested_runner_id" field.
func (_u *ExecutionUpdate) ClearRequestedRunnerID() *ExecutionUpdate {
	_u.mutation.ClearRequestedRunnerID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdate) SetStatus(v execution.Status) *ExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatus(v *execution.Status) *ExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusReason sets the "status_reason" field.
func (_u *ExecutionUpdate) SetStatusReason(v string) *ExecutionUpdate {
	_u.mutation.SetStatusReason(v)
	return _u
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatusReason(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetStatusReason(*v)
	}
	return _u
}

// ClearStatusReason clears the value of the "status_reason" field.
func (_u *ExecutionUpdate) ClearStatusReason() *ExecutionUpdate {
	_u.mutation.ClearStatusReason()
	return _u
}

// SetAssignedRunnerID sets the "assigned_runner_id" field.
func (_u *ExecutionUpdate) SetAssignedRunnerID(v int) *ExecutionUpdate {
	_u.mutation.SetAssignedRunnerID(v)
	return _u
}

// SetNillableAssignedRunnerID sets the "assigned_runner_id" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableAssignedRunnerID(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetAssignedRunnerID(*v)
	}
	return _u
}

// ClearAssignedRunnerID clears the value of the "assigned_runner_id" field.
func (_u *ExecutionUpdate) ClearAssignedRunnerID() *ExecutionUpdate {
	_u.mutation.ClearAssignedRunnerID()
	return _u
}

// SetTotalShards sets the "total_shards" field.
func (_u *ExecutionUpdate) SetTotalShards(v int) *ExecutionUpdate {
	_u.mutation.ResetTotalShards()
	_u.mutation.SetTotalShards(v)
	return _u
}

// SetNillableTotalShards sets the "total_shards" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableTotalShards(v *int) *ExecutionUpdate {
	if v != nil {
		_u.SetTotalShards(*v)
	}
	return _u
}

// AddTotalShards adds value to the "total_shards" field.
func (_u *ExecutionUpdate) AddTotalShards(v int) *ExecutionUpdate {
	_u.mutation.AddTotalShards(v)
	return _u
}

// SetShardResults sets the "shard_results" field.
func (_u *ExecutionUpdate) SetShardResults(v map[string]models.ShardResult) *ExecutionUpdate {
	_u.mutation.SetShardResults(v)
	return _u
}

// ClearShardResults clears the value of the "shard_results" field.
func (_u *ExecutionUpdate) ClearShardResults() *ExecutionUpdate {
	_u.mutation.ClearShardResults()
	return _u
}

// SetAggregatedResults sets the "aggregated_results" field.
func (_u *ExecutionUpdate) SetAggregatedResults(v *models.AggregatedResults) *ExecutionUpdate {
	_u.mutation.SetAggregatedResults(v)
	return _u
}

// ClearAggregatedResults clears the value of the "aggregated_results" field.
func (_u *ExecutionUpdate) ClearAggregatedResults() *ExecutionUpdate {
	_u.mutation.ClearAggregatedResults()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *ExecutionUpdate) SetIdempotencyKey(v string) *ExecutionUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableIdempotencyKey(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *ExecutionUpdate) ClearIdempotencyKey() *ExecutionUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *ExecutionUpdate) SetWebhookURL(v string) *ExecutionUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableWebhookURL(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *ExecutionUpdate) ClearWebhookURL() *ExecutionUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionUpdate) SetMetadata(v map[string]interface{}) *ExecutionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionUpdate) ClearMetadata() *ExecutionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExecutionUpdate) SetCreatedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCreatedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *ExecutionUpdate) SetAssignedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableAssignedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *ExecutionUpdate) ClearAssignedAt() *ExecutionUpdate {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionUpdate) SetStartedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStartedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionUpdate) ClearStartedAt() *ExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastProgressAt sets the "last_progress_at" field.
func (_u *ExecutionUpdate) SetLastProgressAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetLastProgressAt(v)
	return _u
}

// SetNillableLastProgressAt sets the "last_progress_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableLastProgressAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetLastProgressAt(*v)
	}
	return _u
}

// ClearLastProgressAt clears the value of the "last_progress_at" field.
func (_u *ExecutionUpdate) ClearLastProgressAt() *ExecutionUpdate {
	_u.mutation.ClearLastProgressAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdate) SetCompletedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdate) ClearCompletedAt() *ExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRunnerID sets the "runner" edge to the Runner entity by ID.
func (_u *ExecutionUpdate) SetRunnerID(id int) *ExecutionUpdate {
	_u.mutation.SetRunnerID(id)
	return _u
}

// SetNillableRunnerID sets the "runner" edge to the Runner entity by ID if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableRunnerID(id *int) *ExecutionUpdate {
	if id != nil {
		_u = _u.SetRunnerID(*id)
	}
	return _u
}

// SetRunner sets the "runner" edge to the Runner entity.
func (_u *ExecutionUpdate) SetRunner(v *Runner) *ExecutionUpdate {
	return _u.SetRunnerID(v.ID)
}

// AddAllocationIDs adds the "allocations" edge to the ResourceAllocation entity by IDs.
func (_u *ExecutionUpdate) AddAllocationIDs(ids ...int) *ExecutionUpdate {
	_u.mutation.AddAllocationIDs(ids...)
	return _u
}

// AddAllocations adds the "allocations" edges to the ResourceAllocation entity.
func (_u *ExecutionUpdate) AddAllocations(v ...*ResourceAllocation) *ExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAllocationIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// ClearRunner clears the "runner" edge to the Runner entity.
func (_u *ExecutionUpdate) ClearRunner() *ExecutionUpdate {
	_u.mutation.ClearRunner()
	return _u
}

// ClearAllocations clears all "allocations" edges to the ResourceAllocation entity.
func (_u *ExecutionUpdate) ClearAllocations() *ExecutionUpdate {
	_u.mutation.ClearAllocations()
	return _u
}

// RemoveAllocationIDs removes the "allocations" edge to ResourceAllocation entities by IDs.
func (_u *ExecutionUpdate) RemoveAllocationIDs(ids ...int) *ExecutionUpdate {
	_u.mutation.RemoveAllocationIDs(ids...)
	return _u
}

// RemoveAllocations removes "allocations" edges to ResourceAllocation entities.
func (_u *ExecutionUpdate) RemoveAllocations(v ...*ResourceAllocation) *ExecutionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAllocationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalShards(); ok {
		if err := execution.TotalShardsValidator(v); err != nil {
			return &ValidationError{Name: "total_shards", err: fmt.Errorf(`ent: validator failed for field "Execution.total_shards": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestSuite(); ok {
		_spec.SetField(execution.FieldTestSuite, field.TypeString, value)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(execution.FieldEnvironment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(execution.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(execution.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(execution.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(execution.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(execution.FieldRequestedBy, field.TypeString, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(execution.FieldRequestedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(execution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(execution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedDurationMs(); ok {
		_spec.SetField(execution.FieldEstimatedDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDurationMs(); ok {
		_spec.AddField(execution.FieldEstimatedDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.EstimatedDurationMsCleared() {
		_spec.ClearField(execution.FieldEstimatedDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RequestedRunnerType(); ok {
		_spec.SetField(execution.FieldRequestedRunnerType, field.TypeString, value)
	}
	if _u.mutation.RequestedRunnerTypeCleared() {
		_spec.ClearField(execution.FieldRequestedRunnerType, field.TypeString)
	}
	if value, ok := _u.mutation.RequestedRunnerID(); ok {
		_spec.SetField(execution.FieldRequestedRunnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedRunnerID(); ok {
		_spec.AddField(execution.FieldRequestedRunnerID, field.TypeInt, value)
	}
	if _u.mutation.RequestedRunnerIDCleared() {
		_spec.ClearField(execution.FieldRequestedRunnerID, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusReason(); ok {
		_spec.SetField(execution.FieldStatusReason, field.TypeString, value)
	}
	if _u.mutation.StatusReasonCleared() {
		_spec.ClearField(execution.FieldStatusReason, field.TypeString)
	}
	if value, ok := _u.mutation.TotalShards(); ok {
		_spec.SetField(execution.FieldTotalShards, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalShards(); ok {
		_spec.AddField(execution.FieldTotalShards, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShardResults(); ok {
		_spec.SetField(execution.FieldShardResults, field.TypeJSON, value)
	}
	if _u.mutation.ShardResultsCleared() {
		_spec.ClearField(execution.FieldShardResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.AggregatedResults(); ok {
		_spec.SetField(execution.FieldAggregatedResults, field.TypeJSON, value)
	}
	if _u.mutation.AggregatedResultsCleared() {
		_spec.ClearField(execution.FieldAggregatedResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(execution.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(execution.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(execution.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(execution.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(execution.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(execution.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(execution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(execution.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(execution.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(execution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProgressAt(); ok {
		_spec.SetField(execution.FieldLastProgressAt, field.TypeTime, value)
	}
	if _u.mutation.LastProgressAtCleared() {
		_spec.ClearField(execution.FieldLastProgressAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RunnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AllocationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAllocationsIDs(); len(nodes) > 0 && !_u.mutation.AllocationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AllocationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetTestSuite sets the "test_suite" field.
func (_u *ExecutionUpdateOne) SetTestSuite(v string) *ExecutionUpdateOne {
	_u.mutation.SetTestSuite(v)
	return _u
}

// SetNillableTestSuite sets the "test_suite" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTestSuite(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTestSuite(*v)
	}
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *ExecutionUpdateOne) SetEnvironment(v string) *ExecutionUpdateOne {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableEnvironment(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// SetBranch sets the "branch" field.
func (_u *ExecutionUpdateOne) SetBranch(v string) *ExecutionUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableBranch(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *ExecutionUpdateOne) ClearBranch() *ExecutionUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *ExecutionUpdateOne) SetCommitSha(v string) *ExecutionUpdateOne {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCommitSha(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *ExecutionUpdateOne) ClearCommitSha() *ExecutionUpdateOne {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ExecutionUpdateOne) SetRequestedBy(v string) *ExecutionUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableRequestedBy(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *ExecutionUpdateOne) ClearRequestedBy() *ExecutionUpdateOne {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ExecutionUpdateOne) SetPriority(v int) *ExecutionUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillablePriority(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ExecutionUpdateOne) AddPriority(v int) *ExecutionUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEstimatedDurationMs sets the "estimated_duration_ms" field.
func (_u *ExecutionUpdateOne) SetEstimatedDurationMs(v int64) *ExecutionUpdateOne {
	_u.mutation.ResetEstimatedDurationMs()
	_u.mutation.SetEstimatedDurationMs(v)
	return _u
}

// SetNillableEstimatedDurationMs sets the "estimated_duration_ms" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableEstimatedDurationMs(v *int64) *ExecutionUpdateOne {
	if v != nil {
		_u.SetEstimatedDurationMs(*v)
	}
	return _u
}

// AddEstimatedDurationMs adds value to the "estimated_duration_ms" field.
func (_u *ExecutionUpdateOne) AddEstimatedDurationMs(v int64) *ExecutionUpdateOne {
	_u.mutation.AddEstimatedDurationMs(v)
	return _u
}

// ClearEstimatedDurationMs clears the value of the "estimated_duration_ms" field.
func (_u *ExecutionUpdateOne) ClearEstimatedDurationMs() *ExecutionUpdateOne {
	_u.mutation.ClearEstimatedDurationMs()
	return _u
}

// SetRequestedRunnerType sets the "requested_runner_type" field.
func (_u *ExecutionUpdateOne) SetRequestedRunnerType(v string) *ExecutionUpdateOne {
	_u.mutation.SetRequestedRunnerType(v)
	return _u
}

// SetNillableRequestedRunnerType sets the "requested_runner_type" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableRequestedRunnerType(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetRequestedRunnerType(*v)
	}
	return _u
}

// ClearRequestedRunnerType clears the value of the "requested_runner_type" field.
func (_u *ExecutionUpdateOne) ClearRequestedRunnerType() *ExecutionUpdateOne {
	_u.mutation.ClearRequestedRunnerType()
	return _u
}

// SetRequestedRunnerID sets the "requested_runner_id" field.
func (_u *ExecutionUpdateOne) SetRequestedRunnerID(v int) *ExecutionUpdateOne {
	_u.mutation.ResetRequestedRunnerID()
	_u.mutation.SetRequestedRunnerID(v)
	return _u
}

// SetNillableRequestedRunnerID sets the "requested_runner_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableRequestedRunnerID(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetRequestedRunnerID(*v)
	}
	return _u
}

// AddRequestedRunnerID adds value to the "requested_runner_id" field.
func (_u *ExecutionUpdateOne) AddRequestedRunnerID(v int) *ExecutionUpdateOne {
	_u.mutation.AddRequestedRunnerID(v)
	return _u
}

// ClearRequestedRunnerID clears the value of the "requested_runner_id" field.
func (_u *ExecutionUpdateOne) ClearRequestedRunnerID() *ExecutionUpdateOne {
	_u.mutation.ClearRequestedRunnerID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdateOne) SetStatus(v execution.Status) *ExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatus(v *execution.Status) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusReason sets the "status_reason" field.
func (_u *ExecutionUpdateOne) SetStatusReason(v string) *ExecutionUpdateOne {
	_u.mutation.SetStatusReason(v)
	return _u
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatusReason(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatusReason(*v)
	}
	return _u
}

// ClearStatusReason clears the value of the "status_reason" field.
func (_u *ExecutionUpdateOne) ClearStatusReason() *ExecutionUpdateOne {
	_u.mutation.ClearStatusReason()
	return _u
}

// SetAssignedRunnerID sets the "assigned_runner_id" field.
func (_u *ExecutionUpdateOne) SetAssignedRunnerID(v int) *ExecutionUpdateOne {
	_u.mutation.SetAssignedRunnerID(v)
	return _u
}

// SetNillableAssignedRunnerID sets the "assigned_runner_id" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableAssignedRunnerID(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetAssignedRunnerID(*v)
	}
	return _u
}

// ClearAssignedRunnerID clears the value of the "assigned_runner_id" field.
func (_u *ExecutionUpdateOne) ClearAssignedRunnerID() *ExecutionUpdateOne {
	_u.mutation.ClearAssignedRunnerID()
	return _u
}

// SetTotalShards sets the "total_shards" field.
func (_u *ExecutionUpdateOne) SetTotalShards(v int) *ExecutionUpdateOne {
	_u.mutation.ResetTotalShards()
	_u.mutation.SetTotalShards(v)
	return _u
}

// SetNillableTotalShards sets the "total_shards" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableTotalShards(v *int) *ExecutionUpdateOne {
	if v != nil {
		_u.SetTotalShards(*v)
	}
	return _u
}

// AddTotalShards adds value to the "total_shards" field.
func (_u *ExecutionUpdateOne) AddTotalShards(v int) *ExecutionUpdateOne {
	_u.mutation.AddTotalShards(v)
	return _u
}

// SetShardResults sets the "shard_results" field.
func (_u *ExecutionUpdateOne) SetShardResults(v map[string]models.ShardResult) *ExecutionUpdateOne {
	_u.mutation.SetShardResults(v)
	return _u
}

// ClearShardResults clears the value of the "shard_results" field.
func (_u *ExecutionUpdateOne) ClearShardResults() *ExecutionUpdateOne {
	_u.mutation.ClearShardResults()
	return _u
}

// SetAggregatedResults sets the "aggregated_results" field.
func (_u *ExecutionUpdateOne) SetAggregatedResults(v *models.AggregatedResults) *ExecutionUpdateOne {
	_u.mutation.SetAggregatedResults(v)
	return _u
}

// ClearAggregatedResults clears the value of the "aggregated_results" field.
func (_u *ExecutionUpdateOne) ClearAggregatedResults() *ExecutionUpdateOne {
	_u.mutation.ClearAggregatedResults()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *ExecutionUpdateOne) SetIdempotencyKey(v string) *ExecutionUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableIdempotencyKey(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *ExecutionUpdateOne) ClearIdempotencyKey() *ExecutionUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *ExecutionUpdateOne) SetWebhookURL(v string) *ExecutionUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableWebhookURL(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *ExecutionUpdateOne) ClearWebhookURL() *ExecutionUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionUpdateOne) SetMetadata(v map[string]interface{}) *ExecutionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionUpdateOne) ClearMetadata() *ExecutionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExecutionUpdateOne) SetCreatedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCreatedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *ExecutionUpdateOne) SetAssignedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableAssignedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *ExecutionUpdateOne) ClearAssignedAt() *ExecutionUpdateOne {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionUpdateOne) SetStartedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionUpdateOne) ClearStartedAt() *ExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetLastProgressAt sets the "last_progress_at" field.
func (_u *ExecutionUpdateOne) SetLastProgressAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetLastProgressAt(v)
	return _u
}

// SetNillableLastProgressAt sets the "last_progress_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableLastProgressAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetLastProgressAt(*v)
	}
	return _u
}

// ClearLastProgressAt clears the value of the "last_progress_at" field.
func (_u *ExecutionUpdateOne) ClearLastProgressAt() *ExecutionUpdateOne {
	_u.mutation.ClearLastProgressAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionUpdateOne) SetCompletedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionUpdateOne) ClearCompletedAt() *ExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRunnerID sets the "runner" edge to the Runner entity by ID.
func (_u *ExecutionUpdateOne) SetRunnerID(id int) *ExecutionUpdateOne {
	_u.mutation.SetRunnerID(id)
	return _u
}

// SetNillableRunnerID sets the "runner" edge to the Runner entity by ID if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableRunnerID(id *int) *ExecutionUpdateOne {
	if id != nil {
		_u = _u.SetRunnerID(*id)
	}
	return _u
}

// SetRunner sets the "runner" edge to the Runner entity.
func (_u *ExecutionUpdateOne) SetRunner(v *Runner) *ExecutionUpdateOne {
	return _u.SetRunnerID(v.ID)
}

// AddAllocationIDs adds the "allocations" edge to the ResourceAllocation entity by IDs.
func (_u *ExecutionUpdateOne) AddAllocationIDs(ids ...int) *ExecutionUpdateOne {
	_u.mutation.AddAllocationIDs(ids...)
	return _u
}

// AddAllocations adds the "allocations" edges to the ResourceAllocation entity.
func (_u *ExecutionUpdateOne) AddAllocations(v ...*ResourceAllocation) *ExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAllocationIDs(ids...)
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// ClearRunner clears the "runner" edge to the Runner entity.
func (_u *ExecutionUpdateOne) ClearRunner() *ExecutionUpdateOne {
	_u.mutation.ClearRunner()
	return _u
}

// ClearAllocations clears all "allocations" edges to the ResourceAllocation entity.
func (_u *ExecutionUpdateOne) ClearAllocations() *ExecutionUpdateOne {
	_u.mutation.ClearAllocations()
	return _u
}

// RemoveAllocationIDs removes the "allocations" edge to ResourceAllocation entities by IDs.
func (_u *ExecutionUpdateOne) RemoveAllocationIDs(ids ...int) *ExecutionUpdateOne {
	_u.mutation.RemoveAllocationIDs(ids...)
	return _u
}

// RemoveAllocations removes "allocations" edges to ResourceAllocation entities.
func (_u *ExecutionUpdateOne) RemoveAllocations(v ...*ResourceAllocation) *ExecutionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAllocationIDs(ids...)
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalShards(); ok {
		if err := execution.TotalShardsValidator(v); err != nil {
			return &ValidationError{Name: "total_shards", err: fmt.Errorf(`ent: validator failed for field "Execution.total_shards": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
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
	if value, ok := _u.mutation.TestSuite(); ok {
		_spec.SetField(execution.FieldTestSuite, field.TypeString, value)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(execution.FieldEnvironment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(execution.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(execution.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(execution.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(execution.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(execution.FieldRequestedBy, field.TypeString, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(execution.FieldRequestedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(execution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(execution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedDurationMs(); ok {
		_spec.SetField(execution.FieldEstimatedDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedDurationMs(); ok {
		_spec.AddField(execution.FieldEstimatedDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.EstimatedDurationMsCleared() {
		_spec.ClearField(execution.FieldEstimatedDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.RequestedRunnerType(); ok {
		_spec.SetField(execution.FieldRequestedRunnerType, field.TypeString, value)
	}
	if _u.mutation.RequestedRunnerTypeCleared() {
		_spec.ClearField(execution.FieldRequestedRunnerType, field.TypeString)
	}
	if value, ok := _u.mutation.RequestedRunnerID(); ok {
		_spec.SetField(execution.FieldRequestedRunnerID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedRunnerID(); ok {
		_spec.AddField(execution.FieldRequestedRunnerID, field.TypeInt, value)
	}
	if _u.mutation.RequestedRunnerIDCleared() {
		_spec.ClearField(execution.FieldRequestedRunnerID, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusReason(); ok {
		_spec.SetField(execution.FieldStatusReason, field.TypeString, value)
	}
	if _u.mutation.StatusReasonCleared() {
		_spec.ClearField(execution.FieldStatusReason, field.TypeString)
	}
	if value, ok := _u.mutation.TotalShards(); ok {
		_spec.SetField(execution.FieldTotalShards, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalShards(); ok {
		_spec.AddField(execution.FieldTotalShards, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ShardResults(); ok {
		_spec.SetField(execution.FieldShardResults, field.TypeJSON, value)
	}
	if _u.mutation.ShardResultsCleared() {
		_spec.ClearField(execution.FieldShardResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.AggregatedResults(); ok {
		_spec.SetField(execution.FieldAggregatedResults, field.TypeJSON, value)
	}
	if _u.mutation.AggregatedResultsCleared() {
		_spec.ClearField(execution.FieldAggregatedResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(execution.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(execution.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(execution.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(execution.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(execution.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(execution.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(execution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(execution.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(execution.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(execution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProgressAt(); ok {
		_spec.SetField(execution.FieldLastProgressAt, field.TypeTime, value)
	}
	if _u.mutation.LastProgressAtCleared() {
		_spec.ClearField(execution.FieldLastProgressAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RunnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AllocationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAllocationsIDs(); len(nodes) > 0 && !_u.mutation.AllocationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AllocationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
