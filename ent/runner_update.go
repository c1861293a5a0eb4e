// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/predicate"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
)

// RunnerUpdate is the builder for updating Runner entities.
type RunnerUpdate struct {
	config
	hooks    []Hook
	mutation *RunnerMutation
}

// Where appends a list predicates to the RunnerUpdate builder.
func (_u *RunnerUpdate) Where(ps ...predicate.Runner) *RunnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RunnerUpdate) SetName(v string) *RunnerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableName(v *string) *RunnerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *RunnerUpdate) SetType(v string) *RunnerUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableType(v *string) *RunnerUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetEndpointURL sets the "endpoint_url" field.
func (_u *RunnerUpdate) SetEndpointURL(v string) *RunnerUpdate {
	_u.mutation.SetEndpointURL(v)
	return _u
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableEndpointURL(v *string) *RunnerUpdate {
	if v != nil {
		_u.SetEndpointURL(*v)
	}
	return _u
}

// SetHealthCheckURL sets the "health_check_url" field.
func (_u *RunnerUpdate) SetHealthCheckURL(v string) *RunnerUpdate {
	_u.mutation.SetHealthCheckURL(v)
	return _u
}

// SetNillableHealthCheckURL sets the "health_check_url" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableHealthCheckURL(v *string) *RunnerUpdate {
	if v != nil {
		_u.SetHealthCheckURL(*v)
	}
	return _u
}

// ClearHealthCheckURL clears the value of the "health_check_url" field.
func (_u *RunnerUpdate) ClearHealthCheckURL() *RunnerUpdate {
	_u.mutation.ClearHealthCheckURL()
	return _u
}

// SetWebhookToken sets the "webhook_token" field.
func (_u *RunnerUpdate) SetWebhookToken(v string) *RunnerUpdate {
	_u.mutation.SetWebhookToken(v)
	return _u
}

// SetNillableWebhookToken sets the "webhook_token" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableWebhookToken(v *string) *RunnerUpdate {
	if v != nil {
		_u.SetWebhookToken(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *RunnerUpdate) SetCapabilities(v []string) *RunnerUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *RunnerUpdate) AppendCapabilities(v []string) *RunnerUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *RunnerUpdate) ClearCapabilities() *RunnerUpdate {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetMaxConcurrentJobs sets the "max_concurrent_jobs" field.
func (_u *RunnerUpdate) SetMaxConcurrentJobs(v int) *RunnerUpdate {
	_u.mutation.ResetMaxConcurrentJobs()
	_u.mutation.SetMaxConcurrentJobs(v)
	return _u
}

// SetNillableMaxConcurrentJobs sets the "max_concurrent_jobs" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableMaxConcurrentJobs(v *int) *RunnerUpdate {
	if v != nil {
		_u.SetMaxConcurrentJobs(*v)
	}
	return _u
}

// AddMaxConcurrentJobs adds value to the "max_concurrent_jobs" field.
func (_u *RunnerUpdate) AddMaxConcurrentJobs(v int) *RunnerUpdate {
	_u.mutation.AddMaxConcurrentJobs(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RunnerUpdate) SetPriority(v int) *RunnerUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillablePriority(v *int) *RunnerUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RunnerUpdate) AddPriority(v int) *RunnerUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunnerUpdate) SetStatus(v runner.Status) *RunnerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableStatus(v *runner.Status) *RunnerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHealth sets the "health" field.
func (_u *RunnerUpdate) SetHealth(v runner.Health) *RunnerUpdate {
	_u.mutation.SetHealth(v)
	return _u
}

// SetNillableHealth sets the "health" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableHealth(v *runner.Health) *RunnerUpdate {
	if v != nil {
		_u.SetHealth(*v)
	}
	return _u
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (_u *RunnerUpdate) SetLastHealthCheckAt(v time.Time) *RunnerUpdate {
	_u.mutation.SetLastHealthCheckAt(v)
	return _u
}

// SetNillableLastHealthCheckAt sets the "last_health_check_at" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableLastHealthCheckAt(v *time.Time) *RunnerUpdate {
	if v != nil {
		_u.SetLastHealthCheckAt(*v)
	}
	return _u
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (_u *RunnerUpdate) ClearLastHealthCheckAt() *RunnerUpdate {
	_u.mutation.ClearLastHealthCheckAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RunnerUpdate) SetMetadata(v map[string]interface{}) *RunnerUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *RunnerUpdate) ClearMetadata() *RunnerUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunnerUpdate) SetCreatedAt(v time.Time) *RunnerUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableCreatedAt(v *time.Time) *RunnerUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RunnerUpdate) SetUpdatedAt(v time.Time) *RunnerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_u *RunnerUpdate) AddExecutionIDs(ids ...string) *RunnerUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_u *RunnerUpdate) AddExecutions(v ...*Execution) *RunnerUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddAllocationIDs adds the "allocations" edge to the ResourceAllocation entity by IDs.
func (_u *RunnerUpdate) AddAllocationIDs(ids ...int) *RunnerUpdate {
	_u.mutation.AddAllocationIDs(ids...)
	return _u
}

// AddAllocations adds the "allocations" edges to the ResourceAllocation entity.
func (_u *RunnerUpdate) AddAllocations(v ...*ResourceAllocation) *RunnerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAllocationIDs(ids...)
}

// AddHealthSampleIDs adds the "health_samples" edge to the HealthSample entity by IDs.
func (_u *RunnerUpdate) AddHealthSampleIDs(ids ...int) *RunnerUpdate {
	_u.mutation.AddHealthSampleIDs(ids...)
	return _u
}

// AddHealthSamples adds the "health_samples" edges to the HealthSample entity.
func (_u *RunnerUpdate) AddHealthSamples(v ...*HealthSample) *RunnerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHealthSampleIDs(ids...)
}

// Mutation returns the RunnerMutation object of the builder.
func (_u *RunnerUpdate) Mutation() *RunnerMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (_u *RunnerUpdate) ClearExecutions() *RunnerUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (_u *RunnerUpdate) RemoveExecutionIDs(ids ...string) *RunnerUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (_u *RunnerUpdate) RemoveExecutions(v ...*Execution) *RunnerUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearAllocations clears all "allocations" edges to the ResourceAllocation entity.
func (_u *RunnerUpdate) ClearAllocations() *RunnerUpdate {
	_u.mutation.ClearAllocations()
	return _u
}

// RemoveAllocationIDs removes the "allocations" edge to ResourceAllocation entities by IDs.
func (_u *RunnerUpdate) RemoveAllocationIDs(ids ...int) *RunnerUpdate {
	_u.mutation.RemoveAllocationIDs(ids...)
	return _u
}

// RemoveAllocations removes "allocations" edges to ResourceAllocation entities.
func (_u *RunnerUpdate) RemoveAllocations(v ...*ResourceAllocation) *RunnerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAllocationIDs(ids...)
}

// ClearHealthSamples clears all "health_samples" edges to the HealthSample entity.
func (_u *RunnerUpdate) ClearHealthSamples() *RunnerUpdate {
	_u.mutation.ClearHealthSamples()
	return _u
}

// RemoveHealthSampleIDs removes the "health_samples" edge to HealthSample entities by IDs.
func (_u *RunnerUpdate) RemoveHealthSampleIDs(ids ...int) *RunnerUpdate {
	_u.mutation.RemoveHealthSampleIDs(ids...)
	return _u
}

// RemoveHealthSamples removes "health_samples" edges to HealthSample entities.
func (_u *RunnerUpdate) RemoveHealthSamples(v ...*HealthSample) *RunnerUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHealthSampleIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunnerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunnerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := runner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunnerUpdate) check() error {
	if v, ok := _u.mutation.MaxConcurrentJobs(); ok {
		if err := runner.MaxConcurrentJobsValidator(v); err != nil {
			return &ValidationError{Name: "max_concurrent_jobs", err: fmt.Errorf(`ent: validator failed for field "Runner.max_concurrent_jobs": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := runner.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Runner.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Health(); ok {
		if err := runner.HealthValidator(v); err != nil {
			return &ValidationError{Name: "health", err: fmt.Errorf(`ent: validator failed for field "Runner.health": %w`, err)}
		}
	}
	return nil
}

func (_u *RunnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runner.Table, runner.Columns, sqlgraph.NewFieldSpec(runner.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(runner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(runner.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointURL(); ok {
		_spec.SetField(runner.FieldEndpointURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.HealthCheckURL(); ok {
		_spec.SetField(runner.FieldHealthCheckURL, field.TypeString, value)
	}
	if _u.mutation.HealthCheckURLCleared() {
		_spec.ClearField(runner.FieldHealthCheckURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookToken(); ok {
		_spec.SetField(runner.FieldWebhookToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(runner.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runner.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(runner.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxConcurrentJobs(); ok {
		_spec.SetField(runner.FieldMaxConcurrentJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrentJobs(); ok {
		_spec.AddField(runner.FieldMaxConcurrentJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(runner.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(runner.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runner.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Health(); ok {
		_spec.SetField(runner.FieldHealth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHealthCheckAt(); ok {
		_spec.SetField(runner.FieldLastHealthCheckAt, field.TypeTime, value)
	}
	if _u.mutation.LastHealthCheckAtCleared() {
		_spec.ClearField(runner.FieldLastHealthCheckAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(runner.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(runner.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(runner.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(runner.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AllocationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAllocationsIDs(); len(nodes) > 0 && !_u.mutation.AllocationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AllocationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HealthSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHealthSamplesIDs(); len(nodes) > 0 && !_u.mutation.HealthSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HealthSamplesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunnerUpdateOne is the builder for updating a single Runner entity.
type RunnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunnerMutation
}

// SetName sets the "name" field.
func (_u *RunnerUpdateOne) SetName(v string) *RunnerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableName(v *string) *RunnerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *RunnerUpdateOne) SetType(v string) *RunnerUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableType(v *string) *RunnerUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetEndpointURL sets the "endpoint_url" field.
func (_u *RunnerUpdateOne) SetEndpointURL(v string) *RunnerUpdateOne {
	_u.mutation.SetEndpointURL(v)
	return _u
}

// SetNillableEndpointURL sets the "endpoint_url" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableEndpointURL(v *string) *RunnerUpdateOne {
	if v != nil {
		_u.SetEndpointURL(*v)
	}
	return _u
}

// SetHealthCheckURL sets the "health_check_url" field.
func (_u *RunnerUpdateOne) SetHealthCheckURL(v string) *RunnerUpdateOne {
	_u.mutation.SetHealthCheckURL(v)
	return _u
}

// SetNillableHealthCheckURL sets the "health_check_url" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableHealthCheckURL(v *string) *RunnerUpdateOne {
	if v != nil {
		_u.SetHealthCheckURL(*v)
	}
	return _u
}

// ClearHealthCheckURL clears the value of the "health_check_url" field.
func (_u *RunnerUpdateOne) ClearHealthCheckURL() *RunnerUpdateOne {
	_u.mutation.ClearHealthCheckURL()
	return _u
}

// SetWebhookToken sets the "webhook_token" field.
func (_u *RunnerUpdateOne) SetWebhookToken(v string) *RunnerUpdateOne {
	_u.mutation.SetWebhookToken(v)
	return _u
}

// SetNillableWebhookToken sets the "webhook_token" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableWebhookToken(v *string) *RunnerUpdateOne {
	if v != nil {
		_u.SetWebhookToken(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *RunnerUpdateOne) SetCapabilities(v []string) *RunnerUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *RunnerUpdateOne) AppendCapabilities(v []string) *RunnerUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (_u *RunnerUpdateOne) ClearCapabilities() *RunnerUpdateOne {
	_u.mutation.ClearCapabilities()
	return _u
}

// SetMaxConcurrentJobs sets the "max_concurrent_jobs" field.
func (_u *RunnerUpdateOne) SetMaxConcurrentJobs(v int) *RunnerUpdateOne {
	_u.mutation.ResetMaxConcurrentJobs()
	_u.mutation.SetMaxConcurrentJobs(v)
	return _u
}

// SetNillableMaxConcurrentJobs sets the "max_concurrent_jobs" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableMaxConcurrentJobs(v *int) *RunnerUpdateOne {
	if v != nil {
		_u.SetMaxConcurrentJobs(*v)
	}
	return _u
}

// AddMaxConcurrentJobs adds value to the "max_concurrent_jobs" field.
func (_u *RunnerUpdateOne) AddMaxConcurrentJobs(v int) *RunnerUpdateOne {
	_u.mutation.AddMaxConcurrentJobs(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RunnerUpdateOne) SetPriority(v int) *RunnerUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillablePriority(v *int) *RunnerUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RunnerUpdateOne) AddPriority(v int) *RunnerUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunnerUpdateOne) SetStatus(v runner.Status) *RunnerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableStatus(v *runner.Status) *RunnerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHealth sets the "health" field.
func (_u *RunnerUpdateOne) SetHealth(v runner.Health) *RunnerUpdateOne {
	_u.mutation.SetHealth(v)
	return _u
}

// SetNillableHealth sets the "health" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableHealth(v *runner.Health) *RunnerUpdateOne {
	if v != nil {
		_u.SetHealth(*v)
	}
	return _u
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (_u *RunnerUpdateOne) SetLastHealthCheckAt(v time.Time) *RunnerUpdateOne {
	_u.mutation.SetLastHealthCheckAt(v)
	return _u
}

// SetNillableLastHealthCheckAt sets the "last_health_check_at" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableLastHealthCheckAt(v *time.Time) *RunnerUpdateOne {
	if v != nil {
		_u.SetLastHealthCheckAt(*v)
	}
	return _u
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (_u *RunnerUpdateOne) ClearLastHealthCheckAt() *RunnerUpdateOne {
	_u.mutation.ClearLastHealthCheckAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RunnerUpdateOne) SetMetadata(v map[string]interface{}) *RunnerUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *RunnerUpdateOne) ClearMetadata() *RunnerUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunnerUpdateOne) SetCreatedAt(v time.Time) *RunnerUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableCreatedAt(v *time.Time) *RunnerUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RunnerUpdateOne) SetUpdatedAt(v time.Time) *RunnerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (_u *RunnerUpdateOne) AddExecutionIDs(ids ...string) *RunnerUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (_u *RunnerUpdateOne) AddExecutions(v ...*Execution) *RunnerUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddAllocationIDs adds the "allocations" edge to the ResourceAllocation entity by IDs.
func (_u *RunnerUpdateOne) AddAllocationIDs(ids ...int) *RunnerUpdateOne {
	_u.mutation.AddAllocationIDs(ids...)
	return _u
}

// AddAllocations adds the "allocations" edges to the ResourceAllocation entity.
func (_u *RunnerUpdateOne) AddAllocations(v ...*ResourceAllocation) *RunnerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAllocationIDs(ids...)
}

// AddHealthSampleIDs adds the "health_samples" edge to the HealthSample entity by IDs.
func (_u *RunnerUpdateOne) AddHealthSampleIDs(ids ...int) *RunnerUpdateOne {
	_u.mutation.AddHealthSampleIDs(ids...)
	return _u
}

// AddHealthSamples adds the "health_samples" edges to the HealthSample entity.
func (_u *RunnerUpdateOne) AddHealthSamples(v ...*HealthSample) *RunnerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHealthSampleIDs(ids...)
}

// Mutation returns the RunnerMutation object of the builder.
func (_u *RunnerUpdateOne) Mutation() *RunnerMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (_u *RunnerUpdateOne) ClearExecutions() *RunnerUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (_u *RunnerUpdateOne) RemoveExecutionIDs(ids ...string) *RunnerUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (_u *RunnerUpdateOne) RemoveExecutions(v ...*Execution) *RunnerUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearAllocations clears all "allocations" edges to the ResourceAllocation entity.
func (_u *RunnerUpdateOne) ClearAllocations() *RunnerUpdateOne {
	_u.mutation.ClearAllocations()
	return _u
}

// RemoveAllocationIDs removes the "allocations" edge to ResourceAllocation entities by IDs.
func (_u *RunnerUpdateOne) RemoveAllocationIDs(ids ...int) *RunnerUpdateOne {
	_u.mutation.RemoveAllocationIDs(ids...)
	return _u
}

// RemoveAllocations removes "allocations" edges to ResourceAllocation entities.
func (_u *RunnerUpdateOne) RemoveAllocations(v ...*ResourceAllocation) *RunnerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAllocationIDs(ids...)
}

// ClearHealthSamples clears all "health_samples" edges to the HealthSample entity.
func (_u *RunnerUpdateOne) ClearHealthSamples() *RunnerUpdateOne {
	_u.mutation.ClearHealthSamples()
	return _u
}

// RemoveHealthSampleIDs removes the "health_samples" edge to HealthSample entities by IDs.
func (_u *RunnerUpdateOne) RemoveHealthSampleIDs(ids ...int) *RunnerUpdateOne {
	_u.mutation.RemoveHealthSampleIDs(ids...)
	return _u
}

// RemoveHealthSamples removes "health_samples" edges to HealthSample entities.
func (_u *RunnerUpdateOne) RemoveHealthSamples(v ...*HealthSample) *RunnerUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHealthSampleIDs(ids...)
}

// Where appends a list predicates to the RunnerUpdate builder.
func (_u *RunnerUpdateOne) Where(ps ...predicate.Runner) *RunnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunnerUpdateOne) Select(field string, fields ...string) *RunnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Runner entity.
func (_u *RunnerUpdateOne) Save(ctx context.Context) (*Runner, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerUpdateOne) SaveX(ctx context.Context) *Runner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunnerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := runner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunnerUpdateOne) check() error {
	if v, ok := _u.mutation.MaxConcurrentJobs(); ok {
		if err := runner.MaxConcurrentJobsValidator(v); err != nil {
			return &ValidationError{Name: "max_concurrent_jobs", err: fmt.Errorf(`ent: validator failed for field "Runner.max_concurrent_jobs": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := runner.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Runner.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Health(); ok {
		if err := runner.HealthValidator(v); err != nil {
			return &ValidationError{Name: "health", err: fmt.Errorf(`ent: validator failed for field "Runner.health": %w`, err)}
		}
	}
	return nil
}

func (_u *RunnerUpdateOne) sqlSave(ctx context.Context) (_node *Runner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runner.Table, runner.Columns, sqlgraph.NewFieldSpec(runner.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Runner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runner.FieldID)
		for _, f := range fields {
			if !runner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runner.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(runner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(runner.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointURL(); ok {
		_spec.SetField(runner.FieldEndpointURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.HealthCheckURL(); ok {
		_spec.SetField(runner.FieldHealthCheckURL, field.TypeString, value)
	}
	if _u.mutation.HealthCheckURLCleared() {
		_spec.ClearField(runner.FieldHealthCheckURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookToken(); ok {
		_spec.SetField(runner.FieldWebhookToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(runner.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runner.FieldCapabilities, value)
		})
	}
	if _u.mutation.CapabilitiesCleared() {
		_spec.ClearField(runner.FieldCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxConcurrentJobs(); ok {
		_spec.SetField(runner.FieldMaxConcurrentJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrentJobs(); ok {
		_spec.AddField(runner.FieldMaxConcurrentJobs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(runner.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(runner.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runner.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Health(); ok {
		_spec.SetField(runner.FieldHealth, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastHealthCheckAt(); ok {
		_spec.SetField(runner.FieldLastHealthCheckAt, field.TypeTime, value)
	}
	if _u.mutation.LastHealthCheckAtCleared() {
		_spec.ClearField(runner.FieldLastHealthCheckAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(runner.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(runner.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(runner.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(runner.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AllocationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAllocationsIDs(); len(nodes) > 0 && !_u.mutation.AllocationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AllocationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HealthSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHealthSamplesIDs(); len(nodes) > 0 && !_u.mutation.HealthSamplesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HealthSamplesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Runner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
