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
	"github.com/baton-ci/baton/ent/balancingrule"
	"github.com/baton-ci/baton/ent/predicate"
)

// BalancingRuleUpdate is the builder for updating BalancingRule entities.
type BalancingRuleUpdate struct {
	config
	hooks    []Hook
	mutation *BalancingRuleMutation
}

// Where appends a list predicates to the BalancingRuleUpdate builder.
func (_u *BalancingRuleUpdate) Where(ps ...predicate.BalancingRule) *BalancingRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BalancingRuleUpdate) SetName(v string) *BalancingRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillableName(v *string) *BalancingRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *BalancingRuleUpdate) SetActive(v bool) *BalancingRuleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillableActive(v *bool) *BalancingRuleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *BalancingRuleUpdate) SetPriority(v int) *BalancingRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillablePriority(v *int) *BalancingRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *BalancingRuleUpdate) AddPriority(v int) *BalancingRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *BalancingRuleUpdate) SetKind(v balancingrule.Kind) *BalancingRuleUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillableKind(v *balancingrule.Kind) *BalancingRuleUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTestSuitePattern sets the "test_suite_pattern" field.
func (_u *BalancingRuleUpdate) SetTestSuitePattern(v string) *BalancingRuleUpdate {
	_u.mutation.SetTestSuitePattern(v)
	return _u
}

// SetNillableTestSuitePattern sets the "test_suite_pattern" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillableTestSuitePattern(v *string) *BalancingRuleUpdate {
	if v != nil {
		_u.SetTestSuitePattern(*v)
	}
	return _u
}

// ClearTestSuitePattern clears the value of the "test_suite_pattern" field.
func (_u *BalancingRuleUpdate) ClearTestSuitePattern() *BalancingRuleUpdate {
	_u.mutation.ClearTestSuitePattern()
	return _u
}

// SetEnvironmentPattern sets the "environment_pattern" field.
func (_u *BalancingRuleUpdate) SetEnvironmentPattern(v string) *BalancingRuleUpdate {
	_u.mutation.SetEnvironmentPattern(v)
	return _u
}

// SetNillableEnvironmentPattern sets the "environment_pattern" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillableEnvironmentPattern(v *string) *BalancingRuleUpdate {
	if v != nil {
		_u.SetEnvironmentPattern(*v)
	}
	return _u
}

// ClearEnvironmentPattern clears the value of the "environment_pattern" field.
func (_u *BalancingRuleUpdate) ClearEnvironmentPattern() *BalancingRuleUpdate {
	_u.mutation.ClearEnvironmentPattern()
	return _u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_u *BalancingRuleUpdate) SetRequiredCapabilities(v []string) *BalancingRuleUpdate {
	_u.mutation.SetRequiredCapabilities(v)
	return _u
}

// AppendRequiredCapabilities appends value to the "required_capabilities" field.
func (_u *BalancingRuleUpdate) AppendRequiredCapabilities(v []string) *BalancingRuleUpdate {
	_u.mutation.AppendRequiredCapabilities(v)
	return _u
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (_u *BalancingRuleUpdate) ClearRequiredCapabilities() *BalancingRuleUpdate {
	_u.mutation.ClearRequiredCapabilities()
	return _u
}

// SetRunnerTypeFilter sets the "runner_type_filter" field.
func (_u *BalancingRuleUpdate) SetRunnerTypeFilter(v string) *BalancingRuleUpdate {
	_u.mutation.SetRunnerTypeFilter(v)
	return _u
}

// SetNillableRunnerTypeFilter sets the "runner_type_filter" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillableRunnerTypeFilter(v *string) *BalancingRuleUpdate {
	if v != nil {
		_u.SetRunnerTypeFilter(*v)
	}
	return _u
}

// ClearRunnerTypeFilter clears the value of the "runner_type_filter" field.
func (_u *BalancingRuleUpdate) ClearRunnerTypeFilter() *BalancingRuleUpdate {
	_u.mutation.ClearRunnerTypeFilter()
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *BalancingRuleUpdate) SetCursor(v int) *BalancingRuleUpdate {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillableCursor(v *int) *BalancingRuleUpdate {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *BalancingRuleUpdate) AddCursor(v int) *BalancingRuleUpdate {
	_u.mutation.AddCursor(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BalancingRuleUpdate) SetCreatedAt(v time.Time) *BalancingRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BalancingRuleUpdate) SetNillableCreatedAt(v *time.Time) *BalancingRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BalancingRuleUpdate) SetUpdatedAt(v time.Time) *BalancingRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BalancingRuleMutation object of the builder.
func (_u *BalancingRuleUpdate) Mutation() *BalancingRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BalancingRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BalancingRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BalancingRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BalancingRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BalancingRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := balancingrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BalancingRuleUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := balancingrule.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "BalancingRule.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *BalancingRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(balancingrule.Table, balancingrule.Columns, sqlgraph.NewFieldSpec(balancingrule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(balancingrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(balancingrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(balancingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(balancingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(balancingrule.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TestSuitePattern(); ok {
		_spec.SetField(balancingrule.FieldTestSuitePattern, field.TypeString, value)
	}
	if _u.mutation.TestSuitePatternCleared() {
		_spec.ClearField(balancingrule.FieldTestSuitePattern, field.TypeString)
	}
	if value, ok := _u.mutation.EnvironmentPattern(); ok {
		_spec.SetField(balancingrule.FieldEnvironmentPattern, field.TypeString, value)
	}
	if _u.mutation.EnvironmentPatternCleared() {
		_spec.ClearField(balancingrule.FieldEnvironmentPattern, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredCapabilities(); ok {
		_spec.SetField(balancingrule.FieldRequiredCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, balancingrule.FieldRequiredCapabilities, value)
		})
	}
	if _u.mutation.RequiredCapabilitiesCleared() {
		_spec.ClearField(balancingrule.FieldRequiredCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.RunnerTypeFilter(); ok {
		_spec.SetField(balancingrule.FieldRunnerTypeFilter, field.TypeString, value)
	}
	if _u.mutation.RunnerTypeFilterCleared() {
		_spec.ClearField(balancingrule.FieldRunnerTypeFilter, field.TypeString)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(balancingrule.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(balancingrule.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(balancingrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(balancingrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{balancingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BalancingRuleUpdateOne is the builder for updating a single BalancingRule entity.
type BalancingRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BalancingRuleMutation
}

// SetName sets the "name" field.
func (_u *BalancingRuleUpdateOne) SetName(v string) *BalancingRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillableName(v *string) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *BalancingRuleUpdateOne) SetActive(v bool) *BalancingRuleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillableActive(v *bool) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *BalancingRuleUpdateOne) SetPriority(v int) *BalancingRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillablePriority(v *int) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *BalancingRuleUpdateOne) AddPriority(v int) *BalancingRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *BalancingRuleUpdateOne) SetKind(v balancingrule.Kind) *BalancingRuleUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillableKind(v *balancingrule.Kind) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTestSuitePattern sets the "test_suite_pattern" field.
func (_u *BalancingRuleUpdateOne) SetTestSuitePattern(v string) *BalancingRuleUpdateOne {
	_u.mutation.SetTestSuitePattern(v)
	return _u
}

// SetNillableTestSuitePattern sets the "test_suite_pattern" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillableTestSuitePattern(v *string) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetTestSuitePattern(*v)
	}
	return _u
}

// ClearTestSuitePattern clears the value of the "test_suite_pattern" field.
func (_u *BalancingRuleUpdateOne) ClearTestSuitePattern() *BalancingRuleUpdateOne {
	_u.mutation.ClearTestSuitePattern()
	return _u
}

// SetEnvironmentPattern sets the "environment_pattern" field.
func (_u *BalancingRuleUpdateOne) SetEnvironmentPattern(v string) *BalancingRuleUpdateOne {
	_u.mutation.SetEnvironmentPattern(v)
	return _u
}

// SetNillableEnvironmentPattern sets the "environment_pattern" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillableEnvironmentPattern(v *string) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetEnvironmentPattern(*v)
	}
	return _u
}

// ClearEnvironmentPattern clears the value of the "environment_pattern" field.
func (_u *BalancingRuleUpdateOne) ClearEnvironmentPattern() *BalancingRuleUpdateOne {
	_u.mutation.ClearEnvironmentPattern()
	return _u
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (_u *BalancingRuleUpdateOne) SetRequiredCapabilities(v []string) *BalancingRuleUpdateOne {
	_u.mutation.SetRequiredCapabilities(v)
	return _u
}

// AppendRequiredCapabilities appends value to the "required_capabilities" field.
func (_u *BalancingRuleUpdateOne) AppendRequiredCapabilities(v []string) *BalancingRuleUpdateOne {
	_u.mutation.AppendRequiredCapabilities(v)
	return _u
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (_u *BalancingRuleUpdateOne) ClearRequiredCapabilities() *BalancingRuleUpdateOne {
	_u.mutation.ClearRequiredCapabilities()
	return _u
}

// SetRunnerTypeFilter sets the "runner_type_filter" field.
func (_u *BalancingRuleUpdateOne) SetRunnerTypeFilter(v string) *BalancingRuleUpdateOne {
	_u.mutation.SetRunnerTypeFilter(v)
	return _u
}

// SetNillableRunnerTypeFilter sets the "runner_type_filter" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillableRunnerTypeFilter(v *string) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetRunnerTypeFilter(*v)
	}
	return _u
}

// ClearRunnerTypeFilter clears the value of the "runner_type_filter" field.
func (_u *BalancingRuleUpdateOne) ClearRunnerTypeFilter() *BalancingRuleUpdateOne {
	_u.mutation.ClearRunnerTypeFilter()
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *BalancingRuleUpdateOne) SetCursor(v int) *BalancingRuleUpdateOne {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillableCursor(v *int) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *BalancingRuleUpdateOne) AddCursor(v int) *BalancingRuleUpdateOne {
	_u.mutation.AddCursor(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BalancingRuleUpdateOne) SetCreatedAt(v time.Time) *BalancingRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BalancingRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *BalancingRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BalancingRuleUpdateOne) SetUpdatedAt(v time.Time) *BalancingRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BalancingRuleMutation object of the builder.
func (_u *BalancingRuleUpdateOne) Mutation() *BalancingRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the BalancingRuleUpdate builder.
func (_u *BalancingRuleUpdateOne) Where(ps ...predicate.BalancingRule) *BalancingRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BalancingRuleUpdateOne) Select(field string, fields ...string) *BalancingRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BalancingRule entity.
func (_u *BalancingRuleUpdateOne) Save(ctx context.Context) (*BalancingRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BalancingRuleUpdateOne) SaveX(ctx context.Context) *BalancingRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BalancingRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BalancingRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BalancingRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := balancingrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BalancingRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := balancingrule.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "BalancingRule.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *BalancingRuleUpdateOne) sqlSave(ctx context.Context) (_node *BalancingRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(balancingrule.Table, balancingrule.Columns, sqlgraph.NewFieldSpec(balancingrule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BalancingRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, balancingrule.FieldID)
		for _, f := range fields {
			if !balancingrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != balancingrule.FieldID {
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
		_spec.SetField(balancingrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(balancingrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(balancingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(balancingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(balancingrule.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TestSuitePattern(); ok {
		_spec.SetField(balancingrule.FieldTestSuitePattern, field.TypeString, value)
	}
	if _u.mutation.TestSuitePatternCleared() {
		_spec.ClearField(balancingrule.FieldTestSuitePattern, field.TypeString)
	}
	if value, ok := _u.mutation.EnvironmentPattern(); ok {
		_spec.SetField(balancingrule.FieldEnvironmentPattern, field.TypeString, value)
	}
	if _u.mutation.EnvironmentPatternCleared() {
		_spec.ClearField(balancingrule.FieldEnvironmentPattern, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredCapabilities(); ok {
		_spec.SetField(balancingrule.FieldRequiredCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequiredCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, balancingrule.FieldRequiredCapabilities, value)
		})
	}
	if _u.mutation.RequiredCapabilitiesCleared() {
		_spec.ClearField(balancingrule.FieldRequiredCapabilities, field.TypeJSON)
	}
	if value, ok := _u.mutation.RunnerTypeFilter(); ok {
		_spec.SetField(balancingrule.FieldRunnerTypeFilter, field.TypeString, value)
	}
	if _u.mutation.RunnerTypeFilterCleared() {
		_spec.ClearField(balancingrule.FieldRunnerTypeFilter, field.TypeString)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(balancingrule.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(balancingrule.FieldCursor, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(balancingrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(balancingrule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BalancingRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{balancingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
