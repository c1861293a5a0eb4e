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
	"github.com/baton-ci/baton/ent/auditevent"
	"github.com/baton-ci/baton/ent/predicate"
)

// AuditEventUpdate is the builder for updating AuditEvent entities.
type AuditEventUpdate struct {
	config
	hooks    []Hook
	mutation *AuditEventMutation
}

// Where appends a list predicates to the AuditEventUpdate builder.
func (_u *AuditEventUpdate) Where(ps ...predicate.AuditEvent) *AuditEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *AuditEventUpdate) SetChannel(v string) *AuditEventUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AuditEventUpdate) SetNillableChannel(v *string) *AuditEventUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *AuditEventUpdate) SetExecutionID(v string) *AuditEventUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *AuditEventUpdate) SetNillableExecutionID(v *string) *AuditEventUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *AuditEventUpdate) ClearExecutionID() *AuditEventUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AuditEventUpdate) SetPayload(v map[string]interface{}) *AuditEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditEventUpdate) SetCreatedAt(v time.Time) *AuditEventUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditEventUpdate) SetNillableCreatedAt(v *time.Time) *AuditEventUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AuditEventMutation object of the builder.
func (_u *AuditEventUpdate) Mutation() *AuditEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditevent.Table, auditevent.Columns, sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(auditevent.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(auditevent.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(auditevent.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(auditevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditevent.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditEventUpdateOne is the builder for updating a single AuditEvent entity.
type AuditEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditEventMutation
}

// SetChannel sets the "channel" field.
func (_u *AuditEventUpdateOne) SetChannel(v string) *AuditEventUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AuditEventUpdateOne) SetNillableChannel(v *string) *AuditEventUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *AuditEventUpdateOne) SetExecutionID(v string) *AuditEventUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *AuditEventUpdateOne) SetNillableExecutionID(v *string) *AuditEventUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *AuditEventUpdateOne) ClearExecutionID() *AuditEventUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AuditEventUpdateOne) SetPayload(v map[string]interface{}) *AuditEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AuditEventUpdateOne) SetCreatedAt(v time.Time) *AuditEventUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AuditEventUpdateOne) SetNillableCreatedAt(v *time.Time) *AuditEventUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the AuditEventMutation object of the builder.
func (_u *AuditEventUpdateOne) Mutation() *AuditEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditEventUpdate builder.
func (_u *AuditEventUpdateOne) Where(ps ...predicate.AuditEvent) *AuditEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditEventUpdateOne) Select(field string, fields ...string) *AuditEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditEvent entity.
func (_u *AuditEventUpdateOne) Save(ctx context.Context) (*AuditEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEventUpdateOne) SaveX(ctx context.Context) *AuditEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditEventUpdateOne) sqlSave(ctx context.Context) (_node *AuditEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditevent.Table, auditevent.Columns, sqlgraph.NewFieldSpec(auditevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditevent.FieldID)
		for _, f := range fields {
			if !auditevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditevent.FieldID {
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
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(auditevent.FieldChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(auditevent.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(auditevent.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(auditevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(auditevent.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &AuditEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
