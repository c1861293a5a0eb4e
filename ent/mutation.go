// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/baton-ci/baton/ent/auditevent"
	"github.com/baton-ci/baton/ent/balancingrule"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/predicate"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEvent         = "AuditEvent"
	TypeBalancingRule      = "BalancingRule"
	TypeExecution          = "Execution"
	TypeHealthSample       = "HealthSample"
	TypeResourceAllocation = "ResourceAllocation"
	TypeRunner             = "Runner"
)

// AuditEventMutation represents an operation that mutates the AuditEvent nodes in the graph.
type AuditEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	execution_id  *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditEvent, error)
	predicates    []predicate.AuditEvent
}

var _ ent.Mutation = (*AuditEventMutation)(nil)

// auditeventOption allows management of the mutation configuration using functional options.
type auditeventOption func(*AuditEventMutation)

// newAuditEventMutation creates new mutation for the AuditEvent entity.
func newAuditEventMutation(c config, op Op, opts ...auditeventOption) *AuditEventMutation {
	m := &AuditEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEventID sets the ID field of the mutation.
func withAuditEventID(id int) auditeventOption {
	return func(m *AuditEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEvent
		)
		m.oldValue = func(ctx context.Context) (*AuditEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEvent sets the old AuditEvent of the mutation.
func withAuditEvent(node *AuditEvent) auditeventOption {
	return func(m *AuditEventMutation) {
		m.oldValue = func(context.Context) (*AuditEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *AuditEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AuditEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AuditEventMutation) ResetChannel() {
	m.channel = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *AuditEventMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *AuditEventMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *AuditEventMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[auditevent.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *AuditEventMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *AuditEventMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, auditevent.FieldExecutionID)
}

// SetPayload sets the "payload" field.
func (m *AuditEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEventMutation builder.
func (m *AuditEventMutation) Where(ps ...predicate.AuditEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEvent).
func (m *AuditEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.channel != nil {
		fields = append(fields, auditevent.FieldChannel)
	}
	if m.execution_id != nil {
		fields = append(fields, auditevent.FieldExecutionID)
	}
	if m.payload != nil {
		fields = append(fields, auditevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, auditevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditevent.FieldChannel:
		return m.Channel()
	case auditevent.FieldExecutionID:
		return m.ExecutionID()
	case auditevent.FieldPayload:
		return m.Payload()
	case auditevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditevent.FieldChannel:
		return m.OldChannel(ctx)
	case auditevent.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case auditevent.FieldPayload:
		return m.OldPayload(ctx)
	case auditevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case auditevent.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case auditevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditevent.FieldExecutionID) {
		fields = append(fields, auditevent.FieldExecutionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEventMutation) ClearField(name string) error {
	switch name {
	case auditevent.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEventMutation) ResetField(name string) error {
	switch name {
	case auditevent.FieldChannel:
		m.ResetChannel()
		return nil
	case auditevent.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case auditevent.FieldPayload:
		m.ResetPayload()
		return nil
	case auditevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent edge %s", name)
}

// BalancingRuleMutation represents an operation that mutates the BalancingRule nodes in the graph.
type BalancingRuleMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	name                        *string
	active                      *bool
	priority                    *int
	addpriority                 *int
	kind                        *balancingrule.Kind
	test_suite_pattern          *string
	environment_pattern         *string
	required_capabilities       *[]string
	appendrequired_capabilities []string
	runner_type_filter          *string
	cursor                      *int
	addcursor                   *int
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*BalancingRule, error)
	predicates                  []predicate.BalancingRule
}

var _ ent.Mutation = (*BalancingRuleMutation)(nil)

// balancingruleOption allows management of the mutation configuration using functional options.
type balancingruleOption func(*BalancingRuleMutation)

// newBalancingRuleMutation creates new mutation for the BalancingRule entity.
func newBalancingRuleMutation(c config, op Op, opts ...balancingruleOption) *BalancingRuleMutation {
	m := &BalancingRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeBalancingRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBalancingRuleID sets the ID field of the mutation.
func withBalancingRuleID(id int) balancingruleOption {
	return func(m *BalancingRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *BalancingRule
		)
		m.oldValue = func(ctx context.Context) (*BalancingRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BalancingRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBalancingRule sets the old BalancingRule of the mutation.
func withBalancingRule(node *BalancingRule) balancingruleOption {
	return func(m *BalancingRuleMutation) {
		m.oldValue = func(context.Context) (*BalancingRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BalancingRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BalancingRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BalancingRuleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BalancingRuleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BalancingRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BalancingRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BalancingRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BalancingRuleMutation) ResetName() {
	m.name = nil
}

// SetActive sets the "active" field.
func (m *BalancingRuleMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *BalancingRuleMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *BalancingRuleMutation) ResetActive() {
	m.active = nil
}

// SetPriority sets the "priority" field.
func (m *BalancingRuleMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *BalancingRuleMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *BalancingRuleMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *BalancingRuleMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *BalancingRuleMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetKind sets the "kind" field.
func (m *BalancingRuleMutation) SetKind(b balancingrule.Kind) {
	m.kind = &b
}

// Kind returns the value of the "kind" field in the mutation.
func (m *BalancingRuleMutation) Kind() (r balancingrule.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldKind(ctx context.Context) (v balancingrule.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *BalancingRuleMutation) ResetKind() {
	m.kind = nil
}

// SetTestSuitePattern sets the "test_suite_pattern" field.
func (m *BalancingRuleMutation) SetTestSuitePattern(s string) {
	m.test_suite_pattern = &s
}

// TestSuitePattern returns the value of the "test_suite_pattern" field in the mutation.
func (m *BalancingRuleMutation) TestSuitePattern() (r string, exists bool) {
	v := m.test_suite_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldTestSuitePattern returns the old "test_suite_pattern" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldTestSuitePattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestSuitePattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestSuitePattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestSuitePattern: %w", err)
	}
	return oldValue.TestSuitePattern, nil
}

// ClearTestSuitePattern clears the value of the "test_suite_pattern" field.
func (m *BalancingRuleMutation) ClearTestSuitePattern() {
	m.test_suite_pattern = nil
	m.clearedFields[balancingrule.FieldTestSuitePattern] = struct{}{}
}

// TestSuitePatternCleared returns if the "test_suite_pattern" field was cleared in this mutation.
func (m *BalancingRuleMutation) TestSuitePatternCleared() bool {
	_, ok := m.clearedFields[balancingrule.FieldTestSuitePattern]
	return ok
}

// ResetTestSuitePattern resets all changes to the "test_suite_pattern" field.
func (m *BalancingRuleMutation) ResetTestSuitePattern() {
	m.test_suite_pattern = nil
	delete(m.clearedFields, balancingrule.FieldTestSuitePattern)
}

// SetEnvironmentPattern sets the "environment_pattern" field.
func (m *BalancingRuleMutation) SetEnvironmentPattern(s string) {
	m.environment_pattern = &s
}

// EnvironmentPattern returns the value of the "environment_pattern" field in the mutation.
func (m *BalancingRuleMutation) EnvironmentPattern() (r string, exists bool) {
	v := m.environment_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironmentPattern returns the old "environment_pattern" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldEnvironmentPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironmentPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironmentPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironmentPattern: %w", err)
	}
	return oldValue.EnvironmentPattern, nil
}

// ClearEnvironmentPattern clears the value of the "environment_pattern" field.
func (m *BalancingRuleMutation) ClearEnvironmentPattern() {
	m.environment_pattern = nil
	m.clearedFields[balancingrule.FieldEnvironmentPattern] = struct{}{}
}

// EnvironmentPatternCleared returns if the "environment_pattern" field was cleared in this mutation.
func (m *BalancingRuleMutation) EnvironmentPatternCleared() bool {
	_, ok := m.clearedFields[balancingrule.FieldEnvironmentPattern]
	return ok
}

// ResetEnvironmentPattern resets all changes to the "environment_pattern" field.
func (m *BalancingRuleMutation) ResetEnvironmentPattern() {
	m.environment_pattern = nil
	delete(m.clearedFields, balancingrule.FieldEnvironmentPattern)
}

// SetRequiredCapabilities sets the "required_capabilities" field.
func (m *BalancingRuleMutation) SetRequiredCapabilities(s []string) {
	m.required_capabilities = &s
	m.appendrequired_capabilities = nil
}

// RequiredCapabilities returns the value of the "required_capabilities" field in the mutation.
func (m *BalancingRuleMutation) RequiredCapabilities() (r []string, exists bool) {
	v := m.required_capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredCapabilities returns the old "required_capabilities" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldRequiredCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredCapabilities: %w", err)
	}
	return oldValue.RequiredCapabilities, nil
}

// AppendRequiredCapabilities adds s to the "required_capabilities" field.
func (m *BalancingRuleMutation) AppendRequiredCapabilities(s []string) {
	m.appendrequired_capabilities = append(m.appendrequired_capabilities, s...)
}

// AppendedRequiredCapabilities returns the list of values that were appended to the "required_capabilities" field in this mutation.
func (m *BalancingRuleMutation) AppendedRequiredCapabilities() ([]string, bool) {
	if len(m.appendrequired_capabilities) == 0 {
		return nil, false
	}
	return m.appendrequired_capabilities, true
}

// ClearRequiredCapabilities clears the value of the "required_capabilities" field.
func (m *BalancingRuleMutation) ClearRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
	m.clearedFields[balancingrule.FieldRequiredCapabilities] = struct{}{}
}

// RequiredCapabilitiesCleared returns if the "required_capabilities" field was cleared in this mutation.
func (m *BalancingRuleMutation) RequiredCapabilitiesCleared() bool {
	_, ok := m.clearedFields[balancingrule.FieldRequiredCapabilities]
	return ok
}

// ResetRequiredCapabilities resets all changes to the "required_capabilities" field.
func (m *BalancingRuleMutation) ResetRequiredCapabilities() {
	m.required_capabilities = nil
	m.appendrequired_capabilities = nil
	delete(m.clearedFields, balancingrule.FieldRequiredCapabilities)
}

// SetRunnerTypeFilter sets the "runner_type_filter" field.
func (m *BalancingRuleMutation) SetRunnerTypeFilter(s string) {
	m.runner_type_filter = &s
}

// RunnerTypeFilter returns the value of the "runner_type_filter" field in the mutation.
func (m *BalancingRuleMutation) RunnerTypeFilter() (r string, exists bool) {
	v := m.runner_type_filter
	if v == nil {
		return
	}
	return *v, true
}

// OldRunnerTypeFilter returns the old "runner_type_filter" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldRunnerTypeFilter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunnerTypeFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunnerTypeFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunnerTypeFilter: %w", err)
	}
	return oldValue.RunnerTypeFilter, nil
}

// ClearRunnerTypeFilter clears the value of the "runner_type_filter" field.
func (m *BalancingRuleMutation) ClearRunnerTypeFilter() {
	m.runner_type_filter = nil
	m.clearedFields[balancingrule.FieldRunnerTypeFilter] = struct{}{}
}

// RunnerTypeFilterCleared returns if the "runner_type_filter" field was cleared in this mutation.
func (m *BalancingRuleMutation) RunnerTypeFilterCleared() bool {
	_, ok := m.clearedFields[balancingrule.FieldRunnerTypeFilter]
	return ok
}

// ResetRunnerTypeFilter resets all changes to the "runner_type_filter" field.
func (m *BalancingRuleMutation) ResetRunnerTypeFilter() {
	m.runner_type_filter = nil
	delete(m.clearedFields, balancingrule.FieldRunnerTypeFilter)
}

// SetCursor sets the "cursor" field.
func (m *BalancingRuleMutation) SetCursor(i int) {
	m.cursor = &i
	m.addcursor = nil
}

// Cursor returns the value of the "cursor" field in the mutation.
func (m *BalancingRuleMutation) Cursor() (r int, exists bool) {
	v := m.cursor
	if v == nil {
		return
	}
	return *v, true
}

// OldCursor returns the old "cursor" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldCursor(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCursor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCursor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCursor: %w", err)
	}
	return oldValue.Cursor, nil
}

// AddCursor adds i to the "cursor" field.
func (m *BalancingRuleMutation) AddCursor(i int) {
	if m.addcursor != nil {
		*m.addcursor += i
	} else {
		m.addcursor = &i
	}
}

// AddedCursor returns the value that was added to the "cursor" field in this mutation.
func (m *BalancingRuleMutation) AddedCursor() (r int, exists bool) {
	v := m.addcursor
	if v == nil {
		return
	}
	return *v, true
}

// ResetCursor resets all changes to the "cursor" field.
func (m *BalancingRuleMutation) ResetCursor() {
	m.cursor = nil
	m.addcursor = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BalancingRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BalancingRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BalancingRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BalancingRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BalancingRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BalancingRule entity.
// If the BalancingRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BalancingRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BalancingRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BalancingRuleMutation builder.
func (m *BalancingRuleMutation) Where(ps ...predicate.BalancingRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BalancingRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BalancingRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BalancingRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BalancingRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BalancingRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BalancingRule).
func (m *BalancingRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BalancingRuleMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, balancingrule.FieldName)
	}
	if m.active != nil {
		fields = append(fields, balancingrule.FieldActive)
	}
	if m.priority != nil {
		fields = append(fields, balancingrule.FieldPriority)
	}
	if m.kind != nil {
		fields = append(fields, balancingrule.FieldKind)
	}
	if m.test_suite_pattern != nil {
		fields = append(fields, balancingrule.FieldTestSuitePattern)
	}
	if m.environment_pattern != nil {
		fields = append(fields, balancingrule.FieldEnvironmentPattern)
	}
	if m.required_capabilities != nil {
		fields = append(fields, balancingrule.FieldRequiredCapabilities)
	}
	if m.runner_type_filter != nil {
		fields = append(fields, balancingrule.FieldRunnerTypeFilter)
	}
	if m.cursor != nil {
		fields = append(fields, balancingrule.FieldCursor)
	}
	if m.created_at != nil {
		fields = append(fields, balancingrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, balancingrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BalancingRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case balancingrule.FieldName:
		return m.Name()
	case balancingrule.FieldActive:
		return m.Active()
	case balancingrule.FieldPriority:
		return m.Priority()
	case balancingrule.FieldKind:
		return m.Kind()
	case balancingrule.FieldTestSuitePattern:
		return m.TestSuitePattern()
	case balancingrule.FieldEnvironmentPattern:
		return m.EnvironmentPattern()
	case balancingrule.FieldRequiredCapabilities:
		return m.RequiredCapabilities()
	case balancingrule.FieldRunnerTypeFilter:
		return m.RunnerTypeFilter()
	case balancingrule.FieldCursor:
		return m.Cursor()
	case balancingrule.FieldCreatedAt:
		return m.CreatedAt()
	case balancingrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BalancingRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case balancingrule.FieldName:
		return m.OldName(ctx)
	case balancingrule.FieldActive:
		return m.OldActive(ctx)
	case balancingrule.FieldPriority:
		return m.OldPriority(ctx)
	case balancingrule.FieldKind:
		return m.OldKind(ctx)
	case balancingrule.FieldTestSuitePattern:
		return m.OldTestSuitePattern(ctx)
	case balancingrule.FieldEnvironmentPattern:
		return m.OldEnvironmentPattern(ctx)
	case balancingrule.FieldRequiredCapabilities:
		return m.OldRequiredCapabilities(ctx)
	case balancingrule.FieldRunnerTypeFilter:
		return m.OldRunnerTypeFilter(ctx)
	case balancingrule.FieldCursor:
		return m.OldCursor(ctx)
	case balancingrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case balancingrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BalancingRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BalancingRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case balancingrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case balancingrule.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case balancingrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case balancingrule.FieldKind:
		v, ok := value.(balancingrule.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case balancingrule.FieldTestSuitePattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestSuitePattern(v)
		return nil
	case balancingrule.FieldEnvironmentPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironmentPattern(v)
		return nil
	case balancingrule.FieldRequiredCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredCapabilities(v)
		return nil
	case balancingrule.FieldRunnerTypeFilter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunnerTypeFilter(v)
		return nil
	case balancingrule.FieldCursor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCursor(v)
		return nil
	case balancingrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case balancingrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BalancingRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BalancingRuleMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, balancingrule.FieldPriority)
	}
	if m.addcursor != nil {
		fields = append(fields, balancingrule.FieldCursor)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BalancingRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case balancingrule.FieldPriority:
		return m.AddedPriority()
	case balancingrule.FieldCursor:
		return m.AddedCursor()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BalancingRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case balancingrule.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case balancingrule.FieldCursor:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCursor(v)
		return nil
	}
	return fmt.Errorf("unknown BalancingRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BalancingRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(balancingrule.FieldTestSuitePattern) {
		fields = append(fields, balancingrule.FieldTestSuitePattern)
	}
	if m.FieldCleared(balancingrule.FieldEnvironmentPattern) {
		fields = append(fields, balancingrule.FieldEnvironmentPattern)
	}
	if m.FieldCleared(balancingrule.FieldRequiredCapabilities) {
		fields = append(fields, balancingrule.FieldRequiredCapabilities)
	}
	if m.FieldCleared(balancingrule.FieldRunnerTypeFilter) {
		fields = append(fields, balancingrule.FieldRunnerTypeFilter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BalancingRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BalancingRuleMutation) ClearField(name string) error {
	switch name {
	case balancingrule.FieldTestSuitePattern:
		m.ClearTestSuitePattern()
		return nil
	case balancingrule.FieldEnvironmentPattern:
		m.ClearEnvironmentPattern()
		return nil
	case balancingrule.FieldRequiredCapabilities:
		m.ClearRequiredCapabilities()
		return nil
	case balancingrule.FieldRunnerTypeFilter:
		m.ClearRunnerTypeFilter()
		return nil
	}
	return fmt.Errorf("unknown BalancingRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BalancingRuleMutation) ResetField(name string) error {
	switch name {
	case balancingrule.FieldName:
		m.ResetName()
		return nil
	case balancingrule.FieldActive:
		m.ResetActive()
		return nil
	case balancingrule.FieldPriority:
		m.ResetPriority()
		return nil
	case balancingrule.FieldKind:
		m.ResetKind()
		return nil
	case balancingrule.FieldTestSuitePattern:
		m.ResetTestSuitePattern()
		return nil
	case balancingrule.FieldEnvironmentPattern:
		m.ResetEnvironmentPattern()
		return nil
	case balancingrule.FieldRequiredCapabilities:
		m.ResetRequiredCapabilities()
		return nil
	case balancingrule.FieldRunnerTypeFilter:
		m.ResetRunnerTypeFilter()
		return nil
	case balancingrule.FieldCursor:
		m.ResetCursor()
		return nil
	case balancingrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case balancingrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BalancingRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BalancingRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BalancingRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BalancingRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BalancingRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BalancingRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BalancingRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BalancingRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BalancingRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BalancingRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BalancingRule edge %s", name)
}

// ExecutionMutation represents an operation that mutates the Execution nodes in the graph.
type ExecutionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	test_suite               *string
	environment              *string
	branch                   *string
	commit_sha               *string
	requested_by             *string
	priority                 *int
	addpriority              *int
	estimated_duration_ms    *int64
	addestimated_duration_ms *int64
	requested_runner_type    *string
	requested_runner_id      *int
	addrequested_runner_id   *int
	status                   *execution.Status
	status_reason            *string
	total_shards             *int
	addtotal_shards          *int
	shard_results            *map[string]models.ShardResult
	aggregated_results       **models.AggregatedResults
	idempotency_key          *string
	webhook_url              *string
	metadata                 *map[string]interface{}
	created_at               *time.Time
	assigned_at              *time.Time
	started_at               *time.Time
	last_progress_at         *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	runner                   *int
	clearedrunner            bool
	allocations              map[int]struct{}
	removedallocations       map[int]struct{}
	clearedallocations       bool
	done                     bool
	oldValue                 func(context.Context) (*Execution, error)
	predicates               []predicate.Execution
}

var _ ent.Mutation = (*ExecutionMutation)(nil)

// executionOption allows management of the mutation configuration using functional options.
type executionOption func(*ExecutionMutation)

// newExecutionMutation creates new mutation for the Execution entity.
func newExecutionMutation(c config, op Op, opts ...executionOption) *ExecutionMutation {
	m := &ExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionID sets the ID field of the mutation.
func withExecutionID(id string) executionOption {
	return func(m *ExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Execution
		)
		m.oldValue = func(ctx context.Context) (*Execution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Execution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecution sets the old Execution of the mutation.
func withExecution(node *Execution) executionOption {
	return func(m *ExecutionMutation) {
		m.oldValue = func(context.Context) (*Execution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Execution entities.
func (m *ExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Execution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTestSuite sets the "test_suite" field.
func (m *ExecutionMutation) SetTestSuite(s string) {
	m.test_suite = &s
}

// TestSuite returns the value of the "test_suite" field in the mutation.
func (m *ExecutionMutation) TestSuite() (r string, exists bool) {
	v := m.test_suite
	if v == nil {
		return
	}
	return *v, true
}

// OldTestSuite returns the old "test_suite" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldTestSuite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestSuite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestSuite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestSuite: %w", err)
	}
	return oldValue.TestSuite, nil
}

// ResetTestSuite resets all changes to the "test_suite" field.
func (m *ExecutionMutation) ResetTestSuite() {
	m.test_suite = nil
}

// SetEnvironment sets the "environment" field.
func (m *ExecutionMutation) SetEnvironment(s string) {
	m.environment = &s
}

// Environment returns the value of the "environment" field in the mutation.
func (m *ExecutionMutation) Environment() (r string, exists bool) {
	v := m.environment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnvironment returns the old "environment" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldEnvironment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnvironment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnvironment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnvironment: %w", err)
	}
	return oldValue.Environment, nil
}

// ResetEnvironment resets all changes to the "environment" field.
func (m *ExecutionMutation) ResetEnvironment() {
	m.environment = nil
}

// SetBranch sets the "branch" field.
func (m *ExecutionMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *ExecutionMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ClearBranch clears the value of the "branch" field.
func (m *ExecutionMutation) ClearBranch() {
	m.branch = nil
	m.clearedFields[execution.FieldBranch] = struct{}{}
}

// BranchCleared returns if the "branch" field was cleared in this mutation.
func (m *ExecutionMutation) BranchCleared() bool {
	_, ok := m.clearedFields[execution.FieldBranch]
	return ok
}

// ResetBranch resets all changes to the "branch" field.
func (m *ExecutionMutation) ResetBranch() {
	m.branch = nil
	delete(m.clearedFields, execution.FieldBranch)
}

// SetCommitSha sets the "commit_sha" field.
func (m *ExecutionMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *ExecutionMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCommitSha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (m *ExecutionMutation) ClearCommitSha() {
	m.commit_sha = nil
	m.clearedFields[execution.FieldCommitSha] = struct{}{}
}

// CommitShaCleared returns if the "commit_sha" field was cleared in this mutation.
func (m *ExecutionMutation) CommitShaCleared() bool {
	_, ok := m.clearedFields[execution.FieldCommitSha]
	return ok
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *ExecutionMutation) ResetCommitSha() {
	m.commit_sha = nil
	delete(m.clearedFields, execution.FieldCommitSha)
}

// SetRequestedBy sets the "requested_by" field.
func (m *ExecutionMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *ExecutionMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldRequestedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (m *ExecutionMutation) ClearRequestedBy() {
	m.requested_by = nil
	m.clearedFields[execution.FieldRequestedBy] = struct{}{}
}

// RequestedByCleared returns if the "requested_by" field was cleared in this mutation.
func (m *ExecutionMutation) RequestedByCleared() bool {
	_, ok := m.clearedFields[execution.FieldRequestedBy]
	return ok
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *ExecutionMutation) ResetRequestedBy() {
	m.requested_by = nil
	delete(m.clearedFields, execution.FieldRequestedBy)
}

// SetPriority sets the "priority" field.
func (m *ExecutionMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ExecutionMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ExecutionMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ExecutionMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ExecutionMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEstimatedDurationMs sets the "estimated_duration_ms" field.
func (m *ExecutionMutation) SetEstimatedDurationMs(i int64) {
	m.estimated_duration_ms = &i
	m.addestimated_duration_ms = nil
}

// EstimatedDurationMs returns the value of the "estimated_duration_ms" field in the mutation.
func (m *ExecutionMutation) EstimatedDurationMs() (r int64, exists bool) {
	v := m.estimated_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedDurationMs returns the old "estimated_duration_ms" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldEstimatedDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedDurationMs: %w", err)
	}
	return oldValue.EstimatedDurationMs, nil
}

// AddEstimatedDurationMs adds i to the "estimated_duration_ms" field.
func (m *ExecutionMutation) AddEstimatedDurationMs(i int64) {
	if m.addestimated_duration_ms != nil {
		*m.addestimated_duration_ms += i
	} else {
		m.addestimated_duration_ms = &i
	}
}

// AddedEstimatedDurationMs returns the value that was added to the "estimated_duration_ms" field in this mutation.
func (m *ExecutionMutation) AddedEstimatedDurationMs() (r int64, exists bool) {
	v := m.addestimated_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedDurationMs clears the value of the "estimated_duration_ms" field.
func (m *ExecutionMutation) ClearEstimatedDurationMs() {
	m.estimated_duration_ms = nil
	m.addestimated_duration_ms = nil
	m.clearedFields[execution.FieldEstimatedDurationMs] = struct{}{}
}

// EstimatedDurationMsCleared returns if the "estimated_duration_ms" field was cleared in this mutation.
func (m *ExecutionMutation) EstimatedDurationMsCleared() bool {
	_, ok := m.clearedFields[execution.FieldEstimatedDurationMs]
	return ok
}

// ResetEstimatedDurationMs resets all changes to the "estimated_duration_ms" field.
func (m *ExecutionMutation) ResetEstimatedDurationMs() {
	m.estimated_duration_ms = nil
	m.addestimated_duration_ms = nil
	delete(m.clearedFields, execution.FieldEstimatedDurationMs)
}

// SetRequestedRunnerType sets the "requested_runner_type" field.
func (m *ExecutionMutation) SetRequestedRunnerType(s string) {
	m.requested_runner_type = &s
}

// RequestedRunnerType returns the value of the "requested_runner_type" field in the mutation.
func (m *ExecutionMutation) RequestedRunnerType() (r string, exists bool) {
	v := m.requested_runner_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedRunnerType returns the old "requested_runner_type" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldRequestedRunnerType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedRunnerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedRunnerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedRunnerType: %w", err)
	}
	return oldValue.RequestedRunnerType, nil
}

// ClearRequestedRunnerType clears the value of the "requested_runner_type" field.
func (m *ExecutionMutation) ClearRequestedRunnerType() {
	m.requested_runner_type = nil
	m.clearedFields[execution.FieldRequestedRunnerType] = struct{}{}
}

// RequestedRunnerTypeCleared returns if the "requested_runner_type" field was cleared in this mutation.
func (m *ExecutionMutation) RequestedRunnerTypeCleared() bool {
	_, ok := m.clearedFields[execution.FieldRequestedRunnerType]
	return ok
}

// ResetRequestedRunnerType resets all changes to the "requested_runner_type" field.
func (m *ExecutionMutation) ResetRequestedRunnerType() {
	m.requested_runner_type = nil
	delete(m.clearedFields, execution.FieldRequestedRunnerType)
}

// SetRequestedRunnerID sets the "requested_runner_id" field.
func (m *ExecutionMutation) SetRequestedRunnerID(i int) {
	m.requested_runner_id = &i
	m.addrequested_runner_id = nil
}

// RequestedRunnerID returns the value of the "requested_runner_id" field in the mutation.
func (m *ExecutionMutation) RequestedRunnerID() (r int, exists bool) {
	v := m.requested_runner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedRunnerID returns the old "requested_runner_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldRequestedRunnerID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedRunnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedRunnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedRunnerID: %w", err)
	}
	return oldValue.RequestedRunnerID, nil
}

// AddRequestedRunnerID adds i to the "requested_runner_id" field.
func (m *ExecutionMutation) AddRequestedRunnerID(i int) {
	if m.addrequested_runner_id != nil {
		*m.addrequested_runner_id += i
	} else {
		m.addrequested_runner_id = &i
	}
}

// AddedRequestedRunnerID returns the value that was added to the "requested_runner_id" field in this mutation.
func (m *ExecutionMutation) AddedRequestedRunnerID() (r int, exists bool) {
	v := m.addrequested_runner_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearRequestedRunnerID clears the value of the "requested_runner_id" field.
func (m *ExecutionMutation) ClearRequestedRunnerID() {
	m.requested_runner_id = nil
	m.addrequested_runner_id = nil
	m.clearedFields[execution.FieldRequestedRunnerID] = struct{}{}
}

// RequestedRunnerIDCleared returns if the "requested_runner_id" field was cleared in this mutation.
func (m *ExecutionMutation) RequestedRunnerIDCleared() bool {
	_, ok := m.clearedFields[execution.FieldRequestedRunnerID]
	return ok
}

// ResetRequestedRunnerID resets all changes to the "requested_runner_id" field.
func (m *ExecutionMutation) ResetRequestedRunnerID() {
	m.requested_runner_id = nil
	m.addrequested_runner_id = nil
	delete(m.clearedFields, execution.FieldRequestedRunnerID)
}

// SetStatus sets the "status" field.
func (m *ExecutionMutation) SetStatus(e execution.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionMutation) Status() (r execution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatus(ctx context.Context) (v execution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStatusReason sets the "status_reason" field.
func (m *ExecutionMutation) SetStatusReason(s string) {
	m.status_reason = &s
}

// StatusReason returns the value of the "status_reason" field in the mutation.
func (m *ExecutionMutation) StatusReason() (r string, exists bool) {
	v := m.status_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusReason returns the old "status_reason" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatusReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusReason: %w", err)
	}
	return oldValue.StatusReason, nil
}

// ClearStatusReason clears the value of the "status_reason" field.
func (m *ExecutionMutation) ClearStatusReason() {
	m.status_reason = nil
	m.clearedFields[execution.FieldStatusReason] = struct{}{}
}

// StatusReasonCleared returns if the "status_reason" field was cleared in this mutation.
func (m *ExecutionMutation) StatusReasonCleared() bool {
	_, ok := m.clearedFields[execution.FieldStatusReason]
	return ok
}

// ResetStatusReason resets all changes to the "status_reason" field.
func (m *ExecutionMutation) ResetStatusReason() {
	m.status_reason = nil
	delete(m.clearedFields, execution.FieldStatusReason)
}

// SetAssignedRunnerID sets the "assigned_runner_id" field.
func (m *ExecutionMutation) SetAssignedRunnerID(i int) {
	m.runner = &i
}

// AssignedRunnerID returns the value of the "assigned_runner_id" field in the mutation.
func (m *ExecutionMutation) AssignedRunnerID() (r int, exists bool) {
	v := m.runner
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedRunnerID returns the old "assigned_runner_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldAssignedRunnerID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedRunnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedRunnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedRunnerID: %w", err)
	}
	return oldValue.AssignedRunnerID, nil
}

// ClearAssignedRunnerID clears the value of the "assigned_runner_id" field.
func (m *ExecutionMutation) ClearAssignedRunnerID() {
	m.runner = nil
	m.clearedFields[execution.FieldAssignedRunnerID] = struct{}{}
}

// AssignedRunnerIDCleared returns if the "assigned_runner_id" field was cleared in this mutation.
func (m *ExecutionMutation) AssignedRunnerIDCleared() bool {
	_, ok := m.clearedFields[execution.FieldAssignedRunnerID]
	return ok
}

// ResetAssignedRunnerID resets all changes to the "assigned_runner_id" field.
func (m *ExecutionMutation) ResetAssignedRunnerID() {
	m.runner = nil
	delete(m.clearedFields, execution.FieldAssignedRunnerID)
}

// SetTotalShards sets the "total_shards" field.
func (m *ExecutionMutation) SetTotalShards(i int) {
	m.total_shards = &i
	m.addtotal_shards = nil
}

// TotalShards returns the value of the "total_shards" field in the mutation.
func (m *ExecutionMutation) TotalShards() (r int, exists bool) {
	v := m.total_shards
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalShards returns the old "total_shards" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldTotalShards(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalShards is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalShards requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalShards: %w", err)
	}
	return oldValue.TotalShards, nil
}

// AddTotalShards adds i to the "total_shards" field.
func (m *ExecutionMutation) AddTotalShards(i int) {
	if m.addtotal_shards != nil {
		*m.addtotal_shards += i
	} else {
		m.addtotal_shards = &i
	}
}

// AddedTotalShards returns the value that was added to the "total_shards" field in this mutation.
func (m *ExecutionMutation) AddedTotalShards() (r int, exists bool) {
	v := m.addtotal_shards
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalShards resets all changes to the "total_shards" field.
func (m *ExecutionMutation) ResetTotalShards() {
	m.total_shards = nil
	m.addtotal_shards = nil
}

// SetShardResults sets the "shard_results" field.
func (m *ExecutionMutation) SetShardResults(mr map[string]models.ShardResult) {
	m.shard_results = &mr
}

// ShardResults returns the value of the "shard_results" field in the mutation.
func (m *ExecutionMutation) ShardResults() (r map[string]models.ShardResult, exists bool) {
	v := m.shard_results
	if v == nil {
		return
	}
	return *v, true
}

// OldShardResults returns the old "shard_results" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldShardResults(ctx context.Context) (v map[string]models.ShardResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShardResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShardResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShardResults: %w", err)
	}
	return oldValue.ShardResults, nil
}

// ClearShardResults clears the value of the "shard_results" field.
func (m *ExecutionMutation) ClearShardResults() {
	m.shard_results = nil
	m.clearedFields[execution.FieldShardResults] = struct{}{}
}

// ShardResultsCleared returns if the "shard_results" field was cleared in this mutation.
func (m *ExecutionMutation) ShardResultsCleared() bool {
	_, ok := m.clearedFields[execution.FieldShardResults]
	return ok
}

// ResetShardResults resets all changes to the "shard_results" field.
func (m *ExecutionMutation) ResetShardResults() {
	m.shard_results = nil
	delete(m.clearedFields, execution.FieldShardResults)
}

// SetAggregatedResults sets the "aggregated_results" field.
func (m *ExecutionMutation) SetAggregatedResults(mr *models.AggregatedResults) {
	m.aggregated_results = &mr
}

// AggregatedResults returns the value of the "aggregated_results" field in the mutation.
func (m *ExecutionMutation) AggregatedResults() (r *models.AggregatedResults, exists bool) {
	v := m.aggregated_results
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregatedResults returns the old "aggregated_results" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldAggregatedResults(ctx context.Context) (v *models.AggregatedResults, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregatedResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregatedResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregatedResults: %w", err)
	}
	return oldValue.AggregatedResults, nil
}

// ClearAggregatedResults clears the value of the "aggregated_results" field.
func (m *ExecutionMutation) ClearAggregatedResults() {
	m.aggregated_results = nil
	m.clearedFields[execution.FieldAggregatedResults] = struct{}{}
}

// AggregatedResultsCleared returns if the "aggregated_results" field was cleared in this mutation.
func (m *ExecutionMutation) AggregatedResultsCleared() bool {
	_, ok := m.clearedFields[execution.FieldAggregatedResults]
	return ok
}

// ResetAggregatedResults resets all changes to the "aggregated_results" field.
func (m *ExecutionMutation) ResetAggregatedResults() {
	m.aggregated_results = nil
	delete(m.clearedFields, execution.FieldAggregatedResults)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *ExecutionMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *ExecutionMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *ExecutionMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[execution.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *ExecutionMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[execution.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *ExecutionMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, execution.FieldIdempotencyKey)
}

// SetWebhookURL sets the "webhook_url" field.
func (m *ExecutionMutation) SetWebhookURL(s string) {
	m.webhook_url = &s
}

// WebhookURL returns the value of the "webhook_url" field in the mutation.
func (m *ExecutionMutation) WebhookURL() (r string, exists bool) {
	v := m.webhook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookURL returns the old "webhook_url" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldWebhookURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookURL: %w", err)
	}
	return oldValue.WebhookURL, nil
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (m *ExecutionMutation) ClearWebhookURL() {
	m.webhook_url = nil
	m.clearedFields[execution.FieldWebhookURL] = struct{}{}
}

// WebhookURLCleared returns if the "webhook_url" field was cleared in this mutation.
func (m *ExecutionMutation) WebhookURLCleared() bool {
	_, ok := m.clearedFields[execution.FieldWebhookURL]
	return ok
}

// ResetWebhookURL resets all changes to the "webhook_url" field.
func (m *ExecutionMutation) ResetWebhookURL() {
	m.webhook_url = nil
	delete(m.clearedFields, execution.FieldWebhookURL)
}

// SetMetadata sets the "metadata" field.
func (m *ExecutionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ExecutionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ExecutionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[execution.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ExecutionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[execution.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ExecutionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, execution.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAssignedAt sets the "assigned_at" field.
func (m *ExecutionMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *ExecutionMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (m *ExecutionMutation) ClearAssignedAt() {
	m.assigned_at = nil
	m.clearedFields[execution.FieldAssignedAt] = struct{}{}
}

// AssignedAtCleared returns if the "assigned_at" field was cleared in this mutation.
func (m *ExecutionMutation) AssignedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldAssignedAt]
	return ok
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *ExecutionMutation) ResetAssignedAt() {
	m.assigned_at = nil
	delete(m.clearedFields, execution.FieldAssignedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[execution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, execution.FieldStartedAt)
}

// SetLastProgressAt sets the "last_progress_at" field.
func (m *ExecutionMutation) SetLastProgressAt(t time.Time) {
	m.last_progress_at = &t
}

// LastProgressAt returns the value of the "last_progress_at" field in the mutation.
func (m *ExecutionMutation) LastProgressAt() (r time.Time, exists bool) {
	v := m.last_progress_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProgressAt returns the old "last_progress_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldLastProgressAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProgressAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProgressAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProgressAt: %w", err)
	}
	return oldValue.LastProgressAt, nil
}

// ClearLastProgressAt clears the value of the "last_progress_at" field.
func (m *ExecutionMutation) ClearLastProgressAt() {
	m.last_progress_at = nil
	m.clearedFields[execution.FieldLastProgressAt] = struct{}{}
}

// LastProgressAtCleared returns if the "last_progress_at" field was cleared in this mutation.
func (m *ExecutionMutation) LastProgressAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldLastProgressAt]
	return ok
}

// ResetLastProgressAt resets all changes to the "last_progress_at" field.
func (m *ExecutionMutation) ResetLastProgressAt() {
	m.last_progress_at = nil
	delete(m.clearedFields, execution.FieldLastProgressAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[execution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, execution.FieldCompletedAt)
}

// SetRunnerID sets the "runner" edge to the Runner entity by id.
func (m *ExecutionMutation) SetRunnerID(id int) {
	m.runner = &id
}

// ClearRunner clears the "runner" edge to the Runner entity.
func (m *ExecutionMutation) ClearRunner() {
	m.clearedrunner = true
	m.clearedFields[execution.FieldAssignedRunnerID] = struct{}{}
}

// RunnerCleared reports if the "runner" edge to the Runner entity was cleared.
func (m *ExecutionMutation) RunnerCleared() bool {
	return m.AssignedRunnerIDCleared() || m.clearedrunner
}

// RunnerID returns the "runner" edge ID in the mutation.
func (m *ExecutionMutation) RunnerID() (id int, exists bool) {
	if m.runner != nil {
		return *m.runner, true
	}
	return
}

// RunnerIDs returns the "runner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunnerID instead. It exists only for internal usage by the builders.
func (m *ExecutionMutation) RunnerIDs() (ids []int) {
	if id := m.runner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRunner resets all changes to the "runner" edge.
func (m *ExecutionMutation) ResetRunner() {
	m.runner = nil
	m.clearedrunner = false
}

// AddAllocationIDs adds the "allocations" edge to the ResourceAllocation entity by ids.
func (m *ExecutionMutation) AddAllocationIDs(ids ...int) {
	if m.allocations == nil {
		m.allocations = make(map[int]struct{})
	}
	for i := range ids {
		m.allocations[ids[i]] = struct{}{}
	}
}

// ClearAllocations clears the "allocations" edge to the ResourceAllocation entity.
func (m *ExecutionMutation) ClearAllocations() {
	m.clearedallocations = true
}

// AllocationsCleared reports if the "allocations" edge to the ResourceAllocation entity was cleared.
func (m *ExecutionMutation) AllocationsCleared() bool {
	return m.clearedallocations
}

// RemoveAllocationIDs removes the "allocations" edge to the ResourceAllocation entity by IDs.
func (m *ExecutionMutation) RemoveAllocationIDs(ids ...int) {
	if m.removedallocations == nil {
		m.removedallocations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.allocations, ids[i])
		m.removedallocations[ids[i]] = struct{}{}
	}
}

// RemovedAllocations returns the removed IDs of the "allocations" edge to the ResourceAllocation entity.
func (m *ExecutionMutation) RemovedAllocationsIDs() (ids []int) {
	for id := range m.removedallocations {
		ids = append(ids, id)
	}
	return
}

// AllocationsIDs returns the "allocations" edge IDs in the mutation.
func (m *ExecutionMutation) AllocationsIDs() (ids []int) {
	for id := range m.allocations {
		ids = append(ids, id)
	}
	return
}

// ResetAllocations resets all changes to the "allocations" edge.
func (m *ExecutionMutation) ResetAllocations() {
	m.allocations = nil
	m.clearedallocations = false
	m.removedallocations = nil
}

// Where appends a list predicates to the ExecutionMutation builder.
func (m *ExecutionMutation) Where(ps ...predicate.Execution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Execution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Execution).
func (m *ExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.test_suite != nil {
		fields = append(fields, execution.FieldTestSuite)
	}
	if m.environment != nil {
		fields = append(fields, execution.FieldEnvironment)
	}
	if m.branch != nil {
		fields = append(fields, execution.FieldBranch)
	}
	if m.commit_sha != nil {
		fields = append(fields, execution.FieldCommitSha)
	}
	if m.requested_by != nil {
		fields = append(fields, execution.FieldRequestedBy)
	}
	if m.priority != nil {
		fields = append(fields, execution.FieldPriority)
	}
	if m.estimated_duration_ms != nil {
		fields = append(fields, execution.FieldEstimatedDurationMs)
	}
	if m.requested_runner_type != nil {
		fields = append(fields, execution.FieldRequestedRunnerType)
	}
	if m.requested_runner_id != nil {
		fields = append(fields, execution.FieldRequestedRunnerID)
	}
	if m.status != nil {
		fields = append(fields, execution.FieldStatus)
	}
	if m.status_reason != nil {
		fields = append(fields, execution.FieldStatusReason)
	}
	if m.runner != nil {
		fields = append(fields, execution.FieldAssignedRunnerID)
	}
	if m.total_shards != nil {
		fields = append(fields, execution.FieldTotalShards)
	}
	if m.shard_results != nil {
		fields = append(fields, execution.FieldShardResults)
	}
	if m.aggregated_results != nil {
		fields = append(fields, execution.FieldAggregatedResults)
	}
	if m.idempotency_key != nil {
		fields = append(fields, execution.FieldIdempotencyKey)
	}
	if m.webhook_url != nil {
		fields = append(fields, execution.FieldWebhookURL)
	}
	if m.metadata != nil {
		fields = append(fields, execution.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, execution.FieldCreatedAt)
	}
	if m.assigned_at != nil {
		fields = append(fields, execution.FieldAssignedAt)
	}
	if m.started_at != nil {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.last_progress_at != nil {
		fields = append(fields, execution.FieldLastProgressAt)
	}
	if m.completed_at != nil {
		fields = append(fields, execution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldTestSuite:
		return m.TestSuite()
	case execution.FieldEnvironment:
		return m.Environment()
	case execution.FieldBranch:
		return m.Branch()
	case execution.FieldCommitSha:
		return m.CommitSha()
	case execution.FieldRequestedBy:
		return m.RequestedBy()
	case execution.FieldPriority:
		return m.Priority()
	case execution.FieldEstimatedDurationMs:
		return m.EstimatedDurationMs()
	case execution.FieldRequestedRunnerType:
		return m.RequestedRunnerType()
	case execution.FieldRequestedRunnerID:
		return m.RequestedRunnerID()
	case execution.FieldStatus:
		return m.Status()
	case execution.FieldStatusReason:
		return m.StatusReason()
	case execution.FieldAssignedRunnerID:
		return m.AssignedRunnerID()
	case execution.FieldTotalShards:
		return m.TotalShards()
	case execution.FieldShardResults:
		return m.ShardResults()
	case execution.FieldAggregatedResults:
		return m.AggregatedResults()
	case execution.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case execution.FieldWebhookURL:
		return m.WebhookURL()
	case execution.FieldMetadata:
		return m.Metadata()
	case execution.FieldCreatedAt:
		return m.CreatedAt()
	case execution.FieldAssignedAt:
		return m.AssignedAt()
	case execution.FieldStartedAt:
		return m.StartedAt()
	case execution.FieldLastProgressAt:
		return m.LastProgressAt()
	case execution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case execution.FieldTestSuite:
		return m.OldTestSuite(ctx)
	case execution.FieldEnvironment:
		return m.OldEnvironment(ctx)
	case execution.FieldBranch:
		return m.OldBranch(ctx)
	case execution.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case execution.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case execution.FieldPriority:
		return m.OldPriority(ctx)
	case execution.FieldEstimatedDurationMs:
		return m.OldEstimatedDurationMs(ctx)
	case execution.FieldRequestedRunnerType:
		return m.OldRequestedRunnerType(ctx)
	case execution.FieldRequestedRunnerID:
		return m.OldRequestedRunnerID(ctx)
	case execution.FieldStatus:
		return m.OldStatus(ctx)
	case execution.FieldStatusReason:
		return m.OldStatusReason(ctx)
	case execution.FieldAssignedRunnerID:
		return m.OldAssignedRunnerID(ctx)
	case execution.FieldTotalShards:
		return m.OldTotalShards(ctx)
	case execution.FieldShardResults:
		return m.OldShardResults(ctx)
	case execution.FieldAggregatedResults:
		return m.OldAggregatedResults(ctx)
	case execution.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case execution.FieldWebhookURL:
		return m.OldWebhookURL(ctx)
	case execution.FieldMetadata:
		return m.OldMetadata(ctx)
	case execution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case execution.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case execution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case execution.FieldLastProgressAt:
		return m.OldLastProgressAt(ctx)
	case execution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Execution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case execution.FieldTestSuite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestSuite(v)
		return nil
	case execution.FieldEnvironment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnvironment(v)
		return nil
	case execution.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case execution.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case execution.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case execution.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case execution.FieldEstimatedDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedDurationMs(v)
		return nil
	case execution.FieldRequestedRunnerType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedRunnerType(v)
		return nil
	case execution.FieldRequestedRunnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedRunnerID(v)
		return nil
	case execution.FieldStatus:
		v, ok := value.(execution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case execution.FieldStatusReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusReason(v)
		return nil
	case execution.FieldAssignedRunnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedRunnerID(v)
		return nil
	case execution.FieldTotalShards:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalShards(v)
		return nil
	case execution.FieldShardResults:
		v, ok := value.(map[string]models.ShardResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShardResults(v)
		return nil
	case execution.FieldAggregatedResults:
		v, ok := value.(*models.AggregatedResults)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregatedResults(v)
		return nil
	case execution.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case execution.FieldWebhookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookURL(v)
		return nil
	case execution.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case execution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case execution.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case execution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case execution.FieldLastProgressAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProgressAt(v)
		return nil
	case execution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, execution.FieldPriority)
	}
	if m.addestimated_duration_ms != nil {
		fields = append(fields, execution.FieldEstimatedDurationMs)
	}
	if m.addrequested_runner_id != nil {
		fields = append(fields, execution.FieldRequestedRunnerID)
	}
	if m.addtotal_shards != nil {
		fields = append(fields, execution.FieldTotalShards)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldPriority:
		return m.AddedPriority()
	case execution.FieldEstimatedDurationMs:
		return m.AddedEstimatedDurationMs()
	case execution.FieldRequestedRunnerID:
		return m.AddedRequestedRunnerID()
	case execution.FieldTotalShards:
		return m.AddedTotalShards()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case execution.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case execution.FieldEstimatedDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedDurationMs(v)
		return nil
	case execution.FieldRequestedRunnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestedRunnerID(v)
		return nil
	case execution.FieldTotalShards:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalShards(v)
		return nil
	}
	return fmt.Errorf("unknown Execution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(execution.FieldBranch) {
		fields = append(fields, execution.FieldBranch)
	}
	if m.FieldCleared(execution.FieldCommitSha) {
		fields = append(fields, execution.FieldCommitSha)
	}
	if m.FieldCleared(execution.FieldRequestedBy) {
		fields = append(fields, execution.FieldRequestedBy)
	}
	if m.FieldCleared(execution.FieldEstimatedDurationMs) {
		fields = append(fields, execution.FieldEstimatedDurationMs)
	}
	if m.FieldCleared(execution.FieldRequestedRunnerType) {
		fields = append(fields, execution.FieldRequestedRunnerType)
	}
	if m.FieldCleared(execution.FieldRequestedRunnerID) {
		fields = append(fields, execution.FieldRequestedRunnerID)
	}
	if m.FieldCleared(execution.FieldStatusReason) {
		fields = append(fields, execution.FieldStatusReason)
	}
	if m.FieldCleared(execution.FieldAssignedRunnerID) {
		fields = append(fields, execution.FieldAssignedRunnerID)
	}
	if m.FieldCleared(execution.FieldShardResults) {
		fields = append(fields, execution.FieldShardResults)
	}
	if m.FieldCleared(execution.FieldAggregatedResults) {
		fields = append(fields, execution.FieldAggregatedResults)
	}
	if m.FieldCleared(execution.FieldIdempotencyKey) {
		fields = append(fields, execution.FieldIdempotencyKey)
	}
	if m.FieldCleared(execution.FieldWebhookURL) {
		fields = append(fields, execution.FieldWebhookURL)
	}
	if m.FieldCleared(execution.FieldMetadata) {
		fields = append(fields, execution.FieldMetadata)
	}
	if m.FieldCleared(execution.FieldAssignedAt) {
		fields = append(fields, execution.FieldAssignedAt)
	}
	if m.FieldCleared(execution.FieldStartedAt) {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.FieldCleared(execution.FieldLastProgressAt) {
		fields = append(fields, execution.FieldLastProgressAt)
	}
	if m.FieldCleared(execution.FieldCompletedAt) {
		fields = append(fields, execution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMutation) ClearField(name string) error {
	switch name {
	case execution.FieldBranch:
		m.ClearBranch()
		return nil
	case execution.FieldCommitSha:
		m.ClearCommitSha()
		return nil
	case execution.FieldRequestedBy:
		m.ClearRequestedBy()
		return nil
	case execution.FieldEstimatedDurationMs:
		m.ClearEstimatedDurationMs()
		return nil
	case execution.FieldRequestedRunnerType:
		m.ClearRequestedRunnerType()
		return nil
	case execution.FieldRequestedRunnerID:
		m.ClearRequestedRunnerID()
		return nil
	case execution.FieldStatusReason:
		m.ClearStatusReason()
		return nil
	case execution.FieldAssignedRunnerID:
		m.ClearAssignedRunnerID()
		return nil
	case execution.FieldShardResults:
		m.ClearShardResults()
		return nil
	case execution.FieldAggregatedResults:
		m.ClearAggregatedResults()
		return nil
	case execution.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case execution.FieldWebhookURL:
		m.ClearWebhookURL()
		return nil
	case execution.FieldMetadata:
		m.ClearMetadata()
		return nil
	case execution.FieldAssignedAt:
		m.ClearAssignedAt()
		return nil
	case execution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case execution.FieldLastProgressAt:
		m.ClearLastProgressAt()
		return nil
	case execution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Execution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMutation) ResetField(name string) error {
	switch name {
	case execution.FieldTestSuite:
		m.ResetTestSuite()
		return nil
	case execution.FieldEnvironment:
		m.ResetEnvironment()
		return nil
	case execution.FieldBranch:
		m.ResetBranch()
		return nil
	case execution.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case execution.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case execution.FieldPriority:
		m.ResetPriority()
		return nil
	case execution.FieldEstimatedDurationMs:
		m.ResetEstimatedDurationMs()
		return nil
	case execution.FieldRequestedRunnerType:
		m.ResetRequestedRunnerType()
		return nil
	case execution.FieldRequestedRunnerID:
		m.ResetRequestedRunnerID()
		return nil
	case execution.FieldStatus:
		m.ResetStatus()
		return nil
	case execution.FieldStatusReason:
		m.ResetStatusReason()
		return nil
	case execution.FieldAssignedRunnerID:
		m.ResetAssignedRunnerID()
		return nil
	case execution.FieldTotalShards:
		m.ResetTotalShards()
		return nil
	case execution.FieldShardResults:
		m.ResetShardResults()
		return nil
	case execution.FieldAggregatedResults:
		m.ResetAggregatedResults()
		return nil
	case execution.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case execution.FieldWebhookURL:
		m.ResetWebhookURL()
		return nil
	case execution.FieldMetadata:
		m.ResetMetadata()
		return nil
	case execution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case execution.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case execution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case execution.FieldLastProgressAt:
		m.ResetLastProgressAt()
		return nil
	case execution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.runner != nil {
		edges = append(edges, execution.EdgeRunner)
	}
	if m.allocations != nil {
		edges = append(edges, execution.EdgeAllocations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case execution.EdgeRunner:
		if id := m.runner; id != nil {
			return []ent.Value{*id}
		}
	case execution.EdgeAllocations:
		ids := make([]ent.Value, 0, len(m.allocations))
		for id := range m.allocations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedallocations != nil {
		edges = append(edges, execution.EdgeAllocations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case execution.EdgeAllocations:
		ids := make([]ent.Value, 0, len(m.removedallocations))
		for id := range m.removedallocations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrunner {
		edges = append(edges, execution.EdgeRunner)
	}
	if m.clearedallocations {
		edges = append(edges, execution.EdgeAllocations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case execution.EdgeRunner:
		return m.clearedrunner
	case execution.EdgeAllocations:
		return m.clearedallocations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMutation) ClearEdge(name string) error {
	switch name {
	case execution.EdgeRunner:
		m.ClearRunner()
		return nil
	}
	return fmt.Errorf("unknown Execution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMutation) ResetEdge(name string) error {
	switch name {
	case execution.EdgeRunner:
		m.ResetRunner()
		return nil
	case execution.EdgeAllocations:
		m.ResetAllocations()
		return nil
	}
	return fmt.Errorf("unknown Execution edge %s", name)
}

// HealthSampleMutation represents an operation that mutates the HealthSample nodes in the graph.
type HealthSampleMutation struct {
	config
	op            Op
	typ           string
	id            *int
	health        *healthsample.Health
	latency_ms    *int64
	addlatency_ms *int64
	error         *string
	checked_at    *time.Time
	clearedFields map[string]struct{}
	runner        *int
	clearedrunner bool
	done          bool
	oldValue      func(context.Context) (*HealthSample, error)
	predicates    []predicate.HealthSample
}

var _ ent.Mutation = (*HealthSampleMutation)(nil)

// healthsampleOption allows management of the mutation configuration using functional options.
type healthsampleOption func(*HealthSampleMutation)

// newHealthSampleMutation creates new mutation for the HealthSample entity.
func newHealthSampleMutation(c config, op Op, opts ...healthsampleOption) *HealthSampleMutation {
	m := &HealthSampleMutation{
		config:        c,
		op:            op,
		typ:           TypeHealthSample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHealthSampleID sets the ID field of the mutation.
func withHealthSampleID(id int) healthsampleOption {
	return func(m *HealthSampleMutation) {
		var (
			err   error
			once  sync.Once
			value *HealthSample
		)
		m.oldValue = func(ctx context.Context) (*HealthSample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HealthSample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHealthSample sets the old HealthSample of the mutation.
func withHealthSample(node *HealthSample) healthsampleOption {
	return func(m *HealthSampleMutation) {
		m.oldValue = func(context.Context) (*HealthSample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HealthSampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HealthSampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HealthSampleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HealthSampleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HealthSample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunnerID sets the "runner_id" field.
func (m *HealthSampleMutation) SetRunnerID(i int) {
	m.runner = &i
}

// RunnerID returns the value of the "runner_id" field in the mutation.
func (m *HealthSampleMutation) RunnerID() (r int, exists bool) {
	v := m.runner
	if v == nil {
		return
	}
	return *v, true
}

// OldRunnerID returns the old "runner_id" field's value of the HealthSample entity.
// If the HealthSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthSampleMutation) OldRunnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunnerID: %w", err)
	}
	return oldValue.RunnerID, nil
}

// ResetRunnerID resets all changes to the "runner_id" field.
func (m *HealthSampleMutation) ResetRunnerID() {
	m.runner = nil
}

// SetHealth sets the "health" field.
func (m *HealthSampleMutation) SetHealth(h healthsample.Health) {
	m.health = &h
}

// Health returns the value of the "health" field in the mutation.
func (m *HealthSampleMutation) Health() (r healthsample.Health, exists bool) {
	v := m.health
	if v == nil {
		return
	}
	return *v, true
}

// OldHealth returns the old "health" field's value of the HealthSample entity.
// If the HealthSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthSampleMutation) OldHealth(ctx context.Context) (v healthsample.Health, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealth: %w", err)
	}
	return oldValue.Health, nil
}

// ResetHealth resets all changes to the "health" field.
func (m *HealthSampleMutation) ResetHealth() {
	m.health = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *HealthSampleMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *HealthSampleMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the HealthSample entity.
// If the HealthSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthSampleMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *HealthSampleMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *HealthSampleMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *HealthSampleMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetError sets the "error" field.
func (m *HealthSampleMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *HealthSampleMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the HealthSample entity.
// If the HealthSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthSampleMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *HealthSampleMutation) ClearError() {
	m.error = nil
	m.clearedFields[healthsample.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *HealthSampleMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[healthsample.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *HealthSampleMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, healthsample.FieldError)
}

// SetCheckedAt sets the "checked_at" field.
func (m *HealthSampleMutation) SetCheckedAt(t time.Time) {
	m.checked_at = &t
}

// CheckedAt returns the value of the "checked_at" field in the mutation.
func (m *HealthSampleMutation) CheckedAt() (r time.Time, exists bool) {
	v := m.checked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckedAt returns the old "checked_at" field's value of the HealthSample entity.
// If the HealthSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthSampleMutation) OldCheckedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckedAt: %w", err)
	}
	return oldValue.CheckedAt, nil
}

// ResetCheckedAt resets all changes to the "checked_at" field.
func (m *HealthSampleMutation) ResetCheckedAt() {
	m.checked_at = nil
}

// ClearRunner clears the "runner" edge to the Runner entity.
func (m *HealthSampleMutation) ClearRunner() {
	m.clearedrunner = true
	m.clearedFields[healthsample.FieldRunnerID] = struct{}{}
}

// RunnerCleared reports if the "runner" edge to the Runner entity was cleared.
func (m *HealthSampleMutation) RunnerCleared() bool {
	return m.clearedrunner
}

// RunnerIDs returns the "runner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunnerID instead. It exists only for internal usage by the builders.
func (m *HealthSampleMutation) RunnerIDs() (ids []int) {
	if id := m.runner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRunner resets all changes to the "runner" edge.
func (m *HealthSampleMutation) ResetRunner() {
	m.runner = nil
	m.clearedrunner = false
}

// Where appends a list predicates to the HealthSampleMutation builder.
func (m *HealthSampleMutation) Where(ps ...predicate.HealthSample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HealthSampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HealthSampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HealthSample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HealthSampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HealthSampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HealthSample).
func (m *HealthSampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HealthSampleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.runner != nil {
		fields = append(fields, healthsample.FieldRunnerID)
	}
	if m.health != nil {
		fields = append(fields, healthsample.FieldHealth)
	}
	if m.latency_ms != nil {
		fields = append(fields, healthsample.FieldLatencyMs)
	}
	if m.error != nil {
		fields = append(fields, healthsample.FieldError)
	}
	if m.checked_at != nil {
		fields = append(fields, healthsample.FieldCheckedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HealthSampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case healthsample.FieldRunnerID:
		return m.RunnerID()
	case healthsample.FieldHealth:
		return m.Health()
	case healthsample.FieldLatencyMs:
		return m.LatencyMs()
	case healthsample.FieldError:
		return m.Error()
	case healthsample.FieldCheckedAt:
		return m.CheckedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HealthSampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case healthsample.FieldRunnerID:
		return m.OldRunnerID(ctx)
	case healthsample.FieldHealth:
		return m.OldHealth(ctx)
	case healthsample.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case healthsample.FieldError:
		return m.OldError(ctx)
	case healthsample.FieldCheckedAt:
		return m.OldCheckedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HealthSample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthSampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case healthsample.FieldRunnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunnerID(v)
		return nil
	case healthsample.FieldHealth:
		v, ok := value.(healthsample.Health)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealth(v)
		return nil
	case healthsample.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case healthsample.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case healthsample.FieldCheckedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HealthSample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HealthSampleMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, healthsample.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HealthSampleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case healthsample.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthSampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case healthsample.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown HealthSample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HealthSampleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(healthsample.FieldError) {
		fields = append(fields, healthsample.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HealthSampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HealthSampleMutation) ClearField(name string) error {
	switch name {
	case healthsample.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown HealthSample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HealthSampleMutation) ResetField(name string) error {
	switch name {
	case healthsample.FieldRunnerID:
		m.ResetRunnerID()
		return nil
	case healthsample.FieldHealth:
		m.ResetHealth()
		return nil
	case healthsample.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case healthsample.FieldError:
		m.ResetError()
		return nil
	case healthsample.FieldCheckedAt:
		m.ResetCheckedAt()
		return nil
	}
	return fmt.Errorf("unknown HealthSample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HealthSampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.runner != nil {
		edges = append(edges, healthsample.EdgeRunner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HealthSampleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case healthsample.EdgeRunner:
		if id := m.runner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HealthSampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HealthSampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HealthSampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrunner {
		edges = append(edges, healthsample.EdgeRunner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HealthSampleMutation) EdgeCleared(name string) bool {
	switch name {
	case healthsample.EdgeRunner:
		return m.clearedrunner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HealthSampleMutation) ClearEdge(name string) error {
	switch name {
	case healthsample.EdgeRunner:
		m.ClearRunner()
		return nil
	}
	return fmt.Errorf("unknown HealthSample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HealthSampleMutation) ResetEdge(name string) error {
	switch name {
	case healthsample.EdgeRunner:
		m.ResetRunner()
		return nil
	}
	return fmt.Errorf("unknown HealthSample edge %s", name)
}

// ResourceAllocationMutation represents an operation that mutates the ResourceAllocation nodes in the graph.
type ResourceAllocationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	cpu_allocated       *float64
	addcpu_allocated    *float64
	memory_allocated    *float64
	addmemory_allocated *float64
	state               *resourceallocation.State
	allocated_at        *time.Time
	released_at         *time.Time
	clearedFields       map[string]struct{}
	execution           *string
	clearedexecution    bool
	runner              *int
	clearedrunner       bool
	done                bool
	oldValue            func(context.Context) (*ResourceAllocation, error)
	predicates          []predicate.ResourceAllocation
}

var _ ent.Mutation = (*ResourceAllocationMutation)(nil)

// resourceallocationOption allows management of the mutation configuration using functional options.
type resourceallocationOption func(*ResourceAllocationMutation)

// newResourceAllocationMutation creates new mutation for the ResourceAllocation entity.
func newResourceAllocationMutation(c config, op Op, opts ...resourceallocationOption) *ResourceAllocationMutation {
	m := &ResourceAllocationMutation{
		config:        c,
		op:            op,
		typ:           TypeResourceAllocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResourceAllocationID sets the ID field of the mutation.
func withResourceAllocationID(id int) resourceallocationOption {
	return func(m *ResourceAllocationMutation) {
		var (
			err   error
			once  sync.Once
			value *ResourceAllocation
		)
		m.oldValue = func(ctx context.Context) (*ResourceAllocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResourceAllocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResourceAllocation sets the old ResourceAllocation of the mutation.
func withResourceAllocation(node *ResourceAllocation) resourceallocationOption {
	return func(m *ResourceAllocationMutation) {
		m.oldValue = func(context.Context) (*ResourceAllocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResourceAllocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResourceAllocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResourceAllocationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResourceAllocationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResourceAllocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ResourceAllocationMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ResourceAllocationMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ResourceAllocation entity.
// If the ResourceAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceAllocationMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ResourceAllocationMutation) ResetExecutionID() {
	m.execution = nil
}

// SetRunnerID sets the "runner_id" field.
func (m *ResourceAllocationMutation) SetRunnerID(i int) {
	m.runner = &i
}

// RunnerID returns the value of the "runner_id" field in the mutation.
func (m *ResourceAllocationMutation) RunnerID() (r int, exists bool) {
	v := m.runner
	if v == nil {
		return
	}
	return *v, true
}

// OldRunnerID returns the old "runner_id" field's value of the ResourceAllocation entity.
// If the ResourceAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceAllocationMutation) OldRunnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunnerID: %w", err)
	}
	return oldValue.RunnerID, nil
}

// ResetRunnerID resets all changes to the "runner_id" field.
func (m *ResourceAllocationMutation) ResetRunnerID() {
	m.runner = nil
}

// SetCPUAllocated sets the "cpu_allocated" field.
func (m *ResourceAllocationMutation) SetCPUAllocated(f float64) {
	m.cpu_allocated = &f
	m.addcpu_allocated = nil
}

// CPUAllocated returns the value of the "cpu_allocated" field in the mutation.
func (m *ResourceAllocationMutation) CPUAllocated() (r float64, exists bool) {
	v := m.cpu_allocated
	if v == nil {
		return
	}
	return *v, true
}

// OldCPUAllocated returns the old "cpu_allocated" field's value of the ResourceAllocation entity.
// If the ResourceAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceAllocationMutation) OldCPUAllocated(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCPUAllocated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCPUAllocated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCPUAllocated: %w", err)
	}
	return oldValue.CPUAllocated, nil
}

// AddCPUAllocated adds f to the "cpu_allocated" field.
func (m *ResourceAllocationMutation) AddCPUAllocated(f float64) {
	if m.addcpu_allocated != nil {
		*m.addcpu_allocated += f
	} else {
		m.addcpu_allocated = &f
	}
}

// AddedCPUAllocated returns the value that was added to the "cpu_allocated" field in this mutation.
func (m *ResourceAllocationMutation) AddedCPUAllocated() (r float64, exists bool) {
	v := m.addcpu_allocated
	if v == nil {
		return
	}
	return *v, true
}

// ResetCPUAllocated resets all changes to the "cpu_allocated" field.
func (m *ResourceAllocationMutation) ResetCPUAllocated() {
	m.cpu_allocated = nil
	m.addcpu_allocated = nil
}

// SetMemoryAllocated sets the "memory_allocated" field.
func (m *ResourceAllocationMutation) SetMemoryAllocated(f float64) {
	m.memory_allocated = &f
	m.addmemory_allocated = nil
}

// MemoryAllocated returns the value of the "memory_allocated" field in the mutation.
func (m *ResourceAllocationMutation) MemoryAllocated() (r float64, exists bool) {
	v := m.memory_allocated
	if v == nil {
		return
	}
	return *v, true
}

// OldMemoryAllocated returns the old "memory_allocated" field's value of the ResourceAllocation entity.
// If the ResourceAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceAllocationMutation) OldMemoryAllocated(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemoryAllocated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemoryAllocated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemoryAllocated: %w", err)
	}
	return oldValue.MemoryAllocated, nil
}

// AddMemoryAllocated adds f to the "memory_allocated" field.
func (m *ResourceAllocationMutation) AddMemoryAllocated(f float64) {
	if m.addmemory_allocated != nil {
		*m.addmemory_allocated += f
	} else {
		m.addmemory_allocated = &f
	}
}

// AddedMemoryAllocated returns the value that was added to the "memory_allocated" field in this mutation.
func (m *ResourceAllocationMutation) AddedMemoryAllocated() (r float64, exists bool) {
	v := m.addmemory_allocated
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemoryAllocated resets all changes to the "memory_allocated" field.
func (m *ResourceAllocationMutation) ResetMemoryAllocated() {
	m.memory_allocated = nil
	m.addmemory_allocated = nil
}

// SetState sets the "state" field.
func (m *ResourceAllocationMutation) SetState(r resourceallocation.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *ResourceAllocationMutation) State() (r resourceallocation.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ResourceAllocation entity.
// If the ResourceAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceAllocationMutation) OldState(ctx context.Context) (v resourceallocation.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ResourceAllocationMutation) ResetState() {
	m.state = nil
}

// SetAllocatedAt sets the "allocated_at" field.
func (m *ResourceAllocationMutation) SetAllocatedAt(t time.Time) {
	m.allocated_at = &t
}

// AllocatedAt returns the value of the "allocated_at" field in the mutation.
func (m *ResourceAllocationMutation) AllocatedAt() (r time.Time, exists bool) {
	v := m.allocated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAllocatedAt returns the old "allocated_at" field's value of the ResourceAllocation entity.
// If the ResourceAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceAllocationMutation) OldAllocatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllocatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllocatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllocatedAt: %w", err)
	}
	return oldValue.AllocatedAt, nil
}

// ResetAllocatedAt resets all changes to the "allocated_at" field.
func (m *ResourceAllocationMutation) ResetAllocatedAt() {
	m.allocated_at = nil
}

// SetReleasedAt sets the "released_at" field.
func (m *ResourceAllocationMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *ResourceAllocationMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the ResourceAllocation entity.
// If the ResourceAllocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceAllocationMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *ResourceAllocationMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[resourceallocation.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *ResourceAllocationMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[resourceallocation.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *ResourceAllocationMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, resourceallocation.FieldReleasedAt)
}

// ClearExecution clears the "execution" edge to the Execution entity.
func (m *ResourceAllocationMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[resourceallocation.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the Execution entity was cleared.
func (m *ResourceAllocationMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *ResourceAllocationMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *ResourceAllocationMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// ClearRunner clears the "runner" edge to the Runner entity.
func (m *ResourceAllocationMutation) ClearRunner() {
	m.clearedrunner = true
	m.clearedFields[resourceallocation.FieldRunnerID] = struct{}{}
}

// RunnerCleared reports if the "runner" edge to the Runner entity was cleared.
func (m *ResourceAllocationMutation) RunnerCleared() bool {
	return m.clearedrunner
}

// RunnerIDs returns the "runner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunnerID instead. It exists only for internal usage by the builders.
func (m *ResourceAllocationMutation) RunnerIDs() (ids []int) {
	if id := m.runner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRunner resets all changes to the "runner" edge.
func (m *ResourceAllocationMutation) ResetRunner() {
	m.runner = nil
	m.clearedrunner = false
}

// Where appends a list predicates to the ResourceAllocationMutation builder.
func (m *ResourceAllocationMutation) Where(ps ...predicate.ResourceAllocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResourceAllocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResourceAllocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResourceAllocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResourceAllocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResourceAllocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResourceAllocation).
func (m *ResourceAllocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResourceAllocationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.execution != nil {
		fields = append(fields, resourceallocation.FieldExecutionID)
	}
	if m.runner != nil {
		fields = append(fields, resourceallocation.FieldRunnerID)
	}
	if m.cpu_allocated != nil {
		fields = append(fields, resourceallocation.FieldCPUAllocated)
	}
	if m.memory_allocated != nil {
		fields = append(fields, resourceallocation.FieldMemoryAllocated)
	}
	if m.state != nil {
		fields = append(fields, resourceallocation.FieldState)
	}
	if m.allocated_at != nil {
		fields = append(fields, resourceallocation.FieldAllocatedAt)
	}
	if m.released_at != nil {
		fields = append(fields, resourceallocation.FieldReleasedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResourceAllocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resourceallocation.FieldExecutionID:
		return m.ExecutionID()
	case resourceallocation.FieldRunnerID:
		return m.RunnerID()
	case resourceallocation.FieldCPUAllocated:
		return m.CPUAllocated()
	case resourceallocation.FieldMemoryAllocated:
		return m.MemoryAllocated()
	case resourceallocation.FieldState:
		return m.State()
	case resourceallocation.FieldAllocatedAt:
		return m.AllocatedAt()
	case resourceallocation.FieldReleasedAt:
		return m.ReleasedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResourceAllocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resourceallocation.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case resourceallocation.FieldRunnerID:
		return m.OldRunnerID(ctx)
	case resourceallocation.FieldCPUAllocated:
		return m.OldCPUAllocated(ctx)
	case resourceallocation.FieldMemoryAllocated:
		return m.OldMemoryAllocated(ctx)
	case resourceallocation.FieldState:
		return m.OldState(ctx)
	case resourceallocation.FieldAllocatedAt:
		return m.OldAllocatedAt(ctx)
	case resourceallocation.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResourceAllocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceAllocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resourceallocation.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case resourceallocation.FieldRunnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunnerID(v)
		return nil
	case resourceallocation.FieldCPUAllocated:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCPUAllocated(v)
		return nil
	case resourceallocation.FieldMemoryAllocated:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemoryAllocated(v)
		return nil
	case resourceallocation.FieldState:
		v, ok := value.(resourceallocation.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case resourceallocation.FieldAllocatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllocatedAt(v)
		return nil
	case resourceallocation.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceAllocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResourceAllocationMutation) AddedFields() []string {
	var fields []string
	if m.addcpu_allocated != nil {
		fields = append(fields, resourceallocation.FieldCPUAllocated)
	}
	if m.addmemory_allocated != nil {
		fields = append(fields, resourceallocation.FieldMemoryAllocated)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResourceAllocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resourceallocation.FieldCPUAllocated:
		return m.AddedCPUAllocated()
	case resourceallocation.FieldMemoryAllocated:
		return m.AddedMemoryAllocated()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceAllocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resourceallocation.FieldCPUAllocated:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCPUAllocated(v)
		return nil
	case resourceallocation.FieldMemoryAllocated:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemoryAllocated(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceAllocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResourceAllocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resourceallocation.FieldReleasedAt) {
		fields = append(fields, resourceallocation.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResourceAllocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResourceAllocationMutation) ClearField(name string) error {
	switch name {
	case resourceallocation.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown ResourceAllocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResourceAllocationMutation) ResetField(name string) error {
	switch name {
	case resourceallocation.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case resourceallocation.FieldRunnerID:
		m.ResetRunnerID()
		return nil
	case resourceallocation.FieldCPUAllocated:
		m.ResetCPUAllocated()
		return nil
	case resourceallocation.FieldMemoryAllocated:
		m.ResetMemoryAllocated()
		return nil
	case resourceallocation.FieldState:
		m.ResetState()
		return nil
	case resourceallocation.FieldAllocatedAt:
		m.ResetAllocatedAt()
		return nil
	case resourceallocation.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown ResourceAllocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResourceAllocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.execution != nil {
		edges = append(edges, resourceallocation.EdgeExecution)
	}
	if m.runner != nil {
		edges = append(edges, resourceallocation.EdgeRunner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResourceAllocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resourceallocation.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	case resourceallocation.EdgeRunner:
		if id := m.runner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResourceAllocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResourceAllocationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResourceAllocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexecution {
		edges = append(edges, resourceallocation.EdgeExecution)
	}
	if m.clearedrunner {
		edges = append(edges, resourceallocation.EdgeRunner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResourceAllocationMutation) EdgeCleared(name string) bool {
	switch name {
	case resourceallocation.EdgeExecution:
		return m.clearedexecution
	case resourceallocation.EdgeRunner:
		return m.clearedrunner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResourceAllocationMutation) ClearEdge(name string) error {
	switch name {
	case resourceallocation.EdgeExecution:
		m.ClearExecution()
		return nil
	case resourceallocation.EdgeRunner:
		m.ClearRunner()
		return nil
	}
	return fmt.Errorf("unknown ResourceAllocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResourceAllocationMutation) ResetEdge(name string) error {
	switch name {
	case resourceallocation.EdgeExecution:
		m.ResetExecution()
		return nil
	case resourceallocation.EdgeRunner:
		m.ResetRunner()
		return nil
	}
	return fmt.Errorf("unknown ResourceAllocation edge %s", name)
}

// RunnerMutation represents an operation that mutates the Runner nodes in the graph.
type RunnerMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	name                   *string
	_type                  *string
	endpoint_url           *string
	health_check_url       *string
	webhook_token          *string
	capabilities           *[]string
	appendcapabilities     []string
	max_concurrent_jobs    *int
	addmax_concurrent_jobs *int
	priority               *int
	addpriority            *int
	status                 *runner.Status
	health                 *runner.Health
	last_health_check_at   *time.Time
	metadata               *map[string]interface{}
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	executions             map[string]struct{}
	removedexecutions      map[string]struct{}
	clearedexecutions      bool
	allocations            map[int]struct{}
	removedallocations     map[int]struct{}
	clearedallocations     bool
	health_samples         map[int]struct{}
	removedhealth_samples  map[int]struct{}
	clearedhealth_samples  bool
	done                   bool
	oldValue               func(context.Context) (*Runner, error)
	predicates             []predicate.Runner
}

var _ ent.Mutation = (*RunnerMutation)(nil)

// runnerOption allows management of the mutation configuration using functional options.
type runnerOption func(*RunnerMutation)

// newRunnerMutation creates new mutation for the Runner entity.
func newRunnerMutation(c config, op Op, opts ...runnerOption) *RunnerMutation {
	m := &RunnerMutation{
		config:        c,
		op:            op,
		typ:           TypeRunner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunnerID sets the ID field of the mutation.
func withRunnerID(id int) runnerOption {
	return func(m *RunnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Runner
		)
		m.oldValue = func(ctx context.Context) (*Runner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Runner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunner sets the old Runner of the mutation.
func withRunner(node *Runner) runnerOption {
	return func(m *RunnerMutation) {
		m.oldValue = func(context.Context) (*Runner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunnerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunnerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Runner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RunnerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RunnerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RunnerMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *RunnerMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *RunnerMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *RunnerMutation) ResetType() {
	m._type = nil
}

// SetEndpointURL sets the "endpoint_url" field.
func (m *RunnerMutation) SetEndpointURL(s string) {
	m.endpoint_url = &s
}

// EndpointURL returns the value of the "endpoint_url" field in the mutation.
func (m *RunnerMutation) EndpointURL() (r string, exists bool) {
	v := m.endpoint_url
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointURL returns the old "endpoint_url" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldEndpointURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointURL: %w", err)
	}
	return oldValue.EndpointURL, nil
}

// ResetEndpointURL resets all changes to the "endpoint_url" field.
func (m *RunnerMutation) ResetEndpointURL() {
	m.endpoint_url = nil
}

// SetHealthCheckURL sets the "health_check_url" field.
func (m *RunnerMutation) SetHealthCheckURL(s string) {
	m.health_check_url = &s
}

// HealthCheckURL returns the value of the "health_check_url" field in the mutation.
func (m *RunnerMutation) HealthCheckURL() (r string, exists bool) {
	v := m.health_check_url
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthCheckURL returns the old "health_check_url" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldHealthCheckURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthCheckURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthCheckURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthCheckURL: %w", err)
	}
	return oldValue.HealthCheckURL, nil
}

// ClearHealthCheckURL clears the value of the "health_check_url" field.
func (m *RunnerMutation) ClearHealthCheckURL() {
	m.health_check_url = nil
	m.clearedFields[runner.FieldHealthCheckURL] = struct{}{}
}

// HealthCheckURLCleared returns if the "health_check_url" field was cleared in this mutation.
func (m *RunnerMutation) HealthCheckURLCleared() bool {
	_, ok := m.clearedFields[runner.FieldHealthCheckURL]
	return ok
}

// ResetHealthCheckURL resets all changes to the "health_check_url" field.
func (m *RunnerMutation) ResetHealthCheckURL() {
	m.health_check_url = nil
	delete(m.clearedFields, runner.FieldHealthCheckURL)
}

// SetWebhookToken sets the "webhook_token" field.
func (m *RunnerMutation) SetWebhookToken(s string) {
	m.webhook_token = &s
}

// WebhookToken returns the value of the "webhook_token" field in the mutation.
func (m *RunnerMutation) WebhookToken() (r string, exists bool) {
	v := m.webhook_token
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookToken returns the old "webhook_token" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldWebhookToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookToken: %w", err)
	}
	return oldValue.WebhookToken, nil
}

// ResetWebhookToken resets all changes to the "webhook_token" field.
func (m *RunnerMutation) ResetWebhookToken() {
	m.webhook_token = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *RunnerMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *RunnerMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *RunnerMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *RunnerMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *RunnerMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[runner.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *RunnerMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[runner.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *RunnerMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, runner.FieldCapabilities)
}

// SetMaxConcurrentJobs sets the "max_concurrent_jobs" field.
func (m *RunnerMutation) SetMaxConcurrentJobs(i int) {
	m.max_concurrent_jobs = &i
	m.addmax_concurrent_jobs = nil
}

// MaxConcurrentJobs returns the value of the "max_concurrent_jobs" field in the mutation.
func (m *RunnerMutation) MaxConcurrentJobs() (r int, exists bool) {
	v := m.max_concurrent_jobs
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxConcurrentJobs returns the old "max_concurrent_jobs" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldMaxConcurrentJobs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxConcurrentJobs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxConcurrentJobs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxConcurrentJobs: %w", err)
	}
	return oldValue.MaxConcurrentJobs, nil
}

// AddMaxConcurrentJobs adds i to the "max_concurrent_jobs" field.
func (m *RunnerMutation) AddMaxConcurrentJobs(i int) {
	if m.addmax_concurrent_jobs != nil {
		*m.addmax_concurrent_jobs += i
	} else {
		m.addmax_concurrent_jobs = &i
	}
}

// AddedMaxConcurrentJobs returns the value that was added to the "max_concurrent_jobs" field in this mutation.
func (m *RunnerMutation) AddedMaxConcurrentJobs() (r int, exists bool) {
	v := m.addmax_concurrent_jobs
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxConcurrentJobs resets all changes to the "max_concurrent_jobs" field.
func (m *RunnerMutation) ResetMaxConcurrentJobs() {
	m.max_concurrent_jobs = nil
	m.addmax_concurrent_jobs = nil
}

// SetPriority sets the "priority" field.
func (m *RunnerMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RunnerMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *RunnerMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *RunnerMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *RunnerMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *RunnerMutation) SetStatus(r runner.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunnerMutation) Status() (r runner.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldStatus(ctx context.Context) (v runner.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunnerMutation) ResetStatus() {
	m.status = nil
}

// SetHealth sets the "health" field.
func (m *RunnerMutation) SetHealth(r runner.Health) {
	m.health = &r
}

// Health returns the value of the "health" field in the mutation.
func (m *RunnerMutation) Health() (r runner.Health, exists bool) {
	v := m.health
	if v == nil {
		return
	}
	return *v, true
}

// OldHealth returns the old "health" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldHealth(ctx context.Context) (v runner.Health, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealth: %w", err)
	}
	return oldValue.Health, nil
}

// ResetHealth resets all changes to the "health" field.
func (m *RunnerMutation) ResetHealth() {
	m.health = nil
}

// SetLastHealthCheckAt sets the "last_health_check_at" field.
func (m *RunnerMutation) SetLastHealthCheckAt(t time.Time) {
	m.last_health_check_at = &t
}

// LastHealthCheckAt returns the value of the "last_health_check_at" field in the mutation.
func (m *RunnerMutation) LastHealthCheckAt() (r time.Time, exists bool) {
	v := m.last_health_check_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHealthCheckAt returns the old "last_health_check_at" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldLastHealthCheckAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHealthCheckAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHealthCheckAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHealthCheckAt: %w", err)
	}
	return oldValue.LastHealthCheckAt, nil
}

// ClearLastHealthCheckAt clears the value of the "last_health_check_at" field.
func (m *RunnerMutation) ClearLastHealthCheckAt() {
	m.last_health_check_at = nil
	m.clearedFields[runner.FieldLastHealthCheckAt] = struct{}{}
}

// LastHealthCheckAtCleared returns if the "last_health_check_at" field was cleared in this mutation.
func (m *RunnerMutation) LastHealthCheckAtCleared() bool {
	_, ok := m.clearedFields[runner.FieldLastHealthCheckAt]
	return ok
}

// ResetLastHealthCheckAt resets all changes to the "last_health_check_at" field.
func (m *RunnerMutation) ResetLastHealthCheckAt() {
	m.last_health_check_at = nil
	delete(m.clearedFields, runner.FieldLastHealthCheckAt)
}

// SetMetadata sets the "metadata" field.
func (m *RunnerMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *RunnerMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *RunnerMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[runner.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *RunnerMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[runner.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *RunnerMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, runner.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RunnerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RunnerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Runner entity.
// If the Runner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RunnerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by ids.
func (m *RunnerMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the Execution entity.
func (m *RunnerMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the Execution entity was cleared.
func (m *RunnerMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the Execution entity by IDs.
func (m *RunnerMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the Execution entity.
func (m *RunnerMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *RunnerMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *RunnerMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddAllocationIDs adds the "allocations" edge to the ResourceAllocation entity by ids.
func (m *RunnerMutation) AddAllocationIDs(ids ...int) {
	if m.allocations == nil {
		m.allocations = make(map[int]struct{})
	}
	for i := range ids {
		m.allocations[ids[i]] = struct{}{}
	}
}

// ClearAllocations clears the "allocations" edge to the ResourceAllocation entity.
func (m *RunnerMutation) ClearAllocations() {
	m.clearedallocations = true
}

// AllocationsCleared reports if the "allocations" edge to the ResourceAllocation entity was cleared.
func (m *RunnerMutation) AllocationsCleared() bool {
	return m.clearedallocations
}

// RemoveAllocationIDs removes the "allocations" edge to the ResourceAllocation entity by IDs.
func (m *RunnerMutation) RemoveAllocationIDs(ids ...int) {
	if m.removedallocations == nil {
		m.removedallocations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.allocations, ids[i])
		m.removedallocations[ids[i]] = struct{}{}
	}
}

// RemovedAllocations returns the removed IDs of the "allocations" edge to the ResourceAllocation entity.
func (m *RunnerMutation) RemovedAllocationsIDs() (ids []int) {
	for id := range m.removedallocations {
		ids = append(ids, id)
	}
	return
}

// AllocationsIDs returns the "allocations" edge IDs in the mutation.
func (m *RunnerMutation) AllocationsIDs() (ids []int) {
	for id := range m.allocations {
		ids = append(ids, id)
	}
	return
}

// ResetAllocations resets all changes to the "allocations" edge.
func (m *RunnerMutation) ResetAllocations() {
	m.allocations = nil
	m.clearedallocations = false
	m.removedallocations = nil
}

// AddHealthSampleIDs adds the "health_samples" edge to the HealthSample entity by ids.
func (m *RunnerMutation) AddHealthSampleIDs(ids ...int) {
	if m.health_samples == nil {
		m.health_samples = make(map[int]struct{})
	}
	for i := range ids {
		m.health_samples[ids[i]] = struct{}{}
	}
}

// ClearHealthSamples clears the "health_samples" edge to the HealthSample entity.
func (m *RunnerMutation) ClearHealthSamples() {
	m.clearedhealth_samples = true
}

// HealthSamplesCleared reports if the "health_samples" edge to the HealthSample entity was cleared.
func (m *RunnerMutation) HealthSamplesCleared() bool {
	return m.clearedhealth_samples
}

// RemoveHealthSampleIDs removes the "health_samples" edge to the HealthSample entity by IDs.
func (m *RunnerMutation) RemoveHealthSampleIDs(ids ...int) {
	if m.removedhealth_samples == nil {
		m.removedhealth_samples = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.health_samples, ids[i])
		m.removedhealth_samples[ids[i]] = struct{}{}
	}
}

// RemovedHealthSamples returns the removed IDs of the "health_samples" edge to the HealthSample entity.
func (m *RunnerMutation) RemovedHealthSamplesIDs() (ids []int) {
	for id := range m.removedhealth_samples {
		ids = append(ids, id)
	}
	return
}

// HealthSamplesIDs returns the "health_samples" edge IDs in the mutation.
func (m *RunnerMutation) HealthSamplesIDs() (ids []int) {
	for id := range m.health_samples {
		ids = append(ids, id)
	}
	return
}

// ResetHealthSamples resets all changes to the "health_samples" edge.
func (m *RunnerMutation) ResetHealthSamples() {
	m.health_samples = nil
	m.clearedhealth_samples = false
	m.removedhealth_samples = nil
}

// Where appends a list predicates to the RunnerMutation builder.
func (m *RunnerMutation) Where(ps ...predicate.Runner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Runner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Runner).
func (m *RunnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunnerMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, runner.FieldName)
	}
	if m._type != nil {
		fields = append(fields, runner.FieldType)
	}
	if m.endpoint_url != nil {
		fields = append(fields, runner.FieldEndpointURL)
	}
	if m.health_check_url != nil {
		fields = append(fields, runner.FieldHealthCheckURL)
	}
	if m.webhook_token != nil {
		fields = append(fields, runner.FieldWebhookToken)
	}
	if m.capabilities != nil {
		fields = append(fields, runner.FieldCapabilities)
	}
	if m.max_concurrent_jobs != nil {
		fields = append(fields, runner.FieldMaxConcurrentJobs)
	}
	if m.priority != nil {
		fields = append(fields, runner.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, runner.FieldStatus)
	}
	if m.health != nil {
		fields = append(fields, runner.FieldHealth)
	}
	if m.last_health_check_at != nil {
		fields = append(fields, runner.FieldLastHealthCheckAt)
	}
	if m.metadata != nil {
		fields = append(fields, runner.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, runner.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, runner.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runner.FieldName:
		return m.Name()
	case runner.FieldType:
		return m.GetType()
	case runner.FieldEndpointURL:
		return m.EndpointURL()
	case runner.FieldHealthCheckURL:
		return m.HealthCheckURL()
	case runner.FieldWebhookToken:
		return m.WebhookToken()
	case runner.FieldCapabilities:
		return m.Capabilities()
	case runner.FieldMaxConcurrentJobs:
		return m.MaxConcurrentJobs()
	case runner.FieldPriority:
		return m.Priority()
	case runner.FieldStatus:
		return m.Status()
	case runner.FieldHealth:
		return m.Health()
	case runner.FieldLastHealthCheckAt:
		return m.LastHealthCheckAt()
	case runner.FieldMetadata:
		return m.Metadata()
	case runner.FieldCreatedAt:
		return m.CreatedAt()
	case runner.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runner.FieldName:
		return m.OldName(ctx)
	case runner.FieldType:
		return m.OldType(ctx)
	case runner.FieldEndpointURL:
		return m.OldEndpointURL(ctx)
	case runner.FieldHealthCheckURL:
		return m.OldHealthCheckURL(ctx)
	case runner.FieldWebhookToken:
		return m.OldWebhookToken(ctx)
	case runner.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case runner.FieldMaxConcurrentJobs:
		return m.OldMaxConcurrentJobs(ctx)
	case runner.FieldPriority:
		return m.OldPriority(ctx)
	case runner.FieldStatus:
		return m.OldStatus(ctx)
	case runner.FieldHealth:
		return m.OldHealth(ctx)
	case runner.FieldLastHealthCheckAt:
		return m.OldLastHealthCheckAt(ctx)
	case runner.FieldMetadata:
		return m.OldMetadata(ctx)
	case runner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case runner.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Runner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runner.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case runner.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case runner.FieldEndpointURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointURL(v)
		return nil
	case runner.FieldHealthCheckURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthCheckURL(v)
		return nil
	case runner.FieldWebhookToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookToken(v)
		return nil
	case runner.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case runner.FieldMaxConcurrentJobs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxConcurrentJobs(v)
		return nil
	case runner.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case runner.FieldStatus:
		v, ok := value.(runner.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case runner.FieldHealth:
		v, ok := value.(runner.Health)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealth(v)
		return nil
	case runner.FieldLastHealthCheckAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHealthCheckAt(v)
		return nil
	case runner.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case runner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case runner.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Runner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunnerMutation) AddedFields() []string {
	var fields []string
	if m.addmax_concurrent_jobs != nil {
		fields = append(fields, runner.FieldMaxConcurrentJobs)
	}
	if m.addpriority != nil {
		fields = append(fields, runner.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunnerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runner.FieldMaxConcurrentJobs:
		return m.AddedMaxConcurrentJobs()
	case runner.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runner.FieldMaxConcurrentJobs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxConcurrentJobs(v)
		return nil
	case runner.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Runner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunnerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runner.FieldHealthCheckURL) {
		fields = append(fields, runner.FieldHealthCheckURL)
	}
	if m.FieldCleared(runner.FieldCapabilities) {
		fields = append(fields, runner.FieldCapabilities)
	}
	if m.FieldCleared(runner.FieldLastHealthCheckAt) {
		fields = append(fields, runner.FieldLastHealthCheckAt)
	}
	if m.FieldCleared(runner.FieldMetadata) {
		fields = append(fields, runner.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunnerMutation) ClearField(name string) error {
	switch name {
	case runner.FieldHealthCheckURL:
		m.ClearHealthCheckURL()
		return nil
	case runner.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case runner.FieldLastHealthCheckAt:
		m.ClearLastHealthCheckAt()
		return nil
	case runner.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Runner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunnerMutation) ResetField(name string) error {
	switch name {
	case runner.FieldName:
		m.ResetName()
		return nil
	case runner.FieldType:
		m.ResetType()
		return nil
	case runner.FieldEndpointURL:
		m.ResetEndpointURL()
		return nil
	case runner.FieldHealthCheckURL:
		m.ResetHealthCheckURL()
		return nil
	case runner.FieldWebhookToken:
		m.ResetWebhookToken()
		return nil
	case runner.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case runner.FieldMaxConcurrentJobs:
		m.ResetMaxConcurrentJobs()
		return nil
	case runner.FieldPriority:
		m.ResetPriority()
		return nil
	case runner.FieldStatus:
		m.ResetStatus()
		return nil
	case runner.FieldHealth:
		m.ResetHealth()
		return nil
	case runner.FieldLastHealthCheckAt:
		m.ResetLastHealthCheckAt()
		return nil
	case runner.FieldMetadata:
		m.ResetMetadata()
		return nil
	case runner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case runner.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Runner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.executions != nil {
		edges = append(edges, runner.EdgeExecutions)
	}
	if m.allocations != nil {
		edges = append(edges, runner.EdgeAllocations)
	}
	if m.health_samples != nil {
		edges = append(edges, runner.EdgeHealthSamples)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunnerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runner.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case runner.EdgeAllocations:
		ids := make([]ent.Value, 0, len(m.allocations))
		for id := range m.allocations {
			ids = append(ids, id)
		}
		return ids
	case runner.EdgeHealthSamples:
		ids := make([]ent.Value, 0, len(m.health_samples))
		for id := range m.health_samples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedexecutions != nil {
		edges = append(edges, runner.EdgeExecutions)
	}
	if m.removedallocations != nil {
		edges = append(edges, runner.EdgeAllocations)
	}
	if m.removedhealth_samples != nil {
		edges = append(edges, runner.EdgeHealthSamples)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunnerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case runner.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case runner.EdgeAllocations:
		ids := make([]ent.Value, 0, len(m.removedallocations))
		for id := range m.removedallocations {
			ids = append(ids, id)
		}
		return ids
	case runner.EdgeHealthSamples:
		ids := make([]ent.Value, 0, len(m.removedhealth_samples))
		for id := range m.removedhealth_samples {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedexecutions {
		edges = append(edges, runner.EdgeExecutions)
	}
	if m.clearedallocations {
		edges = append(edges, runner.EdgeAllocations)
	}
	if m.clearedhealth_samples {
		edges = append(edges, runner.EdgeHealthSamples)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunnerMutation) EdgeCleared(name string) bool {
	switch name {
	case runner.EdgeExecutions:
		return m.clearedexecutions
	case runner.EdgeAllocations:
		return m.clearedallocations
	case runner.EdgeHealthSamples:
		return m.clearedhealth_samples
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunnerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Runner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunnerMutation) ResetEdge(name string) error {
	switch name {
	case runner.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case runner.EdgeAllocations:
		m.ResetAllocations()
		return nil
	case runner.EdgeHealthSamples:
		m.ResetHealthSamples()
		return nil
	}
	return fmt.Errorf("unknown Runner edge %s", name)
}
