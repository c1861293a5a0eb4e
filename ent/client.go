// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/baton-ci/baton/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/baton-ci/baton/ent/auditevent"
	"github.com/baton-ci/baton/ent/balancingrule"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditEvent is the client for interacting with the AuditEvent builders.
	AuditEvent *AuditEventClient
	// BalancingRule is the client for interacting with the BalancingRule builders.
	BalancingRule *BalancingRuleClient
	// Execution is the client for interacting with the Execution builders.
	Execution *ExecutionClient
	// HealthSample is the client for interacting with the HealthSample builders.
	HealthSample *HealthSampleClient
	// ResourceAllocation is the client for interacting with the ResourceAllocation builders.
	ResourceAllocation *ResourceAllocationClient
	// Runner is the client for interacting with the Runner builders.
	Runner *RunnerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditEvent = NewAuditEventClient(c.config)
	c.BalancingRule = NewBalancingRuleClient(c.config)
	c.Execution = NewExecutionClient(c.config)
	c.HealthSample = NewHealthSampleClient(c.config)
	c.ResourceAllocation = NewResourceAllocationClient(c.config)
	c.Runner = NewRunnerClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		AuditEvent:         NewAuditEventClient(cfg),
		BalancingRule:      NewBalancingRuleClient(cfg),
		Execution:          NewExecutionClient(cfg),
		HealthSample:       NewHealthSampleClient(cfg),
		ResourceAllocation: NewResourceAllocationClient(cfg),
		Runner:             NewRunnerClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		AuditEvent:         NewAuditEventClient(cfg),
		BalancingRule:      NewBalancingRuleClient(cfg),
		Execution:          NewExecutionClient(cfg),
		HealthSample:       NewHealthSampleClient(cfg),
		ResourceAllocation: NewResourceAllocationClient(cfg),
		Runner:             NewRunnerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditEvent, c.BalancingRule, c.Execution, c.HealthSample,
		c.ResourceAllocation, c.Runner,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditEvent, c.BalancingRule, c.Execution, c.HealthSample,
		c.ResourceAllocation, c.Runner,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditEventMutation:
		return c.AuditEvent.mutate(ctx, m)
	case *BalancingRuleMutation:
		return c.BalancingRule.mutate(ctx, m)
	case *ExecutionMutation:
		return c.Execution.mutate(ctx, m)
	case *HealthSampleMutation:
		return c.HealthSample.mutate(ctx, m)
	case *ResourceAllocationMutation:
		return c.ResourceAllocation.mutate(ctx, m)
	case *RunnerMutation:
		return c.Runner.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditEventClient is a client for the AuditEvent schema.
type AuditEventClient struct {
	config
}

// NewAuditEventClient returns a client for the AuditEvent from the given config.
func NewAuditEventClient(c config) *AuditEventClient {
	return &AuditEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditevent.Hooks(f(g(h())))`.
func (c *AuditEventClient) Use(hooks ...Hook) {
	c.hooks.AuditEvent = append(c.hooks.AuditEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditevent.Intercept(f(g(h())))`.
func (c *AuditEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEvent = append(c.inters.AuditEvent, interceptors...)
}

// Create returns a builder for creating a AuditEvent entity.
func (c *AuditEventClient) Create() *AuditEventCreate {
	mutation := newAuditEventMutation(c.config, OpCreate)
	return &AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEvent entities.
func (c *AuditEventClient) CreateBulk(builders ...*AuditEventCreate) *AuditEventCreateBulk {
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEventClient) MapCreateBulk(slice any, setFunc func(*AuditEventCreate, int)) *AuditEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEventCreateBulk{err: fmt.Errorf("calling to AuditEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEvent.
func (c *AuditEventClient) Update() *AuditEventUpdate {
	mutation := newAuditEventMutation(c.config, OpUpdate)
	return &AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEventClient) UpdateOne(_m *AuditEvent) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEvent(_m))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEventClient) UpdateOneID(id int) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEventID(id))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEvent.
func (c *AuditEventClient) Delete() *AuditEventDelete {
	mutation := newAuditEventMutation(c.config, OpDelete)
	return &AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEventClient) DeleteOne(_m *AuditEvent) *AuditEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEventClient) DeleteOneID(id int) *AuditEventDeleteOne {
	builder := c.Delete().Where(auditevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEventDeleteOne{builder}
}

// Query returns a query builder for AuditEvent.
func (c *AuditEventClient) Query() *AuditEventQuery {
	return &AuditEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEvent entity by its id.
func (c *AuditEventClient) Get(ctx context.Context, id int) (*AuditEvent, error) {
	return c.Query().Where(auditevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEventClient) GetX(ctx context.Context, id int) *AuditEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEventClient) Hooks() []Hook {
	return c.hooks.AuditEvent
}

// Interceptors returns the client interceptors.
func (c *AuditEventClient) Interceptors() []Interceptor {
	return c.inters.AuditEvent
}

func (c *AuditEventClient) mutate(ctx context.Context, m *AuditEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEvent mutation op: %q", m.Op())
	}
}

// BalancingRuleClient is a client for the BalancingRule schema.
type BalancingRuleClient struct {
	config
}

// NewBalancingRuleClient returns a client for the BalancingRule from the given config.
func NewBalancingRuleClient(c config) *BalancingRuleClient {
	return &BalancingRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `balancingrule.Hooks(f(g(h())))`.
func (c *BalancingRuleClient) Use(hooks ...Hook) {
	c.hooks.BalancingRule = append(c.hooks.BalancingRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `balancingrule.Intercept(f(g(h())))`.
func (c *BalancingRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.BalancingRule = append(c.inters.BalancingRule, interceptors...)
}

// Create returns a builder for creating a BalancingRule entity.
func (c *BalancingRuleClient) Create() *BalancingRuleCreate {
	mutation := newBalancingRuleMutation(c.config, OpCreate)
	return &BalancingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BalancingRule entities.
func (c *BalancingRuleClient) CreateBulk(builders ...*BalancingRuleCreate) *BalancingRuleCreateBulk {
	return &BalancingRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BalancingRuleClient) MapCreateBulk(slice any, setFunc func(*BalancingRuleCreate, int)) *BalancingRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BalancingRuleCreateBulk{err: fmt.Errorf("calling to BalancingRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BalancingRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BalancingRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BalancingRule.
func (c *BalancingRuleClient) Update() *BalancingRuleUpdate {
	mutation := newBalancingRuleMutation(c.config, OpUpdate)
	return &BalancingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BalancingRuleClient) UpdateOne(_m *BalancingRule) *BalancingRuleUpdateOne {
	mutation := newBalancingRuleMutation(c.config, OpUpdateOne, withBalancingRule(_m))
	return &BalancingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BalancingRuleClient) UpdateOneID(id int) *BalancingRuleUpdateOne {
	mutation := newBalancingRuleMutation(c.config, OpUpdateOne, withBalancingRuleID(id))
	return &BalancingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BalancingRule.
func (c *BalancingRuleClient) Delete() *BalancingRuleDelete {
	mutation := newBalancingRuleMutation(c.config, OpDelete)
	return &BalancingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BalancingRuleClient) DeleteOne(_m *BalancingRule) *BalancingRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BalancingRuleClient) DeleteOneID(id int) *BalancingRuleDeleteOne {
	builder := c.Delete().Where(balancingrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BalancingRuleDeleteOne{builder}
}

// Query returns a query builder for BalancingRule.
func (c *BalancingRuleClient) Query() *BalancingRuleQuery {
	return &BalancingRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBalancingRule},
		inters: c.Interceptors(),
	}
}

// Get returns a BalancingRule entity by its id.
func (c *BalancingRuleClient) Get(ctx context.Context, id int) (*BalancingRule, error) {
	return c.Query().Where(balancingrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BalancingRuleClient) GetX(ctx context.Context, id int) *BalancingRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BalancingRuleClient) Hooks() []Hook {
	return c.hooks.BalancingRule
}

// Interceptors returns the client interceptors.
func (c *BalancingRuleClient) Interceptors() []Interceptor {
	return c.inters.BalancingRule
}

func (c *BalancingRuleClient) mutate(ctx context.Context, m *BalancingRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BalancingRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BalancingRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BalancingRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BalancingRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BalancingRule mutation op: %q", m.Op())
	}
}

// ExecutionClient is a client for the Execution schema.
type ExecutionClient struct {
	config
}

// NewExecutionClient returns a client for the Execution from the given config.
func NewExecutionClient(c config) *ExecutionClient {
	return &ExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `execution.Hooks(f(g(h())))`.
func (c *ExecutionClient) Use(hooks ...Hook) {
	c.hooks.Execution = append(c.hooks.Execution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `execution.Intercept(f(g(h())))`.
func (c *ExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Execution = append(c.inters.Execution, interceptors...)
}

// Create returns a builder for creating a Execution entity.
func (c *ExecutionClient) Create() *ExecutionCreate {
	mutation := newExecutionMutation(c.config, OpCreate)
	return &ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Execution entities.
func (c *ExecutionClient) CreateBulk(builders ...*ExecutionCreate) *ExecutionCreateBulk {
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionClient) MapCreateBulk(slice any, setFunc func(*ExecutionCreate, int)) *ExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionCreateBulk{err: fmt.Errorf("calling to ExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Execution.
func (c *ExecutionClient) Update() *ExecutionUpdate {
	mutation := newExecutionMutation(c.config, OpUpdate)
	return &ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionClient) UpdateOne(_m *Execution) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecution(_m))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionClient) UpdateOneID(id string) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecutionID(id))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Execution.
func (c *ExecutionClient) Delete() *ExecutionDelete {
	mutation := newExecutionMutation(c.config, OpDelete)
	return &ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionClient) DeleteOne(_m *Execution) *ExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionClient) DeleteOneID(id string) *ExecutionDeleteOne {
	builder := c.Delete().Where(execution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionDeleteOne{builder}
}

// Query returns a query builder for Execution.
func (c *ExecutionClient) Query() *ExecutionQuery {
	return &ExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a Execution entity by its id.
func (c *ExecutionClient) Get(ctx context.Context, id string) (*Execution, error) {
	return c.Query().Where(execution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionClient) GetX(ctx context.Context, id string) *Execution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRunner queries the runner edge of a Execution.
func (c *ExecutionClient) QueryRunner(_m *Execution) *RunnerQuery {
	query := (&RunnerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(runner.Table, runner.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, execution.RunnerTable, execution.RunnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAllocations queries the allocations edge of a Execution.
func (c *ExecutionClient) QueryAllocations(_m *Execution) *ResourceAllocationQuery {
	query := (&ResourceAllocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(resourceallocation.Table, resourceallocation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, execution.AllocationsTable, execution.AllocationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionClient) Hooks() []Hook {
	return c.hooks.Execution
}

// Interceptors returns the client interceptors.
func (c *ExecutionClient) Interceptors() []Interceptor {
	return c.inters.Execution
}

func (c *ExecutionClient) mutate(ctx context.Context, m *ExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Execution mutation op: %q", m.Op())
	}
}

// HealthSampleClient is a client for the HealthSample schema.
type HealthSampleClient struct {
	config
}

// NewHealthSampleClient returns a client for the HealthSample from the given config.
func NewHealthSampleClient(c config) *HealthSampleClient {
	return &HealthSampleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `healthsample.Hooks(f(g(h())))`.
func (c *HealthSampleClient) Use(hooks ...Hook) {
	c.hooks.HealthSample = append(c.hooks.HealthSample, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `healthsample.Intercept(f(g(h())))`.
func (c *HealthSampleClient) Intercept(interceptors ...Interceptor) {
	c.inters.HealthSample = append(c.inters.HealthSample, interceptors...)
}

// Create returns a builder for creating a HealthSample entity.
func (c *HealthSampleClient) Create() *HealthSampleCreate {
	mutation := newHealthSampleMutation(c.config, OpCreate)
	return &HealthSampleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HealthSample entities.
func (c *HealthSampleClient) CreateBulk(builders ...*HealthSampleCreate) *HealthSampleCreateBulk {
	return &HealthSampleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HealthSampleClient) MapCreateBulk(slice any, setFunc func(*HealthSampleCreate, int)) *HealthSampleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HealthSampleCreateBulk{err: fmt.Errorf("calling to HealthSampleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HealthSampleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HealthSampleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HealthSample.
func (c *HealthSampleClient) Update() *HealthSampleUpdate {
	mutation := newHealthSampleMutation(c.config, OpUpdate)
	return &HealthSampleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HealthSampleClient) UpdateOne(_m *HealthSample) *HealthSampleUpdateOne {
	mutation := newHealthSampleMutation(c.config, OpUpdateOne, withHealthSample(_m))
	return &HealthSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HealthSampleClient) UpdateOneID(id int) *HealthSampleUpdateOne {
	mutation := newHealthSampleMutation(c.config, OpUpdateOne, withHealthSampleID(id))
	return &HealthSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HealthSample.
func (c *HealthSampleClient) Delete() *HealthSampleDelete {
	mutation := newHealthSampleMutation(c.config, OpDelete)
	return &HealthSampleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HealthSampleClient) DeleteOne(_m *HealthSample) *HealthSampleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HealthSampleClient) DeleteOneID(id int) *HealthSampleDeleteOne {
	builder := c.Delete().Where(healthsample.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HealthSampleDeleteOne{builder}
}

// Query returns a query builder for HealthSample.
func (c *HealthSampleClient) Query() *HealthSampleQuery {
	return &HealthSampleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHealthSample},
		inters: c.Interceptors(),
	}
}

// Get returns a HealthSample entity by its id.
func (c *HealthSampleClient) Get(ctx context.Context, id int) (*HealthSample, error) {
	return c.Query().Where(healthsample.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HealthSampleClient) GetX(ctx context.Context, id int) *HealthSample {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRunner queries the runner edge of a HealthSample.
func (c *HealthSampleClient) QueryRunner(_m *HealthSample) *RunnerQuery {
	query := (&RunnerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(healthsample.Table, healthsample.FieldID, id),
			sqlgraph.To(runner.Table, runner.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, healthsample.RunnerTable, healthsample.RunnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HealthSampleClient) Hooks() []Hook {
	return c.hooks.HealthSample
}

// Interceptors returns the client interceptors.
func (c *HealthSampleClient) Interceptors() []Interceptor {
	return c.inters.HealthSample
}

func (c *HealthSampleClient) mutate(ctx context.Context, m *HealthSampleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HealthSampleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HealthSampleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HealthSampleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HealthSampleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HealthSample mutation op: %q", m.Op())
	}
}

// ResourceAllocationClient is a client for the ResourceAllocation schema.
type ResourceAllocationClient struct {
	config
}

// NewResourceAllocationClient returns a client for the ResourceAllocation from the given config.
func NewResourceAllocationClient(c config) *ResourceAllocationClient {
	return &ResourceAllocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resourceallocation.Hooks(f(g(h())))`.
func (c *ResourceAllocationClient) Use(hooks ...Hook) {
	c.hooks.ResourceAllocation = append(c.hooks.ResourceAllocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resourceallocation.Intercept(f(g(h())))`.
func (c *ResourceAllocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResourceAllocation = append(c.inters.ResourceAllocation, interceptors...)
}

// Create returns a builder for creating a ResourceAllocation entity.
func (c *ResourceAllocationClient) Create() *ResourceAllocationCreate {
	mutation := newResourceAllocationMutation(c.config, OpCreate)
	return &ResourceAllocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResourceAllocation entities.
func (c *ResourceAllocationClient) CreateBulk(builders ...*ResourceAllocationCreate) *ResourceAllocationCreateBulk {
	return &ResourceAllocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResourceAllocationClient) MapCreateBulk(slice any, setFunc func(*ResourceAllocationCreate, int)) *ResourceAllocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResourceAllocationCreateBulk{err: fmt.Errorf("calling to ResourceAllocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResourceAllocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResourceAllocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResourceAllocation.
func (c *ResourceAllocationClient) Update() *ResourceAllocationUpdate {
	mutation := newResourceAllocationMutation(c.config, OpUpdate)
	return &ResourceAllocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResourceAllocationClient) UpdateOne(_m *ResourceAllocation) *ResourceAllocationUpdateOne {
	mutation := newResourceAllocationMutation(c.config, OpUpdateOne, withResourceAllocation(_m))
	return &ResourceAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResourceAllocationClient) UpdateOneID(id int) *ResourceAllocationUpdateOne {
	mutation := newResourceAllocationMutation(c.config, OpUpdateOne, withResourceAllocationID(id))
	return &ResourceAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResourceAllocation.
func (c *ResourceAllocationClient) Delete() *ResourceAllocationDelete {
	mutation := newResourceAllocationMutation(c.config, OpDelete)
	return &ResourceAllocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResourceAllocationClient) DeleteOne(_m *ResourceAllocation) *ResourceAllocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResourceAllocationClient) DeleteOneID(id int) *ResourceAllocationDeleteOne {
	builder := c.Delete().Where(resourceallocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResourceAllocationDeleteOne{builder}
}

// Query returns a query builder for ResourceAllocation.
func (c *ResourceAllocationClient) Query() *ResourceAllocationQuery {
	return &ResourceAllocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResourceAllocation},
		inters: c.Interceptors(),
	}
}

// Get returns a ResourceAllocation entity by its id.
func (c *ResourceAllocationClient) Get(ctx context.Context, id int) (*ResourceAllocation, error) {
	return c.Query().Where(resourceallocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResourceAllocationClient) GetX(ctx context.Context, id int) *ResourceAllocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a ResourceAllocation.
func (c *ResourceAllocationClient) QueryExecution(_m *ResourceAllocation) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resourceallocation.Table, resourceallocation.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, resourceallocation.ExecutionTable, resourceallocation.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRunner queries the runner edge of a ResourceAllocation.
func (c *ResourceAllocationClient) QueryRunner(_m *ResourceAllocation) *RunnerQuery {
	query := (&RunnerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resourceallocation.Table, resourceallocation.FieldID, id),
			sqlgraph.To(runner.Table, runner.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, resourceallocation.RunnerTable, resourceallocation.RunnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResourceAllocationClient) Hooks() []Hook {
	return c.hooks.ResourceAllocation
}

// Interceptors returns the client interceptors.
func (c *ResourceAllocationClient) Interceptors() []Interceptor {
	return c.inters.ResourceAllocation
}

func (c *ResourceAllocationClient) mutate(ctx context.Context, m *ResourceAllocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResourceAllocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResourceAllocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResourceAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResourceAllocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResourceAllocation mutation op: %q", m.Op())
	}
}

// RunnerClient is a client for the Runner schema.
type RunnerClient struct {
	config
}

// NewRunnerClient returns a client for the Runner from the given config.
func NewRunnerClient(c config) *RunnerClient {
	return &RunnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runner.Hooks(f(g(h())))`.
func (c *RunnerClient) Use(hooks ...Hook) {
	c.hooks.Runner = append(c.hooks.Runner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runner.Intercept(f(g(h())))`.
func (c *RunnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Runner = append(c.inters.Runner, interceptors...)
}

// Create returns a builder for creating a Runner entity.
func (c *RunnerClient) Create() *RunnerCreate {
	mutation := newRunnerMutation(c.config, OpCreate)
	return &RunnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Runner entities.
func (c *RunnerClient) CreateBulk(builders ...*RunnerCreate) *RunnerCreateBulk {
	return &RunnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunnerClient) MapCreateBulk(slice any, setFunc func(*RunnerCreate, int)) *RunnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunnerCreateBulk{err: fmt.Errorf("calling to RunnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Runner.
func (c *RunnerClient) Update() *RunnerUpdate {
	mutation := newRunnerMutation(c.config, OpUpdate)
	return &RunnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunnerClient) UpdateOne(_m *Runner) *RunnerUpdateOne {
	mutation := newRunnerMutation(c.config, OpUpdateOne, withRunner(_m))
	return &RunnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunnerClient) UpdateOneID(id int) *RunnerUpdateOne {
	mutation := newRunnerMutation(c.config, OpUpdateOne, withRunnerID(id))
	return &RunnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Runner.
func (c *RunnerClient) Delete() *RunnerDelete {
	mutation := newRunnerMutation(c.config, OpDelete)
	return &RunnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunnerClient) DeleteOne(_m *Runner) *RunnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunnerClient) DeleteOneID(id int) *RunnerDeleteOne {
	builder := c.Delete().Where(runner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunnerDeleteOne{builder}
}

// Query returns a query builder for Runner.
func (c *RunnerClient) Query() *RunnerQuery {
	return &RunnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunner},
		inters: c.Interceptors(),
	}
}

// Get returns a Runner entity by its id.
func (c *RunnerClient) Get(ctx context.Context, id int) (*Runner, error) {
	return c.Query().Where(runner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunnerClient) GetX(ctx context.Context, id int) *Runner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecutions queries the executions edge of a Runner.
func (c *RunnerClient) QueryExecutions(_m *Runner) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runner.Table, runner.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runner.ExecutionsTable, runner.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAllocations queries the allocations edge of a Runner.
func (c *RunnerClient) QueryAllocations(_m *Runner) *ResourceAllocationQuery {
	query := (&ResourceAllocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runner.Table, runner.FieldID, id),
			sqlgraph.To(resourceallocation.Table, resourceallocation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runner.AllocationsTable, runner.AllocationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHealthSamples queries the health_samples edge of a Runner.
func (c *RunnerClient) QueryHealthSamples(_m *Runner) *HealthSampleQuery {
	query := (&HealthSampleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runner.Table, runner.FieldID, id),
			sqlgraph.To(healthsample.Table, healthsample.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runner.HealthSamplesTable, runner.HealthSamplesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunnerClient) Hooks() []Hook {
	return c.hooks.Runner
}

// Interceptors returns the client interceptors.
func (c *RunnerClient) Interceptors() []Interceptor {
	return c.inters.Runner
}

func (c *RunnerClient) mutate(ctx context.Context, m *RunnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Runner mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditEvent, BalancingRule, Execution, HealthSample, ResourceAllocation,
		Runner []ent.Hook
	}
	inters struct {
		AuditEvent, BalancingRule, Execution, HealthSample, ResourceAllocation,
		Runner []ent.Interceptor
	}
)
