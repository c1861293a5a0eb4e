// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/predicate"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
)

// RunnerQuery is the builder for querying Runner entities.
type RunnerQuery struct {
	config
	ctx               *QueryContext
	order             []runner.OrderOption
	inters            []Interceptor
	predicates        []predicate.Runner
	withExecutions    *ExecutionQuery
	withAllocations   *ResourceAllocationQuery
	withHealthSamples *HealthSampleQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RunnerQuery builder.
func (_q *RunnerQuery) Where(ps ...predicate.Runner) *RunnerQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RunnerQuery) Limit(limit int) *RunnerQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RunnerQuery) Offset(offset int) *RunnerQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RunnerQuery) Unique(unique bool) *RunnerQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RunnerQuery) Order(o ...runner.OrderOption) *RunnerQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExecutions chains the current query on the "executions" edge.
func (_q *RunnerQuery) QueryExecutions() *ExecutionQuery {
	query := (&ExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(runner.Table, runner.FieldID, selector),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runner.ExecutionsTable, runner.ExecutionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAllocations chains the current query on the "allocations" edge.
func (_q *RunnerQuery) QueryAllocations() *ResourceAllocationQuery {
	query := (&ResourceAllocationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(runner.Table, runner.FieldID, selector),
			sqlgraph.To(resourceallocation.Table, resourceallocation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runner.AllocationsTable, runner.AllocationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHealthSamples chains the current query on the "health_samples" edge.
func (_q *RunnerQuery) QueryHealthSamples() *HealthSampleQuery {
	query := (&HealthSampleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(runner.Table, runner.FieldID, selector),
			sqlgraph.To(healthsample.Table, healthsample.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, runner.HealthSamplesTable, runner.HealthSamplesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Runner entity from the query.
// Returns a *NotFoundError when no Runner was found.
func (_q *RunnerQuery) First(ctx context.Context) (*Runner, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{runner.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RunnerQuery) FirstX(ctx context.Context) *Runner {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Runner ID from the query.
// Returns a *NotFoundError when no Runner ID was found.
func (_q *RunnerQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{runner.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RunnerQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Runner entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Runner entity is found.
// Returns a *NotFoundError when no Runner entities are found.
func (_q *RunnerQuery) Only(ctx context.Context) (*Runner, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{runner.Label}
	default:
		return nil, &NotSingularError{runner.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RunnerQuery) OnlyX(ctx context.Context) *Runner {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Runner ID in the query.
// Returns a *NotSingularError when more than one Runner ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RunnerQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{runner.Label}
	default:
		err = &NotSingularError{runner.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RunnerQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Runners.
func (_q *RunnerQuery) All(ctx context.Context) ([]*Runner, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Runner, *RunnerQuery]()
	return withInterceptors[[]*Runner](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RunnerQuery) AllX(ctx context.Context) []*Runner {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Runner IDs.
func (_q *RunnerQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(runner.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RunnerQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RunnerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RunnerQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RunnerQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RunnerQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RunnerQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RunnerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RunnerQuery) Clone() *RunnerQuery {
	if _q == nil {
		return nil
	}
	return &RunnerQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]runner.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Runner{}, _q.predicates...),
		withExecutions:    _q.withExecutions.Clone(),
		withAllocations:   _q.withAllocations.Clone(),
		withHealthSamples: _q.withHealthSamples.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExecutions tells the query-builder to eager-load the nodes that are connected to
// the "executions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunnerQuery) WithExecutions(opts ...func(*ExecutionQuery)) *RunnerQuery {
	query := (&ExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExecutions = query
	return _q
}

// WithAllocations tells the query-builder to eager-load the nodes that are connected to
// the "allocations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunnerQuery) WithAllocations(opts ...func(*ResourceAllocationQuery)) *RunnerQuery {
	query := (&ResourceAllocationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAllocations = query
	return _q
}

// WithHealthSamples tells the query-builder to eager-load the nodes that are connected to
// the "health_samples" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunnerQuery) WithHealthSamples(opts ...func(*HealthSampleQuery)) *RunnerQuery {
	query := (&HealthSampleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHealthSamples = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Runner.Query().
//		GroupBy(runner.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RunnerQuery) GroupBy(field string, fields ...string) *RunnerGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RunnerGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = runner.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Runner.Query().
//		Select(runner.FieldName).
//		Scan(ctx, &v)
func (_q *RunnerQuery) Select(fields ...string) *RunnerSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RunnerSelect{RunnerQuery: _q}
	sbuild.label = runner.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RunnerSelect configured with the given aggregations.
func (_q *RunnerQuery) Aggregate(fns ...AggregateFunc) *RunnerSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RunnerQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !runner.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *RunnerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Runner, error) {
	var (
		nodes       = []*Runner{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withExecutions != nil,
			_q.withAllocations != nil,
			_q.withHealthSamples != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Runner).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Runner{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withExecutions; query != nil {
		if err := _q.loadExecutions(ctx, query, nodes,
			func(n *Runner) { n.Edges.Executions = []*Execution{} },
			func(n *Runner, e *Execution) { n.Edges.Executions = append(n.Edges.Executions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAllocations; query != nil {
		if err := _q.loadAllocations(ctx, query, nodes,
			func(n *Runner) { n.Edges.Allocations = []*ResourceAllocation{} },
			func(n *Runner, e *ResourceAllocation) { n.Edges.Allocations = append(n.Edges.Allocations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHealthSamples; query != nil {
		if err := _q.loadHealthSamples(ctx, query, nodes,
			func(n *Runner) { n.Edges.HealthSamples = []*HealthSample{} },
			func(n *Runner, e *HealthSample) { n.Edges.HealthSamples = append(n.Edges.HealthSamples, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RunnerQuery) loadExecutions(ctx context.Context, query *ExecutionQuery, nodes []*Runner, init func(*Runner), assign func(*Runner, *Execution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Runner)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(execution.FieldAssignedRunnerID)
	}
	query.Where(predicate.Execution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(runner.ExecutionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AssignedRunnerID
		if fk == nil {
			return fmt.Errorf(`foreign-key "assigned_runner_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "assigned_runner_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RunnerQuery) loadAllocations(ctx context.Context, query *ResourceAllocationQuery, nodes []*Runner, init func(*Runner), assign func(*Runner, *ResourceAllocation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Runner)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(resourceallocation.FieldRunnerID)
	}
	query.Where(predicate.ResourceAllocation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(runner.AllocationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunnerID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "runner_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RunnerQuery) loadHealthSamples(ctx context.Context, query *HealthSampleQuery, nodes []*Runner, init func(*Runner), assign func(*Runner, *HealthSample)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Runner)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(healthsample.FieldRunnerID)
	}
	query.Where(predicate.HealthSample(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(runner.HealthSamplesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunnerID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "runner_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RunnerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RunnerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(runner.Table, runner.Columns, sqlgraph.NewFieldSpec(runner.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runner.FieldID)
		for i := range fields {
			if fields[i] != runner.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *RunnerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(runner.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = runner.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *RunnerQuery) ForUpdate(opts ...sql.LockOption) *RunnerQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *RunnerQuery) ForShare(opts ...sql.LockOption) *RunnerQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// RunnerGroupBy is the group-by builder for Runner entities.
type RunnerGroupBy struct {
	selector
	build *RunnerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RunnerGroupBy) Aggregate(fns ...AggregateFunc) *RunnerGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RunnerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RunnerQuery, *RunnerGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RunnerGroupBy) sqlScan(ctx context.Context, root *RunnerQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RunnerSelect is the builder for selecting fields of Runner entities.
type RunnerSelect struct {
	*RunnerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RunnerSelect) Aggregate(fns ...AggregateFunc) *RunnerSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RunnerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RunnerQuery, *RunnerSelect](ctx, _s.RunnerQuery, _s, _s.inters, v)
}

func (_s *RunnerSelect) sqlScan(ctx context.Context, root *RunnerQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
