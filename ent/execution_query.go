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
	"github.com/baton-ci/baton/ent/predicate"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
)

// ExecutionQuery is the builder for querying Execution entities.
type ExecutionQuery struct {
	config
	ctx             *QueryContext
	order           []execution.OrderOption
	inters          []Interceptor
	predicates      []predicate.Execution
	withRunner      *RunnerQuery
	withAllocations *ResourceAllocationQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExecutionQuery builder.
func (_q *ExecutionQuery) Where(ps ...predicate.Execution) *ExecutionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExecutionQuery) Limit(limit int) *ExecutionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExecutionQuery) Offset(offset int) *ExecutionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExecutionQuery) Unique(unique bool) *ExecutionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExecutionQuery) Order(o ...execution.OrderOption) *ExecutionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRunner chains the current query on the "runner" edge.
func (_q *ExecutionQuery) QueryRunner() *RunnerQuery {
	query := (&RunnerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, selector),
			sqlgraph.To(runner.Table, runner.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, execution.RunnerTable, execution.RunnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAllocations chains the current query on the "allocations" edge.
func (_q *ExecutionQuery) QueryAllocations() *ResourceAllocationQuery {
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
			sqlgraph.From(execution.Table, execution.FieldID, selector),
			sqlgraph.To(resourceallocation.Table, resourceallocation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, execution.AllocationsTable, execution.AllocationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Execution entity from the query.
// Returns a *NotFoundError when no Execution was found.
func (_q *ExecutionQuery) First(ctx context.Context) (*Execution, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{execution.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExecutionQuery) FirstX(ctx context.Context) *Execution {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Execution ID from the query.
// Returns a *NotFoundError when no Execution ID was found.
func (_q *ExecutionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{execution.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExecutionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Execution entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Execution entity is found.
// Returns a *NotFoundError when no Execution entities are found.
func (_q *ExecutionQuery) Only(ctx context.Context) (*Execution, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{execution.Label}
	default:
		return nil, &NotSingularError{execution.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExecutionQuery) OnlyX(ctx context.Context) *Execution {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Execution ID in the query.
// Returns a *NotSingularError when more than one Execution ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExecutionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{execution.Label}
	default:
		err = &NotSingularError{execution.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExecutionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Executions.
func (_q *ExecutionQuery) All(ctx context.Context) ([]*Execution, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Execution, *ExecutionQuery]()
	return withInterceptors[[]*Execution](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExecutionQuery) AllX(ctx context.Context) []*Execution {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Execution IDs.
func (_q *ExecutionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(execution.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExecutionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExecutionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExecutionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExecutionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExecutionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExecutionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExecutionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExecutionQuery) Clone() *ExecutionQuery {
	if _q == nil {
		return nil
	}
	return &ExecutionQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]execution.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Execution{}, _q.predicates...),
		withRunner:      _q.withRunner.Clone(),
		withAllocations: _q.withAllocations.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRunner tells the query-builder to eager-load the nodes that are connected to
// the "runner" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExecutionQuery) WithRunner(opts ...func(*RunnerQuery)) *ExecutionQuery {
	query := (&RunnerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRunner = query
	return _q
}

// WithAllocations tells the query-builder to eager-load the nodes that are connected to
// the "allocations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExecutionQuery) WithAllocations(opts ...func(*ResourceAllocationQuery)) *ExecutionQuery {
	query := (&ResourceAllocationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAllocations = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TestSuite string `json:"test_suite,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Execution.Query().
//		GroupBy(execution.FieldTestSuite).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExecutionQuery) GroupBy(field string, fields ...string) *ExecutionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExecutionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = execution.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TestSuite string `json:"test_suite,omitempty"`
//	}
//
//	client.Execution.Query().
//		Select(execution.FieldTestSuite).
//		Scan(ctx, &v)
func (_q *ExecutionQuery) Select(fields ...string) *ExecutionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExecutionSelect{ExecutionQuery: _q}
	sbuild.label = execution.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExecutionSelect configured with the given aggregations.
func (_q *ExecutionQuery) Aggregate(fns ...AggregateFunc) *ExecutionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExecutionQuery) prepareQuery(ctx context.Context) error {
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
		if !execution.ValidColumn(f) {
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

func (_q *ExecutionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Execution, error) {
	var (
		nodes       = []*Execution{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRunner != nil,
			_q.withAllocations != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Execution).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Execution{config: _q.config}
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
	if query := _q.withRunner; query != nil {
		if err := _q.loadRunner(ctx, query, nodes, nil,
			func(n *Execution, e *Runner) { n.Edges.Runner = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAllocations; query != nil {
		if err := _q.loadAllocations(ctx, query, nodes,
			func(n *Execution) { n.Edges.Allocations = []*ResourceAllocation{} },
			func(n *Execution, e *ResourceAllocation) { n.Edges.Allocations = append(n.Edges.Allocations, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExecutionQuery) loadRunner(ctx context.Context, query *RunnerQuery, nodes []*Execution, init func(*Execution), assign func(*Execution, *Runner)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Execution)
	for i := range nodes {
		if nodes[i].AssignedRunnerID == nil {
			continue
		}
		fk := *nodes[i].AssignedRunnerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(runner.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "assigned_runner_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExecutionQuery) loadAllocations(ctx context.Context, query *ResourceAllocationQuery, nodes []*Execution, init func(*Execution), assign func(*Execution, *ResourceAllocation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Execution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(resourceallocation.FieldExecutionID)
	}
	query.Where(predicate.ResourceAllocation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(execution.AllocationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ExecutionQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *ExecutionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for i := range fields {
			if fields[i] != execution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRunner != nil {
			_spec.Node.AddColumnOnce(execution.FieldAssignedRunnerID)
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

func (_q *ExecutionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(execution.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = execution.Columns
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
func (_q *ExecutionQuery) ForUpdate(opts ...sql.LockOption) *ExecutionQuery {
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
func (_q *ExecutionQuery) ForShare(opts ...sql.LockOption) *ExecutionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ExecutionGroupBy is the group-by builder for Execution entities.
type ExecutionGroupBy struct {
	selector
	build *ExecutionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExecutionGroupBy) Aggregate(fns ...AggregateFunc) *ExecutionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExecutionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExecutionQuery, *ExecutionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExecutionGroupBy) sqlScan(ctx context.Context, root *ExecutionQuery, v any) error {
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

// ExecutionSelect is the builder for selecting fields of Execution entities.
type ExecutionSelect struct {
	*ExecutionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExecutionSelect) Aggregate(fns ...AggregateFunc) *ExecutionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExecutionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExecutionQuery, *ExecutionSelect](ctx, _s.ExecutionQuery, _s, _s.inters, v)
}

func (_s *ExecutionSelect) sqlScan(ctx context.Context, root *ExecutionQuery, v any) error {
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
