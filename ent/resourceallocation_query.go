// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// ResourceAllocationQuery is the builder for querying ResourceAllocation entities.
type ResourceAllocationQuery struct {
	config
	ctx           *QueryContext
	order         []resourceallocation.OrderOption
	inters        []Interceptor
	predicates    []predicate.ResourceAllocation
	withExecution *ExecutionQuery
	withRunner    *RunnerQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ResourceAllocationQuery builder.
func (_q *ResourceAllocationQuery) Where(ps ...predicate.ResourceAllocation) *ResourceAllocationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ResourceAllocationQuery) Limit(limit int) *ResourceAllocationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ResourceAllocationQuery) Offset(offset int) *ResourceAllocationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ResourceAllocationQuery) Unique(unique bool) *ResourceAllocationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ResourceAllocationQuery) Order(o ...resourceallocation.OrderOption) *ResourceAllocationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExecution chains the current query on the "execution" edge.
func (_q *ResourceAllocationQuery) QueryExecution() *ExecutionQuery {
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
			sqlgraph.From(resourceallocation.Table, resourceallocation.FieldID, selector),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, resourceallocation.ExecutionTable, resourceallocation.ExecutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRunner chains the current query on the "runner" edge.
func (_q *ResourceAllocationQuery) QueryRunner() *RunnerQuery {
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
			sqlgraph.From(resourceallocation.Table, resourceallocation.FieldID, selector),
			sqlgraph.To(runner.Table, runner.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, resourceallocation.RunnerTable, resourceallocation.RunnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ResourceAllocation entity from the query.
// Returns a *NotFoundError when no ResourceAllocation was found.
func (_q *ResourceAllocationQuery) First(ctx context.Context) (*ResourceAllocation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{resourceallocation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ResourceAllocationQuery) FirstX(ctx context.Context) *ResourceAllocation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ResourceAllocation ID from the query.
// Returns a *NotFoundError when no ResourceAllocation ID was found.
func (_q *ResourceAllocationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{resourceallocation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ResourceAllocationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ResourceAllocation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ResourceAllocation entity is found.
// Returns a *NotFoundError when no ResourceAllocation entities are found.
func (_q *ResourceAllocationQuery) Only(ctx context.Context) (*ResourceAllocation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{resourceallocation.Label}
	default:
		return nil, &NotSingularError{resourceallocation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ResourceAllocationQuery) OnlyX(ctx context.Context) *ResourceAllocation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ResourceAllocation ID in the query.
// Returns a *NotSingularError when more than one ResourceAllocation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ResourceAllocationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{resourceallocation.Label}
	default:
		err = &NotSingularError{resourceallocation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ResourceAllocationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ResourceAllocations.
func (_q *ResourceAllocationQuery) All(ctx context.Context) ([]*ResourceAllocation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ResourceAllocation, *ResourceAllocationQuery]()
	return withInterceptors[[]*ResourceAllocation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ResourceAllocationQuery) AllX(ctx context.Context) []*ResourceAllocation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ResourceAllocation IDs.
func (_q *ResourceAllocationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(resourceallocation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ResourceAllocationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ResourceAllocationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ResourceAllocationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ResourceAllocationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ResourceAllocationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ResourceAllocationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ResourceAllocationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ResourceAllocationQuery) Clone() *ResourceAllocationQuery {
	if _q == nil {
		return nil
	}
	return &ResourceAllocationQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]resourceallocation.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ResourceAllocation{}, _q.predicates...),
		withExecution: _q.withExecution.Clone(),
		withRunner:    _q.withRunner.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExecution tells the query-builder to eager-load the nodes that are connected to
// the "execution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResourceAllocationQuery) WithExecution(opts ...func(*ExecutionQuery)) *ResourceAllocationQuery {
	query := (&ExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExecution = query
	return _q
}

// WithRunner tells the query-builder to eager-load the nodes that are connected to
// the "runner" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResourceAllocationQuery) WithRunner(opts ...func(*RunnerQuery)) *ResourceAllocationQuery {
	query := (&RunnerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRunner = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ExecutionID string `json:"execution_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ResourceAllocation.Query().
//		GroupBy(resourceallocation.FieldExecutionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ResourceAllocationQuery) GroupBy(field string, fields ...string) *ResourceAllocationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ResourceAllocationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = resourceallocation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ExecutionID string `json:"execution_id,omitempty"`
//	}
//
//	client.ResourceAllocation.Query().
//		Select(resourceallocation.FieldExecutionID).
//		Scan(ctx, &v)
func (_q *ResourceAllocationQuery) Select(fields ...string) *ResourceAllocationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ResourceAllocationSelect{ResourceAllocationQuery: _q}
	sbuild.label = resourceallocation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ResourceAllocationSelect configured with the given aggregations.
func (_q *ResourceAllocationQuery) Aggregate(fns ...AggregateFunc) *ResourceAllocationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ResourceAllocationQuery) prepareQuery(ctx context.Context) error {
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
		if !resourceallocation.ValidColumn(f) {
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

func (_q *ResourceAllocationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ResourceAllocation, error) {
	var (
		nodes       = []*ResourceAllocation{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withExecution != nil,
			_q.withRunner != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ResourceAllocation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ResourceAllocation{config: _q.config}
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
	if query := _q.withExecution; query != nil {
		if err := _q.loadExecution(ctx, query, nodes, nil,
			func(n *ResourceAllocation, e *Execution) { n.Edges.Execution = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRunner; query != nil {
		if err := _q.loadRunner(ctx, query, nodes, nil,
			func(n *ResourceAllocation, e *Runner) { n.Edges.Runner = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ResourceAllocationQuery) loadExecution(ctx context.Context, query *ExecutionQuery, nodes []*ResourceAllocation, init func(*ResourceAllocation), assign func(*ResourceAllocation, *Execution)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ResourceAllocation)
	for i := range nodes {
		fk := nodes[i].ExecutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(execution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "execution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ResourceAllocationQuery) loadRunner(ctx context.Context, query *RunnerQuery, nodes []*ResourceAllocation, init func(*ResourceAllocation), assign func(*ResourceAllocation, *Runner)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*ResourceAllocation)
	for i := range nodes {
		fk := nodes[i].RunnerID
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
			return fmt.Errorf(`unexpected foreign-key "runner_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ResourceAllocationQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *ResourceAllocationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(resourceallocation.Table, resourceallocation.Columns, sqlgraph.NewFieldSpec(resourceallocation.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resourceallocation.FieldID)
		for i := range fields {
			if fields[i] != resourceallocation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withExecution != nil {
			_spec.Node.AddColumnOnce(resourceallocation.FieldExecutionID)
		}
		if _q.withRunner != nil {
			_spec.Node.AddColumnOnce(resourceallocation.FieldRunnerID)
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

func (_q *ResourceAllocationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(resourceallocation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = resourceallocation.Columns
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
func (_q *ResourceAllocationQuery) ForUpdate(opts ...sql.LockOption) *ResourceAllocationQuery {
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
func (_q *ResourceAllocationQuery) ForShare(opts ...sql.LockOption) *ResourceAllocationQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ResourceAllocationGroupBy is the group-by builder for ResourceAllocation entities.
type ResourceAllocationGroupBy struct {
	selector
	build *ResourceAllocationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ResourceAllocationGroupBy) Aggregate(fns ...AggregateFunc) *ResourceAllocationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ResourceAllocationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResourceAllocationQuery, *ResourceAllocationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ResourceAllocationGroupBy) sqlScan(ctx context.Context, root *ResourceAllocationQuery, v any) error {
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

// ResourceAllocationSelect is the builder for selecting fields of ResourceAllocation entities.
type ResourceAllocationSelect struct {
	*ResourceAllocationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ResourceAllocationSelect) Aggregate(fns ...AggregateFunc) *ResourceAllocationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ResourceAllocationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResourceAllocationQuery, *ResourceAllocationSelect](ctx, _s.ResourceAllocationQuery, _s, _s.inters, v)
}

func (_s *ResourceAllocationSelect) sqlScan(ctx context.Context, root *ResourceAllocationQuery, v any) error {
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
