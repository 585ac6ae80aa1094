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
	"github.com/openintent-io/openintent/ent/attachment"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
	"github.com/openintent-io/openintent/ent/lease"
	"github.com/openintent-io/openintent/ent/portfoliomember"
	"github.com/openintent-io/openintent/ent/predicate"
)

// IntentQuery is the builder for querying Intent entities.
type IntentQuery struct {
	config
	ctx             *QueryContext
	order           []intent.OrderOption
	inters          []Interceptor
	predicates      []predicate.Intent
	withEvents      *IntentEventQuery
	withLeases      *LeaseQuery
	withCosts       *CostEntryQuery
	withAttachments *AttachmentQuery
	withFailures    *FailureRecordQuery
	withMemberships *PortfolioMemberQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the IntentQuery builder.
func (_q *IntentQuery) Where(ps ...predicate.Intent) *IntentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *IntentQuery) Limit(limit int) *IntentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *IntentQuery) Offset(offset int) *IntentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *IntentQuery) Unique(unique bool) *IntentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *IntentQuery) Order(o ...intent.OrderOption) *IntentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEvents chains the current query on the "events" edge.
func (_q *IntentQuery) QueryEvents() *IntentEventQuery {
	query := (&IntentEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, selector),
			sqlgraph.To(intentevent.Table, intentevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.EventsTable, intent.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLeases chains the current query on the "leases" edge.
func (_q *IntentQuery) QueryLeases() *LeaseQuery {
	query := (&LeaseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, selector),
			sqlgraph.To(lease.Table, lease.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.LeasesTable, intent.LeasesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCosts chains the current query on the "costs" edge.
func (_q *IntentQuery) QueryCosts() *CostEntryQuery {
	query := (&CostEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, selector),
			sqlgraph.To(costentry.Table, costentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.CostsTable, intent.CostsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAttachments chains the current query on the "attachments" edge.
func (_q *IntentQuery) QueryAttachments() *AttachmentQuery {
	query := (&AttachmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, selector),
			sqlgraph.To(attachment.Table, attachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.AttachmentsTable, intent.AttachmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFailures chains the current query on the "failures" edge.
func (_q *IntentQuery) QueryFailures() *FailureRecordQuery {
	query := (&FailureRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, selector),
			sqlgraph.To(failurerecord.Table, failurerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.FailuresTable, intent.FailuresColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMemberships chains the current query on the "memberships" edge.
func (_q *IntentQuery) QueryMemberships() *PortfolioMemberQuery {
	query := (&PortfolioMemberClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, selector),
			sqlgraph.To(portfoliomember.Table, portfoliomember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.MembershipsTable, intent.MembershipsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Intent entity from the query.
// Returns a *NotFoundError when no Intent was found.
func (_q *IntentQuery) First(ctx context.Context) (*Intent, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{intent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *IntentQuery) FirstX(ctx context.Context) *Intent {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Intent ID from the query.
// Returns a *NotFoundError when no Intent ID was found.
func (_q *IntentQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{intent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *IntentQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Intent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Intent entity is found.
// Returns a *NotFoundError when no Intent entities are found.
func (_q *IntentQuery) Only(ctx context.Context) (*Intent, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{intent.Label}
	default:
		return nil, &NotSingularError{intent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *IntentQuery) OnlyX(ctx context.Context) *Intent {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Intent ID in the query.
// Returns a *NotSingularError when more than one Intent ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *IntentQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{intent.Label}
	default:
		err = &NotSingularError{intent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *IntentQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Intents.
func (_q *IntentQuery) All(ctx context.Context) ([]*Intent, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Intent, *IntentQuery]()
	return withInterceptors[[]*Intent](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *IntentQuery) AllX(ctx context.Context) []*Intent {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Intent IDs.
func (_q *IntentQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(intent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *IntentQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *IntentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*IntentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *IntentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *IntentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *IntentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the IntentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *IntentQuery) Clone() *IntentQuery {
	if _q == nil {
		return nil
	}
	return &IntentQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]intent.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Intent{}, _q.predicates...),
		withEvents:      _q.withEvents.Clone(),
		withLeases:      _q.withLeases.Clone(),
		withCosts:       _q.withCosts.Clone(),
		withAttachments: _q.withAttachments.Clone(),
		withFailures:    _q.withFailures.Clone(),
		withMemberships: _q.withMemberships.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IntentQuery) WithEvents(opts ...func(*IntentEventQuery)) *IntentQuery {
	query := (&IntentEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithLeases tells the query-builder to eager-load the nodes that are connected to
// the "leases" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IntentQuery) WithLeases(opts ...func(*LeaseQuery)) *IntentQuery {
	query := (&LeaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLeases = query
	return _q
}

// WithCosts tells the query-builder to eager-load the nodes that are connected to
// the "costs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IntentQuery) WithCosts(opts ...func(*CostEntryQuery)) *IntentQuery {
	query := (&CostEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCosts = query
	return _q
}

// WithAttachments tells the query-builder to eager-load the nodes that are connected to
// the "attachments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IntentQuery) WithAttachments(opts ...func(*AttachmentQuery)) *IntentQuery {
	query := (&AttachmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAttachments = query
	return _q
}

// WithFailures tells the query-builder to eager-load the nodes that are connected to
// the "failures" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IntentQuery) WithFailures(opts ...func(*FailureRecordQuery)) *IntentQuery {
	query := (&FailureRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFailures = query
	return _q
}

// WithMemberships tells the query-builder to eager-load the nodes that are connected to
// the "memberships" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *IntentQuery) WithMemberships(opts ...func(*PortfolioMemberQuery)) *IntentQuery {
	query := (&PortfolioMemberClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMemberships = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Intent.Query().
//		GroupBy(intent.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *IntentQuery) GroupBy(field string, fields ...string) *IntentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &IntentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = intent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.Intent.Query().
//		Select(intent.FieldTitle).
//		Scan(ctx, &v)
func (_q *IntentQuery) Select(fields ...string) *IntentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &IntentSelect{IntentQuery: _q}
	sbuild.label = intent.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a IntentSelect configured with the given aggregations.
func (_q *IntentQuery) Aggregate(fns ...AggregateFunc) *IntentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *IntentQuery) prepareQuery(ctx context.Context) error {
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
		if !intent.ValidColumn(f) {
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

func (_q *IntentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Intent, error) {
	var (
		nodes       = []*Intent{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withEvents != nil,
			_q.withLeases != nil,
			_q.withCosts != nil,
			_q.withAttachments != nil,
			_q.withFailures != nil,
			_q.withMemberships != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Intent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Intent{config: _q.config}
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
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Intent) { n.Edges.Events = []*IntentEvent{} },
			func(n *Intent, e *IntentEvent) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLeases; query != nil {
		if err := _q.loadLeases(ctx, query, nodes,
			func(n *Intent) { n.Edges.Leases = []*Lease{} },
			func(n *Intent, e *Lease) { n.Edges.Leases = append(n.Edges.Leases, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCosts; query != nil {
		if err := _q.loadCosts(ctx, query, nodes,
			func(n *Intent) { n.Edges.Costs = []*CostEntry{} },
			func(n *Intent, e *CostEntry) { n.Edges.Costs = append(n.Edges.Costs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAttachments; query != nil {
		if err := _q.loadAttachments(ctx, query, nodes,
			func(n *Intent) { n.Edges.Attachments = []*Attachment{} },
			func(n *Intent, e *Attachment) { n.Edges.Attachments = append(n.Edges.Attachments, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFailures; query != nil {
		if err := _q.loadFailures(ctx, query, nodes,
			func(n *Intent) { n.Edges.Failures = []*FailureRecord{} },
			func(n *Intent, e *FailureRecord) { n.Edges.Failures = append(n.Edges.Failures, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMemberships; query != nil {
		if err := _q.loadMemberships(ctx, query, nodes,
			func(n *Intent) { n.Edges.Memberships = []*PortfolioMember{} },
			func(n *Intent, e *PortfolioMember) { n.Edges.Memberships = append(n.Edges.Memberships, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *IntentQuery) loadEvents(ctx context.Context, query *IntentEventQuery, nodes []*Intent, init func(*Intent), assign func(*Intent, *IntentEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Intent)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(intentevent.FieldIntentID)
	}
	query.Where(predicate.IntentEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(intent.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "intent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *IntentQuery) loadLeases(ctx context.Context, query *LeaseQuery, nodes []*Intent, init func(*Intent), assign func(*Intent, *Lease)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Intent)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(lease.FieldIntentID)
	}
	query.Where(predicate.Lease(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(intent.LeasesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "intent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *IntentQuery) loadCosts(ctx context.Context, query *CostEntryQuery, nodes []*Intent, init func(*Intent), assign func(*Intent, *CostEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Intent)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(costentry.FieldIntentID)
	}
	query.Where(predicate.CostEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(intent.CostsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "intent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *IntentQuery) loadAttachments(ctx context.Context, query *AttachmentQuery, nodes []*Intent, init func(*Intent), assign func(*Intent, *Attachment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Intent)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(attachment.FieldIntentID)
	}
	query.Where(predicate.Attachment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(intent.AttachmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "intent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *IntentQuery) loadFailures(ctx context.Context, query *FailureRecordQuery, nodes []*Intent, init func(*Intent), assign func(*Intent, *FailureRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Intent)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(failurerecord.FieldIntentID)
	}
	query.Where(predicate.FailureRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(intent.FailuresColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "intent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *IntentQuery) loadMemberships(ctx context.Context, query *PortfolioMemberQuery, nodes []*Intent, init func(*Intent), assign func(*Intent, *PortfolioMember)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Intent)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(portfoliomember.FieldIntentID)
	}
	query.Where(predicate.PortfolioMember(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(intent.MembershipsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.IntentID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "intent_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *IntentQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *IntentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(intent.Table, intent.Columns, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intent.FieldID)
		for i := range fields {
			if fields[i] != intent.FieldID {
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

func (_q *IntentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(intent.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = intent.Columns
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
func (_q *IntentQuery) ForUpdate(opts ...sql.LockOption) *IntentQuery {
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
func (_q *IntentQuery) ForShare(opts ...sql.LockOption) *IntentQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// IntentGroupBy is the group-by builder for Intent entities.
type IntentGroupBy struct {
	selector
	build *IntentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *IntentGroupBy) Aggregate(fns ...AggregateFunc) *IntentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *IntentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IntentQuery, *IntentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *IntentGroupBy) sqlScan(ctx context.Context, root *IntentQuery, v any) error {
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

// IntentSelect is the builder for selecting fields of Intent entities.
type IntentSelect struct {
	*IntentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *IntentSelect) Aggregate(fns ...AggregateFunc) *IntentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *IntentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*IntentQuery, *IntentSelect](ctx, _s.IntentQuery, _s, _s.inters, v)
}

func (_s *IntentSelect) sqlScan(ctx context.Context, root *IntentQuery, v any) error {
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
