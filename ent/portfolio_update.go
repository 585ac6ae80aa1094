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
	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/ent/portfoliomember"
	"github.com/openintent-io/openintent/ent/predicate"
)

// PortfolioUpdate is the builder for updating Portfolio entities.
type PortfolioUpdate struct {
	config
	hooks    []Hook
	mutation *PortfolioMutation
}

// Where appends a list predicates to the PortfolioUpdate builder.
func (_u *PortfolioUpdate) Where(ps ...predicate.Portfolio) *PortfolioUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PortfolioUpdate) SetName(v string) *PortfolioUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PortfolioUpdate) SetNillableName(v *string) *PortfolioUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PortfolioUpdate) SetStatus(v portfolio.Status) *PortfolioUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PortfolioUpdate) SetNillableStatus(v *portfolio.Status) *PortfolioUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGovernancePolicy sets the "governance_policy" field.
func (_u *PortfolioUpdate) SetGovernancePolicy(v map[string]interface{}) *PortfolioUpdate {
	_u.mutation.SetGovernancePolicy(v)
	return _u
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (_u *PortfolioUpdate) ClearGovernancePolicy() *PortfolioUpdate {
	_u.mutation.ClearGovernancePolicy()
	return _u
}

// SetAggregate sets the "aggregate" field.
func (_u *PortfolioUpdate) SetAggregate(v map[string]interface{}) *PortfolioUpdate {
	_u.mutation.SetAggregate(v)
	return _u
}

// ClearAggregate clears the value of the "aggregate" field.
func (_u *PortfolioUpdate) ClearAggregate() *PortfolioUpdate {
	_u.mutation.ClearAggregate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PortfolioUpdate) SetUpdatedAt(v time.Time) *PortfolioUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemberIDs adds the "members" edge to the PortfolioMember entity by IDs.
func (_u *PortfolioUpdate) AddMemberIDs(ids ...int) *PortfolioUpdate {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the PortfolioMember entity.
func (_u *PortfolioUpdate) AddMembers(v ...*PortfolioMember) *PortfolioUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the PortfolioMutation object of the builder.
func (_u *PortfolioUpdate) Mutation() *PortfolioMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the PortfolioMember entity.
func (_u *PortfolioUpdate) ClearMembers() *PortfolioUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to PortfolioMember entities by IDs.
func (_u *PortfolioUpdate) RemoveMemberIDs(ids ...int) *PortfolioUpdate {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to PortfolioMember entities.
func (_u *PortfolioUpdate) RemoveMembers(v ...*PortfolioMember) *PortfolioUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PortfolioUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortfolioUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PortfolioUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortfolioUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PortfolioUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := portfolio.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortfolioUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := portfolio.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Portfolio.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PortfolioUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(portfolio.Table, portfolio.Columns, sqlgraph.NewFieldSpec(portfolio.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(portfolio.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(portfolio.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GovernancePolicy(); ok {
		_spec.SetField(portfolio.FieldGovernancePolicy, field.TypeJSON, value)
	}
	if _u.mutation.GovernancePolicyCleared() {
		_spec.ClearField(portfolio.FieldGovernancePolicy, field.TypeJSON)
	}
	if value, ok := _u.mutation.Aggregate(); ok {
		_spec.SetField(portfolio.FieldAggregate, field.TypeJSON, value)
	}
	if _u.mutation.AggregateCleared() {
		_spec.ClearField(portfolio.FieldAggregate, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(portfolio.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portfolio.MembersTable,
			Columns: []string{portfolio.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portfolio.MembersTable,
			Columns: []string{portfolio.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portfolio.MembersTable,
			Columns: []string{portfolio.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{portfolio.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PortfolioUpdateOne is the builder for updating a single Portfolio entity.
type PortfolioUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PortfolioMutation
}

// SetName sets the "name" field.
func (_u *PortfolioUpdateOne) SetName(v string) *PortfolioUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PortfolioUpdateOne) SetNillableName(v *string) *PortfolioUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PortfolioUpdateOne) SetStatus(v portfolio.Status) *PortfolioUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PortfolioUpdateOne) SetNillableStatus(v *portfolio.Status) *PortfolioUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGovernancePolicy sets the "governance_policy" field.
func (_u *PortfolioUpdateOne) SetGovernancePolicy(v map[string]interface{}) *PortfolioUpdateOne {
	_u.mutation.SetGovernancePolicy(v)
	return _u
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (_u *PortfolioUpdateOne) ClearGovernancePolicy() *PortfolioUpdateOne {
	_u.mutation.ClearGovernancePolicy()
	return _u
}

// SetAggregate sets the "aggregate" field.
func (_u *PortfolioUpdateOne) SetAggregate(v map[string]interface{}) *PortfolioUpdateOne {
	_u.mutation.SetAggregate(v)
	return _u
}

// ClearAggregate clears the value of the "aggregate" field.
func (_u *PortfolioUpdateOne) ClearAggregate() *PortfolioUpdateOne {
	_u.mutation.ClearAggregate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PortfolioUpdateOne) SetUpdatedAt(v time.Time) *PortfolioUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemberIDs adds the "members" edge to the PortfolioMember entity by IDs.
func (_u *PortfolioUpdateOne) AddMemberIDs(ids ...int) *PortfolioUpdateOne {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the PortfolioMember entity.
func (_u *PortfolioUpdateOne) AddMembers(v ...*PortfolioMember) *PortfolioUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the PortfolioMutation object of the builder.
func (_u *PortfolioUpdateOne) Mutation() *PortfolioMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the PortfolioMember entity.
func (_u *PortfolioUpdateOne) ClearMembers() *PortfolioUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to PortfolioMember entities by IDs.
func (_u *PortfolioUpdateOne) RemoveMemberIDs(ids ...int) *PortfolioUpdateOne {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to PortfolioMember entities.
func (_u *PortfolioUpdateOne) RemoveMembers(v ...*PortfolioMember) *PortfolioUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Where appends a list predicates to the PortfolioUpdate builder.
func (_u *PortfolioUpdateOne) Where(ps ...predicate.Portfolio) *PortfolioUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PortfolioUpdateOne) Select(field string, fields ...string) *PortfolioUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Portfolio entity.
func (_u *PortfolioUpdateOne) Save(ctx context.Context) (*Portfolio, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortfolioUpdateOne) SaveX(ctx context.Context) *Portfolio {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PortfolioUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortfolioUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PortfolioUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := portfolio.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortfolioUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := portfolio.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Portfolio.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PortfolioUpdateOne) sqlSave(ctx context.Context) (_node *Portfolio, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(portfolio.Table, portfolio.Columns, sqlgraph.NewFieldSpec(portfolio.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Portfolio.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, portfolio.FieldID)
		for _, f := range fields {
			if !portfolio.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != portfolio.FieldID {
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
		_spec.SetField(portfolio.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(portfolio.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GovernancePolicy(); ok {
		_spec.SetField(portfolio.FieldGovernancePolicy, field.TypeJSON, value)
	}
	if _u.mutation.GovernancePolicyCleared() {
		_spec.ClearField(portfolio.FieldGovernancePolicy, field.TypeJSON)
	}
	if value, ok := _u.mutation.Aggregate(); ok {
		_spec.SetField(portfolio.FieldAggregate, field.TypeJSON, value)
	}
	if _u.mutation.AggregateCleared() {
		_spec.ClearField(portfolio.FieldAggregate, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(portfolio.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portfolio.MembersTable,
			Columns: []string{portfolio.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portfolio.MembersTable,
			Columns: []string{portfolio.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portfolio.MembersTable,
			Columns: []string{portfolio.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Portfolio{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{portfolio.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
