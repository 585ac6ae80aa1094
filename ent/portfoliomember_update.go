// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openintent-io/openintent/ent/portfoliomember"
	"github.com/openintent-io/openintent/ent/predicate"
)

// PortfolioMemberUpdate is the builder for updating PortfolioMember entities.
type PortfolioMemberUpdate struct {
	config
	hooks    []Hook
	mutation *PortfolioMemberMutation
}

// Where appends a list predicates to the PortfolioMemberUpdate builder.
func (_u *PortfolioMemberUpdate) Where(ps ...predicate.PortfolioMember) *PortfolioMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *PortfolioMemberUpdate) SetRole(v portfoliomember.Role) *PortfolioMemberUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PortfolioMemberUpdate) SetNillableRole(v *portfoliomember.Role) *PortfolioMemberUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PortfolioMemberUpdate) SetPriority(v int) *PortfolioMemberUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PortfolioMemberUpdate) SetNillablePriority(v *int) *PortfolioMemberUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PortfolioMemberUpdate) AddPriority(v int) *PortfolioMemberUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// Mutation returns the PortfolioMemberMutation object of the builder.
func (_u *PortfolioMemberUpdate) Mutation() *PortfolioMemberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PortfolioMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortfolioMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PortfolioMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortfolioMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortfolioMemberUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := portfoliomember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PortfolioMember.role": %w`, err)}
		}
	}
	if _u.mutation.PortfolioCleared() && len(_u.mutation.PortfolioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PortfolioMember.portfolio"`)
	}
	if _u.mutation.IntentCleared() && len(_u.mutation.IntentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PortfolioMember.intent"`)
	}
	return nil
}

func (_u *PortfolioMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(portfoliomember.Table, portfoliomember.Columns, sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(portfoliomember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(portfoliomember.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(portfoliomember.FieldPriority, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{portfoliomember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PortfolioMemberUpdateOne is the builder for updating a single PortfolioMember entity.
type PortfolioMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PortfolioMemberMutation
}

// SetRole sets the "role" field.
func (_u *PortfolioMemberUpdateOne) SetRole(v portfoliomember.Role) *PortfolioMemberUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PortfolioMemberUpdateOne) SetNillableRole(v *portfoliomember.Role) *PortfolioMemberUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PortfolioMemberUpdateOne) SetPriority(v int) *PortfolioMemberUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PortfolioMemberUpdateOne) SetNillablePriority(v *int) *PortfolioMemberUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PortfolioMemberUpdateOne) AddPriority(v int) *PortfolioMemberUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// Mutation returns the PortfolioMemberMutation object of the builder.
func (_u *PortfolioMemberUpdateOne) Mutation() *PortfolioMemberMutation {
	return _u.mutation
}

// Where appends a list predicates to the PortfolioMemberUpdate builder.
func (_u *PortfolioMemberUpdateOne) Where(ps ...predicate.PortfolioMember) *PortfolioMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PortfolioMemberUpdateOne) Select(field string, fields ...string) *PortfolioMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PortfolioMember entity.
func (_u *PortfolioMemberUpdateOne) Save(ctx context.Context) (*PortfolioMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortfolioMemberUpdateOne) SaveX(ctx context.Context) *PortfolioMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PortfolioMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortfolioMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortfolioMemberUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := portfoliomember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PortfolioMember.role": %w`, err)}
		}
	}
	if _u.mutation.PortfolioCleared() && len(_u.mutation.PortfolioIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PortfolioMember.portfolio"`)
	}
	if _u.mutation.IntentCleared() && len(_u.mutation.IntentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PortfolioMember.intent"`)
	}
	return nil
}

func (_u *PortfolioMemberUpdateOne) sqlSave(ctx context.Context) (_node *PortfolioMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(portfoliomember.Table, portfoliomember.Columns, sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PortfolioMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, portfoliomember.FieldID)
		for _, f := range fields {
			if !portfoliomember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != portfoliomember.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(portfoliomember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(portfoliomember.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(portfoliomember.FieldPriority, field.TypeInt, value)
	}
	_node = &PortfolioMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{portfoliomember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
