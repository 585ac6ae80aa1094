// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/predicate"
)

// CostEntryUpdate is the builder for updating CostEntry entities.
type CostEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CostEntryMutation
}

// Where appends a list predicates to the CostEntryUpdate builder.
func (_u *CostEntryUpdate) Where(ps ...predicate.CostEntry) *CostEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCostType sets the "cost_type" field.
func (_u *CostEntryUpdate) SetCostType(v costentry.CostType) *CostEntryUpdate {
	_u.mutation.SetCostType(v)
	return _u
}

// SetNillableCostType sets the "cost_type" field if the given value is not nil.
func (_u *CostEntryUpdate) SetNillableCostType(v *costentry.CostType) *CostEntryUpdate {
	if v != nil {
		_u.SetCostType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CostEntryUpdate) SetAmount(v float64) *CostEntryUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CostEntryUpdate) SetNillableAmount(v *float64) *CostEntryUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CostEntryUpdate) AddAmount(v float64) *CostEntryUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CostEntryUpdate) SetCurrency(v string) *CostEntryUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CostEntryUpdate) SetNillableCurrency(v *string) *CostEntryUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CostEntryUpdate) SetDescription(v string) *CostEntryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CostEntryUpdate) SetNillableDescription(v *string) *CostEntryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CostEntryUpdate) ClearDescription() *CostEntryUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the CostEntryMutation object of the builder.
func (_u *CostEntryUpdate) Mutation() *CostEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CostEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CostEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CostEntryUpdate) check() error {
	if v, ok := _u.mutation.CostType(); ok {
		if err := costentry.CostTypeValidator(v); err != nil {
			return &ValidationError{Name: "cost_type", err: fmt.Errorf(`ent: validator failed for field "CostEntry.cost_type": %w`, err)}
		}
	}
	if _u.mutation.IntentCleared() && len(_u.mutation.IntentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CostEntry.intent"`)
	}
	return nil
}

func (_u *CostEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(costentry.Table, costentry.Columns, sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CostType(); ok {
		_spec.SetField(costentry.FieldCostType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(costentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(costentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(costentry.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(costentry.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(costentry.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CostEntryUpdateOne is the builder for updating a single CostEntry entity.
type CostEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CostEntryMutation
}

// SetCostType sets the "cost_type" field.
func (_u *CostEntryUpdateOne) SetCostType(v costentry.CostType) *CostEntryUpdateOne {
	_u.mutation.SetCostType(v)
	return _u
}

// SetNillableCostType sets the "cost_type" field if the given value is not nil.
func (_u *CostEntryUpdateOne) SetNillableCostType(v *costentry.CostType) *CostEntryUpdateOne {
	if v != nil {
		_u.SetCostType(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CostEntryUpdateOne) SetAmount(v float64) *CostEntryUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CostEntryUpdateOne) SetNillableAmount(v *float64) *CostEntryUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *CostEntryUpdateOne) AddAmount(v float64) *CostEntryUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *CostEntryUpdateOne) SetCurrency(v string) *CostEntryUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *CostEntryUpdateOne) SetNillableCurrency(v *string) *CostEntryUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CostEntryUpdateOne) SetDescription(v string) *CostEntryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CostEntryUpdateOne) SetNillableDescription(v *string) *CostEntryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CostEntryUpdateOne) ClearDescription() *CostEntryUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the CostEntryMutation object of the builder.
func (_u *CostEntryUpdateOne) Mutation() *CostEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CostEntryUpdate builder.
func (_u *CostEntryUpdateOne) Where(ps ...predicate.CostEntry) *CostEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CostEntryUpdateOne) Select(field string, fields ...string) *CostEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CostEntry entity.
func (_u *CostEntryUpdateOne) Save(ctx context.Context) (*CostEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostEntryUpdateOne) SaveX(ctx context.Context) *CostEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CostEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CostEntryUpdateOne) check() error {
	if v, ok := _u.mutation.CostType(); ok {
		if err := costentry.CostTypeValidator(v); err != nil {
			return &ValidationError{Name: "cost_type", err: fmt.Errorf(`ent: validator failed for field "CostEntry.cost_type": %w`, err)}
		}
	}
	if _u.mutation.IntentCleared() && len(_u.mutation.IntentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CostEntry.intent"`)
	}
	return nil
}

func (_u *CostEntryUpdateOne) sqlSave(ctx context.Context) (_node *CostEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(costentry.Table, costentry.Columns, sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CostEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, costentry.FieldID)
		for _, f := range fields {
			if !costentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != costentry.FieldID {
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
	if value, ok := _u.mutation.CostType(); ok {
		_spec.SetField(costentry.FieldCostType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(costentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(costentry.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(costentry.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(costentry.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(costentry.FieldDescription, field.TypeString)
	}
	_node = &CostEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
