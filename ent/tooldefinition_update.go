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
	"github.com/openintent-io/openintent/ent/predicate"
	"github.com/openintent-io/openintent/ent/tooldefinition"
)

// ToolDefinitionUpdate is the builder for updating ToolDefinition entities.
type ToolDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *ToolDefinitionMutation
}

// Where appends a list predicates to the ToolDefinitionUpdate builder.
func (_u *ToolDefinitionUpdate) Where(ps ...predicate.ToolDefinition) *ToolDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ToolDefinitionUpdate) SetName(v string) *ToolDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolDefinitionUpdate) SetNillableName(v *string) *ToolDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAdapter sets the "adapter" field.
func (_u *ToolDefinitionUpdate) SetAdapter(v tooldefinition.Adapter) *ToolDefinitionUpdate {
	_u.mutation.SetAdapter(v)
	return _u
}

// SetNillableAdapter sets the "adapter" field if the given value is not nil.
func (_u *ToolDefinitionUpdate) SetNillableAdapter(v *tooldefinition.Adapter) *ToolDefinitionUpdate {
	if v != nil {
		_u.SetAdapter(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ToolDefinitionUpdate) SetDescription(v string) *ToolDefinitionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ToolDefinitionUpdate) SetNillableDescription(v *string) *ToolDefinitionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ToolDefinitionUpdate) ClearDescription() *ToolDefinitionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetConfig sets the "config" field.
func (_u *ToolDefinitionUpdate) SetConfig(v map[string]interface{}) *ToolDefinitionUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolDefinitionUpdate) SetUpdatedAt(v time.Time) *ToolDefinitionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ToolDefinitionMutation object of the builder.
func (_u *ToolDefinitionUpdate) Mutation() *ToolDefinitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolDefinitionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolDefinitionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tooldefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Adapter(); ok {
		if err := tooldefinition.AdapterValidator(v); err != nil {
			return &ValidationError{Name: "adapter", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.adapter": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tooldefinition.Table, tooldefinition.Columns, sqlgraph.NewFieldSpec(tooldefinition.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tooldefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adapter(); ok {
		_spec.SetField(tooldefinition.FieldAdapter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tooldefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tooldefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(tooldefinition.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tooldefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tooldefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolDefinitionUpdateOne is the builder for updating a single ToolDefinition entity.
type ToolDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolDefinitionMutation
}

// SetName sets the "name" field.
func (_u *ToolDefinitionUpdateOne) SetName(v string) *ToolDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ToolDefinitionUpdateOne) SetNillableName(v *string) *ToolDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAdapter sets the "adapter" field.
func (_u *ToolDefinitionUpdateOne) SetAdapter(v tooldefinition.Adapter) *ToolDefinitionUpdateOne {
	_u.mutation.SetAdapter(v)
	return _u
}

// SetNillableAdapter sets the "adapter" field if the given value is not nil.
func (_u *ToolDefinitionUpdateOne) SetNillableAdapter(v *tooldefinition.Adapter) *ToolDefinitionUpdateOne {
	if v != nil {
		_u.SetAdapter(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ToolDefinitionUpdateOne) SetDescription(v string) *ToolDefinitionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ToolDefinitionUpdateOne) SetNillableDescription(v *string) *ToolDefinitionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ToolDefinitionUpdateOne) ClearDescription() *ToolDefinitionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetConfig sets the "config" field.
func (_u *ToolDefinitionUpdateOne) SetConfig(v map[string]interface{}) *ToolDefinitionUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ToolDefinitionUpdateOne) SetUpdatedAt(v time.Time) *ToolDefinitionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ToolDefinitionMutation object of the builder.
func (_u *ToolDefinitionUpdateOne) Mutation() *ToolDefinitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolDefinitionUpdate builder.
func (_u *ToolDefinitionUpdateOne) Where(ps ...predicate.ToolDefinition) *ToolDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolDefinitionUpdateOne) Select(field string, fields ...string) *ToolDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolDefinition entity.
func (_u *ToolDefinitionUpdateOne) Save(ctx context.Context) (*ToolDefinition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolDefinitionUpdateOne) SaveX(ctx context.Context) *ToolDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ToolDefinitionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tooldefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Adapter(); ok {
		if err := tooldefinition.AdapterValidator(v); err != nil {
			return &ValidationError{Name: "adapter", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.adapter": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *ToolDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tooldefinition.Table, tooldefinition.Columns, sqlgraph.NewFieldSpec(tooldefinition.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tooldefinition.FieldID)
		for _, f := range fields {
			if !tooldefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tooldefinition.FieldID {
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
		_spec.SetField(tooldefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adapter(); ok {
		_spec.SetField(tooldefinition.FieldAdapter, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tooldefinition.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(tooldefinition.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(tooldefinition.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tooldefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ToolDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tooldefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
