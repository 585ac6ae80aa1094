// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/openintent-io/openintent/ent/predicate"
	"github.com/openintent-io/openintent/ent/toolgrant"
)

// ToolGrantUpdate is the builder for updating ToolGrant entities.
type ToolGrantUpdate struct {
	config
	hooks    []Hook
	mutation *ToolGrantMutation
}

// Where appends a list predicates to the ToolGrantUpdate builder.
func (_u *ToolGrantUpdate) Where(ps ...predicate.ToolGrant) *ToolGrantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *ToolGrantUpdate) SetCredentialID(v string) *ToolGrantUpdate {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *ToolGrantUpdate) SetNillableCredentialID(v *string) *ToolGrantUpdate {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// SetAllowedHosts sets the "allowed_hosts" field.
func (_u *ToolGrantUpdate) SetAllowedHosts(v []string) *ToolGrantUpdate {
	_u.mutation.SetAllowedHosts(v)
	return _u
}

// AppendAllowedHosts appends value to the "allowed_hosts" field.
func (_u *ToolGrantUpdate) AppendAllowedHosts(v []string) *ToolGrantUpdate {
	_u.mutation.AppendAllowedHosts(v)
	return _u
}

// ClearAllowedHosts clears the value of the "allowed_hosts" field.
func (_u *ToolGrantUpdate) ClearAllowedHosts() *ToolGrantUpdate {
	_u.mutation.ClearAllowedHosts()
	return _u
}

// SetRateLimit sets the "rate_limit" field.
func (_u *ToolGrantUpdate) SetRateLimit(v int) *ToolGrantUpdate {
	_u.mutation.ResetRateLimit()
	_u.mutation.SetRateLimit(v)
	return _u
}

// SetNillableRateLimit sets the "rate_limit" field if the given value is not nil.
func (_u *ToolGrantUpdate) SetNillableRateLimit(v *int) *ToolGrantUpdate {
	if v != nil {
		_u.SetRateLimit(*v)
	}
	return _u
}

// AddRateLimit adds value to the "rate_limit" field.
func (_u *ToolGrantUpdate) AddRateLimit(v int) *ToolGrantUpdate {
	_u.mutation.AddRateLimit(v)
	return _u
}

// SetRateWindowSeconds sets the "rate_window_seconds" field.
func (_u *ToolGrantUpdate) SetRateWindowSeconds(v int) *ToolGrantUpdate {
	_u.mutation.ResetRateWindowSeconds()
	_u.mutation.SetRateWindowSeconds(v)
	return _u
}

// SetNillableRateWindowSeconds sets the "rate_window_seconds" field if the given value is not nil.
func (_u *ToolGrantUpdate) SetNillableRateWindowSeconds(v *int) *ToolGrantUpdate {
	if v != nil {
		_u.SetRateWindowSeconds(*v)
	}
	return _u
}

// AddRateWindowSeconds adds value to the "rate_window_seconds" field.
func (_u *ToolGrantUpdate) AddRateWindowSeconds(v int) *ToolGrantUpdate {
	_u.mutation.AddRateWindowSeconds(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ToolGrantUpdate) SetExpiresAt(v time.Time) *ToolGrantUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ToolGrantUpdate) SetNillableExpiresAt(v *time.Time) *ToolGrantUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ToolGrantUpdate) ClearExpiresAt() *ToolGrantUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the ToolGrantMutation object of the builder.
func (_u *ToolGrantUpdate) Mutation() *ToolGrantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolGrantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolGrantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolGrantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolGrantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ToolGrantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolgrant.Table, toolgrant.Columns, sqlgraph.NewFieldSpec(toolgrant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CredentialID(); ok {
		_spec.SetField(toolgrant.FieldCredentialID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedHosts(); ok {
		_spec.SetField(toolgrant.FieldAllowedHosts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedHosts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolgrant.FieldAllowedHosts, value)
		})
	}
	if _u.mutation.AllowedHostsCleared() {
		_spec.ClearField(toolgrant.FieldAllowedHosts, field.TypeJSON)
	}
	if value, ok := _u.mutation.RateLimit(); ok {
		_spec.SetField(toolgrant.FieldRateLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateLimit(); ok {
		_spec.AddField(toolgrant.FieldRateLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RateWindowSeconds(); ok {
		_spec.SetField(toolgrant.FieldRateWindowSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateWindowSeconds(); ok {
		_spec.AddField(toolgrant.FieldRateWindowSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(toolgrant.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(toolgrant.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolgrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolGrantUpdateOne is the builder for updating a single ToolGrant entity.
type ToolGrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolGrantMutation
}

// SetCredentialID sets the "credential_id" field.
func (_u *ToolGrantUpdateOne) SetCredentialID(v string) *ToolGrantUpdateOne {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *ToolGrantUpdateOne) SetNillableCredentialID(v *string) *ToolGrantUpdateOne {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// SetAllowedHosts sets the "allowed_hosts" field.
func (_u *ToolGrantUpdateOne) SetAllowedHosts(v []string) *ToolGrantUpdateOne {
	_u.mutation.SetAllowedHosts(v)
	return _u
}

// AppendAllowedHosts appends value to the "allowed_hosts" field.
func (_u *ToolGrantUpdateOne) AppendAllowedHosts(v []string) *ToolGrantUpdateOne {
	_u.mutation.AppendAllowedHosts(v)
	return _u
}

// ClearAllowedHosts clears the value of the "allowed_hosts" field.
func (_u *ToolGrantUpdateOne) ClearAllowedHosts() *ToolGrantUpdateOne {
	_u.mutation.ClearAllowedHosts()
	return _u
}

// SetRateLimit sets the "rate_limit" field.
func (_u *ToolGrantUpdateOne) SetRateLimit(v int) *ToolGrantUpdateOne {
	_u.mutation.ResetRateLimit()
	_u.mutation.SetRateLimit(v)
	return _u
}

// SetNillableRateLimit sets the "rate_limit" field if the given value is not nil.
func (_u *ToolGrantUpdateOne) SetNillableRateLimit(v *int) *ToolGrantUpdateOne {
	if v != nil {
		_u.SetRateLimit(*v)
	}
	return _u
}

// AddRateLimit adds value to the "rate_limit" field.
func (_u *ToolGrantUpdateOne) AddRateLimit(v int) *ToolGrantUpdateOne {
	_u.mutation.AddRateLimit(v)
	return _u
}

// SetRateWindowSeconds sets the "rate_window_seconds" field.
func (_u *ToolGrantUpdateOne) SetRateWindowSeconds(v int) *ToolGrantUpdateOne {
	_u.mutation.ResetRateWindowSeconds()
	_u.mutation.SetRateWindowSeconds(v)
	return _u
}

// SetNillableRateWindowSeconds sets the "rate_window_seconds" field if the given value is not nil.
func (_u *ToolGrantUpdateOne) SetNillableRateWindowSeconds(v *int) *ToolGrantUpdateOne {
	if v != nil {
		_u.SetRateWindowSeconds(*v)
	}
	return _u
}

// AddRateWindowSeconds adds value to the "rate_window_seconds" field.
func (_u *ToolGrantUpdateOne) AddRateWindowSeconds(v int) *ToolGrantUpdateOne {
	_u.mutation.AddRateWindowSeconds(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ToolGrantUpdateOne) SetExpiresAt(v time.Time) *ToolGrantUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ToolGrantUpdateOne) SetNillableExpiresAt(v *time.Time) *ToolGrantUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ToolGrantUpdateOne) ClearExpiresAt() *ToolGrantUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the ToolGrantMutation object of the builder.
func (_u *ToolGrantUpdateOne) Mutation() *ToolGrantMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolGrantUpdate builder.
func (_u *ToolGrantUpdateOne) Where(ps ...predicate.ToolGrant) *ToolGrantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolGrantUpdateOne) Select(field string, fields ...string) *ToolGrantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolGrant entity.
func (_u *ToolGrantUpdateOne) Save(ctx context.Context) (*ToolGrant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolGrantUpdateOne) SaveX(ctx context.Context) *ToolGrant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolGrantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolGrantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ToolGrantUpdateOne) sqlSave(ctx context.Context) (_node *ToolGrant, err error) {
	_spec := sqlgraph.NewUpdateSpec(toolgrant.Table, toolgrant.Columns, sqlgraph.NewFieldSpec(toolgrant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolGrant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolgrant.FieldID)
		for _, f := range fields {
			if !toolgrant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolgrant.FieldID {
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
	if value, ok := _u.mutation.CredentialID(); ok {
		_spec.SetField(toolgrant.FieldCredentialID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AllowedHosts(); ok {
		_spec.SetField(toolgrant.FieldAllowedHosts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedHosts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, toolgrant.FieldAllowedHosts, value)
		})
	}
	if _u.mutation.AllowedHostsCleared() {
		_spec.ClearField(toolgrant.FieldAllowedHosts, field.TypeJSON)
	}
	if value, ok := _u.mutation.RateLimit(); ok {
		_spec.SetField(toolgrant.FieldRateLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateLimit(); ok {
		_spec.AddField(toolgrant.FieldRateLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RateWindowSeconds(); ok {
		_spec.SetField(toolgrant.FieldRateWindowSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRateWindowSeconds(); ok {
		_spec.AddField(toolgrant.FieldRateWindowSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(toolgrant.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(toolgrant.FieldExpiresAt, field.TypeTime)
	}
	_node = &ToolGrant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolgrant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
