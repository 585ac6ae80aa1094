// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openintent-io/openintent/ent/toolgrant"
)

// ToolGrantCreate is the builder for creating a ToolGrant entity.
type ToolGrantCreate struct {
	config
	mutation *ToolGrantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *ToolGrantCreate) SetAgentID(v string) *ToolGrantCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolGrantCreate) SetToolName(v string) *ToolGrantCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetCredentialID sets the "credential_id" field.
func (_c *ToolGrantCreate) SetCredentialID(v string) *ToolGrantCreate {
	_c.mutation.SetCredentialID(v)
	return _c
}

// SetAllowedHosts sets the "allowed_hosts" field.
func (_c *ToolGrantCreate) SetAllowedHosts(v []string) *ToolGrantCreate {
	_c.mutation.SetAllowedHosts(v)
	return _c
}

// SetRateLimit sets the "rate_limit" field.
func (_c *ToolGrantCreate) SetRateLimit(v int) *ToolGrantCreate {
	_c.mutation.SetRateLimit(v)
	return _c
}

// SetNillableRateLimit sets the "rate_limit" field if the given value is not nil.
func (_c *ToolGrantCreate) SetNillableRateLimit(v *int) *ToolGrantCreate {
	if v != nil {
		_c.SetRateLimit(*v)
	}
	return _c
}

// SetRateWindowSeconds sets the "rate_window_seconds" field.
func (_c *ToolGrantCreate) SetRateWindowSeconds(v int) *ToolGrantCreate {
	_c.mutation.SetRateWindowSeconds(v)
	return _c
}

// SetNillableRateWindowSeconds sets the "rate_window_seconds" field if the given value is not nil.
func (_c *ToolGrantCreate) SetNillableRateWindowSeconds(v *int) *ToolGrantCreate {
	if v != nil {
		_c.SetRateWindowSeconds(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ToolGrantCreate) SetExpiresAt(v time.Time) *ToolGrantCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ToolGrantCreate) SetNillableExpiresAt(v *time.Time) *ToolGrantCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolGrantCreate) SetCreatedAt(v time.Time) *ToolGrantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolGrantCreate) SetNillableCreatedAt(v *time.Time) *ToolGrantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolGrantCreate) SetID(v string) *ToolGrantCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ToolGrantMutation object of the builder.
func (_c *ToolGrantCreate) Mutation() *ToolGrantMutation {
	return _c.mutation
}

// Save creates the ToolGrant in the database.
func (_c *ToolGrantCreate) Save(ctx context.Context) (*ToolGrant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolGrantCreate) SaveX(ctx context.Context) *ToolGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolGrantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolGrantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolGrantCreate) defaults() {
	if _, ok := _c.mutation.RateLimit(); !ok {
		v := toolgrant.DefaultRateLimit
		_c.mutation.SetRateLimit(v)
	}
	if _, ok := _c.mutation.RateWindowSeconds(); !ok {
		v := toolgrant.DefaultRateWindowSeconds
		_c.mutation.SetRateWindowSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolgrant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolGrantCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ToolGrant.agent_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolGrant.tool_name"`)}
	}
	if _, ok := _c.mutation.CredentialID(); !ok {
		return &ValidationError{Name: "credential_id", err: errors.New(`ent: missing required field "ToolGrant.credential_id"`)}
	}
	if _, ok := _c.mutation.RateLimit(); !ok {
		return &ValidationError{Name: "rate_limit", err: errors.New(`ent: missing required field "ToolGrant.rate_limit"`)}
	}
	if _, ok := _c.mutation.RateWindowSeconds(); !ok {
		return &ValidationError{Name: "rate_window_seconds", err: errors.New(`ent: missing required field "ToolGrant.rate_window_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolGrant.created_at"`)}
	}
	return nil
}

func (_c *ToolGrantCreate) sqlSave(ctx context.Context) (*ToolGrant, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ToolGrant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolGrantCreate) createSpec() (*ToolGrant, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolGrant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolgrant.Table, sqlgraph.NewFieldSpec(toolgrant.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(toolgrant.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolgrant.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.CredentialID(); ok {
		_spec.SetField(toolgrant.FieldCredentialID, field.TypeString, value)
		_node.CredentialID = value
	}
	if value, ok := _c.mutation.AllowedHosts(); ok {
		_spec.SetField(toolgrant.FieldAllowedHosts, field.TypeJSON, value)
		_node.AllowedHosts = value
	}
	if value, ok := _c.mutation.RateLimit(); ok {
		_spec.SetField(toolgrant.FieldRateLimit, field.TypeInt, value)
		_node.RateLimit = value
	}
	if value, ok := _c.mutation.RateWindowSeconds(); ok {
		_spec.SetField(toolgrant.FieldRateWindowSeconds, field.TypeInt, value)
		_node.RateWindowSeconds = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(toolgrant.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolgrant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolGrant.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolGrantUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolGrantCreate) OnConflict(opts ...sql.ConflictOption) *ToolGrantUpsertOne {
	_c.conflict = opts
	return &ToolGrantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolGrant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolGrantCreate) OnConflictColumns(columns ...string) *ToolGrantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolGrantUpsertOne{
		create: _c,
	}
}

type (
	// ToolGrantUpsertOne is the builder for "upsert"-ing
	//  one ToolGrant node.
	ToolGrantUpsertOne struct {
		create *ToolGrantCreate
	}

	// ToolGrantUpsert is the "OnConflict" setter.
	ToolGrantUpsert struct {
		*sql.UpdateSet
	}
)

// SetCredentialID sets the "credential_id" field.
func (u *ToolGrantUpsert) SetCredentialID(v string) *ToolGrantUpsert {
	u.Set(toolgrant.FieldCredentialID, v)
	return u
}

// UpdateCredentialID sets the "credential_id" field to the value that was provided on create.
func (u *ToolGrantUpsert) UpdateCredentialID() *ToolGrantUpsert {
	u.SetExcluded(toolgrant.FieldCredentialID)
	return u
}

// SetAllowedHosts sets the "allowed_hosts" field.
func (u *ToolGrantUpsert) SetAllowedHosts(v []string) *ToolGrantUpsert {
	u.Set(toolgrant.FieldAllowedHosts, v)
	return u
}

// UpdateAllowedHosts sets the "allowed_hosts" field to the value that was provided on create.
func (u *ToolGrantUpsert) UpdateAllowedHosts() *ToolGrantUpsert {
	u.SetExcluded(toolgrant.FieldAllowedHosts)
	return u
}

// ClearAllowedHosts clears the value of the "allowed_hosts" field.
func (u *ToolGrantUpsert) ClearAllowedHosts() *ToolGrantUpsert {
	u.SetNull(toolgrant.FieldAllowedHosts)
	return u
}

// SetRateLimit sets the "rate_limit" field.
func (u *ToolGrantUpsert) SetRateLimit(v int) *ToolGrantUpsert {
	u.Set(toolgrant.FieldRateLimit, v)
	return u
}

// UpdateRateLimit sets the "rate_limit" field to the value that was provided on create.
func (u *ToolGrantUpsert) UpdateRateLimit() *ToolGrantUpsert {
	u.SetExcluded(toolgrant.FieldRateLimit)
	return u
}

// AddRateLimit adds v to the "rate_limit" field.
func (u *ToolGrantUpsert) AddRateLimit(v int) *ToolGrantUpsert {
	u.Add(toolgrant.FieldRateLimit, v)
	return u
}

// SetRateWindowSeconds sets the "rate_window_seconds" field.
func (u *ToolGrantUpsert) SetRateWindowSeconds(v int) *ToolGrantUpsert {
	u.Set(toolgrant.FieldRateWindowSeconds, v)
	return u
}

// UpdateRateWindowSeconds sets the "rate_window_seconds" field to the value that was provided on create.
func (u *ToolGrantUpsert) UpdateRateWindowSeconds() *ToolGrantUpsert {
	u.SetExcluded(toolgrant.FieldRateWindowSeconds)
	return u
}

// AddRateWindowSeconds adds v to the "rate_window_seconds" field.
func (u *ToolGrantUpsert) AddRateWindowSeconds(v int) *ToolGrantUpsert {
	u.Add(toolgrant.FieldRateWindowSeconds, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ToolGrantUpsert) SetExpiresAt(v time.Time) *ToolGrantUpsert {
	u.Set(toolgrant.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ToolGrantUpsert) UpdateExpiresAt() *ToolGrantUpsert {
	u.SetExcluded(toolgrant.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ToolGrantUpsert) ClearExpiresAt() *ToolGrantUpsert {
	u.SetNull(toolgrant.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ToolGrant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolgrant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolGrantUpsertOne) UpdateNewValues() *ToolGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(toolgrant.FieldID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(toolgrant.FieldAgentID)
		}
		if _, exists := u.create.mutation.ToolName(); exists {
			s.SetIgnore(toolgrant.FieldToolName)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(toolgrant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolGrant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolGrantUpsertOne) Ignore() *ToolGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolGrantUpsertOne) DoNothing() *ToolGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolGrantCreate.OnConflict
// documentation for more info.
func (u *ToolGrantUpsertOne) Update(set func(*ToolGrantUpsert)) *ToolGrantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolGrantUpsert{UpdateSet: update})
	}))
	return u
}

// SetCredentialID sets the "credential_id" field.
func (u *ToolGrantUpsertOne) SetCredentialID(v string) *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetCredentialID(v)
	})
}

// UpdateCredentialID sets the "credential_id" field to the value that was provided on create.
func (u *ToolGrantUpsertOne) UpdateCredentialID() *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateCredentialID()
	})
}

// SetAllowedHosts sets the "allowed_hosts" field.
func (u *ToolGrantUpsertOne) SetAllowedHosts(v []string) *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetAllowedHosts(v)
	})
}

// UpdateAllowedHosts sets the "allowed_hosts" field to the value that was provided on create.
func (u *ToolGrantUpsertOne) UpdateAllowedHosts() *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateAllowedHosts()
	})
}

// ClearAllowedHosts clears the value of the "allowed_hosts" field.
func (u *ToolGrantUpsertOne) ClearAllowedHosts() *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.ClearAllowedHosts()
	})
}

// SetRateLimit sets the "rate_limit" field.
func (u *ToolGrantUpsertOne) SetRateLimit(v int) *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetRateLimit(v)
	})
}

// AddRateLimit adds v to the "rate_limit" field.
func (u *ToolGrantUpsertOne) AddRateLimit(v int) *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.AddRateLimit(v)
	})
}

// UpdateRateLimit sets the "rate_limit" field to the value that was provided on create.
func (u *ToolGrantUpsertOne) UpdateRateLimit() *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateRateLimit()
	})
}

// SetRateWindowSeconds sets the "rate_window_seconds" field.
func (u *ToolGrantUpsertOne) SetRateWindowSeconds(v int) *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetRateWindowSeconds(v)
	})
}

// AddRateWindowSeconds adds v to the "rate_window_seconds" field.
func (u *ToolGrantUpsertOne) AddRateWindowSeconds(v int) *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.AddRateWindowSeconds(v)
	})
}

// UpdateRateWindowSeconds sets the "rate_window_seconds" field to the value that was provided on create.
func (u *ToolGrantUpsertOne) UpdateRateWindowSeconds() *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateRateWindowSeconds()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ToolGrantUpsertOne) SetExpiresAt(v time.Time) *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ToolGrantUpsertOne) UpdateExpiresAt() *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ToolGrantUpsertOne) ClearExpiresAt() *ToolGrantUpsertOne {
	return u.Update(func(s *ToolGrantUpsert) {
		s.ClearExpiresAt()
	})
}

// Exec executes the query.
func (u *ToolGrantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolGrantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolGrantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolGrantUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ToolGrantUpsertOne.ID is not supported by MySQL driver. Use ToolGrantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolGrantUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolGrantCreateBulk is the builder for creating many ToolGrant entities in bulk.
type ToolGrantCreateBulk struct {
	config
	err      error
	builders []*ToolGrantCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolGrant entities in the database.
func (_c *ToolGrantCreateBulk) Save(ctx context.Context) ([]*ToolGrant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolGrant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolGrantMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ToolGrantCreateBulk) SaveX(ctx context.Context) []*ToolGrant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolGrantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolGrantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolGrant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolGrantUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolGrantCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolGrantUpsertBulk {
	_c.conflict = opts
	return &ToolGrantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolGrant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolGrantCreateBulk) OnConflictColumns(columns ...string) *ToolGrantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolGrantUpsertBulk{
		create: _c,
	}
}

// ToolGrantUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolGrant nodes.
type ToolGrantUpsertBulk struct {
	create *ToolGrantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolGrant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolgrant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolGrantUpsertBulk) UpdateNewValues() *ToolGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(toolgrant.FieldID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(toolgrant.FieldAgentID)
			}
			if _, exists := b.mutation.ToolName(); exists {
				s.SetIgnore(toolgrant.FieldToolName)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(toolgrant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolGrant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolGrantUpsertBulk) Ignore() *ToolGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolGrantUpsertBulk) DoNothing() *ToolGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolGrantCreateBulk.OnConflict
// documentation for more info.
func (u *ToolGrantUpsertBulk) Update(set func(*ToolGrantUpsert)) *ToolGrantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolGrantUpsert{UpdateSet: update})
	}))
	return u
}

// SetCredentialID sets the "credential_id" field.
func (u *ToolGrantUpsertBulk) SetCredentialID(v string) *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetCredentialID(v)
	})
}

// UpdateCredentialID sets the "credential_id" field to the value that was provided on create.
func (u *ToolGrantUpsertBulk) UpdateCredentialID() *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateCredentialID()
	})
}

// SetAllowedHosts sets the "allowed_hosts" field.
func (u *ToolGrantUpsertBulk) SetAllowedHosts(v []string) *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetAllowedHosts(v)
	})
}

// UpdateAllowedHosts sets the "allowed_hosts" field to the value that was provided on create.
func (u *ToolGrantUpsertBulk) UpdateAllowedHosts() *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateAllowedHosts()
	})
}

// ClearAllowedHosts clears the value of the "allowed_hosts" field.
func (u *ToolGrantUpsertBulk) ClearAllowedHosts() *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.ClearAllowedHosts()
	})
}

// SetRateLimit sets the "rate_limit" field.
func (u *ToolGrantUpsertBulk) SetRateLimit(v int) *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetRateLimit(v)
	})
}

// AddRateLimit adds v to the "rate_limit" field.
func (u *ToolGrantUpsertBulk) AddRateLimit(v int) *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.AddRateLimit(v)
	})
}

// UpdateRateLimit sets the "rate_limit" field to the value that was provided on create.
func (u *ToolGrantUpsertBulk) UpdateRateLimit() *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateRateLimit()
	})
}

// SetRateWindowSeconds sets the "rate_window_seconds" field.
func (u *ToolGrantUpsertBulk) SetRateWindowSeconds(v int) *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetRateWindowSeconds(v)
	})
}

// AddRateWindowSeconds adds v to the "rate_window_seconds" field.
func (u *ToolGrantUpsertBulk) AddRateWindowSeconds(v int) *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.AddRateWindowSeconds(v)
	})
}

// UpdateRateWindowSeconds sets the "rate_window_seconds" field to the value that was provided on create.
func (u *ToolGrantUpsertBulk) UpdateRateWindowSeconds() *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateRateWindowSeconds()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ToolGrantUpsertBulk) SetExpiresAt(v time.Time) *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ToolGrantUpsertBulk) UpdateExpiresAt() *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *ToolGrantUpsertBulk) ClearExpiresAt() *ToolGrantUpsertBulk {
	return u.Update(func(s *ToolGrantUpsert) {
		s.ClearExpiresAt()
	})
}

// Exec executes the query.
func (u *ToolGrantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolGrantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolGrantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolGrantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
