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
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/lease"
)

// LeaseCreate is the builder for creating a Lease entity.
type LeaseCreate struct {
	config
	mutation *LeaseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntentID sets the "intent_id" field.
func (_c *LeaseCreate) SetIntentID(v string) *LeaseCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *LeaseCreate) SetScope(v string) *LeaseCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetHolderAgentID sets the "holder_agent_id" field.
func (_c *LeaseCreate) SetHolderAgentID(v string) *LeaseCreate {
	_c.mutation.SetHolderAgentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LeaseCreate) SetStatus(v lease.Status) *LeaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableStatus(v *lease.Status) *LeaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *LeaseCreate) SetAcquiredAt(v time.Time) *LeaseCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *LeaseCreate) SetNillableAcquiredAt(v *time.Time) *LeaseCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *LeaseCreate) SetExpiresAt(v time.Time) *LeaseCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LeaseCreate) SetID(v string) *LeaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetIntent sets the "intent" edge to the Intent entity.
func (_c *LeaseCreate) SetIntent(v *Intent) *LeaseCreate {
	return _c.SetIntentID(v.ID)
}

// Mutation returns the LeaseMutation object of the builder.
func (_c *LeaseCreate) Mutation() *LeaseMutation {
	return _c.mutation
}

// Save creates the Lease in the database.
func (_c *LeaseCreate) Save(ctx context.Context) (*Lease, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeaseCreate) SaveX(ctx context.Context) *Lease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := lease.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		v := lease.DefaultAcquiredAt()
		_c.mutation.SetAcquiredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeaseCreate) check() error {
	if _, ok := _c.mutation.IntentID(); !ok {
		return &ValidationError{Name: "intent_id", err: errors.New(`ent: missing required field "Lease.intent_id"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "Lease.scope"`)}
	}
	if _, ok := _c.mutation.HolderAgentID(); !ok {
		return &ValidationError{Name: "holder_agent_id", err: errors.New(`ent: missing required field "Lease.holder_agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lease.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := lease.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lease.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "Lease.acquired_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Lease.expires_at"`)}
	}
	if len(_c.mutation.IntentIDs()) == 0 {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required edge "Lease.intent"`)}
	}
	return nil
}

func (_c *LeaseCreate) sqlSave(ctx context.Context) (*Lease, error) {
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
			return nil, fmt.Errorf("unexpected Lease.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeaseCreate) createSpec() (*Lease, *sqlgraph.CreateSpec) {
	var (
		_node = &Lease{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lease.Table, sqlgraph.NewFieldSpec(lease.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(lease.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.HolderAgentID(); ok {
		_spec.SetField(lease.FieldHolderAgentID, field.TypeString, value)
		_node.HolderAgentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lease.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(lease.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(lease.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if nodes := _c.mutation.IntentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lease.IntentTable,
			Columns: []string{lease.IntentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IntentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lease.Create().
//		SetIntentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeaseUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeaseCreate) OnConflict(opts ...sql.ConflictOption) *LeaseUpsertOne {
	_c.conflict = opts
	return &LeaseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeaseCreate) OnConflictColumns(columns ...string) *LeaseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeaseUpsertOne{
		create: _c,
	}
}

type (
	// LeaseUpsertOne is the builder for "upsert"-ing
	//  one Lease node.
	LeaseUpsertOne struct {
		create *LeaseCreate
	}

	// LeaseUpsert is the "OnConflict" setter.
	LeaseUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *LeaseUpsert) SetStatus(v lease.Status) *LeaseUpsert {
	u.Set(lease.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeaseUpsert) UpdateStatus() *LeaseUpsert {
	u.SetExcluded(lease.FieldStatus)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *LeaseUpsert) SetExpiresAt(v time.Time) *LeaseUpsert {
	u.Set(lease.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *LeaseUpsert) UpdateExpiresAt() *LeaseUpsert {
	u.SetExcluded(lease.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lease.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeaseUpsertOne) UpdateNewValues() *LeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lease.FieldID)
		}
		if _, exists := u.create.mutation.IntentID(); exists {
			s.SetIgnore(lease.FieldIntentID)
		}
		if _, exists := u.create.mutation.Scope(); exists {
			s.SetIgnore(lease.FieldScope)
		}
		if _, exists := u.create.mutation.HolderAgentID(); exists {
			s.SetIgnore(lease.FieldHolderAgentID)
		}
		if _, exists := u.create.mutation.AcquiredAt(); exists {
			s.SetIgnore(lease.FieldAcquiredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lease.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LeaseUpsertOne) Ignore() *LeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeaseUpsertOne) DoNothing() *LeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeaseCreate.OnConflict
// documentation for more info.
func (u *LeaseUpsertOne) Update(set func(*LeaseUpsert)) *LeaseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *LeaseUpsertOne) SetStatus(v lease.Status) *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeaseUpsertOne) UpdateStatus() *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateStatus()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *LeaseUpsertOne) SetExpiresAt(v time.Time) *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *LeaseUpsertOne) UpdateExpiresAt() *LeaseUpsertOne {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *LeaseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeaseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeaseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LeaseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LeaseUpsertOne.ID is not supported by MySQL driver. Use LeaseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LeaseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LeaseCreateBulk is the builder for creating many Lease entities in bulk.
type LeaseCreateBulk struct {
	config
	err      error
	builders []*LeaseCreate
	conflict []sql.ConflictOption
}

// Save creates the Lease entities in the database.
func (_c *LeaseCreateBulk) Save(ctx context.Context) ([]*Lease, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lease, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeaseMutation)
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
func (_c *LeaseCreateBulk) SaveX(ctx context.Context) []*Lease {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Lease.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LeaseUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *LeaseCreateBulk) OnConflict(opts ...sql.ConflictOption) *LeaseUpsertBulk {
	_c.conflict = opts
	return &LeaseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LeaseCreateBulk) OnConflictColumns(columns ...string) *LeaseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LeaseUpsertBulk{
		create: _c,
	}
}

// LeaseUpsertBulk is the builder for "upsert"-ing
// a bulk of Lease nodes.
type LeaseUpsertBulk struct {
	create *LeaseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lease.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LeaseUpsertBulk) UpdateNewValues() *LeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lease.FieldID)
			}
			if _, exists := b.mutation.IntentID(); exists {
				s.SetIgnore(lease.FieldIntentID)
			}
			if _, exists := b.mutation.Scope(); exists {
				s.SetIgnore(lease.FieldScope)
			}
			if _, exists := b.mutation.HolderAgentID(); exists {
				s.SetIgnore(lease.FieldHolderAgentID)
			}
			if _, exists := b.mutation.AcquiredAt(); exists {
				s.SetIgnore(lease.FieldAcquiredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Lease.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LeaseUpsertBulk) Ignore() *LeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LeaseUpsertBulk) DoNothing() *LeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LeaseCreateBulk.OnConflict
// documentation for more info.
func (u *LeaseUpsertBulk) Update(set func(*LeaseUpsert)) *LeaseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LeaseUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *LeaseUpsertBulk) SetStatus(v lease.Status) *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LeaseUpsertBulk) UpdateStatus() *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateStatus()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *LeaseUpsertBulk) SetExpiresAt(v time.Time) *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *LeaseUpsertBulk) UpdateExpiresAt() *LeaseUpsertBulk {
	return u.Update(func(s *LeaseUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *LeaseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LeaseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LeaseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LeaseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
