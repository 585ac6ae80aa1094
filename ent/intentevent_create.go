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
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
)

// IntentEventCreate is the builder for creating a IntentEvent entity.
type IntentEventCreate struct {
	config
	mutation *IntentEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntentID sets the "intent_id" field.
func (_c *IntentEventCreate) SetIntentID(v string) *IntentEventCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *IntentEventCreate) SetEventType(v string) *IntentEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetActorAgentID sets the "actor_agent_id" field.
func (_c *IntentEventCreate) SetActorAgentID(v string) *IntentEventCreate {
	_c.mutation.SetActorAgentID(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *IntentEventCreate) SetSequenceNumber(v int64) *IntentEventCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *IntentEventCreate) SetPayload(v map[string]interface{}) *IntentEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntentEventCreate) SetCreatedAt(v time.Time) *IntentEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntentEventCreate) SetNillableCreatedAt(v *time.Time) *IntentEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetIntent sets the "intent" edge to the Intent entity.
func (_c *IntentEventCreate) SetIntent(v *Intent) *IntentEventCreate {
	return _c.SetIntentID(v.ID)
}

// Mutation returns the IntentEventMutation object of the builder.
func (_c *IntentEventCreate) Mutation() *IntentEventMutation {
	return _c.mutation
}

// Save creates the IntentEvent in the database.
func (_c *IntentEventCreate) Save(ctx context.Context) (*IntentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntentEventCreate) SaveX(ctx context.Context) *IntentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntentEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intentevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntentEventCreate) check() error {
	if _, ok := _c.mutation.IntentID(); !ok {
		return &ValidationError{Name: "intent_id", err: errors.New(`ent: missing required field "IntentEvent.intent_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "IntentEvent.event_type"`)}
	}
	if _, ok := _c.mutation.ActorAgentID(); !ok {
		return &ValidationError{Name: "actor_agent_id", err: errors.New(`ent: missing required field "IntentEvent.actor_agent_id"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "IntentEvent.sequence_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "IntentEvent.created_at"`)}
	}
	if len(_c.mutation.IntentIDs()) == 0 {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required edge "IntentEvent.intent"`)}
	}
	return nil
}

func (_c *IntentEventCreate) sqlSave(ctx context.Context) (*IntentEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntentEventCreate) createSpec() (*IntentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &IntentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intentevent.Table, sqlgraph.NewFieldSpec(intentevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(intentevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ActorAgentID(); ok {
		_spec.SetField(intentevent.FieldActorAgentID, field.TypeString, value)
		_node.ActorAgentID = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(intentevent.FieldSequenceNumber, field.TypeInt64, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(intentevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intentevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.IntentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   intentevent.IntentTable,
			Columns: []string{intentevent.IntentColumn},
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
//	client.IntentEvent.Create().
//		SetIntentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntentEventUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *IntentEventCreate) OnConflict(opts ...sql.ConflictOption) *IntentEventUpsertOne {
	_c.conflict = opts
	return &IntentEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IntentEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntentEventCreate) OnConflictColumns(columns ...string) *IntentEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntentEventUpsertOne{
		create: _c,
	}
}

type (
	// IntentEventUpsertOne is the builder for "upsert"-ing
	//  one IntentEvent node.
	IntentEventUpsertOne struct {
		create *IntentEventCreate
	}

	// IntentEventUpsert is the "OnConflict" setter.
	IntentEventUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.IntentEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *IntentEventUpsertOne) UpdateNewValues() *IntentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.IntentID(); exists {
			s.SetIgnore(intentevent.FieldIntentID)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(intentevent.FieldEventType)
		}
		if _, exists := u.create.mutation.ActorAgentID(); exists {
			s.SetIgnore(intentevent.FieldActorAgentID)
		}
		if _, exists := u.create.mutation.SequenceNumber(); exists {
			s.SetIgnore(intentevent.FieldSequenceNumber)
		}
		if _, exists := u.create.mutation.Payload(); exists {
			s.SetIgnore(intentevent.FieldPayload)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(intentevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IntentEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IntentEventUpsertOne) Ignore() *IntentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntentEventUpsertOne) DoNothing() *IntentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntentEventCreate.OnConflict
// documentation for more info.
func (u *IntentEventUpsertOne) Update(set func(*IntentEventUpsert)) *IntentEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntentEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *IntentEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntentEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntentEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IntentEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IntentEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IntentEventCreateBulk is the builder for creating many IntentEvent entities in bulk.
type IntentEventCreateBulk struct {
	config
	err      error
	builders []*IntentEventCreate
	conflict []sql.ConflictOption
}

// Save creates the IntentEvent entities in the database.
func (_c *IntentEventCreateBulk) Save(ctx context.Context) ([]*IntentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IntentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntentEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *IntentEventCreateBulk) SaveX(ctx context.Context) []*IntentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.IntentEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntentEventUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *IntentEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *IntentEventUpsertBulk {
	_c.conflict = opts
	return &IntentEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.IntentEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntentEventCreateBulk) OnConflictColumns(columns ...string) *IntentEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntentEventUpsertBulk{
		create: _c,
	}
}

// IntentEventUpsertBulk is the builder for "upsert"-ing
// a bulk of IntentEvent nodes.
type IntentEventUpsertBulk struct {
	create *IntentEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.IntentEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *IntentEventUpsertBulk) UpdateNewValues() *IntentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.IntentID(); exists {
				s.SetIgnore(intentevent.FieldIntentID)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(intentevent.FieldEventType)
			}
			if _, exists := b.mutation.ActorAgentID(); exists {
				s.SetIgnore(intentevent.FieldActorAgentID)
			}
			if _, exists := b.mutation.SequenceNumber(); exists {
				s.SetIgnore(intentevent.FieldSequenceNumber)
			}
			if _, exists := b.mutation.Payload(); exists {
				s.SetIgnore(intentevent.FieldPayload)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(intentevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.IntentEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IntentEventUpsertBulk) Ignore() *IntentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntentEventUpsertBulk) DoNothing() *IntentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntentEventCreateBulk.OnConflict
// documentation for more info.
func (u *IntentEventUpsertBulk) Update(set func(*IntentEventUpsert)) *IntentEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntentEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *IntentEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IntentEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntentEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntentEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
