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
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
)

// FailureRecordCreate is the builder for creating a FailureRecord entity.
type FailureRecordCreate struct {
	config
	mutation *FailureRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntentID sets the "intent_id" field.
func (_c *FailureRecordCreate) SetIntentID(v string) *FailureRecordCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *FailureRecordCreate) SetErrorType(v string) *FailureRecordCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FailureRecordCreate) SetErrorMessage(v string) *FailureRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetRecoverable sets the "recoverable" field.
func (_c *FailureRecordCreate) SetRecoverable(v bool) *FailureRecordCreate {
	_c.mutation.SetRecoverable(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *FailureRecordCreate) SetContext(v map[string]interface{}) *FailureRecordCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *FailureRecordCreate) SetAttemptNumber(v int) *FailureRecordCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FailureRecordCreate) SetCreatedAt(v time.Time) *FailureRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FailureRecordCreate) SetNillableCreatedAt(v *time.Time) *FailureRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetIntent sets the "intent" edge to the Intent entity.
func (_c *FailureRecordCreate) SetIntent(v *Intent) *FailureRecordCreate {
	return _c.SetIntentID(v.ID)
}

// Mutation returns the FailureRecordMutation object of the builder.
func (_c *FailureRecordCreate) Mutation() *FailureRecordMutation {
	return _c.mutation
}

// Save creates the FailureRecord in the database.
func (_c *FailureRecordCreate) Save(ctx context.Context) (*FailureRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FailureRecordCreate) SaveX(ctx context.Context) *FailureRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FailureRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FailureRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FailureRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := failurerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FailureRecordCreate) check() error {
	if _, ok := _c.mutation.IntentID(); !ok {
		return &ValidationError{Name: "intent_id", err: errors.New(`ent: missing required field "FailureRecord.intent_id"`)}
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		return &ValidationError{Name: "error_type", err: errors.New(`ent: missing required field "FailureRecord.error_type"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "FailureRecord.error_message"`)}
	}
	if _, ok := _c.mutation.Recoverable(); !ok {
		return &ValidationError{Name: "recoverable", err: errors.New(`ent: missing required field "FailureRecord.recoverable"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "FailureRecord.attempt_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FailureRecord.created_at"`)}
	}
	if len(_c.mutation.IntentIDs()) == 0 {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required edge "FailureRecord.intent"`)}
	}
	return nil
}

func (_c *FailureRecordCreate) sqlSave(ctx context.Context) (*FailureRecord, error) {
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

func (_c *FailureRecordCreate) createSpec() (*FailureRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FailureRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(failurerecord.Table, sqlgraph.NewFieldSpec(failurerecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(failurerecord.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(failurerecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.Recoverable(); ok {
		_spec.SetField(failurerecord.FieldRecoverable, field.TypeBool, value)
		_node.Recoverable = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(failurerecord.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(failurerecord.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(failurerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.IntentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   failurerecord.IntentTable,
			Columns: []string{failurerecord.IntentColumn},
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
//	client.FailureRecord.Create().
//		SetIntentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FailureRecordUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *FailureRecordCreate) OnConflict(opts ...sql.ConflictOption) *FailureRecordUpsertOne {
	_c.conflict = opts
	return &FailureRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FailureRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FailureRecordCreate) OnConflictColumns(columns ...string) *FailureRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FailureRecordUpsertOne{
		create: _c,
	}
}

type (
	// FailureRecordUpsertOne is the builder for "upsert"-ing
	//  one FailureRecord node.
	FailureRecordUpsertOne struct {
		create *FailureRecordCreate
	}

	// FailureRecordUpsert is the "OnConflict" setter.
	FailureRecordUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.FailureRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FailureRecordUpsertOne) UpdateNewValues() *FailureRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.IntentID(); exists {
			s.SetIgnore(failurerecord.FieldIntentID)
		}
		if _, exists := u.create.mutation.ErrorType(); exists {
			s.SetIgnore(failurerecord.FieldErrorType)
		}
		if _, exists := u.create.mutation.ErrorMessage(); exists {
			s.SetIgnore(failurerecord.FieldErrorMessage)
		}
		if _, exists := u.create.mutation.Recoverable(); exists {
			s.SetIgnore(failurerecord.FieldRecoverable)
		}
		if _, exists := u.create.mutation.Context(); exists {
			s.SetIgnore(failurerecord.FieldContext)
		}
		if _, exists := u.create.mutation.AttemptNumber(); exists {
			s.SetIgnore(failurerecord.FieldAttemptNumber)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(failurerecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FailureRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FailureRecordUpsertOne) Ignore() *FailureRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FailureRecordUpsertOne) DoNothing() *FailureRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FailureRecordCreate.OnConflict
// documentation for more info.
func (u *FailureRecordUpsertOne) Update(set func(*FailureRecordUpsert)) *FailureRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FailureRecordUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *FailureRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FailureRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FailureRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FailureRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FailureRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FailureRecordCreateBulk is the builder for creating many FailureRecord entities in bulk.
type FailureRecordCreateBulk struct {
	config
	err      error
	builders []*FailureRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the FailureRecord entities in the database.
func (_c *FailureRecordCreateBulk) Save(ctx context.Context) ([]*FailureRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FailureRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FailureRecordMutation)
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
func (_c *FailureRecordCreateBulk) SaveX(ctx context.Context) []*FailureRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FailureRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FailureRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FailureRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FailureRecordUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *FailureRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *FailureRecordUpsertBulk {
	_c.conflict = opts
	return &FailureRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FailureRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FailureRecordCreateBulk) OnConflictColumns(columns ...string) *FailureRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FailureRecordUpsertBulk{
		create: _c,
	}
}

// FailureRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of FailureRecord nodes.
type FailureRecordUpsertBulk struct {
	create *FailureRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FailureRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *FailureRecordUpsertBulk) UpdateNewValues() *FailureRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.IntentID(); exists {
				s.SetIgnore(failurerecord.FieldIntentID)
			}
			if _, exists := b.mutation.ErrorType(); exists {
				s.SetIgnore(failurerecord.FieldErrorType)
			}
			if _, exists := b.mutation.ErrorMessage(); exists {
				s.SetIgnore(failurerecord.FieldErrorMessage)
			}
			if _, exists := b.mutation.Recoverable(); exists {
				s.SetIgnore(failurerecord.FieldRecoverable)
			}
			if _, exists := b.mutation.Context(); exists {
				s.SetIgnore(failurerecord.FieldContext)
			}
			if _, exists := b.mutation.AttemptNumber(); exists {
				s.SetIgnore(failurerecord.FieldAttemptNumber)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(failurerecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FailureRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FailureRecordUpsertBulk) Ignore() *FailureRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FailureRecordUpsertBulk) DoNothing() *FailureRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FailureRecordCreateBulk.OnConflict
// documentation for more info.
func (u *FailureRecordUpsertBulk) Update(set func(*FailureRecordUpsert)) *FailureRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FailureRecordUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *FailureRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FailureRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FailureRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FailureRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
