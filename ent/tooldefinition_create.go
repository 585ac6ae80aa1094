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
	"github.com/openintent-io/openintent/ent/tooldefinition"
)

// ToolDefinitionCreate is the builder for creating a ToolDefinition entity.
type ToolDefinitionCreate struct {
	config
	mutation *ToolDefinitionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ToolDefinitionCreate) SetName(v string) *ToolDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAdapter sets the "adapter" field.
func (_c *ToolDefinitionCreate) SetAdapter(v tooldefinition.Adapter) *ToolDefinitionCreate {
	_c.mutation.SetAdapter(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ToolDefinitionCreate) SetDescription(v string) *ToolDefinitionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ToolDefinitionCreate) SetNillableDescription(v *string) *ToolDefinitionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *ToolDefinitionCreate) SetConfig(v map[string]interface{}) *ToolDefinitionCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolDefinitionCreate) SetCreatedAt(v time.Time) *ToolDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolDefinitionCreate) SetNillableCreatedAt(v *time.Time) *ToolDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ToolDefinitionCreate) SetUpdatedAt(v time.Time) *ToolDefinitionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ToolDefinitionCreate) SetNillableUpdatedAt(v *time.Time) *ToolDefinitionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ToolDefinitionMutation object of the builder.
func (_c *ToolDefinitionCreate) Mutation() *ToolDefinitionMutation {
	return _c.mutation
}

// Save creates the ToolDefinition in the database.
func (_c *ToolDefinitionCreate) Save(ctx context.Context) (*ToolDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolDefinitionCreate) SaveX(ctx context.Context) *ToolDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolDefinitionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tooldefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tooldefinition.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolDefinitionCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ToolDefinition.name"`)}
	}
	if _, ok := _c.mutation.Adapter(); !ok {
		return &ValidationError{Name: "adapter", err: errors.New(`ent: missing required field "ToolDefinition.adapter"`)}
	}
	if v, ok := _c.mutation.Adapter(); ok {
		if err := tooldefinition.AdapterValidator(v); err != nil {
			return &ValidationError{Name: "adapter", err: fmt.Errorf(`ent: validator failed for field "ToolDefinition.adapter": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "ToolDefinition.config"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ToolDefinition.updated_at"`)}
	}
	return nil
}

func (_c *ToolDefinitionCreate) sqlSave(ctx context.Context) (*ToolDefinition, error) {
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

func (_c *ToolDefinitionCreate) createSpec() (*ToolDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tooldefinition.Table, sqlgraph.NewFieldSpec(tooldefinition.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tooldefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Adapter(); ok {
		_spec.SetField(tooldefinition.FieldAdapter, field.TypeEnum, value)
		_node.Adapter = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(tooldefinition.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(tooldefinition.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tooldefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tooldefinition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolDefinition.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolDefinitionUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolDefinitionCreate) OnConflict(opts ...sql.ConflictOption) *ToolDefinitionUpsertOne {
	_c.conflict = opts
	return &ToolDefinitionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolDefinition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolDefinitionCreate) OnConflictColumns(columns ...string) *ToolDefinitionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolDefinitionUpsertOne{
		create: _c,
	}
}

type (
	// ToolDefinitionUpsertOne is the builder for "upsert"-ing
	//  one ToolDefinition node.
	ToolDefinitionUpsertOne struct {
		create *ToolDefinitionCreate
	}

	// ToolDefinitionUpsert is the "OnConflict" setter.
	ToolDefinitionUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ToolDefinitionUpsert) SetName(v string) *ToolDefinitionUpsert {
	u.Set(tooldefinition.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ToolDefinitionUpsert) UpdateName() *ToolDefinitionUpsert {
	u.SetExcluded(tooldefinition.FieldName)
	return u
}

// SetAdapter sets the "adapter" field.
func (u *ToolDefinitionUpsert) SetAdapter(v tooldefinition.Adapter) *ToolDefinitionUpsert {
	u.Set(tooldefinition.FieldAdapter, v)
	return u
}

// UpdateAdapter sets the "adapter" field to the value that was provided on create.
func (u *ToolDefinitionUpsert) UpdateAdapter() *ToolDefinitionUpsert {
	u.SetExcluded(tooldefinition.FieldAdapter)
	return u
}

// SetDescription sets the "description" field.
func (u *ToolDefinitionUpsert) SetDescription(v string) *ToolDefinitionUpsert {
	u.Set(tooldefinition.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ToolDefinitionUpsert) UpdateDescription() *ToolDefinitionUpsert {
	u.SetExcluded(tooldefinition.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ToolDefinitionUpsert) ClearDescription() *ToolDefinitionUpsert {
	u.SetNull(tooldefinition.FieldDescription)
	return u
}

// SetConfig sets the "config" field.
func (u *ToolDefinitionUpsert) SetConfig(v map[string]interface{}) *ToolDefinitionUpsert {
	u.Set(tooldefinition.FieldConfig, v)
	return u
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ToolDefinitionUpsert) UpdateConfig() *ToolDefinitionUpsert {
	u.SetExcluded(tooldefinition.FieldConfig)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ToolDefinitionUpsert) SetUpdatedAt(v time.Time) *ToolDefinitionUpsert {
	u.Set(tooldefinition.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ToolDefinitionUpsert) UpdateUpdatedAt() *ToolDefinitionUpsert {
	u.SetExcluded(tooldefinition.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ToolDefinition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ToolDefinitionUpsertOne) UpdateNewValues() *ToolDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tooldefinition.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolDefinition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolDefinitionUpsertOne) Ignore() *ToolDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolDefinitionUpsertOne) DoNothing() *ToolDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolDefinitionCreate.OnConflict
// documentation for more info.
func (u *ToolDefinitionUpsertOne) Update(set func(*ToolDefinitionUpsert)) *ToolDefinitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolDefinitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ToolDefinitionUpsertOne) SetName(v string) *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ToolDefinitionUpsertOne) UpdateName() *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateName()
	})
}

// SetAdapter sets the "adapter" field.
func (u *ToolDefinitionUpsertOne) SetAdapter(v tooldefinition.Adapter) *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetAdapter(v)
	})
}

// UpdateAdapter sets the "adapter" field to the value that was provided on create.
func (u *ToolDefinitionUpsertOne) UpdateAdapter() *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateAdapter()
	})
}

// SetDescription sets the "description" field.
func (u *ToolDefinitionUpsertOne) SetDescription(v string) *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ToolDefinitionUpsertOne) UpdateDescription() *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ToolDefinitionUpsertOne) ClearDescription() *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.ClearDescription()
	})
}

// SetConfig sets the "config" field.
func (u *ToolDefinitionUpsertOne) SetConfig(v map[string]interface{}) *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ToolDefinitionUpsertOne) UpdateConfig() *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateConfig()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ToolDefinitionUpsertOne) SetUpdatedAt(v time.Time) *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ToolDefinitionUpsertOne) UpdateUpdatedAt() *ToolDefinitionUpsertOne {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ToolDefinitionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolDefinitionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolDefinitionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolDefinitionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolDefinitionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolDefinitionCreateBulk is the builder for creating many ToolDefinition entities in bulk.
type ToolDefinitionCreateBulk struct {
	config
	err      error
	builders []*ToolDefinitionCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolDefinition entities in the database.
func (_c *ToolDefinitionCreateBulk) Save(ctx context.Context) ([]*ToolDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolDefinitionMutation)
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
func (_c *ToolDefinitionCreateBulk) SaveX(ctx context.Context) []*ToolDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolDefinition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolDefinitionUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolDefinitionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolDefinitionUpsertBulk {
	_c.conflict = opts
	return &ToolDefinitionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolDefinition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolDefinitionCreateBulk) OnConflictColumns(columns ...string) *ToolDefinitionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolDefinitionUpsertBulk{
		create: _c,
	}
}

// ToolDefinitionUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolDefinition nodes.
type ToolDefinitionUpsertBulk struct {
	create *ToolDefinitionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolDefinition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ToolDefinitionUpsertBulk) UpdateNewValues() *ToolDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tooldefinition.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolDefinition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolDefinitionUpsertBulk) Ignore() *ToolDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolDefinitionUpsertBulk) DoNothing() *ToolDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolDefinitionCreateBulk.OnConflict
// documentation for more info.
func (u *ToolDefinitionUpsertBulk) Update(set func(*ToolDefinitionUpsert)) *ToolDefinitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolDefinitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ToolDefinitionUpsertBulk) SetName(v string) *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ToolDefinitionUpsertBulk) UpdateName() *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateName()
	})
}

// SetAdapter sets the "adapter" field.
func (u *ToolDefinitionUpsertBulk) SetAdapter(v tooldefinition.Adapter) *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetAdapter(v)
	})
}

// UpdateAdapter sets the "adapter" field to the value that was provided on create.
func (u *ToolDefinitionUpsertBulk) UpdateAdapter() *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateAdapter()
	})
}

// SetDescription sets the "description" field.
func (u *ToolDefinitionUpsertBulk) SetDescription(v string) *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ToolDefinitionUpsertBulk) UpdateDescription() *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ToolDefinitionUpsertBulk) ClearDescription() *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.ClearDescription()
	})
}

// SetConfig sets the "config" field.
func (u *ToolDefinitionUpsertBulk) SetConfig(v map[string]interface{}) *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetConfig(v)
	})
}

// UpdateConfig sets the "config" field to the value that was provided on create.
func (u *ToolDefinitionUpsertBulk) UpdateConfig() *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateConfig()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ToolDefinitionUpsertBulk) SetUpdatedAt(v time.Time) *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ToolDefinitionUpsertBulk) UpdateUpdatedAt() *ToolDefinitionUpsertBulk {
	return u.Update(func(s *ToolDefinitionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ToolDefinitionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolDefinitionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolDefinitionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolDefinitionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
