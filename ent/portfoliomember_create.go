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
	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/ent/portfoliomember"
)

// PortfolioMemberCreate is the builder for creating a PortfolioMember entity.
type PortfolioMemberCreate struct {
	config
	mutation *PortfolioMemberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPortfolioID sets the "portfolio_id" field.
func (_c *PortfolioMemberCreate) SetPortfolioID(v string) *PortfolioMemberCreate {
	_c.mutation.SetPortfolioID(v)
	return _c
}

// SetIntentID sets the "intent_id" field.
func (_c *PortfolioMemberCreate) SetIntentID(v string) *PortfolioMemberCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *PortfolioMemberCreate) SetRole(v portfoliomember.Role) *PortfolioMemberCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *PortfolioMemberCreate) SetNillableRole(v *portfoliomember.Role) *PortfolioMemberCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *PortfolioMemberCreate) SetPriority(v int) *PortfolioMemberCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *PortfolioMemberCreate) SetNillablePriority(v *int) *PortfolioMemberCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAddedAt sets the "added_at" field.
func (_c *PortfolioMemberCreate) SetAddedAt(v time.Time) *PortfolioMemberCreate {
	_c.mutation.SetAddedAt(v)
	return _c
}

// SetNillableAddedAt sets the "added_at" field if the given value is not nil.
func (_c *PortfolioMemberCreate) SetNillableAddedAt(v *time.Time) *PortfolioMemberCreate {
	if v != nil {
		_c.SetAddedAt(*v)
	}
	return _c
}

// SetPortfolio sets the "portfolio" edge to the Portfolio entity.
func (_c *PortfolioMemberCreate) SetPortfolio(v *Portfolio) *PortfolioMemberCreate {
	return _c.SetPortfolioID(v.ID)
}

// SetIntent sets the "intent" edge to the Intent entity.
func (_c *PortfolioMemberCreate) SetIntent(v *Intent) *PortfolioMemberCreate {
	return _c.SetIntentID(v.ID)
}

// Mutation returns the PortfolioMemberMutation object of the builder.
func (_c *PortfolioMemberCreate) Mutation() *PortfolioMemberMutation {
	return _c.mutation
}

// Save creates the PortfolioMember in the database.
func (_c *PortfolioMemberCreate) Save(ctx context.Context) (*PortfolioMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PortfolioMemberCreate) SaveX(ctx context.Context) *PortfolioMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortfolioMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortfolioMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PortfolioMemberCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := portfoliomember.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := portfoliomember.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		v := portfoliomember.DefaultAddedAt()
		_c.mutation.SetAddedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PortfolioMemberCreate) check() error {
	if _, ok := _c.mutation.PortfolioID(); !ok {
		return &ValidationError{Name: "portfolio_id", err: errors.New(`ent: missing required field "PortfolioMember.portfolio_id"`)}
	}
	if _, ok := _c.mutation.IntentID(); !ok {
		return &ValidationError{Name: "intent_id", err: errors.New(`ent: missing required field "PortfolioMember.intent_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "PortfolioMember.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := portfoliomember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PortfolioMember.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "PortfolioMember.priority"`)}
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		return &ValidationError{Name: "added_at", err: errors.New(`ent: missing required field "PortfolioMember.added_at"`)}
	}
	if len(_c.mutation.PortfolioIDs()) == 0 {
		return &ValidationError{Name: "portfolio", err: errors.New(`ent: missing required edge "PortfolioMember.portfolio"`)}
	}
	if len(_c.mutation.IntentIDs()) == 0 {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required edge "PortfolioMember.intent"`)}
	}
	return nil
}

func (_c *PortfolioMemberCreate) sqlSave(ctx context.Context) (*PortfolioMember, error) {
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

func (_c *PortfolioMemberCreate) createSpec() (*PortfolioMember, *sqlgraph.CreateSpec) {
	var (
		_node = &PortfolioMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(portfoliomember.Table, sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(portfoliomember.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(portfoliomember.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.AddedAt(); ok {
		_spec.SetField(portfoliomember.FieldAddedAt, field.TypeTime, value)
		_node.AddedAt = value
	}
	if nodes := _c.mutation.PortfolioIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   portfoliomember.PortfolioTable,
			Columns: []string{portfoliomember.PortfolioColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfolio.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PortfolioID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IntentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   portfoliomember.IntentTable,
			Columns: []string{portfoliomember.IntentColumn},
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
//	client.PortfolioMember.Create().
//		SetPortfolioID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PortfolioMemberUpsert) {
//			SetPortfolioID(v+v).
//		}).
//		Exec(ctx)
func (_c *PortfolioMemberCreate) OnConflict(opts ...sql.ConflictOption) *PortfolioMemberUpsertOne {
	_c.conflict = opts
	return &PortfolioMemberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PortfolioMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PortfolioMemberCreate) OnConflictColumns(columns ...string) *PortfolioMemberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PortfolioMemberUpsertOne{
		create: _c,
	}
}

type (
	// PortfolioMemberUpsertOne is the builder for "upsert"-ing
	//  one PortfolioMember node.
	PortfolioMemberUpsertOne struct {
		create *PortfolioMemberCreate
	}

	// PortfolioMemberUpsert is the "OnConflict" setter.
	PortfolioMemberUpsert struct {
		*sql.UpdateSet
	}
)

// SetRole sets the "role" field.
func (u *PortfolioMemberUpsert) SetRole(v portfoliomember.Role) *PortfolioMemberUpsert {
	u.Set(portfoliomember.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *PortfolioMemberUpsert) UpdateRole() *PortfolioMemberUpsert {
	u.SetExcluded(portfoliomember.FieldRole)
	return u
}

// SetPriority sets the "priority" field.
func (u *PortfolioMemberUpsert) SetPriority(v int) *PortfolioMemberUpsert {
	u.Set(portfoliomember.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PortfolioMemberUpsert) UpdatePriority() *PortfolioMemberUpsert {
	u.SetExcluded(portfoliomember.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *PortfolioMemberUpsert) AddPriority(v int) *PortfolioMemberUpsert {
	u.Add(portfoliomember.FieldPriority, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PortfolioMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PortfolioMemberUpsertOne) UpdateNewValues() *PortfolioMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.PortfolioID(); exists {
			s.SetIgnore(portfoliomember.FieldPortfolioID)
		}
		if _, exists := u.create.mutation.IntentID(); exists {
			s.SetIgnore(portfoliomember.FieldIntentID)
		}
		if _, exists := u.create.mutation.AddedAt(); exists {
			s.SetIgnore(portfoliomember.FieldAddedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PortfolioMember.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PortfolioMemberUpsertOne) Ignore() *PortfolioMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PortfolioMemberUpsertOne) DoNothing() *PortfolioMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PortfolioMemberCreate.OnConflict
// documentation for more info.
func (u *PortfolioMemberUpsertOne) Update(set func(*PortfolioMemberUpsert)) *PortfolioMemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PortfolioMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *PortfolioMemberUpsertOne) SetRole(v portfoliomember.Role) *PortfolioMemberUpsertOne {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *PortfolioMemberUpsertOne) UpdateRole() *PortfolioMemberUpsertOne {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.UpdateRole()
	})
}

// SetPriority sets the "priority" field.
func (u *PortfolioMemberUpsertOne) SetPriority(v int) *PortfolioMemberUpsertOne {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *PortfolioMemberUpsertOne) AddPriority(v int) *PortfolioMemberUpsertOne {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PortfolioMemberUpsertOne) UpdatePriority() *PortfolioMemberUpsertOne {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.UpdatePriority()
	})
}

// Exec executes the query.
func (u *PortfolioMemberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PortfolioMemberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PortfolioMemberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PortfolioMemberUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PortfolioMemberUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PortfolioMemberCreateBulk is the builder for creating many PortfolioMember entities in bulk.
type PortfolioMemberCreateBulk struct {
	config
	err      error
	builders []*PortfolioMemberCreate
	conflict []sql.ConflictOption
}

// Save creates the PortfolioMember entities in the database.
func (_c *PortfolioMemberCreateBulk) Save(ctx context.Context) ([]*PortfolioMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PortfolioMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PortfolioMemberMutation)
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
func (_c *PortfolioMemberCreateBulk) SaveX(ctx context.Context) []*PortfolioMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortfolioMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortfolioMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PortfolioMember.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PortfolioMemberUpsert) {
//			SetPortfolioID(v+v).
//		}).
//		Exec(ctx)
func (_c *PortfolioMemberCreateBulk) OnConflict(opts ...sql.ConflictOption) *PortfolioMemberUpsertBulk {
	_c.conflict = opts
	return &PortfolioMemberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PortfolioMember.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PortfolioMemberCreateBulk) OnConflictColumns(columns ...string) *PortfolioMemberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PortfolioMemberUpsertBulk{
		create: _c,
	}
}

// PortfolioMemberUpsertBulk is the builder for "upsert"-ing
// a bulk of PortfolioMember nodes.
type PortfolioMemberUpsertBulk struct {
	create *PortfolioMemberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PortfolioMember.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PortfolioMemberUpsertBulk) UpdateNewValues() *PortfolioMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.PortfolioID(); exists {
				s.SetIgnore(portfoliomember.FieldPortfolioID)
			}
			if _, exists := b.mutation.IntentID(); exists {
				s.SetIgnore(portfoliomember.FieldIntentID)
			}
			if _, exists := b.mutation.AddedAt(); exists {
				s.SetIgnore(portfoliomember.FieldAddedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PortfolioMember.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PortfolioMemberUpsertBulk) Ignore() *PortfolioMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PortfolioMemberUpsertBulk) DoNothing() *PortfolioMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PortfolioMemberCreateBulk.OnConflict
// documentation for more info.
func (u *PortfolioMemberUpsertBulk) Update(set func(*PortfolioMemberUpsert)) *PortfolioMemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PortfolioMemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *PortfolioMemberUpsertBulk) SetRole(v portfoliomember.Role) *PortfolioMemberUpsertBulk {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *PortfolioMemberUpsertBulk) UpdateRole() *PortfolioMemberUpsertBulk {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.UpdateRole()
	})
}

// SetPriority sets the "priority" field.
func (u *PortfolioMemberUpsertBulk) SetPriority(v int) *PortfolioMemberUpsertBulk {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *PortfolioMemberUpsertBulk) AddPriority(v int) *PortfolioMemberUpsertBulk {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *PortfolioMemberUpsertBulk) UpdatePriority() *PortfolioMemberUpsertBulk {
	return u.Update(func(s *PortfolioMemberUpsert) {
		s.UpdatePriority()
	})
}

// Exec executes the query.
func (u *PortfolioMemberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PortfolioMemberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PortfolioMemberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PortfolioMemberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
