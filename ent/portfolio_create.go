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
	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/ent/portfoliomember"
)

// PortfolioCreate is the builder for creating a Portfolio entity.
type PortfolioCreate struct {
	config
	mutation *PortfolioMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *PortfolioCreate) SetName(v string) *PortfolioCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCreatorAgentID sets the "creator_agent_id" field.
func (_c *PortfolioCreate) SetCreatorAgentID(v string) *PortfolioCreate {
	_c.mutation.SetCreatorAgentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PortfolioCreate) SetStatus(v portfolio.Status) *PortfolioCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PortfolioCreate) SetNillableStatus(v *portfolio.Status) *PortfolioCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGovernancePolicy sets the "governance_policy" field.
func (_c *PortfolioCreate) SetGovernancePolicy(v map[string]interface{}) *PortfolioCreate {
	_c.mutation.SetGovernancePolicy(v)
	return _c
}

// SetAggregate sets the "aggregate" field.
func (_c *PortfolioCreate) SetAggregate(v map[string]interface{}) *PortfolioCreate {
	_c.mutation.SetAggregate(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PortfolioCreate) SetCreatedAt(v time.Time) *PortfolioCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PortfolioCreate) SetNillableCreatedAt(v *time.Time) *PortfolioCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PortfolioCreate) SetUpdatedAt(v time.Time) *PortfolioCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PortfolioCreate) SetNillableUpdatedAt(v *time.Time) *PortfolioCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PortfolioCreate) SetID(v string) *PortfolioCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMemberIDs adds the "members" edge to the PortfolioMember entity by IDs.
func (_c *PortfolioCreate) AddMemberIDs(ids ...int) *PortfolioCreate {
	_c.mutation.AddMemberIDs(ids...)
	return _c
}

// AddMembers adds the "members" edges to the PortfolioMember entity.
func (_c *PortfolioCreate) AddMembers(v ...*PortfolioMember) *PortfolioCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemberIDs(ids...)
}

// Mutation returns the PortfolioMutation object of the builder.
func (_c *PortfolioCreate) Mutation() *PortfolioMutation {
	return _c.mutation
}

// Save creates the Portfolio in the database.
func (_c *PortfolioCreate) Save(ctx context.Context) (*Portfolio, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PortfolioCreate) SaveX(ctx context.Context) *Portfolio {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortfolioCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortfolioCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PortfolioCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := portfolio.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := portfolio.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := portfolio.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PortfolioCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Portfolio.name"`)}
	}
	if _, ok := _c.mutation.CreatorAgentID(); !ok {
		return &ValidationError{Name: "creator_agent_id", err: errors.New(`ent: missing required field "Portfolio.creator_agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Portfolio.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := portfolio.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Portfolio.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Portfolio.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Portfolio.updated_at"`)}
	}
	return nil
}

func (_c *PortfolioCreate) sqlSave(ctx context.Context) (*Portfolio, error) {
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
			return nil, fmt.Errorf("unexpected Portfolio.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PortfolioCreate) createSpec() (*Portfolio, *sqlgraph.CreateSpec) {
	var (
		_node = &Portfolio{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(portfolio.Table, sqlgraph.NewFieldSpec(portfolio.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(portfolio.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CreatorAgentID(); ok {
		_spec.SetField(portfolio.FieldCreatorAgentID, field.TypeString, value)
		_node.CreatorAgentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(portfolio.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GovernancePolicy(); ok {
		_spec.SetField(portfolio.FieldGovernancePolicy, field.TypeJSON, value)
		_node.GovernancePolicy = value
	}
	if value, ok := _c.mutation.Aggregate(); ok {
		_spec.SetField(portfolio.FieldAggregate, field.TypeJSON, value)
		_node.Aggregate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(portfolio.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(portfolio.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portfolio.MembersTable,
			Columns: []string{portfolio.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portfoliomember.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Portfolio.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PortfolioUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PortfolioCreate) OnConflict(opts ...sql.ConflictOption) *PortfolioUpsertOne {
	_c.conflict = opts
	return &PortfolioUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Portfolio.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PortfolioCreate) OnConflictColumns(columns ...string) *PortfolioUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PortfolioUpsertOne{
		create: _c,
	}
}

type (
	// PortfolioUpsertOne is the builder for "upsert"-ing
	//  one Portfolio node.
	PortfolioUpsertOne struct {
		create *PortfolioCreate
	}

	// PortfolioUpsert is the "OnConflict" setter.
	PortfolioUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PortfolioUpsert) SetName(v string) *PortfolioUpsert {
	u.Set(portfolio.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PortfolioUpsert) UpdateName() *PortfolioUpsert {
	u.SetExcluded(portfolio.FieldName)
	return u
}

// SetStatus sets the "status" field.
func (u *PortfolioUpsert) SetStatus(v portfolio.Status) *PortfolioUpsert {
	u.Set(portfolio.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PortfolioUpsert) UpdateStatus() *PortfolioUpsert {
	u.SetExcluded(portfolio.FieldStatus)
	return u
}

// SetGovernancePolicy sets the "governance_policy" field.
func (u *PortfolioUpsert) SetGovernancePolicy(v map[string]interface{}) *PortfolioUpsert {
	u.Set(portfolio.FieldGovernancePolicy, v)
	return u
}

// UpdateGovernancePolicy sets the "governance_policy" field to the value that was provided on create.
func (u *PortfolioUpsert) UpdateGovernancePolicy() *PortfolioUpsert {
	u.SetExcluded(portfolio.FieldGovernancePolicy)
	return u
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (u *PortfolioUpsert) ClearGovernancePolicy() *PortfolioUpsert {
	u.SetNull(portfolio.FieldGovernancePolicy)
	return u
}

// SetAggregate sets the "aggregate" field.
func (u *PortfolioUpsert) SetAggregate(v map[string]interface{}) *PortfolioUpsert {
	u.Set(portfolio.FieldAggregate, v)
	return u
}

// UpdateAggregate sets the "aggregate" field to the value that was provided on create.
func (u *PortfolioUpsert) UpdateAggregate() *PortfolioUpsert {
	u.SetExcluded(portfolio.FieldAggregate)
	return u
}

// ClearAggregate clears the value of the "aggregate" field.
func (u *PortfolioUpsert) ClearAggregate() *PortfolioUpsert {
	u.SetNull(portfolio.FieldAggregate)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PortfolioUpsert) SetUpdatedAt(v time.Time) *PortfolioUpsert {
	u.Set(portfolio.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PortfolioUpsert) UpdateUpdatedAt() *PortfolioUpsert {
	u.SetExcluded(portfolio.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Portfolio.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(portfolio.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PortfolioUpsertOne) UpdateNewValues() *PortfolioUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(portfolio.FieldID)
		}
		if _, exists := u.create.mutation.CreatorAgentID(); exists {
			s.SetIgnore(portfolio.FieldCreatorAgentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(portfolio.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Portfolio.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PortfolioUpsertOne) Ignore() *PortfolioUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PortfolioUpsertOne) DoNothing() *PortfolioUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PortfolioCreate.OnConflict
// documentation for more info.
func (u *PortfolioUpsertOne) Update(set func(*PortfolioUpsert)) *PortfolioUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PortfolioUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PortfolioUpsertOne) SetName(v string) *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PortfolioUpsertOne) UpdateName() *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateName()
	})
}

// SetStatus sets the "status" field.
func (u *PortfolioUpsertOne) SetStatus(v portfolio.Status) *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PortfolioUpsertOne) UpdateStatus() *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateStatus()
	})
}

// SetGovernancePolicy sets the "governance_policy" field.
func (u *PortfolioUpsertOne) SetGovernancePolicy(v map[string]interface{}) *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetGovernancePolicy(v)
	})
}

// UpdateGovernancePolicy sets the "governance_policy" field to the value that was provided on create.
func (u *PortfolioUpsertOne) UpdateGovernancePolicy() *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateGovernancePolicy()
	})
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (u *PortfolioUpsertOne) ClearGovernancePolicy() *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.ClearGovernancePolicy()
	})
}

// SetAggregate sets the "aggregate" field.
func (u *PortfolioUpsertOne) SetAggregate(v map[string]interface{}) *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetAggregate(v)
	})
}

// UpdateAggregate sets the "aggregate" field to the value that was provided on create.
func (u *PortfolioUpsertOne) UpdateAggregate() *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateAggregate()
	})
}

// ClearAggregate clears the value of the "aggregate" field.
func (u *PortfolioUpsertOne) ClearAggregate() *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.ClearAggregate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PortfolioUpsertOne) SetUpdatedAt(v time.Time) *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PortfolioUpsertOne) UpdateUpdatedAt() *PortfolioUpsertOne {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PortfolioUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PortfolioCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PortfolioUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PortfolioUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PortfolioUpsertOne.ID is not supported by MySQL driver. Use PortfolioUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PortfolioUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PortfolioCreateBulk is the builder for creating many Portfolio entities in bulk.
type PortfolioCreateBulk struct {
	config
	err      error
	builders []*PortfolioCreate
	conflict []sql.ConflictOption
}

// Save creates the Portfolio entities in the database.
func (_c *PortfolioCreateBulk) Save(ctx context.Context) ([]*Portfolio, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Portfolio, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PortfolioMutation)
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
func (_c *PortfolioCreateBulk) SaveX(ctx context.Context) []*Portfolio {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortfolioCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortfolioCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Portfolio.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PortfolioUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *PortfolioCreateBulk) OnConflict(opts ...sql.ConflictOption) *PortfolioUpsertBulk {
	_c.conflict = opts
	return &PortfolioUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Portfolio.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PortfolioCreateBulk) OnConflictColumns(columns ...string) *PortfolioUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PortfolioUpsertBulk{
		create: _c,
	}
}

// PortfolioUpsertBulk is the builder for "upsert"-ing
// a bulk of Portfolio nodes.
type PortfolioUpsertBulk struct {
	create *PortfolioCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Portfolio.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(portfolio.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PortfolioUpsertBulk) UpdateNewValues() *PortfolioUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(portfolio.FieldID)
			}
			if _, exists := b.mutation.CreatorAgentID(); exists {
				s.SetIgnore(portfolio.FieldCreatorAgentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(portfolio.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Portfolio.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PortfolioUpsertBulk) Ignore() *PortfolioUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PortfolioUpsertBulk) DoNothing() *PortfolioUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PortfolioCreateBulk.OnConflict
// documentation for more info.
func (u *PortfolioUpsertBulk) Update(set func(*PortfolioUpsert)) *PortfolioUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PortfolioUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PortfolioUpsertBulk) SetName(v string) *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PortfolioUpsertBulk) UpdateName() *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateName()
	})
}

// SetStatus sets the "status" field.
func (u *PortfolioUpsertBulk) SetStatus(v portfolio.Status) *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PortfolioUpsertBulk) UpdateStatus() *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateStatus()
	})
}

// SetGovernancePolicy sets the "governance_policy" field.
func (u *PortfolioUpsertBulk) SetGovernancePolicy(v map[string]interface{}) *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetGovernancePolicy(v)
	})
}

// UpdateGovernancePolicy sets the "governance_policy" field to the value that was provided on create.
func (u *PortfolioUpsertBulk) UpdateGovernancePolicy() *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateGovernancePolicy()
	})
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (u *PortfolioUpsertBulk) ClearGovernancePolicy() *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.ClearGovernancePolicy()
	})
}

// SetAggregate sets the "aggregate" field.
func (u *PortfolioUpsertBulk) SetAggregate(v map[string]interface{}) *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetAggregate(v)
	})
}

// UpdateAggregate sets the "aggregate" field to the value that was provided on create.
func (u *PortfolioUpsertBulk) UpdateAggregate() *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateAggregate()
	})
}

// ClearAggregate clears the value of the "aggregate" field.
func (u *PortfolioUpsertBulk) ClearAggregate() *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.ClearAggregate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PortfolioUpsertBulk) SetUpdatedAt(v time.Time) *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PortfolioUpsertBulk) UpdateUpdatedAt() *PortfolioUpsertBulk {
	return u.Update(func(s *PortfolioUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PortfolioUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PortfolioCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PortfolioCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PortfolioUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
