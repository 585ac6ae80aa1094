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
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/intent"
)

// CostEntryCreate is the builder for creating a CostEntry entity.
type CostEntryCreate struct {
	config
	mutation *CostEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntentID sets the "intent_id" field.
func (_c *CostEntryCreate) SetIntentID(v string) *CostEntryCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *CostEntryCreate) SetAgentID(v string) *CostEntryCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetCostType sets the "cost_type" field.
func (_c *CostEntryCreate) SetCostType(v costentry.CostType) *CostEntryCreate {
	_c.mutation.SetCostType(v)
	return _c
}

// SetNillableCostType sets the "cost_type" field if the given value is not nil.
func (_c *CostEntryCreate) SetNillableCostType(v *costentry.CostType) *CostEntryCreate {
	if v != nil {
		_c.SetCostType(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *CostEntryCreate) SetAmount(v float64) *CostEntryCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *CostEntryCreate) SetCurrency(v string) *CostEntryCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *CostEntryCreate) SetNillableCurrency(v *string) *CostEntryCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CostEntryCreate) SetDescription(v string) *CostEntryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CostEntryCreate) SetNillableDescription(v *string) *CostEntryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CostEntryCreate) SetCreatedAt(v time.Time) *CostEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CostEntryCreate) SetNillableCreatedAt(v *time.Time) *CostEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetIntent sets the "intent" edge to the Intent entity.
func (_c *CostEntryCreate) SetIntent(v *Intent) *CostEntryCreate {
	return _c.SetIntentID(v.ID)
}

// Mutation returns the CostEntryMutation object of the builder.
func (_c *CostEntryCreate) Mutation() *CostEntryMutation {
	return _c.mutation
}

// Save creates the CostEntry in the database.
func (_c *CostEntryCreate) Save(ctx context.Context) (*CostEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CostEntryCreate) SaveX(ctx context.Context) *CostEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CostEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CostEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CostEntryCreate) defaults() {
	if _, ok := _c.mutation.CostType(); !ok {
		v := costentry.DefaultCostType
		_c.mutation.SetCostType(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := costentry.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := costentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CostEntryCreate) check() error {
	if _, ok := _c.mutation.IntentID(); !ok {
		return &ValidationError{Name: "intent_id", err: errors.New(`ent: missing required field "CostEntry.intent_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "CostEntry.agent_id"`)}
	}
	if _, ok := _c.mutation.CostType(); !ok {
		return &ValidationError{Name: "cost_type", err: errors.New(`ent: missing required field "CostEntry.cost_type"`)}
	}
	if v, ok := _c.mutation.CostType(); ok {
		if err := costentry.CostTypeValidator(v); err != nil {
			return &ValidationError{Name: "cost_type", err: fmt.Errorf(`ent: validator failed for field "CostEntry.cost_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "CostEntry.amount"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "CostEntry.currency"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CostEntry.created_at"`)}
	}
	if len(_c.mutation.IntentIDs()) == 0 {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required edge "CostEntry.intent"`)}
	}
	return nil
}

func (_c *CostEntryCreate) sqlSave(ctx context.Context) (*CostEntry, error) {
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

func (_c *CostEntryCreate) createSpec() (*CostEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CostEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(costentry.Table, sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(costentry.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.CostType(); ok {
		_spec.SetField(costentry.FieldCostType, field.TypeEnum, value)
		_node.CostType = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(costentry.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(costentry.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(costentry.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(costentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.IntentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   costentry.IntentTable,
			Columns: []string{costentry.IntentColumn},
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
//	client.CostEntry.Create().
//		SetIntentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CostEntryUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *CostEntryCreate) OnConflict(opts ...sql.ConflictOption) *CostEntryUpsertOne {
	_c.conflict = opts
	return &CostEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CostEntryCreate) OnConflictColumns(columns ...string) *CostEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CostEntryUpsertOne{
		create: _c,
	}
}

type (
	// CostEntryUpsertOne is the builder for "upsert"-ing
	//  one CostEntry node.
	CostEntryUpsertOne struct {
		create *CostEntryCreate
	}

	// CostEntryUpsert is the "OnConflict" setter.
	CostEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetCostType sets the "cost_type" field.
func (u *CostEntryUpsert) SetCostType(v costentry.CostType) *CostEntryUpsert {
	u.Set(costentry.FieldCostType, v)
	return u
}

// UpdateCostType sets the "cost_type" field to the value that was provided on create.
func (u *CostEntryUpsert) UpdateCostType() *CostEntryUpsert {
	u.SetExcluded(costentry.FieldCostType)
	return u
}

// SetAmount sets the "amount" field.
func (u *CostEntryUpsert) SetAmount(v float64) *CostEntryUpsert {
	u.Set(costentry.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CostEntryUpsert) UpdateAmount() *CostEntryUpsert {
	u.SetExcluded(costentry.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *CostEntryUpsert) AddAmount(v float64) *CostEntryUpsert {
	u.Add(costentry.FieldAmount, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *CostEntryUpsert) SetCurrency(v string) *CostEntryUpsert {
	u.Set(costentry.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *CostEntryUpsert) UpdateCurrency() *CostEntryUpsert {
	u.SetExcluded(costentry.FieldCurrency)
	return u
}

// SetDescription sets the "description" field.
func (u *CostEntryUpsert) SetDescription(v string) *CostEntryUpsert {
	u.Set(costentry.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CostEntryUpsert) UpdateDescription() *CostEntryUpsert {
	u.SetExcluded(costentry.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CostEntryUpsert) ClearDescription() *CostEntryUpsert {
	u.SetNull(costentry.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CostEntryUpsertOne) UpdateNewValues() *CostEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.IntentID(); exists {
			s.SetIgnore(costentry.FieldIntentID)
		}
		if _, exists := u.create.mutation.AgentID(); exists {
			s.SetIgnore(costentry.FieldAgentID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(costentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CostEntryUpsertOne) Ignore() *CostEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CostEntryUpsertOne) DoNothing() *CostEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CostEntryCreate.OnConflict
// documentation for more info.
func (u *CostEntryUpsertOne) Update(set func(*CostEntryUpsert)) *CostEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CostEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetCostType sets the "cost_type" field.
func (u *CostEntryUpsertOne) SetCostType(v costentry.CostType) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetCostType(v)
	})
}

// UpdateCostType sets the "cost_type" field to the value that was provided on create.
func (u *CostEntryUpsertOne) UpdateCostType() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateCostType()
	})
}

// SetAmount sets the "amount" field.
func (u *CostEntryUpsertOne) SetAmount(v float64) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *CostEntryUpsertOne) AddAmount(v float64) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CostEntryUpsertOne) UpdateAmount() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *CostEntryUpsertOne) SetCurrency(v string) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *CostEntryUpsertOne) UpdateCurrency() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateCurrency()
	})
}

// SetDescription sets the "description" field.
func (u *CostEntryUpsertOne) SetDescription(v string) *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CostEntryUpsertOne) UpdateDescription() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CostEntryUpsertOne) ClearDescription() *CostEntryUpsertOne {
	return u.Update(func(s *CostEntryUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *CostEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CostEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CostEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CostEntryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CostEntryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CostEntryCreateBulk is the builder for creating many CostEntry entities in bulk.
type CostEntryCreateBulk struct {
	config
	err      error
	builders []*CostEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the CostEntry entities in the database.
func (_c *CostEntryCreateBulk) Save(ctx context.Context) ([]*CostEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CostEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CostEntryMutation)
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
func (_c *CostEntryCreateBulk) SaveX(ctx context.Context) []*CostEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CostEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CostEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CostEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CostEntryUpsert) {
//			SetIntentID(v+v).
//		}).
//		Exec(ctx)
func (_c *CostEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *CostEntryUpsertBulk {
	_c.conflict = opts
	return &CostEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CostEntryCreateBulk) OnConflictColumns(columns ...string) *CostEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CostEntryUpsertBulk{
		create: _c,
	}
}

// CostEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of CostEntry nodes.
type CostEntryUpsertBulk struct {
	create *CostEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CostEntryUpsertBulk) UpdateNewValues() *CostEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.IntentID(); exists {
				s.SetIgnore(costentry.FieldIntentID)
			}
			if _, exists := b.mutation.AgentID(); exists {
				s.SetIgnore(costentry.FieldAgentID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(costentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CostEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CostEntryUpsertBulk) Ignore() *CostEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CostEntryUpsertBulk) DoNothing() *CostEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CostEntryCreateBulk.OnConflict
// documentation for more info.
func (u *CostEntryUpsertBulk) Update(set func(*CostEntryUpsert)) *CostEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CostEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetCostType sets the "cost_type" field.
func (u *CostEntryUpsertBulk) SetCostType(v costentry.CostType) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetCostType(v)
	})
}

// UpdateCostType sets the "cost_type" field to the value that was provided on create.
func (u *CostEntryUpsertBulk) UpdateCostType() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateCostType()
	})
}

// SetAmount sets the "amount" field.
func (u *CostEntryUpsertBulk) SetAmount(v float64) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *CostEntryUpsertBulk) AddAmount(v float64) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *CostEntryUpsertBulk) UpdateAmount() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *CostEntryUpsertBulk) SetCurrency(v string) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *CostEntryUpsertBulk) UpdateCurrency() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateCurrency()
	})
}

// SetDescription sets the "description" field.
func (u *CostEntryUpsertBulk) SetDescription(v string) *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CostEntryUpsertBulk) UpdateDescription() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CostEntryUpsertBulk) ClearDescription() *CostEntryUpsertBulk {
	return u.Update(func(s *CostEntryUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *CostEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CostEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CostEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CostEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
