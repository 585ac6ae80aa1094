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
	"github.com/openintent-io/openintent/ent/attachment"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
	"github.com/openintent-io/openintent/ent/lease"
	"github.com/openintent-io/openintent/ent/portfoliomember"
)

// IntentCreate is the builder for creating a Intent entity.
type IntentCreate struct {
	config
	mutation *IntentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *IntentCreate) SetTitle(v string) *IntentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *IntentCreate) SetDescription(v string) *IntentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *IntentCreate) SetNillableDescription(v *string) *IntentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatorAgentID sets the "creator_agent_id" field.
func (_c *IntentCreate) SetCreatorAgentID(v string) *IntentCreate {
	_c.mutation.SetCreatorAgentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IntentCreate) SetStatus(v intent.Status) *IntentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IntentCreate) SetNillableStatus(v *intent.Status) *IntentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *IntentCreate) SetState(v map[string]interface{}) *IntentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *IntentCreate) SetVersion(v int64) *IntentCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *IntentCreate) SetNillableVersion(v *int64) *IntentCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetConstraints sets the "constraints" field.
func (_c *IntentCreate) SetConstraints(v []string) *IntentCreate {
	_c.mutation.SetConstraints(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *IntentCreate) SetParentID(v string) *IntentCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *IntentCreate) SetNillableParentID(v *string) *IntentCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *IntentCreate) SetDependsOn(v []string) *IntentCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetRetryPolicy sets the "retry_policy" field.
func (_c *IntentCreate) SetRetryPolicy(v map[string]interface{}) *IntentCreate {
	_c.mutation.SetRetryPolicy(v)
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *IntentCreate) SetAttemptCount(v int) *IntentCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *IntentCreate) SetNillableAttemptCount(v *int) *IntentCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetAggregate sets the "aggregate" field.
func (_c *IntentCreate) SetAggregate(v map[string]interface{}) *IntentCreate {
	_c.mutation.SetAggregate(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *IntentCreate) SetIdempotencyKey(v string) *IntentCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *IntentCreate) SetNillableIdempotencyKey(v *string) *IntentCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntentCreate) SetCreatedAt(v time.Time) *IntentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntentCreate) SetNillableCreatedAt(v *time.Time) *IntentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntentCreate) SetUpdatedAt(v time.Time) *IntentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntentCreate) SetNillableUpdatedAt(v *time.Time) *IntentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntentCreate) SetID(v string) *IntentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEventIDs adds the "events" edge to the IntentEvent entity by IDs.
func (_c *IntentCreate) AddEventIDs(ids ...int) *IntentCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the IntentEvent entity.
func (_c *IntentCreate) AddEvents(v ...*IntentEvent) *IntentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddLeaseIDs adds the "leases" edge to the Lease entity by IDs.
func (_c *IntentCreate) AddLeaseIDs(ids ...string) *IntentCreate {
	_c.mutation.AddLeaseIDs(ids...)
	return _c
}

// AddLeases adds the "leases" edges to the Lease entity.
func (_c *IntentCreate) AddLeases(v ...*Lease) *IntentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLeaseIDs(ids...)
}

// AddCostIDs adds the "costs" edge to the CostEntry entity by IDs.
func (_c *IntentCreate) AddCostIDs(ids ...int) *IntentCreate {
	_c.mutation.AddCostIDs(ids...)
	return _c
}

// AddCosts adds the "costs" edges to the CostEntry entity.
func (_c *IntentCreate) AddCosts(v ...*CostEntry) *IntentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCostIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_c *IntentCreate) AddAttachmentIDs(ids ...string) *IntentCreate {
	_c.mutation.AddAttachmentIDs(ids...)
	return _c
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_c *IntentCreate) AddAttachments(v ...*Attachment) *IntentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttachmentIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the FailureRecord entity by IDs.
func (_c *IntentCreate) AddFailureIDs(ids ...int) *IntentCreate {
	_c.mutation.AddFailureIDs(ids...)
	return _c
}

// AddFailures adds the "failures" edges to the FailureRecord entity.
func (_c *IntentCreate) AddFailures(v ...*FailureRecord) *IntentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFailureIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the PortfolioMember entity by IDs.
func (_c *IntentCreate) AddMembershipIDs(ids ...int) *IntentCreate {
	_c.mutation.AddMembershipIDs(ids...)
	return _c
}

// AddMemberships adds the "memberships" edges to the PortfolioMember entity.
func (_c *IntentCreate) AddMemberships(v ...*PortfolioMember) *IntentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMembershipIDs(ids...)
}

// Mutation returns the IntentMutation object of the builder.
func (_c *IntentCreate) Mutation() *IntentMutation {
	return _c.mutation
}

// Save creates the Intent in the database.
func (_c *IntentCreate) Save(ctx context.Context) (*Intent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntentCreate) SaveX(ctx context.Context) *Intent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := intent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := intent.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := intent.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := intent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntentCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Intent.title"`)}
	}
	if _, ok := _c.mutation.CreatorAgentID(); !ok {
		return &ValidationError{Name: "creator_agent_id", err: errors.New(`ent: missing required field "Intent.creator_agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Intent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := intent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Intent.version"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "Intent.attempt_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Intent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Intent.updated_at"`)}
	}
	return nil
}

func (_c *IntentCreate) sqlSave(ctx context.Context) (*Intent, error) {
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
			return nil, fmt.Errorf("unexpected Intent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntentCreate) createSpec() (*Intent, *sqlgraph.CreateSpec) {
	var (
		_node = &Intent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intent.Table, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(intent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(intent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatorAgentID(); ok {
		_spec.SetField(intent.FieldCreatorAgentID, field.TypeString, value)
		_node.CreatorAgentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(intent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(intent.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(intent.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Constraints(); ok {
		_spec.SetField(intent.FieldConstraints, field.TypeJSON, value)
		_node.Constraints = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(intent.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(intent.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.RetryPolicy(); ok {
		_spec.SetField(intent.FieldRetryPolicy, field.TypeJSON, value)
		_node.RetryPolicy = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(intent.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.Aggregate(); ok {
		_spec.SetField(intent.FieldAggregate, field.TypeJSON, value)
		_node.Aggregate = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(intent.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(intent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.EventsTable,
			Columns: []string{intent.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(intentevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LeasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.LeasesTable,
			Columns: []string{intent.LeasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lease.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CostsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.CostsTable,
			Columns: []string{intent.CostsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(costentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.AttachmentsTable,
			Columns: []string{intent.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FailuresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.FailuresTable,
			Columns: []string{intent.FailuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(failurerecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MembershipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   intent.MembershipsTable,
			Columns: []string{intent.MembershipsColumn},
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
//	client.Intent.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntentUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *IntentCreate) OnConflict(opts ...sql.ConflictOption) *IntentUpsertOne {
	_c.conflict = opts
	return &IntentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntentCreate) OnConflictColumns(columns ...string) *IntentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntentUpsertOne{
		create: _c,
	}
}

type (
	// IntentUpsertOne is the builder for "upsert"-ing
	//  one Intent node.
	IntentUpsertOne struct {
		create *IntentCreate
	}

	// IntentUpsert is the "OnConflict" setter.
	IntentUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *IntentUpsert) SetTitle(v string) *IntentUpsert {
	u.Set(intent.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IntentUpsert) UpdateTitle() *IntentUpsert {
	u.SetExcluded(intent.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *IntentUpsert) SetDescription(v string) *IntentUpsert {
	u.Set(intent.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IntentUpsert) UpdateDescription() *IntentUpsert {
	u.SetExcluded(intent.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *IntentUpsert) ClearDescription() *IntentUpsert {
	u.SetNull(intent.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *IntentUpsert) SetStatus(v intent.Status) *IntentUpsert {
	u.Set(intent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IntentUpsert) UpdateStatus() *IntentUpsert {
	u.SetExcluded(intent.FieldStatus)
	return u
}

// SetState sets the "state" field.
func (u *IntentUpsert) SetState(v map[string]interface{}) *IntentUpsert {
	u.Set(intent.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *IntentUpsert) UpdateState() *IntentUpsert {
	u.SetExcluded(intent.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *IntentUpsert) ClearState() *IntentUpsert {
	u.SetNull(intent.FieldState)
	return u
}

// SetVersion sets the "version" field.
func (u *IntentUpsert) SetVersion(v int64) *IntentUpsert {
	u.Set(intent.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *IntentUpsert) UpdateVersion() *IntentUpsert {
	u.SetExcluded(intent.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *IntentUpsert) AddVersion(v int64) *IntentUpsert {
	u.Add(intent.FieldVersion, v)
	return u
}

// SetConstraints sets the "constraints" field.
func (u *IntentUpsert) SetConstraints(v []string) *IntentUpsert {
	u.Set(intent.FieldConstraints, v)
	return u
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *IntentUpsert) UpdateConstraints() *IntentUpsert {
	u.SetExcluded(intent.FieldConstraints)
	return u
}

// ClearConstraints clears the value of the "constraints" field.
func (u *IntentUpsert) ClearConstraints() *IntentUpsert {
	u.SetNull(intent.FieldConstraints)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *IntentUpsert) SetParentID(v string) *IntentUpsert {
	u.Set(intent.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *IntentUpsert) UpdateParentID() *IntentUpsert {
	u.SetExcluded(intent.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *IntentUpsert) ClearParentID() *IntentUpsert {
	u.SetNull(intent.FieldParentID)
	return u
}

// SetDependsOn sets the "depends_on" field.
func (u *IntentUpsert) SetDependsOn(v []string) *IntentUpsert {
	u.Set(intent.FieldDependsOn, v)
	return u
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *IntentUpsert) UpdateDependsOn() *IntentUpsert {
	u.SetExcluded(intent.FieldDependsOn)
	return u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *IntentUpsert) ClearDependsOn() *IntentUpsert {
	u.SetNull(intent.FieldDependsOn)
	return u
}

// SetRetryPolicy sets the "retry_policy" field.
func (u *IntentUpsert) SetRetryPolicy(v map[string]interface{}) *IntentUpsert {
	u.Set(intent.FieldRetryPolicy, v)
	return u
}

// UpdateRetryPolicy sets the "retry_policy" field to the value that was provided on create.
func (u *IntentUpsert) UpdateRetryPolicy() *IntentUpsert {
	u.SetExcluded(intent.FieldRetryPolicy)
	return u
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (u *IntentUpsert) ClearRetryPolicy() *IntentUpsert {
	u.SetNull(intent.FieldRetryPolicy)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *IntentUpsert) SetAttemptCount(v int) *IntentUpsert {
	u.Set(intent.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *IntentUpsert) UpdateAttemptCount() *IntentUpsert {
	u.SetExcluded(intent.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *IntentUpsert) AddAttemptCount(v int) *IntentUpsert {
	u.Add(intent.FieldAttemptCount, v)
	return u
}

// SetAggregate sets the "aggregate" field.
func (u *IntentUpsert) SetAggregate(v map[string]interface{}) *IntentUpsert {
	u.Set(intent.FieldAggregate, v)
	return u
}

// UpdateAggregate sets the "aggregate" field to the value that was provided on create.
func (u *IntentUpsert) UpdateAggregate() *IntentUpsert {
	u.SetExcluded(intent.FieldAggregate)
	return u
}

// ClearAggregate clears the value of the "aggregate" field.
func (u *IntentUpsert) ClearAggregate() *IntentUpsert {
	u.SetNull(intent.FieldAggregate)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntentUpsert) SetUpdatedAt(v time.Time) *IntentUpsert {
	u.Set(intent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntentUpsert) UpdateUpdatedAt() *IntentUpsert {
	u.SetExcluded(intent.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(intent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IntentUpsertOne) UpdateNewValues() *IntentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(intent.FieldID)
		}
		if _, exists := u.create.mutation.CreatorAgentID(); exists {
			s.SetIgnore(intent.FieldCreatorAgentID)
		}
		if _, exists := u.create.mutation.IdempotencyKey(); exists {
			s.SetIgnore(intent.FieldIdempotencyKey)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(intent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Intent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IntentUpsertOne) Ignore() *IntentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntentUpsertOne) DoNothing() *IntentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntentCreate.OnConflict
// documentation for more info.
func (u *IntentUpsertOne) Update(set func(*IntentUpsert)) *IntentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntentUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *IntentUpsertOne) SetTitle(v string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateTitle() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *IntentUpsertOne) SetDescription(v string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateDescription() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *IntentUpsertOne) ClearDescription() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *IntentUpsertOne) SetStatus(v intent.Status) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateStatus() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateStatus()
	})
}

// SetState sets the "state" field.
func (u *IntentUpsertOne) SetState(v map[string]interface{}) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateState() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *IntentUpsertOne) ClearState() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.ClearState()
	})
}

// SetVersion sets the "version" field.
func (u *IntentUpsertOne) SetVersion(v int64) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *IntentUpsertOne) AddVersion(v int64) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateVersion() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateVersion()
	})
}

// SetConstraints sets the "constraints" field.
func (u *IntentUpsertOne) SetConstraints(v []string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetConstraints(v)
	})
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateConstraints() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateConstraints()
	})
}

// ClearConstraints clears the value of the "constraints" field.
func (u *IntentUpsertOne) ClearConstraints() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.ClearConstraints()
	})
}

// SetParentID sets the "parent_id" field.
func (u *IntentUpsertOne) SetParentID(v string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateParentID() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *IntentUpsertOne) ClearParentID() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.ClearParentID()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *IntentUpsertOne) SetDependsOn(v []string) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateDependsOn() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateDependsOn()
	})
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *IntentUpsertOne) ClearDependsOn() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.ClearDependsOn()
	})
}

// SetRetryPolicy sets the "retry_policy" field.
func (u *IntentUpsertOne) SetRetryPolicy(v map[string]interface{}) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetRetryPolicy(v)
	})
}

// UpdateRetryPolicy sets the "retry_policy" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateRetryPolicy() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateRetryPolicy()
	})
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (u *IntentUpsertOne) ClearRetryPolicy() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.ClearRetryPolicy()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *IntentUpsertOne) SetAttemptCount(v int) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *IntentUpsertOne) AddAttemptCount(v int) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateAttemptCount() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetAggregate sets the "aggregate" field.
func (u *IntentUpsertOne) SetAggregate(v map[string]interface{}) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetAggregate(v)
	})
}

// UpdateAggregate sets the "aggregate" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateAggregate() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateAggregate()
	})
}

// ClearAggregate clears the value of the "aggregate" field.
func (u *IntentUpsertOne) ClearAggregate() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.ClearAggregate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntentUpsertOne) SetUpdatedAt(v time.Time) *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntentUpsertOne) UpdateUpdatedAt() *IntentUpsertOne {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IntentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IntentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IntentUpsertOne.ID is not supported by MySQL driver. Use IntentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IntentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IntentCreateBulk is the builder for creating many Intent entities in bulk.
type IntentCreateBulk struct {
	config
	err      error
	builders []*IntentCreate
	conflict []sql.ConflictOption
}

// Save creates the Intent entities in the database.
func (_c *IntentCreateBulk) Save(ctx context.Context) ([]*Intent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Intent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntentMutation)
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
func (_c *IntentCreateBulk) SaveX(ctx context.Context) []*Intent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Intent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IntentUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *IntentCreateBulk) OnConflict(opts ...sql.ConflictOption) *IntentUpsertBulk {
	_c.conflict = opts
	return &IntentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IntentCreateBulk) OnConflictColumns(columns ...string) *IntentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IntentUpsertBulk{
		create: _c,
	}
}

// IntentUpsertBulk is the builder for "upsert"-ing
// a bulk of Intent nodes.
type IntentUpsertBulk struct {
	create *IntentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(intent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IntentUpsertBulk) UpdateNewValues() *IntentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(intent.FieldID)
			}
			if _, exists := b.mutation.CreatorAgentID(); exists {
				s.SetIgnore(intent.FieldCreatorAgentID)
			}
			if _, exists := b.mutation.IdempotencyKey(); exists {
				s.SetIgnore(intent.FieldIdempotencyKey)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(intent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Intent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IntentUpsertBulk) Ignore() *IntentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IntentUpsertBulk) DoNothing() *IntentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IntentCreateBulk.OnConflict
// documentation for more info.
func (u *IntentUpsertBulk) Update(set func(*IntentUpsert)) *IntentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IntentUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *IntentUpsertBulk) SetTitle(v string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateTitle() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *IntentUpsertBulk) SetDescription(v string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateDescription() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *IntentUpsertBulk) ClearDescription() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *IntentUpsertBulk) SetStatus(v intent.Status) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateStatus() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateStatus()
	})
}

// SetState sets the "state" field.
func (u *IntentUpsertBulk) SetState(v map[string]interface{}) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateState() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *IntentUpsertBulk) ClearState() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.ClearState()
	})
}

// SetVersion sets the "version" field.
func (u *IntentUpsertBulk) SetVersion(v int64) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *IntentUpsertBulk) AddVersion(v int64) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateVersion() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateVersion()
	})
}

// SetConstraints sets the "constraints" field.
func (u *IntentUpsertBulk) SetConstraints(v []string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetConstraints(v)
	})
}

// UpdateConstraints sets the "constraints" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateConstraints() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateConstraints()
	})
}

// ClearConstraints clears the value of the "constraints" field.
func (u *IntentUpsertBulk) ClearConstraints() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.ClearConstraints()
	})
}

// SetParentID sets the "parent_id" field.
func (u *IntentUpsertBulk) SetParentID(v string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateParentID() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *IntentUpsertBulk) ClearParentID() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.ClearParentID()
	})
}

// SetDependsOn sets the "depends_on" field.
func (u *IntentUpsertBulk) SetDependsOn(v []string) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetDependsOn(v)
	})
}

// UpdateDependsOn sets the "depends_on" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateDependsOn() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateDependsOn()
	})
}

// ClearDependsOn clears the value of the "depends_on" field.
func (u *IntentUpsertBulk) ClearDependsOn() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.ClearDependsOn()
	})
}

// SetRetryPolicy sets the "retry_policy" field.
func (u *IntentUpsertBulk) SetRetryPolicy(v map[string]interface{}) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetRetryPolicy(v)
	})
}

// UpdateRetryPolicy sets the "retry_policy" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateRetryPolicy() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateRetryPolicy()
	})
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (u *IntentUpsertBulk) ClearRetryPolicy() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.ClearRetryPolicy()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *IntentUpsertBulk) SetAttemptCount(v int) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *IntentUpsertBulk) AddAttemptCount(v int) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateAttemptCount() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetAggregate sets the "aggregate" field.
func (u *IntentUpsertBulk) SetAggregate(v map[string]interface{}) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetAggregate(v)
	})
}

// UpdateAggregate sets the "aggregate" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateAggregate() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateAggregate()
	})
}

// ClearAggregate clears the value of the "aggregate" field.
func (u *IntentUpsertBulk) ClearAggregate() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.ClearAggregate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *IntentUpsertBulk) SetUpdatedAt(v time.Time) *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *IntentUpsertBulk) UpdateUpdatedAt() *IntentUpsertBulk {
	return u.Update(func(s *IntentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *IntentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IntentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IntentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IntentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
