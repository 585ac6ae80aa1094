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
	"github.com/openintent-io/openintent/ent/attachment"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
	"github.com/openintent-io/openintent/ent/lease"
	"github.com/openintent-io/openintent/ent/portfoliomember"
	"github.com/openintent-io/openintent/ent/predicate"
)

// IntentUpdate is the builder for updating Intent entities.
type IntentUpdate struct {
	config
	hooks    []Hook
	mutation *IntentMutation
}

// Where appends a list predicates to the IntentUpdate builder.
func (_u *IntentUpdate) Where(ps ...predicate.Intent) *IntentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *IntentUpdate) SetTitle(v string) *IntentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableTitle(v *string) *IntentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IntentUpdate) SetDescription(v string) *IntentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableDescription(v *string) *IntentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IntentUpdate) ClearDescription() *IntentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntentUpdate) SetStatus(v intent.Status) *IntentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableStatus(v *intent.Status) *IntentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *IntentUpdate) SetState(v map[string]interface{}) *IntentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *IntentUpdate) ClearState() *IntentUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetVersion sets the "version" field.
func (_u *IntentUpdate) SetVersion(v int64) *IntentUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableVersion(v *int64) *IntentUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *IntentUpdate) AddVersion(v int64) *IntentUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *IntentUpdate) SetConstraints(v []string) *IntentUpdate {
	_u.mutation.SetConstraints(v)
	return _u
}

// AppendConstraints appends value to the "constraints" field.
func (_u *IntentUpdate) AppendConstraints(v []string) *IntentUpdate {
	_u.mutation.AppendConstraints(v)
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *IntentUpdate) ClearConstraints() *IntentUpdate {
	_u.mutation.ClearConstraints()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *IntentUpdate) SetParentID(v string) *IntentUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableParentID(v *string) *IntentUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *IntentUpdate) ClearParentID() *IntentUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *IntentUpdate) SetDependsOn(v []string) *IntentUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *IntentUpdate) AppendDependsOn(v []string) *IntentUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *IntentUpdate) ClearDependsOn() *IntentUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetRetryPolicy sets the "retry_policy" field.
func (_u *IntentUpdate) SetRetryPolicy(v map[string]interface{}) *IntentUpdate {
	_u.mutation.SetRetryPolicy(v)
	return _u
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (_u *IntentUpdate) ClearRetryPolicy() *IntentUpdate {
	_u.mutation.ClearRetryPolicy()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *IntentUpdate) SetAttemptCount(v int) *IntentUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *IntentUpdate) SetNillableAttemptCount(v *int) *IntentUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *IntentUpdate) AddAttemptCount(v int) *IntentUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetAggregate sets the "aggregate" field.
func (_u *IntentUpdate) SetAggregate(v map[string]interface{}) *IntentUpdate {
	_u.mutation.SetAggregate(v)
	return _u
}

// ClearAggregate clears the value of the "aggregate" field.
func (_u *IntentUpdate) ClearAggregate() *IntentUpdate {
	_u.mutation.ClearAggregate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntentUpdate) SetUpdatedAt(v time.Time) *IntentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the IntentEvent entity by IDs.
func (_u *IntentUpdate) AddEventIDs(ids ...int) *IntentUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the IntentEvent entity.
func (_u *IntentUpdate) AddEvents(v ...*IntentEvent) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddLeaseIDs adds the "leases" edge to the Lease entity by IDs.
func (_u *IntentUpdate) AddLeaseIDs(ids ...string) *IntentUpdate {
	_u.mutation.AddLeaseIDs(ids...)
	return _u
}

// AddLeases adds the "leases" edges to the Lease entity.
func (_u *IntentUpdate) AddLeases(v ...*Lease) *IntentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeaseIDs(ids...)
}

// AddCostIDs adds the "costs" edge to the CostEntry entity by IDs.
func (_u *IntentUpdate) AddCostIDs(ids ...int) *IntentUpdate {
	_u.mutation.AddCostIDs(ids...)
	return _u
}

// AddCosts adds the "costs" edges to the CostEntry entity.
func (_u *IntentUpdate) AddCosts(v ...*CostEntry) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCostIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *IntentUpdate) AddAttachmentIDs(ids ...string) *IntentUpdate {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *IntentUpdate) AddAttachments(v ...*Attachment) *IntentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the FailureRecord entity by IDs.
func (_u *IntentUpdate) AddFailureIDs(ids ...int) *IntentUpdate {
	_u.mutation.AddFailureIDs(ids...)
	return _u
}

// AddFailures adds the "failures" edges to the FailureRecord entity.
func (_u *IntentUpdate) AddFailures(v ...*FailureRecord) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFailureIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the PortfolioMember entity by IDs.
func (_u *IntentUpdate) AddMembershipIDs(ids ...int) *IntentUpdate {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the PortfolioMember entity.
func (_u *IntentUpdate) AddMemberships(v ...*PortfolioMember) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// Mutation returns the IntentMutation object of the builder.
func (_u *IntentUpdate) Mutation() *IntentMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the IntentEvent entity.
func (_u *IntentUpdate) ClearEvents() *IntentUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to IntentEvent entities by IDs.
func (_u *IntentUpdate) RemoveEventIDs(ids ...int) *IntentUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to IntentEvent entities.
func (_u *IntentUpdate) RemoveEvents(v ...*IntentEvent) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearLeases clears all "leases" edges to the Lease entity.
func (_u *IntentUpdate) ClearLeases() *IntentUpdate {
	_u.mutation.ClearLeases()
	return _u
}

// RemoveLeaseIDs removes the "leases" edge to Lease entities by IDs.
func (_u *IntentUpdate) RemoveLeaseIDs(ids ...string) *IntentUpdate {
	_u.mutation.RemoveLeaseIDs(ids...)
	return _u
}

// RemoveLeases removes "leases" edges to Lease entities.
func (_u *IntentUpdate) RemoveLeases(v ...*Lease) *IntentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeaseIDs(ids...)
}

// ClearCosts clears all "costs" edges to the CostEntry entity.
func (_u *IntentUpdate) ClearCosts() *IntentUpdate {
	_u.mutation.ClearCosts()
	return _u
}

// RemoveCostIDs removes the "costs" edge to CostEntry entities by IDs.
func (_u *IntentUpdate) RemoveCostIDs(ids ...int) *IntentUpdate {
	_u.mutation.RemoveCostIDs(ids...)
	return _u
}

// RemoveCosts removes "costs" edges to CostEntry entities.
func (_u *IntentUpdate) RemoveCosts(v ...*CostEntry) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCostIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *IntentUpdate) ClearAttachments() *IntentUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *IntentUpdate) RemoveAttachmentIDs(ids ...string) *IntentUpdate {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *IntentUpdate) RemoveAttachments(v ...*Attachment) *IntentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearFailures clears all "failures" edges to the FailureRecord entity.
func (_u *IntentUpdate) ClearFailures() *IntentUpdate {
	_u.mutation.ClearFailures()
	return _u
}

// RemoveFailureIDs removes the "failures" edge to FailureRecord entities by IDs.
func (_u *IntentUpdate) RemoveFailureIDs(ids ...int) *IntentUpdate {
	_u.mutation.RemoveFailureIDs(ids...)
	return _u
}

// RemoveFailures removes "failures" edges to FailureRecord entities.
func (_u *IntentUpdate) RemoveFailures(v ...*FailureRecord) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFailureIDs(ids...)
}

// ClearMemberships clears all "memberships" edges to the PortfolioMember entity.
func (_u *IntentUpdate) ClearMemberships() *IntentUpdate {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to PortfolioMember entities by IDs.
func (_u *IntentUpdate) RemoveMembershipIDs(ids ...int) *IntentUpdate {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to PortfolioMember entities.
func (_u *IntentUpdate) RemoveMemberships(v ...*PortfolioMember) *IntentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intent.Table, intent.Columns, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(intent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(intent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(intent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(intent.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(intent.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(intent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(intent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(intent.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstraints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intent.FieldConstraints, value)
		})
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(intent.FieldConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(intent.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(intent.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(intent.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intent.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(intent.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryPolicy(); ok {
		_spec.SetField(intent.FieldRetryPolicy, field.TypeJSON, value)
	}
	if _u.mutation.RetryPolicyCleared() {
		_spec.ClearField(intent.FieldRetryPolicy, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(intent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(intent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Aggregate(); ok {
		_spec.SetField(intent.FieldAggregate, field.TypeJSON, value)
	}
	if _u.mutation.AggregateCleared() {
		_spec.ClearField(intent.FieldAggregate, field.TypeJSON)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(intent.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeasesIDs(); len(nodes) > 0 && !_u.mutation.LeasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeasesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCostsIDs(); len(nodes) > 0 && !_u.mutation.CostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CostsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFailuresIDs(); len(nodes) > 0 && !_u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FailuresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntentUpdateOne is the builder for updating a single Intent entity.
type IntentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntentMutation
}

// SetTitle sets the "title" field.
func (_u *IntentUpdateOne) SetTitle(v string) *IntentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableTitle(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IntentUpdateOne) SetDescription(v string) *IntentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableDescription(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IntentUpdateOne) ClearDescription() *IntentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IntentUpdateOne) SetStatus(v intent.Status) *IntentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableStatus(v *intent.Status) *IntentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *IntentUpdateOne) SetState(v map[string]interface{}) *IntentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *IntentUpdateOne) ClearState() *IntentUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetVersion sets the "version" field.
func (_u *IntentUpdateOne) SetVersion(v int64) *IntentUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableVersion(v *int64) *IntentUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *IntentUpdateOne) AddVersion(v int64) *IntentUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *IntentUpdateOne) SetConstraints(v []string) *IntentUpdateOne {
	_u.mutation.SetConstraints(v)
	return _u
}

// AppendConstraints appends value to the "constraints" field.
func (_u *IntentUpdateOne) AppendConstraints(v []string) *IntentUpdateOne {
	_u.mutation.AppendConstraints(v)
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *IntentUpdateOne) ClearConstraints() *IntentUpdateOne {
	_u.mutation.ClearConstraints()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *IntentUpdateOne) SetParentID(v string) *IntentUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableParentID(v *string) *IntentUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *IntentUpdateOne) ClearParentID() *IntentUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *IntentUpdateOne) SetDependsOn(v []string) *IntentUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *IntentUpdateOne) AppendDependsOn(v []string) *IntentUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *IntentUpdateOne) ClearDependsOn() *IntentUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetRetryPolicy sets the "retry_policy" field.
func (_u *IntentUpdateOne) SetRetryPolicy(v map[string]interface{}) *IntentUpdateOne {
	_u.mutation.SetRetryPolicy(v)
	return _u
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (_u *IntentUpdateOne) ClearRetryPolicy() *IntentUpdateOne {
	_u.mutation.ClearRetryPolicy()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *IntentUpdateOne) SetAttemptCount(v int) *IntentUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *IntentUpdateOne) SetNillableAttemptCount(v *int) *IntentUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *IntentUpdateOne) AddAttemptCount(v int) *IntentUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetAggregate sets the "aggregate" field.
func (_u *IntentUpdateOne) SetAggregate(v map[string]interface{}) *IntentUpdateOne {
	_u.mutation.SetAggregate(v)
	return _u
}

// ClearAggregate clears the value of the "aggregate" field.
func (_u *IntentUpdateOne) ClearAggregate() *IntentUpdateOne {
	_u.mutation.ClearAggregate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IntentUpdateOne) SetUpdatedAt(v time.Time) *IntentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEventIDs adds the "events" edge to the IntentEvent entity by IDs.
func (_u *IntentUpdateOne) AddEventIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the IntentEvent entity.
func (_u *IntentUpdateOne) AddEvents(v ...*IntentEvent) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddLeaseIDs adds the "leases" edge to the Lease entity by IDs.
func (_u *IntentUpdateOne) AddLeaseIDs(ids ...string) *IntentUpdateOne {
	_u.mutation.AddLeaseIDs(ids...)
	return _u
}

// AddLeases adds the "leases" edges to the Lease entity.
func (_u *IntentUpdateOne) AddLeases(v ...*Lease) *IntentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLeaseIDs(ids...)
}

// AddCostIDs adds the "costs" edge to the CostEntry entity by IDs.
func (_u *IntentUpdateOne) AddCostIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.AddCostIDs(ids...)
	return _u
}

// AddCosts adds the "costs" edges to the CostEntry entity.
func (_u *IntentUpdateOne) AddCosts(v ...*CostEntry) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCostIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *IntentUpdateOne) AddAttachmentIDs(ids ...string) *IntentUpdateOne {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *IntentUpdateOne) AddAttachments(v ...*Attachment) *IntentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the FailureRecord entity by IDs.
func (_u *IntentUpdateOne) AddFailureIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.AddFailureIDs(ids...)
	return _u
}

// AddFailures adds the "failures" edges to the FailureRecord entity.
func (_u *IntentUpdateOne) AddFailures(v ...*FailureRecord) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFailureIDs(ids...)
}

// AddMembershipIDs adds the "memberships" edge to the PortfolioMember entity by IDs.
func (_u *IntentUpdateOne) AddMembershipIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.AddMembershipIDs(ids...)
	return _u
}

// AddMemberships adds the "memberships" edges to the PortfolioMember entity.
func (_u *IntentUpdateOne) AddMemberships(v ...*PortfolioMember) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMembershipIDs(ids...)
}

// Mutation returns the IntentMutation object of the builder.
func (_u *IntentUpdateOne) Mutation() *IntentMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the IntentEvent entity.
func (_u *IntentUpdateOne) ClearEvents() *IntentUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to IntentEvent entities by IDs.
func (_u *IntentUpdateOne) RemoveEventIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to IntentEvent entities.
func (_u *IntentUpdateOne) RemoveEvents(v ...*IntentEvent) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearLeases clears all "leases" edges to the Lease entity.
func (_u *IntentUpdateOne) ClearLeases() *IntentUpdateOne {
	_u.mutation.ClearLeases()
	return _u
}

// RemoveLeaseIDs removes the "leases" edge to Lease entities by IDs.
func (_u *IntentUpdateOne) RemoveLeaseIDs(ids ...string) *IntentUpdateOne {
	_u.mutation.RemoveLeaseIDs(ids...)
	return _u
}

// RemoveLeases removes "leases" edges to Lease entities.
func (_u *IntentUpdateOne) RemoveLeases(v ...*Lease) *IntentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLeaseIDs(ids...)
}

// ClearCosts clears all "costs" edges to the CostEntry entity.
func (_u *IntentUpdateOne) ClearCosts() *IntentUpdateOne {
	_u.mutation.ClearCosts()
	return _u
}

// RemoveCostIDs removes the "costs" edge to CostEntry entities by IDs.
func (_u *IntentUpdateOne) RemoveCostIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.RemoveCostIDs(ids...)
	return _u
}

// RemoveCosts removes "costs" edges to CostEntry entities.
func (_u *IntentUpdateOne) RemoveCosts(v ...*CostEntry) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCostIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *IntentUpdateOne) ClearAttachments() *IntentUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *IntentUpdateOne) RemoveAttachmentIDs(ids ...string) *IntentUpdateOne {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *IntentUpdateOne) RemoveAttachments(v ...*Attachment) *IntentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearFailures clears all "failures" edges to the FailureRecord entity.
func (_u *IntentUpdateOne) ClearFailures() *IntentUpdateOne {
	_u.mutation.ClearFailures()
	return _u
}

// RemoveFailureIDs removes the "failures" edge to FailureRecord entities by IDs.
func (_u *IntentUpdateOne) RemoveFailureIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.RemoveFailureIDs(ids...)
	return _u
}

// RemoveFailures removes "failures" edges to FailureRecord entities.
func (_u *IntentUpdateOne) RemoveFailures(v ...*FailureRecord) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFailureIDs(ids...)
}

// ClearMemberships clears all "memberships" edges to the PortfolioMember entity.
func (_u *IntentUpdateOne) ClearMemberships() *IntentUpdateOne {
	_u.mutation.ClearMemberships()
	return _u
}

// RemoveMembershipIDs removes the "memberships" edge to PortfolioMember entities by IDs.
func (_u *IntentUpdateOne) RemoveMembershipIDs(ids ...int) *IntentUpdateOne {
	_u.mutation.RemoveMembershipIDs(ids...)
	return _u
}

// RemoveMemberships removes "memberships" edges to PortfolioMember entities.
func (_u *IntentUpdateOne) RemoveMemberships(v ...*PortfolioMember) *IntentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMembershipIDs(ids...)
}

// Where appends a list predicates to the IntentUpdate builder.
func (_u *IntentUpdateOne) Where(ps ...predicate.Intent) *IntentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntentUpdateOne) Select(field string, fields ...string) *IntentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Intent entity.
func (_u *IntentUpdateOne) Save(ctx context.Context) (*Intent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntentUpdateOne) SaveX(ctx context.Context) *Intent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IntentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := intent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IntentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := intent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IntentUpdateOne) sqlSave(ctx context.Context) (_node *Intent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(intent.Table, intent.Columns, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Intent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, intent.FieldID)
		for _, f := range fields {
			if !intent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != intent.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(intent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(intent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(intent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(intent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(intent.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(intent.FieldState, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(intent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(intent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(intent.FieldConstraints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConstraints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intent.FieldConstraints, value)
		})
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(intent.FieldConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(intent.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(intent.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(intent.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, intent.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(intent.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryPolicy(); ok {
		_spec.SetField(intent.FieldRetryPolicy, field.TypeJSON, value)
	}
	if _u.mutation.RetryPolicyCleared() {
		_spec.ClearField(intent.FieldRetryPolicy, field.TypeJSON)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(intent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(intent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Aggregate(); ok {
		_spec.SetField(intent.FieldAggregate, field.TypeJSON, value)
	}
	if _u.mutation.AggregateCleared() {
		_spec.ClearField(intent.FieldAggregate, field.TypeJSON)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(intent.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(intent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLeasesIDs(); len(nodes) > 0 && !_u.mutation.LeasesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeasesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCostsIDs(); len(nodes) > 0 && !_u.mutation.CostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CostsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFailuresIDs(); len(nodes) > 0 && !_u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FailuresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembershipsIDs(); len(nodes) > 0 && !_u.mutation.MembershipsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembershipsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Intent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{intent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
