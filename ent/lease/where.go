// Code generated by ent, DO NOT EDIT.

package lease

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openintent-io/openintent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldID, id))
}

// IntentID applies equality check predicate on the "intent_id" field. It's identical to IntentIDEQ.
func IntentID(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldIntentID, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldScope, v))
}

// HolderAgentID applies equality check predicate on the "holder_agent_id" field. It's identical to HolderAgentIDEQ.
func HolderAgentID(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldHolderAgentID, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldAcquiredAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldExpiresAt, v))
}

// IntentIDEQ applies the EQ predicate on the "intent_id" field.
func IntentIDEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldIntentID, v))
}

// IntentIDNEQ applies the NEQ predicate on the "intent_id" field.
func IntentIDNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldIntentID, v))
}

// IntentIDIn applies the In predicate on the "intent_id" field.
func IntentIDIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldIntentID, vs...))
}

// IntentIDNotIn applies the NotIn predicate on the "intent_id" field.
func IntentIDNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldIntentID, vs...))
}

// IntentIDGT applies the GT predicate on the "intent_id" field.
func IntentIDGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldIntentID, v))
}

// IntentIDGTE applies the GTE predicate on the "intent_id" field.
func IntentIDGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldIntentID, v))
}

// IntentIDLT applies the LT predicate on the "intent_id" field.
func IntentIDLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldIntentID, v))
}

// IntentIDLTE applies the LTE predicate on the "intent_id" field.
func IntentIDLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldIntentID, v))
}

// IntentIDContains applies the Contains predicate on the "intent_id" field.
func IntentIDContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldIntentID, v))
}

// IntentIDHasPrefix applies the HasPrefix predicate on the "intent_id" field.
func IntentIDHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldIntentID, v))
}

// IntentIDHasSuffix applies the HasSuffix predicate on the "intent_id" field.
func IntentIDHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldIntentID, v))
}

// IntentIDEqualFold applies the EqualFold predicate on the "intent_id" field.
func IntentIDEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldIntentID, v))
}

// IntentIDContainsFold applies the ContainsFold predicate on the "intent_id" field.
func IntentIDContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldIntentID, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldScope, v))
}

// HolderAgentIDEQ applies the EQ predicate on the "holder_agent_id" field.
func HolderAgentIDEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldHolderAgentID, v))
}

// HolderAgentIDNEQ applies the NEQ predicate on the "holder_agent_id" field.
func HolderAgentIDNEQ(v string) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldHolderAgentID, v))
}

// HolderAgentIDIn applies the In predicate on the "holder_agent_id" field.
func HolderAgentIDIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldHolderAgentID, vs...))
}

// HolderAgentIDNotIn applies the NotIn predicate on the "holder_agent_id" field.
func HolderAgentIDNotIn(vs ...string) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldHolderAgentID, vs...))
}

// HolderAgentIDGT applies the GT predicate on the "holder_agent_id" field.
func HolderAgentIDGT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldHolderAgentID, v))
}

// HolderAgentIDGTE applies the GTE predicate on the "holder_agent_id" field.
func HolderAgentIDGTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldHolderAgentID, v))
}

// HolderAgentIDLT applies the LT predicate on the "holder_agent_id" field.
func HolderAgentIDLT(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldHolderAgentID, v))
}

// HolderAgentIDLTE applies the LTE predicate on the "holder_agent_id" field.
func HolderAgentIDLTE(v string) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldHolderAgentID, v))
}

// HolderAgentIDContains applies the Contains predicate on the "holder_agent_id" field.
func HolderAgentIDContains(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContains(FieldHolderAgentID, v))
}

// HolderAgentIDHasPrefix applies the HasPrefix predicate on the "holder_agent_id" field.
func HolderAgentIDHasPrefix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasPrefix(FieldHolderAgentID, v))
}

// HolderAgentIDHasSuffix applies the HasSuffix predicate on the "holder_agent_id" field.
func HolderAgentIDHasSuffix(v string) predicate.Lease {
	return predicate.Lease(sql.FieldHasSuffix(FieldHolderAgentID, v))
}

// HolderAgentIDEqualFold applies the EqualFold predicate on the "holder_agent_id" field.
func HolderAgentIDEqualFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldEqualFold(FieldHolderAgentID, v))
}

// HolderAgentIDContainsFold applies the ContainsFold predicate on the "holder_agent_id" field.
func HolderAgentIDContainsFold(v string) predicate.Lease {
	return predicate.Lease(sql.FieldContainsFold(FieldHolderAgentID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldStatus, vs...))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldAcquiredAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Lease {
	return predicate.Lease(sql.FieldLTE(FieldExpiresAt, v))
}

// HasIntent applies the HasEdge predicate on the "intent" edge.
func HasIntent() predicate.Lease {
	return predicate.Lease(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntentTable, IntentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntentWith applies the HasEdge predicate on the "intent" edge with a given conditions (other predicates).
func HasIntentWith(preds ...predicate.Intent) predicate.Lease {
	return predicate.Lease(func(s *sql.Selector) {
		step := newIntentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lease) predicate.Lease {
	return predicate.Lease(sql.NotPredicates(p))
}
