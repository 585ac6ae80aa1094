// Code generated by ent, DO NOT EDIT.

package costentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openintent-io/openintent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLTE(FieldID, id))
}

// IntentID applies equality check predicate on the "intent_id" field. It's identical to IntentIDEQ.
func IntentID(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldIntentID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldAgentID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldCurrency, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// IntentIDEQ applies the EQ predicate on the "intent_id" field.
func IntentIDEQ(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldIntentID, v))
}

// IntentIDNEQ applies the NEQ predicate on the "intent_id" field.
func IntentIDNEQ(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNEQ(FieldIntentID, v))
}

// IntentIDIn applies the In predicate on the "intent_id" field.
func IntentIDIn(vs ...string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIn(FieldIntentID, vs...))
}

// IntentIDNotIn applies the NotIn predicate on the "intent_id" field.
func IntentIDNotIn(vs ...string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotIn(FieldIntentID, vs...))
}

// IntentIDGT applies the GT predicate on the "intent_id" field.
func IntentIDGT(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGT(FieldIntentID, v))
}

// IntentIDGTE applies the GTE predicate on the "intent_id" field.
func IntentIDGTE(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGTE(FieldIntentID, v))
}

// IntentIDLT applies the LT predicate on the "intent_id" field.
func IntentIDLT(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLT(FieldIntentID, v))
}

// IntentIDLTE applies the LTE predicate on the "intent_id" field.
func IntentIDLTE(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLTE(FieldIntentID, v))
}

// IntentIDContains applies the Contains predicate on the "intent_id" field.
func IntentIDContains(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldContains(FieldIntentID, v))
}

// IntentIDHasPrefix applies the HasPrefix predicate on the "intent_id" field.
func IntentIDHasPrefix(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldHasPrefix(FieldIntentID, v))
}

// IntentIDHasSuffix applies the HasSuffix predicate on the "intent_id" field.
func IntentIDHasSuffix(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldHasSuffix(FieldIntentID, v))
}

// IntentIDEqualFold applies the EqualFold predicate on the "intent_id" field.
func IntentIDEqualFold(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEqualFold(FieldIntentID, v))
}

// IntentIDContainsFold applies the ContainsFold predicate on the "intent_id" field.
func IntentIDContainsFold(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldContainsFold(FieldIntentID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldContainsFold(FieldAgentID, v))
}

// CostTypeEQ applies the EQ predicate on the "cost_type" field.
func CostTypeEQ(v CostType) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldCostType, v))
}

// CostTypeNEQ applies the NEQ predicate on the "cost_type" field.
func CostTypeNEQ(v CostType) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNEQ(FieldCostType, v))
}

// CostTypeIn applies the In predicate on the "cost_type" field.
func CostTypeIn(vs ...CostType) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIn(FieldCostType, vs...))
}

// CostTypeNotIn applies the NotIn predicate on the "cost_type" field.
func CostTypeNotIn(vs ...CostType) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotIn(FieldCostType, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLTE(FieldAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldContainsFold(FieldCurrency, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CostEntry {
	return predicate.CostEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasIntent applies the HasEdge predicate on the "intent" edge.
func HasIntent() predicate.CostEntry {
	return predicate.CostEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntentTable, IntentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntentWith applies the HasEdge predicate on the "intent" edge with a given conditions (other predicates).
func HasIntentWith(preds ...predicate.Intent) predicate.CostEntry {
	return predicate.CostEntry(func(s *sql.Selector) {
		step := newIntentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CostEntry) predicate.CostEntry {
	return predicate.CostEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CostEntry) predicate.CostEntry {
	return predicate.CostEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CostEntry) predicate.CostEntry {
	return predicate.CostEntry(sql.NotPredicates(p))
}
