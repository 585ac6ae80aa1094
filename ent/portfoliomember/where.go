// Code generated by ent, DO NOT EDIT.

package portfoliomember

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openintent-io/openintent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLTE(FieldID, id))
}

// PortfolioID applies equality check predicate on the "portfolio_id" field. It's identical to PortfolioIDEQ.
func PortfolioID(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldPortfolioID, v))
}

// IntentID applies equality check predicate on the "intent_id" field. It's identical to IntentIDEQ.
func IntentID(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldIntentID, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldPriority, v))
}

// AddedAt applies equality check predicate on the "added_at" field. It's identical to AddedAtEQ.
func AddedAt(v time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldAddedAt, v))
}

// PortfolioIDEQ applies the EQ predicate on the "portfolio_id" field.
func PortfolioIDEQ(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldPortfolioID, v))
}

// PortfolioIDNEQ applies the NEQ predicate on the "portfolio_id" field.
func PortfolioIDNEQ(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNEQ(FieldPortfolioID, v))
}

// PortfolioIDIn applies the In predicate on the "portfolio_id" field.
func PortfolioIDIn(vs ...string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldIn(FieldPortfolioID, vs...))
}

// PortfolioIDNotIn applies the NotIn predicate on the "portfolio_id" field.
func PortfolioIDNotIn(vs ...string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNotIn(FieldPortfolioID, vs...))
}

// PortfolioIDGT applies the GT predicate on the "portfolio_id" field.
func PortfolioIDGT(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGT(FieldPortfolioID, v))
}

// PortfolioIDGTE applies the GTE predicate on the "portfolio_id" field.
func PortfolioIDGTE(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGTE(FieldPortfolioID, v))
}

// PortfolioIDLT applies the LT predicate on the "portfolio_id" field.
func PortfolioIDLT(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLT(FieldPortfolioID, v))
}

// PortfolioIDLTE applies the LTE predicate on the "portfolio_id" field.
func PortfolioIDLTE(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLTE(FieldPortfolioID, v))
}

// PortfolioIDContains applies the Contains predicate on the "portfolio_id" field.
func PortfolioIDContains(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldContains(FieldPortfolioID, v))
}

// PortfolioIDHasPrefix applies the HasPrefix predicate on the "portfolio_id" field.
func PortfolioIDHasPrefix(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldHasPrefix(FieldPortfolioID, v))
}

// PortfolioIDHasSuffix applies the HasSuffix predicate on the "portfolio_id" field.
func PortfolioIDHasSuffix(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldHasSuffix(FieldPortfolioID, v))
}

// PortfolioIDEqualFold applies the EqualFold predicate on the "portfolio_id" field.
func PortfolioIDEqualFold(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEqualFold(FieldPortfolioID, v))
}

// PortfolioIDContainsFold applies the ContainsFold predicate on the "portfolio_id" field.
func PortfolioIDContainsFold(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldContainsFold(FieldPortfolioID, v))
}

// IntentIDEQ applies the EQ predicate on the "intent_id" field.
func IntentIDEQ(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldIntentID, v))
}

// IntentIDNEQ applies the NEQ predicate on the "intent_id" field.
func IntentIDNEQ(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNEQ(FieldIntentID, v))
}

// IntentIDIn applies the In predicate on the "intent_id" field.
func IntentIDIn(vs ...string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldIn(FieldIntentID, vs...))
}

// IntentIDNotIn applies the NotIn predicate on the "intent_id" field.
func IntentIDNotIn(vs ...string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNotIn(FieldIntentID, vs...))
}

// IntentIDGT applies the GT predicate on the "intent_id" field.
func IntentIDGT(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGT(FieldIntentID, v))
}

// IntentIDGTE applies the GTE predicate on the "intent_id" field.
func IntentIDGTE(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGTE(FieldIntentID, v))
}

// IntentIDLT applies the LT predicate on the "intent_id" field.
func IntentIDLT(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLT(FieldIntentID, v))
}

// IntentIDLTE applies the LTE predicate on the "intent_id" field.
func IntentIDLTE(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLTE(FieldIntentID, v))
}

// IntentIDContains applies the Contains predicate on the "intent_id" field.
func IntentIDContains(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldContains(FieldIntentID, v))
}

// IntentIDHasPrefix applies the HasPrefix predicate on the "intent_id" field.
func IntentIDHasPrefix(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldHasPrefix(FieldIntentID, v))
}

// IntentIDHasSuffix applies the HasSuffix predicate on the "intent_id" field.
func IntentIDHasSuffix(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldHasSuffix(FieldIntentID, v))
}

// IntentIDEqualFold applies the EqualFold predicate on the "intent_id" field.
func IntentIDEqualFold(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEqualFold(FieldIntentID, v))
}

// IntentIDContainsFold applies the ContainsFold predicate on the "intent_id" field.
func IntentIDContainsFold(v string) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldContainsFold(FieldIntentID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNotIn(FieldRole, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLTE(FieldPriority, v))
}

// AddedAtEQ applies the EQ predicate on the "added_at" field.
func AddedAtEQ(v time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldEQ(FieldAddedAt, v))
}

// AddedAtNEQ applies the NEQ predicate on the "added_at" field.
func AddedAtNEQ(v time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNEQ(FieldAddedAt, v))
}

// AddedAtIn applies the In predicate on the "added_at" field.
func AddedAtIn(vs ...time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldIn(FieldAddedAt, vs...))
}

// AddedAtNotIn applies the NotIn predicate on the "added_at" field.
func AddedAtNotIn(vs ...time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldNotIn(FieldAddedAt, vs...))
}

// AddedAtGT applies the GT predicate on the "added_at" field.
func AddedAtGT(v time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGT(FieldAddedAt, v))
}

// AddedAtGTE applies the GTE predicate on the "added_at" field.
func AddedAtGTE(v time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldGTE(FieldAddedAt, v))
}

// AddedAtLT applies the LT predicate on the "added_at" field.
func AddedAtLT(v time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLT(FieldAddedAt, v))
}

// AddedAtLTE applies the LTE predicate on the "added_at" field.
func AddedAtLTE(v time.Time) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.FieldLTE(FieldAddedAt, v))
}

// HasPortfolio applies the HasEdge predicate on the "portfolio" edge.
func HasPortfolio() predicate.PortfolioMember {
	return predicate.PortfolioMember(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PortfolioTable, PortfolioColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPortfolioWith applies the HasEdge predicate on the "portfolio" edge with a given conditions (other predicates).
func HasPortfolioWith(preds ...predicate.Portfolio) predicate.PortfolioMember {
	return predicate.PortfolioMember(func(s *sql.Selector) {
		step := newPortfolioStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIntent applies the HasEdge predicate on the "intent" edge.
func HasIntent() predicate.PortfolioMember {
	return predicate.PortfolioMember(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntentTable, IntentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntentWith applies the HasEdge predicate on the "intent" edge with a given conditions (other predicates).
func HasIntentWith(preds ...predicate.Intent) predicate.PortfolioMember {
	return predicate.PortfolioMember(func(s *sql.Selector) {
		step := newIntentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PortfolioMember) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PortfolioMember) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PortfolioMember) predicate.PortfolioMember {
	return predicate.PortfolioMember(sql.NotPredicates(p))
}
