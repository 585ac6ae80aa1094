// Code generated by ent, DO NOT EDIT.

package intentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openintent-io/openintent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLTE(FieldID, id))
}

// IntentID applies equality check predicate on the "intent_id" field. It's identical to IntentIDEQ.
func IntentID(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldIntentID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldEventType, v))
}

// ActorAgentID applies equality check predicate on the "actor_agent_id" field. It's identical to ActorAgentIDEQ.
func ActorAgentID(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldActorAgentID, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldSequenceNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// IntentIDEQ applies the EQ predicate on the "intent_id" field.
func IntentIDEQ(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldIntentID, v))
}

// IntentIDNEQ applies the NEQ predicate on the "intent_id" field.
func IntentIDNEQ(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNEQ(FieldIntentID, v))
}

// IntentIDIn applies the In predicate on the "intent_id" field.
func IntentIDIn(vs ...string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldIn(FieldIntentID, vs...))
}

// IntentIDNotIn applies the NotIn predicate on the "intent_id" field.
func IntentIDNotIn(vs ...string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNotIn(FieldIntentID, vs...))
}

// IntentIDGT applies the GT predicate on the "intent_id" field.
func IntentIDGT(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGT(FieldIntentID, v))
}

// IntentIDGTE applies the GTE predicate on the "intent_id" field.
func IntentIDGTE(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGTE(FieldIntentID, v))
}

// IntentIDLT applies the LT predicate on the "intent_id" field.
func IntentIDLT(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLT(FieldIntentID, v))
}

// IntentIDLTE applies the LTE predicate on the "intent_id" field.
func IntentIDLTE(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLTE(FieldIntentID, v))
}

// IntentIDContains applies the Contains predicate on the "intent_id" field.
func IntentIDContains(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldContains(FieldIntentID, v))
}

// IntentIDHasPrefix applies the HasPrefix predicate on the "intent_id" field.
func IntentIDHasPrefix(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldHasPrefix(FieldIntentID, v))
}

// IntentIDHasSuffix applies the HasSuffix predicate on the "intent_id" field.
func IntentIDHasSuffix(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldHasSuffix(FieldIntentID, v))
}

// IntentIDEqualFold applies the EqualFold predicate on the "intent_id" field.
func IntentIDEqualFold(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEqualFold(FieldIntentID, v))
}

// IntentIDContainsFold applies the ContainsFold predicate on the "intent_id" field.
func IntentIDContainsFold(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldContainsFold(FieldIntentID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldContainsFold(FieldEventType, v))
}

// ActorAgentIDEQ applies the EQ predicate on the "actor_agent_id" field.
func ActorAgentIDEQ(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldActorAgentID, v))
}

// ActorAgentIDNEQ applies the NEQ predicate on the "actor_agent_id" field.
func ActorAgentIDNEQ(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNEQ(FieldActorAgentID, v))
}

// ActorAgentIDIn applies the In predicate on the "actor_agent_id" field.
func ActorAgentIDIn(vs ...string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldIn(FieldActorAgentID, vs...))
}

// ActorAgentIDNotIn applies the NotIn predicate on the "actor_agent_id" field.
func ActorAgentIDNotIn(vs ...string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNotIn(FieldActorAgentID, vs...))
}

// ActorAgentIDGT applies the GT predicate on the "actor_agent_id" field.
func ActorAgentIDGT(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGT(FieldActorAgentID, v))
}

// ActorAgentIDGTE applies the GTE predicate on the "actor_agent_id" field.
func ActorAgentIDGTE(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGTE(FieldActorAgentID, v))
}

// ActorAgentIDLT applies the LT predicate on the "actor_agent_id" field.
func ActorAgentIDLT(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLT(FieldActorAgentID, v))
}

// ActorAgentIDLTE applies the LTE predicate on the "actor_agent_id" field.
func ActorAgentIDLTE(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLTE(FieldActorAgentID, v))
}

// ActorAgentIDContains applies the Contains predicate on the "actor_agent_id" field.
func ActorAgentIDContains(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldContains(FieldActorAgentID, v))
}

// ActorAgentIDHasPrefix applies the HasPrefix predicate on the "actor_agent_id" field.
func ActorAgentIDHasPrefix(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldHasPrefix(FieldActorAgentID, v))
}

// ActorAgentIDHasSuffix applies the HasSuffix predicate on the "actor_agent_id" field.
func ActorAgentIDHasSuffix(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldHasSuffix(FieldActorAgentID, v))
}

// ActorAgentIDEqualFold applies the EqualFold predicate on the "actor_agent_id" field.
func ActorAgentIDEqualFold(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEqualFold(FieldActorAgentID, v))
}

// ActorAgentIDContainsFold applies the ContainsFold predicate on the "actor_agent_id" field.
func ActorAgentIDContainsFold(v string) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldContainsFold(FieldActorAgentID, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int64) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLTE(FieldSequenceNumber, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IntentEvent {
	return predicate.IntentEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasIntent applies the HasEdge predicate on the "intent" edge.
func HasIntent() predicate.IntentEvent {
	return predicate.IntentEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntentTable, IntentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntentWith applies the HasEdge predicate on the "intent" edge with a given conditions (other predicates).
func HasIntentWith(preds ...predicate.Intent) predicate.IntentEvent {
	return predicate.IntentEvent(func(s *sql.Selector) {
		step := newIntentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IntentEvent) predicate.IntentEvent {
	return predicate.IntentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IntentEvent) predicate.IntentEvent {
	return predicate.IntentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IntentEvent) predicate.IntentEvent {
	return predicate.IntentEvent(sql.NotPredicates(p))
}
