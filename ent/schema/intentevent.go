package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IntentEvent holds the schema definition for the append-only per-intent
// event log. Rows are inserted in the same transaction as the mutation
// they describe; sequence_number is strictly monotonic per intent.
type IntentEvent struct {
	ent.Schema
}

// Fields of the IntentEvent.
func (IntentEvent) Fields() []ent.Field {
	return []ent.Field{
		// Auto-increment int ID doubles as a global, roughly time-ordered
		// cursor for cross-intent catchup queries.
		field.String("intent_id").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("One of the events.EventType* constants"),
		field.String("actor_agent_id").
			Immutable().
			Comment("Agent whose request produced the event"),
		field.Int64("sequence_number").
			Immutable().
			Comment("Per-intent monotonic sequence, starting at 1"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the IntentEvent.
func (IntentEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("intent", Intent.Type).
			Ref("events").
			Field("intent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the IntentEvent.
func (IntentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_id", "sequence_number").
			Unique(),
		index.Fields("event_type"),
		index.Fields("created_at"),
	}
}
