package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FailureRecord holds the schema definition for per-attempt failure accounting.
type FailureRecord struct {
	ent.Schema
}

// Fields of the FailureRecord.
func (FailureRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("intent_id").
			Immutable(),
		field.String("error_type").
			Immutable(),
		field.Text("error_message").
			Immutable(),
		field.Bool("recoverable").
			Immutable(),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Int("attempt_number").
			Immutable().
			Comment("1-based attempt counter at the time of recording"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the FailureRecord.
func (FailureRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("intent", Intent.Type).
			Ref("failures").
			Field("intent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FailureRecord.
func (FailureRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_id", "attempt_number"),
	}
}
