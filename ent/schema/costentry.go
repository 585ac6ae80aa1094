package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CostEntry holds the schema definition for the per-intent cost ledger.
type CostEntry struct {
	ent.Schema
}

// Fields of the CostEntry.
func (CostEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("intent_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Enum("cost_type").
			Values("compute", "api", "tokens", "storage", "other").
			Default("other"),
		field.Float("amount"),
		field.String("currency").
			Default("USD"),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CostEntry.
func (CostEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("intent", Intent.Type).
			Ref("costs").
			Field("intent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CostEntry.
func (CostEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_id", "created_at"),
		index.Fields("agent_id"),
	}
}
