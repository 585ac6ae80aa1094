package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Portfolio holds the schema definition for flat intent compositions.
type Portfolio struct {
	ent.Schema
}

// Fields of the Portfolio.
func (Portfolio) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("portfolio_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("creator_agent_id").
			Immutable(),
		field.Enum("status").
			Values("active", "completed", "cancelled").
			Default("active"),
		field.JSON("governance_policy", map[string]interface{}{}).
			Optional().
			Comment("Serialized models.GovernancePolicy; informational to the core"),
		field.JSON("aggregate", map[string]interface{}{}).
			Optional().
			Comment("Last computed roll-up summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Portfolio.
func (Portfolio) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", PortfolioMember.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Portfolio.
func (Portfolio) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
