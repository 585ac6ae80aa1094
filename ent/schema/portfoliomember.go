package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PortfolioMember holds the schema definition for portfolio membership rows.
type PortfolioMember struct {
	ent.Schema
}

// Fields of the PortfolioMember.
func (PortfolioMember) Fields() []ent.Field {
	return []ent.Field{
		field.String("portfolio_id").
			Immutable(),
		field.String("intent_id").
			Immutable(),
		field.Enum("role").
			Values("primary", "member", "dependency").
			Default("member"),
		field.Int("priority").
			Default(0).
			Comment("Lower value sorts first"),
		field.Time("added_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PortfolioMember.
func (PortfolioMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("portfolio", Portfolio.Type).
			Ref("members").
			Field("portfolio_id").
			Unique().
			Required().
			Immutable(),
		edge.From("intent", Intent.Type).
			Ref("memberships").
			Field("intent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PortfolioMember.
func (PortfolioMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("portfolio_id", "intent_id").
			Unique(),
		index.Fields("portfolio_id", "priority"),
	}
}
