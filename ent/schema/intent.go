package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Intent holds the schema definition for the Intent entity, the central
// unit of coordinated work. The state document is the agents' shared
// working memory; version is the optimistic-concurrency token.
type Intent struct {
	ent.Schema
}

// Fields of the Intent.
func (Intent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("intent_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("creator_agent_id").
			Immutable().
			Comment("Agent that created the intent"),
		field.Enum("status").
			Values("pending", "active", "blocked", "completed", "cancelled", "failed").
			Default("pending"),
		field.JSON("state", map[string]interface{}{}).
			Optional().
			Comment("Free-form working memory; shallow-merged by state patches"),
		field.Int64("version").
			Default(1).
			Comment("Bumped on every mutation; drives optimistic concurrency"),
		field.JSON("constraints", []string{}).
			Optional().
			Comment("Human-readable predicates (informational)"),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Hierarchy parent; nil for roots"),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Intent IDs that must be COMPLETED before this one is ready"),
		field.JSON("retry_policy", map[string]interface{}{}).
			Optional().
			Comment("Serialized models.RetryPolicy; nil means no policy set"),
		field.Int("attempt_count").
			Default(0).
			Comment("Failure attempts recorded so far"),
		field.JSON("aggregate", map[string]interface{}{}).
			Optional().
			Comment("Last computed roll-up summary (roots only)"),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Immutable().
			Comment("Client-supplied create dedup key"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Intent.
func (Intent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", IntentEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("leases", Lease.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("costs", CostEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("attachments", Attachment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("failures", FailureRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memberships", PortfolioMember.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Intent.
func (Intent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("parent_id"),
		index.Fields("creator_agent_id"),
		index.Fields("status", "created_at"),

		// Create-level idempotency: duplicate keys collide, the handler
		// returns the original intent.
		index.Fields("idempotency_key").
			Unique().
			Annotations(entsql.IndexWhere("idempotency_key IS NOT NULL")),
	}
}
