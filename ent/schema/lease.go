package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lease holds the schema definition for scope-exclusive work claims.
// At most one ACTIVE lease may exist per (intent_id, scope), enforced
// by a partial unique index.
type Lease struct {
	ent.Schema
}

// Fields of the Lease.
func (Lease) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lease_id").
			Unique().
			Immutable(),
		field.String("intent_id").
			Immutable(),
		field.String("scope").
			Immutable().
			Comment("Dotted identifier, treated as opaque (no hierarchy inference)"),
		field.String("holder_agent_id").
			Immutable(),
		field.Enum("status").
			Values("active", "released", "expired").
			Default("active"),
		field.Time("acquired_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
	}
}

// Edges of the Lease.
func (Lease) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("intent", Intent.Type).
			Ref("leases").
			Field("intent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Lease.
func (Lease) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_id", "scope").
			Unique().
			Annotations(entsql.IndexWhere("status = 'active'")),
		index.Fields("status", "expires_at"),
		index.Fields("holder_agent_id"),
	}
}
