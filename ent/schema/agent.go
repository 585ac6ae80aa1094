package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for registered identities: human
// operators, LLM agents and automated workers. API keys are stored as
// SHA-256 hashes; the plaintext is shown once at registration.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("display_name"),
		field.Enum("role").
			Values("admin", "operator", "agent", "worker").
			Default("agent"),
		field.String("key_hash").
			Unique().
			Sensitive().
			Comment("SHA-256 hex of the API key"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}
