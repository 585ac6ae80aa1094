package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolGrant holds the schema definition for (agent, tool) authorizations.
// Grants and credentials live outside the intent namespaces; only the
// tool broker reads them.
type ToolGrant struct {
	ent.Schema
}

// Fields of the ToolGrant.
func (ToolGrant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("grant_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.String("credential_id").
			Comment("Credential resolved at execution time, never earlier"),
		field.JSON("allowed_hosts", []string{}).
			Optional().
			Comment("Outbound host allowlist; subdomains of entries match"),
		field.Int("rate_limit").
			Default(0).
			Comment("Max invocations per window; 0 disables the limit"),
		field.Int("rate_window_seconds").
			Default(60),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ToolGrant.
func (ToolGrant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "tool_name").
			Unique(),
	}
}
