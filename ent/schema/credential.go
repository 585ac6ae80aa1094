package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Credential holds the schema definition for tool credentials.
// The secret column is sensitive: ent excludes it from String()/JSON
// output, and no package outside the tool broker queries it.
type Credential struct {
	ent.Schema
}

// Fields of the Credential.
func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("credential_id").
			Unique().
			Immutable(),
		field.Enum("auth_type").
			Values("api_key", "bearer", "basic", "oauth2", "webhook"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Non-secret adapter settings (header name, token URL, username)"),
		field.String("secret").
			Sensitive().
			Comment("Opaque secret material; read only inside the broker"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
