package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ToolDefinition holds the schema definition for brokered external tools.
// The config document drives adapter dispatch: base URL, endpoint paths,
// credential placement and parameter mapping.
type ToolDefinition struct {
	ent.Schema
}

// Fields of the ToolDefinition.
func (ToolDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Tool name referenced by grants and invoke calls"),
		field.Enum("adapter").
			Values("rest", "oauth2", "webhook").
			Comment("Adapter key driving broker dispatch"),
		field.String("description").
			Optional(),
		field.JSON("config", map[string]interface{}{}).
			Comment("Serialized toolbroker.ToolConfig (base_url, endpoints, auth placement)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
