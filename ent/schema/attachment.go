package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attachment holds the schema definition for intent attachments.
// Blobs are stored inline; sha256 and size are computed server-side.
type Attachment struct {
	ent.Schema
}

// Fields of the Attachment.
func (Attachment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attachment_id").
			Unique().
			Immutable(),
		field.String("intent_id").
			Immutable(),
		field.String("filename"),
		field.String("content_type").
			Default("application/octet-stream"),
		field.Int64("size").
			Comment("Blob size in bytes"),
		field.String("sha256").
			Comment("Hex digest of the blob"),
		field.Bytes("blob").
			Comment("Attachment content"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("created_by").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Attachment.
func (Attachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("intent", Intent.Type).
			Ref("attachments").
			Field("intent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Attachment.
func (Attachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("intent_id", "created_at"),
	}
}
