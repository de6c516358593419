package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for one message in a Story- or
// Step-level conversation.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_message_id").
			Unique().
			Immutable(),
		field.String("story_id").
			Immutable(),
		field.String("step_id").
			Optional().
			Nillable().
			Immutable().
			Comment("null for story-level chat"),
		field.Enum("role").
			Values("user", "assistant", "system"),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("chat_messages").
			Field("story_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step", Step.Type).
			Ref("chat_messages").
			Field("step_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id", "created_at"),
		index.Fields("step_id"),
	}
}
