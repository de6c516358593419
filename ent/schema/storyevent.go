package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryEvent holds the schema definition for the append-only audit of
// orchestration events. The live bus is best-effort; this table is what a
// client fetches to compensate for dropped events.
type StoryEvent struct {
	ent.Schema
}

// Fields of the StoryEvent.
func (StoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("story_id").
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("e.g. 'step-started', 'gate-passed'"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StoryEvent.
func (StoryEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("events").
			Field("story_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StoryEvent.
func (StoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id", "id"),
	}
}
