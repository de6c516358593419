package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity — one atomic unit of
// work inside a Story's plan.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("story_id").
			Immutable(),

		field.Int("order_index").
			Comment("Monotonic within the story; display only"),
		field.Int("wave").
			Optional().
			Nillable().
			Comment("null until decompose assigns waves; >= 1 after"),

		field.String("name"),
		field.String("capability").
			Comment("From the capability vocabulary; unknown values kept"),
		field.String("language").
			Optional().
			Comment("Routing hint; empty = no preference"),
		field.Text("description").
			Optional(),
		field.JSON("depends_on", []string{}).
			Optional().
			Comment("Step ids this step consumes output from"),

		field.Text("input").
			Optional(),
		field.Text("output").
			Optional().
			Nillable(),
		field.Text("error").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("pending", "running", "completed", "failed",
				"cancelled", "rejected", "skipped").
			Default("pending"),
		field.String("agent_id").
			Optional().
			Nillable().
			Comment("Assigned on first execution"),
		field.Int("attempts").
			Default(0),

		field.Enum("approval").
			Values("approved", "rejected").
			Optional().
			Nillable().
			Comment("Orthogonal to status; gates and rework only"),
		field.Text("approval_feedback").
			Optional(),
		field.String("skip_reason").
			Optional(),

		field.Bool("needs_rework").
			Default(false),
		field.Text("previous_output").
			Optional().
			Nillable().
			Comment("Kept when rework is requested"),

		field.JSON("trace", map[string]interface{}{}).
			Optional().
			Comment("ReAct trace: steps, totals, final answer"),

		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("steps").
			Field("story_id").
			Unique().
			Required().
			Immutable(),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("story_id", "order_index").
			Unique(),
		index.Fields("story_id", "wave"),
		index.Fields("story_id", "status"),
	}
}
