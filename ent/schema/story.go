package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Story holds the schema definition for the Story entity — one development
// task owning a worktree, a plan, and a conversation.
type Story struct {
	ent.Schema
}

// Fields of the Story.
func (Story) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("story_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),

		// Linked issue (nullable as a unit; set by CreateFromIssue)
		field.String("issue_provider").
			Optional().
			Nillable().
			Comment("e.g. 'github'"),
		field.String("issue_owner").
			Optional().
			Nillable(),
		field.String("issue_repo").
			Optional().
			Nillable(),
		field.Int("issue_number").
			Optional().
			Nillable(),
		field.String("issue_url").
			Optional().
			Nillable(),

		// Workspace
		field.String("repository_path").
			Optional().
			Comment("Canonical repository the worktree is created from"),
		field.String("worktree_path").
			Optional().
			Nillable().
			Unique().
			Comment("Exclusive to this story; never shared"),
		field.String("branch").
			Optional(),

		field.Enum("automation_mode").
			Values("assisted", "autonomous").
			Default("assisted"),
		field.Enum("dispatch_target").
			Values("internal", "copilot_cli").
			Default("internal"),
		field.Enum("status").
			Values("created", "analyzing", "analyzed", "planning", "planned",
				"running", "gate_pending", "gate_failed", "failed",
				"completed", "cancelled").
			Default("created"),

		field.JSON("analyzed_context", map[string]interface{}{}).
			Optional().
			Comment("Opaque output of the analysis agent"),
		field.JSON("plan", map[string]interface{}{}).
			Optional().
			Comment("Raw planner output; steps are the normalized form"),

		field.Int("current_wave").
			Default(0),
		field.Int("max_parallelism").
			Default(4),
		field.Enum("gate_mode").
			Values("auto_proceed", "manual_approval").
			Default("manual_approval"),
		field.JSON("last_gate_result", map[string]interface{}{}).
			Optional(),

		field.String("pull_request_url").
			Optional().
			Nillable().
			Comment("Set on successful Finalize only"),
		field.String("error_message").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Story.
func (Story) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", StoryEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Story.
func (Story) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("repository_path"),
		index.Fields("status", "created_at"),
		index.Fields("status", "updated_at"),
	}
}
