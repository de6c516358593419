// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "chat_message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "story_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_steps_chat_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[4]},
				RefColumns: []*schema.Column{StepsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "chat_messages_stories_chat_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[5]},
				RefColumns: []*schema.Column{StoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_story_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5], ChatMessagesColumns[3]},
			},
			{
				Name:    "chatmessage_step_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[4]},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "wave", Type: field.TypeInt, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "capability", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "depends_on", Type: field.TypeJSON, Nullable: true},
		{Name: "input", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled", "rejected", "skipped"}, Default: "pending"},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "approval", Type: field.TypeEnum, Nullable: true, Enums: []string{"approved", "rejected"}},
		{Name: "approval_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "needs_rework", Type: field.TypeBool, Default: false},
		{Name: "previous_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "trace", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "story_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_stories_steps",
				Columns:    []*schema.Column{StepsColumns[22]},
				RefColumns: []*schema.Column{StoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_story_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{StepsColumns[22], StepsColumns[1]},
			},
			{
				Name:    "step_story_id_wave",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[22], StepsColumns[2]},
			},
			{
				Name:    "step_story_id_status",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[22], StepsColumns[11]},
			},
		},
	}
	// StoriesColumns holds the columns for the "stories" table.
	StoriesColumns = []*schema.Column{
		{Name: "story_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "issue_provider", Type: field.TypeString, Nullable: true},
		{Name: "issue_owner", Type: field.TypeString, Nullable: true},
		{Name: "issue_repo", Type: field.TypeString, Nullable: true},
		{Name: "issue_number", Type: field.TypeInt, Nullable: true},
		{Name: "issue_url", Type: field.TypeString, Nullable: true},
		{Name: "repository_path", Type: field.TypeString, Nullable: true},
		{Name: "worktree_path", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "branch", Type: field.TypeString, Nullable: true},
		{Name: "automation_mode", Type: field.TypeEnum, Enums: []string{"assisted", "autonomous"}, Default: "assisted"},
		{Name: "dispatch_target", Type: field.TypeEnum, Enums: []string{"internal", "copilot_cli"}, Default: "internal"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "analyzing", "analyzed", "planning", "planned", "running", "gate_pending", "gate_failed", "failed", "completed", "cancelled"}, Default: "created"},
		{Name: "analyzed_context", Type: field.TypeJSON, Nullable: true},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "current_wave", Type: field.TypeInt, Default: 0},
		{Name: "max_parallelism", Type: field.TypeInt, Default: 4},
		{Name: "gate_mode", Type: field.TypeEnum, Enums: []string{"auto_proceed", "manual_approval"}, Default: "manual_approval"},
		{Name: "last_gate_result", Type: field.TypeJSON, Nullable: true},
		{Name: "pull_request_url", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// StoriesTable holds the schema information for the "stories" table.
	StoriesTable = &schema.Table{
		Name:       "stories",
		Columns:    StoriesColumns,
		PrimaryKey: []*schema.Column{StoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "story_status",
				Unique:  false,
				Columns: []*schema.Column{StoriesColumns[13]},
			},
			{
				Name:    "story_repository_path",
				Unique:  false,
				Columns: []*schema.Column{StoriesColumns[8]},
			},
			{
				Name:    "story_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{StoriesColumns[13], StoriesColumns[22]},
			},
			{
				Name:    "story_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{StoriesColumns[13], StoriesColumns[23]},
			},
		},
	}
	// StoryEventsColumns holds the columns for the "story_events" table.
	StoryEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeInt64, Increment: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "story_id", Type: field.TypeString},
	}
	// StoryEventsTable holds the schema information for the "story_events" table.
	StoryEventsTable = &schema.Table{
		Name:       "story_events",
		Columns:    StoryEventsColumns,
		PrimaryKey: []*schema.Column{StoryEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "story_events_stories_events",
				Columns:    []*schema.Column{StoryEventsColumns[4]},
				RefColumns: []*schema.Column{StoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "storyevent_story_id_event_id",
				Unique:  false,
				Columns: []*schema.Column{StoryEventsColumns[4], StoryEventsColumns[0]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		StepsTable,
		StoriesTable,
		StoryEventsTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = StepsTable
	ChatMessagesTable.ForeignKeys[1].RefTable = StoriesTable
	StepsTable.ForeignKeys[0].RefTable = StoriesTable
	StoryEventsTable.ForeignKeys[0].RefTable = StoriesTable
}
