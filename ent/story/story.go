// Code generated by ent, DO NOT EDIT.

package story

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the story type in the database.
	Label = "story"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "story_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldIssueProvider holds the string denoting the issue_provider field in the database.
	FieldIssueProvider = "issue_provider"
	// FieldIssueOwner holds the string denoting the issue_owner field in the database.
	FieldIssueOwner = "issue_owner"
	// FieldIssueRepo holds the string denoting the issue_repo field in the database.
	FieldIssueRepo = "issue_repo"
	// FieldIssueNumber holds the string denoting the issue_number field in the database.
	FieldIssueNumber = "issue_number"
	// FieldIssueURL holds the string denoting the issue_url field in the database.
	FieldIssueURL = "issue_url"
	// FieldRepositoryPath holds the string denoting the repository_path field in the database.
	FieldRepositoryPath = "repository_path"
	// FieldWorktreePath holds the string denoting the worktree_path field in the database.
	FieldWorktreePath = "worktree_path"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldAutomationMode holds the string denoting the automation_mode field in the database.
	FieldAutomationMode = "automation_mode"
	// FieldDispatchTarget holds the string denoting the dispatch_target field in the database.
	FieldDispatchTarget = "dispatch_target"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAnalyzedContext holds the string denoting the analyzed_context field in the database.
	FieldAnalyzedContext = "analyzed_context"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldCurrentWave holds the string denoting the current_wave field in the database.
	FieldCurrentWave = "current_wave"
	// FieldMaxParallelism holds the string denoting the max_parallelism field in the database.
	FieldMaxParallelism = "max_parallelism"
	// FieldGateMode holds the string denoting the gate_mode field in the database.
	FieldGateMode = "gate_mode"
	// FieldLastGateResult holds the string denoting the last_gate_result field in the database.
	FieldLastGateResult = "last_gate_result"
	// FieldPullRequestURL holds the string denoting the pull_request_url field in the database.
	FieldPullRequestURL = "pull_request_url"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeChatMessages holds the string denoting the chat_messages edge name in mutations.
	EdgeChatMessages = "chat_messages"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// StepFieldID holds the string denoting the ID field of the Step.
	StepFieldID = "step_id"
	// ChatMessageFieldID holds the string denoting the ID field of the ChatMessage.
	ChatMessageFieldID = "chat_message_id"
	// StoryEventFieldID holds the string denoting the ID field of the StoryEvent.
	StoryEventFieldID = "event_id"
	// Table holds the table name of the story in the database.
	Table = "stories"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "steps"
	// StepsInverseTable is the table name for the Step entity.
	// It exists in this package in order to avoid circular dependency with the "step" package.
	StepsInverseTable = "steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "story_id"
	// ChatMessagesTable is the table that holds the chat_messages relation/edge.
	ChatMessagesTable = "chat_messages"
	// ChatMessagesInverseTable is the table name for the ChatMessage entity.
	// It exists in this package in order to avoid circular dependency with the "chatmessage" package.
	ChatMessagesInverseTable = "chat_messages"
	// ChatMessagesColumn is the table column denoting the chat_messages relation/edge.
	ChatMessagesColumn = "story_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "story_events"
	// EventsInverseTable is the table name for the StoryEvent entity.
	// It exists in this package in order to avoid circular dependency with the "storyevent" package.
	EventsInverseTable = "story_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "story_id"
)

// Columns holds all SQL columns for story fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldIssueProvider,
	FieldIssueOwner,
	FieldIssueRepo,
	FieldIssueNumber,
	FieldIssueURL,
	FieldRepositoryPath,
	FieldWorktreePath,
	FieldBranch,
	FieldAutomationMode,
	FieldDispatchTarget,
	FieldStatus,
	FieldAnalyzedContext,
	FieldPlan,
	FieldCurrentWave,
	FieldMaxParallelism,
	FieldGateMode,
	FieldLastGateResult,
	FieldPullRequestURL,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrentWave holds the default value on creation for the "current_wave" field.
	DefaultCurrentWave int
	// DefaultMaxParallelism holds the default value on creation for the "max_parallelism" field.
	DefaultMaxParallelism int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AutomationMode defines the type for the "automation_mode" enum field.
type AutomationMode string

// AutomationModeAssisted is the default value of the AutomationMode enum.
const DefaultAutomationMode = AutomationModeAssisted

// AutomationMode values.
const (
	AutomationModeAssisted   AutomationMode = "assisted"
	AutomationModeAutonomous AutomationMode = "autonomous"
)

func (am AutomationMode) String() string {
	return string(am)
}

// AutomationModeValidator is a validator for the "automation_mode" field enum values. It is called by the builders before save.
func AutomationModeValidator(am AutomationMode) error {
	switch am {
	case AutomationModeAssisted, AutomationModeAutonomous:
		return nil
	default:
		return fmt.Errorf("story: invalid enum value for automation_mode field: %q", am)
	}
}

// DispatchTarget defines the type for the "dispatch_target" enum field.
type DispatchTarget string

// DispatchTargetInternal is the default value of the DispatchTarget enum.
const DefaultDispatchTarget = DispatchTargetInternal

// DispatchTarget values.
const (
	DispatchTargetInternal   DispatchTarget = "internal"
	DispatchTargetCopilotCli DispatchTarget = "copilot_cli"
)

func (dt DispatchTarget) String() string {
	return string(dt)
}

// DispatchTargetValidator is a validator for the "dispatch_target" field enum values. It is called by the builders before save.
func DispatchTargetValidator(dt DispatchTarget) error {
	switch dt {
	case DispatchTargetInternal, DispatchTargetCopilotCli:
		return nil
	default:
		return fmt.Errorf("story: invalid enum value for dispatch_target field: %q", dt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated     Status = "created"
	StatusAnalyzing   Status = "analyzing"
	StatusAnalyzed    Status = "analyzed"
	StatusPlanning    Status = "planning"
	StatusPlanned     Status = "planned"
	StatusRunning     Status = "running"
	StatusGatePending Status = "gate_pending"
	StatusGateFailed  Status = "gate_failed"
	StatusFailed      Status = "failed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusAnalyzing, StatusAnalyzed, StatusPlanning, StatusPlanned, StatusRunning, StatusGatePending, StatusGateFailed, StatusFailed, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("story: invalid enum value for status field: %q", s)
	}
}

// GateMode defines the type for the "gate_mode" enum field.
type GateMode string

// GateModeManualApproval is the default value of the GateMode enum.
const DefaultGateMode = GateModeManualApproval

// GateMode values.
const (
	GateModeAutoProceed    GateMode = "auto_proceed"
	GateModeManualApproval GateMode = "manual_approval"
)

func (gm GateMode) String() string {
	return string(gm)
}

// GateModeValidator is a validator for the "gate_mode" field enum values. It is called by the builders before save.
func GateModeValidator(gm GateMode) error {
	switch gm {
	case GateModeAutoProceed, GateModeManualApproval:
		return nil
	default:
		return fmt.Errorf("story: invalid enum value for gate_mode field: %q", gm)
	}
}

// OrderOption defines the ordering options for the Story queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIssueProvider orders the results by the issue_provider field.
func ByIssueProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueProvider, opts...).ToFunc()
}

// ByIssueOwner orders the results by the issue_owner field.
func ByIssueOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueOwner, opts...).ToFunc()
}

// ByIssueRepo orders the results by the issue_repo field.
func ByIssueRepo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueRepo, opts...).ToFunc()
}

// ByIssueNumber orders the results by the issue_number field.
func ByIssueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueNumber, opts...).ToFunc()
}

// ByIssueURL orders the results by the issue_url field.
func ByIssueURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueURL, opts...).ToFunc()
}

// ByRepositoryPath orders the results by the repository_path field.
func ByRepositoryPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepositoryPath, opts...).ToFunc()
}

// ByWorktreePath orders the results by the worktree_path field.
func ByWorktreePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorktreePath, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByAutomationMode orders the results by the automation_mode field.
func ByAutomationMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutomationMode, opts...).ToFunc()
}

// ByDispatchTarget orders the results by the dispatch_target field.
func ByDispatchTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDispatchTarget, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentWave orders the results by the current_wave field.
func ByCurrentWave(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentWave, opts...).ToFunc()
}

// ByMaxParallelism orders the results by the max_parallelism field.
func ByMaxParallelism(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxParallelism, opts...).ToFunc()
}

// ByGateMode orders the results by the gate_mode field.
func ByGateMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGateMode, opts...).ToFunc()
}

// ByPullRequestURL orders the results by the pull_request_url field.
func ByPullRequestURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPullRequestURL, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatMessagesCount orders the results by chat_messages count.
func ByChatMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChatMessagesStep(), opts...)
	}
}

// ByChatMessages orders the results by chat_messages terms.
func ByChatMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, StepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newChatMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatMessagesInverseTable, ChatMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChatMessagesTable, ChatMessagesColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, StoryEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
