// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/johnazariah/aura-sub009/ent/story"
)

// Story is the model entity for the Story schema.
type Story struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// e.g. 'github'
	IssueProvider *string `json:"issue_provider,omitempty"`
	// IssueOwner holds the value of the "issue_owner" field.
	IssueOwner *string `json:"issue_owner,omitempty"`
	// IssueRepo holds the value of the "issue_repo" field.
	IssueRepo *string `json:"issue_repo,omitempty"`
	// IssueNumber holds the value of the "issue_number" field.
	IssueNumber *int `json:"issue_number,omitempty"`
	// IssueURL holds the value of the "issue_url" field.
	IssueURL *string `json:"issue_url,omitempty"`
	// Canonical repository the worktree is created from
	RepositoryPath string `json:"repository_path,omitempty"`
	// Exclusive to this story; never shared
	WorktreePath *string `json:"worktree_path,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// AutomationMode holds the value of the "automation_mode" field.
	AutomationMode story.AutomationMode `json:"automation_mode,omitempty"`
	// DispatchTarget holds the value of the "dispatch_target" field.
	DispatchTarget story.DispatchTarget `json:"dispatch_target,omitempty"`
	// Status holds the value of the "status" field.
	Status story.Status `json:"status,omitempty"`
	// Opaque output of the analysis agent
	AnalyzedContext map[string]interface{} `json:"analyzed_context,omitempty"`
	// Raw planner output; steps are the normalized form
	Plan map[string]interface{} `json:"plan,omitempty"`
	// CurrentWave holds the value of the "current_wave" field.
	CurrentWave int `json:"current_wave,omitempty"`
	// MaxParallelism holds the value of the "max_parallelism" field.
	MaxParallelism int `json:"max_parallelism,omitempty"`
	// GateMode holds the value of the "gate_mode" field.
	GateMode story.GateMode `json:"gate_mode,omitempty"`
	// LastGateResult holds the value of the "last_gate_result" field.
	LastGateResult map[string]interface{} `json:"last_gate_result,omitempty"`
	// Set on successful Finalize only
	PullRequestURL *string `json:"pull_request_url,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StoryQuery when eager-loading is set.
	Edges        StoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StoryEdges holds the relations/edges for other nodes in the graph.
type StoryEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*Step `json:"steps,omitempty"`
	// ChatMessages holds the value of the chat_messages edge.
	ChatMessages []*ChatMessage `json:"chat_messages,omitempty"`
	// Events holds the value of the events edge.
	Events []*StoryEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e StoryEdges) StepsOrErr() ([]*Step, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// ChatMessagesOrErr returns the ChatMessages value or an error if the edge
// was not loaded in eager-loading.
func (e StoryEdges) ChatMessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[1] {
		return e.ChatMessages, nil
	}
	return nil, &NotLoadedError{edge: "chat_messages"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e StoryEdges) EventsOrErr() ([]*StoryEvent, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Story) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case story.FieldAnalyzedContext, story.FieldPlan, story.FieldLastGateResult:
			values[i] = new([]byte)
		case story.FieldIssueNumber, story.FieldCurrentWave, story.FieldMaxParallelism:
			values[i] = new(sql.NullInt64)
		case story.FieldID, story.FieldTitle, story.FieldDescription, story.FieldIssueProvider, story.FieldIssueOwner, story.FieldIssueRepo, story.FieldIssueURL, story.FieldRepositoryPath, story.FieldWorktreePath, story.FieldBranch, story.FieldAutomationMode, story.FieldDispatchTarget, story.FieldStatus, story.FieldGateMode, story.FieldPullRequestURL, story.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case story.FieldCreatedAt, story.FieldUpdatedAt, story.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Story fields.
func (_m *Story) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case story.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case story.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case story.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case story.FieldIssueProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_provider", values[i])
			} else if value.Valid {
				_m.IssueProvider = new(string)
				*_m.IssueProvider = value.String
			}
		case story.FieldIssueOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_owner", values[i])
			} else if value.Valid {
				_m.IssueOwner = new(string)
				*_m.IssueOwner = value.String
			}
		case story.FieldIssueRepo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_repo", values[i])
			} else if value.Valid {
				_m.IssueRepo = new(string)
				*_m.IssueRepo = value.String
			}
		case story.FieldIssueNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field issue_number", values[i])
			} else if value.Valid {
				_m.IssueNumber = new(int)
				*_m.IssueNumber = int(value.Int64)
			}
		case story.FieldIssueURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_url", values[i])
			} else if value.Valid {
				_m.IssueURL = new(string)
				*_m.IssueURL = value.String
			}
		case story.FieldRepositoryPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repository_path", values[i])
			} else if value.Valid {
				_m.RepositoryPath = value.String
			}
		case story.FieldWorktreePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worktree_path", values[i])
			} else if value.Valid {
				_m.WorktreePath = new(string)
				*_m.WorktreePath = value.String
			}
		case story.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case story.FieldAutomationMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field automation_mode", values[i])
			} else if value.Valid {
				_m.AutomationMode = story.AutomationMode(value.String)
			}
		case story.FieldDispatchTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dispatch_target", values[i])
			} else if value.Valid {
				_m.DispatchTarget = story.DispatchTarget(value.String)
			}
		case story.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = story.Status(value.String)
			}
		case story.FieldAnalyzedContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analyzed_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnalyzedContext); err != nil {
					return fmt.Errorf("unmarshal field analyzed_context: %w", err)
				}
			}
		case story.FieldPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Plan); err != nil {
					return fmt.Errorf("unmarshal field plan: %w", err)
				}
			}
		case story.FieldCurrentWave:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_wave", values[i])
			} else if value.Valid {
				_m.CurrentWave = int(value.Int64)
			}
		case story.FieldMaxParallelism:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_parallelism", values[i])
			} else if value.Valid {
				_m.MaxParallelism = int(value.Int64)
			}
		case story.FieldGateMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate_mode", values[i])
			} else if value.Valid {
				_m.GateMode = story.GateMode(value.String)
			}
		case story.FieldLastGateResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field last_gate_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LastGateResult); err != nil {
					return fmt.Errorf("unmarshal field last_gate_result: %w", err)
				}
			}
		case story.FieldPullRequestURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pull_request_url", values[i])
			} else if value.Valid {
				_m.PullRequestURL = new(string)
				*_m.PullRequestURL = value.String
			}
		case story.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case story.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case story.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case story.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Story.
// This includes values selected through modifiers, order, etc.
func (_m *Story) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the Story entity.
func (_m *Story) QuerySteps() *StepQuery {
	return NewStoryClient(_m.config).QuerySteps(_m)
}

// QueryChatMessages queries the "chat_messages" edge of the Story entity.
func (_m *Story) QueryChatMessages() *ChatMessageQuery {
	return NewStoryClient(_m.config).QueryChatMessages(_m)
}

// QueryEvents queries the "events" edge of the Story entity.
func (_m *Story) QueryEvents() *StoryEventQuery {
	return NewStoryClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Story.
// Note that you need to call Story.Unwrap() before calling this method if this Story
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Story) Update() *StoryUpdateOne {
	return NewStoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Story entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Story) Unwrap() *Story {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Story is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Story) String() string {
	var builder strings.Builder
	builder.WriteString("Story(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.IssueProvider; v != nil {
		builder.WriteString("issue_provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IssueOwner; v != nil {
		builder.WriteString("issue_owner=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IssueRepo; v != nil {
		builder.WriteString("issue_repo=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IssueNumber; v != nil {
		builder.WriteString("issue_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.IssueURL; v != nil {
		builder.WriteString("issue_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("repository_path=")
	builder.WriteString(_m.RepositoryPath)
	builder.WriteString(", ")
	if v := _m.WorktreePath; v != nil {
		builder.WriteString("worktree_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("automation_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutomationMode))
	builder.WriteString(", ")
	builder.WriteString("dispatch_target=")
	builder.WriteString(fmt.Sprintf("%v", _m.DispatchTarget))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("analyzed_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalyzedContext))
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteString(", ")
	builder.WriteString("current_wave=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentWave))
	builder.WriteString(", ")
	builder.WriteString("max_parallelism=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxParallelism))
	builder.WriteString(", ")
	builder.WriteString("gate_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.GateMode))
	builder.WriteString(", ")
	builder.WriteString("last_gate_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastGateResult))
	builder.WriteString(", ")
	if v := _m.PullRequestURL; v != nil {
		builder.WriteString("pull_request_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Stories is a parsable slice of Story.
type Stories []*Story
