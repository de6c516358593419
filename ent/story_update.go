// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/johnazariah/aura-sub009/ent/chatmessage"
	"github.com/johnazariah/aura-sub009/ent/predicate"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/ent/storyevent"
)

// StoryUpdate is the builder for updating Story entities.
type StoryUpdate struct {
	config
	hooks    []Hook
	mutation *StoryMutation
}

// Where appends a list predicates to the StoryUpdate builder.
func (_u *StoryUpdate) Where(ps ...predicate.Story) *StoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryUpdate) SetTitle(v string) *StoryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableTitle(v *string) *StoryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StoryUpdate) SetDescription(v string) *StoryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableDescription(v *string) *StoryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StoryUpdate) ClearDescription() *StoryUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIssueProvider sets the "issue_provider" field.
func (_u *StoryUpdate) SetIssueProvider(v string) *StoryUpdate {
	_u.mutation.SetIssueProvider(v)
	return _u
}

// SetNillableIssueProvider sets the "issue_provider" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableIssueProvider(v *string) *StoryUpdate {
	if v != nil {
		_u.SetIssueProvider(*v)
	}
	return _u
}

// ClearIssueProvider clears the value of the "issue_provider" field.
func (_u *StoryUpdate) ClearIssueProvider() *StoryUpdate {
	_u.mutation.ClearIssueProvider()
	return _u
}

// SetIssueOwner sets the "issue_owner" field.
func (_u *StoryUpdate) SetIssueOwner(v string) *StoryUpdate {
	_u.mutation.SetIssueOwner(v)
	return _u
}

// SetNillableIssueOwner sets the "issue_owner" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableIssueOwner(v *string) *StoryUpdate {
	if v != nil {
		_u.SetIssueOwner(*v)
	}
	return _u
}

// ClearIssueOwner clears the value of the "issue_owner" field.
func (_u *StoryUpdate) ClearIssueOwner() *StoryUpdate {
	_u.mutation.ClearIssueOwner()
	return _u
}

// SetIssueRepo sets the "issue_repo" field.
func (_u *StoryUpdate) SetIssueRepo(v string) *StoryUpdate {
	_u.mutation.SetIssueRepo(v)
	return _u
}

// SetNillableIssueRepo sets the "issue_repo" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableIssueRepo(v *string) *StoryUpdate {
	if v != nil {
		_u.SetIssueRepo(*v)
	}
	return _u
}

// ClearIssueRepo clears the value of the "issue_repo" field.
func (_u *StoryUpdate) ClearIssueRepo() *StoryUpdate {
	_u.mutation.ClearIssueRepo()
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *StoryUpdate) SetIssueNumber(v int) *StoryUpdate {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableIssueNumber(v *int) *StoryUpdate {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *StoryUpdate) AddIssueNumber(v int) *StoryUpdate {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (_u *StoryUpdate) ClearIssueNumber() *StoryUpdate {
	_u.mutation.ClearIssueNumber()
	return _u
}

// SetIssueURL sets the "issue_url" field.
func (_u *StoryUpdate) SetIssueURL(v string) *StoryUpdate {
	_u.mutation.SetIssueURL(v)
	return _u
}

// SetNillableIssueURL sets the "issue_url" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableIssueURL(v *string) *StoryUpdate {
	if v != nil {
		_u.SetIssueURL(*v)
	}
	return _u
}

// ClearIssueURL clears the value of the "issue_url" field.
func (_u *StoryUpdate) ClearIssueURL() *StoryUpdate {
	_u.mutation.ClearIssueURL()
	return _u
}

// SetRepositoryPath sets the "repository_path" field.
func (_u *StoryUpdate) SetRepositoryPath(v string) *StoryUpdate {
	_u.mutation.SetRepositoryPath(v)
	return _u
}

// SetNillableRepositoryPath sets the "repository_path" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableRepositoryPath(v *string) *StoryUpdate {
	if v != nil {
		_u.SetRepositoryPath(*v)
	}
	return _u
}

// ClearRepositoryPath clears the value of the "repository_path" field.
func (_u *StoryUpdate) ClearRepositoryPath() *StoryUpdate {
	_u.mutation.ClearRepositoryPath()
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *StoryUpdate) SetWorktreePath(v string) *StoryUpdate {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableWorktreePath(v *string) *StoryUpdate {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (_u *StoryUpdate) ClearWorktreePath() *StoryUpdate {
	_u.mutation.ClearWorktreePath()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *StoryUpdate) SetBranch(v string) *StoryUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableBranch(v *string) *StoryUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *StoryUpdate) ClearBranch() *StoryUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// SetAutomationMode sets the "automation_mode" field.
func (_u *StoryUpdate) SetAutomationMode(v story.AutomationMode) *StoryUpdate {
	_u.mutation.SetAutomationMode(v)
	return _u
}

// SetNillableAutomationMode sets the "automation_mode" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableAutomationMode(v *story.AutomationMode) *StoryUpdate {
	if v != nil {
		_u.SetAutomationMode(*v)
	}
	return _u
}

// SetDispatchTarget sets the "dispatch_target" field.
func (_u *StoryUpdate) SetDispatchTarget(v story.DispatchTarget) *StoryUpdate {
	_u.mutation.SetDispatchTarget(v)
	return _u
}

// SetNillableDispatchTarget sets the "dispatch_target" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableDispatchTarget(v *story.DispatchTarget) *StoryUpdate {
	if v != nil {
		_u.SetDispatchTarget(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StoryUpdate) SetStatus(v story.Status) *StoryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableStatus(v *story.Status) *StoryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnalyzedContext sets the "analyzed_context" field.
func (_u *StoryUpdate) SetAnalyzedContext(v map[string]interface{}) *StoryUpdate {
	_u.mutation.SetAnalyzedContext(v)
	return _u
}

// ClearAnalyzedContext clears the value of the "analyzed_context" field.
func (_u *StoryUpdate) ClearAnalyzedContext() *StoryUpdate {
	_u.mutation.ClearAnalyzedContext()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *StoryUpdate) SetPlan(v map[string]interface{}) *StoryUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *StoryUpdate) ClearPlan() *StoryUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetCurrentWave sets the "current_wave" field.
func (_u *StoryUpdate) SetCurrentWave(v int) *StoryUpdate {
	_u.mutation.ResetCurrentWave()
	_u.mutation.SetCurrentWave(v)
	return _u
}

// SetNillableCurrentWave sets the "current_wave" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableCurrentWave(v *int) *StoryUpdate {
	if v != nil {
		_u.SetCurrentWave(*v)
	}
	return _u
}

// AddCurrentWave adds value to the "current_wave" field.
func (_u *StoryUpdate) AddCurrentWave(v int) *StoryUpdate {
	_u.mutation.AddCurrentWave(v)
	return _u
}

// SetMaxParallelism sets the "max_parallelism" field.
func (_u *StoryUpdate) SetMaxParallelism(v int) *StoryUpdate {
	_u.mutation.ResetMaxParallelism()
	_u.mutation.SetMaxParallelism(v)
	return _u
}

// SetNillableMaxParallelism sets the "max_parallelism" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableMaxParallelism(v *int) *StoryUpdate {
	if v != nil {
		_u.SetMaxParallelism(*v)
	}
	return _u
}

// AddMaxParallelism adds value to the "max_parallelism" field.
func (_u *StoryUpdate) AddMaxParallelism(v int) *StoryUpdate {
	_u.mutation.AddMaxParallelism(v)
	return _u
}

// SetGateMode sets the "gate_mode" field.
func (_u *StoryUpdate) SetGateMode(v story.GateMode) *StoryUpdate {
	_u.mutation.SetGateMode(v)
	return _u
}

// SetNillableGateMode sets the "gate_mode" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableGateMode(v *story.GateMode) *StoryUpdate {
	if v != nil {
		_u.SetGateMode(*v)
	}
	return _u
}

// SetLastGateResult sets the "last_gate_result" field.
func (_u *StoryUpdate) SetLastGateResult(v map[string]interface{}) *StoryUpdate {
	_u.mutation.SetLastGateResult(v)
	return _u
}

// ClearLastGateResult clears the value of the "last_gate_result" field.
func (_u *StoryUpdate) ClearLastGateResult() *StoryUpdate {
	_u.mutation.ClearLastGateResult()
	return _u
}

// SetPullRequestURL sets the "pull_request_url" field.
func (_u *StoryUpdate) SetPullRequestURL(v string) *StoryUpdate {
	_u.mutation.SetPullRequestURL(v)
	return _u
}

// SetNillablePullRequestURL sets the "pull_request_url" field if the given value is not nil.
func (_u *StoryUpdate) SetNillablePullRequestURL(v *string) *StoryUpdate {
	if v != nil {
		_u.SetPullRequestURL(*v)
	}
	return _u
}

// ClearPullRequestURL clears the value of the "pull_request_url" field.
func (_u *StoryUpdate) ClearPullRequestURL() *StoryUpdate {
	_u.mutation.ClearPullRequestURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StoryUpdate) SetErrorMessage(v string) *StoryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableErrorMessage(v *string) *StoryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StoryUpdate) ClearErrorMessage() *StoryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StoryUpdate) SetUpdatedAt(v time.Time) *StoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StoryUpdate) SetCompletedAt(v time.Time) *StoryUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableCompletedAt(v *time.Time) *StoryUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StoryUpdate) ClearCompletedAt() *StoryUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *StoryUpdate) AddStepIDs(ids ...string) *StoryUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *StoryUpdate) AddSteps(v ...*Step) *StoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *StoryUpdate) AddChatMessageIDs(ids ...string) *StoryUpdate {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *StoryUpdate) AddChatMessages(v ...*ChatMessage) *StoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the StoryEvent entity by IDs.
func (_u *StoryUpdate) AddEventIDs(ids ...int64) *StoryUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the StoryEvent entity.
func (_u *StoryUpdate) AddEvents(v ...*StoryEvent) *StoryUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the StoryMutation object of the builder.
func (_u *StoryUpdate) Mutation() *StoryMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *StoryUpdate) ClearSteps() *StoryUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *StoryUpdate) RemoveStepIDs(ids ...string) *StoryUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *StoryUpdate) RemoveSteps(v ...*Step) *StoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *StoryUpdate) ClearChatMessages() *StoryUpdate {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *StoryUpdate) RemoveChatMessageIDs(ids ...string) *StoryUpdate {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *StoryUpdate) RemoveChatMessages(v ...*ChatMessage) *StoryUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// ClearEvents clears all "events" edges to the StoryEvent entity.
func (_u *StoryUpdate) ClearEvents() *StoryUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to StoryEvent entities by IDs.
func (_u *StoryUpdate) RemoveEventIDs(ids ...int64) *StoryUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to StoryEvent entities.
func (_u *StoryUpdate) RemoveEvents(v ...*StoryEvent) *StoryUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := story.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryUpdate) check() error {
	if v, ok := _u.mutation.AutomationMode(); ok {
		if err := story.AutomationModeValidator(v); err != nil {
			return &ValidationError{Name: "automation_mode", err: fmt.Errorf(`ent: validator failed for field "Story.automation_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DispatchTarget(); ok {
		if err := story.DispatchTargetValidator(v); err != nil {
			return &ValidationError{Name: "dispatch_target", err: fmt.Errorf(`ent: validator failed for field "Story.dispatch_target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := story.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Story.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GateMode(); ok {
		if err := story.GateModeValidator(v); err != nil {
			return &ValidationError{Name: "gate_mode", err: fmt.Errorf(`ent: validator failed for field "Story.gate_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(story.Table, story.Columns, sqlgraph.NewFieldSpec(story.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(story.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(story.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IssueProvider(); ok {
		_spec.SetField(story.FieldIssueProvider, field.TypeString, value)
	}
	if _u.mutation.IssueProviderCleared() {
		_spec.ClearField(story.FieldIssueProvider, field.TypeString)
	}
	if value, ok := _u.mutation.IssueOwner(); ok {
		_spec.SetField(story.FieldIssueOwner, field.TypeString, value)
	}
	if _u.mutation.IssueOwnerCleared() {
		_spec.ClearField(story.FieldIssueOwner, field.TypeString)
	}
	if value, ok := _u.mutation.IssueRepo(); ok {
		_spec.SetField(story.FieldIssueRepo, field.TypeString, value)
	}
	if _u.mutation.IssueRepoCleared() {
		_spec.ClearField(story.FieldIssueRepo, field.TypeString)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(story.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(story.FieldIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.IssueNumberCleared() {
		_spec.ClearField(story.FieldIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.IssueURL(); ok {
		_spec.SetField(story.FieldIssueURL, field.TypeString, value)
	}
	if _u.mutation.IssueURLCleared() {
		_spec.ClearField(story.FieldIssueURL, field.TypeString)
	}
	if value, ok := _u.mutation.RepositoryPath(); ok {
		_spec.SetField(story.FieldRepositoryPath, field.TypeString, value)
	}
	if _u.mutation.RepositoryPathCleared() {
		_spec.ClearField(story.FieldRepositoryPath, field.TypeString)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(story.FieldWorktreePath, field.TypeString, value)
	}
	if _u.mutation.WorktreePathCleared() {
		_spec.ClearField(story.FieldWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(story.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(story.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.AutomationMode(); ok {
		_spec.SetField(story.FieldAutomationMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DispatchTarget(); ok {
		_spec.SetField(story.FieldDispatchTarget, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(story.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalyzedContext(); ok {
		_spec.SetField(story.FieldAnalyzedContext, field.TypeJSON, value)
	}
	if _u.mutation.AnalyzedContextCleared() {
		_spec.ClearField(story.FieldAnalyzedContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(story.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(story.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentWave(); ok {
		_spec.SetField(story.FieldCurrentWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentWave(); ok {
		_spec.AddField(story.FieldCurrentWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxParallelism(); ok {
		_spec.SetField(story.FieldMaxParallelism, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxParallelism(); ok {
		_spec.AddField(story.FieldMaxParallelism, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GateMode(); ok {
		_spec.SetField(story.FieldGateMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastGateResult(); ok {
		_spec.SetField(story.FieldLastGateResult, field.TypeJSON, value)
	}
	if _u.mutation.LastGateResultCleared() {
		_spec.ClearField(story.FieldLastGateResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.PullRequestURL(); ok {
		_spec.SetField(story.FieldPullRequestURL, field.TypeString, value)
	}
	if _u.mutation.PullRequestURLCleared() {
		_spec.ClearField(story.FieldPullRequestURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(story.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(story.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(story.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(story.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(story.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.StepsTable,
			Columns: []string{story.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.StepsTable,
			Columns: []string{story.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.StepsTable,
			Columns: []string{story.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChatMessagesTable,
			Columns: []string{story.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChatMessagesTable,
			Columns: []string{story.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChatMessagesTable,
			Columns: []string{story.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.EventsTable,
			Columns: []string{story.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.EventsTable,
			Columns: []string{story.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.EventsTable,
			Columns: []string{story.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{story.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryUpdateOne is the builder for updating a single Story entity.
type StoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryMutation
}

// SetTitle sets the "title" field.
func (_u *StoryUpdateOne) SetTitle(v string) *StoryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableTitle(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StoryUpdateOne) SetDescription(v string) *StoryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableDescription(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StoryUpdateOne) ClearDescription() *StoryUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIssueProvider sets the "issue_provider" field.
func (_u *StoryUpdateOne) SetIssueProvider(v string) *StoryUpdateOne {
	_u.mutation.SetIssueProvider(v)
	return _u
}

// SetNillableIssueProvider sets the "issue_provider" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableIssueProvider(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetIssueProvider(*v)
	}
	return _u
}

// ClearIssueProvider clears the value of the "issue_provider" field.
func (_u *StoryUpdateOne) ClearIssueProvider() *StoryUpdateOne {
	_u.mutation.ClearIssueProvider()
	return _u
}

// SetIssueOwner sets the "issue_owner" field.
func (_u *StoryUpdateOne) SetIssueOwner(v string) *StoryUpdateOne {
	_u.mutation.SetIssueOwner(v)
	return _u
}

// SetNillableIssueOwner sets the "issue_owner" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableIssueOwner(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetIssueOwner(*v)
	}
	return _u
}

// ClearIssueOwner clears the value of the "issue_owner" field.
func (_u *StoryUpdateOne) ClearIssueOwner() *StoryUpdateOne {
	_u.mutation.ClearIssueOwner()
	return _u
}

// SetIssueRepo sets the "issue_repo" field.
func (_u *StoryUpdateOne) SetIssueRepo(v string) *StoryUpdateOne {
	_u.mutation.SetIssueRepo(v)
	return _u
}

// SetNillableIssueRepo sets the "issue_repo" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableIssueRepo(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetIssueRepo(*v)
	}
	return _u
}

// ClearIssueRepo clears the value of the "issue_repo" field.
func (_u *StoryUpdateOne) ClearIssueRepo() *StoryUpdateOne {
	_u.mutation.ClearIssueRepo()
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *StoryUpdateOne) SetIssueNumber(v int) *StoryUpdateOne {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableIssueNumber(v *int) *StoryUpdateOne {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *StoryUpdateOne) AddIssueNumber(v int) *StoryUpdateOne {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (_u *StoryUpdateOne) ClearIssueNumber() *StoryUpdateOne {
	_u.mutation.ClearIssueNumber()
	return _u
}

// SetIssueURL sets the "issue_url" field.
func (_u *StoryUpdateOne) SetIssueURL(v string) *StoryUpdateOne {
	_u.mutation.SetIssueURL(v)
	return _u
}

// SetNillableIssueURL sets the "issue_url" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableIssueURL(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetIssueURL(*v)
	}
	return _u
}

// ClearIssueURL clears the value of the "issue_url" field.
func (_u *StoryUpdateOne) ClearIssueURL() *StoryUpdateOne {
	_u.mutation.ClearIssueURL()
	return _u
}

// SetRepositoryPath sets the "repository_path" field.
func (_u *StoryUpdateOne) SetRepositoryPath(v string) *StoryUpdateOne {
	_u.mutation.SetRepositoryPath(v)
	return _u
}

// SetNillableRepositoryPath sets the "repository_path" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableRepositoryPath(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetRepositoryPath(*v)
	}
	return _u
}

// ClearRepositoryPath clears the value of the "repository_path" field.
func (_u *StoryUpdateOne) ClearRepositoryPath() *StoryUpdateOne {
	_u.mutation.ClearRepositoryPath()
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *StoryUpdateOne) SetWorktreePath(v string) *StoryUpdateOne {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableWorktreePath(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (_u *StoryUpdateOne) ClearWorktreePath() *StoryUpdateOne {
	_u.mutation.ClearWorktreePath()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *StoryUpdateOne) SetBranch(v string) *StoryUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableBranch(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *StoryUpdateOne) ClearBranch() *StoryUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// SetAutomationMode sets the "automation_mode" field.
func (_u *StoryUpdateOne) SetAutomationMode(v story.AutomationMode) *StoryUpdateOne {
	_u.mutation.SetAutomationMode(v)
	return _u
}

// SetNillableAutomationMode sets the "automation_mode" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableAutomationMode(v *story.AutomationMode) *StoryUpdateOne {
	if v != nil {
		_u.SetAutomationMode(*v)
	}
	return _u
}

// SetDispatchTarget sets the "dispatch_target" field.
func (_u *StoryUpdateOne) SetDispatchTarget(v story.DispatchTarget) *StoryUpdateOne {
	_u.mutation.SetDispatchTarget(v)
	return _u
}

// SetNillableDispatchTarget sets the "dispatch_target" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableDispatchTarget(v *story.DispatchTarget) *StoryUpdateOne {
	if v != nil {
		_u.SetDispatchTarget(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StoryUpdateOne) SetStatus(v story.Status) *StoryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableStatus(v *story.Status) *StoryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnalyzedContext sets the "analyzed_context" field.
func (_u *StoryUpdateOne) SetAnalyzedContext(v map[string]interface{}) *StoryUpdateOne {
	_u.mutation.SetAnalyzedContext(v)
	return _u
}

// ClearAnalyzedContext clears the value of the "analyzed_context" field.
func (_u *StoryUpdateOne) ClearAnalyzedContext() *StoryUpdateOne {
	_u.mutation.ClearAnalyzedContext()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *StoryUpdateOne) SetPlan(v map[string]interface{}) *StoryUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *StoryUpdateOne) ClearPlan() *StoryUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetCurrentWave sets the "current_wave" field.
func (_u *StoryUpdateOne) SetCurrentWave(v int) *StoryUpdateOne {
	_u.mutation.ResetCurrentWave()
	_u.mutation.SetCurrentWave(v)
	return _u
}

// SetNillableCurrentWave sets the "current_wave" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableCurrentWave(v *int) *StoryUpdateOne {
	if v != nil {
		_u.SetCurrentWave(*v)
	}
	return _u
}

// AddCurrentWave adds value to the "current_wave" field.
func (_u *StoryUpdateOne) AddCurrentWave(v int) *StoryUpdateOne {
	_u.mutation.AddCurrentWave(v)
	return _u
}

// SetMaxParallelism sets the "max_parallelism" field.
func (_u *StoryUpdateOne) SetMaxParallelism(v int) *StoryUpdateOne {
	_u.mutation.ResetMaxParallelism()
	_u.mutation.SetMaxParallelism(v)
	return _u
}

// SetNillableMaxParallelism sets the "max_parallelism" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableMaxParallelism(v *int) *StoryUpdateOne {
	if v != nil {
		_u.SetMaxParallelism(*v)
	}
	return _u
}

// AddMaxParallelism adds value to the "max_parallelism" field.
func (_u *StoryUpdateOne) AddMaxParallelism(v int) *StoryUpdateOne {
	_u.mutation.AddMaxParallelism(v)
	return _u
}

// SetGateMode sets the "gate_mode" field.
func (_u *StoryUpdateOne) SetGateMode(v story.GateMode) *StoryUpdateOne {
	_u.mutation.SetGateMode(v)
	return _u
}

// SetNillableGateMode sets the "gate_mode" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableGateMode(v *story.GateMode) *StoryUpdateOne {
	if v != nil {
		_u.SetGateMode(*v)
	}
	return _u
}

// SetLastGateResult sets the "last_gate_result" field.
func (_u *StoryUpdateOne) SetLastGateResult(v map[string]interface{}) *StoryUpdateOne {
	_u.mutation.SetLastGateResult(v)
	return _u
}

// ClearLastGateResult clears the value of the "last_gate_result" field.
func (_u *StoryUpdateOne) ClearLastGateResult() *StoryUpdateOne {
	_u.mutation.ClearLastGateResult()
	return _u
}

// SetPullRequestURL sets the "pull_request_url" field.
func (_u *StoryUpdateOne) SetPullRequestURL(v string) *StoryUpdateOne {
	_u.mutation.SetPullRequestURL(v)
	return _u
}

// SetNillablePullRequestURL sets the "pull_request_url" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillablePullRequestURL(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetPullRequestURL(*v)
	}
	return _u
}

// ClearPullRequestURL clears the value of the "pull_request_url" field.
func (_u *StoryUpdateOne) ClearPullRequestURL() *StoryUpdateOne {
	_u.mutation.ClearPullRequestURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StoryUpdateOne) SetErrorMessage(v string) *StoryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableErrorMessage(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StoryUpdateOne) ClearErrorMessage() *StoryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StoryUpdateOne) SetUpdatedAt(v time.Time) *StoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StoryUpdateOne) SetCompletedAt(v time.Time) *StoryUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableCompletedAt(v *time.Time) *StoryUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StoryUpdateOne) ClearCompletedAt() *StoryUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *StoryUpdateOne) AddStepIDs(ids ...string) *StoryUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *StoryUpdateOne) AddSteps(v ...*Step) *StoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *StoryUpdateOne) AddChatMessageIDs(ids ...string) *StoryUpdateOne {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *StoryUpdateOne) AddChatMessages(v ...*ChatMessage) *StoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the StoryEvent entity by IDs.
func (_u *StoryUpdateOne) AddEventIDs(ids ...int64) *StoryUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the StoryEvent entity.
func (_u *StoryUpdateOne) AddEvents(v ...*StoryEvent) *StoryUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the StoryMutation object of the builder.
func (_u *StoryUpdateOne) Mutation() *StoryMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *StoryUpdateOne) ClearSteps() *StoryUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *StoryUpdateOne) RemoveStepIDs(ids ...string) *StoryUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *StoryUpdateOne) RemoveSteps(v ...*Step) *StoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *StoryUpdateOne) ClearChatMessages() *StoryUpdateOne {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *StoryUpdateOne) RemoveChatMessageIDs(ids ...string) *StoryUpdateOne {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *StoryUpdateOne) RemoveChatMessages(v ...*ChatMessage) *StoryUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// ClearEvents clears all "events" edges to the StoryEvent entity.
func (_u *StoryUpdateOne) ClearEvents() *StoryUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to StoryEvent entities by IDs.
func (_u *StoryUpdateOne) RemoveEventIDs(ids ...int64) *StoryUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to StoryEvent entities.
func (_u *StoryUpdateOne) RemoveEvents(v ...*StoryEvent) *StoryUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the StoryUpdate builder.
func (_u *StoryUpdateOne) Where(ps ...predicate.Story) *StoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryUpdateOne) Select(field string, fields ...string) *StoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Story entity.
func (_u *StoryUpdateOne) Save(ctx context.Context) (*Story, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryUpdateOne) SaveX(ctx context.Context) *Story {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := story.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryUpdateOne) check() error {
	if v, ok := _u.mutation.AutomationMode(); ok {
		if err := story.AutomationModeValidator(v); err != nil {
			return &ValidationError{Name: "automation_mode", err: fmt.Errorf(`ent: validator failed for field "Story.automation_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DispatchTarget(); ok {
		if err := story.DispatchTargetValidator(v); err != nil {
			return &ValidationError{Name: "dispatch_target", err: fmt.Errorf(`ent: validator failed for field "Story.dispatch_target": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := story.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Story.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GateMode(); ok {
		if err := story.GateModeValidator(v); err != nil {
			return &ValidationError{Name: "gate_mode", err: fmt.Errorf(`ent: validator failed for field "Story.gate_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryUpdateOne) sqlSave(ctx context.Context) (_node *Story, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(story.Table, story.Columns, sqlgraph.NewFieldSpec(story.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Story.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, story.FieldID)
		for _, f := range fields {
			if !story.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != story.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(story.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(story.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IssueProvider(); ok {
		_spec.SetField(story.FieldIssueProvider, field.TypeString, value)
	}
	if _u.mutation.IssueProviderCleared() {
		_spec.ClearField(story.FieldIssueProvider, field.TypeString)
	}
	if value, ok := _u.mutation.IssueOwner(); ok {
		_spec.SetField(story.FieldIssueOwner, field.TypeString, value)
	}
	if _u.mutation.IssueOwnerCleared() {
		_spec.ClearField(story.FieldIssueOwner, field.TypeString)
	}
	if value, ok := _u.mutation.IssueRepo(); ok {
		_spec.SetField(story.FieldIssueRepo, field.TypeString, value)
	}
	if _u.mutation.IssueRepoCleared() {
		_spec.ClearField(story.FieldIssueRepo, field.TypeString)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(story.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(story.FieldIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.IssueNumberCleared() {
		_spec.ClearField(story.FieldIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.IssueURL(); ok {
		_spec.SetField(story.FieldIssueURL, field.TypeString, value)
	}
	if _u.mutation.IssueURLCleared() {
		_spec.ClearField(story.FieldIssueURL, field.TypeString)
	}
	if value, ok := _u.mutation.RepositoryPath(); ok {
		_spec.SetField(story.FieldRepositoryPath, field.TypeString, value)
	}
	if _u.mutation.RepositoryPathCleared() {
		_spec.ClearField(story.FieldRepositoryPath, field.TypeString)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(story.FieldWorktreePath, field.TypeString, value)
	}
	if _u.mutation.WorktreePathCleared() {
		_spec.ClearField(story.FieldWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(story.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(story.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.AutomationMode(); ok {
		_spec.SetField(story.FieldAutomationMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DispatchTarget(); ok {
		_spec.SetField(story.FieldDispatchTarget, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(story.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnalyzedContext(); ok {
		_spec.SetField(story.FieldAnalyzedContext, field.TypeJSON, value)
	}
	if _u.mutation.AnalyzedContextCleared() {
		_spec.ClearField(story.FieldAnalyzedContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(story.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(story.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentWave(); ok {
		_spec.SetField(story.FieldCurrentWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentWave(); ok {
		_spec.AddField(story.FieldCurrentWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxParallelism(); ok {
		_spec.SetField(story.FieldMaxParallelism, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxParallelism(); ok {
		_spec.AddField(story.FieldMaxParallelism, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GateMode(); ok {
		_spec.SetField(story.FieldGateMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastGateResult(); ok {
		_spec.SetField(story.FieldLastGateResult, field.TypeJSON, value)
	}
	if _u.mutation.LastGateResultCleared() {
		_spec.ClearField(story.FieldLastGateResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.PullRequestURL(); ok {
		_spec.SetField(story.FieldPullRequestURL, field.TypeString, value)
	}
	if _u.mutation.PullRequestURLCleared() {
		_spec.ClearField(story.FieldPullRequestURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(story.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(story.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(story.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(story.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(story.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.StepsTable,
			Columns: []string{story.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.StepsTable,
			Columns: []string{story.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.StepsTable,
			Columns: []string{story.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChatMessagesTable,
			Columns: []string{story.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChatMessagesTable,
			Columns: []string{story.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.ChatMessagesTable,
			Columns: []string{story.ChatMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.EventsTable,
			Columns: []string{story.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.EventsTable,
			Columns: []string{story.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   story.EventsTable,
			Columns: []string{story.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(storyevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Story{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{story.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
