// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/johnazariah/aura-sub009/ent/chatmessage"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/ent/storyevent"
)

// StoryCreate is the builder for creating a Story entity.
type StoryCreate struct {
	config
	mutation *StoryMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *StoryCreate) SetTitle(v string) *StoryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StoryCreate) SetDescription(v string) *StoryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StoryCreate) SetNillableDescription(v *string) *StoryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIssueProvider sets the "issue_provider" field.
func (_c *StoryCreate) SetIssueProvider(v string) *StoryCreate {
	_c.mutation.SetIssueProvider(v)
	return _c
}

// SetNillableIssueProvider sets the "issue_provider" field if the given value is not nil.
func (_c *StoryCreate) SetNillableIssueProvider(v *string) *StoryCreate {
	if v != nil {
		_c.SetIssueProvider(*v)
	}
	return _c
}

// SetIssueOwner sets the "issue_owner" field.
func (_c *StoryCreate) SetIssueOwner(v string) *StoryCreate {
	_c.mutation.SetIssueOwner(v)
	return _c
}

// SetNillableIssueOwner sets the "issue_owner" field if the given value is not nil.
func (_c *StoryCreate) SetNillableIssueOwner(v *string) *StoryCreate {
	if v != nil {
		_c.SetIssueOwner(*v)
	}
	return _c
}

// SetIssueRepo sets the "issue_repo" field.
func (_c *StoryCreate) SetIssueRepo(v string) *StoryCreate {
	_c.mutation.SetIssueRepo(v)
	return _c
}

// SetNillableIssueRepo sets the "issue_repo" field if the given value is not nil.
func (_c *StoryCreate) SetNillableIssueRepo(v *string) *StoryCreate {
	if v != nil {
		_c.SetIssueRepo(*v)
	}
	return _c
}

// SetIssueNumber sets the "issue_number" field.
func (_c *StoryCreate) SetIssueNumber(v int) *StoryCreate {
	_c.mutation.SetIssueNumber(v)
	return _c
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_c *StoryCreate) SetNillableIssueNumber(v *int) *StoryCreate {
	if v != nil {
		_c.SetIssueNumber(*v)
	}
	return _c
}

// SetIssueURL sets the "issue_url" field.
func (_c *StoryCreate) SetIssueURL(v string) *StoryCreate {
	_c.mutation.SetIssueURL(v)
	return _c
}

// SetNillableIssueURL sets the "issue_url" field if the given value is not nil.
func (_c *StoryCreate) SetNillableIssueURL(v *string) *StoryCreate {
	if v != nil {
		_c.SetIssueURL(*v)
	}
	return _c
}

// SetRepositoryPath sets the "repository_path" field.
func (_c *StoryCreate) SetRepositoryPath(v string) *StoryCreate {
	_c.mutation.SetRepositoryPath(v)
	return _c
}

// SetNillableRepositoryPath sets the "repository_path" field if the given value is not nil.
func (_c *StoryCreate) SetNillableRepositoryPath(v *string) *StoryCreate {
	if v != nil {
		_c.SetRepositoryPath(*v)
	}
	return _c
}

// SetWorktreePath sets the "worktree_path" field.
func (_c *StoryCreate) SetWorktreePath(v string) *StoryCreate {
	_c.mutation.SetWorktreePath(v)
	return _c
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_c *StoryCreate) SetNillableWorktreePath(v *string) *StoryCreate {
	if v != nil {
		_c.SetWorktreePath(*v)
	}
	return _c
}

// SetBranch sets the "branch" field.
func (_c *StoryCreate) SetBranch(v string) *StoryCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *StoryCreate) SetNillableBranch(v *string) *StoryCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetAutomationMode sets the "automation_mode" field.
func (_c *StoryCreate) SetAutomationMode(v story.AutomationMode) *StoryCreate {
	_c.mutation.SetAutomationMode(v)
	return _c
}

// SetNillableAutomationMode sets the "automation_mode" field if the given value is not nil.
func (_c *StoryCreate) SetNillableAutomationMode(v *story.AutomationMode) *StoryCreate {
	if v != nil {
		_c.SetAutomationMode(*v)
	}
	return _c
}

// SetDispatchTarget sets the "dispatch_target" field.
func (_c *StoryCreate) SetDispatchTarget(v story.DispatchTarget) *StoryCreate {
	_c.mutation.SetDispatchTarget(v)
	return _c
}

// SetNillableDispatchTarget sets the "dispatch_target" field if the given value is not nil.
func (_c *StoryCreate) SetNillableDispatchTarget(v *story.DispatchTarget) *StoryCreate {
	if v != nil {
		_c.SetDispatchTarget(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StoryCreate) SetStatus(v story.Status) *StoryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StoryCreate) SetNillableStatus(v *story.Status) *StoryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAnalyzedContext sets the "analyzed_context" field.
func (_c *StoryCreate) SetAnalyzedContext(v map[string]interface{}) *StoryCreate {
	_c.mutation.SetAnalyzedContext(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *StoryCreate) SetPlan(v map[string]interface{}) *StoryCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetCurrentWave sets the "current_wave" field.
func (_c *StoryCreate) SetCurrentWave(v int) *StoryCreate {
	_c.mutation.SetCurrentWave(v)
	return _c
}

// SetNillableCurrentWave sets the "current_wave" field if the given value is not nil.
func (_c *StoryCreate) SetNillableCurrentWave(v *int) *StoryCreate {
	if v != nil {
		_c.SetCurrentWave(*v)
	}
	return _c
}

// SetMaxParallelism sets the "max_parallelism" field.
func (_c *StoryCreate) SetMaxParallelism(v int) *StoryCreate {
	_c.mutation.SetMaxParallelism(v)
	return _c
}

// SetNillableMaxParallelism sets the "max_parallelism" field if the given value is not nil.
func (_c *StoryCreate) SetNillableMaxParallelism(v *int) *StoryCreate {
	if v != nil {
		_c.SetMaxParallelism(*v)
	}
	return _c
}

// SetGateMode sets the "gate_mode" field.
func (_c *StoryCreate) SetGateMode(v story.GateMode) *StoryCreate {
	_c.mutation.SetGateMode(v)
	return _c
}

// SetNillableGateMode sets the "gate_mode" field if the given value is not nil.
func (_c *StoryCreate) SetNillableGateMode(v *story.GateMode) *StoryCreate {
	if v != nil {
		_c.SetGateMode(*v)
	}
	return _c
}

// SetLastGateResult sets the "last_gate_result" field.
func (_c *StoryCreate) SetLastGateResult(v map[string]interface{}) *StoryCreate {
	_c.mutation.SetLastGateResult(v)
	return _c
}

// SetPullRequestURL sets the "pull_request_url" field.
func (_c *StoryCreate) SetPullRequestURL(v string) *StoryCreate {
	_c.mutation.SetPullRequestURL(v)
	return _c
}

// SetNillablePullRequestURL sets the "pull_request_url" field if the given value is not nil.
func (_c *StoryCreate) SetNillablePullRequestURL(v *string) *StoryCreate {
	if v != nil {
		_c.SetPullRequestURL(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StoryCreate) SetErrorMessage(v string) *StoryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StoryCreate) SetNillableErrorMessage(v *string) *StoryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StoryCreate) SetCreatedAt(v time.Time) *StoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StoryCreate) SetNillableCreatedAt(v *time.Time) *StoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StoryCreate) SetUpdatedAt(v time.Time) *StoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StoryCreate) SetNillableUpdatedAt(v *time.Time) *StoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StoryCreate) SetCompletedAt(v time.Time) *StoryCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StoryCreate) SetNillableCompletedAt(v *time.Time) *StoryCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StoryCreate) SetID(v string) *StoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_c *StoryCreate) AddStepIDs(ids ...string) *StoryCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the Step entity.
func (_c *StoryCreate) AddSteps(v ...*Step) *StoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_c *StoryCreate) AddChatMessageIDs(ids ...string) *StoryCreate {
	_c.mutation.AddChatMessageIDs(ids...)
	return _c
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_c *StoryCreate) AddChatMessages(v ...*ChatMessage) *StoryCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatMessageIDs(ids...)
}

// AddEventIDs adds the "events" edge to the StoryEvent entity by IDs.
func (_c *StoryCreate) AddEventIDs(ids ...int64) *StoryCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the StoryEvent entity.
func (_c *StoryCreate) AddEvents(v ...*StoryEvent) *StoryCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the StoryMutation object of the builder.
func (_c *StoryCreate) Mutation() *StoryMutation {
	return _c.mutation
}

// Save creates the Story in the database.
func (_c *StoryCreate) Save(ctx context.Context) (*Story, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryCreate) SaveX(ctx context.Context) *Story {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryCreate) defaults() {
	if _, ok := _c.mutation.AutomationMode(); !ok {
		v := story.DefaultAutomationMode
		_c.mutation.SetAutomationMode(v)
	}
	if _, ok := _c.mutation.DispatchTarget(); !ok {
		v := story.DefaultDispatchTarget
		_c.mutation.SetDispatchTarget(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := story.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentWave(); !ok {
		v := story.DefaultCurrentWave
		_c.mutation.SetCurrentWave(v)
	}
	if _, ok := _c.mutation.MaxParallelism(); !ok {
		v := story.DefaultMaxParallelism
		_c.mutation.SetMaxParallelism(v)
	}
	if _, ok := _c.mutation.GateMode(); !ok {
		v := story.DefaultGateMode
		_c.mutation.SetGateMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := story.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := story.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Story.title"`)}
	}
	if _, ok := _c.mutation.AutomationMode(); !ok {
		return &ValidationError{Name: "automation_mode", err: errors.New(`ent: missing required field "Story.automation_mode"`)}
	}
	if v, ok := _c.mutation.AutomationMode(); ok {
		if err := story.AutomationModeValidator(v); err != nil {
			return &ValidationError{Name: "automation_mode", err: fmt.Errorf(`ent: validator failed for field "Story.automation_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DispatchTarget(); !ok {
		return &ValidationError{Name: "dispatch_target", err: errors.New(`ent: missing required field "Story.dispatch_target"`)}
	}
	if v, ok := _c.mutation.DispatchTarget(); ok {
		if err := story.DispatchTargetValidator(v); err != nil {
			return &ValidationError{Name: "dispatch_target", err: fmt.Errorf(`ent: validator failed for field "Story.dispatch_target": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Story.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := story.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Story.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentWave(); !ok {
		return &ValidationError{Name: "current_wave", err: errors.New(`ent: missing required field "Story.current_wave"`)}
	}
	if _, ok := _c.mutation.MaxParallelism(); !ok {
		return &ValidationError{Name: "max_parallelism", err: errors.New(`ent: missing required field "Story.max_parallelism"`)}
	}
	if _, ok := _c.mutation.GateMode(); !ok {
		return &ValidationError{Name: "gate_mode", err: errors.New(`ent: missing required field "Story.gate_mode"`)}
	}
	if v, ok := _c.mutation.GateMode(); ok {
		if err := story.GateModeValidator(v); err != nil {
			return &ValidationError{Name: "gate_mode", err: fmt.Errorf(`ent: validator failed for field "Story.gate_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Story.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Story.updated_at"`)}
	}
	return nil
}

func (_c *StoryCreate) sqlSave(ctx context.Context) (*Story, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Story.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StoryCreate) createSpec() (*Story, *sqlgraph.CreateSpec) {
	var (
		_node = &Story{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(story.Table, sqlgraph.NewFieldSpec(story.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(story.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.IssueProvider(); ok {
		_spec.SetField(story.FieldIssueProvider, field.TypeString, value)
		_node.IssueProvider = &value
	}
	if value, ok := _c.mutation.IssueOwner(); ok {
		_spec.SetField(story.FieldIssueOwner, field.TypeString, value)
		_node.IssueOwner = &value
	}
	if value, ok := _c.mutation.IssueRepo(); ok {
		_spec.SetField(story.FieldIssueRepo, field.TypeString, value)
		_node.IssueRepo = &value
	}
	if value, ok := _c.mutation.IssueNumber(); ok {
		_spec.SetField(story.FieldIssueNumber, field.TypeInt, value)
		_node.IssueNumber = &value
	}
	if value, ok := _c.mutation.IssueURL(); ok {
		_spec.SetField(story.FieldIssueURL, field.TypeString, value)
		_node.IssueURL = &value
	}
	if value, ok := _c.mutation.RepositoryPath(); ok {
		_spec.SetField(story.FieldRepositoryPath, field.TypeString, value)
		_node.RepositoryPath = value
	}
	if value, ok := _c.mutation.WorktreePath(); ok {
		_spec.SetField(story.FieldWorktreePath, field.TypeString, value)
		_node.WorktreePath = &value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(story.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.AutomationMode(); ok {
		_spec.SetField(story.FieldAutomationMode, field.TypeEnum, value)
		_node.AutomationMode = value
	}
	if value, ok := _c.mutation.DispatchTarget(); ok {
		_spec.SetField(story.FieldDispatchTarget, field.TypeEnum, value)
		_node.DispatchTarget = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(story.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AnalyzedContext(); ok {
		_spec.SetField(story.FieldAnalyzedContext, field.TypeJSON, value)
		_node.AnalyzedContext = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(story.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.CurrentWave(); ok {
		_spec.SetField(story.FieldCurrentWave, field.TypeInt, value)
		_node.CurrentWave = value
	}
	if value, ok := _c.mutation.MaxParallelism(); ok {
		_spec.SetField(story.FieldMaxParallelism, field.TypeInt, value)
		_node.MaxParallelism = value
	}
	if value, ok := _c.mutation.GateMode(); ok {
		_spec.SetField(story.FieldGateMode, field.TypeEnum, value)
		_node.GateMode = value
	}
	if value, ok := _c.mutation.LastGateResult(); ok {
		_spec.SetField(story.FieldLastGateResult, field.TypeJSON, value)
		_node.LastGateResult = value
	}
	if value, ok := _c.mutation.PullRequestURL(); ok {
		_spec.SetField(story.FieldPullRequestURL, field.TypeString, value)
		_node.PullRequestURL = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(story.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(story.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(story.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(story.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StoryCreateBulk is the builder for creating many Story entities in bulk.
type StoryCreateBulk struct {
	config
	err      error
	builders []*StoryCreate
}

// Save creates the Story entities in the database.
func (_c *StoryCreateBulk) Save(ctx context.Context) ([]*Story, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Story, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StoryCreateBulk) SaveX(ctx context.Context) []*Story {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
