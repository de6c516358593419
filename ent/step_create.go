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
)

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
}

// SetStoryID sets the "story_id" field.
func (_c *StepCreate) SetStoryID(v string) *StepCreate {
	_c.mutation.SetStoryID(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *StepCreate) SetOrderIndex(v int) *StepCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetWave sets the "wave" field.
func (_c *StepCreate) SetWave(v int) *StepCreate {
	_c.mutation.SetWave(v)
	return _c
}

// SetNillableWave sets the "wave" field if the given value is not nil.
func (_c *StepCreate) SetNillableWave(v *int) *StepCreate {
	if v != nil {
		_c.SetWave(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *StepCreate) SetName(v string) *StepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCapability sets the "capability" field.
func (_c *StepCreate) SetCapability(v string) *StepCreate {
	_c.mutation.SetCapability(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *StepCreate) SetLanguage(v string) *StepCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *StepCreate) SetNillableLanguage(v *string) *StepCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *StepCreate) SetDescription(v string) *StepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StepCreate) SetNillableDescription(v *string) *StepCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDependsOn sets the "depends_on" field.
func (_c *StepCreate) SetDependsOn(v []string) *StepCreate {
	_c.mutation.SetDependsOn(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *StepCreate) SetInput(v string) *StepCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_c *StepCreate) SetNillableInput(v *string) *StepCreate {
	if v != nil {
		_c.SetInput(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *StepCreate) SetOutput(v string) *StepCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *StepCreate) SetNillableOutput(v *string) *StepCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *StepCreate) SetError(v string) *StepCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *StepCreate) SetNillableError(v *string) *StepCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepCreate) SetStatus(v step.Status) *StepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepCreate) SetNillableStatus(v *step.Status) *StepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *StepCreate) SetAgentID(v string) *StepCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *StepCreate) SetNillableAgentID(v *string) *StepCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *StepCreate) SetAttempts(v int) *StepCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *StepCreate) SetNillableAttempts(v *int) *StepCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetApproval sets the "approval" field.
func (_c *StepCreate) SetApproval(v step.Approval) *StepCreate {
	_c.mutation.SetApproval(v)
	return _c
}

// SetNillableApproval sets the "approval" field if the given value is not nil.
func (_c *StepCreate) SetNillableApproval(v *step.Approval) *StepCreate {
	if v != nil {
		_c.SetApproval(*v)
	}
	return _c
}

// SetApprovalFeedback sets the "approval_feedback" field.
func (_c *StepCreate) SetApprovalFeedback(v string) *StepCreate {
	_c.mutation.SetApprovalFeedback(v)
	return _c
}

// SetNillableApprovalFeedback sets the "approval_feedback" field if the given value is not nil.
func (_c *StepCreate) SetNillableApprovalFeedback(v *string) *StepCreate {
	if v != nil {
		_c.SetApprovalFeedback(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *StepCreate) SetSkipReason(v string) *StepCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *StepCreate) SetNillableSkipReason(v *string) *StepCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetNeedsRework sets the "needs_rework" field.
func (_c *StepCreate) SetNeedsRework(v bool) *StepCreate {
	_c.mutation.SetNeedsRework(v)
	return _c
}

// SetNillableNeedsRework sets the "needs_rework" field if the given value is not nil.
func (_c *StepCreate) SetNillableNeedsRework(v *bool) *StepCreate {
	if v != nil {
		_c.SetNeedsRework(*v)
	}
	return _c
}

// SetPreviousOutput sets the "previous_output" field.
func (_c *StepCreate) SetPreviousOutput(v string) *StepCreate {
	_c.mutation.SetPreviousOutput(v)
	return _c
}

// SetNillablePreviousOutput sets the "previous_output" field if the given value is not nil.
func (_c *StepCreate) SetNillablePreviousOutput(v *string) *StepCreate {
	if v != nil {
		_c.SetPreviousOutput(*v)
	}
	return _c
}

// SetTrace sets the "trace" field.
func (_c *StepCreate) SetTrace(v map[string]interface{}) *StepCreate {
	_c.mutation.SetTrace(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepCreate) SetStartedAt(v time.Time) *StepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableStartedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepCreate) SetCompletedAt(v time.Time) *StepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCompletedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepCreate) SetID(v string) *StepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStory sets the "story" edge to the Story entity.
func (_c *StepCreate) SetStory(v *Story) *StepCreate {
	return _c.SetStoryID(v.ID)
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_c *StepCreate) AddChatMessageIDs(ids ...string) *StepCreate {
	_c.mutation.AddChatMessageIDs(ids...)
	return _c
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_c *StepCreate) AddChatMessages(v ...*ChatMessage) *StepCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatMessageIDs(ids...)
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := step.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := step.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.NeedsRework(); !ok {
		v := step.DefaultNeedsRework
		_c.mutation.SetNeedsRework(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.StoryID(); !ok {
		return &ValidationError{Name: "story_id", err: errors.New(`ent: missing required field "Step.story_id"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Step.order_index"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Step.name"`)}
	}
	if _, ok := _c.mutation.Capability(); !ok {
		return &ValidationError{Name: "capability", err: errors.New(`ent: missing required field "Step.capability"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Step.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Step.attempts"`)}
	}
	if v, ok := _c.mutation.Approval(); ok {
		if err := step.ApprovalValidator(v); err != nil {
			return &ValidationError{Name: "approval", err: fmt.Errorf(`ent: validator failed for field "Step.approval": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsRework(); !ok {
		return &ValidationError{Name: "needs_rework", err: errors.New(`ent: missing required field "Step.needs_rework"`)}
	}
	if len(_c.mutation.StoryIDs()) == 0 {
		return &ValidationError{Name: "story", err: errors.New(`ent: missing required edge "Step.story"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
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
			return nil, fmt.Errorf("unexpected Step.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(step.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.Wave(); ok {
		_spec.SetField(step.FieldWave, field.TypeInt, value)
		_node.Wave = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(step.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Capability(); ok {
		_spec.SetField(step.FieldCapability, field.TypeString, value)
		_node.Capability = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(step.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DependsOn(); ok {
		_spec.SetField(step.FieldDependsOn, field.TypeJSON, value)
		_node.DependsOn = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(step.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(step.FieldOutput, field.TypeString, value)
		_node.Output = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(step.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Approval(); ok {
		_spec.SetField(step.FieldApproval, field.TypeEnum, value)
		_node.Approval = &value
	}
	if value, ok := _c.mutation.ApprovalFeedback(); ok {
		_spec.SetField(step.FieldApprovalFeedback, field.TypeString, value)
		_node.ApprovalFeedback = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(step.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = value
	}
	if value, ok := _c.mutation.NeedsRework(); ok {
		_spec.SetField(step.FieldNeedsRework, field.TypeBool, value)
		_node.NeedsRework = value
	}
	if value, ok := _c.mutation.PreviousOutput(); ok {
		_spec.SetField(step.FieldPreviousOutput, field.TypeString, value)
		_node.PreviousOutput = &value
	}
	if value, ok := _c.mutation.Trace(); ok {
		_spec.SetField(step.FieldTrace, field.TypeJSON, value)
		_node.Trace = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.StoryTable,
			Columns: []string{step.StoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(story.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.ChatMessagesTable,
			Columns: []string{step.ChatMessagesColumn},
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
	return _node, _spec
}

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
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
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
