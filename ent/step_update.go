// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/johnazariah/aura-sub009/ent/chatmessage"
	"github.com/johnazariah/aura-sub009/ent/predicate"
	"github.com/johnazariah/aura-sub009/ent/step"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *StepUpdate) SetOrderIndex(v int) *StepUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *StepUpdate) SetNillableOrderIndex(v *int) *StepUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *StepUpdate) AddOrderIndex(v int) *StepUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetWave sets the "wave" field.
func (_u *StepUpdate) SetWave(v int) *StepUpdate {
	_u.mutation.ResetWave()
	_u.mutation.SetWave(v)
	return _u
}

// SetNillableWave sets the "wave" field if the given value is not nil.
func (_u *StepUpdate) SetNillableWave(v *int) *StepUpdate {
	if v != nil {
		_u.SetWave(*v)
	}
	return _u
}

// AddWave adds value to the "wave" field.
func (_u *StepUpdate) AddWave(v int) *StepUpdate {
	_u.mutation.AddWave(v)
	return _u
}

// ClearWave clears the value of the "wave" field.
func (_u *StepUpdate) ClearWave() *StepUpdate {
	_u.mutation.ClearWave()
	return _u
}

// SetName sets the "name" field.
func (_u *StepUpdate) SetName(v string) *StepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StepUpdate) SetNillableName(v *string) *StepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCapability sets the "capability" field.
func (_u *StepUpdate) SetCapability(v string) *StepUpdate {
	_u.mutation.SetCapability(v)
	return _u
}

// SetNillableCapability sets the "capability" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCapability(v *string) *StepUpdate {
	if v != nil {
		_u.SetCapability(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *StepUpdate) SetLanguage(v string) *StepUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *StepUpdate) SetNillableLanguage(v *string) *StepUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *StepUpdate) ClearLanguage() *StepUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepUpdate) SetDescription(v string) *StepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepUpdate) SetNillableDescription(v *string) *StepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StepUpdate) ClearDescription() *StepUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *StepUpdate) SetDependsOn(v []string) *StepUpdate {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *StepUpdate) AppendDependsOn(v []string) *StepUpdate {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *StepUpdate) ClearDependsOn() *StepUpdate {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetInput sets the "input" field.
func (_u *StepUpdate) SetInput(v string) *StepUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *StepUpdate) SetNillableInput(v *string) *StepUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *StepUpdate) ClearInput() *StepUpdate {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *StepUpdate) SetOutput(v string) *StepUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *StepUpdate) SetNillableOutput(v *string) *StepUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StepUpdate) ClearOutput() *StepUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *StepUpdate) SetError(v string) *StepUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *StepUpdate) SetNillableError(v *string) *StepUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *StepUpdate) ClearError() *StepUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepUpdate) SetStatus(v step.Status) *StepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStatus(v *step.Status) *StepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *StepUpdate) SetAgentID(v string) *StepUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *StepUpdate) SetNillableAgentID(v *string) *StepUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *StepUpdate) ClearAgentID() *StepUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepUpdate) SetAttempts(v int) *StepUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepUpdate) SetNillableAttempts(v *int) *StepUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepUpdate) AddAttempts(v int) *StepUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetApproval sets the "approval" field.
func (_u *StepUpdate) SetApproval(v step.Approval) *StepUpdate {
	_u.mutation.SetApproval(v)
	return _u
}

// SetNillableApproval sets the "approval" field if the given value is not nil.
func (_u *StepUpdate) SetNillableApproval(v *step.Approval) *StepUpdate {
	if v != nil {
		_u.SetApproval(*v)
	}
	return _u
}

// ClearApproval clears the value of the "approval" field.
func (_u *StepUpdate) ClearApproval() *StepUpdate {
	_u.mutation.ClearApproval()
	return _u
}

// SetApprovalFeedback sets the "approval_feedback" field.
func (_u *StepUpdate) SetApprovalFeedback(v string) *StepUpdate {
	_u.mutation.SetApprovalFeedback(v)
	return _u
}

// SetNillableApprovalFeedback sets the "approval_feedback" field if the given value is not nil.
func (_u *StepUpdate) SetNillableApprovalFeedback(v *string) *StepUpdate {
	if v != nil {
		_u.SetApprovalFeedback(*v)
	}
	return _u
}

// ClearApprovalFeedback clears the value of the "approval_feedback" field.
func (_u *StepUpdate) ClearApprovalFeedback() *StepUpdate {
	_u.mutation.ClearApprovalFeedback()
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *StepUpdate) SetSkipReason(v string) *StepUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *StepUpdate) SetNillableSkipReason(v *string) *StepUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *StepUpdate) ClearSkipReason() *StepUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetNeedsRework sets the "needs_rework" field.
func (_u *StepUpdate) SetNeedsRework(v bool) *StepUpdate {
	_u.mutation.SetNeedsRework(v)
	return _u
}

// SetNillableNeedsRework sets the "needs_rework" field if the given value is not nil.
func (_u *StepUpdate) SetNillableNeedsRework(v *bool) *StepUpdate {
	if v != nil {
		_u.SetNeedsRework(*v)
	}
	return _u
}

// SetPreviousOutput sets the "previous_output" field.
func (_u *StepUpdate) SetPreviousOutput(v string) *StepUpdate {
	_u.mutation.SetPreviousOutput(v)
	return _u
}

// SetNillablePreviousOutput sets the "previous_output" field if the given value is not nil.
func (_u *StepUpdate) SetNillablePreviousOutput(v *string) *StepUpdate {
	if v != nil {
		_u.SetPreviousOutput(*v)
	}
	return _u
}

// ClearPreviousOutput clears the value of the "previous_output" field.
func (_u *StepUpdate) ClearPreviousOutput() *StepUpdate {
	_u.mutation.ClearPreviousOutput()
	return _u
}

// SetTrace sets the "trace" field.
func (_u *StepUpdate) SetTrace(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetTrace(v)
	return _u
}

// ClearTrace clears the value of the "trace" field.
func (_u *StepUpdate) ClearTrace() *StepUpdate {
	_u.mutation.ClearTrace()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdate) SetStartedAt(v time.Time) *StepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableStartedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdate) ClearStartedAt() *StepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdate) SetCompletedAt(v time.Time) *StepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdate) SetNillableCompletedAt(v *time.Time) *StepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdate) ClearCompletedAt() *StepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *StepUpdate) AddChatMessageIDs(ids ...string) *StepUpdate {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *StepUpdate) AddChatMessages(v ...*ChatMessage) *StepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *StepUpdate) ClearChatMessages() *StepUpdate {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *StepUpdate) RemoveChatMessageIDs(ids ...string) *StepUpdate {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *StepUpdate) RemoveChatMessages(v ...*ChatMessage) *StepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Approval(); ok {
		if err := step.ApprovalValidator(v); err != nil {
			return &ValidationError{Name: "approval", err: fmt.Errorf(`ent: validator failed for field "Step.approval": %w`, err)}
		}
	}
	if _u.mutation.StoryCleared() && len(_u.mutation.StoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.story"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(step.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(step.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wave(); ok {
		_spec.SetField(step.FieldWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWave(); ok {
		_spec.AddField(step.FieldWave, field.TypeInt, value)
	}
	if _u.mutation.WaveCleared() {
		_spec.ClearField(step.FieldWave, field.TypeInt)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(step.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capability(); ok {
		_spec.SetField(step.FieldCapability, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(step.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(step.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(step.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(step.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, step.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(step.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(step.FieldInput, field.TypeString, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(step.FieldInput, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(step.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(step.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(step.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(step.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(step.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Approval(); ok {
		_spec.SetField(step.FieldApproval, field.TypeEnum, value)
	}
	if _u.mutation.ApprovalCleared() {
		_spec.ClearField(step.FieldApproval, field.TypeEnum)
	}
	if value, ok := _u.mutation.ApprovalFeedback(); ok {
		_spec.SetField(step.FieldApprovalFeedback, field.TypeString, value)
	}
	if _u.mutation.ApprovalFeedbackCleared() {
		_spec.ClearField(step.FieldApprovalFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(step.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(step.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsRework(); ok {
		_spec.SetField(step.FieldNeedsRework, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreviousOutput(); ok {
		_spec.SetField(step.FieldPreviousOutput, field.TypeString, value)
	}
	if _u.mutation.PreviousOutputCleared() {
		_spec.ClearField(step.FieldPreviousOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Trace(); ok {
		_spec.SetField(step.FieldTrace, field.TypeJSON, value)
	}
	if _u.mutation.TraceCleared() {
		_spec.ClearField(step.FieldTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetOrderIndex sets the "order_index" field.
func (_u *StepUpdateOne) SetOrderIndex(v int) *StepUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableOrderIndex(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *StepUpdateOne) AddOrderIndex(v int) *StepUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetWave sets the "wave" field.
func (_u *StepUpdateOne) SetWave(v int) *StepUpdateOne {
	_u.mutation.ResetWave()
	_u.mutation.SetWave(v)
	return _u
}

// SetNillableWave sets the "wave" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableWave(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetWave(*v)
	}
	return _u
}

// AddWave adds value to the "wave" field.
func (_u *StepUpdateOne) AddWave(v int) *StepUpdateOne {
	_u.mutation.AddWave(v)
	return _u
}

// ClearWave clears the value of the "wave" field.
func (_u *StepUpdateOne) ClearWave() *StepUpdateOne {
	_u.mutation.ClearWave()
	return _u
}

// SetName sets the "name" field.
func (_u *StepUpdateOne) SetName(v string) *StepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableName(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCapability sets the "capability" field.
func (_u *StepUpdateOne) SetCapability(v string) *StepUpdateOne {
	_u.mutation.SetCapability(v)
	return _u
}

// SetNillableCapability sets the "capability" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCapability(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetCapability(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *StepUpdateOne) SetLanguage(v string) *StepUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableLanguage(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *StepUpdateOne) ClearLanguage() *StepUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetDescription sets the "description" field.
func (_u *StepUpdateOne) SetDescription(v string) *StepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableDescription(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StepUpdateOne) ClearDescription() *StepUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDependsOn sets the "depends_on" field.
func (_u *StepUpdateOne) SetDependsOn(v []string) *StepUpdateOne {
	_u.mutation.SetDependsOn(v)
	return _u
}

// AppendDependsOn appends value to the "depends_on" field.
func (_u *StepUpdateOne) AppendDependsOn(v []string) *StepUpdateOne {
	_u.mutation.AppendDependsOn(v)
	return _u
}

// ClearDependsOn clears the value of the "depends_on" field.
func (_u *StepUpdateOne) ClearDependsOn() *StepUpdateOne {
	_u.mutation.ClearDependsOn()
	return _u
}

// SetInput sets the "input" field.
func (_u *StepUpdateOne) SetInput(v string) *StepUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableInput(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// ClearInput clears the value of the "input" field.
func (_u *StepUpdateOne) ClearInput() *StepUpdateOne {
	_u.mutation.ClearInput()
	return _u
}

// SetOutput sets the "output" field.
func (_u *StepUpdateOne) SetOutput(v string) *StepUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableOutput(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StepUpdateOne) ClearOutput() *StepUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *StepUpdateOne) SetError(v string) *StepUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableError(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *StepUpdateOne) ClearError() *StepUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepUpdateOne) SetStatus(v step.Status) *StepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStatus(v *step.Status) *StepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *StepUpdateOne) SetAgentID(v string) *StepUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableAgentID(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *StepUpdateOne) ClearAgentID() *StepUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StepUpdateOne) SetAttempts(v int) *StepUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableAttempts(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StepUpdateOne) AddAttempts(v int) *StepUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetApproval sets the "approval" field.
func (_u *StepUpdateOne) SetApproval(v step.Approval) *StepUpdateOne {
	_u.mutation.SetApproval(v)
	return _u
}

// SetNillableApproval sets the "approval" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableApproval(v *step.Approval) *StepUpdateOne {
	if v != nil {
		_u.SetApproval(*v)
	}
	return _u
}

// ClearApproval clears the value of the "approval" field.
func (_u *StepUpdateOne) ClearApproval() *StepUpdateOne {
	_u.mutation.ClearApproval()
	return _u
}

// SetApprovalFeedback sets the "approval_feedback" field.
func (_u *StepUpdateOne) SetApprovalFeedback(v string) *StepUpdateOne {
	_u.mutation.SetApprovalFeedback(v)
	return _u
}

// SetNillableApprovalFeedback sets the "approval_feedback" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableApprovalFeedback(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetApprovalFeedback(*v)
	}
	return _u
}

// ClearApprovalFeedback clears the value of the "approval_feedback" field.
func (_u *StepUpdateOne) ClearApprovalFeedback() *StepUpdateOne {
	_u.mutation.ClearApprovalFeedback()
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *StepUpdateOne) SetSkipReason(v string) *StepUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableSkipReason(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *StepUpdateOne) ClearSkipReason() *StepUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetNeedsRework sets the "needs_rework" field.
func (_u *StepUpdateOne) SetNeedsRework(v bool) *StepUpdateOne {
	_u.mutation.SetNeedsRework(v)
	return _u
}

// SetNillableNeedsRework sets the "needs_rework" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableNeedsRework(v *bool) *StepUpdateOne {
	if v != nil {
		_u.SetNeedsRework(*v)
	}
	return _u
}

// SetPreviousOutput sets the "previous_output" field.
func (_u *StepUpdateOne) SetPreviousOutput(v string) *StepUpdateOne {
	_u.mutation.SetPreviousOutput(v)
	return _u
}

// SetNillablePreviousOutput sets the "previous_output" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillablePreviousOutput(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetPreviousOutput(*v)
	}
	return _u
}

// ClearPreviousOutput clears the value of the "previous_output" field.
func (_u *StepUpdateOne) ClearPreviousOutput() *StepUpdateOne {
	_u.mutation.ClearPreviousOutput()
	return _u
}

// SetTrace sets the "trace" field.
func (_u *StepUpdateOne) SetTrace(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetTrace(v)
	return _u
}

// ClearTrace clears the value of the "trace" field.
func (_u *StepUpdateOne) ClearTrace() *StepUpdateOne {
	_u.mutation.ClearTrace()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepUpdateOne) SetStartedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableStartedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepUpdateOne) ClearStartedAt() *StepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepUpdateOne) SetCompletedAt(v time.Time) *StepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableCompletedAt(v *time.Time) *StepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepUpdateOne) ClearCompletedAt() *StepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by IDs.
func (_u *StepUpdateOne) AddChatMessageIDs(ids ...string) *StepUpdateOne {
	_u.mutation.AddChatMessageIDs(ids...)
	return _u
}

// AddChatMessages adds the "chat_messages" edges to the ChatMessage entity.
func (_u *StepUpdateOne) AddChatMessages(v ...*ChatMessage) *StepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatMessageIDs(ids...)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// ClearChatMessages clears all "chat_messages" edges to the ChatMessage entity.
func (_u *StepUpdateOne) ClearChatMessages() *StepUpdateOne {
	_u.mutation.ClearChatMessages()
	return _u
}

// RemoveChatMessageIDs removes the "chat_messages" edge to ChatMessage entities by IDs.
func (_u *StepUpdateOne) RemoveChatMessageIDs(ids ...string) *StepUpdateOne {
	_u.mutation.RemoveChatMessageIDs(ids...)
	return _u
}

// RemoveChatMessages removes "chat_messages" edges to ChatMessage entities.
func (_u *StepUpdateOne) RemoveChatMessages(v ...*ChatMessage) *StepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatMessageIDs(ids...)
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := step.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Step.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Approval(); ok {
		if err := step.ApprovalValidator(v); err != nil {
			return &ValidationError{Name: "approval", err: fmt.Errorf(`ent: validator failed for field "Step.approval": %w`, err)}
		}
	}
	if _u.mutation.StoryCleared() && len(_u.mutation.StoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.story"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
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
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(step.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(step.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wave(); ok {
		_spec.SetField(step.FieldWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWave(); ok {
		_spec.AddField(step.FieldWave, field.TypeInt, value)
	}
	if _u.mutation.WaveCleared() {
		_spec.ClearField(step.FieldWave, field.TypeInt)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(step.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capability(); ok {
		_spec.SetField(step.FieldCapability, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(step.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(step.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(step.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(step.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DependsOn(); ok {
		_spec.SetField(step.FieldDependsOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependsOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, step.FieldDependsOn, value)
		})
	}
	if _u.mutation.DependsOnCleared() {
		_spec.ClearField(step.FieldDependsOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(step.FieldInput, field.TypeString, value)
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(step.FieldInput, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(step.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(step.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(step.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(step.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(step.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(step.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(step.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(step.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Approval(); ok {
		_spec.SetField(step.FieldApproval, field.TypeEnum, value)
	}
	if _u.mutation.ApprovalCleared() {
		_spec.ClearField(step.FieldApproval, field.TypeEnum)
	}
	if value, ok := _u.mutation.ApprovalFeedback(); ok {
		_spec.SetField(step.FieldApprovalFeedback, field.TypeString, value)
	}
	if _u.mutation.ApprovalFeedbackCleared() {
		_spec.ClearField(step.FieldApprovalFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(step.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(step.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.NeedsRework(); ok {
		_spec.SetField(step.FieldNeedsRework, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PreviousOutput(); ok {
		_spec.SetField(step.FieldPreviousOutput, field.TypeString, value)
	}
	if _u.mutation.PreviousOutputCleared() {
		_spec.ClearField(step.FieldPreviousOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Trace(); ok {
		_spec.SetField(step.FieldTrace, field.TypeJSON, value)
	}
	if _u.mutation.TraceCleared() {
		_spec.ClearField(step.FieldTrace, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(step.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(step.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(step.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(step.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatMessagesIDs(); len(nodes) > 0 && !_u.mutation.ChatMessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
