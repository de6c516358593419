// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/johnazariah/aura-sub009/ent/chatmessage"
	"github.com/johnazariah/aura-sub009/ent/predicate"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/ent/storyevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage = "ChatMessage"
	TypeStep        = "Step"
	TypeStory       = "Story"
	TypeStoryEvent  = "StoryEvent"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	role          *chatmessage.Role
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	story         *string
	clearedstory  bool
	step          *string
	clearedstep   bool
	done          bool
	oldValue      func(context.Context) (*ChatMessage, error)
	predicates    []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStoryID sets the "story_id" field.
func (m *ChatMessageMutation) SetStoryID(s string) {
	m.story = &s
}

// StoryID returns the value of the "story_id" field in the mutation.
func (m *ChatMessageMutation) StoryID() (r string, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryID returns the old "story_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldStoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryID: %w", err)
	}
	return oldValue.StoryID, nil
}

// ResetStoryID resets all changes to the "story_id" field.
func (m *ChatMessageMutation) ResetStoryID() {
	m.story = nil
}

// SetStepID sets the "step_id" field.
func (m *ChatMessageMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *ChatMessageMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *ChatMessageMutation) ClearStepID() {
	m.step = nil
	m.clearedFields[chatmessage.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *ChatMessageMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *ChatMessageMutation) ResetStepID() {
	m.step = nil
	delete(m.clearedFields, chatmessage.FieldStepID)
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStory clears the "story" edge to the Story entity.
func (m *ChatMessageMutation) ClearStory() {
	m.clearedstory = true
	m.clearedFields[chatmessage.FieldStoryID] = struct{}{}
}

// StoryCleared reports if the "story" edge to the Story entity was cleared.
func (m *ChatMessageMutation) StoryCleared() bool {
	return m.clearedstory
}

// StoryIDs returns the "story" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StoryID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) StoryIDs() (ids []string) {
	if id := m.story; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStory resets all changes to the "story" edge.
func (m *ChatMessageMutation) ResetStory() {
	m.story = nil
	m.clearedstory = false
}

// ClearStep clears the "step" edge to the Step entity.
func (m *ChatMessageMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[chatmessage.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the Step entity was cleared.
func (m *ChatMessageMutation) StepCleared() bool {
	return m.StepIDCleared() || m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *ChatMessageMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.story != nil {
		fields = append(fields, chatmessage.FieldStoryID)
	}
	if m.step != nil {
		fields = append(fields, chatmessage.FieldStepID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldStoryID:
		return m.StoryID()
	case chatmessage.FieldStepID:
		return m.StepID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldStoryID:
		return m.OldStoryID(ctx)
	case chatmessage.FieldStepID:
		return m.OldStepID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldStoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryID(v)
		return nil
	case chatmessage.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldStepID) {
		fields = append(fields, chatmessage.FieldStepID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldStepID:
		m.ClearStepID()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldStoryID:
		m.ResetStoryID()
		return nil
	case chatmessage.FieldStepID:
		m.ResetStepID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.story != nil {
		edges = append(edges, chatmessage.EdgeStory)
	}
	if m.step != nil {
		edges = append(edges, chatmessage.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeStory:
		if id := m.story; id != nil {
			return []ent.Value{*id}
		}
	case chatmessage.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstory {
		edges = append(edges, chatmessage.EdgeStory)
	}
	if m.clearedstep {
		edges = append(edges, chatmessage.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeStory:
		return m.clearedstory
	case chatmessage.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeStory:
		m.ClearStory()
		return nil
	case chatmessage.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeStory:
		m.ResetStory()
		return nil
	case chatmessage.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	order_index          *int
	addorder_index       *int
	wave                 *int
	addwave              *int
	name                 *string
	capability           *string
	language             *string
	description          *string
	depends_on           *[]string
	appenddepends_on     []string
	input                *string
	output               *string
	error                *string
	status               *step.Status
	agent_id             *string
	attempts             *int
	addattempts          *int
	approval             *step.Approval
	approval_feedback    *string
	skip_reason          *string
	needs_rework         *bool
	previous_output      *string
	trace                *map[string]interface{}
	started_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	story                *string
	clearedstory         bool
	chat_messages        map[string]struct{}
	removedchat_messages map[string]struct{}
	clearedchat_messages bool
	done                 bool
	oldValue             func(context.Context) (*Step, error)
	predicates           []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStoryID sets the "story_id" field.
func (m *StepMutation) SetStoryID(s string) {
	m.story = &s
}

// StoryID returns the value of the "story_id" field in the mutation.
func (m *StepMutation) StoryID() (r string, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryID returns the old "story_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryID: %w", err)
	}
	return oldValue.StoryID, nil
}

// ResetStoryID resets all changes to the "story_id" field.
func (m *StepMutation) ResetStoryID() {
	m.story = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *StepMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *StepMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *StepMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *StepMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *StepMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetWave sets the "wave" field.
func (m *StepMutation) SetWave(i int) {
	m.wave = &i
	m.addwave = nil
}

// Wave returns the value of the "wave" field in the mutation.
func (m *StepMutation) Wave() (r int, exists bool) {
	v := m.wave
	if v == nil {
		return
	}
	return *v, true
}

// OldWave returns the old "wave" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldWave(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWave is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWave requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWave: %w", err)
	}
	return oldValue.Wave, nil
}

// AddWave adds i to the "wave" field.
func (m *StepMutation) AddWave(i int) {
	if m.addwave != nil {
		*m.addwave += i
	} else {
		m.addwave = &i
	}
}

// AddedWave returns the value that was added to the "wave" field in this mutation.
func (m *StepMutation) AddedWave() (r int, exists bool) {
	v := m.addwave
	if v == nil {
		return
	}
	return *v, true
}

// ClearWave clears the value of the "wave" field.
func (m *StepMutation) ClearWave() {
	m.wave = nil
	m.addwave = nil
	m.clearedFields[step.FieldWave] = struct{}{}
}

// WaveCleared returns if the "wave" field was cleared in this mutation.
func (m *StepMutation) WaveCleared() bool {
	_, ok := m.clearedFields[step.FieldWave]
	return ok
}

// ResetWave resets all changes to the "wave" field.
func (m *StepMutation) ResetWave() {
	m.wave = nil
	m.addwave = nil
	delete(m.clearedFields, step.FieldWave)
}

// SetName sets the "name" field.
func (m *StepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StepMutation) ResetName() {
	m.name = nil
}

// SetCapability sets the "capability" field.
func (m *StepMutation) SetCapability(s string) {
	m.capability = &s
}

// Capability returns the value of the "capability" field in the mutation.
func (m *StepMutation) Capability() (r string, exists bool) {
	v := m.capability
	if v == nil {
		return
	}
	return *v, true
}

// OldCapability returns the old "capability" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCapability(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapability: %w", err)
	}
	return oldValue.Capability, nil
}

// ResetCapability resets all changes to the "capability" field.
func (m *StepMutation) ResetCapability() {
	m.capability = nil
}

// SetLanguage sets the "language" field.
func (m *StepMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *StepMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *StepMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[step.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *StepMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[step.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *StepMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, step.FieldLanguage)
}

// SetDescription sets the "description" field.
func (m *StepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StepMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[step.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StepMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[step.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StepMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, step.FieldDescription)
}

// SetDependsOn sets the "depends_on" field.
func (m *StepMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *StepMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *StepMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *StepMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *StepMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[step.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *StepMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[step.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *StepMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, step.FieldDependsOn)
}

// SetInput sets the "input" field.
func (m *StepMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *StepMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *StepMutation) ClearInput() {
	m.input = nil
	m.clearedFields[step.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *StepMutation) InputCleared() bool {
	_, ok := m.clearedFields[step.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *StepMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, step.FieldInput)
}

// SetOutput sets the "output" field.
func (m *StepMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *StepMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *StepMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[step.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *StepMutation) OutputCleared() bool {
	_, ok := m.clearedFields[step.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *StepMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, step.FieldOutput)
}

// SetError sets the "error" field.
func (m *StepMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *StepMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *StepMutation) ClearError() {
	m.error = nil
	m.clearedFields[step.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *StepMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[step.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *StepMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, step.FieldError)
}

// SetStatus sets the "status" field.
func (m *StepMutation) SetStatus(s step.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepMutation) Status() (r step.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStatus(ctx context.Context) (v step.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepMutation) ResetStatus() {
	m.status = nil
}

// SetAgentID sets the "agent_id" field.
func (m *StepMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *StepMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *StepMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[step.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *StepMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[step.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *StepMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, step.FieldAgentID)
}

// SetAttempts sets the "attempts" field.
func (m *StepMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *StepMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *StepMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *StepMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *StepMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetApproval sets the "approval" field.
func (m *StepMutation) SetApproval(s step.Approval) {
	m.approval = &s
}

// Approval returns the value of the "approval" field in the mutation.
func (m *StepMutation) Approval() (r step.Approval, exists bool) {
	v := m.approval
	if v == nil {
		return
	}
	return *v, true
}

// OldApproval returns the old "approval" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldApproval(ctx context.Context) (v *step.Approval, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproval: %w", err)
	}
	return oldValue.Approval, nil
}

// ClearApproval clears the value of the "approval" field.
func (m *StepMutation) ClearApproval() {
	m.approval = nil
	m.clearedFields[step.FieldApproval] = struct{}{}
}

// ApprovalCleared returns if the "approval" field was cleared in this mutation.
func (m *StepMutation) ApprovalCleared() bool {
	_, ok := m.clearedFields[step.FieldApproval]
	return ok
}

// ResetApproval resets all changes to the "approval" field.
func (m *StepMutation) ResetApproval() {
	m.approval = nil
	delete(m.clearedFields, step.FieldApproval)
}

// SetApprovalFeedback sets the "approval_feedback" field.
func (m *StepMutation) SetApprovalFeedback(s string) {
	m.approval_feedback = &s
}

// ApprovalFeedback returns the value of the "approval_feedback" field in the mutation.
func (m *StepMutation) ApprovalFeedback() (r string, exists bool) {
	v := m.approval_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalFeedback returns the old "approval_feedback" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldApprovalFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalFeedback: %w", err)
	}
	return oldValue.ApprovalFeedback, nil
}

// ClearApprovalFeedback clears the value of the "approval_feedback" field.
func (m *StepMutation) ClearApprovalFeedback() {
	m.approval_feedback = nil
	m.clearedFields[step.FieldApprovalFeedback] = struct{}{}
}

// ApprovalFeedbackCleared returns if the "approval_feedback" field was cleared in this mutation.
func (m *StepMutation) ApprovalFeedbackCleared() bool {
	_, ok := m.clearedFields[step.FieldApprovalFeedback]
	return ok
}

// ResetApprovalFeedback resets all changes to the "approval_feedback" field.
func (m *StepMutation) ResetApprovalFeedback() {
	m.approval_feedback = nil
	delete(m.clearedFields, step.FieldApprovalFeedback)
}

// SetSkipReason sets the "skip_reason" field.
func (m *StepMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *StepMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldSkipReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *StepMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[step.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *StepMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[step.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *StepMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, step.FieldSkipReason)
}

// SetNeedsRework sets the "needs_rework" field.
func (m *StepMutation) SetNeedsRework(b bool) {
	m.needs_rework = &b
}

// NeedsRework returns the value of the "needs_rework" field in the mutation.
func (m *StepMutation) NeedsRework() (r bool, exists bool) {
	v := m.needs_rework
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsRework returns the old "needs_rework" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldNeedsRework(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsRework is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsRework requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsRework: %w", err)
	}
	return oldValue.NeedsRework, nil
}

// ResetNeedsRework resets all changes to the "needs_rework" field.
func (m *StepMutation) ResetNeedsRework() {
	m.needs_rework = nil
}

// SetPreviousOutput sets the "previous_output" field.
func (m *StepMutation) SetPreviousOutput(s string) {
	m.previous_output = &s
}

// PreviousOutput returns the value of the "previous_output" field in the mutation.
func (m *StepMutation) PreviousOutput() (r string, exists bool) {
	v := m.previous_output
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousOutput returns the old "previous_output" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldPreviousOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousOutput: %w", err)
	}
	return oldValue.PreviousOutput, nil
}

// ClearPreviousOutput clears the value of the "previous_output" field.
func (m *StepMutation) ClearPreviousOutput() {
	m.previous_output = nil
	m.clearedFields[step.FieldPreviousOutput] = struct{}{}
}

// PreviousOutputCleared returns if the "previous_output" field was cleared in this mutation.
func (m *StepMutation) PreviousOutputCleared() bool {
	_, ok := m.clearedFields[step.FieldPreviousOutput]
	return ok
}

// ResetPreviousOutput resets all changes to the "previous_output" field.
func (m *StepMutation) ResetPreviousOutput() {
	m.previous_output = nil
	delete(m.clearedFields, step.FieldPreviousOutput)
}

// SetTrace sets the "trace" field.
func (m *StepMutation) SetTrace(value map[string]interface{}) {
	m.trace = &value
}

// Trace returns the value of the "trace" field in the mutation.
func (m *StepMutation) Trace() (r map[string]interface{}, exists bool) {
	v := m.trace
	if v == nil {
		return
	}
	return *v, true
}

// OldTrace returns the old "trace" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTrace(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrace: %w", err)
	}
	return oldValue.Trace, nil
}

// ClearTrace clears the value of the "trace" field.
func (m *StepMutation) ClearTrace() {
	m.trace = nil
	m.clearedFields[step.FieldTrace] = struct{}{}
}

// TraceCleared returns if the "trace" field was cleared in this mutation.
func (m *StepMutation) TraceCleared() bool {
	_, ok := m.clearedFields[step.FieldTrace]
	return ok
}

// ResetTrace resets all changes to the "trace" field.
func (m *StepMutation) ResetTrace() {
	m.trace = nil
	delete(m.clearedFields, step.FieldTrace)
}

// SetStartedAt sets the "started_at" field.
func (m *StepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[step.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, step.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[step.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[step.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, step.FieldCompletedAt)
}

// ClearStory clears the "story" edge to the Story entity.
func (m *StepMutation) ClearStory() {
	m.clearedstory = true
	m.clearedFields[step.FieldStoryID] = struct{}{}
}

// StoryCleared reports if the "story" edge to the Story entity was cleared.
func (m *StepMutation) StoryCleared() bool {
	return m.clearedstory
}

// StoryIDs returns the "story" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StoryID instead. It exists only for internal usage by the builders.
func (m *StepMutation) StoryIDs() (ids []string) {
	if id := m.story; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStory resets all changes to the "story" edge.
func (m *StepMutation) ResetStory() {
	m.story = nil
	m.clearedstory = false
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by ids.
func (m *StepMutation) AddChatMessageIDs(ids ...string) {
	if m.chat_messages == nil {
		m.chat_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_messages[ids[i]] = struct{}{}
	}
}

// ClearChatMessages clears the "chat_messages" edge to the ChatMessage entity.
func (m *StepMutation) ClearChatMessages() {
	m.clearedchat_messages = true
}

// ChatMessagesCleared reports if the "chat_messages" edge to the ChatMessage entity was cleared.
func (m *StepMutation) ChatMessagesCleared() bool {
	return m.clearedchat_messages
}

// RemoveChatMessageIDs removes the "chat_messages" edge to the ChatMessage entity by IDs.
func (m *StepMutation) RemoveChatMessageIDs(ids ...string) {
	if m.removedchat_messages == nil {
		m.removedchat_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_messages, ids[i])
		m.removedchat_messages[ids[i]] = struct{}{}
	}
}

// RemovedChatMessages returns the removed IDs of the "chat_messages" edge to the ChatMessage entity.
func (m *StepMutation) RemovedChatMessagesIDs() (ids []string) {
	for id := range m.removedchat_messages {
		ids = append(ids, id)
	}
	return
}

// ChatMessagesIDs returns the "chat_messages" edge IDs in the mutation.
func (m *StepMutation) ChatMessagesIDs() (ids []string) {
	for id := range m.chat_messages {
		ids = append(ids, id)
	}
	return
}

// ResetChatMessages resets all changes to the "chat_messages" edge.
func (m *StepMutation) ResetChatMessages() {
	m.chat_messages = nil
	m.clearedchat_messages = false
	m.removedchat_messages = nil
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.story != nil {
		fields = append(fields, step.FieldStoryID)
	}
	if m.order_index != nil {
		fields = append(fields, step.FieldOrderIndex)
	}
	if m.wave != nil {
		fields = append(fields, step.FieldWave)
	}
	if m.name != nil {
		fields = append(fields, step.FieldName)
	}
	if m.capability != nil {
		fields = append(fields, step.FieldCapability)
	}
	if m.language != nil {
		fields = append(fields, step.FieldLanguage)
	}
	if m.description != nil {
		fields = append(fields, step.FieldDescription)
	}
	if m.depends_on != nil {
		fields = append(fields, step.FieldDependsOn)
	}
	if m.input != nil {
		fields = append(fields, step.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, step.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, step.FieldError)
	}
	if m.status != nil {
		fields = append(fields, step.FieldStatus)
	}
	if m.agent_id != nil {
		fields = append(fields, step.FieldAgentID)
	}
	if m.attempts != nil {
		fields = append(fields, step.FieldAttempts)
	}
	if m.approval != nil {
		fields = append(fields, step.FieldApproval)
	}
	if m.approval_feedback != nil {
		fields = append(fields, step.FieldApprovalFeedback)
	}
	if m.skip_reason != nil {
		fields = append(fields, step.FieldSkipReason)
	}
	if m.needs_rework != nil {
		fields = append(fields, step.FieldNeedsRework)
	}
	if m.previous_output != nil {
		fields = append(fields, step.FieldPreviousOutput)
	}
	if m.trace != nil {
		fields = append(fields, step.FieldTrace)
	}
	if m.started_at != nil {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, step.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldStoryID:
		return m.StoryID()
	case step.FieldOrderIndex:
		return m.OrderIndex()
	case step.FieldWave:
		return m.Wave()
	case step.FieldName:
		return m.Name()
	case step.FieldCapability:
		return m.Capability()
	case step.FieldLanguage:
		return m.Language()
	case step.FieldDescription:
		return m.Description()
	case step.FieldDependsOn:
		return m.DependsOn()
	case step.FieldInput:
		return m.Input()
	case step.FieldOutput:
		return m.Output()
	case step.FieldError:
		return m.Error()
	case step.FieldStatus:
		return m.Status()
	case step.FieldAgentID:
		return m.AgentID()
	case step.FieldAttempts:
		return m.Attempts()
	case step.FieldApproval:
		return m.Approval()
	case step.FieldApprovalFeedback:
		return m.ApprovalFeedback()
	case step.FieldSkipReason:
		return m.SkipReason()
	case step.FieldNeedsRework:
		return m.NeedsRework()
	case step.FieldPreviousOutput:
		return m.PreviousOutput()
	case step.FieldTrace:
		return m.Trace()
	case step.FieldStartedAt:
		return m.StartedAt()
	case step.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldStoryID:
		return m.OldStoryID(ctx)
	case step.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case step.FieldWave:
		return m.OldWave(ctx)
	case step.FieldName:
		return m.OldName(ctx)
	case step.FieldCapability:
		return m.OldCapability(ctx)
	case step.FieldLanguage:
		return m.OldLanguage(ctx)
	case step.FieldDescription:
		return m.OldDescription(ctx)
	case step.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case step.FieldInput:
		return m.OldInput(ctx)
	case step.FieldOutput:
		return m.OldOutput(ctx)
	case step.FieldError:
		return m.OldError(ctx)
	case step.FieldStatus:
		return m.OldStatus(ctx)
	case step.FieldAgentID:
		return m.OldAgentID(ctx)
	case step.FieldAttempts:
		return m.OldAttempts(ctx)
	case step.FieldApproval:
		return m.OldApproval(ctx)
	case step.FieldApprovalFeedback:
		return m.OldApprovalFeedback(ctx)
	case step.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case step.FieldNeedsRework:
		return m.OldNeedsRework(ctx)
	case step.FieldPreviousOutput:
		return m.OldPreviousOutput(ctx)
	case step.FieldTrace:
		return m.OldTrace(ctx)
	case step.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case step.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldStoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryID(v)
		return nil
	case step.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case step.FieldWave:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWave(v)
		return nil
	case step.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case step.FieldCapability:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapability(v)
		return nil
	case step.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case step.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case step.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case step.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case step.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case step.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case step.FieldStatus:
		v, ok := value.(step.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case step.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case step.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case step.FieldApproval:
		v, ok := value.(step.Approval)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproval(v)
		return nil
	case step.FieldApprovalFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalFeedback(v)
		return nil
	case step.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case step.FieldNeedsRework:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsRework(v)
		return nil
	case step.FieldPreviousOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousOutput(v)
		return nil
	case step.FieldTrace:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrace(v)
		return nil
	case step.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case step.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, step.FieldOrderIndex)
	}
	if m.addwave != nil {
		fields = append(fields, step.FieldWave)
	}
	if m.addattempts != nil {
		fields = append(fields, step.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case step.FieldOrderIndex:
		return m.AddedOrderIndex()
	case step.FieldWave:
		return m.AddedWave()
	case step.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case step.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	case step.FieldWave:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWave(v)
		return nil
	case step.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldWave) {
		fields = append(fields, step.FieldWave)
	}
	if m.FieldCleared(step.FieldLanguage) {
		fields = append(fields, step.FieldLanguage)
	}
	if m.FieldCleared(step.FieldDescription) {
		fields = append(fields, step.FieldDescription)
	}
	if m.FieldCleared(step.FieldDependsOn) {
		fields = append(fields, step.FieldDependsOn)
	}
	if m.FieldCleared(step.FieldInput) {
		fields = append(fields, step.FieldInput)
	}
	if m.FieldCleared(step.FieldOutput) {
		fields = append(fields, step.FieldOutput)
	}
	if m.FieldCleared(step.FieldError) {
		fields = append(fields, step.FieldError)
	}
	if m.FieldCleared(step.FieldAgentID) {
		fields = append(fields, step.FieldAgentID)
	}
	if m.FieldCleared(step.FieldApproval) {
		fields = append(fields, step.FieldApproval)
	}
	if m.FieldCleared(step.FieldApprovalFeedback) {
		fields = append(fields, step.FieldApprovalFeedback)
	}
	if m.FieldCleared(step.FieldSkipReason) {
		fields = append(fields, step.FieldSkipReason)
	}
	if m.FieldCleared(step.FieldPreviousOutput) {
		fields = append(fields, step.FieldPreviousOutput)
	}
	if m.FieldCleared(step.FieldTrace) {
		fields = append(fields, step.FieldTrace)
	}
	if m.FieldCleared(step.FieldStartedAt) {
		fields = append(fields, step.FieldStartedAt)
	}
	if m.FieldCleared(step.FieldCompletedAt) {
		fields = append(fields, step.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldWave:
		m.ClearWave()
		return nil
	case step.FieldLanguage:
		m.ClearLanguage()
		return nil
	case step.FieldDescription:
		m.ClearDescription()
		return nil
	case step.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case step.FieldInput:
		m.ClearInput()
		return nil
	case step.FieldOutput:
		m.ClearOutput()
		return nil
	case step.FieldError:
		m.ClearError()
		return nil
	case step.FieldAgentID:
		m.ClearAgentID()
		return nil
	case step.FieldApproval:
		m.ClearApproval()
		return nil
	case step.FieldApprovalFeedback:
		m.ClearApprovalFeedback()
		return nil
	case step.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case step.FieldPreviousOutput:
		m.ClearPreviousOutput()
		return nil
	case step.FieldTrace:
		m.ClearTrace()
		return nil
	case step.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldStoryID:
		m.ResetStoryID()
		return nil
	case step.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case step.FieldWave:
		m.ResetWave()
		return nil
	case step.FieldName:
		m.ResetName()
		return nil
	case step.FieldCapability:
		m.ResetCapability()
		return nil
	case step.FieldLanguage:
		m.ResetLanguage()
		return nil
	case step.FieldDescription:
		m.ResetDescription()
		return nil
	case step.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case step.FieldInput:
		m.ResetInput()
		return nil
	case step.FieldOutput:
		m.ResetOutput()
		return nil
	case step.FieldError:
		m.ResetError()
		return nil
	case step.FieldStatus:
		m.ResetStatus()
		return nil
	case step.FieldAgentID:
		m.ResetAgentID()
		return nil
	case step.FieldAttempts:
		m.ResetAttempts()
		return nil
	case step.FieldApproval:
		m.ResetApproval()
		return nil
	case step.FieldApprovalFeedback:
		m.ResetApprovalFeedback()
		return nil
	case step.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case step.FieldNeedsRework:
		m.ResetNeedsRework()
		return nil
	case step.FieldPreviousOutput:
		m.ResetPreviousOutput()
		return nil
	case step.FieldTrace:
		m.ResetTrace()
		return nil
	case step.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case step.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.story != nil {
		edges = append(edges, step.EdgeStory)
	}
	if m.chat_messages != nil {
		edges = append(edges, step.EdgeChatMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeStory:
		if id := m.story; id != nil {
			return []ent.Value{*id}
		}
	case step.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.chat_messages))
		for id := range m.chat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchat_messages != nil {
		edges = append(edges, step.EdgeChatMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.removedchat_messages))
		for id := range m.removedchat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstory {
		edges = append(edges, step.EdgeStory)
	}
	if m.clearedchat_messages {
		edges = append(edges, step.EdgeChatMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	switch name {
	case step.EdgeStory:
		return m.clearedstory
	case step.EdgeChatMessages:
		return m.clearedchat_messages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	switch name {
	case step.EdgeStory:
		m.ClearStory()
		return nil
	}
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	switch name {
	case step.EdgeStory:
		m.ResetStory()
		return nil
	case step.EdgeChatMessages:
		m.ResetChatMessages()
		return nil
	}
	return fmt.Errorf("unknown Step edge %s", name)
}

// StoryMutation represents an operation that mutates the Story nodes in the graph.
type StoryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	title                *string
	description          *string
	issue_provider       *string
	issue_owner          *string
	issue_repo           *string
	issue_number         *int
	addissue_number      *int
	issue_url            *string
	repository_path      *string
	worktree_path        *string
	branch               *string
	automation_mode      *story.AutomationMode
	dispatch_target      *story.DispatchTarget
	status               *story.Status
	analyzed_context     *map[string]interface{}
	plan                 *map[string]interface{}
	current_wave         *int
	addcurrent_wave      *int
	max_parallelism      *int
	addmax_parallelism   *int
	gate_mode            *story.GateMode
	last_gate_result     *map[string]interface{}
	pull_request_url     *string
	error_message        *string
	created_at           *time.Time
	updated_at           *time.Time
	completed_at         *time.Time
	clearedFields        map[string]struct{}
	steps                map[string]struct{}
	removedsteps         map[string]struct{}
	clearedsteps         bool
	chat_messages        map[string]struct{}
	removedchat_messages map[string]struct{}
	clearedchat_messages bool
	events               map[int64]struct{}
	removedevents        map[int64]struct{}
	clearedevents        bool
	done                 bool
	oldValue             func(context.Context) (*Story, error)
	predicates           []predicate.Story
}

var _ ent.Mutation = (*StoryMutation)(nil)

// storyOption allows management of the mutation configuration using functional options.
type storyOption func(*StoryMutation)

// newStoryMutation creates new mutation for the Story entity.
func newStoryMutation(c config, op Op, opts ...storyOption) *StoryMutation {
	m := &StoryMutation{
		config:        c,
		op:            op,
		typ:           TypeStory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoryID sets the ID field of the mutation.
func withStoryID(id string) storyOption {
	return func(m *StoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Story
		)
		m.oldValue = func(ctx context.Context) (*Story, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Story.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStory sets the old Story of the mutation.
func withStory(node *Story) storyOption {
	return func(m *StoryMutation) {
		m.oldValue = func(context.Context) (*Story, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Story entities.
func (m *StoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Story.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *StoryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StoryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StoryMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *StoryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StoryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StoryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[story.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StoryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[story.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StoryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, story.FieldDescription)
}

// SetIssueProvider sets the "issue_provider" field.
func (m *StoryMutation) SetIssueProvider(s string) {
	m.issue_provider = &s
}

// IssueProvider returns the value of the "issue_provider" field in the mutation.
func (m *StoryMutation) IssueProvider() (r string, exists bool) {
	v := m.issue_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueProvider returns the old "issue_provider" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldIssueProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueProvider: %w", err)
	}
	return oldValue.IssueProvider, nil
}

// ClearIssueProvider clears the value of the "issue_provider" field.
func (m *StoryMutation) ClearIssueProvider() {
	m.issue_provider = nil
	m.clearedFields[story.FieldIssueProvider] = struct{}{}
}

// IssueProviderCleared returns if the "issue_provider" field was cleared in this mutation.
func (m *StoryMutation) IssueProviderCleared() bool {
	_, ok := m.clearedFields[story.FieldIssueProvider]
	return ok
}

// ResetIssueProvider resets all changes to the "issue_provider" field.
func (m *StoryMutation) ResetIssueProvider() {
	m.issue_provider = nil
	delete(m.clearedFields, story.FieldIssueProvider)
}

// SetIssueOwner sets the "issue_owner" field.
func (m *StoryMutation) SetIssueOwner(s string) {
	m.issue_owner = &s
}

// IssueOwner returns the value of the "issue_owner" field in the mutation.
func (m *StoryMutation) IssueOwner() (r string, exists bool) {
	v := m.issue_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueOwner returns the old "issue_owner" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldIssueOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueOwner: %w", err)
	}
	return oldValue.IssueOwner, nil
}

// ClearIssueOwner clears the value of the "issue_owner" field.
func (m *StoryMutation) ClearIssueOwner() {
	m.issue_owner = nil
	m.clearedFields[story.FieldIssueOwner] = struct{}{}
}

// IssueOwnerCleared returns if the "issue_owner" field was cleared in this mutation.
func (m *StoryMutation) IssueOwnerCleared() bool {
	_, ok := m.clearedFields[story.FieldIssueOwner]
	return ok
}

// ResetIssueOwner resets all changes to the "issue_owner" field.
func (m *StoryMutation) ResetIssueOwner() {
	m.issue_owner = nil
	delete(m.clearedFields, story.FieldIssueOwner)
}

// SetIssueRepo sets the "issue_repo" field.
func (m *StoryMutation) SetIssueRepo(s string) {
	m.issue_repo = &s
}

// IssueRepo returns the value of the "issue_repo" field in the mutation.
func (m *StoryMutation) IssueRepo() (r string, exists bool) {
	v := m.issue_repo
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueRepo returns the old "issue_repo" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldIssueRepo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueRepo: %w", err)
	}
	return oldValue.IssueRepo, nil
}

// ClearIssueRepo clears the value of the "issue_repo" field.
func (m *StoryMutation) ClearIssueRepo() {
	m.issue_repo = nil
	m.clearedFields[story.FieldIssueRepo] = struct{}{}
}

// IssueRepoCleared returns if the "issue_repo" field was cleared in this mutation.
func (m *StoryMutation) IssueRepoCleared() bool {
	_, ok := m.clearedFields[story.FieldIssueRepo]
	return ok
}

// ResetIssueRepo resets all changes to the "issue_repo" field.
func (m *StoryMutation) ResetIssueRepo() {
	m.issue_repo = nil
	delete(m.clearedFields, story.FieldIssueRepo)
}

// SetIssueNumber sets the "issue_number" field.
func (m *StoryMutation) SetIssueNumber(i int) {
	m.issue_number = &i
	m.addissue_number = nil
}

// IssueNumber returns the value of the "issue_number" field in the mutation.
func (m *StoryMutation) IssueNumber() (r int, exists bool) {
	v := m.issue_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueNumber returns the old "issue_number" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldIssueNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueNumber: %w", err)
	}
	return oldValue.IssueNumber, nil
}

// AddIssueNumber adds i to the "issue_number" field.
func (m *StoryMutation) AddIssueNumber(i int) {
	if m.addissue_number != nil {
		*m.addissue_number += i
	} else {
		m.addissue_number = &i
	}
}

// AddedIssueNumber returns the value that was added to the "issue_number" field in this mutation.
func (m *StoryMutation) AddedIssueNumber() (r int, exists bool) {
	v := m.addissue_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (m *StoryMutation) ClearIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
	m.clearedFields[story.FieldIssueNumber] = struct{}{}
}

// IssueNumberCleared returns if the "issue_number" field was cleared in this mutation.
func (m *StoryMutation) IssueNumberCleared() bool {
	_, ok := m.clearedFields[story.FieldIssueNumber]
	return ok
}

// ResetIssueNumber resets all changes to the "issue_number" field.
func (m *StoryMutation) ResetIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
	delete(m.clearedFields, story.FieldIssueNumber)
}

// SetIssueURL sets the "issue_url" field.
func (m *StoryMutation) SetIssueURL(s string) {
	m.issue_url = &s
}

// IssueURL returns the value of the "issue_url" field in the mutation.
func (m *StoryMutation) IssueURL() (r string, exists bool) {
	v := m.issue_url
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueURL returns the old "issue_url" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldIssueURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueURL: %w", err)
	}
	return oldValue.IssueURL, nil
}

// ClearIssueURL clears the value of the "issue_url" field.
func (m *StoryMutation) ClearIssueURL() {
	m.issue_url = nil
	m.clearedFields[story.FieldIssueURL] = struct{}{}
}

// IssueURLCleared returns if the "issue_url" field was cleared in this mutation.
func (m *StoryMutation) IssueURLCleared() bool {
	_, ok := m.clearedFields[story.FieldIssueURL]
	return ok
}

// ResetIssueURL resets all changes to the "issue_url" field.
func (m *StoryMutation) ResetIssueURL() {
	m.issue_url = nil
	delete(m.clearedFields, story.FieldIssueURL)
}

// SetRepositoryPath sets the "repository_path" field.
func (m *StoryMutation) SetRepositoryPath(s string) {
	m.repository_path = &s
}

// RepositoryPath returns the value of the "repository_path" field in the mutation.
func (m *StoryMutation) RepositoryPath() (r string, exists bool) {
	v := m.repository_path
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryPath returns the old "repository_path" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldRepositoryPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryPath: %w", err)
	}
	return oldValue.RepositoryPath, nil
}

// ClearRepositoryPath clears the value of the "repository_path" field.
func (m *StoryMutation) ClearRepositoryPath() {
	m.repository_path = nil
	m.clearedFields[story.FieldRepositoryPath] = struct{}{}
}

// RepositoryPathCleared returns if the "repository_path" field was cleared in this mutation.
func (m *StoryMutation) RepositoryPathCleared() bool {
	_, ok := m.clearedFields[story.FieldRepositoryPath]
	return ok
}

// ResetRepositoryPath resets all changes to the "repository_path" field.
func (m *StoryMutation) ResetRepositoryPath() {
	m.repository_path = nil
	delete(m.clearedFields, story.FieldRepositoryPath)
}

// SetWorktreePath sets the "worktree_path" field.
func (m *StoryMutation) SetWorktreePath(s string) {
	m.worktree_path = &s
}

// WorktreePath returns the value of the "worktree_path" field in the mutation.
func (m *StoryMutation) WorktreePath() (r string, exists bool) {
	v := m.worktree_path
	if v == nil {
		return
	}
	return *v, true
}

// OldWorktreePath returns the old "worktree_path" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldWorktreePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorktreePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorktreePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorktreePath: %w", err)
	}
	return oldValue.WorktreePath, nil
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (m *StoryMutation) ClearWorktreePath() {
	m.worktree_path = nil
	m.clearedFields[story.FieldWorktreePath] = struct{}{}
}

// WorktreePathCleared returns if the "worktree_path" field was cleared in this mutation.
func (m *StoryMutation) WorktreePathCleared() bool {
	_, ok := m.clearedFields[story.FieldWorktreePath]
	return ok
}

// ResetWorktreePath resets all changes to the "worktree_path" field.
func (m *StoryMutation) ResetWorktreePath() {
	m.worktree_path = nil
	delete(m.clearedFields, story.FieldWorktreePath)
}

// SetBranch sets the "branch" field.
func (m *StoryMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *StoryMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ClearBranch clears the value of the "branch" field.
func (m *StoryMutation) ClearBranch() {
	m.branch = nil
	m.clearedFields[story.FieldBranch] = struct{}{}
}

// BranchCleared returns if the "branch" field was cleared in this mutation.
func (m *StoryMutation) BranchCleared() bool {
	_, ok := m.clearedFields[story.FieldBranch]
	return ok
}

// ResetBranch resets all changes to the "branch" field.
func (m *StoryMutation) ResetBranch() {
	m.branch = nil
	delete(m.clearedFields, story.FieldBranch)
}

// SetAutomationMode sets the "automation_mode" field.
func (m *StoryMutation) SetAutomationMode(sm story.AutomationMode) {
	m.automation_mode = &sm
}

// AutomationMode returns the value of the "automation_mode" field in the mutation.
func (m *StoryMutation) AutomationMode() (r story.AutomationMode, exists bool) {
	v := m.automation_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldAutomationMode returns the old "automation_mode" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldAutomationMode(ctx context.Context) (v story.AutomationMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutomationMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutomationMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutomationMode: %w", err)
	}
	return oldValue.AutomationMode, nil
}

// ResetAutomationMode resets all changes to the "automation_mode" field.
func (m *StoryMutation) ResetAutomationMode() {
	m.automation_mode = nil
}

// SetDispatchTarget sets the "dispatch_target" field.
func (m *StoryMutation) SetDispatchTarget(st story.DispatchTarget) {
	m.dispatch_target = &st
}

// DispatchTarget returns the value of the "dispatch_target" field in the mutation.
func (m *StoryMutation) DispatchTarget() (r story.DispatchTarget, exists bool) {
	v := m.dispatch_target
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchTarget returns the old "dispatch_target" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldDispatchTarget(ctx context.Context) (v story.DispatchTarget, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchTarget: %w", err)
	}
	return oldValue.DispatchTarget, nil
}

// ResetDispatchTarget resets all changes to the "dispatch_target" field.
func (m *StoryMutation) ResetDispatchTarget() {
	m.dispatch_target = nil
}

// SetStatus sets the "status" field.
func (m *StoryMutation) SetStatus(s story.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StoryMutation) Status() (r story.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldStatus(ctx context.Context) (v story.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StoryMutation) ResetStatus() {
	m.status = nil
}

// SetAnalyzedContext sets the "analyzed_context" field.
func (m *StoryMutation) SetAnalyzedContext(value map[string]interface{}) {
	m.analyzed_context = &value
}

// AnalyzedContext returns the value of the "analyzed_context" field in the mutation.
func (m *StoryMutation) AnalyzedContext() (r map[string]interface{}, exists bool) {
	v := m.analyzed_context
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedContext returns the old "analyzed_context" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldAnalyzedContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedContext: %w", err)
	}
	return oldValue.AnalyzedContext, nil
}

// ClearAnalyzedContext clears the value of the "analyzed_context" field.
func (m *StoryMutation) ClearAnalyzedContext() {
	m.analyzed_context = nil
	m.clearedFields[story.FieldAnalyzedContext] = struct{}{}
}

// AnalyzedContextCleared returns if the "analyzed_context" field was cleared in this mutation.
func (m *StoryMutation) AnalyzedContextCleared() bool {
	_, ok := m.clearedFields[story.FieldAnalyzedContext]
	return ok
}

// ResetAnalyzedContext resets all changes to the "analyzed_context" field.
func (m *StoryMutation) ResetAnalyzedContext() {
	m.analyzed_context = nil
	delete(m.clearedFields, story.FieldAnalyzedContext)
}

// SetPlan sets the "plan" field.
func (m *StoryMutation) SetPlan(value map[string]interface{}) {
	m.plan = &value
}

// Plan returns the value of the "plan" field in the mutation.
func (m *StoryMutation) Plan() (r map[string]interface{}, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *StoryMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[story.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *StoryMutation) PlanCleared() bool {
	_, ok := m.clearedFields[story.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *StoryMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, story.FieldPlan)
}

// SetCurrentWave sets the "current_wave" field.
func (m *StoryMutation) SetCurrentWave(i int) {
	m.current_wave = &i
	m.addcurrent_wave = nil
}

// CurrentWave returns the value of the "current_wave" field in the mutation.
func (m *StoryMutation) CurrentWave() (r int, exists bool) {
	v := m.current_wave
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentWave returns the old "current_wave" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldCurrentWave(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentWave is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentWave requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentWave: %w", err)
	}
	return oldValue.CurrentWave, nil
}

// AddCurrentWave adds i to the "current_wave" field.
func (m *StoryMutation) AddCurrentWave(i int) {
	if m.addcurrent_wave != nil {
		*m.addcurrent_wave += i
	} else {
		m.addcurrent_wave = &i
	}
}

// AddedCurrentWave returns the value that was added to the "current_wave" field in this mutation.
func (m *StoryMutation) AddedCurrentWave() (r int, exists bool) {
	v := m.addcurrent_wave
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentWave resets all changes to the "current_wave" field.
func (m *StoryMutation) ResetCurrentWave() {
	m.current_wave = nil
	m.addcurrent_wave = nil
}

// SetMaxParallelism sets the "max_parallelism" field.
func (m *StoryMutation) SetMaxParallelism(i int) {
	m.max_parallelism = &i
	m.addmax_parallelism = nil
}

// MaxParallelism returns the value of the "max_parallelism" field in the mutation.
func (m *StoryMutation) MaxParallelism() (r int, exists bool) {
	v := m.max_parallelism
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxParallelism returns the old "max_parallelism" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldMaxParallelism(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxParallelism is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxParallelism requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxParallelism: %w", err)
	}
	return oldValue.MaxParallelism, nil
}

// AddMaxParallelism adds i to the "max_parallelism" field.
func (m *StoryMutation) AddMaxParallelism(i int) {
	if m.addmax_parallelism != nil {
		*m.addmax_parallelism += i
	} else {
		m.addmax_parallelism = &i
	}
}

// AddedMaxParallelism returns the value that was added to the "max_parallelism" field in this mutation.
func (m *StoryMutation) AddedMaxParallelism() (r int, exists bool) {
	v := m.addmax_parallelism
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxParallelism resets all changes to the "max_parallelism" field.
func (m *StoryMutation) ResetMaxParallelism() {
	m.max_parallelism = nil
	m.addmax_parallelism = nil
}

// SetGateMode sets the "gate_mode" field.
func (m *StoryMutation) SetGateMode(sm story.GateMode) {
	m.gate_mode = &sm
}

// GateMode returns the value of the "gate_mode" field in the mutation.
func (m *StoryMutation) GateMode() (r story.GateMode, exists bool) {
	v := m.gate_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldGateMode returns the old "gate_mode" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldGateMode(ctx context.Context) (v story.GateMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateMode: %w", err)
	}
	return oldValue.GateMode, nil
}

// ResetGateMode resets all changes to the "gate_mode" field.
func (m *StoryMutation) ResetGateMode() {
	m.gate_mode = nil
}

// SetLastGateResult sets the "last_gate_result" field.
func (m *StoryMutation) SetLastGateResult(value map[string]interface{}) {
	m.last_gate_result = &value
}

// LastGateResult returns the value of the "last_gate_result" field in the mutation.
func (m *StoryMutation) LastGateResult() (r map[string]interface{}, exists bool) {
	v := m.last_gate_result
	if v == nil {
		return
	}
	return *v, true
}

// OldLastGateResult returns the old "last_gate_result" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldLastGateResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastGateResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastGateResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastGateResult: %w", err)
	}
	return oldValue.LastGateResult, nil
}

// ClearLastGateResult clears the value of the "last_gate_result" field.
func (m *StoryMutation) ClearLastGateResult() {
	m.last_gate_result = nil
	m.clearedFields[story.FieldLastGateResult] = struct{}{}
}

// LastGateResultCleared returns if the "last_gate_result" field was cleared in this mutation.
func (m *StoryMutation) LastGateResultCleared() bool {
	_, ok := m.clearedFields[story.FieldLastGateResult]
	return ok
}

// ResetLastGateResult resets all changes to the "last_gate_result" field.
func (m *StoryMutation) ResetLastGateResult() {
	m.last_gate_result = nil
	delete(m.clearedFields, story.FieldLastGateResult)
}

// SetPullRequestURL sets the "pull_request_url" field.
func (m *StoryMutation) SetPullRequestURL(s string) {
	m.pull_request_url = &s
}

// PullRequestURL returns the value of the "pull_request_url" field in the mutation.
func (m *StoryMutation) PullRequestURL() (r string, exists bool) {
	v := m.pull_request_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPullRequestURL returns the old "pull_request_url" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldPullRequestURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPullRequestURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPullRequestURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPullRequestURL: %w", err)
	}
	return oldValue.PullRequestURL, nil
}

// ClearPullRequestURL clears the value of the "pull_request_url" field.
func (m *StoryMutation) ClearPullRequestURL() {
	m.pull_request_url = nil
	m.clearedFields[story.FieldPullRequestURL] = struct{}{}
}

// PullRequestURLCleared returns if the "pull_request_url" field was cleared in this mutation.
func (m *StoryMutation) PullRequestURLCleared() bool {
	_, ok := m.clearedFields[story.FieldPullRequestURL]
	return ok
}

// ResetPullRequestURL resets all changes to the "pull_request_url" field.
func (m *StoryMutation) ResetPullRequestURL() {
	m.pull_request_url = nil
	delete(m.clearedFields, story.FieldPullRequestURL)
}

// SetErrorMessage sets the "error_message" field.
func (m *StoryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StoryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StoryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[story.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StoryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[story.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StoryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, story.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *StoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *StoryMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StoryMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StoryMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[story.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StoryMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[story.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StoryMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, story.FieldCompletedAt)
}

// AddStepIDs adds the "steps" edge to the Step entity by ids.
func (m *StoryMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the Step entity.
func (m *StoryMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the Step entity was cleared.
func (m *StoryMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the Step entity by IDs.
func (m *StoryMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the Step entity.
func (m *StoryMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *StoryMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *StoryMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by ids.
func (m *StoryMutation) AddChatMessageIDs(ids ...string) {
	if m.chat_messages == nil {
		m.chat_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_messages[ids[i]] = struct{}{}
	}
}

// ClearChatMessages clears the "chat_messages" edge to the ChatMessage entity.
func (m *StoryMutation) ClearChatMessages() {
	m.clearedchat_messages = true
}

// ChatMessagesCleared reports if the "chat_messages" edge to the ChatMessage entity was cleared.
func (m *StoryMutation) ChatMessagesCleared() bool {
	return m.clearedchat_messages
}

// RemoveChatMessageIDs removes the "chat_messages" edge to the ChatMessage entity by IDs.
func (m *StoryMutation) RemoveChatMessageIDs(ids ...string) {
	if m.removedchat_messages == nil {
		m.removedchat_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_messages, ids[i])
		m.removedchat_messages[ids[i]] = struct{}{}
	}
}

// RemovedChatMessages returns the removed IDs of the "chat_messages" edge to the ChatMessage entity.
func (m *StoryMutation) RemovedChatMessagesIDs() (ids []string) {
	for id := range m.removedchat_messages {
		ids = append(ids, id)
	}
	return
}

// ChatMessagesIDs returns the "chat_messages" edge IDs in the mutation.
func (m *StoryMutation) ChatMessagesIDs() (ids []string) {
	for id := range m.chat_messages {
		ids = append(ids, id)
	}
	return
}

// ResetChatMessages resets all changes to the "chat_messages" edge.
func (m *StoryMutation) ResetChatMessages() {
	m.chat_messages = nil
	m.clearedchat_messages = false
	m.removedchat_messages = nil
}

// AddEventIDs adds the "events" edge to the StoryEvent entity by ids.
func (m *StoryMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the StoryEvent entity.
func (m *StoryMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the StoryEvent entity was cleared.
func (m *StoryMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the StoryEvent entity by IDs.
func (m *StoryMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the StoryEvent entity.
func (m *StoryMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *StoryMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *StoryMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the StoryMutation builder.
func (m *StoryMutation) Where(ps ...predicate.Story) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Story, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Story).
func (m *StoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoryMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.title != nil {
		fields = append(fields, story.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, story.FieldDescription)
	}
	if m.issue_provider != nil {
		fields = append(fields, story.FieldIssueProvider)
	}
	if m.issue_owner != nil {
		fields = append(fields, story.FieldIssueOwner)
	}
	if m.issue_repo != nil {
		fields = append(fields, story.FieldIssueRepo)
	}
	if m.issue_number != nil {
		fields = append(fields, story.FieldIssueNumber)
	}
	if m.issue_url != nil {
		fields = append(fields, story.FieldIssueURL)
	}
	if m.repository_path != nil {
		fields = append(fields, story.FieldRepositoryPath)
	}
	if m.worktree_path != nil {
		fields = append(fields, story.FieldWorktreePath)
	}
	if m.branch != nil {
		fields = append(fields, story.FieldBranch)
	}
	if m.automation_mode != nil {
		fields = append(fields, story.FieldAutomationMode)
	}
	if m.dispatch_target != nil {
		fields = append(fields, story.FieldDispatchTarget)
	}
	if m.status != nil {
		fields = append(fields, story.FieldStatus)
	}
	if m.analyzed_context != nil {
		fields = append(fields, story.FieldAnalyzedContext)
	}
	if m.plan != nil {
		fields = append(fields, story.FieldPlan)
	}
	if m.current_wave != nil {
		fields = append(fields, story.FieldCurrentWave)
	}
	if m.max_parallelism != nil {
		fields = append(fields, story.FieldMaxParallelism)
	}
	if m.gate_mode != nil {
		fields = append(fields, story.FieldGateMode)
	}
	if m.last_gate_result != nil {
		fields = append(fields, story.FieldLastGateResult)
	}
	if m.pull_request_url != nil {
		fields = append(fields, story.FieldPullRequestURL)
	}
	if m.error_message != nil {
		fields = append(fields, story.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, story.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, story.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, story.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case story.FieldTitle:
		return m.Title()
	case story.FieldDescription:
		return m.Description()
	case story.FieldIssueProvider:
		return m.IssueProvider()
	case story.FieldIssueOwner:
		return m.IssueOwner()
	case story.FieldIssueRepo:
		return m.IssueRepo()
	case story.FieldIssueNumber:
		return m.IssueNumber()
	case story.FieldIssueURL:
		return m.IssueURL()
	case story.FieldRepositoryPath:
		return m.RepositoryPath()
	case story.FieldWorktreePath:
		return m.WorktreePath()
	case story.FieldBranch:
		return m.Branch()
	case story.FieldAutomationMode:
		return m.AutomationMode()
	case story.FieldDispatchTarget:
		return m.DispatchTarget()
	case story.FieldStatus:
		return m.Status()
	case story.FieldAnalyzedContext:
		return m.AnalyzedContext()
	case story.FieldPlan:
		return m.Plan()
	case story.FieldCurrentWave:
		return m.CurrentWave()
	case story.FieldMaxParallelism:
		return m.MaxParallelism()
	case story.FieldGateMode:
		return m.GateMode()
	case story.FieldLastGateResult:
		return m.LastGateResult()
	case story.FieldPullRequestURL:
		return m.PullRequestURL()
	case story.FieldErrorMessage:
		return m.ErrorMessage()
	case story.FieldCreatedAt:
		return m.CreatedAt()
	case story.FieldUpdatedAt:
		return m.UpdatedAt()
	case story.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case story.FieldTitle:
		return m.OldTitle(ctx)
	case story.FieldDescription:
		return m.OldDescription(ctx)
	case story.FieldIssueProvider:
		return m.OldIssueProvider(ctx)
	case story.FieldIssueOwner:
		return m.OldIssueOwner(ctx)
	case story.FieldIssueRepo:
		return m.OldIssueRepo(ctx)
	case story.FieldIssueNumber:
		return m.OldIssueNumber(ctx)
	case story.FieldIssueURL:
		return m.OldIssueURL(ctx)
	case story.FieldRepositoryPath:
		return m.OldRepositoryPath(ctx)
	case story.FieldWorktreePath:
		return m.OldWorktreePath(ctx)
	case story.FieldBranch:
		return m.OldBranch(ctx)
	case story.FieldAutomationMode:
		return m.OldAutomationMode(ctx)
	case story.FieldDispatchTarget:
		return m.OldDispatchTarget(ctx)
	case story.FieldStatus:
		return m.OldStatus(ctx)
	case story.FieldAnalyzedContext:
		return m.OldAnalyzedContext(ctx)
	case story.FieldPlan:
		return m.OldPlan(ctx)
	case story.FieldCurrentWave:
		return m.OldCurrentWave(ctx)
	case story.FieldMaxParallelism:
		return m.OldMaxParallelism(ctx)
	case story.FieldGateMode:
		return m.OldGateMode(ctx)
	case story.FieldLastGateResult:
		return m.OldLastGateResult(ctx)
	case story.FieldPullRequestURL:
		return m.OldPullRequestURL(ctx)
	case story.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case story.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case story.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case story.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Story field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case story.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case story.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case story.FieldIssueProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueProvider(v)
		return nil
	case story.FieldIssueOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueOwner(v)
		return nil
	case story.FieldIssueRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueRepo(v)
		return nil
	case story.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueNumber(v)
		return nil
	case story.FieldIssueURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueURL(v)
		return nil
	case story.FieldRepositoryPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryPath(v)
		return nil
	case story.FieldWorktreePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorktreePath(v)
		return nil
	case story.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case story.FieldAutomationMode:
		v, ok := value.(story.AutomationMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutomationMode(v)
		return nil
	case story.FieldDispatchTarget:
		v, ok := value.(story.DispatchTarget)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchTarget(v)
		return nil
	case story.FieldStatus:
		v, ok := value.(story.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case story.FieldAnalyzedContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedContext(v)
		return nil
	case story.FieldPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case story.FieldCurrentWave:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentWave(v)
		return nil
	case story.FieldMaxParallelism:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxParallelism(v)
		return nil
	case story.FieldGateMode:
		v, ok := value.(story.GateMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateMode(v)
		return nil
	case story.FieldLastGateResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastGateResult(v)
		return nil
	case story.FieldPullRequestURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPullRequestURL(v)
		return nil
	case story.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case story.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case story.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case story.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Story field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoryMutation) AddedFields() []string {
	var fields []string
	if m.addissue_number != nil {
		fields = append(fields, story.FieldIssueNumber)
	}
	if m.addcurrent_wave != nil {
		fields = append(fields, story.FieldCurrentWave)
	}
	if m.addmax_parallelism != nil {
		fields = append(fields, story.FieldMaxParallelism)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case story.FieldIssueNumber:
		return m.AddedIssueNumber()
	case story.FieldCurrentWave:
		return m.AddedCurrentWave()
	case story.FieldMaxParallelism:
		return m.AddedMaxParallelism()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case story.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssueNumber(v)
		return nil
	case story.FieldCurrentWave:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentWave(v)
		return nil
	case story.FieldMaxParallelism:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxParallelism(v)
		return nil
	}
	return fmt.Errorf("unknown Story numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(story.FieldDescription) {
		fields = append(fields, story.FieldDescription)
	}
	if m.FieldCleared(story.FieldIssueProvider) {
		fields = append(fields, story.FieldIssueProvider)
	}
	if m.FieldCleared(story.FieldIssueOwner) {
		fields = append(fields, story.FieldIssueOwner)
	}
	if m.FieldCleared(story.FieldIssueRepo) {
		fields = append(fields, story.FieldIssueRepo)
	}
	if m.FieldCleared(story.FieldIssueNumber) {
		fields = append(fields, story.FieldIssueNumber)
	}
	if m.FieldCleared(story.FieldIssueURL) {
		fields = append(fields, story.FieldIssueURL)
	}
	if m.FieldCleared(story.FieldRepositoryPath) {
		fields = append(fields, story.FieldRepositoryPath)
	}
	if m.FieldCleared(story.FieldWorktreePath) {
		fields = append(fields, story.FieldWorktreePath)
	}
	if m.FieldCleared(story.FieldBranch) {
		fields = append(fields, story.FieldBranch)
	}
	if m.FieldCleared(story.FieldAnalyzedContext) {
		fields = append(fields, story.FieldAnalyzedContext)
	}
	if m.FieldCleared(story.FieldPlan) {
		fields = append(fields, story.FieldPlan)
	}
	if m.FieldCleared(story.FieldLastGateResult) {
		fields = append(fields, story.FieldLastGateResult)
	}
	if m.FieldCleared(story.FieldPullRequestURL) {
		fields = append(fields, story.FieldPullRequestURL)
	}
	if m.FieldCleared(story.FieldErrorMessage) {
		fields = append(fields, story.FieldErrorMessage)
	}
	if m.FieldCleared(story.FieldCompletedAt) {
		fields = append(fields, story.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoryMutation) ClearField(name string) error {
	switch name {
	case story.FieldDescription:
		m.ClearDescription()
		return nil
	case story.FieldIssueProvider:
		m.ClearIssueProvider()
		return nil
	case story.FieldIssueOwner:
		m.ClearIssueOwner()
		return nil
	case story.FieldIssueRepo:
		m.ClearIssueRepo()
		return nil
	case story.FieldIssueNumber:
		m.ClearIssueNumber()
		return nil
	case story.FieldIssueURL:
		m.ClearIssueURL()
		return nil
	case story.FieldRepositoryPath:
		m.ClearRepositoryPath()
		return nil
	case story.FieldWorktreePath:
		m.ClearWorktreePath()
		return nil
	case story.FieldBranch:
		m.ClearBranch()
		return nil
	case story.FieldAnalyzedContext:
		m.ClearAnalyzedContext()
		return nil
	case story.FieldPlan:
		m.ClearPlan()
		return nil
	case story.FieldLastGateResult:
		m.ClearLastGateResult()
		return nil
	case story.FieldPullRequestURL:
		m.ClearPullRequestURL()
		return nil
	case story.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case story.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Story nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoryMutation) ResetField(name string) error {
	switch name {
	case story.FieldTitle:
		m.ResetTitle()
		return nil
	case story.FieldDescription:
		m.ResetDescription()
		return nil
	case story.FieldIssueProvider:
		m.ResetIssueProvider()
		return nil
	case story.FieldIssueOwner:
		m.ResetIssueOwner()
		return nil
	case story.FieldIssueRepo:
		m.ResetIssueRepo()
		return nil
	case story.FieldIssueNumber:
		m.ResetIssueNumber()
		return nil
	case story.FieldIssueURL:
		m.ResetIssueURL()
		return nil
	case story.FieldRepositoryPath:
		m.ResetRepositoryPath()
		return nil
	case story.FieldWorktreePath:
		m.ResetWorktreePath()
		return nil
	case story.FieldBranch:
		m.ResetBranch()
		return nil
	case story.FieldAutomationMode:
		m.ResetAutomationMode()
		return nil
	case story.FieldDispatchTarget:
		m.ResetDispatchTarget()
		return nil
	case story.FieldStatus:
		m.ResetStatus()
		return nil
	case story.FieldAnalyzedContext:
		m.ResetAnalyzedContext()
		return nil
	case story.FieldPlan:
		m.ResetPlan()
		return nil
	case story.FieldCurrentWave:
		m.ResetCurrentWave()
		return nil
	case story.FieldMaxParallelism:
		m.ResetMaxParallelism()
		return nil
	case story.FieldGateMode:
		m.ResetGateMode()
		return nil
	case story.FieldLastGateResult:
		m.ResetLastGateResult()
		return nil
	case story.FieldPullRequestURL:
		m.ResetPullRequestURL()
		return nil
	case story.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case story.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case story.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case story.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Story field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.steps != nil {
		edges = append(edges, story.EdgeSteps)
	}
	if m.chat_messages != nil {
		edges = append(edges, story.EdgeChatMessages)
	}
	if m.events != nil {
		edges = append(edges, story.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case story.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case story.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.chat_messages))
		for id := range m.chat_messages {
			ids = append(ids, id)
		}
		return ids
	case story.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsteps != nil {
		edges = append(edges, story.EdgeSteps)
	}
	if m.removedchat_messages != nil {
		edges = append(edges, story.EdgeChatMessages)
	}
	if m.removedevents != nil {
		edges = append(edges, story.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case story.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case story.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.removedchat_messages))
		for id := range m.removedchat_messages {
			ids = append(ids, id)
		}
		return ids
	case story.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsteps {
		edges = append(edges, story.EdgeSteps)
	}
	if m.clearedchat_messages {
		edges = append(edges, story.EdgeChatMessages)
	}
	if m.clearedevents {
		edges = append(edges, story.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoryMutation) EdgeCleared(name string) bool {
	switch name {
	case story.EdgeSteps:
		return m.clearedsteps
	case story.EdgeChatMessages:
		return m.clearedchat_messages
	case story.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Story unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoryMutation) ResetEdge(name string) error {
	switch name {
	case story.EdgeSteps:
		m.ResetSteps()
		return nil
	case story.EdgeChatMessages:
		m.ResetChatMessages()
		return nil
	case story.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Story edge %s", name)
}

// StoryEventMutation represents an operation that mutates the StoryEvent nodes in the graph.
type StoryEventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	story         *string
	clearedstory  bool
	done          bool
	oldValue      func(context.Context) (*StoryEvent, error)
	predicates    []predicate.StoryEvent
}

var _ ent.Mutation = (*StoryEventMutation)(nil)

// storyeventOption allows management of the mutation configuration using functional options.
type storyeventOption func(*StoryEventMutation)

// newStoryEventMutation creates new mutation for the StoryEvent entity.
func newStoryEventMutation(c config, op Op, opts ...storyeventOption) *StoryEventMutation {
	m := &StoryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStoryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoryEventID sets the ID field of the mutation.
func withStoryEventID(id int64) storyeventOption {
	return func(m *StoryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StoryEvent
		)
		m.oldValue = func(ctx context.Context) (*StoryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StoryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStoryEvent sets the old StoryEvent of the mutation.
func withStoryEvent(node *StoryEvent) storyeventOption {
	return func(m *StoryEventMutation) {
		m.oldValue = func(context.Context) (*StoryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StoryEvent entities.
func (m *StoryEventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoryEventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoryEventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StoryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStoryID sets the "story_id" field.
func (m *StoryEventMutation) SetStoryID(s string) {
	m.story = &s
}

// StoryID returns the value of the "story_id" field in the mutation.
func (m *StoryEventMutation) StoryID() (r string, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryID returns the old "story_id" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldStoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryID: %w", err)
	}
	return oldValue.StoryID, nil
}

// ResetStoryID resets all changes to the "story_id" field.
func (m *StoryEventMutation) ResetStoryID() {
	m.story = nil
}

// SetEventType sets the "event_type" field.
func (m *StoryEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *StoryEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *StoryEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *StoryEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *StoryEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *StoryEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StoryEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoryEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StoryEvent entity.
// If the StoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StoryEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStory clears the "story" edge to the Story entity.
func (m *StoryEventMutation) ClearStory() {
	m.clearedstory = true
	m.clearedFields[storyevent.FieldStoryID] = struct{}{}
}

// StoryCleared reports if the "story" edge to the Story entity was cleared.
func (m *StoryEventMutation) StoryCleared() bool {
	return m.clearedstory
}

// StoryIDs returns the "story" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StoryID instead. It exists only for internal usage by the builders.
func (m *StoryEventMutation) StoryIDs() (ids []string) {
	if id := m.story; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStory resets all changes to the "story" edge.
func (m *StoryEventMutation) ResetStory() {
	m.story = nil
	m.clearedstory = false
}

// Where appends a list predicates to the StoryEventMutation builder.
func (m *StoryEventMutation) Where(ps ...predicate.StoryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StoryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StoryEvent).
func (m *StoryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoryEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.story != nil {
		fields = append(fields, storyevent.FieldStoryID)
	}
	if m.event_type != nil {
		fields = append(fields, storyevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, storyevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, storyevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case storyevent.FieldStoryID:
		return m.StoryID()
	case storyevent.FieldEventType:
		return m.EventType()
	case storyevent.FieldPayload:
		return m.Payload()
	case storyevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case storyevent.FieldStoryID:
		return m.OldStoryID(ctx)
	case storyevent.FieldEventType:
		return m.OldEventType(ctx)
	case storyevent.FieldPayload:
		return m.OldPayload(ctx)
	case storyevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StoryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case storyevent.FieldStoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryID(v)
		return nil
	case storyevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case storyevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case storyevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StoryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoryEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoryEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StoryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoryEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoryEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StoryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoryEventMutation) ResetField(name string) error {
	switch name {
	case storyevent.FieldStoryID:
		m.ResetStoryID()
		return nil
	case storyevent.FieldEventType:
		m.ResetEventType()
		return nil
	case storyevent.FieldPayload:
		m.ResetPayload()
		return nil
	case storyevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StoryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.story != nil {
		edges = append(edges, storyevent.EdgeStory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoryEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case storyevent.EdgeStory:
		if id := m.story; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstory {
		edges = append(edges, storyevent.EdgeStory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoryEventMutation) EdgeCleared(name string) bool {
	switch name {
	case storyevent.EdgeStory:
		return m.clearedstory
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoryEventMutation) ClearEdge(name string) error {
	switch name {
	case storyevent.EdgeStory:
		m.ClearStory()
		return nil
	}
	return fmt.Errorf("unknown StoryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoryEventMutation) ResetEdge(name string) error {
	switch name {
	case storyevent.EdgeStory:
		m.ResetStory()
		return nil
	}
	return fmt.Errorf("unknown StoryEvent edge %s", name)
}
