package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/chatmessage"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/react"
)

// chatHistoryLimit bounds how many prior turns are replayed into the
// prompt.
const chatHistoryLimit = 40

// ChatService runs story- and step-level conversations with the routed
// chat agent and applies any plan delta the agent embeds in its reply.
type ChatService struct {
	client    *ent.Client
	cfg       *config.Config
	registry  *agents.Registry
	llmClient llm.Client
	publisher *events.Publisher
}

// NewChatService creates a ChatService.
func NewChatService(client *ent.Client, cfg *config.Config, registry *agents.Registry,
	llmClient llm.Client, publisher *events.Publisher) *ChatService {
	return &ChatService{
		client:    client,
		cfg:       cfg,
		registry:  registry,
		llmClient: llmClient,
		publisher: publisher,
	}
}

// Chat runs one story-level turn: the user message is persisted, the chat
// agent replies with story context and history, and a structured plan
// delta in the reply is applied to the stored plan before the prose is
// returned.
func (s *ChatService) Chat(ctx context.Context, storyID, message string) (*models.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, NewValidationError("message", "required")
	}

	st, err := s.client.Story.Query().Where(story.IDEQ(storyID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	if err := guardStory(opChat, st.Status); err != nil {
		return nil, err
	}

	def := s.chatAgent("")
	if def == nil {
		return nil, fmt.Errorf("%w: chat", ErrNoAgentForCapability)
	}

	history, err := s.History(ctx, storyID, nil)
	if err != nil {
		return nil, err
	}

	if err := s.appendMessage(ctx, storyID, nil, chatmessage.RoleUser, message); err != nil {
		return nil, err
	}

	resp, err := callAgentDirect(ctx, s.llmClient, s.cfg, def, storyID, react.Task{
		Description:       message,
		WorkspacePath:     deref(st.WorktreePath),
		ChatHistory:       history,
		AdditionalContext: storyChatContext(st),
	})
	if err != nil {
		return nil, err
	}

	reply := StripPlanDelta(resp.Text)
	out := &models.ChatResponse{Response: reply}

	if delta := ParsePlanDelta(resp.Text); delta != nil {
		if err := s.applyDelta(ctx, st, delta, reply); err != nil {
			return nil, err
		}
		out.PlanModified = len(delta.StepsAdded) > 0 || len(delta.StepsRemoved) > 0
		out.StepsAdded = delta.StepsAdded
		out.StepsRemoved = delta.StepsRemoved
		out.AnalysisUpdated = delta.AnalysisUpdated
	}

	if err := s.appendMessage(ctx, storyID, nil, chatmessage.RoleAssistant, reply); err != nil {
		return nil, err
	}
	s.publisher.PublishChatResponse(ctx, storyID, reply)

	slog.Info("Story chat turn",
		"story_id", storyID,
		"agent_id", def.ID,
		"plan_modified", out.PlanModified)
	return out, nil
}

// ChatWithStep runs one step-scoped turn. The agent sees the step's
// description, output, and review feedback; step chat never edits the
// plan, it informs the step's next execution through its history.
func (s *ChatService) ChatWithStep(ctx context.Context, storyID, stepID, message string) (*models.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, NewValidationError("message", "required")
	}

	sp, err := s.client.Step.Query().
		Where(step.IDEQ(stepID), step.StoryIDEQ(storyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}

	def := s.chatAgent(sp.Language)
	if def == nil {
		return nil, fmt.Errorf("%w: chat", ErrNoAgentForCapability)
	}

	history, err := s.History(ctx, storyID, &stepID)
	if err != nil {
		return nil, err
	}

	if err := s.appendMessage(ctx, storyID, &stepID, chatmessage.RoleUser, message); err != nil {
		return nil, err
	}

	resp, err := callAgentDirect(ctx, s.llmClient, s.cfg, def, storyID, react.Task{
		Description:       message,
		ChatHistory:       history,
		AdditionalContext: stepChatContext(sp),
	})
	if err != nil {
		return nil, err
	}

	reply := strings.TrimSpace(resp.Text)
	if err := s.appendMessage(ctx, storyID, &stepID, chatmessage.RoleAssistant, reply); err != nil {
		return nil, err
	}
	s.publisher.PublishChatResponse(ctx, storyID, reply)

	return &models.ChatResponse{Response: reply}, nil
}

// History returns the conversation for a story (stepID nil) or one step,
// oldest first, capped at the replay limit.
func (s *ChatService) History(ctx context.Context, storyID string, stepID *string) ([]models.ChatEntry, error) {
	query := s.client.ChatMessage.Query().
		Where(chatmessage.StoryIDEQ(storyID))
	if stepID != nil {
		query.Where(chatmessage.StepIDEQ(*stepID))
	} else {
		query.Where(chatmessage.StepIDIsNil())
	}
	msgs, err := query.
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(chatHistoryLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	// Reverse the windowed page back into chronological order.
	entries := make([]models.ChatEntry, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		entries = append(entries, models.ChatEntry{
			Role:      string(msgs[i].Role),
			Content:   msgs[i].Content,
			Timestamp: msgs[i].CreatedAt,
		})
	}
	return entries, nil
}

// Messages returns the raw message records for the API, oldest first.
func (s *ChatService) Messages(ctx context.Context, storyID string, stepID *string) ([]*ent.ChatMessage, error) {
	query := s.client.ChatMessage.Query().
		Where(chatmessage.StoryIDEQ(storyID))
	if stepID != nil {
		query.Where(chatmessage.StepIDEQ(*stepID))
	} else {
		query.Where(chatmessage.StepIDIsNil())
	}
	msgs, err := query.Order(ent.Asc(chatmessage.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return msgs, nil
}

// applyDelta edits the plan inside one transaction: added steps land at
// the end with no wave, removals only take pending or rejected steps, and
// an analysis update replaces the stored summary with the reply prose.
func (s *ChatService) applyDelta(ctx context.Context, st *ent.Story, delta *models.PlanDelta, reply string) error {
	steps, err := s.client.Step.Query().
		Where(step.StoryIDEQ(st.ID)).
		Order(ent.Asc(step.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list steps: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	nextOrder := 1
	byID := make(map[string]*ent.Step, len(steps))
	byName := make(map[string]*ent.Step, len(steps))
	for _, sp := range steps {
		byID[sp.ID] = sp
		byName[sp.Name] = sp
		if sp.OrderIndex >= nextOrder {
			nextOrder = sp.OrderIndex + 1
		}
	}

	for _, ref := range delta.StepsRemoved {
		target, ok := byID[ref]
		if !ok {
			target, ok = byName[ref]
		}
		if !ok {
			slog.Warn("Chat delta removes unknown step; ignoring",
				"story_id", st.ID, "step", ref)
			continue
		}
		if target.Status != step.StatusPending && target.Status != step.StatusRejected {
			slog.Warn("Chat delta removes a started step; ignoring",
				"story_id", st.ID, "step", target.Name, "status", target.Status)
			continue
		}
		if err := tx.Step.DeleteOneID(target.ID).Exec(ctx); err != nil {
			return fmt.Errorf("failed to remove step %s: %w", target.Name, err)
		}
	}

	for _, ps := range delta.StepsAdded {
		if ps.Name == "" || ps.Capability == "" {
			slog.Warn("Chat delta adds malformed step; ignoring",
				"story_id", st.ID, "step", ps.Name)
			continue
		}
		builder := tx.Step.Create().
			SetID(uuid.New().String()).
			SetStoryID(st.ID).
			SetOrderIndex(nextOrder).
			SetName(ps.Name).
			SetCapability(ps.Capability).
			SetDescription(ps.Description)
		if ps.Language != "" {
			builder.SetLanguage(ps.Language)
		}
		if len(ps.DependsOn) > 0 {
			builder.SetDependsOn(ps.DependsOn)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to add step %s: %w", ps.Name, err)
		}
		nextOrder++
	}

	if delta.AnalysisUpdated {
		analyzed := st.AnalyzedContext
		if analyzed == nil {
			analyzed = map[string]interface{}{}
		}
		analyzed["summary"] = reply
		if _, err := tx.Story.UpdateOneID(st.ID).
			SetAnalyzedContext(analyzed).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to update analysis: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plan delta: %w", err)
	}
	return nil
}

// chatAgent routes the conversation: chat, then planning, then analysis.
func (s *ChatService) chatAgent(languageHint string) *agents.Definition {
	for _, capability := range []string{"chat", "planning", "analysis"} {
		if def := s.registry.GetBestForCapability(capability, languageHint); def != nil {
			return def
		}
	}
	return nil
}

// appendMessage persists one chat turn.
func (s *ChatService) appendMessage(ctx context.Context, storyID string, stepID *string,
	role chatmessage.Role, content string) error {

	builder := s.client.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetStoryID(storyID).
		SetRole(role).
		SetContent(content)
	if stepID != nil {
		builder.SetStepID(*stepID)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// storyChatContext renders the story context block for the chat prompt,
// including the current plan so the agent can propose precise deltas.
func storyChatContext(st *ent.Story) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Story: %s\nStatus: %s\n", st.Title, st.Status)
	if st.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", st.Description)
	}
	if summary := analyzedSummary(st); summary != "" {
		sb.WriteString("\n")
		sb.WriteString(summary)
		sb.WriteString("\n")
	}
	if st.Plan != nil {
		if raw, ok := st.Plan["steps"]; ok {
			fmt.Fprintf(&sb, "\n## Current Plan\n%v\n", raw)
		}
	}
	sb.WriteString(`
If the user asks you to change the plan, embed a fenced JSON object in your
reply alongside your prose:

` + "```json" + `
{"stepsAdded": [{"name": "...", "capability": "coding", "description": "..."}],
 "stepsRemoved": ["step name"],
 "analysisUpdated": false}
` + "```" + `

Only include the block when the plan should actually change.`)
	return sb.String()
}

// stepChatContext renders the step context block for step-scoped chat.
func stepChatContext(sp *ent.Step) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Step: %s\nCapability: %s\nStatus: %s\n", sp.Name, sp.Capability, sp.Status)
	if sp.Description != "" {
		fmt.Fprintf(&sb, "\nDescription:\n%s\n", sp.Description)
	}
	if sp.Output != nil {
		fmt.Fprintf(&sb, "\nOutput:\n%s\n", *sp.Output)
	}
	if sp.ApprovalFeedback != "" {
		fmt.Fprintf(&sb, "\nReview feedback:\n%s\n", sp.ApprovalFeedback)
	}
	return sb.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
