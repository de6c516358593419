package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

// StepService manages step records: plan edits, the review verbs
// (approve/reject/skip/reset/reassign), and the execution transitions the
// step runner persists through.
type StepService struct {
	client    *ent.Client
	registry  *agents.Registry
	publisher *events.Publisher
}

// NewStepService creates a StepService.
func NewStepService(client *ent.Client, registry *agents.Registry, publisher *events.Publisher) *StepService {
	return &StepService{client: client, registry: registry, publisher: publisher}
}

// GetStep retrieves one step, verifying it belongs to the story.
func (s *StepService) GetStep(ctx context.Context, storyID, stepID string) (*ent.Step, error) {
	sp, err := s.client.Step.Query().
		Where(step.IDEQ(stepID), step.StoryIDEQ(storyID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return sp, nil
}

// ListSteps returns a story's steps in display order.
func (s *StepService) ListSteps(ctx context.Context, storyID string) ([]*ent.Step, error) {
	steps, err := s.client.Step.Query().
		Where(step.StoryIDEQ(storyID)).
		Order(ent.Asc(step.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

// AddStep appends a step to the story's plan with the next order index and
// no wave; the next decompose lays it into the wave structure.
func (s *StepService) AddStep(ctx context.Context, storyID string, req models.AddStepRequest) (*ent.Step, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Capability == "" {
		return nil, NewValidationError("capability", "required")
	}

	st, err := s.storyForEdit(ctx, storyID)
	if err != nil {
		return nil, err
	}

	var maxOrder []struct {
		Max int `json:"max"`
	}
	err = s.client.Step.Query().
		Where(step.StoryIDEQ(st.ID)).
		Aggregate(ent.Max(step.FieldOrderIndex)).
		Scan(ctx, &maxOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to compute order index: %w", err)
	}
	nextOrder := 1
	if len(maxOrder) > 0 {
		nextOrder = maxOrder[0].Max + 1
	}

	builder := s.client.Step.Create().
		SetID(uuid.New().String()).
		SetStoryID(st.ID).
		SetOrderIndex(nextOrder).
		SetName(req.Name).
		SetCapability(req.Capability).
		SetDescription(req.Description)
	if req.Language != "" {
		builder.SetLanguage(req.Language)
	}
	if len(req.DependsOn) > 0 {
		builder.SetDependsOn(req.DependsOn)
	}
	sp, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add step: %w", err)
	}
	slog.Info("Step added", "story_id", st.ID, "step_id", sp.ID, "name", sp.Name)
	return sp, nil
}

// RemoveStep deletes a pending or rejected step from the plan.
func (s *StepService) RemoveStep(ctx context.Context, storyID, stepID string) error {
	sp, err := s.GetStep(ctx, storyID, stepID)
	if err != nil {
		return err
	}
	if err := guardStep("remove", sp.Status); err != nil {
		return err
	}
	if err := s.client.Step.DeleteOneID(stepID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove step: %w", err)
	}
	slog.Info("Step removed", "story_id", storyID, "step_id", stepID)
	return nil
}

// UpdateDescription replaces a step's description.
func (s *StepService) UpdateDescription(ctx context.Context, storyID, stepID, description string) (*ent.Step, error) {
	if description == "" {
		return nil, NewValidationError("description", "required")
	}
	sp, err := s.GetStep(ctx, storyID, stepID)
	if err != nil {
		return nil, err
	}
	sp, err = sp.Update().SetDescription(description).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update step description: %w", err)
	}
	return sp, nil
}

// ApproveStep records human approval of a completed step's output.
func (s *StepService) ApproveStep(ctx context.Context, storyID, stepID string) (*ent.Step, error) {
	sp, err := s.GetStep(ctx, storyID, stepID)
	if err != nil {
		return nil, err
	}
	if err := guardStep("approve", sp.Status); err != nil {
		return nil, err
	}
	sp, err = sp.Update().
		SetApproval(step.ApprovalApproved).
		ClearApprovalFeedback().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to approve step: %w", err)
	}
	return sp, nil
}

// RejectStep records human rejection of a completed step and cascades
// rework: the step and its dependents (explicit edges when the plan has
// them, every later-wave step otherwise) are marked Rejected with
// NeedsRework set and their previous output preserved, and the story
// reverts to running at the earliest affected wave. Attempt counters are
// preserved throughout.
func (s *StepService) RejectStep(ctx context.Context, storyID, stepID, feedback string) (*ent.Step, error) {
	sp, err := s.GetStep(ctx, storyID, stepID)
	if err != nil {
		return nil, err
	}
	if err := guardStep("reject", sp.Status); err != nil {
		return nil, err
	}

	all, err := s.ListSteps(ctx, storyID)
	if err != nil {
		return nil, err
	}
	rework := ReworkSet(sp, all)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	update := tx.Step.UpdateOneID(sp.ID).
		SetStatus(step.StatusRejected).
		SetApproval(step.ApprovalRejected).
		SetNeedsRework(true)
	if feedback != "" {
		update.SetApprovalFeedback(feedback)
	}
	if sp.Output != nil {
		update.SetPreviousOutput(*sp.Output)
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to reject step: %w", err)
	}

	earliestWave := 0
	if sp.Wave != nil {
		earliestWave = *sp.Wave
	}
	for _, dep := range rework {
		// Skipped and cancelled steps have no output to invalidate.
		if dep.Status == step.StatusSkipped || dep.Status == step.StatusCancelled {
			continue
		}
		depUpdate := tx.Step.UpdateOneID(dep.ID).
			SetStatus(step.StatusRejected).
			SetNeedsRework(true)
		if dep.Output != nil {
			depUpdate.SetPreviousOutput(*dep.Output)
		}
		if _, err := depUpdate.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to cascade rework to step %s: %w", dep.ID, err)
		}
		if dep.Wave != nil && (earliestWave == 0 || *dep.Wave < earliestWave) {
			earliestWave = *dep.Wave
		}
	}

	if _, err := tx.Story.UpdateOneID(storyID).
		SetStatus(story.StatusRunning).
		SetCurrentWave(earliestWave).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to revert story to running: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}

	s.publisher.PublishStepRejected(ctx, storyID, sp.ID, sp.Name, feedback)
	slog.Info("Step rejected with cascade rework",
		"story_id", storyID,
		"step_id", stepID,
		"rework_steps", len(rework),
		"resume_wave", earliestWave)
	return s.GetStep(ctx, storyID, stepID)
}

// SkipStep marks a non-terminal step skipped with the given reason.
func (s *StepService) SkipStep(ctx context.Context, storyID, stepID, reason string) (*ent.Step, error) {
	sp, err := s.GetStep(ctx, storyID, stepID)
	if err != nil {
		return nil, err
	}
	if err := guardStep("skip", sp.Status); err != nil {
		return nil, err
	}
	sp, err = sp.Update().
		SetStatus(step.StatusSkipped).
		SetSkipReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to skip step: %w", err)
	}
	return sp, nil
}

// ResetStep returns a step to pending, clearing its output, error, and
// rework context. Attempts are preserved; the budget counts lifetime runs.
func (s *StepService) ResetStep(ctx context.Context, storyID, stepID string) (*ent.Step, error) {
	sp, err := s.GetStep(ctx, storyID, stepID)
	if err != nil {
		return nil, err
	}
	sp, err = sp.Update().
		SetStatus(step.StatusPending).
		ClearOutput().
		ClearError().
		ClearPreviousOutput().
		ClearApproval().
		ClearApprovalFeedback().
		ClearSkipReason().
		SetNeedsRework(false).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset step: %w", err)
	}
	return sp, nil
}

// ReassignStep pins the step to a specific agent for its next execution.
func (s *StepService) ReassignStep(ctx context.Context, storyID, stepID, agentID string) (*ent.Step, error) {
	if agentID == "" {
		return nil, NewValidationError("agentId", "required")
	}
	if _, err := s.registry.Get(agentID); err != nil {
		return nil, NewValidationError("agentId", fmt.Sprintf("unknown agent '%s'", agentID))
	}
	sp, err := s.GetStep(ctx, storyID, stepID)
	if err != nil {
		return nil, err
	}
	sp, err = sp.Update().SetAgentID(agentID).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reassign step: %w", err)
	}
	return sp, nil
}

// MarkStepRunning transitions a step into execution: running status, start
// timestamp, attempt increment, and the resolved agent. Used only by the
// step runner.
func (s *StepService) MarkStepRunning(ctx context.Context, stepID, agentID string) (*ent.Step, error) {
	sp, err := s.client.Step.UpdateOneID(stepID).
		SetStatus(step.StatusRunning).
		SetStartedAt(time.Now()).
		AddAttempts(1).
		SetAgentID(agentID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark step running: %w", err)
	}
	return sp, nil
}

// MarkStepCompleted records a successful execution: output stored, error
// and rework context cleared.
func (s *StepService) MarkStepCompleted(ctx context.Context, stepID, output string, trace *models.ReActTrace) (*ent.Step, error) {
	update := s.client.Step.UpdateOneID(stepID).
		SetStatus(step.StatusCompleted).
		SetOutput(output).
		ClearError().
		ClearPreviousOutput().
		ClearApproval().
		SetNeedsRework(false).
		SetCompletedAt(time.Now())
	if trace != nil {
		update.SetTrace(traceToMap(trace))
	}
	sp, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark step completed: %w", err)
	}
	return sp, nil
}

// MarkStepFailed records a failed execution. Retry is the scheduler's
// decision, not recorded here.
func (s *StepService) MarkStepFailed(ctx context.Context, stepID, errMsg string, trace *models.ReActTrace) (*ent.Step, error) {
	update := s.client.Step.UpdateOneID(stepID).
		SetStatus(step.StatusFailed).
		SetError(errMsg).
		SetCompletedAt(time.Now())
	if trace != nil {
		update.SetTrace(traceToMap(trace))
	}
	sp, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark step failed: %w", err)
	}
	return sp, nil
}

// MarkStepCancelled records a cancelled execution.
func (s *StepService) MarkStepCancelled(ctx context.Context, stepID string, trace *models.ReActTrace) (*ent.Step, error) {
	update := s.client.Step.UpdateOneID(stepID).
		SetStatus(step.StatusCancelled).
		SetError("cancelled").
		SetCompletedAt(time.Now())
	if trace != nil {
		update.SetTrace(traceToMap(trace))
	}
	sp, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark step cancelled: %w", err)
	}
	return sp, nil
}

// CompletedPredecessors returns the completed steps in earlier waves, the
// prior-step context handed to an executing agent.
func (s *StepService) CompletedPredecessors(ctx context.Context, storyID string, wave int) ([]*ent.Step, error) {
	steps, err := s.client.Step.Query().
		Where(
			step.StoryIDEQ(storyID),
			step.StatusEQ(step.StatusCompleted),
			step.WaveLT(wave),
		).
		Order(ent.Asc(step.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list predecessors: %w", err)
	}
	return steps, nil
}

// ClaimWaveSteps locks and returns the steps of one wave in the given
// statuses. Row locks are held only for the duration of the claim
// transaction; the single-host pool's in-memory registry is what prevents
// double-driving a story.
func (s *StepService) ClaimWaveSteps(ctx context.Context, storyID string, wave int, statuses ...step.Status) ([]*ent.Step, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	steps, err := tx.Step.Query().
		Where(
			step.StoryIDEQ(storyID),
			step.WaveEQ(wave),
			step.StatusIn(statuses...),
		).
		Order(ent.Asc(step.FieldOrderIndex)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim wave steps: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return steps, nil
}

// storyForEdit loads the story and verifies its plan may still be edited.
func (s *StepService) storyForEdit(ctx context.Context, storyID string) (*ent.Story, error) {
	st, err := s.client.Story.Query().Where(story.IDEQ(storyID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	if IsTerminalStoryStatus(st.Status) {
		return nil, NewInvalidStateError("edit plan of", string(st.Status))
	}
	return st, nil
}

// traceToMap converts a ReAct trace for the step's JSON trace column.
func traceToMap(trace *models.ReActTrace) map[string]interface{} {
	data, err := json.Marshal(trace)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
