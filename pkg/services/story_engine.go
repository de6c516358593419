package services

import (
	"context"
	"fmt"
	"time"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/story"
)

// Engine-facing transitions. The scheduler owns the running story's
// progress but persists it through the service so every story write goes
// through one layer.

// SetCurrentWave moves the wave cursor.
func (s *StoryService) SetCurrentWave(ctx context.Context, storyID string, wave int) (*ent.Story, error) {
	st, err := s.client.Story.UpdateOneID(storyID).SetCurrentWave(wave).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set current wave: %w", err)
	}
	return st, nil
}

// MarkStoryCompleted records a run that drained every wave.
func (s *StoryService) MarkStoryCompleted(ctx context.Context, storyID string) (*ent.Story, error) {
	st, err := s.client.Story.UpdateOneID(storyID).
		SetStatus(story.StatusCompleted).
		SetCompletedAt(time.Now()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark story completed: %w", err)
	}
	return st, nil
}

// MarkStoryFailed records a halted run with its cause.
func (s *StoryService) MarkStoryFailed(ctx context.Context, storyID, errMsg string) (*ent.Story, error) {
	st, err := s.client.Story.UpdateOneID(storyID).
		SetStatus(story.StatusFailed).
		SetErrorMessage(errMsg).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark story failed: %w", err)
	}
	return st, nil
}

// MarkStoryCancelled records a drained cancellation.
func (s *StoryService) MarkStoryCancelled(ctx context.Context, storyID string) (*ent.Story, error) {
	st, err := s.client.Story.UpdateOneID(storyID).
		SetStatus(story.StatusCancelled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark story cancelled: %w", err)
	}
	return st, nil
}

// MarkGatePending parks the story on a passed gate awaiting approval.
// result is the gate result map persisted as the story's last gate result.
func (s *StoryService) MarkGatePending(ctx context.Context, storyID string, result map[string]any) (*ent.Story, error) {
	st, err := s.client.Story.UpdateOneID(storyID).
		SetStatus(story.StatusGatePending).
		SetLastGateResult(result).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark gate pending: %w", err)
	}
	return st, nil
}

// MarkGateFailed parks the story on a failed gate for human intervention.
func (s *StoryService) MarkGateFailed(ctx context.Context, storyID string, result map[string]any) (*ent.Story, error) {
	st, err := s.client.Story.UpdateOneID(storyID).
		SetStatus(story.StatusGateFailed).
		SetLastGateResult(result).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark gate failed: %w", err)
	}
	return st, nil
}

// RecordGateResult stores a gate result without a status change (passed
// gates on auto-proceed stories).
func (s *StoryService) RecordGateResult(ctx context.Context, storyID string, result map[string]any) error {
	if _, err := s.client.Story.UpdateOneID(storyID).
		SetLastGateResult(result).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to record gate result: %w", err)
	}
	return nil
}
