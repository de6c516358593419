package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
)

func TestGuardStory(t *testing.T) {
	tests := []struct {
		operation string
		status    story.Status
		allowed   bool
	}{
		{opAnalyze, story.StatusCreated, true},
		{opAnalyze, story.StatusAnalyzed, true},
		{opAnalyze, story.StatusPlanned, true},
		{opAnalyze, story.StatusRunning, false},
		{opAnalyze, story.StatusCompleted, false},

		{opPlan, story.StatusAnalyzed, true},
		{opPlan, story.StatusPlanned, true},
		{opPlan, story.StatusCreated, false},

		{opDecompose, story.StatusPlanned, true},
		{opDecompose, story.StatusAnalyzed, false},

		{opRun, story.StatusPlanned, true},
		{opRun, story.StatusGatePending, true},
		{opRun, story.StatusRunning, false},
		{opRun, story.StatusCreated, false},

		{opComplete, story.StatusRunning, true},
		{opComplete, story.StatusGatePending, true},
		{opComplete, story.StatusPlanned, false},

		{opCancel, story.StatusRunning, true},
		{opCancel, story.StatusGateFailed, true},
		{opCancel, story.StatusFailed, true},
		{opCancel, story.StatusCompleted, false},
		{opCancel, story.StatusCancelled, false},

		{opFinalize, story.StatusCompleted, true},
		{opFinalize, story.StatusRunning, false},

		{opResetOrchestrator, story.StatusFailed, true},
		{opResetOrchestrator, story.StatusCompleted, false},

		{opChat, story.StatusAnalyzed, true},
		{opChat, story.StatusRunning, true},
		{opChat, story.StatusCreated, false},
		{opChat, story.StatusCancelled, false},

		{opDelete, story.StatusCreated, true},
		{opDelete, story.StatusRunning, true},
		{opDelete, story.StatusCompleted, true},
	}

	for _, tc := range tests {
		err := guardStory(tc.operation, tc.status)
		if tc.allowed {
			assert.NoError(t, err, "%s in %s should be allowed", tc.operation, tc.status)
		} else {
			require.Error(t, err, "%s in %s should be rejected", tc.operation, tc.status)
			assert.True(t, errors.Is(err, ErrInvalidState))
		}
	}
}

func TestGuardStory_ErrorNamesOperationAndStatus(t *testing.T) {
	err := guardStory(opRun, story.StatusCreated)
	require.Error(t, err)

	var ise *InvalidStateError
	require.True(t, errors.As(err, &ise))
	assert.Contains(t, ise.Error(), "run story")
	assert.Contains(t, ise.Error(), "created")
}

func TestGuardStep(t *testing.T) {
	tests := []struct {
		verb    string
		status  step.Status
		allowed bool
	}{
		{"approve", step.StatusCompleted, true},
		{"approve", step.StatusPending, false},
		{"approve", step.StatusFailed, false},

		{"reject", step.StatusCompleted, true},
		{"reject", step.StatusRunning, false},

		{"skip", step.StatusPending, true},
		{"skip", step.StatusRunning, true},
		{"skip", step.StatusRejected, true},
		{"skip", step.StatusCompleted, false},
		{"skip", step.StatusSkipped, false},

		{"remove", step.StatusPending, true},
		{"remove", step.StatusRejected, true},
		{"remove", step.StatusRunning, false},
		{"remove", step.StatusCompleted, false},

		// Unguarded verbs are legal in every status.
		{"reset", step.StatusFailed, true},
		{"reset", step.StatusCompleted, true},
		{"reassign", step.StatusPending, true},
	}

	for _, tc := range tests {
		err := guardStep(tc.verb, tc.status)
		if tc.allowed {
			assert.NoError(t, err, "%s in %s should be allowed", tc.verb, tc.status)
		} else {
			require.Error(t, err, "%s in %s should be rejected", tc.verb, tc.status)
			assert.True(t, errors.Is(err, ErrInvalidState))
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, IsTerminalStoryStatus(story.StatusCompleted))
	assert.True(t, IsTerminalStoryStatus(story.StatusCancelled))
	assert.False(t, IsTerminalStoryStatus(story.StatusFailed))
	assert.False(t, IsTerminalStoryStatus(story.StatusGateFailed))
	assert.False(t, IsTerminalStoryStatus(story.StatusRunning))

	assert.True(t, IsTerminalStepStatus(step.StatusCompleted))
	assert.True(t, IsTerminalStepStatus(step.StatusFailed))
	assert.True(t, IsTerminalStepStatus(step.StatusCancelled))
	assert.True(t, IsTerminalStepStatus(step.StatusSkipped))
	assert.False(t, IsTerminalStepStatus(step.StatusRejected))
	assert.False(t, IsTerminalStepStatus(step.StatusPending))
	assert.False(t, IsTerminalStepStatus(step.StatusRunning))
}

func TestAdminStatusTargets(t *testing.T) {
	assert.True(t, adminStatusTargets[story.StatusFailed])
	assert.True(t, adminStatusTargets[story.StatusCancelled])
	assert.False(t, adminStatusTargets[story.StatusAnalyzing])
	assert.False(t, adminStatusTargets[story.StatusPlanning])
	assert.False(t, adminStatusTargets[story.StatusRunning])
}
