package services

import (
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
)

// Story operations with status guards. Every guarded operation consults
// storyGuards before mutating; an illegal (operation, status) pair fails
// with invalid-state and leaves the story untouched.
const (
	opAnalyze           = "analyze"
	opPlan              = "plan"
	opDecompose         = "decompose"
	opRun               = "run"
	opComplete          = "complete"
	opCancel            = "cancel"
	opFinalize          = "finalize"
	opResetOrchestrator = "reset orchestrator"
	opChat              = "chat"
	opDelete            = "delete"
)

// storyGuards maps each guarded operation to the statuses it is legal in.
var storyGuards = map[string][]story.Status{
	// Analyze is idempotent on re-entry: re-running it from analyzed or
	// planned overwrites the prior context.
	opAnalyze: {story.StatusCreated, story.StatusAnalyzed, story.StatusPlanned},

	// Plan replaces any existing plan.
	opPlan: {story.StatusAnalyzed, story.StatusPlanned},

	opDecompose: {story.StatusPlanned},

	// Run from gate_pending is the gate approval: the human lets the next
	// wave proceed.
	opRun: {story.StatusPlanned, story.StatusGatePending},

	opComplete: {story.StatusRunning, story.StatusGatePending},

	opCancel: {story.StatusRunning, story.StatusGatePending,
		story.StatusGateFailed, story.StatusFailed},

	opFinalize: {story.StatusCompleted},

	opResetOrchestrator: {story.StatusPlanned, story.StatusRunning,
		story.StatusGatePending, story.StatusGateFailed, story.StatusFailed},

	opChat: {story.StatusAnalyzed, story.StatusPlanned, story.StatusRunning,
		story.StatusGatePending, story.StatusGateFailed},

	// Deletion is legal in any status; a terminal story is removable
	// cleanup, a non-terminal one is abandoned work.
	opDelete: {story.StatusCreated, story.StatusAnalyzing, story.StatusAnalyzed,
		story.StatusPlanning, story.StatusPlanned, story.StatusRunning,
		story.StatusGatePending, story.StatusGateFailed, story.StatusFailed,
		story.StatusCompleted, story.StatusCancelled},
}

// adminStatusTargets are the statuses the administrative PATCH may force.
// The in-flight markers (analyzing, planning, running) are owned by the
// engine and cannot be set by hand.
var adminStatusTargets = map[story.Status]bool{
	story.StatusCreated:     true,
	story.StatusAnalyzed:    true,
	story.StatusPlanned:     true,
	story.StatusGatePending: true,
	story.StatusGateFailed:  true,
	story.StatusFailed:      true,
	story.StatusCompleted:   true,
	story.StatusCancelled:   true,
}

// storyOperationAllowed reports whether the operation is legal in the status.
func storyOperationAllowed(operation string, status story.Status) bool {
	for _, s := range storyGuards[operation] {
		if s == status {
			return true
		}
	}
	return false
}

// guardStory returns an invalid-state error when the operation is illegal.
func guardStory(operation string, status story.Status) error {
	if !storyOperationAllowed(operation, status) {
		return NewInvalidStateError(operation+" story", string(status))
	}
	return nil
}

// IsTerminalStoryStatus reports whether the status admits no further
// transitions. Failed and gate_failed are recoverable, not terminal.
func IsTerminalStoryStatus(status story.Status) bool {
	return status == story.StatusCompleted || status == story.StatusCancelled
}

// IsTerminalStepStatus reports whether a step status is terminal. Rejected
// is not: cascade rework resets rejected steps to pending on the next run.
func IsTerminalStepStatus(status step.Status) bool {
	switch status {
	case step.StatusCompleted, step.StatusFailed, step.StatusCancelled, step.StatusSkipped:
		return true
	default:
		return false
	}
}

// stepGuards maps step verbs to the statuses they are legal in.
var stepGuards = map[string][]step.Status{
	"approve": {step.StatusCompleted},
	"reject":  {step.StatusCompleted},
	"skip":    {step.StatusPending, step.StatusRunning, step.StatusRejected},
	"remove":  {step.StatusPending, step.StatusRejected},
}

// guardStep returns an invalid-state error when the verb is illegal for the
// step's status. Verbs absent from stepGuards (reset, reassign) are legal
// everywhere.
func guardStep(verb string, status step.Status) error {
	allowed, guarded := stepGuards[verb]
	if !guarded {
		return nil
	}
	for _, s := range allowed {
		if s == status {
			return nil
		}
	}
	return NewInvalidStateError(verb+" step", string(status))
}
