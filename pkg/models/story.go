// Package models defines the request, response, and shared domain value
// types exchanged between the API, services, and orchestrator layers.
package models

import (
	"time"

	"github.com/johnazariah/aura-sub009/ent"
)

// AutomationMode controls whether wave advancement is human- or machine-gated.
type AutomationMode string

const (
	AutomationModeAssisted   AutomationMode = "assisted"
	AutomationModeAutonomous AutomationMode = "autonomous"
)

// IsValid checks if the automation mode is valid.
func (m AutomationMode) IsValid() bool {
	return m == AutomationModeAssisted || m == AutomationModeAutonomous
}

// DispatchTarget selects who executes steps: the internal agent pool or an
// external Copilot CLI bridge.
type DispatchTarget string

const (
	DispatchTargetInternal   DispatchTarget = "internal"
	DispatchTargetCopilotCli DispatchTarget = "copilot_cli"
)

// IsValid checks if the dispatch target is valid.
func (d DispatchTarget) IsValid() bool {
	return d == DispatchTargetInternal || d == DispatchTargetCopilotCli
}

// GateMode controls how a passed inter-wave gate advances the story.
type GateMode string

const (
	GateModeAutoProceed    GateMode = "auto_proceed"
	GateModeManualApproval GateMode = "manual_approval"
)

// IsValid checks if the gate mode is valid.
func (g GateMode) IsValid() bool {
	return g == GateModeAutoProceed || g == GateModeManualApproval
}

// CreateStoryRequest contains fields for creating a new story.
type CreateStoryRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	RepositoryPath string `json:"repositoryPath,omitempty"`
	AutomationMode string `json:"automationMode,omitempty"`
	DispatchTarget string `json:"dispatchTarget,omitempty"`
	GateMode       string `json:"gateMode,omitempty"`
	MaxParallelism int    `json:"maxParallelism,omitempty"`
	IssueURL       string `json:"issueUrl,omitempty"`
}

// IssueCommentRequest is the body for posting a progress update to a
// story's linked issue.
type IssueCommentRequest struct {
	Message string `json:"message"`
}

// StoryFilters contains filtering options for listing stories.
type StoryFilters struct {
	Status         string `json:"status,omitempty"`
	RepositoryPath string `json:"repositoryPath,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
}

// StoryListResponse contains a paginated story list.
type StoryListResponse struct {
	Stories    []*ent.Story `json:"stories"`
	TotalCount int          `json:"totalCount"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// StoryOperationResponse is the envelope returned by lifecycle operations:
// the updated story plus a human-readable message.
type StoryOperationResponse struct {
	Story   *ent.Story `json:"story"`
	Message string     `json:"message"`
}

// OrchestratorStatus is computed from the story and its steps; it is never
// stored, so it cannot diverge from story-level truth.
type OrchestratorStatus struct {
	StoryID        string         `json:"storyId"`
	Status         string         `json:"status"`
	CurrentWave    int            `json:"currentWave"`
	TotalWaves     int            `json:"totalWaves"`
	MaxParallelism int            `json:"maxParallelism"`
	Steps          []StepStatus   `json:"steps"`
	LastGateResult map[string]any `json:"lastGateResult,omitempty"`
}

// StepStatus is the per-step slice of OrchestratorStatus.
type StepStatus struct {
	StepID   string `json:"stepId"`
	Name     string `json:"name"`
	Wave     int    `json:"wave"`
	Status   string `json:"status"`
	Attempts int    `json:"attempts"`
}

// RunResult summarizes one scheduler Run call.
type RunResult struct {
	StoryID        string      `json:"storyId"`
	Status         string      `json:"status"`
	StartedSteps   int         `json:"startedSteps"`
	CompletedSteps int         `json:"completedSteps"`
	FailedSteps    int         `json:"failedSteps"`
	CurrentWave    int         `json:"currentWave"`
	WaitingForGate bool        `json:"waitingForGate"`
	GateResult     *GateResult `json:"gateResult,omitempty"`
	Error          string      `json:"error,omitempty"`
}

// PlanRequest carries the optional planning knobs.
type PlanRequest struct {
	IncludeTests bool `json:"includeTests,omitempty"`
}

// FinalizeRequest carries the optional commit/PR parameters for Finalize.
type FinalizeRequest struct {
	CommitMessage     string   `json:"commitMessage,omitempty"`
	CreatePullRequest bool     `json:"createPullRequest,omitempty"`
	Labels            []string `json:"labels,omitempty"`
}

// FinalizeResult reports what Finalize actually did.
type FinalizeResult struct {
	Committed      bool   `json:"committed"`
	Pushed         bool   `json:"pushed"`
	PullRequestURL string `json:"pullRequestUrl,omitempty"`
}

// ChatRequest is the body of a story- or step-level chat call.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the agent's reply plus any structured plan delta it
// produced.
type ChatResponse struct {
	Response        string           `json:"response"`
	PlanModified    bool             `json:"planModified"`
	StepsAdded      []PlanStep       `json:"stepsAdded"`
	StepsRemoved    []string         `json:"stepsRemoved"`
	AnalysisUpdated bool             `json:"analysisUpdated"`
	Messages        []*ent.ChatMessage `json:"-"`
}

// IssueRef identifies a remote issue a story is linked to.
type IssueRef struct {
	Provider string `json:"provider"`
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	Number   int    `json:"number"`
	URL      string `json:"url"`
}

// ChatEntry is one turn of chat history handed to agents as context.
type ChatEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
