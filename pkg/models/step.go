package models

// AddStepRequest contains fields for appending a step to a story's plan.
type AddStepRequest struct {
	Name        string   `json:"name"`
	Capability  string   `json:"capability"`
	Language    string   `json:"language,omitempty"`
	Description string   `json:"description,omitempty"`
	DependsOn   []string `json:"dependsOn,omitempty"`
}

// PlanStep is one step descriptor as emitted by a planning agent or a chat
// plan delta. Wave is assigned later by decompose.
type PlanStep struct {
	Name        string   `json:"name"`
	Capability  string   `json:"capability"`
	Language    string   `json:"language,omitempty"`
	Description string   `json:"description,omitempty"`
	DependsOn   []string `json:"dependsOn,omitempty"`
}

// PlanDelta is the structured envelope a chat agent may embed in its reply
// to edit the plan in place.
type PlanDelta struct {
	StepsAdded      []PlanStep `json:"stepsAdded,omitempty"`
	StepsRemoved    []string   `json:"stepsRemoved,omitempty"`
	AnalysisUpdated bool       `json:"analysisUpdated,omitempty"`
}

// RejectStepRequest carries the reviewer's feedback for cascade rework.
type RejectStepRequest struct {
	Feedback string `json:"feedback,omitempty"`
}

// SkipStepRequest carries the reason a step is being skipped.
type SkipStepRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ReassignStepRequest pins a step to a specific agent.
type ReassignStepRequest struct {
	AgentID string `json:"agentId"`
}

// UpdateStepDescriptionRequest replaces a step's description.
type UpdateStepDescriptionRequest struct {
	Description string `json:"description"`
}

// ExecuteStepRequest optionally overrides agent routing for one execution.
type ExecuteStepRequest struct {
	AgentID string `json:"agentId,omitempty"`
}

// ResetOrchestratorRequest returns a story to Planned, optionally resetting
// failed steps to Pending.
type ResetOrchestratorRequest struct {
	ResetFailedTasks bool `json:"resetFailedTasks,omitempty"`
}

// UpdateStatusRequest is the administrative status override body.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
