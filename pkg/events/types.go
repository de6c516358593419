// Package events carries orchestration progress from the engine to API
// subscribers.
//
// Delivery is best-effort. Every event is fanned out to the story's live
// subscribers over buffered channels and, for state-bearing event types,
// appended to the story_events table. A subscriber that stops draining its
// channel is dropped after a terminal error event; a dropped event is never
// replayed into a live stream. Clients recover by re-fetching story state,
// which is always authoritative.
package events

import (
	"time"

	"github.com/johnazariah/aura-sub009/pkg/models"
)

// Story lifecycle event types.
const (
	EventStoryCreated    = "story-created"
	EventStoryAnalyzed   = "story-analyzed"
	EventStoryPlanned    = "story-planned"
	EventStoryDecomposed = "story-decomposed"
	EventStoryCompleted  = "story-completed"
	EventStoryCancelled  = "story-cancelled"
	EventStoryFailed     = "story-failed"
)

// Wave and step event types. step-progress is transient: it streams ReAct
// iterations and is never persisted.
const (
	EventWaveStarted   = "wave-started"
	EventStepStarted   = "step-started"
	EventStepProgress  = "step-progress"
	EventStepCompleted = "step-completed"
	EventStepFailed    = "step-failed"
	EventStepRejected  = "step-rejected"
	EventWaveCompleted = "wave-completed"
)

// Gate event types.
const (
	EventGateRunning = "gate-running"
	EventGatePassed  = "gate-passed"
	EventGateFailed  = "gate-failed"
	EventGatePending = "gate-pending"
)

// Stream control event types. done is transient: it ends a live stream,
// and a replaying client infers completion from story status instead.
const (
	EventChatResponse = "chat-response"
	EventDone         = "done"
	EventError        = "error"
)

// Event is the single envelope delivered to story subscribers.
type Event struct {
	Type       string             `json:"type"`
	StoryID    string             `json:"storyId"`
	Timestamp  string             `json:"timestamp"` // RFC3339Nano
	Wave       int                `json:"wave,omitempty"`
	TotalWaves int                `json:"totalWaves,omitempty"`
	StepID     string             `json:"stepId,omitempty"`
	StepName   string             `json:"stepName,omitempty"`
	Output     string             `json:"output,omitempty"` // bounded preview
	Error      string             `json:"error,omitempty"`
	GateResult *models.GateResult `json:"gateResult,omitempty"`
}

// payloadMap renders the event for the JSON payload column, dropping unset
// optional fields.
func (e Event) payloadMap() map[string]any {
	m := map[string]any{
		"type":      e.Type,
		"storyId":   e.StoryID,
		"timestamp": e.Timestamp,
	}
	if e.Wave != 0 {
		m["wave"] = e.Wave
	}
	if e.TotalWaves != 0 {
		m["totalWaves"] = e.TotalWaves
	}
	if e.StepID != "" {
		m["stepId"] = e.StepID
	}
	if e.StepName != "" {
		m["stepName"] = e.StepName
	}
	if e.Output != "" {
		m["output"] = e.Output
	}
	if e.Error != "" {
		m["error"] = e.Error
	}
	if e.GateResult != nil {
		m["gateResult"] = e.GateResult.ToMap()
	}
	return m
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
