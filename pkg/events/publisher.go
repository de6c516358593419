package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

// maxEventOutput bounds the output field on the wire. Full text lives on
// the Step (output and trace columns); events carry a preview.
const maxEventOutput = 2048

// appendTimeout bounds the audit write so a stalled database cannot hold
// up the scheduler.
const appendTimeout = 5 * time.Second

// Publisher builds typed events, fans them out on the bus, and appends
// them to the story's event log. The append is an audit trail: a failure
// is logged and live delivery proceeds.
type Publisher struct {
	bus    *Bus
	client *ent.Client
}

// NewPublisher creates a publisher. client may be nil for bus-only use.
func NewPublisher(bus *Bus, client *ent.Client) *Publisher {
	return &Publisher{bus: bus, client: client}
}

// Bus exposes the underlying bus for subscriptions.
func (p *Publisher) Bus() *Bus {
	return p.bus
}

// PublishStoryCreated announces a new story.
func (p *Publisher) PublishStoryCreated(ctx context.Context, storyID string) {
	p.persist(ctx, Event{Type: EventStoryCreated, StoryID: storyID})
}

// PublishStoryAnalyzed carries the analysis output.
func (p *Publisher) PublishStoryAnalyzed(ctx context.Context, storyID, output string) {
	p.persist(ctx, Event{Type: EventStoryAnalyzed, StoryID: storyID, Output: output})
}

// PublishStoryPlanned carries the planning output.
func (p *Publisher) PublishStoryPlanned(ctx context.Context, storyID, output string) {
	p.persist(ctx, Event{Type: EventStoryPlanned, StoryID: storyID, Output: output})
}

// PublishStoryDecomposed announces the wave layout.
func (p *Publisher) PublishStoryDecomposed(ctx context.Context, storyID string, totalWaves int) {
	p.persist(ctx, Event{Type: EventStoryDecomposed, StoryID: storyID, TotalWaves: totalWaves})
}

// PublishWaveStarted announces a wave beginning execution.
func (p *Publisher) PublishWaveStarted(ctx context.Context, storyID string, wave, totalWaves int) {
	p.persist(ctx, Event{Type: EventWaveStarted, StoryID: storyID, Wave: wave, TotalWaves: totalWaves})
}

// PublishStepStarted announces a step entering execution.
func (p *Publisher) PublishStepStarted(ctx context.Context, storyID string, wave int, stepID, stepName string) {
	p.persist(ctx, Event{Type: EventStepStarted, StoryID: storyID, Wave: wave, StepID: stepID, StepName: stepName})
}

// PublishStepProgress streams one ReAct iteration. High-frequency and
// transient: never persisted, lost on disconnect.
func (p *Publisher) PublishStepProgress(storyID, stepID, stepName, output string) {
	p.transient(Event{Type: EventStepProgress, StoryID: storyID, StepID: stepID, StepName: stepName, Output: output})
}

// PublishStepCompleted carries a step's final output.
func (p *Publisher) PublishStepCompleted(ctx context.Context, storyID string, wave int, stepID, stepName, output string) {
	p.persist(ctx, Event{Type: EventStepCompleted, StoryID: storyID, Wave: wave, StepID: stepID, StepName: stepName, Output: output})
}

// PublishStepFailed carries a step failure.
func (p *Publisher) PublishStepFailed(ctx context.Context, storyID string, wave int, stepID, stepName, errMsg string) {
	p.persist(ctx, Event{Type: EventStepFailed, StoryID: storyID, Wave: wave, StepID: stepID, StepName: stepName, Error: errMsg})
}

// PublishStepRejected carries a human rejection; output holds the feedback.
func (p *Publisher) PublishStepRejected(ctx context.Context, storyID, stepID, stepName, feedback string) {
	p.persist(ctx, Event{Type: EventStepRejected, StoryID: storyID, StepID: stepID, StepName: stepName, Output: feedback})
}

// PublishWaveCompleted announces a fully drained wave.
func (p *Publisher) PublishWaveCompleted(ctx context.Context, storyID string, wave, totalWaves int) {
	p.persist(ctx, Event{Type: EventWaveCompleted, StoryID: storyID, Wave: wave, TotalWaves: totalWaves})
}

// PublishGateRunning announces the inter-wave gate starting.
func (p *Publisher) PublishGateRunning(ctx context.Context, storyID string, wave int) {
	p.persist(ctx, Event{Type: EventGateRunning, StoryID: storyID, Wave: wave})
}

// PublishGatePassed carries a passing gate result.
func (p *Publisher) PublishGatePassed(ctx context.Context, storyID string, result *models.GateResult) {
	p.persist(ctx, Event{Type: EventGatePassed, StoryID: storyID, Wave: result.Wave, GateResult: result})
}

// PublishGateFailed carries a failing gate result.
func (p *Publisher) PublishGateFailed(ctx context.Context, storyID string, result *models.GateResult) {
	p.persist(ctx, Event{Type: EventGateFailed, StoryID: storyID, Wave: result.Wave, Error: result.Error, GateResult: result})
}

// PublishGatePending announces a passed gate waiting for human approval.
func (p *Publisher) PublishGatePending(ctx context.Context, storyID string, result *models.GateResult) {
	p.persist(ctx, Event{Type: EventGatePending, StoryID: storyID, Wave: result.Wave, GateResult: result})
}

// PublishStoryCompleted announces a completed story.
func (p *Publisher) PublishStoryCompleted(ctx context.Context, storyID string) {
	p.persist(ctx, Event{Type: EventStoryCompleted, StoryID: storyID})
}

// PublishStoryCancelled announces a cancelled story.
func (p *Publisher) PublishStoryCancelled(ctx context.Context, storyID string) {
	p.persist(ctx, Event{Type: EventStoryCancelled, StoryID: storyID})
}

// PublishStoryFailed announces a failed story.
func (p *Publisher) PublishStoryFailed(ctx context.Context, storyID, errMsg string) {
	p.persist(ctx, Event{Type: EventStoryFailed, StoryID: storyID, Error: errMsg})
}

// PublishChatResponse carries an assistant chat reply.
func (p *Publisher) PublishChatResponse(ctx context.Context, storyID, output string) {
	p.persist(ctx, Event{Type: EventChatResponse, StoryID: storyID, Output: output})
}

// PublishDone signals stream consumers that no further events will follow.
func (p *Publisher) PublishDone(storyID string) {
	p.transient(Event{Type: EventDone, StoryID: storyID})
}

// PublishError carries an engine-level error not tied to a single step.
func (p *Publisher) PublishError(ctx context.Context, storyID, errMsg string) {
	p.persist(ctx, Event{Type: EventError, StoryID: storyID, Error: errMsg})
}

// persist stamps, fans out, and appends the event.
func (p *Publisher) persist(ctx context.Context, event Event) {
	finish(&event)
	p.bus.Publish(event)
	p.append(ctx, event)
}

// transient stamps and fans out without touching the database.
func (p *Publisher) transient(event Event) {
	finish(&event)
	p.bus.Publish(event)
}

func finish(event *Event) {
	event.Timestamp = now()
	event.Output = capEventOutput(event.Output)
}

// append writes the event to the story's audit log. The write is detached
// from the caller's cancellation: a cancelled story still logs its
// story-cancelled event.
func (p *Publisher) append(ctx context.Context, event Event) {
	if p.client == nil {
		return
	}
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), appendTimeout)
	defer cancel()

	_, err := p.client.StoryEvent.Create().
		SetStoryID(event.StoryID).
		SetEventType(event.Type).
		SetPayload(event.payloadMap()).
		Save(writeCtx)
	if err != nil {
		slog.Warn("Failed to append story event",
			"story_id", event.StoryID,
			"type", event.Type,
			"error", err)
	}
}

// capEventOutput bounds the output preview carried on the wire.
func capEventOutput(s string) string {
	if len(s) <= maxEventOutput {
		return s
	}
	return s[:maxEventOutput] + "... [truncated]"
}
