package events

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/pkg/models"
)

// newBusPublisher returns a publisher without a database; append becomes a
// no-op and everything else behaves identically.
func newBusPublisher() (*Publisher, *Bus) {
	bus := NewBus()
	return NewPublisher(bus, nil), bus
}

func TestPublisher_StampsTimestamp(t *testing.T) {
	pub, bus := newBusPublisher()
	ch, cancel := bus.Subscribe("story-1")
	defer cancel()

	pub.PublishStoryCreated(context.Background(), "story-1")

	evt := receiveEvent(t, ch)
	assert.Equal(t, EventStoryCreated, evt.Type)
	assert.Equal(t, "story-1", evt.StoryID)
	stamp, err := time.Parse(time.RFC3339Nano, evt.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), stamp, time.Minute)
}

func TestPublisher_TruncatesLongOutput(t *testing.T) {
	pub, bus := newBusPublisher()
	ch, cancel := bus.Subscribe("story-1")
	defer cancel()

	long := strings.Repeat("x", maxEventOutput+500)
	pub.PublishStepCompleted(context.Background(), "story-1", 1, "step-a", "refactor", long)

	evt := receiveEvent(t, ch)
	assert.Len(t, evt.Output, maxEventOutput+len("... [truncated]"))
	assert.True(t, strings.HasSuffix(evt.Output, "... [truncated]"))
}

func TestPublisher_ShortOutputPassesThrough(t *testing.T) {
	pub, bus := newBusPublisher()
	ch, cancel := bus.Subscribe("story-1")
	defer cancel()

	pub.PublishStoryAnalyzed(context.Background(), "story-1", "three-step plan looks right")

	assert.Equal(t, "three-step plan looks right", receiveEvent(t, ch).Output)
}

func TestPublisher_GateEventsCarryResult(t *testing.T) {
	pub, bus := newBusPublisher()
	ch, cancel := bus.Subscribe("story-1")
	defer cancel()

	result := &models.GateResult{
		Passed:      false,
		GateType:    models.GateTypeComposite,
		Wave:        2,
		TestsPassed: 7,
		TestsFailed: 1,
		Error:       "tests failed: exit status 1",
	}
	pub.PublishGateFailed(context.Background(), "story-1", result)

	evt := receiveEvent(t, ch)
	assert.Equal(t, EventGateFailed, evt.Type)
	assert.Equal(t, 2, evt.Wave)
	assert.Equal(t, "tests failed: exit status 1", evt.Error)
	require.NotNil(t, evt.GateResult)
	assert.False(t, evt.GateResult.Passed)
	assert.Equal(t, 7, evt.GateResult.TestsPassed)
	assert.Equal(t, 1, evt.GateResult.TestsFailed)
}

func TestPublisher_StepProgressKeepsStepIdentity(t *testing.T) {
	pub, bus := newBusPublisher()
	ch, cancel := bus.Subscribe("story-1")
	defer cancel()

	pub.PublishStepProgress("story-1", "step-b", "write tests", "Thought: add a failing case first")

	evt := receiveEvent(t, ch)
	assert.Equal(t, EventStepProgress, evt.Type)
	assert.Equal(t, "step-b", evt.StepID)
	assert.Equal(t, "write tests", evt.StepName)
	assert.Contains(t, evt.Output, "failing case")
}

func TestPublisher_DoneSignalsEndOfStream(t *testing.T) {
	pub, bus := newBusPublisher()
	ch, cancel := bus.Subscribe("story-1")
	defer cancel()

	pub.PublishStoryCompleted(context.Background(), "story-1")
	pub.PublishDone("story-1")

	assert.Equal(t, EventStoryCompleted, receiveEvent(t, ch).Type)
	assert.Equal(t, EventDone, receiveEvent(t, ch).Type)
}

func TestEvent_PayloadMap(t *testing.T) {
	t.Run("drops unset optional fields", func(t *testing.T) {
		evt := Event{Type: EventStoryCreated, StoryID: "story-1", Timestamp: "2026-02-03T04:05:06Z"}
		m := evt.payloadMap()
		assert.Equal(t, map[string]any{
			"type":      EventStoryCreated,
			"storyId":   "story-1",
			"timestamp": "2026-02-03T04:05:06Z",
		}, m)
	})

	t.Run("keeps set fields and flattens the gate result", func(t *testing.T) {
		evt := Event{
			Type:       EventGatePassed,
			StoryID:    "story-1",
			Timestamp:  "2026-02-03T04:05:06Z",
			Wave:       3,
			TotalWaves: 4,
			GateResult: &models.GateResult{Passed: true, GateType: models.GateTypeTest, Wave: 3, TestsPassed: 12},
		}
		m := evt.payloadMap()
		assert.Equal(t, 3, m["wave"])
		assert.Equal(t, 4, m["totalWaves"])
		gate, ok := m["gateResult"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, gate["passed"])
		assert.Equal(t, 12, gate["testsPassed"])
	})
}
