package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt, ok := <-ch:
		require.True(t, ok, "channel closed before event arrived")
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBus_PublishReachesSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("story-1")
	defer cancel()

	bus.Publish(Event{Type: EventStepStarted, StoryID: "story-1", Wave: 1, StepID: "step-a", StepName: "write parser"})

	evt := receiveEvent(t, ch)
	assert.Equal(t, EventStepStarted, evt.Type)
	assert.Equal(t, "story-1", evt.StoryID)
	assert.Equal(t, 1, evt.Wave)
	assert.Equal(t, "step-a", evt.StepID)
	assert.Equal(t, "write parser", evt.StepName)
}

func TestBus_PublishIsScopedToStory(t *testing.T) {
	bus := NewBus()
	chA, cancelA := bus.Subscribe("story-a")
	defer cancelA()
	chB, cancelB := bus.Subscribe("story-b")
	defer cancelB()

	bus.Publish(Event{Type: EventStoryCreated, StoryID: "story-a"})

	evt := receiveEvent(t, chA)
	assert.Equal(t, "story-a", evt.StoryID)

	select {
	case evt := <-chB:
		t.Fatalf("story-b subscriber received %q for story-a", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_MultipleSubscribersReceiveSameEvent(t *testing.T) {
	bus := NewBus()
	ch1, cancel1 := bus.Subscribe("story-1")
	defer cancel1()
	ch2, cancel2 := bus.Subscribe("story-1")
	defer cancel2()

	require.Equal(t, 2, bus.SubscriberCount("story-1"))
	bus.Publish(Event{Type: EventWaveStarted, StoryID: "story-1", Wave: 2})

	assert.Equal(t, 2, receiveEvent(t, ch1).Wave)
	assert.Equal(t, 2, receiveEvent(t, ch2).Wave)
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe("story-1")

	cancel()
	_, ok := <-ch
	assert.False(t, ok, "channel should be closed after cancel")
	assert.Equal(t, 0, bus.SubscriberCount("story-1"))

	// Idempotent, and publishing to a story with no subscribers is a no-op.
	cancel()
	bus.Publish(Event{Type: EventStoryCompleted, StoryID: "story-1"})
}

func TestBus_SlowSubscriberIsDropped(t *testing.T) {
	bus := NewBus()
	slow, cancel := bus.Subscribe("story-1")
	defer cancel()

	for i := 0; i < subscriberBuffer+1; i++ {
		bus.Publish(Event{Type: EventStepProgress, StoryID: "story-1", Output: "chunk"})
	}
	require.Equal(t, 0, bus.SubscriberCount("story-1"), "slow subscriber is gone")

	// The channel holds the buffered events, then the drop notice, then
	// closes.
	var drained []Event
	for evt := range slow {
		drained = append(drained, evt)
	}
	require.Len(t, drained, subscriberBuffer+1)
	for _, evt := range drained[:subscriberBuffer] {
		assert.Equal(t, EventStepProgress, evt.Type)
	}
	last := drained[subscriberBuffer]
	assert.Equal(t, EventError, last.Type)
	assert.Contains(t, last.Error, "too slow")
	assert.NotEmpty(t, last.Timestamp)
}

func TestBus_DropDoesNotAffectOtherSubscribers(t *testing.T) {
	bus := NewBus()
	slow, _ := bus.Subscribe("story-1")
	fast, cancelFast := bus.Subscribe("story-1")
	defer cancelFast()

	// Drain fast synchronously after each publish so only slow overflows.
	for i := 0; i < subscriberBuffer+1; i++ {
		bus.Publish(Event{Type: EventStepProgress, StoryID: "story-1"})
		receiveEvent(t, fast)
	}
	require.Equal(t, 1, bus.SubscriberCount("story-1"))

	bus.Publish(Event{Type: EventDone, StoryID: "story-1"})
	assert.Equal(t, EventDone, receiveEvent(t, fast).Type)

	drained := 0
	for range slow {
		drained++
	}
	assert.Equal(t, subscriberBuffer+1, drained, "buffered events plus drop notice")
}
