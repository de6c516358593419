package events

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber
// that falls this far behind is dropped rather than allowed to stall
// publishers.
const subscriberBuffer = 64

type subscriber struct {
	id      string
	storyID string
	ch      chan Event
}

// Bus fans events out to per-story subscribers.
//
// Publish performs non-blocking sends while holding the read lock; channel
// close always happens under the write lock, so a send can never race a
// close. A full subscriber buffer marks the subscriber for removal, and it
// is dropped after the publish pass with a final error event.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[string]*subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[string]*subscriber)}
}

// Subscribe registers for one story's events. The returned cancel is
// idempotent and safe to call after the bus has already dropped the
// subscriber.
//
// The channel capacity is subscriberBuffer+1: the extra slot is reserved
// for the terminal error event, so a dropped subscriber always learns why
// its channel closed.
func (b *Bus) Subscribe(storyID string) (<-chan Event, func()) {
	sub := &subscriber{
		id:      uuid.NewString(),
		storyID: storyID,
		ch:      make(chan Event, subscriberBuffer+1),
	}

	b.mu.Lock()
	if b.subs[storyID] == nil {
		b.subs[storyID] = make(map[string]*subscriber)
	}
	b.subs[storyID][sub.id] = sub
	b.mu.Unlock()

	cancel := func() { b.remove(sub, nil) }
	return sub.ch, cancel
}

// Publish delivers the event to every subscriber of its story. Slow
// subscribers are dropped, not waited for.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	var overflowed []*subscriber
	for _, sub := range b.subs[event.StoryID] {
		if len(sub.ch) >= subscriberBuffer {
			// Regular events stop at subscriberBuffer; the last slot
			// belongs to the drop notice.
			overflowed = append(overflowed, sub)
			continue
		}
		select {
		case sub.ch <- event:
		default:
			overflowed = append(overflowed, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range overflowed {
		slog.Warn("Dropping slow event subscriber",
			"story_id", sub.storyID,
			"subscriber_id", sub.id,
			"buffer", subscriberBuffer)
		b.remove(sub, &Event{
			Type:      EventError,
			StoryID:   sub.storyID,
			Timestamp: now(),
			Error:     "subscriber too slow; events dropped",
		})
	}
}

// SubscriberCount reports the live subscribers for a story. Tests poll
// this instead of sleeping.
func (b *Bus) SubscriberCount(storyID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[storyID])
}

// remove unregisters the subscriber and closes its channel, optionally
// enqueueing one final event first. Runs under the write lock so no
// concurrent Publish can be mid-send on the channel.
func (b *Bus) remove(sub *subscriber, final *Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m := b.subs[sub.storyID]
	if m == nil {
		return
	}
	if _, ok := m[sub.id]; !ok {
		return
	}
	delete(m, sub.id)
	if len(m) == 0 {
		delete(b.subs, sub.storyID)
	}

	if final != nil {
		select {
		case sub.ch <- *final:
		default:
		}
	}
	close(sub.ch)
}
