package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

func TestStreamStoryEvents(t *testing.T) {
	t.Run("unknown story 404s before the stream commits", func(t *testing.T) {
		f := newAPIFixture(t)
		rec := f.do(t, http.MethodGet, "/api/developer/stories/nope/stream", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("events flow until done", func(t *testing.T) {
		f := newAPIFixture(t)
		created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "streamed"})
		id := created["id"].(string)

		req := httptest.NewRequest(http.MethodGet, "/api/developer/stories/"+id+"/stream", nil)
		rec := httptest.NewRecorder()

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			f.router.ServeHTTP(rec, req)
		}()

		require.Eventually(t, func() bool {
			return f.bus.SubscriberCount(id) == 1
		}, 2*time.Second, 10*time.Millisecond)

		f.bus.Publish(events.Event{
			Type:      events.EventStepCompleted,
			StoryID:   id,
			Timestamp: time.Now().Format(time.RFC3339Nano),
			Wave:      1,
			StepID:    "s1",
			StepName:  "write handler",
			Output:    "done",
		})
		f.bus.Publish(events.Event{
			Type:      events.EventDone,
			StoryID:   id,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})

		select {
		case <-finished:
		case <-time.After(5 * time.Second):
			t.Fatal("stream did not terminate on done event")
		}

		body := rec.Body.String()
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(body, ": connected\n\n"))
		assert.Contains(t, body, "event: step-completed\n")
		assert.Contains(t, body, `"stepName":"write handler"`)
		assert.Contains(t, body, "event: done\n")
	})

	t.Run("client disconnect ends the stream", func(t *testing.T) {
		f := newAPIFixture(t)
		created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "abandoned"})
		id := created["id"].(string)

		ctx, cancel := context.WithCancel(context.Background())
		req := httptest.NewRequest(http.MethodGet, "/api/developer/stories/"+id+"/stream", nil).
			WithContext(ctx)
		rec := httptest.NewRecorder()

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			f.router.ServeHTTP(rec, req)
		}()

		require.Eventually(t, func() bool {
			return f.bus.SubscriberCount(id) == 1
		}, 2*time.Second, 10*time.Millisecond)

		cancel()
		select {
		case <-finished:
		case <-time.After(5 * time.Second):
			t.Fatal("stream did not terminate on client disconnect")
		}

		// The handler's deferred cancel unsubscribed us.
		assert.Zero(t, f.bus.SubscriberCount(id))
	})
}
