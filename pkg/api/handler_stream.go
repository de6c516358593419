package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johnazariah/aura-sub009/pkg/events"
)

// heartbeatInterval keeps intermediaries from timing out an idle stream.
const heartbeatInterval = 15 * time.Second

// streamStoryEvents bridges a bus subscription onto text/event-stream.
// The subscription lives until the client disconnects, the bus drops the
// subscriber, or a terminal "done" event arrives.
func (s *Server) streamStoryEvents(c *gin.Context) {
	storyID := c.Param("id")

	// 404 before committing to the stream; SSE errors after the first
	// byte are invisible to EventSource clients.
	if _, err := s.stories.GetStory(c.Request.Context(), storyID, false); err != nil {
		respondError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		respondError(c, fmt.Errorf("response writer does not support streaming"))
		return
	}

	ch, cancel := s.bus.Subscribe(storyID)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	// An immediate comment commits the stream so clients see the
	// connection as open.
	fmt.Fprint(c.Writer, ": connected\n\n")
	flusher.Flush()

	slog.Info("SSE stream opened", "story_id", storyID)
	defer slog.Info("SSE stream closed", "story_id", storyID)

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			flusher.Flush()
		case event, open := <-ch:
			if !open {
				// Bus dropped us (slow consumer) or shut down.
				return
			}
			if err := writeSSE(c.Writer, event); err != nil {
				return
			}
			flusher.Flush()
			if event.Type == events.EventDone {
				return
			}
		}
	}
}

// writeSSE writes one event in SSE framing: an event name line and a
// single-line JSON data payload.
func writeSSE(w http.ResponseWriter, event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload)
	return err
}
