package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entstep "github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

func TestChatWithStory(t *testing.T) {
	f := newAPIFixture(t, "The middleware lives in pkg/api; start with the recovery handler.")
	created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "chatty"})
	id := created["id"].(string)
	seedChattable(t, f.client, id)

	rec := f.do(t, http.MethodPost, "/api/developer/stories/"+id+"/chat",
		models.ChatRequest{Message: "where should I start?"})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	resp := decodeJSON[models.ChatResponse](t, rec)
	assert.Contains(t, resp.Response, "recovery handler")
	assert.False(t, resp.PlanModified)

	// Both turns were persisted.
	rec = f.do(t, http.MethodGet, "/api/developer/stories/"+id+"/chat", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string][]map[string]any](t, rec)
	require.Len(t, body["messages"], 2)
	assert.Equal(t, "user", body["messages"][0]["role"])
	assert.Equal(t, "assistant", body["messages"][1]["role"])
}

func TestChatWithStep(t *testing.T) {
	f := newAPIFixture(t, "That step should also cover the timeout path.")
	storyID, stepID := seedStoryWithStep(t, f, entstep.StatusPending)

	rec := f.do(t, http.MethodPost,
		"/api/developer/stories/"+storyID+"/steps/"+stepID+"/chat",
		models.ChatRequest{Message: "anything missing here?"})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	assert.Contains(t, decodeJSON[models.ChatResponse](t, rec).Response, "timeout path")

	// Step-scoped history is filtered by stepId.
	rec = f.do(t, http.MethodGet,
		"/api/developer/stories/"+storyID+"/chat?stepId="+stepID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string][]map[string]any](t, rec)
	assert.Len(t, body["messages"], 2)

	// Story-level history excludes step turns.
	rec = f.do(t, http.MethodGet, "/api/developer/stories/"+storyID+"/chat", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeJSON[map[string][]map[string]any](t, rec)
	assert.Empty(t, body["messages"])
}
