package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	entstory "github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

func createStoryViaAPI(t *testing.T, f *apiFixture, req models.CreateStoryRequest) map[string]any {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/developer/stories", req)
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	return decodeJSON[map[string]any](t, rec)
}

func TestCreateStory(t *testing.T) {
	t.Run("created with defaults", func(t *testing.T) {
		f := newAPIFixture(t)
		body := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "add rate limiting"})

		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "add rate limiting", body["title"])
		assert.Equal(t, "created", body["status"])
		assert.Equal(t, "assisted", body["automation_mode"])
	})

	t.Run("missing title", func(t *testing.T) {
		f := newAPIFixture(t)
		rec := f.do(t, http.MethodPost, "/api/developer/stories", models.CreateStoryRequest{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		p := decodeJSON[Problem](t, rec)
		assert.Equal(t, problemMissingField, p.Type)
		assert.Contains(t, p.Detail, "title")
	})

	t.Run("invalid automation mode", func(t *testing.T) {
		f := newAPIFixture(t)
		rec := f.do(t, http.MethodPost, "/api/developer/stories", models.CreateStoryRequest{
			Title:          "x",
			AutomationMode: "sometimes",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, problemMissingField, decodeJSON[Problem](t, rec).Type)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newAPIFixture(t)
		rec := f.do(t, http.MethodPost, "/api/developer/stories", "not an object")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAndListStories(t *testing.T) {
	f := newAPIFixture(t)
	created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "first"})
	createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "second"})
	id := created["id"].(string)

	t.Run("detail includes steps", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/developer/stories/"+id, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, "first", body["title"])
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/developer/stories/nope", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, problemNotFound, decodeJSON[Problem](t, rec).Type)
	})

	t.Run("list all", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/developer/stories", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, float64(2), body["totalCount"])
	})

	t.Run("status filter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/developer/stories?status=completed", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, float64(0), body["totalCount"])
	})

	t.Run("bad pagination", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/developer/stories?limit=lots", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteStory(t *testing.T) {
	f := newAPIFixture(t)
	created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "short-lived"})
	id := created["id"].(string)

	rec := f.do(t, http.MethodDelete, "/api/developer/stories/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/developer/stories/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoryLifecycleEndpoints(t *testing.T) {
	t.Run("analyze succeeds and returns the story with a message", func(t *testing.T) {
		f := newAPIFixture(t, "The change touches the auth middleware.")
		created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "harden auth"})
		id := created["id"].(string)

		rec := f.do(t, http.MethodPost, "/api/developer/stories/"+id+"/analyze", nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		body := decodeJSON[map[string]any](t, rec)
		story := body["story"].(map[string]any)
		assert.Equal(t, "analyzed", story["status"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("run from created is an invalid state", func(t *testing.T) {
		f := newAPIFixture(t)
		created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "impatient"})
		id := created["id"].(string)

		rec := f.do(t, http.MethodPost, "/api/developer/stories/"+id+"/run", nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		p := decodeJSON[Problem](t, rec)
		assert.Equal(t, problemInvalidState, p.Type)
		assert.Contains(t, p.Detail, "created")
	})

	t.Run("llm failure maps to llm-error", func(t *testing.T) {
		f := newAPIFixture(t) // no scripted replies
		created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "doomed"})
		id := created["id"].(string)

		rec := f.do(t, http.MethodPost, "/api/developer/stories/"+id+"/analyze", nil)
		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, problemLLM, decodeJSON[Problem](t, rec).Type)
	})
}

func TestUpdateStoryStatus(t *testing.T) {
	f := newAPIFixture(t)
	created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "admin target"})
	id := created["id"].(string)

	t.Run("legal override", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/developer/stories/"+id+"/status",
			models.UpdateStatusRequest{Status: "failed"})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		st, err := f.client.Story.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, entstory.StatusFailed, st.Status)
	})

	t.Run("engine-owned target rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/developer/stories/"+id+"/status",
			models.UpdateStatusRequest{Status: "running"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, problemMissingField, decodeJSON[Problem](t, rec).Type)
	})
}

func TestOrchestratorEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "orchestrated"})
	id := created["id"].(string)

	// Force a planned story with one waved step so status has content.
	ctx := context.Background()
	_, err := f.client.Story.UpdateOneID(id).SetStatus(entstory.StatusPlanned).Save(ctx)
	require.NoError(t, err)
	_, err = f.client.Step.Create().
		SetID("step-1").
		SetStoryID(id).
		SetOrderIndex(1).
		SetName("write handler").
		SetCapability("coding").
		SetWave(1).
		Save(ctx)
	require.NoError(t, err)

	t.Run("status", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/developer/stories/"+id+"/orchestrator", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		status := decodeJSON[models.OrchestratorStatus](t, rec)
		assert.Equal(t, 1, status.TotalWaves)
		require.Len(t, status.Steps, 1)
		assert.Equal(t, "write handler", status.Steps[0].Name)
	})

	t.Run("reset returns the story to planned", func(t *testing.T) {
		_, err := f.client.Story.UpdateOneID(id).SetStatus(entstory.StatusFailed).Save(ctx)
		require.NoError(t, err)

		rec := f.do(t, http.MethodPatch, "/api/developer/stories/"+id+"/orchestrator",
			models.ResetOrchestratorRequest{ResetFailedTasks: true})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		st, err := f.client.Story.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entstory.StatusPlanned, st.Status)
		assert.Zero(t, st.CurrentWave)
	})
}

func TestChatEndpointGuards(t *testing.T) {
	f := newAPIFixture(t)
	created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "quiet"})
	id := created["id"].(string)

	t.Run("chat before analysis is an invalid state", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/developer/stories/"+id+"/chat",
			models.ChatRequest{Message: "hello"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("empty message", func(t *testing.T) {
		seedChattable(t, f.client, id)
		rec := f.do(t, http.MethodPost, "/api/developer/stories/"+id+"/chat",
			models.ChatRequest{Message: "  "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func seedChattable(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Story.UpdateOneID(id).SetStatus(entstory.StatusAnalyzed).Save(context.Background())
	require.NoError(t, err)
}
