package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	entstep "github.com/johnazariah/aura-sub009/ent/step"
	entstory "github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/services"
)

// seedStoryWithStep creates a planned story with one step in the given
// status and returns (storyID, stepID).
func seedStoryWithStep(t *testing.T, f *apiFixture, status entstep.Status) (string, string) {
	t.Helper()
	ctx := context.Background()

	created := createStoryViaAPI(t, f, models.CreateStoryRequest{Title: "stepped story"})
	id := created["id"].(string)
	_, err := f.client.Story.UpdateOneID(id).SetStatus(entstory.StatusPlanned).Save(ctx)
	require.NoError(t, err)

	create := f.client.Step.Create().
		SetID(id + "-step-1").
		SetStoryID(id).
		SetOrderIndex(1).
		SetName("write handler").
		SetCapability("coding").
		SetWave(1).
		SetStatus(status)
	if status == entstep.StatusCompleted {
		create = create.SetOutput("handler written")
	}
	sp, err := create.Save(ctx)
	require.NoError(t, err)
	return id, sp.ID
}

func TestAddAndRemoveStep(t *testing.T) {
	f := newAPIFixture(t)
	storyID, stepID := seedStoryWithStep(t, f, entstep.StatusPending)

	t.Run("add", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/developer/stories/"+storyID+"/steps",
			models.AddStepRequest{Name: "add tests", Capability: "coding"})
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
		body := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, "add tests", body["name"])
		assert.Equal(t, float64(2), body["order_index"])
	})

	t.Run("add without capability", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/developer/stories/"+storyID+"/steps",
			models.AddStepRequest{Name: "mystery"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, problemMissingField, decodeJSON[Problem](t, rec).Type)
	})

	t.Run("remove pending", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete,
			"/api/developer/stories/"+storyID+"/steps/"+stepID, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("remove unknown", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete,
			"/api/developer/stories/"+storyID+"/steps/ghost", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStepReviewEndpoints(t *testing.T) {
	t.Run("approve a completed step", func(t *testing.T) {
		f := newAPIFixture(t)
		storyID, stepID := seedStoryWithStep(t, f, entstep.StatusCompleted)

		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/approve", nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		body := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, "approved", body["approval"])
	})

	t.Run("approve a pending step is invalid", func(t *testing.T) {
		f := newAPIFixture(t)
		storyID, stepID := seedStoryWithStep(t, f, entstep.StatusPending)

		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/approve", nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, problemInvalidState, decodeJSON[Problem](t, rec).Type)
	})

	t.Run("reject with feedback starts rework", func(t *testing.T) {
		f := newAPIFixture(t)
		storyID, stepID := seedStoryWithStep(t, f, entstep.StatusCompleted)

		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/reject",
			models.RejectStepRequest{Feedback: "missing error handling"})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		body := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, "rejected", body["status"])
		assert.Equal(t, true, body["needs_rework"])
		assert.Equal(t, "missing error handling", body["approval_feedback"])
	})

	t.Run("skip with a reason", func(t *testing.T) {
		f := newAPIFixture(t)
		storyID, stepID := seedStoryWithStep(t, f, entstep.StatusPending)

		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/skip",
			models.SkipStepRequest{Reason: "superseded by step 2"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "skipped", decodeJSON[map[string]any](t, rec)["status"])
	})

	t.Run("reset returns a step to pending", func(t *testing.T) {
		f := newAPIFixture(t)
		storyID, stepID := seedStoryWithStep(t, f, entstep.StatusCompleted)

		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/reset", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pending", decodeJSON[map[string]any](t, rec)["status"])
	})
}

func TestReassignStep(t *testing.T) {
	f := newAPIFixture(t)
	storyID, stepID := seedStoryWithStep(t, f, entstep.StatusPending)

	t.Run("to a loaded agent", func(t *testing.T) {
		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/reassign",
			models.ReassignStepRequest{AgentID: "coder"})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		assert.Equal(t, "coder", decodeJSON[map[string]any](t, rec)["agent_id"])
	})

	t.Run("to an unknown agent", func(t *testing.T) {
		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/reassign",
			models.ReassignStepRequest{AgentID: "ghost"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateStepDescription(t *testing.T) {
	f := newAPIFixture(t)
	storyID, stepID := seedStoryWithStep(t, f, entstep.StatusPending)

	rec := f.do(t, http.MethodPut,
		"/api/developer/stories/"+storyID+"/steps/"+stepID+"/description",
		models.UpdateStepDescriptionRequest{Description: "return 429 with a Retry-After header"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "return 429 with a Retry-After header",
		decodeJSON[map[string]any](t, rec)["description"])
}

func TestExecuteStepWithoutExecutor(t *testing.T) {
	f := newAPIFixture(t)
	storyID, stepID := seedStoryWithStep(t, f, entstep.StatusPending)

	rec := f.do(t, http.MethodPost,
		"/api/developer/stories/"+storyID+"/steps/"+stepID+"/execute", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

// scriptedStepExecutor returns a fixed outcome for the execute endpoint.
type scriptedStepExecutor struct {
	final *ent.Step
	err   error
}

func (e *scriptedStepExecutor) Execute(_ context.Context, _ *ent.Story, sp *ent.Step) (*ent.Step, error) {
	if e.final != nil {
		return e.final, e.err
	}
	return sp, e.err
}

func TestExecuteStepResponses(t *testing.T) {
	t.Run("guard rejection is a plain conflict", func(t *testing.T) {
		f := newAPIFixture(t)
		storyID, stepID := seedStoryWithStep(t, f, entstep.StatusCompleted)
		f.server.executor = &scriptedStepExecutor{
			err: services.NewInvalidStateError("start step", "completed"),
		}

		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/execute", nil)
		require.Equal(t, http.StatusConflict, rec.Code, "body: %s", rec.Body.String())
		p := decodeJSON[Problem](t, rec)
		assert.Equal(t, problemInvalidState, p.Type)
		// Nothing ran, so there is no step envelope.
		assert.NotContains(t, rec.Body.String(), `"step"`)
	})

	t.Run("run failure carries the step alongside the problem", func(t *testing.T) {
		f := newAPIFixture(t)
		storyID, stepID := seedStoryWithStep(t, f, entstep.StatusPending)

		failed, err := f.client.Step.UpdateOneID(stepID).
			SetStatus(entstep.StatusFailed).
			SetError("scripted failure").
			SetAttempts(1).
			Save(context.Background())
		require.NoError(t, err)
		f.server.executor = &scriptedStepExecutor{
			final: failed,
			err:   errors.New("scripted failure"),
		}

		rec := f.do(t, http.MethodPost,
			"/api/developer/stories/"+storyID+"/steps/"+stepID+"/execute", nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code, "body: %s", rec.Body.String())
		body := decodeJSON[map[string]any](t, rec)
		require.Contains(t, body, "step")
		require.Contains(t, body, "problem")
		sp := body["step"].(map[string]any)
		assert.Equal(t, "failed", sp["status"])
	})
}
