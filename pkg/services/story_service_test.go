package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/gitops"
	"github.com/johnazariah/aura-sub009/pkg/models"
	testdb "github.com/johnazariah/aura-sub009/test/database"
)

// newTestStoryService wires a StoryService over a fresh database with a
// scripted LLM and the default test agents. No GitHub client: issue and PR
// paths are exercised separately.
func newTestStoryService(t *testing.T, client *ent.Client, replies ...string) (*StoryService, *scriptedLLM) {
	t.Helper()
	mock := &scriptedLLM{replies: replies}
	svc := NewStoryService(client, testConfig(t), testRegistry(t, defaultTestAgents()),
		mock, gitops.New(), nil, testPublisher(client))
	return svc, mock
}

func TestStoryService_CreateStory(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _ := newTestStoryService(t, client.Client)
	ctx := context.Background()

	t.Run("creates story with defaults", func(t *testing.T) {
		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "Add healthcheck"})
		require.NoError(t, err)
		assert.NotEmpty(t, st.ID)
		assert.Equal(t, "Add healthcheck", st.Title)
		assert.Equal(t, story.StatusCreated, st.Status)
		assert.Equal(t, story.AutomationModeAssisted, st.AutomationMode)
		assert.Equal(t, story.DispatchTargetInternal, st.DispatchTarget)
		assert.Equal(t, story.GateModeManualApproval, st.GateMode)
		assert.Equal(t, 4, st.MaxParallelism)
		assert.Equal(t, 0, st.CurrentWave)
		assert.Nil(t, st.WorktreePath)
	})

	t.Run("applies request overrides", func(t *testing.T) {
		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{
			Title:          "Tuned story",
			AutomationMode: "autonomous",
			GateMode:       "auto_proceed",
			MaxParallelism: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, story.AutomationModeAutonomous, st.AutomationMode)
		assert.Equal(t, story.GateModeAutoProceed, st.GateMode)
		assert.Equal(t, 2, st.MaxParallelism)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		_, err := svc.CreateStory(ctx, models.CreateStoryRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects invalid enums", func(t *testing.T) {
		_, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x", AutomationMode: "sometimes"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x", DispatchTarget: "carrier_pigeon"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x", GateMode: "vibes"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects malformed issue URL", func(t *testing.T) {
		_, err := svc.CreateStory(ctx, models.CreateStoryRequest{
			Title:    "x",
			IssueURL: "not-a-url",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestStoryService_GetAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _ := newTestStoryService(t, client.Client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: fmt.Sprintf("story %d", i)})
		require.NoError(t, err)
	}

	t.Run("get unknown story", func(t *testing.T) {
		_, err := svc.GetStory(ctx, uuid.New().String(), false)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list all", func(t *testing.T) {
		resp, err := svc.ListStories(ctx, models.StoryFilters{})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalCount)
		assert.Len(t, resp.Stories, 5)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := svc.ListStories(ctx, models.StoryFilters{Limit: 2, Offset: 4})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalCount)
		assert.Len(t, resp.Stories, 1)
		assert.Equal(t, 2, resp.Limit)
	})

	t.Run("status filter", func(t *testing.T) {
		resp, err := svc.ListStories(ctx, models.StoryFilters{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalCount)
	})
}

func TestStoryService_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("stores analysis and transitions to analyzed", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, mock := newTestStoryService(t, client.Client, "The task touches the HTTP layer.")

		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "Add endpoint"})
		require.NoError(t, err)

		st, err = svc.Analyze(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusAnalyzed, st.Status)
		assert.Equal(t, "The task touches the HTTP layer.", st.AnalyzedContext["summary"])
		assert.Equal(t, "analyst", st.AnalyzedContext["agent_id"])
		assert.Equal(t, 1, mock.callCount())
	})

	t.Run("illegal from running", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client)

		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x"})
		require.NoError(t, err)
		_, err = client.Story.UpdateOneID(st.ID).SetStatus(story.StatusRunning).Save(ctx)
		require.NoError(t, err)

		_, err = svc.Analyze(ctx, st.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("no analysis agent", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		mock := &scriptedLLM{}
		svc := NewStoryService(client.Client, testConfig(t),
			testRegistry(t, map[string]string{
				"coder": "# Coder\n\n## Capabilities\n- coding\n",
			}),
			mock, gitops.New(), nil, testPublisher(client.Client))

		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x"})
		require.NoError(t, err)

		_, err = svc.Analyze(ctx, st.ID)
		assert.ErrorIs(t, err, ErrNoAgentForCapability)
	})

	t.Run("LLM failure reverts status", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client) // no scripted replies -> Generate errors

		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x"})
		require.NoError(t, err)

		_, err = svc.Analyze(ctx, st.ID)
		require.Error(t, err)
		var llmErr *LLMError
		assert.True(t, errors.As(err, &llmErr))

		st, err = svc.GetStory(ctx, st.ID, false)
		require.NoError(t, err)
		assert.Equal(t, story.StatusCreated, st.Status)
	})
}

const plannerReply = "```json\n" +
	`[{"name": "write handler", "capability": "coding", "language": "go", "description": "Add the endpoint"},
	  {"name": "wire route", "capability": "coding", "dependsOn": ["write handler"]},
	  {"name": "add tests", "capability": "testing", "dependsOn": ["wire route"]}]` +
	"\n```"

// analyzedStory creates a story already carrying an analysis so Plan is
// legal.
func analyzedStory(t *testing.T, svc *StoryService, client *ent.Client) *ent.Story {
	t.Helper()
	ctx := context.Background()
	st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "Add endpoint"})
	require.NoError(t, err)
	st, err = client.Story.UpdateOneID(st.ID).
		SetStatus(story.StatusAnalyzed).
		SetAnalyzedContext(map[string]interface{}{"summary": "touches HTTP layer"}).
		Save(ctx)
	require.NoError(t, err)
	return st
}

func TestStoryService_Plan(t *testing.T) {
	ctx := context.Background()

	t.Run("parses plan into steps", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client, plannerReply)
		st := analyzedStory(t, svc, client.Client)

		st, err := svc.Plan(ctx, st.ID, true)
		require.NoError(t, err)
		assert.Equal(t, story.StatusPlanned, st.Status)

		steps, err := client.Step.Query().
			Where(step.StoryIDEQ(st.ID)).
			Order(ent.Asc(step.FieldOrderIndex)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, steps, 3)
		assert.Equal(t, "write handler", steps[0].Name)
		assert.Equal(t, 1, steps[0].OrderIndex)
		assert.Equal(t, "go", steps[0].Language)
		assert.Nil(t, steps[0].Wave)
		assert.Equal(t, []string{"wire route"}, steps[2].DependsOn)
	})

	t.Run("replan replaces prior steps", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client,
			plannerReply,
			`[{"name": "only step", "capability": "coding"}]`)
		st := analyzedStory(t, svc, client.Client)

		_, err := svc.Plan(ctx, st.ID, true)
		require.NoError(t, err)
		_, err = svc.Plan(ctx, st.ID, false)
		require.NoError(t, err)

		steps, err := client.Step.Query().Where(step.StoryIDEQ(st.ID)).All(ctx)
		require.NoError(t, err)
		require.Len(t, steps, 1)
		assert.Equal(t, "only step", steps[0].Name)
	})

	t.Run("unparseable reply reverts status", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client, "I cannot plan this.")
		st := analyzedStory(t, svc, client.Client)

		_, err := svc.Plan(ctx, st.ID, true)
		require.Error(t, err)

		st, err = svc.GetStory(ctx, st.ID, false)
		require.NoError(t, err)
		assert.Equal(t, story.StatusAnalyzed, st.Status)
	})

	t.Run("illegal from created", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client)
		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x"})
		require.NoError(t, err)

		_, err = svc.Plan(ctx, st.ID, true)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestStoryService_Decompose(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns waves from dependencies", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client, plannerReply)
		st := analyzedStory(t, svc, client.Client)
		_, err := svc.Plan(ctx, st.ID, true)
		require.NoError(t, err)

		st, err = svc.Decompose(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusPlanned, st.Status)
		assert.Equal(t, 0, st.CurrentWave)

		steps := st.Edges.Steps
		require.Len(t, steps, 3)
		wavesByName := map[string]int{}
		for _, sp := range steps {
			require.NotNil(t, sp.Wave)
			wavesByName[sp.Name] = *sp.Wave
		}
		assert.Equal(t, map[string]int{
			"write handler": 1,
			"wire route":    2,
			"add tests":     3,
		}, wavesByName)
	})

	t.Run("edge-free plan is sequential", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client,
			`[{"name": "a", "capability": "coding"}, {"name": "b", "capability": "coding"}]`)
		st := analyzedStory(t, svc, client.Client)
		_, err := svc.Plan(ctx, st.ID, false)
		require.NoError(t, err)

		st, err = svc.Decompose(ctx, st.ID)
		require.NoError(t, err)
		waves := make([]int, 0, 2)
		for _, sp := range st.Edges.Steps {
			waves = append(waves, *sp.Wave)
		}
		assert.Equal(t, []int{1, 2}, waves)
	})

	t.Run("illegal without plan", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client)
		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x"})
		require.NoError(t, err)

		_, err = svc.Decompose(ctx, st.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestStoryService_RunCompleteCancel(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*StoryService, *ent.Client, *ent.Story) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client, plannerReply)
		st := analyzedStory(t, svc, client.Client)
		_, err := svc.Plan(ctx, st.ID, true)
		require.NoError(t, err)
		st, err = svc.Decompose(ctx, st.ID)
		require.NoError(t, err)
		return svc, client.Client, st
	}

	t.Run("run marks story running", func(t *testing.T) {
		svc, _, st := setup(t)
		st, err := svc.RunStory(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusRunning, st.Status)
	})

	t.Run("run requires waves", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client,
			`[{"name": "a", "capability": "coding"}]`)
		st := analyzedStory(t, svc, client.Client)
		_, err := svc.Plan(ctx, st.ID, false)
		require.NoError(t, err)

		// Planned but never decomposed: steps carry no wave.
		_, err = svc.RunStory(ctx, st.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("run from gate_pending advances the wave", func(t *testing.T) {
		svc, client, st := setup(t)
		_, err := client.Story.UpdateOneID(st.ID).
			SetStatus(story.StatusGatePending).
			SetCurrentWave(1).
			Save(ctx)
		require.NoError(t, err)

		st, err = svc.RunStory(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusRunning, st.Status)
		assert.Equal(t, 2, st.CurrentWave)
	})

	t.Run("complete short-circuits", func(t *testing.T) {
		svc, client, st := setup(t)
		_, err := client.Story.UpdateOneID(st.ID).SetStatus(story.StatusRunning).Save(ctx)
		require.NoError(t, err)

		st, err = svc.Complete(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusCompleted, st.Status)
		assert.NotNil(t, st.CompletedAt)
	})

	t.Run("cancel without in-flight run is immediate", func(t *testing.T) {
		svc, client, st := setup(t)
		_, err := client.Story.UpdateOneID(st.ID).SetStatus(story.StatusFailed).Save(ctx)
		require.NoError(t, err)

		st, err = svc.Cancel(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusCancelled, st.Status)
	})

	t.Run("cancel defers to the scheduler when a driver is active", func(t *testing.T) {
		svc, client, st := setup(t)
		_, err := client.Story.UpdateOneID(st.ID).SetStatus(story.StatusRunning).Save(ctx)
		require.NoError(t, err)

		cancelled := ""
		svc.SetCancelHook(func(storyID string) bool {
			cancelled = storyID
			return true
		})

		st, err = svc.Cancel(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, st.ID, cancelled)
		// Status unchanged here: the draining scheduler owns the transition.
		assert.Equal(t, story.StatusRunning, st.Status)
	})

	t.Run("cancel of a terminal story is invalid-state", func(t *testing.T) {
		svc, client, st := setup(t)
		_, err := client.Story.UpdateOneID(st.ID).SetStatus(story.StatusCancelled).Save(ctx)
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, st.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestStoryService_AdminResets(t *testing.T) {
	ctx := context.Background()

	t.Run("status override honors the target allowlist", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client)
		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "x"})
		require.NoError(t, err)

		st, err = svc.ResetStatus(ctx, st.ID, "failed")
		require.NoError(t, err)
		assert.Equal(t, story.StatusFailed, st.Status)

		_, err = svc.ResetStatus(ctx, st.ID, "running")
		assert.True(t, IsValidationError(err))

		_, err = svc.ResetStatus(ctx, st.ID, "warp-speed")
		assert.True(t, IsValidationError(err))
	})

	t.Run("orchestrator reset returns to planned and resets failed steps", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc, _ := newTestStoryService(t, client.Client, plannerReply)
		st := analyzedStory(t, svc, client.Client)
		_, err := svc.Plan(ctx, st.ID, true)
		require.NoError(t, err)
		st, err = svc.Decompose(ctx, st.ID)
		require.NoError(t, err)

		_, err = client.Story.UpdateOneID(st.ID).
			SetStatus(story.StatusFailed).
			SetCurrentWave(2).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.Step.Update().
			Where(step.StoryIDEQ(st.ID)).
			SetStatus(step.StatusFailed).
			SetError("boom").
			Save(ctx)
		require.NoError(t, err)

		st, err = svc.ResetOrchestrator(ctx, st.ID, true)
		require.NoError(t, err)
		assert.Equal(t, story.StatusPlanned, st.Status)
		assert.Equal(t, 0, st.CurrentWave)

		steps, err := client.Step.Query().Where(step.StoryIDEQ(st.ID)).All(ctx)
		require.NoError(t, err)
		for _, sp := range steps {
			assert.Equal(t, step.StatusPending, sp.Status)
			assert.Nil(t, sp.Error)
		}
	})
}

func TestStoryService_OrchestratorStatus(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	svc, _ := newTestStoryService(t, client.Client, plannerReply)
	st := analyzedStory(t, svc, client.Client)
	_, err := svc.Plan(ctx, st.ID, true)
	require.NoError(t, err)
	st, err = svc.Decompose(ctx, st.ID)
	require.NoError(t, err)

	status, err := svc.OrchestratorStatus(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, status.StoryID)
	assert.Equal(t, "planned", status.Status)
	assert.Equal(t, 0, status.CurrentWave)
	assert.Equal(t, 3, status.TotalWaves)
	assert.Equal(t, 4, status.MaxParallelism)
	require.Len(t, status.Steps, 3)
	assert.Equal(t, "write handler", status.Steps[0].Name)
	assert.Equal(t, 1, status.Steps[0].Wave)
	assert.Equal(t, "pending", status.Steps[0].Status)
}

func TestStoryService_Delete(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	svc, _ := newTestStoryService(t, client.Client, plannerReply)
	st := analyzedStory(t, svc, client.Client)
	_, err := svc.Plan(ctx, st.ID, true)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStory(ctx, st.ID))

	_, err = svc.GetStory(ctx, st.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	// Cascade removed the steps too.
	count, err := client.Step.Query().Where(step.StoryIDEQ(st.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.DeleteStory(ctx, st.ID), ErrNotFound)
}
