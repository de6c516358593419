package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	testdb "github.com/johnazariah/aura-sub009/test/database"
)

func newTestChatService(t *testing.T, client *ent.Client, replies ...string) *ChatService {
	t.Helper()
	return NewChatService(client, testConfig(t), testRegistry(t, defaultTestAgents()),
		&scriptedLLM{replies: replies}, testPublisher(client))
}

func TestChatService_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("prose reply leaves the plan alone", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc := newTestChatService(t, client.Client, "The plan looks solid; wave 2 covers that.")
		st, _ := seedStory(t, client.Client, story.StatusRunning)

		resp, err := svc.Chat(ctx, st.ID, "Does the plan handle routing?")
		require.NoError(t, err)
		assert.Equal(t, "The plan looks solid; wave 2 covers that.", resp.Response)
		assert.False(t, resp.PlanModified)

		history, err := svc.History(ctx, st.ID, nil)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "user", history[0].Role)
		assert.Equal(t, "assistant", history[1].Role)
	})

	t.Run("delta reply edits the plan", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		reply := "Added a documentation step and dropped the draft.\n```json\n" +
			`{"stepsAdded": [{"name": "write docs", "capability": "documentation"}],
			  "stepsRemoved": ["draft step"]}` + "\n```"
		svc := newTestChatService(t, client.Client, reply)
		st, _ := seedStory(t, client.Client, story.StatusRunning)

		draft, err := client.Step.Create().
			SetID("draft-id").
			SetStoryID(st.ID).
			SetOrderIndex(4).
			SetName("draft step").
			SetCapability("coding").
			Save(ctx)
		require.NoError(t, err)

		resp, err := svc.Chat(ctx, st.ID, "Add docs, drop the draft step")
		require.NoError(t, err)
		assert.True(t, resp.PlanModified)
		require.Len(t, resp.StepsAdded, 1)
		assert.Equal(t, []string{"draft step"}, resp.StepsRemoved)
		assert.NotContains(t, resp.Response, "stepsAdded")

		_, err = client.Step.Get(ctx, draft.ID)
		assert.True(t, ent.IsNotFound(err))

		added, err := client.Step.Query().
			Where(step.StoryIDEQ(st.ID), step.NameEQ("write docs")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, added.OrderIndex)
		assert.Nil(t, added.Wave)
	})

	t.Run("delta cannot remove a completed step", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		reply := "Dropping it.\n```json\n{\"stepsRemoved\": [\"write handler\"]}\n```"
		svc := newTestChatService(t, client.Client, reply)
		st, steps := seedStory(t, client.Client, story.StatusRunning)

		_, err := svc.Chat(ctx, st.ID, "Remove the handler step")
		require.NoError(t, err)

		// The completed step survives the delta.
		sp, err := client.Step.Get(ctx, steps[0].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusCompleted, sp.Status)
	})

	t.Run("analysis update replaces the summary", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		reply := "Revised: the change also touches auth.\n```json\n{\"analysisUpdated\": true}\n```"
		svc := newTestChatService(t, client.Client, reply)
		st, _ := seedStory(t, client.Client, story.StatusRunning)

		resp, err := svc.Chat(ctx, st.ID, "The auth layer matters too")
		require.NoError(t, err)
		assert.True(t, resp.AnalysisUpdated)

		st, err = client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, "Revised: the change also touches auth.", st.AnalyzedContext["summary"])
	})

	t.Run("guarded by story status", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc := newTestChatService(t, client.Client)
		st, _ := seedStory(t, client.Client, story.StatusCreated)

		_, err := svc.Chat(ctx, st.ID, "hello")
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("empty message", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc := newTestChatService(t, client.Client)
		st, _ := seedStory(t, client.Client, story.StatusRunning)

		_, err := svc.Chat(ctx, st.ID, "   ")
		assert.True(t, IsValidationError(err))
	})
}

func TestChatService_ChatWithStep(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	svc := newTestChatService(t, client.Client, "Use a prepared statement there.")
	st, steps := seedStory(t, client.Client, story.StatusRunning)

	resp, err := svc.ChatWithStep(ctx, st.ID, steps[0].ID, "How should the query be built?")
	require.NoError(t, err)
	assert.Equal(t, "Use a prepared statement there.", resp.Response)

	// History is scoped to the step, not the story-level conversation.
	stepHistory, err := svc.History(ctx, st.ID, &steps[0].ID)
	require.NoError(t, err)
	assert.Len(t, stepHistory, 2)

	storyHistory, err := svc.History(ctx, st.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, storyHistory)

	_, err = svc.ChatWithStep(ctx, st.ID, "missing-step", "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}
