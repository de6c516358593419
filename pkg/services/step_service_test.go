package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/models"
	testdb "github.com/johnazariah/aura-sub009/test/database"
)

func newTestStepService(t *testing.T, client *ent.Client) *StepService {
	t.Helper()
	return NewStepService(client, testRegistry(t, defaultTestAgents()), testPublisher(client))
}

// seedStory creates a story with three completed steps in waves 1..3.
func seedStory(t *testing.T, client *ent.Client, status story.Status) (*ent.Story, []*ent.Step) {
	t.Helper()
	ctx := context.Background()

	st, err := client.Story.Create().
		SetID(uuid.New().String()).
		SetTitle("seeded story").
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)

	names := []string{"write handler", "wire route", "add tests"}
	steps := make([]*ent.Step, 0, len(names))
	for i, name := range names {
		sp, err := client.Step.Create().
			SetID(uuid.New().String()).
			SetStoryID(st.ID).
			SetOrderIndex(i + 1).
			SetWave(i + 1).
			SetName(name).
			SetCapability("coding").
			SetStatus(step.StatusCompleted).
			SetOutput("output of " + name).
			SetAttempts(1).
			Save(ctx)
		require.NoError(t, err)
		steps = append(steps, sp)
	}
	return st, steps
}

func TestStepService_AddStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestStepService(t, client.Client)
	ctx := context.Background()
	st, _ := seedStory(t, client.Client, story.StatusPlanned)

	t.Run("appends with next order index and no wave", func(t *testing.T) {
		sp, err := svc.AddStep(ctx, st.ID, models.AddStepRequest{
			Name:        "write docs",
			Capability:  "documentation",
			Description: "Document the endpoint",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, sp.OrderIndex)
		assert.Nil(t, sp.Wave)
		assert.Equal(t, step.StatusPending, sp.Status)
	})

	t.Run("requires name and capability", func(t *testing.T) {
		_, err := svc.AddStep(ctx, st.ID, models.AddStepRequest{Capability: "coding"})
		assert.True(t, IsValidationError(err))

		_, err = svc.AddStep(ctx, st.ID, models.AddStepRequest{Name: "x"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects terminal stories", func(t *testing.T) {
		done, _ := seedStory(t, client.Client, story.StatusCompleted)
		_, err := svc.AddStep(ctx, done.ID, models.AddStepRequest{Name: "late", Capability: "coding"})
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unknown story", func(t *testing.T) {
		_, err := svc.AddStep(ctx, uuid.New().String(), models.AddStepRequest{Name: "x", Capability: "coding"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStepService_RemoveStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestStepService(t, client.Client)
	ctx := context.Background()
	st, steps := seedStory(t, client.Client, story.StatusPlanned)

	t.Run("completed steps cannot be removed", func(t *testing.T) {
		err := svc.RemoveStep(ctx, st.ID, steps[0].ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("pending steps can", func(t *testing.T) {
		sp, err := svc.AddStep(ctx, st.ID, models.AddStepRequest{Name: "tmp", Capability: "coding"})
		require.NoError(t, err)

		require.NoError(t, svc.RemoveStep(ctx, st.ID, sp.ID))
		_, err = svc.GetStep(ctx, st.ID, sp.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("step of another story is not found", func(t *testing.T) {
		other, otherSteps := seedStory(t, client.Client, story.StatusPlanned)
		_ = other
		err := svc.RemoveStep(ctx, st.ID, otherSteps[0].ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStepService_ApproveStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestStepService(t, client.Client)
	ctx := context.Background()
	st, steps := seedStory(t, client.Client, story.StatusRunning)

	sp, err := svc.ApproveStep(ctx, st.ID, steps[0].ID)
	require.NoError(t, err)
	require.NotNil(t, sp.Approval)
	assert.Equal(t, step.ApprovalApproved, *sp.Approval)
	assert.Equal(t, step.StatusCompleted, sp.Status)

	// Only completed steps can be approved.
	pending, err := svc.AddStep(ctx, st.ID, models.AddStepRequest{Name: "x", Capability: "coding"})
	require.NoError(t, err)
	_, err = svc.ApproveStep(ctx, st.ID, pending.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStepService_RejectStep(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades rework to later waves", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc := newTestStepService(t, client.Client)
		st, steps := seedStory(t, client.Client, story.StatusRunning)

		rejected, err := svc.RejectStep(ctx, st.ID, steps[0].ID, "wrong approach")
		require.NoError(t, err)

		assert.Equal(t, step.StatusRejected, rejected.Status)
		require.NotNil(t, rejected.Approval)
		assert.Equal(t, step.ApprovalRejected, *rejected.Approval)
		assert.Equal(t, "wrong approach", rejected.ApprovalFeedback)
		assert.True(t, rejected.NeedsRework)
		require.NotNil(t, rejected.PreviousOutput)
		assert.Equal(t, "output of write handler", *rejected.PreviousOutput)
		// Attempts are preserved through rejection.
		assert.Equal(t, 1, rejected.Attempts)

		for _, id := range []string{steps[1].ID, steps[2].ID} {
			dep, err := svc.GetStep(ctx, st.ID, id)
			require.NoError(t, err)
			assert.Equal(t, step.StatusRejected, dep.Status)
			assert.True(t, dep.NeedsRework)
			require.NotNil(t, dep.PreviousOutput)
		}

		st, err = client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusRunning, st.Status)
		assert.Equal(t, 1, st.CurrentWave)
	})

	t.Run("rejecting the last wave touches nothing else", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc := newTestStepService(t, client.Client)
		st, steps := seedStory(t, client.Client, story.StatusRunning)

		_, err := svc.RejectStep(ctx, st.ID, steps[2].ID, "")
		require.NoError(t, err)

		for _, id := range []string{steps[0].ID, steps[1].ID} {
			sp, err := svc.GetStep(ctx, st.ID, id)
			require.NoError(t, err)
			assert.Equal(t, step.StatusCompleted, sp.Status)
			assert.False(t, sp.NeedsRework)
		}

		st, err = client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, st.CurrentWave)
	})

	t.Run("skipped dependents stay skipped", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc := newTestStepService(t, client.Client)
		st, steps := seedStory(t, client.Client, story.StatusRunning)
		_, err := client.Step.UpdateOneID(steps[2].ID).
			SetStatus(step.StatusSkipped).
			SetSkipReason("not needed").
			Save(ctx)
		require.NoError(t, err)

		_, err = svc.RejectStep(ctx, st.ID, steps[0].ID, "redo")
		require.NoError(t, err)

		sp, err := svc.GetStep(ctx, st.ID, steps[2].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusSkipped, sp.Status)
		assert.False(t, sp.NeedsRework)
	})

	t.Run("only completed steps can be rejected", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		svc := newTestStepService(t, client.Client)
		st, steps := seedStory(t, client.Client, story.StatusRunning)
		_, err := client.Step.UpdateOneID(steps[0].ID).SetStatus(step.StatusFailed).Save(ctx)
		require.NoError(t, err)

		_, err = svc.RejectStep(ctx, st.ID, steps[0].ID, "")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestStepService_SkipAndReset(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestStepService(t, client.Client)
	ctx := context.Background()
	st, steps := seedStory(t, client.Client, story.StatusRunning)

	t.Run("skip records the reason", func(t *testing.T) {
		pending, err := svc.AddStep(ctx, st.ID, models.AddStepRequest{Name: "optional", Capability: "coding"})
		require.NoError(t, err)

		sp, err := svc.SkipStep(ctx, st.ID, pending.ID, "covered elsewhere")
		require.NoError(t, err)
		assert.Equal(t, step.StatusSkipped, sp.Status)
		assert.Equal(t, "covered elsewhere", sp.SkipReason)
	})

	t.Run("skip of a completed step is invalid", func(t *testing.T) {
		_, err := svc.SkipStep(ctx, st.ID, steps[0].ID, "")
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("reset clears execution state but keeps attempts", func(t *testing.T) {
		rejected, err := svc.RejectStep(ctx, st.ID, steps[0].ID, "redo")
		require.NoError(t, err)

		sp, err := svc.ResetStep(ctx, st.ID, rejected.ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusPending, sp.Status)
		assert.Nil(t, sp.Output)
		assert.Nil(t, sp.Error)
		assert.Nil(t, sp.PreviousOutput)
		assert.Nil(t, sp.Approval)
		assert.Empty(t, sp.ApprovalFeedback)
		assert.False(t, sp.NeedsRework)
		assert.Equal(t, 1, sp.Attempts)
	})
}

func TestStepService_Reassign(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestStepService(t, client.Client)
	ctx := context.Background()
	st, steps := seedStory(t, client.Client, story.StatusRunning)

	sp, err := svc.ReassignStep(ctx, st.ID, steps[0].ID, "coder")
	require.NoError(t, err)
	require.NotNil(t, sp.AgentID)
	assert.Equal(t, "coder", *sp.AgentID)

	_, err = svc.ReassignStep(ctx, st.ID, steps[0].ID, "nonexistent-agent")
	assert.True(t, IsValidationError(err))

	_, err = svc.ReassignStep(ctx, st.ID, steps[0].ID, "")
	assert.True(t, IsValidationError(err))
}

func TestStepService_ExecutionTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestStepService(t, client.Client)
	ctx := context.Background()
	st, _ := seedStory(t, client.Client, story.StatusRunning)

	sp, err := svc.AddStep(ctx, st.ID, models.AddStepRequest{Name: "exec me", Capability: "coding"})
	require.NoError(t, err)

	t.Run("running stamps start, agent, and attempt", func(t *testing.T) {
		sp, err = svc.MarkStepRunning(ctx, sp.ID, "coder")
		require.NoError(t, err)
		assert.Equal(t, step.StatusRunning, sp.Status)
		assert.NotNil(t, sp.StartedAt)
		assert.Equal(t, 1, sp.Attempts)
		require.NotNil(t, sp.AgentID)
		assert.Equal(t, "coder", *sp.AgentID)
	})

	t.Run("completed stores output and clears rework context", func(t *testing.T) {
		trace := &models.ReActTrace{FinalAnswer: "done"}
		sp, err = svc.MarkStepCompleted(ctx, sp.ID, "the result", trace)
		require.NoError(t, err)
		assert.Equal(t, step.StatusCompleted, sp.Status)
		require.NotNil(t, sp.Output)
		assert.Equal(t, "the result", *sp.Output)
		assert.Nil(t, sp.Error)
		assert.Nil(t, sp.PreviousOutput)
		assert.False(t, sp.NeedsRework)
		assert.NotNil(t, sp.CompletedAt)
		assert.Equal(t, "done", sp.Trace["finalAnswer"])
	})

	t.Run("failed stores the error", func(t *testing.T) {
		sp, err = svc.MarkStepRunning(ctx, sp.ID, "coder")
		require.NoError(t, err)
		assert.Equal(t, 2, sp.Attempts)

		sp, err = svc.MarkStepFailed(ctx, sp.ID, "tool exploded", nil)
		require.NoError(t, err)
		assert.Equal(t, step.StatusFailed, sp.Status)
		require.NotNil(t, sp.Error)
		assert.Equal(t, "tool exploded", *sp.Error)
	})

	t.Run("cancelled is recorded", func(t *testing.T) {
		sp, err = svc.MarkStepRunning(ctx, sp.ID, "coder")
		require.NoError(t, err)
		sp, err = svc.MarkStepCancelled(ctx, sp.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, step.StatusCancelled, sp.Status)
	})

	t.Run("unknown step", func(t *testing.T) {
		_, err := svc.MarkStepRunning(ctx, uuid.New().String(), "coder")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStepService_CompletedPredecessors(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newTestStepService(t, client.Client)
	ctx := context.Background()
	st, steps := seedStory(t, client.Client, story.StatusRunning)

	// Fail the wave-2 step; it must not appear as a predecessor.
	_, err := client.Step.UpdateOneID(steps[1].ID).SetStatus(step.StatusFailed).Save(ctx)
	require.NoError(t, err)

	preds, err := svc.CompletedPredecessors(ctx, st.ID, 3)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, "write handler", preds[0].Name)

	preds, err = svc.CompletedPredecessors(ctx, st.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, preds)
}
