package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/services"
	"github.com/johnazariah/aura-sub009/pkg/tools"
	testdb "github.com/johnazariah/aura-sub009/test/database"
)

// scriptedLLM returns canned text replies in call order.
type scriptedLLM struct {
	mu      sync.Mutex
	replies []string
	calls   int
}

func (s *scriptedLLM) Generate(_ context.Context, _ *llm.GenerateInput) (<-chan llm.Chunk, error) {
	s.mu.Lock()
	idx := s.calls
	s.calls++
	s.mu.Unlock()

	if idx >= len(s.replies) {
		return nil, fmt.Errorf("no scripted reply for call %d", idx+1)
	}

	ch := make(chan llm.Chunk, 2)
	ch <- &llm.TextChunk{Content: s.replies[idx]}
	ch <- &llm.UsageChunk{InputTokens: 10, OutputTokens: 20, TotalTokens: 30}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

func testAgentRegistry(t *testing.T, defs map[string]string) *agents.Registry {
	t.Helper()
	dir := t.TempDir()
	for id, body := range defs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".md"), []byte(body), 0o644))
	}
	registry := agents.NewRegistry(dir)
	require.NoError(t, registry.Load())
	return registry
}

type runnerFixture struct {
	client *ent.Client
	runner *Runner
	steps  *services.StepService
}

func newRunnerFixture(t *testing.T, replies ...string) *runnerFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	cfg := testConfig(t)
	registry := testAgentRegistry(t, map[string]string{
		"analyst": "# Analyst\n\n## Capabilities\n- analysis\n\n## System Prompt\nAnalyze tasks.\n",
		"coder":   "# Coder\n\n## Capabilities\n- coding\n\n## System Prompt\nWrite code.\n",
	})
	llmClient := &scriptedLLM{replies: replies}
	publisher := events.NewPublisher(events.NewBus(), client)
	steps := services.NewStepService(client, registry, publisher)
	chat := services.NewChatService(client, cfg, registry, llmClient, publisher)
	runner := NewRunner(cfg, registry, llmClient, tools.NewRegistry(), steps, chat, publisher)
	return &runnerFixture{client: client, runner: runner, steps: steps}
}

// seedRunnerStep creates a running story with one pending step of the given
// capability. No worktree, so execution takes the direct path.
func seedRunnerStep(t *testing.T, client *ent.Client, capability string) (*ent.Story, *ent.Step) {
	t.Helper()
	ctx := context.Background()

	st, err := client.Story.Create().
		SetID(uuid.NewString()).
		SetTitle("runner story").
		SetStatus(story.StatusRunning).
		SetCurrentWave(1).
		Save(ctx)
	require.NoError(t, err)

	sp, err := client.Step.Create().
		SetID(uuid.NewString()).
		SetStoryID(st.ID).
		SetOrderIndex(1).
		SetName("inspect the handler").
		SetCapability(capability).
		SetWave(1).
		Save(ctx)
	require.NoError(t, err)
	return st, sp
}

func TestRunner_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("direct execution completes the step", func(t *testing.T) {
		f := newRunnerFixture(t, "The handler parses the payload and returns 200.")
		st, sp := seedRunnerStep(t, f.client, "analysis")

		final, err := f.runner.Execute(ctx, st, sp)
		require.NoError(t, err)
		assert.Equal(t, step.StatusCompleted, final.Status)
		require.NotNil(t, final.Output)
		assert.Equal(t, "The handler parses the payload and returns 200.", *final.Output)
		require.NotNil(t, final.AgentID)
		assert.Equal(t, "analyst", *final.AgentID)
		assert.Equal(t, 1, final.Attempts)
		assert.NotNil(t, final.StartedAt)
		assert.NotNil(t, final.CompletedAt)
	})

	t.Run("no agent for the capability fails the step", func(t *testing.T) {
		f := newRunnerFixture(t)
		st, sp := seedRunnerStep(t, f.client, "documentation")

		final, err := f.runner.Execute(ctx, st, sp)
		assert.ErrorIs(t, err, services.ErrNoAgentForCapability)
		assert.Equal(t, step.StatusFailed, final.Status)
		require.NotNil(t, final.Error)
		assert.Contains(t, *final.Error, "documentation")
	})

	t.Run("llm failure fails the step", func(t *testing.T) {
		f := newRunnerFixture(t) // no scripted replies: every call errors
		st, sp := seedRunnerStep(t, f.client, "analysis")

		final, err := f.runner.Execute(ctx, st, sp)
		require.Error(t, err)
		assert.Equal(t, step.StatusFailed, final.Status)
		assert.NotNil(t, final.Error)
	})

	t.Run("pinned agent wins over capability routing", func(t *testing.T) {
		f := newRunnerFixture(t, "done")
		st, sp := seedRunnerStep(t, f.client, "analysis")

		sp, err := f.client.Step.UpdateOneID(sp.ID).SetAgentID("coder").Save(ctx)
		require.NoError(t, err)

		final, err := f.runner.Execute(ctx, st, sp)
		require.NoError(t, err)
		require.NotNil(t, final.AgentID)
		assert.Equal(t, "coder", *final.AgentID)
	})

	t.Run("stale pinned agent reroutes by capability", func(t *testing.T) {
		f := newRunnerFixture(t, "done")
		st, sp := seedRunnerStep(t, f.client, "analysis")

		sp, err := f.client.Step.UpdateOneID(sp.ID).SetAgentID("departed-agent").Save(ctx)
		require.NoError(t, err)

		final, err := f.runner.Execute(ctx, st, sp)
		require.NoError(t, err)
		require.NotNil(t, final.AgentID)
		assert.Equal(t, "analyst", *final.AgentID)
	})

	t.Run("finished story rejects execution untouched", func(t *testing.T) {
		f := newRunnerFixture(t, "should never be consumed")
		st, sp := seedRunnerStep(t, f.client, "analysis")

		st, err := f.client.Story.UpdateOneID(st.ID).
			SetStatus(story.StatusCompleted).
			Save(ctx)
		require.NoError(t, err)

		final, err := f.runner.Execute(ctx, st, sp)
		assert.ErrorIs(t, err, services.ErrInvalidState)

		// The guard fires before any persistence; the step never moved.
		assert.Equal(t, step.StatusPending, final.Status)
		sp, err = f.client.Step.Get(ctx, sp.ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusPending, sp.Status)
		assert.Zero(t, sp.Attempts)
		assert.Nil(t, sp.StartedAt)
	})

	t.Run("finished step rejects re-execution", func(t *testing.T) {
		f := newRunnerFixture(t, "should never be consumed")
		st, sp := seedRunnerStep(t, f.client, "analysis")

		sp, err := f.client.Step.UpdateOneID(sp.ID).
			SetStatus(step.StatusCompleted).
			SetOutput("already done").
			SetAttempts(1).
			Save(ctx)
		require.NoError(t, err)

		_, err = f.runner.Execute(ctx, st, sp)
		assert.ErrorIs(t, err, services.ErrInvalidState)

		sp, err = f.client.Step.Get(ctx, sp.ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusCompleted, sp.Status)
		assert.Equal(t, 1, sp.Attempts)
	})

	t.Run("running step rejects concurrent execution", func(t *testing.T) {
		f := newRunnerFixture(t, "should never be consumed")
		st, sp := seedRunnerStep(t, f.client, "analysis")

		sp, err := f.client.Step.UpdateOneID(sp.ID).
			SetStatus(step.StatusRunning).
			SetAttempts(1).
			Save(ctx)
		require.NoError(t, err)

		_, err = f.runner.Execute(ctx, st, sp)
		assert.ErrorIs(t, err, services.ErrInvalidState)
	})

	t.Run("rework context reaches the prompt without blocking completion", func(t *testing.T) {
		f := newRunnerFixture(t, "revised output")
		st, sp := seedRunnerStep(t, f.client, "analysis")

		sp, err := f.client.Step.UpdateOneID(sp.ID).
			SetStatus(step.StatusRejected).
			SetNeedsRework(true).
			SetPreviousOutput("first draft").
			SetApprovalFeedback("tighten the summary").
			Save(ctx)
		require.NoError(t, err)

		final, err := f.runner.Execute(ctx, st, sp)
		require.NoError(t, err)
		assert.Equal(t, step.StatusCompleted, final.Status)
		require.NotNil(t, final.Output)
		assert.Equal(t, "revised output", *final.Output)
		// Completion clears the rework carry-over.
		assert.False(t, final.NeedsRework)
		assert.Nil(t, final.PreviousOutput)
	})
}
