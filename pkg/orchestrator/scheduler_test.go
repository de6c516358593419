package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/gate"
	"github.com/johnazariah/aura-sub009/pkg/services"
	testdb "github.com/johnazariah/aura-sub009/test/database"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server:    &config.ServerConfig{ListenAddr: ":0"},
		Agents:    &config.AgentsConfig{Dir: t.TempDir()},
		Workspace: &config.WorkspaceConfig{Root: t.TempDir(), BranchPrefix: "aura/"},
		Orchestrator: &config.OrchestratorConfig{
			MaxParallelism:          4,
			MaxRetries:              2,
			MaxSteps:                10,
			IterationTimeout:        90 * time.Second,
			ToolTimeout:             5 * time.Minute,
			PollInterval:            10 * time.Millisecond,
			PollIntervalJitter:      2 * time.Millisecond,
			GracefulShutdownTimeout: 5 * time.Second,
		},
		Gate:     &config.GateConfig{Timeout: time.Minute},
		GitHub:   &config.GitHubConfig{TokenEnv: "GITHUB_TOKEN"},
		Defaults: &config.Defaults{Provider: "test-provider"},
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"test-provider": {
				Type:  config.LLMProviderTypeOpenAI,
				Model: "test-model",
			},
		}),
	}
}

// stubExecutor drives steps to scripted outcomes through the step service,
// the same persistence path the real runner uses.
type stubExecutor struct {
	steps *services.StepService

	mu sync.Mutex
	// failuresLeft maps step name to the number of attempts that fail
	// before one succeeds.
	failuresLeft map[string]int
	// cancelOn names a step whose execution cancels the run context.
	cancelOn string
	cancel   context.CancelFunc
	executed []string
}

func (e *stubExecutor) Execute(ctx context.Context, st *ent.Story, sp *ent.Step) (*ent.Step, error) {
	e.mu.Lock()
	e.executed = append(e.executed, sp.Name)
	failing := e.failuresLeft[sp.Name] > 0
	if failing {
		e.failuresLeft[sp.Name]--
	}
	cancelling := e.cancelOn == sp.Name
	e.mu.Unlock()

	sp, err := e.steps.MarkStepRunning(ctx, sp.ID, "stub-agent")
	if err != nil {
		return sp, err
	}
	if cancelling {
		e.cancel()
		return e.steps.MarkStepCancelled(context.WithoutCancel(ctx), sp.ID, nil)
	}
	if failing {
		return e.steps.MarkStepFailed(ctx, sp.ID, "scripted failure", nil)
	}
	return e.steps.MarkStepCompleted(ctx, sp.ID, "done: "+sp.Name, nil)
}

func (e *stubExecutor) executionCount(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, got := range e.executed {
		if got == name {
			n++
		}
	}
	return n
}

type schedulerFixture struct {
	client    *ent.Client
	cfg       *config.Config
	stories   *services.StoryService
	steps     *services.StepService
	executor  *stubExecutor
	scheduler *Scheduler
}

func newSchedulerFixture(t *testing.T) *schedulerFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	cfg := testConfig(t)
	publisher := events.NewPublisher(events.NewBus(), client)
	steps := services.NewStepService(client, nil, publisher)
	stories := services.NewStoryService(client, cfg, nil, nil, nil, nil, publisher)
	executor := &stubExecutor{steps: steps, failuresLeft: map[string]int{}}
	sched := NewScheduler(cfg, stories, steps, gate.NewRunner(cfg.Gate), publisher, executor)
	return &schedulerFixture{
		client:    client,
		cfg:       cfg,
		stories:   stories,
		steps:     steps,
		executor:  executor,
		scheduler: sched,
	}
}

// seedRunningStory creates a running story with steps laid out in waves:
// one name per entry, waves[i] assigns the wave of steps[i].
func seedRunningStory(t *testing.T, client *ent.Client, mode story.AutomationMode,
	names []string, waves []int, opts ...func(*ent.StoryCreate)) (*ent.Story, []*ent.Step) {
	t.Helper()
	ctx := context.Background()

	create := client.Story.Create().
		SetID(uuid.NewString()).
		SetTitle("scheduled story").
		SetStatus(story.StatusRunning).
		SetAutomationMode(mode)
	for _, opt := range opts {
		opt(create)
	}
	st, err := create.Save(ctx)
	require.NoError(t, err)

	steps := make([]*ent.Step, len(names))
	for i, name := range names {
		sp, err := client.Step.Create().
			SetID(uuid.NewString()).
			SetStoryID(st.ID).
			SetOrderIndex(i + 1).
			SetName(name).
			SetCapability("coding").
			SetWave(waves[i]).
			Save(ctx)
		require.NoError(t, err)
		steps[i] = sp
	}
	return st, steps
}

func TestScheduler_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("drains all waves and completes", func(t *testing.T) {
		f := newSchedulerFixture(t)
		st, _ := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "wire route", "add tests"}, []int{1, 1, 2})

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCompleted), result.Status)
		assert.Equal(t, 3, result.StartedSteps)
		assert.Equal(t, 3, result.CompletedSteps)
		assert.Equal(t, 0, result.FailedSteps)
		assert.Equal(t, 2, result.CurrentWave)

		st, err = f.client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusCompleted, st.Status)
		assert.NotNil(t, st.CompletedAt)

		remaining, err := f.client.Step.Query().
			Where(step.StoryIDEQ(st.ID), step.StatusNEQ(step.StatusCompleted)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, remaining)
	})

	t.Run("assisted mode halts on the first failed wave", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.executor.failuresLeft["wire route"] = 1
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "wire route", "add tests"}, []int{1, 1, 2})

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusFailed), result.Status)
		assert.Equal(t, 1, result.FailedSteps)
		assert.Contains(t, result.Error, "wave 1")

		st, err = f.client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusFailed, st.Status)
		require.NotNil(t, st.ErrorMessage)

		// Assisted mode never retries; one attempt only.
		assert.Equal(t, 1, f.executor.executionCount("wire route"))

		// The later wave was never dispatched.
		later, err := f.client.Step.Get(ctx, steps[2].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusPending, later.Status)
	})

	t.Run("autonomous mode retries within the attempt budget", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.executor.failuresLeft["write handler"] = 2 // succeeds on attempt 3 of 3
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAutonomous,
			[]string{"write handler", "add tests"}, []int{1, 2})

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCompleted), result.Status)
		assert.Equal(t, 3, f.executor.executionCount("write handler"))
		// Started counts distinct steps, not attempts.
		assert.Equal(t, 2, result.StartedSteps)

		sp, err := f.client.Step.Get(ctx, steps[0].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusCompleted, sp.Status)
		assert.Equal(t, 3, sp.Attempts)
	})

	t.Run("autonomous mode fails once the budget is spent", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.executor.failuresLeft["write handler"] = 10
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAutonomous,
			[]string{"write handler"}, []int{1})

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusFailed), result.Status)

		// MaxRetries 2 means 3 total attempts.
		assert.Equal(t, 3, f.executor.executionCount("write handler"))
		assert.Equal(t, 1, result.StartedSteps)
		assert.Equal(t, 1, result.FailedSteps)

		sp, err := f.client.Step.Get(ctx, steps[0].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusFailed, sp.Status)
		assert.Equal(t, 3, sp.Attempts)
	})

	t.Run("rejected steps rerun on resume", func(t *testing.T) {
		f := newSchedulerFixture(t)
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "add tests"}, []int{1, 2})

		// Wave 1 already ran; its step came back rejected.
		_, err := f.client.Step.UpdateOneID(steps[0].ID).
			SetStatus(step.StatusRejected).
			SetNeedsRework(true).
			Save(ctx)
		require.NoError(t, err)
		_, err = f.client.Story.UpdateOneID(st.ID).SetCurrentWave(1).Save(ctx)
		require.NoError(t, err)

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCompleted), result.Status)
		assert.Equal(t, 1, f.executor.executionCount("write handler"))
		assert.Equal(t, 1, f.executor.executionCount("add tests"))
	})

	t.Run("autonomous resume retries a failure left in the current wave", func(t *testing.T) {
		f := newSchedulerFixture(t)
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAutonomous,
			[]string{"write handler", "add tests"}, []int{1, 2})

		// A crash mid-wave left the step failed with attempt budget to spare.
		_, err := f.client.Step.UpdateOneID(steps[0].ID).
			SetStatus(step.StatusFailed).
			SetAttempts(1).
			Save(ctx)
		require.NoError(t, err)
		_, err = f.client.Story.UpdateOneID(st.ID).SetCurrentWave(1).Save(ctx)
		require.NoError(t, err)

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCompleted), result.Status)
		assert.Equal(t, 1, f.executor.executionCount("write handler"))
		assert.Equal(t, 1, f.executor.executionCount("add tests"))

		sp, err := f.client.Step.Get(ctx, steps[0].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusCompleted, sp.Status)
		assert.Equal(t, 2, sp.Attempts)
	})

	t.Run("autonomous resume honors a spent budget", func(t *testing.T) {
		f := newSchedulerFixture(t)
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAutonomous,
			[]string{"write handler", "add tests"}, []int{1, 2})

		_, err := f.client.Step.UpdateOneID(steps[0].ID).
			SetStatus(step.StatusFailed).
			SetAttempts(3).
			Save(ctx)
		require.NoError(t, err)
		_, err = f.client.Story.UpdateOneID(st.ID).SetCurrentWave(1).Save(ctx)
		require.NoError(t, err)

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusFailed), result.Status)
		assert.Equal(t, 1, result.FailedSteps)
		assert.Zero(t, f.executor.executionCount("write handler"))
		assert.Zero(t, f.executor.executionCount("add tests"))

		st, err = f.client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusFailed, st.Status)
	})

	t.Run("assisted resume halts on a failure left in the current wave", func(t *testing.T) {
		f := newSchedulerFixture(t)
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "wire route", "add tests"}, []int{1, 1, 2})

		_, err := f.client.Step.UpdateOneID(steps[0].ID).
			SetStatus(step.StatusFailed).
			SetAttempts(1).
			Save(ctx)
		require.NoError(t, err)
		_, err = f.client.Story.UpdateOneID(st.ID).SetCurrentWave(1).Save(ctx)
		require.NoError(t, err)

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusFailed), result.Status)
		assert.Contains(t, result.Error, "wave 1")

		// The halt precedes any dispatch; the wave's sibling stays pending.
		assert.Zero(t, f.executor.executionCount("write handler"))
		assert.Zero(t, f.executor.executionCount("wire route"))
		sibling, err := f.client.Step.Get(ctx, steps[1].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusPending, sibling.Status)
	})

	t.Run("resume skips waves already drained", func(t *testing.T) {
		f := newSchedulerFixture(t)
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "add tests"}, []int{1, 2})

		_, err := f.client.Step.UpdateOneID(steps[0].ID).
			SetStatus(step.StatusCompleted).
			SetOutput("already done").
			Save(ctx)
		require.NoError(t, err)
		_, err = f.client.Story.UpdateOneID(st.ID).SetCurrentWave(2).Save(ctx)
		require.NoError(t, err)

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCompleted), result.Status)
		assert.Zero(t, f.executor.executionCount("write handler"))
		assert.Equal(t, 1, f.executor.executionCount("add tests"))
	})

	t.Run("cancellation drains to cancelled", func(t *testing.T) {
		f := newSchedulerFixture(t)
		runCtx, cancel := context.WithCancel(ctx)
		f.executor.cancelOn = "write handler"
		f.executor.cancel = cancel
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "add tests"}, []int{1, 2})

		result, err := f.scheduler.Run(runCtx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCancelled), result.Status)

		st, err = f.client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusCancelled, st.Status)

		// Undispatched work stays pending for a later reset.
		later, err := f.client.Step.Get(ctx, steps[1].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusPending, later.Status)
	})

	t.Run("rejects a story that is not running", func(t *testing.T) {
		f := newSchedulerFixture(t)
		st, err := f.client.Story.Create().
			SetID(uuid.NewString()).
			SetTitle("not started").
			Save(ctx)
		require.NoError(t, err)

		_, err = f.scheduler.Run(ctx, st.ID)
		assert.ErrorIs(t, err, services.ErrInvalidState)
	})

	t.Run("unknown story", func(t *testing.T) {
		f := newSchedulerFixture(t)
		_, err := f.scheduler.Run(ctx, "nope")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestScheduler_Gate(t *testing.T) {
	ctx := context.Background()

	withWorktree := func(dir string) func(*ent.StoryCreate) {
		return func(c *ent.StoryCreate) {
			c.SetWorktreePath(dir).SetRepositoryPath(dir)
		}
	}

	t.Run("manual approval parks the story between waves", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.cfg.Gate.BuildCommand = "true"
		st, steps := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "add tests"}, []int{1, 2},
			withWorktree(t.TempDir()))

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusGatePending), result.Status)
		assert.True(t, result.WaitingForGate)
		require.NotNil(t, result.GateResult)
		assert.True(t, result.GateResult.Passed)

		st, err = f.client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusGatePending, st.Status)
		assert.Equal(t, 1, st.CurrentWave)
		assert.NotEmpty(t, st.LastGateResult)

		later, err := f.client.Step.Get(ctx, steps[1].ID)
		require.NoError(t, err)
		assert.Equal(t, step.StatusPending, later.Status)
	})

	t.Run("auto proceed runs straight through", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.cfg.Gate.BuildCommand = "true"
		st, _ := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "add tests"}, []int{1, 2},
			withWorktree(t.TempDir()),
			func(c *ent.StoryCreate) { c.SetGateMode(story.GateModeAutoProceed) })

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCompleted), result.Status)
		assert.Equal(t, 2, result.CompletedSteps)
	})

	t.Run("no approval gate after the final wave", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.cfg.Gate.BuildCommand = "true"
		st, _ := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler"}, []int{1},
			withWorktree(t.TempDir()))

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCompleted), result.Status)
		assert.False(t, result.WaitingForGate)
	})

	t.Run("assisted gate failure parks for intervention", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.cfg.Gate.BuildCommand = "false"
		st, _ := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "add tests"}, []int{1, 2},
			withWorktree(t.TempDir()))

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusGateFailed), result.Status)
		require.NotNil(t, result.GateResult)
		assert.False(t, result.GateResult.Passed)

		st, err = f.client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusGateFailed, st.Status)
		assert.NotEmpty(t, st.LastGateResult)
	})

	t.Run("autonomous gate failure fails the story", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.cfg.Gate.BuildCommand = "false"
		st, _ := seedRunningStory(t, f.client, story.AutomationModeAutonomous,
			[]string{"write handler", "add tests"}, []int{1, 2},
			withWorktree(t.TempDir()))

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusFailed), result.Status)

		st, err = f.client.Story.Get(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, story.StatusFailed, st.Status)
		require.NotNil(t, st.ErrorMessage)
		assert.Contains(t, *st.ErrorMessage, "gate failed")
		assert.NotEmpty(t, st.LastGateResult)
	})

	t.Run("no worktree means no gate", func(t *testing.T) {
		f := newSchedulerFixture(t)
		f.cfg.Gate.BuildCommand = "false" // would fail if it ran
		st, _ := seedRunningStory(t, f.client, story.AutomationModeAssisted,
			[]string{"write handler", "add tests"}, []int{1, 2})

		result, err := f.scheduler.Run(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, string(story.StatusCompleted), result.Status)
	})
}
