package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/gate"
	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/services"
)

// StepExecutor runs one step to a terminal status. Satisfied by Runner;
// tests substitute a stub.
type StepExecutor interface {
	Execute(ctx context.Context, st *ent.Story, sp *ent.Step) (*ent.Step, error)
}

// Scheduler walks one running story through its waves: parallel step
// execution inside a wave, the build/test gate between waves, retry in
// autonomous mode, and the terminal story transition.
type Scheduler struct {
	cfg       *config.Config
	stories   *services.StoryService
	steps     *services.StepService
	gate      *gate.Runner
	publisher *events.Publisher
	runner    StepExecutor
}

// NewScheduler creates a Scheduler.
func NewScheduler(cfg *config.Config, stories *services.StoryService, steps *services.StepService,
	gateRunner *gate.Runner, publisher *events.Publisher, runner StepExecutor) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		stories:   stories,
		steps:     steps,
		gate:      gateRunner,
		publisher: publisher,
		runner:    runner,
	}
}

// waveOutcome aggregates one wave's step results.
type waveOutcome struct {
	started   int
	completed int
	failed    int
	cancelled int
}

// Run drives the story until it parks (gate_pending), halts (failed,
// gate_failed, cancelled), or completes. The caller's context carries
// story cancellation: a cancelled context drains in-flight steps and
// transitions the story to cancelled.
func (s *Scheduler) Run(ctx context.Context, storyID string) (*models.RunResult, error) {
	st, err := s.stories.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	if st.Status != story.StatusRunning {
		return nil, services.NewInvalidStateError("schedule story", string(st.Status))
	}

	totalWaves, err := s.totalWaves(ctx, storyID)
	if err != nil {
		return nil, err
	}

	result := &models.RunResult{StoryID: storyID}
	log := slog.With("story_id", storyID, "total_waves", totalWaves)

	startWave := st.CurrentWave
	if startWave == 0 {
		startWave = 1
	}

	for wave := startWave; wave <= totalWaves; wave++ {
		if ctx.Err() != nil {
			return s.finishCancelled(ctx, result, wave)
		}

		st, err = s.stories.SetCurrentWave(ctx, storyID, wave)
		if err != nil {
			return nil, err
		}
		result.CurrentWave = wave
		s.publisher.PublishWaveStarted(ctx, storyID, wave, totalWaves)
		log.Info("Wave started", "wave", wave)

		outcome, err := s.runWave(ctx, st, wave)
		if err != nil {
			return nil, err
		}
		result.StartedSteps += outcome.started
		result.CompletedSteps += outcome.completed
		result.FailedSteps += outcome.failed

		if outcome.cancelled > 0 || ctx.Err() != nil {
			return s.finishCancelled(ctx, result, wave)
		}
		if outcome.failed > 0 {
			msg := fmt.Sprintf("wave %d halted with %d failed step(s)", wave, outcome.failed)
			return s.finishFailed(ctx, result, msg)
		}

		s.publisher.PublishWaveCompleted(ctx, storyID, wave, totalWaves)
		log.Info("Wave completed", "wave", wave)

		parked, res, err := s.runGate(ctx, st, wave, totalWaves, result)
		if err != nil {
			return nil, err
		}
		if parked {
			return res, nil
		}
	}

	if _, err := s.stories.MarkStoryCompleted(ctx, storyID); err != nil {
		return nil, err
	}
	s.publisher.PublishStoryCompleted(ctx, storyID)
	s.publisher.PublishDone(storyID)
	result.Status = string(story.StatusCompleted)
	log.Info("Story completed")
	return result, nil
}

// runWave executes the wave's runnable steps with bounded parallelism,
// then retries failures while the autonomous budget allows.
func (s *Scheduler) runWave(ctx context.Context, st *ent.Story, wave int) (*waveOutcome, error) {
	outcome := &waveOutcome{}

	runnable, err := s.steps.ClaimWaveSteps(ctx, st.ID, wave,
		step.StatusPending, step.StatusRejected)
	if err != nil {
		return nil, err
	}

	// A re-entered wave (resume after a restart) can hold failures from the
	// interrupted run. Autonomous failures with attempt budget run again;
	// everything else keeps the wave failed.
	priorFailed, err := s.steps.ClaimWaveSteps(ctx, st.ID, wave, step.StatusFailed)
	if err != nil {
		return nil, err
	}
	budget := s.cfg.Orchestrator.MaxRetries + 1
	for _, sp := range priorFailed {
		if st.AutomationMode == story.AutomationModeAutonomous && sp.Attempts < budget {
			runnable = append(runnable, sp)
		} else {
			outcome.failed++
		}
	}
	// An assisted failure halts the wave before anything else dispatches.
	if outcome.failed > 0 && st.AutomationMode != story.AutomationModeAutonomous {
		return outcome, nil
	}

	for {
		if len(runnable) == 0 {
			return outcome, nil
		}
		s.executeBatch(ctx, st, runnable, outcome)

		if st.AutomationMode != story.AutomationModeAutonomous || ctx.Err() != nil {
			return outcome, nil
		}
		retryable, err := s.retryableSteps(ctx, st.ID, wave)
		if err != nil {
			return nil, err
		}
		if len(retryable) == 0 {
			return outcome, nil
		}
		// Retried failures come off both counts: they are running again,
		// and started tracks distinct steps, not attempts.
		outcome.failed -= len(retryable)
		outcome.started -= len(retryable)
		slog.Info("Retrying failed steps",
			"story_id", st.ID, "wave", wave, "count", len(retryable))
		runnable = retryable
	}
}

// executeBatch runs one batch of steps with the story's parallelism bound.
func (s *Scheduler) executeBatch(ctx context.Context, st *ent.Story, batch []*ent.Step, outcome *waveOutcome) {
	parallelism := st.MaxParallelism
	if parallelism <= 0 {
		parallelism = s.cfg.Orchestrator.MaxParallelism
	}

	sem := make(chan struct{}, parallelism)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, sp := range batch {
		if ctx.Err() != nil {
			// Steps never dispatched stay pending; only in-flight work is
			// drained.
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		outcome.started++

		go func(sp *ent.Step) {
			defer wg.Done()
			defer func() { <-sem }()

			final, _ := s.runner.Execute(ctx, st, sp)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case final == nil:
				outcome.failed++
			case final.Status == step.StatusCompleted:
				outcome.completed++
			case final.Status == step.StatusCancelled:
				outcome.cancelled++
			default:
				outcome.failed++
			}
		}(sp)
	}
	wg.Wait()
}

// retryableSteps returns the wave's failed steps that still have attempt
// budget. Total attempts per step = MaxRetries + 1.
func (s *Scheduler) retryableSteps(ctx context.Context, storyID string, wave int) ([]*ent.Step, error) {
	failed, err := s.steps.ClaimWaveSteps(ctx, storyID, wave, step.StatusFailed)
	if err != nil {
		return nil, err
	}
	budget := s.cfg.Orchestrator.MaxRetries + 1
	var retryable []*ent.Step
	for _, sp := range failed {
		if sp.Attempts < budget {
			retryable = append(retryable, sp)
		}
	}
	return retryable, nil
}

// runGate runs the inter-wave gate and applies its verdict. Returns
// parked=true when the story left the running state (gate_pending,
// gate_failed, failed, or cancelled).
func (s *Scheduler) runGate(ctx context.Context, st *ent.Story, wave, totalWaves int,
	result *models.RunResult) (bool, *models.RunResult, error) {

	if st.WorktreePath == nil {
		return false, nil, nil
	}

	s.publisher.PublishGateRunning(ctx, st.ID, wave)
	gr := s.gate.Run(ctx, *st.WorktreePath, wave)
	result.GateResult = gr

	if !gr.Passed {
		if gr.WasCancelled || ctx.Err() != nil {
			res, err := s.finishCancelled(ctx, result, wave)
			return true, res, err
		}
		s.publisher.PublishGateFailed(ctx, st.ID, gr)
		if st.AutomationMode == story.AutomationModeAutonomous {
			// Nobody is there to fix it; the run is over.
			if err := s.stories.RecordGateResult(ctx, st.ID, gr.ToMap()); err != nil {
				return true, nil, err
			}
			res, err := s.finishFailed(ctx, result, "gate failed: "+gr.Error)
			return true, res, err
		}
		if _, err := s.stories.MarkGateFailed(ctx, st.ID, gr.ToMap()); err != nil {
			return true, nil, err
		}
		s.publisher.PublishDone(st.ID)
		result.Status = string(story.StatusGateFailed)
		result.Error = gr.Error
		return true, result, nil
	}

	// Passed. After the final wave there is nothing to approve; the
	// completion transition follows.
	if wave == totalWaves {
		if err := s.stories.RecordGateResult(ctx, st.ID, gr.ToMap()); err != nil {
			return true, nil, err
		}
		s.publisher.PublishGatePassed(ctx, st.ID, gr)
		return false, nil, nil
	}

	if st.GateMode == story.GateModeManualApproval {
		if _, err := s.stories.MarkGatePending(ctx, st.ID, gr.ToMap()); err != nil {
			return true, nil, err
		}
		s.publisher.PublishGatePending(ctx, st.ID, gr)
		s.publisher.PublishDone(st.ID)
		result.Status = string(story.StatusGatePending)
		result.WaitingForGate = true
		return true, result, nil
	}

	if err := s.stories.RecordGateResult(ctx, st.ID, gr.ToMap()); err != nil {
		return true, nil, err
	}
	s.publisher.PublishGatePassed(ctx, st.ID, gr)
	return false, nil, nil
}

// finishCancelled drains the story to cancelled. Persistence uses a
// detached context; the cancellation that got us here must not block the
// terminal write.
func (s *Scheduler) finishCancelled(ctx context.Context, result *models.RunResult, wave int) (*models.RunResult, error) {
	writeCtx := context.WithoutCancel(ctx)
	if _, err := s.stories.MarkStoryCancelled(writeCtx, result.StoryID); err != nil {
		return nil, err
	}
	s.publisher.PublishStoryCancelled(writeCtx, result.StoryID)
	s.publisher.PublishDone(result.StoryID)
	result.Status = string(story.StatusCancelled)
	result.CurrentWave = wave
	slog.Info("Story cancelled", "story_id", result.StoryID, "wave", wave)
	return result, nil
}

// finishFailed halts the story with a recorded cause.
func (s *Scheduler) finishFailed(ctx context.Context, result *models.RunResult, msg string) (*models.RunResult, error) {
	if _, err := s.stories.MarkStoryFailed(ctx, result.StoryID, msg); err != nil {
		return nil, err
	}
	s.publisher.PublishStoryFailed(ctx, result.StoryID, msg)
	s.publisher.PublishDone(result.StoryID)
	result.Status = string(story.StatusFailed)
	result.Error = msg
	slog.Warn("Story failed", "story_id", result.StoryID, "error", msg)
	return result, nil
}

// totalWaves returns the story's highest assigned wave.
func (s *Scheduler) totalWaves(ctx context.Context, storyID string) (int, error) {
	steps, err := s.steps.ListSteps(ctx, storyID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, sp := range steps {
		if sp.Wave != nil && *sp.Wave > total {
			total = *sp.Wave
		}
	}
	return total, nil
}
