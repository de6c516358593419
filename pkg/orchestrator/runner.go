// Package orchestrator drives story execution: the pool claims runnable
// stories, the scheduler walks their waves, and the runner executes one
// step with the routed agent.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/react"
	"github.com/johnazariah/aura-sub009/pkg/services"
	"github.com/johnazariah/aura-sub009/pkg/tools"
)

// toolCapabilities route through the ReAct executor; everything else is a
// single direct call.
var toolCapabilities = map[string]bool{
	"coding":  true,
	"testing": true,
	"fixing":  true,
}

// runnableStoryStatuses admit step execution: the scheduler only runs
// running stories, the execute endpoint additionally reaches planned and
// gate-parked ones.
var runnableStoryStatuses = map[story.Status]bool{
	story.StatusPlanned:     true,
	story.StatusRunning:     true,
	story.StatusGatePending: true,
	story.StatusGateFailed:  true,
}

// startableStepStatuses are the statuses a step may start from.
var startableStepStatuses = map[step.Status]bool{
	step.StatusPending:  true,
	step.StatusRejected: true,
	step.StatusFailed:   true,
}

// Runner executes one step: agent resolution, prompt assembly, the ReAct
// or direct call, and persistence of the outcome.
type Runner struct {
	cfg        *config.Config
	registry   *agents.Registry
	llmClient  llm.Client
	tools      *tools.Registry
	steps      *services.StepService
	chat       *services.ChatService
	publisher  *events.Publisher
	controller *react.Controller
}

// NewRunner creates a Runner.
func NewRunner(cfg *config.Config, registry *agents.Registry, llmClient llm.Client,
	toolRegistry *tools.Registry, steps *services.StepService, chat *services.ChatService,
	publisher *events.Publisher) *Runner {
	return &Runner{
		cfg:        cfg,
		registry:   registry,
		llmClient:  llmClient,
		tools:      toolRegistry,
		steps:      steps,
		chat:       chat,
		publisher:  publisher,
		controller: react.NewController(llmClient),
	}
}

// Execute runs the step to a terminal status and returns the updated
// record. The returned error is the failure cause when the step did not
// complete; the step's persisted status is authoritative either way.
func (r *Runner) Execute(ctx context.Context, st *ent.Story, sp *ent.Step) (*ent.Step, error) {
	log := slog.With("story_id", st.ID, "step_id", sp.ID, "step", sp.Name)

	if !runnableStoryStatuses[st.Status] {
		return sp, services.NewInvalidStateError("execute step", string(st.Status))
	}
	if !startableStepStatuses[sp.Status] {
		return sp, services.NewInvalidStateError("start step", string(sp.Status))
	}

	def, err := r.resolveAgent(sp)
	if err != nil {
		msg := err.Error()
		if failed, ferr := r.steps.MarkStepFailed(ctx, sp.ID, msg, nil); ferr == nil {
			sp = failed
		}
		r.publishFailed(ctx, st, sp, msg)
		return sp, err
	}

	// Rework context must be read before MarkStepRunning; the transition
	// does not clear it, but the fresh record is what we hand the prompt.
	task := r.buildTask(ctx, st, sp)

	sp, err = r.steps.MarkStepRunning(ctx, sp.ID, def.ID)
	if err != nil {
		return sp, err
	}
	r.publisher.PublishStepStarted(ctx, st.ID, waveOf(sp), sp.ID, sp.Name)
	log.Info("Step execution started", "agent_id", def.ID, "attempt", sp.Attempts)

	provider, err := services.ResolveProvider(r.cfg, def)
	if err != nil {
		return r.fail(ctx, st, sp, err)
	}

	if r.useReAct(st, sp, def) {
		return r.executeReAct(ctx, st, sp, def, provider, task)
	}
	return r.executeDirect(ctx, st, sp, def, provider, task)
}

// executeReAct runs the tool-using loop inside the story's worktree.
func (r *Runner) executeReAct(ctx context.Context, st *ent.Story, sp *ent.Step,
	def *agents.Definition, provider *config.LLMProviderConfig, task react.Task) (*ent.Step, error) {

	maxSteps := r.cfg.Orchestrator.MaxSteps
	executor := r.tools.NewExecutor(tools.ExecutorOptions{
		Workspace: *st.WorktreePath,
		Allowed:   def.Tools,
		// Autonomous stories must not stall on confirmation-gated tools
		// unless the agent explicitly asked for them.
		ExcludeConfirmation: st.AutomationMode == story.AutomationModeAutonomous && len(def.Tools) == 0,
		Timeout:             r.cfg.Orchestrator.ToolTimeout,
	})

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Orchestrator.ExecuteTimeout(maxSteps))
	defer cancel()

	result := r.controller.Run(runCtx, &react.Request{
		StoryID:          st.ID,
		StepID:           sp.ID,
		SystemPrompt:     def.SystemPrompt,
		Task:             task,
		Provider:         provider,
		MaxSteps:         maxSteps,
		IterationTimeout: r.cfg.Orchestrator.IterationTimeout,
		OnStep: func(ts models.TraceStep) {
			r.publisher.PublishStepProgress(st.ID, sp.ID, sp.Name, ts.Thought)
		},
	}, executor)

	switch result.Status {
	case react.StatusCompleted:
		return r.complete(ctx, st, sp, result.FinalAnswer, result.Trace)
	case react.StatusCancelled:
		return r.cancelled(ctx, st, sp, result.Trace)
	default:
		return r.failWithTrace(ctx, st, sp, result.Trace, result.Err)
	}
}

// executeDirect runs a single no-tools call for analysis-style steps.
func (r *Runner) executeDirect(ctx context.Context, st *ent.Story, sp *ent.Step,
	def *agents.Definition, provider *config.LLMProviderConfig, task react.Task) (*ent.Step, error) {

	resp, err := llm.Call(ctx, r.llmClient, &llm.GenerateInput{
		StoryID:  st.ID,
		StepID:   sp.ID,
		Messages: react.BuildDirectMessages(def.SystemPrompt, task),
		Config:   provider,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return r.cancelled(ctx, st, sp, nil)
		}
		return r.fail(ctx, st, sp, err)
	}
	return r.complete(ctx, st, sp, resp.Text, nil)
}

// resolveAgent resolves the executing agent: the pinned assignment when
// one exists and is still loaded, otherwise the best capability match.
func (r *Runner) resolveAgent(sp *ent.Step) (*agents.Definition, error) {
	if sp.AgentID != nil && *sp.AgentID != "" {
		if def, err := r.registry.Get(*sp.AgentID); err == nil {
			return def, nil
		}
		slog.Warn("Assigned agent no longer loaded; re-routing by capability",
			"step_id", sp.ID, "agent_id", *sp.AgentID)
	}
	def := r.registry.GetBestForCapability(sp.Capability, sp.Language)
	if def == nil {
		return nil, fmt.Errorf("%w: %s", services.ErrNoAgentForCapability, sp.Capability)
	}
	return def, nil
}

// buildTask assembles the prompt inputs: description, prior wave outputs,
// rework context, and the step's discussion history.
func (r *Runner) buildTask(ctx context.Context, st *ent.Story, sp *ent.Step) react.Task {
	task := react.Task{
		Description:      sp.Description,
		ApprovalFeedback: sp.ApprovalFeedback,
	}
	if task.Description == "" {
		task.Description = sp.Name
	}
	if st.WorktreePath != nil {
		task.WorkspacePath = *st.WorktreePath
	}
	if sp.NeedsRework && sp.PreviousOutput != nil {
		task.PreviousOutput = *sp.PreviousOutput
	}

	preds, err := r.steps.CompletedPredecessors(ctx, st.ID, waveOf(sp))
	if err != nil {
		slog.Warn("Failed to load prior step outputs", "step_id", sp.ID, "error", err)
	}
	for _, p := range preds {
		output := ""
		if p.Output != nil {
			output = *p.Output
		}
		task.PriorSteps = append(task.PriorSteps, react.PriorStep{
			ID:     p.ID,
			Name:   p.Name,
			Output: output,
		})
	}

	if history, err := r.chat.History(ctx, st.ID, &sp.ID); err == nil {
		task.ChatHistory = history
	}
	return task
}

// useReAct decides the execution path: tools require a worktree, and only
// tool-flavored capabilities (or agents with an explicit tool list) get
// the loop.
func (r *Runner) useReAct(st *ent.Story, sp *ent.Step, def *agents.Definition) bool {
	if st.WorktreePath == nil {
		return false
	}
	return toolCapabilities[sp.Capability] || len(def.Tools) > 0
}

func (r *Runner) complete(ctx context.Context, st *ent.Story, sp *ent.Step,
	output string, trace *models.ReActTrace) (*ent.Step, error) {
	sp, err := r.steps.MarkStepCompleted(ctx, sp.ID, output, trace)
	if err != nil {
		return sp, err
	}
	r.publisher.PublishStepCompleted(ctx, st.ID, waveOf(sp), sp.ID, sp.Name, output)
	return sp, nil
}

func (r *Runner) fail(ctx context.Context, st *ent.Story, sp *ent.Step, cause error) (*ent.Step, error) {
	return r.failWithTrace(ctx, st, sp, nil, cause)
}

func (r *Runner) failWithTrace(ctx context.Context, st *ent.Story, sp *ent.Step,
	trace *models.ReActTrace, cause error) (*ent.Step, error) {
	msg := "execution failed"
	if cause != nil {
		msg = cause.Error()
	}
	// Persistence runs detached: a cancelled caller must not lose the
	// failure record.
	if failed, err := r.steps.MarkStepFailed(context.WithoutCancel(ctx), sp.ID, msg, trace); err == nil {
		sp = failed
	}
	r.publishFailed(ctx, st, sp, msg)
	return sp, cause
}

func (r *Runner) cancelled(ctx context.Context, st *ent.Story, sp *ent.Step,
	trace *models.ReActTrace) (*ent.Step, error) {
	if c, err := r.steps.MarkStepCancelled(context.WithoutCancel(ctx), sp.ID, trace); err == nil {
		sp = c
	}
	return sp, context.Canceled
}

func (r *Runner) publishFailed(ctx context.Context, st *ent.Story, sp *ent.Step, msg string) {
	r.publisher.PublishStepFailed(ctx, st.ID, waveOf(sp), sp.ID, sp.Name, msg)
}

func waveOf(sp *ent.Step) int {
	if sp.Wave == nil {
		return 0
	}
	return *sp.Wave
}
