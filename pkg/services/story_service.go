// Package services implements the story state machine: lifecycle operations,
// plan management, chat-driven plan edits, and the persistence of story and
// step state. The services are the sole writers of story and step records;
// the scheduler and API mutate only through them.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/step"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/gitops"
	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/react"
)

// defaultListLimit caps unbounded list queries.
const defaultListLimit = 100

// StoryService manages story lifecycle: creation, analysis, planning,
// decomposition, run/cancel/finalize, and the administrative resets.
type StoryService struct {
	client    *ent.Client
	cfg       *config.Config
	registry  *agents.Registry
	llmClient llm.Client
	git       *gitops.Git
	github    *gitops.GitHubClient
	publisher *events.Publisher

	// cancelHook asks the orchestrator pool to cancel an in-flight run.
	// Returns true when a driver was found; the story then drains to
	// cancelled on its own.
	cancelHook func(storyID string) bool
}

// NewStoryService creates a StoryService. github may be nil (issue and PR
// integration disabled).
func NewStoryService(client *ent.Client, cfg *config.Config, registry *agents.Registry,
	llmClient llm.Client, git *gitops.Git, github *gitops.GitHubClient,
	publisher *events.Publisher) *StoryService {
	return &StoryService{
		client:    client,
		cfg:       cfg,
		registry:  registry,
		llmClient: llmClient,
		git:       git,
		github:    github,
		publisher: publisher,
	}
}

// SetCancelHook wires the orchestrator pool's cancellation entry point.
// Must be called before the HTTP surface starts accepting requests.
func (s *StoryService) SetCancelHook(hook func(storyID string) bool) {
	s.cancelHook = hook
}

// CreateStory creates a new story. When a repository path is given, the
// story's worktree and branch are created immediately so the worktree
// invariant (null or existing directory) holds from the start. When an
// issue URL is given, the issue is fetched and linked; its title and body
// fill any fields the request left empty.
func (s *StoryService) CreateStory(ctx context.Context, req models.CreateStoryRequest) (*ent.Story, error) {
	title := strings.TrimSpace(req.Title)
	description := req.Description

	var issueRef *models.IssueRef
	if req.IssueURL != "" {
		ref, err := gitops.ParseIssueURL(req.IssueURL)
		if err != nil {
			return nil, NewValidationError("issueUrl", err.Error())
		}
		issueRef = ref
		if s.github != nil {
			issue, err := s.github.FetchIssue(ctx, ref.Owner, ref.Repo, ref.Number)
			if err != nil {
				return nil, NewGitError("fetch issue", err)
			}
			if title == "" {
				title = issue.Title
			}
			if description == "" {
				description = issue.Body
			}
		}
	}

	if title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.AutomationMode != "" && !models.AutomationMode(req.AutomationMode).IsValid() {
		return nil, NewValidationError("automationMode", "must be 'assisted' or 'autonomous'")
	}
	if req.DispatchTarget != "" && !models.DispatchTarget(req.DispatchTarget).IsValid() {
		return nil, NewValidationError("dispatchTarget", "must be 'internal' or 'copilot_cli'")
	}
	if req.GateMode != "" && !models.GateMode(req.GateMode).IsValid() {
		return nil, NewValidationError("gateMode", "must be 'auto_proceed' or 'manual_approval'")
	}
	if req.MaxParallelism < 0 {
		return nil, NewValidationError("maxParallelism", "must be positive")
	}

	id := uuid.New().String()

	var worktreePath, branch string
	if req.RepositoryPath != "" {
		worktreePath = filepath.Join(s.cfg.Workspace.Root, id)
		branch = s.cfg.Workspace.BranchPrefix + id
		if err := s.git.CreateWorktree(ctx, req.RepositoryPath, worktreePath, branch); err != nil {
			return nil, NewGitError("create worktree", err)
		}
	}

	builder := s.client.Story.Create().
		SetID(id).
		SetTitle(title).
		SetDescription(description).
		SetMaxParallelism(s.cfg.Orchestrator.MaxParallelism)
	if req.RepositoryPath != "" {
		builder.SetRepositoryPath(req.RepositoryPath).
			SetWorktreePath(worktreePath).
			SetBranch(branch)
	}
	if req.AutomationMode != "" {
		builder.SetAutomationMode(story.AutomationMode(req.AutomationMode))
	}
	if req.GateMode != "" {
		builder.SetGateMode(story.GateMode(req.GateMode))
	}
	if req.DispatchTarget != "" {
		builder.SetDispatchTarget(story.DispatchTarget(req.DispatchTarget))
	}
	if req.MaxParallelism > 0 {
		builder.SetMaxParallelism(req.MaxParallelism)
	}
	if issueRef != nil {
		builder.SetIssueProvider(issueRef.Provider).
			SetIssueOwner(issueRef.Owner).
			SetIssueRepo(issueRef.Repo).
			SetIssueNumber(issueRef.Number).
			SetIssueURL(issueRef.URL)
	}

	st, err := builder.Save(ctx)
	if err != nil {
		// The worktree is orphaned if the insert lost; remove it so the
		// path can be reused.
		if worktreePath != "" {
			_ = s.git.RemoveWorktree(context.WithoutCancel(ctx), req.RepositoryPath, worktreePath)
		}
		if ent.IsConstraintError(err) {
			return nil, ErrWorktreeConflict
		}
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	s.publisher.PublishStoryCreated(ctx, st.ID)
	slog.Info("Story created", "story_id", st.ID, "title", st.Title)
	return st, nil
}

// GetStory retrieves a story, optionally with its steps ordered for display.
func (s *StoryService) GetStory(ctx context.Context, storyID string, withSteps bool) (*ent.Story, error) {
	query := s.client.Story.Query().Where(story.IDEQ(storyID))
	if withSteps {
		query = query.WithSteps(func(q *ent.StepQuery) {
			q.Order(ent.Asc(step.FieldOrderIndex))
		})
	}
	st, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return st, nil
}

// ListStories lists stories with filtering and pagination, newest first.
func (s *StoryService) ListStories(ctx context.Context, filters models.StoryFilters) (*models.StoryListResponse, error) {
	query := s.client.Story.Query()
	if filters.Status != "" {
		query = query.Where(story.StatusEQ(story.Status(filters.Status)))
	}
	if filters.RepositoryPath != "" {
		query = query.Where(story.RepositoryPathEQ(filters.RepositoryPath))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stories: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	stories, err := query.
		Order(ent.Desc(story.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	return &models.StoryListResponse{
		Stories:    stories,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// DeleteStory removes the story, its steps, chat, and events. The worktree
// and branch are removed best-effort; a stuck worktree never blocks cleanup
// of the record.
func (s *StoryService) DeleteStory(ctx context.Context, storyID string) error {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return err
	}
	if st.Status == story.StatusRunning && s.cancelHook != nil {
		s.cancelHook(storyID)
	}

	if st.WorktreePath != nil && st.RepositoryPath != "" {
		if err := s.git.RemoveWorktree(ctx, st.RepositoryPath, *st.WorktreePath); err != nil {
			slog.Warn("Failed to remove story worktree", "story_id", storyID, "error", err)
		} else if st.Branch != "" {
			if err := s.git.DeleteBranch(ctx, st.RepositoryPath, st.Branch); err != nil {
				slog.Warn("Failed to delete story branch", "story_id", storyID, "error", err)
			}
		}
	}

	if err := s.client.Story.DeleteOneID(storyID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete story: %w", err)
	}
	slog.Info("Story deleted", "story_id", storyID)
	return nil
}

// Analyze routes the story to the best analysis agent and stores its output
// as the analyzed context. Idempotent on re-entry: a second analyze
// overwrites the prior context.
func (s *StoryService) Analyze(ctx context.Context, storyID string) (*ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	if err := guardStory(opAnalyze, st.Status); err != nil {
		return nil, err
	}

	def := s.registry.GetBestForCapability("analysis", "")
	if def == nil {
		return nil, fmt.Errorf("%w: analysis", ErrNoAgentForCapability)
	}

	prior := st.Status
	st, err = st.Update().SetStatus(story.StatusAnalyzing).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark story analyzing: %w", err)
	}

	resp, err := callAgentDirect(ctx, s.llmClient, s.cfg, def, st.ID, react.Task{
		Description: analysisPrompt(st),
	})
	if err != nil {
		return nil, s.revertStatus(ctx, st, prior, err)
	}

	st, err = st.Update().
		SetStatus(story.StatusAnalyzed).
		SetAnalyzedContext(map[string]interface{}{
			"summary":  resp.Text,
			"agent_id": def.ID,
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	s.publisher.PublishStoryAnalyzed(ctx, st.ID, resp.Text)
	slog.Info("Story analyzed", "story_id", st.ID, "agent_id", def.ID)
	return st, nil
}

// Plan routes the story to the best planning agent (falling back to
// analysis), parses its reply into step descriptors, and replaces any
// existing plan. includeTests controls whether the planner is prompted to
// emit testing steps.
func (s *StoryService) Plan(ctx context.Context, storyID string, includeTests bool) (*ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	if err := guardStory(opPlan, st.Status); err != nil {
		return nil, err
	}

	def := s.registry.GetBestForCapability("planning", "")
	if def == nil {
		def = s.registry.GetBestForCapability("analysis", "")
	}
	if def == nil {
		return nil, fmt.Errorf("%w: planning", ErrNoAgentForCapability)
	}

	prior := st.Status
	st, err = st.Update().SetStatus(story.StatusPlanning).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark story planning: %w", err)
	}

	resp, err := callAgentDirect(ctx, s.llmClient, s.cfg, def, st.ID, react.Task{
		Description:       planPrompt(st, includeTests),
		AdditionalContext: analyzedSummary(st),
	})
	if err != nil {
		return nil, s.revertStatus(ctx, st, prior, err)
	}

	planSteps, err := ParsePlanSteps(resp.Text)
	if err != nil {
		return nil, s.revertStatus(ctx, st, prior, NewLLMError(err))
	}

	if err := s.replacePlan(ctx, st, def.ID, planSteps); err != nil {
		return nil, err
	}

	st, err = st.Update().SetStatus(story.StatusPlanned).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark story planned: %w", err)
	}

	s.publisher.PublishStoryPlanned(ctx, st.ID, resp.Text)
	slog.Info("Story planned", "story_id", st.ID, "agent_id", def.ID, "steps", len(planSteps))
	return st, nil
}

// replacePlan swaps the story's steps for the parsed descriptors in one
// transaction and records the normalized plan on the story.
func (s *StoryService) replacePlan(ctx context.Context, st *ent.Story, agentID string, planSteps []models.PlanStep) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Step.Delete().Where(step.StoryIDEQ(st.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear existing plan: %w", err)
	}

	for i, ps := range planSteps {
		builder := tx.Step.Create().
			SetID(uuid.New().String()).
			SetStoryID(st.ID).
			SetOrderIndex(i + 1).
			SetName(ps.Name).
			SetCapability(ps.Capability).
			SetDescription(ps.Description)
		if ps.Language != "" {
			builder.SetLanguage(strings.ToLower(ps.Language))
		}
		if len(ps.DependsOn) > 0 {
			builder.SetDependsOn(ps.DependsOn)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to create step %q: %w", ps.Name, err)
		}
	}

	if _, err := tx.Story.UpdateOneID(st.ID).
		SetPlan(map[string]interface{}{
			"steps":        planStepsToJSON(planSteps),
			"generated_by": agentID,
		}).
		SetCurrentWave(0).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to store plan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit plan: %w", err)
	}
	return nil
}

// Decompose upgrades the flat plan into wave-annotated steps: each step's
// wave is 1 + the maximum wave of its predecessors, sequential when the
// plan has no explicit dependency edges.
func (s *StoryService) Decompose(ctx context.Context, storyID string) (*ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	if err := guardStory(opDecompose, st.Status); err != nil {
		return nil, err
	}

	steps, err := s.storySteps(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, NewValidationError("plan", "story has no steps to decompose")
	}

	waves, err := LayerWaves(steps)
	if err != nil {
		return nil, NewValidationError("plan", err.Error())
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	totalWaves := 0
	for id, wave := range waves {
		if _, err := tx.Step.UpdateOneID(id).SetWave(wave).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to assign wave: %w", err)
		}
		if wave > totalWaves {
			totalWaves = wave
		}
	}
	if _, err := tx.Story.UpdateOneID(storyID).SetCurrentWave(0).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset current wave: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit decompose: %w", err)
	}

	s.publisher.PublishStoryDecomposed(ctx, storyID, totalWaves)
	slog.Info("Story decomposed", "story_id", storyID, "total_waves", totalWaves)
	return s.GetStory(ctx, storyID, true)
}

// RunStory transitions the story to running so the orchestrator pool picks
// it up. From gate_pending this is the human's gate approval and advances
// the wave cursor.
func (s *StoryService) RunStory(ctx context.Context, storyID string) (*ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	if err := guardStory(opRun, st.Status); err != nil {
		return nil, err
	}

	steps, err := s.storySteps(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, NewValidationError("plan", "story has no steps; plan it first")
	}
	for _, sp := range steps {
		if sp.Wave == nil && sp.Status != step.StatusSkipped {
			return nil, NewValidationError("plan",
				fmt.Sprintf("step %q has no wave; decompose the plan first", sp.Name))
		}
	}

	update := st.Update().SetStatus(story.StatusRunning)
	if st.Status == story.StatusGatePending {
		update.SetCurrentWave(st.CurrentWave + 1)
	}
	st, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark story running: %w", err)
	}
	slog.Info("Story queued for execution", "story_id", storyID, "current_wave", st.CurrentWave)
	return st, nil
}

// Complete marks the story completed by hand, short-circuiting any
// remaining waves.
func (s *StoryService) Complete(ctx context.Context, storyID string) (*ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	if err := guardStory(opComplete, st.Status); err != nil {
		return nil, err
	}
	if s.cancelHook != nil {
		s.cancelHook(storyID)
	}

	st, err = st.Update().
		SetStatus(story.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete story: %w", err)
	}
	s.publisher.PublishStoryCompleted(ctx, storyID)
	return st, nil
}

// Cancel requests cancellation. With an in-flight run the scheduler drains
// its steps and transitions the story itself; otherwise the story is
// cancelled immediately. Either way the caller returns without blocking.
func (s *StoryService) Cancel(ctx context.Context, storyID string) (*ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	if err := guardStory(opCancel, st.Status); err != nil {
		return nil, err
	}

	if s.cancelHook != nil && s.cancelHook(storyID) {
		slog.Info("Story cancellation requested; draining in-flight steps", "story_id", storyID)
		return st, nil
	}

	st, err = st.Update().SetStatus(story.StatusCancelled).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel story: %w", err)
	}
	s.publisher.PublishStoryCancelled(ctx, storyID)
	return st, nil
}

// Finalize commits any uncommitted worktree changes, pushes the story
// branch, and optionally opens a pull request. The pull request URL is
// recorded only when every sub-step succeeded.
func (s *StoryService) Finalize(ctx context.Context, storyID string, req models.FinalizeRequest) (*models.FinalizeResult, *ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, nil, err
	}
	if st.Status != story.StatusCompleted {
		// All-steps-completed is an equivalent precondition for stories
		// still formally running.
		done, err := s.allStepsFinished(ctx, storyID)
		if err != nil {
			return nil, nil, err
		}
		if !done {
			return nil, nil, NewInvalidStateError(opFinalize+" story", string(st.Status))
		}
	}
	if st.WorktreePath == nil {
		return nil, nil, NewValidationError("worktreePath", "story has no worktree to finalize")
	}

	result := &models.FinalizeResult{}

	dirty, err := s.git.HasChanges(ctx, *st.WorktreePath)
	if err != nil {
		return nil, nil, NewGitError("status", err)
	}
	if dirty {
		message := req.CommitMessage
		if message == "" {
			message = "feat: " + st.Title
		}
		if err := s.git.CommitAll(ctx, *st.WorktreePath, message, true); err != nil {
			return nil, nil, NewGitError("commit", err)
		}
		result.Committed = true
	}

	if err := s.git.Push(ctx, *st.WorktreePath, st.Branch); err != nil {
		return nil, nil, NewGitError("push", err)
	}
	result.Pushed = true

	if req.CreatePullRequest {
		if s.github == nil {
			return nil, nil, NewValidationError("createPullRequest", "GitHub integration is not configured")
		}
		owner, repo, err := s.resolveRepo(ctx, st)
		if err != nil {
			return nil, nil, err
		}

		labels := req.Labels
		if len(labels) == 0 {
			labels = s.cfg.GitHub.PRLabels
		}
		pr, err := s.github.CreatePullRequest(ctx, owner, repo, gitops.CreatePullRequestInput{
			Title:  st.Title,
			Body:   pullRequestBody(st),
			Head:   st.Branch,
			Base:   s.git.DefaultBranch(ctx, st.RepositoryPath),
			Labels: labels,
		})
		if err != nil {
			return nil, nil, NewGitError("create pull request", err)
		}
		result.PullRequestURL = pr.HTMLURL

		st, err = st.Update().SetPullRequestURL(pr.HTMLURL).Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to record pull request URL: %w", err)
		}
	}

	slog.Info("Story finalized",
		"story_id", storyID,
		"committed", result.Committed,
		"pull_request", result.PullRequestURL)
	return result, st, nil
}

// ResetStatus is the administrative status override. In-flight markers are
// engine-owned and rejected as targets.
func (s *StoryService) ResetStatus(ctx context.Context, storyID, target string) (*ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	targetStatus := story.Status(target)
	if !adminStatusTargets[targetStatus] {
		return nil, NewValidationError("status", fmt.Sprintf("'%s' is not a legal target status", target))
	}

	st, err = st.Update().SetStatus(targetStatus).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to override status: %w", err)
	}
	slog.Info("Story status overridden", "story_id", storyID, "status", target)
	return st, nil
}

// ResetOrchestrator returns the story to planned, optionally resetting
// failed steps to pending, so a failed or stuck run can be restarted.
func (s *StoryService) ResetOrchestrator(ctx context.Context, storyID string, resetFailedSteps bool) (*ent.Story, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	if err := guardStory(opResetOrchestrator, st.Status); err != nil {
		return nil, err
	}
	if s.cancelHook != nil {
		s.cancelHook(storyID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if resetFailedSteps {
		if _, err := tx.Step.Update().
			Where(step.StoryIDEQ(storyID), step.StatusEQ(step.StatusFailed)).
			SetStatus(step.StatusPending).
			ClearError().
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to reset failed steps: %w", err)
		}
	}
	st, err = tx.Story.UpdateOneID(storyID).
		SetStatus(story.StatusPlanned).
		SetCurrentWave(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset orchestrator: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit orchestrator reset: %w", err)
	}

	slog.Info("Orchestrator reset", "story_id", storyID, "reset_failed_steps", resetFailedSteps)
	return st, nil
}

// OrchestratorStatus computes the scheduler view from story-level truth;
// nothing here is stored, so it cannot diverge from the story record.
func (s *StoryService) OrchestratorStatus(ctx context.Context, storyID string) (*models.OrchestratorStatus, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, err
	}
	steps, err := s.storySteps(ctx, storyID)
	if err != nil {
		return nil, err
	}

	status := &models.OrchestratorStatus{
		StoryID:        st.ID,
		Status:         string(st.Status),
		CurrentWave:    st.CurrentWave,
		MaxParallelism: st.MaxParallelism,
		LastGateResult: st.LastGateResult,
		Steps:          make([]models.StepStatus, 0, len(steps)),
	}
	for _, sp := range steps {
		wave := 0
		if sp.Wave != nil {
			wave = *sp.Wave
		}
		if wave > status.TotalWaves {
			status.TotalWaves = wave
		}
		status.Steps = append(status.Steps, models.StepStatus{
			StepID:   sp.ID,
			Name:     sp.Name,
			Wave:     wave,
			Status:   string(sp.Status),
			Attempts: sp.Attempts,
		})
	}
	return status, nil
}

// RefreshFromIssue re-fetches the linked issue and maps its title and body
// back onto the story.
func (s *StoryService) RefreshFromIssue(ctx context.Context, storyID string) (*ent.Story, error) {
	st, ref, err := s.linkedIssue(ctx, storyID)
	if err != nil {
		return nil, err
	}
	issue, err := s.github.FetchIssue(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, NewGitError("fetch issue", err)
	}
	st, err = st.Update().
		SetTitle(issue.Title).
		SetDescription(issue.Body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh story from issue: %w", err)
	}
	return st, nil
}

// PostUpdateToIssue comments the message on the linked issue.
func (s *StoryService) PostUpdateToIssue(ctx context.Context, storyID, message string) error {
	_, ref, err := s.linkedIssue(ctx, storyID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		return NewValidationError("message", "required")
	}
	if err := s.github.CommentOnIssue(ctx, ref.Owner, ref.Repo, ref.Number, message); err != nil {
		return NewGitError("comment on issue", err)
	}
	return nil
}

// CloseLinkedIssue closes the linked issue.
func (s *StoryService) CloseLinkedIssue(ctx context.Context, storyID string) error {
	_, ref, err := s.linkedIssue(ctx, storyID)
	if err != nil {
		return err
	}
	if err := s.github.CloseIssue(ctx, ref.Owner, ref.Repo, ref.Number); err != nil {
		return NewGitError("close issue", err)
	}
	return nil
}

// linkedIssue loads the story and its issue link, validating both exist.
func (s *StoryService) linkedIssue(ctx context.Context, storyID string) (*ent.Story, *models.IssueRef, error) {
	st, err := s.GetStory(ctx, storyID, false)
	if err != nil {
		return nil, nil, err
	}
	if s.github == nil {
		return nil, nil, NewValidationError("issue", "GitHub integration is not configured")
	}
	if st.IssueOwner == nil || st.IssueRepo == nil || st.IssueNumber == nil {
		return nil, nil, NewValidationError("issue", "story has no linked issue")
	}
	return st, &models.IssueRef{
		Owner:  *st.IssueOwner,
		Repo:   *st.IssueRepo,
		Number: *st.IssueNumber,
	}, nil
}

// resolveRepo determines the GitHub owner/repo for the story: the issue
// link when present, otherwise the worktree's origin remote.
func (s *StoryService) resolveRepo(ctx context.Context, st *ent.Story) (string, string, error) {
	if st.IssueOwner != nil && st.IssueRepo != nil {
		return *st.IssueOwner, *st.IssueRepo, nil
	}
	remote, err := s.git.OriginURL(ctx, st.RepositoryPath)
	if err != nil {
		return "", "", NewGitError("resolve origin", err)
	}
	owner, repo, err := gitops.ParseRepoURL(remote)
	if err != nil {
		return "", "", NewGitError("resolve origin", err)
	}
	return owner, repo, nil
}

// storySteps loads a story's steps in display order.
func (s *StoryService) storySteps(ctx context.Context, storyID string) ([]*ent.Step, error) {
	steps, err := s.client.Step.Query().
		Where(step.StoryIDEQ(storyID)).
		Order(ent.Asc(step.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

// allStepsFinished reports whether every step is completed or skipped.
func (s *StoryService) allStepsFinished(ctx context.Context, storyID string) (bool, error) {
	count, err := s.client.Step.Query().
		Where(
			step.StoryIDEQ(storyID),
			step.StatusNotIn(step.StatusCompleted, step.StatusSkipped),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check steps: %w", err)
	}
	return count == 0, nil
}

// revertStatus restores the pre-operation status after a mid-operation
// failure so a guarded retry is possible, and returns the original error.
func (s *StoryService) revertStatus(ctx context.Context, st *ent.Story, prior story.Status, cause error) error {
	if _, err := st.Update().SetStatus(prior).Save(context.WithoutCancel(ctx)); err != nil {
		slog.Error("Failed to revert story status",
			"story_id", st.ID, "status", prior, "error", err)
	}
	return cause
}

// analysisPrompt renders the analysis agent's task.
func analysisPrompt(st *ent.Story) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following development task and summarize the context an implementation plan needs: affected areas, constraints, risks, and the languages involved.\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", st.Title)
	if st.Description != "" {
		fmt.Fprintf(&sb, "\nDescription:\n%s\n", st.Description)
	}
	if st.RepositoryPath != "" {
		fmt.Fprintf(&sb, "\nRepository: %s\n", st.RepositoryPath)
	}
	return sb.String()
}

// planPrompt renders the planning agent's task, including the required
// output contract.
func planPrompt(st *ent.Story, includeTests bool) string {
	var sb strings.Builder
	sb.WriteString("Produce an execution plan for the following development task.\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", st.Title)
	if st.Description != "" {
		fmt.Fprintf(&sb, "\nDescription:\n%s\n", st.Description)
	}
	if includeTests {
		sb.WriteString("\nInclude steps that add or update tests for the change.\n")
	} else {
		sb.WriteString("\nDo not include dedicated testing steps.\n")
	}
	sb.WriteString(`
Reply with a JSON array of step descriptors, ordered by execution:

[
  {"name": "...", "capability": "coding", "language": "go", "description": "...", "dependsOn": ["earlier step name"]}
]

Capabilities: analysis, planning, coding, testing, review, documentation, fixing.
Omit "dependsOn" for steps with no prerequisites; steps without ordering
constraints between them can then run in parallel.`)
	return sb.String()
}

// analyzedSummary extracts the stored analysis summary, if any.
func analyzedSummary(st *ent.Story) string {
	if st.AnalyzedContext == nil {
		return ""
	}
	if summary, ok := st.AnalyzedContext["summary"].(string); ok {
		return "## Prior Analysis\n" + summary
	}
	return ""
}

// pullRequestBody renders the PR description from the story.
func pullRequestBody(st *ent.Story) string {
	var sb strings.Builder
	if st.Description != "" {
		sb.WriteString(st.Description)
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "Automated change for story `%s`.", st.ID)
	if st.IssueURL != nil {
		fmt.Fprintf(&sb, "\n\nCloses %s", *st.IssueURL)
	}
	return sb.String()
}

// planStepsToJSON converts plan steps for the story's JSON plan column.
func planStepsToJSON(steps []models.PlanStep) []interface{} {
	data, err := json.Marshal(steps)
	if err != nil {
		return nil
	}
	var out []interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
