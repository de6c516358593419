package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

// errNoStoriesAvailable signals an empty poll; the worker sleeps and
// retries.
var errNoStoriesAvailable = errors.New("no runnable stories")

// StoryScheduler drives one claimed story to a parked or terminal state.
// Satisfied by Scheduler; tests substitute a stub.
type StoryScheduler interface {
	Run(ctx context.Context, storyID string) (*models.RunResult, error)
}

// Pool polls for running stories without a driver and hands each to the
// scheduler on its own goroutine. It also doubles as the story cancel
// registry: an in-flight story is cancelled by cancelling the context its
// scheduler run was given.
type Pool struct {
	client    *ent.Client
	cfg       *config.Config
	scheduler StoryScheduler
	workers   int
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu            sync.RWMutex
	activeStories map[string]context.CancelFunc
	started       bool
}

// NewPool creates a Pool driving claimed stories through sched.
func NewPool(client *ent.Client, cfg *config.Config, sched StoryScheduler) *Pool {
	workers := cfg.Orchestrator.StoryConcurrency
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	return &Pool{
		client:        client,
		cfg:           cfg,
		scheduler:     sched,
		workers:       workers,
		stopCh:        make(chan struct{}),
		activeStories: make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines. Safe to call once; duplicate calls
// are no-ops.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		slog.Warn("Orchestrator pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.mu.Unlock()

	slog.Info("Starting orchestrator pool", "workers", p.workers)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, fmt.Sprintf("worker-%d", i))
	}
}

// Stop signals the workers and waits for in-flight stories to drain.
// Running stories are cancelled; each drains to cancelled through its
// scheduler.
func (p *Pool) Stop() {
	slog.Info("Stopping orchestrator pool")

	active := p.activeStoryIDs()
	if len(active) > 0 {
		slog.Info("Cancelling in-flight stories", "count", len(active), "story_ids", active)
	}
	p.mu.RLock()
	for _, cancel := range p.activeStories {
		cancel()
	}
	p.mu.RUnlock()

	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Orchestrator pool stopped")
	case <-time.After(p.cfg.Orchestrator.GracefulShutdownTimeout):
		slog.Warn("Orchestrator pool shutdown timed out; abandoning in-flight stories")
	}
}

// CancelStory cancels an in-flight story's run. Returns true when this
// pool was driving it; the story then drains to cancelled on its own.
func (p *Pool) CancelStory(storyID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeStories[storyID]; ok {
		cancel()
		return true
	}
	return false
}

// ActiveCount returns the number of stories this pool is driving.
func (p *Pool) ActiveCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.activeStories)
}

// run is one worker's poll loop.
func (p *Pool) run(ctx context.Context, workerID string) {
	defer p.wg.Done()

	log := slog.With("worker_id", workerID)
	log.Info("Orchestrator worker started")

	for {
		select {
		case <-p.stopCh:
			log.Info("Orchestrator worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, orchestrator worker shutting down")
			return
		default:
			if err := p.pollAndDrive(ctx, log); err != nil {
				if errors.Is(err, errNoStoriesAvailable) {
					p.sleep(p.pollInterval())
					continue
				}
				log.Error("Error driving story", "error", err)
				p.sleep(time.Second)
			}
		}
	}
}

// pollAndDrive claims the next driverless running story and runs it to a
// parked or terminal state.
func (p *Pool) pollAndDrive(ctx context.Context, log *slog.Logger) error {
	st, err := p.claimNextStory(ctx)
	if err != nil {
		return err
	}

	storyCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.register(st.ID, cancel)
	defer p.release(st.ID)

	log.Info("Story claimed", "story_id", st.ID, "current_wave", st.CurrentWave)

	result, err := p.scheduler.Run(storyCtx, st.ID)
	if err != nil {
		return fmt.Errorf("scheduling story %s: %w", st.ID, err)
	}
	log.Info("Story run finished", "story_id", st.ID, "result", result)
	return nil
}

// claimNextStory picks the oldest running story no worker is driving and
// registers this worker as its driver. The in-memory registry is the
// claim; SKIP LOCKED only keeps concurrent pollers from blocking on the
// same row. Running stories found after a restart have no driver and are
// picked up here, which doubles as orphan recovery.
func (p *Pool) claimNextStory(ctx context.Context) (*ent.Story, error) {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.Story.Query().
		Where(story.StatusEQ(story.StatusRunning))
	if active := p.activeStoryIDs(); len(active) > 0 {
		query = query.Where(story.IDNotIn(active...))
	}

	st, err := query.
		Order(ent.Asc(story.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errNoStoriesAvailable
		}
		return nil, fmt.Errorf("failed to query runnable stories: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	if !p.acquire(st.ID) {
		// Another worker registered it between the query and here.
		return nil, errNoStoriesAvailable
	}
	return st, nil
}

// acquire registers this worker as the story's driver. The cancel func is
// a placeholder until pollAndDrive swaps in the real one.
func (p *Pool) acquire(storyID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.activeStories[storyID]; ok {
		return false
	}
	p.activeStories[storyID] = func() {}
	return true
}

func (p *Pool) release(storyID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeStories, storyID)
}

func (p *Pool) register(storyID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeStories[storyID] = cancel
}

func (p *Pool) activeStoryIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeStories))
	for id := range p.activeStories {
		ids = append(ids, id)
	}
	return ids
}

// sleep waits for the given duration or until stop is signalled.
func (p *Pool) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter so workers spread
// their queries.
func (p *Pool) pollInterval() time.Duration {
	base := p.cfg.Orchestrator.PollInterval
	jitter := p.cfg.Orchestrator.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
