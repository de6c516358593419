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
	"github.com/johnazariah/aura-sub009/ent/story"
	"github.com/johnazariah/aura-sub009/pkg/models"
	testdb "github.com/johnazariah/aura-sub009/test/database"
)

// stubScheduler records which stories it was handed and moves each to a
// terminal status so the pool does not reclaim it.
type stubScheduler struct {
	client *ent.Client
	// block, when set, holds each run until the context is cancelled;
	// the story then drains to cancelled like the real scheduler.
	block bool

	mu   sync.Mutex
	runs map[string]int
}

func (s *stubScheduler) Run(ctx context.Context, storyID string) (*models.RunResult, error) {
	s.mu.Lock()
	s.runs[storyID]++
	s.mu.Unlock()

	status := story.StatusCompleted
	if s.block {
		<-ctx.Done()
		status = story.StatusCancelled
	}

	if _, err := s.client.Story.UpdateOneID(storyID).
		SetStatus(status).
		Save(context.WithoutCancel(ctx)); err != nil {
		return nil, err
	}
	return &models.RunResult{StoryID: storyID, Status: string(status)}, nil
}

func (s *stubScheduler) runCount(storyID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs[storyID]
}

func seedPoolStory(t *testing.T, client *ent.Client) *ent.Story {
	t.Helper()
	st, err := client.Story.Create().
		SetID(uuid.NewString()).
		SetTitle("queued story").
		SetStatus(story.StatusRunning).
		Save(context.Background())
	require.NoError(t, err)
	return st
}

func TestPool_ClaimsAndDrivesRunningStories(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testConfig(t)
	cfg.Orchestrator.StoryConcurrency = 2

	sched := &stubScheduler{client: client, runs: map[string]int{}}
	pool := NewPool(client, cfg, sched)

	first := seedPoolStory(t, client)
	second := seedPoolStory(t, client)

	pool.Start(context.Background())
	defer pool.Stop()

	require.Eventually(t, func() bool {
		n, err := client.Story.Query().
			Where(story.StatusEQ(story.StatusCompleted)).
			Count(context.Background())
		return err == nil && n == 2
	}, 5*time.Second, 20*time.Millisecond)

	// Each story was driven exactly once despite two polling workers.
	assert.Equal(t, 1, sched.runCount(first.ID))
	assert.Equal(t, 1, sched.runCount(second.ID))
	assert.Zero(t, pool.ActiveCount())
}

func TestPool_CancelStory(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testConfig(t)
	cfg.Orchestrator.StoryConcurrency = 1

	sched := &stubScheduler{client: client, runs: map[string]int{}, block: true}
	pool := NewPool(client, cfg, sched)

	st := seedPoolStory(t, client)

	pool.Start(context.Background())
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return pool.ActiveCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.True(t, pool.CancelStory(st.ID))

	require.Eventually(t, func() bool {
		got, err := client.Story.Get(context.Background(), st.ID)
		return err == nil && got.Status == story.StatusCancelled
	}, 5*time.Second, 20*time.Millisecond)

	// The driver is gone; a second cancel finds nothing.
	require.Eventually(t, func() bool {
		return !pool.CancelStory(st.ID)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestPool_StopDrainsInFlightStories(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testConfig(t)
	cfg.Orchestrator.StoryConcurrency = 1

	sched := &stubScheduler{client: client, runs: map[string]int{}, block: true}
	pool := NewPool(client, cfg, sched)

	st := seedPoolStory(t, client)

	pool.Start(context.Background())
	require.Eventually(t, func() bool {
		return pool.ActiveCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	pool.Stop()

	got, err := client.Story.Get(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, story.StatusCancelled, got.Status)
	assert.Zero(t, pool.ActiveCount())
}

func TestPool_IgnoresStoriesThatAreNotRunning(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testConfig(t)
	cfg.Orchestrator.StoryConcurrency = 1

	sched := &stubScheduler{client: client, runs: map[string]int{}}
	pool := NewPool(client, cfg, sched)

	st, err := client.Story.Create().
		SetID(uuid.NewString()).
		SetTitle("still planning").
		SetStatus(story.StatusPlanned).
		Save(context.Background())
	require.NoError(t, err)

	pool.Start(context.Background())
	defer pool.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, sched.runCount(st.ID))
}
