package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/pkg/gitops"
	"github.com/johnazariah/aura-sub009/pkg/models"
	testdb "github.com/johnazariah/aura-sub009/test/database"
)

// fakeGitHub records the requests the story service sends and serves a
// single canned issue.
type fakeGitHub struct {
	mu       sync.Mutex
	issue    map[string]any
	comments []string
	closed   bool
}

func (f *fakeGitHub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/issues/7":
			_ = json.NewEncoder(w).Encode(f.issue)
		case r.Method == http.MethodPost && r.URL.Path == "/repos/acme/widgets/issues/7/comments":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.comments = append(f.comments, body["body"])
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPatch && r.URL.Path == "/repos/acme/widgets/issues/7":
			f.closed = true
			_ = json.NewEncoder(w).Encode(map[string]string{"state": "closed"})
		default:
			http.NotFound(w, r)
		}
	})
}

func newIssueBackedService(t *testing.T, client *ent.Client) (*StoryService, *fakeGitHub) {
	t.Helper()
	fake := &fakeGitHub{issue: map[string]any{
		"number":   7,
		"title":    "Widgets panic on empty input",
		"body":     "Steps to reproduce: pass an empty slice.",
		"state":    "open",
		"html_url": "https://github.com/acme/widgets/issues/7",
	}}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	github := gitops.NewGitHubClientForBase("test-token", srv.URL)
	svc := NewStoryService(client, testConfig(t), testRegistry(t, defaultTestAgents()),
		&scriptedLLM{}, gitops.New(), github, testPublisher(client))
	return svc, fake
}

func TestStoryService_IssueIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, fake := newIssueBackedService(t, client.Client)
	ctx := context.Background()

	st, err := svc.CreateStory(ctx, models.CreateStoryRequest{
		IssueURL: "https://github.com/acme/widgets/issues/7",
	})
	require.NoError(t, err)

	t.Run("create fills title and description from the issue", func(t *testing.T) {
		assert.Equal(t, "Widgets panic on empty input", st.Title)
		assert.Equal(t, "Steps to reproduce: pass an empty slice.", st.Description)
		require.NotNil(t, st.IssueNumber)
		assert.Equal(t, 7, *st.IssueNumber)
	})

	t.Run("refresh pulls the latest issue text", func(t *testing.T) {
		fake.mu.Lock()
		fake.issue["title"] = "Widgets panic on empty input (confirmed)"
		fake.mu.Unlock()

		refreshed, err := svc.RefreshFromIssue(ctx, st.ID)
		require.NoError(t, err)
		assert.Equal(t, "Widgets panic on empty input (confirmed)", refreshed.Title)
	})

	t.Run("post update comments on the issue", func(t *testing.T) {
		require.NoError(t, svc.PostUpdateToIssue(ctx, st.ID, "analysis complete, 3 steps planned"))

		fake.mu.Lock()
		defer fake.mu.Unlock()
		require.Len(t, fake.comments, 1)
		assert.Equal(t, "analysis complete, 3 steps planned", fake.comments[0])
	})

	t.Run("empty update message is rejected", func(t *testing.T) {
		err := svc.PostUpdateToIssue(ctx, st.ID, "   ")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("close closes the linked issue", func(t *testing.T) {
		require.NoError(t, svc.CloseLinkedIssue(ctx, st.ID))

		fake.mu.Lock()
		defer fake.mu.Unlock()
		assert.True(t, fake.closed)
	})
}

func TestStoryService_IssueGuards(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("story without a linked issue", func(t *testing.T) {
		svc, _ := newIssueBackedService(t, client.Client)
		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "unlinked"})
		require.NoError(t, err)

		err = svc.CloseLinkedIssue(ctx, st.ID)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "issue", verr.Field)
	})

	t.Run("github integration not configured", func(t *testing.T) {
		svc, _ := newTestStoryService(t, client.Client)
		st, err := svc.CreateStory(ctx, models.CreateStoryRequest{Title: "offline"})
		require.NoError(t, err)

		_, err = svc.RefreshFromIssue(ctx, st.ID)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
