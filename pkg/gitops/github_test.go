package gitops

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL, token string) *GitHubClient {
	client := NewGitHubClient(token)
	client.baseURL = serverURL
	return client
}

func TestFetchIssue(t *testing.T) {
	t.Run("returns issue fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/repos/acme/widgets/issues/42", r.URL.Path)
			assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"number":   42,
				"title":    "Fix login redirect",
				"body":     "Users land on a 404 after login.",
				"state":    "open",
				"html_url": "https://github.com/acme/widgets/issues/42",
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-token")
		issue, err := client.FetchIssue(context.Background(), "acme", "widgets", 42)
		require.NoError(t, err)
		assert.Equal(t, 42, issue.Number)
		assert.Equal(t, "Fix login redirect", issue.Title)
		assert.Equal(t, "Users land on a 404 after login.", issue.Body)
		assert.Equal(t, "open", issue.State)
		assert.Equal(t, "https://github.com/acme/widgets/issues/42", issue.HTMLURL)
	})

	t.Run("omits auth header without token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]any{"number": 1})
		}))
		defer server.Close()

		client := newTestClient(server.URL, "")
		_, err := client.FetchIssue(context.Background(), "acme", "widgets", 1)
		require.NoError(t, err)
	})

	t.Run("surfaces HTTP errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-token")
		_, err := client.FetchIssue(context.Background(), "acme", "widgets", 999)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GitHub returned HTTP 404")
	})
}

func TestCommentOnIssue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/acme/widgets/issues/42/comments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Work started on branch aura/story-1.", payload["body"])
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")
	err := client.CommentOnIssue(context.Background(), "acme", "widgets", 42, "Work started on branch aura/story-1.")
	require.NoError(t, err)
}

func TestCloseIssue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/repos/acme/widgets/issues/42", r.URL.Path)
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "closed", payload["state"])
		_ = json.NewEncoder(w).Encode(map[string]any{"number": 42, "state": "closed"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")
	err := client.CloseIssue(context.Background(), "acme", "widgets", 42)
	require.NoError(t, err)
}

func TestCreatePullRequest(t *testing.T) {
	t.Run("opens PR and attaches labels", func(t *testing.T) {
		var labelsPosted []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/acme/widgets/pulls":
				assert.Equal(t, http.MethodPost, r.Method)
				var payload map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				assert.Equal(t, "feat: Fix login redirect", payload["title"])
				assert.Equal(t, "aura/story-1", payload["head"])
				assert.Equal(t, "main", payload["base"])
				_ = json.NewEncoder(w).Encode(map[string]any{
					"number":   7,
					"html_url": "https://github.com/acme/widgets/pull/7",
				})
			case "/repos/acme/widgets/issues/7/labels":
				assert.Equal(t, http.MethodPost, r.Method)
				var payload map[string][]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				labelsPosted = payload["labels"]
				w.WriteHeader(http.StatusOK)
			default:
				t.Errorf("unexpected request to %s", r.URL.Path)
			}
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-token")
		pr, err := client.CreatePullRequest(context.Background(), "acme", "widgets", CreatePullRequestInput{
			Title:  "feat: Fix login redirect",
			Body:   "Automated change.",
			Head:   "aura/story-1",
			Base:   "main",
			Labels: []string{"automated", "aura"},
		})
		require.NoError(t, err)
		assert.Equal(t, 7, pr.Number)
		assert.Equal(t, "https://github.com/acme/widgets/pull/7", pr.HTMLURL)
		assert.Equal(t, []string{"automated", "aura"}, labelsPosted)
	})

	t.Run("label failure is not fatal", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/acme/widgets/pulls" {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"number":   8,
					"html_url": "https://github.com/acme/widgets/pull/8",
				})
				return
			}
			http.Error(w, `{"message": "Validation Failed"}`, http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-token")
		pr, err := client.CreatePullRequest(context.Background(), "acme", "widgets", CreatePullRequestInput{
			Title:  "feat: change",
			Head:   "aura/story-2",
			Base:   "main",
			Labels: []string{"aura"},
		})
		require.NoError(t, err)
		assert.Equal(t, 8, pr.Number)
	})

	t.Run("PR failure is fatal", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message": "Validation Failed"}`, http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		client := newTestClient(server.URL, "test-token")
		_, err := client.CreatePullRequest(context.Background(), "acme", "widgets", CreatePullRequestInput{
			Title: "feat: change",
			Head:  "aura/story-2",
			Base:  "main",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GitHub returned HTTP 422")
	})
}

func TestParseIssueURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		owner   string
		repo    string
		number  int
	}{
		{
			name:   "standard issue URL",
			url:    "https://github.com/acme/widgets/issues/42",
			owner:  "acme",
			repo:   "widgets",
			number: 42,
		},
		{
			name:   "trailing slash",
			url:    "https://github.com/acme/widgets/issues/42/",
			owner:  "acme",
			repo:   "widgets",
			number: 42,
		},
		{
			name:    "pull request URL",
			url:     "https://github.com/acme/widgets/pull/42",
			wantErr: true,
		},
		{
			name:    "non-numeric issue",
			url:     "https://github.com/acme/widgets/issues/latest",
			wantErr: true,
		},
		{
			name:    "missing segments",
			url:     "https://github.com/acme/widgets",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseIssueURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "github", ref.Provider)
			assert.Equal(t, tt.owner, ref.Owner)
			assert.Equal(t, tt.repo, ref.Repo)
			assert.Equal(t, tt.number, ref.Number)
			assert.Equal(t, tt.url, ref.URL)
		})
	}
}
