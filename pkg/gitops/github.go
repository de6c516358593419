package gitops

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/johnazariah/aura-sub009/pkg/models"
)

const defaultAPIBaseURL = "https://api.github.com"

// Issue is the subset of the GitHub issue payload the engine consumes.
type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

// PullRequest is the subset of the GitHub pull request payload the engine
// consumes.
type PullRequest struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}

// CreatePullRequestInput describes the pull request to open for a story
// branch.
type CreatePullRequestInput struct {
	Title  string
	Body   string
	Head   string
	Base   string
	Labels []string
}

// GitHubClient provides HTTP access to the GitHub REST API. An empty token
// limits the client to public reads.
type GitHubClient struct {
	httpClient *http.Client
	token      string
	baseURL    string
}

// NewGitHubClient creates a client with a 30-second timeout.
func NewGitHubClient(token string) *GitHubClient {
	return NewGitHubClientForBase(token, defaultAPIBaseURL)
}

// NewGitHubClientForBase targets a non-default API base URL, such as a
// GitHub Enterprise instance.
func NewGitHubClientForBase(token, baseURL string) *GitHubClient {
	return &GitHubClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchIssue retrieves a single issue.
func (c *GitHubClient) FetchIssue(ctx context.Context, owner, repo string, number int) (*Issue, error) {
	var issue Issue
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number)
	if err := c.do(ctx, http.MethodGet, path, nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CommentOnIssue posts a comment on an issue.
func (c *GitHubClient) CommentOnIssue(ctx context.Context, owner, repo string, number int, body string) error {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d/comments", owner, repo, number)
	return c.do(ctx, http.MethodPost, path, map[string]string{"body": body}, nil)
}

// CloseIssue marks an issue closed.
func (c *GitHubClient) CloseIssue(ctx context.Context, owner, repo string, number int) error {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number)
	return c.do(ctx, http.MethodPatch, path, map[string]string{"state": "closed"}, nil)
}

// CreatePullRequest opens a pull request and attaches labels. A label
// failure is logged, not fatal; the pull request exists either way.
func (c *GitHubClient) CreatePullRequest(ctx context.Context, owner, repo string, in CreatePullRequestInput) (*PullRequest, error) {
	var pr PullRequest
	payload := map[string]string{
		"title": in.Title,
		"body":  in.Body,
		"head":  in.Head,
		"base":  in.Base,
	}
	path := fmt.Sprintf("/repos/%s/%s/pulls", owner, repo)
	if err := c.do(ctx, http.MethodPost, path, payload, &pr); err != nil {
		return nil, err
	}
	if len(in.Labels) > 0 {
		labelPath := fmt.Sprintf("/repos/%s/%s/issues/%d/labels", owner, repo, pr.Number)
		if err := c.do(ctx, http.MethodPost, labelPath, map[string][]string{"labels": in.Labels}, nil); err != nil {
			slog.Warn("Failed to label pull request", "pr", pr.HTMLURL, "error", err)
		}
	}
	return &pr, nil
}

func (c *GitHubClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GitHub returned HTTP %d for %s %s: %s",
			resp.StatusCode, method, path, strings.TrimSpace(string(detail)))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *GitHubClient) setAuthHeader(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// ParseIssueURL extracts owner, repository, and number from a GitHub issue
// URL such as https://github.com/acme/widgets/issues/42.
func ParseIssueURL(rawURL string) (*models.IssueRef, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid issue URL: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 || parts[2] != "issues" {
		return nil, fmt.Errorf("unsupported issue URL format: %s", rawURL)
	}
	number, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("invalid issue number in URL %s: %w", rawURL, err)
	}
	return &models.IssueRef{
		Provider: "github",
		Owner:    parts[0],
		Repo:     parts[1],
		Number:   number,
		URL:      rawURL,
	}, nil
}

// ParseRepoURL extracts owner and repository from a git remote URL,
// accepting both https and ssh forms.
func ParseRepoURL(remote string) (owner, repo string, err error) {
	remote = strings.TrimSuffix(strings.TrimSpace(remote), ".git")

	if after, ok := strings.CutPrefix(remote, "git@"); ok {
		// git@github.com:owner/repo
		_, path, found := strings.Cut(after, ":")
		if !found {
			return "", "", fmt.Errorf("unsupported remote URL format: %s", remote)
		}
		parts := strings.Split(strings.Trim(path, "/"), "/")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("unsupported remote URL format: %s", remote)
		}
		return parts[0], parts[1], nil
	}

	u, err := url.Parse(remote)
	if err != nil {
		return "", "", fmt.Errorf("invalid remote URL: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("unsupported remote URL format: %s", remote)
	}
	return parts[0], parts[1], nil
}
