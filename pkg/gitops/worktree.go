// Package gitops shells out to git for story worktree lifecycle operations
// and talks to the GitHub REST API for issues and pull requests.
package gitops

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Git runs git commands for story worktrees. Stateless; safe for
// concurrent use.
type Git struct{}

// New creates a Git runner.
func New() *Git {
	return &Git{}
}

func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w, output: %s",
			strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

// CreateWorktree creates a worktree at worktreePath with a new branch off
// the repository's current HEAD.
func (g *Git) CreateWorktree(ctx context.Context, repoPath, worktreePath, branch string) error {
	if err := os.MkdirAll(filepath.Dir(worktreePath), 0o755); err != nil {
		return fmt.Errorf("failed to create workspace root: %w", err)
	}
	_, err := run(ctx, repoPath, "worktree", "add", "-b", branch, worktreePath)
	return err
}

// RemoveWorktree force-removes the worktree and prunes stale registrations.
func (g *Git) RemoveWorktree(ctx context.Context, repoPath, worktreePath string) error {
	if _, err := run(ctx, repoPath, "worktree", "remove", "--force", worktreePath); err != nil {
		return err
	}
	_, _ = run(ctx, repoPath, "worktree", "prune")
	return nil
}

// DeleteBranch deletes the story branch. Call after RemoveWorktree; git
// refuses to delete a branch that is checked out in a worktree.
func (g *Git) DeleteBranch(ctx context.Context, repoPath, branch string) error {
	_, err := run(ctx, repoPath, "branch", "-D", branch)
	return err
}

// HasChanges reports whether the worktree has uncommitted changes,
// including untracked files.
func (g *Git) HasChanges(ctx context.Context, worktreePath string) (bool, error) {
	out, err := run(ctx, worktreePath, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CommitAll stages and commits everything in the worktree. skipHooks adds
// --no-verify so repository hooks cannot block automated commits.
func (g *Git) CommitAll(ctx context.Context, worktreePath, message string, skipHooks bool) error {
	if _, err := run(ctx, worktreePath, "add", "-A"); err != nil {
		return err
	}
	args := []string{"commit", "-m", message}
	if skipHooks {
		args = append(args, "--no-verify")
	}
	_, err := run(ctx, worktreePath, args...)
	return err
}

// Push pushes the branch to origin, setting upstream on first push.
func (g *Git) Push(ctx context.Context, worktreePath, branch string) error {
	_, err := run(ctx, worktreePath, "push", "--set-upstream", "origin", branch)
	return err
}

// CurrentBranch returns the branch checked out in the worktree.
func (g *Git) CurrentBranch(ctx context.Context, worktreePath string) (string, error) {
	out, err := run(ctx, worktreePath, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// OriginURL returns the fetch URL of the origin remote.
func (g *Git) OriginURL(ctx context.Context, repoPath string) (string, error) {
	out, err := run(ctx, repoPath, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// DefaultBranch resolves origin's default branch, falling back to main when
// the remote HEAD is not recorded locally.
func (g *Git) DefaultBranch(ctx context.Context, repoPath string) string {
	out, err := run(ctx, repoPath, "symbolic-ref", "--short", "refs/remotes/origin/HEAD")
	if err != nil {
		return "main"
	}
	return strings.TrimPrefix(strings.TrimSpace(out), "origin/")
}
