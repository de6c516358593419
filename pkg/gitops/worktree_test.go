package gitops

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func mustGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, output)
	return string(output)
}

func initTestRepo(t *testing.T, branch string) string {
	t.Helper()
	dir := t.TempDir()
	mustGit(t, dir, "init", "-b", branch)
	mustGit(t, dir, "config", "user.email", "dev@example.com")
	mustGit(t, dir, "config", "user.name", "Aura Dev")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Fixture\n"), 0o644))
	mustGit(t, dir, "add", ".")
	mustGit(t, dir, "commit", "-m", "initial commit")
	return dir
}

func TestGit_WorktreeLifecycle(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	repo := initTestRepo(t, "main")
	g := New()

	worktree := filepath.Join(t.TempDir(), "stories", "story-1")
	require.NoError(t, g.CreateWorktree(ctx, repo, worktree, "aura/story-1"))

	branch, err := g.CurrentBranch(ctx, worktree)
	require.NoError(t, err)
	assert.Equal(t, "aura/story-1", branch)

	changed, err := g.HasChanges(ctx, worktree)
	require.NoError(t, err)
	assert.False(t, changed, "fresh worktree should be clean")

	require.NoError(t, os.WriteFile(filepath.Join(worktree, "feature.go"), []byte("package feature\n"), 0o644))
	changed, err = g.HasChanges(ctx, worktree)
	require.NoError(t, err)
	assert.True(t, changed, "untracked file should count as a change")

	require.NoError(t, g.CommitAll(ctx, worktree, "add feature", false))
	changed, err = g.HasChanges(ctx, worktree)
	require.NoError(t, err)
	assert.False(t, changed, "committed worktree should be clean")

	require.NoError(t, g.RemoveWorktree(ctx, repo, worktree))
	_, err = os.Stat(worktree)
	assert.True(t, os.IsNotExist(err), "worktree directory should be gone")

	require.NoError(t, g.DeleteBranch(ctx, repo, "aura/story-1"))
	assert.NotContains(t, mustGit(t, repo, "branch", "--list", "aura/story-1"), "aura/story-1")
}

func TestGit_CreateWorktreeDuplicateBranch(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	repo := initTestRepo(t, "main")
	g := New()

	first := filepath.Join(t.TempDir(), "story-a")
	require.NoError(t, g.CreateWorktree(ctx, repo, first, "aura/dup"))

	second := filepath.Join(t.TempDir(), "story-b")
	err := g.CreateWorktree(ctx, repo, second, "aura/dup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output:", "error should carry git output")
}

func TestGit_CommitAllSkipsHooks(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	repo := initTestRepo(t, "main")
	hook := filepath.Join(repo, ".git", "hooks", "pre-commit")
	require.NoError(t, os.WriteFile(hook, []byte("#!/bin/sh\nexit 1\n"), 0o755))

	g := New()
	require.NoError(t, os.WriteFile(filepath.Join(repo, "blocked.txt"), []byte("x\n"), 0o644))

	err := g.CommitAll(ctx, repo, "blocked by hook", false)
	require.Error(t, err, "failing pre-commit hook should block the commit")

	require.NoError(t, g.CommitAll(ctx, repo, "hooks skipped", true))
}

func TestGit_Push(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	repo := initTestRepo(t, "main")
	origin := t.TempDir()
	mustGit(t, origin, "init", "--bare")
	mustGit(t, repo, "remote", "add", "origin", origin)

	g := New()
	worktree := filepath.Join(t.TempDir(), "story-2")
	require.NoError(t, g.CreateWorktree(ctx, repo, worktree, "aura/story-2"))
	require.NoError(t, os.WriteFile(filepath.Join(worktree, "change.txt"), []byte("done\n"), 0o644))
	require.NoError(t, g.CommitAll(ctx, worktree, "story change", true))
	require.NoError(t, g.Push(ctx, worktree, "aura/story-2"))

	assert.Contains(t, mustGit(t, origin, "branch", "--list", "aura/story-2"), "aura/story-2")
}

func TestGit_DefaultBranch(t *testing.T) {
	requireGit(t)
	ctx := context.Background()
	g := New()

	t.Run("falls back to main without a remote HEAD", func(t *testing.T) {
		repo := initTestRepo(t, "main")
		assert.Equal(t, "main", g.DefaultBranch(ctx, repo))
	})

	t.Run("resolves the recorded remote HEAD", func(t *testing.T) {
		repo := initTestRepo(t, "trunk")
		origin := t.TempDir()
		mustGit(t, origin, "init", "--bare")
		mustGit(t, repo, "remote", "add", "origin", origin)
		mustGit(t, repo, "push", "-u", "origin", "trunk")
		mustGit(t, repo, "remote", "set-head", "origin", "trunk")
		assert.Equal(t, "trunk", g.DefaultBranch(ctx, repo))
	})
}
