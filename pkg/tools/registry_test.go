package tools

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	defs := r.List()
	require.NotEmpty(t, defs)

	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "fs.read_file")
	assert.Contains(t, names, "shell.run")
}

func TestExecutor_ExcludeConfirmation(t *testing.T) {
	r := NewRegistry()
	executor := r.NewExecutor(ExecutorOptions{Workspace: t.TempDir(), ExcludeConfirmation: true})

	defs, err := executor.ListTools(context.Background())
	require.NoError(t, err)
	for _, d := range defs {
		assert.False(t, d.RequiresConfirmation, "tool %s should have been filtered", d.Name)
	}

	result, err := executor.Execute(context.Background(), Call{ID: "c1", Name: "shell.run", Arguments: `{"command":"true"}`})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "not available")
}

func TestExecutor_AllowedListOverridesConfirmation(t *testing.T) {
	r := NewRegistry()
	executor := r.NewExecutor(ExecutorOptions{
		Workspace:           t.TempDir(),
		Allowed:             []string{"shell.run"},
		ExcludeConfirmation: true,
	})

	defs, err := executor.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "shell.run", defs[0].Name)
}

func TestExecutor_UnknownTool(t *testing.T) {
	r := NewRegistry()
	executor := r.NewExecutor(ExecutorOptions{Workspace: t.TempDir()})

	result, err := executor.Execute(context.Background(), Call{ID: "c1", Name: "fs.delete_everything"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "fs.delete_everything")
	assert.Contains(t, result.Content, "Available tools")
}

func TestExecutor_ReadWriteListRoundtrip(t *testing.T) {
	ws := t.TempDir()
	r := NewRegistry()
	executor := r.NewExecutor(ExecutorOptions{Workspace: ws})
	ctx := context.Background()

	write, err := executor.Execute(ctx, Call{ID: "c1", Name: "fs.write_file",
		Arguments: `{"path":"src/main.go","content":"package main\n"}`})
	require.NoError(t, err)
	require.False(t, write.IsError, write.Content)

	read, err := executor.Execute(ctx, Call{ID: "c2", Name: "fs.read_file",
		Arguments: `{"path":"src/main.go"}`})
	require.NoError(t, err)
	require.False(t, read.IsError, read.Content)
	assert.Equal(t, "package main\n", read.Content)

	list, err := executor.Execute(ctx, Call{ID: "c3", Name: "fs.list_dir", Arguments: `{"path":"src"}`})
	require.NoError(t, err)
	assert.Contains(t, list.Content, "main.go")
}

func TestExecutor_PathEscapeRejected(t *testing.T) {
	r := NewRegistry()
	executor := r.NewExecutor(ExecutorOptions{Workspace: t.TempDir()})

	result, err := executor.Execute(context.Background(), Call{ID: "c1", Name: "fs.read_file",
		Arguments: `{"path":"../../etc/passwd"}`})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "escapes the workspace")
}

func TestExecutor_Search(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ws, "pkg", "a.go"),
		[]byte("package pkg\n// FIXME: handle nil\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ws, "b.txt"),
		[]byte("nothing here\n"), 0o644))

	r := NewRegistry()
	executor := r.NewExecutor(ExecutorOptions{Workspace: ws})

	result, err := executor.Execute(context.Background(), Call{ID: "c1", Name: "fs.search",
		Arguments: `{"pattern":"FIXME"}`})
	require.NoError(t, err)
	require.False(t, result.IsError, result.Content)
	assert.Contains(t, result.Content, "pkg/a.go:2")
	assert.NotContains(t, result.Content, "b.txt")
}

func TestExecutor_ShellRun(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ws, "hello.txt"), []byte("hi"), 0o644))

	r := NewRegistry()
	executor := r.NewExecutor(ExecutorOptions{Workspace: ws})

	result, err := executor.Execute(context.Background(), Call{ID: "c1", Name: "shell.run",
		Arguments: `{"command":"ls"}`})
	require.NoError(t, err)
	require.False(t, result.IsError, result.Content)
	assert.Contains(t, result.Content, "hello.txt")

	failed, err := executor.Execute(context.Background(), Call{ID: "c2", Name: "shell.run",
		Arguments: `{"command":"exit 3"}`})
	require.NoError(t, err)
	assert.True(t, failed.IsError)
}

func TestExecutor_GitStatus(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	ws := t.TempDir()
	runGitCmd(t, ws, "init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(ws, "new.txt"), []byte("x"), 0o644))

	r := NewRegistry()
	executor := r.NewExecutor(ExecutorOptions{Workspace: ws})

	result, err := executor.Execute(context.Background(), Call{ID: "c1", Name: "git.status"})
	require.NoError(t, err)
	require.False(t, result.IsError, result.Content)
	assert.Contains(t, result.Content, "new.txt")
}

func TestCapOutput(t *testing.T) {
	small := strings.Repeat("a", 100)
	assert.Equal(t, small, capOutput(small))

	big := strings.Repeat("b", maxToolOutputBytes+500)
	capped := capOutput(big)
	assert.Less(t, len(capped), len(big))
	assert.Contains(t, capped, "output truncated")
}

func runGitCmd(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
}
