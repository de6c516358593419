package agents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAgent(t *testing.T, dir, id, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".md"), []byte(body), 0o644))
}

func agentDef(name string, priority int, capabilities, languages []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n## Metadata\n- Priority: %d\n\n## Capabilities\n", name, priority)
	for _, c := range capabilities {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	sb.WriteString("\n## Languages\n")
	for _, l := range languages {
		fmt.Fprintf(&sb, "- %s\n", l)
	}
	sb.WriteString("\n## System Prompt\nYou handle assigned work.\n")
	return sb.String()
}

func TestRegistry_LoadAndListAll(t *testing.T) {
	dir := t.TempDir()
	writeAgent(t, dir, "generalist", agentDef("Generalist", 50, []string{"coding"}, nil))
	writeAgent(t, dir, "specialist", agentDef("Specialist", 10, []string{"coding"}, []string{"go"}))
	writeAgent(t, dir, "reviewer", agentDef("Reviewer", 20, []string{"review"}, nil))

	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())
	require.Equal(t, 3, reg.Len())

	all := reg.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "specialist", all[0].ID)
	assert.Equal(t, "reviewer", all[1].ID)
	assert.Equal(t, "generalist", all[2].ID)
}

func TestRegistry_Get(t *testing.T) {
	dir := t.TempDir()
	writeAgent(t, dir, "reviewer", agentDef("Reviewer", 20, []string{"review"}, nil))

	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())

	def, err := reg.Get("reviewer")
	require.NoError(t, err)
	assert.Equal(t, "Reviewer", def.Name)

	_, err = reg.Get("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_GetByCapability(t *testing.T) {
	dir := t.TempDir()
	writeAgent(t, dir, "go-coder", agentDef("Go Coder", 10, []string{"coding"}, []string{"go"}))
	writeAgent(t, dir, "py-coder", agentDef("Python Coder", 10, []string{"coding"}, []string{"python"}))
	writeAgent(t, dir, "any-coder", agentDef("Any Coder", 30, []string{"coding"}, nil))
	writeAgent(t, dir, "tester", agentDef("Tester", 5, []string{"testing"}, nil))

	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())

	ids := func(defs []*Definition) []string {
		out := make([]string, len(defs))
		for i, d := range defs {
			out[i] = d.ID
		}
		return out
	}

	// No hint: every coding agent, priority order with id tiebreak.
	assert.Equal(t, []string{"go-coder", "py-coder", "any-coder"},
		ids(reg.GetByCapability("coding", "")))

	// Language hint: matching language or polyglot.
	assert.Equal(t, []string{"go-coder", "any-coder"},
		ids(reg.GetByCapability("coding", "go")))

	// Polyglot only.
	assert.Equal(t, []string{"any-coder"},
		ids(reg.GetByCapability("coding", "rust")))

	assert.Empty(t, reg.GetByCapability("documentation", ""))
	assert.Empty(t, reg.GetByCapability("not-a-capability", ""))
}

func TestRegistry_GetBestForCapability(t *testing.T) {
	dir := t.TempDir()
	writeAgent(t, dir, "beta", agentDef("Beta", 10, []string{"coding"}, nil))
	writeAgent(t, dir, "alpha", agentDef("Alpha", 10, []string{"coding"}, nil))
	writeAgent(t, dir, "fallback", agentDef("Fallback", 90, []string{"coding"}, nil))

	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())

	// Same priority resolves by id, deterministically.
	best := reg.GetBestForCapability("coding", "")
	require.NotNil(t, best)
	assert.Equal(t, "alpha", best.ID)

	assert.Nil(t, reg.GetBestForCapability("planning", ""))
}

func TestRegistry_ReloadDiff(t *testing.T) {
	dir := t.TempDir()
	writeAgent(t, dir, "keep", agentDef("Keep", 10, []string{"coding"}, nil))
	writeAgent(t, dir, "gone", agentDef("Gone", 10, []string{"review"}, nil))
	writeAgent(t, dir, "edited", agentDef("Before", 10, []string{"testing"}, nil))

	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())

	var notified []AgentsChanged
	reg.OnChange(func(c AgentsChanged) { notified = append(notified, c) })

	require.NoError(t, os.Remove(filepath.Join(dir, "gone.md")))
	writeAgent(t, dir, "edited", agentDef("After", 15, []string{"testing"}, nil))
	writeAgent(t, dir, "fresh", agentDef("Fresh", 10, []string{"chat"}, nil))

	changed, err := reg.Reload()
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, changed.Added)
	assert.Equal(t, []string{"gone"}, changed.Removed)
	assert.Equal(t, []string{"edited"}, changed.Updated)
	require.Len(t, notified, 1)

	// A no-op reload emits nothing.
	changed, err = reg.Reload()
	require.NoError(t, err)
	assert.True(t, changed.Empty())
	assert.Len(t, notified, 1)
}

func TestRegistry_BadFileSkipsOnlyItself(t *testing.T) {
	dir := t.TempDir()
	writeAgent(t, dir, "good", agentDef("Good", 10, []string{"coding"}, nil))
	writeAgent(t, dir, "broken", "## Metadata\n- Priority: soon\n")

	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())

	assert.Equal(t, 1, reg.Len())
	_, err := reg.Get("good")
	assert.NoError(t, err)
	_, err = reg.Get("broken")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_ReloadKeepsResolvedSnapshots(t *testing.T) {
	dir := t.TempDir()
	writeAgent(t, dir, "solo", agentDef("Before", 10, []string{"coding"}, nil))

	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())

	resolved, err := reg.Get("solo")
	require.NoError(t, err)

	writeAgent(t, dir, "solo", agentDef("After", 10, []string{"coding"}, nil))
	_, err = reg.Reload()
	require.NoError(t, err)

	// The definition resolved before the reload is untouched.
	assert.Equal(t, "Before", resolved.Name)

	current, err := reg.Get("solo")
	require.NoError(t, err)
	assert.Equal(t, "After", current.Name)
}

func TestRegistry_MissingDirFailsLoad(t *testing.T) {
	reg := NewRegistry(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, reg.Load())
}
