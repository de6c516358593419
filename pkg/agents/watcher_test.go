package agents

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnChanges(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())
	require.Equal(t, 0, reg.Len())

	w := NewWatcher(reg, 20*time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer func() { require.NoError(t, w.Stop()) }()

	writeAgent(t, dir, "late-arrival", agentDef("Late Arrival", 10, []string{"coding"}, nil))
	require.Eventually(t, func() bool {
		_, err := reg.Get("late-arrival")
		return err == nil
	}, 3*time.Second, 25*time.Millisecond, "expected watcher to pick up the new definition")

	require.NoError(t, os.Remove(filepath.Join(dir, "late-arrival.md")))
	require.Eventually(t, func() bool {
		_, err := reg.Get("late-arrival")
		return err != nil
	}, 3*time.Second, 25*time.Millisecond, "expected watcher to drop the removed definition")
}

func TestWatcher_IgnoresNonDefinitionFiles(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(dir)
	require.NoError(t, reg.Load())

	w := NewWatcher(reg, 20*time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer func() { require.NoError(t, w.Stop()) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("not an agent"), 0o644))
	time.Sleep(150 * time.Millisecond)
	require.Equal(t, 0, reg.Len())

	// Double Start is a no-op; Stop twice is safe.
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
