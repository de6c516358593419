package agents

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces rapid file events (editor save bursts, git
// checkouts) into one reload.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads the registry when definition files change.
type Watcher struct {
	registry *Registry
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	running bool
}

// NewWatcher creates a watcher over the registry's definition directory.
// A non-positive debounce uses DefaultDebounce.
func NewWatcher(registry *Registry, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{registry: registry, debounce: debounce}
}

// Start begins watching. Idempotent; returns the error from fsnotify setup.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.registry.Dir()); err != nil {
		fsw.Close()
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.watcher = fsw
	w.cancel = cancel
	w.running = true

	go w.run(runCtx)

	slog.Info("Watching agent definitions", "dir", w.registry.Dir())
	return nil
}

// Stop ends watching and releases the fsnotify handle.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	w.cancel()
	w.running = false
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	reload := func() {
		if _, err := w.registry.Reload(); err != nil {
			slog.Error("Agent reload failed", "dir", w.registry.Dir(), "error", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".md") {
				continue
			}

			// Coalesce bursts into one reload after a quiet period.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Agent watcher error", "dir", w.registry.Dir(), "error", err)
		}
	}
}
