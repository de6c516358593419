package agents

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned by Get for unknown agent ids.
var ErrNotFound = errors.New("agent not found")

// Capabilities recognized by the routing vocabulary. ingest:* capabilities
// are matched by prefix.
var knownCapabilities = map[string]bool{
	"analysis":      true,
	"planning":      true,
	"coding":        true,
	"testing":       true,
	"review":        true,
	"documentation": true,
	"chat":          true,
	"fixing":        true,
}

func knownCapability(capability string) bool {
	return knownCapabilities[capability] || strings.HasPrefix(capability, "ingest:")
}

// AgentsChanged describes the diff produced by a Reload.
type AgentsChanged struct {
	Added   []string
	Removed []string
	Updated []string
}

// Empty reports whether the reload changed nothing.
func (c AgentsChanged) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Updated) == 0
}

// Registry holds the published agent definitions with thread-safe access.
// Reload swaps the whole map, so readers always see a consistent snapshot
// and in-flight executions keep the *Definition they resolved.
type Registry struct {
	dir string

	mu     sync.RWMutex
	agents map[string]*Definition

	onChange func(AgentsChanged)
}

// NewRegistry creates a registry over a directory of Markdown definitions.
// Call Load before first use.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:    dir,
		agents: make(map[string]*Definition),
	}
}

// Dir returns the watched definition directory.
func (r *Registry) Dir() string {
	return r.dir
}

// OnChange registers a callback invoked after every Reload that changed the
// agent set. Must be set before the watcher starts.
func (r *Registry) OnChange(fn func(AgentsChanged)) {
	r.onChange = fn
}

// Load performs the initial scan. Unlike Reload it fails when the directory
// itself is unreadable, since starting without agents is an operator error
// worth surfacing immediately.
func (r *Registry) Load() error {
	agents, err := scanDir(r.dir)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.agents = agents
	r.mu.Unlock()

	if len(agents) == 0 {
		slog.Warn("No agent definitions found; every routing request will fail", "dir", r.dir)
	} else {
		slog.Info("Loaded agent definitions", "dir", r.dir, "count", len(agents))
	}
	return nil
}

// Reload re-scans the definition directory and swaps the published set.
// Per-file parse failures are logged and skip only that file.
func (r *Registry) Reload() (AgentsChanged, error) {
	next, err := scanDir(r.dir)
	if err != nil {
		return AgentsChanged{}, err
	}

	r.mu.Lock()
	prev := r.agents
	r.agents = next
	r.mu.Unlock()

	changed := diffAgents(prev, next)
	if !changed.Empty() {
		slog.Info("Agent definitions reloaded",
			"added", changed.Added, "removed", changed.Removed, "updated", changed.Updated)
		if r.onChange != nil {
			r.onChange(changed)
		}
	}
	return changed, nil
}

// Get retrieves an agent by id.
func (r *Registry) Get(id string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.agents[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return def, nil
}

// Len returns the number of loaded agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// ListAll returns every agent ordered by priority ascending, id as the
// stable tiebreak.
func (r *Registry) ListAll() []*Definition {
	r.mu.RLock()
	defs := make([]*Definition, 0, len(r.agents))
	for _, d := range r.agents {
		defs = append(defs, d)
	}
	r.mu.RUnlock()

	sortByPriority(defs)
	return defs
}

// GetByCapability returns the agents providing a capability, filtered by the
// language hint, ordered by priority ascending with a stable id tiebreak.
// Unknown capabilities are accepted but logged.
func (r *Registry) GetByCapability(capability, languageHint string) []*Definition {
	if !knownCapability(capability) {
		slog.Warn("Routing request for unknown capability", "capability", capability)
	}

	r.mu.RLock()
	var defs []*Definition
	for _, d := range r.agents {
		if d.HasCapability(capability) && d.MatchesLanguage(languageHint) {
			defs = append(defs, d)
		}
	}
	r.mu.RUnlock()

	sortByPriority(defs)
	return defs
}

// GetBestForCapability returns the highest-priority match, or nil when no
// agent provides the capability for that language.
func (r *Registry) GetBestForCapability(capability, languageHint string) *Definition {
	matches := r.GetByCapability(capability, languageHint)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

func sortByPriority(defs []*Definition) {
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Priority != defs[j].Priority {
			return defs[i].Priority < defs[j].Priority
		}
		return defs[i].ID < defs[j].ID
	})
}

// scanDir parses every .md file in dir into a fresh definition map.
func scanDir(dir string) (map[string]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent directory %s: %w", dir, err)
	}

	agents := make(map[string]*Definition)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		def, err := ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			slog.Warn("Skipping unparseable agent definition", "file", entry.Name(), "error", err)
			continue
		}
		agents[def.ID] = def
	}
	return agents, nil
}

func diffAgents(prev, next map[string]*Definition) AgentsChanged {
	var changed AgentsChanged
	for id, def := range next {
		old, ok := prev[id]
		switch {
		case !ok:
			changed.Added = append(changed.Added, id)
		case !reflect.DeepEqual(old, def):
			changed.Updated = append(changed.Updated, id)
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			changed.Removed = append(changed.Removed, id)
		}
	}
	sort.Strings(changed.Added)
	sort.Strings(changed.Removed)
	sort.Strings(changed.Updated)
	return changed
}
