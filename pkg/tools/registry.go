package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Compile-time check that WorkspaceExecutor implements Executor.
var _ Executor = (*WorkspaceExecutor)(nil)

// maxToolOutputBytes bounds stored tool output. Oversized output is cut with
// a marker; transport-level truncation for event streams is stricter and
// happens in the ReAct loop.
const maxToolOutputBytes = 64 * 1024

// Tool couples a Definition with its implementation. Run receives the
// Story's worktree path and pre-parsed arguments.
type Tool struct {
	Definition
	Run func(ctx context.Context, workspace string, args map[string]any) (string, error)
}

// Registry holds the tool catalog.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry creates a registry pre-populated with the built-in workspace tools.
func NewRegistry() *Registry {
	r := &Registry{tools: make(map[string]*Tool)}
	for _, t := range builtinTools() {
		r.Register(t)
	}
	return r
}

// Register adds or replaces a tool by name.
func (r *Registry) Register(t *Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name] = t
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns all tool definitions sorted by name.
func (r *Registry) List() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.Definition)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// ExecutorOptions scope the catalog for a single step execution.
type ExecutorOptions struct {
	// Workspace is the Story's worktree; all tools operate inside it.
	Workspace string

	// Allowed restricts the catalog to the named tools. Empty = all tools.
	Allowed []string

	// ExcludeConfirmation drops tools flagged RequiresConfirmation.
	// Set for autonomous runs without an explicit agent tool list.
	ExcludeConfirmation bool

	// Timeout bounds each tool invocation. Zero = no per-tool timeout.
	Timeout time.Duration
}

// NewExecutor creates an Executor over a filtered view of the registry.
func (r *Registry) NewExecutor(opts ExecutorOptions) *WorkspaceExecutor {
	var allowed map[string]bool
	if len(opts.Allowed) > 0 {
		allowed = make(map[string]bool, len(opts.Allowed))
		for _, name := range opts.Allowed {
			allowed[name] = true
		}
	}
	return &WorkspaceExecutor{
		registry:            r,
		workspace:           opts.Workspace,
		allowed:             allowed,
		excludeConfirmation: opts.ExcludeConfirmation,
		timeout:             opts.Timeout,
	}
}

// WorkspaceExecutor runs built-in tools inside one Story's worktree.
type WorkspaceExecutor struct {
	registry            *Registry
	workspace           string
	allowed             map[string]bool
	excludeConfirmation bool
	timeout             time.Duration
}

// Execute runs a tool call. Unknown or filtered tools are reported in the
// result content so the LLM can self-correct (not as a Go error).
func (e *WorkspaceExecutor) Execute(ctx context.Context, call Call) (*Result, error) {
	tool, err := e.resolve(call.Name)
	if err != nil {
		return &Result{
			CallID:  call.ID,
			Name:    call.Name,
			Content: err.Error(),
			IsError: true,
		}, nil
	}

	args := ParseActionInput(call.Arguments)

	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	output, runErr := tool.Run(runCtx, e.workspace, args)
	if runErr != nil {
		return &Result{
			CallID:  call.ID,
			Name:    call.Name,
			Content: fmt.Sprintf("Tool execution failed: %s", runErr),
			IsError: true,
		}, nil
	}

	return &Result{
		CallID:  call.ID,
		Name:    call.Name,
		Content: capOutput(output),
	}, nil
}

// ListTools returns the definitions visible to this execution, sorted by name.
func (e *WorkspaceExecutor) ListTools(_ context.Context) ([]Definition, error) {
	var defs []Definition
	for _, def := range e.registry.List() {
		if !e.visible(def) {
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Close is a no-op; built-in tools hold no persistent resources.
func (e *WorkspaceExecutor) Close() error { return nil }

func (e *WorkspaceExecutor) resolve(name string) (*Tool, error) {
	tool, ok := e.registry.Get(name)
	if !ok || !e.visible(tool.Definition) {
		available := e.availableNames()
		return nil, fmt.Errorf("tool %q is not available for this execution. Available tools: %s",
			name, strings.Join(available, ", "))
	}
	return tool, nil
}

func (e *WorkspaceExecutor) visible(def Definition) bool {
	if e.allowed != nil {
		return e.allowed[def.Name]
	}
	if e.excludeConfirmation && def.RequiresConfirmation {
		return false
	}
	return true
}

func (e *WorkspaceExecutor) availableNames() []string {
	var names []string
	for _, def := range e.registry.List() {
		if e.visible(def) {
			names = append(names, def.Name)
		}
	}
	return names
}

func capOutput(s string) string {
	if len(s) <= maxToolOutputBytes {
		return s
	}
	return s[:maxToolOutputBytes] + fmt.Sprintf("\n... [output truncated, %d bytes total]", len(s))
}
