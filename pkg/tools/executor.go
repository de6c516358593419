// Package tools provides the built-in workspace tool catalog and the
// executor contract used by the ReAct loop. Tools operate inside a Story's
// worktree; destructive tools are flagged so autonomous runs can exclude them.
package tools

import "context"

// Executor abstracts tool execution for the ReAct loop.
type Executor interface {
	// Execute runs a single tool call and returns the result.
	// Tool failures are reported in the result (IsError=true), not as Go
	// errors; a Go error means the executor itself broke.
	Execute(ctx context.Context, call Call) (*Result, error)

	// ListTools returns the tool definitions available to this execution.
	// Returns nil if no tools are available.
	ListTools(ctx context.Context) ([]Definition, error)

	// Close releases any held resources.
	Close() error
}

// Definition describes one tool in the catalog.
type Definition struct {
	Name             string // "group.tool" format, e.g. "fs.read_file"
	Description      string
	ParametersSchema string   // JSON Schema
	Categories       []string // e.g. "filesystem", "shell", "git"

	// RequiresConfirmation marks tools that mutate state outside the
	// worktree or run arbitrary commands. Autonomous runs exclude these
	// unless the agent names them explicitly.
	RequiresConfirmation bool
}

// Call is a single tool invocation request.
type Call struct {
	ID        string
	Name      string
	Arguments string // raw action input text
}

// Result is the output of a tool execution.
type Result struct {
	CallID  string
	Name    string
	Content string
	IsError bool
}
