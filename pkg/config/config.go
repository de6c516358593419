// Package config provides configuration management for the Aura service:
// server settings, orchestrator tunables, gate policy, workspace layout,
// and the LLM provider registry.
package config

import (
	"fmt"
	"time"
)

// Config is the umbrella configuration object returned by Initialize()
// and passed to services. All settings are resolved (defaults applied,
// durations parsed) by the time it exists.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Server settings
	Server *ServerConfig

	// Agent definition loading
	Agents *AgentsConfig

	// Worktree layout
	Workspace *WorkspaceConfig

	// Scheduler and executor tunables
	Orchestrator *OrchestratorConfig

	// Inter-wave gate policy
	Gate *GateConfig

	// GitHub integration (PRs, issues)
	GitHub *GitHubConfig

	// Default selections applied when a request omits them
	Defaults *Defaults

	// LLM provider catalog
	LLMProviderRegistry *LLMProviderRegistry
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	ListenAddr string
}

// AgentsConfig controls where agent definitions are loaded from and whether
// the directory is watched for changes.
type AgentsConfig struct {
	Dir   string
	Watch bool
}

// WorkspaceConfig controls where story worktrees are created.
type WorkspaceConfig struct {
	// Root is the parent directory for per-story worktrees.
	Root string

	// BranchPrefix is prepended to the story id to form the branch name.
	BranchPrefix string
}

// OrchestratorConfig contains scheduler and executor tunables.
// These are the engine's only timing/budget knobs.
type OrchestratorConfig struct {
	// MaxParallelism is the default per-story concurrency bound for steps
	// within one wave. Stories may override it at creation.
	MaxParallelism int

	// MaxRetries is the autonomous-mode retry budget for a failed step.
	// Total attempts = MaxRetries + 1.
	MaxRetries int

	// StoryConcurrency bounds concurrently running stories across the host.
	// Zero means NumCPU * 2.
	StoryConcurrency int

	// MaxSteps is the default ReAct iteration bound.
	MaxSteps int

	// IterationTimeout bounds a single ReAct iteration (one LLM exchange
	// plus the tool call it requests).
	IterationTimeout time.Duration

	// ToolTimeout bounds a single tool invocation.
	ToolTimeout time.Duration

	// PollInterval is the base interval for claiming runnable stories.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight stories
	// to drain during shutdown.
	GracefulShutdownTimeout time.Duration
}

// ExecuteTimeout derives the whole-run bound for one ReAct execution from
// its step budget.
func (o *OrchestratorConfig) ExecuteTimeout(maxSteps int) time.Duration {
	if maxSteps <= 0 {
		maxSteps = o.MaxSteps
	}
	return time.Duration(maxSteps) * o.IterationTimeout
}

// GateConfig holds the inter-wave gate policy. The scheduler runs the
// configured commands and trusts their exit codes; it never inspects output.
type GateConfig struct {
	// BuildCommand is run first; empty skips the build phase.
	BuildCommand string

	// TestCommand is run after a successful build; empty skips tests.
	TestCommand string

	// Timeout bounds one full gate run (build + test).
	Timeout time.Duration
}

// Enabled reports whether the gate has anything to run.
func (g *GateConfig) Enabled() bool {
	return g.BuildCommand != "" || g.TestCommand != ""
}

// GitHubConfig contains GitHub integration settings.
type GitHubConfig struct {
	// TokenEnv is the environment variable holding the API token.
	TokenEnv string

	// PRLabels are attached to pull requests created by Finalize.
	PRLabels []string
}

// Defaults groups fallback selections applied when requests omit them.
type Defaults struct {
	// Provider is the LLM provider name used when an agent names none.
	Provider string `yaml:"provider"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// DefaultProvider resolves the configured default LLM provider.
func (c *Config) DefaultProvider() (*LLMProviderConfig, error) {
	if c.Defaults == nil || c.Defaults.Provider == "" {
		return nil, fmt.Errorf("%w: defaults.provider", ErrMissingRequiredField)
	}
	return c.LLMProviderRegistry.Get(c.Defaults.Provider)
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}
