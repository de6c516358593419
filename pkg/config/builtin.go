package config

import (
	"os"
	"path/filepath"
	"sync"
)

// BuiltinConfig holds all built-in configuration data: the default LLM
// providers and fallback selections that make a bare config directory usable.
type BuiltinConfig struct {
	LLMProviders    map[string]LLMProviderConfig
	DefaultProvider string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders:    initBuiltinLLMProviders(),
		DefaultProvider: "openai-default",
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-default": {
			Type:      LLMProviderTypeOpenAI,
			Model:     "gpt-4o",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		"anthropic-default": {
			Type:      LLMProviderTypeAnthropic,
			Model:     "claude-sonnet-4-5",
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
		"google-default": {
			Type:      LLMProviderTypeGoogle,
			Model:     "gemini-2.5-flash",
			APIKeyEnv: "GOOGLE_API_KEY",
		},
	}
}

// mergeLLMProviders merges built-in and user-defined providers
// (user overrides built-in on name collision).
func mergeLLMProviders(builtin map[string]LLMProviderConfig, user map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	merged := make(map[string]*LLMProviderConfig, len(builtin)+len(user))
	for name := range builtin {
		cfg := builtin[name]
		merged[name] = &cfg
	}
	for name := range user {
		cfg := user[name]
		merged[name] = &cfg
	}
	return merged
}

// defaultOrchestratorYAML returns the built-in scheduler tunables in YAML
// shape so user overrides merge over them.
func defaultOrchestratorYAML() *OrchestratorYAMLConfig {
	return &OrchestratorYAMLConfig{
		MaxParallelism:          4,
		MaxRetries:              2,
		StoryConcurrency:        0, // resolved to NumCPU*2 by the pool
		MaxSteps:                10,
		IterationTimeout:        "90s",
		ToolTimeout:             "5m",
		PollInterval:            "2s",
		PollIntervalJitter:      "500ms",
		GracefulShutdownTimeout: "30s",
	}
}

// defaultWorkspaceRoot places worktrees under the user's home directory,
// falling back to the system temp dir when home cannot be resolved.
func defaultWorkspaceRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "aura", "worktrees")
	}
	return filepath.Join(home, ".aura", "worktrees")
}
