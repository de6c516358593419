package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitialize_EmptyDirUsesBuiltins(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, ":8844", cfg.Server.ListenAddr)
	require.Equal(t, 4, cfg.Orchestrator.MaxParallelism)
	require.Equal(t, 2, cfg.Orchestrator.MaxRetries)
	require.Equal(t, 10, cfg.Orchestrator.MaxSteps)
	require.Equal(t, 90*time.Second, cfg.Orchestrator.IterationTimeout)
	require.Equal(t, 5*time.Minute, cfg.Orchestrator.ToolTimeout)
	require.True(t, cfg.Agents.Watch)
	require.Equal(t, filepath.Join(dir, "agents"), cfg.Agents.Dir)
	require.Equal(t, "aura/", cfg.Workspace.BranchPrefix)
	require.False(t, cfg.Gate.Enabled())

	// Built-in providers present
	require.True(t, cfg.LLMProviderRegistry.Has("openai-default"))
	require.True(t, cfg.LLMProviderRegistry.Has("anthropic-default"))
	require.Equal(t, "openai-default", cfg.Defaults.Provider)
}

func TestInitialize_UserOverridesMergeOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "aura.yaml", `
server:
  listen_addr: ":9000"
orchestrator:
  max_parallelism: 8
  iteration_timeout: 30s
gate:
  build_command: "make build"
  test_command: "make test"
  timeout: 20m
workspace:
  branch_prefix: "feature/"
defaults:
  provider: anthropic-default
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Server.ListenAddr)
	require.Equal(t, 8, cfg.Orchestrator.MaxParallelism)
	require.Equal(t, 30*time.Second, cfg.Orchestrator.IterationTimeout)
	// Unset values keep their defaults through the merge
	require.Equal(t, 2, cfg.Orchestrator.MaxRetries)
	require.Equal(t, 10, cfg.Orchestrator.MaxSteps)

	require.Equal(t, "make build", cfg.Gate.BuildCommand)
	require.Equal(t, "make test", cfg.Gate.TestCommand)
	require.Equal(t, 20*time.Minute, cfg.Gate.Timeout)
	require.True(t, cfg.Gate.Enabled())

	require.Equal(t, "feature/", cfg.Workspace.BranchPrefix)
	require.Equal(t, "anthropic-default", cfg.Defaults.Provider)
}

func TestInitialize_UserProvidersMergeAndOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  openai-default:
    type: openai
    model: gpt-4o-mini
    api_key_env: OPENAI_API_KEY
  ollama:
    type: local
    model: qwen2.5-coder
    base_url: http://localhost:11434/v1
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// User entry overrides the built-in with the same name
	p, err := cfg.LLMProviderRegistry.Get("openai-default")
	require.NoError(t, err)
	require.Equal(t, "gpt-4o-mini", p.Model)

	// New entry added alongside built-ins
	require.True(t, cfg.LLMProviderRegistry.Has("ollama"))
	require.True(t, cfg.LLMProviderRegistry.Has("google-default"))
}

func TestInitialize_EnvExpansionInProviders(t *testing.T) {
	t.Setenv("TEST_AURA_MODEL", "gpt-codex")

	dir := t.TempDir()
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  custom:
    type: openai
    model: "{{.TEST_AURA_MODEL}}"
    api_key_env: OPENAI_API_KEY
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	p, err := cfg.LLMProviderRegistry.Get("custom")
	require.NoError(t, err)
	require.Equal(t, "gpt-codex", p.Model)
}

func TestInitialize_InvalidProviderTypeFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  broken:
    type: cohere
    model: command-r
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	require.ErrorContains(t, err, "broken")
}

func TestInitialize_MissingModelFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  nomodel:
    type: openai
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "model", vErr.Field)
}

func TestInitialize_UnknownDefaultProviderFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "aura.yaml", `
defaults:
  provider: does-not-exist
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	require.ErrorContains(t, err, "does-not-exist")
}

func TestInitialize_BadDurationFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "aura.yaml", `
orchestrator:
  tool_timeout: "sometime"
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitialize_MalformedYAMLFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "aura.yaml", "server: [not: valid")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, "aura.yaml", loadErr.File)
}

func TestExecuteTimeout(t *testing.T) {
	o := &OrchestratorConfig{MaxSteps: 10, IterationTimeout: 90 * time.Second}

	require.Equal(t, 15*time.Minute, o.ExecuteTimeout(0))
	require.Equal(t, 3*90*time.Second, o.ExecuteTimeout(3))
}
