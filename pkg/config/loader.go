package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// AuraYAMLConfig represents the complete aura.yaml file structure.
type AuraYAMLConfig struct {
	Server       *ServerYAMLConfig       `yaml:"server"`
	Agents       *AgentsYAMLConfig       `yaml:"agents"`
	Workspace    *WorkspaceYAMLConfig    `yaml:"workspace"`
	Orchestrator *OrchestratorYAMLConfig `yaml:"orchestrator"`
	Gate         *GateYAMLConfig         `yaml:"gate"`
	GitHub       *GitHubYAMLConfig       `yaml:"github"`
	Defaults     *Defaults               `yaml:"defaults"`
}

// ServerYAMLConfig holds HTTP server settings from YAML.
type ServerYAMLConfig struct {
	ListenAddr string `yaml:"listen_addr,omitempty"`
}

// AgentsYAMLConfig holds agent definition loading settings from YAML.
type AgentsYAMLConfig struct {
	Dir   string `yaml:"dir,omitempty"`
	Watch *bool  `yaml:"watch,omitempty"`
}

// WorkspaceYAMLConfig holds worktree layout settings from YAML.
type WorkspaceYAMLConfig struct {
	Root         string `yaml:"root,omitempty"`
	BranchPrefix string `yaml:"branch_prefix,omitempty"`
}

// OrchestratorYAMLConfig holds scheduler tunables from YAML.
// Durations are strings ("90s", "5m") parsed during resolution.
type OrchestratorYAMLConfig struct {
	MaxParallelism          int    `yaml:"max_parallelism,omitempty"`
	MaxRetries              int    `yaml:"max_retries,omitempty"`
	StoryConcurrency        int    `yaml:"story_concurrency,omitempty"`
	MaxSteps                int    `yaml:"max_steps,omitempty"`
	IterationTimeout        string `yaml:"iteration_timeout,omitempty"`
	ToolTimeout             string `yaml:"tool_timeout,omitempty"`
	PollInterval            string `yaml:"poll_interval,omitempty"`
	PollIntervalJitter      string `yaml:"poll_interval_jitter,omitempty"`
	GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout,omitempty"`
}

// GateYAMLConfig holds inter-wave gate settings from YAML.
type GateYAMLConfig struct {
	BuildCommand string `yaml:"build_command,omitempty"`
	TestCommand  string `yaml:"test_command,omitempty"`
	Timeout      string `yaml:"timeout,omitempty"`
}

// GitHubYAMLConfig holds GitHub integration settings from YAML.
type GitHubYAMLConfig struct {
	TokenEnv string   `yaml:"token_env,omitempty"` // Defaults to "GITHUB_TOKEN" if omitted
	PRLabels []string `yaml:"pr_labels,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure.
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir (both optional; built-ins apply)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build the LLM provider registry
//  6. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"agents_dir", cfg.Agents.Dir,
		"workspace_root", cfg.Workspace.Root)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	auraConfig, err := loader.loadAuraYAML()
	if err != nil {
		return nil, NewLoadError("aura.yaml", err)
	}

	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	builtin := GetBuiltinConfig()
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// Resolve orchestrator tunables: merge user YAML over built-in defaults
	// (non-zero values override), then parse durations.
	orchYAML := defaultOrchestratorYAML()
	if auraConfig.Orchestrator != nil {
		if err := mergo.Merge(orchYAML, auraConfig.Orchestrator, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge orchestrator config: %w", err)
		}
	}
	orchestrator, err := resolveOrchestratorConfig(orchYAML)
	if err != nil {
		return nil, err
	}

	defaults := auraConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.Provider == "" {
		defaults.Provider = builtin.DefaultProvider
	}

	return &Config{
		configDir:           configDir,
		Server:              resolveServerConfig(auraConfig.Server),
		Agents:              resolveAgentsConfig(auraConfig.Agents, configDir),
		Workspace:           resolveWorkspaceConfig(auraConfig.Workspace),
		Orchestrator:        orchestrator,
		Gate:                resolveGateConfig(auraConfig.Gate),
		GitHub:              resolveGitHubConfig(auraConfig.GitHub),
		Defaults:            defaults,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	data, err = ExpandEnv(data)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadAuraYAML loads aura.yaml. A missing file is not an error; built-in
// defaults carry a usable local configuration.
func (l *configLoader) loadAuraYAML() (*AuraYAMLConfig, error) {
	var config AuraYAMLConfig

	if err := l.loadYAML("aura.yaml", &config); err != nil {
		if isNotFound(err) {
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// loadLLMProvidersYAML loads llm-providers.yaml. Missing file means
// built-in providers only.
func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	config := LLMProvidersYAMLConfig{
		LLMProviders: make(map[string]LLMProviderConfig),
	}

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		if isNotFound(err) {
			return config.LLMProviders, nil
		}
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveServerConfig resolves server configuration, applying defaults.
func resolveServerConfig(srv *ServerYAMLConfig) *ServerConfig {
	cfg := &ServerConfig{
		ListenAddr: ":8844",
	}
	if srv != nil && srv.ListenAddr != "" {
		cfg.ListenAddr = srv.ListenAddr
	}
	return cfg
}

// resolveAgentsConfig resolves agent loading configuration, applying defaults.
// A relative dir is anchored at the config directory.
func resolveAgentsConfig(a *AgentsYAMLConfig, configDir string) *AgentsConfig {
	cfg := &AgentsConfig{
		Dir:   filepath.Join(configDir, "agents"),
		Watch: true,
	}
	if a == nil {
		return cfg
	}
	if a.Dir != "" {
		if filepath.IsAbs(a.Dir) {
			cfg.Dir = a.Dir
		} else {
			cfg.Dir = filepath.Join(configDir, a.Dir)
		}
	}
	if a.Watch != nil {
		cfg.Watch = *a.Watch
	}
	return cfg
}

// resolveWorkspaceConfig resolves worktree layout, applying defaults.
func resolveWorkspaceConfig(w *WorkspaceYAMLConfig) *WorkspaceConfig {
	cfg := &WorkspaceConfig{
		Root:         defaultWorkspaceRoot(),
		BranchPrefix: "aura/",
	}
	if w == nil {
		return cfg
	}
	if w.Root != "" {
		cfg.Root = w.Root
	}
	if w.BranchPrefix != "" {
		cfg.BranchPrefix = w.BranchPrefix
	}
	return cfg
}

// resolveOrchestratorConfig parses the merged YAML tunables into typed form.
func resolveOrchestratorConfig(o *OrchestratorYAMLConfig) (*OrchestratorConfig, error) {
	cfg := &OrchestratorConfig{
		MaxParallelism:   o.MaxParallelism,
		MaxRetries:       o.MaxRetries,
		StoryConcurrency: o.StoryConcurrency,
		MaxSteps:         o.MaxSteps,
	}

	var err error
	if cfg.IterationTimeout, err = parseDuration("orchestrator.iteration_timeout", o.IterationTimeout); err != nil {
		return nil, err
	}
	if cfg.ToolTimeout, err = parseDuration("orchestrator.tool_timeout", o.ToolTimeout); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = parseDuration("orchestrator.poll_interval", o.PollInterval); err != nil {
		return nil, err
	}
	if cfg.PollIntervalJitter, err = parseDuration("orchestrator.poll_interval_jitter", o.PollIntervalJitter); err != nil {
		return nil, err
	}
	if cfg.GracefulShutdownTimeout, err = parseDuration("orchestrator.graceful_shutdown_timeout", o.GracefulShutdownTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveGateConfig resolves gate policy, applying defaults.
func resolveGateConfig(g *GateYAMLConfig) *GateConfig {
	cfg := &GateConfig{
		Timeout: 10 * time.Minute,
	}
	if g == nil {
		return cfg
	}
	cfg.BuildCommand = g.BuildCommand
	cfg.TestCommand = g.TestCommand
	if g.Timeout != "" {
		if d, err := time.ParseDuration(g.Timeout); err == nil {
			cfg.Timeout = d
		} else {
			slog.Warn("Invalid timeout in gate config, using default",
				"value", g.Timeout,
				"default", cfg.Timeout,
				"error", err)
		}
	}
	return cfg
}

// resolveGitHubConfig resolves GitHub configuration, applying defaults.
func resolveGitHubConfig(gh *GitHubYAMLConfig) *GitHubConfig {
	cfg := &GitHubConfig{
		TokenEnv: "GITHUB_TOKEN",
		PRLabels: []string{"aura"},
	}
	if gh == nil {
		return cfg
	}
	if gh.TokenEnv != "" {
		cfg.TokenEnv = gh.TokenEnv
	}
	if len(gh.PRLabels) > 0 {
		cfg.PRLabels = gh.PRLabels
	}
	return cfg
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", ErrInvalidValue, field, value)
	}
	return d, nil
}

func isNotFound(err error) bool {
	return err != nil && (os.IsNotExist(err) || errors.Is(err, ErrConfigNotFound))
}
