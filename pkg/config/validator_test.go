package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	reg := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"openai-default": {
			Type:      LLMProviderTypeOpenAI,
			Model:     "gpt-4o",
			APIKeyEnv: "OPENAI_API_KEY",
		},
	})

	return &Config{
		Server: &ServerConfig{ListenAddr: ":8844"},
		Orchestrator: &OrchestratorConfig{
			MaxParallelism:   4,
			MaxRetries:       2,
			MaxSteps:         10,
			IterationTimeout: 90 * time.Second,
			ToolTimeout:      5 * time.Minute,
			PollInterval:     2 * time.Second,
		},
		Defaults:            &Defaults{Provider: "openai-default"},
		LLMProviderRegistry: reg,
	}
}

func TestValidateAll_Valid(t *testing.T) {
	v := NewValidator(validTestConfig())
	require.NoError(t, v.ValidateAll())
}

func TestValidateAll_LLMProviders(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*LLMProviderConfig)
		wantErr  string
		wantNone bool
	}{
		{
			name:    "missing type",
			mutate:  func(p *LLMProviderConfig) { p.Type = "" },
			wantErr: "type",
		},
		{
			name:    "invalid type",
			mutate:  func(p *LLMProviderConfig) { p.Type = "cohere" },
			wantErr: "type",
		},
		{
			name:    "missing model",
			mutate:  func(p *LLMProviderConfig) { p.Model = "" },
			wantErr: "model",
		},
		{
			name: "temperature out of range",
			mutate: func(p *LLMProviderConfig) {
				temp := 3.5
				p.Temperature = &temp
			},
			wantErr: "temperature",
		},
		{
			name: "temperature in range",
			mutate: func(p *LLMProviderConfig) {
				temp := 0.7
				p.Temperature = &temp
			},
			wantNone: true,
		},
		{
			name: "local without base_url",
			mutate: func(p *LLMProviderConfig) {
				p.Type = LLMProviderTypeLocal
				p.BaseURL = ""
			},
			wantErr: "base_url",
		},
		{
			name: "local with base_url",
			mutate: func(p *LLMProviderConfig) {
				p.Type = LLMProviderTypeLocal
				p.BaseURL = "http://localhost:11434/v1"
			},
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			p, err := cfg.LLMProviderRegistry.Get("openai-default")
			require.NoError(t, err)
			tt.mutate(p)

			v := NewValidator(cfg)
			err = v.ValidateAll()
			if tt.wantNone {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tt.wantErr, vErr.Field)
		})
	}
}

func TestValidateAll_Orchestrator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OrchestratorConfig)
		wantErr string
	}{
		{
			name:    "zero parallelism",
			mutate:  func(o *OrchestratorConfig) { o.MaxParallelism = 0 },
			wantErr: "max_parallelism",
		},
		{
			name:    "negative retries",
			mutate:  func(o *OrchestratorConfig) { o.MaxRetries = -1 },
			wantErr: "max_retries",
		},
		{
			name:    "zero max steps",
			mutate:  func(o *OrchestratorConfig) { o.MaxSteps = 0 },
			wantErr: "max_steps",
		},
		{
			name:    "zero iteration timeout",
			mutate:  func(o *OrchestratorConfig) { o.IterationTimeout = 0 },
			wantErr: "iteration_timeout",
		},
		{
			name:    "zero tool timeout",
			mutate:  func(o *OrchestratorConfig) { o.ToolTimeout = 0 },
			wantErr: "tool_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Orchestrator)

			v := NewValidator(cfg)
			err := v.ValidateAll()
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tt.wantErr, vErr.Field)
		})
	}
}

func TestValidateAll_UnknownDefaultProvider(t *testing.T) {
	cfg := validTestConfig()
	cfg.Defaults.Provider = "ghost"

	v := NewValidator(cfg)
	err := v.ValidateAll()
	require.Error(t, err)
	require.ErrorContains(t, err, "ghost")
}
