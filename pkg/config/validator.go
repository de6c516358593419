package config

import (
	"fmt"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateOrchestrator(); err != nil {
		return fmt.Errorf("orchestrator validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w", ErrMissingRequiredField))
		}
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("%w", ErrMissingRequiredField))
		}
		if provider.Temperature != nil && (*provider.Temperature < 0 || *provider.Temperature > 2) {
			return NewValidationError("llm_provider", name, "temperature",
				fmt.Errorf("%w: %v (must be in [0, 2])", ErrInvalidValue, *provider.Temperature))
		}
		// Local endpoints need a URL; hosted providers need a key source.
		if provider.Type == LLMProviderTypeLocal && provider.BaseURL == "" {
			return NewValidationError("llm_provider", name, "base_url",
				fmt.Errorf("%w for local provider", ErrMissingRequiredField))
		}
	}
	return nil
}

func (v *ConfigValidator) validateOrchestrator() error {
	o := v.cfg.Orchestrator
	if o.MaxParallelism < 1 {
		return NewValidationError("orchestrator", "tunables", "max_parallelism",
			fmt.Errorf("%w: %d (must be positive)", ErrInvalidValue, o.MaxParallelism))
	}
	if o.MaxRetries < 0 {
		return NewValidationError("orchestrator", "tunables", "max_retries",
			fmt.Errorf("%w: %d", ErrInvalidValue, o.MaxRetries))
	}
	if o.MaxSteps < 1 {
		return NewValidationError("orchestrator", "tunables", "max_steps",
			fmt.Errorf("%w: %d (must be positive)", ErrInvalidValue, o.MaxSteps))
	}
	if o.IterationTimeout <= 0 {
		return NewValidationError("orchestrator", "tunables", "iteration_timeout",
			fmt.Errorf("%w: %v", ErrInvalidValue, o.IterationTimeout))
	}
	if o.ToolTimeout <= 0 {
		return NewValidationError("orchestrator", "tunables", "tool_timeout",
			fmt.Errorf("%w: %v", ErrInvalidValue, o.ToolTimeout))
	}
	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	if v.cfg.Defaults.Provider != "" && !v.cfg.LLMProviderRegistry.Has(v.cfg.Defaults.Provider) {
		return NewValidationError("defaults", "defaults", "provider",
			fmt.Errorf("LLM provider '%s' not found", v.cfg.Defaults.Provider))
	}
	return nil
}
