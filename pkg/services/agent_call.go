package services

import (
	"context"
	"fmt"

	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/react"
)

// ResolveProvider resolves the LLM provider configuration for an agent:
// the agent's named provider (or the configured default) with the agent's
// model and temperature overrides applied to a copy.
func ResolveProvider(cfg *config.Config, def *agents.Definition) (*config.LLMProviderConfig, error) {
	var base *config.LLMProviderConfig
	var err error
	if def.Provider != "" {
		base, err = cfg.LLMProviderRegistry.Get(def.Provider)
	} else {
		base, err = cfg.DefaultProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", def.ID, err)
	}

	resolved := *base
	if def.Model != "" {
		resolved.Model = def.Model
	}
	if def.Temperature != nil {
		resolved.Temperature = def.Temperature
	}
	return &resolved, nil
}

// callAgentDirect performs a single no-tools LLM call with the agent's
// system prompt. Used for analysis, planning, and chat agents.
func callAgentDirect(ctx context.Context, client llm.Client, cfg *config.Config,
	def *agents.Definition, storyID string, task react.Task) (*llm.Response, error) {

	provider, err := ResolveProvider(cfg, def)
	if err != nil {
		return nil, err
	}
	resp, err := llm.Call(ctx, client, &llm.GenerateInput{
		StoryID:  storyID,
		Messages: react.BuildDirectMessages(def.SystemPrompt, task),
		Config:   provider,
	})
	if err != nil {
		return nil, NewLLMError(err)
	}
	return resp, nil
}
