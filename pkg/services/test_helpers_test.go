package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/llm"
)

// scriptedLLM returns canned text replies in call order. Safe for
// concurrent use.
type scriptedLLM struct {
	mu      sync.Mutex
	replies []string
	calls   int
}

func (s *scriptedLLM) Generate(_ context.Context, _ *llm.GenerateInput) (<-chan llm.Chunk, error) {
	s.mu.Lock()
	idx := s.calls
	s.calls++
	s.mu.Unlock()

	if idx >= len(s.replies) {
		return nil, fmt.Errorf("no scripted reply for call %d", idx+1)
	}

	ch := make(chan llm.Chunk, 2)
	ch <- &llm.TextChunk{Content: s.replies[idx]}
	ch <- &llm.UsageChunk{InputTokens: 10, OutputTokens: 20, TotalTokens: 30}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// testConfig builds a self-contained configuration with a temp workspace
// root and a single registered provider.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server:    &config.ServerConfig{ListenAddr: ":0"},
		Agents:    &config.AgentsConfig{Dir: t.TempDir()},
		Workspace: &config.WorkspaceConfig{Root: t.TempDir(), BranchPrefix: "aura/"},
		Orchestrator: &config.OrchestratorConfig{
			MaxParallelism:   4,
			MaxRetries:       2,
			MaxSteps:         10,
			IterationTimeout: 90 * time.Second,
			ToolTimeout:      5 * time.Minute,
		},
		Gate:     &config.GateConfig{Timeout: time.Minute},
		GitHub:   &config.GitHubConfig{TokenEnv: "GITHUB_TOKEN"},
		Defaults: &config.Defaults{Provider: "test-provider"},
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"test-provider": {
				Type:  config.LLMProviderTypeOpenAI,
				Model: "test-model",
			},
		}),
	}
}

// testRegistry loads agent definitions from literal Markdown bodies keyed
// by agent id.
func testRegistry(t *testing.T, defs map[string]string) *agents.Registry {
	t.Helper()
	dir := t.TempDir()
	for id, body := range defs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".md"), []byte(body), 0o644))
	}
	registry := agents.NewRegistry(dir)
	require.NoError(t, registry.Load())
	return registry
}

// defaultTestAgents covers the routing capabilities the services exercise.
func defaultTestAgents() map[string]string {
	return map[string]string{
		"analyst": "# Analyst\n\n## Capabilities\n- analysis\n\n## System Prompt\nAnalyze tasks.\n",
		"planner": "# Planner\n\n## Capabilities\n- planning\n- chat\n\n## System Prompt\nPlan tasks.\n",
		"coder":   "# Coder\n\n## Capabilities\n- coding\n- fixing\n\n## System Prompt\nWrite code.\n",
	}
}

// testPublisher wires a publisher over a fresh bus with audit persistence.
func testPublisher(client *ent.Client) *events.Publisher {
	return events.NewPublisher(events.NewBus(), client)
}
