package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/pkg/agents"
	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/events"
	"github.com/johnazariah/aura-sub009/pkg/gitops"
	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/services"
	testdb "github.com/johnazariah/aura-sub009/test/database"
)

// scriptedLLM returns canned text replies in call order.
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

type apiFixture struct {
	client *ent.Client
	bus    *events.Bus
	server *Server
	router http.Handler
}

func newAPIFixture(t *testing.T, replies ...string) *apiFixture {
	t.Helper()

	db := testdb.NewTestClient(t)
	client := db.Client

	cfg := &config.Config{
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

	dir := t.TempDir()
	defs := map[string]string{
		"analyst": "# Analyst\n\n## Capabilities\n- analysis\n\n## System Prompt\nAnalyze tasks.\n",
		"planner": "# Planner\n\n## Capabilities\n- planning\n- chat\n\n## System Prompt\nPlan tasks.\n",
		"coder":   "# Coder\n\n## Capabilities\n- coding\n- fixing\n\n## System Prompt\nWrite code.\n",
	}
	for id, body := range defs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".md"), []byte(body), 0o644))
	}
	registry := agents.NewRegistry(dir)
	require.NoError(t, registry.Load())

	llmClient := &scriptedLLM{replies: replies}
	bus := events.NewBus()
	publisher := events.NewPublisher(bus, client)

	stories := services.NewStoryService(client, cfg, registry, llmClient, gitops.New(), nil, publisher)
	steps := services.NewStepService(client, registry, publisher)
	chat := services.NewChatService(client, cfg, registry, llmClient, publisher)

	server := NewServer(cfg, db, registry, bus, stories, steps, chat, nil)
	return &apiFixture{client: client, bus: bus, server: server, router: server.Router()}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestServer_Health(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(3), body["agents"])

	db, ok := body["database"].(map[string]any)
	require.True(t, ok, "body: %s", rec.Body.String())
	assert.Equal(t, "healthy", db["status"])
	assert.Contains(t, db, "pool")
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/api/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	p := decodeJSON[Problem](t, rec)
	assert.Equal(t, problemNotFound, p.Type)
}

func TestServer_CORSPreflightShortCircuits(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodOptions, "/api/developer/stories", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
