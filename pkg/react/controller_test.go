package react

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/tools"
)

type scriptedResponse struct {
	chunks []llm.Chunk
	err    error
}

// mockLLM replays scripted responses in call order. Not safe for concurrent
// use; the controller issues calls sequentially.
type mockLLM struct {
	responses  []scriptedResponse
	callCount  int
	onGenerate func(callIndex int)
}

func (m *mockLLM) Generate(_ context.Context, _ *llm.GenerateInput) (<-chan llm.Chunk, error) {
	idx := m.callCount
	m.callCount++
	if m.onGenerate != nil {
		m.onGenerate(idx)
	}

	if idx >= len(m.responses) {
		return nil, fmt.Errorf("no more mock responses (call %d)", idx+1)
	}

	r := m.responses[idx]
	if r.err != nil {
		return nil, r.err
	}

	ch := make(chan llm.Chunk, len(r.chunks))
	for _, c := range r.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (m *mockLLM) Close() error { return nil }

func textResponse(text string, tokens int) scriptedResponse {
	chunks := []llm.Chunk{&llm.TextChunk{Content: text}}
	if tokens > 0 {
		chunks = append(chunks, &llm.UsageChunk{TotalTokens: tokens})
	}
	return scriptedResponse{chunks: chunks}
}

func newTestExecutor(t *testing.T) (tools.Executor, string) {
	t.Helper()
	workspace := t.TempDir()
	executor := tools.NewRegistry().NewExecutor(tools.ExecutorOptions{
		Workspace:           workspace,
		ExcludeConfirmation: true,
	})
	return executor, workspace
}

func TestRun_ToolCallThenFinalAnswer(t *testing.T) {
	executor, workspace := newTestExecutor(t)
	require.NoError(t, os.WriteFile(filepath.Join(workspace, "notes.txt"), []byte("hello from notes"), 0o644))

	client := &mockLLM{responses: []scriptedResponse{
		textResponse("Thought: Read the notes first.\nAction: fs.read_file\nAction Input: {\"path\": \"notes.txt\"}", 10),
		textResponse("Thought: I have what I need.\nFinal Answer: The notes say hello.", 5),
	}}

	result := NewController(client).Run(context.Background(), &Request{
		StoryID: "story-1",
		StepID:  "step-1",
		Task:    Task{Description: "Summarize the notes"},
	}, executor)

	require.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, "The notes say hello.", result.FinalAnswer)
	assert.Equal(t, 2, client.callCount)

	require.Len(t, result.Trace.Steps, 2)
	assert.Equal(t, 1, result.Trace.Steps[0].Step)
	assert.Equal(t, "fs.read_file", result.Trace.Steps[0].Action)
	assert.Contains(t, result.Trace.Steps[0].Observation, "hello from notes")
	assert.Equal(t, "I have what I need.", result.Trace.Steps[1].Thought)

	assert.True(t, result.Trace.Success)
	assert.Equal(t, "The notes say hello.", result.Trace.FinalAnswer)
	require.NotNil(t, result.Trace.TotalTokensUsed)
	assert.Equal(t, 15, *result.Trace.TotalTokensUsed)
}

func TestRun_UnknownToolBurnsStep(t *testing.T) {
	executor, _ := newTestExecutor(t)

	client := &mockLLM{responses: []scriptedResponse{
		textResponse("Thought: Clean up.\nAction: fs.delete_everything\nAction Input: {}", 0),
		textResponse("Final Answer: Nothing to clean.", 0),
	}}

	result := NewController(client).Run(context.Background(), &Request{}, executor)

	require.Equal(t, StatusCompleted, result.Status)
	require.Len(t, result.Trace.Steps, 2)
	assert.Contains(t, result.Trace.Steps[0].Observation, "tool not found")
	assert.Contains(t, result.Trace.Steps[0].Observation, "fs.delete_everything")
}

func TestRun_MalformedResponseGetsFormatFeedback(t *testing.T) {
	executor, _ := newTestExecutor(t)

	client := &mockLLM{responses: []scriptedResponse{
		textResponse("I should probably look around the workspace first.", 0),
		textResponse("Final Answer: Done looking.", 0),
	}}

	result := NewController(client).Run(context.Background(), &Request{}, executor)

	require.Equal(t, StatusCompleted, result.Status)
	require.Len(t, result.Trace.Steps, 2)
	assert.Contains(t, result.Trace.Steps[0].Observation, "FORMAT ERROR")
}

func TestRun_MaxStepsExceeded(t *testing.T) {
	executor, _ := newTestExecutor(t)

	listDir := "Thought: Keep looking.\nAction: fs.list_dir\nAction Input: {}"
	client := &mockLLM{responses: []scriptedResponse{
		textResponse(listDir, 3),
		textResponse(listDir, 3),
	}}

	result := NewController(client).Run(context.Background(), &Request{MaxSteps: 2}, executor)

	require.Equal(t, StatusFailed, result.Status)
	require.ErrorIs(t, result.Err, ErrMaxIterations)
	assert.Equal(t, 2, client.callCount)

	assert.False(t, result.Trace.Success)
	assert.Equal(t, "max iterations exceeded", result.Trace.Error)
	assert.Len(t, result.Trace.Steps, 2)
	require.NotNil(t, result.Trace.TotalTokensUsed)
	assert.Equal(t, 6, *result.Trace.TotalTokensUsed)
}

func TestRun_CancelledMidExecution(t *testing.T) {
	executor, _ := newTestExecutor(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client := &mockLLM{
		responses: []scriptedResponse{
			textResponse("Thought: Look around.\nAction: fs.list_dir\nAction Input: {}", 0),
		},
		onGenerate: func(int) { cancel() },
	}

	result := NewController(client).Run(ctx, &Request{}, executor)

	require.Equal(t, StatusCancelled, result.Status)
	require.ErrorIs(t, result.Err, ErrCancelled)
	assert.False(t, result.Trace.Success)
	assert.Equal(t, "cancelled", result.Trace.Error)
	assert.Equal(t, 1, client.callCount)
}

func TestRun_IterationTimeoutBurnsStep(t *testing.T) {
	executor, _ := newTestExecutor(t)

	client := &mockLLM{responses: []scriptedResponse{
		{err: context.DeadlineExceeded},
		textResponse("Final Answer: Recovered after the timeout.", 0),
	}}

	result := NewController(client).Run(context.Background(), &Request{}, executor)

	require.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, "Recovered after the timeout.", result.FinalAnswer)
	require.Len(t, result.Trace.Steps, 2)
	assert.Contains(t, result.Trace.Steps[0].Observation, "Error from previous attempt")
	assert.Equal(t, 2, client.callCount)
}

func TestRun_LLMHardErrorFails(t *testing.T) {
	executor, _ := newTestExecutor(t)

	client := &mockLLM{responses: []scriptedResponse{
		{chunks: []llm.Chunk{&llm.ErrorChunk{Message: "invalid api key", Code: "401", Retryable: false}}},
	}}

	result := NewController(client).Run(context.Background(), &Request{}, executor)

	require.Equal(t, StatusFailed, result.Status)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "invalid api key")
	assert.False(t, result.Trace.Success)
	assert.Empty(t, result.Trace.Steps)
}

func TestRun_NoUsageReportedLeavesTokensNull(t *testing.T) {
	executor, _ := newTestExecutor(t)

	client := &mockLLM{responses: []scriptedResponse{
		textResponse("Final Answer: Done.", 0),
	}}

	result := NewController(client).Run(context.Background(), &Request{}, executor)

	require.Equal(t, StatusCompleted, result.Status)
	assert.Nil(t, result.Trace.TotalTokensUsed)
	assert.GreaterOrEqual(t, result.Trace.TotalDurationMs, int64(0))
}

func TestRun_OnStepTruncatesObservations(t *testing.T) {
	executor, workspace := newTestExecutor(t)
	big := strings.Repeat("x", maxTransportObservation+500)
	require.NoError(t, os.WriteFile(filepath.Join(workspace, "big.txt"), []byte(big), 0o644))

	var live []models.TraceStep
	client := &mockLLM{responses: []scriptedResponse{
		textResponse("Thought: Read it.\nAction: fs.read_file\nAction Input: {\"path\": \"big.txt\"}", 0),
		textResponse("Final Answer: Read the big file.", 0),
	}}

	result := NewController(client).Run(context.Background(), &Request{
		OnStep: func(step models.TraceStep) { live = append(live, step) },
	}, executor)

	require.Equal(t, StatusCompleted, result.Status)
	require.Len(t, live, 2)

	// Live copy is truncated for transport; the stored trace keeps the
	// full observation.
	assert.True(t, strings.HasSuffix(live[0].Observation, "... [truncated]"))
	assert.Len(t, live[0].Observation, maxTransportObservation+len("... [truncated]"))
	assert.Greater(t, len(result.Trace.Steps[0].Observation), maxTransportObservation)
}
