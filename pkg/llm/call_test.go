package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockResponse struct {
	chunks []Chunk
	err    error
}

// mockClient is a test mock for Client. Not safe for concurrent use;
// callers in these tests invoke Generate sequentially.
type mockClient struct {
	responses  []mockResponse
	callCount  int
	lastInput  *GenerateInput
	onGenerate func(callIndex int)
}

func (m *mockClient) Generate(_ context.Context, input *GenerateInput) (<-chan Chunk, error) {
	idx := m.callCount
	m.callCount++
	m.lastInput = input
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

	ch := make(chan Chunk, len(r.chunks))
	for _, c := range r.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (m *mockClient) Close() error { return nil }

func TestCollect_AggregatesChunks(t *testing.T) {
	ch := make(chan Chunk, 6)
	ch <- &ThinkingChunk{Content: "let me see"}
	ch <- &TextChunk{Content: "Hello "}
	ch <- &TextChunk{Content: "world"}
	ch <- &ToolCallChunk{CallID: "c1", Name: "fs.read_file", Arguments: `{"path":"x"}`}
	ch <- &UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}
	close(ch)

	resp, err := Collect(ch)
	require.NoError(t, err)

	assert.Equal(t, "Hello world", resp.Text)
	assert.Equal(t, "let me see", resp.ThinkingText)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "fs.read_file", resp.ToolCalls[0].Name)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
}

func TestCollect_ErrorChunk(t *testing.T) {
	ch := make(chan Chunk, 2)
	ch <- &TextChunk{Content: "partial"}
	ch <- &ErrorChunk{Message: "rate limited", Code: "429", Retryable: true}
	close(ch)

	_, err := Collect(ch)
	require.Error(t, err)

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "rate limited", callErr.Message)
	assert.True(t, callErr.Retryable)
}

func TestCall_Success(t *testing.T) {
	client := &mockClient{
		responses: []mockResponse{
			{chunks: []Chunk{
				&TextChunk{Content: "answer"},
				&UsageChunk{TotalTokens: 7},
			}},
		},
	}

	resp, err := Call(context.Background(), client, &GenerateInput{StoryID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "answer", resp.Text)
	assert.Equal(t, 1, client.callCount)
}

func TestCall_RetriesTransientThenSucceeds(t *testing.T) {
	client := &mockClient{
		responses: []mockResponse{
			{chunks: []Chunk{&ErrorChunk{Message: "overloaded", Retryable: true}}},
			{chunks: []Chunk{&TextChunk{Content: "recovered"}}},
		},
	}

	resp, err := Call(context.Background(), client, &GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text)
	assert.Equal(t, 2, client.callCount)
}

func TestCall_ExhaustsRetries(t *testing.T) {
	transient := mockResponse{chunks: []Chunk{&ErrorChunk{Message: "overloaded", Retryable: true}}}
	client := &mockClient{
		responses: []mockResponse{transient, transient, transient, transient},
	}

	_, err := Call(context.Background(), client, &GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, 1+MaxTransientRetries, client.callCount)

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "overloaded", callErr.Message)
}

func TestCall_NonRetryableFailsImmediately(t *testing.T) {
	client := &mockClient{
		responses: []mockResponse{
			{chunks: []Chunk{&ErrorChunk{Message: "invalid api key", Code: "401", Retryable: false}}},
		},
	}

	_, err := Call(context.Background(), client, &GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, 1, client.callCount)
}

func TestCall_CancelledContextStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &mockClient{
		responses: []mockResponse{
			{chunks: []Chunk{&ErrorChunk{Message: "overloaded", Retryable: true}}},
		},
		onGenerate: func(int) { cancel() },
	}

	_, err := Call(ctx, client, &GenerateInput{})
	require.Error(t, err)
	assert.Equal(t, 1, client.callCount)
}
