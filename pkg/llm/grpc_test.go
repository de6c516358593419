package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/pkg/config"
	llmv1 "github.com/johnazariah/aura-sub009/proto"
)

func TestToProtoMessages(t *testing.T) {
	messages := []ConversationMessage{
		{Role: RoleSystem, Content: "You are a coding agent"},
		{Role: RoleUser, Content: "Implement the parser"},
		{Role: RoleAssistant, Content: "Working on it", ToolCalls: []ToolCall{
			{ID: "tc1", Name: "fs.read_file", Arguments: `{"path":"main.go"}`},
		}},
		{Role: RoleTool, Content: `package main`, ToolCallID: "tc1", ToolName: "fs.read_file"},
	}

	result := toProtoMessages(messages)
	require.Len(t, result, 4)

	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "You are a coding agent", result[0].Content)

	assert.Equal(t, "assistant", result[2].Role)
	require.Len(t, result[2].ToolCalls, 1)
	assert.Equal(t, "tc1", result[2].ToolCalls[0].Id)
	assert.Equal(t, "fs.read_file", result[2].ToolCalls[0].Name)

	assert.Equal(t, "tool", result[3].Role)
	assert.Equal(t, "tc1", result[3].ToolCallId)
	assert.Equal(t, "fs.read_file", result[3].ToolName)
}

func TestToProtoLLMConfig(t *testing.T) {
	temp := 0.2
	cfg := &config.LLMProviderConfig{
		Type:        config.LLMProviderTypeAnthropic,
		Model:       "claude-sonnet-4-5",
		APIKeyEnv:   "ANTHROPIC_API_KEY",
		Temperature: &temp,
	}

	pc := toProtoLLMConfig(cfg)
	assert.Equal(t, "anthropic", pc.Provider)
	assert.Equal(t, "claude-sonnet-4-5", pc.Model)
	assert.Equal(t, "ANTHROPIC_API_KEY", pc.ApiKeyEnv)
	require.NotNil(t, pc.Temperature)
	assert.InDelta(t, 0.2, *pc.Temperature, 1e-9)
}

func TestFromProtoResponse(t *testing.T) {
	text := fromProtoResponse(&llmv1.GenerateResponse{
		Content: &llmv1.GenerateResponse_Text{Text: &llmv1.TextContent{Content: "hi"}},
	})
	require.IsType(t, &TextChunk{}, text)
	assert.Equal(t, "hi", text.(*TextChunk).Content)

	usage := fromProtoResponse(&llmv1.GenerateResponse{
		Content: &llmv1.GenerateResponse_Usage{Usage: &llmv1.Usage{InputTokens: 3, OutputTokens: 4, TotalTokens: 7}},
	})
	require.IsType(t, &UsageChunk{}, usage)
	assert.Equal(t, 7, usage.(*UsageChunk).TotalTokens)

	errChunk := fromProtoResponse(&llmv1.GenerateResponse{
		Content: &llmv1.GenerateResponse_Error{Error: &llmv1.Error{Message: "boom", Retryable: true}},
	})
	require.IsType(t, &ErrorChunk{}, errChunk)
	assert.True(t, errChunk.(*ErrorChunk).Retryable)

	assert.Nil(t, fromProtoResponse(&llmv1.GenerateResponse{}))
}
