package react

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnazariah/aura-sub009/pkg/tools"
)

func TestParse_Action(t *testing.T) {
	parsed := Parse("Thought: I should read the file first.\nAction: fs.read_file\nAction Input: {\"path\": \"main.go\"}")

	assert.True(t, parsed.HasAction)
	assert.False(t, parsed.IsFinalAnswer)
	assert.Equal(t, "I should read the file first.", parsed.Thought)
	assert.Equal(t, "fs.read_file", parsed.Action)
	assert.Equal(t, `{"path": "main.go"}`, parsed.ActionInput)
}

func TestParse_FinalAnswer(t *testing.T) {
	parsed := Parse("Thought: The task is done.\nFinal Answer: Implemented the parser in pkg/parser.")

	assert.True(t, parsed.IsFinalAnswer)
	assert.False(t, parsed.HasAction)
	assert.Equal(t, "The task is done.", parsed.Thought)
	assert.Equal(t, "Implemented the parser in pkg/parser.", parsed.FinalAnswer)
}

func TestParse_MultilineFinalAnswer(t *testing.T) {
	parsed := Parse("Final Answer: Line one.\nLine two.\nLine three.")

	require.True(t, parsed.IsFinalAnswer)
	assert.Equal(t, "Line one.\nLine two.\nLine three.", parsed.FinalAnswer)
}

func TestParse_ActionWinsOverFinalAnswer(t *testing.T) {
	parsed := Parse("Thought: One more check.\nAction: git.status\nAction Input: {}\nFinal Answer: done")

	assert.True(t, parsed.HasAction)
	assert.False(t, parsed.IsFinalAnswer)
	assert.Equal(t, "git.status", parsed.Action)
}

func TestParse_MidlineFinalAnswer(t *testing.T) {
	parsed := Parse("Thought: Everything checks out. Final Answer: All tests pass.")

	require.True(t, parsed.IsFinalAnswer)
	assert.Equal(t, "All tests pass.", parsed.FinalAnswer)
	assert.Equal(t, "Everything checks out.", parsed.Thought)
}

func TestParse_RecoversMissingAction(t *testing.T) {
	parsed := Parse("Thought: Need the directory listing. Action: fs.list_dir\nAction Input: {}")

	require.True(t, parsed.HasAction)
	assert.Equal(t, "fs.list_dir", parsed.Action)
}

func TestParse_EmptyActionInputAllowed(t *testing.T) {
	parsed := Parse("Thought: No parameters needed.\nAction: git.status\nAction Input:")

	assert.True(t, parsed.HasAction)
	assert.Equal(t, "git.status", parsed.Action)
	assert.Equal(t, "", parsed.ActionInput)
}

func TestParse_StopsAtHallucinatedObservation(t *testing.T) {
	parsed := Parse("Thought: Run it.\nAction: shell.run\nAction Input: {\"command\":\"ls\"}\nObservation: file1 file2\nThought: great")

	require.True(t, parsed.HasAction)
	assert.Equal(t, `{"command":"ls"}`, parsed.ActionInput)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // substring expected in feedback
	}{
		{"empty", "", "Could not detect any ReAct sections"},
		{"prose only", "I'm not sure what to do here...", "Could not detect any ReAct sections"},
		{"thought only", "Thought: hmm, let me think.", "only contains \"Thought:\""},
		{"action without input", "Thought: go.\nAction: fs.read_file", "missing \"Action Input:\""},
		{"input without recoverable action", "Action Input: {\"path\":\"x\"}", "missing \"Action:\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Parse(tt.input)
			require.True(t, parsed.IsMalformed)

			feedback := FormatFeedback(parsed)
			assert.Contains(t, feedback, tt.want)
			assert.Contains(t, feedback, "Observation:")
		})
	}
}

func TestFormatObservation(t *testing.T) {
	ok := FormatObservation(&tools.Result{Name: "fs.read_file", Content: "package main"})
	assert.Equal(t, "Observation: package main", ok)

	errResult := FormatObservation(&tools.Result{Name: "shell.run", Content: "exit 1", IsError: true})
	assert.Contains(t, errResult, "Error executing shell.run")

	assert.Contains(t, FormatObservation(nil), "no tool result")
}

func TestFormatUnknownToolObservation(t *testing.T) {
	defs := []tools.Definition{
		{Name: "fs.read_file", Description: "Read a file"},
		{Name: "git.status", Description: "Show status"},
	}

	obs := FormatUnknownToolObservation("fs.remove_all", defs)
	assert.Contains(t, obs, "tool not found")
	assert.Contains(t, obs, "fs.remove_all")
	assert.Contains(t, obs, "fs.read_file: Read a file")

	empty := FormatUnknownToolObservation("x.y", nil)
	assert.Contains(t, empty, "No tools are currently available")
}

func TestTruncateForTransport(t *testing.T) {
	short := "short observation"
	assert.Equal(t, short, TruncateForTransport(short))

	long := strings.Repeat("x", maxTransportObservation+100)
	truncated := TruncateForTransport(long)
	assert.Len(t, truncated, maxTransportObservation+len("... [truncated]"))
	assert.True(t, strings.HasSuffix(truncated, "... [truncated]"))
}
