package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseActionInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:     "empty input",
			input:    "",
			expected: map[string]any{},
		},
		{
			name:     "json object",
			input:    `{"path": "main.go", "content": "package main"}`,
			expected: map[string]any{"path": "main.go", "content": "package main"},
		},
		{
			name:     "json array wrapped",
			input:    `["a", "b"]`,
			expected: map[string]any{"input": []any{"a", "b"}},
		},
		{
			name:     "json string wrapped",
			input:    `"just a string"`,
			expected: map[string]any{"input": "just a string"},
		},
		{
			name:     "yaml mapping",
			input:    "path: cmd/main.go\npattern: TODO",
			expected: map[string]any{"path": "cmd/main.go", "pattern": "TODO"},
		},
		{
			name:     "raw string fallback",
			input:    "run the full test suite",
			expected: map[string]any{"input": "run the full test suite"},
		},
		{
			name:     "malformed json falls through",
			input:    `{"path": unclosed`,
			expected: map[string]any{"input": `{"path": unclosed`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseActionInput(tt.input))
		})
	}
}

func TestStringArg(t *testing.T) {
	args := map[string]any{"path": "x.go", "count": 3}

	assert.Equal(t, "x.go", StringArg(args, "path"))
	assert.Equal(t, "", StringArg(args, "count"))
	assert.Equal(t, "", StringArg(args, "missing"))
}
