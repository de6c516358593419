package agents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const codeWriterDef = `# Code Writer

## Description
Writes production code from step descriptions.

## Metadata
- Priority: 10
- Provider: anthropic-default
- Model: claude-sonnet-4-5
- Temperature: 0.2
- Team: platform

## Capabilities
- coding
- fixing

## Languages
- Go
- python

## Tags
- backend

## Tools
- fs.read_file
- fs.write_file
- shell.run

## System Prompt
You are an expert software engineer.

## Output rules
Keep diffs minimal.
`

func TestParse_FullDefinition(t *testing.T) {
	def, err := Parse("code-writer", codeWriterDef)
	require.NoError(t, err)

	assert.Equal(t, "code-writer", def.ID)
	assert.Equal(t, "Code Writer", def.Name)
	assert.Equal(t, "Writes production code from step descriptions.", def.Description)

	assert.Equal(t, 10, def.Priority)
	assert.Equal(t, "anthropic-default", def.Provider)
	assert.Equal(t, "claude-sonnet-4-5", def.Model)
	require.NotNil(t, def.Temperature)
	assert.InDelta(t, 0.2, *def.Temperature, 1e-9)

	assert.Equal(t, []string{"coding", "fixing"}, def.Capabilities)
	assert.Equal(t, []string{"go", "python"}, def.Languages)
	assert.False(t, def.Polyglot())
	assert.Equal(t, []string{"Team: platform", "backend"}, def.Tags)
	assert.Equal(t, []string{"fs.read_file", "fs.write_file", "shell.run"}, def.Tools)
}

func TestParse_SystemPromptConsumesRemainingBody(t *testing.T) {
	def, err := Parse("code-writer", codeWriterDef)
	require.NoError(t, err)

	assert.Contains(t, def.SystemPrompt, "You are an expert software engineer.")
	assert.Contains(t, def.SystemPrompt, "## Output rules")
	assert.Contains(t, def.SystemPrompt, "Keep diffs minimal.")
}

func TestParse_Defaults(t *testing.T) {
	def, err := Parse("minimal", "## Capabilities\n- testing\n")
	require.NoError(t, err)

	assert.Equal(t, "minimal", def.Name)
	assert.Equal(t, DefaultPriority, def.Priority)
	assert.Nil(t, def.Temperature)
	assert.True(t, def.Polyglot())
	assert.Empty(t, def.Tools)
	assert.Equal(t, []string{"testing"}, def.Capabilities)
}

func TestParse_InvalidMetadata(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad priority", "## Metadata\n- Priority: soon\n"},
		{"bad temperature", "## Metadata\n- Temperature: warm\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("broken", tt.body)
			assert.Error(t, err)
		})
	}
}

func TestMatchesLanguage(t *testing.T) {
	goAgent := &Definition{Languages: []string{"go"}}
	polyglot := &Definition{}

	assert.True(t, goAgent.MatchesLanguage(""))
	assert.True(t, goAgent.MatchesLanguage("go"))
	assert.True(t, goAgent.MatchesLanguage("Go"))
	assert.False(t, goAgent.MatchesLanguage("python"))

	assert.True(t, polyglot.MatchesLanguage("rust"))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reviewer.md")
	require.NoError(t, os.WriteFile(path, []byte("# Reviewer\n\n## Capabilities\n- review\n"), 0o644))

	def, err := ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "reviewer", def.ID)
	assert.Equal(t, "Reviewer", def.Name)
	assert.Equal(t, path, def.SourcePath)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}
