package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("AURA_TEST_TOKEN", "secret-token")
	t.Setenv("AURA_TEST_HOST", "example.com")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "token: {{.AURA_TEST_TOKEN}}",
			expected: "token: secret-token",
		},
		{
			name:     "multiple variables",
			input:    "url: https://{{.AURA_TEST_HOST}}/api?key={{.AURA_TEST_TOKEN}}",
			expected: "url: https://example.com/api?key=secret-token",
		},
		{
			name:     "missing variable expands to empty",
			input:    "value: {{.AURA_TEST_NOT_SET}}",
			expected: "value: ",
		},
		{
			name:     "no variables passes through",
			input:    "plain: text\nlist:\n  - a\n  - b",
			expected: "plain: text\nlist:\n  - a\n  - b",
		},
		{
			name:     "shell-style dollar untouched",
			input:    "cmd: echo $HOME ${PATH}",
			expected: "cmd: echo $HOME ${PATH}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ExpandEnv([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.expected, string(out))
		})
	}

	t.Run("malformed template is an error", func(t *testing.T) {
		_, err := ExpandEnv([]byte("broken: {{.unclosed"))
		require.Error(t, err)
		require.ErrorContains(t, err, "config template")
	})
}
