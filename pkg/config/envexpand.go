package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes {{.VAR_NAME}} placeholders in config content with
// environment variable values. Template syntax is used instead of $VAR so
// literal dollars in regexes, passwords, and shell snippets survive
// unmangled. Unset variables become the empty string; required-field
// validation reports them afterwards.
func ExpandEnv(data []byte) ([]byte, error) {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("config template: %w", err)
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		// Split on the first = only; values may contain =.
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return nil, fmt.Errorf("config template: %w", err)
	}
	return buf.Bytes(), nil
}
