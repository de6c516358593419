package tools

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseActionInput parses a raw ActionInput string into structured parameters.
//
// Parsing cascade (first successful parse wins):
//  1. JSON object → map[string]any
//  2. JSON non-object (string, number, array) → {"input": value}
//  3. YAML mapping → map[string]any
//  4. Single raw string → {"input": string}
//
// Empty input returns an empty map (for no-parameter tools).
func ParseActionInput(input string) map[string]any {
	input = strings.TrimSpace(input)
	if input == "" {
		return map[string]any{}
	}

	if result, ok := tryParseJSON(input); ok {
		return result
	}
	if result, ok := tryParseYAML(input); ok {
		return result
	}
	return map[string]any{"input": input}
}

// tryParseJSON attempts to parse input as JSON. Non-object values are
// wrapped as {"input": value}.
func tryParseJSON(input string) (map[string]any, bool) {
	b := input[0]
	isJSONStart := b == '{' || b == '[' || b == '"' ||
		(b >= '0' && b <= '9') || b == '-' ||
		b == 't' || b == 'f' || b == 'n'
	if !isJSONStart {
		return nil, false
	}

	var raw any
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return nil, false
	}

	if m, ok := raw.(map[string]any); ok {
		return m, true
	}
	return map[string]any{"input": raw}, true
}

// tryParseYAML attempts to parse input as a YAML mapping. Scalar YAML is
// rejected so plain prose falls through to the raw-string fallback.
func tryParseYAML(input string) (map[string]any, bool) {
	// Quick-reject inputs that cannot be a mapping.
	if !strings.Contains(input, ":") {
		return nil, false
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(input), &raw); err != nil {
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	return raw, true
}

// StringArg extracts a string-valued argument, tolerating missing keys.
func StringArg(args map[string]any, key string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
