// Package agents loads agent definitions from Markdown files and routes
// (capability, language) requests to them by priority.
package agents

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPriority is assumed when a definition omits Priority. Lower values
// are more specialized and selected first.
const DefaultPriority = 50

// Definition is one agent loaded from a Markdown file. Definitions are
// immutable once published by the registry; executions that resolved one
// keep it across reloads.
type Definition struct {
	// ID is the definition file's basename.
	ID          string
	Name        string
	Description string

	Priority    int
	Provider    string // named LLM provider; empty = configured default
	Model       string // overrides the provider's model when set
	Temperature *float64

	Capabilities []string
	Languages    []string // empty = polyglot
	Tags         []string
	Tools        []string // tool names the agent may invoke; empty = default catalog

	SystemPrompt string
	SourcePath   string
}

// Polyglot reports whether the agent matches any language hint.
func (d *Definition) Polyglot() bool {
	return len(d.Languages) == 0
}

// HasCapability reports whether the agent provides the capability.
func (d *Definition) HasCapability(capability string) bool {
	for _, c := range d.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// MatchesLanguage reports whether the agent can serve the language hint.
// An empty hint and a polyglot agent both match everything.
func (d *Definition) MatchesLanguage(hint string) bool {
	if hint == "" || d.Polyglot() {
		return true
	}
	hint = strings.ToLower(hint)
	for _, l := range d.Languages {
		if l == hint {
			return true
		}
	}
	return false
}

// Definition file sections. "System Prompt" is the terminal section: once
// entered, the remaining body is consumed verbatim.
const (
	sectionDescription  = "description"
	sectionMetadata     = "metadata"
	sectionCapabilities = "capabilities"
	sectionLanguages    = "languages"
	sectionTags         = "tags"
	sectionTools        = "tools"
	sectionSystemPrompt = "system prompt"
)

// ParseFile reads and parses one agent definition file. The file basename
// (without extension) becomes the agent id.
func ParseFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent definition: %w", err)
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	def, err := Parse(id, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.SourcePath = path
	return def, nil
}

// Parse parses a Markdown agent definition. The format is a single `#`
// heading for the display name followed by `##` sections; list sections use
// `- item` bullets, Metadata uses `- Key: Value` pairs. Unknown metadata
// keys are preserved as tags.
func Parse(id, text string) (*Definition, error) {
	def := &Definition{ID: id, Priority: DefaultPriority}

	var section string
	var description, prompt []string

	for _, rawLine := range strings.Split(text, "\n") {
		if section == sectionSystemPrompt {
			prompt = append(prompt, rawLine)
			continue
		}

		line := strings.TrimSpace(rawLine)
		switch {
		case strings.HasPrefix(line, "## "):
			section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "## ")))

		case strings.HasPrefix(line, "# "):
			if def.Name == "" {
				def.Name = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			}
			section = ""

		case line == "":
			continue

		default:
			switch section {
			case sectionDescription:
				description = append(description, line)
			case sectionMetadata:
				if err := applyMetadata(def, line); err != nil {
					return nil, err
				}
			case sectionCapabilities:
				def.Capabilities = append(def.Capabilities, strings.ToLower(listItem(line)))
			case sectionLanguages:
				def.Languages = append(def.Languages, strings.ToLower(listItem(line)))
			case sectionTags:
				def.Tags = append(def.Tags, listItem(line))
			case sectionTools:
				def.Tools = append(def.Tools, listItem(line))
			}
			// Content outside a known section is ignored.
		}
	}

	def.Description = strings.Join(description, "\n")
	def.SystemPrompt = strings.TrimSpace(strings.Join(prompt, "\n"))
	if def.Name == "" {
		def.Name = id
	}
	return def, nil
}

// listItem strips the leading bullet from a list line.
func listItem(line string) string {
	for _, bullet := range []string{"- ", "* "} {
		if strings.HasPrefix(line, bullet) {
			return strings.TrimSpace(strings.TrimPrefix(line, bullet))
		}
	}
	return line
}

func applyMetadata(def *Definition, line string) error {
	item := listItem(line)
	key, value, ok := strings.Cut(item, ":")
	if !ok {
		def.Tags = append(def.Tags, item)
		return nil
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch strings.ToLower(key) {
	case "priority":
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid priority %q: %w", value, err)
		}
		def.Priority = p
	case "provider":
		def.Provider = value
	case "model":
		def.Model = value
	case "temperature":
		t, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid temperature %q: %w", value, err)
		}
		def.Temperature = &t
	default:
		def.Tags = append(def.Tags, item)
	}
	return nil
}
