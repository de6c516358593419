package react

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/tools"
)

// Task is everything the prompt needs to describe one step execution.
type Task struct {
	Description   string
	WorkspacePath string

	// PriorSteps are the completed predecessors visible to this step.
	PriorSteps []PriorStep

	// Rework context, present when the step was rejected and reset.
	PreviousOutput   string
	ApprovalFeedback string
	ChatHistory      []models.ChatEntry

	AdditionalContext string
}

// PriorStep is a completed predecessor's contribution to the prompt.
type PriorStep struct {
	ID     string
	Name   string
	Output string
}

const reactFormatInstructions = `## Response Format

Work in Thought / Action / Observation cycles. Each of your responses must use
exactly one of these two forms:

To use a tool:
Thought: [your reasoning about the next step]
Action: [tool name, exactly as listed]
Action Input: [tool parameters as a JSON object]

To finish:
Thought: [your final reasoning]
Final Answer: [the complete result of the task]

Start each header on a new line. Stop after Action Input - the system runs the
tool and returns an Observation. Never write Observation lines yourself.`

const taskFocus = "Work inside the assigned workspace only. Be concrete: reference real files, runnable commands, and actual code."

// BuildMessages builds the initial conversation for a tool-using execution.
func BuildMessages(systemPrompt string, task Task, defs []tools.Definition) []llm.ConversationMessage {
	system := strings.TrimSpace(systemPrompt)
	if system == "" {
		system = "You are a capable software engineering agent."
	}
	system = system + "\n\n" + reactFormatInstructions + "\n\n" + taskFocus

	return []llm.ConversationMessage{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: buildUserMessage(task, defs)},
	}
}

// BuildDirectMessages builds the conversation for agents that answer in a
// single call without tools.
func BuildDirectMessages(systemPrompt string, task Task) []llm.ConversationMessage {
	system := strings.TrimSpace(systemPrompt)
	if system == "" {
		system = "You are a capable software engineering agent."
	}

	return []llm.ConversationMessage{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: buildUserMessage(task, nil)},
	}
}

func buildUserMessage(task Task, defs []tools.Definition) string {
	var sb strings.Builder

	if len(defs) > 0 {
		sb.WriteString("Complete the following task using the available tools.\n\n")
		sb.WriteString("Available tools:\n\n")
		sb.WriteString(FormatToolDescriptions(defs))
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Task\n")
	sb.WriteString(task.Description)
	sb.WriteString("\n\n")

	if task.WorkspacePath != "" {
		sb.WriteString("## Workspace\n")
		fmt.Fprintf(&sb, "All file paths are relative to the workspace root: %s\n\n", task.WorkspacePath)
	}

	sb.WriteString(formatPriorSteps(task.PriorSteps))

	if task.PreviousOutput != "" {
		sb.WriteString("## Previous Attempt\n")
		sb.WriteString("This step was completed before but its output was rejected. Previous output:\n\n")
		sb.WriteString(task.PreviousOutput)
		sb.WriteString("\n\n")
	}
	if task.ApprovalFeedback != "" {
		sb.WriteString("## Review Feedback\n")
		sb.WriteString(task.ApprovalFeedback)
		sb.WriteString("\n\n")
	}
	if len(task.ChatHistory) > 0 {
		sb.WriteString("## Discussion\n")
		for _, entry := range task.ChatHistory {
			fmt.Fprintf(&sb, "[%s] %s\n", entry.Role, entry.Content)
		}
		sb.WriteString("\n")
	}

	if task.AdditionalContext != "" {
		sb.WriteString("## Additional Context\n")
		sb.WriteString(task.AdditionalContext)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Complete the task now.")
	return sb.String()
}

func formatPriorSteps(steps []PriorStep) string {
	if len(steps) == 0 {
		return "## Prior Step Results\nNo prior steps have completed. This is the first step.\n\n"
	}

	var sb strings.Builder
	sb.WriteString("## Prior Step Results\n")
	for _, step := range steps {
		fmt.Fprintf(&sb, "### %s (%s)\n%s\n\n", step.Name, step.ID, step.Output)
	}
	return sb.String()
}

// FormatToolDescriptions formats tool definitions for prompt injection,
// expanding each tool's JSON Schema into readable parameter lines.
func FormatToolDescriptions(defs []tools.Definition) string {
	if len(defs) == 0 {
		return "No tools available."
	}

	var sb strings.Builder
	for i, def := range defs {
		fmt.Fprintf(&sb, "%d. **%s**: %s\n", i+1, def.Name, def.Description)

		var schema map[string]any
		if def.ParametersSchema != "" {
			if err := json.Unmarshal([]byte(def.ParametersSchema), &schema); err != nil {
				slog.Debug("failed to parse tool parameters schema",
					"tool", def.Name, "error", err)
			}
		}

		params := extractParameters(schema)
		if len(params) > 0 {
			sb.WriteString("    Parameters:\n")
			for _, p := range params {
				sb.WriteString("    - ")
				sb.WriteString(p)
				sb.WriteString("\n")
			}
		} else {
			sb.WriteString("    Parameters: none\n")
		}

		if i < len(defs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// extractParameters flattens a JSON Schema's properties into prompt lines.
func extractParameters(schema map[string]any) []string {
	if schema == nil {
		return nil
	}
	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		return nil
	}

	required := make(map[string]bool)
	if reqList, ok := schema["required"].([]any); ok {
		for _, r := range reqList {
			if s, ok := r.(string); ok {
				required[s] = true
			}
		}
	}

	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var params []string
	for _, name := range keys {
		prop, ok := properties[name].(map[string]any)
		if !ok {
			continue
		}

		label := "optional"
		if required[name] {
			label = "required"
		}
		line := name + " (" + label
		if t, ok := prop["type"].(string); ok {
			line += ", " + t
		}
		line += ")"
		if desc, ok := prop["description"].(string); ok && desc != "" {
			line += ": " + desc
		}
		params = append(params, line)
	}
	return params
}
