package react

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/johnazariah/aura-sub009/pkg/tools"
)

// ParsedResponse is the result of parsing an LLM response in ReAct format.
type ParsedResponse struct {
	// Thought is the reasoning text preceding an action or final answer.
	Thought string

	// Action fields, populated when the LLM wants to call a tool.
	HasAction   bool
	Action      string
	ActionInput string

	// Final answer, populated when the LLM wants to conclude.
	IsFinalAnswer bool
	FinalAnswer   string

	// IsMalformed is set when neither an action pair nor a final answer
	// could be detected.
	IsMalformed bool

	// FoundSections tracks which headers were detected, for targeted
	// format feedback.
	FoundSections map[string]bool
}

var (
	// Section headers appearing mid-line after a sentence boundary.
	midlineFinalAnswerPattern = regexp.MustCompile(`[.!?][\x60\s*]*Final Answer:`)

	// Used to backtrack for a tool name when Action Input appears without
	// a preceding Action header.
	recoverActionPattern = regexp.MustCompile(`(?i)\bAction:`)
	actionInputPattern   = regexp.MustCompile(`(?i)Action Input:`)
	toolNamePattern      = regexp.MustCompile(`^[\w\-]+\.[\w\-]+$`)
)

// Parse parses LLM text output into a structured ReAct response. It is
// intentionally forgiving: headers may appear mid-line after a sentence
// boundary, a missing Action header is recovered by backtracking from
// Action Input, and hallucinated Observation lines end parsing.
func Parse(text string) *ParsedResponse {
	sections := extractSections(text)

	found := map[string]bool{
		"thought":      sections["thought"] != nil,
		"action":       sections["action"] != nil,
		"action_input": sections["action_input"] != nil,
		"final_answer": sections["final_answer"] != nil,
	}

	action := strings.TrimSpace(deref(sections["action"]))

	// An action wins over a final answer appearing in the same response:
	// nothing meaningful can follow a true final answer.
	if action != "" && sections["action_input"] != nil {
		return &ParsedResponse{
			HasAction:     true,
			Thought:       deref(sections["thought"]),
			Action:        action,
			ActionInput:   deref(sections["action_input"]),
			FoundSections: found,
		}
	}

	if answer := deref(sections["final_answer"]); answer != "" {
		return &ParsedResponse{
			IsFinalAnswer: true,
			Thought:       deref(sections["thought"]),
			FinalAnswer:   answer,
			FoundSections: found,
		}
	}

	return &ParsedResponse{
		IsMalformed:   true,
		Thought:       deref(sections["thought"]),
		FoundSections: found,
	}
}

// extractSections runs a line-based state machine over the response text.
func extractSections(text string) map[string]*string {
	parsed := map[string]*string{
		"thought":      nil,
		"action":       nil,
		"action_input": nil,
		"final_answer": nil,
	}
	if strings.TrimSpace(text) == "" {
		return parsed
	}

	var current string
	var content []string

	flush := func() {
		if current == "" || content == nil {
			return
		}
		joined := strings.TrimSpace(strings.Join(content, "\n"))
		if joined != "" || parsed[current] == nil {
			parsed[current] = &joined
		}
	}

	for _, rawLine := range strings.Split(strings.TrimSpace(text), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" && current == "" {
			continue
		}

		// A hallucinated Observation means the model is role-playing the
		// tool loop; everything after it is untrustworthy.
		if strings.HasPrefix(line, "Observation:") {
			flush()
			break
		}

		switch {
		case strings.HasPrefix(line, "Final Answer:") && parsed["final_answer"] == nil:
			flush()
			current = "final_answer"
			content = []string{strings.TrimSpace(strings.TrimPrefix(line, "Final Answer:"))}

		case parsed["final_answer"] == nil && hasMidlineFinalAnswer(line) &&
			(current == "thought" || strings.HasPrefix(line, "Thought:")):
			// "...done. Final Answer: ..." on one line; split the thought
			// from the answer.
			work := line
			if strings.HasPrefix(work, "Thought:") {
				flush()
				current = "thought"
				content = nil
				work = strings.TrimSpace(strings.TrimPrefix(work, "Thought:"))
			}
			loc := midlineFinalAnswerPattern.FindStringIndex(work)
			if before := strings.TrimSpace(work[:loc[0]+1]); before != "" {
				content = append(content, before)
			}
			flush()
			current = "final_answer"
			rest := work[loc[0]:]
			idx := strings.Index(rest, "Final Answer:")
			content = []string{strings.TrimSpace(rest[idx+len("Final Answer:"):])}

		case strings.HasPrefix(line, "Thought:") || line == "Thought":
			flush()
			current = "thought"
			content = []string{strings.TrimSpace(strings.TrimPrefix(line, "Thought:"))}

		case strings.HasPrefix(line, "Action Input:"):
			flush()
			current = "action_input"
			content = []string{strings.TrimSpace(strings.TrimPrefix(line, "Action Input:"))}

		case strings.HasPrefix(line, "Action:"):
			flush()
			current = "action"
			content = []string{strings.TrimSpace(strings.TrimPrefix(line, "Action:"))}

		default:
			// Content outside any section is dropped; only headed sections count.
			if current != "" {
				content = append(content, line)
			}
		}
	}
	flush()

	// Recovery: Action Input without Action, backtrack for the tool name.
	if parsed["action_input"] != nil && parsed["action"] == nil {
		if recovered := recoverMissingAction(text); recovered != "" {
			parsed["action"] = &recovered
		}
	}

	return parsed
}

func hasMidlineFinalAnswer(line string) bool {
	return strings.Contains(line, "Final Answer:") && midlineFinalAnswerPattern.MatchString(line)
}

// recoverMissingAction searches backwards from "Action Input:" for an
// "Action:" header whose value looks like a tool name.
func recoverMissingAction(text string) string {
	loc := actionInputPattern.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	before := text[:loc[0]]

	matches := recoverActionPattern.FindAllStringIndex(before, -1)
	if len(matches) == 0 {
		return ""
	}
	last := matches[len(matches)-1]
	candidate := strings.TrimSpace(strings.SplitN(before[last[1]:], "\n", 2)[0])
	if toolNamePattern.MatchString(candidate) {
		return candidate
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FormatFeedback returns a targeted error message describing what is wrong
// with a malformed response, appended as an observation so the LLM can
// self-correct.
func FormatFeedback(parsed *ParsedResponse) string {
	found := parsed.FoundSections

	var specific string
	switch {
	case found["action"] && !found["action_input"]:
		specific = "FORMAT ERROR: Your response has \"Action:\" but is missing \"Action Input:\".\n" +
			"Every \"Action:\" MUST be followed by \"Action Input:\" (even if empty for no-parameter tools)."
	case found["action_input"] && !found["action"]:
		specific = "FORMAT ERROR: Your response has \"Action Input:\" but is missing \"Action:\".\n" +
			"\"Action Input:\" must be preceded by \"Action:\" naming the tool to call."
	case found["thought"] && !found["action"] && !found["final_answer"]:
		specific = "FORMAT ERROR: Your response only contains \"Thought:\".\n" +
			"After reasoning, you MUST either call a tool with \"Action:\" + \"Action Input:\" " +
			"or conclude with \"Final Answer:\"."
	default:
		specific = "FORMAT ERROR: Could not detect any ReAct sections in your response.\n" +
			"Use the exact headers \"Thought:\", \"Action:\", \"Action Input:\", \"Final Answer:\"."
	}

	return "Observation: " + specific + "\n\n" + formatReminder
}

const formatReminder = `Follow the exact ReAct format:

Thought: [your reasoning]
Action: [tool name]
Action Input: [parameters as a JSON object]

or, to conclude:

Thought: [final reasoning]
Final Answer: [complete result]

Start each header on a new line and stop after Action Input - the system provides Observations.`

// FormatObservation formats a tool execution result as a ReAct observation.
func FormatObservation(result *tools.Result) string {
	if result == nil {
		return "Observation: Error - no tool result available"
	}
	if result.IsError {
		return fmt.Sprintf("Observation: Error executing %s: %s", result.Name, result.Content)
	}
	return fmt.Sprintf("Observation: %s", result.Content)
}

// FormatUnknownToolObservation formats the observation for a tool id that is
// not in the catalog, including the available tools so the LLM can self-correct.
func FormatUnknownToolObservation(toolName string, available []tools.Definition) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Observation: Error - tool not found: %q", toolName)
	if len(available) > 0 {
		sb.WriteString("\n\nAvailable tools:\n")
		for _, tool := range available {
			fmt.Fprintf(&sb, "  - %s: %s\n", tool.Name, tool.Description)
		}
	} else {
		sb.WriteString("\n\nNo tools are currently available.")
	}
	return sb.String()
}

// FormatToolErrorObservation formats an executor failure as an observation.
func FormatToolErrorObservation(err error) string {
	if err == nil {
		return "Observation: Error - Tool execution failed: unknown error"
	}
	return fmt.Sprintf("Observation: Error - Tool execution failed: %s", err.Error())
}

// FormatErrorObservation formats an LLM call error as an observation.
func FormatErrorObservation(err error) string {
	if err == nil {
		return "Observation: Error from previous attempt: unknown error. Please try again."
	}
	return fmt.Sprintf("Observation: Error from previous attempt: %s. Please try again.", err.Error())
}

// maxTransportObservation caps observation size on the event stream. The
// full text is kept in the stored trace.
const maxTransportObservation = 2 * 1024

// TruncateForTransport cuts an observation down to the event-stream limit.
func TruncateForTransport(s string) string {
	if len(s) <= maxTransportObservation {
		return s
	}
	return s[:maxTransportObservation] + "... [truncated]"
}
