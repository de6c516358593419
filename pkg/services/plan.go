package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/johnazariah/aura-sub009/ent"
	"github.com/johnazariah/aura-sub009/pkg/models"
)

// planCapabilities mirrors the routing vocabulary. Unknown capabilities in a
// plan are logged but retained; routing decides later whether anyone can
// serve them.
var planCapabilities = map[string]bool{
	"analysis":      true,
	"planning":      true,
	"coding":        true,
	"testing":       true,
	"review":        true,
	"documentation": true,
	"chat":          true,
	"fixing":        true,
}

func knownPlanCapability(capability string) bool {
	return planCapabilities[capability] || strings.HasPrefix(capability, "ingest:")
}

// ParsePlanSteps extracts the ordered step descriptor list from a planning
// agent's reply. The reply may wrap the JSON array in a fenced code block or
// surround it with prose; the first well-formed array wins.
func ParsePlanSteps(text string) ([]models.PlanStep, error) {
	raw := extractJSON(text, '[')
	if raw == "" {
		return nil, fmt.Errorf("planner reply contains no JSON step list")
	}

	var steps []models.PlanStep
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, fmt.Errorf("failed to parse plan steps: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("planner reply contains an empty step list")
	}

	for i, s := range steps {
		if s.Name == "" {
			return nil, fmt.Errorf("plan step %d has no name", i+1)
		}
		if s.Capability == "" {
			return nil, fmt.Errorf("plan step %q has no capability", s.Name)
		}
		if !knownPlanCapability(s.Capability) {
			slog.Warn("Plan step uses unknown capability; keeping it",
				"step", s.Name, "capability", s.Capability)
		}
	}
	return steps, nil
}

// ParsePlanDelta extracts the structured plan-delta envelope from a chat
// agent's reply, if present. Returns nil when the reply is plain prose.
func ParsePlanDelta(text string) *models.PlanDelta {
	raw := extractJSON(text, '{')
	if raw == "" {
		return nil
	}

	var delta models.PlanDelta
	if err := json.Unmarshal([]byte(raw), &delta); err != nil {
		return nil
	}
	if len(delta.StepsAdded) == 0 && len(delta.StepsRemoved) == 0 && !delta.AnalysisUpdated {
		return nil
	}
	return &delta
}

// StripPlanDelta removes the fenced JSON envelope from a chat reply so the
// prose can be shown to the user without the machine part.
func StripPlanDelta(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return strings.TrimSpace(text)
	}
	end := strings.Index(text[start+3:], "```")
	if end < 0 {
		return strings.TrimSpace(text)
	}
	stripped := text[:start] + text[start+3+end+3:]
	return strings.TrimSpace(stripped)
}

// extractJSON finds the first JSON value opening with the given bracket,
// preferring fenced ```json blocks, and returns the balanced slice of text.
func extractJSON(text string, open byte) string {
	if fenced := extractFenced(text); fenced != "" {
		if idx := strings.IndexByte(fenced, open); idx >= 0 {
			if v := balancedFrom(fenced, idx, open); v != "" {
				return v
			}
		}
	}
	idx := strings.IndexByte(text, open)
	if idx < 0 {
		return ""
	}
	return balancedFrom(text, idx, open)
}

// extractFenced returns the body of the first fenced code block, if any.
func extractFenced(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return ""
	}
	body := text[start+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		body = body[nl+1:]
	}
	end := strings.Index(body, "```")
	if end < 0 {
		return ""
	}
	return body[:end]
}

// balancedFrom scans text from idx to the bracket matching open, tracking
// string literals so braces inside them do not count.
func balancedFrom(text string, idx int, open byte) string {
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := idx; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return text[idx : i+1]
			}
		}
	}
	return ""
}

// LayerWaves assigns a wave to every step: 1 + the maximum wave among its
// predecessors. Predecessors come from explicit dependsOn edges (matched by
// step id or name); when no step declares dependencies, the plan degrades to
// a sequential layering in order, which is the conservative reading of an
// edge-free plan.
func LayerWaves(steps []*ent.Step) (map[string]int, error) {
	hasEdges := false
	for _, s := range steps {
		if len(s.DependsOn) > 0 {
			hasEdges = true
			break
		}
	}

	waves := make(map[string]int, len(steps))
	if !hasEdges {
		for i, s := range steps {
			waves[s.ID] = i + 1
		}
		return waves, nil
	}

	// Resolve edges by id first, then by name; dangling references are
	// dropped so a sloppy planner cannot wedge the story.
	byID := make(map[string]*ent.Step, len(steps))
	byName := make(map[string]*ent.Step, len(steps))
	for _, s := range steps {
		byID[s.ID] = s
		byName[s.Name] = s
	}
	preds := make(map[string][]string, len(steps))
	for _, s := range steps {
		for _, dep := range s.DependsOn {
			target, ok := byID[dep]
			if !ok {
				target, ok = byName[dep]
			}
			if !ok {
				slog.Warn("Dropping dangling plan dependency",
					"step", s.Name, "depends_on", dep)
				continue
			}
			if target.ID == s.ID {
				continue
			}
			preds[s.ID] = append(preds[s.ID], target.ID)
		}
	}

	// Longest-path layering with cycle detection.
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(steps))

	var layer func(id string) (int, error)
	layer = func(id string) (int, error) {
		switch state[id] {
		case done:
			return waves[id], nil
		case visiting:
			return 0, fmt.Errorf("plan dependency cycle involving step %q", byID[id].Name)
		}
		state[id] = visiting

		wave := 1
		for _, p := range preds[id] {
			pw, err := layer(p)
			if err != nil {
				return 0, err
			}
			if pw+1 > wave {
				wave = pw + 1
			}
		}
		state[id] = done
		waves[id] = wave
		return wave, nil
	}

	for _, s := range steps {
		if _, err := layer(s.ID); err != nil {
			return nil, err
		}
	}
	return waves, nil
}

// ReworkSet computes the cascade-rework closure for a rejected step: the
// transitive dependents via explicit edges when the plan has them, otherwise
// every step in a later wave.
func ReworkSet(rejected *ent.Step, all []*ent.Step) []*ent.Step {
	hasEdges := false
	for _, s := range all {
		if len(s.DependsOn) > 0 {
			hasEdges = true
			break
		}
	}

	if !hasEdges {
		var set []*ent.Step
		for _, s := range all {
			if s.ID == rejected.ID {
				continue
			}
			if s.Wave != nil && rejected.Wave != nil && *s.Wave > *rejected.Wave {
				set = append(set, s)
			}
		}
		return set
	}

	// Transitive closure over dependents.
	byName := make(map[string]string, len(all))
	for _, s := range all {
		byName[s.Name] = s.ID
	}
	dependents := make(map[string][]*ent.Step, len(all))
	for _, s := range all {
		for _, dep := range s.DependsOn {
			target := dep
			if id, ok := byName[dep]; ok {
				target = id
			}
			dependents[target] = append(dependents[target], s)
		}
	}

	seen := map[string]bool{rejected.ID: true}
	queue := []string{rejected.ID}
	var set []*ent.Step
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, d := range dependents[id] {
			if seen[d.ID] {
				continue
			}
			seen[d.ID] = true
			set = append(set, d)
			queue = append(queue, d.ID)
		}
	}
	return set
}
