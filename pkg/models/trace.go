package models

// TraceStep is one Thought/Action/Observation record inside a ReAct run.
// Observation holds the full tool output; the event stream truncates it
// separately.
type TraceStep struct {
	Step        int    `json:"step"`
	Thought     string `json:"thought,omitempty"`
	Action      string `json:"action,omitempty"`
	ActionInput string `json:"actionInput,omitempty"`
	Observation string `json:"observation,omitempty"`
	DurationMs  int64  `json:"durationMs"`
}

// ReActTrace is the per-step execution record persisted on the Step when the
// ReAct executor is used.
type ReActTrace struct {
	Steps           []TraceStep `json:"steps"`
	TotalTokensUsed *int        `json:"totalTokensUsed"`
	TotalDurationMs int64       `json:"totalDurationMs"`
	Success         bool        `json:"success"`
	FinalAnswer     string      `json:"finalAnswer,omitempty"`
	Error           string      `json:"error,omitempty"`
}

// GateType identifies what an inter-wave gate ran.
type GateType string

const (
	GateTypeBuild     GateType = "build"
	GateTypeTest      GateType = "test"
	GateTypeComposite GateType = "build+test"
)

// GateResult summarizes one inter-wave validation. The scheduler never
// inspects the output text; it trusts Passed.
type GateResult struct {
	Passed       bool     `json:"passed"`
	GateType     GateType `json:"gateType"`
	Wave         int      `json:"wave"`
	BuildOutput  string   `json:"buildOutput,omitempty"`
	TestOutput   string   `json:"testOutput,omitempty"`
	TestsPassed  int      `json:"testsPassed"`
	TestsFailed  int      `json:"testsFailed"`
	WasCancelled bool     `json:"wasCancelled"`
	Error        string   `json:"error,omitempty"`
}

// ToMap converts a GateResult for storage in the story's JSON column.
func (g *GateResult) ToMap() map[string]any {
	if g == nil {
		return nil
	}
	m := map[string]any{
		"passed":       g.Passed,
		"gateType":     string(g.GateType),
		"wave":         g.Wave,
		"testsPassed":  g.TestsPassed,
		"testsFailed":  g.TestsFailed,
		"wasCancelled": g.WasCancelled,
	}
	if g.BuildOutput != "" {
		m["buildOutput"] = g.BuildOutput
	}
	if g.TestOutput != "" {
		m["testOutput"] = g.TestOutput
	}
	if g.Error != "" {
		m["error"] = g.Error
	}
	return m
}
