// Package react drives an LLM through a Thought → Action → Observation loop
// against the workspace tool catalog, producing a persisted trace.
package react

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/johnazariah/aura-sub009/pkg/config"
	"github.com/johnazariah/aura-sub009/pkg/llm"
	"github.com/johnazariah/aura-sub009/pkg/models"
	"github.com/johnazariah/aura-sub009/pkg/tools"
)

// Status of a finished execution.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Defaults applied when the request leaves options zero.
const (
	DefaultMaxSteps         = 10
	DefaultIterationTimeout = 90 * time.Second
)

// Sentinel errors carried in failed results.
var (
	ErrMaxIterations = errors.New("max iterations exceeded")
	ErrCancelled     = errors.New("cancelled")
)

// Request describes one execution.
type Request struct {
	StoryID string
	StepID  string

	// SystemPrompt is the agent's system prompt template, already rendered.
	SystemPrompt string
	Task         Task
	Provider     *config.LLMProviderConfig

	MaxSteps         int           // 0 = DefaultMaxSteps
	IterationTimeout time.Duration // 0 = DefaultIterationTimeout

	// OnStep, when set, receives each recorded trace step with its
	// observation truncated for transport. Used for live event streams.
	OnStep func(models.TraceStep)
}

// Result is the outcome of an execution.
type Result struct {
	Status      Status
	FinalAnswer string
	Trace       *models.ReActTrace
	Err         error
}

// Controller runs the ReAct loop. Stateless across executions; safe for
// concurrent use.
type Controller struct {
	llmClient llm.Client
}

// NewController creates a controller over the given LLM client.
func NewController(llmClient llm.Client) *Controller {
	return &Controller{llmClient: llmClient}
}

// Run executes the loop until a final answer, failure, cancellation, or the
// step limit. Steps in the loop are strictly sequential; concurrent Run calls
// share no state.
func (c *Controller) Run(ctx context.Context, req *Request, toolExec tools.Executor) *Result {
	maxSteps := req.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	iterTimeout := req.IterationTimeout
	if iterTimeout <= 0 {
		iterTimeout = DefaultIterationTimeout
	}

	start := time.Now()
	trace := &models.ReActTrace{}
	acct := tokenAccount{}

	defs, err := toolExec.ListTools(ctx)
	if err != nil {
		return c.fail(trace, start, acct, fmt.Errorf("failed to list tools: %w", err))
	}
	toolNames := make(map[string]bool, len(defs))
	for _, def := range defs {
		toolNames[def.Name] = true
	}

	messages := BuildMessages(req.SystemPrompt, req.Task, defs)

	for step := 1; step <= maxSteps; step++ {
		if ctx.Err() != nil {
			return c.cancel(trace, start, acct)
		}

		iterCtx, iterCancel := context.WithTimeout(ctx, iterTimeout)
		stepStart := time.Now()

		resp, err := llm.Call(iterCtx, c.llmClient, &llm.GenerateInput{
			StoryID:  req.StoryID,
			StepID:   req.StepID,
			Messages: messages,
			Config:   req.Provider,
		})
		if err != nil {
			iterCancel()
			if ctx.Err() != nil {
				return c.cancel(trace, start, acct)
			}
			if errors.Is(err, context.DeadlineExceeded) {
				// The iteration timed out, not the whole run. Burn the step
				// and let the model try again.
				observation := FormatErrorObservation(err)
				messages = append(messages, llm.ConversationMessage{Role: llm.RoleUser, Content: observation})
				c.record(trace, req.OnStep, models.TraceStep{
					Step:        step,
					Observation: observation,
					DurationMs:  time.Since(stepStart).Milliseconds(),
				})
				continue
			}
			return c.fail(trace, start, acct, err)
		}
		acct.add(resp.Usage)

		messages = append(messages, llm.ConversationMessage{Role: llm.RoleAssistant, Content: resp.Text})
		parsed := Parse(resp.Text)

		switch {
		case parsed.HasAction:
			var observation string
			if !toolNames[parsed.Action] {
				observation = FormatUnknownToolObservation(parsed.Action, defs)
			} else {
				result, toolErr := toolExec.Execute(iterCtx, tools.Call{
					ID:        uuid.New().String(),
					Name:      parsed.Action,
					Arguments: parsed.ActionInput,
				})
				if ctx.Err() != nil {
					iterCancel()
					return c.cancel(trace, start, acct)
				}
				if toolErr != nil {
					observation = FormatToolErrorObservation(toolErr)
				} else {
					observation = FormatObservation(result)
				}
			}
			iterCancel()

			messages = append(messages, llm.ConversationMessage{Role: llm.RoleUser, Content: observation})
			c.record(trace, req.OnStep, models.TraceStep{
				Step:        step,
				Thought:     parsed.Thought,
				Action:      parsed.Action,
				ActionInput: parsed.ActionInput,
				Observation: observation,
				DurationMs:  time.Since(stepStart).Milliseconds(),
			})

		case parsed.IsFinalAnswer:
			iterCancel()
			c.record(trace, req.OnStep, models.TraceStep{
				Step:       step,
				Thought:    parsed.Thought,
				DurationMs: time.Since(stepStart).Milliseconds(),
			})

			trace.Success = true
			trace.FinalAnswer = parsed.FinalAnswer
			trace.TotalDurationMs = time.Since(start).Milliseconds()
			trace.TotalTokensUsed = acct.totalPtr()
			return &Result{
				Status:      StatusCompleted,
				FinalAnswer: parsed.FinalAnswer,
				Trace:       trace,
			}

		default:
			iterCancel()
			feedback := FormatFeedback(parsed)
			messages = append(messages, llm.ConversationMessage{Role: llm.RoleUser, Content: feedback})
			c.record(trace, req.OnStep, models.TraceStep{
				Step:        step,
				Thought:     parsed.Thought,
				Observation: feedback,
				DurationMs:  time.Since(stepStart).Milliseconds(),
			})
			slog.Debug("Malformed ReAct response",
				"story_id", req.StoryID, "step_id", req.StepID, "iteration", step)
		}
	}

	return c.fail(trace, start, acct, ErrMaxIterations)
}

// record appends a trace step and notifies the optional live listener with
// a transport-truncated copy.
func (c *Controller) record(trace *models.ReActTrace, onStep func(models.TraceStep), step models.TraceStep) {
	trace.Steps = append(trace.Steps, step)
	if onStep != nil {
		truncated := step
		truncated.Observation = TruncateForTransport(step.Observation)
		onStep(truncated)
	}
}

func (c *Controller) fail(trace *models.ReActTrace, start time.Time, acct tokenAccount, err error) *Result {
	trace.Success = false
	trace.Error = err.Error()
	trace.TotalDurationMs = time.Since(start).Milliseconds()
	trace.TotalTokensUsed = acct.totalPtr()
	return &Result{Status: StatusFailed, Trace: trace, Err: err}
}

func (c *Controller) cancel(trace *models.ReActTrace, start time.Time, acct tokenAccount) *Result {
	trace.Success = false
	trace.Error = ErrCancelled.Error()
	trace.TotalDurationMs = time.Since(start).Milliseconds()
	trace.TotalTokensUsed = acct.totalPtr()
	return &Result{Status: StatusCancelled, Trace: trace, Err: ErrCancelled}
}

// tokenAccount sums usage across steps. Total stays null when the provider
// never reported counts; duration is always reported.
type tokenAccount struct {
	total    int
	reported bool
}

func (a *tokenAccount) add(usage *llm.TokenUsage) {
	if usage == nil {
		return
	}
	a.total += usage.TotalTokens
	a.reported = true
}

func (a *tokenAccount) totalPtr() *int {
	if !a.reported {
		return nil
	}
	total := a.total
	return &total
}
