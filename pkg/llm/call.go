package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
)

// MaxTransientRetries is the number of retries after the initial attempt
// for calls that fail with a retryable provider error.
const MaxTransientRetries = 2

// Backoff window for transient retries.
const (
	RetryBackoffMin = 500 * time.Millisecond
	RetryBackoffMax = 2 * time.Second
)

// CallError is a provider-reported failure, carried out of the stream.
type CallError struct {
	Message   string
	Code      string
	Retryable bool
}

func (e *CallError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("llm error: %s (code: %s)", e.Message, e.Code)
	}
	return fmt.Sprintf("llm error: %s", e.Message)
}

// Response holds the fully-collected response from a streaming LLM call.
type Response struct {
	Text         string
	ThinkingText string
	ToolCalls    []ToolCall
	Usage        *TokenUsage
}

// Collect drains an LLM chunk channel into a complete Response.
// Returns a *CallError if an ErrorChunk is received.
func Collect(stream <-chan Chunk) (*Response, error) {
	resp := &Response{}
	var textBuf, thinkingBuf strings.Builder

	for chunk := range stream {
		switch c := chunk.(type) {
		case *TextChunk:
			textBuf.WriteString(c.Content)
		case *ThinkingChunk:
			thinkingBuf.WriteString(c.Content)
		case *ToolCallChunk:
			resp.ToolCalls = append(resp.ToolCalls, ToolCall{
				ID:        c.CallID,
				Name:      c.Name,
				Arguments: c.Arguments,
			})
		case *UsageChunk:
			resp.Usage = &TokenUsage{
				InputTokens:  c.InputTokens,
				OutputTokens: c.OutputTokens,
				TotalTokens:  c.TotalTokens,
			}
		case *ErrorChunk:
			return nil, &CallError{Message: c.Message, Code: c.Code, Retryable: c.Retryable}
		}
	}

	resp.Text = textBuf.String()
	resp.ThinkingText = thinkingBuf.String()
	return resp, nil
}

// Call performs a single LLM call with context cancellation support and
// returns the complete collected response. Transient provider failures are
// retried up to MaxTransientRetries times with a jittered backoff, so the
// caller sees only the final outcome.
func Call(ctx context.Context, client Client, input *GenerateInput) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt <= MaxTransientRetries; attempt++ {
		if attempt > 0 {
			backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
			slog.Info("Retrying LLM call after transient failure",
				"story_id", input.StoryID, "step_id", input.StepID,
				"attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := callOnce(ctx, client, input)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRetryable(err) || ctx.Err() != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("llm call failed after %d retries: %w", MaxTransientRetries, lastErr)
}

// callOnce performs a single Generate attempt and collects the stream.
func callOnce(ctx context.Context, client Client, input *GenerateInput) (*Response, error) {
	// Derive a cancellable context so the producer goroutine in Generate
	// is always cleaned up when we return.
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := client.Generate(callCtx, input)
	if err != nil {
		return nil, fmt.Errorf("LLM Generate failed: %w", preferContextErr(callCtx, err))
	}
	resp, err := Collect(stream)
	if err != nil {
		return nil, preferContextErr(callCtx, err)
	}
	return resp, nil
}

// preferContextErr substitutes the context error when the call context has
// expired, so deadlines surfaced as flattened transport errors stay
// detectable with errors.Is.
func preferContextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s", ctxErr, err.Error())
	}
	return err
}

func isRetryable(err error) bool {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Retryable
	}
	return false
}
