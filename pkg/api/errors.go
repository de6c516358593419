package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johnazariah/aura-sub009/pkg/services"
)

// statusClientClosedRequest is the nginx convention for a caller that went
// away mid-request.
const statusClientClosedRequest = 499

// Problem is the error envelope every failing response carries.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// problem types reserved by the API contract.
const (
	problemNotFound     = "story-not-found"
	problemInvalidState = "invalid-state"
	problemMissingField = "missing-field"
	problemNoAgent      = "no-agent-for-capability"
	problemLLM          = "llm-error"
	problemGit          = "git-error"
	problemCancelled    = "request-cancelled"
	problemInternal     = "internal-error"

	// problemGateFailed is reserved for gate rejections. Gate outcomes
	// currently surface through story state and events rather than error
	// responses, so no handler emits it yet.
	problemGateFailed = "gate-failed"
)

// mapServiceError translates service-layer errors into problem responses.
func mapServiceError(err error) Problem {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return Problem{
			Type:   problemMissingField,
			Title:  "Invalid request",
			Status: http.StatusBadRequest,
			Detail: validErr.Error(),
		}
	}

	var stateErr *services.InvalidStateError
	if errors.As(err, &stateErr) {
		return Problem{
			Type:   problemInvalidState,
			Title:  "Operation not allowed in current state",
			Status: http.StatusConflict,
			Detail: stateErr.Error(),
		}
	}
	if errors.Is(err, services.ErrInvalidState) {
		return Problem{
			Type:   problemInvalidState,
			Title:  "Operation not allowed in current state",
			Status: http.StatusConflict,
			Detail: err.Error(),
		}
	}

	if errors.Is(err, services.ErrNotFound) {
		return Problem{
			Type:   problemNotFound,
			Title:  "Resource not found",
			Status: http.StatusNotFound,
			Detail: err.Error(),
		}
	}

	if errors.Is(err, services.ErrNoAgentForCapability) {
		return Problem{
			Type:   problemNoAgent,
			Title:  "No agent available",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
		}
	}

	var llmErr *services.LLMError
	if errors.As(err, &llmErr) {
		return Problem{
			Type:   problemLLM,
			Title:  "LLM provider failure",
			Status: http.StatusBadGateway,
			Detail: llmErr.Error(),
		}
	}

	var gitErr *services.GitError
	if errors.As(err, &gitErr) {
		return Problem{
			Type:   problemGit,
			Title:  "Git operation failed",
			Status: http.StatusBadGateway,
			Detail: gitErr.Error(),
		}
	}

	if errors.Is(err, context.Canceled) {
		return Problem{
			Type:   problemCancelled,
			Title:  "Request cancelled",
			Status: statusClientClosedRequest,
			Detail: "the request was cancelled before the operation finished",
		}
	}

	slog.Error("Unexpected service error", "error", err)
	return Problem{
		Type:   problemInternal,
		Title:  "Internal server error",
		Status: http.StatusInternalServerError,
		Detail: "an unexpected error occurred",
	}
}

// respondError writes the problem mapped from err and aborts the handler
// chain.
func respondError(c *gin.Context, err error) {
	p := mapServiceError(err)
	c.AbortWithStatusJSON(p.Status, p)
}

// respondMissingField writes a missing-field problem for a request body the
// binder rejected.
func respondMissingField(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Problem{
		Type:   problemMissingField,
		Title:  "Invalid request",
		Status: http.StatusBadRequest,
		Detail: detail,
	})
}
