package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnazariah/aura-sub009/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectType   string
		expectStatus int
	}{
		{
			name:         "validation error",
			err:          services.NewValidationError("title", "is required"),
			expectType:   problemMissingField,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "invalid state",
			err:          services.NewInvalidStateError("run story", "created"),
			expectType:   problemInvalidState,
			expectStatus: http.StatusConflict,
		},
		{
			name:         "bare invalid state sentinel",
			err:          services.ErrInvalidState,
			expectType:   problemInvalidState,
			expectStatus: http.StatusConflict,
		},
		{
			name:         "not found",
			err:          services.ErrNotFound,
			expectType:   problemNotFound,
			expectStatus: http.StatusNotFound,
		},
		{
			name:         "no agent for capability",
			err:          services.ErrNoAgentForCapability,
			expectType:   problemNoAgent,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "llm failure",
			err:          services.NewLLMError(errors.New("provider 500")),
			expectType:   problemLLM,
			expectStatus: http.StatusBadGateway,
		},
		{
			name:         "git failure",
			err:          services.NewGitError("push", errors.New("remote rejected")),
			expectType:   problemGit,
			expectStatus: http.StatusBadGateway,
		},
		{
			name:         "cancelled request",
			err:          context.Canceled,
			expectType:   problemCancelled,
			expectStatus: statusClientClosedRequest,
		},
		{
			name:         "unexpected error",
			err:          errors.New("disk melted"),
			expectType:   problemInternal,
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mapServiceError(tt.err)
			assert.Equal(t, tt.expectType, p.Type)
			assert.Equal(t, tt.expectStatus, p.Status)
			assert.NotEmpty(t, p.Title)
			assert.NotEmpty(t, p.Detail)
		})
	}
}

func TestMapServiceError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"),
		services.NewInvalidStateError("approve step", "pending"))
	p := mapServiceError(wrapped)
	assert.Equal(t, problemInvalidState, p.Type)
	assert.Contains(t, p.Detail, "approve step")
}
