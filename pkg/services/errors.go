package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidState is returned when an operation is not legal for the
	// entity's current status. Guarded operations fail with this and never
	// mutate.
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrNoAgentForCapability is returned when the registry has no agent for
	// a (capability, language) pair
	ErrNoAgentForCapability = errors.New("no agent available for capability")

	// ErrWorktreeConflict is returned when a worktree path is already owned
	// by another story
	ErrWorktreeConflict = errors.New("worktree path already in use")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// InvalidStateError carries the operation and the status that rejected it.
type InvalidStateError struct {
	Operation string
	Status    string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s in status '%s'", e.Operation, e.Status)
}

// Unwrap makes the error match ErrInvalidState under errors.Is.
func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// NewInvalidStateError creates an invalid-state error for a guarded operation.
func NewInvalidStateError(operation, status string) error {
	return &InvalidStateError{Operation: operation, Status: status}
}

// GitError marks a failure in a git or GitHub sub-step so the API can map
// it to the git-error problem type.
type GitError struct {
	Op  string
	Err error
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError wraps err as a GitError for the named sub-step.
func NewGitError(op string, err error) error {
	return &GitError{Op: op, Err: err}
}

// LLMError marks a provider failure surfaced after the retry budget so the
// API can map it to the llm-error problem type.
type LLMError struct {
	Err error
}

func (e *LLMError) Error() string {
	return fmt.Sprintf("llm call failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *LLMError) Unwrap() error {
	return e.Err
}

// NewLLMError wraps err as an LLMError.
func NewLLMError(err error) error {
	return &LLMError{Err: err}
}
