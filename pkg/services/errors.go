package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrTerminal is returned when mutating an intent in a terminal status
	ErrTerminal = errors.New("intent is in a terminal status")
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

// VersionConflictError is returned when expected_version does not match
// the stored version. Carries the current version so the caller can
// re-read, rebase, and retry.
type VersionConflictError struct {
	IntentID        string
	ExpectedVersion int64
	CurrentVersion  int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict on intent %s: expected %d, current %d",
		e.IntentID, e.ExpectedVersion, e.CurrentVersion)
}

// InvalidTransitionError is returned for a status transition the state
// machine does not allow.
type InvalidTransitionError struct {
	IntentID string
	From     string
	To       string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s on intent %s", e.From, e.To, e.IntentID)
}

// LeaseConflictError is returned when an active unexpired lease already
// covers the requested (intent, scope) pair.
type LeaseConflictError struct {
	IntentID      string
	Scope         string
	HolderAgentID string
	ExpiresAt     time.Time
}

func (e *LeaseConflictError) Error() string {
	return fmt.Sprintf("lease conflict on intent %s scope %q: held by %s until %s",
		e.IntentID, e.Scope, e.HolderAgentID, e.ExpiresAt.Format(time.RFC3339))
}

// GrantDeniedError is returned when a tool invocation lacks a valid grant
// or violates a grant constraint.
type GrantDeniedError struct {
	AgentID string
	Tool    string
	Reason  string
}

func (e *GrantDeniedError) Error() string {
	return fmt.Sprintf("tool grant denied for agent %s on tool %s: %s", e.AgentID, e.Tool, e.Reason)
}
