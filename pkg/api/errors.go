package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/services"
)

// errorBody is the JSON shape of every error response. ErrorKind is a
// stable machine-readable code; Details carries kind-specific fields
// such as the current version on a conflict.
type errorBody struct {
	ErrorKind string         `json:"error_kind"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}

// mapServiceError writes the structured error response for a
// service-layer error. echo's HTTPError only carries a string message,
// so the body goes out through c.JSON directly.
func mapServiceError(c *echo.Context, err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return c.JSON(http.StatusBadRequest, errorBody{
			ErrorKind: "VALIDATION",
			Message:   validErr.Error(),
			Details:   map[string]any{"field": validErr.Field},
		})
	}

	var conflictErr *services.VersionConflictError
	if errors.As(err, &conflictErr) {
		return c.JSON(http.StatusConflict, errorBody{
			ErrorKind: "VERSION_CONFLICT",
			Message:   conflictErr.Error(),
			Details: map[string]any{
				"intent_id":        conflictErr.IntentID,
				"expected_version": conflictErr.ExpectedVersion,
				"current_version":  conflictErr.CurrentVersion,
			},
		})
	}

	var leaseErr *services.LeaseConflictError
	if errors.As(err, &leaseErr) {
		return c.JSON(http.StatusConflict, errorBody{
			ErrorKind: "LEASE_CONFLICT",
			Message:   leaseErr.Error(),
			Details: map[string]any{
				"intent_id":       leaseErr.IntentID,
				"scope":           leaseErr.Scope,
				"holder_agent_id": leaseErr.HolderAgentID,
				"expires_at":      leaseErr.ExpiresAt,
			},
		})
	}

	var transitionErr *services.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return c.JSON(http.StatusConflict, errorBody{
			ErrorKind: "INVALID_TRANSITION",
			Message:   transitionErr.Error(),
			Details: map[string]any{
				"from": transitionErr.From,
				"to":   transitionErr.To,
			},
		})
	}

	var grantErr *services.GrantDeniedError
	if errors.As(err, &grantErr) {
		return c.JSON(http.StatusForbidden, errorBody{
			ErrorKind: "GRANT_DENIED",
			Message:   grantErr.Error(),
		})
	}

	if errors.Is(err, services.ErrTerminal) {
		return c.JSON(http.StatusConflict, errorBody{
			ErrorKind: "TERMINAL",
			Message:   err.Error(),
		})
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorBody{
			ErrorKind: "NOT_FOUND",
			Message:   "resource not found",
		})
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return c.JSON(http.StatusConflict, errorBody{
			ErrorKind: "ALREADY_EXISTS",
			Message:   "resource already exists",
		})
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return c.JSON(http.StatusInternalServerError, errorBody{
		ErrorKind: "INTERNAL",
		Message:   "internal server error",
	})
}
