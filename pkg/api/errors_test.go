package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/pkg/services"
	"github.com/openintent-io/openintent/pkg/toolbroker"
)

func TestMapServiceError(t *testing.T) {
	e := echo.New()
	body := func(t *testing.T, err error, wantCode int) errorBody {
		t.Helper()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, mapServiceError(c, err))
		require.Equal(t, wantCode, rec.Code)

		var b errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		return b
	}

	t.Run("validation is a bad request", func(t *testing.T) {
		b := body(t, services.NewValidationError("title", "required"), http.StatusBadRequest)
		assert.Equal(t, "VALIDATION", b.ErrorKind)
		assert.Equal(t, "title", b.Details["field"])
	})

	t.Run("version conflict carries both versions", func(t *testing.T) {
		b := body(t, &services.VersionConflictError{
			IntentID: "int-1", ExpectedVersion: 3, CurrentVersion: 5,
		}, http.StatusConflict)
		assert.Equal(t, "VERSION_CONFLICT", b.ErrorKind)
		assert.EqualValues(t, 3, b.Details["expected_version"])
		assert.EqualValues(t, 5, b.Details["current_version"])
	})

	t.Run("lease conflict names the holder", func(t *testing.T) {
		b := body(t, &services.LeaseConflictError{
			IntentID: "int-1", Scope: "execution",
			HolderAgentID: "agent-9", ExpiresAt: time.Now().Add(time.Minute),
		}, http.StatusConflict)
		assert.Equal(t, "LEASE_CONFLICT", b.ErrorKind)
		assert.Equal(t, "agent-9", b.Details["holder_agent_id"])
	})

	t.Run("invalid transition names both statuses", func(t *testing.T) {
		b := body(t, &services.InvalidTransitionError{From: "pending", To: "completed"}, http.StatusConflict)
		assert.Equal(t, "INVALID_TRANSITION", b.ErrorKind)
		assert.Equal(t, "pending", b.Details["from"])
	})

	t.Run("grant denial is forbidden", func(t *testing.T) {
		b := body(t, &services.GrantDeniedError{AgentID: "a", Tool: "t", Reason: "no grant"}, http.StatusForbidden)
		assert.Equal(t, "GRANT_DENIED", b.ErrorKind)
	})

	t.Run("sentinels", func(t *testing.T) {
		assert.Equal(t, "TERMINAL", body(t, services.ErrTerminal, http.StatusConflict).ErrorKind)
		assert.Equal(t, "NOT_FOUND", body(t, services.ErrNotFound, http.StatusNotFound).ErrorKind)
		assert.Equal(t, "ALREADY_EXISTS", body(t, services.ErrAlreadyExists, http.StatusConflict).ErrorKind)
	})

	t.Run("wrapped sentinels still map", func(t *testing.T) {
		wrapped := errors.Join(errors.New("intent int-1"), services.ErrNotFound)
		assert.Equal(t, "NOT_FOUND", body(t, wrapped, http.StatusNotFound).ErrorKind)
	})

	t.Run("anything else is internal", func(t *testing.T) {
		b := body(t, errors.New("disk on fire"), http.StatusInternalServerError)
		assert.Equal(t, "INTERNAL", b.ErrorKind)
		assert.NotContains(t, b.Message, "disk")
	})
}

func TestInvokeStatus(t *testing.T) {
	cases := []struct {
		status string
		kind   string
		want   int
	}{
		{toolbroker.StatusSuccess, "", http.StatusOK},
		{toolbroker.StatusTimeout, toolbroker.KindTimeout, http.StatusGatewayTimeout},
		{toolbroker.StatusDenied, toolbroker.KindGrantDenied, http.StatusForbidden},
		{toolbroker.StatusDenied, toolbroker.KindRateLimited, http.StatusTooManyRequests},
		{toolbroker.StatusError, toolbroker.KindBadRequest, http.StatusBadRequest},
		{toolbroker.StatusError, toolbroker.KindUpstreamError, http.StatusBadGateway},
	}
	for _, tc := range cases {
		got := invokeStatus(&toolbroker.Result{Status: tc.status, ErrorKind: tc.kind})
		assert.Equal(t, tc.want, got, "status %s kind %s", tc.status, tc.kind)
	}
}
