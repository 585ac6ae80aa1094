package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/services"
	"github.com/openintent-io/openintent/pkg/toolbroker"
)

// registerToolHandler handles POST /api/v1/tools (admin).
func (s *Server) registerToolHandler(c *echo.Context) error {
	var req services.RegisterToolRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	def, err := s.toolService.RegisterTool(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, def)
}

// listToolsHandler handles GET /api/v1/tools.
func (s *Server) listToolsHandler(c *echo.Context) error {
	defs, err := s.toolService.ListTools(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, defs)
}

// createCredentialHandler handles POST /api/v1/credentials (admin).
// The response never includes the secret.
func (s *Server) createCredentialHandler(c *echo.Context) error {
	var req services.CreateCredentialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cred, err := s.toolService.CreateCredential(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"id":        cred.ID,
		"auth_type": cred.AuthType,
	})
}

// createGrantHandler handles POST /api/v1/grants (admin).
func (s *Server) createGrantHandler(c *echo.Context) error {
	var req services.CreateGrantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	grant, err := s.toolService.CreateGrant(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, grant)
}

// revokeGrantHandler handles DELETE /api/v1/grants/:id (admin).
func (s *Server) revokeGrantHandler(c *echo.Context) error {
	if err := s.toolService.RevokeGrant(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// invokeToolHandler handles POST /api/v1/tools/invoke. The response body
// is always the broker's result envelope; the HTTP status reflects the
// envelope's outcome.
func (s *Server) invokeToolHandler(c *echo.Context) error {
	var req toolbroker.InvokeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := s.toolBroker.Invoke(c.Request().Context(), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(invokeStatus(result), result)
}

// invokeStatus maps a result envelope to a stable HTTP status.
func invokeStatus(r *toolbroker.Result) int {
	switch r.Status {
	case toolbroker.StatusSuccess:
		return http.StatusOK
	case toolbroker.StatusTimeout:
		return http.StatusGatewayTimeout
	case toolbroker.StatusDenied:
		if r.ErrorKind == toolbroker.KindRateLimited {
			return http.StatusTooManyRequests
		}
		return http.StatusForbidden
	default:
		if r.ErrorKind == toolbroker.KindBadRequest {
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	}
}
