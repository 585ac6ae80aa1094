package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// RegisterAgentRequest is the body for POST /api/v1/agents.
type RegisterAgentRequest struct {
	DisplayName string `json:"display_name"`
	Role        string `json:"role,omitempty"`
}

// registerAgentHandler handles POST /api/v1/agents (admin). The response
// includes the plaintext API key exactly once.
func (s *Server) registerAgentHandler(c *echo.Context) error {
	var req RegisterAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.DisplayName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "display_name is required")
	}

	registered, err := s.agentService.Register(c.Request().Context(), req.DisplayName, req.Role)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, registered)
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *echo.Context) error {
	a, err := s.agentService.GetAgent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}
