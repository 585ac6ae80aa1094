package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getGraphHandler handles GET /api/v1/intents/:id/graph.
func (s *Server) getGraphHandler(c *echo.Context) error {
	graph, err := s.graphService.GetGraph(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, graph)
}

// readyChildrenHandler handles GET /api/v1/intents/:id/children/ready.
func (s *Server) readyChildrenHandler(c *echo.Context) error {
	readiness, err := s.graphService.ChildReadiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ready": readiness.Ready})
}

// blockedChildrenHandler handles GET /api/v1/intents/:id/children/blocked.
func (s *Server) blockedChildrenHandler(c *echo.Context) error {
	readiness, err := s.graphService.ChildReadiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"blocked": readiness.Blocked})
}
