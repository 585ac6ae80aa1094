package api

import (
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/models"
)

// createIntentHandler handles POST /api/v1/intents.
func (s *Server) createIntentHandler(c *echo.Context) error {
	var req models.CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	it, err := s.intentService.CreateIntent(c.Request().Context(), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, it)
}

// getIntentHandler handles GET /api/v1/intents/:id.
func (s *Server) getIntentHandler(c *echo.Context) error {
	it, err := s.intentService.GetIntent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// listIntentsHandler handles GET /api/v1/intents.
func (s *Server) listIntentsHandler(c *echo.Context) error {
	filters := models.IntentFilters{
		ParentID: c.QueryParam("parent_id"),
		Creator:  c.QueryParam("creator"),
	}
	if v := c.QueryParam("status"); v != "" {
		filters.Status = strings.Split(v, ",")
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Offset = n
		}
	}

	items, err := s.intentService.ListIntents(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// patchStateHandler handles PATCH /api/v1/intents/:id/state.
func (s *Server) patchStateHandler(c *echo.Context) error {
	var req models.PatchStateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	it, err := s.intentService.UpdateState(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// replaceStateHandler handles PUT /api/v1/intents/:id/state.
func (s *Server) replaceStateHandler(c *echo.Context) error {
	var req models.PatchStateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.Replace = true

	it, err := s.intentService.UpdateState(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// setStatusHandler handles PATCH /api/v1/intents/:id/status.
func (s *Server) setStatusHandler(c *echo.Context) error {
	var req models.SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	it, err := s.intentService.SetStatus(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// setConstraintsHandler handles PUT /api/v1/intents/:id/constraints.
func (s *Server) setConstraintsHandler(c *echo.Context) error {
	var req models.SetConstraintsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	it, err := s.intentService.SetConstraints(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}
