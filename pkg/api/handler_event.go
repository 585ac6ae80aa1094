package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// AppendEventRequest is the body for POST /api/v1/intents/:id/events.
type AppendEventRequest struct {
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// appendEventHandler handles POST /api/v1/intents/:id/events.
func (s *Server) appendEventHandler(c *echo.Context) error {
	var req AppendEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	entry, err := s.eventService.AppendEvent(c.Request().Context(),
		c.Param("id"), actorID(c), req.EventType, req.Payload)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}

// listEventsHandler handles GET /api/v1/intents/:id/events?from=&limit=.
func (s *Server) listEventsHandler(c *echo.Context) error {
	var from int64 = 1
	if v := c.QueryParam("from"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid from: must be a positive integer")
		}
		from = n
	}
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be a positive integer")
		}
		limit = n
	}

	page, err := s.eventService.ListEvents(c.Request().Context(), c.Param("id"), from, limit)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
