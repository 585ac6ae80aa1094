package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/models"
)

// setRetryPolicyHandler handles POST /api/v1/intents/:id/retry_policy.
func (s *Server) setRetryPolicyHandler(c *echo.Context) error {
	var req models.SetRetryPolicyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	it, err := s.retryService.SetPolicy(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// recordFailureHandler handles POST /api/v1/intents/:id/failures.
func (s *Server) recordFailureHandler(c *echo.Context) error {
	var req models.RecordFailureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	record, err := s.retryService.RecordFailure(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, record)
}

// listFailuresHandler handles GET /api/v1/intents/:id/failures.
func (s *Server) listFailuresHandler(c *echo.Context) error {
	records, err := s.retryService.ListFailures(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}
