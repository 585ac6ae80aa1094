package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/models"
)

// RenewLeaseRequest is the body for lease renewal.
type RenewLeaseRequest struct {
	TTLSeconds int64 `json:"ttl_seconds"`
}

// acquireLeaseHandler handles POST /api/v1/intents/:id/leases.
func (s *Server) acquireLeaseHandler(c *echo.Context) error {
	var req models.AcquireLeaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	lease, err := s.leaseService.Acquire(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, lease)
}

// listLeasesHandler handles GET /api/v1/intents/:id/leases.
func (s *Server) listLeasesHandler(c *echo.Context) error {
	leases, err := s.leaseService.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, leases)
}

// renewLeaseHandler handles POST /api/v1/intents/:id/leases/:lease_id/renew.
func (s *Server) renewLeaseHandler(c *echo.Context) error {
	var req RenewLeaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	lease, err := s.leaseService.Renew(c.Request().Context(), c.Param("lease_id"), actorID(c), req.TTLSeconds)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, lease)
}

// releaseLeaseHandler handles DELETE /api/v1/intents/:id/leases/:lease_id.
func (s *Server) releaseLeaseHandler(c *echo.Context) error {
	lease, err := s.leaseService.Release(c.Request().Context(), c.Param("lease_id"), actorID(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, lease)
}
