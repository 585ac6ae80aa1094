package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/database"
	"github.com/openintent-io/openintent/pkg/version"
)

// healthHandler handles GET /api/v1/health.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":   "unhealthy",
			"database": dbHealth,
			"version":  version.Get(),
			"error":    err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"database":    dbHealth,
		"version":     version.Get(),
		"subscribers": s.streamBroker.ActiveSubscribers(),
	})
}
