package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/models"
)

// UpdatePortfolioStatusRequest is the body for PATCH /api/v1/portfolios/:id/status.
type UpdatePortfolioStatusRequest struct {
	Status string `json:"status"`
}

// createPortfolioHandler handles POST /api/v1/portfolios.
func (s *Server) createPortfolioHandler(c *echo.Context) error {
	var req models.CreatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := s.portfolioService.CreatePortfolio(c.Request().Context(), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// getPortfolioHandler handles GET /api/v1/portfolios/:id.
func (s *Server) getPortfolioHandler(c *echo.Context) error {
	p, err := s.portfolioService.GetPortfolio(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// listPortfoliosHandler handles GET /api/v1/portfolios.
func (s *Server) listPortfoliosHandler(c *echo.Context) error {
	limit, offset := 0, 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	items, err := s.portfolioService.ListPortfolios(c.Request().Context(), limit, offset)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// updatePortfolioStatusHandler handles PATCH /api/v1/portfolios/:id/status.
func (s *Server) updatePortfolioStatusHandler(c *echo.Context) error {
	var req UpdatePortfolioStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := s.portfolioService.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// addMemberHandler handles POST /api/v1/portfolios/:id/members.
func (s *Server) addMemberHandler(c *echo.Context) error {
	var req models.AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	member, err := s.portfolioService.AddMember(c.Request().Context(), c.Param("id"), actorID(c), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, member)
}

// removeMemberHandler handles DELETE /api/v1/portfolios/:id/members/:intent_id.
func (s *Server) removeMemberHandler(c *echo.Context) error {
	err := s.portfolioService.RemoveMember(c.Request().Context(), c.Param("id"), c.Param("intent_id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
