package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/agent"
)

const agentContextKey = "openintent.agent"

// requireAgent returns middleware that resolves the caller's API key to
// a registered agent and stashes it in the request context. The key
// arrives as X-API-Key or as an Authorization bearer token.
func (s *Server) requireAgent() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			key := c.Request().Header.Get("X-API-Key")
			if key == "" {
				if auth := c.Request().Header.Get("Authorization"); auth != "" {
					key = strings.TrimPrefix(auth, "Bearer ")
				}
			}
			if key == "" {
				return c.JSON(http.StatusUnauthorized, errorBody{
					ErrorKind: "UNAUTHENTICATED",
					Message:   "missing API key",
				})
			}

			a, err := s.agentService.ResolveKey(c.Request().Context(), key)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody{
					ErrorKind: "UNAUTHENTICATED",
					Message:   "unknown API key",
				})
			}

			c.Set(agentContextKey, a)
			return next(c)
		}
	}
}

// requireAdmin returns middleware that restricts a route to admin agents.
// Must run after requireAgent.
func requireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			a := currentAgent(c)
			if a == nil || a.Role != agent.RoleAdmin {
				return c.JSON(http.StatusForbidden, errorBody{
					ErrorKind: "UNAUTHORIZED",
					Message:   "admin role required",
				})
			}
			return next(c)
		}
	}
}

// currentAgent returns the authenticated agent, or nil on unauthenticated
// routes.
func currentAgent(c *echo.Context) *ent.Agent {
	a, _ := c.Get(agentContextKey).(*ent.Agent)
	return a
}

// actorID returns the authenticated agent's id for event attribution.
func actorID(c *echo.Context) string {
	if a := currentAgent(c); a != nil {
		return a.ID
	}
	return "api-client"
}
