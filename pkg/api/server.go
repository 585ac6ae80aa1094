// Package api exposes the HTTP surface: REST handlers, the NDJSON and
// WebSocket event streams, auth middleware, and error mapping.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openintent-io/openintent/pkg/config"
	"github.com/openintent-io/openintent/pkg/database"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/services"
	"github.com/openintent-io/openintent/pkg/toolbroker"
)

// Server is the HTTP API server.
type Server struct {
	cfg *config.Config
	db  *database.Client

	agentService      *services.AgentService
	intentService     *services.IntentService
	eventService      *services.EventService
	leaseService      *services.LeaseService
	graphService      *services.GraphService
	portfolioService  *services.PortfolioService
	retryService      *services.RetryService
	governanceService *services.GovernanceService
	toolService       *services.ToolService

	streamBroker *events.Broker
	toolBroker   *toolbroker.Broker

	echo       *echo.Echo
	httpServer *http.Server
}

// Services bundles the domain services the server depends on.
type Services struct {
	Agents     *services.AgentService
	Intents    *services.IntentService
	Events     *services.EventService
	Leases     *services.LeaseService
	Graph      *services.GraphService
	Portfolios *services.PortfolioService
	Retries    *services.RetryService
	Governance *services.GovernanceService
	Tools      *services.ToolService
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	svcs Services,
	streamBroker *events.Broker,
	toolBroker *toolbroker.Broker,
) *Server {
	s := &Server{
		cfg:               cfg,
		db:                db,
		agentService:      svcs.Agents,
		intentService:     svcs.Intents,
		eventService:      svcs.Events,
		leaseService:      svcs.Leases,
		graphService:      svcs.Graph,
		portfolioService:  svcs.Portfolios,
		retryService:      svcs.Retries,
		governanceService: svcs.Governance,
		toolService:       svcs.Tools,
		streamBroker:      streamBroker,
		toolBroker:        toolBroker,
	}

	e := echo.New()
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e
	return s
}

// securityHeaders hardens every response; the API serves JSON and event
// streams only, so framing and content sniffing are always denied.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/api/v1/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1", s.requireAgent())

	// Agents.
	v1.POST("/agents", s.registerAgentHandler, requireAdmin())
	v1.GET("/agents/:id", s.getAgentHandler)

	// Intents.
	v1.POST("/intents", s.createIntentHandler)
	v1.GET("/intents", s.listIntentsHandler)
	v1.GET("/intents/:id", s.getIntentHandler)
	v1.PATCH("/intents/:id/state", s.patchStateHandler)
	v1.PUT("/intents/:id/state", s.replaceStateHandler)
	v1.PATCH("/intents/:id/status", s.setStatusHandler)
	v1.PUT("/intents/:id/constraints", s.setConstraintsHandler)

	// Graph.
	v1.GET("/intents/:id/graph", s.getGraphHandler)
	v1.GET("/intents/:id/children/ready", s.readyChildrenHandler)
	v1.GET("/intents/:id/children/blocked", s.blockedChildrenHandler)

	// Event log.
	v1.POST("/intents/:id/events", s.appendEventHandler)
	v1.GET("/intents/:id/events", s.listEventsHandler)

	// Leases.
	v1.POST("/intents/:id/leases", s.acquireLeaseHandler)
	v1.GET("/intents/:id/leases", s.listLeasesHandler)
	v1.POST("/intents/:id/leases/:lease_id/renew", s.renewLeaseHandler)
	v1.DELETE("/intents/:id/leases/:lease_id", s.releaseLeaseHandler)

	// Retry and failure.
	v1.POST("/intents/:id/retry_policy", s.setRetryPolicyHandler)
	v1.POST("/intents/:id/failures", s.recordFailureHandler)
	v1.GET("/intents/:id/failures", s.listFailuresHandler)

	// Governance.
	v1.POST("/intents/:id/costs", s.recordCostHandler)
	v1.GET("/intents/:id/costs", s.listCostsHandler)
	v1.POST("/intents/:id/attachments", s.createAttachmentHandler)
	v1.GET("/intents/:id/attachments", s.listAttachmentsHandler)
	v1.GET("/intents/:id/attachments/:aid", s.getAttachmentHandler)
	v1.POST("/intents/:id/comments", s.addCommentHandler)
	v1.POST("/intents/:id/arbitration", s.requestArbitrationHandler)
	v1.POST("/intents/:id/decisions", s.recordDecisionHandler)

	// Portfolios.
	v1.POST("/portfolios", s.createPortfolioHandler)
	v1.GET("/portfolios", s.listPortfoliosHandler)
	v1.GET("/portfolios/:id", s.getPortfolioHandler)
	v1.PATCH("/portfolios/:id/status", s.updatePortfolioStatusHandler)
	v1.POST("/portfolios/:id/members", s.addMemberHandler)
	v1.DELETE("/portfolios/:id/members/:intent_id", s.removeMemberHandler)

	// Tools.
	v1.POST("/tools/invoke", s.invokeToolHandler)
	v1.GET("/tools", s.listToolsHandler)
	v1.POST("/tools", s.registerToolHandler, requireAdmin())
	v1.POST("/credentials", s.createCredentialHandler, requireAdmin())
	v1.POST("/grants", s.createGrantHandler, requireAdmin())
	v1.DELETE("/grants/:id", s.revokeGrantHandler, requireAdmin())

	// Streams.
	v1.GET("/streams/events", s.streamEventsHandler)
	e.GET("/ws", s.wsHandler, s.requireAgent())
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:        addr,
		Handler:     s.echo,
		ReadTimeout: s.cfg.HTTP.ReadTimeout,
		// WriteTimeout stays zero so long-lived streams are not cut off.
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.streamBroker.Shutdown()
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
