// OpenIntent coordination server: durable intent substrate with event
// fan-out, leases, portfolios, retry accounting, and a tool broker.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/openintent-io/openintent/pkg/api"
	"github.com/openintent-io/openintent/pkg/config"
	"github.com/openintent-io/openintent/pkg/database"
	"github.com/openintent-io/openintent/pkg/events"
	"github.com/openintent-io/openintent/pkg/maintenance"
	"github.com/openintent-io/openintent/pkg/services"
	"github.com/openintent-io/openintent/pkg/toolbroker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Database.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Event pipeline: durable log, post-commit publisher, LISTEN feed,
	// in-process stream broker.
	publisher := events.NewPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client, publisher)
	streamBroker := events.NewBroker(eventService, cfg.Stream.QueueSize)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), streamBroker)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	streamBroker.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// Domain services.
	agentService := services.NewAgentService(dbClient.Client)
	if err := agentService.EnsureBootstrapAdmin(ctx, cfg.Auth.BootstrapAdminKey); err != nil {
		slog.Error("Failed to seed bootstrap admin", "error", err)
		os.Exit(1)
	}
	intentService := services.NewIntentService(dbClient.Client, publisher)
	leaseService := services.NewLeaseService(dbClient.Client, publisher)
	graphService := services.NewGraphService(dbClient.Client, publisher)
	portfolioService := services.NewPortfolioService(dbClient.Client, publisher)
	retryService := services.NewRetryService(dbClient.Client, publisher)
	governanceService := services.NewGovernanceService(dbClient.Client, publisher)
	toolService := services.NewToolService(dbClient.Client)

	// Status changes ripple into graph and portfolio aggregates.
	intentService.SetStatusHook(func(ctx context.Context, intentID string) {
		graphService.RecomputeForIntent(ctx, intentID)
		portfolioService.RecomputeForMember(ctx, intentID)
	})
	slog.Info("Services initialized")

	// Tool broker.
	toolBroker := toolbroker.NewBroker(toolService, eventService, toolbroker.Options{
		DefaultTimeout: cfg.Broker.DefaultTimeout,
	})

	// Background sweepers.
	maintSvc := maintenance.NewService(cfg, leaseService, portfolioService, retryService, eventService)
	maintSvc.Start(ctx)
	defer maintSvc.Stop()

	// HTTP server.
	httpServer := api.NewServer(cfg, dbClient, api.Services{
		Agents:     agentService,
		Intents:    intentService,
		Events:     eventService,
		Leases:     leaseService,
		Graph:      graphService,
		Portfolios: portfolioService,
		Retries:    retryService,
		Governance: governanceService,
		Tools:      toolService,
	}, streamBroker, toolBroker)

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.HTTP.Host + ":" + strconv.Itoa(cfg.HTTP.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("OpenIntent started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
