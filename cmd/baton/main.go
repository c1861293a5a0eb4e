// Baton orchestrator server — accepts test execution requests over HTTP,
// schedules them onto registered runners, ingests runner webhooks, and
// streams lifecycle events to WebSocket subscribers.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"k8s.io/utils/clock"

	"github.com/baton-ci/baton/pkg/api"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/database"
	"github.com/baton-ci/baton/pkg/driver"
	"github.com/baton-ci/baton/pkg/events"
	"github.com/baton-ci/baton/pkg/ingest"
	"github.com/baton-ci/baton/pkg/metrics"
	"github.com/baton-ci/baton/pkg/notify"
	"github.com/baton-ci/baton/pkg/prober"
	"github.com/baton-ci/baton/pkg/registry"
	"github.com/baton-ci/baton/pkg/retention"
	"github.com/baton-ci/baton/pkg/rules"
	"github.com/baton-ci/baton/pkg/scheduler"
	"github.com/baton-ci/baton/pkg/store"
	"github.com/baton-ci/baton/pkg/version"
)

// shutdownTimeout bounds each component's graceful stop during shutdown.
const shutdownTimeout = 10 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting baton", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()
	clk := clock.RealClock{}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations on connect)
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

	st := store.New(dbClient.Client, clk)

	// 3. Event bus and publisher
	bus := events.NewBus(cfg.Events.QueueLimit)
	defer bus.Close()
	publisher := events.NewPublisher(st, bus, clk)

	// 4. Runner registry, seeded from the database
	fleet := registry.New()
	if err := fleet.Rebuild(ctx, st); err != nil {
		slog.Error("Failed to rebuild runner registry", "error", err)
		os.Exit(1)
	}

	// 5. Drivers and the dispatch gateway
	notifier := notify.New(cfg.Notify, nil)

	var drivers []driver.Driver
	for _, runnerType := range driver.WebhookTypes {
		drivers = append(drivers, driver.NewWebhook(runnerType, nil))
	}
	grpcDriver := driver.NewGRPC()
	defer func() {
		if err := grpcDriver.Close(); err != nil {
			slog.Error("Error closing grpc driver", "error", err)
		}
	}()
	drivers = append(drivers, grpcDriver)
	if dockerDriver, err := driver.NewDockerFromEnv(); err != nil {
		slog.Warn("Docker driver unavailable, docker runners will not dispatch", "error", err)
	} else {
		drivers = append(drivers, dockerDriver)
	}

	gateway := driver.NewGateway(cfg.Driver, st, fleet, publisher, notifier, drivers...)

	// 6. Webhook ingest and the scheduler
	ingestSvc := ingest.NewService(st, publisher, fleet, notifier)
	engine := rules.New()
	sched := scheduler.New(cfg.Scheduler, st, fleet, engine, gateway, publisher, bus, clk)
	sched.Start()

	sweeper := ingest.NewSweeper(cfg.Ingest, st, publisher, fleet, notifier, clk)
	sweeper.Start()

	healthProber := prober.New(cfg.Health, st, fleet, publisher, nil, clk)
	healthProber.Start()

	retentionSvc := retention.NewService(cfg.Retention, st, clk)
	retentionSvc.Start()

	// 7. HTTP server with WebSocket fan-out
	m := metrics.New()
	connManager := api.NewConnectionManager(st, m, 10*time.Second)
	connManager.Start(bus)

	httpServer := api.NewServer(st, dbClient, ingestSvc, fleet, publisher, bus,
		sched, gateway, notifier, connManager, m)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Baton started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop intake first, then the write paths, then
	// delivery, so nothing publishes into a closed bus.
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	stopWithTimeout := func(name string, stop func(context.Context) error) {
		stopCtx, stopCancel := context.WithTimeout(ctx, shutdownTimeout)
		defer stopCancel()
		if err := stop(stopCtx); err != nil {
			slog.Error("Component shutdown error", "component", name, "error", err)
		}
	}

	stopWithTimeout("scheduler", sched.Stop)
	stopWithTimeout("gateway", gateway.Stop)
	stopWithTimeout("sweeper", sweeper.Stop)
	stopWithTimeout("prober", healthProber.Stop)
	stopWithTimeout("retention", retentionSvc.Stop)
	connManager.Stop()
	stopWithTimeout("notifier", notifier.Stop)

	slog.Info("Shutdown complete")
}
