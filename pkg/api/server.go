// Package api is baton's HTTP surface: the client REST API (served at the
// root and aliased under /api/v1), the runner webhook endpoint, the WebSocket
// subscription endpoint, and the Prometheus scrape endpoint. Handlers stay
// thin — validation and binding here, every state transition behind the Store
// or the ingest service.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/pkg/database"
	"github.com/baton-ci/baton/pkg/driver"
	"github.com/baton-ci/baton/pkg/events"
	"github.com/baton-ci/baton/pkg/ingest"
	"github.com/baton-ci/baton/pkg/metrics"
	"github.com/baton-ci/baton/pkg/registry"
	"github.com/baton-ci/baton/pkg/store"
)

// Waker pokes the scheduler after work-creating writes.
type Waker interface {
	Wake()
}

// CompletionNotifier fires the client completion webhook for a terminal
// execution.
type CompletionNotifier interface {
	NotifyCompletion(exec *ent.Execution)
}

// Server hosts the HTTP API.
type Server struct {
	store       *store.Store
	dbClient    *database.Client
	ingest      *ingest.Service
	fleet       *registry.Registry
	publisher   *events.Publisher
	bus         *events.Bus
	scheduler   Waker
	gateway     *driver.Gateway
	notifier    CompletionNotifier
	connManager *ConnectionManager
	metrics     *metrics.Metrics
	logger      *slog.Logger

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer wires the HTTP server. connManager and metrics may be nil in
// tests; the matching routes degrade gracefully.
func NewServer(
	st *store.Store,
	dbClient *database.Client,
	ingestSvc *ingest.Service,
	fleet *registry.Registry,
	publisher *events.Publisher,
	bus *events.Bus,
	scheduler Waker,
	gateway *driver.Gateway,
	notifier CompletionNotifier,
	connManager *ConnectionManager,
	m *metrics.Metrics,
) *Server {
	s := &Server{
		store:       st,
		dbClient:    dbClient,
		ingest:      ingestSvc,
		fleet:       fleet,
		publisher:   publisher,
		bus:         bus,
		scheduler:   scheduler,
		gateway:     gateway,
		notifier:    notifier,
		connManager: connManager,
		metrics:     m,
		logger:      slog.With("component", "api"),
	}

	e := echo.New()
	e.Use(recoverPanics())
	e.Use(requestLogger())
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e

	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)
	if s.metrics != nil {
		promHandler := s.metrics.Handler()
		e.GET("/metrics", func(c *echo.Context) error {
			promHandler.ServeHTTP(c.Response(), c.Request())
			return nil
		})
	}

	// The API lives at the root; /api/v1 is an additive alias for clients
	// that version their base URL.
	for _, g := range []*echo.Group{e.Group(""), e.Group("/api/v1")} {
		g.POST("/executions", s.createExecutionHandler)
		g.GET("/executions", s.listExecutionsHandler)
		g.GET("/executions/:id", s.getExecutionHandler)
		g.POST("/executions/:id/cancel", s.cancelExecutionHandler)

		g.POST("/runners", s.registerRunnerHandler)
		g.GET("/runners", s.listRunnersHandler)
		g.PATCH("/runners/:id", s.updateRunnerHandler)
		g.POST("/runners/:id/pause", s.pauseRunnerHandler)
		g.POST("/runners/:id/resume", s.resumeRunnerHandler)
		g.POST("/runners/:id/decommission", s.decommissionRunnerHandler)

		g.POST("/rules", s.createRuleHandler)
		g.GET("/rules", s.listRulesHandler)
		g.PATCH("/rules/:id", s.updateRuleHandler)

		g.GET("/queue/status", s.queueStatusHandler)

		g.POST("/webhooks/runner", s.runnerWebhookHandler)

		g.GET("/ws", s.wsHandler)
	}
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves HTTP on addr. Blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("http server listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
