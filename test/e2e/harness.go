// Package e2e exercises baton end to end: a real HTTP surface over a real
// PostgreSQL schema, with fake runners on the far side of the webhook driver.
// Only the clocks are synthetic — the store and sweeper share a fake clock so
// timeout scenarios need no sleeping.
package e2e

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"k8s.io/utils/clock"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/baton-ci/baton/pkg/api"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/driver"
	"github.com/baton-ci/baton/pkg/events"
	"github.com/baton-ci/baton/pkg/ingest"
	"github.com/baton-ci/baton/pkg/metrics"
	"github.com/baton-ci/baton/pkg/notify"
	"github.com/baton-ci/baton/pkg/prober"
	"github.com/baton-ci/baton/pkg/registry"
	"github.com/baton-ci/baton/pkg/rules"
	"github.com/baton-ci/baton/pkg/scheduler"
	"github.com/baton-ci/baton/pkg/store"
	testdb "github.com/baton-ci/baton/test/database"
)

// testEpoch anchors the fake clock in every scenario.
var testEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// TestApp is one fully wired orchestrator under test.
type TestApp struct {
	Store     *store.Store
	Clock     *testingclock.FakeClock
	Bus       *events.Bus
	Publisher *events.Publisher
	Fleet     *registry.Registry
	Scheduler *scheduler.Scheduler
	Gateway   *driver.Gateway
	Ingest    *ingest.Service
	Sweeper   *ingest.Sweeper
	Prober    *prober.Prober
	Notifier  *notify.Notifier
	Server    *httptest.Server

	ingestCfg *config.IngestConfig
}

// newTestApp stands up the orchestrator on a fresh schema. The scheduler loop
// runs on a fast real-time tick; the sweeper and prober are built but not
// started — scenarios drive Sweep and ProbeRound directly.
func newTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbClient := testdb.NewTestClient(t)
	clk := testingclock.NewFakeClock(testEpoch)
	st := store.New(dbClient.Client, clk)

	bus := events.NewBus(256)
	t.Cleanup(bus.Close)
	publisher := events.NewPublisher(st, bus, clk)

	fleet := registry.New()
	if err := fleet.Rebuild(ctx, st); err != nil {
		t.Fatalf("registry rebuild: %v", err)
	}

	notifier := notify.New(&config.NotifyConfig{
		Retries: 2,
		Backoff: 10 * time.Millisecond,
	}, nil)

	driverCfg := &config.DriverConfig{
		StartRetries:    3,
		StartBackoff:    10 * time.Millisecond,
		StartMaxElapsed: 2 * time.Second,
		CallbackBaseURL: "http://placeholder.invalid",
	}
	gateway := driver.NewGateway(driverCfg, st, fleet, publisher, notifier,
		driver.NewWebhook("webhook", nil))

	ingestSvc := ingest.NewService(st, publisher, fleet, notifier)

	ingestCfg := &config.IngestConfig{
		ExecutionTimeout: 30 * time.Minute,
		SweepInterval:    30 * time.Second,
	}
	sweeper := ingest.NewSweeper(ingestCfg, st, publisher, fleet, notifier, clk)

	healthProber := prober.New(&config.HealthConfig{
		Tick:             time.Second,
		ProbeTimeout:     time.Second,
		ProbeConcurrency: 4,
		FlapSamples:      1,
	}, st, fleet, publisher, nil, clock.RealClock{})

	sched := scheduler.New(&config.SchedulerConfig{
		Tick:          200 * time.Millisecond,
		Debounce:      5 * time.Millisecond,
		BatchSize:     16,
		AssignRetries: 3,
	}, st, fleet, rules.New(), gateway, publisher, bus, clock.RealClock{})

	m := metrics.New()
	connManager := api.NewConnectionManager(st, m, 5*time.Second)
	connManager.Start(bus)

	apiServer := api.NewServer(st, dbClient, ingestSvc, fleet, publisher, bus,
		sched, gateway, notifier, connManager, m)
	server := httptest.NewServer(apiServer.Handler())

	// Runners learn the callback from the dispatch payload; now that the
	// listener exists, point the gateway at it.
	driverCfg.CallbackBaseURL = server.URL

	sched.Start()

	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Close()
		_ = sched.Stop(stopCtx)
		_ = gateway.Stop(stopCtx)
		connManager.Stop()
		_ = notifier.Stop(stopCtx)
	})

	return &TestApp{
		Store:     st,
		Clock:     clk,
		Bus:       bus,
		Publisher: publisher,
		Fleet:     fleet,
		Scheduler: sched,
		Gateway:   gateway,
		Ingest:    ingestSvc,
		Sweeper:   sweeper,
		Prober:    healthProber,
		Notifier:  notifier,
		Server:    server,
		ingestCfg: ingestCfg,
	}
}

// URL joins a path onto the test server's base URL.
func (app *TestApp) URL(path string) string {
	return app.Server.URL + path
}

// ExpireExecutions advances the shared fake clock past the execution timeout
// and runs one sweep, the way the background loop would.
func (app *TestApp) ExpireExecutions(ctx context.Context) {
	app.Clock.Step(app.ingestCfg.ExecutionTimeout + time.Minute)
	app.Sweeper.Sweep(ctx)
}
