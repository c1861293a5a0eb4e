// Package prober checks runner health endpoints on a fixed cadence and flips
// the persisted health state when a change is confirmed. Probed health feeds
// the registry, so an unhealthy runner drops out of scheduling within one
// probe round.
package prober

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/store"
)

// Store is the data-layer slice the prober needs.
type Store interface {
	ListActiveRunners(ctx context.Context) ([]*ent.Runner, error)
	RecordHealthSample(ctx context.Context, runnerID int, in store.HealthSampleInput) error
	SetRunnerHealth(ctx context.Context, runnerID int, h runner.Health) (*ent.Runner, error)
}

// Fleet receives confirmed health flips.
type Fleet interface {
	SetHealth(id int, health runner.Health)
}

// Publisher announces confirmed health flips.
type Publisher interface {
	RunnerHealthChanged(ctx context.Context, rnr *ent.Runner, previous runner.Health)
}

// Prober owns the probe loop. Every sample is recorded; the persisted health
// column only flips after FlapSamples consecutive identical observations, so
// one blip doesn't drain a runner.
type Prober struct {
	cfg       *config.HealthConfig
	store     Store
	fleet     Fleet
	publisher Publisher
	client    *http.Client
	clock     clock.WithTicker
	logger    *slog.Logger

	mu      sync.Mutex
	streaks map[int]streak

	cancel context.CancelFunc
	done   chan struct{}
}

// streak tracks consecutive identical observations per runner.
type streak struct {
	health runner.Health
	count  int
}

// New wires the prober. client may be nil for a default with the configured
// probe timeout.
func New(cfg *config.HealthConfig, st Store, fleet Fleet, publisher Publisher, client *http.Client, clk clock.WithTicker) *Prober {
	if client == nil {
		client = &http.Client{Timeout: cfg.ProbeTimeout}
	}
	return &Prober{
		cfg:       cfg,
		store:     st,
		fleet:     fleet,
		publisher: publisher,
		client:    client,
		clock:     clk,
		logger:    slog.With("component", "health_prober"),
		streaks:   make(map[int]streak),
		done:      make(chan struct{}),
	}
}

// Start launches the probe loop.
func (p *Prober) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	go p.run(ctx)
	p.logger.Info("health prober started",
		"tick", p.cfg.Tick, "probe_timeout", p.cfg.ProbeTimeout, "concurrency", p.cfg.ProbeConcurrency)
}

// Stop shuts the loop down, waiting up to the context deadline.
func (p *Prober) Stop(ctx context.Context) error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()

	select {
	case <-p.done:
		p.logger.Info("health prober stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("prober shutdown timed out: %w", ctx.Err())
	}
}

func (p *Prober) run(ctx context.Context) {
	defer close(p.done)

	ticker := p.clock.NewTicker(p.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			p.ProbeRound(ctx)
		}
	}
}

// ProbeRound probes every active runner once, with bounded fan-out. Exported
// for tests and for an eager first round at startup.
func (p *Prober) ProbeRound(ctx context.Context) {
	runners, err := p.store.ListActiveRunners(ctx)
	if err != nil {
		p.logger.Error("failed to list runners for probing", "error", err)
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.ProbeConcurrency)

	for _, rnr := range runners {
		if rnr.HealthCheckURL == "" {
			// No endpoint to probe; health stays unknown and schedulable.
			continue
		}
		g.Go(func() error {
			p.probeOne(gctx, rnr)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Prober) probeOne(ctx context.Context, rnr *ent.Runner) {
	observed, latency, probeErr := p.probe(ctx, rnr.HealthCheckURL)

	sample := store.HealthSampleInput{Health: observed, LatencyMs: latency.Milliseconds()}
	if probeErr != nil {
		sample.Error = probeErr.Error()
	}
	if err := p.store.RecordHealthSample(ctx, rnr.ID, sample); err != nil {
		p.logger.Warn("failed to record health sample", "runner_id", rnr.ID, "error", err)
	}

	if !p.confirmed(rnr.ID, observed) || observed == rnr.Health {
		return
	}

	updated, err := p.store.SetRunnerHealth(ctx, rnr.ID, observed)
	if err != nil {
		p.logger.Error("failed to flip runner health", "runner_id", rnr.ID, "error", err)
		return
	}

	p.fleet.SetHealth(rnr.ID, observed)
	p.publisher.RunnerHealthChanged(ctx, updated, rnr.Health)
	p.logger.Info("runner health changed",
		"runner_id", rnr.ID, "runner_name", rnr.Name,
		"previous", rnr.Health, "health", observed)
}

// probe performs one HTTP GET. Any 2xx answer within the timeout is healthy;
// everything else is unhealthy.
func (p *Prober) probe(ctx context.Context, url string) (runner.Health, time.Duration, error) {
	probeCtx, cancel := context.WithTimeout(ctx, p.cfg.ProbeTimeout)
	defer cancel()

	started := p.clock.Now()
	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, url, nil)
	if err != nil {
		return runner.HealthUnhealthy, 0, err
	}

	resp, err := p.client.Do(req)
	latency := p.clock.Since(started)
	if err != nil {
		return runner.HealthUnhealthy, latency, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return runner.HealthHealthy, latency, nil
	}
	return runner.HealthUnhealthy, latency, fmt.Errorf("health check returned %d", resp.StatusCode)
}

// confirmed applies flap damping: true once the same observation has been
// seen FlapSamples times in a row.
func (p *Prober) confirmed(runnerID int, observed runner.Health) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.streaks[runnerID]
	if s.health == observed {
		s.count++
	} else {
		s = streak{health: observed, count: 1}
	}
	p.streaks[runnerID] = s

	return s.count >= p.cfg.FlapSamples
}
