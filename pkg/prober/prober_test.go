package prober

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/store"
)

type proberStore struct {
	mu      sync.Mutex
	runners []*ent.Runner
	samples map[int][]store.HealthSampleInput
	flips   map[int][]runner.Health
}

func newProberStore(runners ...*ent.Runner) *proberStore {
	return &proberStore{
		runners: runners,
		samples: make(map[int][]store.HealthSampleInput),
		flips:   make(map[int][]runner.Health),
	}
}

func (s *proberStore) ListActiveRunners(_ context.Context) ([]*ent.Runner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*ent.Runner(nil), s.runners...), nil
}

func (s *proberStore) RecordHealthSample(_ context.Context, runnerID int, in store.HealthSampleInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples[runnerID] = append(s.samples[runnerID], in)
	return nil
}

func (s *proberStore) SetRunnerHealth(_ context.Context, runnerID int, h runner.Health) (*ent.Runner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flips[runnerID] = append(s.flips[runnerID], h)
	for _, rnr := range s.runners {
		if rnr.ID == runnerID {
			updated := *rnr
			updated.Health = h
			return &updated, nil
		}
	}
	return nil, store.ErrNotFound
}

type proberFleet struct {
	mu     sync.Mutex
	health map[int]runner.Health
}

func (f *proberFleet) SetHealth(id int, h runner.Health) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.health == nil {
		f.health = make(map[int]runner.Health)
	}
	f.health[id] = h
}

type proberPublisher struct {
	mu      sync.Mutex
	changes []string // "id:prev->new"
}

func (p *proberPublisher) RunnerHealthChanged(_ context.Context, rnr *ent.Runner, previous runner.Health) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, string(previous)+"->"+string(rnr.Health))
}

func proberFixture(flapSamples int, st *proberStore) (*Prober, *proberFleet, *proberPublisher) {
	cfg := &config.HealthConfig{
		Tick:             30 * time.Second,
		ProbeTimeout:     5 * time.Second,
		ProbeConcurrency: 4,
		FlapSamples:      flapSamples,
	}
	fleet := &proberFleet{}
	pub := &proberPublisher{}
	clk := testingclock.NewFakeClock(time.Now())
	return New(cfg, st, fleet, pub, http.DefaultClient, clk), fleet, pub
}

func healthyEndpoint(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestProbeRoundFlipsUnknownToHealthy(t *testing.T) {
	srv := healthyEndpoint(t)
	st := newProberStore(&ent.Runner{
		ID: 1, Name: "alpha", Health: runner.HealthUnknown, HealthCheckURL: srv.URL,
	})
	p, fleet, pub := proberFixture(1, st)

	p.ProbeRound(context.Background())

	assert.Equal(t, []runner.Health{runner.HealthHealthy}, st.flips[1])
	assert.Equal(t, runner.HealthHealthy, fleet.health[1])
	assert.Equal(t, []string{"unknown->healthy"}, pub.changes)
	assert.Len(t, st.samples[1], 1)
}

func TestProbeRoundRecordsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	st := newProberStore(&ent.Runner{
		ID: 1, Name: "alpha", Health: runner.HealthHealthy, HealthCheckURL: srv.URL,
	})
	p, fleet, _ := proberFixture(1, st)

	p.ProbeRound(context.Background())

	assert.Equal(t, []runner.Health{runner.HealthUnhealthy}, st.flips[1])
	assert.Equal(t, runner.HealthUnhealthy, fleet.health[1])
	assert.NotEmpty(t, st.samples[1][0].Error)
}

func TestProbeRoundSkipsRunnersWithoutURL(t *testing.T) {
	st := newProberStore(&ent.Runner{ID: 1, Name: "alpha", Health: runner.HealthUnknown})
	p, _, pub := proberFixture(1, st)

	p.ProbeRound(context.Background())

	assert.Empty(t, st.samples)
	assert.Empty(t, st.flips)
	assert.Empty(t, pub.changes)
}

func TestProbeRoundStableHealthDoesNotFlip(t *testing.T) {
	srv := healthyEndpoint(t)
	st := newProberStore(&ent.Runner{
		ID: 1, Name: "alpha", Health: runner.HealthHealthy, HealthCheckURL: srv.URL,
	})
	p, _, pub := proberFixture(1, st)

	p.ProbeRound(context.Background())
	p.ProbeRound(context.Background())

	assert.Empty(t, st.flips, "no change, no flip")
	assert.Empty(t, pub.changes)
	assert.Len(t, st.samples[1], 2, "every probe is sampled")
}

func TestFlapDampingNeedsConsecutiveSamples(t *testing.T) {
	var healthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if healthy.Load() {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	rnr := &ent.Runner{ID: 1, Name: "alpha", Health: runner.HealthHealthy, HealthCheckURL: srv.URL}
	st := newProberStore(rnr)
	p, _, pub := proberFixture(2, st)

	// One bad sample: streak of 1, no flip.
	p.ProbeRound(context.Background())
	assert.Empty(t, st.flips)

	// Recovery resets the streak.
	healthy.Store(true)
	p.ProbeRound(context.Background())
	assert.Empty(t, st.flips)

	// Two consecutive bad samples confirm the flip.
	healthy.Store(false)
	p.ProbeRound(context.Background())
	p.ProbeRound(context.Background())
	assert.Equal(t, []runner.Health{runner.HealthUnhealthy}, st.flips[1])
	assert.Equal(t, []string{"healthy->unhealthy"}, pub.changes)
}
