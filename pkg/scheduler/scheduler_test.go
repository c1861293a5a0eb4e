package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/balancingrule"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/events"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/registry"
	"github.com/baton-ci/baton/pkg/rules"
	"github.com/baton-ci/baton/pkg/store"
)

type fakeStore struct {
	mu sync.Mutex

	queued      []*ent.Execution
	runners     map[int]*ent.Runner
	activeRules []*ent.BalancingRule
	loads       map[int]float64

	// assignErrs[execID] is consumed one error per AssignExecution call.
	assignErrs map[string][]error
	assigned   []string // "execID->runnerID"
	cursors    []string // "ruleID:from->to"
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		runners:    make(map[int]*ent.Runner),
		assignErrs: make(map[string][]error),
	}
}

func (f *fakeStore) ClaimCandidates(_ context.Context, limit int) ([]*ent.Execution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	batch := append([]*ent.Execution(nil), f.queued...)
	if len(batch) > limit {
		batch = batch[:limit]
	}
	return batch, nil
}

func (f *fakeStore) AssignExecution(_ context.Context, execID string, runnerID int) (*ent.Execution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errs := f.assignErrs[execID]; len(errs) > 0 {
		err := errs[0]
		f.assignErrs[execID] = errs[1:]
		return nil, err
	}
	f.assigned = append(f.assigned, fmt.Sprintf("%s->%d", execID, runnerID))
	for i, e := range f.queued {
		if e.ID == execID {
			f.queued = append(f.queued[:i], f.queued[i+1:]...)
			break
		}
	}
	return &ent.Execution{ID: execID, Status: execution.StatusAssigned}, nil
}

func (f *fakeStore) GetRunner(_ context.Context, id int) (*ent.Runner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.runners[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (f *fakeStore) ListActiveRules(_ context.Context) ([]*ent.BalancingRule, error) {
	return f.activeRules, nil
}

func (f *fakeStore) AdvanceRuleCursor(_ context.Context, ruleID, from, to int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursors = append(f.cursors, fmt.Sprintf("%d:%d->%d", ruleID, from, to))
	return nil
}

func (f *fakeStore) AllocationLoadByRunner(_ context.Context) (map[int]float64, error) {
	return f.loads, nil
}

func (f *fakeStore) QueueStats(_ context.Context) (*models.QueueStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &models.QueueStats{Queued: len(f.queued)}, nil
}

type fakeDispatcher struct {
	mu      sync.Mutex
	started []string // "execID@runnerID"
}

func (d *fakeDispatcher) Dispatch(exec *ent.Execution, rnr *ent.Runner) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.started = append(d.started, fmt.Sprintf("%s@%d", exec.ID, rnr.ID))
}

type fakePublisher struct {
	mu       sync.Mutex
	assigned []string
	depths   []int
}

func (p *fakePublisher) ExecutionAssigned(_ context.Context, exec *ent.Execution, rnr *ent.Runner, _ *ent.BalancingRule) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.assigned = append(p.assigned, fmt.Sprintf("%s@%d", exec.ID, rnr.ID))
}

func (p *fakePublisher) QueueDepth(queued, _, _ int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.depths = append(p.depths, queued)
}

func queuedExec(id string) *ent.Execution {
	return &ent.Execution{ID: id, Status: execution.StatusQueued, TestSuite: "unit", Environment: "staging", Priority: 50}
}

func activeRunner(id int, name string, slots int) *ent.Runner {
	return &ent.Runner{
		ID: id, Name: name, Type: "webhook", EndpointURL: "http://runner",
		MaxConcurrentJobs: slots,
		Status:            runner.StatusActive,
		Health:            runner.HealthHealthy,
	}
}

type fixture struct {
	sched *Scheduler
	store *fakeStore
	fleet *registry.Registry
	disp  *fakeDispatcher
	pub   *fakePublisher
	bus   *events.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := newFakeStore()
	fleet := registry.New()
	disp := &fakeDispatcher{}
	pub := &fakePublisher{}
	bus := events.NewBus(64)
	t.Cleanup(bus.Close)

	cfg := &config.SchedulerConfig{
		Tick:          time.Hour, // ticks never fire in pass-level tests
		Debounce:      0,
		BatchSize:     16,
		AssignRetries: 3,
	}
	clk := testingclock.NewFakeClock(time.Now())
	sched := New(cfg, st, fleet, rules.New(), disp, pub, bus, clk)
	return &fixture{sched: sched, store: st, fleet: fleet, disp: disp, pub: pub, bus: bus}
}

func TestPassAssignsQueuedExecutions(t *testing.T) {
	f := newFixture(t)
	f.store.queued = []*ent.Execution{queuedExec("exec-1"), queuedExec("exec-2")}
	f.store.runners[1] = activeRunner(1, "alpha", 4)
	f.fleet.Upsert(f.store.runners[1])

	f.sched.RunPass(context.Background())

	assert.Equal(t, []string{"exec-1->1", "exec-2->1"}, f.store.assigned)
	assert.Equal(t, []string{"exec-1@1", "exec-2@1"}, f.disp.started)
	assert.Equal(t, []string{"exec-1@1", "exec-2@1"}, f.pub.assigned)
	assert.Equal(t, 2, f.fleet.Inflight(1))
	require.Len(t, f.pub.depths, 1)
	assert.Equal(t, 0, f.pub.depths[0])
}

func TestPassLeavesExecutionQueuedWithoutCandidates(t *testing.T) {
	f := newFixture(t)
	f.store.queued = []*ent.Execution{queuedExec("exec-1")}

	f.sched.RunPass(context.Background())

	assert.Empty(t, f.store.assigned)
	assert.Empty(t, f.disp.started)
	require.Len(t, f.pub.depths, 1)
	assert.Equal(t, 1, f.pub.depths[0], "execution stays queued")
}

func TestPassRetriesAfterLostCapacityRace(t *testing.T) {
	f := newFixture(t)
	f.store.queued = []*ent.Execution{queuedExec("exec-1")}
	f.store.runners[1] = activeRunner(1, "alpha", 4)
	f.store.runners[2] = activeRunner(2, "beta", 4)
	f.store.runners[1].Priority = 10 // preferred, but loses the race
	f.fleet.Upsert(f.store.runners[1])
	f.fleet.Upsert(f.store.runners[2])

	f.store.assignErrs["exec-1"] = []error{
		fmt.Errorf("at capacity: %w", store.ErrPreconditionFailed),
	}

	f.sched.RunPass(context.Background())

	assert.Equal(t, []string{"exec-1->2"}, f.store.assigned, "race loser excluded on retry")
	assert.Equal(t, 0, f.fleet.Inflight(1))
	assert.Equal(t, 1, f.fleet.Inflight(2))
}

func TestPassGivesUpAfterRetryBudget(t *testing.T) {
	f := newFixture(t)
	f.store.queued = []*ent.Execution{queuedExec("exec-1")}
	f.store.runners[1] = activeRunner(1, "alpha", 4)
	f.fleet.Upsert(f.store.runners[1])

	f.store.assignErrs["exec-1"] = []error{
		fmt.Errorf("race: %w", store.ErrPreconditionFailed),
		fmt.Errorf("race: %w", store.ErrPreconditionFailed),
		fmt.Errorf("race: %w", store.ErrPreconditionFailed),
		fmt.Errorf("race: %w", store.ErrPreconditionFailed),
	}

	f.sched.RunPass(context.Background())

	assert.Empty(t, f.store.assigned)
	assert.Empty(t, f.disp.started)
}

func TestPassAdvancesRoundRobinCursor(t *testing.T) {
	f := newFixture(t)
	f.store.queued = []*ent.Execution{queuedExec("exec-1"), queuedExec("exec-2")}
	f.store.runners[1] = activeRunner(1, "alpha", 4)
	f.store.runners[2] = activeRunner(2, "beta", 4)
	f.fleet.Upsert(f.store.runners[1])
	f.fleet.Upsert(f.store.runners[2])
	f.store.activeRules = []*ent.BalancingRule{
		{ID: 9, Kind: balancingrule.KindRoundRobin, Active: true},
	}

	f.sched.RunPass(context.Background())

	assert.Equal(t, []string{"exec-1->1", "exec-2->2"}, f.store.assigned)
	assert.Equal(t, []string{"9:0->1", "9:1->2"}, f.store.cursors)
}

func TestWakeTriggersPass(t *testing.T) {
	f := newFixture(t)
	f.store.queued = []*ent.Execution{queuedExec("exec-1")}
	f.store.runners[1] = activeRunner(1, "alpha", 4)
	f.fleet.Upsert(f.store.runners[1])

	f.sched.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, f.sched.Stop(ctx))
	}()

	f.sched.Wake()

	require.Eventually(t, func() bool {
		f.store.mu.Lock()
		defer f.store.mu.Unlock()
		return len(f.store.assigned) == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestBusEventWakesScheduler(t *testing.T) {
	f := newFixture(t)
	f.store.queued = []*ent.Execution{queuedExec("exec-1")}
	f.store.runners[1] = activeRunner(1, "alpha", 4)
	f.fleet.Upsert(f.store.runners[1])

	f.sched.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, f.sched.Stop(ctx))
	}()

	f.bus.Publish(events.Event{Kind: events.KindExecutionQueued, ExecutionID: "exec-1"})

	require.Eventually(t, func() bool {
		f.store.mu.Lock()
		defer f.store.mu.Unlock()
		return len(f.store.assigned) == 1
	}, 5*time.Second, 10*time.Millisecond)
}
