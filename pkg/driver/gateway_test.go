package driver

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

type scriptedDriver struct {
	mu       sync.Mutex
	attempts int
	errs     []error // consumed per attempt; nil past the end
	cancels  int
}

func (d *scriptedDriver) Type() string { return "webhook" }

func (d *scriptedDriver) Start(_ context.Context, _ Request) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attempts++
	if d.attempts <= len(d.errs) {
		return d.errs[d.attempts-1]
	}
	return nil
}

func (d *scriptedDriver) Cancel(_ context.Context, _ Request) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancels++
	return nil
}

func (d *scriptedDriver) startAttempts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attempts
}

type fakeFinalizer struct {
	mu     sync.Mutex
	calls  []string // reasons
	status execution.Status
}

func (f *fakeFinalizer) FinalizeExecution(_ context.Context, execID string, status execution.Status, _ *models.AggregatedResults, reason string) (*store.ApplyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, reason)
	f.status = status
	return &store.ApplyResult{
		Execution: &ent.Execution{ID: execID, Status: status, StatusReason: reason},
		Outcome:   store.OutcomeApplied,
	}, nil
}

func (f *fakeFinalizer) reasons() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeSlots struct {
	mu   sync.Mutex
	decs []int
}

func (s *fakeSlots) DecInflight(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decs = append(s.decs, id)
}

type fakeAnnouncer struct {
	mu     sync.Mutex
	events []string
}

func (a *fakeAnnouncer) ExecutionCompleted(_ context.Context, exec *ent.Execution, _ string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, exec.ID)
}

type fakeNotifier struct {
	mu    sync.Mutex
	execs []string
}

func (n *fakeNotifier) NotifyCompletion(exec *ent.Execution) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.execs = append(n.execs, exec.ID)
}

func gatewayFixture(drv Driver) (*Gateway, *fakeFinalizer, *fakeSlots, *fakeAnnouncer, *fakeNotifier) {
	cfg := &config.DriverConfig{
		StartRetries:    3,
		StartBackoff:    time.Millisecond,
		StartMaxElapsed: time.Second,
		CallbackBaseURL: "http://baton.internal",
	}
	fin := &fakeFinalizer{}
	slots := &fakeSlots{}
	ann := &fakeAnnouncer{}
	not := &fakeNotifier{}
	return NewGateway(cfg, fin, slots, ann, not, drv), fin, slots, ann, not
}

func dispatchAndWait(t *testing.T, gw *Gateway, exec *ent.Execution, rnr *ent.Runner) {
	t.Helper()
	gw.Dispatch(exec, rnr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, gw.Stop(ctx))
}

func testExec() *ent.Execution {
	return &ent.Execution{ID: "exec-1", Status: execution.StatusAssigned}
}

func testRunner() *ent.Runner {
	return &ent.Runner{ID: 7, Name: "hook-1", Type: "webhook", EndpointURL: "http://runner", WebhookToken: "tok"}
}

func TestDispatchSucceedsAfterTransientFailures(t *testing.T) {
	drv := &scriptedDriver{errs: []error{
		transient("boom", nil),
		unavailable("busy", nil),
	}}
	gw, fin, slots, _, _ := gatewayFixture(drv)

	dispatchAndWait(t, gw, testExec(), testRunner())

	assert.Equal(t, 3, drv.startAttempts())
	assert.Empty(t, fin.reasons(), "success must not finalize")
	assert.Empty(t, slots.decs)
}

func TestDispatchExhaustedBudgetFinalizesError(t *testing.T) {
	drv := &scriptedDriver{errs: []error{
		transient("boom", nil),
		transient("boom", nil),
		transient("boom", nil),
	}}
	gw, fin, slots, ann, not := gatewayFixture(drv)

	dispatchAndWait(t, gw, testExec(), testRunner())

	assert.Equal(t, 3, drv.startAttempts())
	require.Equal(t, []string{ReasonUnavailable}, fin.reasons())
	assert.Equal(t, execution.StatusError, fin.status)
	assert.Equal(t, []int{7}, slots.decs)
	assert.Equal(t, []string{"exec-1"}, ann.events)
	assert.Equal(t, []string{"exec-1"}, not.execs)
}

func TestDispatchStopsOnNonRetryableError(t *testing.T) {
	drv := &scriptedDriver{errs: []error{
		badRequest("rejected", nil),
	}}
	gw, fin, _, _, _ := gatewayFixture(drv)

	dispatchAndWait(t, gw, testExec(), testRunner())

	assert.Equal(t, 1, drv.startAttempts(), "bad request must not be retried")
	assert.Equal(t, []string{ReasonStartFailed}, fin.reasons())
}

func TestDispatchUnknownRunnerTypeFailsImmediately(t *testing.T) {
	gw, fin, _, _, _ := gatewayFixture(&scriptedDriver{})

	rnr := testRunner()
	rnr.Type = "teleport"
	dispatchAndWait(t, gw, testExec(), rnr)

	assert.Equal(t, []string{ReasonStartFailed}, fin.reasons())
}

func TestCancelIsBestEffort(t *testing.T) {
	drv := &scriptedDriver{}
	gw, _, _, _, _ := gatewayFixture(drv)

	gw.Cancel(testExec(), testRunner())
	// Unknown type is silently skipped.
	other := testRunner()
	other.Type = "teleport"
	gw.Cancel(testExec(), other)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, gw.Stop(ctx))

	drv.mu.Lock()
	defer drv.mu.Unlock()
	assert.Equal(t, 1, drv.cancels)
}
