package ingest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/config"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

type sweepStore struct {
	mu        sync.Mutex
	overdue   []*ent.Execution
	finalized map[string]string // execID -> reason
}

func newSweepStore() *sweepStore {
	return &sweepStore{finalized: make(map[string]string)}
}

func (s *sweepStore) ListOverdueExecutions(_ context.Context, _, _ time.Time, _ int) ([]*ent.Execution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*ent.Execution(nil), s.overdue...), nil
}

func (s *sweepStore) FinalizeExecution(_ context.Context, execID string, status execution.Status, _ *models.AggregatedResults, reason string) (*store.ApplyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, exec := range s.overdue {
		if exec.ID == execID {
			if store.IsTerminal(exec.Status) {
				return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeStale}, nil
			}
			exec.Status = status
			exec.StatusReason = reason
			s.finalized[execID] = reason
			s.overdue = append(s.overdue[:i], s.overdue[i+1:]...)
			return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeApplied}, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *sweepStore) reasons() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.finalized))
	for k, v := range s.finalized {
		out[k] = v
	}
	return out
}

func sweeperFixture(clk *testingclock.FakeClock, st *sweepStore) (*Sweeper, *recordingPublisher, *recordingSlots, *recordingNotifier) {
	cfg := &config.IngestConfig{
		ExecutionTimeout: 30 * time.Minute,
		SweepInterval:    30 * time.Second,
	}
	pub := &recordingPublisher{}
	slots := &recordingSlots{}
	not := &recordingNotifier{}
	return NewSweeper(cfg, st, pub, slots, not, clk), pub, slots, not
}

func overdueExec(id string, status execution.Status, runnerID int) *ent.Execution {
	return &ent.Execution{ID: id, Status: status, AssignedRunnerID: &runnerID}
}

func TestSweepFinalizesOverdueExecutions(t *testing.T) {
	st := newSweepStore()
	st.overdue = []*ent.Execution{
		overdueExec("exec-run", execution.StatusRunning, 1),
		overdueExec("exec-stuck", execution.StatusAssigned, 2),
	}

	sweeper, pub, slots, not := sweeperFixture(testingclock.NewFakeClock(time.Now()), st)
	sweeper.Sweep(context.Background())

	assert.Equal(t, map[string]string{
		"exec-run":   ReasonExecutionTimeout,
		"exec-stuck": ReasonStartTimeout,
	}, st.reasons())
	assert.ElementsMatch(t, []int{1, 2}, slots.decs)
	assert.ElementsMatch(t, []string{"exec-run", "exec-stuck"}, not.execs)
	assert.Len(t, pub.completed, 2)
}

func TestSweepSkipsAlreadyTerminal(t *testing.T) {
	st := newSweepStore()
	st.overdue = []*ent.Execution{
		overdueExec("exec-done", execution.StatusCompleted, 1),
	}

	sweeper, pub, slots, _ := sweeperFixture(testingclock.NewFakeClock(time.Now()), st)
	sweeper.Sweep(context.Background())

	assert.Empty(t, st.reasons())
	assert.Empty(t, pub.completed)
	assert.Empty(t, slots.decs)
}

func TestSweeperLoopFiresOnTick(t *testing.T) {
	st := newSweepStore()
	st.overdue = []*ent.Execution{
		overdueExec("exec-run", execution.StatusRunning, 1),
	}

	clk := testingclock.NewFakeClock(time.Now())
	sweeper, _, _, _ := sweeperFixture(clk, st)

	sweeper.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, sweeper.Stop(ctx))
	}()

	// The ticker is registered asynchronously; wait for a waiter before
	// stepping the clock.
	require.Eventually(t, func() bool { return clk.HasWaiters() }, 5*time.Second, time.Millisecond)
	clk.Step(31 * time.Second)

	require.Eventually(t, func() bool {
		return len(st.reasons()) == 1
	}, 5*time.Second, 10*time.Millisecond)
}
