package ingest

import (
	"context"
	"encoding/json"
	"reflect"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

// memStore mimics the Store's webhook transition semantics in memory.
type memStore struct {
	mu     sync.Mutex
	execs  map[string]*ent.Execution
	runner *ent.Runner
}

func newMemStore() *memStore {
	return &memStore{
		execs: make(map[string]*ent.Execution),
		runner: &ent.Runner{
			ID: 7, Name: "hook-1", Type: "webhook", WebhookToken: "good-token",
		},
	}
}

func (m *memStore) addExec(id string, status execution.Status, totalShards int) *ent.Execution {
	runnerID := m.runner.ID
	exec := &ent.Execution{
		ID:          id,
		Status:      status,
		TotalShards: totalShards,
	}
	if status != execution.StatusQueued {
		exec.AssignedRunnerID = &runnerID
	}
	m.execs[id] = exec
	return exec
}

func (m *memStore) GetExecution(_ context.Context, id string) (*ent.Execution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec, ok := m.execs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *exec
	return &cp, nil
}

func (m *memStore) GetRunner(_ context.Context, id int) (*ent.Runner, error) {
	if id != m.runner.ID {
		return nil, store.ErrNotFound
	}
	return m.runner, nil
}

func (m *memStore) ApplyRunning(_ context.Context, execID string, _ time.Time) (*store.ApplyResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec := m.execs[execID]
	switch {
	case exec.Status == execution.StatusRunning:
		return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeDuplicate}, nil
	case store.IsTerminal(exec.Status):
		return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeStale}, nil
	case exec.Status == execution.StatusQueued:
		return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeInvalid}, nil
	}
	exec.Status = execution.StatusRunning
	return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeApplied}, nil
}

func (m *memStore) RecordShard(_ context.Context, execID string, index int, result models.ShardResult) (*store.ApplyResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec := m.execs[execID]
	if index < 1 || index > exec.TotalShards {
		return nil, store.NewValidationError("shard_index", "out of range")
	}
	key := strconv.Itoa(index)
	if prev, ok := exec.ShardResults[key]; ok && reflect.DeepEqual(prev, result) {
		return &store.ApplyResult{
			Execution: exec,
			Outcome:   store.OutcomeDuplicate,
			Completed: len(exec.ShardResults) == exec.TotalShards,
		}, nil
	}
	if store.IsTerminal(exec.Status) {
		return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeStale}, nil
	}
	if _, ok := exec.ShardResults[key]; ok {
		return nil, store.ErrConflict
	}
	if exec.ShardResults == nil {
		exec.ShardResults = make(map[string]models.ShardResult)
	}
	exec.ShardResults[key] = result
	exec.Status = execution.StatusRunning
	return &store.ApplyResult{
		Execution: exec,
		Outcome:   store.OutcomeApplied,
		Completed: len(exec.ShardResults) == exec.TotalShards,
	}, nil
}

func (m *memStore) FinalizeExecution(_ context.Context, execID string, status execution.Status, aggregated *models.AggregatedResults, reason string) (*store.ApplyResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exec := m.execs[execID]
	if store.IsTerminal(exec.Status) {
		if exec.Status == status && exec.StatusReason == reason {
			return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeDuplicate}, nil
		}
		return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeStale}, nil
	}
	exec.Status = status
	exec.StatusReason = reason
	exec.AggregatedResults = aggregated
	return &store.ApplyResult{Execution: exec, Outcome: store.OutcomeApplied}, nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	started   []string
	shards    []int
	completed []string // "execID:status:reason"
}

func (p *recordingPublisher) ExecutionStarted(_ context.Context, exec *ent.Execution) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = append(p.started, exec.ID)
}

func (p *recordingPublisher) ShardCompleted(_ context.Context, _ *ent.Execution, index int, _ models.ShardResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shards = append(p.shards, index)
}

func (p *recordingPublisher) ExecutionCompleted(_ context.Context, exec *ent.Execution, reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed = append(p.completed, exec.ID+":"+string(exec.Status)+":"+reason)
}

type recordingSlots struct {
	mu   sync.Mutex
	decs []int
}

func (s *recordingSlots) DecInflight(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decs = append(s.decs, id)
}

type recordingNotifier struct {
	mu    sync.Mutex
	execs []string
}

func (n *recordingNotifier) NotifyCompletion(exec *ent.Execution) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.execs = append(n.execs, exec.ID)
}

func serviceFixture() (*Service, *memStore, *recordingPublisher, *recordingSlots, *recordingNotifier) {
	st := newMemStore()
	pub := &recordingPublisher{}
	slots := &recordingSlots{}
	not := &recordingNotifier{}
	return NewService(st, pub, slots, not), st, pub, slots, not
}

func counts(passed, failed int) *models.ResultCounts {
	return &models.ResultCounts{Total: passed + failed, Passed: passed, Failed: failed}
}

func TestProcessRunning(t *testing.T) {
	svc, st, pub, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusAssigned, 1)

	ack, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeRunning,
	}, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, ack.Outcome)
	assert.Equal(t, []string{"exec-1"}, pub.started)

	// Re-delivery is a duplicate no-op.
	ack, err = svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeRunning,
	}, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeDuplicate, ack.Outcome)
	assert.Len(t, pub.started, 1)
}

func TestProcessRejectsBadToken(t *testing.T) {
	svc, st, _, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusAssigned, 1)

	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeRunning,
	}, "wrong-token")
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestProcessRejectsUnassignedExecution(t *testing.T) {
	svc, st, _, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusQueued, 1)

	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeRunning,
	}, "good-token")
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestProcessUnknownExecution(t *testing.T) {
	svc, _, _, _, _ := serviceFixture()
	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "ghost", Type: models.WebhookTypeRunning,
	}, "good-token")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProcessShardCompleteMidway(t *testing.T) {
	svc, st, pub, slots, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 3)

	one := 1
	ack, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &one, Results: counts(30, 0),
	}, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, ack.Outcome)
	assert.Equal(t, []int{1}, pub.shards)
	assert.Empty(t, pub.completed, "execution not complete yet")
	assert.Empty(t, slots.decs)
}

// TestProcessShardCompleteWirePayload feeds the service a body exactly as a
// runner posts it, to pin the field names the ingest path binds.
func TestProcessShardCompleteWirePayload(t *testing.T) {
	svc, st, pub, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 3)

	payload := `{
		"execution_id": "exec-1",
		"type": "shard-complete",
		"shard_id": 2,
		"total_shards": 3,
		"status": "passed",
		"results": {"total": 25, "passed": 24, "failed": 0, "skipped": 1},
		"artifacts": {"report_url": "https://ci.example.com/reports/exec-1-2"}
	}`
	var hook models.RunnerWebhook
	require.NoError(t, json.Unmarshal([]byte(payload), &hook))

	ack, err := svc.Process(context.Background(), hook, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, ack.Outcome)
	assert.Equal(t, []int{2}, pub.shards)

	stored := st.execs["exec-1"].ShardResults["2"]
	assert.Equal(t, models.ResultPassed, stored.Status)
	assert.Equal(t, 25, stored.Total)
	assert.Equal(t, 1, stored.Skipped)
	require.NotNil(t, stored.Artifacts)
	assert.Equal(t, "https://ci.example.com/reports/exec-1-2", stored.Artifacts.ReportURL)
}

func TestProcessShardTotalShardsMismatch(t *testing.T) {
	svc, st, _, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 3)

	one, five := 1, 5
	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &one, TotalShards: &five, Results: counts(10, 0),
	}, "good-token")
	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "total_shards", verr.Field)
}

func TestProcessLastShardFinalizes(t *testing.T) {
	svc, st, pub, slots, not := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 2)

	one, two := 1, 2
	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &one, Results: counts(93, 0),
	}, "good-token")
	require.NoError(t, err)

	ack, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &two, Results: counts(4, 3),
	}, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, ack.Outcome)

	final := st.execs["exec-1"]
	assert.Equal(t, execution.StatusFailed, final.Status)
	require.NotNil(t, final.AggregatedResults)
	assert.Equal(t, 100, final.AggregatedResults.Total)
	assert.Equal(t, 97, final.AggregatedResults.Passed)
	assert.Equal(t, 3, final.AggregatedResults.Failed)

	assert.Equal(t, []string{"exec-1:failed:"}, pub.completed)
	assert.Equal(t, []int{7}, slots.decs)
	assert.Equal(t, []string{"exec-1"}, not.execs)
}

func TestProcessDuplicateShardIsNoOp(t *testing.T) {
	svc, st, pub, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 2)

	one := 1
	hook := models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &one, Results: counts(10, 0),
	}
	_, err := svc.Process(context.Background(), hook, "good-token")
	require.NoError(t, err)

	ack, err := svc.Process(context.Background(), hook, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeDuplicate, ack.Outcome)
	assert.Equal(t, []int{1}, pub.shards, "duplicate not re-announced")
}

func TestProcessConflictingShardResult(t *testing.T) {
	svc, st, _, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 2)

	one := 1
	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &one, Results: counts(10, 0),
	}, "good-token")
	require.NoError(t, err)

	_, err = svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &one, Results: counts(8, 2),
	}, "good-token")
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestProcessShardIndexOutOfRange(t *testing.T) {
	svc, st, _, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 2)

	five := 5
	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &five, Results: counts(1, 0),
	}, "good-token")
	var verr *store.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProcessFinalSingleShard(t *testing.T) {
	svc, st, pub, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 1)

	ack, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeFinal,
		Results: counts(42, 0),
	}, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, ack.Outcome)

	final := st.execs["exec-1"]
	assert.Equal(t, execution.StatusCompleted, final.Status)
	require.NotNil(t, final.AggregatedResults)
	assert.Equal(t, 42, final.AggregatedResults.Total)
	assert.Len(t, pub.completed, 1)
}

func TestProcessRedeliveredFinalIsDuplicate(t *testing.T) {
	svc, st, pub, slots, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 1)

	hook := models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeFinal,
		Status: models.ResultPassed, Results: counts(42, 0),
	}
	_, err := svc.Process(context.Background(), hook, "good-token")
	require.NoError(t, err)

	ack, err := svc.Process(context.Background(), hook, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeDuplicate, ack.Outcome)
	assert.Len(t, pub.completed, 1, "terminal side effects fire once")
	assert.Len(t, slots.decs, 1)
}

func TestProcessFinalWithMissingShards(t *testing.T) {
	svc, st, _, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 3)

	one := 1
	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeShardComplete,
		ShardID: &one, Results: counts(10, 0),
	}, "good-token")
	require.NoError(t, err)

	ack, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeFinal,
	}, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, ack.Outcome)

	final := st.execs["exec-1"]
	assert.Equal(t, execution.StatusError, final.Status)
	assert.Equal(t, ReasonMissingShards, final.StatusReason)
	assert.Nil(t, final.AggregatedResults)
}

func TestProcessFinalRunnerReportedError(t *testing.T) {
	svc, st, _, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 1)

	ack, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeFinal,
		Status: models.ResultError,
	}, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeApplied, ack.Outcome)
	assert.Equal(t, execution.StatusError, st.execs["exec-1"].Status)
	assert.Equal(t, "runner_reported_error", st.execs["exec-1"].StatusReason)
}

func TestProcessAfterCancelIsStale(t *testing.T) {
	svc, st, pub, slots, _ := serviceFixture()
	exec := st.addExec("exec-1", execution.StatusCancelled, 1)
	exec.StatusReason = "user_requested"

	ack, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: models.WebhookTypeFinal,
		Results: counts(10, 0),
	}, "good-token")
	require.NoError(t, err)
	assert.Equal(t, store.OutcomeStale, ack.Outcome)
	assert.Equal(t, execution.StatusCancelled, st.execs["exec-1"].Status)
	assert.Empty(t, pub.completed)
	assert.Empty(t, slots.decs)
}

func TestProcessUnknownType(t *testing.T) {
	svc, st, _, _, _ := serviceFixture()
	st.addExec("exec-1", execution.StatusRunning, 1)

	_, err := svc.Process(context.Background(), models.RunnerWebhook{
		ExecutionID: "exec-1", Type: "progress",
	}, "good-token")
	var verr *store.ValidationError
	assert.ErrorAs(t, err, &verr)
}
