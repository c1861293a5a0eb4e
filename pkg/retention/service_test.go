package retention

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/baton-ci/baton/pkg/config"
)

type pruneStore struct {
	mu          sync.Mutex
	sampleCalls []time.Time
	auditCalls  []time.Time
	sampleCount int
	auditCount  int
}

func (s *pruneStore) PruneHealthSamples(_ context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sampleCalls = append(s.sampleCalls, olderThan)
	return s.sampleCount, nil
}

func (s *pruneStore) PruneAuditEvents(_ context.Context, olderThan time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditCalls = append(s.auditCalls, olderThan)
	return s.auditCount, nil
}

func (s *pruneStore) calls() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sampleCalls), len(s.auditCalls)
}

func TestPruneUsesConfiguredCutoffs(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cfg := &config.RetentionConfig{
		HealthSampleTTL: 48 * time.Hour,
		AuditEventTTL:   10 * 24 * time.Hour,
		Interval:        time.Hour,
	}
	st := &pruneStore{sampleCount: 3, auditCount: 5}
	svc := NewService(cfg, st, testingclock.NewFakeClock(now))

	svc.Prune(context.Background())

	require.Len(t, st.sampleCalls, 1)
	require.Len(t, st.auditCalls, 1)
	assert.Equal(t, now.Add(-48*time.Hour), st.sampleCalls[0])
	assert.Equal(t, now.Add(-10*24*time.Hour), st.auditCalls[0])
}

func TestRetentionLoopFiresOnTick(t *testing.T) {
	cfg := &config.RetentionConfig{
		HealthSampleTTL: time.Hour,
		AuditEventTTL:   time.Hour,
		Interval:        time.Hour,
	}
	st := &pruneStore{}
	clk := testingclock.NewFakeClock(time.Now())
	svc := NewService(cfg, st, clk)

	svc.Start()

	// Initial eager pass.
	require.Eventually(t, func() bool {
		samples, _ := st.calls()
		return samples == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, clk.HasWaiters, 2*time.Second, 10*time.Millisecond)
	clk.Step(cfg.Interval)

	require.Eventually(t, func() bool {
		samples, audits := st.calls()
		return samples == 2 && audits == 2
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Stop(ctx))
}
