package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent/runner"
)

func TestAppendAndCatchupAuditEvents(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	record := func(channel, execID, typ string) int {
		id, err := s.AppendAuditEvent(ctx, channel, execID, map[string]any{"type": typ})
		require.NoError(t, err)
		return id
	}

	first := record("executions", "exec-1", "execution.queued")
	second := record("executions", "exec-1", "execution.assigned")
	record("executions", "exec-2", "execution.queued")
	record("runners", "", "runner.registered")

	t.Run("ids are monotonic", func(t *testing.T) {
		assert.Greater(t, second, first)
	})

	t.Run("channel catchup from cursor", func(t *testing.T) {
		events, err := s.CatchupAuditEvents(ctx, "executions", 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, "execution.queued", events[0].Payload["type"])

		later, err := s.CatchupAuditEvents(ctx, "executions", first, 10)
		require.NoError(t, err)
		assert.Len(t, later, 2, "cursor excludes events at or before it")
	})

	t.Run("per-execution channel filters the global stream", func(t *testing.T) {
		events, err := s.CatchupAuditEvents(ctx, "execution:exec-1", 0, 10)
		require.NoError(t, err)
		assert.Len(t, events, 2)

		events, err = s.CatchupAuditEvents(ctx, "execution:exec-2", 0, 10)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("other channels are invisible", func(t *testing.T) {
		events, err := s.CatchupAuditEvents(ctx, "runners", 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "runner.registered", events[0].Payload["type"])
	})

	t.Run("limit caps the batch", func(t *testing.T) {
		events, err := s.CatchupAuditEvents(ctx, "executions", 0, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})
}

func TestPruneAuditEvents(t *testing.T) {
	s, clk := setupStore(t)
	ctx := context.Background()

	_, err := s.AppendAuditEvent(ctx, "executions", "", map[string]any{"type": "old"})
	require.NoError(t, err)

	clk.Step(48 * time.Hour)
	_, err = s.AppendAuditEvent(ctx, "executions", "", map[string]any{"type": "new"})
	require.NoError(t, err)

	n, err := s.PruneAuditEvents(ctx, testEpoch.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	remaining, err := s.CatchupAuditEvents(ctx, "executions", 0, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "new", remaining[0].Payload["type"])
}

func TestPruneHealthSamples(t *testing.T) {
	s, clk := setupStore(t)
	ctx := context.Background()

	r := mustCreateRunner(t, s, "prune-runner", 1)

	require.NoError(t, s.RecordHealthSample(ctx, r.ID, HealthSampleInput{
		Health: runner.HealthHealthy, LatencyMs: 5,
	}))
	clk.Step(48 * time.Hour)
	require.NoError(t, s.RecordHealthSample(ctx, r.ID, HealthSampleInput{
		Health: runner.HealthHealthy, LatencyMs: 6,
	}))

	n, err := s.PruneHealthSamples(ctx, testEpoch.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := s.client.HealthSample.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
