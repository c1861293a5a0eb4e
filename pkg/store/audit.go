package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/auditevent"
	"github.com/baton-ci/baton/ent/healthsample"
)

// executionChannelPrefix scopes per-execution catch-up reads. Execution
// events are persisted once on the global channel; the per-execution view
// is a filter, not a second row.
const executionChannelPrefix = "execution:"

// AppendAuditEvent persists one domain event and returns its serial id,
// which doubles as the WebSocket catch-up cursor.
func (s *Store) AppendAuditEvent(ctx context.Context, channel, executionID string, payload map[string]any) (int, error) {
	writeCtx, cancel := writeCtx()
	defer cancel()

	create := s.client.AuditEvent.Create().
		SetChannel(channel).
		SetPayload(payload).
		SetCreatedAt(s.clock.Now())
	if executionID != "" {
		create = create.SetExecutionID(executionID)
	}

	ev, err := create.Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to append audit event: %w", err)
	}
	return ev.ID, nil
}

// CatchupEvent is one row of the catch-up query.
type CatchupEvent struct {
	ID      int
	Payload map[string]any
}

// CatchupAuditEvents returns up to limit events after sinceID for a channel,
// oldest first. "execution:{id}" channels read the global executions channel
// filtered by execution id.
func (s *Store) CatchupAuditEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	query := s.client.AuditEvent.Query().
		Where(auditevent.IDGT(sinceID))

	if execID, ok := strings.CutPrefix(channel, executionChannelPrefix); ok {
		query = query.Where(auditevent.ExecutionIDEQ(execID))
	} else {
		query = query.Where(auditevent.ChannelEQ(channel))
	}

	rows, err := query.
		Order(ent.Asc(auditevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	events := make([]CatchupEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, CatchupEvent{ID: row.ID, Payload: row.Payload})
	}
	return events, nil
}

// PruneAuditEvents deletes audit events older than the cutoff.
func (s *Store) PruneAuditEvents(ctx context.Context, olderThan time.Time) (int, error) {
	writeCtx, cancel := writeCtx()
	defer cancel()

	n, err := s.client.AuditEvent.Delete().
		Where(auditevent.CreatedAtLT(olderThan)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit events: %w", err)
	}
	return n, nil
}

// PruneHealthSamples deletes health samples older than the cutoff.
func (s *Store) PruneHealthSamples(ctx context.Context, olderThan time.Time) (int, error) {
	writeCtx, cancel := writeCtx()
	defer cancel()

	n, err := s.client.HealthSample.Delete().
		Where(healthsample.CheckedAtLT(olderThan)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune health samples: %w", err)
	}
	return n, nil
}
