package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

// AuditSink is the slice of the Store the publisher persists through.
type AuditSink interface {
	AppendAuditEvent(ctx context.Context, channel, executionID string, payload map[string]any) (int, error)
}

// Publisher turns domain state changes into bus events. Persistent kinds are
// appended to the audit table first so the assigned serial id rides along as
// the catch-up cursor; transient kinds (queue depth) skip the table.
//
// Persistence failures are logged, not propagated: the state change already
// committed, and the Store stays the ground truth for reconnecting clients.
type Publisher struct {
	store  AuditSink
	bus    *Bus
	clock  clock.PassiveClock
	logger *slog.Logger
}

// NewPublisher creates a publisher over the given sink and bus.
func NewPublisher(store AuditSink, bus *Bus, clk clock.PassiveClock) *Publisher {
	return &Publisher{
		store:  store,
		bus:    bus,
		clock:  clk,
		logger: slog.With("component", "event_publisher"),
	}
}

func (p *Publisher) base(kind Kind, executionID string) BasePayload {
	return BasePayload{
		Type:        string(kind),
		ExecutionID: executionID,
		Timestamp:   p.clock.Now().Format(time.RFC3339Nano),
	}
}

// publish persists the payload (unless channel is empty), stamps the audit id
// into the wire form, and hands the event to the bus.
func (p *Publisher) publish(ctx context.Context, kind Kind, channel, executionID string, payload any, channels ...string) {
	m, err := toMap(payload)
	if err != nil {
		p.logger.Error("failed to encode event payload", "kind", kind, "error", err)
		return
	}

	auditID := 0
	if channel != "" {
		auditID, err = p.store.AppendAuditEvent(ctx, channel, executionID, m)
		if err != nil {
			p.logger.Error("failed to persist audit event", "kind", kind, "execution_id", executionID, "error", err)
		} else {
			m["id"] = auditID
		}
	}

	data, err := json.Marshal(m)
	if err != nil {
		p.logger.Error("failed to marshal event", "kind", kind, "error", err)
		return
	}

	p.bus.Publish(Event{
		Kind:        kind,
		ExecutionID: executionID,
		Channels:    channels,
		AuditID:     auditID,
		Data:        data,
	})
}

func toMap(payload any) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return m, nil
}

func executionChannels(executionID string) []string {
	return []string{ExecutionsChannel, ExecutionChannel(executionID)}
}

// ExecutionQueued announces a newly accepted execution.
func (p *Publisher) ExecutionQueued(ctx context.Context, exec *ent.Execution) {
	p.publish(ctx, KindExecutionQueued, ExecutionsChannel, exec.ID, ExecutionQueuedPayload{
		BasePayload: p.base(KindExecutionQueued, exec.ID),
		TestSuite:   exec.TestSuite,
		Environment: exec.Environment,
		Priority:    exec.Priority,
		TotalShards: exec.TotalShards,
	}, executionChannels(exec.ID)...)
}

// ExecutionAssigned announces a committed assignment. rule may be nil when
// the fallback path assigned without a matching rule.
func (p *Publisher) ExecutionAssigned(ctx context.Context, exec *ent.Execution, rnr *ent.Runner, rule *ent.BalancingRule) {
	payload := ExecutionAssignedPayload{
		BasePayload: p.base(KindExecutionAssigned, exec.ID),
		RunnerID:    rnr.ID,
		RunnerName:  rnr.Name,
	}
	if rule != nil {
		payload.RuleID = rule.ID
		payload.RuleKind = string(rule.Kind)
	}
	p.publish(ctx, KindExecutionAssigned, ExecutionsChannel, exec.ID, payload, executionChannels(exec.ID)...)
}

// ExecutionStarted announces the assigned → running transition.
func (p *Publisher) ExecutionStarted(ctx context.Context, exec *ent.Execution) {
	payload := ExecutionStartedPayload{
		BasePayload: p.base(KindExecutionStarted, exec.ID),
	}
	if exec.AssignedRunnerID != nil {
		payload.RunnerID = *exec.AssignedRunnerID
	}
	p.publish(ctx, KindExecutionStarted, ExecutionsChannel, exec.ID, payload, executionChannels(exec.ID)...)
}

// ShardCompleted announces one recorded shard result.
func (p *Publisher) ShardCompleted(ctx context.Context, exec *ent.Execution, index int, result models.ShardResult) {
	p.publish(ctx, KindShardCompleted, ExecutionsChannel, exec.ID, ShardCompletedPayload{
		BasePayload: p.base(KindShardCompleted, exec.ID),
		ShardIndex:  index,
		TotalShards: exec.TotalShards,
		Status:      result.Status,
		Passed:      result.Passed,
		Failed:      result.Failed,
	}, executionChannels(exec.ID)...)
}

// ExecutionCompleted announces a terminal transition. reason is empty for
// clean completions.
func (p *Publisher) ExecutionCompleted(ctx context.Context, exec *ent.Execution, reason string) {
	p.publish(ctx, KindExecutionCompleted, ExecutionsChannel, exec.ID, ExecutionCompletedPayload{
		BasePayload: p.base(KindExecutionCompleted, exec.ID),
		Status:      exec.Status,
		Reason:      reason,
		Aggregated:  exec.AggregatedResults,
	}, executionChannels(exec.ID)...)
}

// RunnerRegistered announces a new fleet member.
func (p *Publisher) RunnerRegistered(ctx context.Context, rnr *ent.Runner) {
	p.publish(ctx, KindRunnerRegistered, RunnersChannel, "", RunnerRegisteredPayload{
		BasePayload: p.base(KindRunnerRegistered, ""),
		RunnerID:    rnr.ID,
		RunnerName:  rnr.Name,
		RunnerType:  rnr.Type,
	}, RunnersChannel)
}

// RunnerHealthChanged announces a prober-confirmed health flip.
func (p *Publisher) RunnerHealthChanged(ctx context.Context, rnr *ent.Runner, previous runner.Health) {
	p.publish(ctx, KindRunnerHealthChanged, RunnersChannel, "", RunnerHealthChangedPayload{
		BasePayload: p.base(KindRunnerHealthChanged, ""),
		RunnerID:    rnr.ID,
		Health:      rnr.Health,
		Previous:    previous,
	}, RunnersChannel)
}

// RuleConfigured announces a created or patched balancing rule.
func (p *Publisher) RuleConfigured(ctx context.Context, rule *ent.BalancingRule) {
	p.publish(ctx, KindRuleConfigured, RunnersChannel, "", RuleConfiguredPayload{
		BasePayload: p.base(KindRuleConfigured, ""),
		RuleID:      rule.ID,
		RuleName:    rule.Name,
		Kind:        string(rule.Kind),
		Active:      rule.Active,
	}, RunnersChannel)
}

// QueueDepth publishes a transient queue snapshot. Not persisted.
func (p *Publisher) QueueDepth(queued, assigned, running int) {
	p.publish(context.Background(), KindQueueDepth, "", "", QueueDepthPayload{
		BasePayload: p.base(KindQueueDepth, ""),
		Queued:      queued,
		Assigned:    assigned,
		Running:     running,
	}, ExecutionsChannel)
}
