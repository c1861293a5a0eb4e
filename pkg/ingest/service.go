// Package ingest processes runner progress webhooks: the running signal,
// per-shard results, and the final report. It owns result aggregation and the
// completion sweeper that recovers executions whose runner went silent.
package ingest

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/pkg/models"
	"github.com/baton-ci/baton/pkg/store"
)

// ErrBadToken means the bearer token does not match the assigned runner's
// webhook token (or the execution has no assigned runner to authenticate
// against). The handler answers 401 without detail.
var ErrBadToken = errors.New("webhook token mismatch")

// ReasonMissingShards is set when a final report arrives with shards absent.
const ReasonMissingShards = "missing_shards"

// Store is the data-layer slice the ingest path needs.
type Store interface {
	GetExecution(ctx context.Context, id string) (*ent.Execution, error)
	GetRunner(ctx context.Context, id int) (*ent.Runner, error)
	ApplyRunning(ctx context.Context, execID string, at time.Time) (*store.ApplyResult, error)
	RecordShard(ctx context.Context, execID string, index int, result models.ShardResult) (*store.ApplyResult, error)
	FinalizeExecution(ctx context.Context, execID string, status execution.Status, aggregated *models.AggregatedResults, reason string) (*store.ApplyResult, error)
}

// Publisher announces ingest-driven transitions.
type Publisher interface {
	ExecutionStarted(ctx context.Context, exec *ent.Execution)
	ShardCompleted(ctx context.Context, exec *ent.Execution, index int, result models.ShardResult)
	ExecutionCompleted(ctx context.Context, exec *ent.Execution, reason string)
}

// Slots releases advisory runner capacity on terminal transitions.
type Slots interface {
	DecInflight(id int)
}

// Notifier delivers the client webhook on terminal transitions. May be nil.
type Notifier interface {
	NotifyCompletion(exec *ent.Execution)
}

// Ack is the processed outcome the HTTP handler maps onto a status code.
type Ack struct {
	Outcome   store.Outcome
	Execution *ent.Execution
}

// Service is stateless; every webhook is one Store round trip.
type Service struct {
	store     Store
	publisher Publisher
	slots     Slots
	notifier  Notifier
	logger    *slog.Logger
}

// NewService wires the ingest path. notifier may be nil.
func NewService(st Store, publisher Publisher, slots Slots, notifier Notifier) *Service {
	return &Service{
		store:     st,
		publisher: publisher,
		slots:     slots,
		notifier:  notifier,
		logger:    slog.With("component", "webhook_ingest"),
	}
}

// Process applies one runner webhook. The token is the bearer value from the
// Authorization header; it must match the assigned runner's webhook token.
func (s *Service) Process(ctx context.Context, hook models.RunnerWebhook, token string) (*Ack, error) {
	if hook.ExecutionID == "" {
		return nil, store.NewValidationError("execution_id", "required")
	}

	exec, err := s.store.GetExecution(ctx, hook.ExecutionID)
	if err != nil {
		return nil, err
	}
	if err := s.authenticate(ctx, exec, token); err != nil {
		return nil, err
	}

	switch hook.Type {
	case models.WebhookTypeRunning:
		return s.processRunning(ctx, exec, hook)
	case models.WebhookTypeShardComplete:
		return s.processShard(ctx, exec, hook)
	case models.WebhookTypeFinal:
		return s.processFinal(ctx, exec, hook)
	default:
		return nil, store.NewValidationError("type", fmt.Sprintf("unknown webhook type %q", hook.Type))
	}
}

// authenticate compares the presented token against the assigned runner's
// token in constant time. An execution nobody is assigned to cannot accept
// runner webhooks at all.
func (s *Service) authenticate(ctx context.Context, exec *ent.Execution, token string) error {
	if exec.AssignedRunnerID == nil {
		return ErrBadToken
	}
	rnr, err := s.store.GetRunner(ctx, *exec.AssignedRunnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBadToken
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(rnr.WebhookToken)) != 1 {
		return ErrBadToken
	}
	return nil
}

func (s *Service) processRunning(ctx context.Context, exec *ent.Execution, hook models.RunnerWebhook) (*Ack, error) {
	var at time.Time
	if hook.StartedAt != nil {
		at = *hook.StartedAt
	}
	res, err := s.store.ApplyRunning(ctx, exec.ID, at)
	if err != nil {
		return nil, err
	}
	if res.Outcome == store.OutcomeApplied {
		s.publisher.ExecutionStarted(ctx, res.Execution)
	}
	return &Ack{Outcome: res.Outcome, Execution: res.Execution}, nil
}

func (s *Service) processShard(ctx context.Context, exec *ent.Execution, hook models.RunnerWebhook) (*Ack, error) {
	if hook.ShardID == nil {
		return nil, store.NewValidationError("shard_id", "required for shard-complete")
	}
	if hook.Results == nil {
		return nil, store.NewValidationError("results", "required for shard-complete")
	}
	if hook.TotalShards != nil && *hook.TotalShards != exec.TotalShards {
		return nil, store.NewValidationError("total_shards",
			fmt.Sprintf("execution has %d shards, webhook says %d", exec.TotalShards, *hook.TotalShards))
	}

	result := hook.ShardOutcome()
	res, err := s.store.RecordShard(ctx, exec.ID, *hook.ShardID, result)
	if err != nil {
		return nil, err
	}
	if res.Outcome != store.OutcomeApplied {
		return &Ack{Outcome: res.Outcome, Execution: res.Execution}, nil
	}

	s.publisher.ShardCompleted(ctx, res.Execution, *hook.ShardID, result)

	// Last shard in: aggregate and finalize right away. A crash between the
	// two commits leaves a fully-sharded running execution for the sweeper.
	if res.Completed {
		return s.finalizeFromShards(ctx, res.Execution)
	}
	return &Ack{Outcome: res.Outcome, Execution: res.Execution}, nil
}

func (s *Service) processFinal(ctx context.Context, exec *ent.Execution, hook models.RunnerWebhook) (*Ack, error) {
	// Explicit error/cancelled finals carry no results worth aggregating.
	if hook.Status == models.ResultError || hook.Status == models.ResultCancelled {
		res, err := s.store.FinalizeExecution(ctx, exec.ID, ExecutionStatus(hook.Status), nil, "runner_reported_"+hook.Status)
		if err != nil {
			return nil, err
		}
		return s.ackTerminal(ctx, res)
	}

	// Single-shard: a final carrying results or a status doubles as the one
	// shard report.
	if exec.TotalShards == 1 && (hook.Results != nil || hook.Status != "") {
		res, err := s.store.RecordShard(ctx, exec.ID, 1, hook.ShardOutcome())
		if err != nil {
			return nil, err
		}
		if res.Outcome == store.OutcomeStale || res.Outcome == store.OutcomeInvalid {
			return &Ack{Outcome: res.Outcome, Execution: res.Execution}, nil
		}
		return s.finalizeFromShards(ctx, res.Execution)
	}

	if exec.TotalShards == 1 && hook.Results == nil && hook.Status == "" {
		return nil, store.NewValidationError("results", "final on a single-shard execution needs results or a status")
	}

	// Sharded: aggregate whatever is present. Missing shards make it error.
	latest, err := s.store.GetExecution(ctx, exec.ID)
	if err != nil {
		return nil, err
	}
	return s.finalizeFromShards(ctx, latest)
}

// finalizeFromShards aggregates the recorded shard map and commits the
// terminal transition. Incomplete shard maps finalize as error with no
// aggregated results.
func (s *Service) finalizeFromShards(ctx context.Context, exec *ent.Execution) (*Ack, error) {
	agg := Aggregate(exec.ShardResults, exec.TotalShards)

	var res *store.ApplyResult
	var err error
	if len(exec.ShardResults) < exec.TotalShards {
		res, err = s.store.FinalizeExecution(ctx, exec.ID, execution.StatusError, nil, ReasonMissingShards)
	} else {
		res, err = s.store.FinalizeExecution(ctx, exec.ID, ExecutionStatus(agg.Status), agg, "")
	}
	if err != nil {
		return nil, err
	}
	return s.ackTerminal(ctx, res)
}

// ackTerminal runs the post-terminal bookkeeping exactly once, on the Applied
// outcome: completion event, slot release, client notification.
func (s *Service) ackTerminal(ctx context.Context, res *store.ApplyResult) (*Ack, error) {
	if res.Outcome == store.OutcomeApplied {
		exec := res.Execution
		s.publisher.ExecutionCompleted(ctx, exec, exec.StatusReason)
		if exec.AssignedRunnerID != nil {
			s.slots.DecInflight(*exec.AssignedRunnerID)
		}
		if s.notifier != nil {
			s.notifier.NotifyCompletion(exec)
		}
		s.logger.Info("execution finalized",
			"execution_id", exec.ID, "status", exec.Status, "reason", exec.StatusReason)
	}
	return &Ack{Outcome: res.Outcome, Execution: res.Execution}, nil
}
