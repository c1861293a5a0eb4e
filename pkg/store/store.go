// Package store is baton's single write path. Every business-state mutation
// goes through a Store method, runs inside one transaction, and guards its
// state transition with a conditional update — a lost race surfaces as
// ErrPreconditionFailed (or an explicit Outcome), never as a silent double
// transition.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/utils/clock"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/execution"
)

// writeTimeout bounds critical writes that run on a detached context, so an
// HTTP client disconnect cannot abort a commit mid-flight.
const writeTimeout = 10 * time.Second

// Store wraps the Ent client with orchestrator-shaped operations.
type Store struct {
	client *ent.Client
	clock  clock.PassiveClock
	logger *slog.Logger
}

// New creates a Store. Panics on nil dependencies — wiring bugs should not
// survive process start.
func New(client *ent.Client, clk clock.PassiveClock) *Store {
	if client == nil {
		panic("store.New: ent client is nil")
	}
	if clk == nil {
		panic("store.New: clock is nil")
	}
	return &Store{
		client: client,
		clock:  clk,
		logger: slog.With("component", "store"),
	}
}

// Client exposes the underlying Ent client for read-only consumers
// (test helpers, health checks).
func (s *Store) Client() *ent.Client {
	return s.client
}

// writeCtx returns a detached, bounded context for critical writes.
func writeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), writeTimeout)
}

// Outcome classifies how a webhook-driven transition landed.
type Outcome int

const (
	// OutcomeApplied means the transition committed.
	OutcomeApplied Outcome = iota
	// OutcomeDuplicate means the state already reflects this exact input;
	// the write was an idempotent no-op.
	OutcomeDuplicate
	// OutcomeStale means the execution is already terminal; the input
	// arrived too late to matter.
	OutcomeStale
	// OutcomeInvalid means the transition is not legal from the current
	// state (e.g. a shard result for an execution never assigned).
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeStale:
		return "stale"
	case OutcomeInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ApplyResult carries the post-transition row plus how the write landed.
type ApplyResult struct {
	Execution *ent.Execution
	Outcome   Outcome

	// Completed is set by RecordShard when this write made the shard map
	// full — the caller aggregates and finalizes.
	Completed bool
}

// IsTerminal reports whether a status is one of the four terminal states.
func IsTerminal(st execution.Status) bool {
	switch st {
	case execution.StatusCompleted, execution.StatusFailed,
		execution.StatusError, execution.StatusCancelled:
		return true
	default:
		return false
	}
}
