// Package registry keeps the scheduler's in-memory view of the runner fleet:
// lifecycle status, probed health and an advisory inflight counter per runner.
//
// The counters are an optimization, not the ground truth. Assignment commits
// re-check capacity inside the Store transaction under a row lock, so a stale
// counter costs at most one failed assignment attempt, never an oversubscribed
// runner.
package registry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

// Candidate is one runner eligible to receive work, as seen by the rule
// engine. Inflight reflects the advisory counter at snapshot time.
type Candidate struct {
	ID                int
	Name              string
	Type              string
	Priority          int
	Capabilities      []string
	MaxConcurrentJobs int
	Inflight          int
}

// FreeSlots returns remaining advisory capacity.
func (c Candidate) FreeSlots() int {
	return c.MaxConcurrentJobs - c.Inflight
}

type entry struct {
	id                int
	name              string
	runnerType        string
	priority          int
	capabilities      []string
	maxConcurrentJobs int
	status            runner.Status
	health            runner.Health
	inflight          int
}

// Loader is the slice of the Store the registry rebuilds from.
type Loader interface {
	ListRunners(ctx context.Context, filter models.RunnerFilter) ([]*ent.Runner, error)
	InflightByRunner(ctx context.Context) (map[int]int, error)
}

// Registry is safe for concurrent use.
type Registry struct {
	logger *slog.Logger

	mu      sync.RWMutex
	runners map[int]*entry
}

// New creates an empty registry. Call Rebuild before first use.
func New() *Registry {
	return &Registry{
		logger:  slog.With("component", "runner_registry"),
		runners: make(map[int]*entry),
	}
}

// Rebuild replaces the whole view from the Store: every non-decommissioned
// runner plus its live allocation count. Called at startup and available to
// background reconciliation.
func (r *Registry) Rebuild(ctx context.Context, loader Loader) error {
	runners, err := loader.ListRunners(ctx, models.RunnerFilter{})
	if err != nil {
		return err
	}
	inflight, err := loader.InflightByRunner(ctx)
	if err != nil {
		return err
	}

	fresh := make(map[int]*entry, len(runners))
	for _, rnr := range runners {
		if rnr.Status == runner.StatusDecommissioned {
			continue
		}
		e := entryFromRunner(rnr)
		e.inflight = inflight[rnr.ID]
		fresh[rnr.ID] = e
	}

	r.mu.Lock()
	r.runners = fresh
	r.mu.Unlock()

	r.logger.Info("registry rebuilt", "runners", len(fresh))
	return nil
}

func entryFromRunner(rnr *ent.Runner) *entry {
	return &entry{
		id:                rnr.ID,
		name:              rnr.Name,
		runnerType:        rnr.Type,
		priority:          rnr.Priority,
		capabilities:      append([]string(nil), rnr.Capabilities...),
		maxConcurrentJobs: rnr.MaxConcurrentJobs,
		status:            rnr.Status,
		health:            rnr.Health,
	}
}

// Upsert refreshes one runner's metadata after a register or update,
// preserving the inflight counter. Decommissioned runners are evicted.
func (r *Registry) Upsert(rnr *ent.Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rnr.Status == runner.StatusDecommissioned {
		delete(r.runners, rnr.ID)
		return
	}

	e := entryFromRunner(rnr)
	if prev, ok := r.runners[rnr.ID]; ok {
		e.inflight = prev.inflight
	}
	r.runners[rnr.ID] = e
}

// SetHealth updates a runner's probed health. Unknown ids are ignored.
func (r *Registry) SetHealth(id int, health runner.Health) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.runners[id]; ok {
		e.health = health
	}
}

// IncInflight bumps the advisory counter after a committed assignment.
func (r *Registry) IncInflight(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.runners[id]; ok {
		e.inflight++
	}
}

// DecInflight releases one slot after a terminal transition. Floored at
// zero: a restart-era completion must not wedge the counter negative.
func (r *Registry) DecInflight(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.runners[id]; ok && e.inflight > 0 {
		e.inflight--
	}
}

// Inflight returns the advisory counter, 0 for unknown runners.
func (r *Registry) Inflight(id int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.runners[id]; ok {
		return e.inflight
	}
	return 0
}

// CandidatesFor snapshots the runners eligible for an execution: active, not
// probed unhealthy, with free advisory capacity, honoring the execution's
// runner pins. Order is unspecified; the rule engine ranks them.
func (r *Registry) CandidatesFor(requestedType *string, requestedID *int) []Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make([]Candidate, 0, len(r.runners))
	for _, e := range r.runners {
		if e.status != runner.StatusActive {
			continue
		}
		if e.health == runner.HealthUnhealthy {
			continue
		}
		if e.inflight >= e.maxConcurrentJobs {
			continue
		}
		if requestedType != nil && *requestedType != "" && e.runnerType != *requestedType {
			continue
		}
		if requestedID != nil && e.id != *requestedID {
			continue
		}
		candidates = append(candidates, Candidate{
			ID:                e.id,
			Name:              e.name,
			Type:              e.runnerType,
			Priority:          e.priority,
			Capabilities:      append([]string(nil), e.capabilities...),
			MaxConcurrentJobs: e.maxConcurrentJobs,
			Inflight:          e.inflight,
		})
	}
	return candidates
}

// ActiveIDs lists runners currently tracked, for the prober's scan set.
func (r *Registry) ActiveIDs() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.runners)
}
