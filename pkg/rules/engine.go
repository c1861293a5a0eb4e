// Package rules implements runner selection for the scheduler. The engine is
// pure: it ranks an in-memory candidate snapshot against the active rule list
// and returns a decision. All persistence (the assignment itself, round-robin
// cursor advancement) happens in the caller.
package rules

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/gobwas/glob"
	"github.com/samber/lo"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/balancingrule"
	"github.com/baton-ci/baton/pkg/registry"
)

// ErrNoCandidates means no eligible runner exists right now. The execution
// stays queued; a later pass retries.
var ErrNoCandidates = errors.New("no eligible runner")

// Input is one selection problem. Rules must be active and ordered highest
// priority first (the Store's ListActiveRules order). Loads carries the
// advisory allocation score per runner for resource-based selection; missing
// entries read as zero load.
type Input struct {
	Execution  *ent.Execution
	Candidates []registry.Candidate
	Rules      []*ent.BalancingRule
	Loads      map[int]float64
}

// Decision is the engine's answer. Rule is nil when the fallback (no rule
// matched) chose the runner. NextCursor is set only for round-robin
// selections: the caller advances the rule's cursor from Rule.Cursor to
// *NextCursor after the assignment commits.
type Decision struct {
	Runner     registry.Candidate
	Rule       *ent.BalancingRule
	NextCursor *int
}

// Engine caches compiled glob patterns across passes. Safe for concurrent
// use, though the scheduler is its only caller.
type Engine struct {
	logger *slog.Logger

	mu    sync.Mutex
	globs map[string]glob.Glob
}

// New creates an engine with an empty pattern cache.
func New() *Engine {
	return &Engine{
		logger: slog.With("component", "rule_engine"),
		globs:  make(map[string]glob.Glob),
	}
}

// Select picks a runner for the execution. The first rule (in priority order)
// whose patterns match governs the choice; with no matching rule the fallback
// is priority-based selection over all candidates.
func (e *Engine) Select(in Input) (Decision, error) {
	if len(in.Candidates) == 0 {
		return Decision{}, ErrNoCandidates
	}

	for _, rule := range in.Rules {
		if !e.ruleMatches(rule, in.Execution) {
			continue
		}
		return e.apply(rule, in)
	}

	return Decision{Runner: pickByPriority(in.Candidates)}, nil
}

func (e *Engine) apply(rule *ent.BalancingRule, in Input) (Decision, error) {
	switch rule.Kind {
	case balancingrule.KindPriorityBased:
		return Decision{Runner: pickByPriority(in.Candidates), Rule: rule}, nil

	case balancingrule.KindResourceBased:
		return Decision{Runner: pickByLoad(in.Candidates, in.Loads), Rule: rule}, nil

	case balancingrule.KindRoundRobin:
		runner := pickRoundRobin(in.Candidates, rule.Cursor)
		next := runner.ID
		return Decision{Runner: runner, Rule: rule, NextCursor: &next}, nil

	case balancingrule.KindAffinity:
		matching := lo.Filter(in.Candidates, func(c registry.Candidate, _ int) bool {
			return hasCapabilities(c, rule.RequiredCapabilities)
		})
		if len(matching) == 0 {
			// No runner offers the capabilities: degrade rather than starve.
			e.logger.Debug("affinity rule matched no runner, degrading to priority selection",
				"rule_id", rule.ID, "execution_id", in.Execution.ID)
			matching = in.Candidates
		}
		return Decision{Runner: pickByPriority(matching), Rule: rule}, nil

	case balancingrule.KindTypeFilter:
		matching := lo.Filter(in.Candidates, func(c registry.Candidate, _ int) bool {
			return e.globMatch(rule.RunnerTypeFilter, c.Type)
		})
		if len(matching) == 0 {
			e.logger.Debug("type-filter rule matched no runner, degrading to priority selection",
				"rule_id", rule.ID, "execution_id", in.Execution.ID)
			matching = in.Candidates
		}
		return Decision{Runner: pickByPriority(matching), Rule: rule}, nil
	}

	// Unknown kinds can only come from a schema migration the engine predates.
	e.logger.Warn("unknown rule kind, falling back to priority selection", "rule_id", rule.ID, "kind", rule.Kind)
	return Decision{Runner: pickByPriority(in.Candidates)}, nil
}

// ruleMatches reports whether the rule's glob patterns cover the execution:
// suite, environment, and the runner-type filter when the execution pinned a
// type. Empty patterns match everything; an execution with no requested type
// is covered by any filter.
func (e *Engine) ruleMatches(rule *ent.BalancingRule, exec *ent.Execution) bool {
	if !e.globMatch(rule.TestSuitePattern, exec.TestSuite) ||
		!e.globMatch(rule.EnvironmentPattern, exec.Environment) {
		return false
	}
	if rule.RunnerTypeFilter == "" || exec.RequestedRunnerType == nil {
		return true
	}
	return e.globMatch(rule.RunnerTypeFilter, *exec.RequestedRunnerType)
}

func (e *Engine) globMatch(pattern, value string) bool {
	if pattern == "" {
		return true
	}

	e.mu.Lock()
	g, ok := e.globs[pattern]
	if !ok {
		var err error
		g, err = glob.Compile(pattern)
		if err != nil {
			// Patterns are validated at rule creation; a bad one here means
			// direct DB edits. Treat as non-matching.
			e.mu.Unlock()
			e.logger.Warn("invalid glob pattern in rule", "pattern", pattern, "error", err)
			return false
		}
		e.globs[pattern] = g
	}
	e.mu.Unlock()

	return g.Match(value)
}

// pickByPriority: highest runner priority wins; fewest inflight jobs breaks
// the tie, then lowest id for determinism.
func pickByPriority(candidates []registry.Candidate) registry.Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Priority > best.Priority ||
			(c.Priority == best.Priority && c.Inflight < best.Inflight) ||
			(c.Priority == best.Priority && c.Inflight == best.Inflight && c.ID < best.ID) {
			best = c
		}
	}
	return best
}

// pickByLoad: lowest allocation score wins; fewest inflight jobs breaks the
// tie, then lowest id.
func pickByLoad(candidates []registry.Candidate, loads map[int]float64) registry.Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if loads[c.ID] < loads[best.ID] ||
			(loads[c.ID] == loads[best.ID] && c.Inflight < best.Inflight) ||
			(loads[c.ID] == loads[best.ID] && c.Inflight == best.Inflight && c.ID < best.ID) {
			best = c
		}
	}
	return best
}

// pickRoundRobin: first candidate (by id) above the cursor, wrapping to the
// lowest id. The cursor is the previously selected runner's id, 0 initially.
func pickRoundRobin(candidates []registry.Candidate, cursor int) registry.Candidate {
	ordered := make([]registry.Candidate, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, c := range ordered {
		if c.ID > cursor {
			return c
		}
	}
	return ordered[0]
}

func hasCapabilities(c registry.Candidate, required []string) bool {
	return lo.Every(c.Capabilities, required)
}
