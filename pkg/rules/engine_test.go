package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/balancingrule"
	"github.com/baton-ci/baton/pkg/registry"
)

func exec(suite, env string) *ent.Execution {
	return &ent.Execution{ID: "exec-1", TestSuite: suite, Environment: env}
}

func cand(id, priority, inflight int) registry.Candidate {
	return registry.Candidate{ID: id, Priority: priority, Inflight: inflight, MaxConcurrentJobs: 4, Type: "webhook"}
}

func rule(id int, kind balancingrule.Kind) *ent.BalancingRule {
	return &ent.BalancingRule{ID: id, Kind: kind, Active: true}
}

func TestSelectNoCandidates(t *testing.T) {
	_, err := New().Select(Input{Execution: exec("unit", "staging")})
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestSelectFallbackWithoutRules(t *testing.T) {
	d, err := New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{cand(1, 10, 0), cand(2, 50, 0), cand(3, 30, 0)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Runner.ID)
	assert.Nil(t, d.Rule)
	assert.Nil(t, d.NextCursor)
}

func TestPriorityTieBreaks(t *testing.T) {
	// Same priority: fewest inflight wins.
	d, err := New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{cand(1, 50, 3), cand(2, 50, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Runner.ID)

	// Same priority and inflight: lowest id wins.
	d, err = New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{cand(7, 50, 1), cand(4, 50, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, d.Runner.ID)
}

func TestRulePatternMatching(t *testing.T) {
	smoke := rule(1, balancingrule.KindPriorityBased)
	smoke.TestSuitePattern = "smoke-*"
	smoke.EnvironmentPattern = "prod-*"

	engine := New()

	// Execution outside the patterns falls through to the fallback.
	d, err := engine.Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{cand(1, 10, 0)},
		Rules:      []*ent.BalancingRule{smoke},
	})
	require.NoError(t, err)
	assert.Nil(t, d.Rule)

	// Matching execution is governed by the rule.
	d, err = engine.Select(Input{
		Execution:  exec("smoke-checkout", "prod-eu"),
		Candidates: []registry.Candidate{cand(1, 10, 0)},
		Rules:      []*ent.BalancingRule{smoke},
	})
	require.NoError(t, err)
	require.NotNil(t, d.Rule)
	assert.Equal(t, smoke.ID, d.Rule.ID)
}

func TestFirstMatchingRuleGoverns(t *testing.T) {
	first := rule(1, balancingrule.KindResourceBased)
	second := rule(2, balancingrule.KindPriorityBased)

	d, err := New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{cand(1, 10, 0), cand(2, 90, 0)},
		Rules:      []*ent.BalancingRule{first, second},
		Loads:      map[int]float64{1: 0.5, 2: 8.0},
	})
	require.NoError(t, err)
	require.NotNil(t, d.Rule)
	assert.Equal(t, first.ID, d.Rule.ID)
	// Resource-based chose the least loaded, not the highest priority.
	assert.Equal(t, 1, d.Runner.ID)
}

func TestResourceBasedTreatsMissingLoadAsZero(t *testing.T) {
	r := rule(1, balancingrule.KindResourceBased)

	d, err := New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{cand(1, 0, 0), cand(2, 0, 0)},
		Rules:      []*ent.BalancingRule{r},
		Loads:      map[int]float64{1: 2.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Runner.ID)
}

func TestRoundRobinCursor(t *testing.T) {
	rr := rule(1, balancingrule.KindRoundRobin)
	candidates := []registry.Candidate{cand(3, 0, 0), cand(1, 0, 0), cand(7, 0, 0)}
	engine := New()

	sel := func(cursor int) (int, int) {
		rr.Cursor = cursor
		d, err := engine.Select(Input{
			Execution:  exec("unit", "staging"),
			Candidates: candidates,
			Rules:      []*ent.BalancingRule{rr},
		})
		require.NoError(t, err)
		require.NotNil(t, d.NextCursor)
		return d.Runner.ID, *d.NextCursor
	}

	id, next := sel(0)
	assert.Equal(t, 1, id)
	assert.Equal(t, 1, next)

	id, next = sel(1)
	assert.Equal(t, 3, id)
	assert.Equal(t, 3, next)

	id, next = sel(3)
	assert.Equal(t, 7, id)
	assert.Equal(t, 7, next)

	// Wrap around past the highest id.
	id, next = sel(7)
	assert.Equal(t, 1, id)
	assert.Equal(t, 1, next)
}

func TestAffinityFiltersByCapabilities(t *testing.T) {
	gpu := rule(1, balancingrule.KindAffinity)
	gpu.RequiredCapabilities = []string{"gpu", "linux"}

	gpuRunner := cand(1, 10, 0)
	gpuRunner.Capabilities = []string{"gpu", "linux", "ssd"}
	plain := cand(2, 90, 0)
	plain.Capabilities = []string{"linux"}

	d, err := New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{gpuRunner, plain},
		Rules:      []*ent.BalancingRule{gpu},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Runner.ID, "capability match beats higher priority")
}

func TestAffinityDegradesWhenNothingMatches(t *testing.T) {
	gpu := rule(1, balancingrule.KindAffinity)
	gpu.RequiredCapabilities = []string{"gpu"}

	d, err := New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{cand(1, 10, 0), cand(2, 90, 0)},
		Rules:      []*ent.BalancingRule{gpu},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Runner.ID, "falls back to priority selection over all candidates")
	require.NotNil(t, d.Rule)
}

func TestTypeFilter(t *testing.T) {
	docker := rule(1, balancingrule.KindTypeFilter)
	docker.RunnerTypeFilter = "docker"

	dockerRunner := cand(1, 10, 0)
	dockerRunner.Type = "docker"
	webhook := cand(2, 90, 0)

	d, err := New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{dockerRunner, webhook},
		Rules:      []*ent.BalancingRule{docker},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Runner.ID)

	// No runner of that type: degrade instead of starving the execution.
	d, err = New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{webhook},
		Rules:      []*ent.BalancingRule{docker},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Runner.ID)
}

func TestRunnerTypeFilterScopesRule(t *testing.T) {
	scoped := rule(1, balancingrule.KindPriorityBased)
	scoped.RunnerTypeFilter = "docker"
	candidates := []registry.Candidate{cand(1, 10, 0)}
	engine := New()

	// Execution pinned to another type escapes the rule entirely.
	k8s := "k8s"
	pinned := exec("unit", "staging")
	pinned.RequestedRunnerType = &k8s
	d, err := engine.Select(Input{Execution: pinned, Candidates: candidates, Rules: []*ent.BalancingRule{scoped}})
	require.NoError(t, err)
	assert.Nil(t, d.Rule)

	// A matching requested type is governed.
	docker := "docker"
	pinned.RequestedRunnerType = &docker
	d, err = engine.Select(Input{Execution: pinned, Candidates: candidates, Rules: []*ent.BalancingRule{scoped}})
	require.NoError(t, err)
	require.NotNil(t, d.Rule)
	assert.Equal(t, scoped.ID, d.Rule.ID)

	// So is an execution that pinned nothing.
	d, err = engine.Select(Input{Execution: exec("unit", "staging"), Candidates: candidates, Rules: []*ent.BalancingRule{scoped}})
	require.NoError(t, err)
	assert.NotNil(t, d.Rule)
}

func TestInvalidStoredPatternNeverMatches(t *testing.T) {
	bad := rule(1, balancingrule.KindPriorityBased)
	bad.TestSuitePattern = "[invalid"

	d, err := New().Select(Input{
		Execution:  exec("unit", "staging"),
		Candidates: []registry.Candidate{cand(1, 10, 0)},
		Rules:      []*ent.BalancingRule{bad},
	})
	require.NoError(t, err)
	assert.Nil(t, d.Rule)
}
