package registry

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

type fakeLoader struct {
	runners  []*ent.Runner
	inflight map[int]int
}

func (f *fakeLoader) ListRunners(_ context.Context, _ models.RunnerFilter) ([]*ent.Runner, error) {
	return f.runners, nil
}

func (f *fakeLoader) InflightByRunner(_ context.Context) (map[int]int, error) {
	return f.inflight, nil
}

func testRunner(id int, name string) *ent.Runner {
	return &ent.Runner{
		ID:                id,
		Name:              name,
		Type:              "webhook",
		MaxConcurrentJobs: 2,
		Status:            runner.StatusActive,
		Health:            runner.HealthHealthy,
	}
}

func candidateIDs(candidates []Candidate) []int {
	return lo.Map(candidates, func(c Candidate, _ int) int { return c.ID })
}

func TestRebuildSkipsDecommissionedAndSeedsInflight(t *testing.T) {
	gone := testRunner(3, "retired")
	gone.Status = runner.StatusDecommissioned

	reg := New()
	require.NoError(t, reg.Rebuild(context.Background(), &fakeLoader{
		runners:  []*ent.Runner{testRunner(1, "alpha"), testRunner(2, "beta"), gone},
		inflight: map[int]int{1: 2, 2: 1},
	}))

	assert.ElementsMatch(t, []int{1, 2}, reg.ActiveIDs())
	assert.Equal(t, 2, reg.Inflight(1))
	assert.Equal(t, 1, reg.Inflight(2))

	// Runner 1 is at capacity, runner 2 has a free slot.
	assert.Equal(t, []int{2}, candidateIDs(reg.CandidatesFor(nil, nil)))
}

func TestCandidatesForFilters(t *testing.T) {
	paused := testRunner(2, "paused")
	paused.Status = runner.StatusPaused
	sick := testRunner(3, "sick")
	sick.Health = runner.HealthUnhealthy
	unknown := testRunner(4, "fresh")
	unknown.Health = runner.HealthUnknown
	docker := testRunner(5, "docker-1")
	docker.Type = "docker"

	reg := New()
	for _, r := range []*ent.Runner{testRunner(1, "alpha"), paused, sick, unknown, docker} {
		reg.Upsert(r)
	}

	// Paused and unhealthy are out; unknown health is still eligible.
	assert.ElementsMatch(t, []int{1, 4, 5}, candidateIDs(reg.CandidatesFor(nil, nil)))

	// Type pin.
	dockerType := "docker"
	assert.Equal(t, []int{5}, candidateIDs(reg.CandidatesFor(&dockerType, nil)))

	// Runner pin.
	id := 4
	assert.Equal(t, []int{4}, candidateIDs(reg.CandidatesFor(nil, &id)))

	// Pin to an ineligible runner yields nothing.
	pausedID := 2
	assert.Empty(t, reg.CandidatesFor(nil, &pausedID))
}

func TestInflightCounters(t *testing.T) {
	reg := New()
	reg.Upsert(testRunner(1, "alpha"))

	reg.IncInflight(1)
	reg.IncInflight(1)
	assert.Equal(t, 2, reg.Inflight(1))
	assert.Empty(t, reg.CandidatesFor(nil, nil), "runner at max_concurrent_jobs")

	reg.DecInflight(1)
	assert.Equal(t, 1, reg.Inflight(1))
	assert.Len(t, reg.CandidatesFor(nil, nil), 1)

	// Floor at zero.
	reg.DecInflight(1)
	reg.DecInflight(1)
	assert.Equal(t, 0, reg.Inflight(1))

	// Unknown ids are ignored.
	reg.IncInflight(99)
	assert.Equal(t, 0, reg.Inflight(99))
}

func TestUpsertPreservesInflightAndEvictsDecommissioned(t *testing.T) {
	reg := New()
	reg.Upsert(testRunner(1, "alpha"))
	reg.IncInflight(1)

	updated := testRunner(1, "alpha")
	updated.MaxConcurrentJobs = 5
	reg.Upsert(updated)
	assert.Equal(t, 1, reg.Inflight(1))

	candidates := reg.CandidatesFor(nil, nil)
	require.Len(t, candidates, 1)
	assert.Equal(t, 4, candidates[0].FreeSlots())

	retired := testRunner(1, "alpha")
	retired.Status = runner.StatusDecommissioned
	reg.Upsert(retired)
	assert.Empty(t, reg.ActiveIDs())
}

func TestSetHealthAffectsEligibility(t *testing.T) {
	reg := New()
	reg.Upsert(testRunner(1, "alpha"))

	reg.SetHealth(1, runner.HealthUnhealthy)
	assert.Empty(t, reg.CandidatesFor(nil, nil))

	reg.SetHealth(1, runner.HealthHealthy)
	assert.Len(t, reg.CandidatesFor(nil, nil), 1)
}
