package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/baton-ci/baton/ent"
	testdb "github.com/baton-ci/baton/test/database"
)

// testEpoch is the fake clock's starting point for all store tests.
var testEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func setupStore(t *testing.T) (*Store, *testingclock.FakeClock) {
	t.Helper()
	client := testdb.NewTestClient(t)
	clk := testingclock.NewFakeClock(testEpoch)
	return New(client.Client, clk), clk
}

func mustCreateRunner(t *testing.T, s *Store, name string, slots int) *ent.Runner {
	t.Helper()
	r, err := s.CreateRunner(context.Background(), CreateRunnerInput{
		Name:              name,
		Type:              "webhook",
		EndpointURL:       "http://" + name + ".local/start",
		MaxConcurrentJobs: slots,
	})
	require.NoError(t, err)
	return r
}

func mustCreateExecution(t *testing.T, s *Store, suite string) *ent.Execution {
	t.Helper()
	exec, err := s.CreateExecution(context.Background(), CreateExecutionInput{
		TestSuite:   suite,
		Environment: "staging",
	})
	require.NoError(t, err)
	return exec
}

func mustAssign(t *testing.T, s *Store, execID string, runnerID int) *ent.Execution {
	t.Helper()
	exec, err := s.AssignExecution(context.Background(), execID, runnerID)
	require.NoError(t, err)
	return exec
}
