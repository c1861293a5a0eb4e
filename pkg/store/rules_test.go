package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baton-ci/baton/ent/balancingrule"
)

func TestRuleKindWireFormat(t *testing.T) {
	kind, err := RuleKindFromWire("round-robin")
	require.NoError(t, err)
	assert.Equal(t, balancingrule.KindRoundRobin, kind)
	assert.Equal(t, "round-robin", RuleKindToWire(kind))

	_, err = RuleKindFromWire("coin-flip")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCreateRule(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	t.Run("stores a valid rule", func(t *testing.T) {
		rule, err := s.CreateRule(ctx, CreateRuleInput{
			Name:             "smoke-round-robin",
			Kind:             "round-robin",
			Priority:         10,
			TestSuitePattern: "smoke-*",
		})
		require.NoError(t, err)
		assert.Equal(t, balancingrule.KindRoundRobin, rule.Kind)
		assert.True(t, rule.Active, "rules default to active")
		assert.Zero(t, rule.Cursor)
	})

	t.Run("stores a type filter", func(t *testing.T) {
		rule, err := s.CreateRule(ctx, CreateRuleInput{
			Name:             "docker-only",
			Kind:             "type-filter",
			RunnerTypeFilter: "docker-*",
		})
		require.NoError(t, err)
		assert.Equal(t, "docker-*", rule.RunnerTypeFilter)
	})

	t.Run("rejects bad globs at creation time", func(t *testing.T) {
		_, err := s.CreateRule(ctx, CreateRuleInput{
			Name:             "broken-glob",
			Kind:             "priority-based",
			TestSuitePattern: "[",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("affinity needs capabilities", func(t *testing.T) {
		_, err := s.CreateRule(ctx, CreateRuleInput{
			Name: "empty-affinity",
			Kind: "affinity",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("type filter needs a runner type", func(t *testing.T) {
		_, err := s.CreateRule(ctx, CreateRuleInput{
			Name: "empty-type-filter",
			Kind: "type-filter",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("name is unique", func(t *testing.T) {
		in := CreateRuleInput{Name: "dup-rule", Kind: "priority-based"}
		_, err := s.CreateRule(ctx, in)
		require.NoError(t, err)

		_, err = s.CreateRule(ctx, in)
		require.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestUpdateRule(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	rule, err := s.CreateRule(ctx, CreateRuleInput{
		Name: "patchable", Kind: "priority-based", Priority: 5,
	})
	require.NoError(t, err)

	t.Run("partial patch", func(t *testing.T) {
		inactive := false
		prio := 20
		updated, err := s.UpdateRule(ctx, rule.ID, UpdateRuleInput{
			Active:   &inactive,
			Priority: &prio,
		})
		require.NoError(t, err)
		assert.False(t, updated.Active)
		assert.Equal(t, 20, updated.Priority)
	})

	t.Run("rejects bad glob", func(t *testing.T) {
		bad := "["
		_, err := s.UpdateRule(ctx, rule.ID, UpdateRuleInput{TestSuitePattern: &bad})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := s.UpdateRule(ctx, 99999, UpdateRuleInput{})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListActiveRules(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	mk := func(name string, priority int, active bool) {
		_, err := s.CreateRule(ctx, CreateRuleInput{
			Name: name, Kind: "priority-based", Priority: priority, Active: &active,
		})
		require.NoError(t, err)
	}
	mk("low", 1, true)
	mk("high", 50, true)
	mk("disabled", 99, false)

	rules, err := s.ListActiveRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "high", rules[0].Name, "highest priority evaluates first")
	assert.Equal(t, "low", rules[1].Name)

	all, err := s.ListRules(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAdvanceRuleCursor(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	rule, err := s.CreateRule(ctx, CreateRuleInput{Name: "rr", Kind: "round-robin"})
	require.NoError(t, err)

	require.NoError(t, s.AdvanceRuleCursor(ctx, rule.ID, 0, 3))

	got, err := s.client.BalancingRule.Get(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Cursor)

	// A stale writer (cursor already moved past its snapshot) loses silently.
	require.NoError(t, s.AdvanceRuleCursor(ctx, rule.ID, 0, 7))
	got, err = s.client.BalancingRule.Get(ctx, rule.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Cursor)
}
