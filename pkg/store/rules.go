package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/ent/balancingrule"
)

// RuleKindFromWire normalizes the API's dashed kind names onto the stored
// enum. Returns an error for unknown kinds.
func RuleKindFromWire(kind string) (balancingrule.Kind, error) {
	k := balancingrule.Kind(strings.ReplaceAll(kind, "-", "_"))
	if err := balancingrule.KindValidator(k); err != nil {
		return "", NewValidationError("kind", fmt.Sprintf("unknown rule kind %q", kind))
	}
	return k, nil
}

// RuleKindToWire is the inverse of RuleKindFromWire.
func RuleKindToWire(kind balancingrule.Kind) string {
	return strings.ReplaceAll(string(kind), "_", "-")
}

// CreateRuleInput carries everything POST /rules accepts. Kind is the wire
// form (dashes).
type CreateRuleInput struct {
	Name                 string
	Kind                 string
	Active               *bool
	Priority             int
	TestSuitePattern     string
	EnvironmentPattern   string
	RequiredCapabilities []string
	RunnerTypeFilter     string
}

// CreateRule validates and stores a load-balancing rule. Glob patterns are
// compiled here so a bad pattern is a 400 at creation time, not a scheduler
// error later.
func (s *Store) CreateRule(ctx context.Context, in CreateRuleInput) (*ent.BalancingRule, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	kind, err := RuleKindFromWire(in.Kind)
	if err != nil {
		return nil, err
	}
	if in.TestSuitePattern != "" {
		if _, err := glob.Compile(in.TestSuitePattern); err != nil {
			return nil, NewValidationError("test_suite_pattern", "invalid glob pattern")
		}
	}
	if in.EnvironmentPattern != "" {
		if _, err := glob.Compile(in.EnvironmentPattern); err != nil {
			return nil, NewValidationError("environment_pattern", "invalid glob pattern")
		}
	}
	if in.RunnerTypeFilter != "" {
		if _, err := glob.Compile(in.RunnerTypeFilter); err != nil {
			return nil, NewValidationError("runner_type_filter", "invalid glob pattern")
		}
	}
	if kind == balancingrule.KindAffinity && len(in.RequiredCapabilities) == 0 {
		return nil, NewValidationError("required_capabilities", "affinity rules need at least one capability")
	}
	if kind == balancingrule.KindTypeFilter && in.RunnerTypeFilter == "" {
		return nil, NewValidationError("runner_type_filter", "type-filter rules need a runner type")
	}

	writeCtx, cancel := writeCtx()
	defer cancel()

	create := s.client.BalancingRule.Create().
		SetName(in.Name).
		SetKind(kind).
		SetPriority(in.Priority).
		SetTestSuitePattern(in.TestSuitePattern).
		SetEnvironmentPattern(in.EnvironmentPattern).
		SetRunnerTypeFilter(in.RunnerTypeFilter).
		SetCreatedAt(s.clock.Now()).
		SetUpdatedAt(s.clock.Now()).
		SetNillableActive(in.Active)
	if in.RequiredCapabilities != nil {
		create = create.SetRequiredCapabilities(in.RequiredCapabilities)
	}

	rule, err := create.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("rule %q already exists: %w", in.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return rule, nil
}

// UpdateRuleInput is a partial patch; nil fields are left untouched.
type UpdateRuleInput struct {
	Active             *bool
	Priority           *int
	TestSuitePattern   *string
	EnvironmentPattern *string
}

// UpdateRule applies a partial patch to a rule.
func (s *Store) UpdateRule(ctx context.Context, id int, in UpdateRuleInput) (*ent.BalancingRule, error) {
	if in.TestSuitePattern != nil && *in.TestSuitePattern != "" {
		if _, err := glob.Compile(*in.TestSuitePattern); err != nil {
			return nil, NewValidationError("test_suite_pattern", "invalid glob pattern")
		}
	}
	if in.EnvironmentPattern != nil && *in.EnvironmentPattern != "" {
		if _, err := glob.Compile(*in.EnvironmentPattern); err != nil {
			return nil, NewValidationError("environment_pattern", "invalid glob pattern")
		}
	}

	writeCtx, cancel := writeCtx()
	defer cancel()

	rule, err := s.client.BalancingRule.UpdateOneID(id).
		SetNillableActive(in.Active).
		SetNillablePriority(in.Priority).
		SetNillableTestSuitePattern(in.TestSuitePattern).
		SetNillableEnvironmentPattern(in.EnvironmentPattern).
		SetUpdatedAt(s.clock.Now()).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}
	return rule, nil
}

// ListRules returns all rules, highest priority first.
func (s *Store) ListRules(ctx context.Context) ([]*ent.BalancingRule, error) {
	rules, err := s.client.BalancingRule.Query().
		Order(ent.Desc(balancingrule.FieldPriority), ent.Asc(balancingrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// ListActiveRules returns the rule engine's evaluation order: active rules,
// highest priority first, id as the tie-break.
func (s *Store) ListActiveRules(ctx context.Context) ([]*ent.BalancingRule, error) {
	rules, err := s.client.BalancingRule.Query().
		Where(balancingrule.ActiveEQ(true)).
		Order(ent.Desc(balancingrule.FieldPriority), ent.Asc(balancingrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rules: %w", err)
	}
	return rules, nil
}

// AdvanceRuleCursor moves a round-robin cursor from → to, conditionally:
// a stale writer (scheduler pass working off an old snapshot) loses the
// race silently instead of rewinding fairness. Only called after the
// assignment it belongs to has committed.
func (s *Store) AdvanceRuleCursor(ctx context.Context, ruleID, from, to int) error {
	writeCtx, cancel := writeCtx()
	defer cancel()

	_, err := s.client.BalancingRule.Update().
		Where(
			balancingrule.IDEQ(ruleID),
			balancingrule.CursorEQ(from),
		).
		SetCursor(to).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to advance rule cursor: %w", err)
	}
	return nil
}
