package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/baton-ci/baton/ent"
	"github.com/baton-ci/baton/pkg/store"
)

// createRuleHandler handles POST /rules.
func (s *Server) createRuleHandler(c *echo.Context) error {
	var req CreateRuleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rule, err := s.store.CreateRule(c.Request().Context(), store.CreateRuleInput{
		Name:                 req.Name,
		Kind:                 req.Kind,
		Active:               req.Active,
		Priority:             req.Priority,
		TestSuitePattern:     req.TestSuitePattern,
		EnvironmentPattern:   req.EnvironmentPattern,
		RequiredCapabilities: req.RequiredCapabilities,
		RunnerTypeFilter:     req.RunnerTypeFilter,
	})
	if err != nil {
		return mapServiceError(err)
	}

	s.publisher.RuleConfigured(c.Request().Context(), rule)
	return c.JSON(http.StatusCreated, ruleResponse(rule))
}

// listRulesHandler handles GET /rules.
func (s *Server) listRulesHandler(c *echo.Context) error {
	rules, err := s.store.ListRules(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	items := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		items = append(items, ruleResponse(rule))
	}
	return c.JSON(http.StatusOK, &RuleListResponse{Rules: items})
}

// updateRuleHandler handles PATCH /rules/:id.
func (s *Server) updateRuleHandler(c *echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid rule id")
	}

	var req UpdateRuleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rule, err := s.store.UpdateRule(c.Request().Context(), id, store.UpdateRuleInput{
		Active:             req.Active,
		Priority:           req.Priority,
		TestSuitePattern:   req.TestSuitePattern,
		EnvironmentPattern: req.EnvironmentPattern,
	})
	if err != nil {
		return mapServiceError(err)
	}

	s.publisher.RuleConfigured(c.Request().Context(), rule)
	return c.JSON(http.StatusOK, ruleResponse(rule))
}

func ruleResponse(rule *ent.BalancingRule) RuleResponse {
	return RuleResponse{
		BalancingRule: rule,
		Kind:          store.RuleKindToWire(rule.Kind),
	}
}
