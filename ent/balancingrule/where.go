// Code generated by ent, DO NOT EDIT.

package balancingrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/baton-ci/baton/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldName, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldActive, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldPriority, v))
}

// TestSuitePattern applies equality check predicate on the "test_suite_pattern" field. It's identical to TestSuitePatternEQ.
func TestSuitePattern(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldTestSuitePattern, v))
}

// EnvironmentPattern applies equality check predicate on the "environment_pattern" field. It's identical to EnvironmentPatternEQ.
func EnvironmentPattern(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldEnvironmentPattern, v))
}

// RunnerTypeFilter applies equality check predicate on the "runner_type_filter" field. It's identical to RunnerTypeFilterEQ.
func RunnerTypeFilter(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldRunnerTypeFilter, v))
}

// Cursor applies equality check predicate on the "cursor" field. It's identical to CursorEQ.
func Cursor(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldCursor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldContainsFold(FieldName, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldActive, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldPriority, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldKind, vs...))
}

// TestSuitePatternEQ applies the EQ predicate on the "test_suite_pattern" field.
func TestSuitePatternEQ(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldTestSuitePattern, v))
}

// TestSuitePatternNEQ applies the NEQ predicate on the "test_suite_pattern" field.
func TestSuitePatternNEQ(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldTestSuitePattern, v))
}

// TestSuitePatternIn applies the In predicate on the "test_suite_pattern" field.
func TestSuitePatternIn(vs ...string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldTestSuitePattern, vs...))
}

// TestSuitePatternNotIn applies the NotIn predicate on the "test_suite_pattern" field.
func TestSuitePatternNotIn(vs ...string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldTestSuitePattern, vs...))
}

// TestSuitePatternGT applies the GT predicate on the "test_suite_pattern" field.
func TestSuitePatternGT(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldTestSuitePattern, v))
}

// TestSuitePatternGTE applies the GTE predicate on the "test_suite_pattern" field.
func TestSuitePatternGTE(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldTestSuitePattern, v))
}

// TestSuitePatternLT applies the LT predicate on the "test_suite_pattern" field.
func TestSuitePatternLT(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldTestSuitePattern, v))
}

// TestSuitePatternLTE applies the LTE predicate on the "test_suite_pattern" field.
func TestSuitePatternLTE(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldTestSuitePattern, v))
}

// TestSuitePatternContains applies the Contains predicate on the "test_suite_pattern" field.
func TestSuitePatternContains(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldContains(FieldTestSuitePattern, v))
}

// TestSuitePatternHasPrefix applies the HasPrefix predicate on the "test_suite_pattern" field.
func TestSuitePatternHasPrefix(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldHasPrefix(FieldTestSuitePattern, v))
}

// TestSuitePatternHasSuffix applies the HasSuffix predicate on the "test_suite_pattern" field.
func TestSuitePatternHasSuffix(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldHasSuffix(FieldTestSuitePattern, v))
}

// TestSuitePatternIsNil applies the IsNil predicate on the "test_suite_pattern" field.
func TestSuitePatternIsNil() predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIsNull(FieldTestSuitePattern))
}

// TestSuitePatternNotNil applies the NotNil predicate on the "test_suite_pattern" field.
func TestSuitePatternNotNil() predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotNull(FieldTestSuitePattern))
}

// TestSuitePatternEqualFold applies the EqualFold predicate on the "test_suite_pattern" field.
func TestSuitePatternEqualFold(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEqualFold(FieldTestSuitePattern, v))
}

// TestSuitePatternContainsFold applies the ContainsFold predicate on the "test_suite_pattern" field.
func TestSuitePatternContainsFold(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldContainsFold(FieldTestSuitePattern, v))
}

// EnvironmentPatternEQ applies the EQ predicate on the "environment_pattern" field.
func EnvironmentPatternEQ(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldEnvironmentPattern, v))
}

// EnvironmentPatternNEQ applies the NEQ predicate on the "environment_pattern" field.
func EnvironmentPatternNEQ(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldEnvironmentPattern, v))
}

// EnvironmentPatternIn applies the In predicate on the "environment_pattern" field.
func EnvironmentPatternIn(vs ...string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldEnvironmentPattern, vs...))
}

// EnvironmentPatternNotIn applies the NotIn predicate on the "environment_pattern" field.
func EnvironmentPatternNotIn(vs ...string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldEnvironmentPattern, vs...))
}

// EnvironmentPatternGT applies the GT predicate on the "environment_pattern" field.
func EnvironmentPatternGT(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldEnvironmentPattern, v))
}

// EnvironmentPatternGTE applies the GTE predicate on the "environment_pattern" field.
func EnvironmentPatternGTE(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldEnvironmentPattern, v))
}

// EnvironmentPatternLT applies the LT predicate on the "environment_pattern" field.
func EnvironmentPatternLT(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldEnvironmentPattern, v))
}

// EnvironmentPatternLTE applies the LTE predicate on the "environment_pattern" field.
func EnvironmentPatternLTE(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldEnvironmentPattern, v))
}

// EnvironmentPatternContains applies the Contains predicate on the "environment_pattern" field.
func EnvironmentPatternContains(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldContains(FieldEnvironmentPattern, v))
}

// EnvironmentPatternHasPrefix applies the HasPrefix predicate on the "environment_pattern" field.
func EnvironmentPatternHasPrefix(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldHasPrefix(FieldEnvironmentPattern, v))
}

// EnvironmentPatternHasSuffix applies the HasSuffix predicate on the "environment_pattern" field.
func EnvironmentPatternHasSuffix(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldHasSuffix(FieldEnvironmentPattern, v))
}

// EnvironmentPatternIsNil applies the IsNil predicate on the "environment_pattern" field.
func EnvironmentPatternIsNil() predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIsNull(FieldEnvironmentPattern))
}

// EnvironmentPatternNotNil applies the NotNil predicate on the "environment_pattern" field.
func EnvironmentPatternNotNil() predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotNull(FieldEnvironmentPattern))
}

// EnvironmentPatternEqualFold applies the EqualFold predicate on the "environment_pattern" field.
func EnvironmentPatternEqualFold(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEqualFold(FieldEnvironmentPattern, v))
}

// EnvironmentPatternContainsFold applies the ContainsFold predicate on the "environment_pattern" field.
func EnvironmentPatternContainsFold(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldContainsFold(FieldEnvironmentPattern, v))
}

// RequiredCapabilitiesIsNil applies the IsNil predicate on the "required_capabilities" field.
func RequiredCapabilitiesIsNil() predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIsNull(FieldRequiredCapabilities))
}

// RequiredCapabilitiesNotNil applies the NotNil predicate on the "required_capabilities" field.
func RequiredCapabilitiesNotNil() predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotNull(FieldRequiredCapabilities))
}

// RunnerTypeFilterEQ applies the EQ predicate on the "runner_type_filter" field.
func RunnerTypeFilterEQ(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterNEQ applies the NEQ predicate on the "runner_type_filter" field.
func RunnerTypeFilterNEQ(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterIn applies the In predicate on the "runner_type_filter" field.
func RunnerTypeFilterIn(vs ...string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldRunnerTypeFilter, vs...))
}

// RunnerTypeFilterNotIn applies the NotIn predicate on the "runner_type_filter" field.
func RunnerTypeFilterNotIn(vs ...string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldRunnerTypeFilter, vs...))
}

// RunnerTypeFilterGT applies the GT predicate on the "runner_type_filter" field.
func RunnerTypeFilterGT(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterGTE applies the GTE predicate on the "runner_type_filter" field.
func RunnerTypeFilterGTE(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterLT applies the LT predicate on the "runner_type_filter" field.
func RunnerTypeFilterLT(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterLTE applies the LTE predicate on the "runner_type_filter" field.
func RunnerTypeFilterLTE(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterContains applies the Contains predicate on the "runner_type_filter" field.
func RunnerTypeFilterContains(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldContains(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterHasPrefix applies the HasPrefix predicate on the "runner_type_filter" field.
func RunnerTypeFilterHasPrefix(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldHasPrefix(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterHasSuffix applies the HasSuffix predicate on the "runner_type_filter" field.
func RunnerTypeFilterHasSuffix(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldHasSuffix(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterIsNil applies the IsNil predicate on the "runner_type_filter" field.
func RunnerTypeFilterIsNil() predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIsNull(FieldRunnerTypeFilter))
}

// RunnerTypeFilterNotNil applies the NotNil predicate on the "runner_type_filter" field.
func RunnerTypeFilterNotNil() predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotNull(FieldRunnerTypeFilter))
}

// RunnerTypeFilterEqualFold applies the EqualFold predicate on the "runner_type_filter" field.
func RunnerTypeFilterEqualFold(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEqualFold(FieldRunnerTypeFilter, v))
}

// RunnerTypeFilterContainsFold applies the ContainsFold predicate on the "runner_type_filter" field.
func RunnerTypeFilterContainsFold(v string) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldContainsFold(FieldRunnerTypeFilter, v))
}

// CursorEQ applies the EQ predicate on the "cursor" field.
func CursorEQ(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldCursor, v))
}

// CursorNEQ applies the NEQ predicate on the "cursor" field.
func CursorNEQ(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldCursor, v))
}

// CursorIn applies the In predicate on the "cursor" field.
func CursorIn(vs ...int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldCursor, vs...))
}

// CursorNotIn applies the NotIn predicate on the "cursor" field.
func CursorNotIn(vs ...int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldCursor, vs...))
}

// CursorGT applies the GT predicate on the "cursor" field.
func CursorGT(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldCursor, v))
}

// CursorGTE applies the GTE predicate on the "cursor" field.
func CursorGTE(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldCursor, v))
}

// CursorLT applies the LT predicate on the "cursor" field.
func CursorLT(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldCursor, v))
}

// CursorLTE applies the LTE predicate on the "cursor" field.
func CursorLTE(v int) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldCursor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BalancingRule {
	return predicate.BalancingRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BalancingRule) predicate.BalancingRule {
	return predicate.BalancingRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BalancingRule) predicate.BalancingRule {
	return predicate.BalancingRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BalancingRule) predicate.BalancingRule {
	return predicate.BalancingRule(sql.NotPredicates(p))
}
