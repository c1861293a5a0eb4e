// Code generated by ent, DO NOT EDIT.

package execution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/baton-ci/baton/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldID, id))
}

// TestSuite applies equality check predicate on the "test_suite" field. It's identical to TestSuiteEQ.
func TestSuite(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTestSuite, v))
}

// Environment applies equality check predicate on the "environment" field. It's identical to EnvironmentEQ.
func Environment(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldEnvironment, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldBranch, v))
}

// CommitSha applies equality check predicate on the "commit_sha" field. It's identical to CommitShaEQ.
func CommitSha(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCommitSha, v))
}

// RequestedBy applies equality check predicate on the "requested_by" field. It's identical to RequestedByEQ.
func RequestedBy(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRequestedBy, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldPriority, v))
}

// EstimatedDurationMs applies equality check predicate on the "estimated_duration_ms" field. It's identical to EstimatedDurationMsEQ.
func EstimatedDurationMs(v int64) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldEstimatedDurationMs, v))
}

// RequestedRunnerType applies equality check predicate on the "requested_runner_type" field. It's identical to RequestedRunnerTypeEQ.
func RequestedRunnerType(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRequestedRunnerType, v))
}

// RequestedRunnerID applies equality check predicate on the "requested_runner_id" field. It's identical to RequestedRunnerIDEQ.
func RequestedRunnerID(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRequestedRunnerID, v))
}

// StatusReason applies equality check predicate on the "status_reason" field. It's identical to StatusReasonEQ.
func StatusReason(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStatusReason, v))
}

// AssignedRunnerID applies equality check predicate on the "assigned_runner_id" field. It's identical to AssignedRunnerIDEQ.
func AssignedRunnerID(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldAssignedRunnerID, v))
}

// TotalShards applies equality check predicate on the "total_shards" field. It's identical to TotalShardsEQ.
func TotalShards(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTotalShards, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldIdempotencyKey, v))
}

// WebhookURL applies equality check predicate on the "webhook_url" field. It's identical to WebhookURLEQ.
func WebhookURL(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedAt, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldAssignedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStartedAt, v))
}

// LastProgressAt applies equality check predicate on the "last_progress_at" field. It's identical to LastProgressAtEQ.
func LastProgressAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldLastProgressAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCompletedAt, v))
}

// TestSuiteEQ applies the EQ predicate on the "test_suite" field.
func TestSuiteEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTestSuite, v))
}

// TestSuiteNEQ applies the NEQ predicate on the "test_suite" field.
func TestSuiteNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldTestSuite, v))
}

// TestSuiteIn applies the In predicate on the "test_suite" field.
func TestSuiteIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldTestSuite, vs...))
}

// TestSuiteNotIn applies the NotIn predicate on the "test_suite" field.
func TestSuiteNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldTestSuite, vs...))
}

// TestSuiteGT applies the GT predicate on the "test_suite" field.
func TestSuiteGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldTestSuite, v))
}

// TestSuiteGTE applies the GTE predicate on the "test_suite" field.
func TestSuiteGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldTestSuite, v))
}

// TestSuiteLT applies the LT predicate on the "test_suite" field.
func TestSuiteLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldTestSuite, v))
}

// TestSuiteLTE applies the LTE predicate on the "test_suite" field.
func TestSuiteLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldTestSuite, v))
}

// TestSuiteContains applies the Contains predicate on the "test_suite" field.
func TestSuiteContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldTestSuite, v))
}

// TestSuiteHasPrefix applies the HasPrefix predicate on the "test_suite" field.
func TestSuiteHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldTestSuite, v))
}

// TestSuiteHasSuffix applies the HasSuffix predicate on the "test_suite" field.
func TestSuiteHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldTestSuite, v))
}

// TestSuiteEqualFold applies the EqualFold predicate on the "test_suite" field.
func TestSuiteEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldTestSuite, v))
}

// TestSuiteContainsFold applies the ContainsFold predicate on the "test_suite" field.
func TestSuiteContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldTestSuite, v))
}

// EnvironmentEQ applies the EQ predicate on the "environment" field.
func EnvironmentEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldEnvironment, v))
}

// EnvironmentNEQ applies the NEQ predicate on the "environment" field.
func EnvironmentNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldEnvironment, v))
}

// EnvironmentIn applies the In predicate on the "environment" field.
func EnvironmentIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldEnvironment, vs...))
}

// EnvironmentNotIn applies the NotIn predicate on the "environment" field.
func EnvironmentNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldEnvironment, vs...))
}

// EnvironmentGT applies the GT predicate on the "environment" field.
func EnvironmentGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldEnvironment, v))
}

// EnvironmentGTE applies the GTE predicate on the "environment" field.
func EnvironmentGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldEnvironment, v))
}

// EnvironmentLT applies the LT predicate on the "environment" field.
func EnvironmentLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldEnvironment, v))
}

// EnvironmentLTE applies the LTE predicate on the "environment" field.
func EnvironmentLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldEnvironment, v))
}

// EnvironmentContains applies the Contains predicate on the "environment" field.
func EnvironmentContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldEnvironment, v))
}

// EnvironmentHasPrefix applies the HasPrefix predicate on the "environment" field.
func EnvironmentHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldEnvironment, v))
}

// EnvironmentHasSuffix applies the HasSuffix predicate on the "environment" field.
func EnvironmentHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldEnvironment, v))
}

// EnvironmentEqualFold applies the EqualFold predicate on the "environment" field.
func EnvironmentEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldEnvironment, v))
}

// EnvironmentContainsFold applies the ContainsFold predicate on the "environment" field.
func EnvironmentContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldEnvironment, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchIsNil applies the IsNil predicate on the "branch" field.
func BranchIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldBranch))
}

// BranchNotNil applies the NotNil predicate on the "branch" field.
func BranchNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldBranch))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldBranch, v))
}

// CommitShaEQ applies the EQ predicate on the "commit_sha" field.
func CommitShaEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCommitSha, v))
}

// CommitShaNEQ applies the NEQ predicate on the "commit_sha" field.
func CommitShaNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCommitSha, v))
}

// CommitShaIn applies the In predicate on the "commit_sha" field.
func CommitShaIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCommitSha, vs...))
}

// CommitShaNotIn applies the NotIn predicate on the "commit_sha" field.
func CommitShaNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCommitSha, vs...))
}

// CommitShaGT applies the GT predicate on the "commit_sha" field.
func CommitShaGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCommitSha, v))
}

// CommitShaGTE applies the GTE predicate on the "commit_sha" field.
func CommitShaGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCommitSha, v))
}

// CommitShaLT applies the LT predicate on the "commit_sha" field.
func CommitShaLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCommitSha, v))
}

// CommitShaLTE applies the LTE predicate on the "commit_sha" field.
func CommitShaLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCommitSha, v))
}

// CommitShaContains applies the Contains predicate on the "commit_sha" field.
func CommitShaContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldCommitSha, v))
}

// CommitShaHasPrefix applies the HasPrefix predicate on the "commit_sha" field.
func CommitShaHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldCommitSha, v))
}

// CommitShaHasSuffix applies the HasSuffix predicate on the "commit_sha" field.
func CommitShaHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldCommitSha, v))
}

// CommitShaIsNil applies the IsNil predicate on the "commit_sha" field.
func CommitShaIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldCommitSha))
}

// CommitShaNotNil applies the NotNil predicate on the "commit_sha" field.
func CommitShaNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldCommitSha))
}

// CommitShaEqualFold applies the EqualFold predicate on the "commit_sha" field.
func CommitShaEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldCommitSha, v))
}

// CommitShaContainsFold applies the ContainsFold predicate on the "commit_sha" field.
func CommitShaContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldCommitSha, v))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestedByGT applies the GT predicate on the "requested_by" field.
func RequestedByGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldRequestedBy, v))
}

// RequestedByGTE applies the GTE predicate on the "requested_by" field.
func RequestedByGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldRequestedBy, v))
}

// RequestedByLT applies the LT predicate on the "requested_by" field.
func RequestedByLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldRequestedBy, v))
}

// RequestedByLTE applies the LTE predicate on the "requested_by" field.
func RequestedByLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldRequestedBy, v))
}

// RequestedByContains applies the Contains predicate on the "requested_by" field.
func RequestedByContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldRequestedBy, v))
}

// RequestedByHasPrefix applies the HasPrefix predicate on the "requested_by" field.
func RequestedByHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldRequestedBy, v))
}

// RequestedByHasSuffix applies the HasSuffix predicate on the "requested_by" field.
func RequestedByHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldRequestedBy, v))
}

// RequestedByIsNil applies the IsNil predicate on the "requested_by" field.
func RequestedByIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldRequestedBy))
}

// RequestedByNotNil applies the NotNil predicate on the "requested_by" field.
func RequestedByNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldRequestedBy))
}

// RequestedByEqualFold applies the EqualFold predicate on the "requested_by" field.
func RequestedByEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldRequestedBy, v))
}

// RequestedByContainsFold applies the ContainsFold predicate on the "requested_by" field.
func RequestedByContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldRequestedBy, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldPriority, v))
}

// EstimatedDurationMsEQ applies the EQ predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsEQ(v int64) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldEstimatedDurationMs, v))
}

// EstimatedDurationMsNEQ applies the NEQ predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsNEQ(v int64) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldEstimatedDurationMs, v))
}

// EstimatedDurationMsIn applies the In predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsIn(vs ...int64) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldEstimatedDurationMs, vs...))
}

// EstimatedDurationMsNotIn applies the NotIn predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsNotIn(vs ...int64) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldEstimatedDurationMs, vs...))
}

// EstimatedDurationMsGT applies the GT predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsGT(v int64) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldEstimatedDurationMs, v))
}

// EstimatedDurationMsGTE applies the GTE predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsGTE(v int64) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldEstimatedDurationMs, v))
}

// EstimatedDurationMsLT applies the LT predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsLT(v int64) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldEstimatedDurationMs, v))
}

// EstimatedDurationMsLTE applies the LTE predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsLTE(v int64) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldEstimatedDurationMs, v))
}

// EstimatedDurationMsIsNil applies the IsNil predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldEstimatedDurationMs))
}

// EstimatedDurationMsNotNil applies the NotNil predicate on the "estimated_duration_ms" field.
func EstimatedDurationMsNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldEstimatedDurationMs))
}

// RequestedRunnerTypeEQ applies the EQ predicate on the "requested_runner_type" field.
func RequestedRunnerTypeEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeNEQ applies the NEQ predicate on the "requested_runner_type" field.
func RequestedRunnerTypeNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeIn applies the In predicate on the "requested_runner_type" field.
func RequestedRunnerTypeIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldRequestedRunnerType, vs...))
}

// RequestedRunnerTypeNotIn applies the NotIn predicate on the "requested_runner_type" field.
func RequestedRunnerTypeNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldRequestedRunnerType, vs...))
}

// RequestedRunnerTypeGT applies the GT predicate on the "requested_runner_type" field.
func RequestedRunnerTypeGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeGTE applies the GTE predicate on the "requested_runner_type" field.
func RequestedRunnerTypeGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeLT applies the LT predicate on the "requested_runner_type" field.
func RequestedRunnerTypeLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeLTE applies the LTE predicate on the "requested_runner_type" field.
func RequestedRunnerTypeLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeContains applies the Contains predicate on the "requested_runner_type" field.
func RequestedRunnerTypeContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeHasPrefix applies the HasPrefix predicate on the "requested_runner_type" field.
func RequestedRunnerTypeHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeHasSuffix applies the HasSuffix predicate on the "requested_runner_type" field.
func RequestedRunnerTypeHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeIsNil applies the IsNil predicate on the "requested_runner_type" field.
func RequestedRunnerTypeIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldRequestedRunnerType))
}

// RequestedRunnerTypeNotNil applies the NotNil predicate on the "requested_runner_type" field.
func RequestedRunnerTypeNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldRequestedRunnerType))
}

// RequestedRunnerTypeEqualFold applies the EqualFold predicate on the "requested_runner_type" field.
func RequestedRunnerTypeEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldRequestedRunnerType, v))
}

// RequestedRunnerTypeContainsFold applies the ContainsFold predicate on the "requested_runner_type" field.
func RequestedRunnerTypeContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldRequestedRunnerType, v))
}

// RequestedRunnerIDEQ applies the EQ predicate on the "requested_runner_id" field.
func RequestedRunnerIDEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRequestedRunnerID, v))
}

// RequestedRunnerIDNEQ applies the NEQ predicate on the "requested_runner_id" field.
func RequestedRunnerIDNEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldRequestedRunnerID, v))
}

// RequestedRunnerIDIn applies the In predicate on the "requested_runner_id" field.
func RequestedRunnerIDIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldRequestedRunnerID, vs...))
}

// RequestedRunnerIDNotIn applies the NotIn predicate on the "requested_runner_id" field.
func RequestedRunnerIDNotIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldRequestedRunnerID, vs...))
}

// RequestedRunnerIDGT applies the GT predicate on the "requested_runner_id" field.
func RequestedRunnerIDGT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldRequestedRunnerID, v))
}

// RequestedRunnerIDGTE applies the GTE predicate on the "requested_runner_id" field.
func RequestedRunnerIDGTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldRequestedRunnerID, v))
}

// RequestedRunnerIDLT applies the LT predicate on the "requested_runner_id" field.
func RequestedRunnerIDLT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldRequestedRunnerID, v))
}

// RequestedRunnerIDLTE applies the LTE predicate on the "requested_runner_id" field.
func RequestedRunnerIDLTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldRequestedRunnerID, v))
}

// RequestedRunnerIDIsNil applies the IsNil predicate on the "requested_runner_id" field.
func RequestedRunnerIDIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldRequestedRunnerID))
}

// RequestedRunnerIDNotNil applies the NotNil predicate on the "requested_runner_id" field.
func RequestedRunnerIDNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldRequestedRunnerID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusReasonEQ applies the EQ predicate on the "status_reason" field.
func StatusReasonEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStatusReason, v))
}

// StatusReasonNEQ applies the NEQ predicate on the "status_reason" field.
func StatusReasonNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStatusReason, v))
}

// StatusReasonIn applies the In predicate on the "status_reason" field.
func StatusReasonIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStatusReason, vs...))
}

// StatusReasonNotIn applies the NotIn predicate on the "status_reason" field.
func StatusReasonNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStatusReason, vs...))
}

// StatusReasonGT applies the GT predicate on the "status_reason" field.
func StatusReasonGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldStatusReason, v))
}

// StatusReasonGTE applies the GTE predicate on the "status_reason" field.
func StatusReasonGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldStatusReason, v))
}

// StatusReasonLT applies the LT predicate on the "status_reason" field.
func StatusReasonLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldStatusReason, v))
}

// StatusReasonLTE applies the LTE predicate on the "status_reason" field.
func StatusReasonLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldStatusReason, v))
}

// StatusReasonContains applies the Contains predicate on the "status_reason" field.
func StatusReasonContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldStatusReason, v))
}

// StatusReasonHasPrefix applies the HasPrefix predicate on the "status_reason" field.
func StatusReasonHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldStatusReason, v))
}

// StatusReasonHasSuffix applies the HasSuffix predicate on the "status_reason" field.
func StatusReasonHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldStatusReason, v))
}

// StatusReasonIsNil applies the IsNil predicate on the "status_reason" field.
func StatusReasonIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldStatusReason))
}

// StatusReasonNotNil applies the NotNil predicate on the "status_reason" field.
func StatusReasonNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldStatusReason))
}

// StatusReasonEqualFold applies the EqualFold predicate on the "status_reason" field.
func StatusReasonEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldStatusReason, v))
}

// StatusReasonContainsFold applies the ContainsFold predicate on the "status_reason" field.
func StatusReasonContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldStatusReason, v))
}

// AssignedRunnerIDEQ applies the EQ predicate on the "assigned_runner_id" field.
func AssignedRunnerIDEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldAssignedRunnerID, v))
}

// AssignedRunnerIDNEQ applies the NEQ predicate on the "assigned_runner_id" field.
func AssignedRunnerIDNEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldAssignedRunnerID, v))
}

// AssignedRunnerIDIn applies the In predicate on the "assigned_runner_id" field.
func AssignedRunnerIDIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldAssignedRunnerID, vs...))
}

// AssignedRunnerIDNotIn applies the NotIn predicate on the "assigned_runner_id" field.
func AssignedRunnerIDNotIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldAssignedRunnerID, vs...))
}

// AssignedRunnerIDIsNil applies the IsNil predicate on the "assigned_runner_id" field.
func AssignedRunnerIDIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldAssignedRunnerID))
}

// AssignedRunnerIDNotNil applies the NotNil predicate on the "assigned_runner_id" field.
func AssignedRunnerIDNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldAssignedRunnerID))
}

// TotalShardsEQ applies the EQ predicate on the "total_shards" field.
func TotalShardsEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTotalShards, v))
}

// TotalShardsNEQ applies the NEQ predicate on the "total_shards" field.
func TotalShardsNEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldTotalShards, v))
}

// TotalShardsIn applies the In predicate on the "total_shards" field.
func TotalShardsIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldTotalShards, vs...))
}

// TotalShardsNotIn applies the NotIn predicate on the "total_shards" field.
func TotalShardsNotIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldTotalShards, vs...))
}

// TotalShardsGT applies the GT predicate on the "total_shards" field.
func TotalShardsGT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldTotalShards, v))
}

// TotalShardsGTE applies the GTE predicate on the "total_shards" field.
func TotalShardsGTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldTotalShards, v))
}

// TotalShardsLT applies the LT predicate on the "total_shards" field.
func TotalShardsLT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldTotalShards, v))
}

// TotalShardsLTE applies the LTE predicate on the "total_shards" field.
func TotalShardsLTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldTotalShards, v))
}

// ShardResultsIsNil applies the IsNil predicate on the "shard_results" field.
func ShardResultsIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldShardResults))
}

// ShardResultsNotNil applies the NotNil predicate on the "shard_results" field.
func ShardResultsNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldShardResults))
}

// AggregatedResultsIsNil applies the IsNil predicate on the "aggregated_results" field.
func AggregatedResultsIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldAggregatedResults))
}

// AggregatedResultsNotNil applies the NotNil predicate on the "aggregated_results" field.
func AggregatedResultsNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldAggregatedResults))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// WebhookURLEQ applies the EQ predicate on the "webhook_url" field.
func WebhookURLEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookURLNEQ applies the NEQ predicate on the "webhook_url" field.
func WebhookURLNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldWebhookURL, v))
}

// WebhookURLIn applies the In predicate on the "webhook_url" field.
func WebhookURLIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldWebhookURL, vs...))
}

// WebhookURLNotIn applies the NotIn predicate on the "webhook_url" field.
func WebhookURLNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldWebhookURL, vs...))
}

// WebhookURLGT applies the GT predicate on the "webhook_url" field.
func WebhookURLGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldWebhookURL, v))
}

// WebhookURLGTE applies the GTE predicate on the "webhook_url" field.
func WebhookURLGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldWebhookURL, v))
}

// WebhookURLLT applies the LT predicate on the "webhook_url" field.
func WebhookURLLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldWebhookURL, v))
}

// WebhookURLLTE applies the LTE predicate on the "webhook_url" field.
func WebhookURLLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldWebhookURL, v))
}

// WebhookURLContains applies the Contains predicate on the "webhook_url" field.
func WebhookURLContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldWebhookURL, v))
}

// WebhookURLHasPrefix applies the HasPrefix predicate on the "webhook_url" field.
func WebhookURLHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldWebhookURL, v))
}

// WebhookURLHasSuffix applies the HasSuffix predicate on the "webhook_url" field.
func WebhookURLHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldWebhookURL, v))
}

// WebhookURLIsNil applies the IsNil predicate on the "webhook_url" field.
func WebhookURLIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldWebhookURL))
}

// WebhookURLNotNil applies the NotNil predicate on the "webhook_url" field.
func WebhookURLNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldWebhookURL))
}

// WebhookURLEqualFold applies the EqualFold predicate on the "webhook_url" field.
func WebhookURLEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldWebhookURL, v))
}

// WebhookURLContainsFold applies the ContainsFold predicate on the "webhook_url" field.
func WebhookURLContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldWebhookURL, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCreatedAt, v))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldAssignedAt, v))
}

// AssignedAtIsNil applies the IsNil predicate on the "assigned_at" field.
func AssignedAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldAssignedAt))
}

// AssignedAtNotNil applies the NotNil predicate on the "assigned_at" field.
func AssignedAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldAssignedAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldStartedAt))
}

// LastProgressAtEQ applies the EQ predicate on the "last_progress_at" field.
func LastProgressAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldLastProgressAt, v))
}

// LastProgressAtNEQ applies the NEQ predicate on the "last_progress_at" field.
func LastProgressAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldLastProgressAt, v))
}

// LastProgressAtIn applies the In predicate on the "last_progress_at" field.
func LastProgressAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldLastProgressAt, vs...))
}

// LastProgressAtNotIn applies the NotIn predicate on the "last_progress_at" field.
func LastProgressAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldLastProgressAt, vs...))
}

// LastProgressAtGT applies the GT predicate on the "last_progress_at" field.
func LastProgressAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldLastProgressAt, v))
}

// LastProgressAtGTE applies the GTE predicate on the "last_progress_at" field.
func LastProgressAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldLastProgressAt, v))
}

// LastProgressAtLT applies the LT predicate on the "last_progress_at" field.
func LastProgressAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldLastProgressAt, v))
}

// LastProgressAtLTE applies the LTE predicate on the "last_progress_at" field.
func LastProgressAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldLastProgressAt, v))
}

// LastProgressAtIsNil applies the IsNil predicate on the "last_progress_at" field.
func LastProgressAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldLastProgressAt))
}

// LastProgressAtNotNil applies the NotNil predicate on the "last_progress_at" field.
func LastProgressAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldLastProgressAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldCompletedAt))
}

// HasRunner applies the HasEdge predicate on the "runner" edge.
func HasRunner() predicate.Execution {
	return predicate.Execution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunnerTable, RunnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunnerWith applies the HasEdge predicate on the "runner" edge with a given conditions (other predicates).
func HasRunnerWith(preds ...predicate.Runner) predicate.Execution {
	return predicate.Execution(func(s *sql.Selector) {
		step := newRunnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAllocations applies the HasEdge predicate on the "allocations" edge.
func HasAllocations() predicate.Execution {
	return predicate.Execution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AllocationsTable, AllocationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAllocationsWith applies the HasEdge predicate on the "allocations" edge with a given conditions (other predicates).
func HasAllocationsWith(preds ...predicate.ResourceAllocation) predicate.Execution {
	return predicate.Execution(func(s *sql.Selector) {
		step := newAllocationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.NotPredicates(p))
}
