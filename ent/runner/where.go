// Code generated by ent, DO NOT EDIT.

package runner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/baton-ci/baton/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldName, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldType, v))
}

// EndpointURL applies equality check predicate on the "endpoint_url" field. It's identical to EndpointURLEQ.
func EndpointURL(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldEndpointURL, v))
}

// HealthCheckURL applies equality check predicate on the "health_check_url" field. It's identical to HealthCheckURLEQ.
func HealthCheckURL(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldHealthCheckURL, v))
}

// WebhookToken applies equality check predicate on the "webhook_token" field. It's identical to WebhookTokenEQ.
func WebhookToken(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldWebhookToken, v))
}

// MaxConcurrentJobs applies equality check predicate on the "max_concurrent_jobs" field. It's identical to MaxConcurrentJobsEQ.
func MaxConcurrentJobs(v int) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldMaxConcurrentJobs, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldPriority, v))
}

// LastHealthCheckAt applies equality check predicate on the "last_health_check_at" field. It's identical to LastHealthCheckAtEQ.
func LastHealthCheckAt(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldLastHealthCheckAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldName, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldType, v))
}

// EndpointURLEQ applies the EQ predicate on the "endpoint_url" field.
func EndpointURLEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldEndpointURL, v))
}

// EndpointURLNEQ applies the NEQ predicate on the "endpoint_url" field.
func EndpointURLNEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldEndpointURL, v))
}

// EndpointURLIn applies the In predicate on the "endpoint_url" field.
func EndpointURLIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldEndpointURL, vs...))
}

// EndpointURLNotIn applies the NotIn predicate on the "endpoint_url" field.
func EndpointURLNotIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldEndpointURL, vs...))
}

// EndpointURLGT applies the GT predicate on the "endpoint_url" field.
func EndpointURLGT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldEndpointURL, v))
}

// EndpointURLGTE applies the GTE predicate on the "endpoint_url" field.
func EndpointURLGTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldEndpointURL, v))
}

// EndpointURLLT applies the LT predicate on the "endpoint_url" field.
func EndpointURLLT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldEndpointURL, v))
}

// EndpointURLLTE applies the LTE predicate on the "endpoint_url" field.
func EndpointURLLTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldEndpointURL, v))
}

// EndpointURLContains applies the Contains predicate on the "endpoint_url" field.
func EndpointURLContains(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContains(FieldEndpointURL, v))
}

// EndpointURLHasPrefix applies the HasPrefix predicate on the "endpoint_url" field.
func EndpointURLHasPrefix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasPrefix(FieldEndpointURL, v))
}

// EndpointURLHasSuffix applies the HasSuffix predicate on the "endpoint_url" field.
func EndpointURLHasSuffix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasSuffix(FieldEndpointURL, v))
}

// EndpointURLEqualFold applies the EqualFold predicate on the "endpoint_url" field.
func EndpointURLEqualFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldEndpointURL, v))
}

// EndpointURLContainsFold applies the ContainsFold predicate on the "endpoint_url" field.
func EndpointURLContainsFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldEndpointURL, v))
}

// HealthCheckURLEQ applies the EQ predicate on the "health_check_url" field.
func HealthCheckURLEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldHealthCheckURL, v))
}

// HealthCheckURLNEQ applies the NEQ predicate on the "health_check_url" field.
func HealthCheckURLNEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldHealthCheckURL, v))
}

// HealthCheckURLIn applies the In predicate on the "health_check_url" field.
func HealthCheckURLIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldHealthCheckURL, vs...))
}

// HealthCheckURLNotIn applies the NotIn predicate on the "health_check_url" field.
func HealthCheckURLNotIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldHealthCheckURL, vs...))
}

// HealthCheckURLGT applies the GT predicate on the "health_check_url" field.
func HealthCheckURLGT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldHealthCheckURL, v))
}

// HealthCheckURLGTE applies the GTE predicate on the "health_check_url" field.
func HealthCheckURLGTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldHealthCheckURL, v))
}

// HealthCheckURLLT applies the LT predicate on the "health_check_url" field.
func HealthCheckURLLT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldHealthCheckURL, v))
}

// HealthCheckURLLTE applies the LTE predicate on the "health_check_url" field.
func HealthCheckURLLTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldHealthCheckURL, v))
}

// HealthCheckURLContains applies the Contains predicate on the "health_check_url" field.
func HealthCheckURLContains(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContains(FieldHealthCheckURL, v))
}

// HealthCheckURLHasPrefix applies the HasPrefix predicate on the "health_check_url" field.
func HealthCheckURLHasPrefix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasPrefix(FieldHealthCheckURL, v))
}

// HealthCheckURLHasSuffix applies the HasSuffix predicate on the "health_check_url" field.
func HealthCheckURLHasSuffix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasSuffix(FieldHealthCheckURL, v))
}

// HealthCheckURLIsNil applies the IsNil predicate on the "health_check_url" field.
func HealthCheckURLIsNil() predicate.Runner {
	return predicate.Runner(sql.FieldIsNull(FieldHealthCheckURL))
}

// HealthCheckURLNotNil applies the NotNil predicate on the "health_check_url" field.
func HealthCheckURLNotNil() predicate.Runner {
	return predicate.Runner(sql.FieldNotNull(FieldHealthCheckURL))
}

// HealthCheckURLEqualFold applies the EqualFold predicate on the "health_check_url" field.
func HealthCheckURLEqualFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldHealthCheckURL, v))
}

// HealthCheckURLContainsFold applies the ContainsFold predicate on the "health_check_url" field.
func HealthCheckURLContainsFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldHealthCheckURL, v))
}

// WebhookTokenEQ applies the EQ predicate on the "webhook_token" field.
func WebhookTokenEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldWebhookToken, v))
}

// WebhookTokenNEQ applies the NEQ predicate on the "webhook_token" field.
func WebhookTokenNEQ(v string) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldWebhookToken, v))
}

// WebhookTokenIn applies the In predicate on the "webhook_token" field.
func WebhookTokenIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldWebhookToken, vs...))
}

// WebhookTokenNotIn applies the NotIn predicate on the "webhook_token" field.
func WebhookTokenNotIn(vs ...string) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldWebhookToken, vs...))
}

// WebhookTokenGT applies the GT predicate on the "webhook_token" field.
func WebhookTokenGT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldWebhookToken, v))
}

// WebhookTokenGTE applies the GTE predicate on the "webhook_token" field.
func WebhookTokenGTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldWebhookToken, v))
}

// WebhookTokenLT applies the LT predicate on the "webhook_token" field.
func WebhookTokenLT(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldWebhookToken, v))
}

// WebhookTokenLTE applies the LTE predicate on the "webhook_token" field.
func WebhookTokenLTE(v string) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldWebhookToken, v))
}

// WebhookTokenContains applies the Contains predicate on the "webhook_token" field.
func WebhookTokenContains(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContains(FieldWebhookToken, v))
}

// WebhookTokenHasPrefix applies the HasPrefix predicate on the "webhook_token" field.
func WebhookTokenHasPrefix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasPrefix(FieldWebhookToken, v))
}

// WebhookTokenHasSuffix applies the HasSuffix predicate on the "webhook_token" field.
func WebhookTokenHasSuffix(v string) predicate.Runner {
	return predicate.Runner(sql.FieldHasSuffix(FieldWebhookToken, v))
}

// WebhookTokenEqualFold applies the EqualFold predicate on the "webhook_token" field.
func WebhookTokenEqualFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldEqualFold(FieldWebhookToken, v))
}

// WebhookTokenContainsFold applies the ContainsFold predicate on the "webhook_token" field.
func WebhookTokenContainsFold(v string) predicate.Runner {
	return predicate.Runner(sql.FieldContainsFold(FieldWebhookToken, v))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.Runner {
	return predicate.Runner(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.Runner {
	return predicate.Runner(sql.FieldNotNull(FieldCapabilities))
}

// MaxConcurrentJobsEQ applies the EQ predicate on the "max_concurrent_jobs" field.
func MaxConcurrentJobsEQ(v int) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldMaxConcurrentJobs, v))
}

// MaxConcurrentJobsNEQ applies the NEQ predicate on the "max_concurrent_jobs" field.
func MaxConcurrentJobsNEQ(v int) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldMaxConcurrentJobs, v))
}

// MaxConcurrentJobsIn applies the In predicate on the "max_concurrent_jobs" field.
func MaxConcurrentJobsIn(vs ...int) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldMaxConcurrentJobs, vs...))
}

// MaxConcurrentJobsNotIn applies the NotIn predicate on the "max_concurrent_jobs" field.
func MaxConcurrentJobsNotIn(vs ...int) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldMaxConcurrentJobs, vs...))
}

// MaxConcurrentJobsGT applies the GT predicate on the "max_concurrent_jobs" field.
func MaxConcurrentJobsGT(v int) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldMaxConcurrentJobs, v))
}

// MaxConcurrentJobsGTE applies the GTE predicate on the "max_concurrent_jobs" field.
func MaxConcurrentJobsGTE(v int) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldMaxConcurrentJobs, v))
}

// MaxConcurrentJobsLT applies the LT predicate on the "max_concurrent_jobs" field.
func MaxConcurrentJobsLT(v int) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldMaxConcurrentJobs, v))
}

// MaxConcurrentJobsLTE applies the LTE predicate on the "max_concurrent_jobs" field.
func MaxConcurrentJobsLTE(v int) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldMaxConcurrentJobs, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldStatus, vs...))
}

// HealthEQ applies the EQ predicate on the "health" field.
func HealthEQ(v Health) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldHealth, v))
}

// HealthNEQ applies the NEQ predicate on the "health" field.
func HealthNEQ(v Health) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldHealth, v))
}

// HealthIn applies the In predicate on the "health" field.
func HealthIn(vs ...Health) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldHealth, vs...))
}

// HealthNotIn applies the NotIn predicate on the "health" field.
func HealthNotIn(vs ...Health) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldHealth, vs...))
}

// LastHealthCheckAtEQ applies the EQ predicate on the "last_health_check_at" field.
func LastHealthCheckAtEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtNEQ applies the NEQ predicate on the "last_health_check_at" field.
func LastHealthCheckAtNEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtIn applies the In predicate on the "last_health_check_at" field.
func LastHealthCheckAtIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldLastHealthCheckAt, vs...))
}

// LastHealthCheckAtNotIn applies the NotIn predicate on the "last_health_check_at" field.
func LastHealthCheckAtNotIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldLastHealthCheckAt, vs...))
}

// LastHealthCheckAtGT applies the GT predicate on the "last_health_check_at" field.
func LastHealthCheckAtGT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtGTE applies the GTE predicate on the "last_health_check_at" field.
func LastHealthCheckAtGTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtLT applies the LT predicate on the "last_health_check_at" field.
func LastHealthCheckAtLT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtLTE applies the LTE predicate on the "last_health_check_at" field.
func LastHealthCheckAtLTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldLastHealthCheckAt, v))
}

// LastHealthCheckAtIsNil applies the IsNil predicate on the "last_health_check_at" field.
func LastHealthCheckAtIsNil() predicate.Runner {
	return predicate.Runner(sql.FieldIsNull(FieldLastHealthCheckAt))
}

// LastHealthCheckAtNotNil applies the NotNil predicate on the "last_health_check_at" field.
func LastHealthCheckAtNotNil() predicate.Runner {
	return predicate.Runner(sql.FieldNotNull(FieldLastHealthCheckAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Runner {
	return predicate.Runner(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Runner {
	return predicate.Runner(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Runner {
	return predicate.Runner(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Runner {
	return predicate.Runner(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.Execution) predicate.Runner {
	return predicate.Runner(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAllocations applies the HasEdge predicate on the "allocations" edge.
func HasAllocations() predicate.Runner {
	return predicate.Runner(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AllocationsTable, AllocationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAllocationsWith applies the HasEdge predicate on the "allocations" edge with a given conditions (other predicates).
func HasAllocationsWith(preds ...predicate.ResourceAllocation) predicate.Runner {
	return predicate.Runner(func(s *sql.Selector) {
		step := newAllocationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHealthSamples applies the HasEdge predicate on the "health_samples" edge.
func HasHealthSamples() predicate.Runner {
	return predicate.Runner(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HealthSamplesTable, HealthSamplesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHealthSamplesWith applies the HasEdge predicate on the "health_samples" edge with a given conditions (other predicates).
func HasHealthSamplesWith(preds ...predicate.HealthSample) predicate.Runner {
	return predicate.Runner(func(s *sql.Selector) {
		step := newHealthSamplesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Runner) predicate.Runner {
	return predicate.Runner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Runner) predicate.Runner {
	return predicate.Runner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Runner) predicate.Runner {
	return predicate.Runner(sql.NotPredicates(p))
}
