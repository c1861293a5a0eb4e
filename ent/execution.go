// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/runner"
	"github.com/baton-ci/baton/pkg/models"
)

// Execution is the model entity for the Execution schema.
type Execution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Suite identifier, matched by rule globs
	TestSuite string `json:"test_suite,omitempty"`
	// Target environment (e.g., 'staging', 'prod-eu')
	Environment string `json:"environment,omitempty"`
	// Branch holds the value of the "branch" field.
	Branch string `json:"branch,omitempty"`
	// CommitSha holds the value of the "commit_sha" field.
	CommitSha string `json:"commit_sha,omitempty"`
	// From proxy auth headers when present
	RequestedBy string `json:"requested_by,omitempty"`
	// 0-100, higher schedules first
	Priority int `json:"priority,omitempty"`
	// EstimatedDurationMs holds the value of the "estimated_duration_ms" field.
	EstimatedDurationMs *int64 `json:"estimated_duration_ms,omitempty"`
	// Pin to a runner type
	RequestedRunnerType *string `json:"requested_runner_type,omitempty"`
	// Pin to a specific runner
	RequestedRunnerID *int `json:"requested_runner_id,omitempty"`
	// Status holds the value of the "status" field.
	Status execution.Status `json:"status,omitempty"`
	// Set on every terminal transition
	StatusReason string `json:"status_reason,omitempty"`
	// AssignedRunnerID holds the value of the "assigned_runner_id" field.
	AssignedRunnerID *int `json:"assigned_runner_id,omitempty"`
	// TotalShards holds the value of the "total_shards" field.
	TotalShards int `json:"total_shards,omitempty"`
	// Keyed by decimal shard index; JSON object keys are strings
	ShardResults map[string]models.ShardResult `json:"shard_results,omitempty"`
	// Null until terminal; null on error/cancelled terminals
	AggregatedResults *models.AggregatedResults `json:"aggregated_results,omitempty"`
	// IdempotencyKey holds the value of the "idempotency_key" field.
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	// Client notification target on terminal states
	WebhookURL string `json:"webhook_url,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Bumped on the running signal and every shard result; the completion sweeper keys on it
	LastProgressAt *time.Time `json:"last_progress_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionQuery when eager-loading is set.
	Edges        ExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionEdges holds the relations/edges for other nodes in the graph.
type ExecutionEdges struct {
	// Runner holds the value of the runner edge.
	Runner *Runner `json:"runner,omitempty"`
	// Allocations holds the value of the allocations edge.
	Allocations []*ResourceAllocation `json:"allocations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunnerOrErr returns the Runner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionEdges) RunnerOrErr() (*Runner, error) {
	if e.Runner != nil {
		return e.Runner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: runner.Label}
	}
	return nil, &NotLoadedError{edge: "runner"}
}

// AllocationsOrErr returns the Allocations value or an error if the edge
// was not loaded in eager-loading.
func (e ExecutionEdges) AllocationsOrErr() ([]*ResourceAllocation, error) {
	if e.loadedTypes[1] {
		return e.Allocations, nil
	}
	return nil, &NotLoadedError{edge: "allocations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Execution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case execution.FieldShardResults, execution.FieldAggregatedResults, execution.FieldMetadata:
			values[i] = new([]byte)
		case execution.FieldPriority, execution.FieldEstimatedDurationMs, execution.FieldRequestedRunnerID, execution.FieldAssignedRunnerID, execution.FieldTotalShards:
			values[i] = new(sql.NullInt64)
		case execution.FieldID, execution.FieldTestSuite, execution.FieldEnvironment, execution.FieldBranch, execution.FieldCommitSha, execution.FieldRequestedBy, execution.FieldRequestedRunnerType, execution.FieldStatus, execution.FieldStatusReason, execution.FieldIdempotencyKey, execution.FieldWebhookURL:
			values[i] = new(sql.NullString)
		case execution.FieldCreatedAt, execution.FieldAssignedAt, execution.FieldStartedAt, execution.FieldLastProgressAt, execution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Execution fields.
func (_m *Execution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case execution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case execution.FieldTestSuite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_suite", values[i])
			} else if value.Valid {
				_m.TestSuite = value.String
			}
		case execution.FieldEnvironment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field environment", values[i])
			} else if value.Valid {
				_m.Environment = value.String
			}
		case execution.FieldBranch:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field branch", values[i])
			} else if value.Valid {
				_m.Branch = value.String
			}
		case execution.FieldCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_sha", values[i])
			} else if value.Valid {
				_m.CommitSha = value.String
			}
		case execution.FieldRequestedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value.Valid {
				_m.RequestedBy = value.String
			}
		case execution.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case execution.FieldEstimatedDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_duration_ms", values[i])
			} else if value.Valid {
				_m.EstimatedDurationMs = new(int64)
				*_m.EstimatedDurationMs = value.Int64
			}
		case execution.FieldRequestedRunnerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_runner_type", values[i])
			} else if value.Valid {
				_m.RequestedRunnerType = new(string)
				*_m.RequestedRunnerType = value.String
			}
		case execution.FieldRequestedRunnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requested_runner_id", values[i])
			} else if value.Valid {
				_m.RequestedRunnerID = new(int)
				*_m.RequestedRunnerID = int(value.Int64)
			}
		case execution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = execution.Status(value.String)
			}
		case execution.FieldStatusReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_reason", values[i])
			} else if value.Valid {
				_m.StatusReason = value.String
			}
		case execution.FieldAssignedRunnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_runner_id", values[i])
			} else if value.Valid {
				_m.AssignedRunnerID = new(int)
				*_m.AssignedRunnerID = int(value.Int64)
			}
		case execution.FieldTotalShards:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_shards", values[i])
			} else if value.Valid {
				_m.TotalShards = int(value.Int64)
			}
		case execution.FieldShardResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field shard_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ShardResults); err != nil {
					return fmt.Errorf("unmarshal field shard_results: %w", err)
				}
			}
		case execution.FieldAggregatedResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aggregated_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AggregatedResults); err != nil {
					return fmt.Errorf("unmarshal field aggregated_results: %w", err)
				}
			}
		case execution.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = new(string)
				*_m.IdempotencyKey = value.String
			}
		case execution.FieldWebhookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_url", values[i])
			} else if value.Valid {
				_m.WebhookURL = value.String
			}
		case execution.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case execution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case execution.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = new(time.Time)
				*_m.AssignedAt = value.Time
			}
		case execution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case execution.FieldLastProgressAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_progress_at", values[i])
			} else if value.Valid {
				_m.LastProgressAt = new(time.Time)
				*_m.LastProgressAt = value.Time
			}
		case execution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Execution.
// This includes values selected through modifiers, order, etc.
func (_m *Execution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRunner queries the "runner" edge of the Execution entity.
func (_m *Execution) QueryRunner() *RunnerQuery {
	return NewExecutionClient(_m.config).QueryRunner(_m)
}

// QueryAllocations queries the "allocations" edge of the Execution entity.
func (_m *Execution) QueryAllocations() *ResourceAllocationQuery {
	return NewExecutionClient(_m.config).QueryAllocations(_m)
}

// Update returns a builder for updating this Execution.
// Note that you need to call Execution.Unwrap() before calling this method if this Execution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Execution) Update() *ExecutionUpdateOne {
	return NewExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Execution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Execution) Unwrap() *Execution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Execution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Execution) String() string {
	var builder strings.Builder
	builder.WriteString("Execution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("test_suite=")
	builder.WriteString(_m.TestSuite)
	builder.WriteString(", ")
	builder.WriteString("environment=")
	builder.WriteString(_m.Environment)
	builder.WriteString(", ")
	builder.WriteString("branch=")
	builder.WriteString(_m.Branch)
	builder.WriteString(", ")
	builder.WriteString("commit_sha=")
	builder.WriteString(_m.CommitSha)
	builder.WriteString(", ")
	builder.WriteString("requested_by=")
	builder.WriteString(_m.RequestedBy)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.EstimatedDurationMs; v != nil {
		builder.WriteString("estimated_duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RequestedRunnerType; v != nil {
		builder.WriteString("requested_runner_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RequestedRunnerID; v != nil {
		builder.WriteString("requested_runner_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("status_reason=")
	builder.WriteString(_m.StatusReason)
	builder.WriteString(", ")
	if v := _m.AssignedRunnerID; v != nil {
		builder.WriteString("assigned_runner_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_shards=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalShards))
	builder.WriteString(", ")
	builder.WriteString("shard_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShardResults))
	builder.WriteString(", ")
	builder.WriteString("aggregated_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.AggregatedResults))
	builder.WriteString(", ")
	if v := _m.IdempotencyKey; v != nil {
		builder.WriteString("idempotency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("webhook_url=")
	builder.WriteString(_m.WebhookURL)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AssignedAt; v != nil {
		builder.WriteString("assigned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastProgressAt; v != nil {
		builder.WriteString("last_progress_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Executions is a parsable slice of Execution.
type Executions []*Execution
