// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/baton-ci/baton/ent/runner"
)

// Runner is the model entity for the Runner schema.
type Runner struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Natural key; duplicate registration is a conflict
	Name string `json:"name,omitempty"`
	// Driver routing key (e.g., 'webhook', 'docker', 'grpc-agent')
	Type string `json:"type,omitempty"`
	// Where the driver reaches the runner
	EndpointURL string `json:"endpoint_url,omitempty"`
	// Absent means health stays 'unknown'
	HealthCheckURL string `json:"health_check_url,omitempty"`
	// Bearer token the runner presents on /webhooks/runner
	WebhookToken string `json:"-"`
	// Matched by affinity rules
	Capabilities []string `json:"capabilities,omitempty"`
	// MaxConcurrentJobs holds the value of the "max_concurrent_jobs" field.
	MaxConcurrentJobs int `json:"max_concurrent_jobs,omitempty"`
	// Higher wins under priority-based selection
	Priority int `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status runner.Status `json:"status,omitempty"`
	// Health holds the value of the "health" field.
	Health runner.Health `json:"health,omitempty"`
	// LastHealthCheckAt holds the value of the "last_health_check_at" field.
	LastHealthCheckAt *time.Time `json:"last_health_check_at,omitempty"`
	// Driver-specific settings (e.g., docker image)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunnerQuery when eager-loading is set.
	Edges        RunnerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunnerEdges holds the relations/edges for other nodes in the graph.
type RunnerEdges struct {
	// Executions holds the value of the executions edge.
	Executions []*Execution `json:"executions,omitempty"`
	// Allocations holds the value of the allocations edge.
	Allocations []*ResourceAllocation `json:"allocations,omitempty"`
	// HealthSamples holds the value of the health_samples edge.
	HealthSamples []*HealthSample `json:"health_samples,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e RunnerEdges) ExecutionsOrErr() ([]*Execution, error) {
	if e.loadedTypes[0] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// AllocationsOrErr returns the Allocations value or an error if the edge
// was not loaded in eager-loading.
func (e RunnerEdges) AllocationsOrErr() ([]*ResourceAllocation, error) {
	if e.loadedTypes[1] {
		return e.Allocations, nil
	}
	return nil, &NotLoadedError{edge: "allocations"}
}

// HealthSamplesOrErr returns the HealthSamples value or an error if the edge
// was not loaded in eager-loading.
func (e RunnerEdges) HealthSamplesOrErr() ([]*HealthSample, error) {
	if e.loadedTypes[2] {
		return e.HealthSamples, nil
	}
	return nil, &NotLoadedError{edge: "health_samples"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Runner) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runner.FieldCapabilities, runner.FieldMetadata:
			values[i] = new([]byte)
		case runner.FieldID, runner.FieldMaxConcurrentJobs, runner.FieldPriority:
			values[i] = new(sql.NullInt64)
		case runner.FieldName, runner.FieldType, runner.FieldEndpointURL, runner.FieldHealthCheckURL, runner.FieldWebhookToken, runner.FieldStatus, runner.FieldHealth:
			values[i] = new(sql.NullString)
		case runner.FieldLastHealthCheckAt, runner.FieldCreatedAt, runner.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Runner fields.
func (_m *Runner) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runner.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case runner.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case runner.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case runner.FieldEndpointURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint_url", values[i])
			} else if value.Valid {
				_m.EndpointURL = value.String
			}
		case runner.FieldHealthCheckURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field health_check_url", values[i])
			} else if value.Valid {
				_m.HealthCheckURL = value.String
			}
		case runner.FieldWebhookToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_token", values[i])
			} else if value.Valid {
				_m.WebhookToken = value.String
			}
		case runner.FieldCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Capabilities); err != nil {
					return fmt.Errorf("unmarshal field capabilities: %w", err)
				}
			}
		case runner.FieldMaxConcurrentJobs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_concurrent_jobs", values[i])
			} else if value.Valid {
				_m.MaxConcurrentJobs = int(value.Int64)
			}
		case runner.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case runner.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = runner.Status(value.String)
			}
		case runner.FieldHealth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field health", values[i])
			} else if value.Valid {
				_m.Health = runner.Health(value.String)
			}
		case runner.FieldLastHealthCheckAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_health_check_at", values[i])
			} else if value.Valid {
				_m.LastHealthCheckAt = new(time.Time)
				*_m.LastHealthCheckAt = value.Time
			}
		case runner.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case runner.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case runner.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Runner.
// This includes values selected through modifiers, order, etc.
func (_m *Runner) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecutions queries the "executions" edge of the Runner entity.
func (_m *Runner) QueryExecutions() *ExecutionQuery {
	return NewRunnerClient(_m.config).QueryExecutions(_m)
}

// QueryAllocations queries the "allocations" edge of the Runner entity.
func (_m *Runner) QueryAllocations() *ResourceAllocationQuery {
	return NewRunnerClient(_m.config).QueryAllocations(_m)
}

// QueryHealthSamples queries the "health_samples" edge of the Runner entity.
func (_m *Runner) QueryHealthSamples() *HealthSampleQuery {
	return NewRunnerClient(_m.config).QueryHealthSamples(_m)
}

// Update returns a builder for updating this Runner.
// Note that you need to call Runner.Unwrap() before calling this method if this Runner
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Runner) Update() *RunnerUpdateOne {
	return NewRunnerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Runner entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Runner) Unwrap() *Runner {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Runner is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Runner) String() string {
	var builder strings.Builder
	builder.WriteString("Runner(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("endpoint_url=")
	builder.WriteString(_m.EndpointURL)
	builder.WriteString(", ")
	builder.WriteString("health_check_url=")
	builder.WriteString(_m.HealthCheckURL)
	builder.WriteString(", ")
	builder.WriteString("webhook_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("capabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capabilities))
	builder.WriteString(", ")
	builder.WriteString("max_concurrent_jobs=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxConcurrentJobs))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("health=")
	builder.WriteString(fmt.Sprintf("%v", _m.Health))
	builder.WriteString(", ")
	if v := _m.LastHealthCheckAt; v != nil {
		builder.WriteString("last_health_check_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Runners is a parsable slice of Runner.
type Runners []*Runner
