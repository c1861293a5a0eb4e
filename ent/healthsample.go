// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/baton-ci/baton/ent/healthsample"
	"github.com/baton-ci/baton/ent/runner"
)

// HealthSample is the model entity for the HealthSample schema.
type HealthSample struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunnerID holds the value of the "runner_id" field.
	RunnerID int `json:"runner_id,omitempty"`
	// Health holds the value of the "health" field.
	Health healthsample.Health `json:"health,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Probe failure detail
	Error string `json:"error,omitempty"`
	// CheckedAt holds the value of the "checked_at" field.
	CheckedAt time.Time `json:"checked_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HealthSampleQuery when eager-loading is set.
	Edges        HealthSampleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HealthSampleEdges holds the relations/edges for other nodes in the graph.
type HealthSampleEdges struct {
	// Runner holds the value of the runner edge.
	Runner *Runner `json:"runner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunnerOrErr returns the Runner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HealthSampleEdges) RunnerOrErr() (*Runner, error) {
	if e.Runner != nil {
		return e.Runner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: runner.Label}
	}
	return nil, &NotLoadedError{edge: "runner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HealthSample) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case healthsample.FieldID, healthsample.FieldRunnerID, healthsample.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case healthsample.FieldHealth, healthsample.FieldError:
			values[i] = new(sql.NullString)
		case healthsample.FieldCheckedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HealthSample fields.
func (_m *HealthSample) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case healthsample.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case healthsample.FieldRunnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field runner_id", values[i])
			} else if value.Valid {
				_m.RunnerID = int(value.Int64)
			}
		case healthsample.FieldHealth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field health", values[i])
			} else if value.Valid {
				_m.Health = healthsample.Health(value.String)
			}
		case healthsample.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case healthsample.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = value.String
			}
		case healthsample.FieldCheckedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field checked_at", values[i])
			} else if value.Valid {
				_m.CheckedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HealthSample.
// This includes values selected through modifiers, order, etc.
func (_m *HealthSample) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRunner queries the "runner" edge of the HealthSample entity.
func (_m *HealthSample) QueryRunner() *RunnerQuery {
	return NewHealthSampleClient(_m.config).QueryRunner(_m)
}

// Update returns a builder for updating this HealthSample.
// Note that you need to call HealthSample.Unwrap() before calling this method if this HealthSample
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HealthSample) Update() *HealthSampleUpdateOne {
	return NewHealthSampleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HealthSample entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HealthSample) Unwrap() *HealthSample {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HealthSample is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HealthSample) String() string {
	var builder strings.Builder
	builder.WriteString("HealthSample(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("runner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunnerID))
	builder.WriteString(", ")
	builder.WriteString("health=")
	builder.WriteString(fmt.Sprintf("%v", _m.Health))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(_m.Error)
	builder.WriteString(", ")
	builder.WriteString("checked_at=")
	builder.WriteString(_m.CheckedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HealthSamples is a parsable slice of HealthSample.
type HealthSamples []*HealthSample
