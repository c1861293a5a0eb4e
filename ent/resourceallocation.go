// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/baton-ci/baton/ent/execution"
	"github.com/baton-ci/baton/ent/resourceallocation"
	"github.com/baton-ci/baton/ent/runner"
)

// ResourceAllocation is the model entity for the ResourceAllocation schema.
type ResourceAllocation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// RunnerID holds the value of the "runner_id" field.
	RunnerID int `json:"runner_id,omitempty"`
	// Advisory CPU units
	CPUAllocated float64 `json:"cpu_allocated,omitempty"`
	// Advisory MB
	MemoryAllocated float64 `json:"memory_allocated,omitempty"`
	// State holds the value of the "state" field.
	State resourceallocation.State `json:"state,omitempty"`
	// AllocatedAt holds the value of the "allocated_at" field.
	AllocatedAt time.Time `json:"allocated_at,omitempty"`
	// ReleasedAt holds the value of the "released_at" field.
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResourceAllocationQuery when eager-loading is set.
	Edges        ResourceAllocationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResourceAllocationEdges holds the relations/edges for other nodes in the graph.
type ResourceAllocationEdges struct {
	// Execution holds the value of the execution edge.
	Execution *Execution `json:"execution,omitempty"`
	// Runner holds the value of the runner edge.
	Runner *Runner `json:"runner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResourceAllocationEdges) ExecutionOrErr() (*Execution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: execution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// RunnerOrErr returns the Runner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResourceAllocationEdges) RunnerOrErr() (*Runner, error) {
	if e.Runner != nil {
		return e.Runner, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: runner.Label}
	}
	return nil, &NotLoadedError{edge: "runner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResourceAllocation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resourceallocation.FieldCPUAllocated, resourceallocation.FieldMemoryAllocated:
			values[i] = new(sql.NullFloat64)
		case resourceallocation.FieldID, resourceallocation.FieldRunnerID:
			values[i] = new(sql.NullInt64)
		case resourceallocation.FieldExecutionID, resourceallocation.FieldState:
			values[i] = new(sql.NullString)
		case resourceallocation.FieldAllocatedAt, resourceallocation.FieldReleasedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResourceAllocation fields.
func (_m *ResourceAllocation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resourceallocation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resourceallocation.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case resourceallocation.FieldRunnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field runner_id", values[i])
			} else if value.Valid {
				_m.RunnerID = int(value.Int64)
			}
		case resourceallocation.FieldCPUAllocated:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_allocated", values[i])
			} else if value.Valid {
				_m.CPUAllocated = value.Float64
			}
		case resourceallocation.FieldMemoryAllocated:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_allocated", values[i])
			} else if value.Valid {
				_m.MemoryAllocated = value.Float64
			}
		case resourceallocation.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = resourceallocation.State(value.String)
			}
		case resourceallocation.FieldAllocatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field allocated_at", values[i])
			} else if value.Valid {
				_m.AllocatedAt = value.Time
			}
		case resourceallocation.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResourceAllocation.
// This includes values selected through modifiers, order, etc.
func (_m *ResourceAllocation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the ResourceAllocation entity.
func (_m *ResourceAllocation) QueryExecution() *ExecutionQuery {
	return NewResourceAllocationClient(_m.config).QueryExecution(_m)
}

// QueryRunner queries the "runner" edge of the ResourceAllocation entity.
func (_m *ResourceAllocation) QueryRunner() *RunnerQuery {
	return NewResourceAllocationClient(_m.config).QueryRunner(_m)
}

// Update returns a builder for updating this ResourceAllocation.
// Note that you need to call ResourceAllocation.Unwrap() before calling this method if this ResourceAllocation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResourceAllocation) Update() *ResourceAllocationUpdateOne {
	return NewResourceAllocationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResourceAllocation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResourceAllocation) Unwrap() *ResourceAllocation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResourceAllocation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResourceAllocation) String() string {
	var builder strings.Builder
	builder.WriteString("ResourceAllocation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("runner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunnerID))
	builder.WriteString(", ")
	builder.WriteString("cpu_allocated=")
	builder.WriteString(fmt.Sprintf("%v", _m.CPUAllocated))
	builder.WriteString(", ")
	builder.WriteString("memory_allocated=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryAllocated))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("allocated_at=")
	builder.WriteString(_m.AllocatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReleasedAt; v != nil {
		builder.WriteString("released_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResourceAllocations is a parsable slice of ResourceAllocation.
type ResourceAllocations []*ResourceAllocation
