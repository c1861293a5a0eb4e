// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/baton-ci/baton/ent/balancingrule"
)

// BalancingRule is the model entity for the BalancingRule schema.
type BalancingRule struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Higher evaluates first; ties break on id
	Priority int `json:"priority,omitempty"`
	// Wire format uses dashes; normalized at the API
	Kind balancingrule.Kind `json:"kind,omitempty"`
	// Glob; empty matches every suite
	TestSuitePattern string `json:"test_suite_pattern,omitempty"`
	// Glob; empty matches every environment
	EnvironmentPattern string `json:"environment_pattern,omitempty"`
	// Affinity rules only
	RequiredCapabilities []string `json:"required_capabilities,omitempty"`
	// Glob over the execution's requested runner type; doubles as the type-filter kind's candidate restriction
	RunnerTypeFilter string `json:"runner_type_filter,omitempty"`
	// Round-robin position, survives restarts
	Cursor int `json:"cursor,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BalancingRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case balancingrule.FieldRequiredCapabilities:
			values[i] = new([]byte)
		case balancingrule.FieldActive:
			values[i] = new(sql.NullBool)
		case balancingrule.FieldID, balancingrule.FieldPriority, balancingrule.FieldCursor:
			values[i] = new(sql.NullInt64)
		case balancingrule.FieldName, balancingrule.FieldKind, balancingrule.FieldTestSuitePattern, balancingrule.FieldEnvironmentPattern, balancingrule.FieldRunnerTypeFilter:
			values[i] = new(sql.NullString)
		case balancingrule.FieldCreatedAt, balancingrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BalancingRule fields.
func (_m *BalancingRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case balancingrule.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case balancingrule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case balancingrule.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case balancingrule.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case balancingrule.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = balancingrule.Kind(value.String)
			}
		case balancingrule.FieldTestSuitePattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_suite_pattern", values[i])
			} else if value.Valid {
				_m.TestSuitePattern = value.String
			}
		case balancingrule.FieldEnvironmentPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field environment_pattern", values[i])
			} else if value.Valid {
				_m.EnvironmentPattern = value.String
			}
		case balancingrule.FieldRequiredCapabilities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required_capabilities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequiredCapabilities); err != nil {
					return fmt.Errorf("unmarshal field required_capabilities: %w", err)
				}
			}
		case balancingrule.FieldRunnerTypeFilter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field runner_type_filter", values[i])
			} else if value.Valid {
				_m.RunnerTypeFilter = value.String
			}
		case balancingrule.FieldCursor:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cursor", values[i])
			} else if value.Valid {
				_m.Cursor = int(value.Int64)
			}
		case balancingrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case balancingrule.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BalancingRule.
// This includes values selected through modifiers, order, etc.
func (_m *BalancingRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BalancingRule.
// Note that you need to call BalancingRule.Unwrap() before calling this method if this BalancingRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BalancingRule) Update() *BalancingRuleUpdateOne {
	return NewBalancingRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BalancingRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BalancingRule) Unwrap() *BalancingRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BalancingRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BalancingRule) String() string {
	var builder strings.Builder
	builder.WriteString("BalancingRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("test_suite_pattern=")
	builder.WriteString(_m.TestSuitePattern)
	builder.WriteString(", ")
	builder.WriteString("environment_pattern=")
	builder.WriteString(_m.EnvironmentPattern)
	builder.WriteString(", ")
	builder.WriteString("required_capabilities=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredCapabilities))
	builder.WriteString(", ")
	builder.WriteString("runner_type_filter=")
	builder.WriteString(_m.RunnerTypeFilter)
	builder.WriteString(", ")
	builder.WriteString("cursor=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cursor))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BalancingRules is a parsable slice of BalancingRule.
type BalancingRules []*BalancingRule
