// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/graphgeneration"
)

// GraphGeneration is the model entity for the GraphGeneration schema.
type GraphGeneration struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Number holds the value of the "number" field.
	Number int64 `json:"number,omitempty"`
	// Modularity holds the value of the "modularity" field.
	Modularity float64 `json:"modularity,omitempty"`
	// Levels holds the value of the "levels" field.
	Levels int `json:"levels,omitempty"`
	// CommunityCount holds the value of the "community_count" field.
	CommunityCount int `json:"community_count,omitempty"`
	// EntityCount holds the value of the "entity_count" field.
	EntityCount int `json:"entity_count,omitempty"`
	// BudgetExceeded holds the value of the "budget_exceeded" field.
	BudgetExceeded bool `json:"budget_exceeded,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphGeneration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphgeneration.FieldBudgetExceeded:
			values[i] = new(sql.NullBool)
		case graphgeneration.FieldModularity:
			values[i] = new(sql.NullFloat64)
		case graphgeneration.FieldNumber, graphgeneration.FieldLevels, graphgeneration.FieldCommunityCount, graphgeneration.FieldEntityCount:
			values[i] = new(sql.NullInt64)
		case graphgeneration.FieldID:
			values[i] = new(sql.NullString)
		case graphgeneration.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphGeneration fields.
func (_m *GraphGeneration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphgeneration.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case graphgeneration.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case graphgeneration.FieldNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = value.Int64
			}
		case graphgeneration.FieldModularity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field modularity", values[i])
			} else if value.Valid {
				_m.Modularity = value.Float64
			}
		case graphgeneration.FieldLevels:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field levels", values[i])
			} else if value.Valid {
				_m.Levels = int(value.Int64)
			}
		case graphgeneration.FieldCommunityCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field community_count", values[i])
			} else if value.Valid {
				_m.CommunityCount = int(value.Int64)
			}
		case graphgeneration.FieldEntityCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entity_count", values[i])
			} else if value.Valid {
				_m.EntityCount = int(value.Int64)
			}
		case graphgeneration.FieldBudgetExceeded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field budget_exceeded", values[i])
			} else if value.Valid {
				_m.BudgetExceeded = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GraphGeneration.
// This includes values selected through modifiers, order, etc.
func (_m *GraphGeneration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GraphGeneration.
// Note that you need to call GraphGeneration.Unwrap() before calling this method if this GraphGeneration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphGeneration) Update() *GraphGenerationUpdateOne {
	return NewGraphGenerationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphGeneration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphGeneration) Unwrap() *GraphGeneration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphGeneration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphGeneration) String() string {
	var builder strings.Builder
	builder.WriteString("GraphGeneration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(fmt.Sprintf("%v", _m.Number))
	builder.WriteString(", ")
	builder.WriteString("modularity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Modularity))
	builder.WriteString(", ")
	builder.WriteString("levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.Levels))
	builder.WriteString(", ")
	builder.WriteString("community_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommunityCount))
	builder.WriteString(", ")
	builder.WriteString("entity_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityCount))
	builder.WriteString(", ")
	builder.WriteString("budget_exceeded=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetExceeded))
	builder.WriteByte(')')
	return builder.String()
}

// GraphGenerations is a parsable slice of GraphGeneration.
type GraphGenerations []*GraphGeneration
