// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/suggestiontrust"
)

// SuggestionTrust is the model entity for the SuggestionTrust schema.
type SuggestionTrust struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Field holds the value of the "field" field.
	Field string `json:"field,omitempty"`
	// Pattern holds the value of the "pattern" field.
	Pattern string `json:"pattern,omitempty"`
	// Multiplier holds the value of the "multiplier" field.
	Multiplier float64 `json:"multiplier,omitempty"`
	// AcceptedCount holds the value of the "accepted_count" field.
	AcceptedCount int `json:"accepted_count,omitempty"`
	// RejectedCount holds the value of the "rejected_count" field.
	RejectedCount int `json:"rejected_count,omitempty"`
	// ModifiedCount holds the value of the "modified_count" field.
	ModifiedCount int `json:"modified_count,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SuggestionTrust) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suggestiontrust.FieldMultiplier:
			values[i] = new(sql.NullFloat64)
		case suggestiontrust.FieldAcceptedCount, suggestiontrust.FieldRejectedCount, suggestiontrust.FieldModifiedCount:
			values[i] = new(sql.NullInt64)
		case suggestiontrust.FieldID, suggestiontrust.FieldField, suggestiontrust.FieldPattern:
			values[i] = new(sql.NullString)
		case suggestiontrust.FieldCreatedAt, suggestiontrust.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SuggestionTrust fields.
func (_m *SuggestionTrust) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suggestiontrust.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case suggestiontrust.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case suggestiontrust.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case suggestiontrust.FieldField:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field", values[i])
			} else if value.Valid {
				_m.Field = value.String
			}
		case suggestiontrust.FieldPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern", values[i])
			} else if value.Valid {
				_m.Pattern = value.String
			}
		case suggestiontrust.FieldMultiplier:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field multiplier", values[i])
			} else if value.Valid {
				_m.Multiplier = value.Float64
			}
		case suggestiontrust.FieldAcceptedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field accepted_count", values[i])
			} else if value.Valid {
				_m.AcceptedCount = int(value.Int64)
			}
		case suggestiontrust.FieldRejectedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejected_count", values[i])
			} else if value.Valid {
				_m.RejectedCount = int(value.Int64)
			}
		case suggestiontrust.FieldModifiedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field modified_count", values[i])
			} else if value.Valid {
				_m.ModifiedCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SuggestionTrust.
// This includes values selected through modifiers, order, etc.
func (_m *SuggestionTrust) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SuggestionTrust.
// Note that you need to call SuggestionTrust.Unwrap() before calling this method if this SuggestionTrust
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SuggestionTrust) Update() *SuggestionTrustUpdateOne {
	return NewSuggestionTrustClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SuggestionTrust entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SuggestionTrust) Unwrap() *SuggestionTrust {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SuggestionTrust is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SuggestionTrust) String() string {
	var builder strings.Builder
	builder.WriteString("SuggestionTrust(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("field=")
	builder.WriteString(_m.Field)
	builder.WriteString(", ")
	builder.WriteString("pattern=")
	builder.WriteString(_m.Pattern)
	builder.WriteString(", ")
	builder.WriteString("multiplier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Multiplier))
	builder.WriteString(", ")
	builder.WriteString("accepted_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptedCount))
	builder.WriteString(", ")
	builder.WriteString("rejected_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RejectedCount))
	builder.WriteString(", ")
	builder.WriteString("modified_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModifiedCount))
	builder.WriteByte(')')
	return builder.String()
}

// SuggestionTrusts is a parsable slice of SuggestionTrust.
type SuggestionTrusts []*SuggestionTrust
