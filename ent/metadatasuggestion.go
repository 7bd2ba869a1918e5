// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/metadatasuggestion"
)

// MetadataSuggestion is the model entity for the MetadataSuggestion schema.
type MetadataSuggestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ObjectID holds the value of the "object_id" field.
	ObjectID string `json:"object_id,omitempty"`
	// Field holds the value of the "field" field.
	Field string `json:"field,omitempty"`
	// SuggestedValue holds the value of the "suggested_value" field.
	SuggestedValue map[string]interface{} `json:"suggested_value,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Source holds the value of the "source" field.
	Source metadatasuggestion.Source `json:"source,omitempty"`
	// Pattern holds the value of the "pattern" field.
	Pattern string `json:"pattern,omitempty"`
	// Status holds the value of the "status" field.
	Status metadatasuggestion.Status `json:"status,omitempty"`
	// ModifiedValue holds the value of the "modified_value" field.
	ModifiedValue map[string]interface{} `json:"modified_value,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy string `json:"reviewed_by,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt   time.Time `json:"reviewed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MetadataSuggestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case metadatasuggestion.FieldSuggestedValue, metadatasuggestion.FieldModifiedValue:
			values[i] = new([]byte)
		case metadatasuggestion.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case metadatasuggestion.FieldID, metadatasuggestion.FieldObjectID, metadatasuggestion.FieldField, metadatasuggestion.FieldReasoning, metadatasuggestion.FieldSource, metadatasuggestion.FieldPattern, metadatasuggestion.FieldStatus, metadatasuggestion.FieldReviewedBy:
			values[i] = new(sql.NullString)
		case metadatasuggestion.FieldCreatedAt, metadatasuggestion.FieldUpdatedAt, metadatasuggestion.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MetadataSuggestion fields.
func (_m *MetadataSuggestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case metadatasuggestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case metadatasuggestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case metadatasuggestion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case metadatasuggestion.FieldObjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field object_id", values[i])
			} else if value.Valid {
				_m.ObjectID = value.String
			}
		case metadatasuggestion.FieldField:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field", values[i])
			} else if value.Valid {
				_m.Field = value.String
			}
		case metadatasuggestion.FieldSuggestedValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuggestedValue); err != nil {
					return fmt.Errorf("unmarshal field suggested_value: %w", err)
				}
			}
		case metadatasuggestion.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case metadatasuggestion.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case metadatasuggestion.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = metadatasuggestion.Source(value.String)
			}
		case metadatasuggestion.FieldPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern", values[i])
			} else if value.Valid {
				_m.Pattern = value.String
			}
		case metadatasuggestion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = metadatasuggestion.Status(value.String)
			}
		case metadatasuggestion.FieldModifiedValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modified_value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModifiedValue); err != nil {
					return fmt.Errorf("unmarshal field modified_value: %w", err)
				}
			}
		case metadatasuggestion.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = value.String
			}
		case metadatasuggestion.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MetadataSuggestion.
// This includes values selected through modifiers, order, etc.
func (_m *MetadataSuggestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MetadataSuggestion.
// Note that you need to call MetadataSuggestion.Unwrap() before calling this method if this MetadataSuggestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MetadataSuggestion) Update() *MetadataSuggestionUpdateOne {
	return NewMetadataSuggestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MetadataSuggestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MetadataSuggestion) Unwrap() *MetadataSuggestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MetadataSuggestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MetadataSuggestion) String() string {
	var builder strings.Builder
	builder.WriteString("MetadataSuggestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("object_id=")
	builder.WriteString(_m.ObjectID)
	builder.WriteString(", ")
	builder.WriteString("field=")
	builder.WriteString(_m.Field)
	builder.WriteString(", ")
	builder.WriteString("suggested_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuggestedValue))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("pattern=")
	builder.WriteString(_m.Pattern)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("modified_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModifiedValue))
	builder.WriteString(", ")
	builder.WriteString("reviewed_by=")
	builder.WriteString(_m.ReviewedBy)
	builder.WriteString(", ")
	builder.WriteString("reviewed_at=")
	builder.WriteString(_m.ReviewedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MetadataSuggestions is a parsable slice of MetadataSuggestion.
type MetadataSuggestions []*MetadataSuggestion
