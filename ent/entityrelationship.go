// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/entityrelationship"
)

// EntityRelationship is the model entity for the EntityRelationship schema.
type EntityRelationship struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SourceEntityID holds the value of the "source_entity_id" field.
	SourceEntityID string `json:"source_entity_id,omitempty"`
	// TargetEntityID holds the value of the "target_entity_id" field.
	TargetEntityID string `json:"target_entity_id,omitempty"`
	// RelationshipType holds the value of the "relationship_type" field.
	RelationshipType entityrelationship.RelationshipType `json:"relationship_type,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight float64 `json:"weight,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Observations holds the value of the "observations" field.
	Observations int `json:"observations,omitempty"`
	// LastObjectID holds the value of the "last_object_id" field.
	LastObjectID string `json:"last_object_id,omitempty"`
	// SourceDomainID holds the value of the "source_domain_id" field.
	SourceDomainID string `json:"source_domain_id,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityRelationship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entityrelationship.FieldWeight, entityrelationship.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case entityrelationship.FieldObservations:
			values[i] = new(sql.NullInt64)
		case entityrelationship.FieldID, entityrelationship.FieldSourceEntityID, entityrelationship.FieldTargetEntityID, entityrelationship.FieldRelationshipType, entityrelationship.FieldLastObjectID, entityrelationship.FieldSourceDomainID:
			values[i] = new(sql.NullString)
		case entityrelationship.FieldCreatedAt, entityrelationship.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityRelationship fields.
func (_m *EntityRelationship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entityrelationship.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entityrelationship.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entityrelationship.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case entityrelationship.FieldSourceEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_entity_id", values[i])
			} else if value.Valid {
				_m.SourceEntityID = value.String
			}
		case entityrelationship.FieldTargetEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_entity_id", values[i])
			} else if value.Valid {
				_m.TargetEntityID = value.String
			}
		case entityrelationship.FieldRelationshipType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship_type", values[i])
			} else if value.Valid {
				_m.RelationshipType = entityrelationship.RelationshipType(value.String)
			}
		case entityrelationship.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case entityrelationship.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case entityrelationship.FieldObservations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field observations", values[i])
			} else if value.Valid {
				_m.Observations = int(value.Int64)
			}
		case entityrelationship.FieldLastObjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_object_id", values[i])
			} else if value.Valid {
				_m.LastObjectID = value.String
			}
		case entityrelationship.FieldSourceDomainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_domain_id", values[i])
			} else if value.Valid {
				_m.SourceDomainID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityRelationship.
// This includes values selected through modifiers, order, etc.
func (_m *EntityRelationship) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EntityRelationship.
// Note that you need to call EntityRelationship.Unwrap() before calling this method if this EntityRelationship
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityRelationship) Update() *EntityRelationshipUpdateOne {
	return NewEntityRelationshipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityRelationship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityRelationship) Unwrap() *EntityRelationship {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityRelationship is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityRelationship) String() string {
	var builder strings.Builder
	builder.WriteString("EntityRelationship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source_entity_id=")
	builder.WriteString(_m.SourceEntityID)
	builder.WriteString(", ")
	builder.WriteString("target_entity_id=")
	builder.WriteString(_m.TargetEntityID)
	builder.WriteString(", ")
	builder.WriteString("relationship_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelationshipType))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("observations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Observations))
	builder.WriteString(", ")
	builder.WriteString("last_object_id=")
	builder.WriteString(_m.LastObjectID)
	builder.WriteString(", ")
	builder.WriteString("source_domain_id=")
	builder.WriteString(_m.SourceDomainID)
	builder.WriteByte(')')
	return builder.String()
}

// EntityRelationships is a parsable slice of EntityRelationship.
type EntityRelationships []*EntityRelationship
