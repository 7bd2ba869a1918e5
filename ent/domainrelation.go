// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/domainrelation"
)

// DomainRelation is the model entity for the DomainRelation schema.
type DomainRelation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FromDomainID holds the value of the "from_domain_id" field.
	FromDomainID string `json:"from_domain_id,omitempty"`
	// ToDomainID holds the value of the "to_domain_id" field.
	ToDomainID string `json:"to_domain_id,omitempty"`
	// RelationType holds the value of the "relation_type" field.
	RelationType domainrelation.RelationType `json:"relation_type,omitempty"`
	// Strength holds the value of the "strength" field.
	Strength float64 `json:"strength,omitempty"`
	// DiscoveryMethod holds the value of the "discovery_method" field.
	DiscoveryMethod domainrelation.DiscoveryMethod `json:"discovery_method,omitempty"`
	// SharedEntityCount holds the value of the "shared_entity_count" field.
	SharedEntityCount int `json:"shared_entity_count,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation  string `json:"explanation,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DomainRelation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case domainrelation.FieldStrength:
			values[i] = new(sql.NullFloat64)
		case domainrelation.FieldSharedEntityCount:
			values[i] = new(sql.NullInt64)
		case domainrelation.FieldID, domainrelation.FieldFromDomainID, domainrelation.FieldToDomainID, domainrelation.FieldRelationType, domainrelation.FieldDiscoveryMethod, domainrelation.FieldExplanation:
			values[i] = new(sql.NullString)
		case domainrelation.FieldCreatedAt, domainrelation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DomainRelation fields.
func (_m *DomainRelation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case domainrelation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case domainrelation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case domainrelation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case domainrelation.FieldFromDomainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_domain_id", values[i])
			} else if value.Valid {
				_m.FromDomainID = value.String
			}
		case domainrelation.FieldToDomainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_domain_id", values[i])
			} else if value.Valid {
				_m.ToDomainID = value.String
			}
		case domainrelation.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				_m.RelationType = domainrelation.RelationType(value.String)
			}
		case domainrelation.FieldStrength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = value.Float64
			}
		case domainrelation.FieldDiscoveryMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discovery_method", values[i])
			} else if value.Valid {
				_m.DiscoveryMethod = domainrelation.DiscoveryMethod(value.String)
			}
		case domainrelation.FieldSharedEntityCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field shared_entity_count", values[i])
			} else if value.Valid {
				_m.SharedEntityCount = int(value.Int64)
			}
		case domainrelation.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DomainRelation.
// This includes values selected through modifiers, order, etc.
func (_m *DomainRelation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DomainRelation.
// Note that you need to call DomainRelation.Unwrap() before calling this method if this DomainRelation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DomainRelation) Update() *DomainRelationUpdateOne {
	return NewDomainRelationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DomainRelation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DomainRelation) Unwrap() *DomainRelation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DomainRelation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DomainRelation) String() string {
	var builder strings.Builder
	builder.WriteString("DomainRelation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("from_domain_id=")
	builder.WriteString(_m.FromDomainID)
	builder.WriteString(", ")
	builder.WriteString("to_domain_id=")
	builder.WriteString(_m.ToDomainID)
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelationType))
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strength))
	builder.WriteString(", ")
	builder.WriteString("discovery_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscoveryMethod))
	builder.WriteString(", ")
	builder.WriteString("shared_entity_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SharedEntityCount))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteByte(')')
	return builder.String()
}

// DomainRelations is a parsable slice of DomainRelation.
type DomainRelations []*DomainRelation
