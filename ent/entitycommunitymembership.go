// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/entitycommunitymembership"
)

// EntityCommunityMembership is the model entity for the EntityCommunityMembership schema.
type EntityCommunityMembership struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID string `json:"entity_id,omitempty"`
	// CommunityID holds the value of the "community_id" field.
	CommunityID string `json:"community_id,omitempty"`
	// MembershipScore holds the value of the "membership_score" field.
	MembershipScore float64 `json:"membership_score,omitempty"`
	// Generation holds the value of the "generation" field.
	Generation   int64 `json:"generation,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityCommunityMembership) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitycommunitymembership.FieldMembershipScore:
			values[i] = new(sql.NullFloat64)
		case entitycommunitymembership.FieldGeneration:
			values[i] = new(sql.NullInt64)
		case entitycommunitymembership.FieldID, entitycommunitymembership.FieldEntityID, entitycommunitymembership.FieldCommunityID:
			values[i] = new(sql.NullString)
		case entitycommunitymembership.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityCommunityMembership fields.
func (_m *EntityCommunityMembership) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitycommunitymembership.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entitycommunitymembership.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entitycommunitymembership.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = value.String
			}
		case entitycommunitymembership.FieldCommunityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field community_id", values[i])
			} else if value.Valid {
				_m.CommunityID = value.String
			}
		case entitycommunitymembership.FieldMembershipScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field membership_score", values[i])
			} else if value.Valid {
				_m.MembershipScore = value.Float64
			}
		case entitycommunitymembership.FieldGeneration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generation", values[i])
			} else if value.Valid {
				_m.Generation = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityCommunityMembership.
// This includes values selected through modifiers, order, etc.
func (_m *EntityCommunityMembership) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EntityCommunityMembership.
// Note that you need to call EntityCommunityMembership.Unwrap() before calling this method if this EntityCommunityMembership
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityCommunityMembership) Update() *EntityCommunityMembershipUpdateOne {
	return NewEntityCommunityMembershipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityCommunityMembership entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityCommunityMembership) Unwrap() *EntityCommunityMembership {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityCommunityMembership is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityCommunityMembership) String() string {
	var builder strings.Builder
	builder.WriteString("EntityCommunityMembership(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("entity_id=")
	builder.WriteString(_m.EntityID)
	builder.WriteString(", ")
	builder.WriteString("community_id=")
	builder.WriteString(_m.CommunityID)
	builder.WriteString(", ")
	builder.WriteString("membership_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MembershipScore))
	builder.WriteString(", ")
	builder.WriteString("generation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Generation))
	builder.WriteByte(')')
	return builder.String()
}

// EntityCommunityMemberships is a parsable slice of EntityCommunityMembership.
type EntityCommunityMemberships []*EntityCommunityMembership
