// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/businessrule"
)

// BusinessRule is the model entity for the BusinessRule schema.
type BusinessRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// RuleLogic holds the value of the "rule_logic" field.
	RuleLogic map[string]interface{} `json:"rule_logic,omitempty"`
	// Action holds the value of the "action" field.
	Action map[string]interface{} `json:"action,omitempty"`
	// DomainTypes holds the value of the "domain_types" field.
	DomainTypes []string `json:"domain_types,omitempty"`
	// ObjectTypes holds the value of the "object_types" field.
	ObjectTypes []string `json:"object_types,omitempty"`
	// ValidFrom holds the value of the "valid_from" field.
	ValidFrom time.Time `json:"valid_from,omitempty"`
	// ValidUntil holds the value of the "valid_until" field.
	ValidUntil time.Time `json:"valid_until,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy    string `json:"created_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businessrule.FieldRuleLogic, businessrule.FieldAction, businessrule.FieldDomainTypes, businessrule.FieldObjectTypes:
			values[i] = new([]byte)
		case businessrule.FieldActive:
			values[i] = new(sql.NullBool)
		case businessrule.FieldID, businessrule.FieldName, businessrule.FieldDescription, businessrule.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case businessrule.FieldCreatedAt, businessrule.FieldUpdatedAt, businessrule.FieldValidFrom, businessrule.FieldValidUntil:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessRule fields.
func (_m *BusinessRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businessrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case businessrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case businessrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case businessrule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case businessrule.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case businessrule.FieldRuleLogic:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rule_logic", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RuleLogic); err != nil {
					return fmt.Errorf("unmarshal field rule_logic: %w", err)
				}
			}
		case businessrule.FieldAction:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Action); err != nil {
					return fmt.Errorf("unmarshal field action: %w", err)
				}
			}
		case businessrule.FieldDomainTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field domain_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DomainTypes); err != nil {
					return fmt.Errorf("unmarshal field domain_types: %w", err)
				}
			}
		case businessrule.FieldObjectTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field object_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ObjectTypes); err != nil {
					return fmt.Errorf("unmarshal field object_types: %w", err)
				}
			}
		case businessrule.FieldValidFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_from", values[i])
			} else if value.Valid {
				_m.ValidFrom = value.Time
			}
		case businessrule.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = value.Time
			}
		case businessrule.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case businessrule.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessRule.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BusinessRule.
// Note that you need to call BusinessRule.Unwrap() before calling this method if this BusinessRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessRule) Update() *BusinessRuleUpdateOne {
	return NewBusinessRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessRule) Unwrap() *BusinessRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusinessRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessRule) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("rule_logic=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleLogic))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("domain_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainTypes))
	builder.WriteString(", ")
	builder.WriteString("object_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObjectTypes))
	builder.WriteString(", ")
	builder.WriteString("valid_from=")
	builder.WriteString(_m.ValidFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("valid_until=")
	builder.WriteString(_m.ValidUntil.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// BusinessRules is a parsable slice of BusinessRule.
type BusinessRules []*BusinessRule
