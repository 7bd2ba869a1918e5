// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/informationobject"
)

// InformationObject is the model entity for the InformationObject schema.
type InformationObject struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DomainID holds the value of the "domain_id" field.
	DomainID string `json:"domain_id,omitempty"`
	// ObjectType holds the value of the "object_type" field.
	ObjectType informationobject.ObjectType `json:"object_type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ContentLocation holds the value of the "content_location" field.
	ContentLocation string `json:"content_location,omitempty"`
	// ContentText holds the value of the "content_text" field.
	ContentText string `json:"content_text,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification informationobject.Classification `json:"classification,omitempty"`
	// Retention period in years.
	RetentionPeriod int `json:"retention_period,omitempty"`
	// RetentionTrigger holds the value of the "retention_trigger" field.
	RetentionTrigger string `json:"retention_trigger,omitempty"`
	// DestructionDate holds the value of the "destruction_date" field.
	DestructionDate time.Time `json:"destruction_date,omitempty"`
	// IsWooRelevant holds the value of the "is_woo_relevant" field.
	IsWooRelevant bool `json:"is_woo_relevant,omitempty"`
	// WooPublicationDate holds the value of the "woo_publication_date" field.
	WooPublicationDate time.Time `json:"woo_publication_date,omitempty"`
	// PrivacyLevel holds the value of the "privacy_level" field.
	PrivacyLevel informationobject.PrivacyLevel `json:"privacy_level,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// PreviousVersionID holds the value of the "previous_version_id" field.
	PreviousVersionID string `json:"previous_version_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy    string `json:"created_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InformationObject) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case informationobject.FieldTags, informationobject.FieldMetadata:
			values[i] = new([]byte)
		case informationobject.FieldIsWooRelevant:
			values[i] = new(sql.NullBool)
		case informationobject.FieldFileSize, informationobject.FieldRetentionPeriod, informationobject.FieldVersion:
			values[i] = new(sql.NullInt64)
		case informationobject.FieldID, informationobject.FieldDomainID, informationobject.FieldObjectType, informationobject.FieldTitle, informationobject.FieldDescription, informationobject.FieldContentLocation, informationobject.FieldContentText, informationobject.FieldMimeType, informationobject.FieldClassification, informationobject.FieldRetentionTrigger, informationobject.FieldPrivacyLevel, informationobject.FieldPreviousVersionID, informationobject.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case informationobject.FieldCreatedAt, informationobject.FieldUpdatedAt, informationobject.FieldDestructionDate, informationobject.FieldWooPublicationDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InformationObject fields.
func (_m *InformationObject) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case informationobject.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case informationobject.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case informationobject.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case informationobject.FieldDomainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = value.String
			}
		case informationobject.FieldObjectType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field object_type", values[i])
			} else if value.Valid {
				_m.ObjectType = informationobject.ObjectType(value.String)
			}
		case informationobject.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case informationobject.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case informationobject.FieldContentLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_location", values[i])
			} else if value.Valid {
				_m.ContentLocation = value.String
			}
		case informationobject.FieldContentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_text", values[i])
			} else if value.Valid {
				_m.ContentText = value.String
			}
		case informationobject.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case informationobject.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case informationobject.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = informationobject.Classification(value.String)
			}
		case informationobject.FieldRetentionPeriod:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retention_period", values[i])
			} else if value.Valid {
				_m.RetentionPeriod = int(value.Int64)
			}
		case informationobject.FieldRetentionTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field retention_trigger", values[i])
			} else if value.Valid {
				_m.RetentionTrigger = value.String
			}
		case informationobject.FieldDestructionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field destruction_date", values[i])
			} else if value.Valid {
				_m.DestructionDate = value.Time
			}
		case informationobject.FieldIsWooRelevant:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_woo_relevant", values[i])
			} else if value.Valid {
				_m.IsWooRelevant = value.Bool
			}
		case informationobject.FieldWooPublicationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field woo_publication_date", values[i])
			} else if value.Valid {
				_m.WooPublicationDate = value.Time
			}
		case informationobject.FieldPrivacyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field privacy_level", values[i])
			} else if value.Valid {
				_m.PrivacyLevel = informationobject.PrivacyLevel(value.String)
			}
		case informationobject.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case informationobject.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case informationobject.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case informationobject.FieldPreviousVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field previous_version_id", values[i])
			} else if value.Valid {
				_m.PreviousVersionID = value.String
			}
		case informationobject.FieldCreatedBy:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InformationObject.
// This includes values selected through modifiers, order, etc.
func (_m *InformationObject) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InformationObject.
// Note that you need to call InformationObject.Unwrap() before calling this method if this InformationObject
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InformationObject) Update() *InformationObjectUpdateOne {
	return NewInformationObjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InformationObject entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InformationObject) Unwrap() *InformationObject {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InformationObject is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InformationObject) String() string {
	var builder strings.Builder
	builder.WriteString("InformationObject(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("domain_id=")
	builder.WriteString(_m.DomainID)
	builder.WriteString(", ")
	builder.WriteString("object_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObjectType))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("content_location=")
	builder.WriteString(_m.ContentLocation)
	builder.WriteString(", ")
	builder.WriteString("content_text=")
	builder.WriteString(_m.ContentText)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(fmt.Sprintf("%v", _m.Classification))
	builder.WriteString(", ")
	builder.WriteString("retention_period=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetentionPeriod))
	builder.WriteString(", ")
	builder.WriteString("retention_trigger=")
	builder.WriteString(_m.RetentionTrigger)
	builder.WriteString(", ")
	builder.WriteString("destruction_date=")
	builder.WriteString(_m.DestructionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_woo_relevant=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsWooRelevant))
	builder.WriteString(", ")
	builder.WriteString("woo_publication_date=")
	builder.WriteString(_m.WooPublicationDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("privacy_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrivacyLevel))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("previous_version_id=")
	builder.WriteString(_m.PreviousVersionID)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// InformationObjects is a parsable slice of InformationObject.
type InformationObjects []*InformationObject
