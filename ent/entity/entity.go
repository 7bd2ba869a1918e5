// Code generated by ent, DO NOT EDIT.

package entity

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entity type in the database.
	Label = "entity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCanonicalName holds the string denoting the canonical_name field in the database.
	FieldCanonicalName = "canonical_name"
	// FieldCanonicalKey holds the string denoting the canonical_key field in the database.
	FieldCanonicalKey = "canonical_key"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSourceDomainID holds the string denoting the source_domain_id field in the database.
	FieldSourceDomainID = "source_domain_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the entity in the database.
	Table = "entities"
)

// Columns holds all SQL columns for entity fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCanonicalName,
	FieldCanonicalKey,
	FieldEntityType,
	FieldDescription,
	FieldConfidence,
	FieldSourceDomainID,
	FieldMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CanonicalNameValidator is a validator for the "canonical_name" field. It is called by the builders before save.
	CanonicalNameValidator func(string) error
	// CanonicalKeyValidator is a validator for the "canonical_key" field. It is called by the builders before save.
	CanonicalKeyValidator func(string) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
)

// EntityType defines the type for the "entity_type" enum field.
type EntityType string

// EntityType values.
const (
	EntityTypePerson       EntityType = "person"
	EntityTypeOrganization EntityType = "organization"
	EntityTypeLocation     EntityType = "location"
	EntityTypeLaw          EntityType = "law"
	EntityTypeDate         EntityType = "date"
	EntityTypeMoney        EntityType = "money"
	EntityTypePolicy       EntityType = "policy"
)

func (et EntityType) String() string {
	return string(et)
}

// EntityTypeValidator is a validator for the "entity_type" field enum values. It is called by the builders before save.
func EntityTypeValidator(et EntityType) error {
	switch et {
	case EntityTypePerson, EntityTypeOrganization, EntityTypeLocation, EntityTypeLaw, EntityTypeDate, EntityTypeMoney, EntityTypePolicy:
		return nil
	default:
		return fmt.Errorf("entity: invalid enum value for entity_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the Entity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCanonicalName orders the results by the canonical_name field.
func ByCanonicalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalName, opts...).ToFunc()
}

// ByCanonicalKey orders the results by the canonical_key field.
func ByCanonicalKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalKey, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySourceDomainID orders the results by the source_domain_id field.
func BySourceDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDomainID, opts...).ToFunc()
}
