// Code generated by ent, DO NOT EDIT.

package entityrelationship

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entityrelationship type in the database.
	Label = "entity_relationship"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSourceEntityID holds the string denoting the source_entity_id field in the database.
	FieldSourceEntityID = "source_entity_id"
	// FieldTargetEntityID holds the string denoting the target_entity_id field in the database.
	FieldTargetEntityID = "target_entity_id"
	// FieldRelationshipType holds the string denoting the relationship_type field in the database.
	FieldRelationshipType = "relationship_type"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldObservations holds the string denoting the observations field in the database.
	FieldObservations = "observations"
	// FieldLastObjectID holds the string denoting the last_object_id field in the database.
	FieldLastObjectID = "last_object_id"
	// FieldSourceDomainID holds the string denoting the source_domain_id field in the database.
	FieldSourceDomainID = "source_domain_id"
	// Table holds the table name of the entityrelationship in the database.
	Table = "entity_relationships"
)

// Columns holds all SQL columns for entityrelationship fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSourceEntityID,
	FieldTargetEntityID,
	FieldRelationshipType,
	FieldWeight,
	FieldConfidence,
	FieldObservations,
	FieldLastObjectID,
	FieldSourceDomainID,
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
	// SourceEntityIDValidator is a validator for the "source_entity_id" field. It is called by the builders before save.
	SourceEntityIDValidator func(string) error
	// TargetEntityIDValidator is a validator for the "target_entity_id" field. It is called by the builders before save.
	TargetEntityIDValidator func(string) error
	// WeightValidator is a validator for the "weight" field. It is called by the builders before save.
	WeightValidator func(float64) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultObservations holds the default value on creation for the "observations" field.
	DefaultObservations int
)

// RelationshipType defines the type for the "relationship_type" enum field.
type RelationshipType string

// RelationshipType values.
const (
	RelationshipTypeWorksFor         RelationshipType = "works_for"
	RelationshipTypeLocatedIn        RelationshipType = "located_in"
	RelationshipTypeSubjectTo        RelationshipType = "subject_to"
	RelationshipTypeRefersTo         RelationshipType = "refers_to"
	RelationshipTypeRelatesTo        RelationshipType = "relates_to"
	RelationshipTypeCollaboratesWith RelationshipType = "collaborates_with"
	RelationshipTypePartOf           RelationshipType = "part_of"
)

func (rt RelationshipType) String() string {
	return string(rt)
}

// RelationshipTypeValidator is a validator for the "relationship_type" field enum values. It is called by the builders before save.
func RelationshipTypeValidator(rt RelationshipType) error {
	switch rt {
	case RelationshipTypeWorksFor, RelationshipTypeLocatedIn, RelationshipTypeSubjectTo, RelationshipTypeRefersTo, RelationshipTypeRelatesTo, RelationshipTypeCollaboratesWith, RelationshipTypePartOf:
		return nil
	default:
		return fmt.Errorf("entityrelationship: invalid enum value for relationship_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the EntityRelationship queries.
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

// BySourceEntityID orders the results by the source_entity_id field.
func BySourceEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEntityID, opts...).ToFunc()
}

// ByTargetEntityID orders the results by the target_entity_id field.
func ByTargetEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetEntityID, opts...).ToFunc()
}

// ByRelationshipType orders the results by the relationship_type field.
func ByRelationshipType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationshipType, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByObservations orders the results by the observations field.
func ByObservations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservations, opts...).ToFunc()
}

// ByLastObjectID orders the results by the last_object_id field.
func ByLastObjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastObjectID, opts...).ToFunc()
}

// BySourceDomainID orders the results by the source_domain_id field.
func BySourceDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceDomainID, opts...).ToFunc()
}
