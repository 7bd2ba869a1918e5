// Code generated by ent, DO NOT EDIT.

package informationdomain

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the informationdomain type in the database.
	Label = "information_domain"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDomainType holds the string denoting the domain_type field in the database.
	FieldDomainType = "domain_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldParentDomainID holds the string denoting the parent_domain_id field in the database.
	FieldParentDomainID = "parent_domain_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the informationdomain in the database.
	Table = "information_domains"
)

// Columns holds all SQL columns for informationdomain fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldDescription,
	FieldDomainType,
	FieldStatus,
	FieldOrganizationID,
	FieldOwnerUserID,
	FieldParentDomainID,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	OrganizationIDValidator func(string) error
)

// DomainType defines the type for the "domain_type" enum field.
type DomainType string

// DomainType values.
const (
	DomainTypeCase      DomainType = "case"
	DomainTypeProject   DomainType = "project"
	DomainTypePolicy    DomainType = "policy"
	DomainTypeExpertise DomainType = "expertise"
)

func (dt DomainType) String() string {
	return string(dt)
}

// DomainTypeValidator is a validator for the "domain_type" field enum values. It is called by the builders before save.
func DomainTypeValidator(dt DomainType) error {
	switch dt {
	case DomainTypeCase, DomainTypeProject, DomainTypePolicy, DomainTypeExpertise:
		return nil
	default:
		return fmt.Errorf("informationdomain: invalid enum value for domain_type field: %q", dt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusClosed, StatusArchived:
		return nil
	default:
		return fmt.Errorf("informationdomain: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the InformationDomain queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDomainType orders the results by the domain_type field.
func ByDomainType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// ByParentDomainID orders the results by the parent_domain_id field.
func ByParentDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentDomainID, opts...).ToFunc()
}
