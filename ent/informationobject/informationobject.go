// Code generated by ent, DO NOT EDIT.

package informationobject

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the informationobject type in the database.
	Label = "information_object"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDomainID holds the string denoting the domain_id field in the database.
	FieldDomainID = "domain_id"
	// FieldObjectType holds the string denoting the object_type field in the database.
	FieldObjectType = "object_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldContentLocation holds the string denoting the content_location field in the database.
	FieldContentLocation = "content_location"
	// FieldContentText holds the string denoting the content_text field in the database.
	FieldContentText = "content_text"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldRetentionPeriod holds the string denoting the retention_period field in the database.
	FieldRetentionPeriod = "retention_period"
	// FieldRetentionTrigger holds the string denoting the retention_trigger field in the database.
	FieldRetentionTrigger = "retention_trigger"
	// FieldDestructionDate holds the string denoting the destruction_date field in the database.
	FieldDestructionDate = "destruction_date"
	// FieldIsWooRelevant holds the string denoting the is_woo_relevant field in the database.
	FieldIsWooRelevant = "is_woo_relevant"
	// FieldWooPublicationDate holds the string denoting the woo_publication_date field in the database.
	FieldWooPublicationDate = "woo_publication_date"
	// FieldPrivacyLevel holds the string denoting the privacy_level field in the database.
	FieldPrivacyLevel = "privacy_level"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldPreviousVersionID holds the string denoting the previous_version_id field in the database.
	FieldPreviousVersionID = "previous_version_id"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// Table holds the table name of the informationobject in the database.
	Table = "information_objects"
)

// Columns holds all SQL columns for informationobject fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDomainID,
	FieldObjectType,
	FieldTitle,
	FieldDescription,
	FieldContentLocation,
	FieldContentText,
	FieldMimeType,
	FieldFileSize,
	FieldClassification,
	FieldRetentionPeriod,
	FieldRetentionTrigger,
	FieldDestructionDate,
	FieldIsWooRelevant,
	FieldWooPublicationDate,
	FieldPrivacyLevel,
	FieldTags,
	FieldMetadata,
	FieldVersion,
	FieldPreviousVersionID,
	FieldCreatedBy,
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
	// DomainIDValidator is a validator for the "domain_id" field. It is called by the builders before save.
	DomainIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultIsWooRelevant holds the default value on creation for the "is_woo_relevant" field.
	DefaultIsWooRelevant bool
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// ObjectType defines the type for the "object_type" enum field.
type ObjectType string

// ObjectType values.
const (
	ObjectTypeDocument ObjectType = "document"
	ObjectTypeEmail    ObjectType = "email"
	ObjectTypeChat     ObjectType = "chat"
	ObjectTypeDecision ObjectType = "decision"
	ObjectTypeDataset  ObjectType = "dataset"
)

func (ot ObjectType) String() string {
	return string(ot)
}

// ObjectTypeValidator is a validator for the "object_type" field enum values. It is called by the builders before save.
func ObjectTypeValidator(ot ObjectType) error {
	switch ot {
	case ObjectTypeDocument, ObjectTypeEmail, ObjectTypeChat, ObjectTypeDecision, ObjectTypeDataset:
		return nil
	default:
		return fmt.Errorf("informationobject: invalid enum value for object_type field: %q", ot)
	}
}

// Classification defines the type for the "classification" enum field.
type Classification string

// ClassificationInternal is the default value of the Classification enum.
const DefaultClassification = ClassificationInternal

// Classification values.
const (
	ClassificationPublic       Classification = "public"
	ClassificationInternal     Classification = "internal"
	ClassificationConfidential Classification = "confidential"
	ClassificationSecret       Classification = "secret"
)

func (c Classification) String() string {
	return string(c)
}

// ClassificationValidator is a validator for the "classification" field enum values. It is called by the builders before save.
func ClassificationValidator(c Classification) error {
	switch c {
	case ClassificationPublic, ClassificationInternal, ClassificationConfidential, ClassificationSecret:
		return nil
	default:
		return fmt.Errorf("informationobject: invalid enum value for classification field: %q", c)
	}
}

// PrivacyLevel defines the type for the "privacy_level" enum field.
type PrivacyLevel string

// PrivacyLevelNone is the default value of the PrivacyLevel enum.
const DefaultPrivacyLevel = PrivacyLevelNone

// PrivacyLevel values.
const (
	PrivacyLevelNone     PrivacyLevel = "none"
	PrivacyLevelPersonal PrivacyLevel = "personal"
	PrivacyLevelSpecial  PrivacyLevel = "special"
	PrivacyLevelCriminal PrivacyLevel = "criminal"
)

func (pl PrivacyLevel) String() string {
	return string(pl)
}

// PrivacyLevelValidator is a validator for the "privacy_level" field enum values. It is called by the builders before save.
func PrivacyLevelValidator(pl PrivacyLevel) error {
	switch pl {
	case PrivacyLevelNone, PrivacyLevelPersonal, PrivacyLevelSpecial, PrivacyLevelCriminal:
		return nil
	default:
		return fmt.Errorf("informationobject: invalid enum value for privacy_level field: %q", pl)
	}
}

// OrderOption defines the ordering options for the InformationObject queries.
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

// ByDomainID orders the results by the domain_id field.
func ByDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainID, opts...).ToFunc()
}

// ByObjectType orders the results by the object_type field.
func ByObjectType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByContentLocation orders the results by the content_location field.
func ByContentLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentLocation, opts...).ToFunc()
}

// ByContentText orders the results by the content_text field.
func ByContentText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentText, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByRetentionPeriod orders the results by the retention_period field.
func ByRetentionPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetentionPeriod, opts...).ToFunc()
}

// ByRetentionTrigger orders the results by the retention_trigger field.
func ByRetentionTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetentionTrigger, opts...).ToFunc()
}

// ByDestructionDate orders the results by the destruction_date field.
func ByDestructionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestructionDate, opts...).ToFunc()
}

// ByIsWooRelevant orders the results by the is_woo_relevant field.
func ByIsWooRelevant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsWooRelevant, opts...).ToFunc()
}

// ByWooPublicationDate orders the results by the woo_publication_date field.
func ByWooPublicationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWooPublicationDate, opts...).ToFunc()
}

// ByPrivacyLevel orders the results by the privacy_level field.
func ByPrivacyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrivacyLevel, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByPreviousVersionID orders the results by the previous_version_id field.
func ByPreviousVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousVersionID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}
