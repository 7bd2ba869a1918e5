// Code generated by ent, DO NOT EDIT.

package domainrelation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the domainrelation type in the database.
	Label = "domain_relation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldFromDomainID holds the string denoting the from_domain_id field in the database.
	FieldFromDomainID = "from_domain_id"
	// FieldToDomainID holds the string denoting the to_domain_id field in the database.
	FieldToDomainID = "to_domain_id"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// FieldDiscoveryMethod holds the string denoting the discovery_method field in the database.
	FieldDiscoveryMethod = "discovery_method"
	// FieldSharedEntityCount holds the string denoting the shared_entity_count field in the database.
	FieldSharedEntityCount = "shared_entity_count"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// Table holds the table name of the domainrelation in the database.
	Table = "domain_relations"
)

// Columns holds all SQL columns for domainrelation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldFromDomainID,
	FieldToDomainID,
	FieldRelationType,
	FieldStrength,
	FieldDiscoveryMethod,
	FieldSharedEntityCount,
	FieldExplanation,
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
	// FromDomainIDValidator is a validator for the "from_domain_id" field. It is called by the builders before save.
	FromDomainIDValidator func(string) error
	// ToDomainIDValidator is a validator for the "to_domain_id" field. It is called by the builders before save.
	ToDomainIDValidator func(string) error
	// StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	StrengthValidator func(float64) error
	// DefaultSharedEntityCount holds the default value on creation for the "shared_entity_count" field.
	DefaultSharedEntityCount int
)

// RelationType defines the type for the "relation_type" enum field.
type RelationType string

// RelationTypeSharedEntities is the default value of the RelationType enum.
const DefaultRelationType = RelationTypeSharedEntities

// RelationType values.
const (
	RelationTypeSharedEntities     RelationType = "shared_entities"
	RelationTypeSameCommunity      RelationType = "same_community"
	RelationTypeSemanticSimilarity RelationType = "semantic_similarity"
	RelationTypeTemporalOverlap    RelationType = "temporal_overlap"
	RelationTypeSharedStakeholders RelationType = "shared_stakeholders"
	RelationTypeManualLink         RelationType = "manual_link"
)

func (rt RelationType) String() string {
	return string(rt)
}

// RelationTypeValidator is a validator for the "relation_type" field enum values. It is called by the builders before save.
func RelationTypeValidator(rt RelationType) error {
	switch rt {
	case RelationTypeSharedEntities, RelationTypeSameCommunity, RelationTypeSemanticSimilarity, RelationTypeTemporalOverlap, RelationTypeSharedStakeholders, RelationTypeManualLink:
		return nil
	default:
		return fmt.Errorf("domainrelation: invalid enum value for relation_type field: %q", rt)
	}
}

// DiscoveryMethod defines the type for the "discovery_method" enum field.
type DiscoveryMethod string

// DiscoveryMethod values.
const (
	DiscoveryMethodAutomatic    DiscoveryMethod = "automatic"
	DiscoveryMethodManual       DiscoveryMethod = "manual"
	DiscoveryMethodAiSuggestion DiscoveryMethod = "ai_suggestion"
)

func (dm DiscoveryMethod) String() string {
	return string(dm)
}

// DiscoveryMethodValidator is a validator for the "discovery_method" field enum values. It is called by the builders before save.
func DiscoveryMethodValidator(dm DiscoveryMethod) error {
	switch dm {
	case DiscoveryMethodAutomatic, DiscoveryMethodManual, DiscoveryMethodAiSuggestion:
		return nil
	default:
		return fmt.Errorf("domainrelation: invalid enum value for discovery_method field: %q", dm)
	}
}

// OrderOption defines the ordering options for the DomainRelation queries.
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

// ByFromDomainID orders the results by the from_domain_id field.
func ByFromDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromDomainID, opts...).ToFunc()
}

// ByToDomainID orders the results by the to_domain_id field.
func ByToDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToDomainID, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}

// ByDiscoveryMethod orders the results by the discovery_method field.
func ByDiscoveryMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscoveryMethod, opts...).ToFunc()
}

// BySharedEntityCount orders the results by the shared_entity_count field.
func BySharedEntityCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSharedEntityCount, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}
