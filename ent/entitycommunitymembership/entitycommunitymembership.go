// Code generated by ent, DO NOT EDIT.

package entitycommunitymembership

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entitycommunitymembership type in the database.
	Label = "entity_community_membership"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldCommunityID holds the string denoting the community_id field in the database.
	FieldCommunityID = "community_id"
	// FieldMembershipScore holds the string denoting the membership_score field in the database.
	FieldMembershipScore = "membership_score"
	// FieldGeneration holds the string denoting the generation field in the database.
	FieldGeneration = "generation"
	// Table holds the table name of the entitycommunitymembership in the database.
	Table = "entity_community_memberships"
)

// Columns holds all SQL columns for entitycommunitymembership fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldEntityID,
	FieldCommunityID,
	FieldMembershipScore,
	FieldGeneration,
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
	// EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	EntityIDValidator func(string) error
	// CommunityIDValidator is a validator for the "community_id" field. It is called by the builders before save.
	CommunityIDValidator func(string) error
	// MembershipScoreValidator is a validator for the "membership_score" field. It is called by the builders before save.
	MembershipScoreValidator func(float64) error
)

// OrderOption defines the ordering options for the EntityCommunityMembership queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByCommunityID orders the results by the community_id field.
func ByCommunityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommunityID, opts...).ToFunc()
}

// ByMembershipScore orders the results by the membership_score field.
func ByMembershipScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMembershipScore, opts...).ToFunc()
}

// ByGeneration orders the results by the generation field.
func ByGeneration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneration, opts...).ToFunc()
}
