// Code generated by ent, DO NOT EDIT.

package suggestiontrust

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the suggestiontrust type in the database.
	Label = "suggestion_trust"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldField holds the string denoting the field field in the database.
	FieldField = "field"
	// FieldPattern holds the string denoting the pattern field in the database.
	FieldPattern = "pattern"
	// FieldMultiplier holds the string denoting the multiplier field in the database.
	FieldMultiplier = "multiplier"
	// FieldAcceptedCount holds the string denoting the accepted_count field in the database.
	FieldAcceptedCount = "accepted_count"
	// FieldRejectedCount holds the string denoting the rejected_count field in the database.
	FieldRejectedCount = "rejected_count"
	// FieldModifiedCount holds the string denoting the modified_count field in the database.
	FieldModifiedCount = "modified_count"
	// Table holds the table name of the suggestiontrust in the database.
	Table = "suggestion_trusts"
)

// Columns holds all SQL columns for suggestiontrust fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldField,
	FieldPattern,
	FieldMultiplier,
	FieldAcceptedCount,
	FieldRejectedCount,
	FieldModifiedCount,
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
	// FieldValidator is a validator for the "field" field. It is called by the builders before save.
	FieldValidator func(string) error
	// PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	PatternValidator func(string) error
	// DefaultMultiplier holds the default value on creation for the "multiplier" field.
	DefaultMultiplier float64
	// DefaultAcceptedCount holds the default value on creation for the "accepted_count" field.
	DefaultAcceptedCount int
	// DefaultRejectedCount holds the default value on creation for the "rejected_count" field.
	DefaultRejectedCount int
	// DefaultModifiedCount holds the default value on creation for the "modified_count" field.
	DefaultModifiedCount int
)

// OrderOption defines the ordering options for the SuggestionTrust queries.
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

// ByField orders the results by the field field.
func ByField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldField, opts...).ToFunc()
}

// ByPattern orders the results by the pattern field.
func ByPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPattern, opts...).ToFunc()
}

// ByMultiplier orders the results by the multiplier field.
func ByMultiplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMultiplier, opts...).ToFunc()
}

// ByAcceptedCount orders the results by the accepted_count field.
func ByAcceptedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptedCount, opts...).ToFunc()
}

// ByRejectedCount orders the results by the rejected_count field.
func ByRejectedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectedCount, opts...).ToFunc()
}

// ByModifiedCount orders the results by the modified_count field.
func ByModifiedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModifiedCount, opts...).ToFunc()
}
