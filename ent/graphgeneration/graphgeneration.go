// Code generated by ent, DO NOT EDIT.

package graphgeneration

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graphgeneration type in the database.
	Label = "graph_generation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldNumber holds the string denoting the number field in the database.
	FieldNumber = "number"
	// FieldModularity holds the string denoting the modularity field in the database.
	FieldModularity = "modularity"
	// FieldLevels holds the string denoting the levels field in the database.
	FieldLevels = "levels"
	// FieldCommunityCount holds the string denoting the community_count field in the database.
	FieldCommunityCount = "community_count"
	// FieldEntityCount holds the string denoting the entity_count field in the database.
	FieldEntityCount = "entity_count"
	// FieldBudgetExceeded holds the string denoting the budget_exceeded field in the database.
	FieldBudgetExceeded = "budget_exceeded"
	// Table holds the table name of the graphgeneration in the database.
	Table = "graph_generations"
)

// Columns holds all SQL columns for graphgeneration fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldNumber,
	FieldModularity,
	FieldLevels,
	FieldCommunityCount,
	FieldEntityCount,
	FieldBudgetExceeded,
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
	// DefaultBudgetExceeded holds the default value on creation for the "budget_exceeded" field.
	DefaultBudgetExceeded bool
)

// OrderOption defines the ordering options for the GraphGeneration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByNumber orders the results by the number field.
func ByNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumber, opts...).ToFunc()
}

// ByModularity orders the results by the modularity field.
func ByModularity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModularity, opts...).ToFunc()
}

// ByLevels orders the results by the levels field.
func ByLevels(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevels, opts...).ToFunc()
}

// ByCommunityCount orders the results by the community_count field.
func ByCommunityCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommunityCount, opts...).ToFunc()
}

// ByEntityCount orders the results by the entity_count field.
func ByEntityCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityCount, opts...).ToFunc()
}

// ByBudgetExceeded orders the results by the budget_exceeded field.
func ByBudgetExceeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetExceeded, opts...).ToFunc()
}
