package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Community holds the schema definition for a hierarchical entity cluster
// produced by a detection run. Rows belong to a generation and are immutable;
// a new detection run writes a complete new generation and the old one is
// removed in the same transaction.
type Community struct {
	ent.Schema
}

// Mixin of the Community.
func (Community) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Community.
func (Community) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Immutable(),
		field.String("description").
			Optional().
			Immutable(),
		// Level 0 are leaves; level(child) + 1 = level(parent).
		field.Int("level").
			Min(0).
			Immutable(),
		field.String("parent_community_id").
			Optional().
			Immutable(),
		field.Int64("generation").
			Immutable(),
		field.JSON("keywords", []string{}).
			Optional().
			Immutable(),
		field.String("summary").
			Optional().
			Immutable(),
	}
}

// Indexes of the Community.
func (Community) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("generation", "level"),
		index.Fields("parent_community_id"),
	}
}
