package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entity holds the schema definition for a canonical knowledge-graph node:
// the deduplicated, normalized representation of a named thing extracted
// from object text.
type Entity struct {
	ent.Schema
}

// Mixin of the Entity.
func (Entity) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Entity.
func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("canonical_name").
			NotEmpty(),
		// Normalized (lower-cased, diacritics-stripped, whitespace-collapsed)
		// form of canonical_name; the resolver's dedup key together with
		// entity_type.
		field.String("canonical_key").
			NotEmpty(),
		field.Enum("entity_type").
			Values("person", "organization", "location", "law", "date", "money", "policy").
			Immutable(),
		field.String("description").
			Optional(),
		// Maximum confidence observed across all resolving candidates;
		// monotonically non-decreasing.
		field.Float("confidence").
			Min(0).
			Max(1),
		field.String("source_domain_id").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the Entity.
func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("canonical_key", "entity_type").Unique(),
		index.Fields("entity_type"),
		index.Fields("source_domain_id"),
	}
}
