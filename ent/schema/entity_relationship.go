package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityRelationship holds the schema definition for a directed typed edge
// between two distinct entities. Multiple edges of different types may exist
// between the same pair; (source, target, type) is unique.
type EntityRelationship struct {
	ent.Schema
}

// Mixin of the EntityRelationship.
func (EntityRelationship) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the EntityRelationship.
func (EntityRelationship) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("source_entity_id").
			NotEmpty(),
		field.String("target_entity_id").
			NotEmpty(),
		field.Enum("relationship_type").
			Values("works_for", "located_in", "subject_to", "refers_to",
				"relates_to", "collaborates_with", "part_of"),
		// Accumulates additively across repeated co-occurrences; never decreases.
		field.Float("weight").
			Min(0),
		// Weighted average of contributing observations.
		field.Float("confidence").
			Min(0).
			Max(1),
		// Number of observations contributing to the confidence average.
		field.Int("observations").
			Default(1),
		// Object whose text last strengthened this edge; used to keep
		// re-processing of an unchanged object from double-counting.
		field.String("last_object_id").
			Optional(),
		field.String("source_domain_id").
			Optional(),
	}
}

// Indexes of the EntityRelationship.
func (EntityRelationship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_entity_id", "target_entity_id", "relationship_type").Unique(),
		index.Fields("source_entity_id"),
		index.Fields("target_entity_id"),
	}
}
