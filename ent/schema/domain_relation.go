package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DomainRelation holds the schema definition for a directed edge between two
// information domains, derived from cross-domain entity links. Manual and
// automatic rows for the same domain pair coexist as separate rows; the
// builder never touches manual rows.
type DomainRelation struct {
	ent.Schema
}

// Mixin of the DomainRelation.
func (DomainRelation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the DomainRelation.
func (DomainRelation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("from_domain_id").
			NotEmpty().
			Immutable(),
		field.String("to_domain_id").
			NotEmpty().
			Immutable(),
		field.Enum("relation_type").
			Values("shared_entities", "same_community", "semantic_similarity",
				"temporal_overlap", "shared_stakeholders", "manual_link").
			Default("shared_entities"),
		field.Float("strength").
			Min(0),
		field.Enum("discovery_method").
			Values("automatic", "manual", "ai_suggestion").
			Immutable(),
		field.Int("shared_entity_count").
			Default(0),
		field.String("explanation").
			Optional(),
	}
}

// Indexes of the DomainRelation.
func (DomainRelation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_domain_id", "to_domain_id", "relation_type", "discovery_method").Unique(),
		index.Fields("from_domain_id"),
		index.Fields("to_domain_id"),
	}
}
