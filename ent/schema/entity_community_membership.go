package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityCommunityMembership holds the many-to-many link between entities and
// communities. Overlapping clusters are permitted: an entity may belong to
// multiple communities at the same level.
type EntityCommunityMembership struct {
	ent.Schema
}

// Mixin of the EntityCommunityMembership.
func (EntityCommunityMembership) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the EntityCommunityMembership.
func (EntityCommunityMembership) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("entity_id").
			NotEmpty(),
		field.String("community_id").
			NotEmpty().
			Immutable(),
		field.Float("membership_score").
			Min(0).
			Max(1).
			Immutable(),
		field.Int64("generation").
			Immutable(),
	}
}

// Indexes of the EntityCommunityMembership.
func (EntityCommunityMembership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "community_id").Unique(),
		index.Fields("community_id"),
		index.Fields("generation"),
	}
}
