package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphGeneration marks one complete, committed community-detection run.
// It is inserted last, in the same transaction as the generation's community
// and membership rows, so readers that join on the latest GraphGeneration
// never observe a partially written generation.
type GraphGeneration struct {
	ent.Schema
}

// Mixin of the GraphGeneration.
func (GraphGeneration) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the GraphGeneration.
func (GraphGeneration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Int64("number").
			Unique().
			Immutable(),
		field.Float("modularity").
			Immutable(),
		field.Int("levels").
			Immutable(),
		field.Int("community_count").
			Immutable(),
		field.Int("entity_count").
			Immutable(),
		field.Bool("budget_exceeded").
			Default(false).
			Immutable(),
	}
}

// Indexes of the GraphGeneration.
func (GraphGeneration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("number"),
	}
}
