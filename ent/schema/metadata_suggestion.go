package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MetadataSuggestion holds the schema definition for a proposed metadata
// value below the apply-directly confidence threshold. Each suggestion is a
// small state machine: proposed -> accepted | rejected | modified, and the
// terminal outcome feeds the resolver/engine trust weighting.
type MetadataSuggestion struct {
	ent.Schema
}

// Mixin of the MetadataSuggestion.
func (MetadataSuggestion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the MetadataSuggestion.
func (MetadataSuggestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("object_id").
			NotEmpty().
			Immutable(),
		field.String("field").
			NotEmpty().
			Immutable(),
		field.JSON("suggested_value", map[string]interface{}{}).
			Immutable(),
		field.Float("confidence").
			Min(0).
			Max(1).
			Immutable(),
		field.String("reasoning").
			Optional().
			Immutable(),
		field.Enum("source").
			Values("ner", "classification", "rule_based", "pattern_matching").
			Immutable(),
		// Pattern key used by the trust table for future similar candidates.
		field.String("pattern").
			Optional().
			Immutable(),
		field.Enum("status").
			Values("proposed", "accepted", "rejected", "modified").
			Default("proposed"),
		field.JSON("modified_value", map[string]interface{}{}).
			Optional(),
		field.String("reviewed_by").
			Optional(),
		field.Time("reviewed_at").
			Optional(),
	}
}

// Indexes of the MetadataSuggestion.
func (MetadataSuggestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("object_id"),
		index.Fields("status"),
		index.Fields("field"),
	}
}
