package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SuggestionTrust holds the learned trust multiplier per (field, pattern)
// pair. Reviewer feedback moves the multiplier: accept raises it, reject
// lowers it, modify raises it slightly. Applied to the confidence of future
// identical candidates.
type SuggestionTrust struct {
	ent.Schema
}

// Mixin of the SuggestionTrust.
func (SuggestionTrust) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SuggestionTrust.
func (SuggestionTrust) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("field").
			NotEmpty().
			Immutable(),
		field.String("pattern").
			NotEmpty().
			Immutable(),
		field.Float("multiplier").
			Default(1.0),
		field.Int("accepted_count").
			Default(0),
		field.Int("rejected_count").
			Default(0),
		field.Int("modified_count").
			Default(0),
	}
}

// Indexes of the SuggestionTrust.
func (SuggestionTrust) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("field", "pattern").Unique(),
	}
}
