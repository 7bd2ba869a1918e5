package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BusinessRule holds the schema definition for a declarative compliance rule.
// Rules are versionless: changing logic means creating a new rule and
// deactivating the old one.
type BusinessRule struct {
	ent.Schema
}

// Mixin of the BusinessRule.
func (BusinessRule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the BusinessRule.
func (BusinessRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		// Serialized predicate tree, evaluated by the rules interpreter.
		field.JSON("rule_logic", map[string]interface{}{}),
		// Serialized action: set a derived field, emit a suggestion, or flag.
		field.JSON("action", map[string]interface{}{}),
		// Applicability filters. Empty slice means "applies to all".
		field.JSON("domain_types", []string{}).
			Optional(),
		field.JSON("object_types", []string{}).
			Optional(),
		field.Time("valid_from").
			Optional(),
		field.Time("valid_until").
			Optional(),
		field.Bool("active").
			Default(true),
		field.String("created_by").
			Optional(),
	}
}

// Indexes of the BusinessRule.
func (BusinessRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("active"),
	}
}
