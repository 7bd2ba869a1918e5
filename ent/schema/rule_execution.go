package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RuleExecution is the immutable audit record of one rule evaluated against
// one object at one instant. Never updated in place; re-evaluation appends a
// new record.
type RuleExecution struct {
	ent.Schema
}

// Mixin of the RuleExecution.
func (RuleExecution) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the RuleExecution.
func (RuleExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("rule_id").
			NotEmpty().
			Immutable(),
		field.String("object_id").
			NotEmpty().
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.Bool("matched").
			Immutable(),
		// Structured result: derived values, suggestion payload, or fault detail.
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("error_detail").
			Optional().
			Immutable(),
	}
}

// Indexes of the RuleExecution.
func (RuleExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule_id"),
		index.Fields("object_id"),
		index.Fields("created_at"),
	}
}
