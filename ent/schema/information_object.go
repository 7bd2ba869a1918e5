package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InformationObject holds the schema definition for a single record
// (document, email, chat message, decision, dataset) owned by exactly one
// domain. Objects are immutable once written except for metadata refresh;
// content mutation creates a new version row pointing backward via
// previous_version_id.
type InformationObject struct {
	ent.Schema
}

// Mixin of the InformationObject.
func (InformationObject) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the InformationObject.
func (InformationObject) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("domain_id").
			NotEmpty().
			Immutable(),
		field.Enum("object_type").
			Values("document", "email", "chat", "decision", "dataset").
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.String("content_location").
			Optional(),
		field.Text("content_text").
			Optional(),
		field.String("mime_type").
			Optional(),
		field.Int64("file_size").
			Optional(),

		// Compliance metadata, maintained by the rule engine.
		field.Enum("classification").
			Values("public", "internal", "confidential", "secret").
			Default("internal"),
		field.Int("retention_period").
			Optional().
			Comment("Retention period in years."),
		field.String("retention_trigger").
			Optional(),
		field.Time("destruction_date").
			Optional(),
		field.Bool("is_woo_relevant").
			Default(false),
		field.Time("woo_publication_date").
			Optional(),
		field.Enum("privacy_level").
			Values("none", "personal", "special", "criminal").
			Default("none"),

		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),

		// Version chain: singly linked, strictly time-ordered, out-degree <= 1.
		field.Int("version").
			Default(1).
			Immutable(),
		field.String("previous_version_id").
			Optional().
			Immutable(),

		field.String("created_by").
			NotEmpty().
			Immutable(),
	}
}

// Indexes of the InformationObject.
func (InformationObject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain_id"),
		index.Fields("object_type"),
		index.Fields("classification"),
		index.Fields("is_woo_relevant"),
		index.Fields("destruction_date"),
	}
}
