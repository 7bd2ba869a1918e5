package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InformationDomain holds the schema definition for an information domain:
// a typed working context (case, project, policy, expertise) that scopes a
// set of information objects.
type InformationDomain struct {
	ent.Schema
}

// Mixin of the InformationDomain.
func (InformationDomain) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the InformationDomain.
func (InformationDomain) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Enum("domain_type").
			Values("case", "project", "policy", "expertise").
			Immutable(),
		// Status transitions are monotonic except active <-> draft;
		// archived is terminal. Enforced in the service layer.
		field.Enum("status").
			Values("draft", "active", "closed", "archived").
			Default("active"),
		field.String("organization_id").
			NotEmpty().
			Immutable(),
		field.String("owner_user_id").
			Optional(),
		// Parent forms a tree; cycle prevention enforced on create/update.
		field.String("parent_domain_id").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the InformationDomain.
func (InformationDomain) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain_type"),
		index.Fields("status"),
		index.Fields("organization_id"),
		index.Fields("parent_domain_id"),
	}
}
