// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// BusinessRulesColumns holds the columns for the "business_rules" table.
	BusinessRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "rule_logic", Type: field.TypeJSON},
		{Name: "action", Type: field.TypeJSON},
		{Name: "domain_types", Type: field.TypeJSON, Nullable: true},
		{Name: "object_types", Type: field.TypeJSON, Nullable: true},
		{Name: "valid_from", Type: field.TypeTime, Nullable: true},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
	}
	// BusinessRulesTable holds the schema information for the "business_rules" table.
	BusinessRulesTable = &schema.Table{
		Name:       "business_rules",
		Columns:    BusinessRulesColumns,
		PrimaryKey: []*schema.Column{BusinessRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "businessrule_name",
				Unique:  true,
				Columns: []*schema.Column{BusinessRulesColumns[3]},
			},
			{
				Name:    "businessrule_active",
				Unique:  false,
				Columns: []*schema.Column{BusinessRulesColumns[11]},
			},
		},
	}
	// CommunitiesColumns holds the columns for the "communities" table.
	CommunitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "level", Type: field.TypeInt},
		{Name: "parent_community_id", Type: field.TypeString, Nullable: true},
		{Name: "generation", Type: field.TypeInt64},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true},
	}
	// CommunitiesTable holds the schema information for the "communities" table.
	CommunitiesTable = &schema.Table{
		Name:       "communities",
		Columns:    CommunitiesColumns,
		PrimaryKey: []*schema.Column{CommunitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "community_generation_level",
				Unique:  false,
				Columns: []*schema.Column{CommunitiesColumns[6], CommunitiesColumns[4]},
			},
			{
				Name:    "community_parent_community_id",
				Unique:  false,
				Columns: []*schema.Column{CommunitiesColumns[5]},
			},
		},
	}
	// DomainRelationsColumns holds the columns for the "domain_relations" table.
	DomainRelationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "from_domain_id", Type: field.TypeString},
		{Name: "to_domain_id", Type: field.TypeString},
		{Name: "relation_type", Type: field.TypeEnum, Enums: []string{"shared_entities", "same_community", "semantic_similarity", "temporal_overlap", "shared_stakeholders", "manual_link"}, Default: "shared_entities"},
		{Name: "strength", Type: field.TypeFloat64},
		{Name: "discovery_method", Type: field.TypeEnum, Enums: []string{"automatic", "manual", "ai_suggestion"}},
		{Name: "shared_entity_count", Type: field.TypeInt, Default: 0},
		{Name: "explanation", Type: field.TypeString, Nullable: true},
	}
	// DomainRelationsTable holds the schema information for the "domain_relations" table.
	DomainRelationsTable = &schema.Table{
		Name:       "domain_relations",
		Columns:    DomainRelationsColumns,
		PrimaryKey: []*schema.Column{DomainRelationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "domainrelation_from_domain_id_to_domain_id_relation_type_discovery_method",
				Unique:  true,
				Columns: []*schema.Column{DomainRelationsColumns[3], DomainRelationsColumns[4], DomainRelationsColumns[5], DomainRelationsColumns[7]},
			},
			{
				Name:    "domainrelation_from_domain_id",
				Unique:  false,
				Columns: []*schema.Column{DomainRelationsColumns[3]},
			},
			{
				Name:    "domainrelation_to_domain_id",
				Unique:  false,
				Columns: []*schema.Column{DomainRelationsColumns[4]},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "canonical_name", Type: field.TypeString},
		{Name: "canonical_key", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"person", "organization", "location", "law", "date", "money", "policy"}},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "source_domain_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entity_canonical_key_entity_type",
				Unique:  true,
				Columns: []*schema.Column{EntitiesColumns[4], EntitiesColumns[5]},
			},
			{
				Name:    "entity_entity_type",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[5]},
			},
			{
				Name:    "entity_source_domain_id",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[8]},
			},
		},
	}
	// EntityCommunityMembershipsColumns holds the columns for the "entity_community_memberships" table.
	EntityCommunityMembershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "community_id", Type: field.TypeString},
		{Name: "membership_score", Type: field.TypeFloat64},
		{Name: "generation", Type: field.TypeInt64},
	}
	// EntityCommunityMembershipsTable holds the schema information for the "entity_community_memberships" table.
	EntityCommunityMembershipsTable = &schema.Table{
		Name:       "entity_community_memberships",
		Columns:    EntityCommunityMembershipsColumns,
		PrimaryKey: []*schema.Column{EntityCommunityMembershipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entitycommunitymembership_entity_id_community_id",
				Unique:  true,
				Columns: []*schema.Column{EntityCommunityMembershipsColumns[2], EntityCommunityMembershipsColumns[3]},
			},
			{
				Name:    "entitycommunitymembership_community_id",
				Unique:  false,
				Columns: []*schema.Column{EntityCommunityMembershipsColumns[3]},
			},
			{
				Name:    "entitycommunitymembership_generation",
				Unique:  false,
				Columns: []*schema.Column{EntityCommunityMembershipsColumns[5]},
			},
		},
	}
	// EntityRelationshipsColumns holds the columns for the "entity_relationships" table.
	EntityRelationshipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "source_entity_id", Type: field.TypeString},
		{Name: "target_entity_id", Type: field.TypeString},
		{Name: "relationship_type", Type: field.TypeEnum, Enums: []string{"works_for", "located_in", "subject_to", "refers_to", "relates_to", "collaborates_with", "part_of"}},
		{Name: "weight", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "observations", Type: field.TypeInt, Default: 1},
		{Name: "last_object_id", Type: field.TypeString, Nullable: true},
		{Name: "source_domain_id", Type: field.TypeString, Nullable: true},
	}
	// EntityRelationshipsTable holds the schema information for the "entity_relationships" table.
	EntityRelationshipsTable = &schema.Table{
		Name:       "entity_relationships",
		Columns:    EntityRelationshipsColumns,
		PrimaryKey: []*schema.Column{EntityRelationshipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entityrelationship_source_entity_id_target_entity_id_relationship_type",
				Unique:  true,
				Columns: []*schema.Column{EntityRelationshipsColumns[3], EntityRelationshipsColumns[4], EntityRelationshipsColumns[5]},
			},
			{
				Name:    "entityrelationship_source_entity_id",
				Unique:  false,
				Columns: []*schema.Column{EntityRelationshipsColumns[3]},
			},
			{
				Name:    "entityrelationship_target_entity_id",
				Unique:  false,
				Columns: []*schema.Column{EntityRelationshipsColumns[4]},
			},
		},
	}
	// GraphGenerationsColumns holds the columns for the "graph_generations" table.
	GraphGenerationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "number", Type: field.TypeInt64, Unique: true},
		{Name: "modularity", Type: field.TypeFloat64},
		{Name: "levels", Type: field.TypeInt},
		{Name: "community_count", Type: field.TypeInt},
		{Name: "entity_count", Type: field.TypeInt},
		{Name: "budget_exceeded", Type: field.TypeBool, Default: false},
	}
	// GraphGenerationsTable holds the schema information for the "graph_generations" table.
	GraphGenerationsTable = &schema.Table{
		Name:       "graph_generations",
		Columns:    GraphGenerationsColumns,
		PrimaryKey: []*schema.Column{GraphGenerationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphgeneration_number",
				Unique:  false,
				Columns: []*schema.Column{GraphGenerationsColumns[2]},
			},
		},
	}
	// InformationDomainsColumns holds the columns for the "information_domains" table.
	InformationDomainsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "domain_type", Type: field.TypeEnum, Enums: []string{"case", "project", "policy", "expertise"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "closed", "archived"}, Default: "active"},
		{Name: "organization_id", Type: field.TypeString},
		{Name: "owner_user_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_domain_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// InformationDomainsTable holds the schema information for the "information_domains" table.
	InformationDomainsTable = &schema.Table{
		Name:       "information_domains",
		Columns:    InformationDomainsColumns,
		PrimaryKey: []*schema.Column{InformationDomainsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "informationdomain_domain_type",
				Unique:  false,
				Columns: []*schema.Column{InformationDomainsColumns[5]},
			},
			{
				Name:    "informationdomain_status",
				Unique:  false,
				Columns: []*schema.Column{InformationDomainsColumns[6]},
			},
			{
				Name:    "informationdomain_organization_id",
				Unique:  false,
				Columns: []*schema.Column{InformationDomainsColumns[7]},
			},
			{
				Name:    "informationdomain_parent_domain_id",
				Unique:  false,
				Columns: []*schema.Column{InformationDomainsColumns[9]},
			},
		},
	}
	// InformationObjectsColumns holds the columns for the "information_objects" table.
	InformationObjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "domain_id", Type: field.TypeString},
		{Name: "object_type", Type: field.TypeEnum, Enums: []string{"document", "email", "chat", "decision", "dataset"}},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "content_location", Type: field.TypeString, Nullable: true},
		{Name: "content_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "file_size", Type: field.TypeInt64, Nullable: true},
		{Name: "classification", Type: field.TypeEnum, Enums: []string{"public", "internal", "confidential", "secret"}, Default: "internal"},
		{Name: "retention_period", Type: field.TypeInt, Nullable: true},
		{Name: "retention_trigger", Type: field.TypeString, Nullable: true},
		{Name: "destruction_date", Type: field.TypeTime, Nullable: true},
		{Name: "is_woo_relevant", Type: field.TypeBool, Default: false},
		{Name: "woo_publication_date", Type: field.TypeTime, Nullable: true},
		{Name: "privacy_level", Type: field.TypeEnum, Enums: []string{"none", "personal", "special", "criminal"}, Default: "none"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "previous_version_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString},
	}
	// InformationObjectsTable holds the schema information for the "information_objects" table.
	InformationObjectsTable = &schema.Table{
		Name:       "information_objects",
		Columns:    InformationObjectsColumns,
		PrimaryKey: []*schema.Column{InformationObjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "informationobject_domain_id",
				Unique:  false,
				Columns: []*schema.Column{InformationObjectsColumns[3]},
			},
			{
				Name:    "informationobject_object_type",
				Unique:  false,
				Columns: []*schema.Column{InformationObjectsColumns[4]},
			},
			{
				Name:    "informationobject_classification",
				Unique:  false,
				Columns: []*schema.Column{InformationObjectsColumns[11]},
			},
			{
				Name:    "informationobject_is_woo_relevant",
				Unique:  false,
				Columns: []*schema.Column{InformationObjectsColumns[15]},
			},
			{
				Name:    "informationobject_destruction_date",
				Unique:  false,
				Columns: []*schema.Column{InformationObjectsColumns[14]},
			},
		},
	}
	// MetadataSuggestionsColumns holds the columns for the "metadata_suggestions" table.
	MetadataSuggestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "object_id", Type: field.TypeString},
		{Name: "field", Type: field.TypeString},
		{Name: "suggested_value", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"ner", "classification", "rule_based", "pattern_matching"}},
		{Name: "pattern", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"proposed", "accepted", "rejected", "modified"}, Default: "proposed"},
		{Name: "modified_value", Type: field.TypeJSON, Nullable: true},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
	}
	// MetadataSuggestionsTable holds the schema information for the "metadata_suggestions" table.
	MetadataSuggestionsTable = &schema.Table{
		Name:       "metadata_suggestions",
		Columns:    MetadataSuggestionsColumns,
		PrimaryKey: []*schema.Column{MetadataSuggestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "metadatasuggestion_object_id",
				Unique:  false,
				Columns: []*schema.Column{MetadataSuggestionsColumns[3]},
			},
			{
				Name:    "metadatasuggestion_status",
				Unique:  false,
				Columns: []*schema.Column{MetadataSuggestionsColumns[10]},
			},
			{
				Name:    "metadatasuggestion_field",
				Unique:  false,
				Columns: []*schema.Column{MetadataSuggestionsColumns[4]},
			},
		},
	}
	// RuleExecutionsColumns holds the columns for the "rule_executions" table.
	RuleExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "object_id", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "matched", Type: field.TypeBool},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_detail", Type: field.TypeString, Nullable: true},
	}
	// RuleExecutionsTable holds the schema information for the "rule_executions" table.
	RuleExecutionsTable = &schema.Table{
		Name:       "rule_executions",
		Columns:    RuleExecutionsColumns,
		PrimaryKey: []*schema.Column{RuleExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ruleexecution_rule_id",
				Unique:  false,
				Columns: []*schema.Column{RuleExecutionsColumns[2]},
			},
			{
				Name:    "ruleexecution_object_id",
				Unique:  false,
				Columns: []*schema.Column{RuleExecutionsColumns[3]},
			},
			{
				Name:    "ruleexecution_created_at",
				Unique:  false,
				Columns: []*schema.Column{RuleExecutionsColumns[1]},
			},
		},
	}
	// SuggestionTrustsColumns holds the columns for the "suggestion_trusts" table.
	SuggestionTrustsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "field", Type: field.TypeString},
		{Name: "pattern", Type: field.TypeString},
		{Name: "multiplier", Type: field.TypeFloat64, Default: 1},
		{Name: "accepted_count", Type: field.TypeInt, Default: 0},
		{Name: "rejected_count", Type: field.TypeInt, Default: 0},
		{Name: "modified_count", Type: field.TypeInt, Default: 0},
	}
	// SuggestionTrustsTable holds the schema information for the "suggestion_trusts" table.
	SuggestionTrustsTable = &schema.Table{
		Name:       "suggestion_trusts",
		Columns:    SuggestionTrustsColumns,
		PrimaryKey: []*schema.Column{SuggestionTrustsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "suggestiontrust_field_pattern",
				Unique:  true,
				Columns: []*schema.Column{SuggestionTrustsColumns[3], SuggestionTrustsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		BusinessRulesTable,
		CommunitiesTable,
		DomainRelationsTable,
		EntitiesTable,
		EntityCommunityMembershipsTable,
		EntityRelationshipsTable,
		GraphGenerationsTable,
		InformationDomainsTable,
		InformationObjectsTable,
		MetadataSuggestionsTable,
		RuleExecutionsTable,
		SuggestionTrustsTable,
	}
)

func init() {
}
