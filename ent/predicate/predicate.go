// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// BusinessRule is the predicate function for businessrule builders.
type BusinessRule func(*sql.Selector)

// Community is the predicate function for community builders.
type Community func(*sql.Selector)

// DomainRelation is the predicate function for domainrelation builders.
type DomainRelation func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// EntityCommunityMembership is the predicate function for entitycommunitymembership builders.
type EntityCommunityMembership func(*sql.Selector)

// EntityRelationship is the predicate function for entityrelationship builders.
type EntityRelationship func(*sql.Selector)

// GraphGeneration is the predicate function for graphgeneration builders.
type GraphGeneration func(*sql.Selector)

// InformationDomain is the predicate function for informationdomain builders.
type InformationDomain func(*sql.Selector)

// InformationObject is the predicate function for informationobject builders.
type InformationObject func(*sql.Selector)

// MetadataSuggestion is the predicate function for metadatasuggestion builders.
type MetadataSuggestion func(*sql.Selector)

// RuleExecution is the predicate function for ruleexecution builders.
type RuleExecution func(*sql.Selector)

// SuggestionTrust is the predicate function for suggestiontrust builders.
type SuggestionTrust func(*sql.Selector)
