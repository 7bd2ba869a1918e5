// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"iou-platform.io/iou/ent/auditlog"
	"iou-platform.io/iou/ent/businessrule"
	"iou-platform.io/iou/ent/community"
	"iou-platform.io/iou/ent/domainrelation"
	"iou-platform.io/iou/ent/entity"
	"iou-platform.io/iou/ent/entitycommunitymembership"
	"iou-platform.io/iou/ent/entityrelationship"
	"iou-platform.io/iou/ent/graphgeneration"
	"iou-platform.io/iou/ent/informationdomain"
	"iou-platform.io/iou/ent/informationobject"
	"iou-platform.io/iou/ent/metadatasuggestion"
	"iou-platform.io/iou/ent/ruleexecution"
	"iou-platform.io/iou/ent/schema"
	"iou-platform.io/iou/ent/suggestiontrust"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	businessruleMixin := schema.BusinessRule{}.Mixin()
	businessruleMixinFields0 := businessruleMixin[0].Fields()
	_ = businessruleMixinFields0
	businessruleFields := schema.BusinessRule{}.Fields()
	_ = businessruleFields
	// businessruleDescCreatedAt is the schema descriptor for created_at field.
	businessruleDescCreatedAt := businessruleMixinFields0[0].Descriptor()
	// businessrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	businessrule.DefaultCreatedAt = businessruleDescCreatedAt.Default.(func() time.Time)
	// businessruleDescUpdatedAt is the schema descriptor for updated_at field.
	businessruleDescUpdatedAt := businessruleMixinFields0[1].Descriptor()
	// businessrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	businessrule.DefaultUpdatedAt = businessruleDescUpdatedAt.Default.(func() time.Time)
	// businessrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	businessrule.UpdateDefaultUpdatedAt = businessruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// businessruleDescName is the schema descriptor for name field.
	businessruleDescName := businessruleFields[1].Descriptor()
	// businessrule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	businessrule.NameValidator = businessruleDescName.Validators[0].(func(string) error)
	// businessruleDescActive is the schema descriptor for active field.
	businessruleDescActive := businessruleFields[9].Descriptor()
	// businessrule.DefaultActive holds the default value on creation for the active field.
	businessrule.DefaultActive = businessruleDescActive.Default.(bool)
	communityMixin := schema.Community{}.Mixin()
	communityMixinFields0 := communityMixin[0].Fields()
	_ = communityMixinFields0
	communityFields := schema.Community{}.Fields()
	_ = communityFields
	// communityDescCreatedAt is the schema descriptor for created_at field.
	communityDescCreatedAt := communityMixinFields0[0].Descriptor()
	// community.DefaultCreatedAt holds the default value on creation for the created_at field.
	community.DefaultCreatedAt = communityDescCreatedAt.Default.(func() time.Time)
	// communityDescName is the schema descriptor for name field.
	communityDescName := communityFields[1].Descriptor()
	// community.NameValidator is a validator for the "name" field. It is called by the builders before save.
	community.NameValidator = communityDescName.Validators[0].(func(string) error)
	// communityDescLevel is the schema descriptor for level field.
	communityDescLevel := communityFields[3].Descriptor()
	// community.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	community.LevelValidator = communityDescLevel.Validators[0].(func(int) error)
	domainrelationMixin := schema.DomainRelation{}.Mixin()
	domainrelationMixinFields0 := domainrelationMixin[0].Fields()
	_ = domainrelationMixinFields0
	domainrelationFields := schema.DomainRelation{}.Fields()
	_ = domainrelationFields
	// domainrelationDescCreatedAt is the schema descriptor for created_at field.
	domainrelationDescCreatedAt := domainrelationMixinFields0[0].Descriptor()
	// domainrelation.DefaultCreatedAt holds the default value on creation for the created_at field.
	domainrelation.DefaultCreatedAt = domainrelationDescCreatedAt.Default.(func() time.Time)
	// domainrelationDescUpdatedAt is the schema descriptor for updated_at field.
	domainrelationDescUpdatedAt := domainrelationMixinFields0[1].Descriptor()
	// domainrelation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	domainrelation.DefaultUpdatedAt = domainrelationDescUpdatedAt.Default.(func() time.Time)
	// domainrelation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	domainrelation.UpdateDefaultUpdatedAt = domainrelationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// domainrelationDescFromDomainID is the schema descriptor for from_domain_id field.
	domainrelationDescFromDomainID := domainrelationFields[1].Descriptor()
	// domainrelation.FromDomainIDValidator is a validator for the "from_domain_id" field. It is called by the builders before save.
	domainrelation.FromDomainIDValidator = domainrelationDescFromDomainID.Validators[0].(func(string) error)
	// domainrelationDescToDomainID is the schema descriptor for to_domain_id field.
	domainrelationDescToDomainID := domainrelationFields[2].Descriptor()
	// domainrelation.ToDomainIDValidator is a validator for the "to_domain_id" field. It is called by the builders before save.
	domainrelation.ToDomainIDValidator = domainrelationDescToDomainID.Validators[0].(func(string) error)
	// domainrelationDescStrength is the schema descriptor for strength field.
	domainrelationDescStrength := domainrelationFields[4].Descriptor()
	// domainrelation.StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	domainrelation.StrengthValidator = domainrelationDescStrength.Validators[0].(func(float64) error)
	// domainrelationDescSharedEntityCount is the schema descriptor for shared_entity_count field.
	domainrelationDescSharedEntityCount := domainrelationFields[6].Descriptor()
	// domainrelation.DefaultSharedEntityCount holds the default value on creation for the shared_entity_count field.
	domainrelation.DefaultSharedEntityCount = domainrelationDescSharedEntityCount.Default.(int)
	entityMixin := schema.Entity{}.Mixin()
	entityMixinFields0 := entityMixin[0].Fields()
	_ = entityMixinFields0
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescCreatedAt is the schema descriptor for created_at field.
	entityDescCreatedAt := entityMixinFields0[0].Descriptor()
	// entity.DefaultCreatedAt holds the default value on creation for the created_at field.
	entity.DefaultCreatedAt = entityDescCreatedAt.Default.(func() time.Time)
	// entityDescUpdatedAt is the schema descriptor for updated_at field.
	entityDescUpdatedAt := entityMixinFields0[1].Descriptor()
	// entity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entity.DefaultUpdatedAt = entityDescUpdatedAt.Default.(func() time.Time)
	// entity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entity.UpdateDefaultUpdatedAt = entityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// entityDescCanonicalName is the schema descriptor for canonical_name field.
	entityDescCanonicalName := entityFields[1].Descriptor()
	// entity.CanonicalNameValidator is a validator for the "canonical_name" field. It is called by the builders before save.
	entity.CanonicalNameValidator = entityDescCanonicalName.Validators[0].(func(string) error)
	// entityDescCanonicalKey is the schema descriptor for canonical_key field.
	entityDescCanonicalKey := entityFields[2].Descriptor()
	// entity.CanonicalKeyValidator is a validator for the "canonical_key" field. It is called by the builders before save.
	entity.CanonicalKeyValidator = entityDescCanonicalKey.Validators[0].(func(string) error)
	// entityDescConfidence is the schema descriptor for confidence field.
	entityDescConfidence := entityFields[5].Descriptor()
	// entity.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	entity.ConfidenceValidator = func() func(float64) error {
		validators := entityDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	entitycommunitymembershipMixin := schema.EntityCommunityMembership{}.Mixin()
	entitycommunitymembershipMixinFields0 := entitycommunitymembershipMixin[0].Fields()
	_ = entitycommunitymembershipMixinFields0
	entitycommunitymembershipFields := schema.EntityCommunityMembership{}.Fields()
	_ = entitycommunitymembershipFields
	// entitycommunitymembershipDescCreatedAt is the schema descriptor for created_at field.
	entitycommunitymembershipDescCreatedAt := entitycommunitymembershipMixinFields0[0].Descriptor()
	// entitycommunitymembership.DefaultCreatedAt holds the default value on creation for the created_at field.
	entitycommunitymembership.DefaultCreatedAt = entitycommunitymembershipDescCreatedAt.Default.(func() time.Time)
	// entitycommunitymembershipDescEntityID is the schema descriptor for entity_id field.
	entitycommunitymembershipDescEntityID := entitycommunitymembershipFields[1].Descriptor()
	// entitycommunitymembership.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	entitycommunitymembership.EntityIDValidator = entitycommunitymembershipDescEntityID.Validators[0].(func(string) error)
	// entitycommunitymembershipDescCommunityID is the schema descriptor for community_id field.
	entitycommunitymembershipDescCommunityID := entitycommunitymembershipFields[2].Descriptor()
	// entitycommunitymembership.CommunityIDValidator is a validator for the "community_id" field. It is called by the builders before save.
	entitycommunitymembership.CommunityIDValidator = entitycommunitymembershipDescCommunityID.Validators[0].(func(string) error)
	// entitycommunitymembershipDescMembershipScore is the schema descriptor for membership_score field.
	entitycommunitymembershipDescMembershipScore := entitycommunitymembershipFields[3].Descriptor()
	// entitycommunitymembership.MembershipScoreValidator is a validator for the "membership_score" field. It is called by the builders before save.
	entitycommunitymembership.MembershipScoreValidator = func() func(float64) error {
		validators := entitycommunitymembershipDescMembershipScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(membership_score float64) error {
			for _, fn := range fns {
				if err := fn(membership_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	entityrelationshipMixin := schema.EntityRelationship{}.Mixin()
	entityrelationshipMixinFields0 := entityrelationshipMixin[0].Fields()
	_ = entityrelationshipMixinFields0
	entityrelationshipFields := schema.EntityRelationship{}.Fields()
	_ = entityrelationshipFields
	// entityrelationshipDescCreatedAt is the schema descriptor for created_at field.
	entityrelationshipDescCreatedAt := entityrelationshipMixinFields0[0].Descriptor()
	// entityrelationship.DefaultCreatedAt holds the default value on creation for the created_at field.
	entityrelationship.DefaultCreatedAt = entityrelationshipDescCreatedAt.Default.(func() time.Time)
	// entityrelationshipDescUpdatedAt is the schema descriptor for updated_at field.
	entityrelationshipDescUpdatedAt := entityrelationshipMixinFields0[1].Descriptor()
	// entityrelationship.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entityrelationship.DefaultUpdatedAt = entityrelationshipDescUpdatedAt.Default.(func() time.Time)
	// entityrelationship.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entityrelationship.UpdateDefaultUpdatedAt = entityrelationshipDescUpdatedAt.UpdateDefault.(func() time.Time)
	// entityrelationshipDescSourceEntityID is the schema descriptor for source_entity_id field.
	entityrelationshipDescSourceEntityID := entityrelationshipFields[1].Descriptor()
	// entityrelationship.SourceEntityIDValidator is a validator for the "source_entity_id" field. It is called by the builders before save.
	entityrelationship.SourceEntityIDValidator = entityrelationshipDescSourceEntityID.Validators[0].(func(string) error)
	// entityrelationshipDescTargetEntityID is the schema descriptor for target_entity_id field.
	entityrelationshipDescTargetEntityID := entityrelationshipFields[2].Descriptor()
	// entityrelationship.TargetEntityIDValidator is a validator for the "target_entity_id" field. It is called by the builders before save.
	entityrelationship.TargetEntityIDValidator = entityrelationshipDescTargetEntityID.Validators[0].(func(string) error)
	// entityrelationshipDescWeight is the schema descriptor for weight field.
	entityrelationshipDescWeight := entityrelationshipFields[4].Descriptor()
	// entityrelationship.WeightValidator is a validator for the "weight" field. It is called by the builders before save.
	entityrelationship.WeightValidator = entityrelationshipDescWeight.Validators[0].(func(float64) error)
	// entityrelationshipDescConfidence is the schema descriptor for confidence field.
	entityrelationshipDescConfidence := entityrelationshipFields[5].Descriptor()
	// entityrelationship.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	entityrelationship.ConfidenceValidator = func() func(float64) error {
		validators := entityrelationshipDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entityrelationshipDescObservations is the schema descriptor for observations field.
	entityrelationshipDescObservations := entityrelationshipFields[6].Descriptor()
	// entityrelationship.DefaultObservations holds the default value on creation for the observations field.
	entityrelationship.DefaultObservations = entityrelationshipDescObservations.Default.(int)
	graphgenerationMixin := schema.GraphGeneration{}.Mixin()
	graphgenerationMixinFields0 := graphgenerationMixin[0].Fields()
	_ = graphgenerationMixinFields0
	graphgenerationFields := schema.GraphGeneration{}.Fields()
	_ = graphgenerationFields
	// graphgenerationDescCreatedAt is the schema descriptor for created_at field.
	graphgenerationDescCreatedAt := graphgenerationMixinFields0[0].Descriptor()
	// graphgeneration.DefaultCreatedAt holds the default value on creation for the created_at field.
	graphgeneration.DefaultCreatedAt = graphgenerationDescCreatedAt.Default.(func() time.Time)
	// graphgenerationDescBudgetExceeded is the schema descriptor for budget_exceeded field.
	graphgenerationDescBudgetExceeded := graphgenerationFields[6].Descriptor()
	// graphgeneration.DefaultBudgetExceeded holds the default value on creation for the budget_exceeded field.
	graphgeneration.DefaultBudgetExceeded = graphgenerationDescBudgetExceeded.Default.(bool)
	informationdomainMixin := schema.InformationDomain{}.Mixin()
	informationdomainMixinFields0 := informationdomainMixin[0].Fields()
	_ = informationdomainMixinFields0
	informationdomainFields := schema.InformationDomain{}.Fields()
	_ = informationdomainFields
	// informationdomainDescCreatedAt is the schema descriptor for created_at field.
	informationdomainDescCreatedAt := informationdomainMixinFields0[0].Descriptor()
	// informationdomain.DefaultCreatedAt holds the default value on creation for the created_at field.
	informationdomain.DefaultCreatedAt = informationdomainDescCreatedAt.Default.(func() time.Time)
	// informationdomainDescUpdatedAt is the schema descriptor for updated_at field.
	informationdomainDescUpdatedAt := informationdomainMixinFields0[1].Descriptor()
	// informationdomain.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	informationdomain.DefaultUpdatedAt = informationdomainDescUpdatedAt.Default.(func() time.Time)
	// informationdomain.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	informationdomain.UpdateDefaultUpdatedAt = informationdomainDescUpdatedAt.UpdateDefault.(func() time.Time)
	// informationdomainDescName is the schema descriptor for name field.
	informationdomainDescName := informationdomainFields[1].Descriptor()
	// informationdomain.NameValidator is a validator for the "name" field. It is called by the builders before save.
	informationdomain.NameValidator = informationdomainDescName.Validators[0].(func(string) error)
	// informationdomainDescOrganizationID is the schema descriptor for organization_id field.
	informationdomainDescOrganizationID := informationdomainFields[5].Descriptor()
	// informationdomain.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	informationdomain.OrganizationIDValidator = informationdomainDescOrganizationID.Validators[0].(func(string) error)
	informationobjectMixin := schema.InformationObject{}.Mixin()
	informationobjectMixinFields0 := informationobjectMixin[0].Fields()
	_ = informationobjectMixinFields0
	informationobjectFields := schema.InformationObject{}.Fields()
	_ = informationobjectFields
	// informationobjectDescCreatedAt is the schema descriptor for created_at field.
	informationobjectDescCreatedAt := informationobjectMixinFields0[0].Descriptor()
	// informationobject.DefaultCreatedAt holds the default value on creation for the created_at field.
	informationobject.DefaultCreatedAt = informationobjectDescCreatedAt.Default.(func() time.Time)
	// informationobjectDescUpdatedAt is the schema descriptor for updated_at field.
	informationobjectDescUpdatedAt := informationobjectMixinFields0[1].Descriptor()
	// informationobject.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	informationobject.DefaultUpdatedAt = informationobjectDescUpdatedAt.Default.(func() time.Time)
	// informationobject.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	informationobject.UpdateDefaultUpdatedAt = informationobjectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// informationobjectDescDomainID is the schema descriptor for domain_id field.
	informationobjectDescDomainID := informationobjectFields[1].Descriptor()
	// informationobject.DomainIDValidator is a validator for the "domain_id" field. It is called by the builders before save.
	informationobject.DomainIDValidator = informationobjectDescDomainID.Validators[0].(func(string) error)
	// informationobjectDescTitle is the schema descriptor for title field.
	informationobjectDescTitle := informationobjectFields[3].Descriptor()
	// informationobject.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	informationobject.TitleValidator = informationobjectDescTitle.Validators[0].(func(string) error)
	// informationobjectDescIsWooRelevant is the schema descriptor for is_woo_relevant field.
	informationobjectDescIsWooRelevant := informationobjectFields[13].Descriptor()
	// informationobject.DefaultIsWooRelevant holds the default value on creation for the is_woo_relevant field.
	informationobject.DefaultIsWooRelevant = informationobjectDescIsWooRelevant.Default.(bool)
	// informationobjectDescVersion is the schema descriptor for version field.
	informationobjectDescVersion := informationobjectFields[18].Descriptor()
	// informationobject.DefaultVersion holds the default value on creation for the version field.
	informationobject.DefaultVersion = informationobjectDescVersion.Default.(int)
	// informationobjectDescCreatedBy is the schema descriptor for created_by field.
	informationobjectDescCreatedBy := informationobjectFields[20].Descriptor()
	// informationobject.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	informationobject.CreatedByValidator = informationobjectDescCreatedBy.Validators[0].(func(string) error)
	metadatasuggestionMixin := schema.MetadataSuggestion{}.Mixin()
	metadatasuggestionMixinFields0 := metadatasuggestionMixin[0].Fields()
	_ = metadatasuggestionMixinFields0
	metadatasuggestionFields := schema.MetadataSuggestion{}.Fields()
	_ = metadatasuggestionFields
	// metadatasuggestionDescCreatedAt is the schema descriptor for created_at field.
	metadatasuggestionDescCreatedAt := metadatasuggestionMixinFields0[0].Descriptor()
	// metadatasuggestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	metadatasuggestion.DefaultCreatedAt = metadatasuggestionDescCreatedAt.Default.(func() time.Time)
	// metadatasuggestionDescUpdatedAt is the schema descriptor for updated_at field.
	metadatasuggestionDescUpdatedAt := metadatasuggestionMixinFields0[1].Descriptor()
	// metadatasuggestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	metadatasuggestion.DefaultUpdatedAt = metadatasuggestionDescUpdatedAt.Default.(func() time.Time)
	// metadatasuggestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	metadatasuggestion.UpdateDefaultUpdatedAt = metadatasuggestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// metadatasuggestionDescObjectID is the schema descriptor for object_id field.
	metadatasuggestionDescObjectID := metadatasuggestionFields[1].Descriptor()
	// metadatasuggestion.ObjectIDValidator is a validator for the "object_id" field. It is called by the builders before save.
	metadatasuggestion.ObjectIDValidator = metadatasuggestionDescObjectID.Validators[0].(func(string) error)
	// metadatasuggestionDescField is the schema descriptor for field field.
	metadatasuggestionDescField := metadatasuggestionFields[2].Descriptor()
	// metadatasuggestion.FieldValidator is a validator for the "field" field. It is called by the builders before save.
	metadatasuggestion.FieldValidator = metadatasuggestionDescField.Validators[0].(func(string) error)
	// metadatasuggestionDescConfidence is the schema descriptor for confidence field.
	metadatasuggestionDescConfidence := metadatasuggestionFields[4].Descriptor()
	// metadatasuggestion.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	metadatasuggestion.ConfidenceValidator = func() func(float64) error {
		validators := metadatasuggestionDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	ruleexecutionMixin := schema.RuleExecution{}.Mixin()
	ruleexecutionMixinFields0 := ruleexecutionMixin[0].Fields()
	_ = ruleexecutionMixinFields0
	ruleexecutionFields := schema.RuleExecution{}.Fields()
	_ = ruleexecutionFields
	// ruleexecutionDescCreatedAt is the schema descriptor for created_at field.
	ruleexecutionDescCreatedAt := ruleexecutionMixinFields0[0].Descriptor()
	// ruleexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	ruleexecution.DefaultCreatedAt = ruleexecutionDescCreatedAt.Default.(func() time.Time)
	// ruleexecutionDescRuleID is the schema descriptor for rule_id field.
	ruleexecutionDescRuleID := ruleexecutionFields[1].Descriptor()
	// ruleexecution.RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	ruleexecution.RuleIDValidator = ruleexecutionDescRuleID.Validators[0].(func(string) error)
	// ruleexecutionDescObjectID is the schema descriptor for object_id field.
	ruleexecutionDescObjectID := ruleexecutionFields[2].Descriptor()
	// ruleexecution.ObjectIDValidator is a validator for the "object_id" field. It is called by the builders before save.
	ruleexecution.ObjectIDValidator = ruleexecutionDescObjectID.Validators[0].(func(string) error)
	suggestiontrustMixin := schema.SuggestionTrust{}.Mixin()
	suggestiontrustMixinFields0 := suggestiontrustMixin[0].Fields()
	_ = suggestiontrustMixinFields0
	suggestiontrustFields := schema.SuggestionTrust{}.Fields()
	_ = suggestiontrustFields
	// suggestiontrustDescCreatedAt is the schema descriptor for created_at field.
	suggestiontrustDescCreatedAt := suggestiontrustMixinFields0[0].Descriptor()
	// suggestiontrust.DefaultCreatedAt holds the default value on creation for the created_at field.
	suggestiontrust.DefaultCreatedAt = suggestiontrustDescCreatedAt.Default.(func() time.Time)
	// suggestiontrustDescUpdatedAt is the schema descriptor for updated_at field.
	suggestiontrustDescUpdatedAt := suggestiontrustMixinFields0[1].Descriptor()
	// suggestiontrust.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	suggestiontrust.DefaultUpdatedAt = suggestiontrustDescUpdatedAt.Default.(func() time.Time)
	// suggestiontrust.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	suggestiontrust.UpdateDefaultUpdatedAt = suggestiontrustDescUpdatedAt.UpdateDefault.(func() time.Time)
	// suggestiontrustDescField is the schema descriptor for field field.
	suggestiontrustDescField := suggestiontrustFields[1].Descriptor()
	// suggestiontrust.FieldValidator is a validator for the "field" field. It is called by the builders before save.
	suggestiontrust.FieldValidator = suggestiontrustDescField.Validators[0].(func(string) error)
	// suggestiontrustDescPattern is the schema descriptor for pattern field.
	suggestiontrustDescPattern := suggestiontrustFields[2].Descriptor()
	// suggestiontrust.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	suggestiontrust.PatternValidator = suggestiontrustDescPattern.Validators[0].(func(string) error)
	// suggestiontrustDescMultiplier is the schema descriptor for multiplier field.
	suggestiontrustDescMultiplier := suggestiontrustFields[3].Descriptor()
	// suggestiontrust.DefaultMultiplier holds the default value on creation for the multiplier field.
	suggestiontrust.DefaultMultiplier = suggestiontrustDescMultiplier.Default.(float64)
	// suggestiontrustDescAcceptedCount is the schema descriptor for accepted_count field.
	suggestiontrustDescAcceptedCount := suggestiontrustFields[4].Descriptor()
	// suggestiontrust.DefaultAcceptedCount holds the default value on creation for the accepted_count field.
	suggestiontrust.DefaultAcceptedCount = suggestiontrustDescAcceptedCount.Default.(int)
	// suggestiontrustDescRejectedCount is the schema descriptor for rejected_count field.
	suggestiontrustDescRejectedCount := suggestiontrustFields[5].Descriptor()
	// suggestiontrust.DefaultRejectedCount holds the default value on creation for the rejected_count field.
	suggestiontrust.DefaultRejectedCount = suggestiontrustDescRejectedCount.Default.(int)
	// suggestiontrustDescModifiedCount is the schema descriptor for modified_count field.
	suggestiontrustDescModifiedCount := suggestiontrustFields[6].Descriptor()
	// suggestiontrust.DefaultModifiedCount holds the default value on creation for the modified_count field.
	suggestiontrust.DefaultModifiedCount = suggestiontrustDescModifiedCount.Default.(int)
}
