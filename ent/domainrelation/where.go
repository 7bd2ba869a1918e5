// Code generated by ent, DO NOT EDIT.

package domainrelation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldUpdatedAt, v))
}

// FromDomainID applies equality check predicate on the "from_domain_id" field. It's identical to FromDomainIDEQ.
func FromDomainID(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldFromDomainID, v))
}

// ToDomainID applies equality check predicate on the "to_domain_id" field. It's identical to ToDomainIDEQ.
func ToDomainID(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldToDomainID, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldStrength, v))
}

// SharedEntityCount applies equality check predicate on the "shared_entity_count" field. It's identical to SharedEntityCountEQ.
func SharedEntityCount(v int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldSharedEntityCount, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldExplanation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLTE(FieldUpdatedAt, v))
}

// FromDomainIDEQ applies the EQ predicate on the "from_domain_id" field.
func FromDomainIDEQ(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldFromDomainID, v))
}

// FromDomainIDNEQ applies the NEQ predicate on the "from_domain_id" field.
func FromDomainIDNEQ(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldFromDomainID, v))
}

// FromDomainIDIn applies the In predicate on the "from_domain_id" field.
func FromDomainIDIn(vs ...string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldFromDomainID, vs...))
}

// FromDomainIDNotIn applies the NotIn predicate on the "from_domain_id" field.
func FromDomainIDNotIn(vs ...string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldFromDomainID, vs...))
}

// FromDomainIDGT applies the GT predicate on the "from_domain_id" field.
func FromDomainIDGT(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGT(FieldFromDomainID, v))
}

// FromDomainIDGTE applies the GTE predicate on the "from_domain_id" field.
func FromDomainIDGTE(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGTE(FieldFromDomainID, v))
}

// FromDomainIDLT applies the LT predicate on the "from_domain_id" field.
func FromDomainIDLT(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLT(FieldFromDomainID, v))
}

// FromDomainIDLTE applies the LTE predicate on the "from_domain_id" field.
func FromDomainIDLTE(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLTE(FieldFromDomainID, v))
}

// FromDomainIDContains applies the Contains predicate on the "from_domain_id" field.
func FromDomainIDContains(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldContains(FieldFromDomainID, v))
}

// FromDomainIDHasPrefix applies the HasPrefix predicate on the "from_domain_id" field.
func FromDomainIDHasPrefix(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldHasPrefix(FieldFromDomainID, v))
}

// FromDomainIDHasSuffix applies the HasSuffix predicate on the "from_domain_id" field.
func FromDomainIDHasSuffix(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldHasSuffix(FieldFromDomainID, v))
}

// FromDomainIDEqualFold applies the EqualFold predicate on the "from_domain_id" field.
func FromDomainIDEqualFold(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEqualFold(FieldFromDomainID, v))
}

// FromDomainIDContainsFold applies the ContainsFold predicate on the "from_domain_id" field.
func FromDomainIDContainsFold(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldContainsFold(FieldFromDomainID, v))
}

// ToDomainIDEQ applies the EQ predicate on the "to_domain_id" field.
func ToDomainIDEQ(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldToDomainID, v))
}

// ToDomainIDNEQ applies the NEQ predicate on the "to_domain_id" field.
func ToDomainIDNEQ(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldToDomainID, v))
}

// ToDomainIDIn applies the In predicate on the "to_domain_id" field.
func ToDomainIDIn(vs ...string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldToDomainID, vs...))
}

// ToDomainIDNotIn applies the NotIn predicate on the "to_domain_id" field.
func ToDomainIDNotIn(vs ...string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldToDomainID, vs...))
}

// ToDomainIDGT applies the GT predicate on the "to_domain_id" field.
func ToDomainIDGT(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGT(FieldToDomainID, v))
}

// ToDomainIDGTE applies the GTE predicate on the "to_domain_id" field.
func ToDomainIDGTE(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGTE(FieldToDomainID, v))
}

// ToDomainIDLT applies the LT predicate on the "to_domain_id" field.
func ToDomainIDLT(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLT(FieldToDomainID, v))
}

// ToDomainIDLTE applies the LTE predicate on the "to_domain_id" field.
func ToDomainIDLTE(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLTE(FieldToDomainID, v))
}

// ToDomainIDContains applies the Contains predicate on the "to_domain_id" field.
func ToDomainIDContains(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldContains(FieldToDomainID, v))
}

// ToDomainIDHasPrefix applies the HasPrefix predicate on the "to_domain_id" field.
func ToDomainIDHasPrefix(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldHasPrefix(FieldToDomainID, v))
}

// ToDomainIDHasSuffix applies the HasSuffix predicate on the "to_domain_id" field.
func ToDomainIDHasSuffix(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldHasSuffix(FieldToDomainID, v))
}

// ToDomainIDEqualFold applies the EqualFold predicate on the "to_domain_id" field.
func ToDomainIDEqualFold(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEqualFold(FieldToDomainID, v))
}

// ToDomainIDContainsFold applies the ContainsFold predicate on the "to_domain_id" field.
func ToDomainIDContainsFold(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldContainsFold(FieldToDomainID, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v RelationType) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v RelationType) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...RelationType) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...RelationType) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldRelationType, vs...))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v float64) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLTE(FieldStrength, v))
}

// DiscoveryMethodEQ applies the EQ predicate on the "discovery_method" field.
func DiscoveryMethodEQ(v DiscoveryMethod) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldDiscoveryMethod, v))
}

// DiscoveryMethodNEQ applies the NEQ predicate on the "discovery_method" field.
func DiscoveryMethodNEQ(v DiscoveryMethod) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldDiscoveryMethod, v))
}

// DiscoveryMethodIn applies the In predicate on the "discovery_method" field.
func DiscoveryMethodIn(vs ...DiscoveryMethod) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldDiscoveryMethod, vs...))
}

// DiscoveryMethodNotIn applies the NotIn predicate on the "discovery_method" field.
func DiscoveryMethodNotIn(vs ...DiscoveryMethod) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldDiscoveryMethod, vs...))
}

// SharedEntityCountEQ applies the EQ predicate on the "shared_entity_count" field.
func SharedEntityCountEQ(v int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldSharedEntityCount, v))
}

// SharedEntityCountNEQ applies the NEQ predicate on the "shared_entity_count" field.
func SharedEntityCountNEQ(v int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldSharedEntityCount, v))
}

// SharedEntityCountIn applies the In predicate on the "shared_entity_count" field.
func SharedEntityCountIn(vs ...int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldSharedEntityCount, vs...))
}

// SharedEntityCountNotIn applies the NotIn predicate on the "shared_entity_count" field.
func SharedEntityCountNotIn(vs ...int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldSharedEntityCount, vs...))
}

// SharedEntityCountGT applies the GT predicate on the "shared_entity_count" field.
func SharedEntityCountGT(v int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGT(FieldSharedEntityCount, v))
}

// SharedEntityCountGTE applies the GTE predicate on the "shared_entity_count" field.
func SharedEntityCountGTE(v int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGTE(FieldSharedEntityCount, v))
}

// SharedEntityCountLT applies the LT predicate on the "shared_entity_count" field.
func SharedEntityCountLT(v int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLT(FieldSharedEntityCount, v))
}

// SharedEntityCountLTE applies the LTE predicate on the "shared_entity_count" field.
func SharedEntityCountLTE(v int) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLTE(FieldSharedEntityCount, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.DomainRelation {
	return predicate.DomainRelation(sql.FieldContainsFold(FieldExplanation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DomainRelation) predicate.DomainRelation {
	return predicate.DomainRelation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DomainRelation) predicate.DomainRelation {
	return predicate.DomainRelation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DomainRelation) predicate.DomainRelation {
	return predicate.DomainRelation(sql.NotPredicates(p))
}
