// Code generated by ent, DO NOT EDIT.

package entity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldUpdatedAt, v))
}

// CanonicalName applies equality check predicate on the "canonical_name" field. It's identical to CanonicalNameEQ.
func CanonicalName(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCanonicalName, v))
}

// CanonicalKey applies equality check predicate on the "canonical_key" field. It's identical to CanonicalKeyEQ.
func CanonicalKey(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCanonicalKey, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldDescription, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldConfidence, v))
}

// SourceDomainID applies equality check predicate on the "source_domain_id" field. It's identical to SourceDomainIDEQ.
func SourceDomainID(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldSourceDomainID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldUpdatedAt, v))
}

// CanonicalNameEQ applies the EQ predicate on the "canonical_name" field.
func CanonicalNameEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCanonicalName, v))
}

// CanonicalNameNEQ applies the NEQ predicate on the "canonical_name" field.
func CanonicalNameNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldCanonicalName, v))
}

// CanonicalNameIn applies the In predicate on the "canonical_name" field.
func CanonicalNameIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldCanonicalName, vs...))
}

// CanonicalNameNotIn applies the NotIn predicate on the "canonical_name" field.
func CanonicalNameNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldCanonicalName, vs...))
}

// CanonicalNameGT applies the GT predicate on the "canonical_name" field.
func CanonicalNameGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldCanonicalName, v))
}

// CanonicalNameGTE applies the GTE predicate on the "canonical_name" field.
func CanonicalNameGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldCanonicalName, v))
}

// CanonicalNameLT applies the LT predicate on the "canonical_name" field.
func CanonicalNameLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldCanonicalName, v))
}

// CanonicalNameLTE applies the LTE predicate on the "canonical_name" field.
func CanonicalNameLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldCanonicalName, v))
}

// CanonicalNameContains applies the Contains predicate on the "canonical_name" field.
func CanonicalNameContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldCanonicalName, v))
}

// CanonicalNameHasPrefix applies the HasPrefix predicate on the "canonical_name" field.
func CanonicalNameHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldCanonicalName, v))
}

// CanonicalNameHasSuffix applies the HasSuffix predicate on the "canonical_name" field.
func CanonicalNameHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldCanonicalName, v))
}

// CanonicalNameEqualFold applies the EqualFold predicate on the "canonical_name" field.
func CanonicalNameEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldCanonicalName, v))
}

// CanonicalNameContainsFold applies the ContainsFold predicate on the "canonical_name" field.
func CanonicalNameContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldCanonicalName, v))
}

// CanonicalKeyEQ applies the EQ predicate on the "canonical_key" field.
func CanonicalKeyEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldCanonicalKey, v))
}

// CanonicalKeyNEQ applies the NEQ predicate on the "canonical_key" field.
func CanonicalKeyNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldCanonicalKey, v))
}

// CanonicalKeyIn applies the In predicate on the "canonical_key" field.
func CanonicalKeyIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldCanonicalKey, vs...))
}

// CanonicalKeyNotIn applies the NotIn predicate on the "canonical_key" field.
func CanonicalKeyNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldCanonicalKey, vs...))
}

// CanonicalKeyGT applies the GT predicate on the "canonical_key" field.
func CanonicalKeyGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldCanonicalKey, v))
}

// CanonicalKeyGTE applies the GTE predicate on the "canonical_key" field.
func CanonicalKeyGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldCanonicalKey, v))
}

// CanonicalKeyLT applies the LT predicate on the "canonical_key" field.
func CanonicalKeyLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldCanonicalKey, v))
}

// CanonicalKeyLTE applies the LTE predicate on the "canonical_key" field.
func CanonicalKeyLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldCanonicalKey, v))
}

// CanonicalKeyContains applies the Contains predicate on the "canonical_key" field.
func CanonicalKeyContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldCanonicalKey, v))
}

// CanonicalKeyHasPrefix applies the HasPrefix predicate on the "canonical_key" field.
func CanonicalKeyHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldCanonicalKey, v))
}

// CanonicalKeyHasSuffix applies the HasSuffix predicate on the "canonical_key" field.
func CanonicalKeyHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldCanonicalKey, v))
}

// CanonicalKeyEqualFold applies the EqualFold predicate on the "canonical_key" field.
func CanonicalKeyEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldCanonicalKey, v))
}

// CanonicalKeyContainsFold applies the ContainsFold predicate on the "canonical_key" field.
func CanonicalKeyContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldCanonicalKey, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldEntityType, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldDescription, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldConfidence, v))
}

// SourceDomainIDEQ applies the EQ predicate on the "source_domain_id" field.
func SourceDomainIDEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEQ(FieldSourceDomainID, v))
}

// SourceDomainIDNEQ applies the NEQ predicate on the "source_domain_id" field.
func SourceDomainIDNEQ(v string) predicate.Entity {
	return predicate.Entity(sql.FieldNEQ(FieldSourceDomainID, v))
}

// SourceDomainIDIn applies the In predicate on the "source_domain_id" field.
func SourceDomainIDIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldIn(FieldSourceDomainID, vs...))
}

// SourceDomainIDNotIn applies the NotIn predicate on the "source_domain_id" field.
func SourceDomainIDNotIn(vs ...string) predicate.Entity {
	return predicate.Entity(sql.FieldNotIn(FieldSourceDomainID, vs...))
}

// SourceDomainIDGT applies the GT predicate on the "source_domain_id" field.
func SourceDomainIDGT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGT(FieldSourceDomainID, v))
}

// SourceDomainIDGTE applies the GTE predicate on the "source_domain_id" field.
func SourceDomainIDGTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldGTE(FieldSourceDomainID, v))
}

// SourceDomainIDLT applies the LT predicate on the "source_domain_id" field.
func SourceDomainIDLT(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLT(FieldSourceDomainID, v))
}

// SourceDomainIDLTE applies the LTE predicate on the "source_domain_id" field.
func SourceDomainIDLTE(v string) predicate.Entity {
	return predicate.Entity(sql.FieldLTE(FieldSourceDomainID, v))
}

// SourceDomainIDContains applies the Contains predicate on the "source_domain_id" field.
func SourceDomainIDContains(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContains(FieldSourceDomainID, v))
}

// SourceDomainIDHasPrefix applies the HasPrefix predicate on the "source_domain_id" field.
func SourceDomainIDHasPrefix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasPrefix(FieldSourceDomainID, v))
}

// SourceDomainIDHasSuffix applies the HasSuffix predicate on the "source_domain_id" field.
func SourceDomainIDHasSuffix(v string) predicate.Entity {
	return predicate.Entity(sql.FieldHasSuffix(FieldSourceDomainID, v))
}

// SourceDomainIDIsNil applies the IsNil predicate on the "source_domain_id" field.
func SourceDomainIDIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldSourceDomainID))
}

// SourceDomainIDNotNil applies the NotNil predicate on the "source_domain_id" field.
func SourceDomainIDNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldSourceDomainID))
}

// SourceDomainIDEqualFold applies the EqualFold predicate on the "source_domain_id" field.
func SourceDomainIDEqualFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldEqualFold(FieldSourceDomainID, v))
}

// SourceDomainIDContainsFold applies the ContainsFold predicate on the "source_domain_id" field.
func SourceDomainIDContainsFold(v string) predicate.Entity {
	return predicate.Entity(sql.FieldContainsFold(FieldSourceDomainID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Entity {
	return predicate.Entity(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Entity {
	return predicate.Entity(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Entity) predicate.Entity {
	return predicate.Entity(sql.NotPredicates(p))
}
