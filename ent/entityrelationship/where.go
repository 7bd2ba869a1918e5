// Code generated by ent, DO NOT EDIT.

package entityrelationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceEntityID applies equality check predicate on the "source_entity_id" field. It's identical to SourceEntityIDEQ.
func SourceEntityID(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldSourceEntityID, v))
}

// TargetEntityID applies equality check predicate on the "target_entity_id" field. It's identical to TargetEntityIDEQ.
func TargetEntityID(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldTargetEntityID, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldWeight, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldConfidence, v))
}

// Observations applies equality check predicate on the "observations" field. It's identical to ObservationsEQ.
func Observations(v int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldObservations, v))
}

// LastObjectID applies equality check predicate on the "last_object_id" field. It's identical to LastObjectIDEQ.
func LastObjectID(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldLastObjectID, v))
}

// SourceDomainID applies equality check predicate on the "source_domain_id" field. It's identical to SourceDomainIDEQ.
func SourceDomainID(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldSourceDomainID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldUpdatedAt, v))
}

// SourceEntityIDEQ applies the EQ predicate on the "source_entity_id" field.
func SourceEntityIDEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldSourceEntityID, v))
}

// SourceEntityIDNEQ applies the NEQ predicate on the "source_entity_id" field.
func SourceEntityIDNEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldSourceEntityID, v))
}

// SourceEntityIDIn applies the In predicate on the "source_entity_id" field.
func SourceEntityIDIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldSourceEntityID, vs...))
}

// SourceEntityIDNotIn applies the NotIn predicate on the "source_entity_id" field.
func SourceEntityIDNotIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldSourceEntityID, vs...))
}

// SourceEntityIDGT applies the GT predicate on the "source_entity_id" field.
func SourceEntityIDGT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldSourceEntityID, v))
}

// SourceEntityIDGTE applies the GTE predicate on the "source_entity_id" field.
func SourceEntityIDGTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldSourceEntityID, v))
}

// SourceEntityIDLT applies the LT predicate on the "source_entity_id" field.
func SourceEntityIDLT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldSourceEntityID, v))
}

// SourceEntityIDLTE applies the LTE predicate on the "source_entity_id" field.
func SourceEntityIDLTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldSourceEntityID, v))
}

// SourceEntityIDContains applies the Contains predicate on the "source_entity_id" field.
func SourceEntityIDContains(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContains(FieldSourceEntityID, v))
}

// SourceEntityIDHasPrefix applies the HasPrefix predicate on the "source_entity_id" field.
func SourceEntityIDHasPrefix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasPrefix(FieldSourceEntityID, v))
}

// SourceEntityIDHasSuffix applies the HasSuffix predicate on the "source_entity_id" field.
func SourceEntityIDHasSuffix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasSuffix(FieldSourceEntityID, v))
}

// SourceEntityIDEqualFold applies the EqualFold predicate on the "source_entity_id" field.
func SourceEntityIDEqualFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldSourceEntityID, v))
}

// SourceEntityIDContainsFold applies the ContainsFold predicate on the "source_entity_id" field.
func SourceEntityIDContainsFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldSourceEntityID, v))
}

// TargetEntityIDEQ applies the EQ predicate on the "target_entity_id" field.
func TargetEntityIDEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldTargetEntityID, v))
}

// TargetEntityIDNEQ applies the NEQ predicate on the "target_entity_id" field.
func TargetEntityIDNEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldTargetEntityID, v))
}

// TargetEntityIDIn applies the In predicate on the "target_entity_id" field.
func TargetEntityIDIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldTargetEntityID, vs...))
}

// TargetEntityIDNotIn applies the NotIn predicate on the "target_entity_id" field.
func TargetEntityIDNotIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldTargetEntityID, vs...))
}

// TargetEntityIDGT applies the GT predicate on the "target_entity_id" field.
func TargetEntityIDGT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldTargetEntityID, v))
}

// TargetEntityIDGTE applies the GTE predicate on the "target_entity_id" field.
func TargetEntityIDGTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldTargetEntityID, v))
}

// TargetEntityIDLT applies the LT predicate on the "target_entity_id" field.
func TargetEntityIDLT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldTargetEntityID, v))
}

// TargetEntityIDLTE applies the LTE predicate on the "target_entity_id" field.
func TargetEntityIDLTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldTargetEntityID, v))
}

// TargetEntityIDContains applies the Contains predicate on the "target_entity_id" field.
func TargetEntityIDContains(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContains(FieldTargetEntityID, v))
}

// TargetEntityIDHasPrefix applies the HasPrefix predicate on the "target_entity_id" field.
func TargetEntityIDHasPrefix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasPrefix(FieldTargetEntityID, v))
}

// TargetEntityIDHasSuffix applies the HasSuffix predicate on the "target_entity_id" field.
func TargetEntityIDHasSuffix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasSuffix(FieldTargetEntityID, v))
}

// TargetEntityIDEqualFold applies the EqualFold predicate on the "target_entity_id" field.
func TargetEntityIDEqualFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldTargetEntityID, v))
}

// TargetEntityIDContainsFold applies the ContainsFold predicate on the "target_entity_id" field.
func TargetEntityIDContainsFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldTargetEntityID, v))
}

// RelationshipTypeEQ applies the EQ predicate on the "relationship_type" field.
func RelationshipTypeEQ(v RelationshipType) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldRelationshipType, v))
}

// RelationshipTypeNEQ applies the NEQ predicate on the "relationship_type" field.
func RelationshipTypeNEQ(v RelationshipType) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldRelationshipType, v))
}

// RelationshipTypeIn applies the In predicate on the "relationship_type" field.
func RelationshipTypeIn(vs ...RelationshipType) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldRelationshipType, vs...))
}

// RelationshipTypeNotIn applies the NotIn predicate on the "relationship_type" field.
func RelationshipTypeNotIn(vs ...RelationshipType) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldRelationshipType, vs...))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldWeight, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldConfidence, v))
}

// ObservationsEQ applies the EQ predicate on the "observations" field.
func ObservationsEQ(v int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldObservations, v))
}

// ObservationsNEQ applies the NEQ predicate on the "observations" field.
func ObservationsNEQ(v int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldObservations, v))
}

// ObservationsIn applies the In predicate on the "observations" field.
func ObservationsIn(vs ...int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldObservations, vs...))
}

// ObservationsNotIn applies the NotIn predicate on the "observations" field.
func ObservationsNotIn(vs ...int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldObservations, vs...))
}

// ObservationsGT applies the GT predicate on the "observations" field.
func ObservationsGT(v int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldObservations, v))
}

// ObservationsGTE applies the GTE predicate on the "observations" field.
func ObservationsGTE(v int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldObservations, v))
}

// ObservationsLT applies the LT predicate on the "observations" field.
func ObservationsLT(v int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldObservations, v))
}

// ObservationsLTE applies the LTE predicate on the "observations" field.
func ObservationsLTE(v int) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldObservations, v))
}

// LastObjectIDEQ applies the EQ predicate on the "last_object_id" field.
func LastObjectIDEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldLastObjectID, v))
}

// LastObjectIDNEQ applies the NEQ predicate on the "last_object_id" field.
func LastObjectIDNEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldLastObjectID, v))
}

// LastObjectIDIn applies the In predicate on the "last_object_id" field.
func LastObjectIDIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldLastObjectID, vs...))
}

// LastObjectIDNotIn applies the NotIn predicate on the "last_object_id" field.
func LastObjectIDNotIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldLastObjectID, vs...))
}

// LastObjectIDGT applies the GT predicate on the "last_object_id" field.
func LastObjectIDGT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldLastObjectID, v))
}

// LastObjectIDGTE applies the GTE predicate on the "last_object_id" field.
func LastObjectIDGTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldLastObjectID, v))
}

// LastObjectIDLT applies the LT predicate on the "last_object_id" field.
func LastObjectIDLT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldLastObjectID, v))
}

// LastObjectIDLTE applies the LTE predicate on the "last_object_id" field.
func LastObjectIDLTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldLastObjectID, v))
}

// LastObjectIDContains applies the Contains predicate on the "last_object_id" field.
func LastObjectIDContains(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContains(FieldLastObjectID, v))
}

// LastObjectIDHasPrefix applies the HasPrefix predicate on the "last_object_id" field.
func LastObjectIDHasPrefix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasPrefix(FieldLastObjectID, v))
}

// LastObjectIDHasSuffix applies the HasSuffix predicate on the "last_object_id" field.
func LastObjectIDHasSuffix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasSuffix(FieldLastObjectID, v))
}

// LastObjectIDIsNil applies the IsNil predicate on the "last_object_id" field.
func LastObjectIDIsNil() predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIsNull(FieldLastObjectID))
}

// LastObjectIDNotNil applies the NotNil predicate on the "last_object_id" field.
func LastObjectIDNotNil() predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotNull(FieldLastObjectID))
}

// LastObjectIDEqualFold applies the EqualFold predicate on the "last_object_id" field.
func LastObjectIDEqualFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldLastObjectID, v))
}

// LastObjectIDContainsFold applies the ContainsFold predicate on the "last_object_id" field.
func LastObjectIDContainsFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldLastObjectID, v))
}

// SourceDomainIDEQ applies the EQ predicate on the "source_domain_id" field.
func SourceDomainIDEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEQ(FieldSourceDomainID, v))
}

// SourceDomainIDNEQ applies the NEQ predicate on the "source_domain_id" field.
func SourceDomainIDNEQ(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNEQ(FieldSourceDomainID, v))
}

// SourceDomainIDIn applies the In predicate on the "source_domain_id" field.
func SourceDomainIDIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIn(FieldSourceDomainID, vs...))
}

// SourceDomainIDNotIn applies the NotIn predicate on the "source_domain_id" field.
func SourceDomainIDNotIn(vs ...string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotIn(FieldSourceDomainID, vs...))
}

// SourceDomainIDGT applies the GT predicate on the "source_domain_id" field.
func SourceDomainIDGT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGT(FieldSourceDomainID, v))
}

// SourceDomainIDGTE applies the GTE predicate on the "source_domain_id" field.
func SourceDomainIDGTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldGTE(FieldSourceDomainID, v))
}

// SourceDomainIDLT applies the LT predicate on the "source_domain_id" field.
func SourceDomainIDLT(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLT(FieldSourceDomainID, v))
}

// SourceDomainIDLTE applies the LTE predicate on the "source_domain_id" field.
func SourceDomainIDLTE(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldLTE(FieldSourceDomainID, v))
}

// SourceDomainIDContains applies the Contains predicate on the "source_domain_id" field.
func SourceDomainIDContains(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContains(FieldSourceDomainID, v))
}

// SourceDomainIDHasPrefix applies the HasPrefix predicate on the "source_domain_id" field.
func SourceDomainIDHasPrefix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasPrefix(FieldSourceDomainID, v))
}

// SourceDomainIDHasSuffix applies the HasSuffix predicate on the "source_domain_id" field.
func SourceDomainIDHasSuffix(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldHasSuffix(FieldSourceDomainID, v))
}

// SourceDomainIDIsNil applies the IsNil predicate on the "source_domain_id" field.
func SourceDomainIDIsNil() predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldIsNull(FieldSourceDomainID))
}

// SourceDomainIDNotNil applies the NotNil predicate on the "source_domain_id" field.
func SourceDomainIDNotNil() predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldNotNull(FieldSourceDomainID))
}

// SourceDomainIDEqualFold applies the EqualFold predicate on the "source_domain_id" field.
func SourceDomainIDEqualFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldEqualFold(FieldSourceDomainID, v))
}

// SourceDomainIDContainsFold applies the ContainsFold predicate on the "source_domain_id" field.
func SourceDomainIDContainsFold(v string) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.FieldContainsFold(FieldSourceDomainID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityRelationship) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityRelationship) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityRelationship) predicate.EntityRelationship {
	return predicate.EntityRelationship(sql.NotPredicates(p))
}
