// Code generated by ent, DO NOT EDIT.

package metadatasuggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// ObjectID applies equality check predicate on the "object_id" field. It's identical to ObjectIDEQ.
func ObjectID(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldObjectID, v))
}

// Field applies equality check predicate on the "field" field. It's identical to FieldEQ.
func Field(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldField, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldReasoning, v))
}

// Pattern applies equality check predicate on the "pattern" field. It's identical to PatternEQ.
func Pattern(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldPattern, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldUpdatedAt, v))
}

// ObjectIDEQ applies the EQ predicate on the "object_id" field.
func ObjectIDEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldObjectID, v))
}

// ObjectIDNEQ applies the NEQ predicate on the "object_id" field.
func ObjectIDNEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldObjectID, v))
}

// ObjectIDIn applies the In predicate on the "object_id" field.
func ObjectIDIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldObjectID, vs...))
}

// ObjectIDNotIn applies the NotIn predicate on the "object_id" field.
func ObjectIDNotIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldObjectID, vs...))
}

// ObjectIDGT applies the GT predicate on the "object_id" field.
func ObjectIDGT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldObjectID, v))
}

// ObjectIDGTE applies the GTE predicate on the "object_id" field.
func ObjectIDGTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldObjectID, v))
}

// ObjectIDLT applies the LT predicate on the "object_id" field.
func ObjectIDLT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldObjectID, v))
}

// ObjectIDLTE applies the LTE predicate on the "object_id" field.
func ObjectIDLTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldObjectID, v))
}

// ObjectIDContains applies the Contains predicate on the "object_id" field.
func ObjectIDContains(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContains(FieldObjectID, v))
}

// ObjectIDHasPrefix applies the HasPrefix predicate on the "object_id" field.
func ObjectIDHasPrefix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasPrefix(FieldObjectID, v))
}

// ObjectIDHasSuffix applies the HasSuffix predicate on the "object_id" field.
func ObjectIDHasSuffix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasSuffix(FieldObjectID, v))
}

// ObjectIDEqualFold applies the EqualFold predicate on the "object_id" field.
func ObjectIDEqualFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEqualFold(FieldObjectID, v))
}

// ObjectIDContainsFold applies the ContainsFold predicate on the "object_id" field.
func ObjectIDContainsFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContainsFold(FieldObjectID, v))
}

// FieldEQ applies the EQ predicate on the "field" field.
func FieldEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldField, v))
}

// FieldNEQ applies the NEQ predicate on the "field" field.
func FieldNEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldField, v))
}

// FieldIn applies the In predicate on the "field" field.
func FieldIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldField, vs...))
}

// FieldNotIn applies the NotIn predicate on the "field" field.
func FieldNotIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldField, vs...))
}

// FieldGT applies the GT predicate on the "field" field.
func FieldGT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldField, v))
}

// FieldGTE applies the GTE predicate on the "field" field.
func FieldGTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldField, v))
}

// FieldLT applies the LT predicate on the "field" field.
func FieldLT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldField, v))
}

// FieldLTE applies the LTE predicate on the "field" field.
func FieldLTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldField, v))
}

// FieldContains applies the Contains predicate on the "field" field.
func FieldContains(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContains(FieldField, v))
}

// FieldHasPrefix applies the HasPrefix predicate on the "field" field.
func FieldHasPrefix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasPrefix(FieldField, v))
}

// FieldHasSuffix applies the HasSuffix predicate on the "field" field.
func FieldHasSuffix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasSuffix(FieldField, v))
}

// FieldEqualFold applies the EqualFold predicate on the "field" field.
func FieldEqualFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEqualFold(FieldField, v))
}

// FieldContainsFold applies the ContainsFold predicate on the "field" field.
func FieldContainsFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContainsFold(FieldField, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldConfidence, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContainsFold(FieldReasoning, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldSource, vs...))
}

// PatternEQ applies the EQ predicate on the "pattern" field.
func PatternEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldPattern, v))
}

// PatternNEQ applies the NEQ predicate on the "pattern" field.
func PatternNEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldPattern, v))
}

// PatternIn applies the In predicate on the "pattern" field.
func PatternIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldPattern, vs...))
}

// PatternNotIn applies the NotIn predicate on the "pattern" field.
func PatternNotIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldPattern, vs...))
}

// PatternGT applies the GT predicate on the "pattern" field.
func PatternGT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldPattern, v))
}

// PatternGTE applies the GTE predicate on the "pattern" field.
func PatternGTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldPattern, v))
}

// PatternLT applies the LT predicate on the "pattern" field.
func PatternLT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldPattern, v))
}

// PatternLTE applies the LTE predicate on the "pattern" field.
func PatternLTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldPattern, v))
}

// PatternContains applies the Contains predicate on the "pattern" field.
func PatternContains(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContains(FieldPattern, v))
}

// PatternHasPrefix applies the HasPrefix predicate on the "pattern" field.
func PatternHasPrefix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasPrefix(FieldPattern, v))
}

// PatternHasSuffix applies the HasSuffix predicate on the "pattern" field.
func PatternHasSuffix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasSuffix(FieldPattern, v))
}

// PatternIsNil applies the IsNil predicate on the "pattern" field.
func PatternIsNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIsNull(FieldPattern))
}

// PatternNotNil applies the NotNil predicate on the "pattern" field.
func PatternNotNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotNull(FieldPattern))
}

// PatternEqualFold applies the EqualFold predicate on the "pattern" field.
func PatternEqualFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEqualFold(FieldPattern, v))
}

// PatternContainsFold applies the ContainsFold predicate on the "pattern" field.
func PatternContainsFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContainsFold(FieldPattern, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldStatus, vs...))
}

// ModifiedValueIsNil applies the IsNil predicate on the "modified_value" field.
func ModifiedValueIsNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIsNull(FieldModifiedValue))
}

// ModifiedValueNotNil applies the NotNil predicate on the "modified_value" field.
func ModifiedValueNotNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotNull(FieldModifiedValue))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldContainsFold(FieldReviewedBy, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.FieldNotNull(FieldReviewedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MetadataSuggestion) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MetadataSuggestion) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MetadataSuggestion) predicate.MetadataSuggestion {
	return predicate.MetadataSuggestion(sql.NotPredicates(p))
}
