// Code generated by ent, DO NOT EDIT.

package suggestiontrust

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldUpdatedAt, v))
}

// Field applies equality check predicate on the "field" field. It's identical to FieldEQ.
func Field(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldField, v))
}

// Pattern applies equality check predicate on the "pattern" field. It's identical to PatternEQ.
func Pattern(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldPattern, v))
}

// Multiplier applies equality check predicate on the "multiplier" field. It's identical to MultiplierEQ.
func Multiplier(v float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldMultiplier, v))
}

// AcceptedCount applies equality check predicate on the "accepted_count" field. It's identical to AcceptedCountEQ.
func AcceptedCount(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldAcceptedCount, v))
}

// RejectedCount applies equality check predicate on the "rejected_count" field. It's identical to RejectedCountEQ.
func RejectedCount(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldRejectedCount, v))
}

// ModifiedCount applies equality check predicate on the "modified_count" field. It's identical to ModifiedCountEQ.
func ModifiedCount(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldModifiedCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldUpdatedAt, v))
}

// FieldEQ applies the EQ predicate on the "field" field.
func FieldEQ(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldField, v))
}

// FieldNEQ applies the NEQ predicate on the "field" field.
func FieldNEQ(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldField, v))
}

// FieldIn applies the In predicate on the "field" field.
func FieldIn(vs ...string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldField, vs...))
}

// FieldNotIn applies the NotIn predicate on the "field" field.
func FieldNotIn(vs ...string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldField, vs...))
}

// FieldGT applies the GT predicate on the "field" field.
func FieldGT(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldField, v))
}

// FieldGTE applies the GTE predicate on the "field" field.
func FieldGTE(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldField, v))
}

// FieldLT applies the LT predicate on the "field" field.
func FieldLT(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldField, v))
}

// FieldLTE applies the LTE predicate on the "field" field.
func FieldLTE(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldField, v))
}

// FieldContains applies the Contains predicate on the "field" field.
func FieldContains(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldContains(FieldField, v))
}

// FieldHasPrefix applies the HasPrefix predicate on the "field" field.
func FieldHasPrefix(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldHasPrefix(FieldField, v))
}

// FieldHasSuffix applies the HasSuffix predicate on the "field" field.
func FieldHasSuffix(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldHasSuffix(FieldField, v))
}

// FieldEqualFold applies the EqualFold predicate on the "field" field.
func FieldEqualFold(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEqualFold(FieldField, v))
}

// FieldContainsFold applies the ContainsFold predicate on the "field" field.
func FieldContainsFold(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldContainsFold(FieldField, v))
}

// PatternEQ applies the EQ predicate on the "pattern" field.
func PatternEQ(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldPattern, v))
}

// PatternNEQ applies the NEQ predicate on the "pattern" field.
func PatternNEQ(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldPattern, v))
}

// PatternIn applies the In predicate on the "pattern" field.
func PatternIn(vs ...string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldPattern, vs...))
}

// PatternNotIn applies the NotIn predicate on the "pattern" field.
func PatternNotIn(vs ...string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldPattern, vs...))
}

// PatternGT applies the GT predicate on the "pattern" field.
func PatternGT(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldPattern, v))
}

// PatternGTE applies the GTE predicate on the "pattern" field.
func PatternGTE(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldPattern, v))
}

// PatternLT applies the LT predicate on the "pattern" field.
func PatternLT(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldPattern, v))
}

// PatternLTE applies the LTE predicate on the "pattern" field.
func PatternLTE(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldPattern, v))
}

// PatternContains applies the Contains predicate on the "pattern" field.
func PatternContains(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldContains(FieldPattern, v))
}

// PatternHasPrefix applies the HasPrefix predicate on the "pattern" field.
func PatternHasPrefix(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldHasPrefix(FieldPattern, v))
}

// PatternHasSuffix applies the HasSuffix predicate on the "pattern" field.
func PatternHasSuffix(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldHasSuffix(FieldPattern, v))
}

// PatternEqualFold applies the EqualFold predicate on the "pattern" field.
func PatternEqualFold(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEqualFold(FieldPattern, v))
}

// PatternContainsFold applies the ContainsFold predicate on the "pattern" field.
func PatternContainsFold(v string) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldContainsFold(FieldPattern, v))
}

// MultiplierEQ applies the EQ predicate on the "multiplier" field.
func MultiplierEQ(v float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldMultiplier, v))
}

// MultiplierNEQ applies the NEQ predicate on the "multiplier" field.
func MultiplierNEQ(v float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldMultiplier, v))
}

// MultiplierIn applies the In predicate on the "multiplier" field.
func MultiplierIn(vs ...float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldMultiplier, vs...))
}

// MultiplierNotIn applies the NotIn predicate on the "multiplier" field.
func MultiplierNotIn(vs ...float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldMultiplier, vs...))
}

// MultiplierGT applies the GT predicate on the "multiplier" field.
func MultiplierGT(v float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldMultiplier, v))
}

// MultiplierGTE applies the GTE predicate on the "multiplier" field.
func MultiplierGTE(v float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldMultiplier, v))
}

// MultiplierLT applies the LT predicate on the "multiplier" field.
func MultiplierLT(v float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldMultiplier, v))
}

// MultiplierLTE applies the LTE predicate on the "multiplier" field.
func MultiplierLTE(v float64) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldMultiplier, v))
}

// AcceptedCountEQ applies the EQ predicate on the "accepted_count" field.
func AcceptedCountEQ(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldAcceptedCount, v))
}

// AcceptedCountNEQ applies the NEQ predicate on the "accepted_count" field.
func AcceptedCountNEQ(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldAcceptedCount, v))
}

// AcceptedCountIn applies the In predicate on the "accepted_count" field.
func AcceptedCountIn(vs ...int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldAcceptedCount, vs...))
}

// AcceptedCountNotIn applies the NotIn predicate on the "accepted_count" field.
func AcceptedCountNotIn(vs ...int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldAcceptedCount, vs...))
}

// AcceptedCountGT applies the GT predicate on the "accepted_count" field.
func AcceptedCountGT(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldAcceptedCount, v))
}

// AcceptedCountGTE applies the GTE predicate on the "accepted_count" field.
func AcceptedCountGTE(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldAcceptedCount, v))
}

// AcceptedCountLT applies the LT predicate on the "accepted_count" field.
func AcceptedCountLT(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldAcceptedCount, v))
}

// AcceptedCountLTE applies the LTE predicate on the "accepted_count" field.
func AcceptedCountLTE(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldAcceptedCount, v))
}

// RejectedCountEQ applies the EQ predicate on the "rejected_count" field.
func RejectedCountEQ(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldRejectedCount, v))
}

// RejectedCountNEQ applies the NEQ predicate on the "rejected_count" field.
func RejectedCountNEQ(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldRejectedCount, v))
}

// RejectedCountIn applies the In predicate on the "rejected_count" field.
func RejectedCountIn(vs ...int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldRejectedCount, vs...))
}

// RejectedCountNotIn applies the NotIn predicate on the "rejected_count" field.
func RejectedCountNotIn(vs ...int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldRejectedCount, vs...))
}

// RejectedCountGT applies the GT predicate on the "rejected_count" field.
func RejectedCountGT(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldRejectedCount, v))
}

// RejectedCountGTE applies the GTE predicate on the "rejected_count" field.
func RejectedCountGTE(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldRejectedCount, v))
}

// RejectedCountLT applies the LT predicate on the "rejected_count" field.
func RejectedCountLT(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldRejectedCount, v))
}

// RejectedCountLTE applies the LTE predicate on the "rejected_count" field.
func RejectedCountLTE(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldRejectedCount, v))
}

// ModifiedCountEQ applies the EQ predicate on the "modified_count" field.
func ModifiedCountEQ(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldEQ(FieldModifiedCount, v))
}

// ModifiedCountNEQ applies the NEQ predicate on the "modified_count" field.
func ModifiedCountNEQ(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNEQ(FieldModifiedCount, v))
}

// ModifiedCountIn applies the In predicate on the "modified_count" field.
func ModifiedCountIn(vs ...int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldIn(FieldModifiedCount, vs...))
}

// ModifiedCountNotIn applies the NotIn predicate on the "modified_count" field.
func ModifiedCountNotIn(vs ...int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldNotIn(FieldModifiedCount, vs...))
}

// ModifiedCountGT applies the GT predicate on the "modified_count" field.
func ModifiedCountGT(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGT(FieldModifiedCount, v))
}

// ModifiedCountGTE applies the GTE predicate on the "modified_count" field.
func ModifiedCountGTE(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldGTE(FieldModifiedCount, v))
}

// ModifiedCountLT applies the LT predicate on the "modified_count" field.
func ModifiedCountLT(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLT(FieldModifiedCount, v))
}

// ModifiedCountLTE applies the LTE predicate on the "modified_count" field.
func ModifiedCountLTE(v int) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.FieldLTE(FieldModifiedCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SuggestionTrust) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SuggestionTrust) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SuggestionTrust) predicate.SuggestionTrust {
	return predicate.SuggestionTrust(sql.NotPredicates(p))
}
