// Code generated by ent, DO NOT EDIT.

package entitycommunitymembership

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldCreatedAt, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldEntityID, v))
}

// CommunityID applies equality check predicate on the "community_id" field. It's identical to CommunityIDEQ.
func CommunityID(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldCommunityID, v))
}

// MembershipScore applies equality check predicate on the "membership_score" field. It's identical to MembershipScoreEQ.
func MembershipScore(v float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldMembershipScore, v))
}

// Generation applies equality check predicate on the "generation" field. It's identical to GenerationEQ.
func Generation(v int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldGeneration, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLTE(FieldCreatedAt, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldContainsFold(FieldEntityID, v))
}

// CommunityIDEQ applies the EQ predicate on the "community_id" field.
func CommunityIDEQ(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldCommunityID, v))
}

// CommunityIDNEQ applies the NEQ predicate on the "community_id" field.
func CommunityIDNEQ(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNEQ(FieldCommunityID, v))
}

// CommunityIDIn applies the In predicate on the "community_id" field.
func CommunityIDIn(vs ...string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldIn(FieldCommunityID, vs...))
}

// CommunityIDNotIn applies the NotIn predicate on the "community_id" field.
func CommunityIDNotIn(vs ...string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNotIn(FieldCommunityID, vs...))
}

// CommunityIDGT applies the GT predicate on the "community_id" field.
func CommunityIDGT(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGT(FieldCommunityID, v))
}

// CommunityIDGTE applies the GTE predicate on the "community_id" field.
func CommunityIDGTE(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGTE(FieldCommunityID, v))
}

// CommunityIDLT applies the LT predicate on the "community_id" field.
func CommunityIDLT(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLT(FieldCommunityID, v))
}

// CommunityIDLTE applies the LTE predicate on the "community_id" field.
func CommunityIDLTE(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLTE(FieldCommunityID, v))
}

// CommunityIDContains applies the Contains predicate on the "community_id" field.
func CommunityIDContains(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldContains(FieldCommunityID, v))
}

// CommunityIDHasPrefix applies the HasPrefix predicate on the "community_id" field.
func CommunityIDHasPrefix(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldHasPrefix(FieldCommunityID, v))
}

// CommunityIDHasSuffix applies the HasSuffix predicate on the "community_id" field.
func CommunityIDHasSuffix(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldHasSuffix(FieldCommunityID, v))
}

// CommunityIDEqualFold applies the EqualFold predicate on the "community_id" field.
func CommunityIDEqualFold(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEqualFold(FieldCommunityID, v))
}

// CommunityIDContainsFold applies the ContainsFold predicate on the "community_id" field.
func CommunityIDContainsFold(v string) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldContainsFold(FieldCommunityID, v))
}

// MembershipScoreEQ applies the EQ predicate on the "membership_score" field.
func MembershipScoreEQ(v float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldMembershipScore, v))
}

// MembershipScoreNEQ applies the NEQ predicate on the "membership_score" field.
func MembershipScoreNEQ(v float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNEQ(FieldMembershipScore, v))
}

// MembershipScoreIn applies the In predicate on the "membership_score" field.
func MembershipScoreIn(vs ...float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldIn(FieldMembershipScore, vs...))
}

// MembershipScoreNotIn applies the NotIn predicate on the "membership_score" field.
func MembershipScoreNotIn(vs ...float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNotIn(FieldMembershipScore, vs...))
}

// MembershipScoreGT applies the GT predicate on the "membership_score" field.
func MembershipScoreGT(v float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGT(FieldMembershipScore, v))
}

// MembershipScoreGTE applies the GTE predicate on the "membership_score" field.
func MembershipScoreGTE(v float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGTE(FieldMembershipScore, v))
}

// MembershipScoreLT applies the LT predicate on the "membership_score" field.
func MembershipScoreLT(v float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLT(FieldMembershipScore, v))
}

// MembershipScoreLTE applies the LTE predicate on the "membership_score" field.
func MembershipScoreLTE(v float64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLTE(FieldMembershipScore, v))
}

// GenerationEQ applies the EQ predicate on the "generation" field.
func GenerationEQ(v int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldEQ(FieldGeneration, v))
}

// GenerationNEQ applies the NEQ predicate on the "generation" field.
func GenerationNEQ(v int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNEQ(FieldGeneration, v))
}

// GenerationIn applies the In predicate on the "generation" field.
func GenerationIn(vs ...int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldIn(FieldGeneration, vs...))
}

// GenerationNotIn applies the NotIn predicate on the "generation" field.
func GenerationNotIn(vs ...int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldNotIn(FieldGeneration, vs...))
}

// GenerationGT applies the GT predicate on the "generation" field.
func GenerationGT(v int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGT(FieldGeneration, v))
}

// GenerationGTE applies the GTE predicate on the "generation" field.
func GenerationGTE(v int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldGTE(FieldGeneration, v))
}

// GenerationLT applies the LT predicate on the "generation" field.
func GenerationLT(v int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLT(FieldGeneration, v))
}

// GenerationLTE applies the LTE predicate on the "generation" field.
func GenerationLTE(v int64) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.FieldLTE(FieldGeneration, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityCommunityMembership) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityCommunityMembership) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityCommunityMembership) predicate.EntityCommunityMembership {
	return predicate.EntityCommunityMembership(sql.NotPredicates(p))
}
