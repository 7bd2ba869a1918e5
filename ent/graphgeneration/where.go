// Code generated by ent, DO NOT EDIT.

package graphgeneration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldCreatedAt, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldNumber, v))
}

// Modularity applies equality check predicate on the "modularity" field. It's identical to ModularityEQ.
func Modularity(v float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldModularity, v))
}

// Levels applies equality check predicate on the "levels" field. It's identical to LevelsEQ.
func Levels(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldLevels, v))
}

// CommunityCount applies equality check predicate on the "community_count" field. It's identical to CommunityCountEQ.
func CommunityCount(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldCommunityCount, v))
}

// EntityCount applies equality check predicate on the "entity_count" field. It's identical to EntityCountEQ.
func EntityCount(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldEntityCount, v))
}

// BudgetExceeded applies equality check predicate on the "budget_exceeded" field. It's identical to BudgetExceededEQ.
func BudgetExceeded(v bool) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldBudgetExceeded, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLTE(FieldCreatedAt, v))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v int64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLTE(FieldNumber, v))
}

// ModularityEQ applies the EQ predicate on the "modularity" field.
func ModularityEQ(v float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldModularity, v))
}

// ModularityNEQ applies the NEQ predicate on the "modularity" field.
func ModularityNEQ(v float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNEQ(FieldModularity, v))
}

// ModularityIn applies the In predicate on the "modularity" field.
func ModularityIn(vs ...float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldIn(FieldModularity, vs...))
}

// ModularityNotIn applies the NotIn predicate on the "modularity" field.
func ModularityNotIn(vs ...float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNotIn(FieldModularity, vs...))
}

// ModularityGT applies the GT predicate on the "modularity" field.
func ModularityGT(v float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGT(FieldModularity, v))
}

// ModularityGTE applies the GTE predicate on the "modularity" field.
func ModularityGTE(v float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGTE(FieldModularity, v))
}

// ModularityLT applies the LT predicate on the "modularity" field.
func ModularityLT(v float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLT(FieldModularity, v))
}

// ModularityLTE applies the LTE predicate on the "modularity" field.
func ModularityLTE(v float64) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLTE(FieldModularity, v))
}

// LevelsEQ applies the EQ predicate on the "levels" field.
func LevelsEQ(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldLevels, v))
}

// LevelsNEQ applies the NEQ predicate on the "levels" field.
func LevelsNEQ(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNEQ(FieldLevels, v))
}

// LevelsIn applies the In predicate on the "levels" field.
func LevelsIn(vs ...int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldIn(FieldLevels, vs...))
}

// LevelsNotIn applies the NotIn predicate on the "levels" field.
func LevelsNotIn(vs ...int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNotIn(FieldLevels, vs...))
}

// LevelsGT applies the GT predicate on the "levels" field.
func LevelsGT(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGT(FieldLevels, v))
}

// LevelsGTE applies the GTE predicate on the "levels" field.
func LevelsGTE(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGTE(FieldLevels, v))
}

// LevelsLT applies the LT predicate on the "levels" field.
func LevelsLT(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLT(FieldLevels, v))
}

// LevelsLTE applies the LTE predicate on the "levels" field.
func LevelsLTE(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLTE(FieldLevels, v))
}

// CommunityCountEQ applies the EQ predicate on the "community_count" field.
func CommunityCountEQ(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldCommunityCount, v))
}

// CommunityCountNEQ applies the NEQ predicate on the "community_count" field.
func CommunityCountNEQ(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNEQ(FieldCommunityCount, v))
}

// CommunityCountIn applies the In predicate on the "community_count" field.
func CommunityCountIn(vs ...int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldIn(FieldCommunityCount, vs...))
}

// CommunityCountNotIn applies the NotIn predicate on the "community_count" field.
func CommunityCountNotIn(vs ...int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNotIn(FieldCommunityCount, vs...))
}

// CommunityCountGT applies the GT predicate on the "community_count" field.
func CommunityCountGT(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGT(FieldCommunityCount, v))
}

// CommunityCountGTE applies the GTE predicate on the "community_count" field.
func CommunityCountGTE(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGTE(FieldCommunityCount, v))
}

// CommunityCountLT applies the LT predicate on the "community_count" field.
func CommunityCountLT(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLT(FieldCommunityCount, v))
}

// CommunityCountLTE applies the LTE predicate on the "community_count" field.
func CommunityCountLTE(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLTE(FieldCommunityCount, v))
}

// EntityCountEQ applies the EQ predicate on the "entity_count" field.
func EntityCountEQ(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldEntityCount, v))
}

// EntityCountNEQ applies the NEQ predicate on the "entity_count" field.
func EntityCountNEQ(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNEQ(FieldEntityCount, v))
}

// EntityCountIn applies the In predicate on the "entity_count" field.
func EntityCountIn(vs ...int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldIn(FieldEntityCount, vs...))
}

// EntityCountNotIn applies the NotIn predicate on the "entity_count" field.
func EntityCountNotIn(vs ...int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNotIn(FieldEntityCount, vs...))
}

// EntityCountGT applies the GT predicate on the "entity_count" field.
func EntityCountGT(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGT(FieldEntityCount, v))
}

// EntityCountGTE applies the GTE predicate on the "entity_count" field.
func EntityCountGTE(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldGTE(FieldEntityCount, v))
}

// EntityCountLT applies the LT predicate on the "entity_count" field.
func EntityCountLT(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLT(FieldEntityCount, v))
}

// EntityCountLTE applies the LTE predicate on the "entity_count" field.
func EntityCountLTE(v int) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldLTE(FieldEntityCount, v))
}

// BudgetExceededEQ applies the EQ predicate on the "budget_exceeded" field.
func BudgetExceededEQ(v bool) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldEQ(FieldBudgetExceeded, v))
}

// BudgetExceededNEQ applies the NEQ predicate on the "budget_exceeded" field.
func BudgetExceededNEQ(v bool) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.FieldNEQ(FieldBudgetExceeded, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphGeneration) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphGeneration) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphGeneration) predicate.GraphGeneration {
	return predicate.GraphGeneration(sql.NotPredicates(p))
}
