// Code generated by ent, DO NOT EDIT.

package informationdomain

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldDescription, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldOrganizationID, v))
}

// OwnerUserID applies equality check predicate on the "owner_user_id" field. It's identical to OwnerUserIDEQ.
func OwnerUserID(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldOwnerUserID, v))
}

// ParentDomainID applies equality check predicate on the "parent_domain_id" field. It's identical to ParentDomainIDEQ.
func ParentDomainID(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldParentDomainID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContainsFold(FieldDescription, v))
}

// DomainTypeEQ applies the EQ predicate on the "domain_type" field.
func DomainTypeEQ(v DomainType) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldDomainType, v))
}

// DomainTypeNEQ applies the NEQ predicate on the "domain_type" field.
func DomainTypeNEQ(v DomainType) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldDomainType, v))
}

// DomainTypeIn applies the In predicate on the "domain_type" field.
func DomainTypeIn(vs ...DomainType) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldDomainType, vs...))
}

// DomainTypeNotIn applies the NotIn predicate on the "domain_type" field.
func DomainTypeNotIn(vs ...DomainType) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldDomainType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldStatus, vs...))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContainsFold(FieldOrganizationID, v))
}

// OwnerUserIDEQ applies the EQ predicate on the "owner_user_id" field.
func OwnerUserIDEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerUserIDNEQ applies the NEQ predicate on the "owner_user_id" field.
func OwnerUserIDNEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldOwnerUserID, v))
}

// OwnerUserIDIn applies the In predicate on the "owner_user_id" field.
func OwnerUserIDIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDNotIn applies the NotIn predicate on the "owner_user_id" field.
func OwnerUserIDNotIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDGT applies the GT predicate on the "owner_user_id" field.
func OwnerUserIDGT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGT(FieldOwnerUserID, v))
}

// OwnerUserIDGTE applies the GTE predicate on the "owner_user_id" field.
func OwnerUserIDGTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGTE(FieldOwnerUserID, v))
}

// OwnerUserIDLT applies the LT predicate on the "owner_user_id" field.
func OwnerUserIDLT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLT(FieldOwnerUserID, v))
}

// OwnerUserIDLTE applies the LTE predicate on the "owner_user_id" field.
func OwnerUserIDLTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLTE(FieldOwnerUserID, v))
}

// OwnerUserIDContains applies the Contains predicate on the "owner_user_id" field.
func OwnerUserIDContains(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContains(FieldOwnerUserID, v))
}

// OwnerUserIDHasPrefix applies the HasPrefix predicate on the "owner_user_id" field.
func OwnerUserIDHasPrefix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasPrefix(FieldOwnerUserID, v))
}

// OwnerUserIDHasSuffix applies the HasSuffix predicate on the "owner_user_id" field.
func OwnerUserIDHasSuffix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasSuffix(FieldOwnerUserID, v))
}

// OwnerUserIDIsNil applies the IsNil predicate on the "owner_user_id" field.
func OwnerUserIDIsNil() predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIsNull(FieldOwnerUserID))
}

// OwnerUserIDNotNil applies the NotNil predicate on the "owner_user_id" field.
func OwnerUserIDNotNil() predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotNull(FieldOwnerUserID))
}

// OwnerUserIDEqualFold applies the EqualFold predicate on the "owner_user_id" field.
func OwnerUserIDEqualFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEqualFold(FieldOwnerUserID, v))
}

// OwnerUserIDContainsFold applies the ContainsFold predicate on the "owner_user_id" field.
func OwnerUserIDContainsFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContainsFold(FieldOwnerUserID, v))
}

// ParentDomainIDEQ applies the EQ predicate on the "parent_domain_id" field.
func ParentDomainIDEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEQ(FieldParentDomainID, v))
}

// ParentDomainIDNEQ applies the NEQ predicate on the "parent_domain_id" field.
func ParentDomainIDNEQ(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNEQ(FieldParentDomainID, v))
}

// ParentDomainIDIn applies the In predicate on the "parent_domain_id" field.
func ParentDomainIDIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIn(FieldParentDomainID, vs...))
}

// ParentDomainIDNotIn applies the NotIn predicate on the "parent_domain_id" field.
func ParentDomainIDNotIn(vs ...string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotIn(FieldParentDomainID, vs...))
}

// ParentDomainIDGT applies the GT predicate on the "parent_domain_id" field.
func ParentDomainIDGT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGT(FieldParentDomainID, v))
}

// ParentDomainIDGTE applies the GTE predicate on the "parent_domain_id" field.
func ParentDomainIDGTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldGTE(FieldParentDomainID, v))
}

// ParentDomainIDLT applies the LT predicate on the "parent_domain_id" field.
func ParentDomainIDLT(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLT(FieldParentDomainID, v))
}

// ParentDomainIDLTE applies the LTE predicate on the "parent_domain_id" field.
func ParentDomainIDLTE(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldLTE(FieldParentDomainID, v))
}

// ParentDomainIDContains applies the Contains predicate on the "parent_domain_id" field.
func ParentDomainIDContains(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContains(FieldParentDomainID, v))
}

// ParentDomainIDHasPrefix applies the HasPrefix predicate on the "parent_domain_id" field.
func ParentDomainIDHasPrefix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasPrefix(FieldParentDomainID, v))
}

// ParentDomainIDHasSuffix applies the HasSuffix predicate on the "parent_domain_id" field.
func ParentDomainIDHasSuffix(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldHasSuffix(FieldParentDomainID, v))
}

// ParentDomainIDIsNil applies the IsNil predicate on the "parent_domain_id" field.
func ParentDomainIDIsNil() predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIsNull(FieldParentDomainID))
}

// ParentDomainIDNotNil applies the NotNil predicate on the "parent_domain_id" field.
func ParentDomainIDNotNil() predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotNull(FieldParentDomainID))
}

// ParentDomainIDEqualFold applies the EqualFold predicate on the "parent_domain_id" field.
func ParentDomainIDEqualFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldEqualFold(FieldParentDomainID, v))
}

// ParentDomainIDContainsFold applies the ContainsFold predicate on the "parent_domain_id" field.
func ParentDomainIDContainsFold(v string) predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldContainsFold(FieldParentDomainID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.InformationDomain {
	return predicate.InformationDomain(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InformationDomain) predicate.InformationDomain {
	return predicate.InformationDomain(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InformationDomain) predicate.InformationDomain {
	return predicate.InformationDomain(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InformationDomain) predicate.InformationDomain {
	return predicate.InformationDomain(sql.NotPredicates(p))
}
