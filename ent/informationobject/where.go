// Code generated by ent, DO NOT EDIT.

package informationobject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldUpdatedAt, v))
}

// DomainID applies equality check predicate on the "domain_id" field. It's identical to DomainIDEQ.
func DomainID(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldDomainID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldDescription, v))
}

// ContentLocation applies equality check predicate on the "content_location" field. It's identical to ContentLocationEQ.
func ContentLocation(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldContentLocation, v))
}

// ContentText applies equality check predicate on the "content_text" field. It's identical to ContentTextEQ.
func ContentText(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldContentText, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldMimeType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldFileSize, v))
}

// RetentionPeriod applies equality check predicate on the "retention_period" field. It's identical to RetentionPeriodEQ.
func RetentionPeriod(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldRetentionPeriod, v))
}

// RetentionTrigger applies equality check predicate on the "retention_trigger" field. It's identical to RetentionTriggerEQ.
func RetentionTrigger(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldRetentionTrigger, v))
}

// DestructionDate applies equality check predicate on the "destruction_date" field. It's identical to DestructionDateEQ.
func DestructionDate(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldDestructionDate, v))
}

// IsWooRelevant applies equality check predicate on the "is_woo_relevant" field. It's identical to IsWooRelevantEQ.
func IsWooRelevant(v bool) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldIsWooRelevant, v))
}

// WooPublicationDate applies equality check predicate on the "woo_publication_date" field. It's identical to WooPublicationDateEQ.
func WooPublicationDate(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldWooPublicationDate, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldVersion, v))
}

// PreviousVersionID applies equality check predicate on the "previous_version_id" field. It's identical to PreviousVersionIDEQ.
func PreviousVersionID(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldPreviousVersionID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldUpdatedAt, v))
}

// DomainIDEQ applies the EQ predicate on the "domain_id" field.
func DomainIDEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldDomainID, v))
}

// DomainIDNEQ applies the NEQ predicate on the "domain_id" field.
func DomainIDNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldDomainID, v))
}

// DomainIDIn applies the In predicate on the "domain_id" field.
func DomainIDIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldDomainID, vs...))
}

// DomainIDNotIn applies the NotIn predicate on the "domain_id" field.
func DomainIDNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldDomainID, vs...))
}

// DomainIDGT applies the GT predicate on the "domain_id" field.
func DomainIDGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldDomainID, v))
}

// DomainIDGTE applies the GTE predicate on the "domain_id" field.
func DomainIDGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldDomainID, v))
}

// DomainIDLT applies the LT predicate on the "domain_id" field.
func DomainIDLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldDomainID, v))
}

// DomainIDLTE applies the LTE predicate on the "domain_id" field.
func DomainIDLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldDomainID, v))
}

// DomainIDContains applies the Contains predicate on the "domain_id" field.
func DomainIDContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldDomainID, v))
}

// DomainIDHasPrefix applies the HasPrefix predicate on the "domain_id" field.
func DomainIDHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldDomainID, v))
}

// DomainIDHasSuffix applies the HasSuffix predicate on the "domain_id" field.
func DomainIDHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldDomainID, v))
}

// DomainIDEqualFold applies the EqualFold predicate on the "domain_id" field.
func DomainIDEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldDomainID, v))
}

// DomainIDContainsFold applies the ContainsFold predicate on the "domain_id" field.
func DomainIDContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldDomainID, v))
}

// ObjectTypeEQ applies the EQ predicate on the "object_type" field.
func ObjectTypeEQ(v ObjectType) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldObjectType, v))
}

// ObjectTypeNEQ applies the NEQ predicate on the "object_type" field.
func ObjectTypeNEQ(v ObjectType) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldObjectType, v))
}

// ObjectTypeIn applies the In predicate on the "object_type" field.
func ObjectTypeIn(vs ...ObjectType) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldObjectType, vs...))
}

// ObjectTypeNotIn applies the NotIn predicate on the "object_type" field.
func ObjectTypeNotIn(vs ...ObjectType) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldObjectType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldDescription, v))
}

// ContentLocationEQ applies the EQ predicate on the "content_location" field.
func ContentLocationEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldContentLocation, v))
}

// ContentLocationNEQ applies the NEQ predicate on the "content_location" field.
func ContentLocationNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldContentLocation, v))
}

// ContentLocationIn applies the In predicate on the "content_location" field.
func ContentLocationIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldContentLocation, vs...))
}

// ContentLocationNotIn applies the NotIn predicate on the "content_location" field.
func ContentLocationNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldContentLocation, vs...))
}

// ContentLocationGT applies the GT predicate on the "content_location" field.
func ContentLocationGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldContentLocation, v))
}

// ContentLocationGTE applies the GTE predicate on the "content_location" field.
func ContentLocationGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldContentLocation, v))
}

// ContentLocationLT applies the LT predicate on the "content_location" field.
func ContentLocationLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldContentLocation, v))
}

// ContentLocationLTE applies the LTE predicate on the "content_location" field.
func ContentLocationLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldContentLocation, v))
}

// ContentLocationContains applies the Contains predicate on the "content_location" field.
func ContentLocationContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldContentLocation, v))
}

// ContentLocationHasPrefix applies the HasPrefix predicate on the "content_location" field.
func ContentLocationHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldContentLocation, v))
}

// ContentLocationHasSuffix applies the HasSuffix predicate on the "content_location" field.
func ContentLocationHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldContentLocation, v))
}

// ContentLocationIsNil applies the IsNil predicate on the "content_location" field.
func ContentLocationIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldContentLocation))
}

// ContentLocationNotNil applies the NotNil predicate on the "content_location" field.
func ContentLocationNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldContentLocation))
}

// ContentLocationEqualFold applies the EqualFold predicate on the "content_location" field.
func ContentLocationEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldContentLocation, v))
}

// ContentLocationContainsFold applies the ContainsFold predicate on the "content_location" field.
func ContentLocationContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldContentLocation, v))
}

// ContentTextEQ applies the EQ predicate on the "content_text" field.
func ContentTextEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldContentText, v))
}

// ContentTextNEQ applies the NEQ predicate on the "content_text" field.
func ContentTextNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldContentText, v))
}

// ContentTextIn applies the In predicate on the "content_text" field.
func ContentTextIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldContentText, vs...))
}

// ContentTextNotIn applies the NotIn predicate on the "content_text" field.
func ContentTextNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldContentText, vs...))
}

// ContentTextGT applies the GT predicate on the "content_text" field.
func ContentTextGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldContentText, v))
}

// ContentTextGTE applies the GTE predicate on the "content_text" field.
func ContentTextGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldContentText, v))
}

// ContentTextLT applies the LT predicate on the "content_text" field.
func ContentTextLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldContentText, v))
}

// ContentTextLTE applies the LTE predicate on the "content_text" field.
func ContentTextLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldContentText, v))
}

// ContentTextContains applies the Contains predicate on the "content_text" field.
func ContentTextContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldContentText, v))
}

// ContentTextHasPrefix applies the HasPrefix predicate on the "content_text" field.
func ContentTextHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldContentText, v))
}

// ContentTextHasSuffix applies the HasSuffix predicate on the "content_text" field.
func ContentTextHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldContentText, v))
}

// ContentTextIsNil applies the IsNil predicate on the "content_text" field.
func ContentTextIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldContentText))
}

// ContentTextNotNil applies the NotNil predicate on the "content_text" field.
func ContentTextNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldContentText))
}

// ContentTextEqualFold applies the EqualFold predicate on the "content_text" field.
func ContentTextEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldContentText, v))
}

// ContentTextContainsFold applies the ContainsFold predicate on the "content_text" field.
func ContentTextContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldContentText, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldMimeType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldFileSize, v))
}

// FileSizeIsNil applies the IsNil predicate on the "file_size" field.
func FileSizeIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldFileSize))
}

// FileSizeNotNil applies the NotNil predicate on the "file_size" field.
func FileSizeNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldFileSize))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v Classification) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v Classification) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...Classification) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...Classification) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldClassification, vs...))
}

// RetentionPeriodEQ applies the EQ predicate on the "retention_period" field.
func RetentionPeriodEQ(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldRetentionPeriod, v))
}

// RetentionPeriodNEQ applies the NEQ predicate on the "retention_period" field.
func RetentionPeriodNEQ(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldRetentionPeriod, v))
}

// RetentionPeriodIn applies the In predicate on the "retention_period" field.
func RetentionPeriodIn(vs ...int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldRetentionPeriod, vs...))
}

// RetentionPeriodNotIn applies the NotIn predicate on the "retention_period" field.
func RetentionPeriodNotIn(vs ...int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldRetentionPeriod, vs...))
}

// RetentionPeriodGT applies the GT predicate on the "retention_period" field.
func RetentionPeriodGT(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldRetentionPeriod, v))
}

// RetentionPeriodGTE applies the GTE predicate on the "retention_period" field.
func RetentionPeriodGTE(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldRetentionPeriod, v))
}

// RetentionPeriodLT applies the LT predicate on the "retention_period" field.
func RetentionPeriodLT(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldRetentionPeriod, v))
}

// RetentionPeriodLTE applies the LTE predicate on the "retention_period" field.
func RetentionPeriodLTE(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldRetentionPeriod, v))
}

// RetentionPeriodIsNil applies the IsNil predicate on the "retention_period" field.
func RetentionPeriodIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldRetentionPeriod))
}

// RetentionPeriodNotNil applies the NotNil predicate on the "retention_period" field.
func RetentionPeriodNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldRetentionPeriod))
}

// RetentionTriggerEQ applies the EQ predicate on the "retention_trigger" field.
func RetentionTriggerEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldRetentionTrigger, v))
}

// RetentionTriggerNEQ applies the NEQ predicate on the "retention_trigger" field.
func RetentionTriggerNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldRetentionTrigger, v))
}

// RetentionTriggerIn applies the In predicate on the "retention_trigger" field.
func RetentionTriggerIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldRetentionTrigger, vs...))
}

// RetentionTriggerNotIn applies the NotIn predicate on the "retention_trigger" field.
func RetentionTriggerNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldRetentionTrigger, vs...))
}

// RetentionTriggerGT applies the GT predicate on the "retention_trigger" field.
func RetentionTriggerGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldRetentionTrigger, v))
}

// RetentionTriggerGTE applies the GTE predicate on the "retention_trigger" field.
func RetentionTriggerGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldRetentionTrigger, v))
}

// RetentionTriggerLT applies the LT predicate on the "retention_trigger" field.
func RetentionTriggerLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldRetentionTrigger, v))
}

// RetentionTriggerLTE applies the LTE predicate on the "retention_trigger" field.
func RetentionTriggerLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldRetentionTrigger, v))
}

// RetentionTriggerContains applies the Contains predicate on the "retention_trigger" field.
func RetentionTriggerContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldRetentionTrigger, v))
}

// RetentionTriggerHasPrefix applies the HasPrefix predicate on the "retention_trigger" field.
func RetentionTriggerHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldRetentionTrigger, v))
}

// RetentionTriggerHasSuffix applies the HasSuffix predicate on the "retention_trigger" field.
func RetentionTriggerHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldRetentionTrigger, v))
}

// RetentionTriggerIsNil applies the IsNil predicate on the "retention_trigger" field.
func RetentionTriggerIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldRetentionTrigger))
}

// RetentionTriggerNotNil applies the NotNil predicate on the "retention_trigger" field.
func RetentionTriggerNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldRetentionTrigger))
}

// RetentionTriggerEqualFold applies the EqualFold predicate on the "retention_trigger" field.
func RetentionTriggerEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldRetentionTrigger, v))
}

// RetentionTriggerContainsFold applies the ContainsFold predicate on the "retention_trigger" field.
func RetentionTriggerContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldRetentionTrigger, v))
}

// DestructionDateEQ applies the EQ predicate on the "destruction_date" field.
func DestructionDateEQ(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldDestructionDate, v))
}

// DestructionDateNEQ applies the NEQ predicate on the "destruction_date" field.
func DestructionDateNEQ(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldDestructionDate, v))
}

// DestructionDateIn applies the In predicate on the "destruction_date" field.
func DestructionDateIn(vs ...time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldDestructionDate, vs...))
}

// DestructionDateNotIn applies the NotIn predicate on the "destruction_date" field.
func DestructionDateNotIn(vs ...time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldDestructionDate, vs...))
}

// DestructionDateGT applies the GT predicate on the "destruction_date" field.
func DestructionDateGT(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldDestructionDate, v))
}

// DestructionDateGTE applies the GTE predicate on the "destruction_date" field.
func DestructionDateGTE(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldDestructionDate, v))
}

// DestructionDateLT applies the LT predicate on the "destruction_date" field.
func DestructionDateLT(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldDestructionDate, v))
}

// DestructionDateLTE applies the LTE predicate on the "destruction_date" field.
func DestructionDateLTE(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldDestructionDate, v))
}

// DestructionDateIsNil applies the IsNil predicate on the "destruction_date" field.
func DestructionDateIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldDestructionDate))
}

// DestructionDateNotNil applies the NotNil predicate on the "destruction_date" field.
func DestructionDateNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldDestructionDate))
}

// IsWooRelevantEQ applies the EQ predicate on the "is_woo_relevant" field.
func IsWooRelevantEQ(v bool) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldIsWooRelevant, v))
}

// IsWooRelevantNEQ applies the NEQ predicate on the "is_woo_relevant" field.
func IsWooRelevantNEQ(v bool) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldIsWooRelevant, v))
}

// WooPublicationDateEQ applies the EQ predicate on the "woo_publication_date" field.
func WooPublicationDateEQ(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldWooPublicationDate, v))
}

// WooPublicationDateNEQ applies the NEQ predicate on the "woo_publication_date" field.
func WooPublicationDateNEQ(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldWooPublicationDate, v))
}

// WooPublicationDateIn applies the In predicate on the "woo_publication_date" field.
func WooPublicationDateIn(vs ...time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldWooPublicationDate, vs...))
}

// WooPublicationDateNotIn applies the NotIn predicate on the "woo_publication_date" field.
func WooPublicationDateNotIn(vs ...time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldWooPublicationDate, vs...))
}

// WooPublicationDateGT applies the GT predicate on the "woo_publication_date" field.
func WooPublicationDateGT(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldWooPublicationDate, v))
}

// WooPublicationDateGTE applies the GTE predicate on the "woo_publication_date" field.
func WooPublicationDateGTE(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldWooPublicationDate, v))
}

// WooPublicationDateLT applies the LT predicate on the "woo_publication_date" field.
func WooPublicationDateLT(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldWooPublicationDate, v))
}

// WooPublicationDateLTE applies the LTE predicate on the "woo_publication_date" field.
func WooPublicationDateLTE(v time.Time) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldWooPublicationDate, v))
}

// WooPublicationDateIsNil applies the IsNil predicate on the "woo_publication_date" field.
func WooPublicationDateIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldWooPublicationDate))
}

// WooPublicationDateNotNil applies the NotNil predicate on the "woo_publication_date" field.
func WooPublicationDateNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldWooPublicationDate))
}

// PrivacyLevelEQ applies the EQ predicate on the "privacy_level" field.
func PrivacyLevelEQ(v PrivacyLevel) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldPrivacyLevel, v))
}

// PrivacyLevelNEQ applies the NEQ predicate on the "privacy_level" field.
func PrivacyLevelNEQ(v PrivacyLevel) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldPrivacyLevel, v))
}

// PrivacyLevelIn applies the In predicate on the "privacy_level" field.
func PrivacyLevelIn(vs ...PrivacyLevel) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldPrivacyLevel, vs...))
}

// PrivacyLevelNotIn applies the NotIn predicate on the "privacy_level" field.
func PrivacyLevelNotIn(vs ...PrivacyLevel) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldPrivacyLevel, vs...))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldTags))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldMetadata))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldVersion, v))
}

// PreviousVersionIDEQ applies the EQ predicate on the "previous_version_id" field.
func PreviousVersionIDEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldPreviousVersionID, v))
}

// PreviousVersionIDNEQ applies the NEQ predicate on the "previous_version_id" field.
func PreviousVersionIDNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldPreviousVersionID, v))
}

// PreviousVersionIDIn applies the In predicate on the "previous_version_id" field.
func PreviousVersionIDIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldPreviousVersionID, vs...))
}

// PreviousVersionIDNotIn applies the NotIn predicate on the "previous_version_id" field.
func PreviousVersionIDNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldPreviousVersionID, vs...))
}

// PreviousVersionIDGT applies the GT predicate on the "previous_version_id" field.
func PreviousVersionIDGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldPreviousVersionID, v))
}

// PreviousVersionIDGTE applies the GTE predicate on the "previous_version_id" field.
func PreviousVersionIDGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldPreviousVersionID, v))
}

// PreviousVersionIDLT applies the LT predicate on the "previous_version_id" field.
func PreviousVersionIDLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldPreviousVersionID, v))
}

// PreviousVersionIDLTE applies the LTE predicate on the "previous_version_id" field.
func PreviousVersionIDLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldPreviousVersionID, v))
}

// PreviousVersionIDContains applies the Contains predicate on the "previous_version_id" field.
func PreviousVersionIDContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldPreviousVersionID, v))
}

// PreviousVersionIDHasPrefix applies the HasPrefix predicate on the "previous_version_id" field.
func PreviousVersionIDHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldPreviousVersionID, v))
}

// PreviousVersionIDHasSuffix applies the HasSuffix predicate on the "previous_version_id" field.
func PreviousVersionIDHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldPreviousVersionID, v))
}

// PreviousVersionIDIsNil applies the IsNil predicate on the "previous_version_id" field.
func PreviousVersionIDIsNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIsNull(FieldPreviousVersionID))
}

// PreviousVersionIDNotNil applies the NotNil predicate on the "previous_version_id" field.
func PreviousVersionIDNotNil() predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotNull(FieldPreviousVersionID))
}

// PreviousVersionIDEqualFold applies the EqualFold predicate on the "previous_version_id" field.
func PreviousVersionIDEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldPreviousVersionID, v))
}

// PreviousVersionIDContainsFold applies the ContainsFold predicate on the "previous_version_id" field.
func PreviousVersionIDContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldPreviousVersionID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.InformationObject {
	return predicate.InformationObject(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InformationObject) predicate.InformationObject {
	return predicate.InformationObject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InformationObject) predicate.InformationObject {
	return predicate.InformationObject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InformationObject) predicate.InformationObject {
	return predicate.InformationObject(sql.NotPredicates(p))
}
