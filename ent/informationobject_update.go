// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/informationobject"
	"iou-platform.io/iou/ent/predicate"
)

// InformationObjectUpdate is the builder for updating InformationObject entities.
type InformationObjectUpdate struct {
	config
	hooks    []Hook
	mutation *InformationObjectMutation
}

// Where appends a list predicates to the InformationObjectUpdate builder.
func (_u *InformationObjectUpdate) Where(ps ...predicate.InformationObject) *InformationObjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InformationObjectUpdate) SetUpdatedAt(v time.Time) *InformationObjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *InformationObjectUpdate) SetTitle(v string) *InformationObjectUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableTitle(v *string) *InformationObjectUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InformationObjectUpdate) SetDescription(v string) *InformationObjectUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableDescription(v *string) *InformationObjectUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InformationObjectUpdate) ClearDescription() *InformationObjectUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetContentLocation sets the "content_location" field.
func (_u *InformationObjectUpdate) SetContentLocation(v string) *InformationObjectUpdate {
	_u.mutation.SetContentLocation(v)
	return _u
}

// SetNillableContentLocation sets the "content_location" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableContentLocation(v *string) *InformationObjectUpdate {
	if v != nil {
		_u.SetContentLocation(*v)
	}
	return _u
}

// ClearContentLocation clears the value of the "content_location" field.
func (_u *InformationObjectUpdate) ClearContentLocation() *InformationObjectUpdate {
	_u.mutation.ClearContentLocation()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *InformationObjectUpdate) SetContentText(v string) *InformationObjectUpdate {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableContentText(v *string) *InformationObjectUpdate {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// ClearContentText clears the value of the "content_text" field.
func (_u *InformationObjectUpdate) ClearContentText() *InformationObjectUpdate {
	_u.mutation.ClearContentText()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *InformationObjectUpdate) SetMimeType(v string) *InformationObjectUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableMimeType(v *string) *InformationObjectUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *InformationObjectUpdate) ClearMimeType() *InformationObjectUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *InformationObjectUpdate) SetFileSize(v int64) *InformationObjectUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableFileSize(v *int64) *InformationObjectUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *InformationObjectUpdate) AddFileSize(v int64) *InformationObjectUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *InformationObjectUpdate) ClearFileSize() *InformationObjectUpdate {
	_u.mutation.ClearFileSize()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *InformationObjectUpdate) SetClassification(v informationobject.Classification) *InformationObjectUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableClassification(v *informationobject.Classification) *InformationObjectUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetRetentionPeriod sets the "retention_period" field.
func (_u *InformationObjectUpdate) SetRetentionPeriod(v int) *InformationObjectUpdate {
	_u.mutation.ResetRetentionPeriod()
	_u.mutation.SetRetentionPeriod(v)
	return _u
}

// SetNillableRetentionPeriod sets the "retention_period" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableRetentionPeriod(v *int) *InformationObjectUpdate {
	if v != nil {
		_u.SetRetentionPeriod(*v)
	}
	return _u
}

// AddRetentionPeriod adds value to the "retention_period" field.
func (_u *InformationObjectUpdate) AddRetentionPeriod(v int) *InformationObjectUpdate {
	_u.mutation.AddRetentionPeriod(v)
	return _u
}

// ClearRetentionPeriod clears the value of the "retention_period" field.
func (_u *InformationObjectUpdate) ClearRetentionPeriod() *InformationObjectUpdate {
	_u.mutation.ClearRetentionPeriod()
	return _u
}

// SetRetentionTrigger sets the "retention_trigger" field.
func (_u *InformationObjectUpdate) SetRetentionTrigger(v string) *InformationObjectUpdate {
	_u.mutation.SetRetentionTrigger(v)
	return _u
}

// SetNillableRetentionTrigger sets the "retention_trigger" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableRetentionTrigger(v *string) *InformationObjectUpdate {
	if v != nil {
		_u.SetRetentionTrigger(*v)
	}
	return _u
}

// ClearRetentionTrigger clears the value of the "retention_trigger" field.
func (_u *InformationObjectUpdate) ClearRetentionTrigger() *InformationObjectUpdate {
	_u.mutation.ClearRetentionTrigger()
	return _u
}

// SetDestructionDate sets the "destruction_date" field.
func (_u *InformationObjectUpdate) SetDestructionDate(v time.Time) *InformationObjectUpdate {
	_u.mutation.SetDestructionDate(v)
	return _u
}

// SetNillableDestructionDate sets the "destruction_date" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableDestructionDate(v *time.Time) *InformationObjectUpdate {
	if v != nil {
		_u.SetDestructionDate(*v)
	}
	return _u
}

// ClearDestructionDate clears the value of the "destruction_date" field.
func (_u *InformationObjectUpdate) ClearDestructionDate() *InformationObjectUpdate {
	_u.mutation.ClearDestructionDate()
	return _u
}

// SetIsWooRelevant sets the "is_woo_relevant" field.
func (_u *InformationObjectUpdate) SetIsWooRelevant(v bool) *InformationObjectUpdate {
	_u.mutation.SetIsWooRelevant(v)
	return _u
}

// SetNillableIsWooRelevant sets the "is_woo_relevant" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableIsWooRelevant(v *bool) *InformationObjectUpdate {
	if v != nil {
		_u.SetIsWooRelevant(*v)
	}
	return _u
}

// SetWooPublicationDate sets the "woo_publication_date" field.
func (_u *InformationObjectUpdate) SetWooPublicationDate(v time.Time) *InformationObjectUpdate {
	_u.mutation.SetWooPublicationDate(v)
	return _u
}

// SetNillableWooPublicationDate sets the "woo_publication_date" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillableWooPublicationDate(v *time.Time) *InformationObjectUpdate {
	if v != nil {
		_u.SetWooPublicationDate(*v)
	}
	return _u
}

// ClearWooPublicationDate clears the value of the "woo_publication_date" field.
func (_u *InformationObjectUpdate) ClearWooPublicationDate() *InformationObjectUpdate {
	_u.mutation.ClearWooPublicationDate()
	return _u
}

// SetPrivacyLevel sets the "privacy_level" field.
func (_u *InformationObjectUpdate) SetPrivacyLevel(v informationobject.PrivacyLevel) *InformationObjectUpdate {
	_u.mutation.SetPrivacyLevel(v)
	return _u
}

// SetNillablePrivacyLevel sets the "privacy_level" field if the given value is not nil.
func (_u *InformationObjectUpdate) SetNillablePrivacyLevel(v *informationobject.PrivacyLevel) *InformationObjectUpdate {
	if v != nil {
		_u.SetPrivacyLevel(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *InformationObjectUpdate) SetTags(v []string) *InformationObjectUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *InformationObjectUpdate) AppendTags(v []string) *InformationObjectUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *InformationObjectUpdate) ClearTags() *InformationObjectUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *InformationObjectUpdate) SetMetadata(v map[string]interface{}) *InformationObjectUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *InformationObjectUpdate) ClearMetadata() *InformationObjectUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the InformationObjectMutation object of the builder.
func (_u *InformationObjectUpdate) Mutation() *InformationObjectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InformationObjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InformationObjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InformationObjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InformationObjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InformationObjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := informationobject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InformationObjectUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := informationobject.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "InformationObject.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := informationobject.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "InformationObject.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrivacyLevel(); ok {
		if err := informationobject.PrivacyLevelValidator(v); err != nil {
			return &ValidationError{Name: "privacy_level", err: fmt.Errorf(`ent: validator failed for field "InformationObject.privacy_level": %w`, err)}
		}
	}
	return nil
}

func (_u *InformationObjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(informationobject.Table, informationobject.Columns, sqlgraph.NewFieldSpec(informationobject.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(informationobject.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(informationobject.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(informationobject.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(informationobject.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ContentLocation(); ok {
		_spec.SetField(informationobject.FieldContentLocation, field.TypeString, value)
	}
	if _u.mutation.ContentLocationCleared() {
		_spec.ClearField(informationobject.FieldContentLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(informationobject.FieldContentText, field.TypeString, value)
	}
	if _u.mutation.ContentTextCleared() {
		_spec.ClearField(informationobject.FieldContentText, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(informationobject.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(informationobject.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(informationobject.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(informationobject.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(informationobject.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(informationobject.FieldClassification, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetentionPeriod(); ok {
		_spec.SetField(informationobject.FieldRetentionPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetentionPeriod(); ok {
		_spec.AddField(informationobject.FieldRetentionPeriod, field.TypeInt, value)
	}
	if _u.mutation.RetentionPeriodCleared() {
		_spec.ClearField(informationobject.FieldRetentionPeriod, field.TypeInt)
	}
	if value, ok := _u.mutation.RetentionTrigger(); ok {
		_spec.SetField(informationobject.FieldRetentionTrigger, field.TypeString, value)
	}
	if _u.mutation.RetentionTriggerCleared() {
		_spec.ClearField(informationobject.FieldRetentionTrigger, field.TypeString)
	}
	if value, ok := _u.mutation.DestructionDate(); ok {
		_spec.SetField(informationobject.FieldDestructionDate, field.TypeTime, value)
	}
	if _u.mutation.DestructionDateCleared() {
		_spec.ClearField(informationobject.FieldDestructionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsWooRelevant(); ok {
		_spec.SetField(informationobject.FieldIsWooRelevant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WooPublicationDate(); ok {
		_spec.SetField(informationobject.FieldWooPublicationDate, field.TypeTime, value)
	}
	if _u.mutation.WooPublicationDateCleared() {
		_spec.ClearField(informationobject.FieldWooPublicationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PrivacyLevel(); ok {
		_spec.SetField(informationobject.FieldPrivacyLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(informationobject.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, informationobject.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(informationobject.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(informationobject.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(informationobject.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.PreviousVersionIDCleared() {
		_spec.ClearField(informationobject.FieldPreviousVersionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{informationobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InformationObjectUpdateOne is the builder for updating a single InformationObject entity.
type InformationObjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InformationObjectMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InformationObjectUpdateOne) SetUpdatedAt(v time.Time) *InformationObjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *InformationObjectUpdateOne) SetTitle(v string) *InformationObjectUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableTitle(v *string) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InformationObjectUpdateOne) SetDescription(v string) *InformationObjectUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableDescription(v *string) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InformationObjectUpdateOne) ClearDescription() *InformationObjectUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetContentLocation sets the "content_location" field.
func (_u *InformationObjectUpdateOne) SetContentLocation(v string) *InformationObjectUpdateOne {
	_u.mutation.SetContentLocation(v)
	return _u
}

// SetNillableContentLocation sets the "content_location" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableContentLocation(v *string) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetContentLocation(*v)
	}
	return _u
}

// ClearContentLocation clears the value of the "content_location" field.
func (_u *InformationObjectUpdateOne) ClearContentLocation() *InformationObjectUpdateOne {
	_u.mutation.ClearContentLocation()
	return _u
}

// SetContentText sets the "content_text" field.
func (_u *InformationObjectUpdateOne) SetContentText(v string) *InformationObjectUpdateOne {
	_u.mutation.SetContentText(v)
	return _u
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableContentText(v *string) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetContentText(*v)
	}
	return _u
}

// ClearContentText clears the value of the "content_text" field.
func (_u *InformationObjectUpdateOne) ClearContentText() *InformationObjectUpdateOne {
	_u.mutation.ClearContentText()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *InformationObjectUpdateOne) SetMimeType(v string) *InformationObjectUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableMimeType(v *string) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *InformationObjectUpdateOne) ClearMimeType() *InformationObjectUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *InformationObjectUpdateOne) SetFileSize(v int64) *InformationObjectUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableFileSize(v *int64) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *InformationObjectUpdateOne) AddFileSize(v int64) *InformationObjectUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *InformationObjectUpdateOne) ClearFileSize() *InformationObjectUpdateOne {
	_u.mutation.ClearFileSize()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *InformationObjectUpdateOne) SetClassification(v informationobject.Classification) *InformationObjectUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableClassification(v *informationobject.Classification) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetRetentionPeriod sets the "retention_period" field.
func (_u *InformationObjectUpdateOne) SetRetentionPeriod(v int) *InformationObjectUpdateOne {
	_u.mutation.ResetRetentionPeriod()
	_u.mutation.SetRetentionPeriod(v)
	return _u
}

// SetNillableRetentionPeriod sets the "retention_period" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableRetentionPeriod(v *int) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetRetentionPeriod(*v)
	}
	return _u
}

// AddRetentionPeriod adds value to the "retention_period" field.
func (_u *InformationObjectUpdateOne) AddRetentionPeriod(v int) *InformationObjectUpdateOne {
	_u.mutation.AddRetentionPeriod(v)
	return _u
}

// ClearRetentionPeriod clears the value of the "retention_period" field.
func (_u *InformationObjectUpdateOne) ClearRetentionPeriod() *InformationObjectUpdateOne {
	_u.mutation.ClearRetentionPeriod()
	return _u
}

// SetRetentionTrigger sets the "retention_trigger" field.
func (_u *InformationObjectUpdateOne) SetRetentionTrigger(v string) *InformationObjectUpdateOne {
	_u.mutation.SetRetentionTrigger(v)
	return _u
}

// SetNillableRetentionTrigger sets the "retention_trigger" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableRetentionTrigger(v *string) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetRetentionTrigger(*v)
	}
	return _u
}

// ClearRetentionTrigger clears the value of the "retention_trigger" field.
func (_u *InformationObjectUpdateOne) ClearRetentionTrigger() *InformationObjectUpdateOne {
	_u.mutation.ClearRetentionTrigger()
	return _u
}

// SetDestructionDate sets the "destruction_date" field.
func (_u *InformationObjectUpdateOne) SetDestructionDate(v time.Time) *InformationObjectUpdateOne {
	_u.mutation.SetDestructionDate(v)
	return _u
}

// SetNillableDestructionDate sets the "destruction_date" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableDestructionDate(v *time.Time) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetDestructionDate(*v)
	}
	return _u
}

// ClearDestructionDate clears the value of the "destruction_date" field.
func (_u *InformationObjectUpdateOne) ClearDestructionDate() *InformationObjectUpdateOne {
	_u.mutation.ClearDestructionDate()
	return _u
}

// SetIsWooRelevant sets the "is_woo_relevant" field.
func (_u *InformationObjectUpdateOne) SetIsWooRelevant(v bool) *InformationObjectUpdateOne {
	_u.mutation.SetIsWooRelevant(v)
	return _u
}

// SetNillableIsWooRelevant sets the "is_woo_relevant" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableIsWooRelevant(v *bool) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetIsWooRelevant(*v)
	}
	return _u
}

// SetWooPublicationDate sets the "woo_publication_date" field.
func (_u *InformationObjectUpdateOne) SetWooPublicationDate(v time.Time) *InformationObjectUpdateOne {
	_u.mutation.SetWooPublicationDate(v)
	return _u
}

// SetNillableWooPublicationDate sets the "woo_publication_date" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillableWooPublicationDate(v *time.Time) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetWooPublicationDate(*v)
	}
	return _u
}

// ClearWooPublicationDate clears the value of the "woo_publication_date" field.
func (_u *InformationObjectUpdateOne) ClearWooPublicationDate() *InformationObjectUpdateOne {
	_u.mutation.ClearWooPublicationDate()
	return _u
}

// SetPrivacyLevel sets the "privacy_level" field.
func (_u *InformationObjectUpdateOne) SetPrivacyLevel(v informationobject.PrivacyLevel) *InformationObjectUpdateOne {
	_u.mutation.SetPrivacyLevel(v)
	return _u
}

// SetNillablePrivacyLevel sets the "privacy_level" field if the given value is not nil.
func (_u *InformationObjectUpdateOne) SetNillablePrivacyLevel(v *informationobject.PrivacyLevel) *InformationObjectUpdateOne {
	if v != nil {
		_u.SetPrivacyLevel(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *InformationObjectUpdateOne) SetTags(v []string) *InformationObjectUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *InformationObjectUpdateOne) AppendTags(v []string) *InformationObjectUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *InformationObjectUpdateOne) ClearTags() *InformationObjectUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *InformationObjectUpdateOne) SetMetadata(v map[string]interface{}) *InformationObjectUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *InformationObjectUpdateOne) ClearMetadata() *InformationObjectUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the InformationObjectMutation object of the builder.
func (_u *InformationObjectUpdateOne) Mutation() *InformationObjectMutation {
	return _u.mutation
}

// Where appends a list predicates to the InformationObjectUpdate builder.
func (_u *InformationObjectUpdateOne) Where(ps ...predicate.InformationObject) *InformationObjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InformationObjectUpdateOne) Select(field string, fields ...string) *InformationObjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InformationObject entity.
func (_u *InformationObjectUpdateOne) Save(ctx context.Context) (*InformationObject, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InformationObjectUpdateOne) SaveX(ctx context.Context) *InformationObject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InformationObjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InformationObjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InformationObjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := informationobject.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InformationObjectUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := informationobject.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "InformationObject.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := informationobject.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "InformationObject.classification": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrivacyLevel(); ok {
		if err := informationobject.PrivacyLevelValidator(v); err != nil {
			return &ValidationError{Name: "privacy_level", err: fmt.Errorf(`ent: validator failed for field "InformationObject.privacy_level": %w`, err)}
		}
	}
	return nil
}

func (_u *InformationObjectUpdateOne) sqlSave(ctx context.Context) (_node *InformationObject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(informationobject.Table, informationobject.Columns, sqlgraph.NewFieldSpec(informationobject.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InformationObject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, informationobject.FieldID)
		for _, f := range fields {
			if !informationobject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != informationobject.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(informationobject.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(informationobject.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(informationobject.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(informationobject.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ContentLocation(); ok {
		_spec.SetField(informationobject.FieldContentLocation, field.TypeString, value)
	}
	if _u.mutation.ContentLocationCleared() {
		_spec.ClearField(informationobject.FieldContentLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ContentText(); ok {
		_spec.SetField(informationobject.FieldContentText, field.TypeString, value)
	}
	if _u.mutation.ContentTextCleared() {
		_spec.ClearField(informationobject.FieldContentText, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(informationobject.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(informationobject.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(informationobject.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(informationobject.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(informationobject.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(informationobject.FieldClassification, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetentionPeriod(); ok {
		_spec.SetField(informationobject.FieldRetentionPeriod, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetentionPeriod(); ok {
		_spec.AddField(informationobject.FieldRetentionPeriod, field.TypeInt, value)
	}
	if _u.mutation.RetentionPeriodCleared() {
		_spec.ClearField(informationobject.FieldRetentionPeriod, field.TypeInt)
	}
	if value, ok := _u.mutation.RetentionTrigger(); ok {
		_spec.SetField(informationobject.FieldRetentionTrigger, field.TypeString, value)
	}
	if _u.mutation.RetentionTriggerCleared() {
		_spec.ClearField(informationobject.FieldRetentionTrigger, field.TypeString)
	}
	if value, ok := _u.mutation.DestructionDate(); ok {
		_spec.SetField(informationobject.FieldDestructionDate, field.TypeTime, value)
	}
	if _u.mutation.DestructionDateCleared() {
		_spec.ClearField(informationobject.FieldDestructionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsWooRelevant(); ok {
		_spec.SetField(informationobject.FieldIsWooRelevant, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WooPublicationDate(); ok {
		_spec.SetField(informationobject.FieldWooPublicationDate, field.TypeTime, value)
	}
	if _u.mutation.WooPublicationDateCleared() {
		_spec.ClearField(informationobject.FieldWooPublicationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PrivacyLevel(); ok {
		_spec.SetField(informationobject.FieldPrivacyLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(informationobject.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, informationobject.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(informationobject.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(informationobject.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(informationobject.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.PreviousVersionIDCleared() {
		_spec.ClearField(informationobject.FieldPreviousVersionID, field.TypeString)
	}
	_node = &InformationObject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{informationobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
