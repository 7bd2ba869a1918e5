// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/informationobject"
)

// InformationObjectCreate is the builder for creating a InformationObject entity.
type InformationObjectCreate struct {
	config
	mutation *InformationObjectMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *InformationObjectCreate) SetCreatedAt(v time.Time) *InformationObjectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableCreatedAt(v *time.Time) *InformationObjectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InformationObjectCreate) SetUpdatedAt(v time.Time) *InformationObjectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableUpdatedAt(v *time.Time) *InformationObjectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDomainID sets the "domain_id" field.
func (_c *InformationObjectCreate) SetDomainID(v string) *InformationObjectCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetObjectType sets the "object_type" field.
func (_c *InformationObjectCreate) SetObjectType(v informationobject.ObjectType) *InformationObjectCreate {
	_c.mutation.SetObjectType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *InformationObjectCreate) SetTitle(v string) *InformationObjectCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InformationObjectCreate) SetDescription(v string) *InformationObjectCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableDescription(v *string) *InformationObjectCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetContentLocation sets the "content_location" field.
func (_c *InformationObjectCreate) SetContentLocation(v string) *InformationObjectCreate {
	_c.mutation.SetContentLocation(v)
	return _c
}

// SetNillableContentLocation sets the "content_location" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableContentLocation(v *string) *InformationObjectCreate {
	if v != nil {
		_c.SetContentLocation(*v)
	}
	return _c
}

// SetContentText sets the "content_text" field.
func (_c *InformationObjectCreate) SetContentText(v string) *InformationObjectCreate {
	_c.mutation.SetContentText(v)
	return _c
}

// SetNillableContentText sets the "content_text" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableContentText(v *string) *InformationObjectCreate {
	if v != nil {
		_c.SetContentText(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *InformationObjectCreate) SetMimeType(v string) *InformationObjectCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableMimeType(v *string) *InformationObjectCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *InformationObjectCreate) SetFileSize(v int64) *InformationObjectCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableFileSize(v *int64) *InformationObjectCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *InformationObjectCreate) SetClassification(v informationobject.Classification) *InformationObjectCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableClassification(v *informationobject.Classification) *InformationObjectCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// SetRetentionPeriod sets the "retention_period" field.
func (_c *InformationObjectCreate) SetRetentionPeriod(v int) *InformationObjectCreate {
	_c.mutation.SetRetentionPeriod(v)
	return _c
}

// SetNillableRetentionPeriod sets the "retention_period" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableRetentionPeriod(v *int) *InformationObjectCreate {
	if v != nil {
		_c.SetRetentionPeriod(*v)
	}
	return _c
}

// SetRetentionTrigger sets the "retention_trigger" field.
func (_c *InformationObjectCreate) SetRetentionTrigger(v string) *InformationObjectCreate {
	_c.mutation.SetRetentionTrigger(v)
	return _c
}

// SetNillableRetentionTrigger sets the "retention_trigger" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableRetentionTrigger(v *string) *InformationObjectCreate {
	if v != nil {
		_c.SetRetentionTrigger(*v)
	}
	return _c
}

// SetDestructionDate sets the "destruction_date" field.
func (_c *InformationObjectCreate) SetDestructionDate(v time.Time) *InformationObjectCreate {
	_c.mutation.SetDestructionDate(v)
	return _c
}

// SetNillableDestructionDate sets the "destruction_date" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableDestructionDate(v *time.Time) *InformationObjectCreate {
	if v != nil {
		_c.SetDestructionDate(*v)
	}
	return _c
}

// SetIsWooRelevant sets the "is_woo_relevant" field.
func (_c *InformationObjectCreate) SetIsWooRelevant(v bool) *InformationObjectCreate {
	_c.mutation.SetIsWooRelevant(v)
	return _c
}

// SetNillableIsWooRelevant sets the "is_woo_relevant" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableIsWooRelevant(v *bool) *InformationObjectCreate {
	if v != nil {
		_c.SetIsWooRelevant(*v)
	}
	return _c
}

// SetWooPublicationDate sets the "woo_publication_date" field.
func (_c *InformationObjectCreate) SetWooPublicationDate(v time.Time) *InformationObjectCreate {
	_c.mutation.SetWooPublicationDate(v)
	return _c
}

// SetNillableWooPublicationDate sets the "woo_publication_date" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableWooPublicationDate(v *time.Time) *InformationObjectCreate {
	if v != nil {
		_c.SetWooPublicationDate(*v)
	}
	return _c
}

// SetPrivacyLevel sets the "privacy_level" field.
func (_c *InformationObjectCreate) SetPrivacyLevel(v informationobject.PrivacyLevel) *InformationObjectCreate {
	_c.mutation.SetPrivacyLevel(v)
	return _c
}

// SetNillablePrivacyLevel sets the "privacy_level" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillablePrivacyLevel(v *informationobject.PrivacyLevel) *InformationObjectCreate {
	if v != nil {
		_c.SetPrivacyLevel(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *InformationObjectCreate) SetTags(v []string) *InformationObjectCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *InformationObjectCreate) SetMetadata(v map[string]interface{}) *InformationObjectCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *InformationObjectCreate) SetVersion(v int) *InformationObjectCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillableVersion(v *int) *InformationObjectCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetPreviousVersionID sets the "previous_version_id" field.
func (_c *InformationObjectCreate) SetPreviousVersionID(v string) *InformationObjectCreate {
	_c.mutation.SetPreviousVersionID(v)
	return _c
}

// SetNillablePreviousVersionID sets the "previous_version_id" field if the given value is not nil.
func (_c *InformationObjectCreate) SetNillablePreviousVersionID(v *string) *InformationObjectCreate {
	if v != nil {
		_c.SetPreviousVersionID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *InformationObjectCreate) SetCreatedBy(v string) *InformationObjectCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InformationObjectCreate) SetID(v string) *InformationObjectCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InformationObjectMutation object of the builder.
func (_c *InformationObjectCreate) Mutation() *InformationObjectMutation {
	return _c.mutation
}

// Save creates the InformationObject in the database.
func (_c *InformationObjectCreate) Save(ctx context.Context) (*InformationObject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InformationObjectCreate) SaveX(ctx context.Context) *InformationObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InformationObjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InformationObjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InformationObjectCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := informationobject.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := informationobject.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Classification(); !ok {
		v := informationobject.DefaultClassification
		_c.mutation.SetClassification(v)
	}
	if _, ok := _c.mutation.IsWooRelevant(); !ok {
		v := informationobject.DefaultIsWooRelevant
		_c.mutation.SetIsWooRelevant(v)
	}
	if _, ok := _c.mutation.PrivacyLevel(); !ok {
		v := informationobject.DefaultPrivacyLevel
		_c.mutation.SetPrivacyLevel(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := informationobject.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InformationObjectCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InformationObject.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InformationObject.updated_at"`)}
	}
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "InformationObject.domain_id"`)}
	}
	if v, ok := _c.mutation.DomainID(); ok {
		if err := informationobject.DomainIDValidator(v); err != nil {
			return &ValidationError{Name: "domain_id", err: fmt.Errorf(`ent: validator failed for field "InformationObject.domain_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectType(); !ok {
		return &ValidationError{Name: "object_type", err: errors.New(`ent: missing required field "InformationObject.object_type"`)}
	}
	if v, ok := _c.mutation.ObjectType(); ok {
		if err := informationobject.ObjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "object_type", err: fmt.Errorf(`ent: validator failed for field "InformationObject.object_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "InformationObject.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := informationobject.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "InformationObject.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "InformationObject.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := informationobject.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "InformationObject.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsWooRelevant(); !ok {
		return &ValidationError{Name: "is_woo_relevant", err: errors.New(`ent: missing required field "InformationObject.is_woo_relevant"`)}
	}
	if _, ok := _c.mutation.PrivacyLevel(); !ok {
		return &ValidationError{Name: "privacy_level", err: errors.New(`ent: missing required field "InformationObject.privacy_level"`)}
	}
	if v, ok := _c.mutation.PrivacyLevel(); ok {
		if err := informationobject.PrivacyLevelValidator(v); err != nil {
			return &ValidationError{Name: "privacy_level", err: fmt.Errorf(`ent: validator failed for field "InformationObject.privacy_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "InformationObject.version"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "InformationObject.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := informationobject.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "InformationObject.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *InformationObjectCreate) sqlSave(ctx context.Context) (*InformationObject, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected InformationObject.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InformationObjectCreate) createSpec() (*InformationObject, *sqlgraph.CreateSpec) {
	var (
		_node = &InformationObject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(informationobject.Table, sqlgraph.NewFieldSpec(informationobject.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(informationobject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(informationobject.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DomainID(); ok {
		_spec.SetField(informationobject.FieldDomainID, field.TypeString, value)
		_node.DomainID = value
	}
	if value, ok := _c.mutation.ObjectType(); ok {
		_spec.SetField(informationobject.FieldObjectType, field.TypeEnum, value)
		_node.ObjectType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(informationobject.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(informationobject.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ContentLocation(); ok {
		_spec.SetField(informationobject.FieldContentLocation, field.TypeString, value)
		_node.ContentLocation = value
	}
	if value, ok := _c.mutation.ContentText(); ok {
		_spec.SetField(informationobject.FieldContentText, field.TypeString, value)
		_node.ContentText = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(informationobject.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(informationobject.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(informationobject.FieldClassification, field.TypeEnum, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.RetentionPeriod(); ok {
		_spec.SetField(informationobject.FieldRetentionPeriod, field.TypeInt, value)
		_node.RetentionPeriod = value
	}
	if value, ok := _c.mutation.RetentionTrigger(); ok {
		_spec.SetField(informationobject.FieldRetentionTrigger, field.TypeString, value)
		_node.RetentionTrigger = value
	}
	if value, ok := _c.mutation.DestructionDate(); ok {
		_spec.SetField(informationobject.FieldDestructionDate, field.TypeTime, value)
		_node.DestructionDate = value
	}
	if value, ok := _c.mutation.IsWooRelevant(); ok {
		_spec.SetField(informationobject.FieldIsWooRelevant, field.TypeBool, value)
		_node.IsWooRelevant = value
	}
	if value, ok := _c.mutation.WooPublicationDate(); ok {
		_spec.SetField(informationobject.FieldWooPublicationDate, field.TypeTime, value)
		_node.WooPublicationDate = value
	}
	if value, ok := _c.mutation.PrivacyLevel(); ok {
		_spec.SetField(informationobject.FieldPrivacyLevel, field.TypeEnum, value)
		_node.PrivacyLevel = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(informationobject.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(informationobject.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(informationobject.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.PreviousVersionID(); ok {
		_spec.SetField(informationobject.FieldPreviousVersionID, field.TypeString, value)
		_node.PreviousVersionID = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(informationobject.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// InformationObjectCreateBulk is the builder for creating many InformationObject entities in bulk.
type InformationObjectCreateBulk struct {
	config
	err      error
	builders []*InformationObjectCreate
}

// Save creates the InformationObject entities in the database.
func (_c *InformationObjectCreateBulk) Save(ctx context.Context) ([]*InformationObject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InformationObject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InformationObjectMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InformationObjectCreateBulk) SaveX(ctx context.Context) []*InformationObject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InformationObjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InformationObjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
