// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/entity"
	"iou-platform.io/iou/ent/predicate"
)

// EntityUpdate is the builder for updating Entity entities.
type EntityUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdate) Where(ps ...predicate.Entity) *EntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdate) SetUpdatedAt(v time.Time) *EntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *EntityUpdate) SetCanonicalName(v string) *EntityUpdate {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableCanonicalName(v *string) *EntityUpdate {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetCanonicalKey sets the "canonical_key" field.
func (_u *EntityUpdate) SetCanonicalKey(v string) *EntityUpdate {
	_u.mutation.SetCanonicalKey(v)
	return _u
}

// SetNillableCanonicalKey sets the "canonical_key" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableCanonicalKey(v *string) *EntityUpdate {
	if v != nil {
		_u.SetCanonicalKey(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityUpdate) SetDescription(v string) *EntityUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableDescription(v *string) *EntityUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EntityUpdate) ClearDescription() *EntityUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityUpdate) SetConfidence(v float64) *EntityUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableConfidence(v *float64) *EntityUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityUpdate) AddConfidence(v float64) *EntityUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceDomainID sets the "source_domain_id" field.
func (_u *EntityUpdate) SetSourceDomainID(v string) *EntityUpdate {
	_u.mutation.SetSourceDomainID(v)
	return _u
}

// SetNillableSourceDomainID sets the "source_domain_id" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableSourceDomainID(v *string) *EntityUpdate {
	if v != nil {
		_u.SetSourceDomainID(*v)
	}
	return _u
}

// ClearSourceDomainID clears the value of the "source_domain_id" field.
func (_u *EntityUpdate) ClearSourceDomainID() *EntityUpdate {
	_u.mutation.ClearSourceDomainID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityUpdate) SetMetadata(v map[string]interface{}) *EntityUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityUpdate) ClearMetadata() *EntityUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdate) Mutation() *EntityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdate) check() error {
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := entity.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "Entity.canonical_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CanonicalKey(); ok {
		if err := entity.CanonicalKeyValidator(v); err != nil {
			return &ValidationError{Name: "canonical_key", err: fmt.Errorf(`ent: validator failed for field "Entity.canonical_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := entity.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Entity.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(entity.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalKey(); ok {
		_spec.SetField(entity.FieldCanonicalKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(entity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entity.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entity.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceDomainID(); ok {
		_spec.SetField(entity.FieldSourceDomainID, field.TypeString, value)
	}
	if _u.mutation.SourceDomainIDCleared() {
		_spec.ClearField(entity.FieldSourceDomainID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entity.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entity.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityUpdateOne is the builder for updating a single Entity entity.
type EntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdateOne) SetUpdatedAt(v time.Time) *EntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *EntityUpdateOne) SetCanonicalName(v string) *EntityUpdateOne {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableCanonicalName(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetCanonicalKey sets the "canonical_key" field.
func (_u *EntityUpdateOne) SetCanonicalKey(v string) *EntityUpdateOne {
	_u.mutation.SetCanonicalKey(v)
	return _u
}

// SetNillableCanonicalKey sets the "canonical_key" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableCanonicalKey(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetCanonicalKey(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityUpdateOne) SetDescription(v string) *EntityUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableDescription(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EntityUpdateOne) ClearDescription() *EntityUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityUpdateOne) SetConfidence(v float64) *EntityUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableConfidence(v *float64) *EntityUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityUpdateOne) AddConfidence(v float64) *EntityUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourceDomainID sets the "source_domain_id" field.
func (_u *EntityUpdateOne) SetSourceDomainID(v string) *EntityUpdateOne {
	_u.mutation.SetSourceDomainID(v)
	return _u
}

// SetNillableSourceDomainID sets the "source_domain_id" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableSourceDomainID(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetSourceDomainID(*v)
	}
	return _u
}

// ClearSourceDomainID clears the value of the "source_domain_id" field.
func (_u *EntityUpdateOne) ClearSourceDomainID() *EntityUpdateOne {
	_u.mutation.ClearSourceDomainID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *EntityUpdateOne) SetMetadata(v map[string]interface{}) *EntityUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *EntityUpdateOne) ClearMetadata() *EntityUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdateOne) Mutation() *EntityMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdateOne) Where(ps ...predicate.Entity) *EntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityUpdateOne) Select(field string, fields ...string) *EntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entity entity.
func (_u *EntityUpdateOne) Save(ctx context.Context) (*Entity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdateOne) SaveX(ctx context.Context) *Entity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdateOne) check() error {
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := entity.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "Entity.canonical_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CanonicalKey(); ok {
		if err := entity.CanonicalKeyValidator(v); err != nil {
			return &ValidationError{Name: "canonical_key", err: fmt.Errorf(`ent: validator failed for field "Entity.canonical_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := entity.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Entity.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityUpdateOne) sqlSave(ctx context.Context) (_node *Entity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entity.FieldID)
		for _, f := range fields {
			if !entity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entity.FieldID {
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
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(entity.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalKey(); ok {
		_spec.SetField(entity.FieldCanonicalKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(entity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entity.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entity.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceDomainID(); ok {
		_spec.SetField(entity.FieldSourceDomainID, field.TypeString, value)
	}
	if _u.mutation.SourceDomainIDCleared() {
		_spec.ClearField(entity.FieldSourceDomainID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(entity.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(entity.FieldMetadata, field.TypeJSON)
	}
	_node = &Entity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
