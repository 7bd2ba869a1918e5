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
	"iou-platform.io/iou/ent/entityrelationship"
	"iou-platform.io/iou/ent/predicate"
)

// EntityRelationshipUpdate is the builder for updating EntityRelationship entities.
type EntityRelationshipUpdate struct {
	config
	hooks    []Hook
	mutation *EntityRelationshipMutation
}

// Where appends a list predicates to the EntityRelationshipUpdate builder.
func (_u *EntityRelationshipUpdate) Where(ps ...predicate.EntityRelationship) *EntityRelationshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityRelationshipUpdate) SetUpdatedAt(v time.Time) *EntityRelationshipUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceEntityID sets the "source_entity_id" field.
func (_u *EntityRelationshipUpdate) SetSourceEntityID(v string) *EntityRelationshipUpdate {
	_u.mutation.SetSourceEntityID(v)
	return _u
}

// SetNillableSourceEntityID sets the "source_entity_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableSourceEntityID(v *string) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetSourceEntityID(*v)
	}
	return _u
}

// SetTargetEntityID sets the "target_entity_id" field.
func (_u *EntityRelationshipUpdate) SetTargetEntityID(v string) *EntityRelationshipUpdate {
	_u.mutation.SetTargetEntityID(v)
	return _u
}

// SetNillableTargetEntityID sets the "target_entity_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableTargetEntityID(v *string) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetTargetEntityID(*v)
	}
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *EntityRelationshipUpdate) SetRelationshipType(v entityrelationship.RelationshipType) *EntityRelationshipUpdate {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableRelationshipType(v *entityrelationship.RelationshipType) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *EntityRelationshipUpdate) SetWeight(v float64) *EntityRelationshipUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableWeight(v *float64) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *EntityRelationshipUpdate) AddWeight(v float64) *EntityRelationshipUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityRelationshipUpdate) SetConfidence(v float64) *EntityRelationshipUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableConfidence(v *float64) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityRelationshipUpdate) AddConfidence(v float64) *EntityRelationshipUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetObservations sets the "observations" field.
func (_u *EntityRelationshipUpdate) SetObservations(v int) *EntityRelationshipUpdate {
	_u.mutation.ResetObservations()
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableObservations(v *int) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// AddObservations adds value to the "observations" field.
func (_u *EntityRelationshipUpdate) AddObservations(v int) *EntityRelationshipUpdate {
	_u.mutation.AddObservations(v)
	return _u
}

// SetLastObjectID sets the "last_object_id" field.
func (_u *EntityRelationshipUpdate) SetLastObjectID(v string) *EntityRelationshipUpdate {
	_u.mutation.SetLastObjectID(v)
	return _u
}

// SetNillableLastObjectID sets the "last_object_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableLastObjectID(v *string) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetLastObjectID(*v)
	}
	return _u
}

// ClearLastObjectID clears the value of the "last_object_id" field.
func (_u *EntityRelationshipUpdate) ClearLastObjectID() *EntityRelationshipUpdate {
	_u.mutation.ClearLastObjectID()
	return _u
}

// SetSourceDomainID sets the "source_domain_id" field.
func (_u *EntityRelationshipUpdate) SetSourceDomainID(v string) *EntityRelationshipUpdate {
	_u.mutation.SetSourceDomainID(v)
	return _u
}

// SetNillableSourceDomainID sets the "source_domain_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdate) SetNillableSourceDomainID(v *string) *EntityRelationshipUpdate {
	if v != nil {
		_u.SetSourceDomainID(*v)
	}
	return _u
}

// ClearSourceDomainID clears the value of the "source_domain_id" field.
func (_u *EntityRelationshipUpdate) ClearSourceDomainID() *EntityRelationshipUpdate {
	_u.mutation.ClearSourceDomainID()
	return _u
}

// Mutation returns the EntityRelationshipMutation object of the builder.
func (_u *EntityRelationshipUpdate) Mutation() *EntityRelationshipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityRelationshipUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityRelationshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityRelationshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityRelationshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityRelationshipUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entityrelationship.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityRelationshipUpdate) check() error {
	if v, ok := _u.mutation.SourceEntityID(); ok {
		if err := entityrelationship.SourceEntityIDValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.source_entity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetEntityID(); ok {
		if err := entityrelationship.TargetEntityIDValidator(v); err != nil {
			return &ValidationError{Name: "target_entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.target_entity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelationshipType(); ok {
		if err := entityrelationship.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.relationship_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Weight(); ok {
		if err := entityrelationship.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := entityrelationship.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityRelationshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityrelationship.Table, entityrelationship.Columns, sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entityrelationship.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceEntityID(); ok {
		_spec.SetField(entityrelationship.FieldSourceEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetEntityID(); ok {
		_spec.SetField(entityrelationship.FieldTargetEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(entityrelationship.FieldRelationshipType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(entityrelationship.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(entityrelationship.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entityrelationship.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entityrelationship.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(entityrelationship.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObservations(); ok {
		_spec.AddField(entityrelationship.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastObjectID(); ok {
		_spec.SetField(entityrelationship.FieldLastObjectID, field.TypeString, value)
	}
	if _u.mutation.LastObjectIDCleared() {
		_spec.ClearField(entityrelationship.FieldLastObjectID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceDomainID(); ok {
		_spec.SetField(entityrelationship.FieldSourceDomainID, field.TypeString, value)
	}
	if _u.mutation.SourceDomainIDCleared() {
		_spec.ClearField(entityrelationship.FieldSourceDomainID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityrelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityRelationshipUpdateOne is the builder for updating a single EntityRelationship entity.
type EntityRelationshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityRelationshipMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityRelationshipUpdateOne) SetUpdatedAt(v time.Time) *EntityRelationshipUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSourceEntityID sets the "source_entity_id" field.
func (_u *EntityRelationshipUpdateOne) SetSourceEntityID(v string) *EntityRelationshipUpdateOne {
	_u.mutation.SetSourceEntityID(v)
	return _u
}

// SetNillableSourceEntityID sets the "source_entity_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableSourceEntityID(v *string) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetSourceEntityID(*v)
	}
	return _u
}

// SetTargetEntityID sets the "target_entity_id" field.
func (_u *EntityRelationshipUpdateOne) SetTargetEntityID(v string) *EntityRelationshipUpdateOne {
	_u.mutation.SetTargetEntityID(v)
	return _u
}

// SetNillableTargetEntityID sets the "target_entity_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableTargetEntityID(v *string) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetTargetEntityID(*v)
	}
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *EntityRelationshipUpdateOne) SetRelationshipType(v entityrelationship.RelationshipType) *EntityRelationshipUpdateOne {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableRelationshipType(v *entityrelationship.RelationshipType) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *EntityRelationshipUpdateOne) SetWeight(v float64) *EntityRelationshipUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableWeight(v *float64) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *EntityRelationshipUpdateOne) AddWeight(v float64) *EntityRelationshipUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityRelationshipUpdateOne) SetConfidence(v float64) *EntityRelationshipUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableConfidence(v *float64) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityRelationshipUpdateOne) AddConfidence(v float64) *EntityRelationshipUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetObservations sets the "observations" field.
func (_u *EntityRelationshipUpdateOne) SetObservations(v int) *EntityRelationshipUpdateOne {
	_u.mutation.ResetObservations()
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableObservations(v *int) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// AddObservations adds value to the "observations" field.
func (_u *EntityRelationshipUpdateOne) AddObservations(v int) *EntityRelationshipUpdateOne {
	_u.mutation.AddObservations(v)
	return _u
}

// SetLastObjectID sets the "last_object_id" field.
func (_u *EntityRelationshipUpdateOne) SetLastObjectID(v string) *EntityRelationshipUpdateOne {
	_u.mutation.SetLastObjectID(v)
	return _u
}

// SetNillableLastObjectID sets the "last_object_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableLastObjectID(v *string) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetLastObjectID(*v)
	}
	return _u
}

// ClearLastObjectID clears the value of the "last_object_id" field.
func (_u *EntityRelationshipUpdateOne) ClearLastObjectID() *EntityRelationshipUpdateOne {
	_u.mutation.ClearLastObjectID()
	return _u
}

// SetSourceDomainID sets the "source_domain_id" field.
func (_u *EntityRelationshipUpdateOne) SetSourceDomainID(v string) *EntityRelationshipUpdateOne {
	_u.mutation.SetSourceDomainID(v)
	return _u
}

// SetNillableSourceDomainID sets the "source_domain_id" field if the given value is not nil.
func (_u *EntityRelationshipUpdateOne) SetNillableSourceDomainID(v *string) *EntityRelationshipUpdateOne {
	if v != nil {
		_u.SetSourceDomainID(*v)
	}
	return _u
}

// ClearSourceDomainID clears the value of the "source_domain_id" field.
func (_u *EntityRelationshipUpdateOne) ClearSourceDomainID() *EntityRelationshipUpdateOne {
	_u.mutation.ClearSourceDomainID()
	return _u
}

// Mutation returns the EntityRelationshipMutation object of the builder.
func (_u *EntityRelationshipUpdateOne) Mutation() *EntityRelationshipMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityRelationshipUpdate builder.
func (_u *EntityRelationshipUpdateOne) Where(ps ...predicate.EntityRelationship) *EntityRelationshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityRelationshipUpdateOne) Select(field string, fields ...string) *EntityRelationshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityRelationship entity.
func (_u *EntityRelationshipUpdateOne) Save(ctx context.Context) (*EntityRelationship, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityRelationshipUpdateOne) SaveX(ctx context.Context) *EntityRelationship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityRelationshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityRelationshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityRelationshipUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entityrelationship.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityRelationshipUpdateOne) check() error {
	if v, ok := _u.mutation.SourceEntityID(); ok {
		if err := entityrelationship.SourceEntityIDValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.source_entity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetEntityID(); ok {
		if err := entityrelationship.TargetEntityIDValidator(v); err != nil {
			return &ValidationError{Name: "target_entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.target_entity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelationshipType(); ok {
		if err := entityrelationship.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.relationship_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Weight(); ok {
		if err := entityrelationship.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.weight": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := entityrelationship.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityRelationshipUpdateOne) sqlSave(ctx context.Context) (_node *EntityRelationship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityrelationship.Table, entityrelationship.Columns, sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityRelationship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityrelationship.FieldID)
		for _, f := range fields {
			if !entityrelationship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityrelationship.FieldID {
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
		_spec.SetField(entityrelationship.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceEntityID(); ok {
		_spec.SetField(entityrelationship.FieldSourceEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetEntityID(); ok {
		_spec.SetField(entityrelationship.FieldTargetEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(entityrelationship.FieldRelationshipType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(entityrelationship.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(entityrelationship.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entityrelationship.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entityrelationship.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(entityrelationship.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObservations(); ok {
		_spec.AddField(entityrelationship.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastObjectID(); ok {
		_spec.SetField(entityrelationship.FieldLastObjectID, field.TypeString, value)
	}
	if _u.mutation.LastObjectIDCleared() {
		_spec.ClearField(entityrelationship.FieldLastObjectID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceDomainID(); ok {
		_spec.SetField(entityrelationship.FieldSourceDomainID, field.TypeString, value)
	}
	if _u.mutation.SourceDomainIDCleared() {
		_spec.ClearField(entityrelationship.FieldSourceDomainID, field.TypeString)
	}
	_node = &EntityRelationship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityrelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
