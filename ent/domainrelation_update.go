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
	"iou-platform.io/iou/ent/domainrelation"
	"iou-platform.io/iou/ent/predicate"
)

// DomainRelationUpdate is the builder for updating DomainRelation entities.
type DomainRelationUpdate struct {
	config
	hooks    []Hook
	mutation *DomainRelationMutation
}

// Where appends a list predicates to the DomainRelationUpdate builder.
func (_u *DomainRelationUpdate) Where(ps ...predicate.DomainRelation) *DomainRelationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainRelationUpdate) SetUpdatedAt(v time.Time) *DomainRelationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *DomainRelationUpdate) SetRelationType(v domainrelation.RelationType) *DomainRelationUpdate {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *DomainRelationUpdate) SetNillableRelationType(v *domainrelation.RelationType) *DomainRelationUpdate {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *DomainRelationUpdate) SetStrength(v float64) *DomainRelationUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *DomainRelationUpdate) SetNillableStrength(v *float64) *DomainRelationUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *DomainRelationUpdate) AddStrength(v float64) *DomainRelationUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// SetSharedEntityCount sets the "shared_entity_count" field.
func (_u *DomainRelationUpdate) SetSharedEntityCount(v int) *DomainRelationUpdate {
	_u.mutation.ResetSharedEntityCount()
	_u.mutation.SetSharedEntityCount(v)
	return _u
}

// SetNillableSharedEntityCount sets the "shared_entity_count" field if the given value is not nil.
func (_u *DomainRelationUpdate) SetNillableSharedEntityCount(v *int) *DomainRelationUpdate {
	if v != nil {
		_u.SetSharedEntityCount(*v)
	}
	return _u
}

// AddSharedEntityCount adds value to the "shared_entity_count" field.
func (_u *DomainRelationUpdate) AddSharedEntityCount(v int) *DomainRelationUpdate {
	_u.mutation.AddSharedEntityCount(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *DomainRelationUpdate) SetExplanation(v string) *DomainRelationUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *DomainRelationUpdate) SetNillableExplanation(v *string) *DomainRelationUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *DomainRelationUpdate) ClearExplanation() *DomainRelationUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// Mutation returns the DomainRelationMutation object of the builder.
func (_u *DomainRelationUpdate) Mutation() *DomainRelationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainRelationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainRelationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainRelationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainRelationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainRelationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainrelation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainRelationUpdate) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := domainrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.relation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strength(); ok {
		if err := domainrelation.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.strength": %w`, err)}
		}
	}
	return nil
}

func (_u *DomainRelationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domainrelation.Table, domainrelation.Columns, sqlgraph.NewFieldSpec(domainrelation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domainrelation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(domainrelation.FieldRelationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(domainrelation.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(domainrelation.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SharedEntityCount(); ok {
		_spec.SetField(domainrelation.FieldSharedEntityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSharedEntityCount(); ok {
		_spec.AddField(domainrelation.FieldSharedEntityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(domainrelation.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(domainrelation.FieldExplanation, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainRelationUpdateOne is the builder for updating a single DomainRelation entity.
type DomainRelationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainRelationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainRelationUpdateOne) SetUpdatedAt(v time.Time) *DomainRelationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *DomainRelationUpdateOne) SetRelationType(v domainrelation.RelationType) *DomainRelationUpdateOne {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *DomainRelationUpdateOne) SetNillableRelationType(v *domainrelation.RelationType) *DomainRelationUpdateOne {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *DomainRelationUpdateOne) SetStrength(v float64) *DomainRelationUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *DomainRelationUpdateOne) SetNillableStrength(v *float64) *DomainRelationUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *DomainRelationUpdateOne) AddStrength(v float64) *DomainRelationUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// SetSharedEntityCount sets the "shared_entity_count" field.
func (_u *DomainRelationUpdateOne) SetSharedEntityCount(v int) *DomainRelationUpdateOne {
	_u.mutation.ResetSharedEntityCount()
	_u.mutation.SetSharedEntityCount(v)
	return _u
}

// SetNillableSharedEntityCount sets the "shared_entity_count" field if the given value is not nil.
func (_u *DomainRelationUpdateOne) SetNillableSharedEntityCount(v *int) *DomainRelationUpdateOne {
	if v != nil {
		_u.SetSharedEntityCount(*v)
	}
	return _u
}

// AddSharedEntityCount adds value to the "shared_entity_count" field.
func (_u *DomainRelationUpdateOne) AddSharedEntityCount(v int) *DomainRelationUpdateOne {
	_u.mutation.AddSharedEntityCount(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *DomainRelationUpdateOne) SetExplanation(v string) *DomainRelationUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *DomainRelationUpdateOne) SetNillableExplanation(v *string) *DomainRelationUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *DomainRelationUpdateOne) ClearExplanation() *DomainRelationUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// Mutation returns the DomainRelationMutation object of the builder.
func (_u *DomainRelationUpdateOne) Mutation() *DomainRelationMutation {
	return _u.mutation
}

// Where appends a list predicates to the DomainRelationUpdate builder.
func (_u *DomainRelationUpdateOne) Where(ps ...predicate.DomainRelation) *DomainRelationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainRelationUpdateOne) Select(field string, fields ...string) *DomainRelationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DomainRelation entity.
func (_u *DomainRelationUpdateOne) Save(ctx context.Context) (*DomainRelation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainRelationUpdateOne) SaveX(ctx context.Context) *DomainRelation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainRelationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainRelationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainRelationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainrelation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainRelationUpdateOne) check() error {
	if v, ok := _u.mutation.RelationType(); ok {
		if err := domainrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.relation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strength(); ok {
		if err := domainrelation.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.strength": %w`, err)}
		}
	}
	return nil
}

func (_u *DomainRelationUpdateOne) sqlSave(ctx context.Context) (_node *DomainRelation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domainrelation.Table, domainrelation.Columns, sqlgraph.NewFieldSpec(domainrelation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainRelation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domainrelation.FieldID)
		for _, f := range fields {
			if !domainrelation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domainrelation.FieldID {
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
		_spec.SetField(domainrelation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(domainrelation.FieldRelationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(domainrelation.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(domainrelation.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SharedEntityCount(); ok {
		_spec.SetField(domainrelation.FieldSharedEntityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSharedEntityCount(); ok {
		_spec.AddField(domainrelation.FieldSharedEntityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(domainrelation.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(domainrelation.FieldExplanation, field.TypeString)
	}
	_node = &DomainRelation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainrelation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
