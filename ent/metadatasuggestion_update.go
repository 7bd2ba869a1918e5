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
	"iou-platform.io/iou/ent/metadatasuggestion"
	"iou-platform.io/iou/ent/predicate"
)

// MetadataSuggestionUpdate is the builder for updating MetadataSuggestion entities.
type MetadataSuggestionUpdate struct {
	config
	hooks    []Hook
	mutation *MetadataSuggestionMutation
}

// Where appends a list predicates to the MetadataSuggestionUpdate builder.
func (_u *MetadataSuggestionUpdate) Where(ps ...predicate.MetadataSuggestion) *MetadataSuggestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MetadataSuggestionUpdate) SetUpdatedAt(v time.Time) *MetadataSuggestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MetadataSuggestionUpdate) SetStatus(v metadatasuggestion.Status) *MetadataSuggestionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MetadataSuggestionUpdate) SetNillableStatus(v *metadatasuggestion.Status) *MetadataSuggestionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModifiedValue sets the "modified_value" field.
func (_u *MetadataSuggestionUpdate) SetModifiedValue(v map[string]interface{}) *MetadataSuggestionUpdate {
	_u.mutation.SetModifiedValue(v)
	return _u
}

// ClearModifiedValue clears the value of the "modified_value" field.
func (_u *MetadataSuggestionUpdate) ClearModifiedValue() *MetadataSuggestionUpdate {
	_u.mutation.ClearModifiedValue()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *MetadataSuggestionUpdate) SetReviewedBy(v string) *MetadataSuggestionUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *MetadataSuggestionUpdate) SetNillableReviewedBy(v *string) *MetadataSuggestionUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *MetadataSuggestionUpdate) ClearReviewedBy() *MetadataSuggestionUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *MetadataSuggestionUpdate) SetReviewedAt(v time.Time) *MetadataSuggestionUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *MetadataSuggestionUpdate) SetNillableReviewedAt(v *time.Time) *MetadataSuggestionUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *MetadataSuggestionUpdate) ClearReviewedAt() *MetadataSuggestionUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the MetadataSuggestionMutation object of the builder.
func (_u *MetadataSuggestionUpdate) Mutation() *MetadataSuggestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MetadataSuggestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetadataSuggestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MetadataSuggestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetadataSuggestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MetadataSuggestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := metadatasuggestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetadataSuggestionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := metadatasuggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MetadataSuggestion.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MetadataSuggestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metadatasuggestion.Table, metadatasuggestion.Columns, sqlgraph.NewFieldSpec(metadatasuggestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(metadatasuggestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(metadatasuggestion.FieldReasoning, field.TypeString)
	}
	if _u.mutation.PatternCleared() {
		_spec.ClearField(metadatasuggestion.FieldPattern, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(metadatasuggestion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModifiedValue(); ok {
		_spec.SetField(metadatasuggestion.FieldModifiedValue, field.TypeJSON, value)
	}
	if _u.mutation.ModifiedValueCleared() {
		_spec.ClearField(metadatasuggestion.FieldModifiedValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(metadatasuggestion.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(metadatasuggestion.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(metadatasuggestion.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(metadatasuggestion.FieldReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metadatasuggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MetadataSuggestionUpdateOne is the builder for updating a single MetadataSuggestion entity.
type MetadataSuggestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MetadataSuggestionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MetadataSuggestionUpdateOne) SetUpdatedAt(v time.Time) *MetadataSuggestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MetadataSuggestionUpdateOne) SetStatus(v metadatasuggestion.Status) *MetadataSuggestionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MetadataSuggestionUpdateOne) SetNillableStatus(v *metadatasuggestion.Status) *MetadataSuggestionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModifiedValue sets the "modified_value" field.
func (_u *MetadataSuggestionUpdateOne) SetModifiedValue(v map[string]interface{}) *MetadataSuggestionUpdateOne {
	_u.mutation.SetModifiedValue(v)
	return _u
}

// ClearModifiedValue clears the value of the "modified_value" field.
func (_u *MetadataSuggestionUpdateOne) ClearModifiedValue() *MetadataSuggestionUpdateOne {
	_u.mutation.ClearModifiedValue()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *MetadataSuggestionUpdateOne) SetReviewedBy(v string) *MetadataSuggestionUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *MetadataSuggestionUpdateOne) SetNillableReviewedBy(v *string) *MetadataSuggestionUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *MetadataSuggestionUpdateOne) ClearReviewedBy() *MetadataSuggestionUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *MetadataSuggestionUpdateOne) SetReviewedAt(v time.Time) *MetadataSuggestionUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *MetadataSuggestionUpdateOne) SetNillableReviewedAt(v *time.Time) *MetadataSuggestionUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *MetadataSuggestionUpdateOne) ClearReviewedAt() *MetadataSuggestionUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the MetadataSuggestionMutation object of the builder.
func (_u *MetadataSuggestionUpdateOne) Mutation() *MetadataSuggestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the MetadataSuggestionUpdate builder.
func (_u *MetadataSuggestionUpdateOne) Where(ps ...predicate.MetadataSuggestion) *MetadataSuggestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MetadataSuggestionUpdateOne) Select(field string, fields ...string) *MetadataSuggestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MetadataSuggestion entity.
func (_u *MetadataSuggestionUpdateOne) Save(ctx context.Context) (*MetadataSuggestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetadataSuggestionUpdateOne) SaveX(ctx context.Context) *MetadataSuggestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MetadataSuggestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetadataSuggestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MetadataSuggestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := metadatasuggestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetadataSuggestionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := metadatasuggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MetadataSuggestion.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MetadataSuggestionUpdateOne) sqlSave(ctx context.Context) (_node *MetadataSuggestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metadatasuggestion.Table, metadatasuggestion.Columns, sqlgraph.NewFieldSpec(metadatasuggestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MetadataSuggestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, metadatasuggestion.FieldID)
		for _, f := range fields {
			if !metadatasuggestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != metadatasuggestion.FieldID {
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
		_spec.SetField(metadatasuggestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(metadatasuggestion.FieldReasoning, field.TypeString)
	}
	if _u.mutation.PatternCleared() {
		_spec.ClearField(metadatasuggestion.FieldPattern, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(metadatasuggestion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModifiedValue(); ok {
		_spec.SetField(metadatasuggestion.FieldModifiedValue, field.TypeJSON, value)
	}
	if _u.mutation.ModifiedValueCleared() {
		_spec.ClearField(metadatasuggestion.FieldModifiedValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(metadatasuggestion.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(metadatasuggestion.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(metadatasuggestion.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(metadatasuggestion.FieldReviewedAt, field.TypeTime)
	}
	_node = &MetadataSuggestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metadatasuggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
