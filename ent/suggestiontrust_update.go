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
	"iou-platform.io/iou/ent/predicate"
	"iou-platform.io/iou/ent/suggestiontrust"
)

// SuggestionTrustUpdate is the builder for updating SuggestionTrust entities.
type SuggestionTrustUpdate struct {
	config
	hooks    []Hook
	mutation *SuggestionTrustMutation
}

// Where appends a list predicates to the SuggestionTrustUpdate builder.
func (_u *SuggestionTrustUpdate) Where(ps ...predicate.SuggestionTrust) *SuggestionTrustUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuggestionTrustUpdate) SetUpdatedAt(v time.Time) *SuggestionTrustUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMultiplier sets the "multiplier" field.
func (_u *SuggestionTrustUpdate) SetMultiplier(v float64) *SuggestionTrustUpdate {
	_u.mutation.ResetMultiplier()
	_u.mutation.SetMultiplier(v)
	return _u
}

// SetNillableMultiplier sets the "multiplier" field if the given value is not nil.
func (_u *SuggestionTrustUpdate) SetNillableMultiplier(v *float64) *SuggestionTrustUpdate {
	if v != nil {
		_u.SetMultiplier(*v)
	}
	return _u
}

// AddMultiplier adds value to the "multiplier" field.
func (_u *SuggestionTrustUpdate) AddMultiplier(v float64) *SuggestionTrustUpdate {
	_u.mutation.AddMultiplier(v)
	return _u
}

// SetAcceptedCount sets the "accepted_count" field.
func (_u *SuggestionTrustUpdate) SetAcceptedCount(v int) *SuggestionTrustUpdate {
	_u.mutation.ResetAcceptedCount()
	_u.mutation.SetAcceptedCount(v)
	return _u
}

// SetNillableAcceptedCount sets the "accepted_count" field if the given value is not nil.
func (_u *SuggestionTrustUpdate) SetNillableAcceptedCount(v *int) *SuggestionTrustUpdate {
	if v != nil {
		_u.SetAcceptedCount(*v)
	}
	return _u
}

// AddAcceptedCount adds value to the "accepted_count" field.
func (_u *SuggestionTrustUpdate) AddAcceptedCount(v int) *SuggestionTrustUpdate {
	_u.mutation.AddAcceptedCount(v)
	return _u
}

// SetRejectedCount sets the "rejected_count" field.
func (_u *SuggestionTrustUpdate) SetRejectedCount(v int) *SuggestionTrustUpdate {
	_u.mutation.ResetRejectedCount()
	_u.mutation.SetRejectedCount(v)
	return _u
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_u *SuggestionTrustUpdate) SetNillableRejectedCount(v *int) *SuggestionTrustUpdate {
	if v != nil {
		_u.SetRejectedCount(*v)
	}
	return _u
}

// AddRejectedCount adds value to the "rejected_count" field.
func (_u *SuggestionTrustUpdate) AddRejectedCount(v int) *SuggestionTrustUpdate {
	_u.mutation.AddRejectedCount(v)
	return _u
}

// SetModifiedCount sets the "modified_count" field.
func (_u *SuggestionTrustUpdate) SetModifiedCount(v int) *SuggestionTrustUpdate {
	_u.mutation.ResetModifiedCount()
	_u.mutation.SetModifiedCount(v)
	return _u
}

// SetNillableModifiedCount sets the "modified_count" field if the given value is not nil.
func (_u *SuggestionTrustUpdate) SetNillableModifiedCount(v *int) *SuggestionTrustUpdate {
	if v != nil {
		_u.SetModifiedCount(*v)
	}
	return _u
}

// AddModifiedCount adds value to the "modified_count" field.
func (_u *SuggestionTrustUpdate) AddModifiedCount(v int) *SuggestionTrustUpdate {
	_u.mutation.AddModifiedCount(v)
	return _u
}

// Mutation returns the SuggestionTrustMutation object of the builder.
func (_u *SuggestionTrustUpdate) Mutation() *SuggestionTrustMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuggestionTrustUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionTrustUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuggestionTrustUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionTrustUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuggestionTrustUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := suggestiontrust.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SuggestionTrustUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(suggestiontrust.Table, suggestiontrust.Columns, sqlgraph.NewFieldSpec(suggestiontrust.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestiontrust.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Multiplier(); ok {
		_spec.SetField(suggestiontrust.FieldMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMultiplier(); ok {
		_spec.AddField(suggestiontrust.FieldMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AcceptedCount(); ok {
		_spec.SetField(suggestiontrust.FieldAcceptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcceptedCount(); ok {
		_spec.AddField(suggestiontrust.FieldAcceptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectedCount(); ok {
		_spec.SetField(suggestiontrust.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectedCount(); ok {
		_spec.AddField(suggestiontrust.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModifiedCount(); ok {
		_spec.SetField(suggestiontrust.FieldModifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModifiedCount(); ok {
		_spec.AddField(suggestiontrust.FieldModifiedCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestiontrust.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuggestionTrustUpdateOne is the builder for updating a single SuggestionTrust entity.
type SuggestionTrustUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuggestionTrustMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuggestionTrustUpdateOne) SetUpdatedAt(v time.Time) *SuggestionTrustUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMultiplier sets the "multiplier" field.
func (_u *SuggestionTrustUpdateOne) SetMultiplier(v float64) *SuggestionTrustUpdateOne {
	_u.mutation.ResetMultiplier()
	_u.mutation.SetMultiplier(v)
	return _u
}

// SetNillableMultiplier sets the "multiplier" field if the given value is not nil.
func (_u *SuggestionTrustUpdateOne) SetNillableMultiplier(v *float64) *SuggestionTrustUpdateOne {
	if v != nil {
		_u.SetMultiplier(*v)
	}
	return _u
}

// AddMultiplier adds value to the "multiplier" field.
func (_u *SuggestionTrustUpdateOne) AddMultiplier(v float64) *SuggestionTrustUpdateOne {
	_u.mutation.AddMultiplier(v)
	return _u
}

// SetAcceptedCount sets the "accepted_count" field.
func (_u *SuggestionTrustUpdateOne) SetAcceptedCount(v int) *SuggestionTrustUpdateOne {
	_u.mutation.ResetAcceptedCount()
	_u.mutation.SetAcceptedCount(v)
	return _u
}

// SetNillableAcceptedCount sets the "accepted_count" field if the given value is not nil.
func (_u *SuggestionTrustUpdateOne) SetNillableAcceptedCount(v *int) *SuggestionTrustUpdateOne {
	if v != nil {
		_u.SetAcceptedCount(*v)
	}
	return _u
}

// AddAcceptedCount adds value to the "accepted_count" field.
func (_u *SuggestionTrustUpdateOne) AddAcceptedCount(v int) *SuggestionTrustUpdateOne {
	_u.mutation.AddAcceptedCount(v)
	return _u
}

// SetRejectedCount sets the "rejected_count" field.
func (_u *SuggestionTrustUpdateOne) SetRejectedCount(v int) *SuggestionTrustUpdateOne {
	_u.mutation.ResetRejectedCount()
	_u.mutation.SetRejectedCount(v)
	return _u
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_u *SuggestionTrustUpdateOne) SetNillableRejectedCount(v *int) *SuggestionTrustUpdateOne {
	if v != nil {
		_u.SetRejectedCount(*v)
	}
	return _u
}

// AddRejectedCount adds value to the "rejected_count" field.
func (_u *SuggestionTrustUpdateOne) AddRejectedCount(v int) *SuggestionTrustUpdateOne {
	_u.mutation.AddRejectedCount(v)
	return _u
}

// SetModifiedCount sets the "modified_count" field.
func (_u *SuggestionTrustUpdateOne) SetModifiedCount(v int) *SuggestionTrustUpdateOne {
	_u.mutation.ResetModifiedCount()
	_u.mutation.SetModifiedCount(v)
	return _u
}

// SetNillableModifiedCount sets the "modified_count" field if the given value is not nil.
func (_u *SuggestionTrustUpdateOne) SetNillableModifiedCount(v *int) *SuggestionTrustUpdateOne {
	if v != nil {
		_u.SetModifiedCount(*v)
	}
	return _u
}

// AddModifiedCount adds value to the "modified_count" field.
func (_u *SuggestionTrustUpdateOne) AddModifiedCount(v int) *SuggestionTrustUpdateOne {
	_u.mutation.AddModifiedCount(v)
	return _u
}

// Mutation returns the SuggestionTrustMutation object of the builder.
func (_u *SuggestionTrustUpdateOne) Mutation() *SuggestionTrustMutation {
	return _u.mutation
}

// Where appends a list predicates to the SuggestionTrustUpdate builder.
func (_u *SuggestionTrustUpdateOne) Where(ps ...predicate.SuggestionTrust) *SuggestionTrustUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuggestionTrustUpdateOne) Select(field string, fields ...string) *SuggestionTrustUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SuggestionTrust entity.
func (_u *SuggestionTrustUpdateOne) Save(ctx context.Context) (*SuggestionTrust, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionTrustUpdateOne) SaveX(ctx context.Context) *SuggestionTrust {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuggestionTrustUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionTrustUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuggestionTrustUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := suggestiontrust.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SuggestionTrustUpdateOne) sqlSave(ctx context.Context) (_node *SuggestionTrust, err error) {
	_spec := sqlgraph.NewUpdateSpec(suggestiontrust.Table, suggestiontrust.Columns, sqlgraph.NewFieldSpec(suggestiontrust.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SuggestionTrust.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suggestiontrust.FieldID)
		for _, f := range fields {
			if !suggestiontrust.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suggestiontrust.FieldID {
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
		_spec.SetField(suggestiontrust.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Multiplier(); ok {
		_spec.SetField(suggestiontrust.FieldMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMultiplier(); ok {
		_spec.AddField(suggestiontrust.FieldMultiplier, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AcceptedCount(); ok {
		_spec.SetField(suggestiontrust.FieldAcceptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcceptedCount(); ok {
		_spec.AddField(suggestiontrust.FieldAcceptedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RejectedCount(); ok {
		_spec.SetField(suggestiontrust.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejectedCount(); ok {
		_spec.AddField(suggestiontrust.FieldRejectedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModifiedCount(); ok {
		_spec.SetField(suggestiontrust.FieldModifiedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModifiedCount(); ok {
		_spec.AddField(suggestiontrust.FieldModifiedCount, field.TypeInt, value)
	}
	_node = &SuggestionTrust{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestiontrust.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
