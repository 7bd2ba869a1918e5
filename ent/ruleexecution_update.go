// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/predicate"
	"iou-platform.io/iou/ent/ruleexecution"
)

// RuleExecutionUpdate is the builder for updating RuleExecution entities.
type RuleExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *RuleExecutionMutation
}

// Where appends a list predicates to the RuleExecutionUpdate builder.
func (_u *RuleExecutionUpdate) Where(ps ...predicate.RuleExecution) *RuleExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the RuleExecutionMutation object of the builder.
func (_u *RuleExecutionUpdate) Mutation() *RuleExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuleExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuleExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RuleExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ruleexecution.Table, ruleexecution.Columns, sqlgraph.NewFieldSpec(ruleexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(ruleexecution.FieldResult, field.TypeJSON)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(ruleexecution.FieldErrorDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ruleexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuleExecutionUpdateOne is the builder for updating a single RuleExecution entity.
type RuleExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuleExecutionMutation
}

// Mutation returns the RuleExecutionMutation object of the builder.
func (_u *RuleExecutionUpdateOne) Mutation() *RuleExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RuleExecutionUpdate builder.
func (_u *RuleExecutionUpdateOne) Where(ps ...predicate.RuleExecution) *RuleExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuleExecutionUpdateOne) Select(field string, fields ...string) *RuleExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RuleExecution entity.
func (_u *RuleExecutionUpdateOne) Save(ctx context.Context) (*RuleExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleExecutionUpdateOne) SaveX(ctx context.Context) *RuleExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuleExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RuleExecutionUpdateOne) sqlSave(ctx context.Context) (_node *RuleExecution, err error) {
	_spec := sqlgraph.NewUpdateSpec(ruleexecution.Table, ruleexecution.Columns, sqlgraph.NewFieldSpec(ruleexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RuleExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ruleexecution.FieldID)
		for _, f := range fields {
			if !ruleexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ruleexecution.FieldID {
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
	if _u.mutation.ResultCleared() {
		_spec.ClearField(ruleexecution.FieldResult, field.TypeJSON)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(ruleexecution.FieldErrorDetail, field.TypeString)
	}
	_node = &RuleExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ruleexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
