// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/graphgeneration"
	"iou-platform.io/iou/ent/predicate"
)

// GraphGenerationUpdate is the builder for updating GraphGeneration entities.
type GraphGenerationUpdate struct {
	config
	hooks    []Hook
	mutation *GraphGenerationMutation
}

// Where appends a list predicates to the GraphGenerationUpdate builder.
func (_u *GraphGenerationUpdate) Where(ps ...predicate.GraphGeneration) *GraphGenerationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the GraphGenerationMutation object of the builder.
func (_u *GraphGenerationUpdate) Mutation() *GraphGenerationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphGenerationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphGenerationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphGenerationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphGenerationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GraphGenerationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(graphgeneration.Table, graphgeneration.Columns, sqlgraph.NewFieldSpec(graphgeneration.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphgeneration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphGenerationUpdateOne is the builder for updating a single GraphGeneration entity.
type GraphGenerationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphGenerationMutation
}

// Mutation returns the GraphGenerationMutation object of the builder.
func (_u *GraphGenerationUpdateOne) Mutation() *GraphGenerationMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphGenerationUpdate builder.
func (_u *GraphGenerationUpdateOne) Where(ps ...predicate.GraphGeneration) *GraphGenerationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphGenerationUpdateOne) Select(field string, fields ...string) *GraphGenerationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphGeneration entity.
func (_u *GraphGenerationUpdateOne) Save(ctx context.Context) (*GraphGeneration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphGenerationUpdateOne) SaveX(ctx context.Context) *GraphGeneration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphGenerationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphGenerationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GraphGenerationUpdateOne) sqlSave(ctx context.Context) (_node *GraphGeneration, err error) {
	_spec := sqlgraph.NewUpdateSpec(graphgeneration.Table, graphgeneration.Columns, sqlgraph.NewFieldSpec(graphgeneration.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphGeneration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphgeneration.FieldID)
		for _, f := range fields {
			if !graphgeneration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphgeneration.FieldID {
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
	_node = &GraphGeneration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphgeneration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
