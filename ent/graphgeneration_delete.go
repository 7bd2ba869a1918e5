// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/graphgeneration"
	"iou-platform.io/iou/ent/predicate"
)

// GraphGenerationDelete is the builder for deleting a GraphGeneration entity.
type GraphGenerationDelete struct {
	config
	hooks    []Hook
	mutation *GraphGenerationMutation
}

// Where appends a list predicates to the GraphGenerationDelete builder.
func (_d *GraphGenerationDelete) Where(ps ...predicate.GraphGeneration) *GraphGenerationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GraphGenerationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GraphGenerationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GraphGenerationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(graphgeneration.Table, sqlgraph.NewFieldSpec(graphgeneration.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GraphGenerationDeleteOne is the builder for deleting a single GraphGeneration entity.
type GraphGenerationDeleteOne struct {
	_d *GraphGenerationDelete
}

// Where appends a list predicates to the GraphGenerationDelete builder.
func (_d *GraphGenerationDeleteOne) Where(ps ...predicate.GraphGeneration) *GraphGenerationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GraphGenerationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{graphgeneration.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GraphGenerationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
