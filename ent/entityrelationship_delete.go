// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/entityrelationship"
	"iou-platform.io/iou/ent/predicate"
)

// EntityRelationshipDelete is the builder for deleting a EntityRelationship entity.
type EntityRelationshipDelete struct {
	config
	hooks    []Hook
	mutation *EntityRelationshipMutation
}

// Where appends a list predicates to the EntityRelationshipDelete builder.
func (_d *EntityRelationshipDelete) Where(ps ...predicate.EntityRelationship) *EntityRelationshipDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EntityRelationshipDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntityRelationshipDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EntityRelationshipDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(entityrelationship.Table, sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString))
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

// EntityRelationshipDeleteOne is the builder for deleting a single EntityRelationship entity.
type EntityRelationshipDeleteOne struct {
	_d *EntityRelationshipDelete
}

// Where appends a list predicates to the EntityRelationshipDelete builder.
func (_d *EntityRelationshipDeleteOne) Where(ps ...predicate.EntityRelationship) *EntityRelationshipDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EntityRelationshipDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{entityrelationship.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntityRelationshipDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
