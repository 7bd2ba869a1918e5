// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/metadatasuggestion"
	"iou-platform.io/iou/ent/predicate"
)

// MetadataSuggestionDelete is the builder for deleting a MetadataSuggestion entity.
type MetadataSuggestionDelete struct {
	config
	hooks    []Hook
	mutation *MetadataSuggestionMutation
}

// Where appends a list predicates to the MetadataSuggestionDelete builder.
func (_d *MetadataSuggestionDelete) Where(ps ...predicate.MetadataSuggestion) *MetadataSuggestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MetadataSuggestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MetadataSuggestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MetadataSuggestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(metadatasuggestion.Table, sqlgraph.NewFieldSpec(metadatasuggestion.FieldID, field.TypeString))
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

// MetadataSuggestionDeleteOne is the builder for deleting a single MetadataSuggestion entity.
type MetadataSuggestionDeleteOne struct {
	_d *MetadataSuggestionDelete
}

// Where appends a list predicates to the MetadataSuggestionDelete builder.
func (_d *MetadataSuggestionDeleteOne) Where(ps ...predicate.MetadataSuggestion) *MetadataSuggestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MetadataSuggestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{metadatasuggestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MetadataSuggestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
