// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/predicate"
	"iou-platform.io/iou/ent/suggestiontrust"
)

// SuggestionTrustDelete is the builder for deleting a SuggestionTrust entity.
type SuggestionTrustDelete struct {
	config
	hooks    []Hook
	mutation *SuggestionTrustMutation
}

// Where appends a list predicates to the SuggestionTrustDelete builder.
func (_d *SuggestionTrustDelete) Where(ps ...predicate.SuggestionTrust) *SuggestionTrustDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SuggestionTrustDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SuggestionTrustDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SuggestionTrustDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(suggestiontrust.Table, sqlgraph.NewFieldSpec(suggestiontrust.FieldID, field.TypeString))
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

// SuggestionTrustDeleteOne is the builder for deleting a single SuggestionTrust entity.
type SuggestionTrustDeleteOne struct {
	_d *SuggestionTrustDelete
}

// Where appends a list predicates to the SuggestionTrustDelete builder.
func (_d *SuggestionTrustDeleteOne) Where(ps ...predicate.SuggestionTrust) *SuggestionTrustDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SuggestionTrustDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{suggestiontrust.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SuggestionTrustDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
