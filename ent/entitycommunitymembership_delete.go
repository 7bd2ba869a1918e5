// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/entitycommunitymembership"
	"iou-platform.io/iou/ent/predicate"
)

// EntityCommunityMembershipDelete is the builder for deleting a EntityCommunityMembership entity.
type EntityCommunityMembershipDelete struct {
	config
	hooks    []Hook
	mutation *EntityCommunityMembershipMutation
}

// Where appends a list predicates to the EntityCommunityMembershipDelete builder.
func (_d *EntityCommunityMembershipDelete) Where(ps ...predicate.EntityCommunityMembership) *EntityCommunityMembershipDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EntityCommunityMembershipDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntityCommunityMembershipDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EntityCommunityMembershipDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(entitycommunitymembership.Table, sqlgraph.NewFieldSpec(entitycommunitymembership.FieldID, field.TypeString))
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

// EntityCommunityMembershipDeleteOne is the builder for deleting a single EntityCommunityMembership entity.
type EntityCommunityMembershipDeleteOne struct {
	_d *EntityCommunityMembershipDelete
}

// Where appends a list predicates to the EntityCommunityMembershipDelete builder.
func (_d *EntityCommunityMembershipDeleteOne) Where(ps ...predicate.EntityCommunityMembership) *EntityCommunityMembershipDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EntityCommunityMembershipDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{entitycommunitymembership.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EntityCommunityMembershipDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
