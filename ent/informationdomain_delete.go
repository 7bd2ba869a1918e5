// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/informationdomain"
	"iou-platform.io/iou/ent/predicate"
)

// InformationDomainDelete is the builder for deleting a InformationDomain entity.
type InformationDomainDelete struct {
	config
	hooks    []Hook
	mutation *InformationDomainMutation
}

// Where appends a list predicates to the InformationDomainDelete builder.
func (_d *InformationDomainDelete) Where(ps ...predicate.InformationDomain) *InformationDomainDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InformationDomainDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InformationDomainDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InformationDomainDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(informationdomain.Table, sqlgraph.NewFieldSpec(informationdomain.FieldID, field.TypeString))
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

// InformationDomainDeleteOne is the builder for deleting a single InformationDomain entity.
type InformationDomainDeleteOne struct {
	_d *InformationDomainDelete
}

// Where appends a list predicates to the InformationDomainDelete builder.
func (_d *InformationDomainDeleteOne) Where(ps ...predicate.InformationDomain) *InformationDomainDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InformationDomainDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{informationdomain.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InformationDomainDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
