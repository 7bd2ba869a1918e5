// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/entitycommunitymembership"
	"iou-platform.io/iou/ent/predicate"
)

// EntityCommunityMembershipUpdate is the builder for updating EntityCommunityMembership entities.
type EntityCommunityMembershipUpdate struct {
	config
	hooks    []Hook
	mutation *EntityCommunityMembershipMutation
}

// Where appends a list predicates to the EntityCommunityMembershipUpdate builder.
func (_u *EntityCommunityMembershipUpdate) Where(ps ...predicate.EntityCommunityMembership) *EntityCommunityMembershipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityCommunityMembershipUpdate) SetEntityID(v string) *EntityCommunityMembershipUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityCommunityMembershipUpdate) SetNillableEntityID(v *string) *EntityCommunityMembershipUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// Mutation returns the EntityCommunityMembershipMutation object of the builder.
func (_u *EntityCommunityMembershipUpdate) Mutation() *EntityCommunityMembershipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityCommunityMembershipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityCommunityMembershipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityCommunityMembershipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityCommunityMembershipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityCommunityMembershipUpdate) check() error {
	if v, ok := _u.mutation.EntityID(); ok {
		if err := entitycommunitymembership.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityCommunityMembership.entity_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityCommunityMembershipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitycommunitymembership.Table, entitycommunitymembership.Columns, sqlgraph.NewFieldSpec(entitycommunitymembership.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(entitycommunitymembership.FieldEntityID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitycommunitymembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityCommunityMembershipUpdateOne is the builder for updating a single EntityCommunityMembership entity.
type EntityCommunityMembershipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityCommunityMembershipMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityCommunityMembershipUpdateOne) SetEntityID(v string) *EntityCommunityMembershipUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityCommunityMembershipUpdateOne) SetNillableEntityID(v *string) *EntityCommunityMembershipUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// Mutation returns the EntityCommunityMembershipMutation object of the builder.
func (_u *EntityCommunityMembershipUpdateOne) Mutation() *EntityCommunityMembershipMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityCommunityMembershipUpdate builder.
func (_u *EntityCommunityMembershipUpdateOne) Where(ps ...predicate.EntityCommunityMembership) *EntityCommunityMembershipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityCommunityMembershipUpdateOne) Select(field string, fields ...string) *EntityCommunityMembershipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityCommunityMembership entity.
func (_u *EntityCommunityMembershipUpdateOne) Save(ctx context.Context) (*EntityCommunityMembership, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityCommunityMembershipUpdateOne) SaveX(ctx context.Context) *EntityCommunityMembership {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityCommunityMembershipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityCommunityMembershipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityCommunityMembershipUpdateOne) check() error {
	if v, ok := _u.mutation.EntityID(); ok {
		if err := entitycommunitymembership.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityCommunityMembership.entity_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EntityCommunityMembershipUpdateOne) sqlSave(ctx context.Context) (_node *EntityCommunityMembership, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitycommunitymembership.Table, entitycommunitymembership.Columns, sqlgraph.NewFieldSpec(entitycommunitymembership.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityCommunityMembership.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitycommunitymembership.FieldID)
		for _, f := range fields {
			if !entitycommunitymembership.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitycommunitymembership.FieldID {
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
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(entitycommunitymembership.FieldEntityID, field.TypeString, value)
	}
	_node = &EntityCommunityMembership{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitycommunitymembership.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
