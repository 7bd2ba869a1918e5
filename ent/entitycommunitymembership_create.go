// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/entitycommunitymembership"
)

// EntityCommunityMembershipCreate is the builder for creating a EntityCommunityMembership entity.
type EntityCommunityMembershipCreate struct {
	config
	mutation *EntityCommunityMembershipMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityCommunityMembershipCreate) SetCreatedAt(v time.Time) *EntityCommunityMembershipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityCommunityMembershipCreate) SetNillableCreatedAt(v *time.Time) *EntityCommunityMembershipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *EntityCommunityMembershipCreate) SetEntityID(v string) *EntityCommunityMembershipCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetCommunityID sets the "community_id" field.
func (_c *EntityCommunityMembershipCreate) SetCommunityID(v string) *EntityCommunityMembershipCreate {
	_c.mutation.SetCommunityID(v)
	return _c
}

// SetMembershipScore sets the "membership_score" field.
func (_c *EntityCommunityMembershipCreate) SetMembershipScore(v float64) *EntityCommunityMembershipCreate {
	_c.mutation.SetMembershipScore(v)
	return _c
}

// SetGeneration sets the "generation" field.
func (_c *EntityCommunityMembershipCreate) SetGeneration(v int64) *EntityCommunityMembershipCreate {
	_c.mutation.SetGeneration(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EntityCommunityMembershipCreate) SetID(v string) *EntityCommunityMembershipCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EntityCommunityMembershipMutation object of the builder.
func (_c *EntityCommunityMembershipCreate) Mutation() *EntityCommunityMembershipMutation {
	return _c.mutation
}

// Save creates the EntityCommunityMembership in the database.
func (_c *EntityCommunityMembershipCreate) Save(ctx context.Context) (*EntityCommunityMembership, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityCommunityMembershipCreate) SaveX(ctx context.Context) *EntityCommunityMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCommunityMembershipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCommunityMembershipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityCommunityMembershipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entitycommunitymembership.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityCommunityMembershipCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityCommunityMembership.created_at"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntityCommunityMembership.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := entitycommunitymembership.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityCommunityMembership.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommunityID(); !ok {
		return &ValidationError{Name: "community_id", err: errors.New(`ent: missing required field "EntityCommunityMembership.community_id"`)}
	}
	if v, ok := _c.mutation.CommunityID(); ok {
		if err := entitycommunitymembership.CommunityIDValidator(v); err != nil {
			return &ValidationError{Name: "community_id", err: fmt.Errorf(`ent: validator failed for field "EntityCommunityMembership.community_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MembershipScore(); !ok {
		return &ValidationError{Name: "membership_score", err: errors.New(`ent: missing required field "EntityCommunityMembership.membership_score"`)}
	}
	if v, ok := _c.mutation.MembershipScore(); ok {
		if err := entitycommunitymembership.MembershipScoreValidator(v); err != nil {
			return &ValidationError{Name: "membership_score", err: fmt.Errorf(`ent: validator failed for field "EntityCommunityMembership.membership_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Generation(); !ok {
		return &ValidationError{Name: "generation", err: errors.New(`ent: missing required field "EntityCommunityMembership.generation"`)}
	}
	return nil
}

func (_c *EntityCommunityMembershipCreate) sqlSave(ctx context.Context) (*EntityCommunityMembership, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EntityCommunityMembership.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityCommunityMembershipCreate) createSpec() (*EntityCommunityMembership, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityCommunityMembership{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitycommunitymembership.Table, sqlgraph.NewFieldSpec(entitycommunitymembership.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entitycommunitymembership.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(entitycommunitymembership.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.CommunityID(); ok {
		_spec.SetField(entitycommunitymembership.FieldCommunityID, field.TypeString, value)
		_node.CommunityID = value
	}
	if value, ok := _c.mutation.MembershipScore(); ok {
		_spec.SetField(entitycommunitymembership.FieldMembershipScore, field.TypeFloat64, value)
		_node.MembershipScore = value
	}
	if value, ok := _c.mutation.Generation(); ok {
		_spec.SetField(entitycommunitymembership.FieldGeneration, field.TypeInt64, value)
		_node.Generation = value
	}
	return _node, _spec
}

// EntityCommunityMembershipCreateBulk is the builder for creating many EntityCommunityMembership entities in bulk.
type EntityCommunityMembershipCreateBulk struct {
	config
	err      error
	builders []*EntityCommunityMembershipCreate
}

// Save creates the EntityCommunityMembership entities in the database.
func (_c *EntityCommunityMembershipCreateBulk) Save(ctx context.Context) ([]*EntityCommunityMembership, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityCommunityMembership, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityCommunityMembershipMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EntityCommunityMembershipCreateBulk) SaveX(ctx context.Context) []*EntityCommunityMembership {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCommunityMembershipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCommunityMembershipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
