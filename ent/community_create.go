// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/community"
)

// CommunityCreate is the builder for creating a Community entity.
type CommunityCreate struct {
	config
	mutation *CommunityMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommunityCreate) SetCreatedAt(v time.Time) *CommunityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommunityCreate) SetNillableCreatedAt(v *time.Time) *CommunityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CommunityCreate) SetName(v string) *CommunityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CommunityCreate) SetDescription(v string) *CommunityCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CommunityCreate) SetNillableDescription(v *string) *CommunityCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *CommunityCreate) SetLevel(v int) *CommunityCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetParentCommunityID sets the "parent_community_id" field.
func (_c *CommunityCreate) SetParentCommunityID(v string) *CommunityCreate {
	_c.mutation.SetParentCommunityID(v)
	return _c
}

// SetNillableParentCommunityID sets the "parent_community_id" field if the given value is not nil.
func (_c *CommunityCreate) SetNillableParentCommunityID(v *string) *CommunityCreate {
	if v != nil {
		_c.SetParentCommunityID(*v)
	}
	return _c
}

// SetGeneration sets the "generation" field.
func (_c *CommunityCreate) SetGeneration(v int64) *CommunityCreate {
	_c.mutation.SetGeneration(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *CommunityCreate) SetKeywords(v []string) *CommunityCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CommunityCreate) SetSummary(v string) *CommunityCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *CommunityCreate) SetNillableSummary(v *string) *CommunityCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommunityCreate) SetID(v string) *CommunityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CommunityMutation object of the builder.
func (_c *CommunityCreate) Mutation() *CommunityMutation {
	return _c.mutation
}

// Save creates the Community in the database.
func (_c *CommunityCreate) Save(ctx context.Context) (*Community, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommunityCreate) SaveX(ctx context.Context) *Community {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommunityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommunityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommunityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := community.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommunityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Community.created_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Community.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := community.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Community.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Community.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := community.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Community.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Generation(); !ok {
		return &ValidationError{Name: "generation", err: errors.New(`ent: missing required field "Community.generation"`)}
	}
	return nil
}

func (_c *CommunityCreate) sqlSave(ctx context.Context) (*Community, error) {
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
			return nil, fmt.Errorf("unexpected Community.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommunityCreate) createSpec() (*Community, *sqlgraph.CreateSpec) {
	var (
		_node = &Community{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(community.Table, sqlgraph.NewFieldSpec(community.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(community.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(community.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(community.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(community.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.ParentCommunityID(); ok {
		_spec.SetField(community.FieldParentCommunityID, field.TypeString, value)
		_node.ParentCommunityID = value
	}
	if value, ok := _c.mutation.Generation(); ok {
		_spec.SetField(community.FieldGeneration, field.TypeInt64, value)
		_node.Generation = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(community.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(community.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	return _node, _spec
}

// CommunityCreateBulk is the builder for creating many Community entities in bulk.
type CommunityCreateBulk struct {
	config
	err      error
	builders []*CommunityCreate
}

// Save creates the Community entities in the database.
func (_c *CommunityCreateBulk) Save(ctx context.Context) ([]*Community, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Community, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommunityMutation)
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
func (_c *CommunityCreateBulk) SaveX(ctx context.Context) []*Community {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommunityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommunityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
