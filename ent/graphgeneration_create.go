// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/graphgeneration"
)

// GraphGenerationCreate is the builder for creating a GraphGeneration entity.
type GraphGenerationCreate struct {
	config
	mutation *GraphGenerationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraphGenerationCreate) SetCreatedAt(v time.Time) *GraphGenerationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GraphGenerationCreate) SetNillableCreatedAt(v *time.Time) *GraphGenerationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetNumber sets the "number" field.
func (_c *GraphGenerationCreate) SetNumber(v int64) *GraphGenerationCreate {
	_c.mutation.SetNumber(v)
	return _c
}

// SetModularity sets the "modularity" field.
func (_c *GraphGenerationCreate) SetModularity(v float64) *GraphGenerationCreate {
	_c.mutation.SetModularity(v)
	return _c
}

// SetLevels sets the "levels" field.
func (_c *GraphGenerationCreate) SetLevels(v int) *GraphGenerationCreate {
	_c.mutation.SetLevels(v)
	return _c
}

// SetCommunityCount sets the "community_count" field.
func (_c *GraphGenerationCreate) SetCommunityCount(v int) *GraphGenerationCreate {
	_c.mutation.SetCommunityCount(v)
	return _c
}

// SetEntityCount sets the "entity_count" field.
func (_c *GraphGenerationCreate) SetEntityCount(v int) *GraphGenerationCreate {
	_c.mutation.SetEntityCount(v)
	return _c
}

// SetBudgetExceeded sets the "budget_exceeded" field.
func (_c *GraphGenerationCreate) SetBudgetExceeded(v bool) *GraphGenerationCreate {
	_c.mutation.SetBudgetExceeded(v)
	return _c
}

// SetNillableBudgetExceeded sets the "budget_exceeded" field if the given value is not nil.
func (_c *GraphGenerationCreate) SetNillableBudgetExceeded(v *bool) *GraphGenerationCreate {
	if v != nil {
		_c.SetBudgetExceeded(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GraphGenerationCreate) SetID(v string) *GraphGenerationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GraphGenerationMutation object of the builder.
func (_c *GraphGenerationCreate) Mutation() *GraphGenerationMutation {
	return _c.mutation
}

// Save creates the GraphGeneration in the database.
func (_c *GraphGenerationCreate) Save(ctx context.Context) (*GraphGeneration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphGenerationCreate) SaveX(ctx context.Context) *GraphGeneration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphGenerationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphGenerationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphGenerationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graphgeneration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.BudgetExceeded(); !ok {
		v := graphgeneration.DefaultBudgetExceeded
		_c.mutation.SetBudgetExceeded(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphGenerationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GraphGeneration.created_at"`)}
	}
	if _, ok := _c.mutation.Number(); !ok {
		return &ValidationError{Name: "number", err: errors.New(`ent: missing required field "GraphGeneration.number"`)}
	}
	if _, ok := _c.mutation.Modularity(); !ok {
		return &ValidationError{Name: "modularity", err: errors.New(`ent: missing required field "GraphGeneration.modularity"`)}
	}
	if _, ok := _c.mutation.Levels(); !ok {
		return &ValidationError{Name: "levels", err: errors.New(`ent: missing required field "GraphGeneration.levels"`)}
	}
	if _, ok := _c.mutation.CommunityCount(); !ok {
		return &ValidationError{Name: "community_count", err: errors.New(`ent: missing required field "GraphGeneration.community_count"`)}
	}
	if _, ok := _c.mutation.EntityCount(); !ok {
		return &ValidationError{Name: "entity_count", err: errors.New(`ent: missing required field "GraphGeneration.entity_count"`)}
	}
	if _, ok := _c.mutation.BudgetExceeded(); !ok {
		return &ValidationError{Name: "budget_exceeded", err: errors.New(`ent: missing required field "GraphGeneration.budget_exceeded"`)}
	}
	return nil
}

func (_c *GraphGenerationCreate) sqlSave(ctx context.Context) (*GraphGeneration, error) {
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
			return nil, fmt.Errorf("unexpected GraphGeneration.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GraphGenerationCreate) createSpec() (*GraphGeneration, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphGeneration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphgeneration.Table, sqlgraph.NewFieldSpec(graphgeneration.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graphgeneration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Number(); ok {
		_spec.SetField(graphgeneration.FieldNumber, field.TypeInt64, value)
		_node.Number = value
	}
	if value, ok := _c.mutation.Modularity(); ok {
		_spec.SetField(graphgeneration.FieldModularity, field.TypeFloat64, value)
		_node.Modularity = value
	}
	if value, ok := _c.mutation.Levels(); ok {
		_spec.SetField(graphgeneration.FieldLevels, field.TypeInt, value)
		_node.Levels = value
	}
	if value, ok := _c.mutation.CommunityCount(); ok {
		_spec.SetField(graphgeneration.FieldCommunityCount, field.TypeInt, value)
		_node.CommunityCount = value
	}
	if value, ok := _c.mutation.EntityCount(); ok {
		_spec.SetField(graphgeneration.FieldEntityCount, field.TypeInt, value)
		_node.EntityCount = value
	}
	if value, ok := _c.mutation.BudgetExceeded(); ok {
		_spec.SetField(graphgeneration.FieldBudgetExceeded, field.TypeBool, value)
		_node.BudgetExceeded = value
	}
	return _node, _spec
}

// GraphGenerationCreateBulk is the builder for creating many GraphGeneration entities in bulk.
type GraphGenerationCreateBulk struct {
	config
	err      error
	builders []*GraphGenerationCreate
}

// Save creates the GraphGeneration entities in the database.
func (_c *GraphGenerationCreateBulk) Save(ctx context.Context) ([]*GraphGeneration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphGeneration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphGenerationMutation)
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
func (_c *GraphGenerationCreateBulk) SaveX(ctx context.Context) []*GraphGeneration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphGenerationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphGenerationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
