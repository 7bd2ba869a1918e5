// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/entityrelationship"
)

// EntityRelationshipCreate is the builder for creating a EntityRelationship entity.
type EntityRelationshipCreate struct {
	config
	mutation *EntityRelationshipMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityRelationshipCreate) SetCreatedAt(v time.Time) *EntityRelationshipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityRelationshipCreate) SetNillableCreatedAt(v *time.Time) *EntityRelationshipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EntityRelationshipCreate) SetUpdatedAt(v time.Time) *EntityRelationshipCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EntityRelationshipCreate) SetNillableUpdatedAt(v *time.Time) *EntityRelationshipCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSourceEntityID sets the "source_entity_id" field.
func (_c *EntityRelationshipCreate) SetSourceEntityID(v string) *EntityRelationshipCreate {
	_c.mutation.SetSourceEntityID(v)
	return _c
}

// SetTargetEntityID sets the "target_entity_id" field.
func (_c *EntityRelationshipCreate) SetTargetEntityID(v string) *EntityRelationshipCreate {
	_c.mutation.SetTargetEntityID(v)
	return _c
}

// SetRelationshipType sets the "relationship_type" field.
func (_c *EntityRelationshipCreate) SetRelationshipType(v entityrelationship.RelationshipType) *EntityRelationshipCreate {
	_c.mutation.SetRelationshipType(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *EntityRelationshipCreate) SetWeight(v float64) *EntityRelationshipCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EntityRelationshipCreate) SetConfidence(v float64) *EntityRelationshipCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetObservations sets the "observations" field.
func (_c *EntityRelationshipCreate) SetObservations(v int) *EntityRelationshipCreate {
	_c.mutation.SetObservations(v)
	return _c
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_c *EntityRelationshipCreate) SetNillableObservations(v *int) *EntityRelationshipCreate {
	if v != nil {
		_c.SetObservations(*v)
	}
	return _c
}

// SetLastObjectID sets the "last_object_id" field.
func (_c *EntityRelationshipCreate) SetLastObjectID(v string) *EntityRelationshipCreate {
	_c.mutation.SetLastObjectID(v)
	return _c
}

// SetNillableLastObjectID sets the "last_object_id" field if the given value is not nil.
func (_c *EntityRelationshipCreate) SetNillableLastObjectID(v *string) *EntityRelationshipCreate {
	if v != nil {
		_c.SetLastObjectID(*v)
	}
	return _c
}

// SetSourceDomainID sets the "source_domain_id" field.
func (_c *EntityRelationshipCreate) SetSourceDomainID(v string) *EntityRelationshipCreate {
	_c.mutation.SetSourceDomainID(v)
	return _c
}

// SetNillableSourceDomainID sets the "source_domain_id" field if the given value is not nil.
func (_c *EntityRelationshipCreate) SetNillableSourceDomainID(v *string) *EntityRelationshipCreate {
	if v != nil {
		_c.SetSourceDomainID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityRelationshipCreate) SetID(v string) *EntityRelationshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EntityRelationshipMutation object of the builder.
func (_c *EntityRelationshipCreate) Mutation() *EntityRelationshipMutation {
	return _c.mutation
}

// Save creates the EntityRelationship in the database.
func (_c *EntityRelationshipCreate) Save(ctx context.Context) (*EntityRelationship, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityRelationshipCreate) SaveX(ctx context.Context) *EntityRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityRelationshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityRelationshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityRelationshipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entityrelationship.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entityrelationship.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Observations(); !ok {
		v := entityrelationship.DefaultObservations
		_c.mutation.SetObservations(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityRelationshipCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityRelationship.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EntityRelationship.updated_at"`)}
	}
	if _, ok := _c.mutation.SourceEntityID(); !ok {
		return &ValidationError{Name: "source_entity_id", err: errors.New(`ent: missing required field "EntityRelationship.source_entity_id"`)}
	}
	if v, ok := _c.mutation.SourceEntityID(); ok {
		if err := entityrelationship.SourceEntityIDValidator(v); err != nil {
			return &ValidationError{Name: "source_entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.source_entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetEntityID(); !ok {
		return &ValidationError{Name: "target_entity_id", err: errors.New(`ent: missing required field "EntityRelationship.target_entity_id"`)}
	}
	if v, ok := _c.mutation.TargetEntityID(); ok {
		if err := entityrelationship.TargetEntityIDValidator(v); err != nil {
			return &ValidationError{Name: "target_entity_id", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.target_entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RelationshipType(); !ok {
		return &ValidationError{Name: "relationship_type", err: errors.New(`ent: missing required field "EntityRelationship.relationship_type"`)}
	}
	if v, ok := _c.mutation.RelationshipType(); ok {
		if err := entityrelationship.RelationshipTypeValidator(v); err != nil {
			return &ValidationError{Name: "relationship_type", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.relationship_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "EntityRelationship.weight"`)}
	}
	if v, ok := _c.mutation.Weight(); ok {
		if err := entityrelationship.WeightValidator(v); err != nil {
			return &ValidationError{Name: "weight", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.weight": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EntityRelationship.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := entityrelationship.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "EntityRelationship.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Observations(); !ok {
		return &ValidationError{Name: "observations", err: errors.New(`ent: missing required field "EntityRelationship.observations"`)}
	}
	return nil
}

func (_c *EntityRelationshipCreate) sqlSave(ctx context.Context) (*EntityRelationship, error) {
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
			return nil, fmt.Errorf("unexpected EntityRelationship.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityRelationshipCreate) createSpec() (*EntityRelationship, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityRelationship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityrelationship.Table, sqlgraph.NewFieldSpec(entityrelationship.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entityrelationship.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entityrelationship.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.SourceEntityID(); ok {
		_spec.SetField(entityrelationship.FieldSourceEntityID, field.TypeString, value)
		_node.SourceEntityID = value
	}
	if value, ok := _c.mutation.TargetEntityID(); ok {
		_spec.SetField(entityrelationship.FieldTargetEntityID, field.TypeString, value)
		_node.TargetEntityID = value
	}
	if value, ok := _c.mutation.RelationshipType(); ok {
		_spec.SetField(entityrelationship.FieldRelationshipType, field.TypeEnum, value)
		_node.RelationshipType = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(entityrelationship.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entityrelationship.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Observations(); ok {
		_spec.SetField(entityrelationship.FieldObservations, field.TypeInt, value)
		_node.Observations = value
	}
	if value, ok := _c.mutation.LastObjectID(); ok {
		_spec.SetField(entityrelationship.FieldLastObjectID, field.TypeString, value)
		_node.LastObjectID = value
	}
	if value, ok := _c.mutation.SourceDomainID(); ok {
		_spec.SetField(entityrelationship.FieldSourceDomainID, field.TypeString, value)
		_node.SourceDomainID = value
	}
	return _node, _spec
}

// EntityRelationshipCreateBulk is the builder for creating many EntityRelationship entities in bulk.
type EntityRelationshipCreateBulk struct {
	config
	err      error
	builders []*EntityRelationshipCreate
}

// Save creates the EntityRelationship entities in the database.
func (_c *EntityRelationshipCreateBulk) Save(ctx context.Context) ([]*EntityRelationship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityRelationship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityRelationshipMutation)
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
func (_c *EntityRelationshipCreateBulk) SaveX(ctx context.Context) []*EntityRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityRelationshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityRelationshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
