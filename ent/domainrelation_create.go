// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/domainrelation"
)

// DomainRelationCreate is the builder for creating a DomainRelation entity.
type DomainRelationCreate struct {
	config
	mutation *DomainRelationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DomainRelationCreate) SetCreatedAt(v time.Time) *DomainRelationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DomainRelationCreate) SetNillableCreatedAt(v *time.Time) *DomainRelationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DomainRelationCreate) SetUpdatedAt(v time.Time) *DomainRelationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DomainRelationCreate) SetNillableUpdatedAt(v *time.Time) *DomainRelationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFromDomainID sets the "from_domain_id" field.
func (_c *DomainRelationCreate) SetFromDomainID(v string) *DomainRelationCreate {
	_c.mutation.SetFromDomainID(v)
	return _c
}

// SetToDomainID sets the "to_domain_id" field.
func (_c *DomainRelationCreate) SetToDomainID(v string) *DomainRelationCreate {
	_c.mutation.SetToDomainID(v)
	return _c
}

// SetRelationType sets the "relation_type" field.
func (_c *DomainRelationCreate) SetRelationType(v domainrelation.RelationType) *DomainRelationCreate {
	_c.mutation.SetRelationType(v)
	return _c
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_c *DomainRelationCreate) SetNillableRelationType(v *domainrelation.RelationType) *DomainRelationCreate {
	if v != nil {
		_c.SetRelationType(*v)
	}
	return _c
}

// SetStrength sets the "strength" field.
func (_c *DomainRelationCreate) SetStrength(v float64) *DomainRelationCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetDiscoveryMethod sets the "discovery_method" field.
func (_c *DomainRelationCreate) SetDiscoveryMethod(v domainrelation.DiscoveryMethod) *DomainRelationCreate {
	_c.mutation.SetDiscoveryMethod(v)
	return _c
}

// SetSharedEntityCount sets the "shared_entity_count" field.
func (_c *DomainRelationCreate) SetSharedEntityCount(v int) *DomainRelationCreate {
	_c.mutation.SetSharedEntityCount(v)
	return _c
}

// SetNillableSharedEntityCount sets the "shared_entity_count" field if the given value is not nil.
func (_c *DomainRelationCreate) SetNillableSharedEntityCount(v *int) *DomainRelationCreate {
	if v != nil {
		_c.SetSharedEntityCount(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *DomainRelationCreate) SetExplanation(v string) *DomainRelationCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *DomainRelationCreate) SetNillableExplanation(v *string) *DomainRelationCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DomainRelationCreate) SetID(v string) *DomainRelationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DomainRelationMutation object of the builder.
func (_c *DomainRelationCreate) Mutation() *DomainRelationMutation {
	return _c.mutation
}

// Save creates the DomainRelation in the database.
func (_c *DomainRelationCreate) Save(ctx context.Context) (*DomainRelation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DomainRelationCreate) SaveX(ctx context.Context) *DomainRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainRelationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainRelationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DomainRelationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := domainrelation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := domainrelation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		v := domainrelation.DefaultRelationType
		_c.mutation.SetRelationType(v)
	}
	if _, ok := _c.mutation.SharedEntityCount(); !ok {
		v := domainrelation.DefaultSharedEntityCount
		_c.mutation.SetSharedEntityCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DomainRelationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DomainRelation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DomainRelation.updated_at"`)}
	}
	if _, ok := _c.mutation.FromDomainID(); !ok {
		return &ValidationError{Name: "from_domain_id", err: errors.New(`ent: missing required field "DomainRelation.from_domain_id"`)}
	}
	if v, ok := _c.mutation.FromDomainID(); ok {
		if err := domainrelation.FromDomainIDValidator(v); err != nil {
			return &ValidationError{Name: "from_domain_id", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.from_domain_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToDomainID(); !ok {
		return &ValidationError{Name: "to_domain_id", err: errors.New(`ent: missing required field "DomainRelation.to_domain_id"`)}
	}
	if v, ok := _c.mutation.ToDomainID(); ok {
		if err := domainrelation.ToDomainIDValidator(v); err != nil {
			return &ValidationError{Name: "to_domain_id", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.to_domain_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "DomainRelation.relation_type"`)}
	}
	if v, ok := _c.mutation.RelationType(); ok {
		if err := domainrelation.RelationTypeValidator(v); err != nil {
			return &ValidationError{Name: "relation_type", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.relation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "DomainRelation.strength"`)}
	}
	if v, ok := _c.mutation.Strength(); ok {
		if err := domainrelation.StrengthValidator(v); err != nil {
			return &ValidationError{Name: "strength", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.strength": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscoveryMethod(); !ok {
		return &ValidationError{Name: "discovery_method", err: errors.New(`ent: missing required field "DomainRelation.discovery_method"`)}
	}
	if v, ok := _c.mutation.DiscoveryMethod(); ok {
		if err := domainrelation.DiscoveryMethodValidator(v); err != nil {
			return &ValidationError{Name: "discovery_method", err: fmt.Errorf(`ent: validator failed for field "DomainRelation.discovery_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SharedEntityCount(); !ok {
		return &ValidationError{Name: "shared_entity_count", err: errors.New(`ent: missing required field "DomainRelation.shared_entity_count"`)}
	}
	return nil
}

func (_c *DomainRelationCreate) sqlSave(ctx context.Context) (*DomainRelation, error) {
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
			return nil, fmt.Errorf("unexpected DomainRelation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DomainRelationCreate) createSpec() (*DomainRelation, *sqlgraph.CreateSpec) {
	var (
		_node = &DomainRelation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(domainrelation.Table, sqlgraph.NewFieldSpec(domainrelation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(domainrelation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(domainrelation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FromDomainID(); ok {
		_spec.SetField(domainrelation.FieldFromDomainID, field.TypeString, value)
		_node.FromDomainID = value
	}
	if value, ok := _c.mutation.ToDomainID(); ok {
		_spec.SetField(domainrelation.FieldToDomainID, field.TypeString, value)
		_node.ToDomainID = value
	}
	if value, ok := _c.mutation.RelationType(); ok {
		_spec.SetField(domainrelation.FieldRelationType, field.TypeEnum, value)
		_node.RelationType = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(domainrelation.FieldStrength, field.TypeFloat64, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.DiscoveryMethod(); ok {
		_spec.SetField(domainrelation.FieldDiscoveryMethod, field.TypeEnum, value)
		_node.DiscoveryMethod = value
	}
	if value, ok := _c.mutation.SharedEntityCount(); ok {
		_spec.SetField(domainrelation.FieldSharedEntityCount, field.TypeInt, value)
		_node.SharedEntityCount = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(domainrelation.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	return _node, _spec
}

// DomainRelationCreateBulk is the builder for creating many DomainRelation entities in bulk.
type DomainRelationCreateBulk struct {
	config
	err      error
	builders []*DomainRelationCreate
}

// Save creates the DomainRelation entities in the database.
func (_c *DomainRelationCreateBulk) Save(ctx context.Context) ([]*DomainRelation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DomainRelation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DomainRelationMutation)
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
func (_c *DomainRelationCreateBulk) SaveX(ctx context.Context) []*DomainRelation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainRelationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainRelationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
