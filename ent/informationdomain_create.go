// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/informationdomain"
)

// InformationDomainCreate is the builder for creating a InformationDomain entity.
type InformationDomainCreate struct {
	config
	mutation *InformationDomainMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *InformationDomainCreate) SetCreatedAt(v time.Time) *InformationDomainCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InformationDomainCreate) SetNillableCreatedAt(v *time.Time) *InformationDomainCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InformationDomainCreate) SetUpdatedAt(v time.Time) *InformationDomainCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InformationDomainCreate) SetNillableUpdatedAt(v *time.Time) *InformationDomainCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *InformationDomainCreate) SetName(v string) *InformationDomainCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InformationDomainCreate) SetDescription(v string) *InformationDomainCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *InformationDomainCreate) SetNillableDescription(v *string) *InformationDomainCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDomainType sets the "domain_type" field.
func (_c *InformationDomainCreate) SetDomainType(v informationdomain.DomainType) *InformationDomainCreate {
	_c.mutation.SetDomainType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *InformationDomainCreate) SetStatus(v informationdomain.Status) *InformationDomainCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InformationDomainCreate) SetNillableStatus(v *informationdomain.Status) *InformationDomainCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *InformationDomainCreate) SetOrganizationID(v string) *InformationDomainCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *InformationDomainCreate) SetOwnerUserID(v string) *InformationDomainCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_c *InformationDomainCreate) SetNillableOwnerUserID(v *string) *InformationDomainCreate {
	if v != nil {
		_c.SetOwnerUserID(*v)
	}
	return _c
}

// SetParentDomainID sets the "parent_domain_id" field.
func (_c *InformationDomainCreate) SetParentDomainID(v string) *InformationDomainCreate {
	_c.mutation.SetParentDomainID(v)
	return _c
}

// SetNillableParentDomainID sets the "parent_domain_id" field if the given value is not nil.
func (_c *InformationDomainCreate) SetNillableParentDomainID(v *string) *InformationDomainCreate {
	if v != nil {
		_c.SetParentDomainID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *InformationDomainCreate) SetMetadata(v map[string]interface{}) *InformationDomainCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InformationDomainCreate) SetID(v string) *InformationDomainCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InformationDomainMutation object of the builder.
func (_c *InformationDomainCreate) Mutation() *InformationDomainMutation {
	return _c.mutation
}

// Save creates the InformationDomain in the database.
func (_c *InformationDomainCreate) Save(ctx context.Context) (*InformationDomain, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InformationDomainCreate) SaveX(ctx context.Context) *InformationDomain {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InformationDomainCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InformationDomainCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InformationDomainCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := informationdomain.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := informationdomain.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := informationdomain.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InformationDomainCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InformationDomain.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InformationDomain.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "InformationDomain.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := informationdomain.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InformationDomain.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DomainType(); !ok {
		return &ValidationError{Name: "domain_type", err: errors.New(`ent: missing required field "InformationDomain.domain_type"`)}
	}
	if v, ok := _c.mutation.DomainType(); ok {
		if err := informationdomain.DomainTypeValidator(v); err != nil {
			return &ValidationError{Name: "domain_type", err: fmt.Errorf(`ent: validator failed for field "InformationDomain.domain_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InformationDomain.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := informationdomain.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InformationDomain.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "InformationDomain.organization_id"`)}
	}
	if v, ok := _c.mutation.OrganizationID(); ok {
		if err := informationdomain.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "InformationDomain.organization_id": %w`, err)}
		}
	}
	return nil
}

func (_c *InformationDomainCreate) sqlSave(ctx context.Context) (*InformationDomain, error) {
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
			return nil, fmt.Errorf("unexpected InformationDomain.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InformationDomainCreate) createSpec() (*InformationDomain, *sqlgraph.CreateSpec) {
	var (
		_node = &InformationDomain{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(informationdomain.Table, sqlgraph.NewFieldSpec(informationdomain.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(informationdomain.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(informationdomain.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(informationdomain.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(informationdomain.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.DomainType(); ok {
		_spec.SetField(informationdomain.FieldDomainType, field.TypeEnum, value)
		_node.DomainType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(informationdomain.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(informationdomain.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.OwnerUserID(); ok {
		_spec.SetField(informationdomain.FieldOwnerUserID, field.TypeString, value)
		_node.OwnerUserID = value
	}
	if value, ok := _c.mutation.ParentDomainID(); ok {
		_spec.SetField(informationdomain.FieldParentDomainID, field.TypeString, value)
		_node.ParentDomainID = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(informationdomain.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// InformationDomainCreateBulk is the builder for creating many InformationDomain entities in bulk.
type InformationDomainCreateBulk struct {
	config
	err      error
	builders []*InformationDomainCreate
}

// Save creates the InformationDomain entities in the database.
func (_c *InformationDomainCreateBulk) Save(ctx context.Context) ([]*InformationDomain, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InformationDomain, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InformationDomainMutation)
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
func (_c *InformationDomainCreateBulk) SaveX(ctx context.Context) []*InformationDomain {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InformationDomainCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InformationDomainCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
