// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/businessrule"
)

// BusinessRuleCreate is the builder for creating a BusinessRule entity.
type BusinessRuleCreate struct {
	config
	mutation *BusinessRuleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessRuleCreate) SetCreatedAt(v time.Time) *BusinessRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessRuleCreate) SetNillableCreatedAt(v *time.Time) *BusinessRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessRuleCreate) SetUpdatedAt(v time.Time) *BusinessRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessRuleCreate) SetNillableUpdatedAt(v *time.Time) *BusinessRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *BusinessRuleCreate) SetName(v string) *BusinessRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *BusinessRuleCreate) SetDescription(v string) *BusinessRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *BusinessRuleCreate) SetNillableDescription(v *string) *BusinessRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRuleLogic sets the "rule_logic" field.
func (_c *BusinessRuleCreate) SetRuleLogic(v map[string]interface{}) *BusinessRuleCreate {
	_c.mutation.SetRuleLogic(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *BusinessRuleCreate) SetAction(v map[string]interface{}) *BusinessRuleCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetDomainTypes sets the "domain_types" field.
func (_c *BusinessRuleCreate) SetDomainTypes(v []string) *BusinessRuleCreate {
	_c.mutation.SetDomainTypes(v)
	return _c
}

// SetObjectTypes sets the "object_types" field.
func (_c *BusinessRuleCreate) SetObjectTypes(v []string) *BusinessRuleCreate {
	_c.mutation.SetObjectTypes(v)
	return _c
}

// SetValidFrom sets the "valid_from" field.
func (_c *BusinessRuleCreate) SetValidFrom(v time.Time) *BusinessRuleCreate {
	_c.mutation.SetValidFrom(v)
	return _c
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_c *BusinessRuleCreate) SetNillableValidFrom(v *time.Time) *BusinessRuleCreate {
	if v != nil {
		_c.SetValidFrom(*v)
	}
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *BusinessRuleCreate) SetValidUntil(v time.Time) *BusinessRuleCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_c *BusinessRuleCreate) SetNillableValidUntil(v *time.Time) *BusinessRuleCreate {
	if v != nil {
		_c.SetValidUntil(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *BusinessRuleCreate) SetActive(v bool) *BusinessRuleCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *BusinessRuleCreate) SetNillableActive(v *bool) *BusinessRuleCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *BusinessRuleCreate) SetCreatedBy(v string) *BusinessRuleCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *BusinessRuleCreate) SetNillableCreatedBy(v *string) *BusinessRuleCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessRuleCreate) SetID(v string) *BusinessRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BusinessRuleMutation object of the builder.
func (_c *BusinessRuleCreate) Mutation() *BusinessRuleMutation {
	return _c.mutation
}

// Save creates the BusinessRule in the database.
func (_c *BusinessRuleCreate) Save(ctx context.Context) (*BusinessRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessRuleCreate) SaveX(ctx context.Context) *BusinessRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessRuleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := businessrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := businessrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := businessrule.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessRuleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BusinessRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BusinessRule.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "BusinessRule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := businessrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BusinessRule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleLogic(); !ok {
		return &ValidationError{Name: "rule_logic", err: errors.New(`ent: missing required field "BusinessRule.rule_logic"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "BusinessRule.action"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "BusinessRule.active"`)}
	}
	return nil
}

func (_c *BusinessRuleCreate) sqlSave(ctx context.Context) (*BusinessRule, error) {
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
			return nil, fmt.Errorf("unexpected BusinessRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusinessRuleCreate) createSpec() (*BusinessRule, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businessrule.Table, sqlgraph.NewFieldSpec(businessrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(businessrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(businessrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(businessrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(businessrule.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.RuleLogic(); ok {
		_spec.SetField(businessrule.FieldRuleLogic, field.TypeJSON, value)
		_node.RuleLogic = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(businessrule.FieldAction, field.TypeJSON, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.DomainTypes(); ok {
		_spec.SetField(businessrule.FieldDomainTypes, field.TypeJSON, value)
		_node.DomainTypes = value
	}
	if value, ok := _c.mutation.ObjectTypes(); ok {
		_spec.SetField(businessrule.FieldObjectTypes, field.TypeJSON, value)
		_node.ObjectTypes = value
	}
	if value, ok := _c.mutation.ValidFrom(); ok {
		_spec.SetField(businessrule.FieldValidFrom, field.TypeTime, value)
		_node.ValidFrom = value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(businessrule.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(businessrule.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(businessrule.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// BusinessRuleCreateBulk is the builder for creating many BusinessRule entities in bulk.
type BusinessRuleCreateBulk struct {
	config
	err      error
	builders []*BusinessRuleCreate
}

// Save creates the BusinessRule entities in the database.
func (_c *BusinessRuleCreateBulk) Save(ctx context.Context) ([]*BusinessRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessRuleMutation)
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
func (_c *BusinessRuleCreateBulk) SaveX(ctx context.Context) []*BusinessRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
