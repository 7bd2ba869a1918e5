// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/ruleexecution"
)

// RuleExecutionCreate is the builder for creating a RuleExecution entity.
type RuleExecutionCreate struct {
	config
	mutation *RuleExecutionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RuleExecutionCreate) SetCreatedAt(v time.Time) *RuleExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RuleExecutionCreate) SetNillableCreatedAt(v *time.Time) *RuleExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *RuleExecutionCreate) SetRuleID(v string) *RuleExecutionCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetObjectID sets the "object_id" field.
func (_c *RuleExecutionCreate) SetObjectID(v string) *RuleExecutionCreate {
	_c.mutation.SetObjectID(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *RuleExecutionCreate) SetSuccess(v bool) *RuleExecutionCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetMatched sets the "matched" field.
func (_c *RuleExecutionCreate) SetMatched(v bool) *RuleExecutionCreate {
	_c.mutation.SetMatched(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *RuleExecutionCreate) SetResult(v map[string]interface{}) *RuleExecutionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *RuleExecutionCreate) SetErrorDetail(v string) *RuleExecutionCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *RuleExecutionCreate) SetNillableErrorDetail(v *string) *RuleExecutionCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RuleExecutionCreate) SetID(v string) *RuleExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RuleExecutionMutation object of the builder.
func (_c *RuleExecutionCreate) Mutation() *RuleExecutionMutation {
	return _c.mutation
}

// Save creates the RuleExecution in the database.
func (_c *RuleExecutionCreate) Save(ctx context.Context) (*RuleExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuleExecutionCreate) SaveX(ctx context.Context) *RuleExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuleExecutionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ruleexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuleExecutionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RuleExecution.created_at"`)}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "RuleExecution.rule_id"`)}
	}
	if v, ok := _c.mutation.RuleID(); ok {
		if err := ruleexecution.RuleIDValidator(v); err != nil {
			return &ValidationError{Name: "rule_id", err: fmt.Errorf(`ent: validator failed for field "RuleExecution.rule_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectID(); !ok {
		return &ValidationError{Name: "object_id", err: errors.New(`ent: missing required field "RuleExecution.object_id"`)}
	}
	if v, ok := _c.mutation.ObjectID(); ok {
		if err := ruleexecution.ObjectIDValidator(v); err != nil {
			return &ValidationError{Name: "object_id", err: fmt.Errorf(`ent: validator failed for field "RuleExecution.object_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "RuleExecution.success"`)}
	}
	if _, ok := _c.mutation.Matched(); !ok {
		return &ValidationError{Name: "matched", err: errors.New(`ent: missing required field "RuleExecution.matched"`)}
	}
	return nil
}

func (_c *RuleExecutionCreate) sqlSave(ctx context.Context) (*RuleExecution, error) {
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
			return nil, fmt.Errorf("unexpected RuleExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RuleExecutionCreate) createSpec() (*RuleExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &RuleExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ruleexecution.Table, sqlgraph.NewFieldSpec(ruleexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ruleexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(ruleexecution.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.ObjectID(); ok {
		_spec.SetField(ruleexecution.FieldObjectID, field.TypeString, value)
		_node.ObjectID = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(ruleexecution.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Matched(); ok {
		_spec.SetField(ruleexecution.FieldMatched, field.TypeBool, value)
		_node.Matched = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(ruleexecution.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(ruleexecution.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = value
	}
	return _node, _spec
}

// RuleExecutionCreateBulk is the builder for creating many RuleExecution entities in bulk.
type RuleExecutionCreateBulk struct {
	config
	err      error
	builders []*RuleExecutionCreate
}

// Save creates the RuleExecution entities in the database.
func (_c *RuleExecutionCreateBulk) Save(ctx context.Context) ([]*RuleExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RuleExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuleExecutionMutation)
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
func (_c *RuleExecutionCreateBulk) SaveX(ctx context.Context) []*RuleExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
