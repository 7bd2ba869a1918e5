// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/suggestiontrust"
)

// SuggestionTrustCreate is the builder for creating a SuggestionTrust entity.
type SuggestionTrustCreate struct {
	config
	mutation *SuggestionTrustMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SuggestionTrustCreate) SetCreatedAt(v time.Time) *SuggestionTrustCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SuggestionTrustCreate) SetNillableCreatedAt(v *time.Time) *SuggestionTrustCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SuggestionTrustCreate) SetUpdatedAt(v time.Time) *SuggestionTrustCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SuggestionTrustCreate) SetNillableUpdatedAt(v *time.Time) *SuggestionTrustCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetField sets the "field" field.
func (_c *SuggestionTrustCreate) SetField(v string) *SuggestionTrustCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *SuggestionTrustCreate) SetPattern(v string) *SuggestionTrustCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetMultiplier sets the "multiplier" field.
func (_c *SuggestionTrustCreate) SetMultiplier(v float64) *SuggestionTrustCreate {
	_c.mutation.SetMultiplier(v)
	return _c
}

// SetNillableMultiplier sets the "multiplier" field if the given value is not nil.
func (_c *SuggestionTrustCreate) SetNillableMultiplier(v *float64) *SuggestionTrustCreate {
	if v != nil {
		_c.SetMultiplier(*v)
	}
	return _c
}

// SetAcceptedCount sets the "accepted_count" field.
func (_c *SuggestionTrustCreate) SetAcceptedCount(v int) *SuggestionTrustCreate {
	_c.mutation.SetAcceptedCount(v)
	return _c
}

// SetNillableAcceptedCount sets the "accepted_count" field if the given value is not nil.
func (_c *SuggestionTrustCreate) SetNillableAcceptedCount(v *int) *SuggestionTrustCreate {
	if v != nil {
		_c.SetAcceptedCount(*v)
	}
	return _c
}

// SetRejectedCount sets the "rejected_count" field.
func (_c *SuggestionTrustCreate) SetRejectedCount(v int) *SuggestionTrustCreate {
	_c.mutation.SetRejectedCount(v)
	return _c
}

// SetNillableRejectedCount sets the "rejected_count" field if the given value is not nil.
func (_c *SuggestionTrustCreate) SetNillableRejectedCount(v *int) *SuggestionTrustCreate {
	if v != nil {
		_c.SetRejectedCount(*v)
	}
	return _c
}

// SetModifiedCount sets the "modified_count" field.
func (_c *SuggestionTrustCreate) SetModifiedCount(v int) *SuggestionTrustCreate {
	_c.mutation.SetModifiedCount(v)
	return _c
}

// SetNillableModifiedCount sets the "modified_count" field if the given value is not nil.
func (_c *SuggestionTrustCreate) SetNillableModifiedCount(v *int) *SuggestionTrustCreate {
	if v != nil {
		_c.SetModifiedCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SuggestionTrustCreate) SetID(v string) *SuggestionTrustCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SuggestionTrustMutation object of the builder.
func (_c *SuggestionTrustCreate) Mutation() *SuggestionTrustMutation {
	return _c.mutation
}

// Save creates the SuggestionTrust in the database.
func (_c *SuggestionTrustCreate) Save(ctx context.Context) (*SuggestionTrust, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuggestionTrustCreate) SaveX(ctx context.Context) *SuggestionTrust {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionTrustCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionTrustCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuggestionTrustCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := suggestiontrust.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := suggestiontrust.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Multiplier(); !ok {
		v := suggestiontrust.DefaultMultiplier
		_c.mutation.SetMultiplier(v)
	}
	if _, ok := _c.mutation.AcceptedCount(); !ok {
		v := suggestiontrust.DefaultAcceptedCount
		_c.mutation.SetAcceptedCount(v)
	}
	if _, ok := _c.mutation.RejectedCount(); !ok {
		v := suggestiontrust.DefaultRejectedCount
		_c.mutation.SetRejectedCount(v)
	}
	if _, ok := _c.mutation.ModifiedCount(); !ok {
		v := suggestiontrust.DefaultModifiedCount
		_c.mutation.SetModifiedCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuggestionTrustCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SuggestionTrust.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SuggestionTrust.updated_at"`)}
	}
	if _, ok := _c.mutation.GetField(); !ok {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required field "SuggestionTrust.field"`)}
	}
	if v, ok := _c.mutation.GetField(); ok {
		if err := suggestiontrust.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "SuggestionTrust.field": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pattern(); !ok {
		return &ValidationError{Name: "pattern", err: errors.New(`ent: missing required field "SuggestionTrust.pattern"`)}
	}
	if v, ok := _c.mutation.Pattern(); ok {
		if err := suggestiontrust.PatternValidator(v); err != nil {
			return &ValidationError{Name: "pattern", err: fmt.Errorf(`ent: validator failed for field "SuggestionTrust.pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Multiplier(); !ok {
		return &ValidationError{Name: "multiplier", err: errors.New(`ent: missing required field "SuggestionTrust.multiplier"`)}
	}
	if _, ok := _c.mutation.AcceptedCount(); !ok {
		return &ValidationError{Name: "accepted_count", err: errors.New(`ent: missing required field "SuggestionTrust.accepted_count"`)}
	}
	if _, ok := _c.mutation.RejectedCount(); !ok {
		return &ValidationError{Name: "rejected_count", err: errors.New(`ent: missing required field "SuggestionTrust.rejected_count"`)}
	}
	if _, ok := _c.mutation.ModifiedCount(); !ok {
		return &ValidationError{Name: "modified_count", err: errors.New(`ent: missing required field "SuggestionTrust.modified_count"`)}
	}
	return nil
}

func (_c *SuggestionTrustCreate) sqlSave(ctx context.Context) (*SuggestionTrust, error) {
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
			return nil, fmt.Errorf("unexpected SuggestionTrust.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SuggestionTrustCreate) createSpec() (*SuggestionTrust, *sqlgraph.CreateSpec) {
	var (
		_node = &SuggestionTrust{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suggestiontrust.Table, sqlgraph.NewFieldSpec(suggestiontrust.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(suggestiontrust.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestiontrust.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(suggestiontrust.FieldField, field.TypeString, value)
		_node.Field = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(suggestiontrust.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.Multiplier(); ok {
		_spec.SetField(suggestiontrust.FieldMultiplier, field.TypeFloat64, value)
		_node.Multiplier = value
	}
	if value, ok := _c.mutation.AcceptedCount(); ok {
		_spec.SetField(suggestiontrust.FieldAcceptedCount, field.TypeInt, value)
		_node.AcceptedCount = value
	}
	if value, ok := _c.mutation.RejectedCount(); ok {
		_spec.SetField(suggestiontrust.FieldRejectedCount, field.TypeInt, value)
		_node.RejectedCount = value
	}
	if value, ok := _c.mutation.ModifiedCount(); ok {
		_spec.SetField(suggestiontrust.FieldModifiedCount, field.TypeInt, value)
		_node.ModifiedCount = value
	}
	return _node, _spec
}

// SuggestionTrustCreateBulk is the builder for creating many SuggestionTrust entities in bulk.
type SuggestionTrustCreateBulk struct {
	config
	err      error
	builders []*SuggestionTrustCreate
}

// Save creates the SuggestionTrust entities in the database.
func (_c *SuggestionTrustCreateBulk) Save(ctx context.Context) ([]*SuggestionTrust, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SuggestionTrust, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuggestionTrustMutation)
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
func (_c *SuggestionTrustCreateBulk) SaveX(ctx context.Context) []*SuggestionTrust {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionTrustCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionTrustCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
