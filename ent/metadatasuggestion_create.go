// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/metadatasuggestion"
)

// MetadataSuggestionCreate is the builder for creating a MetadataSuggestion entity.
type MetadataSuggestionCreate struct {
	config
	mutation *MetadataSuggestionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MetadataSuggestionCreate) SetCreatedAt(v time.Time) *MetadataSuggestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MetadataSuggestionCreate) SetNillableCreatedAt(v *time.Time) *MetadataSuggestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MetadataSuggestionCreate) SetUpdatedAt(v time.Time) *MetadataSuggestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MetadataSuggestionCreate) SetNillableUpdatedAt(v *time.Time) *MetadataSuggestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetObjectID sets the "object_id" field.
func (_c *MetadataSuggestionCreate) SetObjectID(v string) *MetadataSuggestionCreate {
	_c.mutation.SetObjectID(v)
	return _c
}

// SetField sets the "field" field.
func (_c *MetadataSuggestionCreate) SetField(v string) *MetadataSuggestionCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetSuggestedValue sets the "suggested_value" field.
func (_c *MetadataSuggestionCreate) SetSuggestedValue(v map[string]interface{}) *MetadataSuggestionCreate {
	_c.mutation.SetSuggestedValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MetadataSuggestionCreate) SetConfidence(v float64) *MetadataSuggestionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *MetadataSuggestionCreate) SetReasoning(v string) *MetadataSuggestionCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *MetadataSuggestionCreate) SetNillableReasoning(v *string) *MetadataSuggestionCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *MetadataSuggestionCreate) SetSource(v metadatasuggestion.Source) *MetadataSuggestionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *MetadataSuggestionCreate) SetPattern(v string) *MetadataSuggestionCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_c *MetadataSuggestionCreate) SetNillablePattern(v *string) *MetadataSuggestionCreate {
	if v != nil {
		_c.SetPattern(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MetadataSuggestionCreate) SetStatus(v metadatasuggestion.Status) *MetadataSuggestionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MetadataSuggestionCreate) SetNillableStatus(v *metadatasuggestion.Status) *MetadataSuggestionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetModifiedValue sets the "modified_value" field.
func (_c *MetadataSuggestionCreate) SetModifiedValue(v map[string]interface{}) *MetadataSuggestionCreate {
	_c.mutation.SetModifiedValue(v)
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *MetadataSuggestionCreate) SetReviewedBy(v string) *MetadataSuggestionCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *MetadataSuggestionCreate) SetNillableReviewedBy(v *string) *MetadataSuggestionCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *MetadataSuggestionCreate) SetReviewedAt(v time.Time) *MetadataSuggestionCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *MetadataSuggestionCreate) SetNillableReviewedAt(v *time.Time) *MetadataSuggestionCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MetadataSuggestionCreate) SetID(v string) *MetadataSuggestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MetadataSuggestionMutation object of the builder.
func (_c *MetadataSuggestionCreate) Mutation() *MetadataSuggestionMutation {
	return _c.mutation
}

// Save creates the MetadataSuggestion in the database.
func (_c *MetadataSuggestionCreate) Save(ctx context.Context) (*MetadataSuggestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MetadataSuggestionCreate) SaveX(ctx context.Context) *MetadataSuggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetadataSuggestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetadataSuggestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MetadataSuggestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := metadatasuggestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := metadatasuggestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := metadatasuggestion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MetadataSuggestionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MetadataSuggestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MetadataSuggestion.updated_at"`)}
	}
	if _, ok := _c.mutation.ObjectID(); !ok {
		return &ValidationError{Name: "object_id", err: errors.New(`ent: missing required field "MetadataSuggestion.object_id"`)}
	}
	if v, ok := _c.mutation.ObjectID(); ok {
		if err := metadatasuggestion.ObjectIDValidator(v); err != nil {
			return &ValidationError{Name: "object_id", err: fmt.Errorf(`ent: validator failed for field "MetadataSuggestion.object_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetField(); !ok {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required field "MetadataSuggestion.field"`)}
	}
	if v, ok := _c.mutation.GetField(); ok {
		if err := metadatasuggestion.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "MetadataSuggestion.field": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuggestedValue(); !ok {
		return &ValidationError{Name: "suggested_value", err: errors.New(`ent: missing required field "MetadataSuggestion.suggested_value"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MetadataSuggestion.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := metadatasuggestion.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MetadataSuggestion.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MetadataSuggestion.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := metadatasuggestion.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MetadataSuggestion.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MetadataSuggestion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := metadatasuggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MetadataSuggestion.status": %w`, err)}
		}
	}
	return nil
}

func (_c *MetadataSuggestionCreate) sqlSave(ctx context.Context) (*MetadataSuggestion, error) {
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
			return nil, fmt.Errorf("unexpected MetadataSuggestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MetadataSuggestionCreate) createSpec() (*MetadataSuggestion, *sqlgraph.CreateSpec) {
	var (
		_node = &MetadataSuggestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(metadatasuggestion.Table, sqlgraph.NewFieldSpec(metadatasuggestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(metadatasuggestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(metadatasuggestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ObjectID(); ok {
		_spec.SetField(metadatasuggestion.FieldObjectID, field.TypeString, value)
		_node.ObjectID = value
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(metadatasuggestion.FieldField, field.TypeString, value)
		_node.Field = value
	}
	if value, ok := _c.mutation.SuggestedValue(); ok {
		_spec.SetField(metadatasuggestion.FieldSuggestedValue, field.TypeJSON, value)
		_node.SuggestedValue = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(metadatasuggestion.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(metadatasuggestion.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(metadatasuggestion.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(metadatasuggestion.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(metadatasuggestion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ModifiedValue(); ok {
		_spec.SetField(metadatasuggestion.FieldModifiedValue, field.TypeJSON, value)
		_node.ModifiedValue = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(metadatasuggestion.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(metadatasuggestion.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = value
	}
	return _node, _spec
}

// MetadataSuggestionCreateBulk is the builder for creating many MetadataSuggestion entities in bulk.
type MetadataSuggestionCreateBulk struct {
	config
	err      error
	builders []*MetadataSuggestionCreate
}

// Save creates the MetadataSuggestion entities in the database.
func (_c *MetadataSuggestionCreateBulk) Save(ctx context.Context) ([]*MetadataSuggestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MetadataSuggestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MetadataSuggestionMutation)
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
func (_c *MetadataSuggestionCreateBulk) SaveX(ctx context.Context) []*MetadataSuggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetadataSuggestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetadataSuggestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
