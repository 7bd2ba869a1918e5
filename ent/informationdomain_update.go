// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/informationdomain"
	"iou-platform.io/iou/ent/predicate"
)

// InformationDomainUpdate is the builder for updating InformationDomain entities.
type InformationDomainUpdate struct {
	config
	hooks    []Hook
	mutation *InformationDomainMutation
}

// Where appends a list predicates to the InformationDomainUpdate builder.
func (_u *InformationDomainUpdate) Where(ps ...predicate.InformationDomain) *InformationDomainUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InformationDomainUpdate) SetUpdatedAt(v time.Time) *InformationDomainUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *InformationDomainUpdate) SetName(v string) *InformationDomainUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InformationDomainUpdate) SetNillableName(v *string) *InformationDomainUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InformationDomainUpdate) SetDescription(v string) *InformationDomainUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InformationDomainUpdate) SetNillableDescription(v *string) *InformationDomainUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InformationDomainUpdate) ClearDescription() *InformationDomainUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InformationDomainUpdate) SetStatus(v informationdomain.Status) *InformationDomainUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InformationDomainUpdate) SetNillableStatus(v *informationdomain.Status) *InformationDomainUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *InformationDomainUpdate) SetOwnerUserID(v string) *InformationDomainUpdate {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *InformationDomainUpdate) SetNillableOwnerUserID(v *string) *InformationDomainUpdate {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *InformationDomainUpdate) ClearOwnerUserID() *InformationDomainUpdate {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetParentDomainID sets the "parent_domain_id" field.
func (_u *InformationDomainUpdate) SetParentDomainID(v string) *InformationDomainUpdate {
	_u.mutation.SetParentDomainID(v)
	return _u
}

// SetNillableParentDomainID sets the "parent_domain_id" field if the given value is not nil.
func (_u *InformationDomainUpdate) SetNillableParentDomainID(v *string) *InformationDomainUpdate {
	if v != nil {
		_u.SetParentDomainID(*v)
	}
	return _u
}

// ClearParentDomainID clears the value of the "parent_domain_id" field.
func (_u *InformationDomainUpdate) ClearParentDomainID() *InformationDomainUpdate {
	_u.mutation.ClearParentDomainID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *InformationDomainUpdate) SetMetadata(v map[string]interface{}) *InformationDomainUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *InformationDomainUpdate) ClearMetadata() *InformationDomainUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the InformationDomainMutation object of the builder.
func (_u *InformationDomainUpdate) Mutation() *InformationDomainMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InformationDomainUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InformationDomainUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InformationDomainUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InformationDomainUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InformationDomainUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := informationdomain.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InformationDomainUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := informationdomain.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InformationDomain.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := informationdomain.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InformationDomain.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InformationDomainUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(informationdomain.Table, informationdomain.Columns, sqlgraph.NewFieldSpec(informationdomain.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(informationdomain.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(informationdomain.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(informationdomain.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(informationdomain.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(informationdomain.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(informationdomain.FieldOwnerUserID, field.TypeString, value)
	}
	if _u.mutation.OwnerUserIDCleared() {
		_spec.ClearField(informationdomain.FieldOwnerUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentDomainID(); ok {
		_spec.SetField(informationdomain.FieldParentDomainID, field.TypeString, value)
	}
	if _u.mutation.ParentDomainIDCleared() {
		_spec.ClearField(informationdomain.FieldParentDomainID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(informationdomain.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(informationdomain.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{informationdomain.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InformationDomainUpdateOne is the builder for updating a single InformationDomain entity.
type InformationDomainUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InformationDomainMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InformationDomainUpdateOne) SetUpdatedAt(v time.Time) *InformationDomainUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *InformationDomainUpdateOne) SetName(v string) *InformationDomainUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InformationDomainUpdateOne) SetNillableName(v *string) *InformationDomainUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InformationDomainUpdateOne) SetDescription(v string) *InformationDomainUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InformationDomainUpdateOne) SetNillableDescription(v *string) *InformationDomainUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InformationDomainUpdateOne) ClearDescription() *InformationDomainUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InformationDomainUpdateOne) SetStatus(v informationdomain.Status) *InformationDomainUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InformationDomainUpdateOne) SetNillableStatus(v *informationdomain.Status) *InformationDomainUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *InformationDomainUpdateOne) SetOwnerUserID(v string) *InformationDomainUpdateOne {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *InformationDomainUpdateOne) SetNillableOwnerUserID(v *string) *InformationDomainUpdateOne {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (_u *InformationDomainUpdateOne) ClearOwnerUserID() *InformationDomainUpdateOne {
	_u.mutation.ClearOwnerUserID()
	return _u
}

// SetParentDomainID sets the "parent_domain_id" field.
func (_u *InformationDomainUpdateOne) SetParentDomainID(v string) *InformationDomainUpdateOne {
	_u.mutation.SetParentDomainID(v)
	return _u
}

// SetNillableParentDomainID sets the "parent_domain_id" field if the given value is not nil.
func (_u *InformationDomainUpdateOne) SetNillableParentDomainID(v *string) *InformationDomainUpdateOne {
	if v != nil {
		_u.SetParentDomainID(*v)
	}
	return _u
}

// ClearParentDomainID clears the value of the "parent_domain_id" field.
func (_u *InformationDomainUpdateOne) ClearParentDomainID() *InformationDomainUpdateOne {
	_u.mutation.ClearParentDomainID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *InformationDomainUpdateOne) SetMetadata(v map[string]interface{}) *InformationDomainUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *InformationDomainUpdateOne) ClearMetadata() *InformationDomainUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the InformationDomainMutation object of the builder.
func (_u *InformationDomainUpdateOne) Mutation() *InformationDomainMutation {
	return _u.mutation
}

// Where appends a list predicates to the InformationDomainUpdate builder.
func (_u *InformationDomainUpdateOne) Where(ps ...predicate.InformationDomain) *InformationDomainUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InformationDomainUpdateOne) Select(field string, fields ...string) *InformationDomainUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InformationDomain entity.
func (_u *InformationDomainUpdateOne) Save(ctx context.Context) (*InformationDomain, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InformationDomainUpdateOne) SaveX(ctx context.Context) *InformationDomain {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InformationDomainUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InformationDomainUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InformationDomainUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := informationdomain.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InformationDomainUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := informationdomain.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InformationDomain.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := informationdomain.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InformationDomain.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InformationDomainUpdateOne) sqlSave(ctx context.Context) (_node *InformationDomain, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(informationdomain.Table, informationdomain.Columns, sqlgraph.NewFieldSpec(informationdomain.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InformationDomain.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, informationdomain.FieldID)
		for _, f := range fields {
			if !informationdomain.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != informationdomain.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(informationdomain.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(informationdomain.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(informationdomain.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(informationdomain.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(informationdomain.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(informationdomain.FieldOwnerUserID, field.TypeString, value)
	}
	if _u.mutation.OwnerUserIDCleared() {
		_spec.ClearField(informationdomain.FieldOwnerUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentDomainID(); ok {
		_spec.SetField(informationdomain.FieldParentDomainID, field.TypeString, value)
	}
	if _u.mutation.ParentDomainIDCleared() {
		_spec.ClearField(informationdomain.FieldParentDomainID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(informationdomain.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(informationdomain.FieldMetadata, field.TypeJSON)
	}
	_node = &InformationDomain{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{informationdomain.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
