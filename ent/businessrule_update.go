// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"iou-platform.io/iou/ent/businessrule"
	"iou-platform.io/iou/ent/predicate"
)

// BusinessRuleUpdate is the builder for updating BusinessRule entities.
type BusinessRuleUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessRuleMutation
}

// Where appends a list predicates to the BusinessRuleUpdate builder.
func (_u *BusinessRuleUpdate) Where(ps ...predicate.BusinessRule) *BusinessRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessRuleUpdate) SetUpdatedAt(v time.Time) *BusinessRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *BusinessRuleUpdate) SetName(v string) *BusinessRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessRuleUpdate) SetNillableName(v *string) *BusinessRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BusinessRuleUpdate) SetDescription(v string) *BusinessRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BusinessRuleUpdate) SetNillableDescription(v *string) *BusinessRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BusinessRuleUpdate) ClearDescription() *BusinessRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRuleLogic sets the "rule_logic" field.
func (_u *BusinessRuleUpdate) SetRuleLogic(v map[string]interface{}) *BusinessRuleUpdate {
	_u.mutation.SetRuleLogic(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *BusinessRuleUpdate) SetAction(v map[string]interface{}) *BusinessRuleUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetDomainTypes sets the "domain_types" field.
func (_u *BusinessRuleUpdate) SetDomainTypes(v []string) *BusinessRuleUpdate {
	_u.mutation.SetDomainTypes(v)
	return _u
}

// AppendDomainTypes appends value to the "domain_types" field.
func (_u *BusinessRuleUpdate) AppendDomainTypes(v []string) *BusinessRuleUpdate {
	_u.mutation.AppendDomainTypes(v)
	return _u
}

// ClearDomainTypes clears the value of the "domain_types" field.
func (_u *BusinessRuleUpdate) ClearDomainTypes() *BusinessRuleUpdate {
	_u.mutation.ClearDomainTypes()
	return _u
}

// SetObjectTypes sets the "object_types" field.
func (_u *BusinessRuleUpdate) SetObjectTypes(v []string) *BusinessRuleUpdate {
	_u.mutation.SetObjectTypes(v)
	return _u
}

// AppendObjectTypes appends value to the "object_types" field.
func (_u *BusinessRuleUpdate) AppendObjectTypes(v []string) *BusinessRuleUpdate {
	_u.mutation.AppendObjectTypes(v)
	return _u
}

// ClearObjectTypes clears the value of the "object_types" field.
func (_u *BusinessRuleUpdate) ClearObjectTypes() *BusinessRuleUpdate {
	_u.mutation.ClearObjectTypes()
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *BusinessRuleUpdate) SetValidFrom(v time.Time) *BusinessRuleUpdate {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *BusinessRuleUpdate) SetNillableValidFrom(v *time.Time) *BusinessRuleUpdate {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *BusinessRuleUpdate) ClearValidFrom() *BusinessRuleUpdate {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *BusinessRuleUpdate) SetValidUntil(v time.Time) *BusinessRuleUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *BusinessRuleUpdate) SetNillableValidUntil(v *time.Time) *BusinessRuleUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *BusinessRuleUpdate) ClearValidUntil() *BusinessRuleUpdate {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetActive sets the "active" field.
func (_u *BusinessRuleUpdate) SetActive(v bool) *BusinessRuleUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *BusinessRuleUpdate) SetNillableActive(v *bool) *BusinessRuleUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *BusinessRuleUpdate) SetCreatedBy(v string) *BusinessRuleUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *BusinessRuleUpdate) SetNillableCreatedBy(v *string) *BusinessRuleUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *BusinessRuleUpdate) ClearCreatedBy() *BusinessRuleUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the BusinessRuleMutation object of the builder.
func (_u *BusinessRuleUpdate) Mutation() *BusinessRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businessrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessRuleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := businessrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BusinessRule.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessrule.Table, businessrule.Columns, sqlgraph.NewFieldSpec(businessrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businessrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(businessrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(businessrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(businessrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RuleLogic(); ok {
		_spec.SetField(businessrule.FieldRuleLogic, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(businessrule.FieldAction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DomainTypes(); ok {
		_spec.SetField(businessrule.FieldDomainTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomainTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, businessrule.FieldDomainTypes, value)
		})
	}
	if _u.mutation.DomainTypesCleared() {
		_spec.ClearField(businessrule.FieldDomainTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ObjectTypes(); ok {
		_spec.SetField(businessrule.FieldObjectTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, businessrule.FieldObjectTypes, value)
		})
	}
	if _u.mutation.ObjectTypesCleared() {
		_spec.ClearField(businessrule.FieldObjectTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(businessrule.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(businessrule.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(businessrule.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(businessrule.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(businessrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(businessrule.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(businessrule.FieldCreatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessRuleUpdateOne is the builder for updating a single BusinessRule entity.
type BusinessRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessRuleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessRuleUpdateOne) SetUpdatedAt(v time.Time) *BusinessRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *BusinessRuleUpdateOne) SetName(v string) *BusinessRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessRuleUpdateOne) SetNillableName(v *string) *BusinessRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *BusinessRuleUpdateOne) SetDescription(v string) *BusinessRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *BusinessRuleUpdateOne) SetNillableDescription(v *string) *BusinessRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *BusinessRuleUpdateOne) ClearDescription() *BusinessRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRuleLogic sets the "rule_logic" field.
func (_u *BusinessRuleUpdateOne) SetRuleLogic(v map[string]interface{}) *BusinessRuleUpdateOne {
	_u.mutation.SetRuleLogic(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *BusinessRuleUpdateOne) SetAction(v map[string]interface{}) *BusinessRuleUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetDomainTypes sets the "domain_types" field.
func (_u *BusinessRuleUpdateOne) SetDomainTypes(v []string) *BusinessRuleUpdateOne {
	_u.mutation.SetDomainTypes(v)
	return _u
}

// AppendDomainTypes appends value to the "domain_types" field.
func (_u *BusinessRuleUpdateOne) AppendDomainTypes(v []string) *BusinessRuleUpdateOne {
	_u.mutation.AppendDomainTypes(v)
	return _u
}

// ClearDomainTypes clears the value of the "domain_types" field.
func (_u *BusinessRuleUpdateOne) ClearDomainTypes() *BusinessRuleUpdateOne {
	_u.mutation.ClearDomainTypes()
	return _u
}

// SetObjectTypes sets the "object_types" field.
func (_u *BusinessRuleUpdateOne) SetObjectTypes(v []string) *BusinessRuleUpdateOne {
	_u.mutation.SetObjectTypes(v)
	return _u
}

// AppendObjectTypes appends value to the "object_types" field.
func (_u *BusinessRuleUpdateOne) AppendObjectTypes(v []string) *BusinessRuleUpdateOne {
	_u.mutation.AppendObjectTypes(v)
	return _u
}

// ClearObjectTypes clears the value of the "object_types" field.
func (_u *BusinessRuleUpdateOne) ClearObjectTypes() *BusinessRuleUpdateOne {
	_u.mutation.ClearObjectTypes()
	return _u
}

// SetValidFrom sets the "valid_from" field.
func (_u *BusinessRuleUpdateOne) SetValidFrom(v time.Time) *BusinessRuleUpdateOne {
	_u.mutation.SetValidFrom(v)
	return _u
}

// SetNillableValidFrom sets the "valid_from" field if the given value is not nil.
func (_u *BusinessRuleUpdateOne) SetNillableValidFrom(v *time.Time) *BusinessRuleUpdateOne {
	if v != nil {
		_u.SetValidFrom(*v)
	}
	return _u
}

// ClearValidFrom clears the value of the "valid_from" field.
func (_u *BusinessRuleUpdateOne) ClearValidFrom() *BusinessRuleUpdateOne {
	_u.mutation.ClearValidFrom()
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *BusinessRuleUpdateOne) SetValidUntil(v time.Time) *BusinessRuleUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *BusinessRuleUpdateOne) SetNillableValidUntil(v *time.Time) *BusinessRuleUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// ClearValidUntil clears the value of the "valid_until" field.
func (_u *BusinessRuleUpdateOne) ClearValidUntil() *BusinessRuleUpdateOne {
	_u.mutation.ClearValidUntil()
	return _u
}

// SetActive sets the "active" field.
func (_u *BusinessRuleUpdateOne) SetActive(v bool) *BusinessRuleUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *BusinessRuleUpdateOne) SetNillableActive(v *bool) *BusinessRuleUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *BusinessRuleUpdateOne) SetCreatedBy(v string) *BusinessRuleUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *BusinessRuleUpdateOne) SetNillableCreatedBy(v *string) *BusinessRuleUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *BusinessRuleUpdateOne) ClearCreatedBy() *BusinessRuleUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the BusinessRuleMutation object of the builder.
func (_u *BusinessRuleUpdateOne) Mutation() *BusinessRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusinessRuleUpdate builder.
func (_u *BusinessRuleUpdateOne) Where(ps ...predicate.BusinessRule) *BusinessRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessRuleUpdateOne) Select(field string, fields ...string) *BusinessRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessRule entity.
func (_u *BusinessRuleUpdateOne) Save(ctx context.Context) (*BusinessRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessRuleUpdateOne) SaveX(ctx context.Context) *BusinessRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businessrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := businessrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BusinessRule.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessRuleUpdateOne) sqlSave(ctx context.Context) (_node *BusinessRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessrule.Table, businessrule.Columns, sqlgraph.NewFieldSpec(businessrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusinessRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businessrule.FieldID)
		for _, f := range fields {
			if !businessrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != businessrule.FieldID {
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
		_spec.SetField(businessrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(businessrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(businessrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(businessrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RuleLogic(); ok {
		_spec.SetField(businessrule.FieldRuleLogic, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(businessrule.FieldAction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DomainTypes(); ok {
		_spec.SetField(businessrule.FieldDomainTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDomainTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, businessrule.FieldDomainTypes, value)
		})
	}
	if _u.mutation.DomainTypesCleared() {
		_spec.ClearField(businessrule.FieldDomainTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ObjectTypes(); ok {
		_spec.SetField(businessrule.FieldObjectTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, businessrule.FieldObjectTypes, value)
		})
	}
	if _u.mutation.ObjectTypesCleared() {
		_spec.ClearField(businessrule.FieldObjectTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidFrom(); ok {
		_spec.SetField(businessrule.FieldValidFrom, field.TypeTime, value)
	}
	if _u.mutation.ValidFromCleared() {
		_spec.ClearField(businessrule.FieldValidFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(businessrule.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.ValidUntilCleared() {
		_spec.ClearField(businessrule.FieldValidUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(businessrule.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(businessrule.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(businessrule.FieldCreatedBy, field.TypeString)
	}
	_node = &BusinessRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
