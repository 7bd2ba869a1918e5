// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"iou-platform.io/iou/ent/auditlog"
	"iou-platform.io/iou/ent/businessrule"
	"iou-platform.io/iou/ent/community"
	"iou-platform.io/iou/ent/domainrelation"
	"iou-platform.io/iou/ent/entity"
	"iou-platform.io/iou/ent/entitycommunitymembership"
	"iou-platform.io/iou/ent/entityrelationship"
	"iou-platform.io/iou/ent/graphgeneration"
	"iou-platform.io/iou/ent/informationdomain"
	"iou-platform.io/iou/ent/informationobject"
	"iou-platform.io/iou/ent/metadatasuggestion"
	"iou-platform.io/iou/ent/predicate"
	"iou-platform.io/iou/ent/ruleexecution"
	"iou-platform.io/iou/ent/suggestiontrust"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog                  = "AuditLog"
	TypeBusinessRule              = "BusinessRule"
	TypeCommunity                 = "Community"
	TypeDomainRelation            = "DomainRelation"
	TypeEntity                    = "Entity"
	TypeEntityCommunityMembership = "EntityCommunityMembership"
	TypeEntityRelationship        = "EntityRelationship"
	TypeGraphGeneration           = "GraphGeneration"
	TypeInformationDomain         = "InformationDomain"
	TypeInformationObject         = "InformationObject"
	TypeMetadataSuggestion        = "MetadataSuggestion"
	TypeRuleExecution             = "RuleExecution"
	TypeSuggestionTrust           = "SuggestionTrust"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	action        *string
	resource_type *string
	resource_id   *string
	actor         *string
	details       *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// BusinessRuleMutation represents an operation that mutates the BusinessRule nodes in the graph.
type BusinessRuleMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	description        *string
	rule_logic         *map[string]interface{}
	action             *map[string]interface{}
	domain_types       *[]string
	appenddomain_types []string
	object_types       *[]string
	appendobject_types []string
	valid_from         *time.Time
	valid_until        *time.Time
	active             *bool
	created_by         *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*BusinessRule, error)
	predicates         []predicate.BusinessRule
}

var _ ent.Mutation = (*BusinessRuleMutation)(nil)

// businessruleOption allows management of the mutation configuration using functional options.
type businessruleOption func(*BusinessRuleMutation)

// newBusinessRuleMutation creates new mutation for the BusinessRule entity.
func newBusinessRuleMutation(c config, op Op, opts ...businessruleOption) *BusinessRuleMutation {
	m := &BusinessRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeBusinessRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessRuleID sets the ID field of the mutation.
func withBusinessRuleID(id string) businessruleOption {
	return func(m *BusinessRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *BusinessRule
		)
		m.oldValue = func(ctx context.Context) (*BusinessRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BusinessRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusinessRule sets the old BusinessRule of the mutation.
func withBusinessRule(node *BusinessRule) businessruleOption {
	return func(m *BusinessRuleMutation) {
		m.oldValue = func(context.Context) (*BusinessRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BusinessRule entities.
func (m *BusinessRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BusinessRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BusinessRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusinessRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusinessRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BusinessRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BusinessRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BusinessRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *BusinessRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BusinessRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BusinessRuleMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *BusinessRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BusinessRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BusinessRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[businessrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BusinessRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[businessrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BusinessRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, businessrule.FieldDescription)
}

// SetRuleLogic sets the "rule_logic" field.
func (m *BusinessRuleMutation) SetRuleLogic(value map[string]interface{}) {
	m.rule_logic = &value
}

// RuleLogic returns the value of the "rule_logic" field in the mutation.
func (m *BusinessRuleMutation) RuleLogic() (r map[string]interface{}, exists bool) {
	v := m.rule_logic
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleLogic returns the old "rule_logic" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldRuleLogic(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleLogic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleLogic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleLogic: %w", err)
	}
	return oldValue.RuleLogic, nil
}

// ResetRuleLogic resets all changes to the "rule_logic" field.
func (m *BusinessRuleMutation) ResetRuleLogic() {
	m.rule_logic = nil
}

// SetAction sets the "action" field.
func (m *BusinessRuleMutation) SetAction(value map[string]interface{}) {
	m.action = &value
}

// Action returns the value of the "action" field in the mutation.
func (m *BusinessRuleMutation) Action() (r map[string]interface{}, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldAction(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *BusinessRuleMutation) ResetAction() {
	m.action = nil
}

// SetDomainTypes sets the "domain_types" field.
func (m *BusinessRuleMutation) SetDomainTypes(s []string) {
	m.domain_types = &s
	m.appenddomain_types = nil
}

// DomainTypes returns the value of the "domain_types" field in the mutation.
func (m *BusinessRuleMutation) DomainTypes() (r []string, exists bool) {
	v := m.domain_types
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainTypes returns the old "domain_types" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldDomainTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainTypes: %w", err)
	}
	return oldValue.DomainTypes, nil
}

// AppendDomainTypes adds s to the "domain_types" field.
func (m *BusinessRuleMutation) AppendDomainTypes(s []string) {
	m.appenddomain_types = append(m.appenddomain_types, s...)
}

// AppendedDomainTypes returns the list of values that were appended to the "domain_types" field in this mutation.
func (m *BusinessRuleMutation) AppendedDomainTypes() ([]string, bool) {
	if len(m.appenddomain_types) == 0 {
		return nil, false
	}
	return m.appenddomain_types, true
}

// ClearDomainTypes clears the value of the "domain_types" field.
func (m *BusinessRuleMutation) ClearDomainTypes() {
	m.domain_types = nil
	m.appenddomain_types = nil
	m.clearedFields[businessrule.FieldDomainTypes] = struct{}{}
}

// DomainTypesCleared returns if the "domain_types" field was cleared in this mutation.
func (m *BusinessRuleMutation) DomainTypesCleared() bool {
	_, ok := m.clearedFields[businessrule.FieldDomainTypes]
	return ok
}

// ResetDomainTypes resets all changes to the "domain_types" field.
func (m *BusinessRuleMutation) ResetDomainTypes() {
	m.domain_types = nil
	m.appenddomain_types = nil
	delete(m.clearedFields, businessrule.FieldDomainTypes)
}

// SetObjectTypes sets the "object_types" field.
func (m *BusinessRuleMutation) SetObjectTypes(s []string) {
	m.object_types = &s
	m.appendobject_types = nil
}

// ObjectTypes returns the value of the "object_types" field in the mutation.
func (m *BusinessRuleMutation) ObjectTypes() (r []string, exists bool) {
	v := m.object_types
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectTypes returns the old "object_types" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldObjectTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectTypes: %w", err)
	}
	return oldValue.ObjectTypes, nil
}

// AppendObjectTypes adds s to the "object_types" field.
func (m *BusinessRuleMutation) AppendObjectTypes(s []string) {
	m.appendobject_types = append(m.appendobject_types, s...)
}

// AppendedObjectTypes returns the list of values that were appended to the "object_types" field in this mutation.
func (m *BusinessRuleMutation) AppendedObjectTypes() ([]string, bool) {
	if len(m.appendobject_types) == 0 {
		return nil, false
	}
	return m.appendobject_types, true
}

// ClearObjectTypes clears the value of the "object_types" field.
func (m *BusinessRuleMutation) ClearObjectTypes() {
	m.object_types = nil
	m.appendobject_types = nil
	m.clearedFields[businessrule.FieldObjectTypes] = struct{}{}
}

// ObjectTypesCleared returns if the "object_types" field was cleared in this mutation.
func (m *BusinessRuleMutation) ObjectTypesCleared() bool {
	_, ok := m.clearedFields[businessrule.FieldObjectTypes]
	return ok
}

// ResetObjectTypes resets all changes to the "object_types" field.
func (m *BusinessRuleMutation) ResetObjectTypes() {
	m.object_types = nil
	m.appendobject_types = nil
	delete(m.clearedFields, businessrule.FieldObjectTypes)
}

// SetValidFrom sets the "valid_from" field.
func (m *BusinessRuleMutation) SetValidFrom(t time.Time) {
	m.valid_from = &t
}

// ValidFrom returns the value of the "valid_from" field in the mutation.
func (m *BusinessRuleMutation) ValidFrom() (r time.Time, exists bool) {
	v := m.valid_from
	if v == nil {
		return
	}
	return *v, true
}

// OldValidFrom returns the old "valid_from" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldValidFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidFrom: %w", err)
	}
	return oldValue.ValidFrom, nil
}

// ClearValidFrom clears the value of the "valid_from" field.
func (m *BusinessRuleMutation) ClearValidFrom() {
	m.valid_from = nil
	m.clearedFields[businessrule.FieldValidFrom] = struct{}{}
}

// ValidFromCleared returns if the "valid_from" field was cleared in this mutation.
func (m *BusinessRuleMutation) ValidFromCleared() bool {
	_, ok := m.clearedFields[businessrule.FieldValidFrom]
	return ok
}

// ResetValidFrom resets all changes to the "valid_from" field.
func (m *BusinessRuleMutation) ResetValidFrom() {
	m.valid_from = nil
	delete(m.clearedFields, businessrule.FieldValidFrom)
}

// SetValidUntil sets the "valid_until" field.
func (m *BusinessRuleMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *BusinessRuleMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldValidUntil(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ClearValidUntil clears the value of the "valid_until" field.
func (m *BusinessRuleMutation) ClearValidUntil() {
	m.valid_until = nil
	m.clearedFields[businessrule.FieldValidUntil] = struct{}{}
}

// ValidUntilCleared returns if the "valid_until" field was cleared in this mutation.
func (m *BusinessRuleMutation) ValidUntilCleared() bool {
	_, ok := m.clearedFields[businessrule.FieldValidUntil]
	return ok
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *BusinessRuleMutation) ResetValidUntil() {
	m.valid_until = nil
	delete(m.clearedFields, businessrule.FieldValidUntil)
}

// SetActive sets the "active" field.
func (m *BusinessRuleMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *BusinessRuleMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *BusinessRuleMutation) ResetActive() {
	m.active = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *BusinessRuleMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *BusinessRuleMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the BusinessRule entity.
// If the BusinessRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessRuleMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *BusinessRuleMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[businessrule.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *BusinessRuleMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[businessrule.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *BusinessRuleMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, businessrule.FieldCreatedBy)
}

// Where appends a list predicates to the BusinessRuleMutation builder.
func (m *BusinessRuleMutation) Where(ps ...predicate.BusinessRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BusinessRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BusinessRule).
func (m *BusinessRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessRuleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, businessrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, businessrule.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, businessrule.FieldName)
	}
	if m.description != nil {
		fields = append(fields, businessrule.FieldDescription)
	}
	if m.rule_logic != nil {
		fields = append(fields, businessrule.FieldRuleLogic)
	}
	if m.action != nil {
		fields = append(fields, businessrule.FieldAction)
	}
	if m.domain_types != nil {
		fields = append(fields, businessrule.FieldDomainTypes)
	}
	if m.object_types != nil {
		fields = append(fields, businessrule.FieldObjectTypes)
	}
	if m.valid_from != nil {
		fields = append(fields, businessrule.FieldValidFrom)
	}
	if m.valid_until != nil {
		fields = append(fields, businessrule.FieldValidUntil)
	}
	if m.active != nil {
		fields = append(fields, businessrule.FieldActive)
	}
	if m.created_by != nil {
		fields = append(fields, businessrule.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case businessrule.FieldCreatedAt:
		return m.CreatedAt()
	case businessrule.FieldUpdatedAt:
		return m.UpdatedAt()
	case businessrule.FieldName:
		return m.Name()
	case businessrule.FieldDescription:
		return m.Description()
	case businessrule.FieldRuleLogic:
		return m.RuleLogic()
	case businessrule.FieldAction:
		return m.Action()
	case businessrule.FieldDomainTypes:
		return m.DomainTypes()
	case businessrule.FieldObjectTypes:
		return m.ObjectTypes()
	case businessrule.FieldValidFrom:
		return m.ValidFrom()
	case businessrule.FieldValidUntil:
		return m.ValidUntil()
	case businessrule.FieldActive:
		return m.Active()
	case businessrule.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case businessrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case businessrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case businessrule.FieldName:
		return m.OldName(ctx)
	case businessrule.FieldDescription:
		return m.OldDescription(ctx)
	case businessrule.FieldRuleLogic:
		return m.OldRuleLogic(ctx)
	case businessrule.FieldAction:
		return m.OldAction(ctx)
	case businessrule.FieldDomainTypes:
		return m.OldDomainTypes(ctx)
	case businessrule.FieldObjectTypes:
		return m.OldObjectTypes(ctx)
	case businessrule.FieldValidFrom:
		return m.OldValidFrom(ctx)
	case businessrule.FieldValidUntil:
		return m.OldValidUntil(ctx)
	case businessrule.FieldActive:
		return m.OldActive(ctx)
	case businessrule.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown BusinessRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case businessrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case businessrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case businessrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case businessrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case businessrule.FieldRuleLogic:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleLogic(v)
		return nil
	case businessrule.FieldAction:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case businessrule.FieldDomainTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainTypes(v)
		return nil
	case businessrule.FieldObjectTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectTypes(v)
		return nil
	case businessrule.FieldValidFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidFrom(v)
		return nil
	case businessrule.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	case businessrule.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case businessrule.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown BusinessRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BusinessRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(businessrule.FieldDescription) {
		fields = append(fields, businessrule.FieldDescription)
	}
	if m.FieldCleared(businessrule.FieldDomainTypes) {
		fields = append(fields, businessrule.FieldDomainTypes)
	}
	if m.FieldCleared(businessrule.FieldObjectTypes) {
		fields = append(fields, businessrule.FieldObjectTypes)
	}
	if m.FieldCleared(businessrule.FieldValidFrom) {
		fields = append(fields, businessrule.FieldValidFrom)
	}
	if m.FieldCleared(businessrule.FieldValidUntil) {
		fields = append(fields, businessrule.FieldValidUntil)
	}
	if m.FieldCleared(businessrule.FieldCreatedBy) {
		fields = append(fields, businessrule.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessRuleMutation) ClearField(name string) error {
	switch name {
	case businessrule.FieldDescription:
		m.ClearDescription()
		return nil
	case businessrule.FieldDomainTypes:
		m.ClearDomainTypes()
		return nil
	case businessrule.FieldObjectTypes:
		m.ClearObjectTypes()
		return nil
	case businessrule.FieldValidFrom:
		m.ClearValidFrom()
		return nil
	case businessrule.FieldValidUntil:
		m.ClearValidUntil()
		return nil
	case businessrule.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown BusinessRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessRuleMutation) ResetField(name string) error {
	switch name {
	case businessrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case businessrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case businessrule.FieldName:
		m.ResetName()
		return nil
	case businessrule.FieldDescription:
		m.ResetDescription()
		return nil
	case businessrule.FieldRuleLogic:
		m.ResetRuleLogic()
		return nil
	case businessrule.FieldAction:
		m.ResetAction()
		return nil
	case businessrule.FieldDomainTypes:
		m.ResetDomainTypes()
		return nil
	case businessrule.FieldObjectTypes:
		m.ResetObjectTypes()
		return nil
	case businessrule.FieldValidFrom:
		m.ResetValidFrom()
		return nil
	case businessrule.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	case businessrule.FieldActive:
		m.ResetActive()
		return nil
	case businessrule.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown BusinessRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BusinessRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BusinessRule edge %s", name)
}

// CommunityMutation represents an operation that mutates the Community nodes in the graph.
type CommunityMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	name                *string
	description         *string
	level               *int
	addlevel            *int
	parent_community_id *string
	generation          *int64
	addgeneration       *int64
	keywords            *[]string
	appendkeywords      []string
	summary             *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Community, error)
	predicates          []predicate.Community
}

var _ ent.Mutation = (*CommunityMutation)(nil)

// communityOption allows management of the mutation configuration using functional options.
type communityOption func(*CommunityMutation)

// newCommunityMutation creates new mutation for the Community entity.
func newCommunityMutation(c config, op Op, opts ...communityOption) *CommunityMutation {
	m := &CommunityMutation{
		config:        c,
		op:            op,
		typ:           TypeCommunity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommunityID sets the ID field of the mutation.
func withCommunityID(id string) communityOption {
	return func(m *CommunityMutation) {
		var (
			err   error
			once  sync.Once
			value *Community
		)
		m.oldValue = func(ctx context.Context) (*Community, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Community.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommunity sets the old Community of the mutation.
func withCommunity(node *Community) communityOption {
	return func(m *CommunityMutation) {
		m.oldValue = func(context.Context) (*Community, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommunityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommunityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Community entities.
func (m *CommunityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommunityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommunityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Community.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CommunityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommunityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommunityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *CommunityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CommunityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CommunityMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CommunityMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CommunityMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CommunityMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[community.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CommunityMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[community.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CommunityMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, community.FieldDescription)
}

// SetLevel sets the "level" field.
func (m *CommunityMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *CommunityMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *CommunityMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *CommunityMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *CommunityMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetParentCommunityID sets the "parent_community_id" field.
func (m *CommunityMutation) SetParentCommunityID(s string) {
	m.parent_community_id = &s
}

// ParentCommunityID returns the value of the "parent_community_id" field in the mutation.
func (m *CommunityMutation) ParentCommunityID() (r string, exists bool) {
	v := m.parent_community_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentCommunityID returns the old "parent_community_id" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldParentCommunityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentCommunityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentCommunityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentCommunityID: %w", err)
	}
	return oldValue.ParentCommunityID, nil
}

// ClearParentCommunityID clears the value of the "parent_community_id" field.
func (m *CommunityMutation) ClearParentCommunityID() {
	m.parent_community_id = nil
	m.clearedFields[community.FieldParentCommunityID] = struct{}{}
}

// ParentCommunityIDCleared returns if the "parent_community_id" field was cleared in this mutation.
func (m *CommunityMutation) ParentCommunityIDCleared() bool {
	_, ok := m.clearedFields[community.FieldParentCommunityID]
	return ok
}

// ResetParentCommunityID resets all changes to the "parent_community_id" field.
func (m *CommunityMutation) ResetParentCommunityID() {
	m.parent_community_id = nil
	delete(m.clearedFields, community.FieldParentCommunityID)
}

// SetGeneration sets the "generation" field.
func (m *CommunityMutation) SetGeneration(i int64) {
	m.generation = &i
	m.addgeneration = nil
}

// Generation returns the value of the "generation" field in the mutation.
func (m *CommunityMutation) Generation() (r int64, exists bool) {
	v := m.generation
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneration returns the old "generation" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldGeneration(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneration: %w", err)
	}
	return oldValue.Generation, nil
}

// AddGeneration adds i to the "generation" field.
func (m *CommunityMutation) AddGeneration(i int64) {
	if m.addgeneration != nil {
		*m.addgeneration += i
	} else {
		m.addgeneration = &i
	}
}

// AddedGeneration returns the value that was added to the "generation" field in this mutation.
func (m *CommunityMutation) AddedGeneration() (r int64, exists bool) {
	v := m.addgeneration
	if v == nil {
		return
	}
	return *v, true
}

// ResetGeneration resets all changes to the "generation" field.
func (m *CommunityMutation) ResetGeneration() {
	m.generation = nil
	m.addgeneration = nil
}

// SetKeywords sets the "keywords" field.
func (m *CommunityMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *CommunityMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *CommunityMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *CommunityMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *CommunityMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[community.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *CommunityMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[community.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *CommunityMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, community.FieldKeywords)
}

// SetSummary sets the "summary" field.
func (m *CommunityMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CommunityMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *CommunityMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[community.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *CommunityMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[community.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *CommunityMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, community.FieldSummary)
}

// Where appends a list predicates to the CommunityMutation builder.
func (m *CommunityMutation) Where(ps ...predicate.Community) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommunityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommunityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Community, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommunityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommunityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Community).
func (m *CommunityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommunityMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, community.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, community.FieldName)
	}
	if m.description != nil {
		fields = append(fields, community.FieldDescription)
	}
	if m.level != nil {
		fields = append(fields, community.FieldLevel)
	}
	if m.parent_community_id != nil {
		fields = append(fields, community.FieldParentCommunityID)
	}
	if m.generation != nil {
		fields = append(fields, community.FieldGeneration)
	}
	if m.keywords != nil {
		fields = append(fields, community.FieldKeywords)
	}
	if m.summary != nil {
		fields = append(fields, community.FieldSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommunityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case community.FieldCreatedAt:
		return m.CreatedAt()
	case community.FieldName:
		return m.Name()
	case community.FieldDescription:
		return m.Description()
	case community.FieldLevel:
		return m.Level()
	case community.FieldParentCommunityID:
		return m.ParentCommunityID()
	case community.FieldGeneration:
		return m.Generation()
	case community.FieldKeywords:
		return m.Keywords()
	case community.FieldSummary:
		return m.Summary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommunityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case community.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case community.FieldName:
		return m.OldName(ctx)
	case community.FieldDescription:
		return m.OldDescription(ctx)
	case community.FieldLevel:
		return m.OldLevel(ctx)
	case community.FieldParentCommunityID:
		return m.OldParentCommunityID(ctx)
	case community.FieldGeneration:
		return m.OldGeneration(ctx)
	case community.FieldKeywords:
		return m.OldKeywords(ctx)
	case community.FieldSummary:
		return m.OldSummary(ctx)
	}
	return nil, fmt.Errorf("unknown Community field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommunityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case community.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case community.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case community.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case community.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case community.FieldParentCommunityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentCommunityID(v)
		return nil
	case community.FieldGeneration:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneration(v)
		return nil
	case community.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case community.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	}
	return fmt.Errorf("unknown Community field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommunityMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, community.FieldLevel)
	}
	if m.addgeneration != nil {
		fields = append(fields, community.FieldGeneration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommunityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case community.FieldLevel:
		return m.AddedLevel()
	case community.FieldGeneration:
		return m.AddedGeneration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommunityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case community.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case community.FieldGeneration:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGeneration(v)
		return nil
	}
	return fmt.Errorf("unknown Community numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommunityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(community.FieldDescription) {
		fields = append(fields, community.FieldDescription)
	}
	if m.FieldCleared(community.FieldParentCommunityID) {
		fields = append(fields, community.FieldParentCommunityID)
	}
	if m.FieldCleared(community.FieldKeywords) {
		fields = append(fields, community.FieldKeywords)
	}
	if m.FieldCleared(community.FieldSummary) {
		fields = append(fields, community.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommunityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommunityMutation) ClearField(name string) error {
	switch name {
	case community.FieldDescription:
		m.ClearDescription()
		return nil
	case community.FieldParentCommunityID:
		m.ClearParentCommunityID()
		return nil
	case community.FieldKeywords:
		m.ClearKeywords()
		return nil
	case community.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown Community nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommunityMutation) ResetField(name string) error {
	switch name {
	case community.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case community.FieldName:
		m.ResetName()
		return nil
	case community.FieldDescription:
		m.ResetDescription()
		return nil
	case community.FieldLevel:
		m.ResetLevel()
		return nil
	case community.FieldParentCommunityID:
		m.ResetParentCommunityID()
		return nil
	case community.FieldGeneration:
		m.ResetGeneration()
		return nil
	case community.FieldKeywords:
		m.ResetKeywords()
		return nil
	case community.FieldSummary:
		m.ResetSummary()
		return nil
	}
	return fmt.Errorf("unknown Community field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommunityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommunityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommunityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommunityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommunityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommunityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommunityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Community unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommunityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Community edge %s", name)
}

// DomainRelationMutation represents an operation that mutates the DomainRelation nodes in the graph.
type DomainRelationMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	created_at             *time.Time
	updated_at             *time.Time
	from_domain_id         *string
	to_domain_id           *string
	relation_type          *domainrelation.RelationType
	strength               *float64
	addstrength            *float64
	discovery_method       *domainrelation.DiscoveryMethod
	shared_entity_count    *int
	addshared_entity_count *int
	explanation            *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*DomainRelation, error)
	predicates             []predicate.DomainRelation
}

var _ ent.Mutation = (*DomainRelationMutation)(nil)

// domainrelationOption allows management of the mutation configuration using functional options.
type domainrelationOption func(*DomainRelationMutation)

// newDomainRelationMutation creates new mutation for the DomainRelation entity.
func newDomainRelationMutation(c config, op Op, opts ...domainrelationOption) *DomainRelationMutation {
	m := &DomainRelationMutation{
		config:        c,
		op:            op,
		typ:           TypeDomainRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainRelationID sets the ID field of the mutation.
func withDomainRelationID(id string) domainrelationOption {
	return func(m *DomainRelationMutation) {
		var (
			err   error
			once  sync.Once
			value *DomainRelation
		)
		m.oldValue = func(ctx context.Context) (*DomainRelation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DomainRelation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomainRelation sets the old DomainRelation of the mutation.
func withDomainRelation(node *DomainRelation) domainrelationOption {
	return func(m *DomainRelationMutation) {
		m.oldValue = func(context.Context) (*DomainRelation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainRelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainRelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DomainRelation entities.
func (m *DomainRelationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainRelationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainRelationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DomainRelation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DomainRelationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DomainRelationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DomainRelationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DomainRelationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DomainRelationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DomainRelationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFromDomainID sets the "from_domain_id" field.
func (m *DomainRelationMutation) SetFromDomainID(s string) {
	m.from_domain_id = &s
}

// FromDomainID returns the value of the "from_domain_id" field in the mutation.
func (m *DomainRelationMutation) FromDomainID() (r string, exists bool) {
	v := m.from_domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromDomainID returns the old "from_domain_id" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldFromDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromDomainID: %w", err)
	}
	return oldValue.FromDomainID, nil
}

// ResetFromDomainID resets all changes to the "from_domain_id" field.
func (m *DomainRelationMutation) ResetFromDomainID() {
	m.from_domain_id = nil
}

// SetToDomainID sets the "to_domain_id" field.
func (m *DomainRelationMutation) SetToDomainID(s string) {
	m.to_domain_id = &s
}

// ToDomainID returns the value of the "to_domain_id" field in the mutation.
func (m *DomainRelationMutation) ToDomainID() (r string, exists bool) {
	v := m.to_domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToDomainID returns the old "to_domain_id" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldToDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToDomainID: %w", err)
	}
	return oldValue.ToDomainID, nil
}

// ResetToDomainID resets all changes to the "to_domain_id" field.
func (m *DomainRelationMutation) ResetToDomainID() {
	m.to_domain_id = nil
}

// SetRelationType sets the "relation_type" field.
func (m *DomainRelationMutation) SetRelationType(dt domainrelation.RelationType) {
	m.relation_type = &dt
}

// RelationType returns the value of the "relation_type" field in the mutation.
func (m *DomainRelationMutation) RelationType() (r domainrelation.RelationType, exists bool) {
	v := m.relation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationType returns the old "relation_type" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldRelationType(ctx context.Context) (v domainrelation.RelationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationType: %w", err)
	}
	return oldValue.RelationType, nil
}

// ResetRelationType resets all changes to the "relation_type" field.
func (m *DomainRelationMutation) ResetRelationType() {
	m.relation_type = nil
}

// SetStrength sets the "strength" field.
func (m *DomainRelationMutation) SetStrength(f float64) {
	m.strength = &f
	m.addstrength = nil
}

// Strength returns the value of the "strength" field in the mutation.
func (m *DomainRelationMutation) Strength() (r float64, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldStrength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// AddStrength adds f to the "strength" field.
func (m *DomainRelationMutation) AddStrength(f float64) {
	if m.addstrength != nil {
		*m.addstrength += f
	} else {
		m.addstrength = &f
	}
}

// AddedStrength returns the value that was added to the "strength" field in this mutation.
func (m *DomainRelationMutation) AddedStrength() (r float64, exists bool) {
	v := m.addstrength
	if v == nil {
		return
	}
	return *v, true
}

// ResetStrength resets all changes to the "strength" field.
func (m *DomainRelationMutation) ResetStrength() {
	m.strength = nil
	m.addstrength = nil
}

// SetDiscoveryMethod sets the "discovery_method" field.
func (m *DomainRelationMutation) SetDiscoveryMethod(dm domainrelation.DiscoveryMethod) {
	m.discovery_method = &dm
}

// DiscoveryMethod returns the value of the "discovery_method" field in the mutation.
func (m *DomainRelationMutation) DiscoveryMethod() (r domainrelation.DiscoveryMethod, exists bool) {
	v := m.discovery_method
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveryMethod returns the old "discovery_method" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldDiscoveryMethod(ctx context.Context) (v domainrelation.DiscoveryMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveryMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveryMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveryMethod: %w", err)
	}
	return oldValue.DiscoveryMethod, nil
}

// ResetDiscoveryMethod resets all changes to the "discovery_method" field.
func (m *DomainRelationMutation) ResetDiscoveryMethod() {
	m.discovery_method = nil
}

// SetSharedEntityCount sets the "shared_entity_count" field.
func (m *DomainRelationMutation) SetSharedEntityCount(i int) {
	m.shared_entity_count = &i
	m.addshared_entity_count = nil
}

// SharedEntityCount returns the value of the "shared_entity_count" field in the mutation.
func (m *DomainRelationMutation) SharedEntityCount() (r int, exists bool) {
	v := m.shared_entity_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSharedEntityCount returns the old "shared_entity_count" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldSharedEntityCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSharedEntityCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSharedEntityCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSharedEntityCount: %w", err)
	}
	return oldValue.SharedEntityCount, nil
}

// AddSharedEntityCount adds i to the "shared_entity_count" field.
func (m *DomainRelationMutation) AddSharedEntityCount(i int) {
	if m.addshared_entity_count != nil {
		*m.addshared_entity_count += i
	} else {
		m.addshared_entity_count = &i
	}
}

// AddedSharedEntityCount returns the value that was added to the "shared_entity_count" field in this mutation.
func (m *DomainRelationMutation) AddedSharedEntityCount() (r int, exists bool) {
	v := m.addshared_entity_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSharedEntityCount resets all changes to the "shared_entity_count" field.
func (m *DomainRelationMutation) ResetSharedEntityCount() {
	m.shared_entity_count = nil
	m.addshared_entity_count = nil
}

// SetExplanation sets the "explanation" field.
func (m *DomainRelationMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *DomainRelationMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the DomainRelation entity.
// If the DomainRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainRelationMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *DomainRelationMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[domainrelation.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *DomainRelationMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[domainrelation.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *DomainRelationMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, domainrelation.FieldExplanation)
}

// Where appends a list predicates to the DomainRelationMutation builder.
func (m *DomainRelationMutation) Where(ps ...predicate.DomainRelation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainRelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainRelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DomainRelation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainRelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainRelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DomainRelation).
func (m *DomainRelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainRelationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, domainrelation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, domainrelation.FieldUpdatedAt)
	}
	if m.from_domain_id != nil {
		fields = append(fields, domainrelation.FieldFromDomainID)
	}
	if m.to_domain_id != nil {
		fields = append(fields, domainrelation.FieldToDomainID)
	}
	if m.relation_type != nil {
		fields = append(fields, domainrelation.FieldRelationType)
	}
	if m.strength != nil {
		fields = append(fields, domainrelation.FieldStrength)
	}
	if m.discovery_method != nil {
		fields = append(fields, domainrelation.FieldDiscoveryMethod)
	}
	if m.shared_entity_count != nil {
		fields = append(fields, domainrelation.FieldSharedEntityCount)
	}
	if m.explanation != nil {
		fields = append(fields, domainrelation.FieldExplanation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainRelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domainrelation.FieldCreatedAt:
		return m.CreatedAt()
	case domainrelation.FieldUpdatedAt:
		return m.UpdatedAt()
	case domainrelation.FieldFromDomainID:
		return m.FromDomainID()
	case domainrelation.FieldToDomainID:
		return m.ToDomainID()
	case domainrelation.FieldRelationType:
		return m.RelationType()
	case domainrelation.FieldStrength:
		return m.Strength()
	case domainrelation.FieldDiscoveryMethod:
		return m.DiscoveryMethod()
	case domainrelation.FieldSharedEntityCount:
		return m.SharedEntityCount()
	case domainrelation.FieldExplanation:
		return m.Explanation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainRelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domainrelation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case domainrelation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case domainrelation.FieldFromDomainID:
		return m.OldFromDomainID(ctx)
	case domainrelation.FieldToDomainID:
		return m.OldToDomainID(ctx)
	case domainrelation.FieldRelationType:
		return m.OldRelationType(ctx)
	case domainrelation.FieldStrength:
		return m.OldStrength(ctx)
	case domainrelation.FieldDiscoveryMethod:
		return m.OldDiscoveryMethod(ctx)
	case domainrelation.FieldSharedEntityCount:
		return m.OldSharedEntityCount(ctx)
	case domainrelation.FieldExplanation:
		return m.OldExplanation(ctx)
	}
	return nil, fmt.Errorf("unknown DomainRelation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainRelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domainrelation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case domainrelation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case domainrelation.FieldFromDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromDomainID(v)
		return nil
	case domainrelation.FieldToDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToDomainID(v)
		return nil
	case domainrelation.FieldRelationType:
		v, ok := value.(domainrelation.RelationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationType(v)
		return nil
	case domainrelation.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	case domainrelation.FieldDiscoveryMethod:
		v, ok := value.(domainrelation.DiscoveryMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveryMethod(v)
		return nil
	case domainrelation.FieldSharedEntityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSharedEntityCount(v)
		return nil
	case domainrelation.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	}
	return fmt.Errorf("unknown DomainRelation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainRelationMutation) AddedFields() []string {
	var fields []string
	if m.addstrength != nil {
		fields = append(fields, domainrelation.FieldStrength)
	}
	if m.addshared_entity_count != nil {
		fields = append(fields, domainrelation.FieldSharedEntityCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainRelationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case domainrelation.FieldStrength:
		return m.AddedStrength()
	case domainrelation.FieldSharedEntityCount:
		return m.AddedSharedEntityCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainRelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case domainrelation.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStrength(v)
		return nil
	case domainrelation.FieldSharedEntityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSharedEntityCount(v)
		return nil
	}
	return fmt.Errorf("unknown DomainRelation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainRelationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(domainrelation.FieldExplanation) {
		fields = append(fields, domainrelation.FieldExplanation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainRelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainRelationMutation) ClearField(name string) error {
	switch name {
	case domainrelation.FieldExplanation:
		m.ClearExplanation()
		return nil
	}
	return fmt.Errorf("unknown DomainRelation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainRelationMutation) ResetField(name string) error {
	switch name {
	case domainrelation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case domainrelation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case domainrelation.FieldFromDomainID:
		m.ResetFromDomainID()
		return nil
	case domainrelation.FieldToDomainID:
		m.ResetToDomainID()
		return nil
	case domainrelation.FieldRelationType:
		m.ResetRelationType()
		return nil
	case domainrelation.FieldStrength:
		m.ResetStrength()
		return nil
	case domainrelation.FieldDiscoveryMethod:
		m.ResetDiscoveryMethod()
		return nil
	case domainrelation.FieldSharedEntityCount:
		m.ResetSharedEntityCount()
		return nil
	case domainrelation.FieldExplanation:
		m.ResetExplanation()
		return nil
	}
	return fmt.Errorf("unknown DomainRelation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainRelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainRelationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainRelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainRelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainRelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainRelationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainRelationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DomainRelation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainRelationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DomainRelation edge %s", name)
}

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	canonical_name   *string
	canonical_key    *string
	entity_type      *entity.EntityType
	description      *string
	confidence       *float64
	addconfidence    *float64
	source_domain_id *string
	metadata         *map[string]interface{}
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Entity, error)
	predicates       []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id string) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCanonicalName sets the "canonical_name" field.
func (m *EntityMutation) SetCanonicalName(s string) {
	m.canonical_name = &s
}

// CanonicalName returns the value of the "canonical_name" field in the mutation.
func (m *EntityMutation) CanonicalName() (r string, exists bool) {
	v := m.canonical_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalName returns the old "canonical_name" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCanonicalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalName: %w", err)
	}
	return oldValue.CanonicalName, nil
}

// ResetCanonicalName resets all changes to the "canonical_name" field.
func (m *EntityMutation) ResetCanonicalName() {
	m.canonical_name = nil
}

// SetCanonicalKey sets the "canonical_key" field.
func (m *EntityMutation) SetCanonicalKey(s string) {
	m.canonical_key = &s
}

// CanonicalKey returns the value of the "canonical_key" field in the mutation.
func (m *EntityMutation) CanonicalKey() (r string, exists bool) {
	v := m.canonical_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalKey returns the old "canonical_key" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCanonicalKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalKey: %w", err)
	}
	return oldValue.CanonicalKey, nil
}

// ResetCanonicalKey resets all changes to the "canonical_key" field.
func (m *EntityMutation) ResetCanonicalKey() {
	m.canonical_key = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMutation) SetEntityType(et entity.EntityType) {
	m.entity_type = &et
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMutation) EntityType() (r entity.EntityType, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldEntityType(ctx context.Context) (v entity.EntityType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetDescription sets the "description" field.
func (m *EntityMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EntityMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EntityMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[entity.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EntityMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[entity.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EntityMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, entity.FieldDescription)
}

// SetConfidence sets the "confidence" field.
func (m *EntityMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSourceDomainID sets the "source_domain_id" field.
func (m *EntityMutation) SetSourceDomainID(s string) {
	m.source_domain_id = &s
}

// SourceDomainID returns the value of the "source_domain_id" field in the mutation.
func (m *EntityMutation) SourceDomainID() (r string, exists bool) {
	v := m.source_domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDomainID returns the old "source_domain_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldSourceDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDomainID: %w", err)
	}
	return oldValue.SourceDomainID, nil
}

// ClearSourceDomainID clears the value of the "source_domain_id" field.
func (m *EntityMutation) ClearSourceDomainID() {
	m.source_domain_id = nil
	m.clearedFields[entity.FieldSourceDomainID] = struct{}{}
}

// SourceDomainIDCleared returns if the "source_domain_id" field was cleared in this mutation.
func (m *EntityMutation) SourceDomainIDCleared() bool {
	_, ok := m.clearedFields[entity.FieldSourceDomainID]
	return ok
}

// ResetSourceDomainID resets all changes to the "source_domain_id" field.
func (m *EntityMutation) ResetSourceDomainID() {
	m.source_domain_id = nil
	delete(m.clearedFields, entity.FieldSourceDomainID)
}

// SetMetadata sets the "metadata" field.
func (m *EntityMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *EntityMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *EntityMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[entity.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *EntityMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[entity.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *EntityMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, entity.FieldMetadata)
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, entity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entity.FieldUpdatedAt)
	}
	if m.canonical_name != nil {
		fields = append(fields, entity.FieldCanonicalName)
	}
	if m.canonical_key != nil {
		fields = append(fields, entity.FieldCanonicalKey)
	}
	if m.entity_type != nil {
		fields = append(fields, entity.FieldEntityType)
	}
	if m.description != nil {
		fields = append(fields, entity.FieldDescription)
	}
	if m.confidence != nil {
		fields = append(fields, entity.FieldConfidence)
	}
	if m.source_domain_id != nil {
		fields = append(fields, entity.FieldSourceDomainID)
	}
	if m.metadata != nil {
		fields = append(fields, entity.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldCreatedAt:
		return m.CreatedAt()
	case entity.FieldUpdatedAt:
		return m.UpdatedAt()
	case entity.FieldCanonicalName:
		return m.CanonicalName()
	case entity.FieldCanonicalKey:
		return m.CanonicalKey()
	case entity.FieldEntityType:
		return m.EntityType()
	case entity.FieldDescription:
		return m.Description()
	case entity.FieldConfidence:
		return m.Confidence()
	case entity.FieldSourceDomainID:
		return m.SourceDomainID()
	case entity.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case entity.FieldCanonicalName:
		return m.OldCanonicalName(ctx)
	case entity.FieldCanonicalKey:
		return m.OldCanonicalKey(ctx)
	case entity.FieldEntityType:
		return m.OldEntityType(ctx)
	case entity.FieldDescription:
		return m.OldDescription(ctx)
	case entity.FieldConfidence:
		return m.OldConfidence(ctx)
	case entity.FieldSourceDomainID:
		return m.OldSourceDomainID(ctx)
	case entity.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case entity.FieldCanonicalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalName(v)
		return nil
	case entity.FieldCanonicalKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalKey(v)
		return nil
	case entity.FieldEntityType:
		v, ok := value.(entity.EntityType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entity.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case entity.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entity.FieldSourceDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDomainID(v)
		return nil
	case entity.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, entity.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entity.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entity.FieldDescription) {
		fields = append(fields, entity.FieldDescription)
	}
	if m.FieldCleared(entity.FieldSourceDomainID) {
		fields = append(fields, entity.FieldSourceDomainID)
	}
	if m.FieldCleared(entity.FieldMetadata) {
		fields = append(fields, entity.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	switch name {
	case entity.FieldDescription:
		m.ClearDescription()
		return nil
	case entity.FieldSourceDomainID:
		m.ClearSourceDomainID()
		return nil
	case entity.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case entity.FieldCanonicalName:
		m.ResetCanonicalName()
		return nil
	case entity.FieldCanonicalKey:
		m.ResetCanonicalKey()
		return nil
	case entity.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entity.FieldDescription:
		m.ResetDescription()
		return nil
	case entity.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entity.FieldSourceDomainID:
		m.ResetSourceDomainID()
		return nil
	case entity.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Entity edge %s", name)
}

// EntityCommunityMembershipMutation represents an operation that mutates the EntityCommunityMembership nodes in the graph.
type EntityCommunityMembershipMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	entity_id           *string
	community_id        *string
	membership_score    *float64
	addmembership_score *float64
	generation          *int64
	addgeneration       *int64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*EntityCommunityMembership, error)
	predicates          []predicate.EntityCommunityMembership
}

var _ ent.Mutation = (*EntityCommunityMembershipMutation)(nil)

// entitycommunitymembershipOption allows management of the mutation configuration using functional options.
type entitycommunitymembershipOption func(*EntityCommunityMembershipMutation)

// newEntityCommunityMembershipMutation creates new mutation for the EntityCommunityMembership entity.
func newEntityCommunityMembershipMutation(c config, op Op, opts ...entitycommunitymembershipOption) *EntityCommunityMembershipMutation {
	m := &EntityCommunityMembershipMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityCommunityMembership,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityCommunityMembershipID sets the ID field of the mutation.
func withEntityCommunityMembershipID(id string) entitycommunitymembershipOption {
	return func(m *EntityCommunityMembershipMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityCommunityMembership
		)
		m.oldValue = func(ctx context.Context) (*EntityCommunityMembership, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityCommunityMembership.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityCommunityMembership sets the old EntityCommunityMembership of the mutation.
func withEntityCommunityMembership(node *EntityCommunityMembership) entitycommunitymembershipOption {
	return func(m *EntityCommunityMembershipMutation) {
		m.oldValue = func(context.Context) (*EntityCommunityMembership, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityCommunityMembershipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityCommunityMembershipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityCommunityMembership entities.
func (m *EntityCommunityMembershipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityCommunityMembershipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityCommunityMembershipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityCommunityMembership.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityCommunityMembershipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityCommunityMembershipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityCommunityMembership entity.
// If the EntityCommunityMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityCommunityMembershipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityCommunityMembershipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EntityCommunityMembershipMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntityCommunityMembershipMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntityCommunityMembership entity.
// If the EntityCommunityMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityCommunityMembershipMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntityCommunityMembershipMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetCommunityID sets the "community_id" field.
func (m *EntityCommunityMembershipMutation) SetCommunityID(s string) {
	m.community_id = &s
}

// CommunityID returns the value of the "community_id" field in the mutation.
func (m *EntityCommunityMembershipMutation) CommunityID() (r string, exists bool) {
	v := m.community_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunityID returns the old "community_id" field's value of the EntityCommunityMembership entity.
// If the EntityCommunityMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityCommunityMembershipMutation) OldCommunityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunityID: %w", err)
	}
	return oldValue.CommunityID, nil
}

// ResetCommunityID resets all changes to the "community_id" field.
func (m *EntityCommunityMembershipMutation) ResetCommunityID() {
	m.community_id = nil
}

// SetMembershipScore sets the "membership_score" field.
func (m *EntityCommunityMembershipMutation) SetMembershipScore(f float64) {
	m.membership_score = &f
	m.addmembership_score = nil
}

// MembershipScore returns the value of the "membership_score" field in the mutation.
func (m *EntityCommunityMembershipMutation) MembershipScore() (r float64, exists bool) {
	v := m.membership_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMembershipScore returns the old "membership_score" field's value of the EntityCommunityMembership entity.
// If the EntityCommunityMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityCommunityMembershipMutation) OldMembershipScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMembershipScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMembershipScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMembershipScore: %w", err)
	}
	return oldValue.MembershipScore, nil
}

// AddMembershipScore adds f to the "membership_score" field.
func (m *EntityCommunityMembershipMutation) AddMembershipScore(f float64) {
	if m.addmembership_score != nil {
		*m.addmembership_score += f
	} else {
		m.addmembership_score = &f
	}
}

// AddedMembershipScore returns the value that was added to the "membership_score" field in this mutation.
func (m *EntityCommunityMembershipMutation) AddedMembershipScore() (r float64, exists bool) {
	v := m.addmembership_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMembershipScore resets all changes to the "membership_score" field.
func (m *EntityCommunityMembershipMutation) ResetMembershipScore() {
	m.membership_score = nil
	m.addmembership_score = nil
}

// SetGeneration sets the "generation" field.
func (m *EntityCommunityMembershipMutation) SetGeneration(i int64) {
	m.generation = &i
	m.addgeneration = nil
}

// Generation returns the value of the "generation" field in the mutation.
func (m *EntityCommunityMembershipMutation) Generation() (r int64, exists bool) {
	v := m.generation
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneration returns the old "generation" field's value of the EntityCommunityMembership entity.
// If the EntityCommunityMembership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityCommunityMembershipMutation) OldGeneration(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneration: %w", err)
	}
	return oldValue.Generation, nil
}

// AddGeneration adds i to the "generation" field.
func (m *EntityCommunityMembershipMutation) AddGeneration(i int64) {
	if m.addgeneration != nil {
		*m.addgeneration += i
	} else {
		m.addgeneration = &i
	}
}

// AddedGeneration returns the value that was added to the "generation" field in this mutation.
func (m *EntityCommunityMembershipMutation) AddedGeneration() (r int64, exists bool) {
	v := m.addgeneration
	if v == nil {
		return
	}
	return *v, true
}

// ResetGeneration resets all changes to the "generation" field.
func (m *EntityCommunityMembershipMutation) ResetGeneration() {
	m.generation = nil
	m.addgeneration = nil
}

// Where appends a list predicates to the EntityCommunityMembershipMutation builder.
func (m *EntityCommunityMembershipMutation) Where(ps ...predicate.EntityCommunityMembership) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityCommunityMembershipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityCommunityMembershipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityCommunityMembership, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityCommunityMembershipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityCommunityMembershipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityCommunityMembership).
func (m *EntityCommunityMembershipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityCommunityMembershipMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, entitycommunitymembership.FieldCreatedAt)
	}
	if m.entity_id != nil {
		fields = append(fields, entitycommunitymembership.FieldEntityID)
	}
	if m.community_id != nil {
		fields = append(fields, entitycommunitymembership.FieldCommunityID)
	}
	if m.membership_score != nil {
		fields = append(fields, entitycommunitymembership.FieldMembershipScore)
	}
	if m.generation != nil {
		fields = append(fields, entitycommunitymembership.FieldGeneration)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityCommunityMembershipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitycommunitymembership.FieldCreatedAt:
		return m.CreatedAt()
	case entitycommunitymembership.FieldEntityID:
		return m.EntityID()
	case entitycommunitymembership.FieldCommunityID:
		return m.CommunityID()
	case entitycommunitymembership.FieldMembershipScore:
		return m.MembershipScore()
	case entitycommunitymembership.FieldGeneration:
		return m.Generation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityCommunityMembershipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitycommunitymembership.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entitycommunitymembership.FieldEntityID:
		return m.OldEntityID(ctx)
	case entitycommunitymembership.FieldCommunityID:
		return m.OldCommunityID(ctx)
	case entitycommunitymembership.FieldMembershipScore:
		return m.OldMembershipScore(ctx)
	case entitycommunitymembership.FieldGeneration:
		return m.OldGeneration(ctx)
	}
	return nil, fmt.Errorf("unknown EntityCommunityMembership field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityCommunityMembershipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitycommunitymembership.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entitycommunitymembership.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entitycommunitymembership.FieldCommunityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunityID(v)
		return nil
	case entitycommunitymembership.FieldMembershipScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMembershipScore(v)
		return nil
	case entitycommunitymembership.FieldGeneration:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneration(v)
		return nil
	}
	return fmt.Errorf("unknown EntityCommunityMembership field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityCommunityMembershipMutation) AddedFields() []string {
	var fields []string
	if m.addmembership_score != nil {
		fields = append(fields, entitycommunitymembership.FieldMembershipScore)
	}
	if m.addgeneration != nil {
		fields = append(fields, entitycommunitymembership.FieldGeneration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityCommunityMembershipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitycommunitymembership.FieldMembershipScore:
		return m.AddedMembershipScore()
	case entitycommunitymembership.FieldGeneration:
		return m.AddedGeneration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityCommunityMembershipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitycommunitymembership.FieldMembershipScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMembershipScore(v)
		return nil
	case entitycommunitymembership.FieldGeneration:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGeneration(v)
		return nil
	}
	return fmt.Errorf("unknown EntityCommunityMembership numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityCommunityMembershipMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityCommunityMembershipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityCommunityMembershipMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EntityCommunityMembership nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityCommunityMembershipMutation) ResetField(name string) error {
	switch name {
	case entitycommunitymembership.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entitycommunitymembership.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entitycommunitymembership.FieldCommunityID:
		m.ResetCommunityID()
		return nil
	case entitycommunitymembership.FieldMembershipScore:
		m.ResetMembershipScore()
		return nil
	case entitycommunitymembership.FieldGeneration:
		m.ResetGeneration()
		return nil
	}
	return fmt.Errorf("unknown EntityCommunityMembership field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityCommunityMembershipMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityCommunityMembershipMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityCommunityMembershipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityCommunityMembershipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityCommunityMembershipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityCommunityMembershipMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityCommunityMembershipMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EntityCommunityMembership unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityCommunityMembershipMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EntityCommunityMembership edge %s", name)
}

// EntityRelationshipMutation represents an operation that mutates the EntityRelationship nodes in the graph.
type EntityRelationshipMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	source_entity_id  *string
	target_entity_id  *string
	relationship_type *entityrelationship.RelationshipType
	weight            *float64
	addweight         *float64
	confidence        *float64
	addconfidence     *float64
	observations      *int
	addobservations   *int
	last_object_id    *string
	source_domain_id  *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*EntityRelationship, error)
	predicates        []predicate.EntityRelationship
}

var _ ent.Mutation = (*EntityRelationshipMutation)(nil)

// entityrelationshipOption allows management of the mutation configuration using functional options.
type entityrelationshipOption func(*EntityRelationshipMutation)

// newEntityRelationshipMutation creates new mutation for the EntityRelationship entity.
func newEntityRelationshipMutation(c config, op Op, opts ...entityrelationshipOption) *EntityRelationshipMutation {
	m := &EntityRelationshipMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityRelationship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityRelationshipID sets the ID field of the mutation.
func withEntityRelationshipID(id string) entityrelationshipOption {
	return func(m *EntityRelationshipMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityRelationship
		)
		m.oldValue = func(ctx context.Context) (*EntityRelationship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityRelationship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityRelationship sets the old EntityRelationship of the mutation.
func withEntityRelationship(node *EntityRelationship) entityrelationshipOption {
	return func(m *EntityRelationshipMutation) {
		m.oldValue = func(context.Context) (*EntityRelationship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityRelationshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityRelationshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityRelationship entities.
func (m *EntityRelationshipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityRelationshipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityRelationshipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityRelationship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityRelationshipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityRelationshipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityRelationshipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityRelationshipMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityRelationshipMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityRelationshipMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSourceEntityID sets the "source_entity_id" field.
func (m *EntityRelationshipMutation) SetSourceEntityID(s string) {
	m.source_entity_id = &s
}

// SourceEntityID returns the value of the "source_entity_id" field in the mutation.
func (m *EntityRelationshipMutation) SourceEntityID() (r string, exists bool) {
	v := m.source_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEntityID returns the old "source_entity_id" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldSourceEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEntityID: %w", err)
	}
	return oldValue.SourceEntityID, nil
}

// ResetSourceEntityID resets all changes to the "source_entity_id" field.
func (m *EntityRelationshipMutation) ResetSourceEntityID() {
	m.source_entity_id = nil
}

// SetTargetEntityID sets the "target_entity_id" field.
func (m *EntityRelationshipMutation) SetTargetEntityID(s string) {
	m.target_entity_id = &s
}

// TargetEntityID returns the value of the "target_entity_id" field in the mutation.
func (m *EntityRelationshipMutation) TargetEntityID() (r string, exists bool) {
	v := m.target_entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetEntityID returns the old "target_entity_id" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldTargetEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetEntityID: %w", err)
	}
	return oldValue.TargetEntityID, nil
}

// ResetTargetEntityID resets all changes to the "target_entity_id" field.
func (m *EntityRelationshipMutation) ResetTargetEntityID() {
	m.target_entity_id = nil
}

// SetRelationshipType sets the "relationship_type" field.
func (m *EntityRelationshipMutation) SetRelationshipType(et entityrelationship.RelationshipType) {
	m.relationship_type = &et
}

// RelationshipType returns the value of the "relationship_type" field in the mutation.
func (m *EntityRelationshipMutation) RelationshipType() (r entityrelationship.RelationshipType, exists bool) {
	v := m.relationship_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationshipType returns the old "relationship_type" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldRelationshipType(ctx context.Context) (v entityrelationship.RelationshipType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationshipType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationshipType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationshipType: %w", err)
	}
	return oldValue.RelationshipType, nil
}

// ResetRelationshipType resets all changes to the "relationship_type" field.
func (m *EntityRelationshipMutation) ResetRelationshipType() {
	m.relationship_type = nil
}

// SetWeight sets the "weight" field.
func (m *EntityRelationshipMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *EntityRelationshipMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *EntityRelationshipMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *EntityRelationshipMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *EntityRelationshipMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetConfidence sets the "confidence" field.
func (m *EntityRelationshipMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityRelationshipMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityRelationshipMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityRelationshipMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityRelationshipMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetObservations sets the "observations" field.
func (m *EntityRelationshipMutation) SetObservations(i int) {
	m.observations = &i
	m.addobservations = nil
}

// Observations returns the value of the "observations" field in the mutation.
func (m *EntityRelationshipMutation) Observations() (r int, exists bool) {
	v := m.observations
	if v == nil {
		return
	}
	return *v, true
}

// OldObservations returns the old "observations" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldObservations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservations: %w", err)
	}
	return oldValue.Observations, nil
}

// AddObservations adds i to the "observations" field.
func (m *EntityRelationshipMutation) AddObservations(i int) {
	if m.addobservations != nil {
		*m.addobservations += i
	} else {
		m.addobservations = &i
	}
}

// AddedObservations returns the value that was added to the "observations" field in this mutation.
func (m *EntityRelationshipMutation) AddedObservations() (r int, exists bool) {
	v := m.addobservations
	if v == nil {
		return
	}
	return *v, true
}

// ResetObservations resets all changes to the "observations" field.
func (m *EntityRelationshipMutation) ResetObservations() {
	m.observations = nil
	m.addobservations = nil
}

// SetLastObjectID sets the "last_object_id" field.
func (m *EntityRelationshipMutation) SetLastObjectID(s string) {
	m.last_object_id = &s
}

// LastObjectID returns the value of the "last_object_id" field in the mutation.
func (m *EntityRelationshipMutation) LastObjectID() (r string, exists bool) {
	v := m.last_object_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastObjectID returns the old "last_object_id" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldLastObjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastObjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastObjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastObjectID: %w", err)
	}
	return oldValue.LastObjectID, nil
}

// ClearLastObjectID clears the value of the "last_object_id" field.
func (m *EntityRelationshipMutation) ClearLastObjectID() {
	m.last_object_id = nil
	m.clearedFields[entityrelationship.FieldLastObjectID] = struct{}{}
}

// LastObjectIDCleared returns if the "last_object_id" field was cleared in this mutation.
func (m *EntityRelationshipMutation) LastObjectIDCleared() bool {
	_, ok := m.clearedFields[entityrelationship.FieldLastObjectID]
	return ok
}

// ResetLastObjectID resets all changes to the "last_object_id" field.
func (m *EntityRelationshipMutation) ResetLastObjectID() {
	m.last_object_id = nil
	delete(m.clearedFields, entityrelationship.FieldLastObjectID)
}

// SetSourceDomainID sets the "source_domain_id" field.
func (m *EntityRelationshipMutation) SetSourceDomainID(s string) {
	m.source_domain_id = &s
}

// SourceDomainID returns the value of the "source_domain_id" field in the mutation.
func (m *EntityRelationshipMutation) SourceDomainID() (r string, exists bool) {
	v := m.source_domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDomainID returns the old "source_domain_id" field's value of the EntityRelationship entity.
// If the EntityRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityRelationshipMutation) OldSourceDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDomainID: %w", err)
	}
	return oldValue.SourceDomainID, nil
}

// ClearSourceDomainID clears the value of the "source_domain_id" field.
func (m *EntityRelationshipMutation) ClearSourceDomainID() {
	m.source_domain_id = nil
	m.clearedFields[entityrelationship.FieldSourceDomainID] = struct{}{}
}

// SourceDomainIDCleared returns if the "source_domain_id" field was cleared in this mutation.
func (m *EntityRelationshipMutation) SourceDomainIDCleared() bool {
	_, ok := m.clearedFields[entityrelationship.FieldSourceDomainID]
	return ok
}

// ResetSourceDomainID resets all changes to the "source_domain_id" field.
func (m *EntityRelationshipMutation) ResetSourceDomainID() {
	m.source_domain_id = nil
	delete(m.clearedFields, entityrelationship.FieldSourceDomainID)
}

// Where appends a list predicates to the EntityRelationshipMutation builder.
func (m *EntityRelationshipMutation) Where(ps ...predicate.EntityRelationship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityRelationshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityRelationshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityRelationship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityRelationshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityRelationshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityRelationship).
func (m *EntityRelationshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityRelationshipMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, entityrelationship.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entityrelationship.FieldUpdatedAt)
	}
	if m.source_entity_id != nil {
		fields = append(fields, entityrelationship.FieldSourceEntityID)
	}
	if m.target_entity_id != nil {
		fields = append(fields, entityrelationship.FieldTargetEntityID)
	}
	if m.relationship_type != nil {
		fields = append(fields, entityrelationship.FieldRelationshipType)
	}
	if m.weight != nil {
		fields = append(fields, entityrelationship.FieldWeight)
	}
	if m.confidence != nil {
		fields = append(fields, entityrelationship.FieldConfidence)
	}
	if m.observations != nil {
		fields = append(fields, entityrelationship.FieldObservations)
	}
	if m.last_object_id != nil {
		fields = append(fields, entityrelationship.FieldLastObjectID)
	}
	if m.source_domain_id != nil {
		fields = append(fields, entityrelationship.FieldSourceDomainID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityRelationshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityrelationship.FieldCreatedAt:
		return m.CreatedAt()
	case entityrelationship.FieldUpdatedAt:
		return m.UpdatedAt()
	case entityrelationship.FieldSourceEntityID:
		return m.SourceEntityID()
	case entityrelationship.FieldTargetEntityID:
		return m.TargetEntityID()
	case entityrelationship.FieldRelationshipType:
		return m.RelationshipType()
	case entityrelationship.FieldWeight:
		return m.Weight()
	case entityrelationship.FieldConfidence:
		return m.Confidence()
	case entityrelationship.FieldObservations:
		return m.Observations()
	case entityrelationship.FieldLastObjectID:
		return m.LastObjectID()
	case entityrelationship.FieldSourceDomainID:
		return m.SourceDomainID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityRelationshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityrelationship.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entityrelationship.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case entityrelationship.FieldSourceEntityID:
		return m.OldSourceEntityID(ctx)
	case entityrelationship.FieldTargetEntityID:
		return m.OldTargetEntityID(ctx)
	case entityrelationship.FieldRelationshipType:
		return m.OldRelationshipType(ctx)
	case entityrelationship.FieldWeight:
		return m.OldWeight(ctx)
	case entityrelationship.FieldConfidence:
		return m.OldConfidence(ctx)
	case entityrelationship.FieldObservations:
		return m.OldObservations(ctx)
	case entityrelationship.FieldLastObjectID:
		return m.OldLastObjectID(ctx)
	case entityrelationship.FieldSourceDomainID:
		return m.OldSourceDomainID(ctx)
	}
	return nil, fmt.Errorf("unknown EntityRelationship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityRelationshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityrelationship.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entityrelationship.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case entityrelationship.FieldSourceEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEntityID(v)
		return nil
	case entityrelationship.FieldTargetEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetEntityID(v)
		return nil
	case entityrelationship.FieldRelationshipType:
		v, ok := value.(entityrelationship.RelationshipType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationshipType(v)
		return nil
	case entityrelationship.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case entityrelationship.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entityrelationship.FieldObservations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservations(v)
		return nil
	case entityrelationship.FieldLastObjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastObjectID(v)
		return nil
	case entityrelationship.FieldSourceDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDomainID(v)
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityRelationshipMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, entityrelationship.FieldWeight)
	}
	if m.addconfidence != nil {
		fields = append(fields, entityrelationship.FieldConfidence)
	}
	if m.addobservations != nil {
		fields = append(fields, entityrelationship.FieldObservations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityRelationshipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entityrelationship.FieldWeight:
		return m.AddedWeight()
	case entityrelationship.FieldConfidence:
		return m.AddedConfidence()
	case entityrelationship.FieldObservations:
		return m.AddedObservations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityRelationshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entityrelationship.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case entityrelationship.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case entityrelationship.FieldObservations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObservations(v)
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityRelationshipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entityrelationship.FieldLastObjectID) {
		fields = append(fields, entityrelationship.FieldLastObjectID)
	}
	if m.FieldCleared(entityrelationship.FieldSourceDomainID) {
		fields = append(fields, entityrelationship.FieldSourceDomainID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityRelationshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityRelationshipMutation) ClearField(name string) error {
	switch name {
	case entityrelationship.FieldLastObjectID:
		m.ClearLastObjectID()
		return nil
	case entityrelationship.FieldSourceDomainID:
		m.ClearSourceDomainID()
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityRelationshipMutation) ResetField(name string) error {
	switch name {
	case entityrelationship.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entityrelationship.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case entityrelationship.FieldSourceEntityID:
		m.ResetSourceEntityID()
		return nil
	case entityrelationship.FieldTargetEntityID:
		m.ResetTargetEntityID()
		return nil
	case entityrelationship.FieldRelationshipType:
		m.ResetRelationshipType()
		return nil
	case entityrelationship.FieldWeight:
		m.ResetWeight()
		return nil
	case entityrelationship.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entityrelationship.FieldObservations:
		m.ResetObservations()
		return nil
	case entityrelationship.FieldLastObjectID:
		m.ResetLastObjectID()
		return nil
	case entityrelationship.FieldSourceDomainID:
		m.ResetSourceDomainID()
		return nil
	}
	return fmt.Errorf("unknown EntityRelationship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityRelationshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityRelationshipMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityRelationshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityRelationshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityRelationshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityRelationshipMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityRelationshipMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EntityRelationship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityRelationshipMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EntityRelationship edge %s", name)
}

// GraphGenerationMutation represents an operation that mutates the GraphGeneration nodes in the graph.
type GraphGenerationMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	number             *int64
	addnumber          *int64
	modularity         *float64
	addmodularity      *float64
	levels             *int
	addlevels          *int
	community_count    *int
	addcommunity_count *int
	entity_count       *int
	addentity_count    *int
	budget_exceeded    *bool
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*GraphGeneration, error)
	predicates         []predicate.GraphGeneration
}

var _ ent.Mutation = (*GraphGenerationMutation)(nil)

// graphgenerationOption allows management of the mutation configuration using functional options.
type graphgenerationOption func(*GraphGenerationMutation)

// newGraphGenerationMutation creates new mutation for the GraphGeneration entity.
func newGraphGenerationMutation(c config, op Op, opts ...graphgenerationOption) *GraphGenerationMutation {
	m := &GraphGenerationMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphGeneration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphGenerationID sets the ID field of the mutation.
func withGraphGenerationID(id string) graphgenerationOption {
	return func(m *GraphGenerationMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphGeneration
		)
		m.oldValue = func(ctx context.Context) (*GraphGeneration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphGeneration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphGeneration sets the old GraphGeneration of the mutation.
func withGraphGeneration(node *GraphGeneration) graphgenerationOption {
	return func(m *GraphGenerationMutation) {
		m.oldValue = func(context.Context) (*GraphGeneration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphGenerationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphGenerationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GraphGeneration entities.
func (m *GraphGenerationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphGenerationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphGenerationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphGeneration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GraphGenerationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GraphGenerationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GraphGeneration entity.
// If the GraphGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphGenerationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GraphGenerationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetNumber sets the "number" field.
func (m *GraphGenerationMutation) SetNumber(i int64) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *GraphGenerationMutation) Number() (r int64, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the GraphGeneration entity.
// If the GraphGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphGenerationMutation) OldNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *GraphGenerationMutation) AddNumber(i int64) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *GraphGenerationMutation) AddedNumber() (r int64, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *GraphGenerationMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetModularity sets the "modularity" field.
func (m *GraphGenerationMutation) SetModularity(f float64) {
	m.modularity = &f
	m.addmodularity = nil
}

// Modularity returns the value of the "modularity" field in the mutation.
func (m *GraphGenerationMutation) Modularity() (r float64, exists bool) {
	v := m.modularity
	if v == nil {
		return
	}
	return *v, true
}

// OldModularity returns the old "modularity" field's value of the GraphGeneration entity.
// If the GraphGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphGenerationMutation) OldModularity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModularity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModularity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModularity: %w", err)
	}
	return oldValue.Modularity, nil
}

// AddModularity adds f to the "modularity" field.
func (m *GraphGenerationMutation) AddModularity(f float64) {
	if m.addmodularity != nil {
		*m.addmodularity += f
	} else {
		m.addmodularity = &f
	}
}

// AddedModularity returns the value that was added to the "modularity" field in this mutation.
func (m *GraphGenerationMutation) AddedModularity() (r float64, exists bool) {
	v := m.addmodularity
	if v == nil {
		return
	}
	return *v, true
}

// ResetModularity resets all changes to the "modularity" field.
func (m *GraphGenerationMutation) ResetModularity() {
	m.modularity = nil
	m.addmodularity = nil
}

// SetLevels sets the "levels" field.
func (m *GraphGenerationMutation) SetLevels(i int) {
	m.levels = &i
	m.addlevels = nil
}

// Levels returns the value of the "levels" field in the mutation.
func (m *GraphGenerationMutation) Levels() (r int, exists bool) {
	v := m.levels
	if v == nil {
		return
	}
	return *v, true
}

// OldLevels returns the old "levels" field's value of the GraphGeneration entity.
// If the GraphGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphGenerationMutation) OldLevels(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevels: %w", err)
	}
	return oldValue.Levels, nil
}

// AddLevels adds i to the "levels" field.
func (m *GraphGenerationMutation) AddLevels(i int) {
	if m.addlevels != nil {
		*m.addlevels += i
	} else {
		m.addlevels = &i
	}
}

// AddedLevels returns the value that was added to the "levels" field in this mutation.
func (m *GraphGenerationMutation) AddedLevels() (r int, exists bool) {
	v := m.addlevels
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevels resets all changes to the "levels" field.
func (m *GraphGenerationMutation) ResetLevels() {
	m.levels = nil
	m.addlevels = nil
}

// SetCommunityCount sets the "community_count" field.
func (m *GraphGenerationMutation) SetCommunityCount(i int) {
	m.community_count = &i
	m.addcommunity_count = nil
}

// CommunityCount returns the value of the "community_count" field in the mutation.
func (m *GraphGenerationMutation) CommunityCount() (r int, exists bool) {
	v := m.community_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunityCount returns the old "community_count" field's value of the GraphGeneration entity.
// If the GraphGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphGenerationMutation) OldCommunityCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunityCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunityCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunityCount: %w", err)
	}
	return oldValue.CommunityCount, nil
}

// AddCommunityCount adds i to the "community_count" field.
func (m *GraphGenerationMutation) AddCommunityCount(i int) {
	if m.addcommunity_count != nil {
		*m.addcommunity_count += i
	} else {
		m.addcommunity_count = &i
	}
}

// AddedCommunityCount returns the value that was added to the "community_count" field in this mutation.
func (m *GraphGenerationMutation) AddedCommunityCount() (r int, exists bool) {
	v := m.addcommunity_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommunityCount resets all changes to the "community_count" field.
func (m *GraphGenerationMutation) ResetCommunityCount() {
	m.community_count = nil
	m.addcommunity_count = nil
}

// SetEntityCount sets the "entity_count" field.
func (m *GraphGenerationMutation) SetEntityCount(i int) {
	m.entity_count = &i
	m.addentity_count = nil
}

// EntityCount returns the value of the "entity_count" field in the mutation.
func (m *GraphGenerationMutation) EntityCount() (r int, exists bool) {
	v := m.entity_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityCount returns the old "entity_count" field's value of the GraphGeneration entity.
// If the GraphGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphGenerationMutation) OldEntityCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityCount: %w", err)
	}
	return oldValue.EntityCount, nil
}

// AddEntityCount adds i to the "entity_count" field.
func (m *GraphGenerationMutation) AddEntityCount(i int) {
	if m.addentity_count != nil {
		*m.addentity_count += i
	} else {
		m.addentity_count = &i
	}
}

// AddedEntityCount returns the value that was added to the "entity_count" field in this mutation.
func (m *GraphGenerationMutation) AddedEntityCount() (r int, exists bool) {
	v := m.addentity_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntityCount resets all changes to the "entity_count" field.
func (m *GraphGenerationMutation) ResetEntityCount() {
	m.entity_count = nil
	m.addentity_count = nil
}

// SetBudgetExceeded sets the "budget_exceeded" field.
func (m *GraphGenerationMutation) SetBudgetExceeded(b bool) {
	m.budget_exceeded = &b
}

// BudgetExceeded returns the value of the "budget_exceeded" field in the mutation.
func (m *GraphGenerationMutation) BudgetExceeded() (r bool, exists bool) {
	v := m.budget_exceeded
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetExceeded returns the old "budget_exceeded" field's value of the GraphGeneration entity.
// If the GraphGeneration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphGenerationMutation) OldBudgetExceeded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetExceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetExceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetExceeded: %w", err)
	}
	return oldValue.BudgetExceeded, nil
}

// ResetBudgetExceeded resets all changes to the "budget_exceeded" field.
func (m *GraphGenerationMutation) ResetBudgetExceeded() {
	m.budget_exceeded = nil
}

// Where appends a list predicates to the GraphGenerationMutation builder.
func (m *GraphGenerationMutation) Where(ps ...predicate.GraphGeneration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphGenerationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphGenerationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphGeneration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphGenerationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphGenerationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphGeneration).
func (m *GraphGenerationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphGenerationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, graphgeneration.FieldCreatedAt)
	}
	if m.number != nil {
		fields = append(fields, graphgeneration.FieldNumber)
	}
	if m.modularity != nil {
		fields = append(fields, graphgeneration.FieldModularity)
	}
	if m.levels != nil {
		fields = append(fields, graphgeneration.FieldLevels)
	}
	if m.community_count != nil {
		fields = append(fields, graphgeneration.FieldCommunityCount)
	}
	if m.entity_count != nil {
		fields = append(fields, graphgeneration.FieldEntityCount)
	}
	if m.budget_exceeded != nil {
		fields = append(fields, graphgeneration.FieldBudgetExceeded)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphGenerationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphgeneration.FieldCreatedAt:
		return m.CreatedAt()
	case graphgeneration.FieldNumber:
		return m.Number()
	case graphgeneration.FieldModularity:
		return m.Modularity()
	case graphgeneration.FieldLevels:
		return m.Levels()
	case graphgeneration.FieldCommunityCount:
		return m.CommunityCount()
	case graphgeneration.FieldEntityCount:
		return m.EntityCount()
	case graphgeneration.FieldBudgetExceeded:
		return m.BudgetExceeded()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphGenerationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphgeneration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case graphgeneration.FieldNumber:
		return m.OldNumber(ctx)
	case graphgeneration.FieldModularity:
		return m.OldModularity(ctx)
	case graphgeneration.FieldLevels:
		return m.OldLevels(ctx)
	case graphgeneration.FieldCommunityCount:
		return m.OldCommunityCount(ctx)
	case graphgeneration.FieldEntityCount:
		return m.OldEntityCount(ctx)
	case graphgeneration.FieldBudgetExceeded:
		return m.OldBudgetExceeded(ctx)
	}
	return nil, fmt.Errorf("unknown GraphGeneration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphGenerationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphgeneration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case graphgeneration.FieldNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case graphgeneration.FieldModularity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModularity(v)
		return nil
	case graphgeneration.FieldLevels:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevels(v)
		return nil
	case graphgeneration.FieldCommunityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunityCount(v)
		return nil
	case graphgeneration.FieldEntityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityCount(v)
		return nil
	case graphgeneration.FieldBudgetExceeded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetExceeded(v)
		return nil
	}
	return fmt.Errorf("unknown GraphGeneration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphGenerationMutation) AddedFields() []string {
	var fields []string
	if m.addnumber != nil {
		fields = append(fields, graphgeneration.FieldNumber)
	}
	if m.addmodularity != nil {
		fields = append(fields, graphgeneration.FieldModularity)
	}
	if m.addlevels != nil {
		fields = append(fields, graphgeneration.FieldLevels)
	}
	if m.addcommunity_count != nil {
		fields = append(fields, graphgeneration.FieldCommunityCount)
	}
	if m.addentity_count != nil {
		fields = append(fields, graphgeneration.FieldEntityCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphGenerationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case graphgeneration.FieldNumber:
		return m.AddedNumber()
	case graphgeneration.FieldModularity:
		return m.AddedModularity()
	case graphgeneration.FieldLevels:
		return m.AddedLevels()
	case graphgeneration.FieldCommunityCount:
		return m.AddedCommunityCount()
	case graphgeneration.FieldEntityCount:
		return m.AddedEntityCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphGenerationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case graphgeneration.FieldNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	case graphgeneration.FieldModularity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModularity(v)
		return nil
	case graphgeneration.FieldLevels:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevels(v)
		return nil
	case graphgeneration.FieldCommunityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommunityCount(v)
		return nil
	case graphgeneration.FieldEntityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntityCount(v)
		return nil
	}
	return fmt.Errorf("unknown GraphGeneration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphGenerationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphGenerationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphGenerationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GraphGeneration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphGenerationMutation) ResetField(name string) error {
	switch name {
	case graphgeneration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case graphgeneration.FieldNumber:
		m.ResetNumber()
		return nil
	case graphgeneration.FieldModularity:
		m.ResetModularity()
		return nil
	case graphgeneration.FieldLevels:
		m.ResetLevels()
		return nil
	case graphgeneration.FieldCommunityCount:
		m.ResetCommunityCount()
		return nil
	case graphgeneration.FieldEntityCount:
		m.ResetEntityCount()
		return nil
	case graphgeneration.FieldBudgetExceeded:
		m.ResetBudgetExceeded()
		return nil
	}
	return fmt.Errorf("unknown GraphGeneration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphGenerationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphGenerationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphGenerationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphGenerationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphGenerationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphGenerationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphGenerationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GraphGeneration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphGenerationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GraphGeneration edge %s", name)
}

// InformationDomainMutation represents an operation that mutates the InformationDomain nodes in the graph.
type InformationDomainMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	name             *string
	description      *string
	domain_type      *informationdomain.DomainType
	status           *informationdomain.Status
	organization_id  *string
	owner_user_id    *string
	parent_domain_id *string
	metadata         *map[string]interface{}
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*InformationDomain, error)
	predicates       []predicate.InformationDomain
}

var _ ent.Mutation = (*InformationDomainMutation)(nil)

// informationdomainOption allows management of the mutation configuration using functional options.
type informationdomainOption func(*InformationDomainMutation)

// newInformationDomainMutation creates new mutation for the InformationDomain entity.
func newInformationDomainMutation(c config, op Op, opts ...informationdomainOption) *InformationDomainMutation {
	m := &InformationDomainMutation{
		config:        c,
		op:            op,
		typ:           TypeInformationDomain,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInformationDomainID sets the ID field of the mutation.
func withInformationDomainID(id string) informationdomainOption {
	return func(m *InformationDomainMutation) {
		var (
			err   error
			once  sync.Once
			value *InformationDomain
		)
		m.oldValue = func(ctx context.Context) (*InformationDomain, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InformationDomain.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInformationDomain sets the old InformationDomain of the mutation.
func withInformationDomain(node *InformationDomain) informationdomainOption {
	return func(m *InformationDomainMutation) {
		m.oldValue = func(context.Context) (*InformationDomain, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InformationDomainMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InformationDomainMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InformationDomain entities.
func (m *InformationDomainMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InformationDomainMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InformationDomainMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InformationDomain.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InformationDomainMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InformationDomainMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InformationDomainMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InformationDomainMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InformationDomainMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InformationDomainMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *InformationDomainMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InformationDomainMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InformationDomainMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *InformationDomainMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InformationDomainMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *InformationDomainMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[informationdomain.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *InformationDomainMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[informationdomain.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *InformationDomainMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, informationdomain.FieldDescription)
}

// SetDomainType sets the "domain_type" field.
func (m *InformationDomainMutation) SetDomainType(it informationdomain.DomainType) {
	m.domain_type = &it
}

// DomainType returns the value of the "domain_type" field in the mutation.
func (m *InformationDomainMutation) DomainType() (r informationdomain.DomainType, exists bool) {
	v := m.domain_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainType returns the old "domain_type" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldDomainType(ctx context.Context) (v informationdomain.DomainType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainType: %w", err)
	}
	return oldValue.DomainType, nil
}

// ResetDomainType resets all changes to the "domain_type" field.
func (m *InformationDomainMutation) ResetDomainType() {
	m.domain_type = nil
}

// SetStatus sets the "status" field.
func (m *InformationDomainMutation) SetStatus(i informationdomain.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InformationDomainMutation) Status() (r informationdomain.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldStatus(ctx context.Context) (v informationdomain.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InformationDomainMutation) ResetStatus() {
	m.status = nil
}

// SetOrganizationID sets the "organization_id" field.
func (m *InformationDomainMutation) SetOrganizationID(s string) {
	m.organization_id = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *InformationDomainMutation) OrganizationID() (r string, exists bool) {
	v := m.organization_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *InformationDomainMutation) ResetOrganizationID() {
	m.organization_id = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *InformationDomainMutation) SetOwnerUserID(s string) {
	m.owner_user_id = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *InformationDomainMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldOwnerUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (m *InformationDomainMutation) ClearOwnerUserID() {
	m.owner_user_id = nil
	m.clearedFields[informationdomain.FieldOwnerUserID] = struct{}{}
}

// OwnerUserIDCleared returns if the "owner_user_id" field was cleared in this mutation.
func (m *InformationDomainMutation) OwnerUserIDCleared() bool {
	_, ok := m.clearedFields[informationdomain.FieldOwnerUserID]
	return ok
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *InformationDomainMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
	delete(m.clearedFields, informationdomain.FieldOwnerUserID)
}

// SetParentDomainID sets the "parent_domain_id" field.
func (m *InformationDomainMutation) SetParentDomainID(s string) {
	m.parent_domain_id = &s
}

// ParentDomainID returns the value of the "parent_domain_id" field in the mutation.
func (m *InformationDomainMutation) ParentDomainID() (r string, exists bool) {
	v := m.parent_domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentDomainID returns the old "parent_domain_id" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldParentDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentDomainID: %w", err)
	}
	return oldValue.ParentDomainID, nil
}

// ClearParentDomainID clears the value of the "parent_domain_id" field.
func (m *InformationDomainMutation) ClearParentDomainID() {
	m.parent_domain_id = nil
	m.clearedFields[informationdomain.FieldParentDomainID] = struct{}{}
}

// ParentDomainIDCleared returns if the "parent_domain_id" field was cleared in this mutation.
func (m *InformationDomainMutation) ParentDomainIDCleared() bool {
	_, ok := m.clearedFields[informationdomain.FieldParentDomainID]
	return ok
}

// ResetParentDomainID resets all changes to the "parent_domain_id" field.
func (m *InformationDomainMutation) ResetParentDomainID() {
	m.parent_domain_id = nil
	delete(m.clearedFields, informationdomain.FieldParentDomainID)
}

// SetMetadata sets the "metadata" field.
func (m *InformationDomainMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *InformationDomainMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the InformationDomain entity.
// If the InformationDomain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationDomainMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *InformationDomainMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[informationdomain.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *InformationDomainMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[informationdomain.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *InformationDomainMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, informationdomain.FieldMetadata)
}

// Where appends a list predicates to the InformationDomainMutation builder.
func (m *InformationDomainMutation) Where(ps ...predicate.InformationDomain) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InformationDomainMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InformationDomainMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InformationDomain, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InformationDomainMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InformationDomainMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InformationDomain).
func (m *InformationDomainMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InformationDomainMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, informationdomain.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, informationdomain.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, informationdomain.FieldName)
	}
	if m.description != nil {
		fields = append(fields, informationdomain.FieldDescription)
	}
	if m.domain_type != nil {
		fields = append(fields, informationdomain.FieldDomainType)
	}
	if m.status != nil {
		fields = append(fields, informationdomain.FieldStatus)
	}
	if m.organization_id != nil {
		fields = append(fields, informationdomain.FieldOrganizationID)
	}
	if m.owner_user_id != nil {
		fields = append(fields, informationdomain.FieldOwnerUserID)
	}
	if m.parent_domain_id != nil {
		fields = append(fields, informationdomain.FieldParentDomainID)
	}
	if m.metadata != nil {
		fields = append(fields, informationdomain.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InformationDomainMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case informationdomain.FieldCreatedAt:
		return m.CreatedAt()
	case informationdomain.FieldUpdatedAt:
		return m.UpdatedAt()
	case informationdomain.FieldName:
		return m.Name()
	case informationdomain.FieldDescription:
		return m.Description()
	case informationdomain.FieldDomainType:
		return m.DomainType()
	case informationdomain.FieldStatus:
		return m.Status()
	case informationdomain.FieldOrganizationID:
		return m.OrganizationID()
	case informationdomain.FieldOwnerUserID:
		return m.OwnerUserID()
	case informationdomain.FieldParentDomainID:
		return m.ParentDomainID()
	case informationdomain.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InformationDomainMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case informationdomain.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case informationdomain.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case informationdomain.FieldName:
		return m.OldName(ctx)
	case informationdomain.FieldDescription:
		return m.OldDescription(ctx)
	case informationdomain.FieldDomainType:
		return m.OldDomainType(ctx)
	case informationdomain.FieldStatus:
		return m.OldStatus(ctx)
	case informationdomain.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case informationdomain.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case informationdomain.FieldParentDomainID:
		return m.OldParentDomainID(ctx)
	case informationdomain.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown InformationDomain field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InformationDomainMutation) SetField(name string, value ent.Value) error {
	switch name {
	case informationdomain.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case informationdomain.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case informationdomain.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case informationdomain.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case informationdomain.FieldDomainType:
		v, ok := value.(informationdomain.DomainType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainType(v)
		return nil
	case informationdomain.FieldStatus:
		v, ok := value.(informationdomain.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case informationdomain.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case informationdomain.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case informationdomain.FieldParentDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentDomainID(v)
		return nil
	case informationdomain.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown InformationDomain field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InformationDomainMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InformationDomainMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InformationDomainMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InformationDomain numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InformationDomainMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(informationdomain.FieldDescription) {
		fields = append(fields, informationdomain.FieldDescription)
	}
	if m.FieldCleared(informationdomain.FieldOwnerUserID) {
		fields = append(fields, informationdomain.FieldOwnerUserID)
	}
	if m.FieldCleared(informationdomain.FieldParentDomainID) {
		fields = append(fields, informationdomain.FieldParentDomainID)
	}
	if m.FieldCleared(informationdomain.FieldMetadata) {
		fields = append(fields, informationdomain.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InformationDomainMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InformationDomainMutation) ClearField(name string) error {
	switch name {
	case informationdomain.FieldDescription:
		m.ClearDescription()
		return nil
	case informationdomain.FieldOwnerUserID:
		m.ClearOwnerUserID()
		return nil
	case informationdomain.FieldParentDomainID:
		m.ClearParentDomainID()
		return nil
	case informationdomain.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown InformationDomain nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InformationDomainMutation) ResetField(name string) error {
	switch name {
	case informationdomain.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case informationdomain.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case informationdomain.FieldName:
		m.ResetName()
		return nil
	case informationdomain.FieldDescription:
		m.ResetDescription()
		return nil
	case informationdomain.FieldDomainType:
		m.ResetDomainType()
		return nil
	case informationdomain.FieldStatus:
		m.ResetStatus()
		return nil
	case informationdomain.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case informationdomain.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case informationdomain.FieldParentDomainID:
		m.ResetParentDomainID()
		return nil
	case informationdomain.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown InformationDomain field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InformationDomainMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InformationDomainMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InformationDomainMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InformationDomainMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InformationDomainMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InformationDomainMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InformationDomainMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InformationDomain unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InformationDomainMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InformationDomain edge %s", name)
}

// InformationObjectMutation represents an operation that mutates the InformationObject nodes in the graph.
type InformationObjectMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	created_at           *time.Time
	updated_at           *time.Time
	domain_id            *string
	object_type          *informationobject.ObjectType
	title                *string
	description          *string
	content_location     *string
	content_text         *string
	mime_type            *string
	file_size            *int64
	addfile_size         *int64
	classification       *informationobject.Classification
	retention_period     *int
	addretention_period  *int
	retention_trigger    *string
	destruction_date     *time.Time
	is_woo_relevant      *bool
	woo_publication_date *time.Time
	privacy_level        *informationobject.PrivacyLevel
	tags                 *[]string
	appendtags           []string
	metadata             *map[string]interface{}
	version              *int
	addversion           *int
	previous_version_id  *string
	created_by           *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*InformationObject, error)
	predicates           []predicate.InformationObject
}

var _ ent.Mutation = (*InformationObjectMutation)(nil)

// informationobjectOption allows management of the mutation configuration using functional options.
type informationobjectOption func(*InformationObjectMutation)

// newInformationObjectMutation creates new mutation for the InformationObject entity.
func newInformationObjectMutation(c config, op Op, opts ...informationobjectOption) *InformationObjectMutation {
	m := &InformationObjectMutation{
		config:        c,
		op:            op,
		typ:           TypeInformationObject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInformationObjectID sets the ID field of the mutation.
func withInformationObjectID(id string) informationobjectOption {
	return func(m *InformationObjectMutation) {
		var (
			err   error
			once  sync.Once
			value *InformationObject
		)
		m.oldValue = func(ctx context.Context) (*InformationObject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InformationObject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInformationObject sets the old InformationObject of the mutation.
func withInformationObject(node *InformationObject) informationobjectOption {
	return func(m *InformationObjectMutation) {
		m.oldValue = func(context.Context) (*InformationObject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InformationObjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InformationObjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InformationObject entities.
func (m *InformationObjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InformationObjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InformationObjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InformationObject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InformationObjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InformationObjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InformationObjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InformationObjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InformationObjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InformationObjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDomainID sets the "domain_id" field.
func (m *InformationObjectMutation) SetDomainID(s string) {
	m.domain_id = &s
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *InformationObjectMutation) DomainID() (r string, exists bool) {
	v := m.domain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldDomainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *InformationObjectMutation) ResetDomainID() {
	m.domain_id = nil
}

// SetObjectType sets the "object_type" field.
func (m *InformationObjectMutation) SetObjectType(it informationobject.ObjectType) {
	m.object_type = &it
}

// ObjectType returns the value of the "object_type" field in the mutation.
func (m *InformationObjectMutation) ObjectType() (r informationobject.ObjectType, exists bool) {
	v := m.object_type
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectType returns the old "object_type" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldObjectType(ctx context.Context) (v informationobject.ObjectType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectType: %w", err)
	}
	return oldValue.ObjectType, nil
}

// ResetObjectType resets all changes to the "object_type" field.
func (m *InformationObjectMutation) ResetObjectType() {
	m.object_type = nil
}

// SetTitle sets the "title" field.
func (m *InformationObjectMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *InformationObjectMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *InformationObjectMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *InformationObjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InformationObjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *InformationObjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[informationobject.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *InformationObjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *InformationObjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, informationobject.FieldDescription)
}

// SetContentLocation sets the "content_location" field.
func (m *InformationObjectMutation) SetContentLocation(s string) {
	m.content_location = &s
}

// ContentLocation returns the value of the "content_location" field in the mutation.
func (m *InformationObjectMutation) ContentLocation() (r string, exists bool) {
	v := m.content_location
	if v == nil {
		return
	}
	return *v, true
}

// OldContentLocation returns the old "content_location" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldContentLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentLocation: %w", err)
	}
	return oldValue.ContentLocation, nil
}

// ClearContentLocation clears the value of the "content_location" field.
func (m *InformationObjectMutation) ClearContentLocation() {
	m.content_location = nil
	m.clearedFields[informationobject.FieldContentLocation] = struct{}{}
}

// ContentLocationCleared returns if the "content_location" field was cleared in this mutation.
func (m *InformationObjectMutation) ContentLocationCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldContentLocation]
	return ok
}

// ResetContentLocation resets all changes to the "content_location" field.
func (m *InformationObjectMutation) ResetContentLocation() {
	m.content_location = nil
	delete(m.clearedFields, informationobject.FieldContentLocation)
}

// SetContentText sets the "content_text" field.
func (m *InformationObjectMutation) SetContentText(s string) {
	m.content_text = &s
}

// ContentText returns the value of the "content_text" field in the mutation.
func (m *InformationObjectMutation) ContentText() (r string, exists bool) {
	v := m.content_text
	if v == nil {
		return
	}
	return *v, true
}

// OldContentText returns the old "content_text" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldContentText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentText: %w", err)
	}
	return oldValue.ContentText, nil
}

// ClearContentText clears the value of the "content_text" field.
func (m *InformationObjectMutation) ClearContentText() {
	m.content_text = nil
	m.clearedFields[informationobject.FieldContentText] = struct{}{}
}

// ContentTextCleared returns if the "content_text" field was cleared in this mutation.
func (m *InformationObjectMutation) ContentTextCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldContentText]
	return ok
}

// ResetContentText resets all changes to the "content_text" field.
func (m *InformationObjectMutation) ResetContentText() {
	m.content_text = nil
	delete(m.clearedFields, informationobject.FieldContentText)
}

// SetMimeType sets the "mime_type" field.
func (m *InformationObjectMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *InformationObjectMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *InformationObjectMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[informationobject.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *InformationObjectMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *InformationObjectMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, informationobject.FieldMimeType)
}

// SetFileSize sets the "file_size" field.
func (m *InformationObjectMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *InformationObjectMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *InformationObjectMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *InformationObjectMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSize clears the value of the "file_size" field.
func (m *InformationObjectMutation) ClearFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	m.clearedFields[informationobject.FieldFileSize] = struct{}{}
}

// FileSizeCleared returns if the "file_size" field was cleared in this mutation.
func (m *InformationObjectMutation) FileSizeCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldFileSize]
	return ok
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *InformationObjectMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	delete(m.clearedFields, informationobject.FieldFileSize)
}

// SetClassification sets the "classification" field.
func (m *InformationObjectMutation) SetClassification(i informationobject.Classification) {
	m.classification = &i
}

// Classification returns the value of the "classification" field in the mutation.
func (m *InformationObjectMutation) Classification() (r informationobject.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldClassification(ctx context.Context) (v informationobject.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *InformationObjectMutation) ResetClassification() {
	m.classification = nil
}

// SetRetentionPeriod sets the "retention_period" field.
func (m *InformationObjectMutation) SetRetentionPeriod(i int) {
	m.retention_period = &i
	m.addretention_period = nil
}

// RetentionPeriod returns the value of the "retention_period" field in the mutation.
func (m *InformationObjectMutation) RetentionPeriod() (r int, exists bool) {
	v := m.retention_period
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionPeriod returns the old "retention_period" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldRetentionPeriod(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionPeriod: %w", err)
	}
	return oldValue.RetentionPeriod, nil
}

// AddRetentionPeriod adds i to the "retention_period" field.
func (m *InformationObjectMutation) AddRetentionPeriod(i int) {
	if m.addretention_period != nil {
		*m.addretention_period += i
	} else {
		m.addretention_period = &i
	}
}

// AddedRetentionPeriod returns the value that was added to the "retention_period" field in this mutation.
func (m *InformationObjectMutation) AddedRetentionPeriod() (r int, exists bool) {
	v := m.addretention_period
	if v == nil {
		return
	}
	return *v, true
}

// ClearRetentionPeriod clears the value of the "retention_period" field.
func (m *InformationObjectMutation) ClearRetentionPeriod() {
	m.retention_period = nil
	m.addretention_period = nil
	m.clearedFields[informationobject.FieldRetentionPeriod] = struct{}{}
}

// RetentionPeriodCleared returns if the "retention_period" field was cleared in this mutation.
func (m *InformationObjectMutation) RetentionPeriodCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldRetentionPeriod]
	return ok
}

// ResetRetentionPeriod resets all changes to the "retention_period" field.
func (m *InformationObjectMutation) ResetRetentionPeriod() {
	m.retention_period = nil
	m.addretention_period = nil
	delete(m.clearedFields, informationobject.FieldRetentionPeriod)
}

// SetRetentionTrigger sets the "retention_trigger" field.
func (m *InformationObjectMutation) SetRetentionTrigger(s string) {
	m.retention_trigger = &s
}

// RetentionTrigger returns the value of the "retention_trigger" field in the mutation.
func (m *InformationObjectMutation) RetentionTrigger() (r string, exists bool) {
	v := m.retention_trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionTrigger returns the old "retention_trigger" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldRetentionTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionTrigger: %w", err)
	}
	return oldValue.RetentionTrigger, nil
}

// ClearRetentionTrigger clears the value of the "retention_trigger" field.
func (m *InformationObjectMutation) ClearRetentionTrigger() {
	m.retention_trigger = nil
	m.clearedFields[informationobject.FieldRetentionTrigger] = struct{}{}
}

// RetentionTriggerCleared returns if the "retention_trigger" field was cleared in this mutation.
func (m *InformationObjectMutation) RetentionTriggerCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldRetentionTrigger]
	return ok
}

// ResetRetentionTrigger resets all changes to the "retention_trigger" field.
func (m *InformationObjectMutation) ResetRetentionTrigger() {
	m.retention_trigger = nil
	delete(m.clearedFields, informationobject.FieldRetentionTrigger)
}

// SetDestructionDate sets the "destruction_date" field.
func (m *InformationObjectMutation) SetDestructionDate(t time.Time) {
	m.destruction_date = &t
}

// DestructionDate returns the value of the "destruction_date" field in the mutation.
func (m *InformationObjectMutation) DestructionDate() (r time.Time, exists bool) {
	v := m.destruction_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDestructionDate returns the old "destruction_date" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldDestructionDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestructionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestructionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestructionDate: %w", err)
	}
	return oldValue.DestructionDate, nil
}

// ClearDestructionDate clears the value of the "destruction_date" field.
func (m *InformationObjectMutation) ClearDestructionDate() {
	m.destruction_date = nil
	m.clearedFields[informationobject.FieldDestructionDate] = struct{}{}
}

// DestructionDateCleared returns if the "destruction_date" field was cleared in this mutation.
func (m *InformationObjectMutation) DestructionDateCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldDestructionDate]
	return ok
}

// ResetDestructionDate resets all changes to the "destruction_date" field.
func (m *InformationObjectMutation) ResetDestructionDate() {
	m.destruction_date = nil
	delete(m.clearedFields, informationobject.FieldDestructionDate)
}

// SetIsWooRelevant sets the "is_woo_relevant" field.
func (m *InformationObjectMutation) SetIsWooRelevant(b bool) {
	m.is_woo_relevant = &b
}

// IsWooRelevant returns the value of the "is_woo_relevant" field in the mutation.
func (m *InformationObjectMutation) IsWooRelevant() (r bool, exists bool) {
	v := m.is_woo_relevant
	if v == nil {
		return
	}
	return *v, true
}

// OldIsWooRelevant returns the old "is_woo_relevant" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldIsWooRelevant(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsWooRelevant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsWooRelevant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsWooRelevant: %w", err)
	}
	return oldValue.IsWooRelevant, nil
}

// ResetIsWooRelevant resets all changes to the "is_woo_relevant" field.
func (m *InformationObjectMutation) ResetIsWooRelevant() {
	m.is_woo_relevant = nil
}

// SetWooPublicationDate sets the "woo_publication_date" field.
func (m *InformationObjectMutation) SetWooPublicationDate(t time.Time) {
	m.woo_publication_date = &t
}

// WooPublicationDate returns the value of the "woo_publication_date" field in the mutation.
func (m *InformationObjectMutation) WooPublicationDate() (r time.Time, exists bool) {
	v := m.woo_publication_date
	if v == nil {
		return
	}
	return *v, true
}

// OldWooPublicationDate returns the old "woo_publication_date" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldWooPublicationDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWooPublicationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWooPublicationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWooPublicationDate: %w", err)
	}
	return oldValue.WooPublicationDate, nil
}

// ClearWooPublicationDate clears the value of the "woo_publication_date" field.
func (m *InformationObjectMutation) ClearWooPublicationDate() {
	m.woo_publication_date = nil
	m.clearedFields[informationobject.FieldWooPublicationDate] = struct{}{}
}

// WooPublicationDateCleared returns if the "woo_publication_date" field was cleared in this mutation.
func (m *InformationObjectMutation) WooPublicationDateCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldWooPublicationDate]
	return ok
}

// ResetWooPublicationDate resets all changes to the "woo_publication_date" field.
func (m *InformationObjectMutation) ResetWooPublicationDate() {
	m.woo_publication_date = nil
	delete(m.clearedFields, informationobject.FieldWooPublicationDate)
}

// SetPrivacyLevel sets the "privacy_level" field.
func (m *InformationObjectMutation) SetPrivacyLevel(il informationobject.PrivacyLevel) {
	m.privacy_level = &il
}

// PrivacyLevel returns the value of the "privacy_level" field in the mutation.
func (m *InformationObjectMutation) PrivacyLevel() (r informationobject.PrivacyLevel, exists bool) {
	v := m.privacy_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPrivacyLevel returns the old "privacy_level" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldPrivacyLevel(ctx context.Context) (v informationobject.PrivacyLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrivacyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrivacyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrivacyLevel: %w", err)
	}
	return oldValue.PrivacyLevel, nil
}

// ResetPrivacyLevel resets all changes to the "privacy_level" field.
func (m *InformationObjectMutation) ResetPrivacyLevel() {
	m.privacy_level = nil
}

// SetTags sets the "tags" field.
func (m *InformationObjectMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *InformationObjectMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *InformationObjectMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *InformationObjectMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *InformationObjectMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[informationobject.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *InformationObjectMutation) TagsCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *InformationObjectMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, informationobject.FieldTags)
}

// SetMetadata sets the "metadata" field.
func (m *InformationObjectMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *InformationObjectMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *InformationObjectMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[informationobject.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *InformationObjectMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *InformationObjectMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, informationobject.FieldMetadata)
}

// SetVersion sets the "version" field.
func (m *InformationObjectMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *InformationObjectMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *InformationObjectMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *InformationObjectMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *InformationObjectMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetPreviousVersionID sets the "previous_version_id" field.
func (m *InformationObjectMutation) SetPreviousVersionID(s string) {
	m.previous_version_id = &s
}

// PreviousVersionID returns the value of the "previous_version_id" field in the mutation.
func (m *InformationObjectMutation) PreviousVersionID() (r string, exists bool) {
	v := m.previous_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousVersionID returns the old "previous_version_id" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldPreviousVersionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousVersionID: %w", err)
	}
	return oldValue.PreviousVersionID, nil
}

// ClearPreviousVersionID clears the value of the "previous_version_id" field.
func (m *InformationObjectMutation) ClearPreviousVersionID() {
	m.previous_version_id = nil
	m.clearedFields[informationobject.FieldPreviousVersionID] = struct{}{}
}

// PreviousVersionIDCleared returns if the "previous_version_id" field was cleared in this mutation.
func (m *InformationObjectMutation) PreviousVersionIDCleared() bool {
	_, ok := m.clearedFields[informationobject.FieldPreviousVersionID]
	return ok
}

// ResetPreviousVersionID resets all changes to the "previous_version_id" field.
func (m *InformationObjectMutation) ResetPreviousVersionID() {
	m.previous_version_id = nil
	delete(m.clearedFields, informationobject.FieldPreviousVersionID)
}

// SetCreatedBy sets the "created_by" field.
func (m *InformationObjectMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *InformationObjectMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the InformationObject entity.
// If the InformationObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InformationObjectMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *InformationObjectMutation) ResetCreatedBy() {
	m.created_by = nil
}

// Where appends a list predicates to the InformationObjectMutation builder.
func (m *InformationObjectMutation) Where(ps ...predicate.InformationObject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InformationObjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InformationObjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InformationObject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InformationObjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InformationObjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InformationObject).
func (m *InformationObjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InformationObjectMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.created_at != nil {
		fields = append(fields, informationobject.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, informationobject.FieldUpdatedAt)
	}
	if m.domain_id != nil {
		fields = append(fields, informationobject.FieldDomainID)
	}
	if m.object_type != nil {
		fields = append(fields, informationobject.FieldObjectType)
	}
	if m.title != nil {
		fields = append(fields, informationobject.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, informationobject.FieldDescription)
	}
	if m.content_location != nil {
		fields = append(fields, informationobject.FieldContentLocation)
	}
	if m.content_text != nil {
		fields = append(fields, informationobject.FieldContentText)
	}
	if m.mime_type != nil {
		fields = append(fields, informationobject.FieldMimeType)
	}
	if m.file_size != nil {
		fields = append(fields, informationobject.FieldFileSize)
	}
	if m.classification != nil {
		fields = append(fields, informationobject.FieldClassification)
	}
	if m.retention_period != nil {
		fields = append(fields, informationobject.FieldRetentionPeriod)
	}
	if m.retention_trigger != nil {
		fields = append(fields, informationobject.FieldRetentionTrigger)
	}
	if m.destruction_date != nil {
		fields = append(fields, informationobject.FieldDestructionDate)
	}
	if m.is_woo_relevant != nil {
		fields = append(fields, informationobject.FieldIsWooRelevant)
	}
	if m.woo_publication_date != nil {
		fields = append(fields, informationobject.FieldWooPublicationDate)
	}
	if m.privacy_level != nil {
		fields = append(fields, informationobject.FieldPrivacyLevel)
	}
	if m.tags != nil {
		fields = append(fields, informationobject.FieldTags)
	}
	if m.metadata != nil {
		fields = append(fields, informationobject.FieldMetadata)
	}
	if m.version != nil {
		fields = append(fields, informationobject.FieldVersion)
	}
	if m.previous_version_id != nil {
		fields = append(fields, informationobject.FieldPreviousVersionID)
	}
	if m.created_by != nil {
		fields = append(fields, informationobject.FieldCreatedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InformationObjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case informationobject.FieldCreatedAt:
		return m.CreatedAt()
	case informationobject.FieldUpdatedAt:
		return m.UpdatedAt()
	case informationobject.FieldDomainID:
		return m.DomainID()
	case informationobject.FieldObjectType:
		return m.ObjectType()
	case informationobject.FieldTitle:
		return m.Title()
	case informationobject.FieldDescription:
		return m.Description()
	case informationobject.FieldContentLocation:
		return m.ContentLocation()
	case informationobject.FieldContentText:
		return m.ContentText()
	case informationobject.FieldMimeType:
		return m.MimeType()
	case informationobject.FieldFileSize:
		return m.FileSize()
	case informationobject.FieldClassification:
		return m.Classification()
	case informationobject.FieldRetentionPeriod:
		return m.RetentionPeriod()
	case informationobject.FieldRetentionTrigger:
		return m.RetentionTrigger()
	case informationobject.FieldDestructionDate:
		return m.DestructionDate()
	case informationobject.FieldIsWooRelevant:
		return m.IsWooRelevant()
	case informationobject.FieldWooPublicationDate:
		return m.WooPublicationDate()
	case informationobject.FieldPrivacyLevel:
		return m.PrivacyLevel()
	case informationobject.FieldTags:
		return m.Tags()
	case informationobject.FieldMetadata:
		return m.Metadata()
	case informationobject.FieldVersion:
		return m.Version()
	case informationobject.FieldPreviousVersionID:
		return m.PreviousVersionID()
	case informationobject.FieldCreatedBy:
		return m.CreatedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InformationObjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case informationobject.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case informationobject.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case informationobject.FieldDomainID:
		return m.OldDomainID(ctx)
	case informationobject.FieldObjectType:
		return m.OldObjectType(ctx)
	case informationobject.FieldTitle:
		return m.OldTitle(ctx)
	case informationobject.FieldDescription:
		return m.OldDescription(ctx)
	case informationobject.FieldContentLocation:
		return m.OldContentLocation(ctx)
	case informationobject.FieldContentText:
		return m.OldContentText(ctx)
	case informationobject.FieldMimeType:
		return m.OldMimeType(ctx)
	case informationobject.FieldFileSize:
		return m.OldFileSize(ctx)
	case informationobject.FieldClassification:
		return m.OldClassification(ctx)
	case informationobject.FieldRetentionPeriod:
		return m.OldRetentionPeriod(ctx)
	case informationobject.FieldRetentionTrigger:
		return m.OldRetentionTrigger(ctx)
	case informationobject.FieldDestructionDate:
		return m.OldDestructionDate(ctx)
	case informationobject.FieldIsWooRelevant:
		return m.OldIsWooRelevant(ctx)
	case informationobject.FieldWooPublicationDate:
		return m.OldWooPublicationDate(ctx)
	case informationobject.FieldPrivacyLevel:
		return m.OldPrivacyLevel(ctx)
	case informationobject.FieldTags:
		return m.OldTags(ctx)
	case informationobject.FieldMetadata:
		return m.OldMetadata(ctx)
	case informationobject.FieldVersion:
		return m.OldVersion(ctx)
	case informationobject.FieldPreviousVersionID:
		return m.OldPreviousVersionID(ctx)
	case informationobject.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	}
	return nil, fmt.Errorf("unknown InformationObject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InformationObjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case informationobject.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case informationobject.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case informationobject.FieldDomainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case informationobject.FieldObjectType:
		v, ok := value.(informationobject.ObjectType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectType(v)
		return nil
	case informationobject.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case informationobject.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case informationobject.FieldContentLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentLocation(v)
		return nil
	case informationobject.FieldContentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentText(v)
		return nil
	case informationobject.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case informationobject.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case informationobject.FieldClassification:
		v, ok := value.(informationobject.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case informationobject.FieldRetentionPeriod:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionPeriod(v)
		return nil
	case informationobject.FieldRetentionTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionTrigger(v)
		return nil
	case informationobject.FieldDestructionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestructionDate(v)
		return nil
	case informationobject.FieldIsWooRelevant:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsWooRelevant(v)
		return nil
	case informationobject.FieldWooPublicationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWooPublicationDate(v)
		return nil
	case informationobject.FieldPrivacyLevel:
		v, ok := value.(informationobject.PrivacyLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrivacyLevel(v)
		return nil
	case informationobject.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case informationobject.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case informationobject.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case informationobject.FieldPreviousVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousVersionID(v)
		return nil
	case informationobject.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	}
	return fmt.Errorf("unknown InformationObject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InformationObjectMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, informationobject.FieldFileSize)
	}
	if m.addretention_period != nil {
		fields = append(fields, informationobject.FieldRetentionPeriod)
	}
	if m.addversion != nil {
		fields = append(fields, informationobject.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InformationObjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case informationobject.FieldFileSize:
		return m.AddedFileSize()
	case informationobject.FieldRetentionPeriod:
		return m.AddedRetentionPeriod()
	case informationobject.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InformationObjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case informationobject.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case informationobject.FieldRetentionPeriod:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetentionPeriod(v)
		return nil
	case informationobject.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown InformationObject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InformationObjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(informationobject.FieldDescription) {
		fields = append(fields, informationobject.FieldDescription)
	}
	if m.FieldCleared(informationobject.FieldContentLocation) {
		fields = append(fields, informationobject.FieldContentLocation)
	}
	if m.FieldCleared(informationobject.FieldContentText) {
		fields = append(fields, informationobject.FieldContentText)
	}
	if m.FieldCleared(informationobject.FieldMimeType) {
		fields = append(fields, informationobject.FieldMimeType)
	}
	if m.FieldCleared(informationobject.FieldFileSize) {
		fields = append(fields, informationobject.FieldFileSize)
	}
	if m.FieldCleared(informationobject.FieldRetentionPeriod) {
		fields = append(fields, informationobject.FieldRetentionPeriod)
	}
	if m.FieldCleared(informationobject.FieldRetentionTrigger) {
		fields = append(fields, informationobject.FieldRetentionTrigger)
	}
	if m.FieldCleared(informationobject.FieldDestructionDate) {
		fields = append(fields, informationobject.FieldDestructionDate)
	}
	if m.FieldCleared(informationobject.FieldWooPublicationDate) {
		fields = append(fields, informationobject.FieldWooPublicationDate)
	}
	if m.FieldCleared(informationobject.FieldTags) {
		fields = append(fields, informationobject.FieldTags)
	}
	if m.FieldCleared(informationobject.FieldMetadata) {
		fields = append(fields, informationobject.FieldMetadata)
	}
	if m.FieldCleared(informationobject.FieldPreviousVersionID) {
		fields = append(fields, informationobject.FieldPreviousVersionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InformationObjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InformationObjectMutation) ClearField(name string) error {
	switch name {
	case informationobject.FieldDescription:
		m.ClearDescription()
		return nil
	case informationobject.FieldContentLocation:
		m.ClearContentLocation()
		return nil
	case informationobject.FieldContentText:
		m.ClearContentText()
		return nil
	case informationobject.FieldMimeType:
		m.ClearMimeType()
		return nil
	case informationobject.FieldFileSize:
		m.ClearFileSize()
		return nil
	case informationobject.FieldRetentionPeriod:
		m.ClearRetentionPeriod()
		return nil
	case informationobject.FieldRetentionTrigger:
		m.ClearRetentionTrigger()
		return nil
	case informationobject.FieldDestructionDate:
		m.ClearDestructionDate()
		return nil
	case informationobject.FieldWooPublicationDate:
		m.ClearWooPublicationDate()
		return nil
	case informationobject.FieldTags:
		m.ClearTags()
		return nil
	case informationobject.FieldMetadata:
		m.ClearMetadata()
		return nil
	case informationobject.FieldPreviousVersionID:
		m.ClearPreviousVersionID()
		return nil
	}
	return fmt.Errorf("unknown InformationObject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InformationObjectMutation) ResetField(name string) error {
	switch name {
	case informationobject.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case informationobject.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case informationobject.FieldDomainID:
		m.ResetDomainID()
		return nil
	case informationobject.FieldObjectType:
		m.ResetObjectType()
		return nil
	case informationobject.FieldTitle:
		m.ResetTitle()
		return nil
	case informationobject.FieldDescription:
		m.ResetDescription()
		return nil
	case informationobject.FieldContentLocation:
		m.ResetContentLocation()
		return nil
	case informationobject.FieldContentText:
		m.ResetContentText()
		return nil
	case informationobject.FieldMimeType:
		m.ResetMimeType()
		return nil
	case informationobject.FieldFileSize:
		m.ResetFileSize()
		return nil
	case informationobject.FieldClassification:
		m.ResetClassification()
		return nil
	case informationobject.FieldRetentionPeriod:
		m.ResetRetentionPeriod()
		return nil
	case informationobject.FieldRetentionTrigger:
		m.ResetRetentionTrigger()
		return nil
	case informationobject.FieldDestructionDate:
		m.ResetDestructionDate()
		return nil
	case informationobject.FieldIsWooRelevant:
		m.ResetIsWooRelevant()
		return nil
	case informationobject.FieldWooPublicationDate:
		m.ResetWooPublicationDate()
		return nil
	case informationobject.FieldPrivacyLevel:
		m.ResetPrivacyLevel()
		return nil
	case informationobject.FieldTags:
		m.ResetTags()
		return nil
	case informationobject.FieldMetadata:
		m.ResetMetadata()
		return nil
	case informationobject.FieldVersion:
		m.ResetVersion()
		return nil
	case informationobject.FieldPreviousVersionID:
		m.ResetPreviousVersionID()
		return nil
	case informationobject.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown InformationObject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InformationObjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InformationObjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InformationObjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InformationObjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InformationObjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InformationObjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InformationObjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InformationObject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InformationObjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InformationObject edge %s", name)
}

// MetadataSuggestionMutation represents an operation that mutates the MetadataSuggestion nodes in the graph.
type MetadataSuggestionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	object_id       *string
	field           *string
	suggested_value *map[string]interface{}
	confidence      *float64
	addconfidence   *float64
	reasoning       *string
	source          *metadatasuggestion.Source
	pattern         *string
	status          *metadatasuggestion.Status
	modified_value  *map[string]interface{}
	reviewed_by     *string
	reviewed_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*MetadataSuggestion, error)
	predicates      []predicate.MetadataSuggestion
}

var _ ent.Mutation = (*MetadataSuggestionMutation)(nil)

// metadatasuggestionOption allows management of the mutation configuration using functional options.
type metadatasuggestionOption func(*MetadataSuggestionMutation)

// newMetadataSuggestionMutation creates new mutation for the MetadataSuggestion entity.
func newMetadataSuggestionMutation(c config, op Op, opts ...metadatasuggestionOption) *MetadataSuggestionMutation {
	m := &MetadataSuggestionMutation{
		config:        c,
		op:            op,
		typ:           TypeMetadataSuggestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetadataSuggestionID sets the ID field of the mutation.
func withMetadataSuggestionID(id string) metadatasuggestionOption {
	return func(m *MetadataSuggestionMutation) {
		var (
			err   error
			once  sync.Once
			value *MetadataSuggestion
		)
		m.oldValue = func(ctx context.Context) (*MetadataSuggestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MetadataSuggestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetadataSuggestion sets the old MetadataSuggestion of the mutation.
func withMetadataSuggestion(node *MetadataSuggestion) metadatasuggestionOption {
	return func(m *MetadataSuggestionMutation) {
		m.oldValue = func(context.Context) (*MetadataSuggestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetadataSuggestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetadataSuggestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MetadataSuggestion entities.
func (m *MetadataSuggestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetadataSuggestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetadataSuggestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MetadataSuggestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MetadataSuggestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MetadataSuggestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MetadataSuggestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MetadataSuggestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MetadataSuggestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MetadataSuggestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetObjectID sets the "object_id" field.
func (m *MetadataSuggestionMutation) SetObjectID(s string) {
	m.object_id = &s
}

// ObjectID returns the value of the "object_id" field in the mutation.
func (m *MetadataSuggestionMutation) ObjectID() (r string, exists bool) {
	v := m.object_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectID returns the old "object_id" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldObjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectID: %w", err)
	}
	return oldValue.ObjectID, nil
}

// ResetObjectID resets all changes to the "object_id" field.
func (m *MetadataSuggestionMutation) ResetObjectID() {
	m.object_id = nil
}

// SetFieldField sets the "field" field.
func (m *MetadataSuggestionMutation) SetFieldField(s string) {
	m.field = &s
}

// GetField returns the value of the "field" field in the mutation.
func (m *MetadataSuggestionMutation) GetField() (r string, exists bool) {
	v := m.field
	if v == nil {
		return
	}
	return *v, true
}

// GetOldField returns the old "field" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) GetOldField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("GetOldField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("GetOldField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for GetOldField: %w", err)
	}
	return oldValue.Field, nil
}

// ResetFieldField resets all changes to the "field" field.
func (m *MetadataSuggestionMutation) ResetFieldField() {
	m.field = nil
}

// SetSuggestedValue sets the "suggested_value" field.
func (m *MetadataSuggestionMutation) SetSuggestedValue(value map[string]interface{}) {
	m.suggested_value = &value
}

// SuggestedValue returns the value of the "suggested_value" field in the mutation.
func (m *MetadataSuggestionMutation) SuggestedValue() (r map[string]interface{}, exists bool) {
	v := m.suggested_value
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedValue returns the old "suggested_value" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldSuggestedValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedValue: %w", err)
	}
	return oldValue.SuggestedValue, nil
}

// ResetSuggestedValue resets all changes to the "suggested_value" field.
func (m *MetadataSuggestionMutation) ResetSuggestedValue() {
	m.suggested_value = nil
}

// SetConfidence sets the "confidence" field.
func (m *MetadataSuggestionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *MetadataSuggestionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *MetadataSuggestionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *MetadataSuggestionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *MetadataSuggestionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetReasoning sets the "reasoning" field.
func (m *MetadataSuggestionMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *MetadataSuggestionMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *MetadataSuggestionMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[metadatasuggestion.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *MetadataSuggestionMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[metadatasuggestion.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *MetadataSuggestionMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, metadatasuggestion.FieldReasoning)
}

// SetSource sets the "source" field.
func (m *MetadataSuggestionMutation) SetSource(value metadatasuggestion.Source) {
	m.source = &value
}

// Source returns the value of the "source" field in the mutation.
func (m *MetadataSuggestionMutation) Source() (r metadatasuggestion.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldSource(ctx context.Context) (v metadatasuggestion.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *MetadataSuggestionMutation) ResetSource() {
	m.source = nil
}

// SetPattern sets the "pattern" field.
func (m *MetadataSuggestionMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *MetadataSuggestionMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ClearPattern clears the value of the "pattern" field.
func (m *MetadataSuggestionMutation) ClearPattern() {
	m.pattern = nil
	m.clearedFields[metadatasuggestion.FieldPattern] = struct{}{}
}

// PatternCleared returns if the "pattern" field was cleared in this mutation.
func (m *MetadataSuggestionMutation) PatternCleared() bool {
	_, ok := m.clearedFields[metadatasuggestion.FieldPattern]
	return ok
}

// ResetPattern resets all changes to the "pattern" field.
func (m *MetadataSuggestionMutation) ResetPattern() {
	m.pattern = nil
	delete(m.clearedFields, metadatasuggestion.FieldPattern)
}

// SetStatus sets the "status" field.
func (m *MetadataSuggestionMutation) SetStatus(value metadatasuggestion.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MetadataSuggestionMutation) Status() (r metadatasuggestion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldStatus(ctx context.Context) (v metadatasuggestion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MetadataSuggestionMutation) ResetStatus() {
	m.status = nil
}

// SetModifiedValue sets the "modified_value" field.
func (m *MetadataSuggestionMutation) SetModifiedValue(value map[string]interface{}) {
	m.modified_value = &value
}

// ModifiedValue returns the value of the "modified_value" field in the mutation.
func (m *MetadataSuggestionMutation) ModifiedValue() (r map[string]interface{}, exists bool) {
	v := m.modified_value
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedValue returns the old "modified_value" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldModifiedValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedValue: %w", err)
	}
	return oldValue.ModifiedValue, nil
}

// ClearModifiedValue clears the value of the "modified_value" field.
func (m *MetadataSuggestionMutation) ClearModifiedValue() {
	m.modified_value = nil
	m.clearedFields[metadatasuggestion.FieldModifiedValue] = struct{}{}
}

// ModifiedValueCleared returns if the "modified_value" field was cleared in this mutation.
func (m *MetadataSuggestionMutation) ModifiedValueCleared() bool {
	_, ok := m.clearedFields[metadatasuggestion.FieldModifiedValue]
	return ok
}

// ResetModifiedValue resets all changes to the "modified_value" field.
func (m *MetadataSuggestionMutation) ResetModifiedValue() {
	m.modified_value = nil
	delete(m.clearedFields, metadatasuggestion.FieldModifiedValue)
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *MetadataSuggestionMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *MetadataSuggestionMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldReviewedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *MetadataSuggestionMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[metadatasuggestion.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *MetadataSuggestionMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[metadatasuggestion.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *MetadataSuggestionMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, metadatasuggestion.FieldReviewedBy)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *MetadataSuggestionMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *MetadataSuggestionMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the MetadataSuggestion entity.
// If the MetadataSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetadataSuggestionMutation) OldReviewedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *MetadataSuggestionMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[metadatasuggestion.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *MetadataSuggestionMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[metadatasuggestion.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *MetadataSuggestionMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, metadatasuggestion.FieldReviewedAt)
}

// Where appends a list predicates to the MetadataSuggestionMutation builder.
func (m *MetadataSuggestionMutation) Where(ps ...predicate.MetadataSuggestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetadataSuggestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetadataSuggestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MetadataSuggestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetadataSuggestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetadataSuggestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MetadataSuggestion).
func (m *MetadataSuggestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetadataSuggestionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, metadatasuggestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, metadatasuggestion.FieldUpdatedAt)
	}
	if m.object_id != nil {
		fields = append(fields, metadatasuggestion.FieldObjectID)
	}
	if m.field != nil {
		fields = append(fields, metadatasuggestion.FieldField)
	}
	if m.suggested_value != nil {
		fields = append(fields, metadatasuggestion.FieldSuggestedValue)
	}
	if m.confidence != nil {
		fields = append(fields, metadatasuggestion.FieldConfidence)
	}
	if m.reasoning != nil {
		fields = append(fields, metadatasuggestion.FieldReasoning)
	}
	if m.source != nil {
		fields = append(fields, metadatasuggestion.FieldSource)
	}
	if m.pattern != nil {
		fields = append(fields, metadatasuggestion.FieldPattern)
	}
	if m.status != nil {
		fields = append(fields, metadatasuggestion.FieldStatus)
	}
	if m.modified_value != nil {
		fields = append(fields, metadatasuggestion.FieldModifiedValue)
	}
	if m.reviewed_by != nil {
		fields = append(fields, metadatasuggestion.FieldReviewedBy)
	}
	if m.reviewed_at != nil {
		fields = append(fields, metadatasuggestion.FieldReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetadataSuggestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metadatasuggestion.FieldCreatedAt:
		return m.CreatedAt()
	case metadatasuggestion.FieldUpdatedAt:
		return m.UpdatedAt()
	case metadatasuggestion.FieldObjectID:
		return m.ObjectID()
	case metadatasuggestion.FieldField:
		return m.GetField()
	case metadatasuggestion.FieldSuggestedValue:
		return m.SuggestedValue()
	case metadatasuggestion.FieldConfidence:
		return m.Confidence()
	case metadatasuggestion.FieldReasoning:
		return m.Reasoning()
	case metadatasuggestion.FieldSource:
		return m.Source()
	case metadatasuggestion.FieldPattern:
		return m.Pattern()
	case metadatasuggestion.FieldStatus:
		return m.Status()
	case metadatasuggestion.FieldModifiedValue:
		return m.ModifiedValue()
	case metadatasuggestion.FieldReviewedBy:
		return m.ReviewedBy()
	case metadatasuggestion.FieldReviewedAt:
		return m.ReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetadataSuggestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metadatasuggestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case metadatasuggestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case metadatasuggestion.FieldObjectID:
		return m.OldObjectID(ctx)
	case metadatasuggestion.FieldField:
		return m.GetOldField(ctx)
	case metadatasuggestion.FieldSuggestedValue:
		return m.OldSuggestedValue(ctx)
	case metadatasuggestion.FieldConfidence:
		return m.OldConfidence(ctx)
	case metadatasuggestion.FieldReasoning:
		return m.OldReasoning(ctx)
	case metadatasuggestion.FieldSource:
		return m.OldSource(ctx)
	case metadatasuggestion.FieldPattern:
		return m.OldPattern(ctx)
	case metadatasuggestion.FieldStatus:
		return m.OldStatus(ctx)
	case metadatasuggestion.FieldModifiedValue:
		return m.OldModifiedValue(ctx)
	case metadatasuggestion.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case metadatasuggestion.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MetadataSuggestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetadataSuggestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metadatasuggestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case metadatasuggestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case metadatasuggestion.FieldObjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectID(v)
		return nil
	case metadatasuggestion.FieldField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldField(v)
		return nil
	case metadatasuggestion.FieldSuggestedValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedValue(v)
		return nil
	case metadatasuggestion.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case metadatasuggestion.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case metadatasuggestion.FieldSource:
		v, ok := value.(metadatasuggestion.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case metadatasuggestion.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case metadatasuggestion.FieldStatus:
		v, ok := value.(metadatasuggestion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case metadatasuggestion.FieldModifiedValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedValue(v)
		return nil
	case metadatasuggestion.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case metadatasuggestion.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MetadataSuggestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetadataSuggestionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, metadatasuggestion.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetadataSuggestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case metadatasuggestion.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetadataSuggestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case metadatasuggestion.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown MetadataSuggestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetadataSuggestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(metadatasuggestion.FieldReasoning) {
		fields = append(fields, metadatasuggestion.FieldReasoning)
	}
	if m.FieldCleared(metadatasuggestion.FieldPattern) {
		fields = append(fields, metadatasuggestion.FieldPattern)
	}
	if m.FieldCleared(metadatasuggestion.FieldModifiedValue) {
		fields = append(fields, metadatasuggestion.FieldModifiedValue)
	}
	if m.FieldCleared(metadatasuggestion.FieldReviewedBy) {
		fields = append(fields, metadatasuggestion.FieldReviewedBy)
	}
	if m.FieldCleared(metadatasuggestion.FieldReviewedAt) {
		fields = append(fields, metadatasuggestion.FieldReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetadataSuggestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetadataSuggestionMutation) ClearField(name string) error {
	switch name {
	case metadatasuggestion.FieldReasoning:
		m.ClearReasoning()
		return nil
	case metadatasuggestion.FieldPattern:
		m.ClearPattern()
		return nil
	case metadatasuggestion.FieldModifiedValue:
		m.ClearModifiedValue()
		return nil
	case metadatasuggestion.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case metadatasuggestion.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown MetadataSuggestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetadataSuggestionMutation) ResetField(name string) error {
	switch name {
	case metadatasuggestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case metadatasuggestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case metadatasuggestion.FieldObjectID:
		m.ResetObjectID()
		return nil
	case metadatasuggestion.FieldField:
		m.ResetFieldField()
		return nil
	case metadatasuggestion.FieldSuggestedValue:
		m.ResetSuggestedValue()
		return nil
	case metadatasuggestion.FieldConfidence:
		m.ResetConfidence()
		return nil
	case metadatasuggestion.FieldReasoning:
		m.ResetReasoning()
		return nil
	case metadatasuggestion.FieldSource:
		m.ResetSource()
		return nil
	case metadatasuggestion.FieldPattern:
		m.ResetPattern()
		return nil
	case metadatasuggestion.FieldStatus:
		m.ResetStatus()
		return nil
	case metadatasuggestion.FieldModifiedValue:
		m.ResetModifiedValue()
		return nil
	case metadatasuggestion.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case metadatasuggestion.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown MetadataSuggestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetadataSuggestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetadataSuggestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetadataSuggestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetadataSuggestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetadataSuggestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetadataSuggestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetadataSuggestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MetadataSuggestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetadataSuggestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MetadataSuggestion edge %s", name)
}

// RuleExecutionMutation represents an operation that mutates the RuleExecution nodes in the graph.
type RuleExecutionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	rule_id       *string
	object_id     *string
	success       *bool
	matched       *bool
	result        *map[string]interface{}
	error_detail  *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RuleExecution, error)
	predicates    []predicate.RuleExecution
}

var _ ent.Mutation = (*RuleExecutionMutation)(nil)

// ruleexecutionOption allows management of the mutation configuration using functional options.
type ruleexecutionOption func(*RuleExecutionMutation)

// newRuleExecutionMutation creates new mutation for the RuleExecution entity.
func newRuleExecutionMutation(c config, op Op, opts ...ruleexecutionOption) *RuleExecutionMutation {
	m := &RuleExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeRuleExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuleExecutionID sets the ID field of the mutation.
func withRuleExecutionID(id string) ruleexecutionOption {
	return func(m *RuleExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *RuleExecution
		)
		m.oldValue = func(ctx context.Context) (*RuleExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RuleExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRuleExecution sets the old RuleExecution of the mutation.
func withRuleExecution(node *RuleExecution) ruleexecutionOption {
	return func(m *RuleExecutionMutation) {
		m.oldValue = func(context.Context) (*RuleExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuleExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuleExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RuleExecution entities.
func (m *RuleExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuleExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuleExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RuleExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RuleExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RuleExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RuleExecution entity.
// If the RuleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RuleExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRuleID sets the "rule_id" field.
func (m *RuleExecutionMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *RuleExecutionMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the RuleExecution entity.
// If the RuleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleExecutionMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *RuleExecutionMutation) ResetRuleID() {
	m.rule_id = nil
}

// SetObjectID sets the "object_id" field.
func (m *RuleExecutionMutation) SetObjectID(s string) {
	m.object_id = &s
}

// ObjectID returns the value of the "object_id" field in the mutation.
func (m *RuleExecutionMutation) ObjectID() (r string, exists bool) {
	v := m.object_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectID returns the old "object_id" field's value of the RuleExecution entity.
// If the RuleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleExecutionMutation) OldObjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectID: %w", err)
	}
	return oldValue.ObjectID, nil
}

// ResetObjectID resets all changes to the "object_id" field.
func (m *RuleExecutionMutation) ResetObjectID() {
	m.object_id = nil
}

// SetSuccess sets the "success" field.
func (m *RuleExecutionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *RuleExecutionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the RuleExecution entity.
// If the RuleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleExecutionMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *RuleExecutionMutation) ResetSuccess() {
	m.success = nil
}

// SetMatched sets the "matched" field.
func (m *RuleExecutionMutation) SetMatched(b bool) {
	m.matched = &b
}

// Matched returns the value of the "matched" field in the mutation.
func (m *RuleExecutionMutation) Matched() (r bool, exists bool) {
	v := m.matched
	if v == nil {
		return
	}
	return *v, true
}

// OldMatched returns the old "matched" field's value of the RuleExecution entity.
// If the RuleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleExecutionMutation) OldMatched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatched: %w", err)
	}
	return oldValue.Matched, nil
}

// ResetMatched resets all changes to the "matched" field.
func (m *RuleExecutionMutation) ResetMatched() {
	m.matched = nil
}

// SetResult sets the "result" field.
func (m *RuleExecutionMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *RuleExecutionMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the RuleExecution entity.
// If the RuleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleExecutionMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *RuleExecutionMutation) ClearResult() {
	m.result = nil
	m.clearedFields[ruleexecution.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *RuleExecutionMutation) ResultCleared() bool {
	_, ok := m.clearedFields[ruleexecution.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *RuleExecutionMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, ruleexecution.FieldResult)
}

// SetErrorDetail sets the "error_detail" field.
func (m *RuleExecutionMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *RuleExecutionMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the RuleExecution entity.
// If the RuleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleExecutionMutation) OldErrorDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *RuleExecutionMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[ruleexecution.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *RuleExecutionMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[ruleexecution.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *RuleExecutionMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, ruleexecution.FieldErrorDetail)
}

// Where appends a list predicates to the RuleExecutionMutation builder.
func (m *RuleExecutionMutation) Where(ps ...predicate.RuleExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuleExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuleExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RuleExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuleExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuleExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RuleExecution).
func (m *RuleExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuleExecutionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, ruleexecution.FieldCreatedAt)
	}
	if m.rule_id != nil {
		fields = append(fields, ruleexecution.FieldRuleID)
	}
	if m.object_id != nil {
		fields = append(fields, ruleexecution.FieldObjectID)
	}
	if m.success != nil {
		fields = append(fields, ruleexecution.FieldSuccess)
	}
	if m.matched != nil {
		fields = append(fields, ruleexecution.FieldMatched)
	}
	if m.result != nil {
		fields = append(fields, ruleexecution.FieldResult)
	}
	if m.error_detail != nil {
		fields = append(fields, ruleexecution.FieldErrorDetail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuleExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ruleexecution.FieldCreatedAt:
		return m.CreatedAt()
	case ruleexecution.FieldRuleID:
		return m.RuleID()
	case ruleexecution.FieldObjectID:
		return m.ObjectID()
	case ruleexecution.FieldSuccess:
		return m.Success()
	case ruleexecution.FieldMatched:
		return m.Matched()
	case ruleexecution.FieldResult:
		return m.Result()
	case ruleexecution.FieldErrorDetail:
		return m.ErrorDetail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuleExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ruleexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ruleexecution.FieldRuleID:
		return m.OldRuleID(ctx)
	case ruleexecution.FieldObjectID:
		return m.OldObjectID(ctx)
	case ruleexecution.FieldSuccess:
		return m.OldSuccess(ctx)
	case ruleexecution.FieldMatched:
		return m.OldMatched(ctx)
	case ruleexecution.FieldResult:
		return m.OldResult(ctx)
	case ruleexecution.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	}
	return nil, fmt.Errorf("unknown RuleExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ruleexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ruleexecution.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case ruleexecution.FieldObjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectID(v)
		return nil
	case ruleexecution.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case ruleexecution.FieldMatched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatched(v)
		return nil
	case ruleexecution.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case ruleexecution.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	}
	return fmt.Errorf("unknown RuleExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuleExecutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuleExecutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RuleExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuleExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ruleexecution.FieldResult) {
		fields = append(fields, ruleexecution.FieldResult)
	}
	if m.FieldCleared(ruleexecution.FieldErrorDetail) {
		fields = append(fields, ruleexecution.FieldErrorDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuleExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuleExecutionMutation) ClearField(name string) error {
	switch name {
	case ruleexecution.FieldResult:
		m.ClearResult()
		return nil
	case ruleexecution.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	}
	return fmt.Errorf("unknown RuleExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuleExecutionMutation) ResetField(name string) error {
	switch name {
	case ruleexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ruleexecution.FieldRuleID:
		m.ResetRuleID()
		return nil
	case ruleexecution.FieldObjectID:
		m.ResetObjectID()
		return nil
	case ruleexecution.FieldSuccess:
		m.ResetSuccess()
		return nil
	case ruleexecution.FieldMatched:
		m.ResetMatched()
		return nil
	case ruleexecution.FieldResult:
		m.ResetResult()
		return nil
	case ruleexecution.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	}
	return fmt.Errorf("unknown RuleExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuleExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuleExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuleExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuleExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuleExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuleExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuleExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RuleExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuleExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RuleExecution edge %s", name)
}

// SuggestionTrustMutation represents an operation that mutates the SuggestionTrust nodes in the graph.
type SuggestionTrustMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	field             *string
	pattern           *string
	multiplier        *float64
	addmultiplier     *float64
	accepted_count    *int
	addaccepted_count *int
	rejected_count    *int
	addrejected_count *int
	modified_count    *int
	addmodified_count *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SuggestionTrust, error)
	predicates        []predicate.SuggestionTrust
}

var _ ent.Mutation = (*SuggestionTrustMutation)(nil)

// suggestiontrustOption allows management of the mutation configuration using functional options.
type suggestiontrustOption func(*SuggestionTrustMutation)

// newSuggestionTrustMutation creates new mutation for the SuggestionTrust entity.
func newSuggestionTrustMutation(c config, op Op, opts ...suggestiontrustOption) *SuggestionTrustMutation {
	m := &SuggestionTrustMutation{
		config:        c,
		op:            op,
		typ:           TypeSuggestionTrust,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuggestionTrustID sets the ID field of the mutation.
func withSuggestionTrustID(id string) suggestiontrustOption {
	return func(m *SuggestionTrustMutation) {
		var (
			err   error
			once  sync.Once
			value *SuggestionTrust
		)
		m.oldValue = func(ctx context.Context) (*SuggestionTrust, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SuggestionTrust.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuggestionTrust sets the old SuggestionTrust of the mutation.
func withSuggestionTrust(node *SuggestionTrust) suggestiontrustOption {
	return func(m *SuggestionTrustMutation) {
		m.oldValue = func(context.Context) (*SuggestionTrust, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuggestionTrustMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuggestionTrustMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SuggestionTrust entities.
func (m *SuggestionTrustMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuggestionTrustMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuggestionTrustMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SuggestionTrust.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SuggestionTrustMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SuggestionTrustMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SuggestionTrust entity.
// If the SuggestionTrust object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionTrustMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SuggestionTrustMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SuggestionTrustMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SuggestionTrustMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SuggestionTrust entity.
// If the SuggestionTrust object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionTrustMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SuggestionTrustMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFieldField sets the "field" field.
func (m *SuggestionTrustMutation) SetFieldField(s string) {
	m.field = &s
}

// GetField returns the value of the "field" field in the mutation.
func (m *SuggestionTrustMutation) GetField() (r string, exists bool) {
	v := m.field
	if v == nil {
		return
	}
	return *v, true
}

// GetOldField returns the old "field" field's value of the SuggestionTrust entity.
// If the SuggestionTrust object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionTrustMutation) GetOldField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("GetOldField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("GetOldField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for GetOldField: %w", err)
	}
	return oldValue.Field, nil
}

// ResetFieldField resets all changes to the "field" field.
func (m *SuggestionTrustMutation) ResetFieldField() {
	m.field = nil
}

// SetPattern sets the "pattern" field.
func (m *SuggestionTrustMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *SuggestionTrustMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the SuggestionTrust entity.
// If the SuggestionTrust object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionTrustMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ResetPattern resets all changes to the "pattern" field.
func (m *SuggestionTrustMutation) ResetPattern() {
	m.pattern = nil
}

// SetMultiplier sets the "multiplier" field.
func (m *SuggestionTrustMutation) SetMultiplier(f float64) {
	m.multiplier = &f
	m.addmultiplier = nil
}

// Multiplier returns the value of the "multiplier" field in the mutation.
func (m *SuggestionTrustMutation) Multiplier() (r float64, exists bool) {
	v := m.multiplier
	if v == nil {
		return
	}
	return *v, true
}

// OldMultiplier returns the old "multiplier" field's value of the SuggestionTrust entity.
// If the SuggestionTrust object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionTrustMutation) OldMultiplier(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMultiplier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMultiplier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMultiplier: %w", err)
	}
	return oldValue.Multiplier, nil
}

// AddMultiplier adds f to the "multiplier" field.
func (m *SuggestionTrustMutation) AddMultiplier(f float64) {
	if m.addmultiplier != nil {
		*m.addmultiplier += f
	} else {
		m.addmultiplier = &f
	}
}

// AddedMultiplier returns the value that was added to the "multiplier" field in this mutation.
func (m *SuggestionTrustMutation) AddedMultiplier() (r float64, exists bool) {
	v := m.addmultiplier
	if v == nil {
		return
	}
	return *v, true
}

// ResetMultiplier resets all changes to the "multiplier" field.
func (m *SuggestionTrustMutation) ResetMultiplier() {
	m.multiplier = nil
	m.addmultiplier = nil
}

// SetAcceptedCount sets the "accepted_count" field.
func (m *SuggestionTrustMutation) SetAcceptedCount(i int) {
	m.accepted_count = &i
	m.addaccepted_count = nil
}

// AcceptedCount returns the value of the "accepted_count" field in the mutation.
func (m *SuggestionTrustMutation) AcceptedCount() (r int, exists bool) {
	v := m.accepted_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptedCount returns the old "accepted_count" field's value of the SuggestionTrust entity.
// If the SuggestionTrust object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionTrustMutation) OldAcceptedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptedCount: %w", err)
	}
	return oldValue.AcceptedCount, nil
}

// AddAcceptedCount adds i to the "accepted_count" field.
func (m *SuggestionTrustMutation) AddAcceptedCount(i int) {
	if m.addaccepted_count != nil {
		*m.addaccepted_count += i
	} else {
		m.addaccepted_count = &i
	}
}

// AddedAcceptedCount returns the value that was added to the "accepted_count" field in this mutation.
func (m *SuggestionTrustMutation) AddedAcceptedCount() (r int, exists bool) {
	v := m.addaccepted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAcceptedCount resets all changes to the "accepted_count" field.
func (m *SuggestionTrustMutation) ResetAcceptedCount() {
	m.accepted_count = nil
	m.addaccepted_count = nil
}

// SetRejectedCount sets the "rejected_count" field.
func (m *SuggestionTrustMutation) SetRejectedCount(i int) {
	m.rejected_count = &i
	m.addrejected_count = nil
}

// RejectedCount returns the value of the "rejected_count" field in the mutation.
func (m *SuggestionTrustMutation) RejectedCount() (r int, exists bool) {
	v := m.rejected_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectedCount returns the old "rejected_count" field's value of the SuggestionTrust entity.
// If the SuggestionTrust object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionTrustMutation) OldRejectedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectedCount: %w", err)
	}
	return oldValue.RejectedCount, nil
}

// AddRejectedCount adds i to the "rejected_count" field.
func (m *SuggestionTrustMutation) AddRejectedCount(i int) {
	if m.addrejected_count != nil {
		*m.addrejected_count += i
	} else {
		m.addrejected_count = &i
	}
}

// AddedRejectedCount returns the value that was added to the "rejected_count" field in this mutation.
func (m *SuggestionTrustMutation) AddedRejectedCount() (r int, exists bool) {
	v := m.addrejected_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejectedCount resets all changes to the "rejected_count" field.
func (m *SuggestionTrustMutation) ResetRejectedCount() {
	m.rejected_count = nil
	m.addrejected_count = nil
}

// SetModifiedCount sets the "modified_count" field.
func (m *SuggestionTrustMutation) SetModifiedCount(i int) {
	m.modified_count = &i
	m.addmodified_count = nil
}

// ModifiedCount returns the value of the "modified_count" field in the mutation.
func (m *SuggestionTrustMutation) ModifiedCount() (r int, exists bool) {
	v := m.modified_count
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedCount returns the old "modified_count" field's value of the SuggestionTrust entity.
// If the SuggestionTrust object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionTrustMutation) OldModifiedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedCount: %w", err)
	}
	return oldValue.ModifiedCount, nil
}

// AddModifiedCount adds i to the "modified_count" field.
func (m *SuggestionTrustMutation) AddModifiedCount(i int) {
	if m.addmodified_count != nil {
		*m.addmodified_count += i
	} else {
		m.addmodified_count = &i
	}
}

// AddedModifiedCount returns the value that was added to the "modified_count" field in this mutation.
func (m *SuggestionTrustMutation) AddedModifiedCount() (r int, exists bool) {
	v := m.addmodified_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetModifiedCount resets all changes to the "modified_count" field.
func (m *SuggestionTrustMutation) ResetModifiedCount() {
	m.modified_count = nil
	m.addmodified_count = nil
}

// Where appends a list predicates to the SuggestionTrustMutation builder.
func (m *SuggestionTrustMutation) Where(ps ...predicate.SuggestionTrust) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuggestionTrustMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuggestionTrustMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SuggestionTrust, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuggestionTrustMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuggestionTrustMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SuggestionTrust).
func (m *SuggestionTrustMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuggestionTrustMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, suggestiontrust.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, suggestiontrust.FieldUpdatedAt)
	}
	if m.field != nil {
		fields = append(fields, suggestiontrust.FieldField)
	}
	if m.pattern != nil {
		fields = append(fields, suggestiontrust.FieldPattern)
	}
	if m.multiplier != nil {
		fields = append(fields, suggestiontrust.FieldMultiplier)
	}
	if m.accepted_count != nil {
		fields = append(fields, suggestiontrust.FieldAcceptedCount)
	}
	if m.rejected_count != nil {
		fields = append(fields, suggestiontrust.FieldRejectedCount)
	}
	if m.modified_count != nil {
		fields = append(fields, suggestiontrust.FieldModifiedCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuggestionTrustMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suggestiontrust.FieldCreatedAt:
		return m.CreatedAt()
	case suggestiontrust.FieldUpdatedAt:
		return m.UpdatedAt()
	case suggestiontrust.FieldField:
		return m.GetField()
	case suggestiontrust.FieldPattern:
		return m.Pattern()
	case suggestiontrust.FieldMultiplier:
		return m.Multiplier()
	case suggestiontrust.FieldAcceptedCount:
		return m.AcceptedCount()
	case suggestiontrust.FieldRejectedCount:
		return m.RejectedCount()
	case suggestiontrust.FieldModifiedCount:
		return m.ModifiedCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuggestionTrustMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suggestiontrust.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case suggestiontrust.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case suggestiontrust.FieldField:
		return m.GetOldField(ctx)
	case suggestiontrust.FieldPattern:
		return m.OldPattern(ctx)
	case suggestiontrust.FieldMultiplier:
		return m.OldMultiplier(ctx)
	case suggestiontrust.FieldAcceptedCount:
		return m.OldAcceptedCount(ctx)
	case suggestiontrust.FieldRejectedCount:
		return m.OldRejectedCount(ctx)
	case suggestiontrust.FieldModifiedCount:
		return m.OldModifiedCount(ctx)
	}
	return nil, fmt.Errorf("unknown SuggestionTrust field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionTrustMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suggestiontrust.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case suggestiontrust.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case suggestiontrust.FieldField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldField(v)
		return nil
	case suggestiontrust.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case suggestiontrust.FieldMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMultiplier(v)
		return nil
	case suggestiontrust.FieldAcceptedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptedCount(v)
		return nil
	case suggestiontrust.FieldRejectedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectedCount(v)
		return nil
	case suggestiontrust.FieldModifiedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedCount(v)
		return nil
	}
	return fmt.Errorf("unknown SuggestionTrust field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuggestionTrustMutation) AddedFields() []string {
	var fields []string
	if m.addmultiplier != nil {
		fields = append(fields, suggestiontrust.FieldMultiplier)
	}
	if m.addaccepted_count != nil {
		fields = append(fields, suggestiontrust.FieldAcceptedCount)
	}
	if m.addrejected_count != nil {
		fields = append(fields, suggestiontrust.FieldRejectedCount)
	}
	if m.addmodified_count != nil {
		fields = append(fields, suggestiontrust.FieldModifiedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuggestionTrustMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case suggestiontrust.FieldMultiplier:
		return m.AddedMultiplier()
	case suggestiontrust.FieldAcceptedCount:
		return m.AddedAcceptedCount()
	case suggestiontrust.FieldRejectedCount:
		return m.AddedRejectedCount()
	case suggestiontrust.FieldModifiedCount:
		return m.AddedModifiedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionTrustMutation) AddField(name string, value ent.Value) error {
	switch name {
	case suggestiontrust.FieldMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMultiplier(v)
		return nil
	case suggestiontrust.FieldAcceptedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAcceptedCount(v)
		return nil
	case suggestiontrust.FieldRejectedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejectedCount(v)
		return nil
	case suggestiontrust.FieldModifiedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModifiedCount(v)
		return nil
	}
	return fmt.Errorf("unknown SuggestionTrust numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuggestionTrustMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuggestionTrustMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuggestionTrustMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SuggestionTrust nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuggestionTrustMutation) ResetField(name string) error {
	switch name {
	case suggestiontrust.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case suggestiontrust.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case suggestiontrust.FieldField:
		m.ResetFieldField()
		return nil
	case suggestiontrust.FieldPattern:
		m.ResetPattern()
		return nil
	case suggestiontrust.FieldMultiplier:
		m.ResetMultiplier()
		return nil
	case suggestiontrust.FieldAcceptedCount:
		m.ResetAcceptedCount()
		return nil
	case suggestiontrust.FieldRejectedCount:
		m.ResetRejectedCount()
		return nil
	case suggestiontrust.FieldModifiedCount:
		m.ResetModifiedCount()
		return nil
	}
	return fmt.Errorf("unknown SuggestionTrust field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuggestionTrustMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuggestionTrustMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuggestionTrustMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuggestionTrustMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuggestionTrustMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuggestionTrustMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuggestionTrustMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SuggestionTrust unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuggestionTrustMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SuggestionTrust edge %s", name)
}
