// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"iou-platform.io/iou/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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
	"iou-platform.io/iou/ent/ruleexecution"
	"iou-platform.io/iou/ent/suggestiontrust"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// BusinessRule is the client for interacting with the BusinessRule builders.
	BusinessRule *BusinessRuleClient
	// Community is the client for interacting with the Community builders.
	Community *CommunityClient
	// DomainRelation is the client for interacting with the DomainRelation builders.
	DomainRelation *DomainRelationClient
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// EntityCommunityMembership is the client for interacting with the EntityCommunityMembership builders.
	EntityCommunityMembership *EntityCommunityMembershipClient
	// EntityRelationship is the client for interacting with the EntityRelationship builders.
	EntityRelationship *EntityRelationshipClient
	// GraphGeneration is the client for interacting with the GraphGeneration builders.
	GraphGeneration *GraphGenerationClient
	// InformationDomain is the client for interacting with the InformationDomain builders.
	InformationDomain *InformationDomainClient
	// InformationObject is the client for interacting with the InformationObject builders.
	InformationObject *InformationObjectClient
	// MetadataSuggestion is the client for interacting with the MetadataSuggestion builders.
	MetadataSuggestion *MetadataSuggestionClient
	// RuleExecution is the client for interacting with the RuleExecution builders.
	RuleExecution *RuleExecutionClient
	// SuggestionTrust is the client for interacting with the SuggestionTrust builders.
	SuggestionTrust *SuggestionTrustClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.BusinessRule = NewBusinessRuleClient(c.config)
	c.Community = NewCommunityClient(c.config)
	c.DomainRelation = NewDomainRelationClient(c.config)
	c.Entity = NewEntityClient(c.config)
	c.EntityCommunityMembership = NewEntityCommunityMembershipClient(c.config)
	c.EntityRelationship = NewEntityRelationshipClient(c.config)
	c.GraphGeneration = NewGraphGenerationClient(c.config)
	c.InformationDomain = NewInformationDomainClient(c.config)
	c.InformationObject = NewInformationObjectClient(c.config)
	c.MetadataSuggestion = NewMetadataSuggestionClient(c.config)
	c.RuleExecution = NewRuleExecutionClient(c.config)
	c.SuggestionTrust = NewSuggestionTrustClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                       ctx,
		config:                    cfg,
		AuditLog:                  NewAuditLogClient(cfg),
		BusinessRule:              NewBusinessRuleClient(cfg),
		Community:                 NewCommunityClient(cfg),
		DomainRelation:            NewDomainRelationClient(cfg),
		Entity:                    NewEntityClient(cfg),
		EntityCommunityMembership: NewEntityCommunityMembershipClient(cfg),
		EntityRelationship:        NewEntityRelationshipClient(cfg),
		GraphGeneration:           NewGraphGenerationClient(cfg),
		InformationDomain:         NewInformationDomainClient(cfg),
		InformationObject:         NewInformationObjectClient(cfg),
		MetadataSuggestion:        NewMetadataSuggestionClient(cfg),
		RuleExecution:             NewRuleExecutionClient(cfg),
		SuggestionTrust:           NewSuggestionTrustClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                       ctx,
		config:                    cfg,
		AuditLog:                  NewAuditLogClient(cfg),
		BusinessRule:              NewBusinessRuleClient(cfg),
		Community:                 NewCommunityClient(cfg),
		DomainRelation:            NewDomainRelationClient(cfg),
		Entity:                    NewEntityClient(cfg),
		EntityCommunityMembership: NewEntityCommunityMembershipClient(cfg),
		EntityRelationship:        NewEntityRelationshipClient(cfg),
		GraphGeneration:           NewGraphGenerationClient(cfg),
		InformationDomain:         NewInformationDomainClient(cfg),
		InformationObject:         NewInformationObjectClient(cfg),
		MetadataSuggestion:        NewMetadataSuggestionClient(cfg),
		RuleExecution:             NewRuleExecutionClient(cfg),
		SuggestionTrust:           NewSuggestionTrustClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditLog, c.BusinessRule, c.Community, c.DomainRelation, c.Entity,
		c.EntityCommunityMembership, c.EntityRelationship, c.GraphGeneration,
		c.InformationDomain, c.InformationObject, c.MetadataSuggestion,
		c.RuleExecution, c.SuggestionTrust,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.BusinessRule, c.Community, c.DomainRelation, c.Entity,
		c.EntityCommunityMembership, c.EntityRelationship, c.GraphGeneration,
		c.InformationDomain, c.InformationObject, c.MetadataSuggestion,
		c.RuleExecution, c.SuggestionTrust,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *BusinessRuleMutation:
		return c.BusinessRule.mutate(ctx, m)
	case *CommunityMutation:
		return c.Community.mutate(ctx, m)
	case *DomainRelationMutation:
		return c.DomainRelation.mutate(ctx, m)
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *EntityCommunityMembershipMutation:
		return c.EntityCommunityMembership.mutate(ctx, m)
	case *EntityRelationshipMutation:
		return c.EntityRelationship.mutate(ctx, m)
	case *GraphGenerationMutation:
		return c.GraphGeneration.mutate(ctx, m)
	case *InformationDomainMutation:
		return c.InformationDomain.mutate(ctx, m)
	case *InformationObjectMutation:
		return c.InformationObject.mutate(ctx, m)
	case *MetadataSuggestionMutation:
		return c.MetadataSuggestion.mutate(ctx, m)
	case *RuleExecutionMutation:
		return c.RuleExecution.mutate(ctx, m)
	case *SuggestionTrustMutation:
		return c.SuggestionTrust.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// BusinessRuleClient is a client for the BusinessRule schema.
type BusinessRuleClient struct {
	config
}

// NewBusinessRuleClient returns a client for the BusinessRule from the given config.
func NewBusinessRuleClient(c config) *BusinessRuleClient {
	return &BusinessRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businessrule.Hooks(f(g(h())))`.
func (c *BusinessRuleClient) Use(hooks ...Hook) {
	c.hooks.BusinessRule = append(c.hooks.BusinessRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businessrule.Intercept(f(g(h())))`.
func (c *BusinessRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessRule = append(c.inters.BusinessRule, interceptors...)
}

// Create returns a builder for creating a BusinessRule entity.
func (c *BusinessRuleClient) Create() *BusinessRuleCreate {
	mutation := newBusinessRuleMutation(c.config, OpCreate)
	return &BusinessRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessRule entities.
func (c *BusinessRuleClient) CreateBulk(builders ...*BusinessRuleCreate) *BusinessRuleCreateBulk {
	return &BusinessRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessRuleClient) MapCreateBulk(slice any, setFunc func(*BusinessRuleCreate, int)) *BusinessRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessRuleCreateBulk{err: fmt.Errorf("calling to BusinessRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessRule.
func (c *BusinessRuleClient) Update() *BusinessRuleUpdate {
	mutation := newBusinessRuleMutation(c.config, OpUpdate)
	return &BusinessRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessRuleClient) UpdateOne(_m *BusinessRule) *BusinessRuleUpdateOne {
	mutation := newBusinessRuleMutation(c.config, OpUpdateOne, withBusinessRule(_m))
	return &BusinessRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessRuleClient) UpdateOneID(id string) *BusinessRuleUpdateOne {
	mutation := newBusinessRuleMutation(c.config, OpUpdateOne, withBusinessRuleID(id))
	return &BusinessRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessRule.
func (c *BusinessRuleClient) Delete() *BusinessRuleDelete {
	mutation := newBusinessRuleMutation(c.config, OpDelete)
	return &BusinessRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessRuleClient) DeleteOne(_m *BusinessRule) *BusinessRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessRuleClient) DeleteOneID(id string) *BusinessRuleDeleteOne {
	builder := c.Delete().Where(businessrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessRuleDeleteOne{builder}
}

// Query returns a query builder for BusinessRule.
func (c *BusinessRuleClient) Query() *BusinessRuleQuery {
	return &BusinessRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessRule},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessRule entity by its id.
func (c *BusinessRuleClient) Get(ctx context.Context, id string) (*BusinessRule, error) {
	return c.Query().Where(businessrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessRuleClient) GetX(ctx context.Context, id string) *BusinessRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BusinessRuleClient) Hooks() []Hook {
	return c.hooks.BusinessRule
}

// Interceptors returns the client interceptors.
func (c *BusinessRuleClient) Interceptors() []Interceptor {
	return c.inters.BusinessRule
}

func (c *BusinessRuleClient) mutate(ctx context.Context, m *BusinessRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusinessRule mutation op: %q", m.Op())
	}
}

// CommunityClient is a client for the Community schema.
type CommunityClient struct {
	config
}

// NewCommunityClient returns a client for the Community from the given config.
func NewCommunityClient(c config) *CommunityClient {
	return &CommunityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `community.Hooks(f(g(h())))`.
func (c *CommunityClient) Use(hooks ...Hook) {
	c.hooks.Community = append(c.hooks.Community, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `community.Intercept(f(g(h())))`.
func (c *CommunityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Community = append(c.inters.Community, interceptors...)
}

// Create returns a builder for creating a Community entity.
func (c *CommunityClient) Create() *CommunityCreate {
	mutation := newCommunityMutation(c.config, OpCreate)
	return &CommunityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Community entities.
func (c *CommunityClient) CreateBulk(builders ...*CommunityCreate) *CommunityCreateBulk {
	return &CommunityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommunityClient) MapCreateBulk(slice any, setFunc func(*CommunityCreate, int)) *CommunityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommunityCreateBulk{err: fmt.Errorf("calling to CommunityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommunityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommunityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Community.
func (c *CommunityClient) Update() *CommunityUpdate {
	mutation := newCommunityMutation(c.config, OpUpdate)
	return &CommunityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommunityClient) UpdateOne(_m *Community) *CommunityUpdateOne {
	mutation := newCommunityMutation(c.config, OpUpdateOne, withCommunity(_m))
	return &CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommunityClient) UpdateOneID(id string) *CommunityUpdateOne {
	mutation := newCommunityMutation(c.config, OpUpdateOne, withCommunityID(id))
	return &CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Community.
func (c *CommunityClient) Delete() *CommunityDelete {
	mutation := newCommunityMutation(c.config, OpDelete)
	return &CommunityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommunityClient) DeleteOne(_m *Community) *CommunityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommunityClient) DeleteOneID(id string) *CommunityDeleteOne {
	builder := c.Delete().Where(community.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommunityDeleteOne{builder}
}

// Query returns a query builder for Community.
func (c *CommunityClient) Query() *CommunityQuery {
	return &CommunityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommunity},
		inters: c.Interceptors(),
	}
}

// Get returns a Community entity by its id.
func (c *CommunityClient) Get(ctx context.Context, id string) (*Community, error) {
	return c.Query().Where(community.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommunityClient) GetX(ctx context.Context, id string) *Community {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CommunityClient) Hooks() []Hook {
	return c.hooks.Community
}

// Interceptors returns the client interceptors.
func (c *CommunityClient) Interceptors() []Interceptor {
	return c.inters.Community
}

func (c *CommunityClient) mutate(ctx context.Context, m *CommunityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommunityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommunityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommunityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Community mutation op: %q", m.Op())
	}
}

// DomainRelationClient is a client for the DomainRelation schema.
type DomainRelationClient struct {
	config
}

// NewDomainRelationClient returns a client for the DomainRelation from the given config.
func NewDomainRelationClient(c config) *DomainRelationClient {
	return &DomainRelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `domainrelation.Hooks(f(g(h())))`.
func (c *DomainRelationClient) Use(hooks ...Hook) {
	c.hooks.DomainRelation = append(c.hooks.DomainRelation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `domainrelation.Intercept(f(g(h())))`.
func (c *DomainRelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.DomainRelation = append(c.inters.DomainRelation, interceptors...)
}

// Create returns a builder for creating a DomainRelation entity.
func (c *DomainRelationClient) Create() *DomainRelationCreate {
	mutation := newDomainRelationMutation(c.config, OpCreate)
	return &DomainRelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DomainRelation entities.
func (c *DomainRelationClient) CreateBulk(builders ...*DomainRelationCreate) *DomainRelationCreateBulk {
	return &DomainRelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DomainRelationClient) MapCreateBulk(slice any, setFunc func(*DomainRelationCreate, int)) *DomainRelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DomainRelationCreateBulk{err: fmt.Errorf("calling to DomainRelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DomainRelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DomainRelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DomainRelation.
func (c *DomainRelationClient) Update() *DomainRelationUpdate {
	mutation := newDomainRelationMutation(c.config, OpUpdate)
	return &DomainRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DomainRelationClient) UpdateOne(_m *DomainRelation) *DomainRelationUpdateOne {
	mutation := newDomainRelationMutation(c.config, OpUpdateOne, withDomainRelation(_m))
	return &DomainRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DomainRelationClient) UpdateOneID(id string) *DomainRelationUpdateOne {
	mutation := newDomainRelationMutation(c.config, OpUpdateOne, withDomainRelationID(id))
	return &DomainRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DomainRelation.
func (c *DomainRelationClient) Delete() *DomainRelationDelete {
	mutation := newDomainRelationMutation(c.config, OpDelete)
	return &DomainRelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DomainRelationClient) DeleteOne(_m *DomainRelation) *DomainRelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DomainRelationClient) DeleteOneID(id string) *DomainRelationDeleteOne {
	builder := c.Delete().Where(domainrelation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DomainRelationDeleteOne{builder}
}

// Query returns a query builder for DomainRelation.
func (c *DomainRelationClient) Query() *DomainRelationQuery {
	return &DomainRelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDomainRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a DomainRelation entity by its id.
func (c *DomainRelationClient) Get(ctx context.Context, id string) (*DomainRelation, error) {
	return c.Query().Where(domainrelation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DomainRelationClient) GetX(ctx context.Context, id string) *DomainRelation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DomainRelationClient) Hooks() []Hook {
	return c.hooks.DomainRelation
}

// Interceptors returns the client interceptors.
func (c *DomainRelationClient) Interceptors() []Interceptor {
	return c.inters.DomainRelation
}

func (c *DomainRelationClient) mutate(ctx context.Context, m *DomainRelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DomainRelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DomainRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DomainRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DomainRelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DomainRelation mutation op: %q", m.Op())
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id string) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id string) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id string) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id string) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// EntityCommunityMembershipClient is a client for the EntityCommunityMembership schema.
type EntityCommunityMembershipClient struct {
	config
}

// NewEntityCommunityMembershipClient returns a client for the EntityCommunityMembership from the given config.
func NewEntityCommunityMembershipClient(c config) *EntityCommunityMembershipClient {
	return &EntityCommunityMembershipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitycommunitymembership.Hooks(f(g(h())))`.
func (c *EntityCommunityMembershipClient) Use(hooks ...Hook) {
	c.hooks.EntityCommunityMembership = append(c.hooks.EntityCommunityMembership, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitycommunitymembership.Intercept(f(g(h())))`.
func (c *EntityCommunityMembershipClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityCommunityMembership = append(c.inters.EntityCommunityMembership, interceptors...)
}

// Create returns a builder for creating a EntityCommunityMembership entity.
func (c *EntityCommunityMembershipClient) Create() *EntityCommunityMembershipCreate {
	mutation := newEntityCommunityMembershipMutation(c.config, OpCreate)
	return &EntityCommunityMembershipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityCommunityMembership entities.
func (c *EntityCommunityMembershipClient) CreateBulk(builders ...*EntityCommunityMembershipCreate) *EntityCommunityMembershipCreateBulk {
	return &EntityCommunityMembershipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityCommunityMembershipClient) MapCreateBulk(slice any, setFunc func(*EntityCommunityMembershipCreate, int)) *EntityCommunityMembershipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCommunityMembershipCreateBulk{err: fmt.Errorf("calling to EntityCommunityMembershipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCommunityMembershipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCommunityMembershipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityCommunityMembership.
func (c *EntityCommunityMembershipClient) Update() *EntityCommunityMembershipUpdate {
	mutation := newEntityCommunityMembershipMutation(c.config, OpUpdate)
	return &EntityCommunityMembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityCommunityMembershipClient) UpdateOne(_m *EntityCommunityMembership) *EntityCommunityMembershipUpdateOne {
	mutation := newEntityCommunityMembershipMutation(c.config, OpUpdateOne, withEntityCommunityMembership(_m))
	return &EntityCommunityMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityCommunityMembershipClient) UpdateOneID(id string) *EntityCommunityMembershipUpdateOne {
	mutation := newEntityCommunityMembershipMutation(c.config, OpUpdateOne, withEntityCommunityMembershipID(id))
	return &EntityCommunityMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityCommunityMembership.
func (c *EntityCommunityMembershipClient) Delete() *EntityCommunityMembershipDelete {
	mutation := newEntityCommunityMembershipMutation(c.config, OpDelete)
	return &EntityCommunityMembershipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityCommunityMembershipClient) DeleteOne(_m *EntityCommunityMembership) *EntityCommunityMembershipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityCommunityMembershipClient) DeleteOneID(id string) *EntityCommunityMembershipDeleteOne {
	builder := c.Delete().Where(entitycommunitymembership.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityCommunityMembershipDeleteOne{builder}
}

// Query returns a query builder for EntityCommunityMembership.
func (c *EntityCommunityMembershipClient) Query() *EntityCommunityMembershipQuery {
	return &EntityCommunityMembershipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityCommunityMembership},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityCommunityMembership entity by its id.
func (c *EntityCommunityMembershipClient) Get(ctx context.Context, id string) (*EntityCommunityMembership, error) {
	return c.Query().Where(entitycommunitymembership.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityCommunityMembershipClient) GetX(ctx context.Context, id string) *EntityCommunityMembership {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntityCommunityMembershipClient) Hooks() []Hook {
	return c.hooks.EntityCommunityMembership
}

// Interceptors returns the client interceptors.
func (c *EntityCommunityMembershipClient) Interceptors() []Interceptor {
	return c.inters.EntityCommunityMembership
}

func (c *EntityCommunityMembershipClient) mutate(ctx context.Context, m *EntityCommunityMembershipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCommunityMembershipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityCommunityMembershipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityCommunityMembershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityCommunityMembershipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityCommunityMembership mutation op: %q", m.Op())
	}
}

// EntityRelationshipClient is a client for the EntityRelationship schema.
type EntityRelationshipClient struct {
	config
}

// NewEntityRelationshipClient returns a client for the EntityRelationship from the given config.
func NewEntityRelationshipClient(c config) *EntityRelationshipClient {
	return &EntityRelationshipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityrelationship.Hooks(f(g(h())))`.
func (c *EntityRelationshipClient) Use(hooks ...Hook) {
	c.hooks.EntityRelationship = append(c.hooks.EntityRelationship, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityrelationship.Intercept(f(g(h())))`.
func (c *EntityRelationshipClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityRelationship = append(c.inters.EntityRelationship, interceptors...)
}

// Create returns a builder for creating a EntityRelationship entity.
func (c *EntityRelationshipClient) Create() *EntityRelationshipCreate {
	mutation := newEntityRelationshipMutation(c.config, OpCreate)
	return &EntityRelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityRelationship entities.
func (c *EntityRelationshipClient) CreateBulk(builders ...*EntityRelationshipCreate) *EntityRelationshipCreateBulk {
	return &EntityRelationshipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityRelationshipClient) MapCreateBulk(slice any, setFunc func(*EntityRelationshipCreate, int)) *EntityRelationshipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityRelationshipCreateBulk{err: fmt.Errorf("calling to EntityRelationshipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityRelationshipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityRelationshipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityRelationship.
func (c *EntityRelationshipClient) Update() *EntityRelationshipUpdate {
	mutation := newEntityRelationshipMutation(c.config, OpUpdate)
	return &EntityRelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityRelationshipClient) UpdateOne(_m *EntityRelationship) *EntityRelationshipUpdateOne {
	mutation := newEntityRelationshipMutation(c.config, OpUpdateOne, withEntityRelationship(_m))
	return &EntityRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityRelationshipClient) UpdateOneID(id string) *EntityRelationshipUpdateOne {
	mutation := newEntityRelationshipMutation(c.config, OpUpdateOne, withEntityRelationshipID(id))
	return &EntityRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityRelationship.
func (c *EntityRelationshipClient) Delete() *EntityRelationshipDelete {
	mutation := newEntityRelationshipMutation(c.config, OpDelete)
	return &EntityRelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityRelationshipClient) DeleteOne(_m *EntityRelationship) *EntityRelationshipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityRelationshipClient) DeleteOneID(id string) *EntityRelationshipDeleteOne {
	builder := c.Delete().Where(entityrelationship.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityRelationshipDeleteOne{builder}
}

// Query returns a query builder for EntityRelationship.
func (c *EntityRelationshipClient) Query() *EntityRelationshipQuery {
	return &EntityRelationshipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityRelationship},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityRelationship entity by its id.
func (c *EntityRelationshipClient) Get(ctx context.Context, id string) (*EntityRelationship, error) {
	return c.Query().Where(entityrelationship.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityRelationshipClient) GetX(ctx context.Context, id string) *EntityRelationship {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntityRelationshipClient) Hooks() []Hook {
	return c.hooks.EntityRelationship
}

// Interceptors returns the client interceptors.
func (c *EntityRelationshipClient) Interceptors() []Interceptor {
	return c.inters.EntityRelationship
}

func (c *EntityRelationshipClient) mutate(ctx context.Context, m *EntityRelationshipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityRelationshipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityRelationshipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityRelationshipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityRelationshipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityRelationship mutation op: %q", m.Op())
	}
}

// GraphGenerationClient is a client for the GraphGeneration schema.
type GraphGenerationClient struct {
	config
}

// NewGraphGenerationClient returns a client for the GraphGeneration from the given config.
func NewGraphGenerationClient(c config) *GraphGenerationClient {
	return &GraphGenerationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphgeneration.Hooks(f(g(h())))`.
func (c *GraphGenerationClient) Use(hooks ...Hook) {
	c.hooks.GraphGeneration = append(c.hooks.GraphGeneration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphgeneration.Intercept(f(g(h())))`.
func (c *GraphGenerationClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphGeneration = append(c.inters.GraphGeneration, interceptors...)
}

// Create returns a builder for creating a GraphGeneration entity.
func (c *GraphGenerationClient) Create() *GraphGenerationCreate {
	mutation := newGraphGenerationMutation(c.config, OpCreate)
	return &GraphGenerationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphGeneration entities.
func (c *GraphGenerationClient) CreateBulk(builders ...*GraphGenerationCreate) *GraphGenerationCreateBulk {
	return &GraphGenerationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphGenerationClient) MapCreateBulk(slice any, setFunc func(*GraphGenerationCreate, int)) *GraphGenerationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphGenerationCreateBulk{err: fmt.Errorf("calling to GraphGenerationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphGenerationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphGenerationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphGeneration.
func (c *GraphGenerationClient) Update() *GraphGenerationUpdate {
	mutation := newGraphGenerationMutation(c.config, OpUpdate)
	return &GraphGenerationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphGenerationClient) UpdateOne(_m *GraphGeneration) *GraphGenerationUpdateOne {
	mutation := newGraphGenerationMutation(c.config, OpUpdateOne, withGraphGeneration(_m))
	return &GraphGenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphGenerationClient) UpdateOneID(id string) *GraphGenerationUpdateOne {
	mutation := newGraphGenerationMutation(c.config, OpUpdateOne, withGraphGenerationID(id))
	return &GraphGenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphGeneration.
func (c *GraphGenerationClient) Delete() *GraphGenerationDelete {
	mutation := newGraphGenerationMutation(c.config, OpDelete)
	return &GraphGenerationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphGenerationClient) DeleteOne(_m *GraphGeneration) *GraphGenerationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphGenerationClient) DeleteOneID(id string) *GraphGenerationDeleteOne {
	builder := c.Delete().Where(graphgeneration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphGenerationDeleteOne{builder}
}

// Query returns a query builder for GraphGeneration.
func (c *GraphGenerationClient) Query() *GraphGenerationQuery {
	return &GraphGenerationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphGeneration},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphGeneration entity by its id.
func (c *GraphGenerationClient) Get(ctx context.Context, id string) (*GraphGeneration, error) {
	return c.Query().Where(graphgeneration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphGenerationClient) GetX(ctx context.Context, id string) *GraphGeneration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GraphGenerationClient) Hooks() []Hook {
	return c.hooks.GraphGeneration
}

// Interceptors returns the client interceptors.
func (c *GraphGenerationClient) Interceptors() []Interceptor {
	return c.inters.GraphGeneration
}

func (c *GraphGenerationClient) mutate(ctx context.Context, m *GraphGenerationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphGenerationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphGenerationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphGenerationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphGenerationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphGeneration mutation op: %q", m.Op())
	}
}

// InformationDomainClient is a client for the InformationDomain schema.
type InformationDomainClient struct {
	config
}

// NewInformationDomainClient returns a client for the InformationDomain from the given config.
func NewInformationDomainClient(c config) *InformationDomainClient {
	return &InformationDomainClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `informationdomain.Hooks(f(g(h())))`.
func (c *InformationDomainClient) Use(hooks ...Hook) {
	c.hooks.InformationDomain = append(c.hooks.InformationDomain, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `informationdomain.Intercept(f(g(h())))`.
func (c *InformationDomainClient) Intercept(interceptors ...Interceptor) {
	c.inters.InformationDomain = append(c.inters.InformationDomain, interceptors...)
}

// Create returns a builder for creating a InformationDomain entity.
func (c *InformationDomainClient) Create() *InformationDomainCreate {
	mutation := newInformationDomainMutation(c.config, OpCreate)
	return &InformationDomainCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InformationDomain entities.
func (c *InformationDomainClient) CreateBulk(builders ...*InformationDomainCreate) *InformationDomainCreateBulk {
	return &InformationDomainCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InformationDomainClient) MapCreateBulk(slice any, setFunc func(*InformationDomainCreate, int)) *InformationDomainCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InformationDomainCreateBulk{err: fmt.Errorf("calling to InformationDomainClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InformationDomainCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InformationDomainCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InformationDomain.
func (c *InformationDomainClient) Update() *InformationDomainUpdate {
	mutation := newInformationDomainMutation(c.config, OpUpdate)
	return &InformationDomainUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InformationDomainClient) UpdateOne(_m *InformationDomain) *InformationDomainUpdateOne {
	mutation := newInformationDomainMutation(c.config, OpUpdateOne, withInformationDomain(_m))
	return &InformationDomainUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InformationDomainClient) UpdateOneID(id string) *InformationDomainUpdateOne {
	mutation := newInformationDomainMutation(c.config, OpUpdateOne, withInformationDomainID(id))
	return &InformationDomainUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InformationDomain.
func (c *InformationDomainClient) Delete() *InformationDomainDelete {
	mutation := newInformationDomainMutation(c.config, OpDelete)
	return &InformationDomainDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InformationDomainClient) DeleteOne(_m *InformationDomain) *InformationDomainDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InformationDomainClient) DeleteOneID(id string) *InformationDomainDeleteOne {
	builder := c.Delete().Where(informationdomain.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InformationDomainDeleteOne{builder}
}

// Query returns a query builder for InformationDomain.
func (c *InformationDomainClient) Query() *InformationDomainQuery {
	return &InformationDomainQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInformationDomain},
		inters: c.Interceptors(),
	}
}

// Get returns a InformationDomain entity by its id.
func (c *InformationDomainClient) Get(ctx context.Context, id string) (*InformationDomain, error) {
	return c.Query().Where(informationdomain.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InformationDomainClient) GetX(ctx context.Context, id string) *InformationDomain {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InformationDomainClient) Hooks() []Hook {
	return c.hooks.InformationDomain
}

// Interceptors returns the client interceptors.
func (c *InformationDomainClient) Interceptors() []Interceptor {
	return c.inters.InformationDomain
}

func (c *InformationDomainClient) mutate(ctx context.Context, m *InformationDomainMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InformationDomainCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InformationDomainUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InformationDomainUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InformationDomainDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InformationDomain mutation op: %q", m.Op())
	}
}

// InformationObjectClient is a client for the InformationObject schema.
type InformationObjectClient struct {
	config
}

// NewInformationObjectClient returns a client for the InformationObject from the given config.
func NewInformationObjectClient(c config) *InformationObjectClient {
	return &InformationObjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `informationobject.Hooks(f(g(h())))`.
func (c *InformationObjectClient) Use(hooks ...Hook) {
	c.hooks.InformationObject = append(c.hooks.InformationObject, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `informationobject.Intercept(f(g(h())))`.
func (c *InformationObjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.InformationObject = append(c.inters.InformationObject, interceptors...)
}

// Create returns a builder for creating a InformationObject entity.
func (c *InformationObjectClient) Create() *InformationObjectCreate {
	mutation := newInformationObjectMutation(c.config, OpCreate)
	return &InformationObjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InformationObject entities.
func (c *InformationObjectClient) CreateBulk(builders ...*InformationObjectCreate) *InformationObjectCreateBulk {
	return &InformationObjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InformationObjectClient) MapCreateBulk(slice any, setFunc func(*InformationObjectCreate, int)) *InformationObjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InformationObjectCreateBulk{err: fmt.Errorf("calling to InformationObjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InformationObjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InformationObjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InformationObject.
func (c *InformationObjectClient) Update() *InformationObjectUpdate {
	mutation := newInformationObjectMutation(c.config, OpUpdate)
	return &InformationObjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InformationObjectClient) UpdateOne(_m *InformationObject) *InformationObjectUpdateOne {
	mutation := newInformationObjectMutation(c.config, OpUpdateOne, withInformationObject(_m))
	return &InformationObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InformationObjectClient) UpdateOneID(id string) *InformationObjectUpdateOne {
	mutation := newInformationObjectMutation(c.config, OpUpdateOne, withInformationObjectID(id))
	return &InformationObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InformationObject.
func (c *InformationObjectClient) Delete() *InformationObjectDelete {
	mutation := newInformationObjectMutation(c.config, OpDelete)
	return &InformationObjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InformationObjectClient) DeleteOne(_m *InformationObject) *InformationObjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InformationObjectClient) DeleteOneID(id string) *InformationObjectDeleteOne {
	builder := c.Delete().Where(informationobject.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InformationObjectDeleteOne{builder}
}

// Query returns a query builder for InformationObject.
func (c *InformationObjectClient) Query() *InformationObjectQuery {
	return &InformationObjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInformationObject},
		inters: c.Interceptors(),
	}
}

// Get returns a InformationObject entity by its id.
func (c *InformationObjectClient) Get(ctx context.Context, id string) (*InformationObject, error) {
	return c.Query().Where(informationobject.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InformationObjectClient) GetX(ctx context.Context, id string) *InformationObject {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InformationObjectClient) Hooks() []Hook {
	return c.hooks.InformationObject
}

// Interceptors returns the client interceptors.
func (c *InformationObjectClient) Interceptors() []Interceptor {
	return c.inters.InformationObject
}

func (c *InformationObjectClient) mutate(ctx context.Context, m *InformationObjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InformationObjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InformationObjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InformationObjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InformationObjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InformationObject mutation op: %q", m.Op())
	}
}

// MetadataSuggestionClient is a client for the MetadataSuggestion schema.
type MetadataSuggestionClient struct {
	config
}

// NewMetadataSuggestionClient returns a client for the MetadataSuggestion from the given config.
func NewMetadataSuggestionClient(c config) *MetadataSuggestionClient {
	return &MetadataSuggestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `metadatasuggestion.Hooks(f(g(h())))`.
func (c *MetadataSuggestionClient) Use(hooks ...Hook) {
	c.hooks.MetadataSuggestion = append(c.hooks.MetadataSuggestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `metadatasuggestion.Intercept(f(g(h())))`.
func (c *MetadataSuggestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.MetadataSuggestion = append(c.inters.MetadataSuggestion, interceptors...)
}

// Create returns a builder for creating a MetadataSuggestion entity.
func (c *MetadataSuggestionClient) Create() *MetadataSuggestionCreate {
	mutation := newMetadataSuggestionMutation(c.config, OpCreate)
	return &MetadataSuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MetadataSuggestion entities.
func (c *MetadataSuggestionClient) CreateBulk(builders ...*MetadataSuggestionCreate) *MetadataSuggestionCreateBulk {
	return &MetadataSuggestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MetadataSuggestionClient) MapCreateBulk(slice any, setFunc func(*MetadataSuggestionCreate, int)) *MetadataSuggestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MetadataSuggestionCreateBulk{err: fmt.Errorf("calling to MetadataSuggestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MetadataSuggestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MetadataSuggestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MetadataSuggestion.
func (c *MetadataSuggestionClient) Update() *MetadataSuggestionUpdate {
	mutation := newMetadataSuggestionMutation(c.config, OpUpdate)
	return &MetadataSuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MetadataSuggestionClient) UpdateOne(_m *MetadataSuggestion) *MetadataSuggestionUpdateOne {
	mutation := newMetadataSuggestionMutation(c.config, OpUpdateOne, withMetadataSuggestion(_m))
	return &MetadataSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MetadataSuggestionClient) UpdateOneID(id string) *MetadataSuggestionUpdateOne {
	mutation := newMetadataSuggestionMutation(c.config, OpUpdateOne, withMetadataSuggestionID(id))
	return &MetadataSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MetadataSuggestion.
func (c *MetadataSuggestionClient) Delete() *MetadataSuggestionDelete {
	mutation := newMetadataSuggestionMutation(c.config, OpDelete)
	return &MetadataSuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MetadataSuggestionClient) DeleteOne(_m *MetadataSuggestion) *MetadataSuggestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MetadataSuggestionClient) DeleteOneID(id string) *MetadataSuggestionDeleteOne {
	builder := c.Delete().Where(metadatasuggestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MetadataSuggestionDeleteOne{builder}
}

// Query returns a query builder for MetadataSuggestion.
func (c *MetadataSuggestionClient) Query() *MetadataSuggestionQuery {
	return &MetadataSuggestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMetadataSuggestion},
		inters: c.Interceptors(),
	}
}

// Get returns a MetadataSuggestion entity by its id.
func (c *MetadataSuggestionClient) Get(ctx context.Context, id string) (*MetadataSuggestion, error) {
	return c.Query().Where(metadatasuggestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MetadataSuggestionClient) GetX(ctx context.Context, id string) *MetadataSuggestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MetadataSuggestionClient) Hooks() []Hook {
	return c.hooks.MetadataSuggestion
}

// Interceptors returns the client interceptors.
func (c *MetadataSuggestionClient) Interceptors() []Interceptor {
	return c.inters.MetadataSuggestion
}

func (c *MetadataSuggestionClient) mutate(ctx context.Context, m *MetadataSuggestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MetadataSuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MetadataSuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MetadataSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MetadataSuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MetadataSuggestion mutation op: %q", m.Op())
	}
}

// RuleExecutionClient is a client for the RuleExecution schema.
type RuleExecutionClient struct {
	config
}

// NewRuleExecutionClient returns a client for the RuleExecution from the given config.
func NewRuleExecutionClient(c config) *RuleExecutionClient {
	return &RuleExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ruleexecution.Hooks(f(g(h())))`.
func (c *RuleExecutionClient) Use(hooks ...Hook) {
	c.hooks.RuleExecution = append(c.hooks.RuleExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ruleexecution.Intercept(f(g(h())))`.
func (c *RuleExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RuleExecution = append(c.inters.RuleExecution, interceptors...)
}

// Create returns a builder for creating a RuleExecution entity.
func (c *RuleExecutionClient) Create() *RuleExecutionCreate {
	mutation := newRuleExecutionMutation(c.config, OpCreate)
	return &RuleExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RuleExecution entities.
func (c *RuleExecutionClient) CreateBulk(builders ...*RuleExecutionCreate) *RuleExecutionCreateBulk {
	return &RuleExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuleExecutionClient) MapCreateBulk(slice any, setFunc func(*RuleExecutionCreate, int)) *RuleExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuleExecutionCreateBulk{err: fmt.Errorf("calling to RuleExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuleExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuleExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RuleExecution.
func (c *RuleExecutionClient) Update() *RuleExecutionUpdate {
	mutation := newRuleExecutionMutation(c.config, OpUpdate)
	return &RuleExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuleExecutionClient) UpdateOne(_m *RuleExecution) *RuleExecutionUpdateOne {
	mutation := newRuleExecutionMutation(c.config, OpUpdateOne, withRuleExecution(_m))
	return &RuleExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuleExecutionClient) UpdateOneID(id string) *RuleExecutionUpdateOne {
	mutation := newRuleExecutionMutation(c.config, OpUpdateOne, withRuleExecutionID(id))
	return &RuleExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RuleExecution.
func (c *RuleExecutionClient) Delete() *RuleExecutionDelete {
	mutation := newRuleExecutionMutation(c.config, OpDelete)
	return &RuleExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuleExecutionClient) DeleteOne(_m *RuleExecution) *RuleExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuleExecutionClient) DeleteOneID(id string) *RuleExecutionDeleteOne {
	builder := c.Delete().Where(ruleexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuleExecutionDeleteOne{builder}
}

// Query returns a query builder for RuleExecution.
func (c *RuleExecutionClient) Query() *RuleExecutionQuery {
	return &RuleExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRuleExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a RuleExecution entity by its id.
func (c *RuleExecutionClient) Get(ctx context.Context, id string) (*RuleExecution, error) {
	return c.Query().Where(ruleexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuleExecutionClient) GetX(ctx context.Context, id string) *RuleExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RuleExecutionClient) Hooks() []Hook {
	return c.hooks.RuleExecution
}

// Interceptors returns the client interceptors.
func (c *RuleExecutionClient) Interceptors() []Interceptor {
	return c.inters.RuleExecution
}

func (c *RuleExecutionClient) mutate(ctx context.Context, m *RuleExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuleExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuleExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuleExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuleExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RuleExecution mutation op: %q", m.Op())
	}
}

// SuggestionTrustClient is a client for the SuggestionTrust schema.
type SuggestionTrustClient struct {
	config
}

// NewSuggestionTrustClient returns a client for the SuggestionTrust from the given config.
func NewSuggestionTrustClient(c config) *SuggestionTrustClient {
	return &SuggestionTrustClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `suggestiontrust.Hooks(f(g(h())))`.
func (c *SuggestionTrustClient) Use(hooks ...Hook) {
	c.hooks.SuggestionTrust = append(c.hooks.SuggestionTrust, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `suggestiontrust.Intercept(f(g(h())))`.
func (c *SuggestionTrustClient) Intercept(interceptors ...Interceptor) {
	c.inters.SuggestionTrust = append(c.inters.SuggestionTrust, interceptors...)
}

// Create returns a builder for creating a SuggestionTrust entity.
func (c *SuggestionTrustClient) Create() *SuggestionTrustCreate {
	mutation := newSuggestionTrustMutation(c.config, OpCreate)
	return &SuggestionTrustCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SuggestionTrust entities.
func (c *SuggestionTrustClient) CreateBulk(builders ...*SuggestionTrustCreate) *SuggestionTrustCreateBulk {
	return &SuggestionTrustCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SuggestionTrustClient) MapCreateBulk(slice any, setFunc func(*SuggestionTrustCreate, int)) *SuggestionTrustCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SuggestionTrustCreateBulk{err: fmt.Errorf("calling to SuggestionTrustClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SuggestionTrustCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SuggestionTrustCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SuggestionTrust.
func (c *SuggestionTrustClient) Update() *SuggestionTrustUpdate {
	mutation := newSuggestionTrustMutation(c.config, OpUpdate)
	return &SuggestionTrustUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SuggestionTrustClient) UpdateOne(_m *SuggestionTrust) *SuggestionTrustUpdateOne {
	mutation := newSuggestionTrustMutation(c.config, OpUpdateOne, withSuggestionTrust(_m))
	return &SuggestionTrustUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SuggestionTrustClient) UpdateOneID(id string) *SuggestionTrustUpdateOne {
	mutation := newSuggestionTrustMutation(c.config, OpUpdateOne, withSuggestionTrustID(id))
	return &SuggestionTrustUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SuggestionTrust.
func (c *SuggestionTrustClient) Delete() *SuggestionTrustDelete {
	mutation := newSuggestionTrustMutation(c.config, OpDelete)
	return &SuggestionTrustDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SuggestionTrustClient) DeleteOne(_m *SuggestionTrust) *SuggestionTrustDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SuggestionTrustClient) DeleteOneID(id string) *SuggestionTrustDeleteOne {
	builder := c.Delete().Where(suggestiontrust.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SuggestionTrustDeleteOne{builder}
}

// Query returns a query builder for SuggestionTrust.
func (c *SuggestionTrustClient) Query() *SuggestionTrustQuery {
	return &SuggestionTrustQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSuggestionTrust},
		inters: c.Interceptors(),
	}
}

// Get returns a SuggestionTrust entity by its id.
func (c *SuggestionTrustClient) Get(ctx context.Context, id string) (*SuggestionTrust, error) {
	return c.Query().Where(suggestiontrust.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SuggestionTrustClient) GetX(ctx context.Context, id string) *SuggestionTrust {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SuggestionTrustClient) Hooks() []Hook {
	return c.hooks.SuggestionTrust
}

// Interceptors returns the client interceptors.
func (c *SuggestionTrustClient) Interceptors() []Interceptor {
	return c.inters.SuggestionTrust
}

func (c *SuggestionTrustClient) mutate(ctx context.Context, m *SuggestionTrustMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SuggestionTrustCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SuggestionTrustUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SuggestionTrustUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SuggestionTrustDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SuggestionTrust mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, BusinessRule, Community, DomainRelation, Entity,
		EntityCommunityMembership, EntityRelationship, GraphGeneration,
		InformationDomain, InformationObject, MetadataSuggestion, RuleExecution,
		SuggestionTrust []ent.Hook
	}
	inters struct {
		AuditLog, BusinessRule, Community, DomainRelation, Entity,
		EntityCommunityMembership, EntityRelationship, GraphGeneration,
		InformationDomain, InformationObject, MetadataSuggestion, RuleExecution,
		SuggestionTrust []ent.Interceptor
	}
)
