// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/openintent-io/openintent/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openintent-io/openintent/ent/agent"
	"github.com/openintent-io/openintent/ent/attachment"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/credential"
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
	"github.com/openintent-io/openintent/ent/lease"
	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/ent/portfoliomember"
	"github.com/openintent-io/openintent/ent/tooldefinition"
	"github.com/openintent-io/openintent/ent/toolgrant"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Attachment is the client for interacting with the Attachment builders.
	Attachment *AttachmentClient
	// CostEntry is the client for interacting with the CostEntry builders.
	CostEntry *CostEntryClient
	// Credential is the client for interacting with the Credential builders.
	Credential *CredentialClient
	// FailureRecord is the client for interacting with the FailureRecord builders.
	FailureRecord *FailureRecordClient
	// Intent is the client for interacting with the Intent builders.
	Intent *IntentClient
	// IntentEvent is the client for interacting with the IntentEvent builders.
	IntentEvent *IntentEventClient
	// Lease is the client for interacting with the Lease builders.
	Lease *LeaseClient
	// Portfolio is the client for interacting with the Portfolio builders.
	Portfolio *PortfolioClient
	// PortfolioMember is the client for interacting with the PortfolioMember builders.
	PortfolioMember *PortfolioMemberClient
	// ToolDefinition is the client for interacting with the ToolDefinition builders.
	ToolDefinition *ToolDefinitionClient
	// ToolGrant is the client for interacting with the ToolGrant builders.
	ToolGrant *ToolGrantClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.Attachment = NewAttachmentClient(c.config)
	c.CostEntry = NewCostEntryClient(c.config)
	c.Credential = NewCredentialClient(c.config)
	c.FailureRecord = NewFailureRecordClient(c.config)
	c.Intent = NewIntentClient(c.config)
	c.IntentEvent = NewIntentEventClient(c.config)
	c.Lease = NewLeaseClient(c.config)
	c.Portfolio = NewPortfolioClient(c.config)
	c.PortfolioMember = NewPortfolioMemberClient(c.config)
	c.ToolDefinition = NewToolDefinitionClient(c.config)
	c.ToolGrant = NewToolGrantClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Agent:           NewAgentClient(cfg),
		Attachment:      NewAttachmentClient(cfg),
		CostEntry:       NewCostEntryClient(cfg),
		Credential:      NewCredentialClient(cfg),
		FailureRecord:   NewFailureRecordClient(cfg),
		Intent:          NewIntentClient(cfg),
		IntentEvent:     NewIntentEventClient(cfg),
		Lease:           NewLeaseClient(cfg),
		Portfolio:       NewPortfolioClient(cfg),
		PortfolioMember: NewPortfolioMemberClient(cfg),
		ToolDefinition:  NewToolDefinitionClient(cfg),
		ToolGrant:       NewToolGrantClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Agent:           NewAgentClient(cfg),
		Attachment:      NewAttachmentClient(cfg),
		CostEntry:       NewCostEntryClient(cfg),
		Credential:      NewCredentialClient(cfg),
		FailureRecord:   NewFailureRecordClient(cfg),
		Intent:          NewIntentClient(cfg),
		IntentEvent:     NewIntentEventClient(cfg),
		Lease:           NewLeaseClient(cfg),
		Portfolio:       NewPortfolioClient(cfg),
		PortfolioMember: NewPortfolioMemberClient(cfg),
		ToolDefinition:  NewToolDefinitionClient(cfg),
		ToolGrant:       NewToolGrantClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.Attachment, c.CostEntry, c.Credential, c.FailureRecord, c.Intent,
		c.IntentEvent, c.Lease, c.Portfolio, c.PortfolioMember, c.ToolDefinition,
		c.ToolGrant,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.Attachment, c.CostEntry, c.Credential, c.FailureRecord, c.Intent,
		c.IntentEvent, c.Lease, c.Portfolio, c.PortfolioMember, c.ToolDefinition,
		c.ToolGrant,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AttachmentMutation:
		return c.Attachment.mutate(ctx, m)
	case *CostEntryMutation:
		return c.CostEntry.mutate(ctx, m)
	case *CredentialMutation:
		return c.Credential.mutate(ctx, m)
	case *FailureRecordMutation:
		return c.FailureRecord.mutate(ctx, m)
	case *IntentMutation:
		return c.Intent.mutate(ctx, m)
	case *IntentEventMutation:
		return c.IntentEvent.mutate(ctx, m)
	case *LeaseMutation:
		return c.Lease.mutate(ctx, m)
	case *PortfolioMutation:
		return c.Portfolio.mutate(ctx, m)
	case *PortfolioMemberMutation:
		return c.PortfolioMember.mutate(ctx, m)
	case *ToolDefinitionMutation:
		return c.ToolDefinition.mutate(ctx, m)
	case *ToolGrantMutation:
		return c.ToolGrant.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AttachmentClient is a client for the Attachment schema.
type AttachmentClient struct {
	config
}

// NewAttachmentClient returns a client for the Attachment from the given config.
func NewAttachmentClient(c config) *AttachmentClient {
	return &AttachmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attachment.Hooks(f(g(h())))`.
func (c *AttachmentClient) Use(hooks ...Hook) {
	c.hooks.Attachment = append(c.hooks.Attachment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attachment.Intercept(f(g(h())))`.
func (c *AttachmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attachment = append(c.inters.Attachment, interceptors...)
}

// Create returns a builder for creating a Attachment entity.
func (c *AttachmentClient) Create() *AttachmentCreate {
	mutation := newAttachmentMutation(c.config, OpCreate)
	return &AttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attachment entities.
func (c *AttachmentClient) CreateBulk(builders ...*AttachmentCreate) *AttachmentCreateBulk {
	return &AttachmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttachmentClient) MapCreateBulk(slice any, setFunc func(*AttachmentCreate, int)) *AttachmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttachmentCreateBulk{err: fmt.Errorf("calling to AttachmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttachmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttachmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attachment.
func (c *AttachmentClient) Update() *AttachmentUpdate {
	mutation := newAttachmentMutation(c.config, OpUpdate)
	return &AttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttachmentClient) UpdateOne(_m *Attachment) *AttachmentUpdateOne {
	mutation := newAttachmentMutation(c.config, OpUpdateOne, withAttachment(_m))
	return &AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttachmentClient) UpdateOneID(id string) *AttachmentUpdateOne {
	mutation := newAttachmentMutation(c.config, OpUpdateOne, withAttachmentID(id))
	return &AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attachment.
func (c *AttachmentClient) Delete() *AttachmentDelete {
	mutation := newAttachmentMutation(c.config, OpDelete)
	return &AttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttachmentClient) DeleteOne(_m *Attachment) *AttachmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttachmentClient) DeleteOneID(id string) *AttachmentDeleteOne {
	builder := c.Delete().Where(attachment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttachmentDeleteOne{builder}
}

// Query returns a query builder for Attachment.
func (c *AttachmentClient) Query() *AttachmentQuery {
	return &AttachmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttachment},
		inters: c.Interceptors(),
	}
}

// Get returns a Attachment entity by its id.
func (c *AttachmentClient) Get(ctx context.Context, id string) (*Attachment, error) {
	return c.Query().Where(attachment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttachmentClient) GetX(ctx context.Context, id string) *Attachment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntent queries the intent edge of a Attachment.
func (c *AttachmentClient) QueryIntent(_m *Attachment) *IntentQuery {
	query := (&IntentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attachment.Table, attachment.FieldID, id),
			sqlgraph.To(intent.Table, intent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attachment.IntentTable, attachment.IntentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttachmentClient) Hooks() []Hook {
	return c.hooks.Attachment
}

// Interceptors returns the client interceptors.
func (c *AttachmentClient) Interceptors() []Interceptor {
	return c.inters.Attachment
}

func (c *AttachmentClient) mutate(ctx context.Context, m *AttachmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attachment mutation op: %q", m.Op())
	}
}

// CostEntryClient is a client for the CostEntry schema.
type CostEntryClient struct {
	config
}

// NewCostEntryClient returns a client for the CostEntry from the given config.
func NewCostEntryClient(c config) *CostEntryClient {
	return &CostEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `costentry.Hooks(f(g(h())))`.
func (c *CostEntryClient) Use(hooks ...Hook) {
	c.hooks.CostEntry = append(c.hooks.CostEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `costentry.Intercept(f(g(h())))`.
func (c *CostEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.CostEntry = append(c.inters.CostEntry, interceptors...)
}

// Create returns a builder for creating a CostEntry entity.
func (c *CostEntryClient) Create() *CostEntryCreate {
	mutation := newCostEntryMutation(c.config, OpCreate)
	return &CostEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CostEntry entities.
func (c *CostEntryClient) CreateBulk(builders ...*CostEntryCreate) *CostEntryCreateBulk {
	return &CostEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CostEntryClient) MapCreateBulk(slice any, setFunc func(*CostEntryCreate, int)) *CostEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CostEntryCreateBulk{err: fmt.Errorf("calling to CostEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CostEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CostEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CostEntry.
func (c *CostEntryClient) Update() *CostEntryUpdate {
	mutation := newCostEntryMutation(c.config, OpUpdate)
	return &CostEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CostEntryClient) UpdateOne(_m *CostEntry) *CostEntryUpdateOne {
	mutation := newCostEntryMutation(c.config, OpUpdateOne, withCostEntry(_m))
	return &CostEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CostEntryClient) UpdateOneID(id int) *CostEntryUpdateOne {
	mutation := newCostEntryMutation(c.config, OpUpdateOne, withCostEntryID(id))
	return &CostEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CostEntry.
func (c *CostEntryClient) Delete() *CostEntryDelete {
	mutation := newCostEntryMutation(c.config, OpDelete)
	return &CostEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CostEntryClient) DeleteOne(_m *CostEntry) *CostEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CostEntryClient) DeleteOneID(id int) *CostEntryDeleteOne {
	builder := c.Delete().Where(costentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CostEntryDeleteOne{builder}
}

// Query returns a query builder for CostEntry.
func (c *CostEntryClient) Query() *CostEntryQuery {
	return &CostEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCostEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a CostEntry entity by its id.
func (c *CostEntryClient) Get(ctx context.Context, id int) (*CostEntry, error) {
	return c.Query().Where(costentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CostEntryClient) GetX(ctx context.Context, id int) *CostEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntent queries the intent edge of a CostEntry.
func (c *CostEntryClient) QueryIntent(_m *CostEntry) *IntentQuery {
	query := (&IntentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(costentry.Table, costentry.FieldID, id),
			sqlgraph.To(intent.Table, intent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, costentry.IntentTable, costentry.IntentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CostEntryClient) Hooks() []Hook {
	return c.hooks.CostEntry
}

// Interceptors returns the client interceptors.
func (c *CostEntryClient) Interceptors() []Interceptor {
	return c.inters.CostEntry
}

func (c *CostEntryClient) mutate(ctx context.Context, m *CostEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CostEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CostEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CostEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CostEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CostEntry mutation op: %q", m.Op())
	}
}

// CredentialClient is a client for the Credential schema.
type CredentialClient struct {
	config
}

// NewCredentialClient returns a client for the Credential from the given config.
func NewCredentialClient(c config) *CredentialClient {
	return &CredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `credential.Hooks(f(g(h())))`.
func (c *CredentialClient) Use(hooks ...Hook) {
	c.hooks.Credential = append(c.hooks.Credential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `credential.Intercept(f(g(h())))`.
func (c *CredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.Credential = append(c.inters.Credential, interceptors...)
}

// Create returns a builder for creating a Credential entity.
func (c *CredentialClient) Create() *CredentialCreate {
	mutation := newCredentialMutation(c.config, OpCreate)
	return &CredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Credential entities.
func (c *CredentialClient) CreateBulk(builders ...*CredentialCreate) *CredentialCreateBulk {
	return &CredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CredentialClient) MapCreateBulk(slice any, setFunc func(*CredentialCreate, int)) *CredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CredentialCreateBulk{err: fmt.Errorf("calling to CredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Credential.
func (c *CredentialClient) Update() *CredentialUpdate {
	mutation := newCredentialMutation(c.config, OpUpdate)
	return &CredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CredentialClient) UpdateOne(_m *Credential) *CredentialUpdateOne {
	mutation := newCredentialMutation(c.config, OpUpdateOne, withCredential(_m))
	return &CredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CredentialClient) UpdateOneID(id string) *CredentialUpdateOne {
	mutation := newCredentialMutation(c.config, OpUpdateOne, withCredentialID(id))
	return &CredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Credential.
func (c *CredentialClient) Delete() *CredentialDelete {
	mutation := newCredentialMutation(c.config, OpDelete)
	return &CredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CredentialClient) DeleteOne(_m *Credential) *CredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CredentialClient) DeleteOneID(id string) *CredentialDeleteOne {
	builder := c.Delete().Where(credential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CredentialDeleteOne{builder}
}

// Query returns a query builder for Credential.
func (c *CredentialClient) Query() *CredentialQuery {
	return &CredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a Credential entity by its id.
func (c *CredentialClient) Get(ctx context.Context, id string) (*Credential, error) {
	return c.Query().Where(credential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CredentialClient) GetX(ctx context.Context, id string) *Credential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CredentialClient) Hooks() []Hook {
	return c.hooks.Credential
}

// Interceptors returns the client interceptors.
func (c *CredentialClient) Interceptors() []Interceptor {
	return c.inters.Credential
}

func (c *CredentialClient) mutate(ctx context.Context, m *CredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Credential mutation op: %q", m.Op())
	}
}

// FailureRecordClient is a client for the FailureRecord schema.
type FailureRecordClient struct {
	config
}

// NewFailureRecordClient returns a client for the FailureRecord from the given config.
func NewFailureRecordClient(c config) *FailureRecordClient {
	return &FailureRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `failurerecord.Hooks(f(g(h())))`.
func (c *FailureRecordClient) Use(hooks ...Hook) {
	c.hooks.FailureRecord = append(c.hooks.FailureRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `failurerecord.Intercept(f(g(h())))`.
func (c *FailureRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.FailureRecord = append(c.inters.FailureRecord, interceptors...)
}

// Create returns a builder for creating a FailureRecord entity.
func (c *FailureRecordClient) Create() *FailureRecordCreate {
	mutation := newFailureRecordMutation(c.config, OpCreate)
	return &FailureRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FailureRecord entities.
func (c *FailureRecordClient) CreateBulk(builders ...*FailureRecordCreate) *FailureRecordCreateBulk {
	return &FailureRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FailureRecordClient) MapCreateBulk(slice any, setFunc func(*FailureRecordCreate, int)) *FailureRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FailureRecordCreateBulk{err: fmt.Errorf("calling to FailureRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FailureRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FailureRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FailureRecord.
func (c *FailureRecordClient) Update() *FailureRecordUpdate {
	mutation := newFailureRecordMutation(c.config, OpUpdate)
	return &FailureRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FailureRecordClient) UpdateOne(_m *FailureRecord) *FailureRecordUpdateOne {
	mutation := newFailureRecordMutation(c.config, OpUpdateOne, withFailureRecord(_m))
	return &FailureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FailureRecordClient) UpdateOneID(id int) *FailureRecordUpdateOne {
	mutation := newFailureRecordMutation(c.config, OpUpdateOne, withFailureRecordID(id))
	return &FailureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FailureRecord.
func (c *FailureRecordClient) Delete() *FailureRecordDelete {
	mutation := newFailureRecordMutation(c.config, OpDelete)
	return &FailureRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FailureRecordClient) DeleteOne(_m *FailureRecord) *FailureRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FailureRecordClient) DeleteOneID(id int) *FailureRecordDeleteOne {
	builder := c.Delete().Where(failurerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FailureRecordDeleteOne{builder}
}

// Query returns a query builder for FailureRecord.
func (c *FailureRecordClient) Query() *FailureRecordQuery {
	return &FailureRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFailureRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a FailureRecord entity by its id.
func (c *FailureRecordClient) Get(ctx context.Context, id int) (*FailureRecord, error) {
	return c.Query().Where(failurerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FailureRecordClient) GetX(ctx context.Context, id int) *FailureRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntent queries the intent edge of a FailureRecord.
func (c *FailureRecordClient) QueryIntent(_m *FailureRecord) *IntentQuery {
	query := (&IntentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(failurerecord.Table, failurerecord.FieldID, id),
			sqlgraph.To(intent.Table, intent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, failurerecord.IntentTable, failurerecord.IntentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FailureRecordClient) Hooks() []Hook {
	return c.hooks.FailureRecord
}

// Interceptors returns the client interceptors.
func (c *FailureRecordClient) Interceptors() []Interceptor {
	return c.inters.FailureRecord
}

func (c *FailureRecordClient) mutate(ctx context.Context, m *FailureRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FailureRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FailureRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FailureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FailureRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FailureRecord mutation op: %q", m.Op())
	}
}

// IntentClient is a client for the Intent schema.
type IntentClient struct {
	config
}

// NewIntentClient returns a client for the Intent from the given config.
func NewIntentClient(c config) *IntentClient {
	return &IntentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `intent.Hooks(f(g(h())))`.
func (c *IntentClient) Use(hooks ...Hook) {
	c.hooks.Intent = append(c.hooks.Intent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `intent.Intercept(f(g(h())))`.
func (c *IntentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Intent = append(c.inters.Intent, interceptors...)
}

// Create returns a builder for creating a Intent entity.
func (c *IntentClient) Create() *IntentCreate {
	mutation := newIntentMutation(c.config, OpCreate)
	return &IntentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Intent entities.
func (c *IntentClient) CreateBulk(builders ...*IntentCreate) *IntentCreateBulk {
	return &IntentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntentClient) MapCreateBulk(slice any, setFunc func(*IntentCreate, int)) *IntentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntentCreateBulk{err: fmt.Errorf("calling to IntentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Intent.
func (c *IntentClient) Update() *IntentUpdate {
	mutation := newIntentMutation(c.config, OpUpdate)
	return &IntentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntentClient) UpdateOne(_m *Intent) *IntentUpdateOne {
	mutation := newIntentMutation(c.config, OpUpdateOne, withIntent(_m))
	return &IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntentClient) UpdateOneID(id string) *IntentUpdateOne {
	mutation := newIntentMutation(c.config, OpUpdateOne, withIntentID(id))
	return &IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Intent.
func (c *IntentClient) Delete() *IntentDelete {
	mutation := newIntentMutation(c.config, OpDelete)
	return &IntentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntentClient) DeleteOne(_m *Intent) *IntentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntentClient) DeleteOneID(id string) *IntentDeleteOne {
	builder := c.Delete().Where(intent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntentDeleteOne{builder}
}

// Query returns a query builder for Intent.
func (c *IntentClient) Query() *IntentQuery {
	return &IntentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntent},
		inters: c.Interceptors(),
	}
}

// Get returns a Intent entity by its id.
func (c *IntentClient) Get(ctx context.Context, id string) (*Intent, error) {
	return c.Query().Where(intent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntentClient) GetX(ctx context.Context, id string) *Intent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a Intent.
func (c *IntentClient) QueryEvents(_m *Intent) *IntentEventQuery {
	query := (&IntentEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, id),
			sqlgraph.To(intentevent.Table, intentevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.EventsTable, intent.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLeases queries the leases edge of a Intent.
func (c *IntentClient) QueryLeases(_m *Intent) *LeaseQuery {
	query := (&LeaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, id),
			sqlgraph.To(lease.Table, lease.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.LeasesTable, intent.LeasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCosts queries the costs edge of a Intent.
func (c *IntentClient) QueryCosts(_m *Intent) *CostEntryQuery {
	query := (&CostEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, id),
			sqlgraph.To(costentry.Table, costentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.CostsTable, intent.CostsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttachments queries the attachments edge of a Intent.
func (c *IntentClient) QueryAttachments(_m *Intent) *AttachmentQuery {
	query := (&AttachmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, id),
			sqlgraph.To(attachment.Table, attachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.AttachmentsTable, intent.AttachmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFailures queries the failures edge of a Intent.
func (c *IntentClient) QueryFailures(_m *Intent) *FailureRecordQuery {
	query := (&FailureRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, id),
			sqlgraph.To(failurerecord.Table, failurerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.FailuresTable, intent.FailuresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMemberships queries the memberships edge of a Intent.
func (c *IntentClient) QueryMemberships(_m *Intent) *PortfolioMemberQuery {
	query := (&PortfolioMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intent.Table, intent.FieldID, id),
			sqlgraph.To(portfoliomember.Table, portfoliomember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, intent.MembershipsTable, intent.MembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IntentClient) Hooks() []Hook {
	return c.hooks.Intent
}

// Interceptors returns the client interceptors.
func (c *IntentClient) Interceptors() []Interceptor {
	return c.inters.Intent
}

func (c *IntentClient) mutate(ctx context.Context, m *IntentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Intent mutation op: %q", m.Op())
	}
}

// IntentEventClient is a client for the IntentEvent schema.
type IntentEventClient struct {
	config
}

// NewIntentEventClient returns a client for the IntentEvent from the given config.
func NewIntentEventClient(c config) *IntentEventClient {
	return &IntentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `intentevent.Hooks(f(g(h())))`.
func (c *IntentEventClient) Use(hooks ...Hook) {
	c.hooks.IntentEvent = append(c.hooks.IntentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `intentevent.Intercept(f(g(h())))`.
func (c *IntentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.IntentEvent = append(c.inters.IntentEvent, interceptors...)
}

// Create returns a builder for creating a IntentEvent entity.
func (c *IntentEventClient) Create() *IntentEventCreate {
	mutation := newIntentEventMutation(c.config, OpCreate)
	return &IntentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IntentEvent entities.
func (c *IntentEventClient) CreateBulk(builders ...*IntentEventCreate) *IntentEventCreateBulk {
	return &IntentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntentEventClient) MapCreateBulk(slice any, setFunc func(*IntentEventCreate, int)) *IntentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntentEventCreateBulk{err: fmt.Errorf("calling to IntentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IntentEvent.
func (c *IntentEventClient) Update() *IntentEventUpdate {
	mutation := newIntentEventMutation(c.config, OpUpdate)
	return &IntentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntentEventClient) UpdateOne(_m *IntentEvent) *IntentEventUpdateOne {
	mutation := newIntentEventMutation(c.config, OpUpdateOne, withIntentEvent(_m))
	return &IntentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntentEventClient) UpdateOneID(id int) *IntentEventUpdateOne {
	mutation := newIntentEventMutation(c.config, OpUpdateOne, withIntentEventID(id))
	return &IntentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IntentEvent.
func (c *IntentEventClient) Delete() *IntentEventDelete {
	mutation := newIntentEventMutation(c.config, OpDelete)
	return &IntentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntentEventClient) DeleteOne(_m *IntentEvent) *IntentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntentEventClient) DeleteOneID(id int) *IntentEventDeleteOne {
	builder := c.Delete().Where(intentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntentEventDeleteOne{builder}
}

// Query returns a query builder for IntentEvent.
func (c *IntentEventClient) Query() *IntentEventQuery {
	return &IntentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a IntentEvent entity by its id.
func (c *IntentEventClient) Get(ctx context.Context, id int) (*IntentEvent, error) {
	return c.Query().Where(intentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntentEventClient) GetX(ctx context.Context, id int) *IntentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntent queries the intent edge of a IntentEvent.
func (c *IntentEventClient) QueryIntent(_m *IntentEvent) *IntentQuery {
	query := (&IntentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(intentevent.Table, intentevent.FieldID, id),
			sqlgraph.To(intent.Table, intent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, intentevent.IntentTable, intentevent.IntentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IntentEventClient) Hooks() []Hook {
	return c.hooks.IntentEvent
}

// Interceptors returns the client interceptors.
func (c *IntentEventClient) Interceptors() []Interceptor {
	return c.inters.IntentEvent
}

func (c *IntentEventClient) mutate(ctx context.Context, m *IntentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IntentEvent mutation op: %q", m.Op())
	}
}

// LeaseClient is a client for the Lease schema.
type LeaseClient struct {
	config
}

// NewLeaseClient returns a client for the Lease from the given config.
func NewLeaseClient(c config) *LeaseClient {
	return &LeaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lease.Hooks(f(g(h())))`.
func (c *LeaseClient) Use(hooks ...Hook) {
	c.hooks.Lease = append(c.hooks.Lease, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lease.Intercept(f(g(h())))`.
func (c *LeaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lease = append(c.inters.Lease, interceptors...)
}

// Create returns a builder for creating a Lease entity.
func (c *LeaseClient) Create() *LeaseCreate {
	mutation := newLeaseMutation(c.config, OpCreate)
	return &LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lease entities.
func (c *LeaseClient) CreateBulk(builders ...*LeaseCreate) *LeaseCreateBulk {
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeaseClient) MapCreateBulk(slice any, setFunc func(*LeaseCreate, int)) *LeaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeaseCreateBulk{err: fmt.Errorf("calling to LeaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lease.
func (c *LeaseClient) Update() *LeaseUpdate {
	mutation := newLeaseMutation(c.config, OpUpdate)
	return &LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeaseClient) UpdateOne(_m *Lease) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLease(_m))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeaseClient) UpdateOneID(id string) *LeaseUpdateOne {
	mutation := newLeaseMutation(c.config, OpUpdateOne, withLeaseID(id))
	return &LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lease.
func (c *LeaseClient) Delete() *LeaseDelete {
	mutation := newLeaseMutation(c.config, OpDelete)
	return &LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeaseClient) DeleteOne(_m *Lease) *LeaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeaseClient) DeleteOneID(id string) *LeaseDeleteOne {
	builder := c.Delete().Where(lease.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeaseDeleteOne{builder}
}

// Query returns a query builder for Lease.
func (c *LeaseClient) Query() *LeaseQuery {
	return &LeaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLease},
		inters: c.Interceptors(),
	}
}

// Get returns a Lease entity by its id.
func (c *LeaseClient) Get(ctx context.Context, id string) (*Lease, error) {
	return c.Query().Where(lease.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeaseClient) GetX(ctx context.Context, id string) *Lease {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryIntent queries the intent edge of a Lease.
func (c *LeaseClient) QueryIntent(_m *Lease) *IntentQuery {
	query := (&IntentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lease.Table, lease.FieldID, id),
			sqlgraph.To(intent.Table, intent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lease.IntentTable, lease.IntentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LeaseClient) Hooks() []Hook {
	return c.hooks.Lease
}

// Interceptors returns the client interceptors.
func (c *LeaseClient) Interceptors() []Interceptor {
	return c.inters.Lease
}

func (c *LeaseClient) mutate(ctx context.Context, m *LeaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lease mutation op: %q", m.Op())
	}
}

// PortfolioClient is a client for the Portfolio schema.
type PortfolioClient struct {
	config
}

// NewPortfolioClient returns a client for the Portfolio from the given config.
func NewPortfolioClient(c config) *PortfolioClient {
	return &PortfolioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `portfolio.Hooks(f(g(h())))`.
func (c *PortfolioClient) Use(hooks ...Hook) {
	c.hooks.Portfolio = append(c.hooks.Portfolio, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `portfolio.Intercept(f(g(h())))`.
func (c *PortfolioClient) Intercept(interceptors ...Interceptor) {
	c.inters.Portfolio = append(c.inters.Portfolio, interceptors...)
}

// Create returns a builder for creating a Portfolio entity.
func (c *PortfolioClient) Create() *PortfolioCreate {
	mutation := newPortfolioMutation(c.config, OpCreate)
	return &PortfolioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Portfolio entities.
func (c *PortfolioClient) CreateBulk(builders ...*PortfolioCreate) *PortfolioCreateBulk {
	return &PortfolioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PortfolioClient) MapCreateBulk(slice any, setFunc func(*PortfolioCreate, int)) *PortfolioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PortfolioCreateBulk{err: fmt.Errorf("calling to PortfolioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PortfolioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PortfolioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Portfolio.
func (c *PortfolioClient) Update() *PortfolioUpdate {
	mutation := newPortfolioMutation(c.config, OpUpdate)
	return &PortfolioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PortfolioClient) UpdateOne(_m *Portfolio) *PortfolioUpdateOne {
	mutation := newPortfolioMutation(c.config, OpUpdateOne, withPortfolio(_m))
	return &PortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PortfolioClient) UpdateOneID(id string) *PortfolioUpdateOne {
	mutation := newPortfolioMutation(c.config, OpUpdateOne, withPortfolioID(id))
	return &PortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Portfolio.
func (c *PortfolioClient) Delete() *PortfolioDelete {
	mutation := newPortfolioMutation(c.config, OpDelete)
	return &PortfolioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PortfolioClient) DeleteOne(_m *Portfolio) *PortfolioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PortfolioClient) DeleteOneID(id string) *PortfolioDeleteOne {
	builder := c.Delete().Where(portfolio.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PortfolioDeleteOne{builder}
}

// Query returns a query builder for Portfolio.
func (c *PortfolioClient) Query() *PortfolioQuery {
	return &PortfolioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePortfolio},
		inters: c.Interceptors(),
	}
}

// Get returns a Portfolio entity by its id.
func (c *PortfolioClient) Get(ctx context.Context, id string) (*Portfolio, error) {
	return c.Query().Where(portfolio.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PortfolioClient) GetX(ctx context.Context, id string) *Portfolio {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMembers queries the members edge of a Portfolio.
func (c *PortfolioClient) QueryMembers(_m *Portfolio) *PortfolioMemberQuery {
	query := (&PortfolioMemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(portfolio.Table, portfolio.FieldID, id),
			sqlgraph.To(portfoliomember.Table, portfoliomember.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, portfolio.MembersTable, portfolio.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PortfolioClient) Hooks() []Hook {
	return c.hooks.Portfolio
}

// Interceptors returns the client interceptors.
func (c *PortfolioClient) Interceptors() []Interceptor {
	return c.inters.Portfolio
}

func (c *PortfolioClient) mutate(ctx context.Context, m *PortfolioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PortfolioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PortfolioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PortfolioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PortfolioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Portfolio mutation op: %q", m.Op())
	}
}

// PortfolioMemberClient is a client for the PortfolioMember schema.
type PortfolioMemberClient struct {
	config
}

// NewPortfolioMemberClient returns a client for the PortfolioMember from the given config.
func NewPortfolioMemberClient(c config) *PortfolioMemberClient {
	return &PortfolioMemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `portfoliomember.Hooks(f(g(h())))`.
func (c *PortfolioMemberClient) Use(hooks ...Hook) {
	c.hooks.PortfolioMember = append(c.hooks.PortfolioMember, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `portfoliomember.Intercept(f(g(h())))`.
func (c *PortfolioMemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.PortfolioMember = append(c.inters.PortfolioMember, interceptors...)
}

// Create returns a builder for creating a PortfolioMember entity.
func (c *PortfolioMemberClient) Create() *PortfolioMemberCreate {
	mutation := newPortfolioMemberMutation(c.config, OpCreate)
	return &PortfolioMemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PortfolioMember entities.
func (c *PortfolioMemberClient) CreateBulk(builders ...*PortfolioMemberCreate) *PortfolioMemberCreateBulk {
	return &PortfolioMemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PortfolioMemberClient) MapCreateBulk(slice any, setFunc func(*PortfolioMemberCreate, int)) *PortfolioMemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PortfolioMemberCreateBulk{err: fmt.Errorf("calling to PortfolioMemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PortfolioMemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PortfolioMemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PortfolioMember.
func (c *PortfolioMemberClient) Update() *PortfolioMemberUpdate {
	mutation := newPortfolioMemberMutation(c.config, OpUpdate)
	return &PortfolioMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PortfolioMemberClient) UpdateOne(_m *PortfolioMember) *PortfolioMemberUpdateOne {
	mutation := newPortfolioMemberMutation(c.config, OpUpdateOne, withPortfolioMember(_m))
	return &PortfolioMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PortfolioMemberClient) UpdateOneID(id int) *PortfolioMemberUpdateOne {
	mutation := newPortfolioMemberMutation(c.config, OpUpdateOne, withPortfolioMemberID(id))
	return &PortfolioMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PortfolioMember.
func (c *PortfolioMemberClient) Delete() *PortfolioMemberDelete {
	mutation := newPortfolioMemberMutation(c.config, OpDelete)
	return &PortfolioMemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PortfolioMemberClient) DeleteOne(_m *PortfolioMember) *PortfolioMemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PortfolioMemberClient) DeleteOneID(id int) *PortfolioMemberDeleteOne {
	builder := c.Delete().Where(portfoliomember.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PortfolioMemberDeleteOne{builder}
}

// Query returns a query builder for PortfolioMember.
func (c *PortfolioMemberClient) Query() *PortfolioMemberQuery {
	return &PortfolioMemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePortfolioMember},
		inters: c.Interceptors(),
	}
}

// Get returns a PortfolioMember entity by its id.
func (c *PortfolioMemberClient) Get(ctx context.Context, id int) (*PortfolioMember, error) {
	return c.Query().Where(portfoliomember.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PortfolioMemberClient) GetX(ctx context.Context, id int) *PortfolioMember {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPortfolio queries the portfolio edge of a PortfolioMember.
func (c *PortfolioMemberClient) QueryPortfolio(_m *PortfolioMember) *PortfolioQuery {
	query := (&PortfolioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(portfoliomember.Table, portfoliomember.FieldID, id),
			sqlgraph.To(portfolio.Table, portfolio.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, portfoliomember.PortfolioTable, portfoliomember.PortfolioColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIntent queries the intent edge of a PortfolioMember.
func (c *PortfolioMemberClient) QueryIntent(_m *PortfolioMember) *IntentQuery {
	query := (&IntentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(portfoliomember.Table, portfoliomember.FieldID, id),
			sqlgraph.To(intent.Table, intent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, portfoliomember.IntentTable, portfoliomember.IntentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PortfolioMemberClient) Hooks() []Hook {
	return c.hooks.PortfolioMember
}

// Interceptors returns the client interceptors.
func (c *PortfolioMemberClient) Interceptors() []Interceptor {
	return c.inters.PortfolioMember
}

func (c *PortfolioMemberClient) mutate(ctx context.Context, m *PortfolioMemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PortfolioMemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PortfolioMemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PortfolioMemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PortfolioMemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PortfolioMember mutation op: %q", m.Op())
	}
}

// ToolDefinitionClient is a client for the ToolDefinition schema.
type ToolDefinitionClient struct {
	config
}

// NewToolDefinitionClient returns a client for the ToolDefinition from the given config.
func NewToolDefinitionClient(c config) *ToolDefinitionClient {
	return &ToolDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tooldefinition.Hooks(f(g(h())))`.
func (c *ToolDefinitionClient) Use(hooks ...Hook) {
	c.hooks.ToolDefinition = append(c.hooks.ToolDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tooldefinition.Intercept(f(g(h())))`.
func (c *ToolDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolDefinition = append(c.inters.ToolDefinition, interceptors...)
}

// Create returns a builder for creating a ToolDefinition entity.
func (c *ToolDefinitionClient) Create() *ToolDefinitionCreate {
	mutation := newToolDefinitionMutation(c.config, OpCreate)
	return &ToolDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolDefinition entities.
func (c *ToolDefinitionClient) CreateBulk(builders ...*ToolDefinitionCreate) *ToolDefinitionCreateBulk {
	return &ToolDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolDefinitionClient) MapCreateBulk(slice any, setFunc func(*ToolDefinitionCreate, int)) *ToolDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolDefinitionCreateBulk{err: fmt.Errorf("calling to ToolDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolDefinition.
func (c *ToolDefinitionClient) Update() *ToolDefinitionUpdate {
	mutation := newToolDefinitionMutation(c.config, OpUpdate)
	return &ToolDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolDefinitionClient) UpdateOne(_m *ToolDefinition) *ToolDefinitionUpdateOne {
	mutation := newToolDefinitionMutation(c.config, OpUpdateOne, withToolDefinition(_m))
	return &ToolDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolDefinitionClient) UpdateOneID(id int) *ToolDefinitionUpdateOne {
	mutation := newToolDefinitionMutation(c.config, OpUpdateOne, withToolDefinitionID(id))
	return &ToolDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolDefinition.
func (c *ToolDefinitionClient) Delete() *ToolDefinitionDelete {
	mutation := newToolDefinitionMutation(c.config, OpDelete)
	return &ToolDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolDefinitionClient) DeleteOne(_m *ToolDefinition) *ToolDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolDefinitionClient) DeleteOneID(id int) *ToolDefinitionDeleteOne {
	builder := c.Delete().Where(tooldefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolDefinitionDeleteOne{builder}
}

// Query returns a query builder for ToolDefinition.
func (c *ToolDefinitionClient) Query() *ToolDefinitionQuery {
	return &ToolDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolDefinition entity by its id.
func (c *ToolDefinitionClient) Get(ctx context.Context, id int) (*ToolDefinition, error) {
	return c.Query().Where(tooldefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolDefinitionClient) GetX(ctx context.Context, id int) *ToolDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolDefinitionClient) Hooks() []Hook {
	return c.hooks.ToolDefinition
}

// Interceptors returns the client interceptors.
func (c *ToolDefinitionClient) Interceptors() []Interceptor {
	return c.inters.ToolDefinition
}

func (c *ToolDefinitionClient) mutate(ctx context.Context, m *ToolDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolDefinition mutation op: %q", m.Op())
	}
}

// ToolGrantClient is a client for the ToolGrant schema.
type ToolGrantClient struct {
	config
}

// NewToolGrantClient returns a client for the ToolGrant from the given config.
func NewToolGrantClient(c config) *ToolGrantClient {
	return &ToolGrantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolgrant.Hooks(f(g(h())))`.
func (c *ToolGrantClient) Use(hooks ...Hook) {
	c.hooks.ToolGrant = append(c.hooks.ToolGrant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolgrant.Intercept(f(g(h())))`.
func (c *ToolGrantClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolGrant = append(c.inters.ToolGrant, interceptors...)
}

// Create returns a builder for creating a ToolGrant entity.
func (c *ToolGrantClient) Create() *ToolGrantCreate {
	mutation := newToolGrantMutation(c.config, OpCreate)
	return &ToolGrantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolGrant entities.
func (c *ToolGrantClient) CreateBulk(builders ...*ToolGrantCreate) *ToolGrantCreateBulk {
	return &ToolGrantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolGrantClient) MapCreateBulk(slice any, setFunc func(*ToolGrantCreate, int)) *ToolGrantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolGrantCreateBulk{err: fmt.Errorf("calling to ToolGrantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolGrantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolGrantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolGrant.
func (c *ToolGrantClient) Update() *ToolGrantUpdate {
	mutation := newToolGrantMutation(c.config, OpUpdate)
	return &ToolGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolGrantClient) UpdateOne(_m *ToolGrant) *ToolGrantUpdateOne {
	mutation := newToolGrantMutation(c.config, OpUpdateOne, withToolGrant(_m))
	return &ToolGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolGrantClient) UpdateOneID(id string) *ToolGrantUpdateOne {
	mutation := newToolGrantMutation(c.config, OpUpdateOne, withToolGrantID(id))
	return &ToolGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolGrant.
func (c *ToolGrantClient) Delete() *ToolGrantDelete {
	mutation := newToolGrantMutation(c.config, OpDelete)
	return &ToolGrantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolGrantClient) DeleteOne(_m *ToolGrant) *ToolGrantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolGrantClient) DeleteOneID(id string) *ToolGrantDeleteOne {
	builder := c.Delete().Where(toolgrant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolGrantDeleteOne{builder}
}

// Query returns a query builder for ToolGrant.
func (c *ToolGrantClient) Query() *ToolGrantQuery {
	return &ToolGrantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolGrant},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolGrant entity by its id.
func (c *ToolGrantClient) Get(ctx context.Context, id string) (*ToolGrant, error) {
	return c.Query().Where(toolgrant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolGrantClient) GetX(ctx context.Context, id string) *ToolGrant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolGrantClient) Hooks() []Hook {
	return c.hooks.ToolGrant
}

// Interceptors returns the client interceptors.
func (c *ToolGrantClient) Interceptors() []Interceptor {
	return c.inters.ToolGrant
}

func (c *ToolGrantClient) mutate(ctx context.Context, m *ToolGrantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolGrantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolGrantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolGrant mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, Attachment, CostEntry, Credential, FailureRecord, Intent, IntentEvent,
		Lease, Portfolio, PortfolioMember, ToolDefinition, ToolGrant []ent.Hook
	}
	inters struct {
		Agent, Attachment, CostEntry, Credential, FailureRecord, Intent, IntentEvent,
		Lease, Portfolio, PortfolioMember, ToolDefinition, ToolGrant []ent.Interceptor
	}
)
