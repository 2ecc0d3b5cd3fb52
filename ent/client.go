// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Tnecniv1/Calcul-Pixel/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/Tnecniv1/Calcul-Pixel/ent/badgeunlock"
	"github.com/Tnecniv1/Calcul-Pixel/ent/entrainement"
	"github.com/Tnecniv1/Calcul-Pixel/ent/message"
	"github.com/Tnecniv1/Calcul-Pixel/ent/observation"
	"github.com/Tnecniv1/Calcul-Pixel/ent/trialstate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BadgeUnlock is the client for interacting with the BadgeUnlock builders.
	BadgeUnlock *BadgeUnlockClient
	// Entrainement is the client for interacting with the Entrainement builders.
	Entrainement *EntrainementClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Observation is the client for interacting with the Observation builders.
	Observation *ObservationClient
	// TrialState is the client for interacting with the TrialState builders.
	TrialState *TrialStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BadgeUnlock = NewBadgeUnlockClient(c.config)
	c.Entrainement = NewEntrainementClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Observation = NewObservationClient(c.config)
	c.TrialState = NewTrialStateClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		BadgeUnlock:  NewBadgeUnlockClient(cfg),
		Entrainement: NewEntrainementClient(cfg),
		Message:      NewMessageClient(cfg),
		Observation:  NewObservationClient(cfg),
		TrialState:   NewTrialStateClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		BadgeUnlock:  NewBadgeUnlockClient(cfg),
		Entrainement: NewEntrainementClient(cfg),
		Message:      NewMessageClient(cfg),
		Observation:  NewObservationClient(cfg),
		TrialState:   NewTrialStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BadgeUnlock.
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
	c.BadgeUnlock.Use(hooks...)
	c.Entrainement.Use(hooks...)
	c.Message.Use(hooks...)
	c.Observation.Use(hooks...)
	c.TrialState.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BadgeUnlock.Intercept(interceptors...)
	c.Entrainement.Intercept(interceptors...)
	c.Message.Intercept(interceptors...)
	c.Observation.Intercept(interceptors...)
	c.TrialState.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BadgeUnlockMutation:
		return c.BadgeUnlock.mutate(ctx, m)
	case *EntrainementMutation:
		return c.Entrainement.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *ObservationMutation:
		return c.Observation.mutate(ctx, m)
	case *TrialStateMutation:
		return c.TrialState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BadgeUnlockClient is a client for the BadgeUnlock schema.
type BadgeUnlockClient struct {
	config
}

// NewBadgeUnlockClient returns a client for the BadgeUnlock from the given config.
func NewBadgeUnlockClient(c config) *BadgeUnlockClient {
	return &BadgeUnlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badgeunlock.Hooks(f(g(h())))`.
func (c *BadgeUnlockClient) Use(hooks ...Hook) {
	c.hooks.BadgeUnlock = append(c.hooks.BadgeUnlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badgeunlock.Intercept(f(g(h())))`.
func (c *BadgeUnlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.BadgeUnlock = append(c.inters.BadgeUnlock, interceptors...)
}

// Create returns a builder for creating a BadgeUnlock entity.
func (c *BadgeUnlockClient) Create() *BadgeUnlockCreate {
	mutation := newBadgeUnlockMutation(c.config, OpCreate)
	return &BadgeUnlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BadgeUnlock entities.
func (c *BadgeUnlockClient) CreateBulk(builders ...*BadgeUnlockCreate) *BadgeUnlockCreateBulk {
	return &BadgeUnlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeUnlockClient) MapCreateBulk(slice any, setFunc func(*BadgeUnlockCreate, int)) *BadgeUnlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeUnlockCreateBulk{err: fmt.Errorf("calling to BadgeUnlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeUnlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeUnlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BadgeUnlock.
func (c *BadgeUnlockClient) Update() *BadgeUnlockUpdate {
	mutation := newBadgeUnlockMutation(c.config, OpUpdate)
	return &BadgeUnlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeUnlockClient) UpdateOne(_m *BadgeUnlock) *BadgeUnlockUpdateOne {
	mutation := newBadgeUnlockMutation(c.config, OpUpdateOne, withBadgeUnlock(_m))
	return &BadgeUnlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeUnlockClient) UpdateOneID(id int) *BadgeUnlockUpdateOne {
	mutation := newBadgeUnlockMutation(c.config, OpUpdateOne, withBadgeUnlockID(id))
	return &BadgeUnlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BadgeUnlock.
func (c *BadgeUnlockClient) Delete() *BadgeUnlockDelete {
	mutation := newBadgeUnlockMutation(c.config, OpDelete)
	return &BadgeUnlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeUnlockClient) DeleteOne(_m *BadgeUnlock) *BadgeUnlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeUnlockClient) DeleteOneID(id int) *BadgeUnlockDeleteOne {
	builder := c.Delete().Where(badgeunlock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeUnlockDeleteOne{builder}
}

// Query returns a query builder for BadgeUnlock.
func (c *BadgeUnlockClient) Query() *BadgeUnlockQuery {
	return &BadgeUnlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadgeUnlock},
		inters: c.Interceptors(),
	}
}

// Get returns a BadgeUnlock entity by its id.
func (c *BadgeUnlockClient) Get(ctx context.Context, id int) (*BadgeUnlock, error) {
	return c.Query().Where(badgeunlock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeUnlockClient) GetX(ctx context.Context, id int) *BadgeUnlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BadgeUnlockClient) Hooks() []Hook {
	return c.hooks.BadgeUnlock
}

// Interceptors returns the client interceptors.
func (c *BadgeUnlockClient) Interceptors() []Interceptor {
	return c.inters.BadgeUnlock
}

func (c *BadgeUnlockClient) mutate(ctx context.Context, m *BadgeUnlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeUnlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeUnlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeUnlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeUnlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BadgeUnlock mutation op: %q", m.Op())
	}
}

// EntrainementClient is a client for the Entrainement schema.
type EntrainementClient struct {
	config
}

// NewEntrainementClient returns a client for the Entrainement from the given config.
func NewEntrainementClient(c config) *EntrainementClient {
	return &EntrainementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entrainement.Hooks(f(g(h())))`.
func (c *EntrainementClient) Use(hooks ...Hook) {
	c.hooks.Entrainement = append(c.hooks.Entrainement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entrainement.Intercept(f(g(h())))`.
func (c *EntrainementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entrainement = append(c.inters.Entrainement, interceptors...)
}

// Create returns a builder for creating a Entrainement entity.
func (c *EntrainementClient) Create() *EntrainementCreate {
	mutation := newEntrainementMutation(c.config, OpCreate)
	return &EntrainementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entrainement entities.
func (c *EntrainementClient) CreateBulk(builders ...*EntrainementCreate) *EntrainementCreateBulk {
	return &EntrainementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntrainementClient) MapCreateBulk(slice any, setFunc func(*EntrainementCreate, int)) *EntrainementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntrainementCreateBulk{err: fmt.Errorf("calling to EntrainementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntrainementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntrainementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entrainement.
func (c *EntrainementClient) Update() *EntrainementUpdate {
	mutation := newEntrainementMutation(c.config, OpUpdate)
	return &EntrainementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntrainementClient) UpdateOne(_m *Entrainement) *EntrainementUpdateOne {
	mutation := newEntrainementMutation(c.config, OpUpdateOne, withEntrainement(_m))
	return &EntrainementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntrainementClient) UpdateOneID(id int) *EntrainementUpdateOne {
	mutation := newEntrainementMutation(c.config, OpUpdateOne, withEntrainementID(id))
	return &EntrainementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entrainement.
func (c *EntrainementClient) Delete() *EntrainementDelete {
	mutation := newEntrainementMutation(c.config, OpDelete)
	return &EntrainementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntrainementClient) DeleteOne(_m *Entrainement) *EntrainementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntrainementClient) DeleteOneID(id int) *EntrainementDeleteOne {
	builder := c.Delete().Where(entrainement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntrainementDeleteOne{builder}
}

// Query returns a query builder for Entrainement.
func (c *EntrainementClient) Query() *EntrainementQuery {
	return &EntrainementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntrainement},
		inters: c.Interceptors(),
	}
}

// Get returns a Entrainement entity by its id.
func (c *EntrainementClient) Get(ctx context.Context, id int) (*Entrainement, error) {
	return c.Query().Where(entrainement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntrainementClient) GetX(ctx context.Context, id int) *Entrainement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntrainementClient) Hooks() []Hook {
	return c.hooks.Entrainement
}

// Interceptors returns the client interceptors.
func (c *EntrainementClient) Interceptors() []Interceptor {
	return c.inters.Entrainement
}

func (c *EntrainementClient) mutate(ctx context.Context, m *EntrainementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntrainementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntrainementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntrainementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntrainementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entrainement mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// ObservationClient is a client for the Observation schema.
type ObservationClient struct {
	config
}

// NewObservationClient returns a client for the Observation from the given config.
func NewObservationClient(c config) *ObservationClient {
	return &ObservationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `observation.Hooks(f(g(h())))`.
func (c *ObservationClient) Use(hooks ...Hook) {
	c.hooks.Observation = append(c.hooks.Observation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `observation.Intercept(f(g(h())))`.
func (c *ObservationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Observation = append(c.inters.Observation, interceptors...)
}

// Create returns a builder for creating a Observation entity.
func (c *ObservationClient) Create() *ObservationCreate {
	mutation := newObservationMutation(c.config, OpCreate)
	return &ObservationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Observation entities.
func (c *ObservationClient) CreateBulk(builders ...*ObservationCreate) *ObservationCreateBulk {
	return &ObservationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ObservationClient) MapCreateBulk(slice any, setFunc func(*ObservationCreate, int)) *ObservationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ObservationCreateBulk{err: fmt.Errorf("calling to ObservationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ObservationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ObservationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Observation.
func (c *ObservationClient) Update() *ObservationUpdate {
	mutation := newObservationMutation(c.config, OpUpdate)
	return &ObservationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ObservationClient) UpdateOne(_m *Observation) *ObservationUpdateOne {
	mutation := newObservationMutation(c.config, OpUpdateOne, withObservation(_m))
	return &ObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ObservationClient) UpdateOneID(id int) *ObservationUpdateOne {
	mutation := newObservationMutation(c.config, OpUpdateOne, withObservationID(id))
	return &ObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Observation.
func (c *ObservationClient) Delete() *ObservationDelete {
	mutation := newObservationMutation(c.config, OpDelete)
	return &ObservationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ObservationClient) DeleteOne(_m *Observation) *ObservationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ObservationClient) DeleteOneID(id int) *ObservationDeleteOne {
	builder := c.Delete().Where(observation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ObservationDeleteOne{builder}
}

// Query returns a query builder for Observation.
func (c *ObservationClient) Query() *ObservationQuery {
	return &ObservationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeObservation},
		inters: c.Interceptors(),
	}
}

// Get returns a Observation entity by its id.
func (c *ObservationClient) Get(ctx context.Context, id int) (*Observation, error) {
	return c.Query().Where(observation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ObservationClient) GetX(ctx context.Context, id int) *Observation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ObservationClient) Hooks() []Hook {
	return c.hooks.Observation
}

// Interceptors returns the client interceptors.
func (c *ObservationClient) Interceptors() []Interceptor {
	return c.inters.Observation
}

func (c *ObservationClient) mutate(ctx context.Context, m *ObservationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ObservationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ObservationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ObservationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ObservationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Observation mutation op: %q", m.Op())
	}
}

// TrialStateClient is a client for the TrialState schema.
type TrialStateClient struct {
	config
}

// NewTrialStateClient returns a client for the TrialState from the given config.
func NewTrialStateClient(c config) *TrialStateClient {
	return &TrialStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trialstate.Hooks(f(g(h())))`.
func (c *TrialStateClient) Use(hooks ...Hook) {
	c.hooks.TrialState = append(c.hooks.TrialState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trialstate.Intercept(f(g(h())))`.
func (c *TrialStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrialState = append(c.inters.TrialState, interceptors...)
}

// Create returns a builder for creating a TrialState entity.
func (c *TrialStateClient) Create() *TrialStateCreate {
	mutation := newTrialStateMutation(c.config, OpCreate)
	return &TrialStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrialState entities.
func (c *TrialStateClient) CreateBulk(builders ...*TrialStateCreate) *TrialStateCreateBulk {
	return &TrialStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrialStateClient) MapCreateBulk(slice any, setFunc func(*TrialStateCreate, int)) *TrialStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrialStateCreateBulk{err: fmt.Errorf("calling to TrialStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrialStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrialStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrialState.
func (c *TrialStateClient) Update() *TrialStateUpdate {
	mutation := newTrialStateMutation(c.config, OpUpdate)
	return &TrialStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrialStateClient) UpdateOne(_m *TrialState) *TrialStateUpdateOne {
	mutation := newTrialStateMutation(c.config, OpUpdateOne, withTrialState(_m))
	return &TrialStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrialStateClient) UpdateOneID(id int) *TrialStateUpdateOne {
	mutation := newTrialStateMutation(c.config, OpUpdateOne, withTrialStateID(id))
	return &TrialStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrialState.
func (c *TrialStateClient) Delete() *TrialStateDelete {
	mutation := newTrialStateMutation(c.config, OpDelete)
	return &TrialStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrialStateClient) DeleteOne(_m *TrialState) *TrialStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrialStateClient) DeleteOneID(id int) *TrialStateDeleteOne {
	builder := c.Delete().Where(trialstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrialStateDeleteOne{builder}
}

// Query returns a query builder for TrialState.
func (c *TrialStateClient) Query() *TrialStateQuery {
	return &TrialStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrialState},
		inters: c.Interceptors(),
	}
}

// Get returns a TrialState entity by its id.
func (c *TrialStateClient) Get(ctx context.Context, id int) (*TrialState, error) {
	return c.Query().Where(trialstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrialStateClient) GetX(ctx context.Context, id int) *TrialState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrialStateClient) Hooks() []Hook {
	return c.hooks.TrialState
}

// Interceptors returns the client interceptors.
func (c *TrialStateClient) Interceptors() []Interceptor {
	return c.inters.TrialState
}

func (c *TrialStateClient) mutate(ctx context.Context, m *TrialStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrialStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrialStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrialStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrialStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrialState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BadgeUnlock, Entrainement, Message, Observation, TrialState []ent.Hook
	}
	inters struct {
		BadgeUnlock, Entrainement, Message, Observation, TrialState []ent.Interceptor
	}
)
