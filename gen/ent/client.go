// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/scanworks/scanvault/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/extractionattempt"
	"github.com/scanworks/scanvault/gen/ent/facerecord"
	"github.com/scanworks/scanvault/gen/ent/processingfailure"
	"github.com/scanworks/scanvault/gen/ent/searchlog"
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ExtractionAttempt is the client for interacting with the ExtractionAttempt builders.
	ExtractionAttempt *ExtractionAttemptClient
	// FaceRecord is the client for interacting with the FaceRecord builders.
	FaceRecord *FaceRecordClient
	// ProcessingFailure is the client for interacting with the ProcessingFailure builders.
	ProcessingFailure *ProcessingFailureClient
	// SearchLog is the client for interacting with the SearchLog builders.
	SearchLog *SearchLogClient
	// StructuredFields is the client for interacting with the StructuredFields builders.
	StructuredFields *StructuredFieldsClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.ExtractionAttempt = NewExtractionAttemptClient(c.config)
	c.FaceRecord = NewFaceRecordClient(c.config)
	c.ProcessingFailure = NewProcessingFailureClient(c.config)
	c.SearchLog = NewSearchLogClient(c.config)
	c.StructuredFields = NewStructuredFieldsClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Document:          NewDocumentClient(cfg),
		ExtractionAttempt: NewExtractionAttemptClient(cfg),
		FaceRecord:        NewFaceRecordClient(cfg),
		ProcessingFailure: NewProcessingFailureClient(cfg),
		SearchLog:         NewSearchLogClient(cfg),
		StructuredFields:  NewStructuredFieldsClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Document:          NewDocumentClient(cfg),
		ExtractionAttempt: NewExtractionAttemptClient(cfg),
		FaceRecord:        NewFaceRecordClient(cfg),
		ProcessingFailure: NewProcessingFailureClient(cfg),
		SearchLog:         NewSearchLogClient(cfg),
		StructuredFields:  NewStructuredFieldsClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
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
		c.Document, c.ExtractionAttempt, c.FaceRecord, c.ProcessingFailure, c.SearchLog,
		c.StructuredFields,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Document, c.ExtractionAttempt, c.FaceRecord, c.ProcessingFailure, c.SearchLog,
		c.StructuredFields,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtractionAttemptMutation:
		return c.ExtractionAttempt.mutate(ctx, m)
	case *FaceRecordMutation:
		return c.FaceRecord.mutate(ctx, m)
	case *ProcessingFailureMutation:
		return c.ProcessingFailure.mutate(ctx, m)
	case *SearchLogMutation:
		return c.SearchLog.mutate(ctx, m)
	case *StructuredFieldsMutation:
		return c.StructuredFields.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id int) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id int) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id int) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id int) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttempts queries the attempts edge of a Document.
func (c *DocumentClient) QueryAttempts(_m *Document) *ExtractionAttemptQuery {
	query := (&ExtractionAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extractionattempt.Table, extractionattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.AttemptsTable, document.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFaces queries the faces edge of a Document.
func (c *DocumentClient) QueryFaces(_m *Document) *FaceRecordQuery {
	query := (&FaceRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(facerecord.Table, facerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.FacesTable, document.FacesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFailures queries the failures edge of a Document.
func (c *DocumentClient) QueryFailures(_m *Document) *ProcessingFailureQuery {
	query := (&ProcessingFailureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(processingfailure.Table, processingfailure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.FailuresTable, document.FailuresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFields queries the fields edge of a Document.
func (c *DocumentClient) QueryFields(_m *Document) *StructuredFieldsQuery {
	query := (&StructuredFieldsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(structuredfields.Table, structuredfields.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, document.FieldsTable, document.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParent queries the parent edge of a Document.
func (c *DocumentClient) QueryParent(_m *Document) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.ParentTable, document.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRevisions queries the revisions edge of a Document.
func (c *DocumentClient) QueryRevisions(_m *Document) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.RevisionsTable, document.RevisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtractionAttemptClient is a client for the ExtractionAttempt schema.
type ExtractionAttemptClient struct {
	config
}

// NewExtractionAttemptClient returns a client for the ExtractionAttempt from the given config.
func NewExtractionAttemptClient(c config) *ExtractionAttemptClient {
	return &ExtractionAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionattempt.Hooks(f(g(h())))`.
func (c *ExtractionAttemptClient) Use(hooks ...Hook) {
	c.hooks.ExtractionAttempt = append(c.hooks.ExtractionAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionattempt.Intercept(f(g(h())))`.
func (c *ExtractionAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionAttempt = append(c.inters.ExtractionAttempt, interceptors...)
}

// Create returns a builder for creating a ExtractionAttempt entity.
func (c *ExtractionAttemptClient) Create() *ExtractionAttemptCreate {
	mutation := newExtractionAttemptMutation(c.config, OpCreate)
	return &ExtractionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionAttempt entities.
func (c *ExtractionAttemptClient) CreateBulk(builders ...*ExtractionAttemptCreate) *ExtractionAttemptCreateBulk {
	return &ExtractionAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionAttemptClient) MapCreateBulk(slice any, setFunc func(*ExtractionAttemptCreate, int)) *ExtractionAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionAttemptCreateBulk{err: fmt.Errorf("calling to ExtractionAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionAttempt.
func (c *ExtractionAttemptClient) Update() *ExtractionAttemptUpdate {
	mutation := newExtractionAttemptMutation(c.config, OpUpdate)
	return &ExtractionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionAttemptClient) UpdateOne(_m *ExtractionAttempt) *ExtractionAttemptUpdateOne {
	mutation := newExtractionAttemptMutation(c.config, OpUpdateOne, withExtractionAttempt(_m))
	return &ExtractionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionAttemptClient) UpdateOneID(id int) *ExtractionAttemptUpdateOne {
	mutation := newExtractionAttemptMutation(c.config, OpUpdateOne, withExtractionAttemptID(id))
	return &ExtractionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionAttempt.
func (c *ExtractionAttemptClient) Delete() *ExtractionAttemptDelete {
	mutation := newExtractionAttemptMutation(c.config, OpDelete)
	return &ExtractionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionAttemptClient) DeleteOne(_m *ExtractionAttempt) *ExtractionAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionAttemptClient) DeleteOneID(id int) *ExtractionAttemptDeleteOne {
	builder := c.Delete().Where(extractionattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionAttemptDeleteOne{builder}
}

// Query returns a query builder for ExtractionAttempt.
func (c *ExtractionAttemptClient) Query() *ExtractionAttemptQuery {
	return &ExtractionAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionAttempt entity by its id.
func (c *ExtractionAttemptClient) Get(ctx context.Context, id int) (*ExtractionAttempt, error) {
	return c.Query().Where(extractionattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionAttemptClient) GetX(ctx context.Context, id int) *ExtractionAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractionAttempt.
func (c *ExtractionAttemptClient) QueryDocument(_m *ExtractionAttempt) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionattempt.Table, extractionattempt.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionattempt.DocumentTable, extractionattempt.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionAttemptClient) Hooks() []Hook {
	return c.hooks.ExtractionAttempt
}

// Interceptors returns the client interceptors.
func (c *ExtractionAttemptClient) Interceptors() []Interceptor {
	return c.inters.ExtractionAttempt
}

func (c *ExtractionAttemptClient) mutate(ctx context.Context, m *ExtractionAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionAttempt mutation op: %q", m.Op())
	}
}

// FaceRecordClient is a client for the FaceRecord schema.
type FaceRecordClient struct {
	config
}

// NewFaceRecordClient returns a client for the FaceRecord from the given config.
func NewFaceRecordClient(c config) *FaceRecordClient {
	return &FaceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `facerecord.Hooks(f(g(h())))`.
func (c *FaceRecordClient) Use(hooks ...Hook) {
	c.hooks.FaceRecord = append(c.hooks.FaceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `facerecord.Intercept(f(g(h())))`.
func (c *FaceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.FaceRecord = append(c.inters.FaceRecord, interceptors...)
}

// Create returns a builder for creating a FaceRecord entity.
func (c *FaceRecordClient) Create() *FaceRecordCreate {
	mutation := newFaceRecordMutation(c.config, OpCreate)
	return &FaceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FaceRecord entities.
func (c *FaceRecordClient) CreateBulk(builders ...*FaceRecordCreate) *FaceRecordCreateBulk {
	return &FaceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FaceRecordClient) MapCreateBulk(slice any, setFunc func(*FaceRecordCreate, int)) *FaceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FaceRecordCreateBulk{err: fmt.Errorf("calling to FaceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FaceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FaceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FaceRecord.
func (c *FaceRecordClient) Update() *FaceRecordUpdate {
	mutation := newFaceRecordMutation(c.config, OpUpdate)
	return &FaceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FaceRecordClient) UpdateOne(_m *FaceRecord) *FaceRecordUpdateOne {
	mutation := newFaceRecordMutation(c.config, OpUpdateOne, withFaceRecord(_m))
	return &FaceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FaceRecordClient) UpdateOneID(id int) *FaceRecordUpdateOne {
	mutation := newFaceRecordMutation(c.config, OpUpdateOne, withFaceRecordID(id))
	return &FaceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FaceRecord.
func (c *FaceRecordClient) Delete() *FaceRecordDelete {
	mutation := newFaceRecordMutation(c.config, OpDelete)
	return &FaceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FaceRecordClient) DeleteOne(_m *FaceRecord) *FaceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FaceRecordClient) DeleteOneID(id int) *FaceRecordDeleteOne {
	builder := c.Delete().Where(facerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FaceRecordDeleteOne{builder}
}

// Query returns a query builder for FaceRecord.
func (c *FaceRecordClient) Query() *FaceRecordQuery {
	return &FaceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFaceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a FaceRecord entity by its id.
func (c *FaceRecordClient) Get(ctx context.Context, id int) (*FaceRecord, error) {
	return c.Query().Where(facerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FaceRecordClient) GetX(ctx context.Context, id int) *FaceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a FaceRecord.
func (c *FaceRecordClient) QueryDocument(_m *FaceRecord) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facerecord.Table, facerecord.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, facerecord.DocumentTable, facerecord.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FaceRecordClient) Hooks() []Hook {
	return c.hooks.FaceRecord
}

// Interceptors returns the client interceptors.
func (c *FaceRecordClient) Interceptors() []Interceptor {
	return c.inters.FaceRecord
}

func (c *FaceRecordClient) mutate(ctx context.Context, m *FaceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FaceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FaceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FaceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FaceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FaceRecord mutation op: %q", m.Op())
	}
}

// ProcessingFailureClient is a client for the ProcessingFailure schema.
type ProcessingFailureClient struct {
	config
}

// NewProcessingFailureClient returns a client for the ProcessingFailure from the given config.
func NewProcessingFailureClient(c config) *ProcessingFailureClient {
	return &ProcessingFailureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingfailure.Hooks(f(g(h())))`.
func (c *ProcessingFailureClient) Use(hooks ...Hook) {
	c.hooks.ProcessingFailure = append(c.hooks.ProcessingFailure, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingfailure.Intercept(f(g(h())))`.
func (c *ProcessingFailureClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingFailure = append(c.inters.ProcessingFailure, interceptors...)
}

// Create returns a builder for creating a ProcessingFailure entity.
func (c *ProcessingFailureClient) Create() *ProcessingFailureCreate {
	mutation := newProcessingFailureMutation(c.config, OpCreate)
	return &ProcessingFailureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingFailure entities.
func (c *ProcessingFailureClient) CreateBulk(builders ...*ProcessingFailureCreate) *ProcessingFailureCreateBulk {
	return &ProcessingFailureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingFailureClient) MapCreateBulk(slice any, setFunc func(*ProcessingFailureCreate, int)) *ProcessingFailureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingFailureCreateBulk{err: fmt.Errorf("calling to ProcessingFailureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingFailureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingFailureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingFailure.
func (c *ProcessingFailureClient) Update() *ProcessingFailureUpdate {
	mutation := newProcessingFailureMutation(c.config, OpUpdate)
	return &ProcessingFailureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingFailureClient) UpdateOne(_m *ProcessingFailure) *ProcessingFailureUpdateOne {
	mutation := newProcessingFailureMutation(c.config, OpUpdateOne, withProcessingFailure(_m))
	return &ProcessingFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingFailureClient) UpdateOneID(id int) *ProcessingFailureUpdateOne {
	mutation := newProcessingFailureMutation(c.config, OpUpdateOne, withProcessingFailureID(id))
	return &ProcessingFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingFailure.
func (c *ProcessingFailureClient) Delete() *ProcessingFailureDelete {
	mutation := newProcessingFailureMutation(c.config, OpDelete)
	return &ProcessingFailureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingFailureClient) DeleteOne(_m *ProcessingFailure) *ProcessingFailureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingFailureClient) DeleteOneID(id int) *ProcessingFailureDeleteOne {
	builder := c.Delete().Where(processingfailure.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingFailureDeleteOne{builder}
}

// Query returns a query builder for ProcessingFailure.
func (c *ProcessingFailureClient) Query() *ProcessingFailureQuery {
	return &ProcessingFailureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingFailure},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingFailure entity by its id.
func (c *ProcessingFailureClient) Get(ctx context.Context, id int) (*ProcessingFailure, error) {
	return c.Query().Where(processingfailure.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingFailureClient) GetX(ctx context.Context, id int) *ProcessingFailure {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ProcessingFailure.
func (c *ProcessingFailureClient) QueryDocument(_m *ProcessingFailure) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingfailure.Table, processingfailure.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processingfailure.DocumentTable, processingfailure.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingFailureClient) Hooks() []Hook {
	return c.hooks.ProcessingFailure
}

// Interceptors returns the client interceptors.
func (c *ProcessingFailureClient) Interceptors() []Interceptor {
	return c.inters.ProcessingFailure
}

func (c *ProcessingFailureClient) mutate(ctx context.Context, m *ProcessingFailureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingFailureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingFailureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingFailureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingFailureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingFailure mutation op: %q", m.Op())
	}
}

// SearchLogClient is a client for the SearchLog schema.
type SearchLogClient struct {
	config
}

// NewSearchLogClient returns a client for the SearchLog from the given config.
func NewSearchLogClient(c config) *SearchLogClient {
	return &SearchLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `searchlog.Hooks(f(g(h())))`.
func (c *SearchLogClient) Use(hooks ...Hook) {
	c.hooks.SearchLog = append(c.hooks.SearchLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `searchlog.Intercept(f(g(h())))`.
func (c *SearchLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.SearchLog = append(c.inters.SearchLog, interceptors...)
}

// Create returns a builder for creating a SearchLog entity.
func (c *SearchLogClient) Create() *SearchLogCreate {
	mutation := newSearchLogMutation(c.config, OpCreate)
	return &SearchLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SearchLog entities.
func (c *SearchLogClient) CreateBulk(builders ...*SearchLogCreate) *SearchLogCreateBulk {
	return &SearchLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SearchLogClient) MapCreateBulk(slice any, setFunc func(*SearchLogCreate, int)) *SearchLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SearchLogCreateBulk{err: fmt.Errorf("calling to SearchLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SearchLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SearchLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SearchLog.
func (c *SearchLogClient) Update() *SearchLogUpdate {
	mutation := newSearchLogMutation(c.config, OpUpdate)
	return &SearchLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SearchLogClient) UpdateOne(_m *SearchLog) *SearchLogUpdateOne {
	mutation := newSearchLogMutation(c.config, OpUpdateOne, withSearchLog(_m))
	return &SearchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SearchLogClient) UpdateOneID(id int) *SearchLogUpdateOne {
	mutation := newSearchLogMutation(c.config, OpUpdateOne, withSearchLogID(id))
	return &SearchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SearchLog.
func (c *SearchLogClient) Delete() *SearchLogDelete {
	mutation := newSearchLogMutation(c.config, OpDelete)
	return &SearchLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SearchLogClient) DeleteOne(_m *SearchLog) *SearchLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SearchLogClient) DeleteOneID(id int) *SearchLogDeleteOne {
	builder := c.Delete().Where(searchlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SearchLogDeleteOne{builder}
}

// Query returns a query builder for SearchLog.
func (c *SearchLogClient) Query() *SearchLogQuery {
	return &SearchLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSearchLog},
		inters: c.Interceptors(),
	}
}

// Get returns a SearchLog entity by its id.
func (c *SearchLogClient) Get(ctx context.Context, id int) (*SearchLog, error) {
	return c.Query().Where(searchlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SearchLogClient) GetX(ctx context.Context, id int) *SearchLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SearchLogClient) Hooks() []Hook {
	return c.hooks.SearchLog
}

// Interceptors returns the client interceptors.
func (c *SearchLogClient) Interceptors() []Interceptor {
	return c.inters.SearchLog
}

func (c *SearchLogClient) mutate(ctx context.Context, m *SearchLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SearchLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SearchLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SearchLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SearchLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SearchLog mutation op: %q", m.Op())
	}
}

// StructuredFieldsClient is a client for the StructuredFields schema.
type StructuredFieldsClient struct {
	config
}

// NewStructuredFieldsClient returns a client for the StructuredFields from the given config.
func NewStructuredFieldsClient(c config) *StructuredFieldsClient {
	return &StructuredFieldsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `structuredfields.Hooks(f(g(h())))`.
func (c *StructuredFieldsClient) Use(hooks ...Hook) {
	c.hooks.StructuredFields = append(c.hooks.StructuredFields, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `structuredfields.Intercept(f(g(h())))`.
func (c *StructuredFieldsClient) Intercept(interceptors ...Interceptor) {
	c.inters.StructuredFields = append(c.inters.StructuredFields, interceptors...)
}

// Create returns a builder for creating a StructuredFields entity.
func (c *StructuredFieldsClient) Create() *StructuredFieldsCreate {
	mutation := newStructuredFieldsMutation(c.config, OpCreate)
	return &StructuredFieldsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StructuredFields entities.
func (c *StructuredFieldsClient) CreateBulk(builders ...*StructuredFieldsCreate) *StructuredFieldsCreateBulk {
	return &StructuredFieldsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StructuredFieldsClient) MapCreateBulk(slice any, setFunc func(*StructuredFieldsCreate, int)) *StructuredFieldsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StructuredFieldsCreateBulk{err: fmt.Errorf("calling to StructuredFieldsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StructuredFieldsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StructuredFieldsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StructuredFields.
func (c *StructuredFieldsClient) Update() *StructuredFieldsUpdate {
	mutation := newStructuredFieldsMutation(c.config, OpUpdate)
	return &StructuredFieldsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StructuredFieldsClient) UpdateOne(_m *StructuredFields) *StructuredFieldsUpdateOne {
	mutation := newStructuredFieldsMutation(c.config, OpUpdateOne, withStructuredFields(_m))
	return &StructuredFieldsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StructuredFieldsClient) UpdateOneID(id int) *StructuredFieldsUpdateOne {
	mutation := newStructuredFieldsMutation(c.config, OpUpdateOne, withStructuredFieldsID(id))
	return &StructuredFieldsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StructuredFields.
func (c *StructuredFieldsClient) Delete() *StructuredFieldsDelete {
	mutation := newStructuredFieldsMutation(c.config, OpDelete)
	return &StructuredFieldsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StructuredFieldsClient) DeleteOne(_m *StructuredFields) *StructuredFieldsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StructuredFieldsClient) DeleteOneID(id int) *StructuredFieldsDeleteOne {
	builder := c.Delete().Where(structuredfields.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StructuredFieldsDeleteOne{builder}
}

// Query returns a query builder for StructuredFields.
func (c *StructuredFieldsClient) Query() *StructuredFieldsQuery {
	return &StructuredFieldsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStructuredFields},
		inters: c.Interceptors(),
	}
}

// Get returns a StructuredFields entity by its id.
func (c *StructuredFieldsClient) Get(ctx context.Context, id int) (*StructuredFields, error) {
	return c.Query().Where(structuredfields.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StructuredFieldsClient) GetX(ctx context.Context, id int) *StructuredFields {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a StructuredFields.
func (c *StructuredFieldsClient) QueryDocument(_m *StructuredFields) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(structuredfields.Table, structuredfields.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, structuredfields.DocumentTable, structuredfields.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StructuredFieldsClient) Hooks() []Hook {
	return c.hooks.StructuredFields
}

// Interceptors returns the client interceptors.
func (c *StructuredFieldsClient) Interceptors() []Interceptor {
	return c.inters.StructuredFields
}

func (c *StructuredFieldsClient) mutate(ctx context.Context, m *StructuredFieldsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StructuredFieldsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StructuredFieldsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StructuredFieldsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StructuredFieldsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StructuredFields mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, ExtractionAttempt, FaceRecord, ProcessingFailure, SearchLog,
		StructuredFields []ent.Hook
	}
	inters struct {
		Document, ExtractionAttempt, FaceRecord, ProcessingFailure, SearchLog,
		StructuredFields []ent.Interceptor
	}
)
