// Package periodic loads and maintains a relational dataset of chemical
// elements, their series and physical states, chemical compounds, and the
// composition of each compound.
//
// Basic usage:
//
//	client, err := periodic.New(
//	    periodic.WithSQLite("periodic.db"),
//	    periodic.WithSourceDir("./data"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create the tables and load every kind in dependency order
//	if _, err := client.Schema.EnsureAll(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	results, err := client.LoadAll(ctx)
//
//	// Query
//	metals, err := client.Query.SearchElementsByName(ctx, "ium")
package periodic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/helixml/periodic/application/service"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/infrastructure/persistence"
	"github.com/helixml/periodic/infrastructure/source"
	"github.com/helixml/periodic/internal/database"
)

// connMaxLifetime bounds how long a pooled connection is reused.
const connMaxLifetime = 30 * time.Minute

// Client is the main entry point for the periodic library.
//
// Access operations via struct fields:
//
//	client.Schema.EnsureAll(ctx)
//	client.Query.ListElements(ctx)
//	client.Mutation.RenameState(ctx, 3, "Gas")
//
// A Client is meant for a single operator and is not safe for concurrent use.
type Client struct {
	Schema   *service.Schema
	Loader   *service.Loader
	Query    *service.Query
	Mutation *service.Mutation
	Metrics  *service.LoadMetrics

	db          database.Database
	logger      *slog.Logger
	sourceDir   string
	sourceFiles SourceFiles
	closed      atomic.Bool
}

// New opens the configured database and wires the services. Existing tables
// are checked against the models; missing tables are left for Schema to create.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := context.Background()
	db, err := database.NewDatabaseWithLogger(ctx, cfg.dbURL, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.ConfigurePool(cfg.maxOpenConns, cfg.maxOpenConns, connMaxLifetime); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("configure pool: %w", err), errClose)
	}

	if err := persistence.ValidateSchema(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("validate schema: %w", err), errClose)
	}

	metrics, err := service.NewLoadMetrics(cfg.registerer)
	if err != nil {
		errClose := db.Close()
		return nil, errors.Join(err, errClose)
	}

	uow := persistence.NewUnitOfWork(db)
	client := &Client{
		Schema:      service.NewSchema(uow, persistence.DropFailureReason, logger),
		Loader:      service.NewLoader(uow, service.NewResolver(logger), metrics, logger),
		Query:       service.NewQuery(uow, logger),
		Mutation:    service.NewMutation(uow, logger),
		Metrics:     metrics,
		db:          db,
		logger:      logger,
		sourceDir:   cfg.sourceDir,
		sourceFiles: cfg.sourceFiles,
	}

	logger.Info("periodic client ready",
		slog.String("source_dir", cfg.sourceDir),
		slog.Bool("postgres", db.IsPostgres()),
	)
	return client, nil
}

// SourcePath returns the configured source file for kind.
func (c *Client) SourcePath(kind dataset.Kind) string {
	name := c.sourceFiles.For(kind)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.sourceDir, name)
}

// LoadKind loads kind from its configured source file.
func (c *Client) LoadKind(ctx context.Context, kind dataset.Kind) (service.LoadResult, error) {
	if c.sourceFiles.For(kind) == "" {
		return service.LoadResult{}, fmt.Errorf("%w: unknown kind %q", dataset.ErrInvalidArgument, kind)
	}
	return c.LoadFile(ctx, kind, c.SourcePath(kind))
}

// LoadFile loads kind from the CSV file at path.
func (c *Client) LoadFile(ctx context.Context, kind dataset.Kind, path string) (service.LoadResult, error) {
	if c.closed.Load() {
		return service.LoadResult{}, ErrClientClosed
	}

	src, err := source.Open(path)
	if err != nil {
		return service.LoadResult{}, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			c.logger.Error("failed to close source", slog.String("path", path), slog.Any("error", err))
		}
	}()

	c.logger.InfoContext(ctx, "loading source file", slog.String("kind", kind.String()), slog.String("path", path))
	return c.Loader.Load(ctx, kind, src)
}

// LoadAll loads every kind from its configured source file in dependency
// order. It stops at the first source that cannot be read.
func (c *Client) LoadAll(ctx context.Context) ([]service.LoadResult, error) {
	results := make([]service.LoadResult, 0, len(dataset.Kinds()))
	for _, kind := range dataset.Kinds() {
		result, err := c.LoadKind(ctx, kind)
		if err != nil {
			return results, fmt.Errorf("load %s: %w", kind, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// Close releases the database. A second call returns ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("periodic client closed")
	return nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}
