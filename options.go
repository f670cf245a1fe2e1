package periodic

import (
	"log/slog"

	"github.com/helixml/periodic/internal/config"
	"github.com/prometheus/client_golang/prometheus"
)

// SourceFiles names the CSV file that feeds each entity table.
type SourceFiles = config.SourceFiles

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL        string
	logger       *slog.Logger
	sourceDir    string
	sourceFiles  SourceFiles
	registerer   prometheus.Registerer
	maxOpenConns int
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		sourceDir:    config.DefaultSourceDir(config.DefaultDataDir()),
		sourceFiles:  config.DefaultSourceFiles(),
		maxOpenConns: config.DefaultMaxOpenConns,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite stores the dataset in the SQLite file at path.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres stores the dataset in the PostgreSQL database at dsn.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.dbURL = dsn
	}
}

// WithDatabaseURL sets the database from a sqlite:/// or postgres:// URL.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithSourceDir sets the directory holding the source files.
func WithSourceDir(dir string) Option {
	return func(c *clientConfig) {
		c.sourceDir = dir
	}
}

// WithSourceFiles overrides source file names. Empty names keep their default.
func WithSourceFiles(files SourceFiles) Option {
	return func(c *clientConfig) {
		c.sourceFiles = config.NewAppConfigWithOptions(config.WithSourceFiles(files)).SourceFiles()
	}
}

// WithMetricsRegisterer registers the load counters with reg.
func WithMetricsRegisterer(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithMaxOpenConns caps the database connection pool.
func WithMaxOpenConns(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.maxOpenConns = n
		}
	}
}
