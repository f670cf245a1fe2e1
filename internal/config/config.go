// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/helixml/periodic/domain/dataset"
)

// Default configuration values.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 8080
	DefaultLogLevel          = "INFO"
	DefaultSourceSubdir      = "data"
	DefaultMaxOpenConns      = 4
	DefaultStatesFile        = "states.csv"
	DefaultSeriesFile        = "series.csv"
	DefaultElementsFile      = "elements.csv"
	DefaultCompoundsFile     = "compounds.csv"
	DefaultCompositionsFile  = "compound_elements.csv"
	DefaultCORSAllowedOrigin = "*"
	databaseFile             = "periodic.db"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// SourceFiles names the CSV file that feeds each entity table. Relative
// names are resolved against the source directory.
type SourceFiles struct {
	States       string
	Series       string
	Elements     string
	Compounds    string
	Compositions string
}

// DefaultSourceFiles returns the conventional file names.
func DefaultSourceFiles() SourceFiles {
	return SourceFiles{
		States:       DefaultStatesFile,
		Series:       DefaultSeriesFile,
		Elements:     DefaultElementsFile,
		Compounds:    DefaultCompoundsFile,
		Compositions: DefaultCompositionsFile,
	}
}

// For returns the file name configured for kind, or "" for an unknown kind.
func (f SourceFiles) For(kind dataset.Kind) string {
	switch kind {
	case dataset.KindState:
		return f.States
	case dataset.KindSeries:
		return f.Series
	case dataset.KindElement:
		return f.Elements
	case dataset.KindCompound:
		return f.Compounds
	case dataset.KindComposition:
		return f.Compositions
	}
	return ""
}

// merge returns f with every empty name taken from other.
func (f SourceFiles) merge(other SourceFiles) SourceFiles {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	return SourceFiles{
		States:       pick(f.States, other.States),
		Series:       pick(f.Series, other.Series),
		Elements:     pick(f.Elements, other.Elements),
		Compounds:    pick(f.Compounds, other.Compounds),
		Compositions: pick(f.Compositions, other.Compositions),
	}
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	host               string
	port               int
	dataDir            string
	dbURL              string
	sourceDir          string
	sourceFiles        SourceFiles
	logLevel           string
	logFormat          LogFormat
	apiKeys            []string
	corsAllowedOrigins []string
	maxOpenConns       int
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".periodic"
	}
	return filepath.Join(home, ".periodic")
}

// DefaultSourceDir returns the default source directory for a given data directory.
func DefaultSourceDir(dataDir string) string {
	return filepath.Join(dataDir, DefaultSourceSubdir)
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:               DefaultHost,
		port:               DefaultPort,
		dataDir:            dataDir,
		dbURL:              "sqlite:///" + filepath.Join(dataDir, databaseFile),
		sourceDir:          DefaultSourceDir(dataDir),
		sourceFiles:        DefaultSourceFiles(),
		logLevel:           DefaultLogLevel,
		logFormat:          LogFormatPretty,
		apiKeys:            []string{},
		corsAllowedOrigins: []string{DefaultCORSAllowedOrigin},
		maxOpenConns:       DefaultMaxOpenConns,
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// SourceDir returns the directory holding the source CSV files.
func (c AppConfig) SourceDir() string { return c.sourceDir }

// SourceFiles returns the configured source file names.
func (c AppConfig) SourceFiles() SourceFiles { return c.sourceFiles }

// SourcePath resolves a source file name against the source directory.
// Absolute names are returned unchanged.
func (c AppConfig) SourcePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.sourceDir, name)
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// APIKeys returns the configured API keys.
func (c AppConfig) APIKeys() []string {
	keys := make([]string, len(c.apiKeys))
	copy(keys, c.apiKeys)
	return keys
}

// CORSAllowedOrigins returns the origins allowed to call the HTTP API.
func (c AppConfig) CORSAllowedOrigins() []string {
	origins := make([]string, len(c.corsAllowedOrigins))
	copy(origins, c.corsAllowedOrigins)
	return origins
}

// MaxOpenConns returns the database connection pool size.
func (c AppConfig) MaxOpenConns() int { return c.maxOpenConns }

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory. The database URL and source
// directory follow it while they still hold their defaults.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		if c.dbURL == "" || c.dbURL == "sqlite:///"+filepath.Join(c.dataDir, databaseFile) {
			c.dbURL = "sqlite:///" + filepath.Join(dir, databaseFile)
		}
		if c.sourceDir == "" || c.sourceDir == DefaultSourceDir(c.dataDir) {
			c.sourceDir = DefaultSourceDir(dir)
		}
		c.dataDir = dir
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithSourceDir sets the source directory.
func WithSourceDir(dir string) AppConfigOption {
	return func(c *AppConfig) { c.sourceDir = dir }
}

// WithSourceFiles overrides source file names; empty names keep their
// current value.
func WithSourceFiles(files SourceFiles) AppConfigOption {
	return func(c *AppConfig) { c.sourceFiles = files.merge(c.sourceFiles) }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithAPIKeys sets the API keys.
func WithAPIKeys(keys []string) AppConfigOption {
	return func(c *AppConfig) {
		c.apiKeys = make([]string, len(keys))
		copy(c.apiKeys, keys)
	}
}

// WithCORSAllowedOrigins sets the allowed CORS origins.
func WithCORSAllowedOrigins(origins []string) AppConfigOption {
	return func(c *AppConfig) {
		if len(origins) == 0 {
			return
		}
		c.corsAllowedOrigins = make([]string, len(origins))
		copy(c.corsAllowedOrigins, origins)
	}
}

// WithMaxOpenConns sets the connection pool size.
func WithMaxOpenConns(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.maxOpenConns = n
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// API keys are shown as a count.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("data_dir", c.dataDir),
		slog.String("source_dir", c.sourceDir),
		slog.String("log_level", c.logLevel),
		slog.String("db_url", c.maskedDBURL()),
		slog.Int("api_keys_count", len(c.apiKeys)),
		slog.Int("max_open_conns", c.maxOpenConns),
	}
}

func (c AppConfig) maskedDBURL() string {
	if c.dbURL == "" {
		return "(default)"
	}
	if strings.HasPrefix(c.dbURL, "sqlite:") {
		return c.dbURL
	}
	return "postgres://***@***"
}

// ParseList parses a comma-separated list, dropping blank entries.
func ParseList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// ParseAPIKeys parses a comma-separated string of API keys.
func ParseAPIKeys(s string) []string {
	return ParseList(s)
}
