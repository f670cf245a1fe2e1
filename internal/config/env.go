package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.periodic
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/periodic.db
	DBURL string `envconfig:"DB_URL"`

	// SourceDir is the directory holding the source CSV files.
	// Env: SOURCE_DIR
	// Default: {data_dir}/data
	SourceDir string `envconfig:"SOURCE_DIR"`

	// Env: STATES_FILE (default: states.csv)
	StatesFile string `envconfig:"STATES_FILE" default:"states.csv"`

	// Env: SERIES_FILE (default: series.csv)
	SeriesFile string `envconfig:"SERIES_FILE" default:"series.csv"`

	// Env: ELEMENTS_FILE (default: elements.csv)
	ElementsFile string `envconfig:"ELEMENTS_FILE" default:"elements.csv"`

	// Env: COMPOUNDS_FILE (default: compounds.csv)
	CompoundsFile string `envconfig:"COMPOUNDS_FILE" default:"compounds.csv"`

	// Env: COMPOSITIONS_FILE (default: compound_elements.csv)
	CompositionsFile string `envconfig:"COMPOSITIONS_FILE" default:"compound_elements.csv"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// APIKeys is a comma-separated list of keys accepted on mutating requests.
	// Env: API_KEYS
	APIKeys string `envconfig:"API_KEYS"`

	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// Env: CORS_ALLOWED_ORIGINS (default: *)
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// MaxOpenConns is the database connection pool size.
	// Env: DB_MAX_OPEN_CONNS (default: 4)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"4"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix("")
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "PERIODIC" would require PERIODIC_DATA_DIR instead of DATA_DIR.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Normalize trims whitespace from every free-form value.
func (e EnvConfig) Normalize() EnvConfig {
	e.Host = strings.TrimSpace(e.Host)
	e.DataDir = strings.TrimSpace(e.DataDir)
	e.DBURL = strings.TrimSpace(e.DBURL)
	e.SourceDir = strings.TrimSpace(e.SourceDir)
	e.StatesFile = strings.TrimSpace(e.StatesFile)
	e.SeriesFile = strings.TrimSpace(e.SeriesFile)
	e.ElementsFile = strings.TrimSpace(e.ElementsFile)
	e.CompoundsFile = strings.TrimSpace(e.CompoundsFile)
	e.CompositionsFile = strings.TrimSpace(e.CompositionsFile)
	e.LogLevel = strings.TrimSpace(e.LogLevel)
	e.LogFormat = strings.TrimSpace(e.LogFormat)
	return e
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(e.DBURL))
	}
	if e.SourceDir != "" {
		cfg = applyOption(cfg, WithSourceDir(e.SourceDir))
	}
	cfg = applyOption(cfg, WithSourceFiles(SourceFiles{
		States:       e.StatesFile,
		Series:       e.SeriesFile,
		Elements:     e.ElementsFile,
		Compounds:    e.CompoundsFile,
		Compositions: e.CompositionsFile,
	}))
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.APIKeys != "" {
		cfg = applyOption(cfg, WithAPIKeys(ParseAPIKeys(e.APIKeys)))
	}
	if e.CORSAllowedOrigins != "" {
		cfg = applyOption(cfg, WithCORSAllowedOrigins(ParseList(e.CORSAllowedOrigins)))
	}
	cfg = applyOption(cfg, WithMaxOpenConns(e.MaxOpenConns))

	return cfg
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
