package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, "", cfg.DBURL)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
	assert.Equal(t, 4, cfg.MaxOpenConns)
}

func TestEnvDefaults_MatchConfigDefaults(t *testing.T) {
	// Struct tag defaults must be literals, so keep them in sync with the constants.
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultMaxOpenConns, cfg.MaxOpenConns)
	assert.Equal(t, DefaultCORSAllowedOrigin, cfg.CORSAllowedOrigins)
	assert.Equal(t, DefaultStatesFile, cfg.StatesFile)
	assert.Equal(t, DefaultSeriesFile, cfg.SeriesFile)
	assert.Equal(t, DefaultElementsFile, cfg.ElementsFile)
	assert.Equal(t, DefaultCompoundsFile, cfg.CompoundsFile)
	assert.Equal(t, DefaultCompositionsFile, cfg.CompositionsFile)
}

func TestLoadFromEnv_OverrideValues(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_URL", "postgres://u:p@localhost/periodic")
	t.Setenv("SOURCE_DIR", "/import")
	t.Setenv("ELEMENTS_FILE", "elementos.csv")
	t.Setenv("API_KEYS", "k1, k2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("LOG_FORMAT", "JSON")

	env, err := LoadFromEnv()
	require.NoError(t, err)
	cfg := env.Normalize().ToAppConfig()

	assert.Equal(t, 9090, cfg.Port())
	assert.Equal(t, "postgres://u:p@localhost/periodic", cfg.DBURL())
	assert.Equal(t, "/import", cfg.SourceDir())
	assert.Equal(t, "/import/elementos.csv", cfg.SourcePath(cfg.SourceFiles().Elements))
	assert.Equal(t, []string{"k1", "k2"}, cfg.APIKeys())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
}

func TestLoadFromEnvWithPrefix(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PERIODIC_DATA_DIR", "/prefixed")

	cfg, err := LoadFromEnvWithPrefix("PERIODIC")
	require.NoError(t, err)
	assert.Equal(t, "/prefixed", cfg.DataDir)
}

func TestLoadFromEnv_InvalidPort(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "not-a-port")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestParseLogFormat(t *testing.T) {
	assert.Equal(t, LogFormatJSON, parseLogFormat("json"))
	assert.Equal(t, LogFormatJSON, parseLogFormat("JSON"))
	assert.Equal(t, LogFormatPretty, parseLogFormat("pretty"))
	assert.Equal(t, LogFormatPretty, parseLogFormat("anything"))
}

func TestLoadDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DATA_DIR=/from/dotenv\nLOG_LEVEL=DEBUG\nAPI_KEYS=key1,key2\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	clearEnvVars(t)

	require.NoError(t, LoadDotEnv(envFile))
	assert.Equal(t, "/from/dotenv", os.Getenv("DATA_DIR"))
	assert.Equal(t, "DEBUG", os.Getenv("LOG_LEVEL"))
	assert.Equal(t, "key1,key2", os.Getenv("API_KEYS"))
}

func TestLoadDotEnv_NonExistent(t *testing.T) {
	clearEnvVars(t)
	assert.NoError(t, LoadDotEnv("/nonexistent/.env"))
}

func TestLoadConfig(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DATA_DIR=/config/data\nLOG_LEVEL=WARN\nCOMPOUNDS_FILE=compuestos.csv\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	clearEnvVars(t)

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/config/data", cfg.DataDir())
	assert.Equal(t, "/config/data/data", cfg.SourceDir())
	assert.Equal(t, "WARN", cfg.LogLevel())
	assert.Equal(t, "compuestos.csv", cfg.SourceFiles().Compounds)
}

// clearEnvVars unsets all config-related environment variables and restores
// them when the test finishes.
func clearEnvVars(t *testing.T) {
	t.Helper()

	vars := []string{
		"HOST",
		"PORT",
		"DATA_DIR",
		"DB_URL",
		"SOURCE_DIR",
		"STATES_FILE",
		"SERIES_FILE",
		"ELEMENTS_FILE",
		"COMPOUNDS_FILE",
		"COMPOSITIONS_FILE",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"API_KEYS",
		"CORS_ALLOWED_ORIGINS",
		"DB_MAX_OPEN_CONNS",
		"PERIODIC_DATA_DIR",
	}

	for _, v := range vars {
		// Setenv registers the restore; Unsetenv then clears it for the test.
		t.Setenv(v, "")
		_ = os.Unsetenv(v)
	}
}
