// Package main is the entry point for the periodic CLI.
//
//	@title						Periodic API
//	@version					1.0
//	@description				Chemical element dataset loader with integrity-checked queries and mutations
//	@host						localhost:8080
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	APIKeyAuth
//	@in							header
//	@name						X-API-KEY
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "periodic",
		Short: "Periodic table dataset loader",
		Long: `periodic loads the chemical element dataset from CSV files into a
relational database and keeps it consistent while it is queried and edited.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  DATA_DIR             Data directory (default: ~/.periodic)
  DB_URL               Database URL (default: sqlite:///{data_dir}/periodic.db)
  SOURCE_DIR           Directory holding the CSV files (default: {data_dir}/data)
  STATES_FILE          (default: states.csv)
  SERIES_FILE          (default: series.csv)
  ELEMENTS_FILE        (default: elements.csv)
  COMPOUNDS_FILE       (default: compounds.csv)
  COMPOSITIONS_FILE    (default: compound_elements.csv)
  LOG_LEVEL            DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT           pretty, json (default: pretty)
  DB_MAX_OPEN_CONNS    Connection pool size (default: 4)`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	flags.StringVar(&g.dbURL, "db-url", "", "Database URL (sqlite:///path or postgres://...)")
	flags.StringVar(&g.sourceDir, "source-dir", "", "Directory holding the source CSV files")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR")

	cmd.AddCommand(menuCmd(g))
	cmd.AddCommand(schemaCmd(g))
	cmd.AddCommand(loadCmd(g))
	cmd.AddCommand(listCmd(g))
	cmd.AddCommand(serveCmd(g))
	cmd.AddCommand(versionCmd())

	return cmd
}
