package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helixml/periodic"
	"github.com/helixml/periodic/internal/config"
	"github.com/helixml/periodic/internal/log"
	"github.com/prometheus/client_golang/prometheus"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	envFile   string
	dbURL     string
	sourceDir string
	logLevel  string
}

// loadConfig loads configuration from the .env file and environment
// variables, then applies flag overrides.
func (g *globals) loadConfig() (config.AppConfig, error) {
	cfg, err := config.LoadConfig(g.envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	var opts []config.AppConfigOption
	if g.dbURL != "" {
		opts = append(opts, config.WithDBURL(g.dbURL))
	}
	if g.sourceDir != "" {
		opts = append(opts, config.WithSourceDir(g.sourceDir))
	}
	if g.logLevel != "" {
		opts = append(opts, config.WithLogLevel(g.logLevel))
	}
	return cfg.Apply(opts...), nil
}

// open builds a Client from configuration. reg may be nil.
func (g *globals) open(ctx context.Context, reg prometheus.Registerer, extra ...config.AppConfigOption) (*periodic.Client, config.AppConfig, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, config.AppConfig{}, err
	}
	cfg = cfg.Apply(extra...)

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, cfg, fmt.Errorf("create data directory: %w", err)
	}

	logger := log.Configure(cfg).Slog()
	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	logger.LogAttrs(ctx, slog.LevelDebug, "configuration", attrs...)

	client, err := periodic.New(
		periodic.WithDatabaseURL(cfg.DBURL()),
		periodic.WithSourceDir(cfg.SourceDir()),
		periodic.WithSourceFiles(cfg.SourceFiles()),
		periodic.WithLogger(logger),
		periodic.WithMaxOpenConns(cfg.MaxOpenConns()),
		periodic.WithMetricsRegisterer(reg),
	)
	if err != nil {
		return nil, cfg, fmt.Errorf("create client: %w", err)
	}
	return client, cfg, nil
}

func closeClient(client *periodic.Client) {
	if err := client.Close(); err != nil {
		client.Logger().Error("failed to close client", slog.Any("error", err))
	}
}
