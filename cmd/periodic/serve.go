package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"syscall"

	"github.com/helixml/periodic"
	"github.com/helixml/periodic/infrastructure/api"
	"github.com/helixml/periodic/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Environment variables (in addition to the global ones):
  HOST                  Server host to bind to (default: 0.0.0.0)
  PORT                  Server port to listen on (default: 8080)
  API_KEYS              Comma-separated keys required on mutating requests
  CORS_ALLOWED_ORIGINS  Comma-separated allowed origins (default: *)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides []config.AppConfigOption
			if host != "" {
				overrides = append(overrides, config.WithHost(host))
			}
			if port != 0 {
				overrides = append(overrides, config.WithPort(port))
			}
			return runServe(cmd.Context(), g, overrides)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(ctx context.Context, g *globals, overrides []config.AppConfigOption) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client, cfg, err := g.open(ctx, reg, overrides...)
	if err != nil {
		return err
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", cfg.Addr())
	if err != nil {
		closeClient(client)
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}

	client.Logger().Info("starting periodic", slog.String("version", version), slog.String("addr", ln.Addr().String()))

	server := api.NewAPIServer(client, cfg.APIKeys(),
		api.WithCORSOrigins(cfg.CORSAllowedOrigins()),
		api.WithMetricsGatherer(reg),
	)
	return serve(ctx, server, ln, client)
}

// serve runs server on ln until ctx is cancelled or the server fails, then
// closes client once every in-flight request has drained.
func serve(ctx context.Context, server *api.APIServer, ln net.Listener, client *periodic.Client) error {
	drained := make(chan struct{})

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(drained)
		return server.Serve(ctx, ln)
	})
	group.Go(func() error {
		<-drained
		if err := client.Close(); err != nil {
			return fmt.Errorf("close client: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
