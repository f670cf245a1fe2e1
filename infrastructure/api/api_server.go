// Package api serves the dataset over HTTP.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/helixml/periodic"
	apimiddleware "github.com/helixml/periodic/infrastructure/api/middleware"
	v1 "github.com/helixml/periodic/infrastructure/api/v1"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// requestTimeout bounds every /api/v1 request.
const requestTimeout = 60 * time.Second

// Option configures an APIServer.
type Option func(*APIServer)

// WithCORSOrigins allows cross-origin requests from the given origins.
func WithCORSOrigins(origins []string) Option {
	return func(a *APIServer) {
		a.corsOrigins = origins
	}
}

// WithMetricsGatherer exposes the gatherer on /metrics.
func WithMetricsGatherer(g prometheus.Gatherer) Option {
	return func(a *APIServer) {
		a.gatherer = g
	}
}

// APIServer provides an HTTP API backed by a periodic Client.
type APIServer struct {
	client      *periodic.Client
	apiKeys     []string
	corsOrigins []string
	gatherer    prometheus.Gatherer
	server      *Server
	router      chi.Router
	logger      *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given Client.
// apiKeys configures write-protection: mutating endpoints require a valid
// key in the X-API-KEY header. Read-only endpoints remain open.
func NewAPIServer(client *periodic.Client, apiKeys []string, opts ...Option) *APIServer {
	a := &APIServer{
		client:  client,
		apiKeys: apiKeys,
		logger:  client.Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MountRoutes wires /health, /metrics, /docs and the v1 API onto router.
func (a *APIServer) MountRoutes(router chi.Router) {
	if len(a.corsOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: a.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", apimiddleware.APIKeyHeader, apimiddleware.CorrelationHeader},
			ExposedHeaders: []string{apimiddleware.CorrelationHeader},
			MaxAge:         300,
		}))
	}

	router.Get("/health", a.health)
	if a.gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}))
	}
	router.Mount("/docs", NewDocsRouter("/docs/openapi.json").Routes())

	c := a.client
	schemaRouter := v1.NewSchemaRouter(c)
	statesRouter := v1.NewStatesRouter(c)
	elementsRouter := v1.NewElementsRouter(c)
	compoundsRouter := v1.NewCompoundsRouter(c)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(requestTimeout))
		r.Use(apimiddleware.WriteProtect(apimiddleware.NewAuthConfigWithKeys(a.apiKeys)))
		r.Use(apimiddleware.Serialize())

		r.Mount("/schema", schemaRouter.Routes())
		r.Mount("/loads", schemaRouter.LoadRoutes())
		r.Mount("/states", statesRouter.Routes())
		r.Mount("/series", statesRouter.SeriesRoutes())
		r.Mount("/elements", elementsRouter.Routes())
		r.Mount("/compounds", compoundsRouter.Routes())
		r.Mount("/compositions", compoundsRouter.CompositionRoutes())
	})
}

func (a *APIServer) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// Handler returns the full handler, middleware included, for use with
// custom servers and tests.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		srv := NewServer("", a.logger)
		a.MountRoutes(srv.Router())
		a.router = srv.Router()
	}
	return a.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (a *APIServer) ListenAndServe(ctx context.Context, addr string) error {
	a.server = NewServer(addr, a.logger)
	a.MountRoutes(a.server.Router())
	return a.server.ListenAndServe(ctx)
}

// Serve serves on an existing listener until ctx is cancelled.
func (a *APIServer) Serve(ctx context.Context, ln net.Listener) error {
	a.server = NewServer(ln.Addr().String(), a.logger)
	a.MountRoutes(a.server.Router())
	return a.server.Serve(ctx, ln)
}
