package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/periodic"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/infrastructure/api/jsonapi"
	"github.com/helixml/periodic/infrastructure/api/middleware"
)

// SchemaRouter handles table lifecycle and load endpoints.
type SchemaRouter struct {
	client *periodic.Client
	logger *slog.Logger
}

// NewSchemaRouter creates a new SchemaRouter.
func NewSchemaRouter(client *periodic.Client) *SchemaRouter {
	return &SchemaRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for /schema.
func (r *SchemaRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", r.Create)
	router.Delete("/", r.Drop)

	return router
}

// LoadRoutes returns the chi router for /loads.
func (r *SchemaRouter) LoadRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/{kind}", r.Load)

	return router
}

// Create handles POST /api/v1/schema.
//
//	@Summary		Create tables
//	@Description	Create every missing table in dependency order
//	@Tags			schema
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	jsonapi.Document
//	@Failure		401	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Security		APIKeyAuth
//	@Router			/schema [post]
func (r *SchemaRouter) Create(w http.ResponseWriter, req *http.Request) {
	outcomes, err := r.client.Schema.EnsureAll(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(outcomes, jsonapi.TableResource))
}

// Drop handles DELETE /api/v1/schema. Tables that could not be dropped are
// reported in the body with their reason; the request itself succeeds.
//
//	@Summary		Drop tables
//	@Description	Drop every table in teardown order, reporting refused drops per table
//	@Tags			schema
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	jsonapi.Document
//	@Failure		401	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Security		APIKeyAuth
//	@Router			/schema [delete]
func (r *SchemaRouter) Drop(w http.ResponseWriter, req *http.Request) {
	outcomes := r.client.Schema.DropAll(req.Context())
	writeMany(w, jsonapi.Resources(outcomes, jsonapi.TableResource))
}

// Load handles POST /api/v1/loads/{kind} using the configured source file.
//
//	@Summary		Load a kind
//	@Description	Load the configured source file for one kind
//	@Tags			loads
//	@Accept			json
//	@Produce		json
//	@Param			kind	path	string	true	"Kind: states, series, elements, compounds or compositions"
//	@Success		201	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		401	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Security		APIKeyAuth
//	@Router			/loads/{kind} [post]
func (r *SchemaRouter) Load(w http.ResponseWriter, req *http.Request) {
	kind, err := dataset.ParseKind(chi.URLParam(req, "kind"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	result, err := r.client.LoadKind(req.Context(), kind)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeOne(w, http.StatusCreated, jsonapi.LoadResource(result))
}
