package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/periodic"
	"github.com/helixml/periodic/domain/compound"
	"github.com/helixml/periodic/infrastructure/api/jsonapi"
	"github.com/helixml/periodic/infrastructure/api/middleware"
)

// CompoundsRouter handles compound and composition endpoints.
type CompoundsRouter struct {
	client *periodic.Client
	logger *slog.Logger
}

// NewCompoundsRouter creates a new CompoundsRouter.
func NewCompoundsRouter(client *periodic.Client) *CompoundsRouter {
	return &CompoundsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for /compounds.
func (r *CompoundsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/formulas", r.Formulas)
	router.Get("/{id}", r.Get)
	router.Delete("/{id}", r.Delete)

	return router
}

// CompositionRoutes returns the chi router for /compositions.
func (r *CompoundsRouter) CompositionRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.ListCompositions)
	router.Get("/{id}", r.GetComposition)

	return router
}

// List handles GET /api/v1/compounds, optionally filtered by ?formula=.
//
//	@Summary		List compounds
//	@Description	List compounds, optionally filtered by exact formula
//	@Tags			compounds
//	@Accept			json
//	@Produce		json
//	@Param			formula	query	string	false	"Formula"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/compounds [get]
func (r *CompoundsRouter) List(w http.ResponseWriter, req *http.Request) {
	var (
		compounds []compound.Compound
		err       error
	)
	if formula := req.URL.Query().Get("formula"); formula != "" {
		compounds, err = r.client.Query.FindCompoundsByFormula(req.Context(), formula)
	} else {
		compounds, err = r.client.Query.ListCompounds(req.Context())
	}
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(compounds, jsonapi.CompoundResource))
}

// Formulas handles GET /api/v1/compounds/formulas.
//
//	@Summary		List formulas
//	@Description	List the distinct compound formulas
//	@Tags			compounds
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/compounds/formulas [get]
func (r *CompoundsRouter) Formulas(w http.ResponseWriter, req *http.Request) {
	formulas, err := r.client.Query.Formulas(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(formulas, jsonapi.FormulaResource))
}

// Get handles GET /api/v1/compounds/{id}.
//
//	@Summary		Get compound
//	@Description	Get a compound by ID
//	@Tags			compounds
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"Compound ID"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/compounds/{id} [get]
func (r *CompoundsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	c, err := r.client.Query.FindCompound(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeOne(w, http.StatusOK, jsonapi.CompoundResource(c))
}

// Delete handles DELETE /api/v1/compounds/{id}. The deleted compound is
// returned.
//
//	@Summary		Delete compound
//	@Description	Delete a compound; its composition rows are kept
//	@Tags			compounds
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"Compound ID"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		401	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Security		APIKeyAuth
//	@Router			/compounds/{id} [delete]
func (r *CompoundsRouter) Delete(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	c, err := r.client.Mutation.DeleteCompound(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeOne(w, http.StatusOK, jsonapi.CompoundResource(c))
}

// ListCompositions handles GET /api/v1/compositions.
//
//	@Summary		List compositions
//	@Description	List every composition row
//	@Tags			compositions
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/compositions [get]
func (r *CompoundsRouter) ListCompositions(w http.ResponseWriter, req *http.Request) {
	rows, err := r.client.Query.ListCompositions(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(rows, jsonapi.CompositionResource))
}

// GetComposition handles GET /api/v1/compositions/{id}.
//
//	@Summary		Get composition
//	@Description	Get a composition row by ID
//	@Tags			compositions
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"Composition ID"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/compositions/{id} [get]
func (r *CompoundsRouter) GetComposition(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	row, err := r.client.Query.FindComposition(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeOne(w, http.StatusOK, jsonapi.CompositionResource(row))
}
