package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/periodic"
	"github.com/helixml/periodic/domain/element"
	"github.com/helixml/periodic/infrastructure/api/jsonapi"
	"github.com/helixml/periodic/infrastructure/api/middleware"
)

// ElementsRouter handles element endpoints.
type ElementsRouter struct {
	client *periodic.Client
	logger *slog.Logger
}

// NewElementsRouter creates a new ElementsRouter.
func NewElementsRouter(client *periodic.Client) *ElementsRouter {
	return &ElementsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for /elements.
func (r *ElementsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Delete("/", r.DeleteByState)
	router.Get("/years", r.Years)
	router.Post("/reassign-series", r.ReassignSeries)
	router.Get("/{id}", r.Get)
	router.Get("/{id}/compositions", r.Compositions)

	return router
}

// ReassignRequest is the body of POST /elements/reassign-series.
type ReassignRequest struct {
	Year     int64 `json:"year"`
	SeriesID int64 `json:"series_id"`
}

// List handles GET /api/v1/elements.
// With ?name= only elements whose name contains the text are returned.
//
//	@Summary		List elements
//	@Description	List elements, optionally filtered by a case-sensitive name substring
//	@Tags			elements
//	@Accept			json
//	@Produce		json
//	@Param			name	query	string	false	"Name substring"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/elements [get]
func (r *ElementsRouter) List(w http.ResponseWriter, req *http.Request) {
	var (
		elements []element.Element
		err      error
	)
	if name := req.URL.Query().Get("name"); name != "" {
		elements, err = r.client.Query.SearchElementsByName(req.Context(), name)
	} else {
		elements, err = r.client.Query.ListElements(req.Context())
	}
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(elements, jsonapi.ElementResource))
}

// Get handles GET /api/v1/elements/{id}.
//
//	@Summary		Get element
//	@Description	Get an element by atomic number
//	@Tags			elements
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"Element ID"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/elements/{id} [get]
func (r *ElementsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	e, err := r.client.Query.FindElement(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeOne(w, http.StatusOK, jsonapi.ElementResource(e))
}

// Compositions handles GET /api/v1/elements/{id}/compositions.
//
//	@Summary		List element compositions
//	@Description	List the composition rows that reference an element
//	@Tags			elements
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"Element ID"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/elements/{id}/compositions [get]
func (r *ElementsRouter) Compositions(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	rows, err := r.client.Query.FindCompositionsByElement(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(rows, jsonapi.CompositionResource))
}

// Years handles GET /api/v1/elements/years.
//
//	@Summary		List discovery years
//	@Description	List the distinct discovery years
//	@Tags			elements
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/elements/years [get]
func (r *ElementsRouter) Years(w http.ResponseWriter, req *http.Request) {
	years, err := r.client.Query.DiscoveryYears(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(years, jsonapi.YearResource))
}

// ReassignSeries handles POST /api/v1/elements/reassign-series.
//
//	@Summary		Reassign series
//	@Description	Move every element discovered in a year to a series
//	@Tags			elements
//	@Accept			json
//	@Produce		json
//	@Param			body	body	ReassignRequest	true	"Year and target series"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		401	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Security		APIKeyAuth
//	@Router			/elements/reassign-series [post]
func (r *ElementsRouter) ReassignSeries(w http.ResponseWriter, req *http.Request) {
	var body ReassignRequest
	if err := decodeBody(w, req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	elements, err := r.client.Mutation.ReassignSeriesByDiscoveryYear(req.Context(), body.Year, body.SeriesID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(elements, jsonapi.ElementResource))
}

// DeleteByState handles DELETE /api/v1/elements?state_id=. The deleted
// elements are returned.
//
//	@Summary		Delete elements by state
//	@Description	Delete every element in a state
//	@Tags			elements
//	@Accept			json
//	@Produce		json
//	@Param			state_id	query	int	true	"State ID"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		401	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Security		APIKeyAuth
//	@Router			/elements [delete]
func (r *ElementsRouter) DeleteByState(w http.ResponseWriter, req *http.Request) {
	raw := req.URL.Query().Get("state_id")
	if raw == "" {
		middleware.WriteError(w, req, middleware.NewBadRequest("state_id is required", nil), r.logger)
		return
	}
	stateID, err := parseInt("state_id", raw)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	deleted, err := r.client.Mutation.DeleteElementsByState(req.Context(), stateID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(deleted, jsonapi.ElementResource))
}
