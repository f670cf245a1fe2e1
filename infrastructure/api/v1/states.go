package v1

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/periodic"
	"github.com/helixml/periodic/infrastructure/api/jsonapi"
	"github.com/helixml/periodic/infrastructure/api/middleware"
)

// StatesRouter handles state and series endpoints.
type StatesRouter struct {
	client *periodic.Client
	logger *slog.Logger
}

// NewStatesRouter creates a new StatesRouter.
func NewStatesRouter(client *periodic.Client) *StatesRouter {
	return &StatesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for /states.
func (r *StatesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{id}", r.Get)
	router.Patch("/{id}", r.Rename)

	return router
}

// SeriesRoutes returns the chi router for /series.
func (r *StatesRouter) SeriesRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.ListSeries)
	router.Get("/{id}", r.GetSeries)

	return router
}

// RenameRequest is the body of PATCH /states/{id}.
type RenameRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/v1/states.
//
//	@Summary		List states
//	@Description	List every state in ascending id order
//	@Tags			states
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/states [get]
func (r *StatesRouter) List(w http.ResponseWriter, req *http.Request) {
	states, err := r.client.Query.ListStates(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(states, jsonapi.StateResource))
}

// Get handles GET /api/v1/states/{id}.
//
//	@Summary		Get state
//	@Description	Get a state by ID
//	@Tags			states
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"State ID"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/states/{id} [get]
func (r *StatesRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	state, err := r.client.Query.FindState(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeOne(w, http.StatusOK, jsonapi.StateResource(state))
}

// Rename handles PATCH /api/v1/states/{id}.
//
//	@Summary		Rename state
//	@Description	Rename an existing state
//	@Tags			states
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"State ID"
//	@Param			body	body	RenameRequest	true	"New name"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		401	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Security		APIKeyAuth
//	@Router			/states/{id} [patch]
func (r *StatesRouter) Rename(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	var body RenameRequest
	if err := decodeBody(w, req, &body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		middleware.WriteError(w, req, middleware.NewBadRequest("name is required", nil), r.logger)
		return
	}

	state, err := r.client.Mutation.RenameState(req.Context(), id, body.Name)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeOne(w, http.StatusOK, jsonapi.StateResource(state))
}

// ListSeries handles GET /api/v1/series.
//
//	@Summary		List series
//	@Description	List every series in ascending id order
//	@Tags			series
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/series [get]
func (r *StatesRouter) ListSeries(w http.ResponseWriter, req *http.Request) {
	series, err := r.client.Query.ListSeries(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeMany(w, jsonapi.Resources(series, jsonapi.SeriesResource))
}

// GetSeries handles GET /api/v1/series/{id}.
//
//	@Summary		Get series
//	@Description	Get a series by ID
//	@Tags			series
//	@Accept			json
//	@Produce		json
//	@Param			id	path	int	true	"Series ID"
//	@Success		200	{object}	jsonapi.Document
//	@Failure		400	{object}	jsonapi.Document
//	@Failure		404	{object}	jsonapi.Document
//	@Failure		500	{object}	jsonapi.Document
//	@Router			/series/{id} [get]
func (r *StatesRouter) GetSeries(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	series, err := r.client.Query.FindSeries(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	writeOne(w, http.StatusOK, jsonapi.SeriesResource(series))
}
