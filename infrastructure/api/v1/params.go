// Package v1 provides the version 1 HTTP routes for the dataset.
package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/infrastructure/api/jsonapi"
	"github.com/helixml/periodic/infrastructure/api/middleware"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

func pathID(req *http.Request) (int64, error) {
	return parseInt("id", chi.URLParam(req, "id"))
}

func parseInt(name, raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, middleware.NewBadRequest(fmt.Sprintf("%s must be an integer", name), err)
	}
	return n, nil
}

func decodeBody(w http.ResponseWriter, req *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return middleware.NewBadRequest("invalid request body", fmt.Errorf("%w: %w", dataset.ErrInvalidArgument, err))
	}
	return nil
}

func writeOne(w http.ResponseWriter, status int, r *jsonapi.Resource) {
	middleware.WriteJSON(w, status, jsonapi.NewSingleResponse(r))
}

func writeMany(w http.ResponseWriter, rs []*jsonapi.Resource) {
	doc := jsonapi.NewListResponse(rs)
	doc.Meta = &jsonapi.Meta{"total": len(rs)}
	middleware.WriteJSON(w, http.StatusOK, doc)
}
