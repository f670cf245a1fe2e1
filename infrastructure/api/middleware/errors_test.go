package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/infrastructure/api/jsonapi"
)

func TestAPIError(t *testing.T) {
	cause := errors.New("underlying error")

	err := NewAPIError(http.StatusNotFound, "resource not found", nil)
	if err.Error() != "api error 404: resource not found" {
		t.Errorf("Error() = %q", err.Error())
	}

	wrapped := NewAPIError(http.StatusBadRequest, "bad input", cause)
	if wrapped.Error() != "api error 400: bad input: underlying error" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is(wrapped, cause) = false")
	}
	if wrapped.Code() != http.StatusBadRequest || wrapped.Message() != "bad input" {
		t.Errorf("Code() = %d, Message() = %q", wrapped.Code(), wrapped.Message())
	}
}

func TestAuthenticationError(t *testing.T) {
	err := NewAuthenticationError("invalid token")

	if err.Error() != "authentication failed: invalid token" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrAuthentication) {
		t.Error("errors.Is(err, ErrAuthentication) = false")
	}
	var target *AuthenticationError
	if !errors.As(fmt.Errorf("wrap: %w", err), &target) {
		t.Error("errors.As did not find *AuthenticationError")
	}
}

func TestServerError(t *testing.T) {
	err := NewServerError(http.StatusServiceUnavailable, "service unavailable")

	if err.Error() != "server error 503: service unavailable" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrServer) {
		t.Error("errors.Is(err, ErrServer) = false")
	}
	if err.StatusCode() != http.StatusServiceUnavailable {
		t.Errorf("StatusCode() = %d", err.StatusCode())
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("state 9: %w", dataset.ErrNotFound), http.StatusNotFound},
		{"invalid argument", fmt.Errorf("series 11: %w", dataset.ErrInvalidArgument), http.StatusBadRequest},
		{"authentication", NewAuthenticationError("nope"), http.StatusUnauthorized},
		{"api error", NewAPIError(http.StatusConflict, "conflict", nil), http.StatusConflict},
		{"server error", NewServerError(http.StatusServiceUnavailable, "down"), http.StatusServiceUnavailable},
		{"store failure", fmt.Errorf("drop: %w", dataset.ErrStoreFailure), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	WriteError(w, req, errors.New("database password leaked"), nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var doc jsonapi.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Errors) != 1 || doc.Errors[0].Detail != "internal error" {
		t.Errorf("errors = %+v", doc.Errors)
	}
}

func TestWriteError_NotFoundDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	WriteError(w, req, fmt.Errorf("state 9: %w", dataset.ErrNotFound), nil)

	var doc jsonapi.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Errors) != 1 || doc.Errors[0].Status != "404" || doc.Errors[0].Title != "Not Found" {
		t.Errorf("errors = %+v", doc.Errors)
	}
}
