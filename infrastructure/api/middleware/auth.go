package middleware

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader is the request header holding the API key.
const APIKeyHeader = "X-API-KEY"

// AuthConfig holds the keys accepted for mutating requests.
type AuthConfig struct {
	keys [][]byte
}

// NewAuthConfigWithKeys creates an AuthConfig. With no keys every request
// is allowed.
func NewAuthConfigWithKeys(keys []string) AuthConfig {
	cfg := AuthConfig{keys: make([][]byte, 0, len(keys))}
	for _, k := range keys {
		if k != "" {
			cfg.keys = append(cfg.keys, []byte(k))
		}
	}
	return cfg
}

// Enabled reports whether any key is configured.
func (c AuthConfig) Enabled() bool {
	return len(c.keys) > 0
}

// Valid reports whether key matches a configured key.
func (c AuthConfig) Valid(key string) bool {
	candidate := []byte(key)
	for _, k := range c.keys {
		if subtle.ConstantTimeCompare(candidate, k) == 1 {
			return true
		}
	}
	return false
}

// WriteProtect requires a valid API key on POST, PUT, PATCH and DELETE.
// Safe methods pass through untouched.
func WriteProtect(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled() || safeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if !config.Valid(r.Header.Get(APIKeyHeader)) {
				WriteError(w, r, NewAuthenticationError("missing or invalid API key"), nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
