package middleware

import (
	"net/http"
	"sync"
)

// Serialize runs one request at a time. The dataset services are built for
// a single operator, so concurrent requests queue here.
func Serialize() func(http.Handler) http.Handler {
	var mu sync.Mutex
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}
