package api

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed openapi.json
var openapiSpec embed.FS

// specServerURL is the server URL written into openapi.json; it is replaced
// with the caller's host when the document is served.
const specServerURL = `"url": "//localhost:8080/api/v1"`

// SwaggerUIHTML returns the Swagger UI page pointing at specURL.
func SwaggerUIHTML(specURL string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Periodic API Documentation</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" charset="UTF-8"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: "` + specURL + `",
                dom_id: '#swagger-ui',
                deepLinking: true
            });
        };
    </script>
</body>
</html>`
}

// DocsRouter serves the API documentation.
type DocsRouter struct {
	specURL string
}

// NewDocsRouter creates a new DocsRouter.
func NewDocsRouter(specURL string) *DocsRouter {
	return &DocsRouter{specURL: specURL}
}

// Routes returns the chi router for /docs.
func (d *DocsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(SwaggerUIHTML(d.specURL)))
	})
	router.Get("/openapi.json", d.spec)

	return router
}

// spec serves openapi.json with its server URL pointing at the requested host.
func (d *DocsRouter) spec(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(openapiSpec, "openapi.json")
	if err != nil {
		http.Error(w, "spec not found", http.StatusNotFound)
		return
	}

	scheme := "https"
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	} else if r.TLS == nil {
		scheme = "http"
	}
	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = forwarded
	}
	data = bytes.ReplaceAll(data, []byte(specServerURL),
		[]byte(fmt.Sprintf(`"url": "%s://%s/api/v1"`, scheme, host)))

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
