package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/index.html
var docsFS embed.FS

var docsTemplate = template.Must(template.ParseFS(docsFS, "templates/index.html"))

// docsEndpoint describes one API route on the documentation page.
type docsEndpoint struct {
	Method string
	Path   string
	Auth   string
	Doc    string
}

var docsEndpoints = []docsEndpoint{
	{"POST", "/api/signup", "public", "Sign up with email and password; returns your API key."},
	{"POST", "/api/forms", "API key", "Create a form from a title, description and field list."},
	{"GET", "/api/forms", "API key", "List the forms you own."},
	{"GET", "/api/forms/{form_id}", "public", "Fetch a form definition for display."},
	{"POST", "/api/forms/{form_id}/responses", "public", "Submit a response to a form."},
	{"GET", "/api/forms/{form_id}/responses", "API key (owner)", "List all responses submitted to your form."},
	{"GET", "/api/debug/stats", "public", "Store statistics (development only)."},
	{"POST", "/api/debug/clear", "public", "Reset all stores (development only)."},
}

// DocsHandler renders the API documentation page at the root path.
type DocsHandler struct {
	logger *slog.Logger
}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler(logger *slog.Logger) *DocsHandler {
	return &DocsHandler{logger: logger}
}

// Index handles GET /.
func (h *DocsHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := docsTemplate.Execute(w, map[string]any{
		"Endpoints":    docsEndpoints,
		"APIKeyHeader": "X-API-Key",
	}); err != nil {
		h.logger.Error("docs page render failed", slog.String("error", err.Error()))
	}
}
