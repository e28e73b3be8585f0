package handler

import (
	"log/slog"
	"net/http"

	"github.com/formbox/formbox/internal/store"
)

// AdminHandler provides the debug endpoints: store statistics and the
// full-store reset. The reset requires no credentials; it exists for
// test isolation and should only be routed in development.
type AdminHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(st *store.Store, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:  st,
		logger: logger,
	}
}

// Stats handles GET /api/debug/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"stats":   h.store.Stats(),
		"message": "System statistics",
	})
}

// Clear handles POST /api/debug/clear. Atomically empties every store.
func (h *AdminHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.ClearAll()

	h.logger.Info("all data cleared", slog.String("request_id", requestID(r)))

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "All data cleared successfully",
	})
}
