package handler

import "net/http"

// Healthz handles GET /healthz. The service holds all state in-process,
// so liveness is the whole story.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
