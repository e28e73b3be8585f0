// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/formbox/formbox/internal/middleware"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already written; nothing left to do on encode failure.
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSONObject decodes the request body into dst and reports
// whether it was a non-empty JSON object. Empty bodies, non-object
// bodies and the empty object {} are all rejected up front, before any
// field-level validation runs.
func decodeJSONObject(r *http.Request, dst any) bool {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || len(raw) == 0 {
		return false
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return false
	}
	return json.Unmarshal(buf, dst) == nil
}

// writeError writes the standard error envelope: a short error label
// plus a human-readable message.
func writeError(w http.ResponseWriter, status int, errLabel, message string) {
	writeJSON(w, status, map[string]string{
		"error":   errLabel,
		"message": message,
	})
}

// requestID returns the correlation id injected by the middleware.
func requestID(r *http.Request) string {
	return middleware.GetRequestID(r.Context())
}

// NotFound handles 404 responses for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found", "The requested resource does not exist")
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "The method is not allowed for this resource")
}
