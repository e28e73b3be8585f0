// Package middleware provides HTTP middleware components.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/formbox/formbox/internal/auth"
	"github.com/formbox/formbox/internal/metrics"
	"github.com/formbox/formbox/internal/model"
)

const (
	// APIKeyHeader carries the bearer token for protected operations.
	APIKeyHeader = "X-API-Key"
	// APIKeyQueryParam is the fallback for clients that cannot set
	// headers. The header wins when both are present.
	APIKeyQueryParam = "api_key"
)

// Resolver maps a presented API key to its owning user.
type Resolver interface {
	ResolveByAPIKey(ctx context.Context, key string) (*model.User, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger   *slog.Logger
	Resolver Resolver
	Metrics  metrics.Recorder
}

// Auth returns the access gate for key-protected routes: it extracts
// the presented API key, resolves the caller through the credential
// service and injects the caller into the request context. Requests
// with no key or an unresolvable key are rejected with 401 before they
// reach the handler.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := extractAPIKey(r)
			if key == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_key"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				recorder.IncAuthFailure("missing_key")
				writeUnauthorized(w, "API key required",
					"Provide API key in X-API-Key header or api_key query parameter")
				return
			}

			user, err := cfg.Resolver.ResolveByAPIKey(r.Context(), key)
			if err != nil {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_key"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				recorder.IncAuthFailure("invalid_key")
				writeUnauthorized(w, "Invalid API key",
					"The provided API key is not valid")
				return
			}

			ctx := auth.ContextWithCaller(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractAPIKey reads the bearer token from the header, falling back to
// the query parameter.
func extractAPIKey(r *http.Request) string {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key
	}
	return r.URL.Query().Get(APIKeyQueryParam)
}

func writeUnauthorized(w http.ResponseWriter, errMsg, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   errMsg,
		"message": detail,
	})
}
