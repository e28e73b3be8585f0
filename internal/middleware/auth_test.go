package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/formbox/formbox/internal/auth"
	"github.com/formbox/formbox/internal/metrics"
	"github.com/formbox/formbox/internal/model"
	"github.com/formbox/formbox/internal/store"
)

// stubResolver resolves exactly one key to one user.
type stubResolver struct {
	key  string
	user *model.User
}

func (s *stubResolver) ResolveByAPIKey(ctx context.Context, key string) (*model.User, error) {
	if key == s.key {
		return s.user, nil
	}
	return nil, store.ErrUserNotFound
}

func testGate(recorder metrics.Recorder) func(http.Handler) http.Handler {
	return Auth(AuthConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Resolver: &stubResolver{
			key:  "fb_valid",
			user: &model.User{Email: "a@b.com", APIKey: "fb_valid"},
		},
		Metrics: recorder,
	})
}

// echoCaller responds with the authenticated caller's email.
func echoCaller(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(auth.CallerEmailFromContext(r.Context())))
}

func TestAuth(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantError  string
		wantBody   string
	}{
		{
			name:       "no key",
			wantStatus: http.StatusUnauthorized,
			wantError:  "API key required",
		},
		{
			name:       "invalid key in header",
			header:     "fb_bogus",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid API key",
		},
		{
			name:       "valid key in header",
			header:     "fb_valid",
			wantStatus: http.StatusOK,
			wantBody:   "a@b.com",
		},
		{
			name:       "valid key in query fallback",
			query:      "fb_valid",
			wantStatus: http.StatusOK,
			wantBody:   "a@b.com",
		},
		{
			name:       "header wins over query",
			header:     "fb_bogus",
			query:      "fb_valid",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid API key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gate := testGate(metrics.NewInMemory())
			handler := gate(http.HandlerFunc(echoCaller))

			target := "/api/forms"
			if tc.query != "" {
				target += "?api_key=" + tc.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tc.header != "" {
				req.Header.Set(APIKeyHeader, tc.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}

			if tc.wantError != "" {
				var body map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("expected JSON error body, got %v", err)
				}
				if body["error"] != tc.wantError {
					t.Errorf("expected error %q, got %q", tc.wantError, body["error"])
				}
			}

			if tc.wantBody != "" && !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Errorf("expected body to contain %q, got %q", tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuth_RecordsFailures(t *testing.T) {
	recorder := metrics.NewInMemory()
	gate := testGate(recorder)
	handler := gate(http.HandlerFunc(echoCaller))

	req := httptest.NewRequest(http.MethodGet, "/api/forms", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	req = httptest.NewRequest(http.MethodGet, "/api/forms", nil)
	req.Header.Set(APIKeyHeader, "fb_bogus")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := recorder.Snapshot().AuthFailures; got != 2 {
		t.Errorf("expected 2 recorded auth failures, got %d", got)
	}
}
