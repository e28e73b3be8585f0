package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/formbox/formbox/internal/handler/dto"
	"github.com/formbox/formbox/internal/service"
)

// UserHandler handles signup requests.
type UserHandler struct {
	svc    *service.CredentialService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.CredentialService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Signup handles POST /api/signup. On success it returns the new
// user's email, API key and creation time; the key is shown only here.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if !decodeJSONObject(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request", "Request must contain JSON data")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}

	// Basic sanity check only; full address validation is out of scope.
	if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		writeError(w, http.StatusBadRequest, "Invalid email format", "Please provide a valid email address")
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			writeError(w, http.StatusConflict, "User creation failed", "User already exists")
			return
		}
		h.logger.Error("signup failed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID(r)),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
		return
	}

	h.logger.Info("user created", slog.String("email", user.Email))

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user,
	})
}
