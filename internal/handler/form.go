package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formbox/formbox/internal/auth"
	"github.com/formbox/formbox/internal/handler/dto"
	"github.com/formbox/formbox/internal/service"
)

// FormHandler handles form and response endpoints.
type FormHandler struct {
	svc    *service.FormService
	logger *slog.Logger
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(svc *service.FormService, logger *slog.Logger) *FormHandler {
	return &FormHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/forms. Gated: the access gate has already
// resolved the caller, who becomes the form's owner.
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "API key required", "Authentication required")
		return
	}

	var req dto.CreateFormRequest
	if !decodeJSONObject(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request", "Request must contain JSON data")
		return
	}

	form, err := h.svc.CreateForm(r.Context(), caller.Email, req.Spec())
	if err != nil {
		var specErr *service.FormSpecError
		if errors.As(err, &specErr) {
			writeError(w, http.StatusBadRequest, "Form creation failed", specErr.Reason)
			return
		}
		h.logger.Error("form creation failed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID(r)),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
		return
	}

	h.logger.Info("form created",
		slog.String("form_id", form.ID),
		slog.String("owner", caller.Email),
	)

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Form created successfully",
		"form":    form,
	})
}

// Get handles GET /api/forms/{formID}. Public: returns the anonymous
// projection used for form display.
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formID")

	form, err := h.svc.GetForm(r.Context(), formID)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			writeError(w, http.StatusNotFound, "Form not found", "No form found with ID: "+formID)
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"form": form.Public(),
	})
}

// List handles GET /api/forms. Gated: returns the caller's forms in
// creation order, full projection.
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "API key required", "Authentication required")
		return
	}

	forms := h.svc.ListUserForms(r.Context(), caller.Email)

	writeJSON(w, http.StatusOK, map[string]any{
		"forms": forms,
		"count": len(forms),
	})
}

// SubmitResponse handles POST /api/forms/{formID}/responses. Public:
// anyone with the form id may submit.
func (h *FormHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formID")

	var req dto.SubmitResponseRequest
	if !decodeJSONObject(r, &req) {
		writeError(w, http.StatusBadRequest, "Invalid request", "Request must contain JSON data")
		return
	}

	payload, err := req.Payload()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "Request must contain JSON data")
		return
	}

	resp, err := h.svc.SubmitResponse(r.Context(), formID, payload)
	if err != nil {
		h.writeSubmitError(w, formID, err, r)
		return
	}

	h.logger.Info("response submitted",
		slog.String("form_id", formID),
		slog.String("response_id", resp.ID),
	)

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Response submitted successfully",
		"form_id":  formID,
		"response": resp,
	})
}

func (h *FormHandler) writeSubmitError(w http.ResponseWriter, formID string, err error, r *http.Request) {
	var missingErr *service.MissingFieldError
	switch {
	case errors.Is(err, service.ErrFormNotFound):
		writeError(w, http.StatusNotFound, "Form not found", "No form found with ID: "+formID)
	case errors.Is(err, service.ErrInvalidResponseFormat):
		writeError(w, http.StatusBadRequest, "Invalid response format", "Responses must be provided as an object")
	case errors.As(err, &missingErr):
		writeError(w, http.StatusBadRequest, "Missing required field", `Field "`+missingErr.Field+`" is required`)
	default:
		h.logger.Error("response submission failed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID(r)),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
	}
}

// ListResponses handles GET /api/forms/{formID}/responses. Gated and
// owner-only.
func (h *FormHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	caller := auth.CallerFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "API key required", "Authentication required")
		return
	}

	formID := chi.URLParam(r, "formID")

	responses, err := h.svc.GetResponses(r.Context(), formID, caller.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormNotFound):
			writeError(w, http.StatusNotFound, "Form not found", "No form found with ID: "+formID)
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "Access denied", "You can only view responses for your own forms")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
		}
		return
	}

	// The form exists; fetch it again only for its title.
	form, err := h.svc.GetForm(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Form not found", "No form found with ID: "+formID)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"form_id":    formID,
		"form_title": form.Title,
		"responses":  responses,
		"count":      len(responses),
	})
}
