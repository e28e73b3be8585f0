// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/formbox/formbox/internal/metrics"
	"github.com/formbox/formbox/internal/model"
	"github.com/formbox/formbox/internal/store"
)

// Service errors.
var (
	ErrInvalidFormSpec       = errors.New("invalid form spec")
	ErrFormNotFound          = errors.New("form not found")
	ErrInvalidResponseFormat = errors.New("invalid response format")
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrForbidden             = errors.New("forbidden")
)

// FormSpecError reports why a form spec was rejected.
type FormSpecError struct {
	Reason string
}

func (e *FormSpecError) Error() string {
	return "invalid form spec: " + e.Reason
}

// Is makes FormSpecError match ErrInvalidFormSpec with errors.Is.
func (e *FormSpecError) Is(target error) bool {
	return target == ErrInvalidFormSpec
}

// MissingFieldError names the first required field absent from a
// submitted payload, scanning fields in their stored order.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

// Is makes MissingFieldError match ErrMissingRequiredField with
// errors.Is.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// FormService validates and creates forms, and accepts and lists
// responses against them.
type FormService struct {
	forms   *store.FormStore
	metrics metrics.Recorder
}

// NewFormService creates a new FormService.
func NewFormService(forms *store.FormStore, recorder metrics.Recorder) *FormService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &FormService{
		forms:   forms,
		metrics: recorder,
	}
}

// CreateForm validates the spec and stores the form with an empty
// response sequence. Validation happens entirely before any store
// mutation; on any violation a FormSpecError carrying the reason is
// returned.
func (s *FormService) CreateForm(ctx context.Context, ownerEmail string, spec model.FormSpec) (*model.Form, error) {
	if spec.Title == "" {
		return nil, &FormSpecError{Reason: "Form must have a title"}
	}
	if spec.Fields == nil {
		return nil, &FormSpecError{Reason: "Form must have fields as a list"}
	}
	for _, field := range spec.Fields {
		if field.Name == "" {
			return nil, &FormSpecError{Reason: "Field must have 'name' property"}
		}
		if field.Type == "" {
			return nil, &FormSpecError{Reason: "Field must have 'type' property"}
		}
	}

	form := &model.Form{
		ID:          uuid.NewString(),
		OwnerEmail:  ownerEmail,
		Title:       spec.Title,
		Description: spec.Description,
		Fields:      spec.Fields,
		CreatedAt:   time.Now().UTC(),
	}

	s.forms.CreateForm(form)
	s.metrics.IncFormCreated()
	return form, nil
}

// GetForm returns the full projection of the form, or ErrFormNotFound.
// Callers decide whether to expose the public projection.
func (s *FormService) GetForm(ctx context.Context, formID string) (*model.Form, error) {
	form, err := s.forms.GetForm(formID)
	if err != nil {
		if errors.Is(err, store.ErrFormNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// ListUserForms returns all forms owned by the email, in creation
// order.
func (s *FormService) ListUserForms(ctx context.Context, ownerEmail string) []*model.Form {
	return s.forms.ListByOwner(ownerEmail)
}

// SubmitResponse validates the payload against the form's fields and
// appends a new response. The payload is the decoded value of the
// submission's "responses" member: anything other than a string-keyed
// object, including an explicit null, is rejected with
// ErrInvalidResponseFormat, and any required field without a matching
// key yields a MissingFieldError for the first one found.
func (s *FormService) SubmitResponse(ctx context.Context, formID string, payload any) (*model.Response, error) {
	form, err := s.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	data, ok := payload.(map[string]any)
	if !ok {
		return nil, ErrInvalidResponseFormat
	}

	for _, field := range form.Fields {
		if !field.Required {
			continue
		}
		if _, ok := data[field.Name]; !ok {
			return nil, &MissingFieldError{Field: field.Name}
		}
	}

	resp := &model.Response{
		ID:          ulid.Make().String(),
		FormID:      formID,
		Data:        data,
		SubmittedAt: time.Now().UTC(),
	}

	if _, err := s.forms.AppendResponse(formID, resp); err != nil {
		if errors.Is(err, store.ErrFormNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	s.metrics.IncResponseSubmitted()
	return resp, nil
}

// GetResponses returns the form's response sequence in submission
// order. Only the owner may read responses; any other caller gets
// ErrForbidden. Callers must have been authenticated by the access gate
// before reaching this operation.
func (s *FormService) GetResponses(ctx context.Context, formID, callerEmail string) ([]*model.Response, error) {
	form, err := s.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	if form.OwnerEmail != callerEmail {
		return nil, ErrForbidden
	}

	responses, err := s.forms.ListResponses(formID)
	if err != nil {
		if errors.Is(err, store.ErrFormNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return responses, nil
}
