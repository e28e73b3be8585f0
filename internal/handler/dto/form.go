// Package dto defines request payload shapes for the HTTP API.
package dto

import (
	"encoding/json"

	"github.com/formbox/formbox/internal/model"
)

// SignupRequest is the payload for POST /api/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateFormRequest is the payload for POST /api/forms. Fields is a
// pointer so a missing field list can be told apart from an empty one.
type CreateFormRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Fields      *[]model.Field `json:"fields"`
}

// Spec converts the request into the service-level form spec. A nil
// Fields pointer stays nil so the service can reject it.
func (r *CreateFormRequest) Spec() model.FormSpec {
	spec := model.FormSpec{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Fields != nil {
		spec.Fields = *r.Fields
	}
	return spec
}

// SubmitResponseRequest is the payload for POST
// /api/forms/{formID}/responses. Responses stays raw so an absent
// member can be told apart from an explicit null.
type SubmitResponseRequest struct {
	Responses json.RawMessage `json:"responses"`
}

// Payload returns the decoded responses member for the service to
// validate. An absent member behaves as an empty submission; a present
// member is decoded as-is, so an explicit null or any non-object value
// reaches the service unmasked and is rejected there.
func (r *SubmitResponseRequest) Payload() (any, error) {
	if len(r.Responses) == 0 {
		return map[string]any{}, nil
	}
	var value any
	if err := json.Unmarshal(r.Responses, &value); err != nil {
		return nil, err
	}
	return value, nil
}
