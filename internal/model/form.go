// Package model defines domain entities for the application.
package model

import "time"

// Field describes a single input in a form definition. Type is a
// free-form tag; no closed set is enforced at creation time. Required
// is only consulted when a response is submitted.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

// FormSpec is the user-supplied structure submitted at form creation.
// A nil Fields slice means the caller omitted the field list entirely,
// which is rejected; an empty slice is a valid field-less form.
type FormSpec struct {
	Title       string
	Description string
	Fields      []Field
}

// Form is a stored form definition. ResponseCount always equals the
// length of the form's response sequence.
type Form struct {
	ID            string    `json:"id"`
	OwnerEmail    string    `json:"owner_email"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Fields        []Field   `json:"fields"`
	CreatedAt     time.Time `json:"created_at"`
	ResponseCount int       `json:"response_count"`
}

// PublicForm is the projection shown to anonymous viewers. It carries
// everything needed to render the form but excludes the owner identity
// and the response count.
type PublicForm struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Fields      []Field   `json:"fields"`
	CreatedAt   time.Time `json:"created_at"`
}

// Public returns the anonymous projection of the form.
func (f *Form) Public() PublicForm {
	return PublicForm{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Fields:      f.Fields,
		CreatedAt:   f.CreatedAt,
	}
}
