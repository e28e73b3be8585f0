// Package model defines domain entities for the application.
package model

import "time"

// Response is a single submission against a form. Responses are
// immutable once stored and are only removed by a full-store reset.
type Response struct {
	ID          string         `json:"id"`
	FormID      string         `json:"form_id"`
	Data        map[string]any `json:"data"`
	SubmittedAt time.Time      `json:"submitted_at"`
}
