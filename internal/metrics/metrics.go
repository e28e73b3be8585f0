// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
type Recorder interface {
	IncUserCreated()
	IncFormCreated()
	IncResponseSubmitted()
	IncAuthFailure(reason string) // reason: "missing_key" or "invalid_key"
}
