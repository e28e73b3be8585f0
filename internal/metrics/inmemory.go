package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated       uint64
	FormsCreated       uint64
	ResponsesSubmitted uint64
	AuthFailures       uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersCreated       atomic.Uint64
	formsCreated       atomic.Uint64
	responsesSubmitted atomic.Uint64
	authFailures       atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:       m.usersCreated.Load(),
		FormsCreated:       m.formsCreated.Load(),
		ResponsesSubmitted: m.responsesSubmitted.Load(),
		AuthFailures:       m.authFailures.Load(),
	}
}

// IncUserCreated increments the signup counter.
func (m *InMemoryRecorder) IncUserCreated() {
	m.usersCreated.Add(1)
}

// IncFormCreated increments the form creation counter.
func (m *InMemoryRecorder) IncFormCreated() {
	m.formsCreated.Add(1)
}

// IncResponseSubmitted increments the submission counter.
func (m *InMemoryRecorder) IncResponseSubmitted() {
	m.responsesSubmitted.Add(1)
}

// IncAuthFailure increments the auth failure counter.
func (m *InMemoryRecorder) IncAuthFailure(reason string) {
	m.authFailures.Add(1)
}
