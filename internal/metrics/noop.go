package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncFormCreated is a no-op.
func (n *NoopRecorder) IncFormCreated() {}

// IncResponseSubmitted is a no-op.
func (n *NoopRecorder) IncResponseSubmitted() {}

// IncAuthFailure is a no-op.
func (n *NoopRecorder) IncAuthFailure(reason string) {}
