package metrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusRecorder exposes application counters to Prometheus.
type PrometheusRecorder struct {
	usersCreated       prometheus.Counter
	formsCreated       prometheus.Counter
	responsesSubmitted prometheus.Counter
	authFailures       *prometheus.CounterVec
}

// NewPrometheus creates a Recorder registered against reg.
func NewPrometheus(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "formbox_users_created_total",
			Help: "Number of users created via signup.",
		}),
		formsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "formbox_forms_created_total",
			Help: "Number of forms created.",
		}),
		responsesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "formbox_responses_submitted_total",
			Help: "Number of responses submitted.",
		}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "formbox_auth_failures_total",
			Help: "Number of rejected API key authentications by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(r.usersCreated, r.formsCreated, r.responsesSubmitted, r.authFailures)
	return r
}

// IncUserCreated increments the signup counter.
func (r *PrometheusRecorder) IncUserCreated() {
	r.usersCreated.Inc()
}

// IncFormCreated increments the form creation counter.
func (r *PrometheusRecorder) IncFormCreated() {
	r.formsCreated.Inc()
}

// IncResponseSubmitted increments the submission counter.
func (r *PrometheusRecorder) IncResponseSubmitted() {
	r.responsesSubmitted.Inc()
}

// IncAuthFailure increments the auth failure counter for the reason.
func (r *PrometheusRecorder) IncAuthFailure(reason string) {
	r.authFailures.WithLabelValues(reason).Inc()
}
