package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for InvocationsTotal.
const (
	OutcomeCreated        = "created"
	OutcomeIgnored        = "ignored"
	OutcomeTrackerError   = "tracker_error"
	OutcomeDecodeError    = "decode_error"
	OutcomeSecretError    = "secret_error"
	OutcomeTransportError = "transport_error"
	OutcomeInternalError  = "internal_error"
)

var (
	InvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "jira_webhook_invocations_total", Help: "Webhook invocations by outcome"},
		[]string{"outcome"},
	)
	TrackerResponsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "jira_webhook_tracker_responses_total", Help: "Issue tracker responses by status code"},
		[]string{"code"},
	)
)

func init() {
	prometheus.MustRegister(InvocationsTotal, TrackerResponsesTotal)
}
