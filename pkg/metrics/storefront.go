package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

var (
	CheckoutSessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "sessions_total",
			Help:      "Checkout session creation attempts by size and outcome",
		},
		[]string{"size", "outcome"},
	)

	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Payment provider webhook deliveries by event type",
		},
		[]string{"type"},
	)

	WebhookRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "rejected_total",
			Help:      "Webhook deliveries rejected by signature verification",
		},
	)

	ConfirmationEmails = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "email",
			Name:      "confirmations_total",
			Help:      "Order confirmation emails by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(CheckoutSessions, WebhookEvents, WebhookRejected, ConfirmationEmails)
}
