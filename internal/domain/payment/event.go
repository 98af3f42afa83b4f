package payment

import (
	"strings"
	"time"
)

type EventType string

const (
	EventCheckoutSessionCompleted EventType = "checkout.session.completed"
	EventPaymentIntentSucceeded   EventType = "payment_intent.succeeded"
	EventPaymentIntentFailed      EventType = "payment_intent.payment_failed"
)

// Event is a verified payment provider notification. Only the part relevant to
// its Type is populated.
type Event struct {
	ID              string           `json:"id"`
	Type            EventType        `json:"type"`
	Created         time.Time        `json:"created"`
	CheckoutSession *CheckoutSession `json:"checkout_session,omitempty"`
	PaymentIntent   *PaymentIntent   `json:"payment_intent,omitempty"`
}

type CheckoutSession struct {
	ID            string `json:"id"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Size          string `json:"size,omitempty"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency,omitempty"`
}

type PaymentIntent struct {
	ID             string `json:"id"`
	FailureMessage string `json:"failure_message,omitempty"`
}

// OrderReference is the human-facing suffix of a session id: last 8 characters, upper-cased.
// It is cosmetic and never used for lookups.
func OrderReference(sessionID string) string {
	const refLen = 8
	r := []rune(sessionID)
	if len(r) > refLen {
		r = r[len(r)-refLen:]
	}
	return strings.ToUpper(string(r))
}
