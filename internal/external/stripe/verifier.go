package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"UnrulyHuman/internal/domain/checkout"
	"UnrulyHuman/internal/domain/payment"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Verifier checks the Stripe-Signature header and converts the payload to a payment.Event.
type Verifier struct {
	secret    string
	tolerance time.Duration
	logger    *slog.Logger
}

func NewVerifier(secret string, l *slog.Logger) *Verifier {
	return &Verifier{secret: secret, tolerance: webhook.DefaultTolerance, logger: l}
}

func (v *Verifier) Enabled() bool {
	return v.secret != ""
}

func (v *Verifier) Verify(payload []byte, signatureHeader string) (payment.Event, error) {
	if !v.Enabled() {
		return payment.Event{}, payment.ErrVerificationUnavailable
	}

	ev, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return payment.Event{}, fmt.Errorf("%w: %w", payment.ErrInvalidSignature, err)
		}
		return payment.Event{}, fmt.Errorf("%w: %w", payment.ErrMalformedEvent, err)
	}

	return v.toDomain(ev), nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

func (v *Verifier) toDomain(ev stripe.Event) payment.Event {
	out := payment.Event{
		ID:      ev.ID,
		Type:    payment.EventType(ev.Type),
		Created: time.Unix(ev.Created, 0).UTC(),
	}
	if ev.Data == nil {
		return out
	}

	switch out.Type {
	case payment.EventCheckoutSessionCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			v.logger.Warn("Undecodable checkout session in event", slog.String("event_id", ev.ID), slog.Any("error", err))
			return out
		}
		cs := &payment.CheckoutSession{
			ID:          s.ID,
			Size:        s.Metadata[checkout.MetadataSizeKey],
			AmountTotal: s.AmountTotal,
			Currency:    string(s.Currency),
		}
		if s.CustomerDetails != nil {
			cs.CustomerEmail = s.CustomerDetails.Email
		}
		out.CheckoutSession = cs
	case payment.EventPaymentIntentSucceeded, payment.EventPaymentIntentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			v.logger.Warn("Undecodable payment intent in event", slog.String("event_id", ev.ID), slog.Any("error", err))
			return out
		}
		intent := &payment.PaymentIntent{ID: pi.ID}
		if pi.LastPaymentError != nil {
			intent.FailureMessage = pi.LastPaymentError.Msg
		}
		out.PaymentIntent = intent
	}

	return out
}
