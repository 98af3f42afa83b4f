package payment

import (
	"context"
	"log/slog"

	"UnrulyHuman/pkg/logger"
	"UnrulyHuman/pkg/metrics"
)

// EventService reacts to verified payment events. It never fails a delivery:
// problems are logged and counted so the provider acknowledgment is unaffected.
type EventService struct {
	mailer    Mailer
	emailFrom string
	logger    *slog.Logger
}

func NewEventService(mailer Mailer, emailFrom string, l *slog.Logger) *EventService {
	return &EventService{mailer: mailer, emailFrom: emailFrom, logger: l}
}

func (s *EventService) HandleEvent(ctx context.Context, event Event) error {
	metrics.WebhookEvents.WithLabelValues(metricType(event.Type)).Inc()

	switch event.Type {
	case EventCheckoutSessionCompleted:
		s.handleCheckoutCompleted(ctx, event)
	case EventPaymentIntentSucceeded:
		s.logger.InfoContext(ctx, "Payment intent succeeded",
			slog.String("event_id", event.ID),
			slog.String("payment_intent_id", paymentIntentID(event)))
	case EventPaymentIntentFailed:
		var msg string
		if event.PaymentIntent != nil {
			msg = event.PaymentIntent.FailureMessage
		}
		s.logger.WarnContext(ctx, "Payment failed",
			slog.String("event_id", event.ID),
			slog.String("payment_intent_id", paymentIntentID(event)),
			slog.String("reason", msg))
	default:
		s.logger.InfoContext(ctx, "Unhandled event type",
			slog.String("event_id", event.ID),
			slog.String("type", string(event.Type)))
	}
	return nil
}

func (s *EventService) handleCheckoutCompleted(ctx context.Context, event Event) {
	session := event.CheckoutSession
	if session == nil {
		s.logger.WarnContext(ctx, "Checkout completed event without session", slog.String("event_id", event.ID))
		return
	}

	s.logger.InfoContext(ctx, "Payment successful",
		slog.String("event_id", event.ID),
		slog.String("session_id", session.ID),
		slog.String("customer_email", session.CustomerEmail),
		slog.String("size", session.Size),
		slog.Int64("amount", session.AmountTotal))

	if session.CustomerEmail == "" {
		s.logger.InfoContext(ctx, "No customer email, confirmation skipped", slog.String("session_id", session.ID))
		return
	}

	email, err := ConfirmationEmail(s.emailFrom, *session)
	if err != nil {
		metrics.ConfirmationEmails.WithLabelValues(metrics.OutcomeFailure).Inc()
		s.logger.ErrorContext(ctx, "Failed to render confirmation email",
			slog.String("session_id", session.ID), logger.Err(err))
		return
	}

	messageID, err := s.mailer.Send(ctx, email)
	if err != nil {
		metrics.ConfirmationEmails.WithLabelValues(metrics.OutcomeFailure).Inc()
		s.logger.ErrorContext(ctx, "Failed to send confirmation email",
			slog.String("session_id", session.ID), logger.Err(err))
		return
	}

	metrics.ConfirmationEmails.WithLabelValues(metrics.OutcomeSuccess).Inc()
	s.logger.InfoContext(ctx, "Confirmation email sent",
		slog.String("session_id", session.ID),
		slog.String("message_id", messageID))
}

func paymentIntentID(event Event) string {
	if event.PaymentIntent == nil {
		return ""
	}
	return event.PaymentIntent.ID
}

// metricType bounds label cardinality: unknown types share one label.
func metricType(t EventType) string {
	switch t {
	case EventCheckoutSessionCompleted, EventPaymentIntentSucceeded, EventPaymentIntentFailed:
		return string(t)
	default:
		return "unhandled"
	}
}
