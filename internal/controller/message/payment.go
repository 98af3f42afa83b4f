package message

import (
	"context"
	"log/slog"

	"UnrulyHuman/internal/domain/payment"
	"UnrulyHuman/internal/messaging"
	"UnrulyHuman/pkg/logger"
)

// PaymentEventController handles payment event messages from Kafka.
type PaymentEventController struct {
	logger  *slog.Logger
	service *payment.EventService
}

func NewPaymentEventController(l *slog.Logger, s *payment.EventService) *PaymentEventController {
	return &PaymentEventController{logger: l, service: s}
}

// HandleMessage decodes one envelope and dispatches the event it carries.
func (c *PaymentEventController) HandleMessage(ctx context.Context, key, value []byte) error {
	env, err := messaging.ParseEnvelope(value)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to unmarshal envelope", slog.String("key", string(key)), logger.Err(err))
		return err
	}

	c.logger.DebugContext(ctx, "Processing payment event message",
		slog.String("envelope_id", env.EventID),
		slog.String("key", env.Key),
		slog.String("type", env.Type))

	var event payment.Event
	if err := env.Decode(&event); err != nil {
		c.logger.ErrorContext(ctx, "Failed to unmarshal payment event", slog.String("envelope_id", env.EventID), logger.Err(err))
		return err
	}

	if err := c.service.HandleEvent(ctx, event); err != nil {
		c.logger.ErrorContext(ctx, "Failed to process payment event",
			slog.String("envelope_id", env.EventID),
			slog.String("event_id", event.ID),
			logger.Err(err))
		return err
	}

	c.logger.InfoContext(ctx, "Payment event processed",
		slog.String("envelope_id", env.EventID),
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)))
	return nil
}
