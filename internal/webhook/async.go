package webhook

import (
	"context"
	"fmt"

	"UnrulyHuman/internal/domain/payment"
	"UnrulyHuman/internal/messaging"
)

// MessageTypePaymentEvent is the envelope type for payment events on the broker.
const MessageTypePaymentEvent = "payment.event"

// AsyncProcessor publishes events to Kafka; the consumer worker runs the event service.
type AsyncProcessor struct {
	publisher messaging.Publisher
}

func NewAsyncProcessor(publisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{publisher: publisher}
}

func (p *AsyncProcessor) ProcessPaymentEvent(ctx context.Context, event payment.Event) error {
	envelope, err := messaging.NewEnvelope(PartitionKey(event), MessageTypePaymentEvent, event)
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}
	return p.publisher.Publish(ctx, envelope)
}

// PartitionKey keeps all events of one checkout (or payment intent) on one partition.
func PartitionKey(event payment.Event) string {
	switch {
	case event.CheckoutSession != nil && event.CheckoutSession.ID != "":
		return event.CheckoutSession.ID
	case event.PaymentIntent != nil && event.PaymentIntent.ID != "":
		return event.PaymentIntent.ID
	default:
		return event.ID
	}
}
