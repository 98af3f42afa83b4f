package webhook

import (
	"context"

	"UnrulyHuman/internal/domain/payment"
)

// Processor hands a verified payment event to the domain.
// Implementations run it inline or defer it to a message broker.
type Processor interface {
	ProcessPaymentEvent(ctx context.Context, event payment.Event) error
}
