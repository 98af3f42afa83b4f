package webhook

import (
	"context"

	"UnrulyHuman/internal/domain/payment"
)

// SyncProcessor runs the event service inside the webhook request.
type SyncProcessor struct {
	eventService *payment.EventService
}

func NewSyncProcessor(eventService *payment.EventService) *SyncProcessor {
	return &SyncProcessor{eventService: eventService}
}

func (p *SyncProcessor) ProcessPaymentEvent(ctx context.Context, event payment.Event) error {
	return p.eventService.HandleEvent(ctx, event)
}
