package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"UnrulyHuman/internal/domain/payment"
	"UnrulyHuman/internal/webhook"
	"UnrulyHuman/pkg/logger"
	"UnrulyHuman/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const (
	// MaxWebhookBodyBytes caps a provider event delivery.
	MaxWebhookBodyBytes = 64 << 10

	SignatureHeader = "Stripe-Signature"
)

// Verifier authenticates a raw provider delivery and decodes it.
type Verifier interface {
	Verify(payload []byte, signatureHeader string) (payment.Event, error)
}

type WebhookHandler struct {
	verifier  Verifier
	processor webhook.Processor
	logger    *slog.Logger
}

func NewWebhookHandler(v Verifier, p webhook.Processor, l *slog.Logger) WebhookHandler {
	return WebhookHandler{verifier: v, processor: p, logger: l}
}

// Stripe receives payment provider events. Once an event is verified the
// response is 200 whatever happens downstream, so the provider does not redeliver.
func (h *WebhookHandler) Stripe(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes))
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to read webhook body", logger.Err(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	event, err := h.verifier.Verify(body, c.GetHeader(SignatureHeader))
	if err != nil {
		metrics.WebhookRejected.Inc()
		if errors.Is(err, payment.ErrMalformedEvent) {
			h.logger.WarnContext(ctx, "Malformed webhook event", logger.Err(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
		h.logger.WarnContext(ctx, "Webhook signature verification failed", logger.Err(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	if err := h.processor.ProcessPaymentEvent(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "Failed to process payment event",
			slog.String("event_id", event.ID),
			slog.String("type", string(event.Type)),
			logger.Err(err))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
