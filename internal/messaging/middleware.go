package messaging

import (
	"context"
	"time"

	"UnrulyHuman/pkg/metrics"
)

// WithMetrics records processing duration and outcome for every message.
func WithMetrics(topic, group string, handler MessageHandler) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		start := time.Now()
		err := handler(ctx, key, value)

		status := metrics.OutcomeSuccess
		if err != nil {
			status = metrics.OutcomeFailure
		}
		metrics.KafkaProcessingDuration.WithLabelValues(topic, group, status).Observe(time.Since(start).Seconds())
		metrics.KafkaMessagesProcessed.WithLabelValues(topic, group, status).Inc()
		return err
	}
}
