package kafka

import (
	"context"
	"errors"
	"log/slog"

	"UnrulyHuman/internal/messaging"
	"UnrulyHuman/pkg/correlation"
	"UnrulyHuman/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// Consumer implements messaging.Worker using a Kafka consumer group.
type Consumer struct {
	reader *kafka.Reader
	logger *slog.Logger
}

func NewConsumer(l *slog.Logger, brokers []string, topic, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 1e6,
	})

	return &Consumer{reader: reader, logger: l}
}

// Start fetches messages until ctx is cancelled. A handler error leaves the message
// uncommitted; there is no retry within the process.
func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	cfg := c.reader.Config()
	c.logger.Info("Consumer started", slog.String("topic", cfg.Topic), slog.String("group_id", cfg.GroupID))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				c.logger.Info("Consumer stopped (context cancelled)")
				return nil
			}
			c.logger.Error("Failed to fetch message", logger.Err(err))
			return err
		}

		msgCtx := correlation.WithID(ctx, correlationID(msg))
		attrs := []any{
			slog.String("topic", msg.Topic),
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
			slog.String("key", string(msg.Key)),
		}

		if err := handler(msgCtx, msg.Key, msg.Value); err != nil {
			c.logger.ErrorContext(msgCtx, "Handler error, message not committed", append(attrs, logger.Err(err))...)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.ErrorContext(msgCtx, "Failed to commit message", append(attrs, logger.Err(err))...)
			return err
		}

		c.logger.DebugContext(msgCtx, "Message committed", attrs...)
	}
}

func (c *Consumer) Close() error {
	cfg := c.reader.Config()
	c.logger.Info("Closing consumer", slog.String("topic", cfg.Topic), slog.String("group_id", cfg.GroupID))
	return c.reader.Close()
}

func correlationID(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == correlation.HeaderName && len(h.Value) > 0 {
			return string(h.Value)
		}
	}
	return correlation.NewID()
}
