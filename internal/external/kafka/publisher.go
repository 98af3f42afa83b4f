package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"UnrulyHuman/internal/messaging"
	"UnrulyHuman/pkg/correlation"
	"UnrulyHuman/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewPublisher(l *slog.Logger, brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		logger: l,
	}
}

// Publish writes the envelope keyed by env.Key. The request correlation ID travels as a header.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
	}
	if id := correlation.FromContext(ctx); id != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: correlation.HeaderName, Value: []byte(id)})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish message",
			slog.String("topic", p.writer.Topic),
			slog.String("key", env.Key),
			logger.Err(err))
		return err
	}

	p.logger.DebugContext(ctx, "Message published",
		slog.String("topic", p.writer.Topic),
		slog.String("key", env.Key),
		slog.String("event_id", env.EventID))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
