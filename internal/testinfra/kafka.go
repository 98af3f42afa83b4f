//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

type KafkaContainer struct {
	Container          *kafka.KafkaContainer
	Brokers            []string
	PaymentEventsTopic string
	PaymentEventsGroup string
}

func NewKafka(ctx context.Context) (*KafkaContainer, error) {
	container, err := kafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		kafka.WithClusterID("test-cluster"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka container: %w", err)
	}

	brokers, err := container.Brokers(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get brokers: %w", err)
	}

	// Unique topic and group per test run
	suffix := uuid.New().String()[:8]
	topic := fmt.Sprintf("test-payment-events-%s", suffix)

	// Consumers must be able to join before the first message is published
	if err := createTopic(ctx, container, topic, 3); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to create payment events topic: %w", err)
	}

	return &KafkaContainer{
		Container:          container,
		Brokers:            brokers,
		PaymentEventsTopic: topic,
		PaymentEventsGroup: fmt.Sprintf("test-group-payment-events-%s", suffix),
	}, nil
}

func createTopic(ctx context.Context, c *kafka.KafkaContainer, topic string, partitions int) error {
	// Kafka may accept connections before admin operations work
	const attempts = 20
	var lastErr error
	for i := 0; i < attempts; i++ {
		exitCode, reader, err := c.Exec(ctx, []string{
			"kafka-topics",
			"--bootstrap-server", "localhost:9092",
			"--create",
			"--if-not-exists",
			"--topic", topic,
			"--partitions", fmt.Sprintf("%d", partitions),
			"--replication-factor", "1",
		})
		if err == nil && exitCode == 0 {
			return nil
		}

		var out string
		if reader != nil {
			b, _ := io.ReadAll(reader)
			out = strings.TrimSpace(string(b))
		}
		if err != nil {
			lastErr = fmt.Errorf("exec kafka-topics failed: %w; output=%q", err, out)
		} else {
			lastErr = fmt.Errorf("kafka-topics exit=%d; output=%q", exitCode, out)
		}

		time.Sleep(250 * time.Millisecond)
	}
	return lastErr
}
