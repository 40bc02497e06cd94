package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"mesa/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher implements EventPublisher on a Kafka topic.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a new Kafka publisher
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &kafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishAuditEvent publishes an event to the Kafka topic.
// Messages are keyed by correlation id so entries of one run stay ordered.
func (p *kafkaPublisher) PublishAuditEvent(ctx context.Context, event *service.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := kafka.Message{
		Key:   []byte(event.CorrelationID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(event.Action)},
			{Key: "entity_type", Value: []byte(event.EntityType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to write kafka message")
	}

	p.logger.Info("[Kafka] Audit event published",
		slog.String("entry_id", event.EntryID),
		slog.String("action", event.Action),
	)

	return nil
}

// Close flushes and closes the Kafka writer.
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
