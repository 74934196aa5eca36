// Package kafka publishes outbox messages to a Kafka topic with segmentio/kafka-go.
package kafka

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	eventTypeHeader = "event-type"
	versionHeader   = "version"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TransitionPublisher writes order transition events keyed by order ID, so all
// events of one order land on one partition. The order version travels in the
// version header for consumers that reorder across relay batches.
type TransitionPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter builds a writer for a comma-separated broker list.
func NewWriter(brokersCSV, topic string) *kafka.Writer {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// NewTransitionPublisher wraps writer; the publisher owns it and closes it in Close.
func NewTransitionPublisher(writer messageWriter, logger *slog.Logger) *TransitionPublisher {
	return &TransitionPublisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
	}
}

// Publish writes the batch synchronously. An error means some messages may not
// have been written; the caller keeps the whole batch pending.
func (p *TransitionPublisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, kafka.Message{
			Key:     []byte(m.AggregateID.String()),
			Value:   m.Payload,
			Time:    m.OccurredAt,
			Headers: []kafka.Header{
				{Key: eventTypeHeader, Value: []byte(m.EventType)},
				{Key: versionHeader, Value: []byte(strconv.FormatInt(m.Version, 10))},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish events", "count", len(batch), "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "published events", "count", len(batch))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *TransitionPublisher) Close() error {
	return p.writer.Close()
}
