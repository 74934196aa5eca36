package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be published. Version is
// the aggregate version the event produced; it orders the events of one aggregate.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	Version     int64
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores events next to the state change that raised them and
// hands them to the relay afterwards.
type OutboxRepository interface {
	// Append stores messages in the current transaction.
	Append(ctx context.Context, messages ...OutboxMessage) error

	// FetchPending returns up to limit unpublished messages, oldest first; messages
	// of one aggregate that share a timestamp come in version order. Rows are
	// locked for the current transaction and skipped by concurrent relays, so two
	// relays may publish events of the same aggregate out of order.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished flags messages as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to the notification channel. Delivery
// is at least once and only ordered within a batch: consumers deduplicate by
// message ID and order the events of an aggregate by Version.
type EventPublisher interface {
	Publish(ctx context.Context, messages []OutboxMessage) error
}
