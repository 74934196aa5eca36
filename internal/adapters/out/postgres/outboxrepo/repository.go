// Package outboxrepo stores transition events until the relay publishes them.
package outboxrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageDTO is a row of the outbox table.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID `gorm:"type:uuid"`
	Version     int64
	EventType   string
	Payload     []byte `gorm:"type:jsonb"`
	OccurredAt  time.Time
	PublishedAt *time.Time
}

func (MessageDTO) TableName() string {
	return "outbox"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a repository bound to db, usually a transaction.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append inserts messages as unpublished rows.
func (r *GormOutboxRepository) Append(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, MessageDTO{
			ID:          m.ID.Raw(),
			AggregateID: m.AggregateID.Raw(),
			Version:     m.Version,
			EventType:   m.EventType,
			Payload:     m.Payload,
			OccurredAt:  m.OccurredAt,
		})
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchPending locks up to limit unpublished messages, oldest first. Ties on
// occurred_at are broken by aggregate and then version, so the events of one order
// keep their version order inside a batch. Rows locked by another relay are
// skipped, so concurrent relays never publish the same batch.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at, aggregate_id, version").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromRaw(dto.ID)
		if idErr != nil {
			return nil, idErr
		}
		aggregateID, idErr := kernel.UUIDFromRaw(dto.AggregateID)
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			AggregateID: aggregateID,
			Version:     dto.Version,
			EventType:   dto.EventType,
			Payload:     dto.Payload,
			OccurredAt:  dto.OccurredAt,
		})
	}
	return messages, nil
}

// MarkPublished stamps the given messages with the publish time.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Raw())
	}
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at).Error
}
