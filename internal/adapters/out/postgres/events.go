package postgres

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// OrderStatusChanged is the event type of order transition messages.
const OrderStatusChanged = "order.status_changed"

// StatusChangedPayload is the JSON body of an OrderStatusChanged message.
type StatusChangedPayload struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ActorRole  string    `json:"actor_role"`
	ActorID    string    `json:"actor_id"`
	Version    int64     `json:"version"`
	OccurredAt time.Time `json:"occurred_at"`
}

func outboxMessage(event order.TransitionEvent) (ports.OutboxMessage, error) {
	payload, err := json.Marshal(StatusChangedPayload{
		EventID:    event.ID.String(),
		OrderID:    event.OrderID.String(),
		From:       event.From.String(),
		To:         event.To.String(),
		ActorRole:  event.ActorRole.String(),
		ActorID:    event.ActorID.String(),
		Version:    event.Version,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          event.ID,
		AggregateID: event.OrderID,
		Version:     event.Version,
		EventType:   OrderStatusChanged,
		Payload:     payload,
		OccurredAt:  event.OccurredAt,
	}, nil
}
