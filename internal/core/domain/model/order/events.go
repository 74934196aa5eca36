package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// TransitionEvent is recorded for every status change of an order. Events are
// collected on the aggregate and written to the outbox in the same transaction
// as the change.
type TransitionEvent struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	From       Status
	To         Status
	ActorRole  kernel.Role
	ActorID    kernel.UUID
	Version    int64
	OccurredAt time.Time
}
