package ports

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver. Registering the same ID twice fails with
	// errs.ErrValueIsInvalid.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists name and availability of an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by ID or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
