package driver

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when a driver is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverUnavailable is returned when an offline driver tries to claim an order.
	ErrDriverUnavailable = errors.New("driver is not available")
)

// Driver represents a person delivering orders on the marketplace.
// It is an aggregate root that owns identity and availability. Which orders a
// driver carries is recorded on the orders themselves.
//
// Business rules:
//   - Driver must have a valid UUID and a non-empty name
//   - New drivers start offline and go available explicitly
//   - Only available drivers can claim orders (see CanClaim)
//
// Example usage:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Alice")
//	if err != nil {
//	    return err
//	}
//	_ = d.SetAvailability(driver.Available)
type Driver struct {
	// id uniquely identifies the driver and is the ID drivers act with
	id kernel.UUID
	// name is the display name shown to businesses and clients
	name string
	// availability tells whether the driver takes new orders
	availability Availability
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates an offline Driver.
//
// Parameters:
//   - id: Unique identifier for the driver (must be valid UUID)
//   - name: Display name (must be non-empty after trimming)
//
// Returns:
//   - *Driver: A driver that must be made available before claiming
//   - error: Aggregated validation errors for every invalid parameter
func NewDriver(id kernel.UUID, name string) (*Driver, error) {
	return RestoreDriver(id, name, Offline)
}

// RestoreDriver reconstructs a Driver from persistent storage.
//
// Example:
//
//	d, err := driver.RestoreDriver(id, "Alice", driver.Available)
//	if err != nil {
//	    return fmt.Errorf("restoration failed: %w", err)
//	}
func RestoreDriver(id kernel.UUID, name string, availability Availability) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.SetAvailability(availability),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks that the Driver was built by NewDriver or RestoreDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Availability returns whether the driver is available or offline.
func (d *Driver) Availability() Availability {
	return d.availability
}

// IsAvailable reports whether the driver accepts new orders.
func (d *Driver) IsAvailable() bool {
	return d.availability == Available
}

// SetAvailability switches the driver between available and offline. Going
// offline does not release orders the driver already holds.
func (d *Driver) SetAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	d.availability = availability
	return nil
}

// CanClaim returns ErrDriverUnavailable unless the driver is available.
func (d *Driver) CanClaim() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.IsAvailable() {
		return fmt.Errorf("%w: driver %s is %s", ErrDriverUnavailable, d.id, d.availability)
	}
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
