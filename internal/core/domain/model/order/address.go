package order

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDeliveryAddressIsNotConstructed = errors.New(
	"DeliveryAddress must be created via NewDeliveryAddress constructor")

// DeliveryAddress is where the driver hands the order over.
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	street      string
	notes       string
	coordinates kernel.Coordinates
	guard       guard.ConstructorGuard
}

// NewDeliveryAddress requires a street and valid coordinates; notes are optional.
func NewDeliveryAddress(street, notes string, coordinates kernel.Coordinates) (DeliveryAddress, error) {
	street = strings.TrimSpace(street)
	var streetErr error
	if street == "" {
		streetErr = errs.NewValueIsRequiredError("street")
	}
	if err := errors.Join(streetErr, coordinates.Validate()); err != nil {
		return DeliveryAddress{}, err
	}

	return DeliveryAddress{
		street:      street,
		notes:       strings.TrimSpace(notes),
		coordinates: coordinates,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the address was built by NewDeliveryAddress.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// Street returns the trimmed street line.
func (a DeliveryAddress) Street() string {
	return a.street
}

// Notes returns delivery hints such as a door code; may be empty.
func (a DeliveryAddress) Notes() string {
	return a.notes
}

// Coordinates returns the geographic point of the address.
func (a DeliveryAddress) Coordinates() kernel.Coordinates {
	return a.coordinates
}
