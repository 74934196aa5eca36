package driver

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Availability tells whether a driver is taking new orders.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	Available
	Offline
)

var availabilityNames = map[Availability]string{
	Available: "available",
	Offline:   "offline",
}

// ParseAvailability converts the wire name into an Availability.
func ParseAvailability(s string) (Availability, error) {
	for a, name := range availabilityNames {
		if name == s {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability", fmt.Errorf("%q is not a known availability", s))
}

// String returns the wire name of the availability.
func (a Availability) String() string {
	if name, ok := availabilityNames[a]; ok {
		return name
	}
	return "unknown"
}

// Validate reports an error for values other than Available and Offline.
func (a Availability) Validate() error {
	if _, ok := availabilityNames[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not valid", a))
	}
	return nil
}
