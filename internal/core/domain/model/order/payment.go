package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod records how the client will pay. Capture and settlement happen
// elsewhere.
type PaymentMethod int

const (
	PaymentUnknown PaymentMethod = iota
	PaymentCash
	PaymentCard
)

var paymentNames = map[PaymentMethod]string{
	PaymentCash: "cash",
	PaymentCard: "card",
}

// ParsePaymentMethod converts a wire name into a PaymentMethod.
//
// Parameters:
//   - s: the method name, either "cash" or "card"
//
// Returns:
//   - PaymentMethod: the parsed method
//   - error: ValueIsInvalidError if the name is not supported
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for m, name := range paymentNames {
		if name == s {
			return m, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a supported payment method", s))
}

// Validate reports an error for values outside the known methods.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not valid", m))
	}
	return nil
}

// String returns the wire name of the method.
func (m PaymentMethod) String() string {
	if name, ok := paymentNames[m]; ok {
		return name
	}
	return "unknown"
}
