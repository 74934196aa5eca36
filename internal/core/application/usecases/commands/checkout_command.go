package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand turns the client's cart into a pending order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(orderID, clientID, address, order.PaymentCard)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	clientID      kernel.UUID
	address       order.DeliveryAddress
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCheckoutCommand validates the identifiers, the delivery address and the
// payment method. The order ID is chosen by the caller so retries can be matched.
func NewCheckoutCommand(
	orderID, clientID kernel.UUID,
	address order.DeliveryAddress,
	paymentMethod order.PaymentMethod,
) (CheckoutCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		clientID.Validate(),
		address.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		orderID:       orderID,
		clientID:      clientID,
		address:       address,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client whose cart is checked out.
func (c CheckoutCommand) ClientID() kernel.UUID {
	return c.clientID
}

// DeliveryAddress returns where the order is delivered.
func (c CheckoutCommand) DeliveryAddress() order.DeliveryAddress {
	return c.address
}

// PaymentMethod returns how the client pays.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}
