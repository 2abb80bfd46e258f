package commands

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a checkout request: it turns a draft order
// into a Processing order with a payment method and a pending payment.
//
// The payment method may be absent at construction time; the requirement
// is enforced after item resolution so validation failures surface in the
// documented order (empty items, unresolved items, missing payment
// method).
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	items         []services.LineRequest
	paymentMethod order.PaymentMethod
	date          time.Time

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. Validates the ids and the
// non-empty item list. A zero date defaults to the processing time.
func NewCheckoutCommand(
	orderID, customerID kernel.UUID,
	items []services.LineRequest,
	paymentMethod order.PaymentMethod,
	date time.Time,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CheckoutCommand{}, err
	}

	cmd.paymentMethod = paymentMethod
	cmd.date = date
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested order lines.
func (c CheckoutCommand) Items() []services.LineRequest {
	return c.items
}

// PaymentMethod returns the requested payment method, possibly absent.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Date returns the requested order date, zero when absent.
func (c CheckoutCommand) Date() time.Time {
	return c.date
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setItems(items []services.LineRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
