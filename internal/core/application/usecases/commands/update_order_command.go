package commands

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order.
// Absent fields are left untouched: a nil customer id keeps the owner, an
// empty item list keeps the lines, a nil date keeps the date. A non-empty
// item list triggers re-resolution and a total recompute.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID *kernel.UUID
	items      []services.LineRequest
	date       *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a patch command for the given order.
// At least one patchable field must be present.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	items []services.LineRequest,
	date *time.Time,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	if customerID == nil && len(items) == 0 && date == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("patch")
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return UpdateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
		}
	}

	cmd.customerID = customerID
	cmd.items = items
	cmd.date = date
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to patch.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the new owner, or nil to keep the current one.
func (c UpdateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// Items returns the replacement line requests, empty to keep the lines.
func (c UpdateOrderCommand) Items() []services.LineRequest {
	return c.items
}

// Date returns the new date, or nil to keep the current one.
func (c UpdateOrderCommand) Date() *time.Time {
	return c.date
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
