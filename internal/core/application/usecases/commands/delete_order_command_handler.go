package commands

import (
	"context"

	"foodorder/internal/pkg/errs"
)

// DeleteOrderCommandHandler hard-deletes an order after an existence
// check. The check and the delete share one transaction, so the delete
// primitive is never invoked for an id that was already gone.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the order exists, then removes it and its lines.
// A missing id returns an ObjectNotFoundError without touching storage.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.OrderRepository().Exists(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	if err = uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
