package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels an order through the aggregate's
// transition table. The total is left untouched; cancelling an already
// cancelled order is an accepted no-op.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and cancels it within one transaction.
// A missing order surfaces as not-found; a completed order rejects the
// cancellation with an invalid-state-transition error.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	existing, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
