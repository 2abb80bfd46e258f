package commands

import (
	"context"
)

// ExpireStaleOrdersCommandHandler cancels Pending orders that were
// created before the command's cutoff. All expired orders are cancelled
// in a single transaction so a partial sweep never commits.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleOrdersCommandHandler creates a handler for the
// stale-order sweep.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads every stale Pending order and cancels it. Returns the
// number of orders expired.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().GetStalePending(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
