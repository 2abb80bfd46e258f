package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
)

// UpdateOrderCommandHandler applies a partial update to an order as a
// single atomic read-modify-write: the load, the patch, and the save
// share one transaction so concurrent updates cannot lose writes.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.LineResolver
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewLineResolver(),
	}
}

// Handle loads the order, applies the present patch fields, and persists
// the merged result. Terminal orders reject the patch through the
// aggregate's transition guard; a missing order surfaces as not-found
// before anything is touched.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if customerID := cmd.CustomerID(); customerID != nil {
		if err = existing.Reassign(*customerID); err != nil {
			return err
		}
	}

	if items := cmd.Items(); len(items) > 0 {
		lines, resolveErr := resolveLines(ctx, uow.ItemRepository(), h.resolver, items)
		if resolveErr != nil {
			return resolveErr
		}
		if err = existing.ReplaceLines(lines); err != nil {
			return err
		}
	}

	if date := cmd.Date(); date != nil {
		if err = existing.Reschedule(*date); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
