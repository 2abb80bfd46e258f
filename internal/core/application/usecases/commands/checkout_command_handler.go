package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// CheckoutCommandHandler processes checkout requests. Resolution, total
// computation, the transition to Processing, and the PaymentPending
// payment status all happen here, inside one transaction.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	cmd, _ := NewCheckoutCommand(orderID, customerID, requests, order.CreditCard, time.Time{})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// Order is now Processing with a pending payment
type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.LineResolver
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory OrderUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewLineResolver(),
	}
}

// Handle processes the checkout command. Failure order matches the
// validation rules: empty item lists never reach this point, unresolved
// items fail before the payment-method requirement, and nothing is
// persisted on any failure.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	lines, err := resolveLines(ctx, uow.ItemRepository(), h.resolver, cmd.Items())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), lines, cmd.Date())
	if err != nil {
		return err
	}

	if err = newOrder.StartProcessing(cmd.PaymentMethod()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
