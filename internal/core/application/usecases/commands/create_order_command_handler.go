package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for plain order
// creation. Resolves the requested items against the catalog, computes the
// total, and persists the order in Pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.LineResolver
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewLineResolver(),
	}
}

// Handle processes the order creation command.
// Item resolution and the order write share one transaction, so either a
// fully resolved, fully priced order lands or nothing does.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveLines fetches the requested catalog items in one batch and
// resolves them into order lines, preserving request order.
func resolveLines(
	ctx context.Context,
	items ports.ItemRepository,
	resolver services.LineResolver,
	requests []services.LineRequest,
) ([]order.Line, error) {
	ids := make([]kernel.UUID, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ItemID)
	}

	fetched, err := items.GetAll(ctx, ids)
	if err != nil {
		return nil, err
	}

	return resolver.Resolve(requests, fetched)
}
