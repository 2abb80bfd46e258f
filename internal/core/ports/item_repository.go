package ports

import (
	"context"

	"foodorder/internal/core/domain/model/item"
	"foodorder/internal/core/domain/model/kernel"
)

// ItemRepository defines the read-mostly persistence contract for the
// catalog. The order core treats the catalog as authoritative: item names
// and prices always come from here, never from client input.
type ItemRepository interface {
	// Get retrieves a catalog item by id.
	// Returns an ObjectNotFoundError when no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetAll retrieves the items for a set of ids in one round trip.
	// Result order is unspecified; missing ids are simply absent from the
	// result, so callers detect them by matching against the request.
	GetAll(ctx context.Context, ids []kernel.UUID) ([]*item.Item, error)

	// Add persists a catalog item. Used by seeding only; the order core
	// never writes the catalog.
	Add(ctx context.Context, aggregate *item.Item) error
}
