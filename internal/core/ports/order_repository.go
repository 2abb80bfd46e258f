package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All methods are synchronous round-trips to the backing store; callers
// bound them with a context deadline.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// its replaced line set.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Exists reports whether an order with the given id is persisted.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes an order and its lines. Callers check existence
	// first so a missing id surfaces as not-found, not as a silent no-op.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetStalePending retrieves all Pending orders created before the
	// cutoff. Used by the stale-order expiry job.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
