package ports

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
)

// CustomerRepository provides the minimal customer projection for detail
// views. Customer records belong to an external collaborator; the order
// core only reads them (Add exists solely for seeding).
type CustomerRepository interface {
	// Get retrieves a customer projection by id.
	// Returns an ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Add persists a customer projection. Seeding only.
	Add(ctx context.Context, aggregate *customer.Customer) error
}
