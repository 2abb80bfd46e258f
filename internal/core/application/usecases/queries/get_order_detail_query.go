package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery retrieves an order joined with its customer's
// contact data, for receipts and support views.
type GetOrderDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a detail query for the given order id.
func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailQueryResponse is the order projection enriched with the
// customer's name and delivery address and the full line set.
type GetOrderDetailQueryResponse struct {
	Order           OrderResponse
	CustomerName    string
	CustomerAddress string
	Lines           []LineResponse
}
