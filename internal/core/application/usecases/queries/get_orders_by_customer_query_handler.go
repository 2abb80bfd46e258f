package queries

import (
	"context"

	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler retrieves a customer's order history.
//
// NotFoundOnEmpty preserves the legacy contract where a customer with no
// orders is reported as not-found rather than as an empty list. New
// deployments can disable it to get the conventional empty response.
type GetOrdersByCustomerQueryHandler struct {
	db              *gorm.DB
	notFoundOnEmpty bool
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer
// order history queries.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB, notFoundOnEmpty bool) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db, notFoundOnEmpty: notFoundOnEmpty}
}

// Handle executes the query, newest orders first.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY date DESC, id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 && h.notFoundOnEmpty {
		return nil, errs.NewObjectNotFoundError("customerId", query.CustomerID().String())
	}

	return orders, nil
}
