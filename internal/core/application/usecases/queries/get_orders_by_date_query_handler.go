package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByDateQueryHandler retrieves the orders placed on one
// calendar day using a half-open range scan, so a date index stays
// usable.
type GetOrdersByDateQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDateQueryHandler creates a handler for daily order
// queries.
func NewGetOrdersByDateQueryHandler(db *gorm.DB) GetOrdersByDateQueryHandler {
	return GetOrdersByDateQueryHandler{db: db}
}

// Handle executes the query. An empty day yields an empty slice.
func (h GetOrdersByDateQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDateQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from := query.Day()
	to := from.AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE date >= ? AND date < ?
		ORDER BY date, id
	`, from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}
