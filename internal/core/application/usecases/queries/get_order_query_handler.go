package queries

import (
	"context"
	"database/sql"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order and its lines from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order projection and its lines. Returns an
// ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	orderResp, err := scanOrderRow(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	rows.Close()

	lines, err := fetchOrderLines(ctx, h.db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{Order: orderResp, Lines: lines}, nil
}

// fetchOrderLines loads the line projections for one order, in the order
// the lines were placed.
func fetchOrderLines(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]LineResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			name,
			price,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLines(rows)
}

func collectLines(rows *sql.Rows) ([]LineResponse, error) {
	lines := make([]LineResponse, 0)
	for rows.Next() {
		var (
			itemID uuid.UUID
			line   LineResponse
			price  decimal.Decimal
		)

		if err := rows.Scan(&itemID, &line.Name, &price, &line.Quantity); err != nil {
			return nil, err
		}

		id, err := kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return nil, err
		}
		line.ItemID = id

		money, err := kernel.NewMoneyFromDecimal(price)
		if err != nil {
			return nil, err
		}
		line.Price = money

		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
