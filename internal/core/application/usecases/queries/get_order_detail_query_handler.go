package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler joins an order with its customer record and
// lines. The customer join is LEFT so a dangling customer reference
// still yields the order with empty contact fields.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail
// queries.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle fetches the joined projection. Returns an ObjectNotFoundError
// when the order does not exist.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.date,
			o.total,
			o.status,
			o.payment_method,
			o.payment_status,
			COALESCE(c.name, ''),
			COALESCE(c.address, '')
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderDetailQueryResponse{}, err
		}
		return GetOrderDetailQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	var (
		resp           GetOrderDetailQueryResponse
		id, customerID uuid.UUID
		total          decimal.Decimal
		status         int
		method         int
		paymentStatus  int
	)

	err = rows.Scan(
		&id,
		&customerID,
		&resp.Order.Date,
		&total,
		&status,
		&method,
		&paymentStatus,
		&resp.CustomerName,
		&resp.CustomerAddress,
	)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	rows.Close()

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.Order.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.Order.CustomerID = ownerID

	money, err := kernel.NewMoneyFromDecimal(total)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.Order.Total = money

	resp.Order.Status = order.Status(status)
	resp.Order.PaymentMethod = order.PaymentMethod(method)
	resp.Order.PaymentStatus = order.PaymentStatus(paymentStatus)

	lines, err := fetchOrderLines(ctx, h.db, query.OrderID())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}
