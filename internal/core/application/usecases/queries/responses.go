// Package queries contains read-only operations for retrieving order data.
// Implements the query side of the CQRS architecture: handlers bypass the
// domain model and read projections straight from the database with raw
// SQL, returning lightweight response structs.
package queries

import (
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse is the flat order projection shared by the order listing
// queries. Lines are not included; use GetOrderQuery or
// GetOrderDetailQuery for the full picture.
type OrderResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	Date          time.Time
	Total         kernel.Money
	Status        order.Status
	PaymentMethod order.PaymentMethod
	PaymentStatus order.PaymentStatus
}

// LineResponse is a single order line projection.
type LineResponse struct {
	ItemID   kernel.UUID
	Name     string
	Price    kernel.Money
	Quantity int
}

const orderColumns = `
	id,
	customer_id,
	date,
	total,
	status,
	payment_method,
	payment_status
`

// scanOrderRow reads one order projection from a row set positioned on a
// valid row. All listing queries select orderColumns in this exact order.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp                                 OrderResponse
		id, customerID                       uuid.UUID
		total                                decimal.Decimal
		status, paymentMethod, paymentStatus int
	)

	err := rows.Scan(
		&id,
		&customerID,
		&resp.Date,
		&total,
		&status,
		&paymentMethod,
		&paymentStatus,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = ownerID

	money, err := kernel.NewMoneyFromDecimal(total)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Total = money

	resp.Status = order.Status(status)
	resp.PaymentMethod = order.PaymentMethod(paymentMethod)
	resp.PaymentStatus = order.PaymentStatus(paymentStatus)
	return resp, nil
}

// collectOrders drains a row set of orderColumns projections.
func collectOrders(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
