package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineRequest is one requested order line. Quantity defaults to 1 when
// omitted.
type LineRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity,omitempty"`
}

// CheckoutRequest is the payload for POST /api/v1/checkout.
type CheckoutRequest struct {
	CustomerID    string        `json:"customerId"`
	Items         []LineRequest `json:"items"`
	PaymentMethod string        `json:"paymentMethod"`
	Date          *time.Time    `json:"date,omitempty"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string        `json:"customerId"`
	Items      []LineRequest `json:"items"`
	Date       *time.Time    `json:"date,omitempty"`
}

// UpdateOrderRequest is the payload for PATCH /api/v1/orders/:id.
// Absent fields leave the order untouched.
type UpdateOrderRequest struct {
	CustomerID *string       `json:"customerId,omitempty"`
	Items      []LineRequest `json:"items,omitempty"`
	Date       *time.Time    `json:"date,omitempty"`
}

// OrderResponse is the JSON projection of one order.
type OrderResponse struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customerId"`
	Date          time.Time      `json:"date"`
	Total         string         `json:"total"`
	Status        string         `json:"status"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	PaymentStatus string         `json:"paymentStatus,omitempty"`
	Items         []LineResponse `json:"items,omitempty"`
}

// LineResponse is the JSON projection of one order line.
type LineResponse struct {
	ItemID   string `json:"itemId"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// CheckoutStatusResponse reports the lifecycle state of a checkout.
type CheckoutStatusResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

// OrderSummaryResponse carries aggregate sales figures.
type OrderSummaryResponse struct {
	TotalOrders int64  `json:"totalOrders"`
	TotalSales  string `json:"totalSales"`
}

// OrderDetailResponse is an order joined with customer contact data.
type OrderDetailResponse struct {
	OrderResponse
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
}

func toOrderResponse(resp queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:            resp.ID.String(),
		CustomerID:    resp.CustomerID.String(),
		Date:          resp.Date,
		Total:         resp.Total.String(),
		Status:        resp.Status.String(),
		PaymentMethod: resp.PaymentMethod.String(),
		PaymentStatus: resp.PaymentStatus.String(),
	}
}

func toOrderResponses(resps []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, 0, len(resps))
	for _, resp := range resps {
		out = append(out, toOrderResponse(resp))
	}
	return out
}

func toLineResponses(lines []queries.LineResponse) []LineResponse {
	out := make([]LineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, LineResponse{
			ItemID:   line.ItemID.String(),
			Name:     line.Name,
			Price:    line.Price.String(),
			Quantity: line.Quantity,
		})
	}
	return out
}
