// Package http exposes the order API over echo. The server binds JSON
// payloads, translates them into commands and queries, and maps domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler    commands.CheckoutCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	getOrdersByDateHandler     queries.GetOrdersByDateQueryHandler
	getOrderSummaryHandler     queries.GetOrderSummaryQueryHandler
	getOrderDetailHandler      queries.GetOrderDetailQueryHandler
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	getOrdersByDateHandler queries.GetOrdersByDateQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:            checkoutHandler,
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getOrderHandler:            getOrderHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
		getOrdersByDateHandler:     getOrdersByDateHandler,
		getOrderSummaryHandler:     getOrderSummaryHandler,
		getOrderDetailHandler:      getOrderDetailHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 and the health endpoint at
// the root. The summary route is registered before the parameterized
// order route so "summary" is never parsed as an order id.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/checkout", s.Checkout)
	api.GET("/checkout/:id/status", s.CheckoutStatus)

	api.GET("/orders/summary", s.GetOrderSummary)
	api.GET("/orders/customer/:customerId", s.GetOrdersByCustomer)
	api.GET("/orders/date/:date", s.GetOrdersByDate)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetAllOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/detail", s.GetOrderDetail)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/cancel", s.CancelOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Checkout handles POST /api/v1/checkout - places an order and starts
// processing it.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	items, err := toLineRequests(req.Items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, customerID, items, method, optionalTime(req.Date))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return s.createdOrder(ctx, orderID)
}

// CheckoutStatus handles GET /api/v1/checkout/:id/status.
func (s *Server) CheckoutStatus(ctx echo.Context) error {
	query, err := orderIDQuery(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckoutStatusResponse{
		ID:            resp.Order.ID.String(),
		Status:        resp.Order.Status.String(),
		PaymentStatus: resp.Order.PaymentStatus.String(),
	})
}

// CreateOrder handles POST /api/v1/orders - creates a Pending order
// without a payment requirement.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	items, err := toLineRequests(req.Items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, optionalTime(req.Date))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return s.createdOrder(ctx, orderID)
}

// createdOrder reads back a freshly persisted order and writes it with a
// 201 status.
func (s *Server) createdOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	out := toOrderResponse(resp.Order)
	out.Items = toLineResponses(resp.Lines)
	return ctx.JSON(http.StatusCreated, out)
}

// GetAllOrders handles GET /api/v1/orders.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := orderIDQuery(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	out := toOrderResponse(resp.Order)
	out.Items = toLineResponses(resp.Lines)
	return ctx.JSON(http.StatusOK, out)
}

// GetOrderDetail handles GET /api/v1/orders/:id/detail.
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderDetailQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	out := OrderDetailResponse{
		OrderResponse:   toOrderResponse(resp.Order),
		CustomerName:    resp.CustomerName,
		CustomerAddress: resp.CustomerAddress,
	}
	out.Items = toLineResponses(resp.Lines)
	return ctx.JSON(http.StatusOK, out)
}

// UpdateOrder handles PATCH /api/v1/orders/:id - partial update.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var customerID *kernel.UUID
	if req.CustomerID != nil {
		parsed, parseErr := kernel.UUIDFromString(*req.CustomerID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid customer id: "+parseErr.Error())
		}
		customerID = &parsed
	}

	var items []services.LineRequest
	if len(req.Items) > 0 {
		items, err = toLineRequests(req.Items)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(id, customerID, items, req.Date)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return domainError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	out := toOrderResponse(resp.Order)
	out.Items = toLineResponses(resp.Lines)
	return ctx.JSON(http.StatusOK, out)
}

// CancelOrder handles PATCH /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersByCustomer handles GET /api/v1/orders/customer/:customerId.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrdersByDate handles GET /api/v1/orders/date/:date where the date
// is formatted as 2006-01-02.
func (s *Server) GetOrdersByDate(ctx echo.Context) error {
	day, err := time.Parse("2006-01-02", ctx.Param("date"))
	if err != nil {
		return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
	}

	query, err := queries.NewGetOrdersByDateQuery(day)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByDateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrderSummary handles GET /api/v1/orders/summary.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	resp, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetOrderSummaryQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderSummaryResponse{
		TotalOrders: resp.TotalOrders,
		TotalSales:  resp.TotalSales.String(),
	})
}

// toLineRequests parses the wire line set into resolver requests.
func toLineRequests(items []LineRequest) ([]services.LineRequest, error) {
	requests := make([]services.LineRequest, 0, len(items))
	for _, it := range items {
		id, err := kernel.UUIDFromString(it.ItemID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("itemId", err)
		}
		requests = append(requests, services.LineRequest{ItemID: id, Quantity: it.Quantity})
	}
	return requests, nil
}

func orderIDQuery(raw string) (queries.GetOrderQuery, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return queries.GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return queries.NewGetOrderQuery(id)
}

func optionalTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto HTTP status codes: validation
// failures become 400, missing objects 404, forbidden lifecycle
// transitions 409, anything else 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidStateTransition):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
