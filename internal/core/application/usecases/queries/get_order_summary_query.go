package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves aggregate sales figures across all
// orders.
//
// Example:
//
//	handler := NewGetOrderSummaryQueryHandler(db)
//	summary, err := handler.Handle(ctx, NewGetOrderSummaryQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to get summary: %w", err)
//	}
//
//	fmt.Printf("%d orders, %s total\n", summary.TotalOrders, summary.TotalSales)
type GetOrderSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a parameterless summary query.
func NewGetOrderSummaryQuery() GetOrderSummaryQuery {
	return GetOrderSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// GetOrderSummaryQueryResponse carries the aggregate order count and the
// sum of all order totals. An empty system yields zero for both.
type GetOrderSummaryQueryResponse struct {
	TotalOrders int64
	TotalSales  kernel.Money
}
