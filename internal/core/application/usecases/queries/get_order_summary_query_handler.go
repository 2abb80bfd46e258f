package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler computes sales figures in the database
// rather than in application memory, so the numbers stay consistent with
// whatever set of orders is committed at the time of the read.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for the sales
// summary.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the summary aggregation. COALESCE keeps the sum at
// zero for an empty orders table instead of NULL.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total), 0)
		FROM orders
	`).Row()

	var (
		totalOrders int64
		totalSales  decimal.Decimal
	)
	if err := row.Scan(&totalOrders, &totalSales); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	sales, err := kernel.NewMoneyFromDecimal(totalSales)
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return GetOrderSummaryQueryResponse{
		TotalOrders: totalOrders,
		TotalSales:  sales,
	}, nil
}
