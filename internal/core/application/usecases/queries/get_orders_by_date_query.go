package queries

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrdersByDateQueryIsNotConstructed = errors.New(
	"GetOrdersByDateQuery must be created via NewGetOrdersByDateQuery constructor",
)

// GetOrdersByDateQuery retrieves all orders placed on one calendar day.
// The day is interpreted in the query's own location, typically UTC.
type GetOrdersByDateQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByDateQuery creates a query for the given day. The time
// portion of the argument is ignored.
func NewGetOrdersByDateQuery(day time.Time) (GetOrdersByDateQuery, error) {
	if day.IsZero() {
		return GetOrdersByDateQuery{}, errs.NewValueIsRequiredError("date")
	}

	year, month, dom := day.Date()
	return GetOrdersByDateQuery{
		day:   time.Date(year, month, dom, 0, 0, 0, 0, day.Location()),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDateQueryIsNotConstructed)
}

// Day returns the start of the requested calendar day.
func (q GetOrdersByDateQuery) Day() time.Time {
	return q.day
}
