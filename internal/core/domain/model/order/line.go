package order

import (
	"fmt"

	"foodorder/internal/core/domain/model/item"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// defaultQuantity is applied when a line request omits the quantity.
const defaultQuantity = 1

// Line is a resolved order line: a snapshot of a catalog item's identity,
// name, and unit price combined with the client-requested quantity.
// Snapshotting at resolution time keeps placed orders stable when the
// catalog changes later.
//
// Line is a value object; once constructed it never changes.
type Line struct {
	itemID   kernel.UUID
	name     string
	price    kernel.Money
	quantity int
}

// NewLine creates a line from a resolved catalog item and the requested
// quantity. A quantity of zero defaults to 1; negative quantities are
// rejected.
func NewLine(resolved *item.Item, quantity int) (Line, error) {
	if err := resolved.Validate(); err != nil {
		return Line{}, err
	}

	if quantity == 0 {
		quantity = defaultQuantity
	}
	if quantity < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		itemID:   resolved.ID(),
		name:     resolved.Name(),
		price:    resolved.Price(),
		quantity: quantity,
	}, nil
}

// RestoreLine reconstructs a line snapshot from persistence.
func RestoreLine(itemID kernel.UUID, name string, price kernel.Money, quantity int) (Line, error) {
	if err := itemID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		itemID:   itemID,
		name:     name,
		price:    price,
		quantity: quantity,
	}, nil
}

// ItemID returns the identifier of the snapshotted catalog item.
func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the item name at resolution time.
func (l Line) Name() string {
	return l.name
}

// Price returns the authoritative unit price at resolution time.
func (l Line) Price() kernel.Money {
	return l.price
}

// Quantity returns the requested quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price multiplied by quantity.
func (l Line) Subtotal() kernel.Money {
	return l.price.Mul(l.quantity)
}

// TotalOf sums the subtotals of the given lines. This is the canonical
// total formula for the whole system: unit price times quantity, no
// intermediate rounding.
func TotalOf(lines []Line) kernel.Money {
	total := kernel.MoneyZero()
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
