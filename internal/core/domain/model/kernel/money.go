package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount.
// It wraps github.com/shopspring/decimal to keep full decimal precision:
// unit prices, line subtotals, order totals, and sales aggregates never
// pass through binary floating point.
//
// The zero value is a valid representation of zero currency units.
// Money is immutable; arithmetic methods return new values.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("20.00")
//	subtotal := price.Mul(2)           // 40.00
//	total := subtotal.Add(price)       // 60.00
type Money struct {
	amount decimal.Decimal
}

// MoneyZero returns the zero monetary amount.
func MoneyZero() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses a decimal string ("20.00") into Money.
// Negative amounts are rejected with a ValueIsInvalidError.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal wraps a decimal value as Money.
// Negative amounts are rejected with a ValueIsInvalidError.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s is negative", d.String()))
	}
	return Money{amount: d}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount multiplied by an integer quantity.
// Multiplying by a non-positive quantity yields zero; quantity validation
// belongs to the order line, not to Money.
func (m Money) Mul(quantity int) Money {
	if quantity <= 0 {
		return MoneyZero()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Decimal returns the underlying decimal value. Intended for persistence
// adapters and response serialization.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual reports whether two amounts are numerically equal, ignoring
// exponent representation (20.0 equals 20.00).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with its natural decimal precision.
func (m Money) String() string {
	return m.amount.String()
}
