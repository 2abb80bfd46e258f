package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses_decimal_amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("20.00")

		require.NoError(t, err)
		assert.Equal(t, "20.00", m.String())
		assert.True(t, m.IsPositive())
	})

	t.Run("keeps_full_precision", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("19.995")

		require.NoError(t, err)
		assert.Equal(t, "19.995", m.String())
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-1.50")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_malformed_input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twenty")
		require.Error(t, err)
	})
}

func TestNewMoneyFromDecimal(t *testing.T) {
	t.Run("accepts_zero", func(t *testing.T) {
		m, err := kernel.NewMoneyFromDecimal(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("rejects_negative", func(t *testing.T) {
		_, err := kernel.NewMoneyFromDecimal(decimal.NewFromInt(-5))
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	twenty, err := kernel.NewMoneyFromString("20.00")
	require.NoError(t, err)

	t.Run("add", func(t *testing.T) {
		sum := twenty.Add(twenty)

		expected, _ := kernel.NewMoneyFromString("40.00")
		assert.True(t, sum.IsEqual(expected))
	})

	t.Run("mul_by_quantity", func(t *testing.T) {
		product := twenty.Mul(3)

		expected, _ := kernel.NewMoneyFromString("60.00")
		assert.True(t, product.IsEqual(expected))
	})

	t.Run("mul_by_non_positive_quantity_is_zero", func(t *testing.T) {
		assert.True(t, twenty.Mul(0).IsZero())
		assert.True(t, twenty.Mul(-2).IsZero())
	})

	t.Run("no_floating_point_drift", func(t *testing.T) {
		tenth, _ := kernel.NewMoneyFromString("0.10")

		total := kernel.MoneyZero()
		for range 3 {
			total = total.Add(tenth)
		}

		expected, _ := kernel.NewMoneyFromString("0.30")
		assert.True(t, total.IsEqual(expected))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("ignores_exponent_representation", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("20.0")
		b, _ := kernel.NewMoneyFromString("20.00")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("zero_value_equals_money_zero", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsEqual(kernel.MoneyZero()))
	})
}
