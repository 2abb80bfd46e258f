package services_test

import (
	"testing"

	"foodorder/internal/core/domain/model/item"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name, price string) *item.Item {
	t.Helper()
	m, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	it, err := item.NewItem(kernel.NewUUID(), name, m)
	require.NoError(t, err)
	return it
}

func TestLineResolver_Resolve(t *testing.T) {
	resolver := services.NewLineResolver()

	t.Run("resolves_all_requests_in_order", func(t *testing.T) {
		pizza := mustItem(t, "Margherita Pizza", "20.00")
		bread := mustItem(t, "Garlic Bread", "12.50")
		requests := []services.LineRequest{
			{ItemID: bread.ID(), Quantity: 1},
			{ItemID: pizza.ID(), Quantity: 2},
		}

		// Fetched in a different order than requested.
		lines, err := resolver.Resolve(requests, []*item.Item{pizza, bread})

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.True(t, lines[0].ItemID().IsEqual(bread.ID()))
		assert.True(t, lines[1].ItemID().IsEqual(pizza.ID()))
		assert.Equal(t, 2, lines[1].Quantity())
	})

	t.Run("repeated_item_keeps_separate_lines", func(t *testing.T) {
		pizza := mustItem(t, "Margherita Pizza", "20.00")
		requests := []services.LineRequest{
			{ItemID: pizza.ID(), Quantity: 1},
			{ItemID: pizza.ID(), Quantity: 2},
		}

		lines, err := resolver.Resolve(requests, []*item.Item{pizza})

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.True(t, lines[0].ItemID().IsEqual(lines[1].ItemID()))
		assert.Equal(t, 1, lines[0].Quantity())
		assert.Equal(t, 2, lines[1].Quantity())
	})

	t.Run("missing_item_fails_whole_batch", func(t *testing.T) {
		pizza := mustItem(t, "Margherita Pizza", "20.00")
		missingID := kernel.NewUUID()
		requests := []services.LineRequest{
			{ItemID: pizza.ID(), Quantity: 1},
			{ItemID: missingID, Quantity: 1},
		}

		lines, err := resolver.Resolve(requests, []*item.Item{pizza})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, lines)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, missingID.String(), notFound.ID)
	})

	t.Run("empty_requests_are_rejected", func(t *testing.T) {
		_, err := resolver.Resolve(nil, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("quantity_zero_defaults_to_one", func(t *testing.T) {
		pizza := mustItem(t, "Margherita Pizza", "20.00")

		lines, err := resolver.Resolve(
			[]services.LineRequest{{ItemID: pizza.ID()}}, []*item.Item{pizza})

		require.NoError(t, err)
		assert.Equal(t, 1, lines[0].Quantity())
	})

	t.Run("unconstructed_fetched_item_is_rejected", func(t *testing.T) {
		var broken item.Item

		_, err := resolver.Resolve(
			[]services.LineRequest{{ItemID: kernel.NewUUID()}}, []*item.Item{&broken})

		require.Error(t, err)
	})
}
