package queries_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.OrderID())
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetAllOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetOrdersByCustomerQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrdersByCustomerQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetOrdersByDateQuery_TruncatesToDay(t *testing.T) {
	noon := time.Date(2026, time.April, 9, 12, 30, 45, 0, time.UTC)
	query, err := queries.NewGetOrdersByDateQuery(noon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 9, 0, 0, 0, 0, time.UTC), query.Day())
}

func TestNewGetOrdersByDateQuery_ZeroDate(t *testing.T) {
	_, err := queries.NewGetOrdersByDateQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetOrderSummaryQuery_Valid(t *testing.T) {
	query := queries.NewGetOrderSummaryQuery()
	require.NoError(t, query.Validate())
}

func TestGetOrderSummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderSummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderSummaryQueryIsNotConstructed)
}

func TestNewGetOrderDetailQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderDetailQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
