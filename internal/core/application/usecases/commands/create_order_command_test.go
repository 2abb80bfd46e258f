package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	requests := []services.LineRequest{{ItemID: kernel.NewUUID(), Quantity: 2}}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, requests, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, requests, cmd.Items())
	assert.True(t, cmd.Date().IsZero())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items")
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	requests := []services.LineRequest{{ItemID: kernel.NewUUID(), Quantity: 1}}
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), requests, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	requests := []services.LineRequest{{ItemID: kernel.NewUUID(), Quantity: 1}}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, requests, time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customerId")
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
