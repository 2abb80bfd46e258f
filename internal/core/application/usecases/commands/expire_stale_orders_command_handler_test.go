package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireStaleOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)
	cmd, err := commands.NewExpireStaleOrdersCommand(cutoff)
	require.NoError(t, err)

	first := storedOrder(t, order.Pending)
	second := storedOrder(t, order.Pending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetStalePending", mock.Anything, cutoff).
			Return([]*order.Order{first, second}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireStaleOrdersCommandHandler(factory)
	expired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, expired)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestExpireStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().Add(-30 * time.Minute)
	cmd, err := commands.NewExpireStaleOrdersCommand(cutoff)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetStalePending", mock.Anything, cutoff).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireStaleOrdersCommandHandler(factory)
	expired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, expired)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewExpireStaleOrdersCommand_ZeroCutoff(t *testing.T) {
	_, err := commands.NewExpireStaleOrdersCommand(time.Time{})
	require.Error(t, err)
}
