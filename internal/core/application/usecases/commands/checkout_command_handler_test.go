package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/item"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pizza := catalogItem(t, "Margherita Pizza", "20.00")
	soda := catalogItem(t, "Orange Soda", "20.00")
	requests := []services.LineRequest{
		{ItemID: pizza.ID(), Quantity: 2},
		{ItemID: soda.ID(), Quantity: 1},
	}
	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), kernel.NewUUID(), requests, order.CreditCard, time.Time{},
	)
	require.NoError(t, err)

	var persisted *order.Order
	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAll", mock.Anything, mock.Anything).Return([]*item.Item{pizza, soda}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { persisted = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, persisted)
	assert.Equal(t, order.Processing, persisted.Status())
	assert.Equal(t, order.CreditCard, persisted.PaymentMethod())
	assert.Equal(t, order.PaymentPending, persisted.PaymentStatus())
	assert.Equal(t, "60.00", persisted.Total().String())
	assert.Len(t, persisted.Lines(), 2)

	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_RepeatedItem(t *testing.T) {
	ctx := t.Context()
	pizza := catalogItem(t, "Margherita Pizza", "20.00")
	requests := []services.LineRequest{
		{ItemID: pizza.ID(), Quantity: 1},
		{ItemID: pizza.ID(), Quantity: 2},
	}
	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), kernel.NewUUID(), requests, order.Cash, time.Time{},
	)
	require.NoError(t, err)

	var persisted *order.Order
	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAll", mock.Anything, mock.Anything).Return([]*item.Item{pizza}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { persisted = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, persisted)
	require.Len(t, persisted.Lines(), 2)
	assert.True(t, persisted.Lines()[0].ItemID().IsEqual(persisted.Lines()[1].ItemID()))
	assert.Equal(t, "60.00", persisted.Total().String())

	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_MissingPaymentMethod(t *testing.T) {
	ctx := t.Context()
	pizza := catalogItem(t, "Margherita Pizza", "20.00")
	requests := []services.LineRequest{{ItemID: pizza.ID(), Quantity: 1}}
	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), kernel.NewUUID(), requests, order.UnknownPaymentMethod, time.Time{},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAll", mock.Anything, mock.Anything).Return([]*item.Item{pizza}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_UnknownItemBeforePaymentCheck(t *testing.T) {
	ctx := t.Context()
	pizza := catalogItem(t, "Margherita Pizza", "20.00")
	requests := []services.LineRequest{{ItemID: pizza.ID(), Quantity: 1}}
	// No payment method either: the unresolved item must surface first.
	cmd, err := commands.NewCheckoutCommand(
		kernel.NewUUID(), kernel.NewUUID(), requests, order.UnknownPaymentMethod, time.Time{},
	)
	require.NoError(t, err)

	itemRepo := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAll", mock.Anything, mock.Anything).Return([]*item.Item{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCheckoutCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	factory.AssertNotCalled(t, "Create")
}
