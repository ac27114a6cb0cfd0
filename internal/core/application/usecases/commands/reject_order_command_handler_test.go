package commands_test

import (
	"testing"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/commands"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	aggregate := pendingOrder(t, sellerID)
	line := aggregate.Lines()[0]
	cmd, err := commands.NewRejectOrderCommand(aggregate.ID(), sellerID, "out of stock")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("Release", mock.Anything, line.ProductID(), line.Quantity()).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.PendingPharmacyConfirmation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderRejected", mock.Anything, aggregate).Once()

	events := new(MockOrderEventPublisher)
	events.On("PublishStatusChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewRejectOrderCommandHandler(factory, notifier, events, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, aggregate.Status())
	require.NotNil(t, aggregate.Rejection())
	assert.Equal(t, "out of stock", aggregate.Rejection().Reason)
	stockRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRejectOrderCommandHandler_Handle_RequiresReason(t *testing.T) {
	_, err := commands.NewRejectOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "   ")
	require.Error(t, err)
}
