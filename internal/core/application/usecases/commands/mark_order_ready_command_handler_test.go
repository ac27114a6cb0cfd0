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

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	aggregate := pendingOrder(t, sellerID)
	require.NoError(t, aggregate.Accept(sellerID))
	cmd, err := commands.NewMarkOrderReadyCommand(aggregate.ID(), sellerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.PreparingOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	events := new(MockOrderEventPublisher)
	events.On("PublishStatusChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory, events, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.AwaitingRider, aggregate.Status())
}

func TestMarkOrderReadyCommandHandler_Handle_InvalidFromPending(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	aggregate := pendingOrder(t, sellerID)
	cmd, err := commands.NewMarkOrderReadyCommand(aggregate.ID(), sellerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory, new(MockOrderEventPublisher), testLogger())

	require.Error(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.PendingPharmacyConfirmation, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
