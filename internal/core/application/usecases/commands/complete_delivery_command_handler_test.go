package commands_test

import (
	"testing"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/commands"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sellerID, riderID := kernel.NewUUID(), kernel.NewUUID()
	aggregate := outForDeliveryOrder(t, sellerID, riderID)
	assigned, err := rider.NewRider(riderID, "Juma", "0754123456")
	require.NoError(t, err)
	cmd, err := commands.NewCompleteDeliveryCommand(aggregate.ID(), riderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.OutForDelivery).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", mock.Anything, riderID).Return(assigned, nil).Once(),
		riderRepo.On("Update", mock.Anything, assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderDelivered", mock.Anything, aggregate).Once()

	events := new(MockOrderEventPublisher)
	events.On("PublishStatusChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, notifier, events, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.DeliveredAndPaid, aggregate.Status())
	assert.Equal(t, order.PaymentPaid, aggregate.PaymentStatus())
	assert.True(t, assigned.IsAvailable())
	notifier.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_WrongRider(t *testing.T) {
	ctx := t.Context()
	aggregate := outForDeliveryOrder(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewCompleteDeliveryCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, new(MockNotifier), new(MockOrderEventPublisher), testLogger())

	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrRiderMismatch)
	assert.Equal(t, order.OutForDelivery, aggregate.Status())
}
