package commands_test

import (
	"testing"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/application/usecases/commands"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	aggregate := pendingOrder(t, sellerID)
	cmd, err := commands.NewAcceptOrderCommand(aggregate.ID(), sellerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.PendingPharmacyConfirmation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderAccepted", mock.Anything, aggregate).Once()

	events := new(MockOrderEventPublisher)
	events.On("PublishStatusChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, notifier, events, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PreparingOrder, aggregate.Status())
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_StatusConflict(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	aggregate := pendingOrder(t, sellerID)
	cmd, err := commands.NewAcceptOrderCommand(aggregate.ID(), sellerID)
	require.NoError(t, err)

	conflict := errs.NewStatusConflictError(aggregate.ID().String(), order.PendingPharmacyConfirmation.String())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.PendingPharmacyConfirmation).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := commands.NewAcceptOrderCommandHandler(factory, notifier, new(MockOrderEventPublisher), testLogger())

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStatusConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "OrderAccepted", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_SellerMismatch(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAcceptOrderCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, new(MockNotifier), new(MockOrderEventPublisher), testLogger())

	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrSellerMismatch)
	assert.Equal(t, order.PendingPharmacyConfirmation, aggregate.Status())
}
