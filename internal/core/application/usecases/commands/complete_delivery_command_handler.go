package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// CompleteDeliveryCommandHandler closes an order as delivered and paid.
// The rider returns to the available list in the same transaction.
type CompleteDeliveryCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	notifier   Notifier
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory FulfillmentUoWFactory,
	notifier Notifier,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the delivery completion command.
// Only the assigned rider may complete; the order settles as delivered and
// paid in one transition, persisted under a compare-and-swap on the status
// the order held when read, and the rider is freed for the next delivery.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expected := aggregate.Status()
	if err = aggregate.CompleteDelivery(cmd.RiderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = freeAssignedRider(ctx, uow.RiderRepository(), aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderDelivered(ctx, aggregate)
	publishStatusChanged(ctx, h.events, h.logger, aggregate)
	return nil
}
