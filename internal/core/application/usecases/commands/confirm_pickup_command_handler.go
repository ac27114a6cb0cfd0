package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// ConfirmPickupCommandHandler moves an assigned order out for delivery.
type ConfirmPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the pickup confirmation command.
// Only the assigned rider may confirm; the transition is persisted under a
// compare-and-swap on the status the order held when read.
func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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
	if err = aggregate.ConfirmPickup(cmd.RiderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.events, h.logger, aggregate)
	return nil
}
