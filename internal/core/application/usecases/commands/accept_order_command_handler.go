package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// AcceptOrderCommandHandler handles pharmacy confirmation of a pending order.
// Moves the order to preparing status under a compare-and-swap update, so two
// concurrent decisions on the same order cannot both win.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the acceptance command.
// Loads the order, applies the accept transition and persists it guarded by
// the status the order held when it was read. Notification dispatch happens
// after the commit and never fails the request.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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
	if err = aggregate.Accept(cmd.SellerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderAccepted(ctx, aggregate)
	publishStatusChanged(ctx, h.events, h.logger, aggregate)
	return nil
}
