package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// CancelOrderCommandHandler closes a not-yet-terminal order as cancelled.
// Reserved stock is re-credited and any assigned rider is freed, all in the
// same transaction as the status change.
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	notifier   Notifier
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	notifier Notifier,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the cancellation command.
// Cancellation is valid from any non-terminal status; a concurrent transition
// on the same order loses with a status conflict thanks to the
// compare-and-swap on the status the order held when read.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = releaseOrderStock(ctx, uow.StockRepository(), aggregate); err != nil {
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

	h.notifier.OrderCancelled(ctx, aggregate)
	publishStatusChanged(ctx, h.events, h.logger, aggregate)
	return nil
}
