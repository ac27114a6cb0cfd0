package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// MarkOrderReadyCommandHandler moves a preparing order into the rider queue.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewMarkOrderReadyCommandHandler creates a handler for marking orders ready.
func NewMarkOrderReadyCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the mark-ready command.
// Applies the transition to awaiting rider and persists it guarded by the
// status the order held when it was read.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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
	if err = aggregate.MarkReady(cmd.SellerID()); err != nil {
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
