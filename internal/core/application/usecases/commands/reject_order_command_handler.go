package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// RejectOrderCommandHandler handles pharmacy refusal of a pending order.
// Rejection is terminal: the order closes with the stated reason and the
// stock reserved at placement is released in the same transaction.
type RejectOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
	notifier   Notifier
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewRejectOrderCommandHandler creates a handler for order rejection operations.
// Requires an OrderStockUoWFactory because rejection re-credits stock.
func NewRejectOrderCommandHandler(
	uowFactory OrderStockUoWFactory,
	notifier Notifier,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the rejection command.
// Applies the reject transition, releases stock for every line and persists
// both under a compare-and-swap update on the order's read status.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
	if err = aggregate.Reject(cmd.SellerID(), cmd.Reason()); err != nil {
		return err
	}

	if err = releaseOrderStock(ctx, uow.StockRepository(), aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.OrderRejected(ctx, aggregate)
	publishStatusChanged(ctx, h.events, h.logger, aggregate)
	return nil
}
