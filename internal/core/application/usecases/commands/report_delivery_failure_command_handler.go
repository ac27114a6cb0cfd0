package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// ReportDeliveryFailureCommandHandler closes an order as delivery failed.
// Since payment happens on delivery, a failed attempt means no money changed
// hands: the reserved stock is re-credited and the rider freed, both in the
// same transaction as the status change.
type ReportDeliveryFailureCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewReportDeliveryFailureCommandHandler creates a handler for delivery
// failure reports.
func NewReportDeliveryFailureCommandHandler(
	uowFactory FulfillmentUoWFactory,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) ReportDeliveryFailureCommandHandler {
	return ReportDeliveryFailureCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the delivery failure command.
// Only the assigned rider may report failure. The terminal transition, the
// stock re-credit and the rider release commit atomically under a
// compare-and-swap on the status the order held when read.
func (h *ReportDeliveryFailureCommandHandler) Handle(ctx context.Context, cmd ReportDeliveryFailureCommand) error {
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
	if err = aggregate.ReportDeliveryFailure(cmd.RiderID()); err != nil {
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

	publishStatusChanged(ctx, h.events, h.logger, aggregate)
	return nil
}
