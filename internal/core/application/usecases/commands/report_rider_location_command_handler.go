package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// ReportRiderLocationCommandHandler ingests rider GPS samples.
// Each sample refreshes the rider's liveness record transactionally, then is
// relayed to the order's location channel. The relay is plain pub/sub keyed
// by order id: no history, late subscribers only see samples published after
// they joined.
type ReportRiderLocationCommandHandler struct {
	uowFactory OrderRiderUoWFactory
	broadcast  ports.LocationBroadcast
	logger     *slog.Logger
}

// NewReportRiderLocationCommandHandler creates a handler for rider location
// reports.
func NewReportRiderLocationCommandHandler(
	uowFactory OrderRiderUoWFactory,
	broadcast ports.LocationBroadcast,
	logger *slog.Logger,
) ReportRiderLocationCommandHandler {
	return ReportRiderLocationCommandHandler{
		uowFactory: uowFactory,
		broadcast:  broadcast,
		logger:     logger,
	}
}

// Handle processes one location sample.
// Only the rider assigned to the order may report, and only while the parcel
// is actually moving (assigned or out for delivery). A relay failure is
// logged and swallowed: the next sample arrives in seconds anyway.
func (h *ReportRiderLocationCommandHandler) Handle(ctx context.Context, cmd ReportRiderLocationCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Rider() == nil || !aggregate.Rider().IsEqual(cmd.RiderID()) {
		return order.ErrRiderMismatch
	}
	if aggregate.Status() != order.RiderAssigned && aggregate.Status() != order.OutForDelivery {
		return order.ErrOrderNotInTransit
	}

	riderRepo := uow.RiderRepository()
	reporter, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = reporter.ReportLocation(cmd.Point(), cmd.ReportedAt()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, reporter); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sample := rider.LocationSample{Point: cmd.Point(), ReportedAt: cmd.ReportedAt()}
	if err = h.broadcast.Publish(ctx, cmd.OrderID(), sample); err != nil && h.logger != nil {
		h.logger.WarnContext(ctx, "failed to relay rider location",
			"order_id", cmd.OrderID().String(),
			"error", err)
	}
	return nil
}
