package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// publishStatusChanged announces a committed transition to downstream event
// consumers. Best-effort: a publish failure is logged and swallowed.
func publishStatusChanged(
	ctx context.Context,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
	aggregate *order.Order,
) {
	if events == nil {
		return
	}
	if err := events.PublishStatusChanged(ctx, aggregate); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to publish order status change",
			"order_id", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"error", err)
	}
}

// freeAssignedRider puts the order's rider back on the available list after
// a delivery attempt ends, successfully or not. No-op when the order never
// had a rider. Runs inside the caller's transaction.
func freeAssignedRider(ctx context.Context, riderRepo ports.RiderRepository, aggregate *order.Order) error {
	if aggregate.Rider() == nil {
		return nil
	}

	assigned, err := riderRepo.Get(ctx, *aggregate.Rider())
	if err != nil {
		return err
	}

	assigned.GoOnline()
	return riderRepo.Update(ctx, assigned)
}

// releaseOrderStock re-credits the full ordered quantity of every line back
// to available stock. Runs inside the caller's transaction so the credit
// commits atomically with the guarded status update.
func releaseOrderStock(ctx context.Context, stockRepo ports.StockRepository, aggregate *order.Order) error {
	for _, line := range aggregate.Lines() {
		if err := stockRepo.Release(ctx, line.ProductID(), line.Quantity()); err != nil {
			return err
		}
	}
	return nil
}
