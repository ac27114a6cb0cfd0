package commands

import (
	"context"
	"log/slog"
	"time"
)

// SweepStaleRidersCommandHandler takes silent riders off the available list.
// A rider who stops reporting locations keeps showing up in the assignment
// picklist otherwise; the sweep flips them offline until they report again.
// There is no automatic reassignment of their in-flight orders.
type SweepStaleRidersCommandHandler struct {
	uowFactory RiderUoWFactory
	logger     *slog.Logger
}

// NewSweepStaleRidersCommandHandler creates a handler for the liveness sweep.
func NewSweepStaleRidersCommandHandler(uowFactory RiderUoWFactory, logger *slog.Logger) SweepStaleRidersCommandHandler {
	return SweepStaleRidersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the sweep command.
// Walks every available rider and flips the ones whose last report is older
// than the configured age. All flips commit in one transaction.
func (h *SweepStaleRidersCommandHandler) Handle(ctx context.Context, cmd SweepStaleRidersCommand) error {
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

	riderRepo := uow.RiderRepository()
	available, err := riderRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	swept := 0
	for _, r := range available {
		if !r.IsStale(now, cmd.StaleAfter()) {
			continue
		}

		r.GoOffline()
		if err = riderRepo.Update(ctx, r); err != nil {
			return err
		}
		swept++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if swept > 0 && h.logger != nil {
		h.logger.InfoContext(ctx, "swept stale riders offline",
			"count", swept,
			"stale_after", cmd.StaleAfter().String())
	}
	return nil
}
