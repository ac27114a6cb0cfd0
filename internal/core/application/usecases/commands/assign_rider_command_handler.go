package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/services"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// AssignRiderCommandHandler orchestrates manual rider assignment.
// The seller picks a rider from the available list; the handler re-reads the
// rider inside the transaction and lets the domain service confirm the rider
// is still available, so a stale picklist cannot assign a busy rider.
type AssignRiderCommandHandler struct {
	uowFactory OrderRiderUoWFactory
	notifier   Notifier
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewAssignRiderCommandHandler creates a handler for rider assignment operations.
// Requires an OrderRiderUoWFactory for coordinating updates to both aggregates.
func NewAssignRiderCommandHandler(
	uowFactory OrderRiderUoWFactory,
	notifier Notifier,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the rider assignment command.
// Loads the order and the chosen rider, applies the assignment through
// RiderAssignmentService and persists both entities in a single transaction.
// The order update is guarded by the status it held when read; a concurrent
// assignment loses with a status conflict instead of silently overwriting.
func (h *AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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
	riderRepo := uow.RiderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !aggregate.SellerID().IsEqual(cmd.SellerID()) {
		return order.ErrSellerMismatch
	}

	chosen, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	expected := aggregate.Status()
	if err = services.NewRiderAssignmentService().Assign(aggregate, chosen); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, chosen); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.RiderAssigned(ctx, aggregate, chosen)
	publishStatusChanged(ctx, h.events, h.logger, aggregate)
	return nil
}
