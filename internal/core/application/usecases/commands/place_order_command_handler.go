package commands

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Persists the new order and reserves stock for every line within a single
// transaction, so an order can never exist without its stock being held.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, events, logger)
//	cmd, _ := NewPlaceOrderCommand(orderID, "ORD-1001", buyerID, sellerID, lines, "Mbezi Beach, Dar es Salaam", nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now awaiting pharmacy confirmation
type PlaceOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderStockUoWFactory since placement touches both the order and
// stock repositories transactionally.
func NewPlaceOrderCommandHandler(
	uowFactory OrderStockUoWFactory,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// Creates the aggregate in pending confirmation status, reserves stock for
// each line and persists the order; everything rolls back together on error.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.BuyerID(),
		cmd.SellerID(),
		cmd.Lines(),
		cmd.DeliveryAddress(),
		cmd.DeliveryPoint(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	for _, line := range aggregate.Lines() {
		if err = stockRepo.Reserve(ctx, line.ProductID(), line.Quantity()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.events, h.logger, aggregate)
	return nil
}
