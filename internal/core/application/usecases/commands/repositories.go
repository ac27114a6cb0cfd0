// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// guarded persistence, and decoupled side effects (notifications, events).
package commands

import (
	"context"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its transaction touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (accept, mark ready, pickup, delivery, cancel).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderStockUoW manages transactions that touch orders and stock in one
	// atomic step: placement (reserve) and the compensating re-credit on
	// rejection or delivery failure.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
	}

	// OrderStockUoWFactory creates new order+stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// OrderRiderUoW manages transactions that read rider state while
	// updating an order (rider assignment).
	OrderRiderUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
	}

	// OrderRiderUoWFactory creates new order+rider unit of work instances.
	OrderRiderUoWFactory interface {
		Create() OrderRiderUoW
	}

	// FulfillmentUoW manages transactions for terminal transitions that may
	// touch all three repositories at once: delivery completion and failure
	// free the assigned rider, and failure or cancellation re-credit stock.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
		StockRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// RiderUoW manages transactions for rider-only operations
	// (availability sweep, location reports).
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}
)

// Notifier publishes buyer/seller/rider notifications for a committed
// transition. Implementations are fire-and-forget: they log their own
// failures and never return them, so a notification problem can never roll
// back or block the status change that triggered it.
type Notifier interface {
	OrderAccepted(ctx context.Context, aggregate *order.Order)
	OrderRejected(ctx context.Context, aggregate *order.Order)
	RiderAssigned(ctx context.Context, aggregate *order.Order, assigned *rider.Rider)
	OrderDelivered(ctx context.Context, aggregate *order.Order)
	OrderCancelled(ctx context.Context, aggregate *order.Order)
}
