package ports

import (
	"context"
	"errors"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is returned by Reserve when fewer units are available
// than the reservation asks for.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockRepository manages per-product available stock levels.
//
// Reservation and release are both plain quantity adjustments; the engine
// does not track partial reservations. Releasing is the compensating action
// for rejection and delivery failure: it re-credits the full ordered quantity
// per line item, and runs in the same transaction as the guarded status
// update so a retried rejection can never double-credit.
type StockRepository interface {
	// Reserve decrements available stock for a product at order placement.
	// Fails when fewer than quantity units are available.
	Reserve(ctx context.Context, productID kernel.UUID, quantity int) error

	// Release re-credits quantity units of a product back to available stock.
	Release(ctx context.Context, productID kernel.UUID, quantity int) error

	// AvailableQuantity reports the current available stock for a product.
	AvailableQuantity(ctx context.Context, productID kernel.UUID) (int, error)
}
