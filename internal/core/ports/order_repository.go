// Package ports defines repository and outbound interfaces for the order
// lifecycle core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate with
	// compare-and-swap semantics on the status column: the write applies only
	// if the stored status still equals expectedStatus. When a concurrent
	// transition got there first, Update returns a StatusConflictError and
	// the caller must refetch and re-evaluate. This is the server-side guard
	// that prevents two conflicting transitions from both succeeding.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
