package commands

import (
	"errors"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand signals that a pharmacy has finished preparing an
// order and it is ready for rider pickup.
type MarkOrderReadyCommand struct {
	orderID  kernel.UUID
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a validated command to mark an order ready.
func NewMarkOrderReadyCommand(orderID, sellerID kernel.UUID) (MarkOrderReadyCommand, error) {
	if err := errors.Join(orderID.Validate(), sellerID.Validate()); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return MarkOrderReadyCommand{
		orderID:  orderID,
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the prepared order.
func (c *MarkOrderReadyCommand) OrderID() kernel.UUID { return c.orderID }

// SellerID returns the identifier of the acting pharmacy.
func (c *MarkOrderReadyCommand) SellerID() kernel.UUID { return c.sellerID }

// Validate ensures the command was created through the constructor.
func (c *MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}
