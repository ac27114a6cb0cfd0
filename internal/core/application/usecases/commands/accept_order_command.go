package commands

import (
	"errors"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand records a pharmacy's confirmation of a pending order.
type AcceptOrderCommand struct {
	orderID  kernel.UUID
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a validated command to accept an order.
func NewAcceptOrderCommand(orderID, sellerID kernel.UUID) (AcceptOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), sellerID.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID:  orderID,
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being accepted.
func (c *AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }

// SellerID returns the identifier of the acting pharmacy.
func (c *AcceptOrderCommand) SellerID() kernel.UUID { return c.sellerID }

// Validate ensures the command was created through the constructor.
func (c *AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}
