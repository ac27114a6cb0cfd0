package commands

import (
	"errors"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand attaches a seller-chosen rider to an order that is
// awaiting pickup. The choice is manual; the handler re-checks availability
// against current server state before committing.
type AssignRiderCommand struct {
	orderID  kernel.UUID
	sellerID kernel.UUID
	riderID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a validated command to assign a rider.
func NewAssignRiderCommand(orderID, sellerID, riderID kernel.UUID) (AssignRiderCommand, error) {
	if err := errors.Join(orderID.Validate(), sellerID.Validate(), riderID.Validate()); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		orderID:  orderID,
		sellerID: sellerID,
		riderID:  riderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order receiving a rider.
func (c *AssignRiderCommand) OrderID() kernel.UUID { return c.orderID }

// SellerID returns the identifier of the acting pharmacy.
func (c *AssignRiderCommand) SellerID() kernel.UUID { return c.sellerID }

// RiderID returns the identifier of the chosen rider.
func (c *AssignRiderCommand) RiderID() kernel.UUID { return c.riderID }

// Validate ensures the command was created through the constructor.
func (c *AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}
