package commands

import (
	"errors"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand records that the assigned rider collected the parcel
// from the pharmacy, putting the order out for delivery.
type ConfirmPickupCommand struct {
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a validated command to confirm pickup.
func NewConfirmPickupCommand(orderID, riderID kernel.UUID) (ConfirmPickupCommand, error) {
	if err := errors.Join(orderID.Validate(), riderID.Validate()); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return ConfirmPickupCommand{
		orderID: orderID,
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the picked-up order.
func (c *ConfirmPickupCommand) OrderID() kernel.UUID { return c.orderID }

// RiderID returns the identifier of the acting rider.
func (c *ConfirmPickupCommand) RiderID() kernel.UUID { return c.riderID }

// Validate ensures the command was created through the constructor.
func (c *ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}
