package commands

import (
	"errors"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand records that the rider handed over the parcel and
// collected the cash payment. Delivery and payment settle as one step.
type CompleteDeliveryCommand struct {
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a validated command to complete a delivery.
func NewCompleteDeliveryCommand(orderID, riderID kernel.UUID) (CompleteDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), riderID.Validate()); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		orderID: orderID,
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the delivered order.
func (c *CompleteDeliveryCommand) OrderID() kernel.UUID { return c.orderID }

// RiderID returns the identifier of the acting rider.
func (c *CompleteDeliveryCommand) RiderID() kernel.UUID { return c.riderID }

// Validate ensures the command was created through the constructor.
func (c *CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}
