package commands

import (
	"errors"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrReportDeliveryFailureCommandIsNotConstructed = errors.New(
	"ReportDeliveryFailureCommand must be created via NewReportDeliveryFailureCommand constructor",
)

// ReportDeliveryFailureCommand records that a delivery attempt could not be
// completed: buyer unreachable, refused the parcel, or could not pay.
type ReportDeliveryFailureCommand struct {
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReportDeliveryFailureCommand creates a validated command to report a
// failed delivery attempt.
func NewReportDeliveryFailureCommand(orderID, riderID kernel.UUID) (ReportDeliveryFailureCommand, error) {
	if err := errors.Join(orderID.Validate(), riderID.Validate()); err != nil {
		return ReportDeliveryFailureCommand{}, err
	}

	return ReportDeliveryFailureCommand{
		orderID: orderID,
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the failed order.
func (c *ReportDeliveryFailureCommand) OrderID() kernel.UUID { return c.orderID }

// RiderID returns the identifier of the reporting rider.
func (c *ReportDeliveryFailureCommand) RiderID() kernel.UUID { return c.riderID }

// Validate ensures the command was created through the constructor.
func (c *ReportDeliveryFailureCommand) Validate() error {
	return c.guard.Validate(ErrReportDeliveryFailureCommandIsNotConstructed)
}
