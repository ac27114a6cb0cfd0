package commands

import (
	"errors"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrReportRiderLocationCommandIsNotConstructed = errors.New(
	"ReportRiderLocationCommand must be created via NewReportRiderLocationCommand constructor",
)

// ReportRiderLocationCommand carries one GPS sample from the rider working
// an order. Samples update the rider's liveness record and are relayed to
// anyone watching the order's live map.
type ReportRiderLocationCommand struct {
	orderID    kernel.UUID
	riderID    kernel.UUID
	point      kernel.GeoPoint
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewReportRiderLocationCommand creates a validated command carrying one
// location sample.
func NewReportRiderLocationCommand(
	orderID, riderID kernel.UUID,
	point kernel.GeoPoint,
	reportedAt time.Time,
) (ReportRiderLocationCommand, error) {
	if err := errors.Join(orderID.Validate(), riderID.Validate(), point.Validate()); err != nil {
		return ReportRiderLocationCommand{}, err
	}
	if reportedAt.IsZero() {
		return ReportRiderLocationCommand{}, errs.NewValueIsRequiredError("reportedAt")
	}

	return ReportRiderLocationCommand{
		orderID:    orderID,
		riderID:    riderID,
		point:      point,
		reportedAt: reportedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being delivered.
func (c *ReportRiderLocationCommand) OrderID() kernel.UUID { return c.orderID }

// RiderID returns the identifier of the reporting rider.
func (c *ReportRiderLocationCommand) RiderID() kernel.UUID { return c.riderID }

// Point returns the reported coordinate.
func (c *ReportRiderLocationCommand) Point() kernel.GeoPoint { return c.point }

// ReportedAt returns the sample timestamp.
func (c *ReportRiderLocationCommand) ReportedAt() time.Time { return c.reportedAt }

// Validate ensures the command was created through the constructor.
func (c *ReportRiderLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportRiderLocationCommandIsNotConstructed)
}
