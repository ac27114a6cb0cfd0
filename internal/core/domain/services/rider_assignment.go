package services

import (
	"errors"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
)

// ErrRiderNotAvailable is returned when the chosen rider is not in the
// available set at the moment of assignment. Availability is re-validated
// here, server-side, regardless of what the picklist showed the seller.
var ErrRiderNotAvailable = errors.New("rider is not available for assignment")

// RiderAssignmentService is a domain service that attaches a seller-chosen
// rider to an order.
//
// Selection is a manual choice made by the seller through a picklist; the
// system does not auto-assign or rank riders. The service's job is the guard:
// the rider must be available right now, and the order must be awaiting a
// rider. Both checks happen on server-side state inside the caller's
// transaction, never on client claims.
type RiderAssignmentService struct{}

// NewRiderAssignmentService creates a new RiderAssignmentService.
func NewRiderAssignmentService() RiderAssignmentService {
	return RiderAssignmentService{}
}

// Assign validates the chosen rider, moves the order to RiderAssigned and
// takes the rider off the available list for the duration of the delivery.
//
// Returns:
//   - ErrRiderNotAvailable if the rider's availability flag is off
//   - a status error if the order is not in AwaitingRider
//   - validation errors for improperly constructed aggregates
//
// On any error both aggregates are left unchanged.
func (s RiderAssignmentService) Assign(o *order.Order, chosen *rider.Rider) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := chosen.Validate(); err != nil {
		return err
	}

	if !chosen.IsAvailable() {
		return ErrRiderNotAvailable
	}

	if err := o.AssignRider(chosen.ID()); err != nil {
		return err
	}

	chosen.GoOffline()
	return nil
}
