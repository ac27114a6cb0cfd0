package order

import (
	"fmt"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// Status represents the lifecycle state of a cash-on-delivery order.
// It implements a state machine with defined transitions so orders always
// follow the agreed workflow between seller, rider, and buyer.
//
// Happy path:
//
//	PendingPharmacyConfirmation ──> PreparingOrder ──> AwaitingRider
//	      ──> RiderAssigned ──> OutForDelivery ──> DeliveredAndPaid
//
// Off-path terminal states:
//
//	Cancelled       reachable from any non-terminal state
//	DeliveryFailed  reachable from OutForDelivery
//
// DeliveredAndPaid, DeliveryFailed, and Cancelled are terminal: no transition
// leaves them. Every transition method validates the current state and
// returns the next state or an error, never mutating the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPharmacyConfirmation is the initial status after checkout.
	// The seller has not yet accepted or rejected the order.
	PendingPharmacyConfirmation

	// PreparingOrder indicates the seller accepted the order and is
	// preparing the items for pickup.
	PreparingOrder

	// AwaitingRider indicates preparation is complete and the order is
	// waiting for the seller to pick a rider.
	AwaitingRider

	// RiderAssigned indicates a rider has been assigned and notified.
	RiderAssigned

	// OutForDelivery indicates the rider confirmed pickup and is en route
	// to the buyer.
	OutForDelivery

	// DeliveredAndPaid is the success terminal state: the rider delivered
	// the order and collected the cash.
	DeliveredAndPaid

	// DeliveryFailed is a failure terminal state reported by the rider.
	DeliveryFailed

	// Cancelled is a failure terminal state reached by seller rejection or
	// administrative cancellation.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                     "unknown",
		PendingPharmacyConfirmation: "pending_pharmacy_confirmation",
		PreparingOrder:              "preparing_order",
		AwaitingRider:               "awaiting_rider",
		RiderAssigned:               "rider_assigned",
		OutForDelivery:              "out_for_delivery",
		DeliveredAndPaid:            "delivered_and_paid",
		DeliveryFailed:              "delivery_failed",
		Cancelled:                   "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPharmacyConfirmation: "pending_pharmacy_confirmation",
		PreparingOrder:              "preparing_order",
		AwaitingRider:               "awaiting_rider",
		RiderAssigned:               "rider_assigned",
		OutForDelivery:              "out_for_delivery",
		DeliveredAndPaid:            "delivered_and_paid",
		DeliveryFailed:              "delivery_failed",
		Cancelled:                   "cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for unrecognized values, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, as stored in the database
// and rendered in API responses. Safe to call on any value, including invalid
// ones, for which it returns "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == DeliveredAndPaid || s == DeliveryFailed || s == Cancelled
}

// Progress returns the progress-bar percentage for the status. This mapping
// exists purely for display; it must not drive any business logic.
func (s Status) Progress() int {
	switch s {
	case PendingPharmacyConfirmation:
		return 10
	case PreparingOrder:
		return 30
	case AwaitingRider:
		return 50
	case RiderAssigned:
		return 65
	case OutForDelivery:
		return 80
	case DeliveredAndPaid:
		return 100
	default:
		return 0
	}
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment.
//
// Business rules:
//   - Orders before RiderAssigned must not reference a rider
//   - RiderAssigned, OutForDelivery, DeliveredAndPaid, and DeliveryFailed
//     orders must reference a rider
//   - Cancelled orders may or may not reference a rider, depending on how far
//     the order progressed before cancellation
func (s Status) ValidateCanHaveRider(hasRider bool) error {
	if s == Cancelled {
		return nil
	}

	requiresRider := s == RiderAssigned || s == OutForDelivery ||
		s == DeliveredAndPaid || s == DeliveryFailed

	if hasRider && !requiresRider {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a rider", s))
	}

	if !hasRider && requiresRider {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no rider", s))
	}

	return nil
}

// Accept transitions the status to PreparingOrder.
//
// Valid transitions:
//   - PendingPharmacyConfirmation -> PreparingOrder (seller accepts)
//
// Returns (0, error) from any other status; accepting an already-accepted
// order is a precondition failure, not a repeated side effect.
func (s Status) Accept() (Status, error) {
	if s != PendingPharmacyConfirmation {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s))
	}
	return PreparingOrder, nil
}

// Reject transitions the status to Cancelled.
//
// Valid transitions:
//   - PendingPharmacyConfirmation -> Cancelled (seller rejects with reason)
func (s Status) Reject() (Status, error) {
	if s != PendingPharmacyConfirmation {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s))
	}
	return Cancelled, nil
}

// MarkReady transitions the status to AwaitingRider.
//
// Valid transitions:
//   - PreparingOrder -> AwaitingRider (seller marks preparation complete)
func (s Status) MarkReady() (Status, error) {
	if s != PreparingOrder {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to mark ready", s))
	}
	return AwaitingRider, nil
}

// AssignRider transitions the status to RiderAssigned.
//
// Valid transitions:
//   - AwaitingRider -> RiderAssigned (seller picks an available rider)
func (s Status) AssignRider() (Status, error) {
	if s != AwaitingRider {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to assign a rider", s))
	}
	return RiderAssigned, nil
}

// ConfirmPickup transitions the status to OutForDelivery.
//
// Valid transitions:
//   - RiderAssigned -> OutForDelivery (rider confirms pickup)
func (s Status) ConfirmPickup() (Status, error) {
	if s != RiderAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to confirm pickup", s))
	}
	return OutForDelivery, nil
}

// CompleteDelivery transitions the status to DeliveredAndPaid.
//
// Valid transitions:
//   - OutForDelivery -> DeliveredAndPaid (rider delivered and collected cash)
func (s Status) CompleteDelivery() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete delivery", s))
	}
	return DeliveredAndPaid, nil
}

// ReportDeliveryFailure transitions the status to DeliveryFailed.
//
// Valid transitions:
//   - OutForDelivery -> DeliveryFailed (rider reports failure)
func (s Status) ReportDeliveryFailure() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to report delivery failure", s))
	}
	return DeliveryFailed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal state (administrative cancellation).
// Terminal states cannot be cancelled: no resurrection and no double
// cancellation.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is terminal and cannot be cancelled", s))
	}
	return Cancelled, nil
}
