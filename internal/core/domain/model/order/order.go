package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrSellerMismatch is returned when a seller attempts an action on an
	// order owned by a different seller.
	ErrSellerMismatch = errors.New("order does not belong to this seller")
	// ErrRiderMismatch is returned when a rider reports on an order assigned
	// to a different rider.
	ErrRiderMismatch = errors.New("order is not assigned to this rider")

	// ErrOrderNotInTransit is returned when a location report arrives for an
	// order that is not currently between assignment and handover.
	ErrOrderNotInTransit = errors.New("order is not in transit")
	// ErrRejectionReasonRequired is returned when a seller rejects an order
	// without giving a reason.
	ErrRejectionReasonRequired = errs.NewValueIsRequiredError("rejection reason")
)

// RejectionRecord captures the reason a seller gave when rejecting an order.
// It is attached to the order for audit and notification purposes; it has no
// lifecycle of its own.
type RejectionRecord struct {
	Reason     string
	RejectedAt time.Time
}

// Order is the aggregate root for one cash-on-delivery transaction. It
// coordinates a seller, a rider, and a buyer across a fixed sequence of
// stages, and is the single source of truth for which actions are currently
// valid.
//
// Invariants:
//   - Total amount equals the sum of line subtotals at all times; lines are
//     immutable after placement.
//   - A rider reference exists iff the status is at or beyond RiderAssigned
//     (see Status.ValidateCanHaveRider).
//   - Status transitions follow the state machine in Status; terminal states
//     permit no further transitions.
//   - Payment status flips to paid exactly once, on CompleteDelivery.
//
// Orders can only be created through NewOrder (checkout) or RestoreOrder
// (reconstruction from persistence).
type Order struct {
	id          kernel.UUID
	orderNumber string

	buyerID  kernel.UUID
	sellerID kernel.UUID
	riderID  *kernel.UUID

	lines       []Line
	totalAmount kernel.Money

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	deliveryAddress string
	deliveryPoint   *kernel.GeoPoint

	status    Status
	rejection *RejectionRecord

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order entering the COD lifecycle at checkout.
//
// The order starts in PendingPharmacyConfirmation with payment unpaid and no
// rider. The total amount is computed from the lines; the caller is expected
// to have reserved stock for every line before or in the same transaction as
// persisting the order.
//
// Parameters:
//   - id: unique order identifier
//   - orderNumber: human-readable number, e.g. "ORD-1001"
//   - buyerID, sellerID: the transacting parties
//   - lines: at least one immutable line item
//   - deliveryAddress: free-text destination address
//   - deliveryPoint: optional destination coordinate (nil when the buyer
//     typed an address without picking a map point)
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	lines []Line,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
) (*Order, error) {
	total, err := sumLines(lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Order{
		lines:         append([]Line(nil), lines...),
		totalAmount:   total,
		paymentMethod: PaymentMethodCashOnDelivery,
		paymentStatus: PaymentUnpaid,
		status:        PendingPharmacyConfirmation,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryPoint(deliveryPoint),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence. Unlike
// NewOrder it accepts any lifecycle state, but still enforces the aggregate
// invariants: the stored total must match the line subtotals and the rider
// reference must be consistent with the status.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	riderID *kernel.UUID,
	lines []Line,
	totalAmount kernel.Money,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
	status Status,
	rejection *RejectionRecord,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	computed, err := sumLines(lines)
	if err != nil {
		return nil, err
	}
	if computed != totalAmount {
		return nil, errs.NewValueIsInvalidErrorWithCause("total amount",
			fmt.Errorf("stored total %d does not equal line total %d",
				totalAmount.Int64(), computed.Int64()))
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveRider(riderID != nil); err != nil {
		return nil, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		lines:         append([]Line(nil), lines...),
		totalAmount:   totalAmount,
		paymentMethod: paymentMethod,
		paymentStatus: paymentStatus,
		status:        status,
		rejection:     rejection,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
		rid := *riderID
		o.riderID = &rid
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryPoint(deliveryPoint),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// BuyerID returns the buying party's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the selling pharmacy/wholesaler's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Rider returns the assigned rider's identifier, or nil before assignment.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// Lines returns a copy of the order's line items.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// TotalAmount returns the computed order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PaymentMethod returns the order's payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the order's payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// DeliveryAddress returns the free-text destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryPoint returns the destination coordinate, or nil if none was given.
func (o *Order) DeliveryPoint() *kernel.GeoPoint {
	return o.deliveryPoint
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Rejection returns the rejection record, or nil if the order was never
// rejected.
func (o *Order) Rejection() *RejectionRecord {
	return o.rejection
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last state change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Progress returns the UI progress percentage for the current status.
func (o *Order) Progress() int {
	return o.status.Progress()
}

// Accept records the seller accepting the order, moving it to PreparingOrder.
//
// Guard: the acting seller must own the order. Accepting an order that has
// already left PendingPharmacyConfirmation fails with a status error and has
// no side effect.
func (o *Order) Accept(sellerID kernel.UUID) error {
	if err := o.validateSeller(sellerID); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.transition(newStatus)
	return nil
}

// Reject records the seller rejecting the order with a mandatory reason,
// moving it to Cancelled and attaching a RejectionRecord. The caller is
// responsible for releasing reserved stock in the same transaction.
func (o *Order) Reject(sellerID kernel.UUID, reason string) error {
	if err := o.validateSeller(sellerID); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return ErrRejectionReasonRequired
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.rejection = &RejectionRecord{
		Reason:     reason,
		RejectedAt: time.Now().UTC(),
	}
	o.transition(newStatus)
	return nil
}

// MarkReady records preparation completion, moving the order to AwaitingRider.
func (o *Order) MarkReady(sellerID kernel.UUID) error {
	if err := o.validateSeller(sellerID); err != nil {
		return err
	}

	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.transition(newStatus)
	return nil
}

// AssignRider assigns the given rider and moves the order to RiderAssigned.
//
// The rider's availability is a repository-level guard re-validated by the
// assignment handler inside the same transaction; the aggregate only enforces
// the status transition and the rider reference invariant.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AssignRider()
	if err != nil {
		return err
	}

	o.riderID = &riderID
	o.transition(newStatus)
	return nil
}

// ConfirmPickup records the assigned rider collecting the order from the
// seller, moving it to OutForDelivery.
func (o *Order) ConfirmPickup(riderID kernel.UUID) error {
	if err := o.validateRider(riderID); err != nil {
		return err
	}

	newStatus, err := o.status.ConfirmPickup()
	if err != nil {
		return err
	}

	o.transition(newStatus)
	return nil
}

// CompleteDelivery records a successful delivery with cash collected. The
// order moves to DeliveredAndPaid and the payment status flips to paid.
func (o *Order) CompleteDelivery(riderID kernel.UUID) error {
	if err := o.validateRider(riderID); err != nil {
		return err
	}

	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.paymentStatus = PaymentPaid
	o.transition(newStatus)
	return nil
}

// ReportDeliveryFailure records a failed delivery attempt, moving the order
// to DeliveryFailed. The caller is responsible for releasing reserved stock
// in the same transaction. Payment status is left unchanged.
func (o *Order) ReportDeliveryFailure(riderID kernel.UUID) error {
	if err := o.validateRider(riderID); err != nil {
		return err
	}

	newStatus, err := o.status.ReportDeliveryFailure()
	if err != nil {
		return err
	}

	o.transition(newStatus)
	return nil
}

// Cancel performs an administrative cancellation from any non-terminal state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.transition(newStatus)
	return nil
}

func (o *Order) transition(newStatus Status) {
	o.status = newStatus
	o.updatedAt = time.Now().UTC()
}

func (o *Order) validateSeller(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	if !o.sellerID.IsEqual(sellerID) {
		return ErrSellerMismatch
	}
	return nil
}

func (o *Order) validateRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.riderID == nil || !o.riderID.IsEqual(riderID) {
		return ErrRiderMismatch
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDeliveryPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}
	p := *point
	o.deliveryPoint = &p
	return nil
}
