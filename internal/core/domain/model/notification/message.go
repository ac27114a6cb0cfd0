// Package notification defines the outbound message vocabulary for order
// lifecycle events. Messages are enqueued by command handlers and rendered
// and delivered by an independent worker; delivery is best-effort and never
// blocks or reverses the transition that produced the message.
package notification

import (
	"fmt"
	"strings"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// EventType tags a message with the lifecycle transition that produced it.
// Each event type maps to exactly one recipient role, or a fixed pair of
// recipients sent as two independent messages (rider assignment).
type EventType string

const (
	// EventOrderAccepted notifies the buyer that the seller accepted.
	EventOrderAccepted EventType = "order_accepted"
	// EventOrderRejected notifies the buyer of a rejection, with the reason.
	EventOrderRejected EventType = "order_rejected"
	// EventRiderAssigned notifies the buyer and the rider of an assignment.
	EventRiderAssigned EventType = "rider_assigned"
	// EventOrderDelivered notifies the buyer and the seller that delivery
	// completed and cash was collected.
	EventOrderDelivered EventType = "order_delivered"
	// EventOrderCancelled notifies the buyer of an administrative cancellation.
	EventOrderCancelled EventType = "order_cancelled"
)

// Validate checks that the event type is one of the defined values.
func (e EventType) Validate() error {
	switch e {
	case EventOrderAccepted, EventOrderRejected, EventRiderAssigned,
		EventOrderDelivered, EventOrderCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("event type",
			fmt.Errorf("%q is not a valid notification event type", string(e)))
	}
}

// RecipientRole identifies which actor a message addresses.
type RecipientRole string

const (
	// RoleBuyer addresses the ordering customer.
	RoleBuyer RecipientRole = "buyer"
	// RoleSeller addresses the pharmacy or wholesaler.
	RoleSeller RecipientRole = "seller"
	// RoleRider addresses the delivery rider.
	RoleRider RecipientRole = "rider"
)

// Message is one queued notification job. It carries structured fields
// rather than rendered text; the worker renders the template for the event
// type at delivery time.
type Message struct {
	Event EventType     `json:"event"`
	Role  RecipientRole `json:"role"`

	// To is the recipient phone as stored; the dispatch boundary normalizes
	// it to E.164 before sending.
	To            string `json:"to"`
	RecipientName string `json:"recipient_name,omitempty"`

	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`

	// Amount is the order total in minor currency units.
	Amount int64 `json:"amount"`

	// Reason carries the rejection reason for EventOrderRejected.
	Reason string `json:"reason,omitempty"`

	// Addresses accompany EventRiderAssigned so the rider knows where to
	// collect and deliver.
	PickupAddress   string `json:"pickup_address,omitempty"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
}

// Validate checks the minimal shape required to attempt delivery.
func (m Message) Validate() error {
	if err := m.Event.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(m.To) == "" {
		return errs.NewValueIsRequiredError("recipient phone")
	}
	if strings.TrimSpace(m.OrderNumber) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}
