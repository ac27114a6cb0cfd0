// Package notifications turns committed order transitions into SMS jobs and
// delivers them. The dispatcher runs inside the request path after commit
// and only enqueues; the worker consumes the queue, renders the text and
// talks to the gateway. Neither side can fail or roll back a transition.
package notifications

import (
	"context"
	"log/slog"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/notification"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
)

// Dispatcher builds notification jobs for committed transitions and hands
// them to the queue. Implements the command layer's Notifier interface.
//
// Every method is fire-and-forget: a missing contact or a broker hiccup is
// logged and swallowed. The status change already committed; the buyer not
// getting a text must never look like the order failing.
type Dispatcher struct {
	enqueuer ports.NotificationEnqueuer
	contacts ports.ContactDirectory
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(enqueuer ports.NotificationEnqueuer, contacts ports.ContactDirectory, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		enqueuer: enqueuer,
		contacts: contacts,
		logger:   logger,
	}
}

// OrderAccepted notifies the buyer that the pharmacy confirmed the order.
func (d *Dispatcher) OrderAccepted(ctx context.Context, aggregate *order.Order) {
	buyer, ok := d.lookup(ctx, aggregate, aggregate.BuyerID(), "buyer")
	if !ok {
		return
	}

	d.enqueue(ctx, notification.Message{
		Event:         notification.EventOrderAccepted,
		Role:          notification.RoleBuyer,
		To:            buyer.Phone,
		RecipientName: buyer.Name,
		OrderID:       aggregate.ID().String(),
		OrderNumber:   aggregate.OrderNumber(),
		Amount:        aggregate.TotalAmount().Int64(),
	})
}

// OrderRejected notifies the buyer of the rejection and its reason.
func (d *Dispatcher) OrderRejected(ctx context.Context, aggregate *order.Order) {
	buyer, ok := d.lookup(ctx, aggregate, aggregate.BuyerID(), "buyer")
	if !ok {
		return
	}

	reason := ""
	if rejection := aggregate.Rejection(); rejection != nil {
		reason = rejection.Reason
	}

	d.enqueue(ctx, notification.Message{
		Event:         notification.EventOrderRejected,
		Role:          notification.RoleBuyer,
		To:            buyer.Phone,
		RecipientName: buyer.Name,
		OrderID:       aggregate.ID().String(),
		OrderNumber:   aggregate.OrderNumber(),
		Amount:        aggregate.TotalAmount().Int64(),
		Reason:        reason,
	})
}

// RiderAssigned notifies the buyer that a rider is on the job and the rider
// where to collect and deliver. Two independent messages; one failing does
// not stop the other.
func (d *Dispatcher) RiderAssigned(ctx context.Context, aggregate *order.Order, assigned *rider.Rider) {
	if buyer, ok := d.lookup(ctx, aggregate, aggregate.BuyerID(), "buyer"); ok {
		d.enqueue(ctx, notification.Message{
			Event:         notification.EventRiderAssigned,
			Role:          notification.RoleBuyer,
			To:            buyer.Phone,
			RecipientName: buyer.Name,
			OrderID:       aggregate.ID().String(),
			OrderNumber:   aggregate.OrderNumber(),
			Amount:        aggregate.TotalAmount().Int64(),
		})
	}

	pickupAddress := ""
	if seller, ok := d.lookup(ctx, aggregate, aggregate.SellerID(), "seller"); ok {
		pickupAddress = seller.Address
	}

	d.enqueue(ctx, notification.Message{
		Event:           notification.EventRiderAssigned,
		Role:            notification.RoleRider,
		To:              assigned.Phone(),
		RecipientName:   assigned.Name(),
		OrderID:         aggregate.ID().String(),
		OrderNumber:     aggregate.OrderNumber(),
		Amount:          aggregate.TotalAmount().Int64(),
		PickupAddress:   pickupAddress,
		DeliveryAddress: aggregate.DeliveryAddress(),
	})
}

// OrderDelivered notifies the buyer and the seller that the parcel was
// handed over and the cash collected.
func (d *Dispatcher) OrderDelivered(ctx context.Context, aggregate *order.Order) {
	if buyer, ok := d.lookup(ctx, aggregate, aggregate.BuyerID(), "buyer"); ok {
		d.enqueue(ctx, notification.Message{
			Event:         notification.EventOrderDelivered,
			Role:          notification.RoleBuyer,
			To:            buyer.Phone,
			RecipientName: buyer.Name,
			OrderID:       aggregate.ID().String(),
			OrderNumber:   aggregate.OrderNumber(),
			Amount:        aggregate.TotalAmount().Int64(),
		})
	}

	if seller, ok := d.lookup(ctx, aggregate, aggregate.SellerID(), "seller"); ok {
		d.enqueue(ctx, notification.Message{
			Event:         notification.EventOrderDelivered,
			Role:          notification.RoleSeller,
			To:            seller.Phone,
			RecipientName: seller.Name,
			OrderID:       aggregate.ID().String(),
			OrderNumber:   aggregate.OrderNumber(),
			Amount:        aggregate.TotalAmount().Int64(),
		})
	}
}

// OrderCancelled notifies the buyer that the order was closed.
func (d *Dispatcher) OrderCancelled(ctx context.Context, aggregate *order.Order) {
	buyer, ok := d.lookup(ctx, aggregate, aggregate.BuyerID(), "buyer")
	if !ok {
		return
	}

	d.enqueue(ctx, notification.Message{
		Event:         notification.EventOrderCancelled,
		Role:          notification.RoleBuyer,
		To:            buyer.Phone,
		RecipientName: buyer.Name,
		OrderID:       aggregate.ID().String(),
		OrderNumber:   aggregate.OrderNumber(),
		Amount:        aggregate.TotalAmount().Int64(),
	})
}

func (d *Dispatcher) lookup(ctx context.Context, aggregate *order.Order, userID kernel.UUID, role string) (ports.Contact, bool) {
	contact, err := d.contacts.Get(ctx, userID)
	if err != nil {
		d.logger.WarnContext(ctx, "skipping notification, contact lookup failed",
			"order_id", aggregate.ID().String(),
			"role", role,
			"error", err)
		return ports.Contact{}, false
	}
	return contact, true
}

func (d *Dispatcher) enqueue(ctx context.Context, message notification.Message) {
	if err := d.enqueuer.Enqueue(ctx, message); err != nil {
		d.logger.WarnContext(ctx, "failed to enqueue notification",
			"event", string(message.Event),
			"role", string(message.Role),
			"order_id", message.OrderID,
			"error", err)
	}
}
