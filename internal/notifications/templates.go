package notifications

import (
	"fmt"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/notification"
)

// Render produces the SMS text for a notification job.
// Texts are short and concrete: order number, what happened, and the one
// detail the recipient acts on (amount to pay, rejection reason, addresses).
func Render(message notification.Message) (string, error) {
	if err := message.Validate(); err != nil {
		return "", err
	}

	amount := kernel.Money(message.Amount)

	switch message.Event {
	case notification.EventOrderAccepted:
		return fmt.Sprintf("Your order %s has been confirmed and is being prepared. Pay %s in cash on delivery.",
			message.OrderNumber, amount), nil

	case notification.EventOrderRejected:
		if message.Reason != "" {
			return fmt.Sprintf("Your order %s was declined: %s. You have not been charged.",
				message.OrderNumber, message.Reason), nil
		}
		return fmt.Sprintf("Your order %s was declined. You have not been charged.",
			message.OrderNumber), nil

	case notification.EventRiderAssigned:
		if message.Role == notification.RoleRider {
			return fmt.Sprintf("New delivery %s. Pick up at %s, deliver to %s. Collect %s in cash.",
				message.OrderNumber, message.PickupAddress, message.DeliveryAddress, amount), nil
		}
		return fmt.Sprintf("A rider has been assigned to your order %s and will be on the way shortly.",
			message.OrderNumber), nil

	case notification.EventOrderDelivered:
		if message.Role == notification.RoleSeller {
			return fmt.Sprintf("Order %s was delivered and %s collected in cash.",
				message.OrderNumber, amount), nil
		}
		return fmt.Sprintf("Your order %s has been delivered. Thank you for paying %s.",
			message.OrderNumber, amount), nil

	case notification.EventOrderCancelled:
		return fmt.Sprintf("Your order %s has been cancelled. You have not been charged.",
			message.OrderNumber), nil

	default:
		return "", message.Event.Validate()
	}
}
