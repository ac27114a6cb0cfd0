package commands

import (
	"errors"
	"strings"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand records a pharmacy's refusal of a pending order.
// A reason is mandatory; it is stored on the order and relayed to the buyer.
type RejectOrderCommand struct {
	orderID  kernel.UUID
	sellerID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a validated command to reject an order.
func NewRejectOrderCommand(orderID, sellerID kernel.UUID, reason string) (RejectOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), sellerID.Validate()); err != nil {
		return RejectOrderCommand{}, err
	}
	if strings.TrimSpace(reason) == "" {
		return RejectOrderCommand{}, errs.NewValueIsRequiredError("rejection reason")
	}

	return RejectOrderCommand{
		orderID:  orderID,
		sellerID: sellerID,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being rejected.
func (c *RejectOrderCommand) OrderID() kernel.UUID { return c.orderID }

// SellerID returns the identifier of the acting pharmacy.
func (c *RejectOrderCommand) SellerID() kernel.UUID { return c.sellerID }

// Reason returns the pharmacy's stated rejection reason.
func (c *RejectOrderCommand) Reason() string { return c.reason }

// Validate ensures the command was created through the constructor.
func (c *RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}
