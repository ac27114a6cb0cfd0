package commands

import (
	"errors"
	"strings"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand enters an order into the COD lifecycle at checkout.
// The order starts pending seller confirmation; stock for every line is
// reserved in the same transaction that persists the order.
type PlaceOrderCommand struct {
	orderID         kernel.UUID
	orderNumber     string
	buyerID         kernel.UUID
	sellerID        kernel.UUID
	lines           []order.Line
	deliveryAddress string
	deliveryPoint   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a validated command to place an order.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	lines []order.Line,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
) (PlaceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), buyerID.Validate(), sellerID.Validate()); err != nil {
		return PlaceOrderCommand{}, err
	}
	if strings.TrimSpace(orderNumber) == "" {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("order number")
	}
	if len(lines) == 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("order lines")
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("delivery address")
	}

	return PlaceOrderCommand{
		orderID:         orderID,
		orderNumber:     orderNumber,
		buyerID:         buyerID,
		sellerID:        sellerID,
		lines:           append([]order.Line(nil), lines...),
		deliveryAddress: deliveryAddress,
		deliveryPoint:   deliveryPoint,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier for the new order.
func (c *PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// OrderNumber returns the human-readable order number.
func (c *PlaceOrderCommand) OrderNumber() string { return c.orderNumber }

// BuyerID returns the ordering customer's identifier.
func (c *PlaceOrderCommand) BuyerID() kernel.UUID { return c.buyerID }

// SellerID returns the selling pharmacy's identifier.
func (c *PlaceOrderCommand) SellerID() kernel.UUID { return c.sellerID }

// Lines returns the ordered line items.
func (c *PlaceOrderCommand) Lines() []order.Line { return append([]order.Line(nil), c.lines...) }

// DeliveryAddress returns the free-text destination address.
func (c *PlaceOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// DeliveryPoint returns the optional destination coordinate.
func (c *PlaceOrderCommand) DeliveryPoint() *kernel.GeoPoint { return c.deliveryPoint }

// Validate ensures the command was created through the constructor.
func (c *PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}
