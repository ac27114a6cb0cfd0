package order

import (
	"errors"
	"fmt"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// Line is one ordered item: a product, a quantity, and the unit price at the
// time the order was placed. Lines are immutable once the order leaves the
// cart; the aggregate never exposes a way to change them.
type Line struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
}

// NewLine creates a validated order line. Quantity must be positive.
func NewLine(productID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Line{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ProductID returns the ordered product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the unit price captured at placement time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns unit price multiplied by quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MultiplyBy(l.quantity)
}

// sumLines computes the order total from its lines. At least one line is
// required for a valid order.
func sumLines(lines []Line) (kernel.Money, error) {
	if len(lines) == 0 {
		return 0, errors.New("order must contain at least one line item")
	}

	var total kernel.Money
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total, nil
}
