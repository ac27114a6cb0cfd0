package queries

import (
	"errors"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines for detail screens.
// All three roles read the same projection: the buyer's tracking page, the
// seller's order detail and the rider's job card.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// OrderID returns the identifier of the requested order.
func (q *GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// Validate ensures the query was created through the constructor.
func (q *GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderLineResponse represents one line item of the order projection.
type GetOrderLineResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

// GetOrderQueryResponse is the full order projection.
// Progress is the percentage shown on the buyer's tracking bar; Rider fields
// are nil until a rider has been assigned, and RejectionReason is only set
// when a pharmacy rejected the order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	BuyerID         kernel.UUID
	SellerID        kernel.UUID
	RiderID         *kernel.UUID
	Status          string
	Progress        int
	TotalAmount     int64
	PaymentMethod   string
	PaymentStatus   string
	DeliveryAddress string
	RejectionReason *string
	Lines           []GetOrderLineResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
