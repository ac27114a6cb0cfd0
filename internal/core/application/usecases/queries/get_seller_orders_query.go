package queries

import (
	"errors"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
	"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
)

// GetSellerOrdersQuery retrieves a pharmacy's order book, newest first.
// An optional status filter narrows the list to one tab of the seller
// dashboard (incoming, preparing, awaiting rider and so on).
type GetSellerOrdersQuery struct {
	sellerID kernel.UUID
	status   string

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a query for a seller's orders.
// Pass an empty status to list every order regardless of state.
func NewGetSellerOrdersQuery(sellerID kernel.UUID, status string) (GetSellerOrdersQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerOrdersQuery{}, err
	}

	return GetSellerOrdersQuery{
		sellerID: sellerID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// SellerID returns the identifier of the pharmacy.
func (q *GetSellerOrdersQuery) SellerID() kernel.UUID { return q.sellerID }

// Status returns the optional status filter, empty for all orders.
func (q *GetSellerOrdersQuery) Status() string { return q.status }

// Validate ensures the query was created through the constructor.
func (q *GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// GetSellerOrdersQueryResponse is one row of the seller's order list.
type GetSellerOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	BuyerID     kernel.UUID
	Status      string
	Progress    int
	TotalAmount int64
	CreatedAt   time.Time
}
