package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
)

// GetSellerOrdersQueryHandler retrieves a pharmacy's order list from the
// database.
type GetSellerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerOrdersQueryHandler creates a handler for seller order queries.
// Requires a GORM database connection for query execution.
func NewGetSellerOrdersQueryHandler(db *gorm.DB) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
// The status filter is validated against the known status names so a typo
// returns an error rather than an empty list.
func (h GetSellerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSellerOrdersQuery,
) ([]GetSellerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			order_number,
			buyer_id,
			status,
			total_amount,
			created_at
		FROM orders
		WHERE seller_id = ?
	`
	args := []any{query.SellerID().String()}

	if query.Status() != "" {
		if _, err := order.StatusFromString(query.Status()); err != nil {
			return nil, err
		}
		sqlQuery += " AND status = ?"
		args = append(args, query.Status())
	}
	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetSellerOrdersQueryResponse, 0)
	for rows.Next() {
		var id, buyerID uuid.UUID
		var orderNumber, statusName string
		var totalAmount int64
		var createdAt time.Time

		if err = rows.Scan(&id, &orderNumber, &buyerID, &statusName, &totalAmount, &createdAt); err != nil {
			return nil, err
		}

		resp := GetSellerOrdersQueryResponse{
			OrderNumber: orderNumber,
			Status:      statusName,
			TotalAmount: totalAmount,
			CreatedAt:   createdAt,
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}

		status, statusErr := order.StatusFromString(statusName)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Progress = status.Progress()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
