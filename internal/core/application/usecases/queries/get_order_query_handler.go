package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order projection from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and assembles the order with its lines.
// Returns an ObjectNotFoundError wrapping errs.ErrObjectNotFound when no
// order exists under the given id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row struct {
		ID              uuid.UUID
		OrderNumber     string
		BuyerID         uuid.UUID
		SellerID        uuid.UUID
		RiderID         *uuid.UUID
		Status          string
		TotalAmount     int64
		PaymentMethod   string
		PaymentStatus   string
		DeliveryAddress string
		RejectionReason *string
		CreatedAt       time.Time
		UpdatedAt       time.Time
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			buyer_id,
			seller_id,
			rider_id,
			status,
			total_amount,
			payment_method,
			payment_status,
			delivery_address,
			rejection_reason,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Scan(&row).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if row.ID == uuid.Nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	resp := GetOrderQueryResponse{
		OrderNumber:     row.OrderNumber,
		Status:          row.Status,
		TotalAmount:     row.TotalAmount,
		PaymentMethod:   row.PaymentMethod,
		PaymentStatus:   row.PaymentStatus,
		DeliveryAddress: row.DeliveryAddress,
		RejectionReason: row.RejectionReason,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	if resp.ID, err = kernel.UUIDFromBytes(row.ID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(row.BuyerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SellerID, err = kernel.UUIDFromBytes(row.SellerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if row.RiderID != nil {
		riderID, idErr := kernel.UUIDFromBytes(row.RiderID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.RiderID = &riderID
	}

	status, err := order.StatusFromString(row.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Progress = status.Progress()

	if resp.Lines, err = h.loadLines(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]GetOrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]GetOrderLineResponse, 0)
	for rows.Next() {
		var productID uuid.UUID
		var quantity int
		var unitPrice int64
		if err = rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		line := GetOrderLineResponse{
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Subtotal:  unitPrice * int64(quantity),
		}
		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return lines, nil
}
