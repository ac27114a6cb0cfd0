// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column is the compare-and-swap guard for concurrent transitions,
// stored by name so the guard reads naturally in SQL.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"uniqueIndex"`
	BuyerID         uuid.UUID  `gorm:"type:uuid;index"`
	SellerID        uuid.UUID  `gorm:"type:uuid;index"`
	RiderID         *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"index"`
	TotalAmount     int64
	PaymentMethod   string
	PaymentStatus   string
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLon     *float64
	RejectionReason *string
	RejectedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one line item of a persisted order.
type OrderLineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UnitPrice int64
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	var deliveryLat, deliveryLon *float64
	if point := aggregate.DeliveryPoint(); point != nil {
		lat, lon := point.Latitude(), point.Longitude()
		deliveryLat, deliveryLon = &lat, &lon
	}

	var rejectionReason *string
	var rejectedAt *time.Time
	if rejection := aggregate.Rejection(); rejection != nil {
		rejectionReason = &rejection.Reason
		rejectedAt = &rejection.RejectedAt
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Int64(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		BuyerID:         aggregate.BuyerID().Bytes(),
		SellerID:        aggregate.SellerID().Bytes(),
		RiderID:         riderID,
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount().Int64(),
		PaymentMethod:   string(aggregate.PaymentMethod()),
		PaymentStatus:   string(aggregate.PaymentStatus()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DeliveryLat:     deliveryLat,
		DeliveryLon:     deliveryLon,
		RejectionReason: rejectionReason,
		RejectedAt:      rejectedAt,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Lines:           lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		unitPrice, priceErr := kernel.NewMoney(lineDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, newLineErr := order.NewLine(productID, lineDTO.Quantity, unitPrice)
		if newLineErr != nil {
			return nil, newLineErr
		}
		lines = append(lines, line)
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	var deliveryPoint *kernel.GeoPoint
	if dto.DeliveryLat != nil && dto.DeliveryLon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.DeliveryLat, *dto.DeliveryLon)
		if pointErr != nil {
			return nil, pointErr
		}
		deliveryPoint = &point
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var rejection *order.RejectionRecord
	if dto.RejectionReason != nil && dto.RejectedAt != nil {
		rejection = &order.RejectionRecord{
			Reason:     *dto.RejectionReason,
			RejectedAt: *dto.RejectedAt,
		}
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		buyerID,
		sellerID,
		riderID,
		lines,
		totalAmount,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.DeliveryAddress,
		deliveryPoint,
		status,
		rejection,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
