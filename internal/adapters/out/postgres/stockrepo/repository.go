// Package stockrepo persists per-product stock levels.
// Stock is a single counter per product: placement decrements it, the
// compensating actions on rejection, failure and cancellation add it back.
package stockrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// StockDTO represents the database structure for per-product stock levels.
type StockDTO struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for stock entities.
func (StockDTO) TableName() string {
	return "stock_levels"
}

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Reserve atomically deducts quantity units from the product's stock.
// The guard in the WHERE clause makes overselling impossible: when the
// product has fewer units than requested, zero rows match and the caller
// gets ports.ErrInsufficientStock.
func (r *GormStockRepository) Reserve(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Model(&StockDTO{}).
		Where("product_id = ? AND quantity >= ?", productID.Bytes(), quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrInsufficientStock
	}
	return nil
}

// Release adds quantity units back to the product's stock.
// Unknown products are an error: a release always compensates an earlier
// reservation, so the row must exist.
func (r *GormStockRepository) Release(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Model(&StockDTO{}).
		Where("product_id = ?", productID.Bytes()).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", productID.String())
	}
	return nil
}

// AvailableQuantity returns the product's current stock level.
func (r *GormStockRepository) AvailableQuantity(ctx context.Context, productID kernel.UUID) (int, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("product", productID.String())
		}
		return 0, err
	}

	return dto.Quantity, nil
}
