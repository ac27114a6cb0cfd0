// Package contactrepo resolves user ids to notification contact details.
// Buyers and sellers are managed by a separate account system; this adapter
// reads the contact projection kept in the local database.
package contactrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/ports"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"
)

// ContactDTO represents the database structure for notification contacts.
type ContactDTO struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Phone   string
	Address string
}

// TableName specifies the database table name for contact entities.
func (ContactDTO) TableName() string {
	return "contacts"
}

// GormContactDirectory implements ContactDirectory using GORM.
type GormContactDirectory struct {
	db *gorm.DB
}

// NewGormContactDirectory creates a new GORM contact directory.
func NewGormContactDirectory(db *gorm.DB) *GormContactDirectory {
	return &GormContactDirectory{db: db}
}

// Get retrieves the contact details for a user.
func (d *GormContactDirectory) Get(ctx context.Context, userID kernel.UUID) (ports.Contact, error) {
	if err := userID.Validate(); err != nil {
		return ports.Contact{}, err
	}

	var dto ContactDTO
	if err := d.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Contact{}, errs.NewObjectNotFoundError("contact", userID.String())
		}
		return ports.Contact{}, err
	}

	return ports.Contact{Name: dto.Name, Phone: dto.Phone, Address: dto.Address}, nil
}
