package ports

import (
	"context"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
)

// Contact is the name, phone and street address of a platform user (buyer
// or seller) as needed for notification dispatch. Address is the pickup
// point for sellers and may be empty for buyers.
type Contact struct {
	Name    string
	Phone   string
	Address string
}

// ContactDirectory resolves user identifiers to notification contacts.
// Riders carry their own phone on the aggregate; buyers and sellers are
// looked up here.
type ContactDirectory interface {
	Get(ctx context.Context, userID kernel.UUID) (Contact, error)
}
