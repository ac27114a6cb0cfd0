package queries

import (
	"errors"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/guard"
)

var ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
	"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
)

// GetAvailableRidersQuery retrieves the rider picklist for manual assignment.
// Only riders currently flagged available appear; the authoritative check
// still happens when the seller submits the assignment.
type GetAvailableRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableRidersQuery creates a parameterless query for the picklist.
func NewGetAvailableRidersQuery() GetAvailableRidersQuery {
	return GetAvailableRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q *GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

// GetAvailableRidersQueryResponse is one entry of the rider picklist.
// LastReportedAt is nil for riders who have never sent a location sample.
type GetAvailableRidersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Phone          string
	LastReportedAt *time.Time
}
