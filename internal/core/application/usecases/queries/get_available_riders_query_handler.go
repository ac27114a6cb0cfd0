package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
)

// GetAvailableRidersQueryHandler retrieves the assignment picklist from the
// database.
type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRidersQueryHandler creates a handler for picklist queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle executes the query.
// Riders are sorted by name for a stable picklist.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]GetAvailableRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			last_reported_at
		FROM riders
		WHERE available
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]GetAvailableRidersQueryResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var name, phone string
		var lastReportedAt *time.Time

		if err = rows.Scan(&id, &name, &phone, &lastReportedAt); err != nil {
			return nil, err
		}

		resp := GetAvailableRidersQueryResponse{
			Name:           name,
			Phone:          phone,
			LastReportedAt: lastReportedAt,
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return riders, nil
}
