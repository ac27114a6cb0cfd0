// Package riderrepo provides data transfer objects and mapping functions for rider persistence.
package riderrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// The available flag feeds the assignment picklist; the last report columns
// feed the liveness sweep.
type RiderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Phone          string
	Available      bool `gorm:"index"`
	LastLat        *float64
	LastLon        *float64
	LastReportedAt *time.Time
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	dto := RiderDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Available: aggregate.IsAvailable(),
	}

	if sample := aggregate.LastLocation(); sample != nil {
		lat, lon := sample.Point.Latitude(), sample.Point.Longitude()
		reportedAt := sample.ReportedAt
		dto.LastLat, dto.LastLon = &lat, &lon
		dto.LastReportedAt = &reportedAt
	}

	return dto
}

// toDomain converts a database DTO to a rider domain aggregate using RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var lastLocation *rider.LocationSample
	if dto.LastLat != nil && dto.LastLon != nil && dto.LastReportedAt != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LastLat, *dto.LastLon)
		if pointErr != nil {
			return nil, pointErr
		}
		lastLocation = &rider.LocationSample{
			Point:      point,
			ReportedAt: *dto.LastReportedAt,
		}
	}

	return rider.RestoreRider(id, dto.Name, dto.Phone, dto.Available, lastLocation)
}
