// Package routerepo persists the Route aggregate.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RouteDTO struct {
	ID                       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RouteCode                string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name                     string          `gorm:"type:varchar(255);not null"`
	Origin                   string          `gorm:"type:varchar(255)"`
	Destination              string          `gorm:"type:varchar(255)"`
	TotalDistance            decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	EstimatedDurationMinutes int             `gorm:"not null;default:0"`
	TotalTripsCompleted      int             `gorm:"not null;default:0"`
	AverageActualDuration    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Version                  int64           `gorm:"not null;default:0"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	def := r.Definition()
	stats := r.Statistics()
	return RouteDTO{
		ID:                       r.ID().Bytes(),
		RouteCode:                r.Code(),
		Name:                     def.Name,
		Origin:                   def.Origin,
		Destination:              def.Destination,
		TotalDistance:            def.TotalDistance,
		EstimatedDurationMinutes: def.EstimatedDurationMinutes,
		TotalTripsCompleted:      stats.TotalTripsCompleted,
		AverageActualDuration:    stats.AverageActualDuration,
		Version:                  r.Version(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return route.RestoreRoute(
		id,
		dto.RouteCode,
		route.Definition{
			Name:                     dto.Name,
			Origin:                   dto.Origin,
			Destination:              dto.Destination,
			TotalDistance:            dto.TotalDistance,
			EstimatedDurationMinutes: dto.EstimatedDurationMinutes,
		},
		route.Statistics{
			TotalTripsCompleted:   dto.TotalTripsCompleted,
			AverageActualDuration: dto.AverageActualDuration,
		},
		dto.Version,
	)
}
