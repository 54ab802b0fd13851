// Package triprepo persists the Trip aggregate. Stops are stored as a JSON column.
package triprepo

import (
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TripDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TripNumber            string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	VehicleID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	CoDriverID            *uuid.UUID `gorm:"type:uuid"`
	RouteID               *uuid.UUID `gorm:"type:uuid;index"`
	Status                string     `gorm:"type:varchar(20);not null;index"`
	PlannedStartAt        *time.Time
	PlannedEndAt          *time.Time
	ActualStartAt         *time.Time
	ActualEndAt           *time.Time
	PlannedDistance       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ActualDistance        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ActualDurationMinutes *int
	CurrentLatitude       *float64
	CurrentLongitude      *float64
	LastLocationUpdateAt  *time.Time
	IsDeliveryConfirmed   bool            `gorm:"not null;default:false"`
	CancellationReason    string          `gorm:"type:text"`
	Stops                 []StopDTO       `gorm:"type:jsonb;serializer:json"`
	FuelExpense           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TollExpense           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OtherExpense          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Version               int64           `gorm:"not null;default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (TripDTO) TableName() string {
	return "trips"
}

type StopDTO struct {
	Sequence         int        `json:"sequence"`
	LocationName     string     `json:"locationName"`
	PlannedArrivalAt *time.Time `json:"plannedArrivalAt,omitempty"`
}

func fromDomain(t *trip.Trip) TripDTO {
	plan := t.Plan()
	progress := t.Progress()
	lat, lon := pgutil.LatLon(progress.CurrentLocation)

	stops := make([]StopDTO, 0, len(plan.Stops))
	for _, st := range plan.Stops {
		stops = append(stops, StopDTO(st))
	}

	return TripDTO{
		ID:                    t.ID().Bytes(),
		TripNumber:            t.Number(),
		VehicleID:             plan.VehicleID.Bytes(),
		DriverID:              plan.DriverID.Bytes(),
		CoDriverID:            pgutil.UUIDPtr(plan.CoDriverID),
		RouteID:               pgutil.UUIDPtr(plan.RouteID),
		Status:                t.Status().String(),
		PlannedStartAt:        plan.PlannedStartAt,
		PlannedEndAt:          plan.PlannedEndAt,
		ActualStartAt:         progress.ActualStartAt,
		ActualEndAt:           progress.ActualEndAt,
		PlannedDistance:       plan.PlannedDistance,
		ActualDistance:        progress.ActualDistance,
		ActualDurationMinutes: progress.ActualDurationMinutes,
		CurrentLatitude:       lat,
		CurrentLongitude:      lon,
		LastLocationUpdateAt:  progress.LastLocationUpdateAt,
		IsDeliveryConfirmed:   progress.IsDeliveryConfirmed,
		CancellationReason:    progress.CancellationReason,
		Stops:                 stops,
		FuelExpense:           plan.Expenses.Fuel,
		TollExpense:           plan.Expenses.Toll,
		OtherExpense:          plan.Expenses.Other,
		Version:               t.Version(),
	}
}

func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := trip.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	vehicleID, vehicleErr := kernel.UUIDFromGoogle(dto.VehicleID)
	driverID, driverErr := kernel.UUIDFromGoogle(dto.DriverID)
	coDriverID, coDriverErr := pgutil.KernelUUIDPtr(dto.CoDriverID)
	routeID, routeErr := pgutil.KernelUUIDPtr(dto.RouteID)
	location, locationErr := pgutil.GeoPointFrom(dto.CurrentLatitude, dto.CurrentLongitude)
	if err = errors.Join(vehicleErr, driverErr, coDriverErr, routeErr, locationErr); err != nil {
		return nil, err
	}

	stops := make([]trip.Stop, 0, len(dto.Stops))
	for _, st := range dto.Stops {
		stops = append(stops, trip.Stop(st))
	}

	plan := trip.Plan{
		VehicleID:       vehicleID,
		DriverID:        driverID,
		CoDriverID:      coDriverID,
		RouteID:         routeID,
		PlannedStartAt:  dto.PlannedStartAt,
		PlannedEndAt:    dto.PlannedEndAt,
		PlannedDistance: dto.PlannedDistance,
		Stops:           stops,
		Expenses: trip.Expenses{
			Fuel:  dto.FuelExpense,
			Toll:  dto.TollExpense,
			Other: dto.OtherExpense,
		},
	}
	progress := trip.Progress{
		ActualStartAt:         dto.ActualStartAt,
		ActualEndAt:           dto.ActualEndAt,
		ActualDistance:        dto.ActualDistance,
		ActualDurationMinutes: dto.ActualDurationMinutes,
		CurrentLocation:       location,
		LastLocationUpdateAt:  dto.LastLocationUpdateAt,
		IsDeliveryConfirmed:   dto.IsDeliveryConfirmed,
		CancellationReason:    dto.CancellationReason,
	}

	return trip.RestoreTrip(id, dto.TripNumber, status, plan, progress, dto.Version)
}
