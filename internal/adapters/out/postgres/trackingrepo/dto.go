// Package trackingrepo persists tracking events.
package trackingrepo

import (
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

type TrackingEventDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventNumber      string     `gorm:"type:varchar(60);not null;uniqueIndex"`
	EventType        string     `gorm:"type:varchar(30);not null"`
	Severity         string     `gorm:"type:varchar(20);not null"`
	ShipmentID       *uuid.UUID `gorm:"type:uuid;index"`
	TripID           *uuid.UUID `gorm:"type:uuid;index"`
	EventTimestamp   time.Time  `gorm:"not null;index"`
	LocationName     string     `gorm:"type:varchar(255)"`
	Latitude         *float64
	Longitude        *float64
	Description      string `gorm:"type:text"`
	ExceptionType    string `gorm:"type:varchar(100)"`
	ExceptionDetails string `gorm:"type:text"`
	IsResolved       bool   `gorm:"not null;default:false"`
	ResolvedAt       *time.Time
	ResolutionNotes  string `gorm:"type:text"`
	Version          int64  `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(e *tracking.Event) TrackingEventDTO {
	d := e.Details()
	res := e.Resolution()
	lat, lon := pgutil.LatLon(d.Location)

	return TrackingEventDTO{
		ID:               e.ID().Bytes(),
		EventNumber:      e.Number(),
		EventType:        string(d.Type),
		Severity:         string(d.Severity),
		ShipmentID:       pgutil.UUIDPtr(d.ShipmentID),
		TripID:           pgutil.UUIDPtr(d.TripID),
		EventTimestamp:   d.Timestamp,
		LocationName:     d.LocationName,
		Latitude:         lat,
		Longitude:        lon,
		Description:      d.Description,
		ExceptionType:    d.ExceptionType,
		ExceptionDetails: d.ExceptionDetails,
		IsResolved:       res.IsResolved,
		ResolvedAt:       res.ResolvedAt,
		ResolutionNotes:  res.Notes,
		Version:          e.Version(),
	}
}

func toDomain(dto TrackingEventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	shipmentID, shipmentErr := pgutil.KernelUUIDPtr(dto.ShipmentID)
	tripID, tripErr := pgutil.KernelUUIDPtr(dto.TripID)
	location, locationErr := pgutil.GeoPointFrom(dto.Latitude, dto.Longitude)
	if err = errors.Join(shipmentErr, tripErr, locationErr); err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(
		id,
		dto.EventNumber,
		tracking.Details{
			Type:             tracking.EventType(dto.EventType),
			Severity:         tracking.Severity(dto.Severity),
			ShipmentID:       shipmentID,
			TripID:           tripID,
			Timestamp:        dto.EventTimestamp,
			LocationName:     dto.LocationName,
			Location:         location,
			Description:      dto.Description,
			ExceptionType:    dto.ExceptionType,
			ExceptionDetails: dto.ExceptionDetails,
		},
		tracking.Resolution{
			IsResolved: dto.IsResolved,
			ResolvedAt: dto.ResolvedAt,
			Notes:      dto.ResolutionNotes,
		},
		dto.Version,
	)
}

func toDomainList(dtos []TrackingEventDTO) ([]*tracking.Event, error) {
	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
