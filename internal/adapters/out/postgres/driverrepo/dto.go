// Package driverrepo persists the Driver aggregate.
package driverrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DriverDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverCode           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name                 string          `gorm:"type:varchar(255);not null;index"`
	LicenseNumber        string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Phone                string          `gorm:"type:varchar(50)"`
	Status               string          `gorm:"type:varchar(20);not null;index"`
	IsAvailable          bool            `gorm:"not null;default:true"`
	CurrentTripID        *uuid.UUID      `gorm:"type:uuid"`
	TotalTrips           int             `gorm:"not null;default:0"`
	TotalDistanceCovered decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AccidentCount        int             `gorm:"not null;default:0"`
	Version              int64           `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	profile := d.Profile()
	availability := d.Availability()
	stats := d.Stats()

	return DriverDTO{
		ID:                   d.ID().Bytes(),
		DriverCode:           d.Code(),
		Name:                 profile.Name,
		LicenseNumber:        profile.LicenseNumber,
		Phone:                profile.Phone,
		Status:               d.Status().String(),
		IsAvailable:          availability.IsAvailable,
		CurrentTripID:        pgutil.UUIDPtr(availability.CurrentTripID),
		TotalTrips:           stats.TotalTrips,
		TotalDistanceCovered: stats.TotalDistanceCovered,
		AccidentCount:        stats.AccidentCount,
		Version:              d.Version(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := driver.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	tripID, err := pgutil.KernelUUIDPtr(dto.CurrentTripID)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.DriverCode,
		driver.Profile{Name: dto.Name, LicenseNumber: dto.LicenseNumber, Phone: dto.Phone},
		status,
		driver.Availability{IsAvailable: dto.IsAvailable, CurrentTripID: tripID},
		driver.Stats{
			TotalTrips:           dto.TotalTrips,
			TotalDistanceCovered: dto.TotalDistanceCovered,
			AccidentCount:        dto.AccidentCount,
		},
		dto.Version,
	)
}
