// Package vehiclerepo persists the Vehicle aggregate.
package vehiclerepo

import (
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleDTO struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleCode            string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	RegistrationNumber     string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	VehicleTypeCode        string     `gorm:"type:varchar(50)"`
	Make                   string     `gorm:"type:varchar(100)"`
	Model                  string     `gorm:"type:varchar(100)"`
	Status                 string     `gorm:"type:varchar(30);not null;index"`
	CurrentDriverID        *uuid.UUID `gorm:"type:uuid"`
	LastLatitude           *float64
	LastLongitude          *float64
	LastLocationAt         *time.Time
	CurrentOdometerReading decimal.Decimal `gorm:"type:numeric(14,1);not null;default:0"`
	Version                int64           `gorm:"not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	reg := v.Registration()
	tel := v.Telemetry()
	lat, lon := pgutil.LatLon(tel.LastLocation)

	return VehicleDTO{
		ID:                     v.ID().Bytes(),
		VehicleCode:            v.Code(),
		RegistrationNumber:     reg.RegistrationNumber,
		VehicleTypeCode:        reg.VehicleTypeCode,
		Make:                   reg.Make,
		Model:                  reg.Model,
		Status:                 v.Status().String(),
		CurrentDriverID:        pgutil.UUIDPtr(tel.CurrentDriverID),
		LastLatitude:           lat,
		LastLongitude:          lon,
		LastLocationAt:         tel.LastLocationAt,
		CurrentOdometerReading: tel.CurrentOdometerReading,
		Version:                v.Version(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := vehicle.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	driverID, driverErr := pgutil.KernelUUIDPtr(dto.CurrentDriverID)
	location, locationErr := pgutil.GeoPointFrom(dto.LastLatitude, dto.LastLongitude)
	if err = errors.Join(driverErr, locationErr); err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.VehicleCode,
		vehicle.Registration{
			RegistrationNumber: dto.RegistrationNumber,
			VehicleTypeCode:    dto.VehicleTypeCode,
			Make:               dto.Make,
			Model:              dto.Model,
		},
		status,
		vehicle.Telemetry{
			CurrentDriverID:        driverID,
			LastLocation:           location,
			LastLocationAt:         dto.LastLocationAt,
			CurrentOdometerReading: dto.CurrentOdometerReading,
		},
		dto.Version,
	)
}
