// Package seed loads the reference tables (vehicle types and transport companies).
// Seeding is an explicit step run from the command line; the service never seeds on start.
package seed

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleTypeDTO struct {
	Code           string          `gorm:"type:varchar(50);primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Category       string          `gorm:"type:varchar(50);not null"`
	MaxLoadKg      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	MaxVolumeCbm   decimal.Decimal `gorm:"type:numeric(12,3);not null;default:0"`
	IsRefrigerated bool            `gorm:"not null;default:false"`
	IsActive       bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (VehicleTypeDTO) TableName() string {
	return "vehicle_types"
}

type TransportCompanyDTO struct {
	Code         string `gorm:"type:varchar(50);primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	ContactEmail string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	Modes        string `gorm:"type:varchar(100)"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TransportCompanyDTO) TableName() string {
	return "transport_companies"
}
