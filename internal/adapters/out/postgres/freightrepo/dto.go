// Package freightrepo persists freight charge lines. The derived amounts are written for
// reporting queries and recomputed whenever a line is loaded.
package freightrepo

import (
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FreightChargeDTO struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primaryKey"`
	ShipmentID          *uuid.UUID         `gorm:"type:uuid;index"`
	TripID              *uuid.UUID         `gorm:"type:uuid;index"`
	ChargeType          string             `gorm:"type:varchar(30);not null"`
	CalculationMethod   string             `gorm:"type:varchar(20);not null"`
	Quantity            decimal.Decimal    `gorm:"type:numeric(14,3);not null;default:0"`
	Rate                decimal.Decimal    `gorm:"type:numeric(14,4);not null;default:0"`
	SlabRates           []freight.SlabRate `gorm:"type:jsonb;serializer:json"`
	BaseAmount          decimal.Decimal    `gorm:"type:numeric(18,2);not null"`
	DiscountPercentage  decimal.Decimal    `gorm:"type:numeric(7,3);not null;default:0"`
	DiscountAmount      decimal.Decimal    `gorm:"type:numeric(18,2);not null;default:0"`
	TaxPercentage       decimal.Decimal    `gorm:"type:numeric(7,3);not null;default:0"`
	AmountAfterDiscount decimal.Decimal    `gorm:"type:numeric(18,4);not null"`
	TaxAmount           decimal.Decimal    `gorm:"type:numeric(18,4);not null"`
	TotalAmount         decimal.Decimal    `gorm:"type:numeric(18,4);not null"`
	Description         string             `gorm:"type:text"`
	Version             int64              `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (FreightChargeDTO) TableName() string {
	return "freight_charges"
}

func fromDomain(c *freight.Charge) FreightChargeDTO {
	t := c.Terms()
	a := c.Amounts()
	return FreightChargeDTO{
		ID:                  c.ID().Bytes(),
		ShipmentID:          pgutil.UUIDPtr(t.ShipmentID),
		TripID:              pgutil.UUIDPtr(t.TripID),
		ChargeType:          string(t.Type),
		CalculationMethod:   string(t.Method),
		Quantity:            t.Quantity,
		Rate:                t.Rate,
		SlabRates:           t.SlabRates,
		BaseAmount:          t.BaseAmount,
		DiscountPercentage:  t.DiscountPercentage,
		DiscountAmount:      t.DiscountAmount,
		TaxPercentage:       t.TaxPercentage,
		AmountAfterDiscount: a.AfterDiscount,
		TaxAmount:           a.Tax,
		TotalAmount:         a.Total,
		Description:         t.Description,
		Version:             c.Version(),
	}
}

func toDomain(dto FreightChargeDTO) (*freight.Charge, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	shipmentID, shipmentErr := pgutil.KernelUUIDPtr(dto.ShipmentID)
	tripID, tripErr := pgutil.KernelUUIDPtr(dto.TripID)
	if err = errors.Join(shipmentErr, tripErr); err != nil {
		return nil, err
	}

	return freight.RestoreCharge(id, freight.Terms{
		ShipmentID:         shipmentID,
		TripID:             tripID,
		Type:               freight.ChargeType(dto.ChargeType),
		Method:             freight.CalculationMethod(dto.CalculationMethod),
		Quantity:           dto.Quantity,
		Rate:               dto.Rate,
		SlabRates:          dto.SlabRates,
		BaseAmount:         dto.BaseAmount,
		DiscountPercentage: dto.DiscountPercentage,
		DiscountAmount:     dto.DiscountAmount,
		TaxPercentage:      dto.TaxPercentage,
		Description:        dto.Description,
	}, dto.Version)
}
