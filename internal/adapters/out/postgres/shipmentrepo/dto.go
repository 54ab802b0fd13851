// Package shipmentrepo persists the Shipment aggregate and its item lines.
package shipmentrepo

import (
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShipmentDTO struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ShipmentNumber     string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type               string            `gorm:"type:varchar(30);not null"`
	Priority           string            `gorm:"type:varchar(20);not null"`
	Mode               string            `gorm:"type:varchar(20);not null"`
	Status             string            `gorm:"type:varchar(30);not null;index"`
	Origin             pgutil.AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination        pgutil.AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	TripID             *uuid.UUID        `gorm:"type:uuid;index"`
	VehicleID          *uuid.UUID        `gorm:"type:uuid"`
	DriverID           *uuid.UUID        `gorm:"type:uuid"`
	RouteID            *uuid.UUID        `gorm:"type:uuid"`
	PackageCount       int               `gorm:"not null;default:0"`
	TotalWeight        decimal.Decimal   `gorm:"type:numeric(18,3);not null;default:0"`
	TotalVolume        decimal.Decimal   `gorm:"type:numeric(18,3);not null;default:0"`
	DeclaredValue      decimal.Decimal   `gorm:"type:numeric(18,2);not null;default:0"`
	PlannedPickupAt    *time.Time
	PlannedDeliveryAt  *time.Time
	ActualPickupAt     *time.Time
	ActualDeliveryAt   *time.Time
	DispatchedAt       *time.Time
	DeliveredToName    string            `gorm:"type:varchar(255)"`
	DeliveryRemarks    string            `gorm:"type:text"`
	CancellationReason string            `gorm:"type:text"`
	FreightCharges     decimal.Decimal   `gorm:"type:numeric(18,2);not null;default:0"`
	TaxAmount          decimal.Decimal   `gorm:"type:numeric(18,2);not null;default:0"`
	TotalAmount        decimal.Decimal   `gorm:"type:numeric(18,2);not null;default:0"`
	Notes              string            `gorm:"type:text"`
	Items              []ShipmentItemDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Version            int64             `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type ShipmentItemDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNumber        int             `gorm:"not null"`
	ProductCode       string          `gorm:"type:varchar(100);not null"`
	Description       string          `gorm:"type:text"`
	OrderedQuantity   int             `gorm:"not null;default:0"`
	ShippedQuantity   int             `gorm:"not null;default:0"`
	DeliveredQuantity int             `gorm:"not null;default:0"`
	DamagedQuantity   int             `gorm:"not null;default:0"`
	ReturnedQuantity  int             `gorm:"not null;default:0"`
	UnitWeight        decimal.Decimal `gorm:"type:numeric(18,3);not null;default:0"`
}

func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	d := s.Details()
	p := s.Progress()
	id := s.ID().Bytes()

	items := make([]ShipmentItemDTO, 0, len(s.Items()))
	for _, item := range s.Items() {
		f := item.Fields()
		items = append(items, ShipmentItemDTO{
			ID:                item.ID().Bytes(),
			ShipmentID:        id,
			LineNumber:        f.LineNumber,
			ProductCode:       f.ProductCode,
			Description:       f.Description,
			OrderedQuantity:   f.Quantities.Ordered,
			ShippedQuantity:   f.Quantities.Shipped,
			DeliveredQuantity: f.Quantities.Delivered,
			DamagedQuantity:   f.Quantities.Damaged,
			ReturnedQuantity:  f.Quantities.Returned,
			UnitWeight:        f.UnitWeight,
		})
	}

	return ShipmentDTO{
		ID:                 id,
		ShipmentNumber:     s.Number(),
		Type:               string(d.Type),
		Priority:           string(d.Priority),
		Mode:               string(d.Mode),
		Status:             s.Status().String(),
		Origin:             pgutil.FromAddress(d.Origin),
		Destination:        pgutil.FromAddress(d.Destination),
		TripID:             pgutil.UUIDPtr(d.TripID),
		VehicleID:          pgutil.UUIDPtr(d.VehicleID),
		DriverID:           pgutil.UUIDPtr(d.DriverID),
		RouteID:            pgutil.UUIDPtr(d.RouteID),
		PackageCount:       d.Packages.Count,
		TotalWeight:        d.Packages.TotalWeight,
		TotalVolume:        d.Packages.TotalVolume,
		DeclaredValue:      d.Packages.DeclaredValue,
		PlannedPickupAt:    d.PlannedPickupAt,
		PlannedDeliveryAt:  d.PlannedDeliveryAt,
		ActualPickupAt:     p.ActualPickupAt,
		ActualDeliveryAt:   p.ActualDeliveryAt,
		DispatchedAt:       p.DispatchedAt,
		DeliveredToName:    p.DeliveredToName,
		DeliveryRemarks:    p.DeliveryRemarks,
		CancellationReason: p.CancellationReason,
		FreightCharges:     d.Charges.FreightCharges,
		TaxAmount:          d.Charges.TaxAmount,
		TotalAmount:        d.Charges.TotalAmount,
		Notes:              d.Notes,
		Items:              items,
		Version:            s.Version(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	origin, originErr := dto.Origin.ToAddress()
	destination, destinationErr := dto.Destination.ToAddress()
	tripID, tripErr := pgutil.KernelUUIDPtr(dto.TripID)
	vehicleID, vehicleErr := pgutil.KernelUUIDPtr(dto.VehicleID)
	driverID, driverErr := pgutil.KernelUUIDPtr(dto.DriverID)
	routeID, routeErr := pgutil.KernelUUIDPtr(dto.RouteID)
	if err = errors.Join(originErr, destinationErr, tripErr, vehicleErr, driverErr, routeErr); err != nil {
		return nil, err
	}

	items := make([]*shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	details := shipment.Details{
		Type:        shipment.Type(dto.Type),
		Priority:    shipment.Priority(dto.Priority),
		Mode:        shipment.Mode(dto.Mode),
		Origin:      origin,
		Destination: destination,
		TripID:      tripID,
		VehicleID:   vehicleID,
		DriverID:    driverID,
		RouteID:     routeID,
		Packages: shipment.Packages{
			Count:         dto.PackageCount,
			TotalWeight:   dto.TotalWeight,
			TotalVolume:   dto.TotalVolume,
			DeclaredValue: dto.DeclaredValue,
		},
		PlannedPickupAt:   dto.PlannedPickupAt,
		PlannedDeliveryAt: dto.PlannedDeliveryAt,
		Charges: shipment.Charges{
			FreightCharges: dto.FreightCharges,
			TaxAmount:      dto.TaxAmount,
			TotalAmount:    dto.TotalAmount,
		},
		Notes: dto.Notes,
	}
	progress := shipment.Progress{
		DispatchedAt:       dto.DispatchedAt,
		ActualPickupAt:     dto.ActualPickupAt,
		ActualDeliveryAt:   dto.ActualDeliveryAt,
		DeliveredToName:    dto.DeliveredToName,
		DeliveryRemarks:    dto.DeliveryRemarks,
		CancellationReason: dto.CancellationReason,
	}

	return shipment.RestoreShipment(id, dto.ShipmentNumber, status, details, progress, items, dto.Version)
}

func itemToDomain(dto ShipmentItemDTO) (*shipment.Item, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return shipment.NewItem(id, shipment.ItemFields{
		LineNumber:  dto.LineNumber,
		ProductCode: dto.ProductCode,
		Description: dto.Description,
		Quantities: shipment.Quantities{
			Ordered:   dto.OrderedQuantity,
			Shipped:   dto.ShippedQuantity,
			Delivered: dto.DeliveredQuantity,
			Damaged:   dto.DamagedQuantity,
			Returned:  dto.ReturnedQuantity,
		},
		UnitWeight: dto.UnitWeight,
	})
}
