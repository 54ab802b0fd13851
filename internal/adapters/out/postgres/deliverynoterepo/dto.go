// Package deliverynoterepo persists the DeliveryNote aggregate.
package deliverynoterepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/deliverynote"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryNoteDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryNoteNumber string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status             string     `gorm:"type:varchar(30);not null;index"`
	ShipmentID         *uuid.UUID `gorm:"type:uuid;index"`
	ItemCount          int        `gorm:"not null;default:0"`
	TotalQuantity      int        `gorm:"not null;default:0"`
	ReceiverName       string     `gorm:"type:varchar(255)"`
	SignatureURL       string     `gorm:"type:text"`
	PhotoURLs          []string   `gorm:"type:jsonb;serializer:json"`
	PartialDelivery    bool       `gorm:"not null;default:false"`
	DeliveredAt        *time.Time
	Version            int64 `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (DeliveryNoteDTO) TableName() string {
	return "delivery_notes"
}

func fromDomain(n *deliverynote.DeliveryNote) DeliveryNoteDTO {
	summary := n.Summary()
	proof := n.Proof()
	return DeliveryNoteDTO{
		ID:                 n.ID().Bytes(),
		DeliveryNoteNumber: n.Number(),
		Status:             n.Status().String(),
		ShipmentID:         pgutil.UUIDPtr(n.ShipmentID()),
		ItemCount:          summary.ItemCount,
		TotalQuantity:      summary.TotalQuantity,
		ReceiverName:       proof.ReceiverName,
		SignatureURL:       proof.SignatureURL,
		PhotoURLs:          proof.PhotoURLs,
		PartialDelivery:    proof.Partial,
		DeliveredAt:        n.DeliveredAt(),
		Version:            n.Version(),
	}
}

func toDomain(dto DeliveryNoteDTO) (*deliverynote.DeliveryNote, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	status, err := deliverynote.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	shipmentID, err := pgutil.KernelUUIDPtr(dto.ShipmentID)
	if err != nil {
		return nil, err
	}

	return deliverynote.RestoreDeliveryNote(
		id,
		dto.DeliveryNoteNumber,
		status,
		shipmentID,
		deliverynote.Summary{ItemCount: dto.ItemCount, TotalQuantity: dto.TotalQuantity},
		deliverynote.Proof{
			ReceiverName: dto.ReceiverName,
			SignatureURL: dto.SignatureURL,
			PhotoURLs:    dto.PhotoURLs,
			Partial:      dto.PartialDelivery,
		},
		dto.DeliveredAt,
		dto.Version,
	)
}
