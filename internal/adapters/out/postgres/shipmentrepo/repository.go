package shipmentrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

const aggregateName = "shipment"

// GormShipmentRepository implements ports.ShipmentRepository.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker pgutil.Tracker
}

func NewGormShipmentRepository(db *gorm.DB, tracker pgutil.Tracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the shipment with its items. A duplicate shipment number is reported as
// errs.ObjectAlreadyExistsError.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateInsertError(err, "shipmentNumber", aggregate.Number())
	}

	r.tracker.Track(aggregate)
	return nil
}

// Update writes the shipment row under a version check and replaces its item lines.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	if err := pgutil.UpdateVersioned(ctx, r.db, &dto, dto.ID, expected, aggregateName); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("shipment_id = ?", dto.ID).Delete(&ShipmentItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.Track(aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_number") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgutil.NotFound(err, aggregateName, id)
	}

	return toDomain(dto)
}

// Delete removes the shipment; items go with it through the foreign key cascade.
func (r *GormShipmentRepository) Delete(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return pgutil.DeleteVersioned(ctx, r.db, &ShipmentDTO{}, aggregate.ID().Bytes(), aggregate.Version(), aggregateName)
}

func (r *GormShipmentRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &ShipmentDTO{}, "shipment_number", number)
}
