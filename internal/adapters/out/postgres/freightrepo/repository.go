package freightrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const aggregateName = "freight charge"

type GormFreightChargeRepository struct {
	db      *gorm.DB
	tracker pgutil.Tracker
}

func NewGormFreightChargeRepository(db *gorm.DB, tracker pgutil.Tracker) *GormFreightChargeRepository {
	return &GormFreightChargeRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormFreightChargeRepository) Add(ctx context.Context, aggregate *freight.Charge) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateInsertError(err, "freightChargeId", aggregate.ID().String())
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormFreightChargeRepository) Update(ctx context.Context, aggregate *freight.Charge) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := dto.Version
	dto.Version = expected + 1

	if err := pgutil.UpdateVersioned(ctx, r.db, &dto, dto.ID, expected, aggregateName); err != nil {
		return err
	}

	aggregate.SetVersion(dto.Version)
	r.tracker.Track(aggregate)
	return nil
}

func (r *GormFreightChargeRepository) Get(ctx context.Context, id kernel.UUID) (*freight.Charge, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FreightChargeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, aggregateName, id)
	}

	return toDomain(dto)
}

func (r *GormFreightChargeRepository) Delete(ctx context.Context, aggregate *freight.Charge) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return pgutil.DeleteVersioned(ctx, r.db, &FreightChargeDTO{}, aggregate.ID().Bytes(), aggregate.Version(), aggregateName)
}

// GetByShipment returns the shipment's lines in creation order.
func (r *GormFreightChargeRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*freight.Charge, error) {
	var dtos []FreightChargeDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("created_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	charges := make([]*freight.Charge, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		charges = append(charges, c)
	}
	return charges, nil
}
