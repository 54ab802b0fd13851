package driverrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const aggregateName = "driver"

type GormDriverRepository struct {
	db      *gorm.DB
	tracker pgutil.Tracker
}

func NewGormDriverRepository(db *gorm.DB, tracker pgutil.Tracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a driver. Both the driver code and the license number are unique; a
// violation of either is reported against the driver code.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateInsertError(err, "driverCode", aggregate.Code())
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
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

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, aggregateName, id)
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &DriverDTO{}, "driver_code", code)
}

func (r *GormDriverRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &DriverDTO{}, "license_number", licenseNumber)
}
