package vehiclerepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

const aggregateName = "vehicle"

type GormVehicleRepository struct {
	db      *gorm.DB
	tracker pgutil.Tracker
}

func NewGormVehicleRepository(db *gorm.DB, tracker pgutil.Tracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateInsertError(err, "vehicleCode", aggregate.Code())
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
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

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, aggregateName, id)
	}

	return toDomain(dto)
}

func (r *GormVehicleRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &VehicleDTO{}, "vehicle_code", code)
}

func (r *GormVehicleRepository) ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &VehicleDTO{}, "registration_number", registrationNumber)
}
