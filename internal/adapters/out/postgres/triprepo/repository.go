package triprepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"

	"gorm.io/gorm"
)

const aggregateName = "trip"

type GormTripRepository struct {
	db      *gorm.DB
	tracker pgutil.Tracker
}

func NewGormTripRepository(db *gorm.DB, tracker pgutil.Tracker) *GormTripRepository {
	return &GormTripRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateInsertError(err, "tripNumber", aggregate.Number())
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
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

func (r *GormTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, aggregateName, id)
	}

	return toDomain(dto)
}

func (r *GormTripRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &TripDTO{}, "trip_number", number)
}

func (r *GormTripRepository) GetCompletedByRoute(ctx context.Context, routeID kernel.UUID) ([]*trip.Trip, error) {
	var dtos []TripDTO
	err := r.db.WithContext(ctx).
		Where("route_id = ? AND status = ?", routeID.Bytes(), trip.Completed.String()).
		Order("actual_end_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	trips := make([]*trip.Trip, 0, len(dtos))
	for _, dto := range dtos {
		t, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		trips = append(trips, t)
	}
	return trips, nil
}
