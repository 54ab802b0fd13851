package trackingrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

const aggregateName = "tracking event"

type GormTrackingEventRepository struct {
	db      *gorm.DB
	tracker pgutil.Tracker
}

func NewGormTrackingEventRepository(db *gorm.DB, tracker pgutil.Tracker) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTrackingEventRepository) Add(ctx context.Context, aggregate *tracking.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateInsertError(err, "eventNumber", aggregate.Number())
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormTrackingEventRepository) Update(ctx context.Context, aggregate *tracking.Event) error {
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

func (r *GormTrackingEventRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingEventDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, aggregateName, id)
	}

	return toDomain(dto)
}

func (r *GormTrackingEventRepository) Delete(ctx context.Context, aggregate *tracking.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return pgutil.DeleteVersioned(ctx, r.db, &TrackingEventDTO{}, aggregate.ID().Bytes(), aggregate.Version(), aggregateName)
}

func (r *GormTrackingEventRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &TrackingEventDTO{}, "event_number", number)
}

// GetByShipment returns the shipment's events oldest first.
func (r *GormTrackingEventRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*tracking.Event, error) {
	return r.findChronological(ctx, "shipment_id = ?", shipmentID)
}

// GetByTrip returns the trip's events oldest first.
func (r *GormTrackingEventRepository) GetByTrip(ctx context.Context, tripID kernel.UUID) ([]*tracking.Event, error) {
	return r.findChronological(ctx, "trip_id = ?", tripID)
}

func (r *GormTrackingEventRepository) findChronological(ctx context.Context, where string, id kernel.UUID) ([]*tracking.Event, error) {
	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where(where, id.Bytes()).
		Order("event_timestamp ASC").
		Order("event_number ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}
