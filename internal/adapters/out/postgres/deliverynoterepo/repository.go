package deliverynoterepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/deliverynote"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const aggregateName = "delivery note"

type GormDeliveryNoteRepository struct {
	db      *gorm.DB
	tracker pgutil.Tracker
}

func NewGormDeliveryNoteRepository(db *gorm.DB, tracker pgutil.Tracker) *GormDeliveryNoteRepository {
	return &GormDeliveryNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryNoteRepository) Add(ctx context.Context, aggregate *deliverynote.DeliveryNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateInsertError(err, "deliveryNoteNumber", aggregate.Number())
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormDeliveryNoteRepository) Update(ctx context.Context, aggregate *deliverynote.DeliveryNote) error {
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

func (r *GormDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryNoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, aggregateName, id)
	}

	return toDomain(dto)
}

func (r *GormDeliveryNoteRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &DeliveryNoteDTO{}, "delivery_note_number", number)
}
