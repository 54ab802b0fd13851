package routerepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"gorm.io/gorm"
)

const aggregateName = "route"

type GormRouteRepository struct {
	db      *gorm.DB
	tracker pgutil.Tracker
}

func NewGormRouteRepository(db *gorm.DB, tracker pgutil.Tracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateInsertError(err, "routeCode", aggregate.Code())
	}

	r.tracker.Track(aggregate)
	return nil
}

func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
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

func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, aggregateName, id)
	}

	return toDomain(dto)
}

func (r *GormRouteRepository) GetAll(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	if err := r.db.WithContext(ctx).Order("route_code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, nil
}

func (r *GormRouteRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return pgutil.Exists(ctx, r.db, &RouteDTO{}, "route_code", code)
}
