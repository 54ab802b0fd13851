// Package postgres provides the GORM-based Unit of Work. A unit of work spans one
// command: every repository it hands out runs inside the same transaction, and every
// aggregate written through those repositories is tracked so that its domain events can
// be published once the transaction has committed.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ShipmentRepository().Update(ctx, s); err != nil {
//	    return err
//	}
//	if err := uow.TrackingEventRepository().Add(ctx, e); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op, so the deferred call above is safe.
// Each goroutine must use its own UnitOfWork.
//
// Events are published after commit and outside the transaction. A publishing failure is
// logged and does not turn a committed command into an error.
package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/deliverynoterepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/freightrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/adapters/out/postgres/triprepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/ddd"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *zap.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger,
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]ddd.AggregateRoot, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	committed         bool
	publisher         ports.EventPublisher
	logger            *zap.Logger
	trackedAggregates []ddd.AggregateRoot
}

func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.committed = false
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.committed = true
	uow.dispatchEvents(ctx)
	return nil
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		if uow.committed {
			return nil
		}
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Track implements pgutil.Tracker.
func (uow *GormUnitOfWork) Track(aggregate ddd.AggregateRoot) {
	for _, tracked := range uow.trackedAggregates {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

func (uow *GormUnitOfWork) dispatchEvents(ctx context.Context) {
	var events []ddd.Event
	for _, aggregate := range uow.trackedAggregates {
		events = append(events, aggregate.DomainEvents()...)
		aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]

	if len(events) == 0 || uow.publisher == nil {
		return
	}
	if err := uow.publisher.Publish(ctx, events); err != nil {
		uow.logger.Error("failed to publish domain events",
			zap.Int("count", len(events)),
			zap.Error(err),
		)
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TripRepository() ports.TripRepository {
	return triprepo.NewGormTripRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	return deliverynoterepo.NewGormDeliveryNoteRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackingEventRepository() ports.TrackingEventRepository {
	return trackingrepo.NewGormTrackingEventRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) FreightChargeRepository() ports.FreightChargeRepository {
	return freightrepo.NewGormFreightChargeRepository(uow.conn(), uow)
}
