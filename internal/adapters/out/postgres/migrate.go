package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/deliverynoterepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/freightrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/seed"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/adapters/out/postgres/triprepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&triprepo.TripDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&routerepo.RouteDTO{},
		&deliverynoterepo.DeliveryNoteDTO{},
		&trackingrepo.TrackingEventDTO{},
		&freightrepo.FreightChargeDTO{},
		&seed.VehicleTypeDTO{},
		&seed.TransportCompanyDTO{},
	}
}

// Migrate creates or alters the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
