package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one command. Repositories obtained after
// Begin run inside the transaction. Domain events of the aggregates written through them
// are published once Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback is safe to defer: it is a no-op once the transaction has been committed.
	Rollback(ctx context.Context) error

	ShipmentRepository() ShipmentRepository
	TripRepository() TripRepository
	DriverRepository() DriverRepository
	VehicleRepository() VehicleRepository
	RouteRepository() RouteRepository
	DeliveryNoteRepository() DeliveryNoteRepository
	TrackingEventRepository() TrackingEventRepository
	FreightChargeRepository() FreightChargeRepository
}
