// Package commands contains the business operations that modify system state.
// Every command is built through a guarded constructor and executed by a handler that
// opens a unit of work, loads the aggregate, applies one domain operation and commits.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of work interfaces narrowed to what each handler group touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	DeliveryNoteRepoFactory interface {
		DeliveryNoteRepository() ports.DeliveryNoteRepository
	}

	TrackingEventRepoFactory interface {
		TrackingEventRepository() ports.TrackingEventRepository
	}

	FreightChargeRepoFactory interface {
		FreightChargeRepository() ports.FreightChargeRepository
	}

	// ShipmentUoW also writes the tracking events correlated with shipment transitions.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		TrackingEventRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// TripUoW also writes the tracking events correlated with trip transitions.
	TripUoW interface {
		TxManager
		TripRepoFactory
		TrackingEventRepoFactory
	}

	TripUoWFactory interface {
		Create() TripUoW
	}

	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// RouteUoW reads completed trips to refresh route statistics.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		TripRepoFactory
	}

	RouteUoWFactory interface {
		Create() RouteUoW
	}

	DeliveryNoteUoW interface {
		TxManager
		DeliveryNoteRepoFactory
	}

	DeliveryNoteUoWFactory interface {
		Create() DeliveryNoteUoW
	}

	TrackingEventUoW interface {
		TxManager
		TrackingEventRepoFactory
	}

	TrackingEventUoWFactory interface {
		Create() TrackingEventUoW
	}

	FreightChargeUoW interface {
		TxManager
		FreightChargeRepoFactory
	}

	FreightChargeUoWFactory interface {
		Create() FreightChargeUoW
	}
)
