// Package ports defines the contracts between the application layer and the adapters:
// repositories for every aggregate, the unit of work that binds them to one transaction,
// the clock and the domain event publisher.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/deliverynote"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/model/vehicle"
)

// ShipmentRepository persists shipments together with their item lines.
//
// Update is a compare-and-swap on the version read by Get: a concurrent write makes it
// fail with errs.VersionIsInvalidError.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error
	Update(ctx context.Context, aggregate *shipment.Shipment) error
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
	// Delete removes the shipment and its items. Tracking events and freight charges
	// pointing at it are left in place.
	Delete(ctx context.Context, aggregate *shipment.Shipment) error
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

type TripRepository interface {
	Add(ctx context.Context, aggregate *trip.Trip) error
	Update(ctx context.Context, aggregate *trip.Trip) error
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	// GetCompletedByRoute returns the Completed trips that ran on the route.
	GetCompletedByRoute(ctx context.Context, routeID kernel.UUID) ([]*trip.Trip, error)
}

type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error)
}

type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error)
}

type RouteRepository interface {
	Add(ctx context.Context, aggregate *route.Route) error
	Update(ctx context.Context, aggregate *route.Route) error
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
	GetAll(ctx context.Context) ([]*route.Route, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

type DeliveryNoteRepository interface {
	Add(ctx context.Context, aggregate *deliverynote.DeliveryNote) error
	Update(ctx context.Context, aggregate *deliverynote.DeliveryNote) error
	Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

type TrackingEventRepository interface {
	Add(ctx context.Context, aggregate *tracking.Event) error
	Update(ctx context.Context, aggregate *tracking.Event) error
	Get(ctx context.Context, id kernel.UUID) (*tracking.Event, error)
	Delete(ctx context.Context, aggregate *tracking.Event) error
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	// GetByShipment and GetByTrip return events oldest first.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*tracking.Event, error)
	GetByTrip(ctx context.Context, tripID kernel.UUID) ([]*tracking.Event, error)
}

type FreightChargeRepository interface {
	Add(ctx context.Context, aggregate *freight.Charge) error
	Update(ctx context.Context, aggregate *freight.Charge) error
	Get(ctx context.Context, id kernel.UUID) (*freight.Charge, error)
	Delete(ctx context.Context, aggregate *freight.Charge) error
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*freight.Charge, error)
}
