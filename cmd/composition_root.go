package cmd

import (
	"context"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/freightrepo"
	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/ddd"
	"logistics/internal/telemetry"

	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	clock      clockz.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires handlers over gormDB. Events committed by a unit of work go to
// publisher, counted in metrics.
func NewCompositionRoot(
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	metrics *telemetry.Metrics,
	clock clockz.Clock,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		clock:      clock,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, meteredPublisher{inner: publisher, metrics: metrics}, logger),
	}
}

// Ping reports whether the database answers.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *CompositionRoot) HTTPCommands() httpadapter.Commands {
	shipments := c.shipmentUoWFactory()
	trips := c.tripUoWFactory()
	drivers := c.driverUoWFactory()
	vehicles := c.vehicleUoWFactory()
	routes := c.routeUoWFactory()
	notes := c.deliveryNoteUoWFactory()
	events := c.trackingEventUoWFactory()
	charges := c.freightChargeUoWFactory()

	return httpadapter.Commands{
		CreateShipment:             commands.NewCreateShipmentCommandHandler(shipments, c.clock),
		UpdateShipment:             commands.NewUpdateShipmentCommandHandler(shipments, c.clock),
		ConfirmShipment:            commands.NewConfirmShipmentCommandHandler(shipments, c.clock),
		DispatchShipment:           commands.NewDispatchShipmentCommandHandler(shipments, c.clock),
		MarkShipmentInTransit:      commands.NewMarkShipmentInTransitCommandHandler(shipments, c.clock),
		MarkShipmentOutForDelivery: commands.NewMarkShipmentOutForDeliveryCommandHandler(shipments, c.clock),
		MarkShipmentDelivered:      commands.NewMarkShipmentDeliveredCommandHandler(shipments, c.clock),
		CancelShipment:             commands.NewCancelShipmentCommandHandler(shipments, c.clock),
		RemoveShipment:             commands.NewRemoveShipmentCommandHandler(shipments),

		CreateTrip:         commands.NewCreateTripCommandHandler(trips, c.clock),
		ScheduleTrip:       commands.NewScheduleTripCommandHandler(trips, c.clock),
		StartTrip:          commands.NewStartTripCommandHandler(trips, c.clock),
		CompleteTrip:       commands.NewCompleteTripCommandHandler(trips, c.clock),
		CancelTrip:         commands.NewCancelTripCommandHandler(trips, c.clock),
		UpdateTripLocation: commands.NewUpdateTripLocationCommandHandler(trips, c.clock),

		CreateDriver:          commands.NewCreateDriverCommandHandler(drivers, c.clock),
		MarkDriverOnTrip:      commands.NewMarkDriverOnTripCommandHandler(drivers, c.clock),
		MarkDriverAvailable:   commands.NewMarkDriverAvailableCommandHandler(drivers, c.clock),
		CreateVehicle:         commands.NewCreateVehicleCommandHandler(vehicles, c.clock),
		UpdateVehicleLocation: commands.NewUpdateVehicleLocationCommandHandler(vehicles, c.clock),

		CreateRoute:            commands.NewCreateRouteCommandHandler(routes, c.clock),
		RefreshRouteStatistics: c.CreateRefreshRouteStatisticsCommandHandler(),

		CreateDeliveryNote:  commands.NewCreateDeliveryNoteCommandHandler(notes, c.clock),
		SubmitDeliveryNote:  commands.NewSubmitDeliveryNoteCommandHandler(notes, c.clock),
		DeliverDeliveryNote: commands.NewDeliverDeliveryNoteCommandHandler(notes, c.clock),
		CancelDeliveryNote:  commands.NewCancelDeliveryNoteCommandHandler(notes, c.clock),

		RecordTrackingEvent:  commands.NewRecordTrackingEventCommandHandler(events, c.clock),
		UpdateTrackingEvent:  commands.NewUpdateTrackingEventCommandHandler(events, c.clock),
		ResolveTrackingEvent: commands.NewResolveTrackingEventCommandHandler(events, c.clock),
		DeleteTrackingEvent:  commands.NewDeleteTrackingEventCommandHandler(events),

		CreateFreightCharge: commands.NewCreateFreightChargeCommandHandler(charges, c.clock),
		UpdateFreightCharge: commands.NewUpdateFreightChargeCommandHandler(charges, c.clock),
		DeleteFreightCharge: commands.NewDeleteFreightChargeCommandHandler(charges),
	}
}

// CreateRefreshRouteStatisticsCommandHandler is shared by the HTTP endpoint and the cron job.
func (c *CompositionRoot) CreateRefreshRouteStatisticsCommandHandler() commands.RefreshRouteStatisticsCommandHandler {
	return commands.NewRefreshRouteStatisticsCommandHandler(c.routeUoWFactory(), c.clock, services.NewRouteStatistician())
}

func (c *CompositionRoot) HTTPQueries() httpadapter.Queries {
	// Read-side repositories run outside any unit of work, so nothing is tracked.
	events := trackingrepo.NewGormTrackingEventRepository(c.gormDB, pgutil.NopTracker{})
	charges := freightrepo.NewGormFreightChargeRepository(c.gormDB, pgutil.NopTracker{})
	projector := services.NewTrackingProjector()

	return httpadapter.Queries{
		GetShipment:         queries.NewGetShipmentQueryHandler(c.gormDB),
		ListShipments:       queries.NewListShipmentsQueryHandler(c.gormDB),
		GetShipmentTracking: queries.NewGetShipmentTrackingQueryHandler(c.gormDB, events, projector),

		GetTrip:         queries.NewGetTripQueryHandler(c.gormDB),
		ListTrips:       queries.NewListTripsQueryHandler(c.gormDB),
		GetTripTracking: queries.NewGetTripTrackingQueryHandler(c.gormDB, events, projector),

		GetDriver:            queries.NewGetDriverQueryHandler(c.gormDB),
		ListDrivers:          queries.NewListDriversQueryHandler(c.gormDB),
		FindAvailableDrivers: queries.NewFindAvailableDriversQueryHandler(c.gormDB),
		GetVehicle:           queries.NewGetVehicleQueryHandler(c.gormDB),
		ListVehicles:         queries.NewListVehiclesQueryHandler(c.gormDB),

		GetRoute:        queries.NewGetRouteQueryHandler(c.gormDB),
		ListRoutes:      queries.NewListRoutesQueryHandler(c.gormDB),
		GetDeliveryNote: queries.NewGetDeliveryNoteQueryHandler(c.gormDB),

		GetTrackingEvent:   queries.NewGetTrackingEventQueryHandler(c.gormDB),
		ListTrackingEvents: queries.NewListTrackingEventsQueryHandler(c.gormDB),

		GetFreightCharge:             queries.NewGetFreightChargeQueryHandler(c.gormDB),
		ListFreightChargesByShipment: queries.NewListFreightChargesByShipmentQueryHandler(c.gormDB),
		CalculateShipmentCharges:     queries.NewCalculateShipmentChargesQueryHandler(charges, services.NewChargeSummarizer()),
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tripUoWFactory() commands.TripUoWFactory {
	return FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryNoteUoWFactory() commands.DeliveryNoteUoWFactory {
	return FuncDeliveryNoteUoWFactory(func() commands.DeliveryNoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) trackingEventUoWFactory() commands.TrackingEventUoWFactory {
	return FuncTrackingEventUoWFactory(func() commands.TrackingEventUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) freightChargeUoWFactory() commands.FreightChargeUoWFactory {
	return FuncFreightChargeUoWFactory(func() commands.FreightChargeUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncDeliveryNoteUoWFactory func() commands.DeliveryNoteUoW

func (f FuncDeliveryNoteUoWFactory) Create() commands.DeliveryNoteUoW {
	return f()
}

type FuncTrackingEventUoWFactory func() commands.TrackingEventUoW

func (f FuncTrackingEventUoWFactory) Create() commands.TrackingEventUoW {
	return f()
}

type FuncFreightChargeUoWFactory func() commands.FreightChargeUoW

func (f FuncFreightChargeUoWFactory) Create() commands.FreightChargeUoW {
	return f()
}

// meteredPublisher counts published and failed domain events.
type meteredPublisher struct {
	inner   ports.EventPublisher
	metrics *telemetry.Metrics
}

func (p meteredPublisher) Publish(ctx context.Context, events []ddd.Event) error {
	if len(events) == 0 {
		return nil
	}
	err := p.inner.Publish(ctx, events)
	p.metrics.RecordPublish(len(events), err)
	return err
}
