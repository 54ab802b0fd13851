package http

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/telemetry"
)

// CommandHandler is satisfied by every handler in the commands package.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every handler in the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

type RouteStatisticsRefresher interface {
	Handle(ctx context.Context) (int, error)
}

// Commands groups the write-side handlers the server dispatches to.
type Commands struct {
	CreateShipment             CommandHandler[commands.CreateShipmentCommand]
	UpdateShipment             CommandHandler[commands.UpdateShipmentCommand]
	ConfirmShipment            CommandHandler[commands.ConfirmShipmentCommand]
	DispatchShipment           CommandHandler[commands.DispatchShipmentCommand]
	MarkShipmentInTransit      CommandHandler[commands.MarkShipmentInTransitCommand]
	MarkShipmentOutForDelivery CommandHandler[commands.MarkShipmentOutForDeliveryCommand]
	MarkShipmentDelivered      CommandHandler[commands.MarkShipmentDeliveredCommand]
	CancelShipment             CommandHandler[commands.CancelShipmentCommand]
	RemoveShipment             CommandHandler[commands.RemoveShipmentCommand]

	CreateTrip         CommandHandler[commands.CreateTripCommand]
	ScheduleTrip       CommandHandler[commands.ScheduleTripCommand]
	StartTrip          CommandHandler[commands.StartTripCommand]
	CompleteTrip       CommandHandler[commands.CompleteTripCommand]
	CancelTrip         CommandHandler[commands.CancelTripCommand]
	UpdateTripLocation CommandHandler[commands.UpdateTripLocationCommand]

	CreateDriver          CommandHandler[commands.CreateDriverCommand]
	MarkDriverOnTrip      CommandHandler[commands.MarkDriverOnTripCommand]
	MarkDriverAvailable   CommandHandler[commands.MarkDriverAvailableCommand]
	CreateVehicle         CommandHandler[commands.CreateVehicleCommand]
	UpdateVehicleLocation CommandHandler[commands.UpdateVehicleLocationCommand]

	CreateRoute            CommandHandler[commands.CreateRouteCommand]
	RefreshRouteStatistics RouteStatisticsRefresher

	CreateDeliveryNote  CommandHandler[commands.CreateDeliveryNoteCommand]
	SubmitDeliveryNote  CommandHandler[commands.SubmitDeliveryNoteCommand]
	DeliverDeliveryNote CommandHandler[commands.DeliverDeliveryNoteCommand]
	CancelDeliveryNote  CommandHandler[commands.CancelDeliveryNoteCommand]

	RecordTrackingEvent  CommandHandler[commands.RecordTrackingEventCommand]
	UpdateTrackingEvent  CommandHandler[commands.UpdateTrackingEventCommand]
	ResolveTrackingEvent CommandHandler[commands.ResolveTrackingEventCommand]
	DeleteTrackingEvent  CommandHandler[commands.DeleteTrackingEventCommand]

	CreateFreightCharge CommandHandler[commands.CreateFreightChargeCommand]
	UpdateFreightCharge CommandHandler[commands.UpdateFreightChargeCommand]
	DeleteFreightCharge CommandHandler[commands.DeleteFreightChargeCommand]
}

// Queries groups the read-side handlers the server dispatches to.
type Queries struct {
	GetShipment         QueryHandler[queries.GetShipmentQuery, queries.ShipmentView]
	ListShipments       QueryHandler[queries.ListShipmentsQuery, []queries.ShipmentView]
	GetShipmentTracking QueryHandler[queries.GetShipmentTrackingQuery, queries.ShipmentTrackingView]

	GetTrip         QueryHandler[queries.GetTripQuery, queries.TripView]
	ListTrips       QueryHandler[queries.ListTripsQuery, []queries.TripView]
	GetTripTracking QueryHandler[queries.GetTripTrackingQuery, queries.TripTrackingView]

	GetDriver            QueryHandler[queries.GetDriverQuery, queries.DriverView]
	ListDrivers          QueryHandler[queries.ListDriversQuery, []queries.DriverView]
	FindAvailableDrivers QueryHandler[queries.FindAvailableDriversQuery, []queries.DriverView]
	GetVehicle           QueryHandler[queries.GetVehicleQuery, queries.VehicleView]
	ListVehicles         QueryHandler[queries.ListVehiclesQuery, []queries.VehicleView]

	GetRoute        QueryHandler[queries.GetRouteQuery, queries.RouteView]
	ListRoutes      QueryHandler[queries.ListRoutesQuery, []queries.RouteView]
	GetDeliveryNote QueryHandler[queries.GetDeliveryNoteQuery, queries.DeliveryNoteView]

	GetTrackingEvent   QueryHandler[queries.GetTrackingEventQuery, queries.TrackingEventView]
	ListTrackingEvents QueryHandler[queries.ListTrackingEventsQuery, []queries.TrackingEventView]

	GetFreightCharge             QueryHandler[queries.GetFreightChargeQuery, queries.FreightChargeView]
	ListFreightChargesByShipment QueryHandler[queries.ListFreightChargesByShipmentQuery, []queries.FreightChargeView]
	CalculateShipmentCharges     QueryHandler[queries.CalculateShipmentChargesQuery, queries.ShipmentChargesView]
}

// Server implements ServerInterface. It turns requests into commands and queries and
// maps their results back to HTTP; identifiers of new aggregates are generated here.
type Server struct {
	commands Commands
	queries  Queries
	metrics  *telemetry.Metrics
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qs Queries, metrics *telemetry.Metrics) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		metrics:  metrics,
	}
}
