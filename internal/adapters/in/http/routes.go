package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// StatusParams are the query parameters of the list operations that filter by status.
type StatusParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface lists every operation of openapi.yaml.
type ServerInterface interface {
	ListShipments(ctx echo.Context, params StatusParams) error
	CreateShipment(ctx echo.Context) error
	GetShipment(ctx echo.Context, id openapi_types.UUID) error
	UpdateShipment(ctx echo.Context, id openapi_types.UUID) error
	DeleteShipment(ctx echo.Context, id openapi_types.UUID) error
	ConfirmShipment(ctx echo.Context, id openapi_types.UUID) error
	DispatchShipment(ctx echo.Context, id openapi_types.UUID) error
	MarkShipmentInTransit(ctx echo.Context, id openapi_types.UUID) error
	MarkShipmentOutForDelivery(ctx echo.Context, id openapi_types.UUID) error
	MarkShipmentDelivered(ctx echo.Context, id openapi_types.UUID) error
	CancelShipment(ctx echo.Context, id openapi_types.UUID) error
	GetShipmentTracking(ctx echo.Context, id openapi_types.UUID) error

	ListTrips(ctx echo.Context, params StatusParams) error
	CreateTrip(ctx echo.Context) error
	GetTrip(ctx echo.Context, id openapi_types.UUID) error
	ScheduleTrip(ctx echo.Context, id openapi_types.UUID) error
	StartTrip(ctx echo.Context, id openapi_types.UUID) error
	CompleteTrip(ctx echo.Context, id openapi_types.UUID) error
	CancelTrip(ctx echo.Context, id openapi_types.UUID) error
	UpdateTripLocation(ctx echo.Context, id openapi_types.UUID) error
	GetTripTracking(ctx echo.Context, id openapi_types.UUID) error

	ListDrivers(ctx echo.Context, params StatusParams) error
	CreateDriver(ctx echo.Context) error
	FindAvailableDrivers(ctx echo.Context) error
	GetDriver(ctx echo.Context, id openapi_types.UUID) error
	MarkDriverOnTrip(ctx echo.Context, id openapi_types.UUID) error
	MarkDriverAvailable(ctx echo.Context, id openapi_types.UUID) error

	ListVehicles(ctx echo.Context, params StatusParams) error
	CreateVehicle(ctx echo.Context) error
	GetVehicle(ctx echo.Context, id openapi_types.UUID) error
	UpdateVehicleLocation(ctx echo.Context, id openapi_types.UUID) error

	ListRoutes(ctx echo.Context) error
	CreateRoute(ctx echo.Context) error
	GetRoute(ctx echo.Context, id openapi_types.UUID) error
	RefreshRouteStatistics(ctx echo.Context) error

	CreateDeliveryNote(ctx echo.Context) error
	GetDeliveryNote(ctx echo.Context, id openapi_types.UUID) error
	SubmitDeliveryNote(ctx echo.Context, id openapi_types.UUID) error
	DeliverDeliveryNote(ctx echo.Context, id openapi_types.UUID) error
	CancelDeliveryNote(ctx echo.Context, id openapi_types.UUID) error

	ListTrackingEvents(ctx echo.Context) error
	RecordTrackingEvent(ctx echo.Context) error
	GetTrackingEvent(ctx echo.Context, id openapi_types.UUID) error
	UpdateTrackingEvent(ctx echo.Context, id openapi_types.UUID) error
	DeleteTrackingEvent(ctx echo.Context, id openapi_types.UUID) error
	ResolveTrackingEvent(ctx echo.Context, id openapi_types.UUID) error
	ListTrackingEventsByShipment(ctx echo.Context, id openapi_types.UUID) error
	ListTrackingEventsByTrip(ctx echo.Context, id openapi_types.UUID) error

	CreateFreightCharge(ctx echo.Context) error
	GetFreightCharge(ctx echo.Context, id openapi_types.UUID) error
	UpdateFreightCharge(ctx echo.Context, id openapi_types.UUID) error
	DeleteFreightCharge(ctx echo.Context, id openapi_types.UUID) error
	ListFreightChargesByShipment(ctx echo.Context, id openapi_types.UUID) error
	CalculateShipmentCharges(ctx echo.Context, id openapi_types.UUID) error
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// byID binds the :id path parameter before calling h.
func byID(h func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var id openapi_types.UUID
		err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
		}
		return h(ctx, id)
	}
}

// withStatus binds the optional status query parameter before calling h.
func withStatus(h func(echo.Context, StatusParams) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var params StatusParams
		err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
		}
		return h(ctx, params)
	}
}

// RegisterHandlers adds each server route to the router under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	router.GET(baseURL+"/shipments", withStatus(si.ListShipments))
	router.POST(baseURL+"/shipments", si.CreateShipment)
	router.GET(baseURL+"/shipments/:id", byID(si.GetShipment))
	router.PUT(baseURL+"/shipments/:id", byID(si.UpdateShipment))
	router.DELETE(baseURL+"/shipments/:id", byID(si.DeleteShipment))
	router.POST(baseURL+"/shipments/:id/confirm", byID(si.ConfirmShipment))
	router.POST(baseURL+"/shipments/:id/dispatch", byID(si.DispatchShipment))
	router.POST(baseURL+"/shipments/:id/in-transit", byID(si.MarkShipmentInTransit))
	router.POST(baseURL+"/shipments/:id/out-for-delivery", byID(si.MarkShipmentOutForDelivery))
	router.POST(baseURL+"/shipments/:id/deliver", byID(si.MarkShipmentDelivered))
	router.POST(baseURL+"/shipments/:id/cancel", byID(si.CancelShipment))
	router.GET(baseURL+"/shipments/:id/tracking", byID(si.GetShipmentTracking))

	router.GET(baseURL+"/trips", withStatus(si.ListTrips))
	router.POST(baseURL+"/trips", si.CreateTrip)
	router.GET(baseURL+"/trips/:id", byID(si.GetTrip))
	router.POST(baseURL+"/trips/:id/schedule", byID(si.ScheduleTrip))
	router.POST(baseURL+"/trips/:id/start", byID(si.StartTrip))
	router.POST(baseURL+"/trips/:id/complete", byID(si.CompleteTrip))
	router.POST(baseURL+"/trips/:id/cancel", byID(si.CancelTrip))
	router.PUT(baseURL+"/trips/:id/location", byID(si.UpdateTripLocation))
	router.GET(baseURL+"/trips/:id/tracking", byID(si.GetTripTracking))

	router.GET(baseURL+"/drivers", withStatus(si.ListDrivers))
	router.POST(baseURL+"/drivers", si.CreateDriver)
	router.GET(baseURL+"/drivers/available", si.FindAvailableDrivers)
	router.GET(baseURL+"/drivers/:id", byID(si.GetDriver))
	router.POST(baseURL+"/drivers/:id/mark-on-trip", byID(si.MarkDriverOnTrip))
	router.POST(baseURL+"/drivers/:id/mark-available", byID(si.MarkDriverAvailable))

	router.GET(baseURL+"/vehicles", withStatus(si.ListVehicles))
	router.POST(baseURL+"/vehicles", si.CreateVehicle)
	router.GET(baseURL+"/vehicles/:id", byID(si.GetVehicle))
	router.PUT(baseURL+"/vehicles/:id/location", byID(si.UpdateVehicleLocation))

	router.GET(baseURL+"/routes", si.ListRoutes)
	router.POST(baseURL+"/routes", si.CreateRoute)
	router.POST(baseURL+"/routes/refresh-statistics", si.RefreshRouteStatistics)
	router.GET(baseURL+"/routes/:id", byID(si.GetRoute))

	router.POST(baseURL+"/delivery-notes", si.CreateDeliveryNote)
	router.GET(baseURL+"/delivery-notes/:id", byID(si.GetDeliveryNote))
	router.POST(baseURL+"/delivery-notes/:id/submit", byID(si.SubmitDeliveryNote))
	router.POST(baseURL+"/delivery-notes/:id/deliver", byID(si.DeliverDeliveryNote))
	router.POST(baseURL+"/delivery-notes/:id/cancel", byID(si.CancelDeliveryNote))

	router.GET(baseURL+"/tracking-events", si.ListTrackingEvents)
	router.POST(baseURL+"/tracking-events", si.RecordTrackingEvent)
	router.GET(baseURL+"/tracking-events/shipment/:id", byID(si.ListTrackingEventsByShipment))
	router.GET(baseURL+"/tracking-events/trip/:id", byID(si.ListTrackingEventsByTrip))
	router.GET(baseURL+"/tracking-events/:id", byID(si.GetTrackingEvent))
	router.PUT(baseURL+"/tracking-events/:id", byID(si.UpdateTrackingEvent))
	router.DELETE(baseURL+"/tracking-events/:id", byID(si.DeleteTrackingEvent))
	router.POST(baseURL+"/tracking-events/:id/resolve", byID(si.ResolveTrackingEvent))

	router.POST(baseURL+"/freight-charges", si.CreateFreightCharge)
	router.GET(baseURL+"/freight-charges/shipment/:id", byID(si.ListFreightChargesByShipment))
	router.GET(baseURL+"/freight-charges/shipment/:id/calculate", byID(si.CalculateShipmentCharges))
	router.GET(baseURL+"/freight-charges/:id", byID(si.GetFreightCharge))
	router.PUT(baseURL+"/freight-charges/:id", byID(si.UpdateFreightCharge))
	router.DELETE(baseURL+"/freight-charges/:id", byID(si.DeleteFreightCharge))
}
