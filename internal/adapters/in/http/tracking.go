package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListTrackingEvents handles GET /api/v1/tracking-events, newest first.
func (s *Server) ListTrackingEvents(ctx echo.Context) error {
	return s.listTrackingEvents(ctx, queries.TrackingEventsFilter{})
}

// ListTrackingEventsByShipment handles GET /api/v1/tracking-events/shipment/{id}, oldest first.
func (s *Server) ListTrackingEventsByShipment(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	return s.listTrackingEvents(ctx, queries.TrackingEventsFilter{ShipmentID: &shipmentID})
}

// ListTrackingEventsByTrip handles GET /api/v1/tracking-events/trip/{id}, oldest first.
func (s *Server) ListTrackingEventsByTrip(ctx echo.Context, id openapi_types.UUID) error {
	tripID, err := pathID(id)
	if err != nil {
		return err
	}
	return s.listTrackingEvents(ctx, queries.TrackingEventsFilter{TripID: &tripID})
}

func (s *Server) listTrackingEvents(ctx echo.Context, filter queries.TrackingEventsFilter) error {
	query, err := queries.NewListTrackingEventsQuery(filter)
	if err != nil {
		return err
	}
	result, err := s.queries.ListTrackingEvents.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

// RecordTrackingEvent handles POST /api/v1/tracking-events. Recording an event never
// changes the status of the shipment or trip it references.
func (s *Server) RecordTrackingEvent(ctx echo.Context) error {
	var body TrackingEventBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	details, err := body.toDomain()
	if err != nil {
		return err
	}

	eventID := kernel.NewUUID()
	cmd, err := commands.NewRecordTrackingEventCommand(eventID, body.EventNumber, details)
	if err != nil {
		return err
	}
	if err = s.commands.RecordTrackingEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return created(ctx, eventID)
}

func (s *Server) GetTrackingEvent(ctx echo.Context, id openapi_types.UUID) error {
	eventID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetTrackingEventQuery(eventID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetTrackingEvent.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

func (s *Server) UpdateTrackingEvent(ctx echo.Context, id openapi_types.UUID) error {
	eventID, err := pathID(id)
	if err != nil {
		return err
	}
	var body TrackingEventBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	details, err := body.toDomain()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateTrackingEventCommand(eventID, details)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateTrackingEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) ResolveTrackingEvent(ctx echo.Context, id openapi_types.UUID) error {
	eventID, err := pathID(id)
	if err != nil {
		return err
	}
	var body ResolveBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	cmd, err := commands.NewResolveTrackingEventCommand(eventID, body.ResolutionNotes)
	if err != nil {
		return err
	}
	if err = s.commands.ResolveTrackingEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteTrackingEvent(ctx echo.Context, id openapi_types.UUID) error {
	eventID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteTrackingEventCommand(eventID)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteTrackingEvent.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
