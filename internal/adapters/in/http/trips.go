package http

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListTrips(ctx echo.Context, params StatusParams) error {
	var status *trip.Status
	if params.Status != nil {
		parsed, err := trip.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = &parsed
	}

	query, err := queries.NewListTripsQuery(status)
	if err != nil {
		return err
	}
	result, err := s.queries.ListTrips.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

// CreateTrip handles POST /api/v1/trips. Vehicle and driver are required; neither is
// checked for availability.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var body TripBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	plan, err := body.toDomain()
	if err != nil {
		return err
	}

	tripID := kernel.NewUUID()
	cmd, err := commands.NewCreateTripCommand(tripID, body.TripNumber, plan)
	if err != nil {
		return err
	}
	if err = s.commands.CreateTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return created(ctx, tripID)
}

func (s *Server) GetTrip(ctx echo.Context, id openapi_types.UUID) error {
	tripID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetTripQuery(tripID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetTrip.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

func (s *Server) ScheduleTrip(ctx echo.Context, id openapi_types.UUID) error {
	tripID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewScheduleTripCommand(tripID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "trip", "schedule", func(c context.Context) error {
		return s.commands.ScheduleTrip.Handle(c, cmd)
	})
}

func (s *Server) StartTrip(ctx echo.Context, id openapi_types.UUID) error {
	tripID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewStartTripCommand(tripID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "trip", "start", func(c context.Context) error {
		return s.commands.StartTrip.Handle(c, cmd)
	})
}

func (s *Server) CompleteTrip(ctx echo.Context, id openapi_types.UUID) error {
	tripID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteTripCommand(tripID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "trip", "complete", func(c context.Context) error {
		return s.commands.CompleteTrip.Handle(c, cmd)
	})
}

func (s *Server) CancelTrip(ctx echo.Context, id openapi_types.UUID) error {
	tripID, err := pathID(id)
	if err != nil {
		return err
	}
	var body CancelBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	cmd, err := commands.NewCancelTripCommand(tripID, body.Reason)
	if err != nil {
		return err
	}
	return s.transition(ctx, "trip", "cancel", func(c context.Context) error {
		return s.commands.CancelTrip.Handle(c, cmd)
	})
}

func (s *Server) UpdateTripLocation(ctx echo.Context, id openapi_types.UUID) error {
	tripID, err := pathID(id)
	if err != nil {
		return err
	}
	var body LocationBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateTripLocationCommand(tripID, body.Latitude, body.Longitude)
	if err != nil {
		return err
	}
	return s.transition(ctx, "trip", "update_location", func(c context.Context) error {
		return s.commands.UpdateTripLocation.Handle(c, cmd)
	})
}

func (s *Server) GetTripTracking(ctx echo.Context, id openapi_types.UUID) error {
	tripID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetTripTrackingQuery(tripID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetTripTracking.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}
