package http

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListDrivers(ctx echo.Context, params StatusParams) error {
	var status *driver.Status
	if params.Status != nil {
		parsed, err := driver.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = &parsed
	}

	query, err := queries.NewListDriversQuery(status)
	if err != nil {
		return err
	}
	result, err := s.queries.ListDrivers.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

func (s *Server) CreateDriver(ctx echo.Context) error {
	var body DriverBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, body.DriverCode, body.toDomain())
	if err != nil {
		return err
	}
	if err = s.commands.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return created(ctx, driverID)
}

// FindAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) FindAvailableDrivers(ctx echo.Context) error {
	result, err := s.queries.FindAvailableDrivers.Handle(ctx.Request().Context(), queries.NewFindAvailableDriversQuery())
	return respond(ctx, result, err)
}

func (s *Server) GetDriver(ctx echo.Context, id openapi_types.UUID) error {
	driverID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetDriver.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

func (s *Server) MarkDriverOnTrip(ctx echo.Context, id openapi_types.UUID) error {
	driverID, err := pathID(id)
	if err != nil {
		return err
	}
	var body MarkOnTripBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	tripID, err := requiredID("tripId", body.TripID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkDriverOnTripCommand(driverID, tripID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "driver", "mark_on_trip", func(c context.Context) error {
		return s.commands.MarkDriverOnTrip.Handle(c, cmd)
	})
}

func (s *Server) MarkDriverAvailable(ctx echo.Context, id openapi_types.UUID) error {
	driverID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkDriverAvailableCommand(driverID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "driver", "mark_available", func(c context.Context) error {
		return s.commands.MarkDriverAvailable.Handle(c, cmd)
	})
}

func (s *Server) ListVehicles(ctx echo.Context, params StatusParams) error {
	var status *vehicle.Status
	if params.Status != nil {
		parsed, err := vehicle.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = &parsed
	}

	query, err := queries.NewListVehiclesQuery(status)
	if err != nil {
		return err
	}
	result, err := s.queries.ListVehicles.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

func (s *Server) CreateVehicle(ctx echo.Context) error {
	var body VehicleBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(vehicleID, body.VehicleCode, body.toDomain())
	if err != nil {
		return err
	}
	if err = s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return created(ctx, vehicleID)
}

func (s *Server) GetVehicle(ctx echo.Context, id openapi_types.UUID) error {
	vehicleID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetVehicleQuery(vehicleID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetVehicle.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

// UpdateVehicleLocation handles PUT /api/v1/vehicles/{id}/location. The odometer reading
// is optional and stored as given.
func (s *Server) UpdateVehicleLocation(ctx echo.Context, id openapi_types.UUID) error {
	vehicleID, err := pathID(id)
	if err != nil {
		return err
	}
	var body VehicleLocationBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateVehicleLocationCommand(vehicleID, body.Latitude, body.Longitude, body.CurrentOdometerReading)
	if err != nil {
		return err
	}
	return s.transition(ctx, "vehicle", "update_location", func(c context.Context) error {
		return s.commands.UpdateVehicleLocation.Handle(c, cmd)
	})
}
