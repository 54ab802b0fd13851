package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/deliverynote"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListRoutes(ctx echo.Context) error {
	result, err := s.queries.ListRoutes.Handle(ctx.Request().Context(), queries.NewListRoutesQuery())
	return respond(ctx, result, err)
}

func (s *Server) CreateRoute(ctx echo.Context) error {
	var body RouteBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, body.RouteCode, body.toDomain())
	if err != nil {
		return err
	}
	if err = s.commands.CreateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return created(ctx, routeID)
}

func (s *Server) GetRoute(ctx echo.Context, id openapi_types.UUID) error {
	routeID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetRouteQuery(routeID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetRoute.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

// RefreshRouteStatistics handles POST /api/v1/routes/refresh-statistics, the on-demand
// counterpart of the scheduled job.
func (s *Server) RefreshRouteStatistics(ctx echo.Context) error {
	updated, err := s.commands.RefreshRouteStatistics.Handle(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, RefreshedRoutes{Updated: updated})
}

func (s *Server) CreateDeliveryNote(ctx echo.Context) error {
	var body DeliveryNoteBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	shipmentID, err := optionalID("shipmentId", body.ShipmentID)
	if err != nil {
		return err
	}

	noteID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryNoteCommand(noteID, body.DeliveryNoteNumber, shipmentID, deliverynote.Summary{
		ItemCount:     body.ItemCount,
		TotalQuantity: body.TotalQuantity,
	})
	if err != nil {
		return err
	}
	if err = s.commands.CreateDeliveryNote.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return created(ctx, noteID)
}

func (s *Server) GetDeliveryNote(ctx echo.Context, id openapi_types.UUID) error {
	noteID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDeliveryNoteQuery(noteID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetDeliveryNote.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

func (s *Server) SubmitDeliveryNote(ctx echo.Context, id openapi_types.UUID) error {
	noteID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSubmitDeliveryNoteCommand(noteID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "delivery_note", "submit", func(c context.Context) error {
		return s.commands.SubmitDeliveryNote.Handle(c, cmd)
	})
}

func (s *Server) DeliverDeliveryNote(ctx echo.Context, id openapi_types.UUID) error {
	noteID, err := pathID(id)
	if err != nil {
		return err
	}
	var body DeliveryProofBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	cmd, err := commands.NewDeliverDeliveryNoteCommand(noteID, body.toDomain())
	if err != nil {
		return err
	}
	return s.transition(ctx, "delivery_note", "deliver", func(c context.Context) error {
		return s.commands.DeliverDeliveryNote.Handle(c, cmd)
	})
}

func (s *Server) CancelDeliveryNote(ctx echo.Context, id openapi_types.UUID) error {
	noteID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelDeliveryNoteCommand(noteID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "delivery_note", "cancel", func(c context.Context) error {
		return s.commands.CancelDeliveryNote.Handle(c, cmd)
	})
}
