package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context, params StatusParams) error {
	var status *shipment.Status
	if params.Status != nil {
		parsed, err := shipment.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = &parsed
	}

	query, err := queries.NewListShipmentsQuery(status)
	if err != nil {
		return err
	}
	result, err := s.queries.ListShipments.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

// CreateShipment handles POST /api/v1/shipments. The shipment always starts in Draft.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body ShipmentBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	details, items, err := body.toDomain()
	if err != nil {
		return err
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, body.ShipmentNumber, details, items)
	if err != nil {
		return err
	}
	if err = s.commands.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return created(ctx, shipmentID)
}

func (s *Server) GetShipment(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetShipment.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

// UpdateShipment handles PUT /api/v1/shipments/{id}. Status and lifecycle dates are not
// changed; use the transition endpoints for that.
func (s *Server) UpdateShipment(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	var body ShipmentBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	details, items, err := body.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, details, items)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteShipment(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveShipmentCommand(shipmentID)
	if err != nil {
		return err
	}
	if err = s.commands.RemoveShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) ConfirmShipment(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfirmShipmentCommand(shipmentID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "shipment", "confirm", func(c context.Context) error {
		return s.commands.ConfirmShipment.Handle(c, cmd)
	})
}

func (s *Server) DispatchShipment(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDispatchShipmentCommand(shipmentID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "shipment", "dispatch", func(c context.Context) error {
		return s.commands.DispatchShipment.Handle(c, cmd)
	})
}

func (s *Server) MarkShipmentInTransit(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	var body InTransitBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	cmd, err := commands.NewMarkShipmentInTransitCommand(shipmentID, body.LocationName)
	if err != nil {
		return err
	}
	return s.transition(ctx, "shipment", "in_transit", func(c context.Context) error {
		return s.commands.MarkShipmentInTransit.Handle(c, cmd)
	})
}

func (s *Server) MarkShipmentOutForDelivery(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkShipmentOutForDeliveryCommand(shipmentID)
	if err != nil {
		return err
	}
	return s.transition(ctx, "shipment", "out_for_delivery", func(c context.Context) error {
		return s.commands.MarkShipmentOutForDelivery.Handle(c, cmd)
	})
}

func (s *Server) MarkShipmentDelivered(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	var body DeliverShipmentBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	cmd, err := commands.NewMarkShipmentDeliveredCommand(shipmentID, shipment.DeliveryConfirmation{
		DeliveredToName: body.DeliveredToName,
		Remarks:         body.DeliveryRemarks,
	})
	if err != nil {
		return err
	}
	return s.transition(ctx, "shipment", "deliver", func(c context.Context) error {
		return s.commands.MarkShipmentDelivered.Handle(c, cmd)
	})
}

func (s *Server) CancelShipment(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	var body CancelBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	cmd, err := commands.NewCancelShipmentCommand(shipmentID, body.Reason)
	if err != nil {
		return err
	}
	return s.transition(ctx, "shipment", "cancel", func(c context.Context) error {
		return s.commands.CancelShipment.Handle(c, cmd)
	})
}

// GetShipmentTracking handles GET /api/v1/shipments/{id}/tracking.
func (s *Server) GetShipmentTracking(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetShipmentTrackingQuery(shipmentID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetShipmentTracking.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}
