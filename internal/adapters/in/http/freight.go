package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateFreightCharge handles POST /api/v1/freight-charges. Derived amounts are always
// computed by the server.
func (s *Server) CreateFreightCharge(ctx echo.Context) error {
	var body FreightChargeBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	terms, err := body.toDomain()
	if err != nil {
		return err
	}

	chargeID := kernel.NewUUID()
	cmd, err := commands.NewCreateFreightChargeCommand(chargeID, terms)
	if err != nil {
		return err
	}
	err = s.commands.CreateFreightCharge.Handle(ctx.Request().Context(), cmd)
	s.metrics.RecordFreightCalculation("create", err)
	if err != nil {
		return err
	}
	return created(ctx, chargeID)
}

func (s *Server) GetFreightCharge(ctx echo.Context, id openapi_types.UUID) error {
	chargeID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetFreightChargeQuery(chargeID)
	if err != nil {
		return err
	}
	result, err := s.queries.GetFreightCharge.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

func (s *Server) UpdateFreightCharge(ctx echo.Context, id openapi_types.UUID) error {
	chargeID, err := pathID(id)
	if err != nil {
		return err
	}
	var body FreightChargeBody
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	terms, err := body.toDomain()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateFreightChargeCommand(chargeID, terms)
	if err != nil {
		return err
	}
	err = s.commands.UpdateFreightCharge.Handle(ctx.Request().Context(), cmd)
	s.metrics.RecordFreightCalculation("update", err)
	if err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteFreightCharge(ctx echo.Context, id openapi_types.UUID) error {
	chargeID, err := pathID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteFreightChargeCommand(chargeID)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteFreightCharge.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) ListFreightChargesByShipment(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewListFreightChargesByShipmentQuery(shipmentID)
	if err != nil {
		return err
	}
	result, err := s.queries.ListFreightChargesByShipment.Handle(ctx.Request().Context(), query)
	return respond(ctx, result, err)
}

// CalculateShipmentCharges handles GET /api/v1/freight-charges/shipment/{id}/calculate.
// A shipment without charges yields zero totals and an empty list.
func (s *Server) CalculateShipmentCharges(ctx echo.Context, id openapi_types.UUID) error {
	shipmentID, err := pathID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewCalculateShipmentChargesQuery(shipmentID)
	if err != nil {
		return err
	}
	result, err := s.queries.CalculateShipmentCharges.Handle(ctx.Request().Context(), query)
	s.metrics.RecordFreightCalculation("summarize", err)
	return respond(ctx, result, err)
}
