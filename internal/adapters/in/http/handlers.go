package http

import (
	"context"
	"net/http"

	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func pathID(id openapi_types.UUID) (kernel.UUID, error) {
	return requiredID("id", id)
}

// created answers 201 with the identifier generated for the new aggregate.
func created(ctx echo.Context, id kernel.UUID) error {
	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// transition runs one lifecycle command, counts its outcome and answers 204.
func (s *Server) transition(ctx echo.Context, aggregate, action string, run func(context.Context) error) error {
	err := run(ctx.Request().Context())
	s.metrics.RecordTransition(aggregate, action, err)
	if err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func respond[R any](ctx echo.Context, result R, err error) error {
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, result)
}
