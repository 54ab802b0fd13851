package http

import (
	"errors"
	"net/http"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusOf maps application errors to a status code. The second result tells whether the
// error message is safe to show to the client.
func statusOf(err error) (int, bool) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, true
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, true
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, true
	default:
		return http.StatusInternalServerError, false
	}
}

// NewErrorHandler writes errors as Error bodies. Unexpected errors are logged and hidden
// behind a generic message.
func NewErrorHandler(logger *otelzap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, public := statusOf(err)
		message := http.StatusText(code)
		if public {
			message = errorMessage(err)
		} else {
			logger.Ctx(c.Request().Context()).Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("route", c.Path()),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, Error{Code: code, Message: message})
		}
		if err != nil {
			logger.Error("failed to write error response", zap.Error(err))
		}
	}
}

func errorMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	}
	return err.Error()
}
