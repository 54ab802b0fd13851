package http

import (
	"context"
	"net/http"

	"logistics/internal/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
)

const BaseURL = "/api/v1"

type RouterConfig struct {
	Logger   *otelzap.Logger
	Metrics  *telemetry.Metrics
	Gatherer prometheus.Gatherer
	Tracer   trace.Tracer
	LogLevel string
	// Health reports whether the service can serve requests, typically a database ping.
	Health func(ctx context.Context) error
}

// NewRouter builds the echo instance: operational endpoints at the root and the
// validated API under BaseURL.
func NewRouter(ctx context.Context, server ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	swagger, err := SwaggerHandler(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(cfg.LogLevel))
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(
		middleware.Recover(),
		Tracing(cfg.Tracer),
		Metrics(cfg.Metrics),
		RequestLogger(cfg.Logger),
	)

	e.GET("/health", func(c echo.Context) error {
		if cfg.Health != nil {
			if healthErr := cfg.Health(c.Request().Context()); healthErr != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", swagger)

	api := e.Group(BaseURL, validator)
	RegisterHandlers(api, server, "")

	return e, nil
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug", "DEBUG":
		return log.DEBUG
	case "warn", "WARN":
		return log.WARN
	case "error", "ERROR":
		return log.ERROR
	default:
		return log.INFO
	}
}
