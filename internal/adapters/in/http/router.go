// Package http exposes the application over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"sitta/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const documentPath = "/api/openapi.yaml"

// NewRouter wires the API routes, OpenAPI request validation, the Swagger UI
// and the health check onto a new echo instance.
func NewRouter(ctx context.Context, server servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger(ctx)
	if err != nil {
		return nil, err
	}
	validate, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(validate)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(documentPath, func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", servers.Document())
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL(documentPath)))

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"request_id", v.RequestID,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
