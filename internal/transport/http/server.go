// Package http provides the HTTP server implementation for the command center.
package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/config"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/service"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/transport/http/page"
	v1 "github.com/Design-Arena-Gens/agentic-c0a91717/internal/transport/http/v1"
)

// NewServer creates and configures the HTTP server.
// It serves the JSON API and the overview page.
func NewServer(svc *service.Service, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	v1Handler := v1.NewHandler(svc)
	pageHandler := page.NewHandler(svc, cfg.PageRenderTimeout)

	// Register Routes
	v1Handler.RegisterRoutes(e)
	pageHandler.RegisterRoutes(e)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
