// Package page serves the server-rendered overview page.
package page

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/dashboard"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/service"
)

// Handler renders the overview page.
type Handler struct {
	service *service.Service
	timeout time.Duration
}

// NewHandler creates a page handler. timeout bounds how long a render
// waits for the dashboard fetches before drawing whatever has resolved.
func NewHandler(service *service.Service, timeout time.Duration) *Handler {
	return &Handler{
		service: service,
		timeout: timeout,
	}
}

// RegisterRoutes registers the page routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Overview)
	e.GET("/overview", h.Overview)
}

// Overview mounts a dashboard controller for the duration of the request
// and renders its view.
// GET /
func (h *Handler) Overview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ctrl := dashboard.NewController(dashboard.NewServiceFetcher(h.service))
	ctrl.Mount(ctx)
	select {
	case <-ctrl.Done():
	case <-ctx.Done():
		log.Warn().Dur("timeout", h.timeout).Msg("overview rendered before fetches settled")
	}
	ctrl.Unmount()

	var buf bytes.Buffer
	if err := dashboard.RenderHTML(&buf, ctrl.View()); err != nil {
		log.Error().Err(err).Msg("failed to render overview")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to render page"})
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
