// Package v1 provides the JSON API handlers for the command center.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the API routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/stats", h.GetStats)
	e.GET("/api/runs", h.GetRun)
	e.GET("/api/runs/", h.GetRun)
	e.GET("/api/runs/:id", h.GetRun)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
