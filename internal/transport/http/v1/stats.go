package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// GetStats returns the stats summary.
// GET /api/stats
func (h *Handler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.service.GetStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load stats")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load stats"})
	}

	return c.JSON(http.StatusOK, stats)
}
