package v1

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/service"
)

// GetRun returns a run by identifier.
// GET /api/runs/:id
// GET /api/runs?id=
func (h *Handler) GetRun(c echo.Context) error {
	ctx := c.Request().Context()

	values, ok := runIDValues(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": service.InvalidRunIDMessage})
	}

	run, err := h.service.GetRun(ctx, values)
	switch {
	case errors.Is(err, service.ErrInvalidRunID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": service.InvalidRunIDMessage})
	case errors.Is(err, service.ErrRunNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": service.RunNotFoundMessage})
	case err != nil:
		log.Error().Err(err).Strs("run_id", values).Msg("failed to load run")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load run"})
	}

	return c.JSON(http.StatusOK, run)
}

// runIDValues collects every identifier the request carries: the path
// segment, when present, plus each "id" query value. ok is false when the
// path segment is not valid percent-encoding.
func runIDValues(c echo.Context) ([]string, bool) {
	values := []string{}
	if id := c.Param("id"); id != "" {
		// echo routes on RawPath when it is set and leaves the segment escaped.
		if c.Request().URL.RawPath != "" {
			unescaped, err := url.PathUnescape(id)
			if err != nil {
				return nil, false
			}
			id = unescaped
		}
		values = append(values, id)
	}
	values = append(values, c.QueryParams()["id"]...)
	return values, true
}
