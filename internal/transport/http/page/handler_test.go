package page

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/repository"
	"github.com/Design-Arena-Gens/agentic-c0a91717/tests/helpers"
)

func TestOverview(t *testing.T) {
	e := echo.New()
	h := NewHandler(helpers.NewTestService(t, helpers.NewTestSQLiteStore(t, nil)), 2*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Overview(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML))

	body := rec.Body.String()
	assert.Contains(t, body, "Global Expansion Enablement Plan")
	assert.Contains(t, body, `data-role="progress">64%`)
	assert.Equal(t, 4, strings.Count(body, `data-role="metric"`))
	assert.Equal(t, 5, strings.Count(body, `data-role="worker"`))
	assert.NotContains(t, body, `data-role="stats-error"`)
	assert.NotContains(t, body, `data-role="worker-skeleton"`)
}

// slowStore blocks GetRun until the caller gives up.
type slowStore struct {
	store.Repository
}

func (s slowStore) GetRun(ctx context.Context, runID string) (*domain.OrchestrationRun, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestOverviewRendersPartialViewOnTimeout(t *testing.T) {
	e := echo.New()
	repo := slowStore{Repository: store.NewMemoryStore(nil)}
	NewHandler(helpers.NewTestService(t, repo), 50*time.Millisecond).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/overview", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Global Expansion Enablement Plan")
	assert.Contains(t, body, `data-role="worker-skeleton"`)
	assert.NotContains(t, body, `data-role="run-error"`)
}

type downStore struct{}

func (downStore) GetStats(ctx context.Context) (*domain.StatSummary, error) {
	return nil, errors.New("connection refused")
}

func (downStore) GetRun(ctx context.Context, runID string) (*domain.OrchestrationRun, error) {
	return nil, errors.New("connection refused")
}

func (downStore) Close() error { return nil }

func TestOverviewStatsFailure(t *testing.T) {
	e := echo.New()
	NewHandler(helpers.NewTestService(t, downStore{}), time.Second).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-role="stats-error">Failed to load stats`)
	assert.Contains(t, body, `data-role="worker-skeleton"`)
	assert.NotContains(t, body, `data-role="metric"`)
}
