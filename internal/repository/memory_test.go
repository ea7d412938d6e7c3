package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
)

func TestMemoryStoreDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 68, stats.Plugins)
	assert.Equal(t, 24, stats.Agents)
	assert.Equal(t, 142, stats.Skills)
	assert.Equal(t, 7, stats.Orchestrators)
	assert.Equal(t, "Global Expansion Enablement Plan", stats.ActivePlanName)
	assert.Equal(t, DefaultActiveRunID, stats.ActiveRunID)

	run, err := s.GetRun(ctx, DefaultActiveRunID)
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusInProgress, run.Status)
	assert.Equal(t, 0.64, run.Progress)
	assert.Equal(t, 180, run.SLAMinutes)
	require.Len(t, run.Workers, 5)
	assert.Equal(t, "wrk-intake", run.Workers[0].ID)
	assert.Equal(t, "wrk-retrospective", run.Workers[4].ID)
	assert.Nil(t, run.Workers[1].Progress)

	_, err = s.GetRun(ctx, "run-missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestMemoryStoreIsNotMutatedThroughResults(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	run, err := s.GetRun(ctx, DefaultActiveRunID)
	require.NoError(t, err)
	run.Progress = 0
	run.Workers[0].Label = "changed"
	*run.Workers[0].Progress = 0

	stats, _ := s.GetStats(ctx)
	stats.Plugins = 0

	again, err := s.GetRun(ctx, DefaultActiveRunID)
	require.NoError(t, err)
	assert.Equal(t, 0.64, again.Progress)
	assert.Equal(t, "Intake & Qualification", again.Workers[0].Label)
	assert.Equal(t, 0.92, *again.Workers[0].Progress)

	statsAgain, _ := s.GetStats(ctx)
	assert.Equal(t, 68, statsAgain.Plugins)
}

func TestDefaultFixturesAreValid(t *testing.T) {
	f := DefaultFixtures()
	require.NoError(t, f.Validate())
	assert.NoError(t, CheckConsistency(context.Background(), NewMemoryStore(f)))
}

func TestCheckConsistencyDanglingActiveRun(t *testing.T) {
	f := DefaultFixtures()
	f.Stats.ActiveRunID = "run-gone"

	err := CheckConsistency(context.Background(), NewMemoryStore(f))
	assert.ErrorIs(t, err, ErrRunNotFound)
}

const fixtureYAML = `
stats:
  plugins: 3
  agents: 2
  skills: 1
  orchestrators: 1
  activePlanName: Regional Pilot
  activeRunId: run-7
runs:
  run-7:
    status: paused
    startedAt: 2025-03-01T10:00:00Z
    updatedAt: 2025-03-01T10:30:00Z
    progress: 0.25
    slaMinutes: 45
    workers:
      - id: wrk-a
        label: Alpha
        status: active
        eta: 2m
        progress: 0.5
      - id: wrk-b
        label: Beta
        status: queued
        eta: Pending
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFixtures(t *testing.T) {
	f, err := LoadFixtures(writeFixture(t, fixtureYAML))
	require.NoError(t, err)

	assert.Equal(t, "Regional Pilot", f.Stats.ActivePlanName)
	run, ok := f.Runs["run-7"]
	require.True(t, ok)
	assert.Equal(t, "run-7", run.ID, "id is filled from the map key")
	assert.Equal(t, domain.RunStatusPaused, run.Status)
	require.Len(t, run.Workers, 2)
	require.NotNil(t, run.Workers[0].Progress)
	assert.Equal(t, 0.5, *run.Workers[0].Progress)
	assert.Nil(t, run.Workers[1].Progress)

	s, err := NewSQLiteStore(":memory:", f)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.GetRun(context.Background(), "run-7")
	require.NoError(t, err)
	assert.Equal(t, "Beta", got.Workers[1].Label)
}

func TestLoadFixturesRejectsInvalid(t *testing.T) {
	t.Run("key mismatch", func(t *testing.T) {
		content := `
stats: {plugins: 1, agents: 1, skills: 1, orchestrators: 1, activePlanName: P, activeRunId: a}
runs:
  a:
    id: b
    status: completed
    startedAt: 2025-03-01T10:00:00Z
    updatedAt: 2025-03-01T10:00:00Z
    progress: 1
    slaMinutes: 5
`
		_, err := LoadFixtures(writeFixture(t, content))
		assert.Error(t, err)
	})

	t.Run("bad status", func(t *testing.T) {
		content := `
stats: {plugins: 1, agents: 1, skills: 1, orchestrators: 1, activePlanName: P, activeRunId: a}
runs:
  a:
    status: running
    startedAt: 2025-03-01T10:00:00Z
    updatedAt: 2025-03-01T10:00:00Z
    progress: 1
    slaMinutes: 5
`
		_, err := LoadFixtures(writeFixture(t, content))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFixtures(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
