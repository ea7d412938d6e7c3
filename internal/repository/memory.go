package store

import (
	"context"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
)

// MemoryStore implements Repository over an in-process fixture set.
// It is built once and never mutated, so it is safe for concurrent use.
type MemoryStore struct {
	stats domain.StatSummary
	runs  map[string]domain.OrchestrationRun
}

// NewMemoryStore creates a store serving the given fixtures.
// A nil fixture set selects DefaultFixtures.
func NewMemoryStore(f *Fixtures) *MemoryStore {
	if f == nil {
		f = DefaultFixtures()
	}
	runs := make(map[string]domain.OrchestrationRun, len(f.Runs))
	for id, run := range f.Runs {
		runs[id] = cloneRun(run)
	}
	return &MemoryStore{stats: f.Stats, runs: runs}
}

// GetStats returns a copy of the stats summary.
func (s *MemoryStore) GetStats(ctx context.Context) (*domain.StatSummary, error) {
	stats := s.stats
	return &stats, nil
}

// GetRun returns a copy of the run so callers cannot mutate the table.
func (s *MemoryStore) GetRun(ctx context.Context, runID string) (*domain.OrchestrationRun, error) {
	run, ok := s.runs[runID]
	if !ok {
		return nil, ErrRunNotFound
	}
	out := cloneRun(run)
	return &out, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

func cloneRun(run domain.OrchestrationRun) domain.OrchestrationRun {
	workers := make([]domain.RunWorker, len(run.Workers))
	for i, w := range run.Workers {
		if w.Progress != nil {
			p := *w.Progress
			w.Progress = &p
		}
		workers[i] = w
	}
	run.Workers = workers
	return run
}
