// Package store defines the read-only repository interface and its implementations.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
)

// ErrRunNotFound is returned by GetRun when no run matches the identifier.
var ErrRunNotFound = errors.New("run not found")

// Repository is the read-only data source behind the dashboard endpoints.
type Repository interface {
	// GetStats returns the current stats summary.
	GetStats(ctx context.Context) (*domain.StatSummary, error)
	// GetRun returns the run with the given identifier or ErrRunNotFound.
	GetRun(ctx context.Context, runID string) (*domain.OrchestrationRun, error)

	// Lifecycle
	Close() error
}

// CheckConsistency verifies that the stats summary points at a run the
// repository can resolve.
func CheckConsistency(ctx context.Context, repo Repository) error {
	stats, err := repo.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}
	if _, err := repo.GetRun(ctx, stats.ActiveRunID); err != nil {
		return fmt.Errorf("active run %q does not resolve: %w", stats.ActiveRunID, err)
	}
	return nil
}
