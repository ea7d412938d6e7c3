package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/repository"
)

// GetStats returns the stats summary.
func (s *Service) GetStats(ctx context.Context) (*domain.StatSummary, error) {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

// GetRun resolves the identifier values taken from a request to a run.
// values must hold exactly one well-formed identifier, otherwise
// ErrInvalidRunID is returned. A miss returns ErrRunNotFound.
func (s *Service) GetRun(ctx context.Context, values []string) (*domain.OrchestrationRun, error) {
	ok, err := s.policyEngine.AdmitRunID(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("failed to check run identifier: %w", err)
	}
	if !ok {
		log.Debug().Strs("values", values).Msg("rejected run identifier")
		return nil, ErrInvalidRunID
	}

	run, err := s.store.GetRun(ctx, values[0])
	if errors.Is(err, store.ErrRunNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}
