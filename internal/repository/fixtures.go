package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
)

// Fixtures is the full data set a repository serves.
type Fixtures struct {
	Stats domain.StatSummary                  `yaml:"stats"`
	Runs  map[string]domain.OrchestrationRun `yaml:"runs"`
}

// DefaultActiveRunID is the run the compiled-in stats point at.
const DefaultActiveRunID = "run-4927"

// DefaultFixtures returns the compiled-in data set. Each call returns a
// fresh copy.
func DefaultFixtures() *Fixtures {
	started := time.Date(2025, 2, 17, 8, 55, 0, 0, time.UTC)
	updated := time.Date(2025, 2, 17, 9, 42, 0, 0, time.UTC)

	return &Fixtures{
		Stats: domain.StatSummary{
			Plugins:        68,
			Agents:         24,
			Skills:         142,
			Orchestrators:  7,
			ActivePlanName: "Global Expansion Enablement Plan",
			ActiveRunID:    DefaultActiveRunID,
		},
		Runs: map[string]domain.OrchestrationRun{
			DefaultActiveRunID: {
				ID:         DefaultActiveRunID,
				Status:     domain.RunStatusInProgress,
				StartedAt:  started,
				UpdatedAt:  updated,
				Progress:   0.64,
				SLAMinutes: 180,
				Workers: []domain.RunWorker{
					{
						ID:       "wrk-intake",
						Label:    "Intake & Qualification",
						Status:   domain.WorkerStatusActive,
						ETA:      "4m",
						Progress: progress(0.92),
					},
					{
						ID:     "wrk-procurement",
						Label:  "Procurement Negotiator",
						Status: domain.WorkerStatusQueued,
						ETA:    "14m",
					},
					{
						ID:     "wrk-compliance",
						Label:  "Compliance Sentinel",
						Status: domain.WorkerStatusOnHold,
						ETA:    "Awaiting Finance",
					},
					{
						ID:     "wrk-rollout",
						Label:  "Rollout Coordinator",
						Status: domain.WorkerStatusCooldown,
						ETA:    "27m",
					},
					{
						ID:       "wrk-retrospective",
						Label:    "Retro Facilitator",
						Status:   domain.WorkerStatusComplete,
						ETA:      "Done",
						Progress: progress(1),
					},
				},
			},
		},
	}
}

func progress(v float64) *float64 {
	return &v
}

// LoadFixtures reads a YAML fixture file. The map key of each run must
// match its id; an empty id is filled from the key.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}

	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}

	for key, run := range f.Runs {
		if run.ID == "" {
			run.ID = key
			f.Runs[key] = run
		}
		if run.ID != key {
			return nil, fmt.Errorf("fixture run key %q does not match id %q", key, run.ID)
		}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every entity in the fixture set.
func (f *Fixtures) Validate() error {
	if err := f.Stats.Validate(); err != nil {
		return fmt.Errorf("invalid stats fixture: %w", err)
	}
	for _, run := range f.Runs {
		if err := run.Validate(); err != nil {
			return fmt.Errorf("invalid run fixture: %w", err)
		}
	}
	return nil
}
