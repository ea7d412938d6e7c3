package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is the wire form of run timestamps: UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// StatSummary is the fleet-wide counter snapshot plus a pointer to the active run.
type StatSummary struct {
	Plugins        int    `json:"plugins" yaml:"plugins"`
	Agents         int    `json:"agents" yaml:"agents"`
	Skills         int    `json:"skills" yaml:"skills"`
	Orchestrators  int    `json:"orchestrators" yaml:"orchestrators"`
	ActivePlanName string `json:"activePlanName" yaml:"activePlanName"`
	ActiveRunID    string `json:"activeRunId" yaml:"activeRunId"`
}

// OrchestrationRun represents a single execution of an orchestration plan.
type OrchestrationRun struct {
	ID         string      `json:"id" yaml:"id"`
	Status     RunStatus   `json:"status" yaml:"status"`
	StartedAt  time.Time   `json:"startedAt" yaml:"startedAt"`
	UpdatedAt  time.Time   `json:"updatedAt" yaml:"updatedAt"`
	Progress   float64     `json:"progress" yaml:"progress"`
	SLAMinutes int         `json:"slaMinutes" yaml:"slaMinutes"`
	Workers    []RunWorker `json:"workers" yaml:"workers"`
}

// RunWorker is a unit of work within a run.
type RunWorker struct {
	ID     string       `json:"id" yaml:"id"`
	Label  string       `json:"label" yaml:"label"`
	Status WorkerStatus `json:"status" yaml:"status"`
	// ETA is free text ("4m", "Awaiting Finance"), not a duration.
	ETA      string   `json:"eta" yaml:"eta"`
	Progress *float64 `json:"progress,omitempty" yaml:"progress,omitempty"`
}

// MarshalJSON writes the run with TimestampLayout timestamps.
func (r OrchestrationRun) MarshalJSON() ([]byte, error) {
	workers := r.Workers
	if workers == nil {
		workers = []RunWorker{}
	}
	return json.Marshal(struct {
		ID         string      `json:"id"`
		Status     RunStatus   `json:"status"`
		StartedAt  string      `json:"startedAt"`
		UpdatedAt  string      `json:"updatedAt"`
		Progress   float64     `json:"progress"`
		SLAMinutes int         `json:"slaMinutes"`
		Workers    []RunWorker `json:"workers"`
	}{
		ID:         r.ID,
		Status:     r.Status,
		StartedAt:  r.StartedAt.UTC().Format(TimestampLayout),
		UpdatedAt:  r.UpdatedAt.UTC().Format(TimestampLayout),
		Progress:   r.Progress,
		SLAMinutes: r.SLAMinutes,
		Workers:    workers,
	})
}

// Validate checks the counters of a stats summary.
func (s *StatSummary) Validate() error {
	if s.Plugins < 0 || s.Agents < 0 || s.Skills < 0 || s.Orchestrators < 0 {
		return errors.New("stats counters must be non-negative")
	}
	if s.ActiveRunID == "" {
		return errors.New("activeRunId is required")
	}
	return nil
}

// Validate checks the ranges and enumerations of a run and its workers.
func (r *OrchestrationRun) Validate() error {
	if r.ID == "" {
		return errors.New("run id is required")
	}
	if !r.Status.Valid() {
		return fmt.Errorf("run %s: unknown status %q", r.ID, r.Status)
	}
	if r.UpdatedAt.Before(r.StartedAt) {
		return fmt.Errorf("run %s: updatedAt precedes startedAt", r.ID)
	}
	if !inUnitRange(r.Progress) {
		return fmt.Errorf("run %s: progress %v out of range [0,1]", r.ID, r.Progress)
	}
	if r.SLAMinutes <= 0 {
		return fmt.Errorf("run %s: slaMinutes must be positive", r.ID)
	}
	for _, w := range r.Workers {
		if w.ID == "" {
			return fmt.Errorf("run %s: worker id is required", r.ID)
		}
		if !w.Status.Valid() {
			return fmt.Errorf("run %s: worker %s: unknown status %q", r.ID, w.ID, w.Status)
		}
		if w.Progress != nil && !inUnitRange(*w.Progress) {
			return fmt.Errorf("run %s: worker %s: progress %v out of range [0,1]", r.ID, w.ID, *w.Progress)
		}
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
