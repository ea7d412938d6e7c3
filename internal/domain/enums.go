// Package domain defines the core domain models for the command center.
package domain

// RunStatus represents the status of an orchestration run.
type RunStatus string

const (
	RunStatusInitializing RunStatus = "initializing"
	RunStatusInProgress   RunStatus = "in_progress"
	RunStatusCompleted    RunStatus = "completed"
	RunStatusPaused       RunStatus = "paused"
	RunStatusFailed       RunStatus = "failed"
)

// Valid reports whether s is a known run status.
func (s RunStatus) Valid() bool {
	switch s {
	case RunStatusInitializing, RunStatusInProgress, RunStatusCompleted, RunStatusPaused, RunStatusFailed:
		return true
	}
	return false
}

// WorkerStatus represents the status of a worker within a run.
type WorkerStatus string

const (
	WorkerStatusActive   WorkerStatus = "active"
	WorkerStatusOnHold   WorkerStatus = "on_hold"
	WorkerStatusQueued   WorkerStatus = "queued"
	WorkerStatusCooldown WorkerStatus = "cooldown"
	WorkerStatusComplete WorkerStatus = "complete"
)

// Valid reports whether s is a known worker status.
func (s WorkerStatus) Valid() bool {
	switch s {
	case WorkerStatusActive, WorkerStatusOnHold, WorkerStatusQueued, WorkerStatusCooldown, WorkerStatusComplete:
		return true
	}
	return false
}
