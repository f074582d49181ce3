package model

// RunStatus represents the backend-reported status of a processing run.
type RunStatus string

const (
	// RunStatusScheduled means the run was created and waits for its slot
	RunStatusScheduled RunStatus = "scheduled"

	// RunStatusPending means the run is queued for a worker
	RunStatusPending RunStatus = "pending"

	// RunStatusRunning means processing is in progress
	RunStatusRunning RunStatus = "running"

	// RunStatusCompleted means processing finished successfully
	RunStatusCompleted RunStatus = "completed"

	// RunStatusFailed means processing failed on the backend
	RunStatusFailed RunStatus = "failed"

	// RunStatusCancelled means the run was cancelled before completion
	RunStatusCancelled RunStatus = "cancelled"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true if the run still occupies backend resources
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusScheduled || rs == RunStatusPending || rs == RunStatusRunning
}

// IsFinished returns true if the run reached a terminal state
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusFailed || rs == RunStatusCancelled
}

// ProjectStatus is the lifecycle state of a project. Projects carry their
// own vocabulary, separate from run statuses.
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusDone       ProjectStatus = "done"
	ProjectStatusArchived   ProjectStatus = "archived"
)

// String returns the string representation of ProjectStatus
func (ps ProjectStatus) String() string {
	return string(ps)
}

// IsOpen returns true while the project is still being worked on
func (ps ProjectStatus) IsOpen() bool {
	return ps == ProjectStatusDraft || ps == ProjectStatusInProgress
}
