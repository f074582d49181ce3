package model

import "github.com/google/uuid"

// ProcessingRun is one execution of processing against a project. Runs are
// read-only from the client's perspective.
type ProcessingRun struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	VideoTaskID string    `json:"video_task_id"`
	Provider    string    `json:"provider"`
	Status      RunStatus `json:"status"`
	LaunchMode  string    `json:"launch_mode"`
	CreatedAt   Time      `json:"created_at"`
	UpdatedAt   Time      `json:"updated_at"`
	CompletedAt Time      `json:"completed_at"`
}

// ProcessingRunsPage is one page of a project's run history.
type ProcessingRunsPage struct {
	Items  []ProcessingRun `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// AudioProvider describes one audio analysis provider exposed by the audio
// service.
type AudioProvider struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Available   bool   `json:"available"`
}
