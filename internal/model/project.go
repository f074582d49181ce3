package model

import (
	"strings"

	"github.com/google/uuid"
)

// Project is a unit of work created by a user and processed by the backend
// services. The authoritative copy lives in the backend; the client never
// mutates a project locally.
type Project struct {
	ID          uuid.UUID     `json:"id"`
	CreatorID   uuid.UUID     `json:"creator_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	VideoPath   string        `json:"video_path"`
	CreatedAt   Time          `json:"created_at"`
	UpdatedAt   Time          `json:"updated_at"`
	DeletedAt   Time          `json:"deleted_at"`
}

// DisplayTitle returns the title trimmed for rendering, falling back to the
// project ID when the backend sent an empty title.
func (p *Project) DisplayTitle() string {
	if title := strings.TrimSpace(p.Title); title != "" {
		return title
	}
	return p.ID.String()
}

// ProjectsPage is one page of the project list endpoint.
type ProjectsPage struct {
	Items  []Project `json:"items"`
	Total  int       `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
}
