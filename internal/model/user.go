package model

import (
	"strings"

	"github.com/google/uuid"
)

// UserSummary is the compact user record returned by the login endpoint.
type UserSummary struct {
	ID                 uuid.UUID `json:"id"`
	Login              string    `json:"login"`
	Role               string    `json:"role"`
	MustChangePassword bool      `json:"must_change_password"`
}

// UserProfile is the full account record returned by /users/me.
type UserProfile struct {
	ID          uuid.UUID `json:"id"`
	Login       string    `json:"login"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	DisplayName string    `json:"display_name"`
	CreatedAt   Time      `json:"created_at"`
}

// UIName returns the name shown in the dashboard header: display name when
// set, login otherwise.
func (p *UserProfile) UIName() string {
	if name := strings.TrimSpace(p.DisplayName); name != "" {
		return name
	}
	return strings.TrimSpace(p.Login)
}
