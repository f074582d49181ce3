package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		expZero bool
	}{
		{"rfc3339 with zone", `"2024-03-01T12:30:00+03:00"`, false},
		{"rfc3339 utc", `"2024-03-01T09:30:00Z"`, false},
		{"null", `null`, true},
		{"empty string", `""`, true},
		{"garbage", `"yesterday"`, true},
	}

	for _, test := range tests {
		var ts Time
		if err := json.Unmarshal([]byte(test.input), &ts); err != nil {
			t.Fatalf("%s: unexpected error: %v", test.name, err)
		}
		if ts.IsZero() != test.expZero {
			t.Errorf("%s: IsZero() = %v, expected %v", test.name, ts.IsZero(), test.expZero)
		}
	}
}

func TestTime_Display(t *testing.T) {
	var zero Time
	if zero.Display() != TimePlaceholder {
		t.Errorf("zero time should display %q, got %q", TimePlaceholder, zero.Display())
	}

	ts := Time{Time: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)}
	if ts.Display() == TimePlaceholder {
		t.Error("non-zero time should not display the placeholder")
	}
}

func TestUserProfile_UIName(t *testing.T) {
	tests := []struct {
		name     string
		profile  UserProfile
		expected string
	}{
		{"display name set", UserProfile{Login: "ivan", DisplayName: "Ivan Petrov"}, "Ivan Petrov"},
		{"display name blank", UserProfile{Login: "ivan", DisplayName: "  "}, "ivan"},
		{"login only", UserProfile{Login: "ivan"}, "ivan"},
	}

	for _, test := range tests {
		if got := test.profile.UIName(); got != test.expected {
			t.Errorf("%s: UIName() = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestProject_DecodeFromAPI(t *testing.T) {
	payload := `{
		"id": "7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa",
		"creator_id": "0b7a2c9d-5c13-4f0f-8a34-91d5a7a3c001",
		"title": "Interview 12",
		"description": "first pass",
		"status": "in_progress",
		"video_path": "videos/interview-12.mp4",
		"created_at": "2024-03-01T09:30:00Z",
		"updated_at": null
	}`

	var project Project
	if err := json.Unmarshal([]byte(payload), &project); err != nil {
		t.Fatalf("failed to decode project: %v", err)
	}

	if project.Title != "Interview 12" {
		t.Errorf("expected title 'Interview 12', got %q", project.Title)
	}
	if project.Status != ProjectStatusInProgress {
		t.Errorf("expected status in_progress, got %s", project.Status)
	}
	if project.CreatedAt.IsZero() {
		t.Error("created_at should be parsed")
	}
	if !project.UpdatedAt.IsZero() {
		t.Error("null updated_at should stay zero")
	}
	if project.ID == uuid.Nil {
		t.Error("project ID should be parsed")
	}
}

func TestProject_DisplayTitle(t *testing.T) {
	id := uuid.MustParse("7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa")

	project := Project{ID: id, Title: "  Interview 12  "}
	if project.DisplayTitle() != "Interview 12" {
		t.Errorf("expected trimmed title, got %q", project.DisplayTitle())
	}

	project.Title = ""
	if project.DisplayTitle() != id.String() {
		t.Errorf("empty title should fall back to ID, got %q", project.DisplayTitle())
	}
}

func TestProcessingRunsPage_Decode(t *testing.T) {
	payload := `{
		"items": [
			{
				"id": "aa7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa",
				"project_id": "7d7c9f4e-8f7b-4a9e-9e36-2f6a9d3f21aa",
				"video_task_id": "vt-1",
				"provider": "default",
				"status": "completed",
				"launch_mode": "immediate",
				"created_at": "2024-03-01T09:30:00Z",
				"completed_at": "2024-03-01T09:45:00Z"
			}
		],
		"total": 14,
		"limit": 1,
		"offset": 0
	}`

	var page ProcessingRunsPage
	if err := json.Unmarshal([]byte(payload), &page); err != nil {
		t.Fatalf("failed to decode runs page: %v", err)
	}

	if page.Total != 14 {
		t.Errorf("expected total 14, got %d", page.Total)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(page.Items))
	}
	if !page.Items[0].Status.IsFinished() {
		t.Error("completed run should be finished")
	}
}
