package ui

import (
	"testing"

	"github.com/gmehub/gme-app/internal/model"
)

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("GetCurrentLanguage() = %v, want en", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyRefresh); got != "Refresh" {
		t.Errorf("GetText(KeyRefresh) = %v, want Refresh", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if got := l.GetText(KeyRefresh); got != "Обновить" {
		t.Errorf("GetText(KeyRefresh) = %v, want Обновить", got)
	}

	// Unknown languages keep the current one
	l.SetLanguage("fr")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("GetCurrentLanguage() = %v, want ru", l.GetCurrentLanguage())
	}

	// "system" falls back to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("GetCurrentLanguage() = %v, want en", l.GetCurrentLanguage())
	}
}

func TestLocalization_UnknownKeyFallsBackToKey(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("GetText(no_such_key) = %v, want no_such_key", got)
	}
}

func TestLocalization_RunStatusText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		status   model.RunStatus
		language string
		expected string
	}{
		{model.RunStatusScheduled, "en", "Scheduled"},
		{model.RunStatusRunning, "en", "Running"},
		{model.RunStatusCompleted, "en", "Completed"},
		{model.RunStatusScheduled, "ru", "Запланирован"},
		{model.RunStatusRunning, "ru", "Выполняется"},
		{model.RunStatusFailed, "ru", "Ошибка"},
		// Unknown statuses render the raw backend value
		{model.RunStatus("rescheduled"), "en", "rescheduled"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"_"+tt.language, func(t *testing.T) {
			l.SetLanguage(tt.language)
			if got := l.RunStatusText(tt.status); got != tt.expected {
				t.Errorf("RunStatusText(%v) = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestLocalization_ProjectStatusText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		status   model.ProjectStatus
		language string
		expected string
	}{
		{model.ProjectStatusDraft, "en", "Draft"},
		{model.ProjectStatusInProgress, "en", "In progress"},
		{model.ProjectStatusDone, "ru", "Готов"},
		{model.ProjectStatusArchived, "ru", "Архив"},
		// Unknown statuses render the raw backend value
		{model.ProjectStatus("frozen"), "en", "frozen"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"_"+tt.language, func(t *testing.T) {
			l.SetLanguage(tt.language)
			if got := l.ProjectStatusText(tt.status); got != tt.expected {
				t.Errorf("ProjectStatusText(%v) = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestLocalization_AvailableLanguages(t *testing.T) {
	l := NewLocalization()

	languages := l.GetAvailableLanguages()
	if _, ok := languages["en"]; !ok {
		t.Error("expected en in available languages")
	}
	if _, ok := languages["ru"]; !ok {
		t.Error("expected ru in available languages")
	}
}
