package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gmehub/gme-app/internal/model"
)

// ProjectCard represents a compact project row widget
type ProjectCard struct {
	widget.BaseWidget

	project      model.Project
	localization *Localization

	// UI components
	titleLabel       *widget.Label
	statusBadge      *canvas.Text
	descriptionLabel *widget.Label
	updatedLabel     *widget.Label

	// Action buttons
	startBtn *widget.Button

	// Callbacks
	onStartProcessing func(projectID string)
}

// NewProjectCard creates a new project card widget
func NewProjectCard(project model.Project, localization *Localization) *ProjectCard {
	pc := &ProjectCard{
		project:      project,
		localization: localization,
	}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	pc.updateFromProject()
	return pc
}

// SetCallbacks sets the action callbacks
func (pc *ProjectCard) SetCallbacks(onStartProcessing func(projectID string)) {
	pc.onStartProcessing = onStartProcessing
}

// UpdateProject updates the card with new project data
func (pc *ProjectCard) UpdateProject(project model.Project) {
	pc.project = project
	pc.updateFromProject()
	pc.Refresh()
}

// Project returns the project currently shown by the card
func (pc *ProjectCard) Project() model.Project {
	return pc.project
}

// createUI creates the UI components
func (pc *ProjectCard) createUI() {
	pc.titleLabel = widget.NewLabel("")
	pc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.titleLabel.Wrapping = fyne.TextWrapWord
	pc.titleLabel.Truncation = fyne.TextTruncateEllipsis
	pc.titleLabel.Alignment = fyne.TextAlignLeading

	pc.statusBadge = canvas.NewText("", ProjectStatusColor(""))
	pc.statusBadge.TextSize = theme.CaptionTextSize()
	pc.statusBadge.TextStyle = fyne.TextStyle{Bold: true}
	pc.statusBadge.Alignment = fyne.TextAlignTrailing

	pc.descriptionLabel = widget.NewLabel("")
	pc.descriptionLabel.Wrapping = fyne.TextWrapWord
	pc.descriptionLabel.Truncation = fyne.TextTruncateEllipsis

	pc.updatedLabel = widget.NewLabel("")
	pc.updatedLabel.TextStyle = fyne.TextStyle{Italic: true}

	pc.startBtn = widget.NewButton(pc.localization.GetText(KeyStartProcessing), func() {
		if pc.onStartProcessing != nil {
			pc.onStartProcessing(pc.project.ID.String())
		}
	})
	pc.startBtn.Importance = widget.MediumImportance
}

// updateFromProject refreshes the components from the current project
func (pc *ProjectCard) updateFromProject() {
	pc.titleLabel.SetText(pc.project.DisplayTitle())

	pc.statusBadge.Text = pc.localization.ProjectStatusText(pc.project.Status)
	pc.statusBadge.Color = ProjectStatusColor(pc.project.Status)
	pc.statusBadge.Refresh()

	description := pc.project.Description
	if description == "" {
		description = pc.localization.GetText(KeyNoDescription)
	}
	pc.descriptionLabel.SetText(description)

	pc.updatedLabel.SetText(fmt.Sprintf("%s: %s",
		pc.localization.GetText(KeyUpdatedAt), pc.project.UpdatedAt.Display()))

	// Archived projects are read-only on the backend.
	if pc.project.Status == model.ProjectStatusArchived {
		pc.startBtn.Disable()
	} else {
		pc.startBtn.Enable()
	}
}

// CreateRenderer creates the widget renderer
func (pc *ProjectCard) CreateRenderer() fyne.WidgetRenderer {
	topRow := container.NewBorder(nil, nil, nil, pc.statusBadge, pc.titleLabel)
	footer := container.NewBorder(nil, nil, pc.updatedLabel, pc.startBtn)

	layout := container.NewVBox(
		topRow,
		pc.descriptionLabel,
		footer,
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(layout)
}

// MinSize returns the minimum size
func (pc *ProjectCard) MinSize() fyne.Size {
	min := pc.BaseWidget.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	if min.Height < CardMinHeight {
		min.Height = CardMinHeight
	}
	return min
}
