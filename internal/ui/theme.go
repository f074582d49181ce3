package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/gmehub/gme-app/internal/model"
)

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 31, G: 124, B: 74, A: 255} // Green for completed
	case theme.ColorNameError:
		return color.RGBA{R: 187, G: 51, B: 74, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return color.RGBA{R: 153, G: 111, B: 0, A: 255} // Amber for running
	case theme.ColorNamePrimary:
		return color.RGBA{R: 47, G: 92, B: 177, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 248, G: 250, B: 255, A: 255} // Light gray-blue
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 36, G: 55, B: 96, A: 255} // Dark navy text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 13 // Reduced from default 16
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	case theme.SizeNameSelectionRadius:
		return 2 // Reduced from default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}

// Status bar text colors
var (
	errorTextColor = color.RGBA{R: 198, G: 63, B: 87, A: 255}
	infoTextColor  = color.RGBA{R: 77, G: 90, B: 134, A: 255}
)

// StatusColor returns the text color for a run status
func StatusColor(status model.RunStatus) color.Color {
	switch status {
	case model.RunStatusScheduled:
		return color.RGBA{R: 47, G: 92, B: 177, A: 255}
	case model.RunStatusPending:
		return color.RGBA{R: 111, G: 80, B: 181, A: 255}
	case model.RunStatusRunning:
		return color.RGBA{R: 153, G: 111, B: 0, A: 255}
	case model.RunStatusCompleted:
		return color.RGBA{R: 31, G: 124, B: 74, A: 255}
	case model.RunStatusFailed:
		return color.RGBA{R: 187, G: 51, B: 74, A: 255}
	case model.RunStatusCancelled:
		return color.RGBA{R: 86, G: 96, B: 132, A: 255}
	default:
		return color.RGBA{R: 77, G: 90, B: 132, A: 255}
	}
}

// ProjectStatusColor returns the badge text color for a project status
func ProjectStatusColor(status model.ProjectStatus) color.Color {
	switch status {
	case model.ProjectStatusDraft:
		return color.RGBA{R: 52, G: 90, B: 163, A: 255}
	case model.ProjectStatusInProgress:
		return color.RGBA{R: 142, G: 101, B: 0, A: 255}
	case model.ProjectStatusDone:
		return color.RGBA{R: 30, G: 122, B: 75, A: 255}
	case model.ProjectStatusArchived:
		return color.RGBA{R: 93, G: 103, B: 136, A: 255}
	default:
		return color.RGBA{R: 77, G: 90, B: 132, A: 255}
	}
}
