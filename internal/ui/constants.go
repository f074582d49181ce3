package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	DashPlaceholder = "—"
)

// Validation limits
const (
	MinLoginLength    = 3
	MinPasswordLength = 6
	MinTitleLength    = 3
)

// Window and dialog sizing
const (
	WindowMinWidth  float32 = 980
	WindowMinHeight float32 = 680

	CreateDialogWidth  float32 = 620
	CreateDialogHeight float32 = 420
)

// Dashboard data shaping
const (
	// ProjectsPageLimit is how many projects one refresh requests.
	ProjectsPageLimit = 100

	// LatestRunFetchLimit bounds per-project run lookups on refresh so a
	// large project list does not fan out into hundreds of requests.
	LatestRunFetchLimit = 30

	// RunsTableMaxRows caps the run history table.
	RunsTableMaxRows = 20
)

// Runs table column widths
const (
	RunsColProjectWidth  float32 = 280
	RunsColStatusWidth   float32 = 160
	RunsColCreatedWidth  float32 = 170
	RunsColUpdatedWidth  float32 = 170
	RunsColProviderWidth float32 = 120
)

// Project card sizing
const (
	CardMinWidth  float32 = 330
	CardMinHeight float32 = 120
)
