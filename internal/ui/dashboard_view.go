package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gmehub/gme-app/internal/model"
	"github.com/gmehub/gme-app/internal/platform"
)

// CreateProjectRequest carries the create-project form values
type CreateProjectRequest struct {
	Title           string
	Description     string
	VideoPath       string
	StartProcessing bool
}

// runRow is one row of the run history table: a project joined with its
// latest run, which may be absent.
type runRow struct {
	project model.Project
	run     *model.ProcessingRun
}

// sortStamp orders rows by run creation time, falling back to the
// project update time when the project has no runs yet.
func (r runRow) sortStamp() time.Time {
	if r.run != nil && !r.run.CreatedAt.IsZero() {
		return r.run.CreatedAt.Time
	}
	return r.project.UpdatedAt.Time
}

// metricCard is one dashboard counter: a caption above a bold value.
type metricCard struct {
	value     *widget.Label
	container fyne.CanvasObject
}

func newMetricCard(title string) *metricCard {
	caption := widget.NewLabel(title)
	value := widget.NewLabel("0")
	value.TextStyle = fyne.TextStyle{Bold: true}
	return &metricCard{
		value:     value,
		container: container.NewVBox(caption, value),
	}
}

func (m *metricCard) set(count int) {
	m.value.SetText(strconv.Itoa(count))
}

// DashboardView is the project dashboard screen: header actions, search,
// metrics, project cards, run history table and a status message bar.
type DashboardView struct {
	window       fyne.Window
	localization *Localization
	state        *StateMachine

	// Header
	greetingLabel *widget.Label
	searchEntry   *widget.Entry
	refreshBtn    *widget.Button
	createBtn     *widget.Button
	logoutBtn     *widget.Button

	// Status bar
	statusText *canvas.Text
	spinner    *widget.ProgressBarInfinite

	// Metrics
	totalMetric    *metricCard
	activeMetric   *metricCard
	doneMetric     *metricCard
	withRunsMetric *metricCard

	// Content
	providersLabel *widget.Label
	projectsBox    *fyne.Container
	runsTable      *widget.Table
	content        fyne.CanvasObject

	// Data from the last refresh; the search entry filters it client-side
	// without another round trip.
	allProjects []model.Project
	latestRuns  map[string]*model.ProcessingRun

	// Filtered rows shown by the table.
	rows []runRow

	// Callbacks
	onRefresh         func(query string)
	onLogout          func()
	onCreateProject   func(request CreateProjectRequest)
	onStartProcessing func(projectID string)
}

// NewDashboardView creates the dashboard screen
func NewDashboardView(window fyne.Window, localization *Localization) *DashboardView {
	dv := &DashboardView{
		window:       window,
		localization: localization,
		state:        NewStateMachine(),
	}
	dv.createUI()
	return dv
}

// SetCallbacks sets the action callbacks
func (dv *DashboardView) SetCallbacks(
	onRefresh func(query string),
	onLogout func(),
	onCreateProject func(request CreateProjectRequest),
	onStartProcessing func(projectID string),
) {
	dv.onRefresh = onRefresh
	dv.onLogout = onLogout
	dv.onCreateProject = onCreateProject
	dv.onStartProcessing = onStartProcessing
}

// Container returns the screen content
func (dv *DashboardView) Container() fyne.CanvasObject {
	return dv.content
}

// State returns the screen state machine
func (dv *DashboardView) State() *StateMachine {
	return dv.state
}

// Query returns the current search text sent as the server-side filter
func (dv *DashboardView) Query() string {
	return strings.TrimSpace(dv.searchEntry.Text)
}

// createUI creates and arranges all UI components
func (dv *DashboardView) createUI() {
	dv.greetingLabel = widget.NewLabel(dv.localization.GetText(KeyWelcome))
	dv.greetingLabel.TextStyle = fyne.TextStyle{Bold: true}
	dv.greetingLabel.Truncation = fyne.TextTruncateEllipsis

	dv.searchEntry = widget.NewEntry()
	dv.searchEntry.SetPlaceHolder(dv.localization.GetText(KeySearchHint))
	dv.searchEntry.OnChanged = func(string) {
		if dv.allProjects != nil {
			dv.applyFilter()
		}
	}
	dv.searchEntry.OnSubmitted = func(string) {
		dv.requestRefresh()
	}

	dv.refreshBtn = widget.NewButton(dv.localization.GetText(KeyRefresh), dv.requestRefresh)

	dv.createBtn = widget.NewButton(dv.localization.GetText(KeyCreateProject), dv.openCreateDialog)
	dv.createBtn.Importance = widget.HighImportance

	dv.logoutBtn = widget.NewButton(dv.localization.GetText(KeyLogout), func() {
		if dv.onLogout != nil {
			dv.onLogout()
		}
	})
	dv.logoutBtn.Importance = widget.LowImportance

	actions := container.NewHBox(dv.refreshBtn, dv.createBtn, dv.logoutBtn)
	header := container.NewBorder(nil, nil, dv.greetingLabel, actions, dv.searchEntry)

	dv.statusText = canvas.NewText("", infoTextColor)
	dv.statusText.TextSize = theme.CaptionTextSize()
	dv.statusText.Hide()
	dv.spinner = widget.NewProgressBarInfinite()
	dv.spinner.Hide()
	statusBar := container.NewBorder(nil, nil, nil, dv.spinner, dv.statusText)

	dv.totalMetric = newMetricCard(dv.localization.GetText(KeyMetricTotal))
	dv.activeMetric = newMetricCard(dv.localization.GetText(KeyMetricActive))
	dv.doneMetric = newMetricCard(dv.localization.GetText(KeyMetricDone))
	dv.withRunsMetric = newMetricCard(dv.localization.GetText(KeyMetricWithRuns))
	metricsRow := container.NewGridWithColumns(4,
		dv.totalMetric.container,
		dv.activeMetric.container,
		dv.doneMetric.container,
		dv.withRunsMetric.container,
	)

	dv.providersLabel = widget.NewLabel("")
	dv.providersLabel.Hide()

	projectsTitle := widget.NewLabel(dv.localization.GetText(KeyProjects))
	projectsTitle.TextStyle = fyne.TextStyle{Bold: true}

	dv.projectsBox = container.NewVBox()

	runsTitle := widget.NewLabel(dv.localization.GetText(KeyLatestRuns))
	runsTitle.TextStyle = fyne.TextStyle{Bold: true}

	dv.runsTable = dv.createRunsTable()

	main := container.NewVSplit(
		container.NewBorder(
			container.NewVBox(projectsTitle), nil, nil, nil,
			container.NewVScroll(dv.projectsBox),
		),
		container.NewBorder(
			container.NewVBox(runsTitle), nil, nil, nil,
			dv.runsTable,
		),
	)
	main.SetOffset(0.55)

	dv.content = container.NewBorder(
		container.NewVBox(header, statusBar, metricsRow, dv.providersLabel), // top
		nil,  // bottom
		nil,  // left
		nil,  // right
		main, // center
	)
}

// createRunsTable builds the run history table
func (dv *DashboardView) createRunsTable() *widget.Table {
	headers := []string{
		dv.localization.GetText(KeyColProject),
		dv.localization.GetText(KeyColStatus),
		dv.localization.GetText(KeyColCreated),
		dv.localization.GetText(KeyColUpdated),
		dv.localization.GetText(KeyColProvider),
	}

	table := widget.NewTable(
		func() (int, int) {
			return len(dv.rows), len(headers)
		},
		func() fyne.CanvasObject {
			text := canvas.NewText("", theme.Color(theme.ColorNameForeground))
			text.TextSize = theme.TextSize()
			return text
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			text, ok := obj.(*canvas.Text)
			if !ok || id.Row >= len(dv.rows) {
				return
			}
			dv.updateRunCell(dv.rows[id.Row], id.Col, text)
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if label, ok := obj.(*widget.Label); ok && id.Col >= 0 && id.Col < len(headers) {
			label.SetText(headers[id.Col])
		}
	}

	table.SetColumnWidth(0, RunsColProjectWidth)
	table.SetColumnWidth(1, RunsColStatusWidth)
	table.SetColumnWidth(2, RunsColCreatedWidth)
	table.SetColumnWidth(3, RunsColUpdatedWidth)
	table.SetColumnWidth(4, RunsColProviderWidth)
	return table
}

// updateRunCell fills one table cell from a row
func (dv *DashboardView) updateRunCell(row runRow, col int, text *canvas.Text) {
	text.Color = theme.Color(theme.ColorNameForeground)

	switch col {
	case 0:
		text.Text = row.project.DisplayTitle()
	case 1:
		if row.run != nil {
			text.Text = dv.localization.RunStatusText(row.run.Status)
			text.Color = StatusColor(row.run.Status)
		} else {
			text.Text = dv.localization.GetText(KeyNoRuns)
		}
	case 2:
		if row.run != nil {
			text.Text = row.run.CreatedAt.Display()
		} else {
			text.Text = DashPlaceholder
		}
	case 3:
		if row.run != nil {
			text.Text = row.run.UpdatedAt.Display()
		} else {
			text.Text = row.project.UpdatedAt.Display()
		}
	case 4:
		if row.run != nil && row.run.Provider != "" {
			text.Text = row.run.Provider
		} else {
			text.Text = DashPlaceholder
		}
	}
	text.Refresh()
}

// requestRefresh fires the refresh callback with the current search query
func (dv *DashboardView) requestRefresh() {
	if dv.onRefresh != nil {
		dv.onRefresh(dv.Query())
	}
}

// SetUser updates the greeting from the authenticated profile
func (dv *DashboardView) SetUser(user *model.UserProfile) {
	dv.greetingLabel.SetText(fmt.Sprintf("%s, %s",
		dv.localization.GetText(KeyWelcome), user.UIName()))
}

// SetBusy disables header actions while a request is in flight. A
// non-empty message is shown in the status bar.
func (dv *DashboardView) SetBusy(busy bool, message string) {
	if busy {
		dv.state.To(StateLoading)
		dv.refreshBtn.Disable()
		dv.createBtn.Disable()
		dv.logoutBtn.Disable()
		dv.spinner.Show()
		if message != "" {
			dv.SetStatus(message, false)
		}
		return
	}

	dv.refreshBtn.Enable()
	dv.createBtn.Enable()
	dv.logoutBtn.Enable()
	dv.spinner.Hide()
}

// SetStatus shows a message in the status bar, colored by severity
func (dv *DashboardView) SetStatus(message string, isError bool) {
	if isError {
		dv.state.To(StateError)
	}
	if message == "" {
		dv.statusText.Hide()
		return
	}
	if isError {
		dv.statusText.Color = errorTextColor
	} else {
		dv.statusText.Color = infoTextColor
	}
	dv.statusText.Text = message
	dv.statusText.Show()
	dv.statusText.Refresh()
}

// SetData replaces the dashboard data: metrics, project cards and the run
// history table. latestRuns maps project ID to the newest run, nil when a
// project has none.
func (dv *DashboardView) SetData(projects []model.Project, latestRuns map[string]*model.ProcessingRun) {
	dv.state.To(StateLoaded)

	if projects == nil {
		projects = []model.Project{}
	}
	dv.allProjects = projects
	dv.latestRuns = latestRuns

	dv.refreshMetrics()
	dv.applyFilter()
}

// refreshMetrics recomputes the counters over the unfiltered project list
func (dv *DashboardView) refreshMetrics() {
	var active, done, withRuns int
	for _, project := range dv.allProjects {
		if project.Status.IsOpen() {
			active++
		}
		if project.Status == model.ProjectStatusDone {
			done++
		}
		if dv.latestRuns[project.ID.String()] != nil {
			withRuns++
		}
	}
	dv.totalMetric.set(len(dv.allProjects))
	dv.activeMetric.set(active)
	dv.doneMetric.set(done)
	dv.withRunsMetric.set(withRuns)
}

// filteredProjects narrows the cached project list by the search text,
// matching title or description case-insensitively.
func (dv *DashboardView) filteredProjects() []model.Project {
	query := strings.ToLower(dv.Query())
	if query == "" {
		return dv.allProjects
	}

	filtered := make([]model.Project, 0, len(dv.allProjects))
	for _, project := range dv.allProjects {
		if strings.Contains(strings.ToLower(project.Title), query) ||
			strings.Contains(strings.ToLower(project.Description), query) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

// applyFilter rebuilds the project cards and the run table from the cached
// data. Runs on every search keystroke, without a backend round trip.
func (dv *DashboardView) applyFilter() {
	projects := dv.filteredProjects()

	dv.projectsBox.RemoveAll()
	if len(projects) == 0 {
		empty := widget.NewLabel(dv.localization.GetText(KeyNoProjects))
		empty.Alignment = fyne.TextAlignCenter
		dv.projectsBox.Add(empty)
	}
	for _, project := range projects {
		card := NewProjectCard(project, dv.localization)
		card.SetCallbacks(dv.onStartProcessing)
		dv.projectsBox.Add(card)
	}
	dv.projectsBox.Refresh()

	rows := make([]runRow, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, runRow{
			project: project,
			run:     dv.latestRuns[project.ID.String()],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].sortStamp().After(rows[j].sortStamp())
	})
	if len(rows) > RunsTableMaxRows {
		rows = rows[:RunsTableMaxRows]
	}
	dv.rows = rows
	dv.runsTable.Refresh()
}

// SetAudioProviders shows which audio providers the audio service reports
// as usable for processing runs.
func (dv *DashboardView) SetAudioProviders(providers []model.AudioProvider) {
	names := make([]string, 0, len(providers))
	for _, provider := range providers {
		if !provider.Available {
			continue
		}
		name := provider.DisplayName
		if name == "" {
			name = provider.Name
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		dv.providersLabel.SetText(dv.localization.GetText(KeyNoAudioProviders))
	} else {
		dv.providersLabel.SetText(fmt.Sprintf("%s: %s",
			dv.localization.GetText(KeyAudioProviders), strings.Join(names, ", ")))
	}
	dv.providersLabel.Show()
}

// Rows returns the run table rows currently shown, newest first.
func (dv *DashboardView) Rows() []runRow {
	return dv.rows
}

// openCreateDialog shows the create-project dialog
func (dv *DashboardView) openCreateDialog() {
	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder(dv.localization.GetText(KeyProjectTitleHint))

	descriptionEntry := widget.NewMultiLineEntry()
	descriptionEntry.SetPlaceHolder(dv.localization.GetText(KeyDescriptionHint))
	descriptionEntry.Wrapping = fyne.TextWrapWord

	videoEntry := widget.NewEntry()
	videoEntry.SetPlaceHolder(dv.localization.GetText(KeyVideoHint))

	browseBtn := widget.NewButton(dv.localization.GetText(KeyBrowse), func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			videoEntry.SetText(reader.URI().Path())
		}, dv.window)
	})
	videoRow := container.NewBorder(nil, nil, nil, browseBtn, videoEntry)

	startCheck := widget.NewCheck(dv.localization.GetText(KeyStartImmediately), nil)

	errorText := canvas.NewText("", errorTextColor)
	errorText.Hide()

	form := container.NewVBox(
		widget.NewLabel(dv.localization.GetText(KeyProjectTitle)),
		titleEntry,
		widget.NewLabel(dv.localization.GetText(KeyDescription)),
		descriptionEntry,
		widget.NewLabel(dv.localization.GetText(KeyVideo)),
		videoRow,
		startCheck,
		errorText,
	)

	showError := func(message string) {
		errorText.Text = message
		errorText.Show()
		errorText.Refresh()
	}

	var createDialog *dialog.CustomDialog
	submit := func() {
		errorText.Hide()

		title := strings.TrimSpace(titleEntry.Text)
		videoPath := strings.TrimSpace(videoEntry.Text)
		if len(title) < MinTitleLength {
			showError(dv.localization.GetText(KeyTitleTooShort))
			return
		}
		if videoPath == "" {
			showError(dv.localization.GetText(KeyVideoNotSelected))
			return
		}
		if err := platform.CheckVideoFile(videoPath); err != nil {
			showError(fmt.Sprintf("%s: %v",
				dv.localization.GetText(KeyVideoFileRejected), err))
			return
		}

		createDialog.Hide()
		if dv.onCreateProject != nil {
			dv.onCreateProject(CreateProjectRequest{
				Title:           title,
				Description:     strings.TrimSpace(descriptionEntry.Text),
				VideoPath:       videoPath,
				StartProcessing: startCheck.Checked,
			})
		}
	}

	createBtn := widget.NewButton(dv.localization.GetText(KeyCreate), submit)
	createBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(dv.localization.GetText(KeyCancel), func() {
		createDialog.Hide()
	})

	createDialog = dialog.NewCustomWithoutButtons(
		dv.localization.GetText(KeyCreateProject),
		container.NewBorder(nil, container.NewHBox(cancelBtn, createBtn), nil, nil, form),
		dv.window,
	)
	createDialog.Resize(fyne.NewSize(CreateDialogWidth, CreateDialogHeight))
	createDialog.Show()
}
