package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"github.com/gmehub/gme-app/internal/api"
	"github.com/gmehub/gme-app/internal/config"
	"github.com/gmehub/gme-app/internal/dispatch"
	"github.com/gmehub/gme-app/internal/model"
	"github.com/gmehub/gme-app/internal/session"
)

// Shell owns the window and switches between the auth and dashboard
// screens. It is the only place that talks to the API clients, the
// session store and the dispatcher; views communicate through callbacks.
type Shell struct {
	window       fyne.Window
	client       *api.Client
	audio        *api.AudioClient
	store        *session.Store
	dispatcher   *dispatch.Dispatcher
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	authView      *AuthView
	dashboardView *DashboardView

	// One scope per active screen; replaced on every navigation so
	// results of the previous screen's requests are dropped.
	authScope *dispatch.Scope
	dashScope *dispatch.Scope

	currentUser *model.UserProfile
}

// NewShell creates the navigation shell and wires both screens
func NewShell(
	window fyne.Window,
	client *api.Client,
	audio *api.AudioClient,
	store *session.Store,
	dispatcher *dispatch.Dispatcher,
	settings *config.Settings,
	logger *zap.Logger,
) *Shell {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	s := &Shell{
		window:       window,
		client:       client,
		audio:        audio,
		store:        store,
		dispatcher:   dispatcher,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	s.buildViews()
	s.buildMenu()

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	return s
}

// buildViews creates both screens and wires their callbacks
func (s *Shell) buildViews() {
	s.authView = NewAuthView(s.localization)
	s.authView.SetCallbacks(s.onLogin, s.onRegister)

	s.dashboardView = NewDashboardView(s.window, s.localization)
	s.dashboardView.SetCallbacks(
		s.refreshDashboard,
		s.onLogout,
		s.onCreateProject,
		s.onStartProcessing,
	)
}

// buildMenu creates the main menu with the language switcher
func (s *Shell) buildMenu() {
	languageMenu := fyne.NewMenu(s.localization.GetText(KeyLanguage))
	for code, name := range s.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		item := fyne.NewMenuItem(name, func() {
			s.onLanguageChange(langCode)
		})
		if s.localization.GetCurrentLanguage() == code {
			item.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, item)
	}

	s.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange switches UI language and rebuilds both screens
func (s *Shell) onLanguageChange(code string) {
	if code == s.localization.GetCurrentLanguage() {
		return
	}
	s.localization.SetLanguage(code)
	s.settings.SetLanguage(code)

	s.buildViews()
	s.buildMenu()

	if s.currentUser != nil {
		s.dashboardView.SetUser(s.currentUser)
		s.showDashboard()
		s.refreshDashboard("")
		s.fetchAudioProviders()
		return
	}
	s.showAuth()
	if last := s.settings.GetLastLogin(); last != "" {
		s.authView.PrefillLogin(last)
	}
}

// Start shows the auth screen and attempts to restore a remembered
// session.
func (s *Shell) Start() {
	s.showAuth()
	s.restoreSession()
}

// CurrentUser returns the authenticated profile, nil before login
func (s *Shell) CurrentUser() *model.UserProfile {
	return s.currentUser
}

// showAuth switches to the auth screen, cancelling dashboard requests
func (s *Shell) showAuth() {
	if s.dashScope != nil {
		s.dashScope.Cancel()
		s.dashScope = nil
	}
	s.dashboardView.State().Reset()
	if s.authScope == nil || s.authScope.Cancelled() {
		s.authScope = s.dispatcher.NewScope()
	}
	s.window.SetContent(s.authView.Container())
}

// showDashboard switches to the dashboard, cancelling auth requests
func (s *Shell) showDashboard() {
	if s.authScope != nil {
		s.authScope.Cancel()
		s.authScope = nil
	}
	s.authView.State().Reset()
	if s.dashScope == nil || s.dashScope.Cancelled() {
		s.dashScope = s.dispatcher.NewScope()
	}
	s.window.SetContent(s.dashboardView.Container())
}

// restoreSession validates a persisted session against the backend and
// enters the dashboard without asking for credentials.
func (s *Shell) restoreSession() {
	persisted := s.store.Load()
	if persisted == nil {
		if last := s.settings.GetLastLogin(); last != "" {
			s.authView.PrefillLogin(last)
		}
		return
	}
	if persisted.APIBaseURL != s.client.BaseURL() {
		s.logger.Info("persisted session targets a different backend, discarding",
			zap.String("persisted_url", persisted.APIBaseURL))
		s.store.Clear()
		return
	}

	s.authView.PrefillLogin(persisted.UserLogin)
	s.authView.SetBusy(true, s.localization.GetText(KeyRestoringSess))
	s.client.SetSessionToken(persisted.SessionToken)

	login := persisted.UserLogin
	s.authScope.Go(
		func(ctx context.Context) (any, error) {
			return s.client.Me(ctx)
		},
		func(result any) {
			s.authView.SetBusy(false, "")
			s.enterDashboard(result.(*model.UserProfile), true, login)
		},
		func(err error) {
			s.logger.Info("session restore failed", zap.Error(err))
			s.resetSession()
			s.authView.SetBusy(false, "")
			s.authView.ShowInfo(s.localization.GetText(KeySessionExpired))
		},
	)
}

// onLogin handles the login form submit
func (s *Shell) onLogin(login, password string, remember bool) {
	s.authView.ClearInfo()
	s.authView.SetBusy(true, s.localization.GetText(KeySigningIn))

	s.authScope.Go(
		func(ctx context.Context) (any, error) {
			if _, err := s.client.Login(ctx, login, password); err != nil {
				return nil, err
			}
			return s.client.Me(ctx)
		},
		func(result any) {
			s.authView.SetBusy(false, "")
			s.enterDashboard(result.(*model.UserProfile), remember, login)
		},
		func(err error) {
			s.authView.SetBusy(false, "")
			s.authView.ShowLoginError(api.UserMessage(err))
		},
	)
}

// onRegister handles the registration form submit. A successful
// registration immediately signs the new account in.
func (s *Shell) onRegister(login, email, password string) {
	s.authView.ClearInfo()
	s.authView.SetBusy(true, s.localization.GetText(KeyCreatingAccount))

	s.authScope.Go(
		func(ctx context.Context) (any, error) {
			if err := s.client.Register(ctx, login, password, email); err != nil {
				return nil, err
			}
			if _, err := s.client.Login(ctx, login, password); err != nil {
				return nil, err
			}
			return s.client.Me(ctx)
		},
		func(result any) {
			s.authView.SetBusy(false, "")
			s.enterDashboard(result.(*model.UserProfile), true, login)
		},
		func(err error) {
			s.authView.SetBusy(false, "")
			s.authView.ShowRegisterError(api.UserMessage(err))
		},
	)
}

// enterDashboard records the session and moves to the dashboard
func (s *Shell) enterDashboard(user *model.UserProfile, remember bool, loginHint string) {
	s.currentUser = user
	s.settings.SetLastLogin(loginHint)
	s.dashboardView.SetUser(user)

	token := s.client.SessionToken()
	if remember && token != "" {
		if err := s.store.Save(session.PersistedSession{
			APIBaseURL:   s.client.BaseURL(),
			SessionToken: token,
			UserLogin:    loginHint,
		}); err != nil {
			s.logger.Warn("failed to persist session", zap.Error(err))
		}
	} else {
		s.store.Clear()
	}

	s.showDashboard()
	s.refreshDashboard("")
	s.fetchAudioProviders()
}

// dashboardData is the result of one dashboard refresh
type dashboardData struct {
	projects   []model.Project
	latestRuns map[string]*model.ProcessingRun
}

// refreshDashboard reloads the project list and joins each project with
// its latest run. Run lookups are bounded so a large project list does
// not fan out into hundreds of requests.
func (s *Shell) refreshDashboard(query string) {
	if s.currentUser == nil {
		return
	}
	s.dashboardView.SetBusy(true, s.localization.GetText(KeyLoadingProjects))

	s.dashScope.Go(
		func(ctx context.Context) (any, error) {
			page, err := s.client.ListProjects(ctx, query, ProjectsPageLimit, 0)
			if err != nil {
				return nil, err
			}

			data := &dashboardData{
				projects:   page.Items,
				latestRuns: make(map[string]*model.ProcessingRun),
			}
			for i, project := range page.Items {
				if i >= LatestRunFetchLimit {
					break
				}
				runs, err := s.client.ListProcessingRuns(ctx, project.ID.String(), 1, 0)
				if err != nil {
					if api.IsAuth(err) {
						return nil, err
					}
					// One broken project must not sink the whole refresh.
					s.logger.Debug("latest run lookup failed",
						zap.String("project_id", project.ID.String()), zap.Error(err))
					continue
				}
				if len(runs.Items) > 0 {
					run := runs.Items[0]
					data.latestRuns[project.ID.String()] = &run
				}
			}
			return data, nil
		},
		func(result any) {
			data := result.(*dashboardData)
			s.dashboardView.SetBusy(false, "")
			s.dashboardView.SetData(data.projects, data.latestRuns)
			s.dashboardView.SetStatus(fmt.Sprintf("%s: %s",
				s.localization.GetText(KeyDataRefreshed),
				time.Now().Format("15:04:05")), false)
		},
		func(err error) {
			s.dashboardView.SetBusy(false, "")
			s.handleDashboardError(err)
		},
	)
}

// onCreateProject uploads the video and creates the project
func (s *Shell) onCreateProject(request CreateProjectRequest) {
	s.dashboardView.SetBusy(true, s.localization.GetText(KeyCreatingProject))

	s.dashScope.Go(
		func(ctx context.Context) (any, error) {
			return s.client.CreateProject(ctx,
				request.Title, request.Description,
				request.VideoPath, request.StartProcessing)
		},
		func(any) {
			s.dashboardView.SetBusy(false, "")
			s.dashboardView.SetStatus(s.localization.GetText(KeyProjectCreated), false)
			s.refreshDashboard(s.dashboardView.Query())
		},
		func(err error) {
			s.dashboardView.SetBusy(false, "")
			s.handleDashboardError(err)
		},
	)
}

// onStartProcessing triggers a processing run for a project
func (s *Shell) onStartProcessing(projectID string) {
	s.dashboardView.SetBusy(true, s.localization.GetText(KeyStartingRun))

	s.dashScope.Go(
		func(ctx context.Context) (any, error) {
			return s.client.StartProcessing(ctx, projectID)
		},
		func(any) {
			s.dashboardView.SetBusy(false, "")
			s.dashboardView.SetStatus(s.localization.GetText(KeyRunStarted), false)
			s.refreshDashboard(s.dashboardView.Query())
		},
		func(err error) {
			s.dashboardView.SetBusy(false, "")
			s.handleDashboardError(err)
		},
	)
}

// onLogout ends the session on the backend and returns to the auth
// screen. A backend that already dropped or forbids the session (401 or
// 403) still completes the local logout.
func (s *Shell) onLogout() {
	s.dashboardView.SetBusy(true, s.localization.GetText(KeyLoggingOut))

	s.dashScope.Go(
		func(ctx context.Context) (any, error) {
			err := s.client.Logout(ctx)
			var authErr *api.AuthError
			if errors.As(err, &authErr) {
				return nil, nil
			}
			var apiErr *api.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden {
				return nil, nil
			}
			return nil, err
		},
		func(any) {
			s.dashboardView.SetBusy(false, "")
			s.resetSession()
			s.showAuth()
			s.authView.ShowInfo(s.localization.GetText(KeyLoggedOut))
		},
		func(err error) {
			s.dashboardView.SetBusy(false, "")
			s.handleDashboardError(err)
		},
	)
}

// fetchAudioProviders asks the audio service which providers are usable.
// The audio service is optional; failures only log.
func (s *Shell) fetchAudioProviders() {
	if s.audio == nil || !s.audio.Available() {
		return
	}

	s.dashScope.Go(
		func(ctx context.Context) (any, error) {
			return s.audio.ListProviders(ctx)
		},
		func(result any) {
			s.dashboardView.SetAudioProviders(result.([]model.AudioProvider))
		},
		func(err error) {
			s.logger.Debug("audio provider listing failed", zap.Error(err))
		},
	)
}

// handleDashboardError routes auth failures to forced re-login and shows
// everything else in the status bar.
func (s *Shell) handleDashboardError(err error) {
	if api.IsAuth(err) {
		s.logger.Info("session rejected by backend, forcing login")
		s.resetSession()
		s.showAuth()
		s.authView.ShowInfo(s.localization.GetText(KeySessionExpired))
		return
	}
	s.dashboardView.SetStatus(api.UserMessage(err), true)
}

// resetSession drops all local session state
func (s *Shell) resetSession() {
	s.currentUser = nil
	s.client.ClearSessionToken()
	s.store.Clear()
}
