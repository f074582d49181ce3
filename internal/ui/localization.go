package ui

// Package ui provides user interface components

import "github.com/gmehub/gme-app/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle     = "app_title"
	KeyAuthSubtitle = "auth_subtitle"

	KeyTabLogin    = "tab_login"
	KeyTabRegister = "tab_register"

	KeyLogin           = "login"
	KeyPassword        = "password"
	KeyEmailOptional   = "email_optional"
	KeyConfirmPassword = "confirm_password"
	KeyRememberMe      = "remember_me"
	KeySignIn          = "sign_in"
	KeyCreateAccount   = "create_account"

	KeyEnterCredentials  = "enter_credentials"
	KeyLoginTooShort     = "login_too_short"
	KeyPasswordTooShort  = "password_too_short"
	KeyPasswordsMismatch = "passwords_mismatch"

	KeySigningIn       = "signing_in"
	KeyCreatingAccount = "creating_account"
	KeyRestoringSess   = "restoring_session"
	KeySessionExpired  = "session_expired"
	KeyLoggedOut       = "logged_out"

	KeyLanguage = "language"

	KeyMetricTotal    = "metric_total"
	KeyMetricActive   = "metric_active"
	KeyMetricDone     = "metric_done"
	KeyMetricWithRuns = "metric_with_runs"

	KeyWelcome       = "welcome"
	KeyRefresh       = "refresh"
	KeyLogout        = "logout"
	KeyCreateProject = "create_project"
	KeySearchHint    = "search_hint"
	KeyProjects      = "projects"
	KeyLatestRuns    = "latest_runs"
	KeyNoProjects    = "no_projects"
	KeyNoRuns        = "no_runs"
	KeyNoDescription = "no_description"
	KeyUpdatedAt     = "updated_at"

	KeyLoadingProjects = "loading_projects"
	KeyCreatingProject = "creating_project"
	KeyStartingRun     = "starting_run"
	KeyLoggingOut      = "logging_out"
	KeyDataRefreshed   = "data_refreshed"
	KeyProjectCreated  = "project_created"
	KeyRunStarted      = "run_started"

	KeyStartProcessing  = "start_processing"
	KeyStartImmediately = "start_immediately"

	KeyProjectTitle      = "project_title"
	KeyProjectTitleHint  = "project_title_hint"
	KeyDescription       = "description"
	KeyDescriptionHint   = "description_hint"
	KeyVideo             = "video"
	KeyVideoHint         = "video_hint"
	KeyBrowse            = "browse"
	KeyCreate            = "create"
	KeyCancel            = "cancel"
	KeyTitleTooShort     = "title_too_short"
	KeyVideoNotSelected  = "video_not_selected"
	KeyVideoFileRejected = "video_file_rejected"
	KeyAudioProviders    = "audio_providers"
	KeyNoAudioProviders  = "no_audio_providers"

	KeyColProject  = "col_project"
	KeyColStatus   = "col_status"
	KeyColCreated  = "col_created"
	KeyColUpdated  = "col_updated"
	KeyColProvider = "col_provider"

	KeyStatusScheduled = "status_scheduled"
	KeyStatusPending   = "status_pending"
	KeyStatusRunning   = "status_running"
	KeyStatusCompleted = "status_completed"
	KeyStatusFailed    = "status_failed"
	KeyStatusCancelled = "status_cancelled"

	KeyProjectStatusDraft      = "project_status_draft"
	KeyProjectStatusInProgress = "project_status_in_progress"
	KeyProjectStatusDone       = "project_status_done"
	KeyProjectStatusArchived   = "project_status_archived"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// RunStatusText returns the localized label for a run status. Unknown
// statuses render as the raw backend value.
func (l *Localization) RunStatusText(status model.RunStatus) string {
	key := "status_" + string(status)
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}
	return string(status)
}

// ProjectStatusText returns the localized label for a project status.
// Unknown statuses render as the raw backend value.
func (l *Localization) ProjectStatusText(status model.ProjectStatus) string {
	key := "project_status_" + string(status)
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}
	return string(status)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:     "GME App",
		KeyAuthSubtitle: "Sign in to your account or register a new user",

		KeyTabLogin:    "Sign in",
		KeyTabRegister: "Register",

		KeyLogin:           "Login",
		KeyPassword:        "Password",
		KeyEmailOptional:   "Email (optional)",
		KeyConfirmPassword: "Confirm password",
		KeyRememberMe:      "Remember me",
		KeySignIn:          "Sign in",
		KeyCreateAccount:   "Create account",

		KeyEnterCredentials:  "Enter login and password.",
		KeyLoginTooShort:     "Login must be at least 3 characters.",
		KeyPasswordTooShort:  "Password must be at least 6 characters.",
		KeyPasswordsMismatch: "Passwords do not match.",

		KeySigningIn:       "Signing in...",
		KeyCreatingAccount: "Creating account...",
		KeyRestoringSess:   "Restoring session...",
		KeySessionExpired:  "Session expired. Please sign in again.",
		KeyLoggedOut:       "You have been signed out.",

		KeyLanguage: "Language",

		KeyMetricTotal:    "Total projects",
		KeyMetricActive:   "Active",
		KeyMetricDone:     "Done",
		KeyMetricWithRuns: "With latest run",

		KeyWelcome:       "Welcome",
		KeyRefresh:       "Refresh",
		KeyLogout:        "Sign out",
		KeyCreateProject: "Create project",
		KeySearchHint:    "Search by title or description",
		KeyProjects:      "Projects",
		KeyLatestRuns:    "Latest runs",
		KeyNoProjects:    "No projects found",
		KeyNoRuns:        "No runs",
		KeyNoDescription: "No description",
		KeyUpdatedAt:     "Updated",

		KeyLoadingProjects: "Loading projects...",
		KeyCreatingProject: "Creating project...",
		KeyStartingRun:     "Starting processing...",
		KeyLoggingOut:      "Signing out...",
		KeyDataRefreshed:   "Data refreshed",
		KeyProjectCreated:  "Project created.",
		KeyRunStarted:      "Processing started.",

		KeyStartProcessing:  "Start processing",
		KeyStartImmediately: "Start processing immediately",

		KeyProjectTitle:      "Project title",
		KeyProjectTitleHint:  "For example: Customer research",
		KeyDescription:       "Description",
		KeyDescriptionHint:   "Briefly describe the project goal",
		KeyVideo:             "Video",
		KeyVideoHint:         "Choose a video file",
		KeyBrowse:            "Browse",
		KeyCreate:            "Create",
		KeyCancel:            "Cancel",
		KeyTitleTooShort:     "Title must be at least 3 characters.",
		KeyVideoNotSelected:  "Choose a video file.",
		KeyVideoFileRejected: "Video file cannot be used",
		KeyAudioProviders:    "Audio providers",
		KeyNoAudioProviders:  "No audio providers available",

		KeyColProject:  "Project",
		KeyColStatus:   "Status",
		KeyColCreated:  "Created",
		KeyColUpdated:  "Updated",
		KeyColProvider: "Provider",

		KeyStatusScheduled: "Scheduled",
		KeyStatusPending:   "Pending",
		KeyStatusRunning:   "Running",
		KeyStatusCompleted: "Completed",
		KeyStatusFailed:    "Failed",
		KeyStatusCancelled: "Cancelled",

		KeyProjectStatusDraft:      "Draft",
		KeyProjectStatusInProgress: "In progress",
		KeyProjectStatusDone:       "Done",
		KeyProjectStatusArchived:   "Archived",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:     "GME App",
		KeyAuthSubtitle: "Вход в аккаунт и регистрация нового пользователя",

		KeyTabLogin:    "Вход",
		KeyTabRegister: "Регистрация",

		KeyLogin:           "Логин",
		KeyPassword:        "Пароль",
		KeyEmailOptional:   "Email (необязательно)",
		KeyConfirmPassword: "Подтвердите пароль",
		KeyRememberMe:      "Запомнить меня",
		KeySignIn:          "Войти",
		KeyCreateAccount:   "Создать аккаунт",

		KeyEnterCredentials:  "Введите логин и пароль.",
		KeyLoginTooShort:     "Логин должен быть не короче 3 символов.",
		KeyPasswordTooShort:  "Пароль должен быть не короче 6 символов.",
		KeyPasswordsMismatch: "Пароли не совпадают.",

		KeySigningIn:       "Выполняется вход...",
		KeyCreatingAccount: "Создание аккаунта...",
		KeyRestoringSess:   "Восстановление сессии...",
		KeySessionExpired:  "Сессия истекла. Выполните вход заново.",
		KeyLoggedOut:       "Вы вышли из аккаунта.",

		KeyLanguage: "Язык",

		KeyMetricTotal:    "Всего проектов",
		KeyMetricActive:   "Активные",
		KeyMetricDone:     "Завершенные",
		KeyMetricWithRuns: "С последним запуском",

		KeyWelcome:       "Добро пожаловать",
		KeyRefresh:       "Обновить",
		KeyLogout:        "Выйти",
		KeyCreateProject: "Создать проект",
		KeySearchHint:    "Поиск по названию или описанию",
		KeyProjects:      "Проекты",
		KeyLatestRuns:    "Последние запуски",
		KeyNoProjects:    "Проекты не найдены",
		KeyNoRuns:        "Нет запусков",
		KeyNoDescription: "Описание не задано",
		KeyUpdatedAt:     "Обновлен",

		KeyLoadingProjects: "Загрузка проектов...",
		KeyCreatingProject: "Создание проекта...",
		KeyStartingRun:     "Запуск обработки...",
		KeyLoggingOut:      "Выход из аккаунта...",
		KeyDataRefreshed:   "Данные обновлены",
		KeyProjectCreated:  "Проект создан.",
		KeyRunStarted:      "Обработка запущена.",

		KeyStartProcessing:  "Запустить обработку",
		KeyStartImmediately: "Сразу запустить обработку",

		KeyProjectTitle:      "Название проекта",
		KeyProjectTitleHint:  "Например: Customer research",
		KeyDescription:       "Описание",
		KeyDescriptionHint:   "Кратко опишите задачу проекта",
		KeyVideo:             "Видео",
		KeyVideoHint:         "Выберите видеофайл",
		KeyBrowse:            "Выбрать файл",
		KeyCreate:            "Создать",
		KeyCancel:            "Отмена",
		KeyTitleTooShort:     "Название должно быть не короче 3 символов.",
		KeyVideoNotSelected:  "Выберите видеофайл.",
		KeyVideoFileRejected: "Видеофайл не может быть использован",
		KeyAudioProviders:    "Аудио провайдеры",
		KeyNoAudioProviders:  "Нет доступных аудио провайдеров",

		KeyColProject:  "Проект",
		KeyColStatus:   "Статус",
		KeyColCreated:  "Создан",
		KeyColUpdated:  "Обновлен",
		KeyColProvider: "Провайдер",

		KeyStatusScheduled: "Запланирован",
		KeyStatusPending:   "В очереди",
		KeyStatusRunning:   "Выполняется",
		KeyStatusCompleted: "Завершен",
		KeyStatusFailed:    "Ошибка",
		KeyStatusCancelled: "Отменен",

		KeyProjectStatusDraft:      "Черновик",
		KeyProjectStatusInProgress: "В работе",
		KeyProjectStatusDone:       "Готов",
		KeyProjectStatusArchived:   "Архив",
	}
}
