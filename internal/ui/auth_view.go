package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// AuthView is the sign-in / registration screen. It performs client-side
// validation only; credential checks happen on the backend and surface
// through ShowLoginError / ShowRegisterError.
type AuthView struct {
	localization *Localization
	state        *StateMachine

	// Login tab
	loginEntry    *widget.Entry
	passwordEntry *widget.Entry
	rememberCheck *widget.Check
	loginError    *canvas.Text
	loginBtn      *widget.Button

	// Register tab
	registerLoginEntry    *widget.Entry
	registerEmailEntry    *widget.Entry
	registerPasswordEntry *widget.Entry
	registerConfirmEntry  *widget.Entry
	registerError         *canvas.Text
	registerBtn           *widget.Button

	infoText *canvas.Text
	spinner  *widget.ProgressBarInfinite
	tabs     *container.AppTabs
	content  fyne.CanvasObject

	// Callbacks
	onLogin    func(login, password string, remember bool)
	onRegister func(login, email, password string)
}

// NewAuthView creates the authentication screen
func NewAuthView(localization *Localization) *AuthView {
	av := &AuthView{
		localization: localization,
		state:        NewStateMachine(),
	}
	av.createUI()
	return av
}

// SetCallbacks sets the submit callbacks
func (av *AuthView) SetCallbacks(
	onLogin func(login, password string, remember bool),
	onRegister func(login, email, password string),
) {
	av.onLogin = onLogin
	av.onRegister = onRegister
}

// Container returns the screen content
func (av *AuthView) Container() fyne.CanvasObject {
	return av.content
}

// State returns the screen state machine
func (av *AuthView) State() *StateMachine {
	return av.state
}

// createUI creates and arranges all UI components
func (av *AuthView) createUI() {
	title := widget.NewLabel(av.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabel(av.localization.GetText(KeyAuthSubtitle))
	subtitle.Alignment = fyne.TextAlignCenter

	av.infoText = canvas.NewText("", infoTextColor)
	av.infoText.Alignment = fyne.TextAlignCenter
	av.infoText.Hide()

	av.spinner = widget.NewProgressBarInfinite()
	av.spinner.Hide()

	av.tabs = container.NewAppTabs(
		container.NewTabItem(av.localization.GetText(KeyTabLogin), av.createLoginTab()),
		container.NewTabItem(av.localization.GetText(KeyTabRegister), av.createRegisterTab()),
	)

	av.content = container.NewCenter(container.NewVBox(
		title,
		subtitle,
		av.infoText,
		av.spinner,
		av.tabs,
	))
}

// createLoginTab creates the sign-in form
func (av *AuthView) createLoginTab() fyne.CanvasObject {
	av.loginEntry = widget.NewEntry()
	av.loginEntry.SetPlaceHolder("ivan")

	av.passwordEntry = widget.NewPasswordEntry()
	av.passwordEntry.SetPlaceHolder(av.localization.GetText(KeyPassword))
	av.passwordEntry.OnSubmitted = func(string) {
		av.submitLogin()
	}

	av.rememberCheck = widget.NewCheck(av.localization.GetText(KeyRememberMe), nil)

	av.loginError = canvas.NewText("", errorTextColor)
	av.loginError.Hide()

	av.loginBtn = widget.NewButton(av.localization.GetText(KeySignIn), av.submitLogin)
	av.loginBtn.Importance = widget.HighImportance

	return container.NewVBox(
		widget.NewLabel(av.localization.GetText(KeyLogin)),
		av.loginEntry,
		widget.NewLabel(av.localization.GetText(KeyPassword)),
		av.passwordEntry,
		av.rememberCheck,
		av.loginError,
		av.loginBtn,
	)
}

// createRegisterTab creates the registration form
func (av *AuthView) createRegisterTab() fyne.CanvasObject {
	av.registerLoginEntry = widget.NewEntry()
	av.registerLoginEntry.SetPlaceHolder("ivan")

	av.registerEmailEntry = widget.NewEntry()
	av.registerEmailEntry.SetPlaceHolder("your@email.com")

	av.registerPasswordEntry = widget.NewPasswordEntry()
	av.registerPasswordEntry.SetPlaceHolder(av.localization.GetText(KeyPassword))

	av.registerConfirmEntry = widget.NewPasswordEntry()
	av.registerConfirmEntry.SetPlaceHolder(av.localization.GetText(KeyConfirmPassword))
	av.registerConfirmEntry.OnSubmitted = func(string) {
		av.submitRegister()
	}

	av.registerError = canvas.NewText("", errorTextColor)
	av.registerError.Hide()

	av.registerBtn = widget.NewButton(av.localization.GetText(KeyCreateAccount), av.submitRegister)
	av.registerBtn.Importance = widget.HighImportance

	return container.NewVBox(
		widget.NewLabel(av.localization.GetText(KeyLogin)),
		av.registerLoginEntry,
		widget.NewLabel(av.localization.GetText(KeyEmailOptional)),
		av.registerEmailEntry,
		widget.NewLabel(av.localization.GetText(KeyPassword)),
		av.registerPasswordEntry,
		widget.NewLabel(av.localization.GetText(KeyConfirmPassword)),
		av.registerConfirmEntry,
		av.registerError,
		av.registerBtn,
	)
}

// submitLogin validates the login form and invokes the callback
func (av *AuthView) submitLogin() {
	av.hideError(av.loginError)
	login := strings.TrimSpace(av.loginEntry.Text)
	password := av.passwordEntry.Text

	if login == "" || password == "" {
		av.ShowLoginError(av.localization.GetText(KeyEnterCredentials))
		return
	}

	if av.onLogin != nil {
		av.onLogin(login, password, av.rememberCheck.Checked)
	}
}

// submitRegister validates the registration form and invokes the callback
func (av *AuthView) submitRegister() {
	av.hideError(av.registerError)
	login := strings.TrimSpace(av.registerLoginEntry.Text)
	email := strings.TrimSpace(av.registerEmailEntry.Text)
	password := av.registerPasswordEntry.Text
	confirm := av.registerConfirmEntry.Text

	if len(login) < MinLoginLength {
		av.ShowRegisterError(av.localization.GetText(KeyLoginTooShort))
		return
	}
	if len(password) < MinPasswordLength {
		av.ShowRegisterError(av.localization.GetText(KeyPasswordTooShort))
		return
	}
	if password != confirm {
		av.ShowRegisterError(av.localization.GetText(KeyPasswordsMismatch))
		return
	}

	if av.onRegister != nil {
		av.onRegister(login, email, password)
	}
}

// ShowLoginError surfaces an error under the login form
func (av *AuthView) ShowLoginError(message string) {
	av.state.To(StateError)
	av.showError(av.loginError, message)
}

// ShowRegisterError surfaces an error under the registration form
func (av *AuthView) ShowRegisterError(message string) {
	av.state.To(StateError)
	av.showError(av.registerError, message)
}

// ShowInfo shows an informational banner above the tabs
func (av *AuthView) ShowInfo(message string) {
	av.infoText.Text = message
	av.infoText.Show()
	av.infoText.Refresh()
}

// ClearInfo hides the informational banner
func (av *AuthView) ClearInfo() {
	av.infoText.Text = ""
	av.infoText.Hide()
}

// SetBusy disables the forms while a request is in flight. A non-empty
// message is shown as the info banner.
func (av *AuthView) SetBusy(busy bool, message string) {
	if busy {
		av.state.To(StateLoading)
		av.loginBtn.Disable()
		av.registerBtn.Disable()
		av.spinner.Show()
		if message != "" {
			av.ShowInfo(message)
		}
		return
	}

	av.loginBtn.Enable()
	av.registerBtn.Enable()
	av.spinner.Hide()
	if message == "" {
		av.ClearInfo()
	}
}

// PrefillLogin fills the login field from a remembered session
func (av *AuthView) PrefillLogin(login string) {
	if login != "" {
		av.loginEntry.SetText(login)
	}
}

func (av *AuthView) showError(text *canvas.Text, message string) {
	text.Text = message
	text.Show()
	text.Refresh()
}

func (av *AuthView) hideError(text *canvas.Text) {
	text.Text = ""
	text.Hide()
}
