package ui

import (
	"math/rand"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"agent-marketplace/marketplace"
	"agent-marketplace/utils"
)

// App represents the main application
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     *utils.Config
	configPath string
	log        zerolog.Logger

	catalog *marketplace.Catalog
	session *marketplace.Session
	keys    *marketplace.Keys

	// content holds the active view; navigation swaps it in place
	content *fyne.Container

	marketplaceView *MarketplaceView
}

// NewApp creates a new application instance
func NewApp(config *utils.Config, configPath string, catalog *marketplace.Catalog, session *marketplace.Session, keys *marketplace.Keys, log zerolog.Logger) *App {
	fyneApp := app.NewWithID("agent-marketplace")
	window := fyneApp.NewWindow("AI Agent Marketplace")

	window.Resize(fyne.NewSize(
		float32(config.UI.WindowWidth),
		float32(config.UI.WindowHeight),
	))

	application := &App{
		fyneApp:    fyneApp,
		window:     window,
		config:     config,
		configPath: configPath,
		log:        log,
		catalog:    catalog,
		session:    session,
		keys:       keys,
		content:    container.NewStack(),
	}

	// Persist the window size on close, into the same file the config came from
	window.SetOnClosed(func() {
		size := window.Canvas().Size()
		application.config.UI.WindowWidth = int(size.Width)
		application.config.UI.WindowHeight = int(size.Height)
		if err := utils.SaveConfig(application.configPath, application.config); err != nil {
			application.log.Error().Err(err).Msg("failed to save window size")
		}
	})

	application.marketplaceView = NewMarketplaceView(application)
	application.buildUI()

	return application
}

// buildUI shows the login selector or, when a session survived a restart,
// goes straight to the marketplace.
func (a *App) buildUI() {
	a.window.SetContent(a.content)

	if _, ok := a.session.Current(); ok {
		a.ShowMarketplace()
	} else {
		a.ShowLogin()
	}
}

// setView swaps the active view.
func (a *App) setView(view fyne.CanvasObject) {
	a.content.Objects = []fyne.CanvasObject{view}
	a.content.Refresh()
}

// ShowLogin displays the demo profile selector.
func (a *App) ShowLogin() {
	a.setView(NewLoginView(a).Build())
}

// ShowMarketplace displays the agent browser.
func (a *App) ShowMarketplace() {
	a.marketplaceView.Refresh()
	a.setView(a.marketplaceView.Build())
}

// ShowOnboarding displays the agent submission form.
func (a *App) ShowOnboarding() {
	a.setView(NewOnboardingView(a).Build())
}

// ShowAPIDashboard displays the API key dashboard.
func (a *App) ShowAPIDashboard() {
	a.setView(NewAPIKeysView(a).Build())
}

// ShowAgentDetail displays a single agent's page.
func (a *App) ShowAgentDetail(agent marketplace.Agent) {
	a.setView(NewDetailView(a, agent).Build())
}

// Logout ends the session and returns to the login selector.
func (a *App) Logout() {
	if err := a.session.Logout(); err != nil {
		a.log.Error().Err(err).Msg("logout failed")
	}
	a.ShowLogin()
}

// header builds the shared top bar: title, navigation, current user.
func (a *App) header(title string, showNav bool) fyne.CanvasObject {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	right := container.NewHBox()
	if showNav {
		right.Add(widget.NewButton("Submit Agent", func() {
			a.ShowOnboarding()
		}))
		right.Add(widget.NewButton("API Keys", func() {
			a.ShowAPIDashboard()
		}))
	}
	if user, ok := a.session.Current(); ok {
		right.Add(widget.NewLabel(user.Name))
	}
	right.Add(widget.NewButton("Logout", func() {
		a.Logout()
	}))

	return container.NewBorder(nil, widget.NewSeparator(), titleLabel, right)
}

// showError surfaces a failure as a dialog.
func (a *App) showError(err error) {
	a.log.Error().Err(err).Msg("ui error")
	dialog.ShowError(err, a.window)
}

// showNotice surfaces a non-fatal message.
func (a *App) showNotice(title, message string) {
	dialog.ShowInformation(title, message, a.window)
}

// chatDelay builds the typing-delay policy from config.
func (a *App) chatDelay() func() time.Duration {
	min := time.Duration(a.config.Chat.MinDelayMs) * time.Millisecond
	max := time.Duration(a.config.Chat.MaxDelayMs) * time.Millisecond
	return func() time.Duration {
		return min + time.Duration(rand.Int63n(int64(max-min)))
	}
}

// Run starts the UI loop and blocks until the window closes.
func (a *App) Run() {
	a.window.ShowAndRun()
}
