package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justyntemme/booktracker-t/internal/config"
	"github.com/justyntemme/booktracker-t/internal/logger"
	"github.com/justyntemme/booktracker-t/internal/tracker"
	"github.com/justyntemme/booktracker-t/internal/ui/styles"
	"github.com/justyntemme/booktracker-t/internal/ui/terminal"
	"github.com/justyntemme/booktracker-t/internal/ui/views"
)

// errorDisplayTime is how long the error bar stays up
const errorDisplayTime = 5 * time.Second

// App is the main application model
type App struct {
	config *config.Config
	store  *tracker.Store
	log    *logger.Logger
	keys   KeyMap

	imageProtocol terminal.Protocol

	// Window dimensions
	width  int
	height int

	// View models
	homeView views.View
	formView *views.BookFormView

	// Error message
	err      error
	showHelp bool
}

// Option configures an App
type Option func(*App)

// WithImageProtocol sets the protocol the banner is drawn with
func WithImageProtocol(p terminal.Protocol) Option {
	return func(a *App) {
		a.imageProtocol = p
	}
}

// NewApp creates a new application instance around store
func NewApp(cfg *config.Config, store *tracker.Store, log *logger.Logger, opts ...Option) *App {
	if log == nil {
		log = logger.Nop()
	}

	app := &App{
		config:        cfg,
		store:         store,
		log:           log,
		keys:          DefaultKeyMap(),
		imageProtocol: terminal.ProtocolNone,
		width:         80,
		height:        24,
	}
	for _, opt := range opts {
		opt(app)
	}

	app.homeView = views.NewHomeView(store, cfg.RecentLimit)
	app.formView = views.NewBookFormView(store)

	return app
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.homeView.Init(),
		a.loadBanner(),
		tea.SetWindowTitle("Book Tracker"),
	)
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.homeView.SetSize(msg.Width, msg.Height)
		a.formView.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}

		// The form receives every other key so typed text is never
		// mistaken for a shortcut
		if a.currentView() == views.ViewAddBook {
			return a.delegate(msg)
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			return a, nil

		case key.Matches(msg, a.keys.Escape):
			if a.showHelp {
				a.showHelp = false
			}
			a.err = nil
			return a, nil

		case key.Matches(msg, a.keys.ThemeToggle):
			return a, a.cycleTheme()
		}

		if a.showHelp {
			return a, nil
		}

	case views.BannerLoadedMsg:
		if msg.Err != nil {
			a.log.Warn("Banner image skipped", map[string]interface{}{
				"path":  a.config.BannerImage,
				"error": msg.Err.Error(),
			})
		}
		// The banner belongs to the home view even while the form is open
		var cmd tea.Cmd
		a.homeView, cmd = a.homeView.Update(msg)
		return a, cmd

	case views.ErrorMsg:
		a.err = msg.Err
		return a, tea.Tick(errorDisplayTime, func(time.Time) tea.Msg {
			return views.ClearErrorMsg{}
		})

	case views.ClearErrorMsg:
		a.err = nil
		return a, nil
	}

	return a.delegate(msg)
}

// delegate hands msg to the current view and prepares the form when the
// dispatch opened it
func (a *App) delegate(msg tea.Msg) (*App, tea.Cmd) {
	wasOpen := a.store.State().FormVisible

	var cmd tea.Cmd
	if wasOpen {
		var v views.View
		v, cmd = a.formView.Update(msg)
		a.formView = v.(*views.BookFormView)
	} else {
		a.homeView, cmd = a.homeView.Update(msg)
	}

	if !wasOpen && a.store.State().FormVisible {
		a.formView.Load()
		return a, tea.Batch(cmd, a.formView.Init())
	}
	return a, cmd
}

// View implements tea.Model
func (a *App) View() string {
	if a.showHelp {
		return a.renderHelp()
	}

	var content string
	switch a.currentView() {
	case views.ViewAddBook:
		content = a.formView.View()
	default:
		content = a.homeView.View()
	}

	if a.err != nil {
		errorBar := styles.ErrorStyle.Render("Error: " + a.err.Error())
		content = lipgloss.JoinVertical(lipgloss.Left, content, errorBar)
	}

	return content
}

// State returns the tracker state the app is rendering
func (a *App) State() tracker.State {
	return a.store.State()
}

// currentView derives the visible screen from the tracker state
func (a *App) currentView() views.ViewType {
	if a.store.State().FormVisible {
		return views.ViewAddBook
	}
	return views.ViewHome
}

// cycleTheme switches to the next theme and remembers it in the config
func (a *App) cycleTheme() tea.Cmd {
	name := styles.NextTheme()
	a.log.Debug("Theme changed", map[string]interface{}{"theme": name})

	if err := a.config.SetTheme(name); err != nil {
		a.log.Warn("Could not save theme", map[string]interface{}{"error": err.Error()})
		return views.SendError(fmt.Errorf("could not save theme: %w", err))
	}
	return nil
}

// loadBanner renders the configured banner image off the event loop
func (a *App) loadBanner() tea.Cmd {
	path := a.config.BannerImage
	protocol := a.imageProtocol
	if path == "" || protocol == terminal.ProtocolNone {
		return nil
	}
	return func() tea.Msg {
		banner, err := terminal.RenderBanner(path, protocol)
		return views.BannerLoadedMsg{Banner: banner, Err: err}
	}
}

// renderHelp renders the help overlay
func (a *App) renderHelp() string {
	help := styles.Dialog.Width(52).Render(
		styles.DialogTitle.Render("Keyboard Shortcuts") + "\n\n" +
			styles.HelpKey.Render("Home") + "\n" +
			"  a/n/Enter  Add new book\n" +
			"  T          Next colour theme\n" +
			"  ?          Toggle help\n" +
			"  q          Quit\n\n" +
			styles.HelpKey.Render("Add Book") + "\n" +
			"  Tab/↓      Next field\n" +
			"  S-Tab/↑    Previous field\n" +
			"  ←/→        Change genre\n" +
			"  1-6        Pick genre\n" +
			"  Enter      Press focused button\n" +
			"  Ctrl+s     Add book\n" +
			"  Esc        Cancel\n",
	)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		help,
	)
}
