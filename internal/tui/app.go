package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"pacer/internal/report"
	"pacer/internal/session"
)

// Screen identifiers
type Screen int

const (
	ScreenPlanner Screen = iota
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen Screen

	// Screen models
	planner PlannerModel
	help    HelpModel

	session *session.Session
	styles  *Styles
	log     *zap.Logger
	cancel  func()

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App. Session changes are received through changes,
// which must be the session's notifier.
func NewApp(s *session.Session, changes *session.Broadcaster, units report.Units, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	styles := NewStyles(s.Theme())
	a := &App{
		screen:  ScreenPlanner,
		session: s,
		styles:  &styles,
		log:     logger,
		planner: NewPlannerModel(s, units, &styles),
		help:    NewHelpModel(&styles),
	}

	if changes != nil {
		a.cancel = changes.Subscribe(a.onChange)
	}
	return a
}

// onChange runs synchronously inside Update, on the same goroutine as the
// session edit that caused it.
func (a *App) onChange(c session.Change) {
	a.log.Debug("session change", zap.Stringer("change", c))
	if c == session.ChangeTheme {
		*a.styles = NewStyles(a.session.Theme())
	}
}

// Close stops listening to session changes
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.planner.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global keybindings (unless a value is being typed)
		if !a.planner.Editing() {
			switch {
			case key.Matches(msg, keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, keys.Help):
				if a.screen == ScreenHelp {
					a.screen = ScreenPlanner
				} else {
					a.screen = ScreenHelp
				}
				return a, nil
			case msg.String() == "esc" && a.screen == ScreenHelp:
				a.screen = ScreenPlanner
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// Every screen tracks the window size
		var cmds []tea.Cmd
		var m tea.Model
		var cmd tea.Cmd
		m, cmd = a.planner.Update(msg)
		a.planner = m.(PlannerModel)
		cmds = append(cmds, cmd)
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case copiedMsg:
		if msg.err != nil {
			a.log.Warn("clipboard copy failed", zap.Error(msg.err))
		}
		var m tea.Model
		m, _ = a.planner.Update(msg)
		a.planner = m.(PlannerModel)
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenPlanner:
		var m tea.Model
		m, cmd = a.planner.Update(msg)
		a.planner = m.(PlannerModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenPlanner:
		content = a.planner.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return a.styles.Header.Render("Pacer - split planner")
}

func (a *App) renderNav() string {
	label := "[?] Help"
	if a.screen == ScreenHelp {
		label = "[?] Back"
	}
	theme := "[t] " + string(a.session.Theme())

	return a.styles.Nav.Render(label + "  " + theme + "  [q] Quit")
}
