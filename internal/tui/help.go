package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct {
	styles   *Styles
	viewport viewport.Model
	ready    bool
}

// NewHelpModel creates a new help model
func NewHelpModel(styles *Styles) HelpModel {
	return HelpModel{styles: styles}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the help screen
func (m HelpModel) View() string {
	content := m.renderContent()
	if !m.ready {
		return content
	}

	m.viewport.SetContent(content)
	return m.viewport.View()
}

func (m HelpModel) renderContent() string {
	st := m.styles
	var sections []string

	sections = append(sections, st.Title.Render("Keyboard Shortcuts"))

	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = st.HelpKey
	h.Styles.FullDesc = st.HelpDesc
	h.Styles.FullSeparator = st.HelpDesc
	sections = append(sections, h.View(keys))

	sections = append(sections, m.renderSection("While editing", []keyHelp{
		{"enter", "Apply the typed value"},
		{"esc", "Cancel"},
	}))

	sections = append(sections, m.renderConcepts())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, m.styles.HelpSection.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+m.styles.RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderConcepts() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, m.styles.HelpSection.Render("How the plan works"))
	lines = append(lines, "")

	concepts := []struct {
		name string
		desc string
	}{
		{"Split", "Target time per split distance, typed as M:SS or M:SS.D."},
		{"Size", "Relative share of the distance. Resizing takes from the next interval."},
		{"Add", "Halves the last interval and copies its split."},
		{"Remove", "Gives the interval's share to its neighbour."},
		{"Average split", "Distance-weighted average, truncated to a tenth of a second."},
		{"History", "Every edit can be undone. Theme changes are not recorded."},
	}

	for _, c := range concepts {
		lines = append(lines, "  "+m.styles.HelpKey.Render(c.name))
		lines = append(lines, "  "+m.styles.HelpDesc.Render(c.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
