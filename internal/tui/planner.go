package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"pacer/internal/history"
	"pacer/internal/pacing"
	"pacer/internal/report"
	"pacer/internal/session"
)

type inputMode int

const (
	modeNone inputMode = iota
	modeSplit
	modeSize
	modeDistance
)

// PlannerModel is the interval editing screen
type PlannerModel struct {
	session *session.Session
	units   report.Units
	styles  *Styles

	help  help.Model
	input textinput.Model
	mode  inputMode

	cursor int
	width  int
	status string
	err    error

	copy func(string) error
}

// NewPlannerModel creates a new planner model
func NewPlannerModel(s *session.Session, units report.Units, styles *Styles) PlannerModel {
	input := textinput.New()
	input.CharLimit = 16
	input.Width = 16

	return PlannerModel{
		session: s,
		units:   units,
		styles:  styles,
		help:    help.New(),
		input:   input,
		copy:    clipboard.WriteAll,
	}
}

// Init initializes the planner
func (m PlannerModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether a value is being typed
func (m PlannerModel) Editing() bool {
	return m.mode != modeNone
}

type copiedMsg struct {
	err error
}

// Update handles messages
func (m PlannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case copiedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("copying plan: %w", msg.err)
		} else {
			m.status = "Plan copied to clipboard"
		}

	case tea.KeyMsg:
		if m.Editing() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m PlannerModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.stopEditing()
		return m, nil
	case key.Matches(msg, keys.Confirm):
		return m.commit(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PlannerModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.session.Intervals())-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Split):
		iv := m.session.Intervals()[m.cursor]
		cmd := m.startEditing(modeSplit, "Split: ", splitInput(iv))
		return m, cmd
	case key.Matches(msg, keys.Size):
		iv := m.session.Intervals()[m.cursor]
		cmd := m.startEditing(modeSize, "Size: ", strconv.FormatFloat(iv.Size, 'f', -1, 64))
		return m, cmd
	case key.Matches(msg, keys.Distance):
		prompt := fmt.Sprintf("Distance (%s): ", m.units.Label())
		cmd := m.startEditing(modeDistance, prompt, m.units.FormatDistanceValue(m.session.Distance()))
		return m, cmd

	case key.Matches(msg, keys.Add):
		if err := m.session.AddInterval(); err != nil {
			m.err = err
		} else {
			m.cursor = len(m.session.Intervals()) - 1
		}
	case key.Matches(msg, keys.Remove):
		m.err = m.session.RemoveInterval(m.cursor)

	case key.Matches(msg, keys.Undo):
		if !m.session.Undo() {
			m.status = "Nothing to undo"
		}
	case key.Matches(msg, keys.Redo):
		if !m.session.Redo() {
			m.status = "Nothing to redo"
		}
	case key.Matches(msg, keys.Forget):
		m.session.ClearHistory()
		m.status = "History cleared"
	case key.Matches(msg, keys.Reset):
		m.err = m.session.Reset()

	case key.Matches(msg, keys.Theme):
		m.session.ToggleTheme()

	case key.Matches(msg, keys.Copy):
		return m, m.copyPlan()
	}

	m.clampCursor()
	return m, nil
}

func (m *PlannerModel) startEditing(mode inputMode, prompt, value string) tea.Cmd {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *PlannerModel) stopEditing() {
	m.mode = modeNone
	m.err = nil
	m.input.Blur()
	m.input.Reset()
}

// commit applies the typed value. On error the input stays open.
func (m PlannerModel) commit() PlannerModel {
	value := m.input.Value()

	var err error
	switch m.mode {
	case modeSplit:
		err = m.session.SetSplit(m.cursor, value)
	case modeSize:
		var size float64
		size, err = parseSize(value)
		if err == nil {
			err = m.session.ResizeInterval(m.cursor, size)
		}
	case modeDistance:
		var d float64
		d, err = m.units.ParseDistance(value)
		if err == nil {
			err = m.session.SetDistance(d)
		}
	}

	if err != nil {
		m.err = err
		return m
	}

	m.stopEditing()
	m.clampCursor()
	return m
}

func (m PlannerModel) copyPlan() tea.Cmd {
	plan, err := m.session.Plan()
	if err != nil {
		return func() tea.Msg { return copiedMsg{err: err} }
	}
	text := report.NewSummary(plan, m.units).Text()
	write := m.copy

	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func (m *PlannerModel) clampCursor() {
	n := len(m.session.Intervals())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the planner
func (m PlannerModel) View() string {
	st := m.styles

	plan, err := m.session.Plan()
	if err != nil {
		return st.Error.Render(fmt.Sprintf("\n  Error: %v", err))
	}

	var sections []string

	sections = append(sections, st.Title.Render("Plan"))
	sections = append(sections, m.renderSummary(plan))
	sections = append(sections, "")
	sections = append(sections, m.renderTable(plan))

	if chart := m.renderChart(plan); chart != "" {
		sections = append(sections, st.Chart.Render(chart))
	}

	if m.Editing() {
		sections = append(sections, "", st.Prompt.Render(m.input.View()))
	}

	switch {
	case m.err != nil:
		sections = append(sections, st.Error.Render(m.err.Error()))
	case m.status != "":
		sections = append(sections, st.Success.Render(m.status))
	}

	h := m.help
	h.Styles.ShortKey = st.HelpKey
	h.Styles.ShortDesc = st.HelpDesc
	h.Styles.ShortSeparator = st.HelpDesc
	var helpView string
	if m.Editing() {
		helpView = h.View(editKeys{keys})
	} else {
		helpView = h.View(keys)
	}
	sections = append(sections, st.Status.Render(helpView))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PlannerModel) renderSummary(plan pacing.Plan) string {
	st := m.styles
	hist := m.session.History()

	splitLabel := fmt.Sprintf("Avg /%s", report.NewUnits("m").FormatDistance(plan.SplitUnit))

	lines := []string{
		st.RenderMetric("Distance", m.units.FormatDistance(plan.Distance)),
		st.RenderMetric(splitLabel, plan.AverageSplitText()),
		st.RenderMetric("Projected", plan.ProjectedTimeText()),
		st.RenderMetric("Undo / Redo", fmt.Sprintf("%d / %d", hist.Undo, hist.Redo)),
	}

	undo, redo := m.session.HistoryStates()
	if len(undo) > 0 {
		lines = append(lines, st.RenderMetric("Undo to", m.describeState(undo[len(undo)-1])))
	}
	if len(redo) > 0 {
		lines = append(lines, st.RenderMetric("Redo to", m.describeState(redo[len(redo)-1])))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// describeState is a one-line preview of a history snapshot
func (m PlannerModel) describeState(s history.SaveState) string {
	n := len(s.Intervals)
	noun := "intervals"
	if n == 1 {
		noun = "interval"
	}
	return fmt.Sprintf("%s, %d %s", m.units.FormatDistance(s.Distance), n, noun)
}

func (m PlannerModel) renderTable(plan pacing.Plan) string {
	st := m.styles
	summary := report.NewSummary(plan, m.units)

	var rows []string
	rows = append(rows, st.TableHeader.Render(fmt.Sprintf("  %3s  %7s  %12s  %7s", "#", "Share", "Distance", "Split")))

	for i, row := range summary.Intervals {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%3d  %6.1f%%  %12s  %7s", cursor, row.Index, row.Percent, row.DistanceText, row.Split)
		if i == m.cursor {
			rows = append(rows, st.TableSelected.Render(line))
		} else {
			rows = append(rows, st.TableRow.Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderChart plots the target split along the distance. A single interval
// is a flat line and is not drawn.
func (m PlannerModel) renderChart(plan pacing.Plan) string {
	if len(plan.Allocations) < 2 {
		return ""
	}

	width := 60
	if m.width > 0 && m.width-12 < width {
		width = m.width - 12
	}
	if width < 10 {
		return ""
	}

	return asciigraph.Plot(plan.Profile(width),
		asciigraph.Height(6),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption("split (s) over distance"),
	)
}

// splitInput is what the split prompt starts with
func splitInput(iv pacing.Interval) string {
	if iv.RawInput != "" {
		return iv.RawInput
	}
	return pacing.FormatSplit(iv)
}

func parseSize(value string) (float64, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	size, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", value)
	}
	return size, nil
}
