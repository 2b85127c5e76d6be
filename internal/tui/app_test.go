package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pacer/internal/report"
	"pacer/internal/session"
)

func newTestApp(t *testing.T, unit string) (*App, *session.Session) {
	t.Helper()

	b := &session.Broadcaster{}
	s := session.New(session.Options{Notifier: b})
	a := NewApp(s, b, report.NewUnits(unit), nil)
	t.Cleanup(a.Close)

	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a, s
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(a *App, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.Update(msg)
	}
	return cmd
}

func TestNewApp(t *testing.T) {
	a, _ := newTestApp(t, "m")

	if a.screen != ScreenPlanner {
		t.Errorf("expected initial screen to be ScreenPlanner, got %d", a.screen)
	}

	view := a.View()
	for _, want := range []string{"Pacer", "2,000 m", "2:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestAddAndRemoveInterval(t *testing.T) {
	a, s := newTestApp(t, "m")

	press(a, runeKey('a'))
	if got := len(s.Intervals()); got != 2 {
		t.Fatalf("intervals after 'a' = %d, want 2", got)
	}
	if a.planner.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (new interval)", a.planner.cursor)
	}

	press(a, runeKey('x'))
	if got := len(s.Intervals()); got != 1 {
		t.Fatalf("intervals after 'x' = %d, want 1", got)
	}
	if a.planner.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after removal", a.planner.cursor)
	}

	// The only interval cannot be removed
	press(a, runeKey('x'))
	if !errors.Is(a.planner.err, session.ErrLastInterval) {
		t.Errorf("err = %v, want ErrLastInterval", a.planner.err)
	}
}

func TestEditSplit(t *testing.T) {
	a, s := newTestApp(t, "m")

	press(a, runeKey('e'))
	if !a.planner.Editing() {
		t.Fatal("'e' should open the split prompt")
	}
	if got := a.planner.input.Value(); got != "2:00" {
		t.Errorf("prompt value = %q, want current split 2:00", got)
	}

	a.planner.input.SetValue("1:52.4")
	press(a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.planner.Editing() {
		t.Error("enter should close the prompt")
	}
	iv := s.Intervals()[0]
	if iv.Minutes != 1 || iv.Seconds != 52 || iv.Milliseconds != 400 {
		t.Errorf("interval = %+v, want 1:52.4", iv)
	}

	// Undo and redo
	press(a, runeKey('u'))
	if iv := s.Intervals()[0]; iv.Minutes != 2 || iv.Seconds != 0 {
		t.Errorf("after undo interval = %+v, want 2:00", iv)
	}
	press(a, runeKey('r'))
	if iv := s.Intervals()[0]; iv.Minutes != 1 || iv.Seconds != 52 {
		t.Errorf("after redo interval = %+v, want 1:52.4", iv)
	}
	press(a, runeKey('r'))
	if a.planner.status != "Nothing to redo" {
		t.Errorf("status = %q, want Nothing to redo", a.planner.status)
	}
}

func TestHistoryPreviewAndClear(t *testing.T) {
	a, s := newTestApp(t, "m")

	press(a, runeKey('a'))
	view := a.View()
	if !strings.Contains(view, "Undo to") || !strings.Contains(view, "2,000 m, 1 interval") {
		t.Errorf("View() should preview the undo target:\n%s", view)
	}

	press(a, runeKey('u'))
	if view := a.View(); !strings.Contains(view, "Redo to") || !strings.Contains(view, "2,000 m, 2 intervals") {
		t.Errorf("View() should preview the redo target:\n%s", view)
	}

	press(a, runeKey('C'))
	if s.CanUndo() || s.CanRedo() {
		t.Error("'C' should clear the history")
	}
	if a.planner.status != "History cleared" {
		t.Errorf("status = %q, want History cleared", a.planner.status)
	}
	if view := a.View(); strings.Contains(view, "Undo to") || strings.Contains(view, "Redo to") {
		t.Error("View() still previews history after clearing")
	}
}

func TestEditSplitInvalidKeepsPrompt(t *testing.T) {
	a, s := newTestApp(t, "m")

	press(a, runeKey('e'))
	a.planner.input.SetValue("1:75")
	press(a, tea.KeyMsg{Type: tea.KeyEnter})

	if !a.planner.Editing() {
		t.Error("invalid split should keep the prompt open")
	}
	if a.planner.err == nil || !strings.Contains(a.planner.err.Error(), "Seconds") {
		t.Errorf("err = %v, want a seconds validation error", a.planner.err)
	}
	if s.CanUndo() {
		t.Error("rejected edit should not be recorded")
	}

	press(a, tea.KeyMsg{Type: tea.KeyEscape})
	if a.planner.Editing() || a.planner.err != nil {
		t.Error("esc should close the prompt and clear the error")
	}
}

func TestEditDistanceInDisplayUnit(t *testing.T) {
	a, s := newTestApp(t, "km")

	press(a, runeKey('d'))
	if got := a.planner.input.Value(); got != "2" {
		t.Errorf("prompt value = %q, want 2", got)
	}

	a.planner.input.SetValue("5")
	press(a, tea.KeyMsg{Type: tea.KeyEnter})

	if s.Distance() != 5000 {
		t.Errorf("Distance() = %v, want 5000", s.Distance())
	}
}

func TestResizeInterval(t *testing.T) {
	a, s := newTestApp(t, "m")

	press(a, runeKey('a'), runeKey('k'), runeKey('s'))
	a.planner.input.SetValue("70%")
	press(a, tea.KeyMsg{Type: tea.KeyEnter})

	got := s.Intervals()
	if got[0].Size != 70 || got[1].Size != 30 {
		t.Errorf("sizes = %v, %v, want 70, 30", got[0].Size, got[1].Size)
	}
}

func TestQuitKey(t *testing.T) {
	a, _ := newTestApp(t, "m")

	cmd := press(a, runeKey('q'))
	if cmd == nil {
		t.Fatal("'q' should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("'q' should quit")
	}
}

func TestQuitKeyWhileEditing(t *testing.T) {
	a, _ := newTestApp(t, "m")

	press(a, runeKey('e'), runeKey('q'))
	if !a.planner.Editing() {
		t.Fatal("typing 'q' should not close the prompt")
	}
	if got := a.planner.input.Value(); got != "2:00q" {
		t.Errorf("prompt value = %q, want 2:00q", got)
	}
}

func TestThemeToggleRestyles(t *testing.T) {
	a, s := newTestApp(t, "m")

	if a.styles.Palette != lightPalette {
		t.Fatal("new session should use the light palette")
	}

	press(a, runeKey('t'))
	if s.Theme() != session.ThemeDark {
		t.Errorf("Theme() = %q, want dark", s.Theme())
	}
	if a.styles.Palette != darkPalette {
		t.Error("styles should switch to the dark palette")
	}
	if s.CanUndo() {
		t.Error("theme changes should not be recorded in history")
	}
}

func TestCopyPlan(t *testing.T) {
	a, _ := newTestApp(t, "m")

	var copied string
	a.planner.copy = func(text string) error {
		copied = text
		return nil
	}

	cmd := press(a, runeKey('y'))
	if cmd == nil {
		t.Fatal("'y' should return a command")
	}
	a.Update(cmd())

	if !strings.Contains(copied, "Average split:  2:00.0") {
		t.Errorf("copied text = %q", copied)
	}
	if a.planner.status != "Plan copied to clipboard" {
		t.Errorf("status = %q", a.planner.status)
	}
}

func TestCopyPlanFailure(t *testing.T) {
	a, _ := newTestApp(t, "m")
	a.planner.copy = func(string) error { return errors.New("no clipboard") }

	cmd := press(a, runeKey('y'))
	a.Update(cmd())

	if a.planner.err == nil || !strings.Contains(a.planner.err.Error(), "no clipboard") {
		t.Errorf("err = %v, want clipboard failure", a.planner.err)
	}
}

func TestHelpScreen(t *testing.T) {
	a, _ := newTestApp(t, "m")

	press(a, runeKey('?'))
	if a.screen != ScreenHelp {
		t.Fatalf("screen = %d, want ScreenHelp", a.screen)
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view should list keyboard shortcuts")
	}

	press(a, tea.KeyMsg{Type: tea.KeyEscape})
	if a.screen != ScreenPlanner {
		t.Errorf("esc should return to the planner, got %d", a.screen)
	}
}

func TestChartShownForSeveralIntervals(t *testing.T) {
	a, _ := newTestApp(t, "m")

	if strings.Contains(a.View(), "split (s) over distance") {
		t.Error("a single interval should not be charted")
	}

	press(a, runeKey('a'))
	if !strings.Contains(a.View(), "split (s) over distance") {
		t.Error("chart caption missing with two intervals")
	}
}
