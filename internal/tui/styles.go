package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pacer/internal/session"
)

// Palette is the set of colours a theme is drawn with
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	OnPrimary lipgloss.Color
}

var (
	lightPalette = Palette{
		Primary:   lipgloss.Color("#6D28D9"), // Purple
		Secondary: lipgloss.Color("#047857"), // Green
		Warning:   lipgloss.Color("#B45309"), // Amber
		Error:     lipgloss.Color("#B91C1C"), // Red
		Muted:     lipgloss.Color("#6B7280"), // Gray
		Text:      lipgloss.Color("#111827"), // Near black
		OnPrimary: lipgloss.Color("#F9FAFB"),
	}

	darkPalette = Palette{
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#EF4444"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Text:      lipgloss.Color("#F9FAFB"),
		OnPrimary: lipgloss.Color("#F9FAFB"),
	}
)

// Styles holds every style the TUI renders with
type Styles struct {
	Palette Palette

	// App chrome
	Title  lipgloss.Style
	Header lipgloss.Style
	Nav    lipgloss.Style

	// Metrics
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style

	// Table
	TableHeader   lipgloss.Style
	TableRow      lipgloss.Style
	TableSelected lipgloss.Style

	// Chart and input
	Chart  lipgloss.Style
	Prompt lipgloss.Style

	// Status
	Status  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style

	// Help
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpSection lipgloss.Style
}

// NewStyles builds the styles for a theme
func NewStyles(theme session.Theme) Styles {
	p := lightPalette
	if theme == session.ThemeDark {
		p = darkPalette
	}

	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.OnPrimary).
			Background(p.Primary).
			Padding(0, 1).
			MarginBottom(1),

		Nav: lipgloss.NewStyle().
			Foreground(p.Muted),

		MetricLabel: lipgloss.NewStyle().
			Foreground(p.Muted).
			Width(16),

		MetricValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(0, 1),

		TableRow: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),

		TableSelected: lipgloss.NewStyle().
			Bold(true).
			Background(p.Primary).
			Foreground(p.OnPrimary).
			Padding(0, 1),

		Chart: lipgloss.NewStyle().
			Foreground(p.Secondary).
			MarginTop(1),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Warning),

		Status: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			MarginTop(1),

		Success: lipgloss.NewStyle().
			Foreground(p.Secondary).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),

		HelpSection: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
	}
}

// RenderMetric renders a label/value pair
func (s Styles) RenderMetric(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		s.MetricLabel.Render(label),
		s.MetricValue.Render(value),
	)
}

// RenderKeyHelp renders a key binding help item
func (s Styles) RenderKeyHelp(key, desc string) string {
	return s.HelpKey.Render(key) + " " + s.HelpDesc.Render(desc)
}
