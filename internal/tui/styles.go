package tui

import "github.com/charmbracelet/lipgloss"

// Styles is the TUI palette, picked once for a dark or light terminal
// background. Detection happens at wiring time so the model never probes
// the terminal itself.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Dir        lipgloss.Style
	Panel      lipgloss.Style
	PanelFocus lipgloss.Style
	RoleTitle  lipgloss.Style
	Item       lipgloss.Style
	Cursor     lipgloss.Style
	Chosen     lipgloss.Style
	Muted      lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	LogBox     lipgloss.Style
	Help       lipgloss.Style
	Spinner    lipgloss.Style
}

func NewStyles(dark bool) Styles {
	// gold primary with an arcane blue accent
	primary := lipgloss.Color("#B8860B")
	accent := lipgloss.Color("#2E86AB")
	success := lipgloss.Color("#4C8C2B")
	warning := lipgloss.Color("#B07D2B")
	errColor := lipgloss.Color("#C03546")
	muted := lipgloss.Color("#6B7280")
	text := lipgloss.Color("#1F2937")
	dim := lipgloss.Color("#4B5563")
	if dark {
		primary = lipgloss.Color("#E5C558")
		accent = lipgloss.Color("#6FBBE0")
		success = lipgloss.Color("#85DCB0")
		warning = lipgloss.Color("#F6AE2D")
		errColor = lipgloss.Color("#E85D75")
		text = lipgloss.Color("#F3F4F6")
		dim = lipgloss.Color("#9CA3AF")
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(dim).
			Italic(true),
		Dir: lipgloss.NewStyle().
			Foreground(accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		PanelFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		RoleTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Item: lipgloss.NewStyle().
			Foreground(text),
		Cursor: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Chosen: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(dim),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Error: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		LogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Spinner: lipgloss.NewStyle().
			Foreground(primary),
	}
}

// Icon characters
const (
	iconChosen = "✓"
	iconError  = "✗"
	iconArrow  = "→"
	iconNoVars = "○"
)
