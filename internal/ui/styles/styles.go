package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// World backdrop
	Backdrop lipgloss.Style

	// Menu frame and tab strip
	Menu        lipgloss.Style
	MenuTitle   lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabStrip    lipgloss.Style

	// Notification panel
	Panel lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusState func(state string) lipgloss.Style
	StatusHint  lipgloss.Style
	StatusInfo  lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Backdrop: lipgloss.NewStyle().
			Foreground(Surface1),

		Menu: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		MenuTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Surface0).
			Padding(0, 1),

		TabStrip: lipgloss.NewStyle().
			MarginBottom(1),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusState: func(state string) lipgloss.Style {
			color, ok := StateColors[state]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),
	}
}
