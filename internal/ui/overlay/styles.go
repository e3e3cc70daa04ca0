package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/vrhud/internal/ui/styles"
)

// Styles holds the dialog and tab styles
type Styles struct {
	// Dialog is the modal container
	Dialog lipgloss.Style
	// Title is the dialog title
	Title lipgloss.Style
	// Item is a settings row
	Item lipgloss.Style
	// ItemActive is the row under the cursor
	ItemActive lipgloss.Style
	// Value renders a setting's current value
	Value lipgloss.Style
	// Cursor marks the active row
	Cursor lipgloss.Style
	Separator lipgloss.Style
	Footer    lipgloss.Style
	// Input frames the test message field
	Input lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Mauve).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Item: lipgloss.NewStyle().
			Foreground(styles.Text),

		ItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(styles.Yellow),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Blue),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(styles.Surface2).
			Padding(0, 1),
	}
}
