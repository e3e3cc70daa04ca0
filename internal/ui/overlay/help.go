package overlay

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpOverlay displays every binding of a key map
type HelpOverlay struct {
	keys   help.KeyMap
	help   help.Model
	close  key.Binding
	styles *Styles
}

// NewHelpOverlay creates a help dialog for keys
func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true

	return &HelpOverlay{
		keys: keys,
		help: h,
		close: key.NewBinding(
			key.WithKeys("esc", "q", "?"),
			key.WithHelp("esc", "close"),
		),
		styles: New(),
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update closes the overlay on esc, q or ?
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, h.close) {
		return h, closeOverlay
	}
	return h, nil
}

// View renders the full help
func (h *HelpOverlay) View() string {
	return h.help.View(h.keys) + "\n" + h.styles.Footer.Render("esc: close")
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Keys"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	rows := 0
	for _, group := range h.keys.FullHelp() {
		rows = max(rows, len(group))
	}
	return 60, rows + 6
}
