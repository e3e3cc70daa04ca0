package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	title    string
	message  string
	action   string
	keys     DialogKeys
	help     help.Model
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult is the value of the SelectionMsg a dialog sends
type ConfirmResult struct {
	Confirmed bool
}

// NewConfirmDialog creates a dialog that answers with a SelectionMsg keyed by action
func NewConfirmDialog(title, message, action string) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		action:  action,
		keys:    DefaultDialogKeys(),
		help:    help.New(),
		styles:  New(),
	}
}

// NewClearConfirmDialog asks before dropping every notification
func NewClearConfirmDialog(count int) *ConfirmDialog {
	msg := "Remove all notifications?"
	if count == 1 {
		msg = "Remove the notification on screen?"
	}
	return NewConfirmDialog("Clear notifications", msg, KeyConfirmClear)
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update answers the dialog. Any answer also closes it.
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Yes):
		return c, c.answer(true)
	case key.Matches(keyMsg, c.keys.No):
		return c, c.answer(false)
	case key.Matches(keyMsg, c.keys.Submit):
		return c, c.answer(c.selected)
	case key.Matches(keyMsg, c.keys.Left):
		c.selected = false
	case key.Matches(keyMsg, c.keys.Right):
		c.selected = true
	}
	return c, nil
}

func (c *ConfirmDialog) answer(yes bool) tea.Cmd {
	return tea.Batch(
		closeOverlay,
		selection(c.action, ConfirmResult{Confirmed: yes}),
	)
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.Item.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle, noStyle := c.styles.Item, c.styles.ItemActive
	if c.selected {
		yesStyle, noStyle = c.styles.ItemActive, c.styles.Item
	}
	b.WriteString(yesStyle.Render("[Y] Yes") + "    " + noStyle.Render("[N] No"))
	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render(c.help.View(c.keys)))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Selected reports whether Yes is highlighted
func (c *ConfirmDialog) Selected() bool {
	return c.selected
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	return 50, strings.Count(c.message, "\n") + 7
}
