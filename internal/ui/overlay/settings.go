package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SettingType represents the type of a setting
type SettingType int

const (
	// SettingToggle is a boolean on/off setting (Enter to toggle)
	SettingToggle SettingType = iota
	// SettingChoice is a multiple-choice setting (Left/Right to cycle)
	SettingChoice
	// SettingAction triggers something (Enter to activate)
	SettingAction
	// SettingSeparator is a visual separator (not selectable)
	SettingSeparator
)

// SettingItem is one row of a settings list
type SettingItem struct {
	Key     string
	Label   string
	Type    SettingType
	Enabled bool     // SettingToggle
	Choices []string // SettingChoice
	Choice  int      // index into Choices
	// OnChange runs after a toggle flips or a choice moves
	OnChange func(item SettingItem) tea.Cmd
	// OnAction runs when an action row is activated
	OnAction func() tea.Cmd
}

// Current returns the selected choice, or "" for non-choice rows
func (i SettingItem) Current() string {
	if i.Type != SettingChoice || len(i.Choices) == 0 {
		return ""
	}
	return i.Choices[i.Choice]
}

// SettingsList is a cursor-driven list of settings shared by the menu tabs
type SettingsList struct {
	items  []SettingItem
	cursor int
	keys   ListKeys
	styles *Styles
}

// NewSettingsList creates a list with the cursor on the first selectable row
func NewSettingsList(items []SettingItem) *SettingsList {
	l := &SettingsList{
		items:  items,
		keys:   DefaultListKeys(),
		styles: New(),
	}
	l.cursor = -1
	l.moveDown()
	return l
}

// Keys returns the list key bindings
func (l *SettingsList) Keys() ListKeys {
	return l.keys
}

// Cursor returns the index of the active row
func (l *SettingsList) Cursor() int {
	return l.cursor
}

// Item returns the row with key k
func (l *SettingsList) Item(k string) (SettingItem, bool) {
	for _, item := range l.items {
		if item.Key == k {
			return item, true
		}
	}
	return SettingItem{}, false
}

// Update handles list navigation and value changes
func (l *SettingsList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, l.keys.Down):
		l.moveDown()
	case key.Matches(keyMsg, l.keys.Up):
		l.moveUp()
	case key.Matches(keyMsg, l.keys.Next):
		return l.cycle(1)
	case key.Matches(keyMsg, l.keys.Prev):
		return l.cycle(-1)
	case key.Matches(keyMsg, l.keys.Activate):
		return l.activate()
	}
	return nil
}

// View renders the rows
func (l *SettingsList) View() string {
	var b strings.Builder

	for i, item := range l.items {
		if item.Type == SettingSeparator {
			b.WriteString(l.styles.Separator.Render(strings.Repeat("─", 24)))
			b.WriteString("\n")
			continue
		}

		cursor := "  "
		style := l.styles.Item
		if i == l.cursor {
			cursor = l.styles.Cursor.Render("▸ ")
			style = l.styles.ItemActive
		}

		var value string
		switch item.Type {
		case SettingToggle:
			state := "off"
			if item.Enabled {
				state = "on"
			}
			value = l.styles.Value.Render("[" + state + "]")
		case SettingChoice:
			value = l.styles.Value.Render("< " + item.Current() + " >")
		}

		line := cursor + style.Render(item.Label)
		if value != "" {
			line = fmt.Sprintf("%s %s", line, value)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (l *SettingsList) moveDown() {
	for i := 1; i <= len(l.items); i++ {
		next := (l.cursor + i + len(l.items)) % len(l.items)
		if l.items[next].Type != SettingSeparator {
			l.cursor = next
			return
		}
	}
}

func (l *SettingsList) moveUp() {
	for i := 1; i <= len(l.items); i++ {
		prev := (l.cursor - i + 2*len(l.items)) % len(l.items)
		if l.items[prev].Type != SettingSeparator {
			l.cursor = prev
			return
		}
	}
}

func (l *SettingsList) current() *SettingItem {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return nil
	}
	return &l.items[l.cursor]
}

// cycle moves a choice row by delta, wrapping around
func (l *SettingsList) cycle(delta int) tea.Cmd {
	item := l.current()
	if item == nil || item.Type != SettingChoice || len(item.Choices) == 0 {
		return nil
	}

	n := len(item.Choices)
	item.Choice = ((item.Choice+delta)%n + n) % n
	if item.OnChange != nil {
		return item.OnChange(*item)
	}
	return nil
}

func (l *SettingsList) activate() tea.Cmd {
	item := l.current()
	if item == nil {
		return nil
	}

	switch item.Type {
	case SettingToggle:
		item.Enabled = !item.Enabled
		if item.OnChange != nil {
			return item.OnChange(*item)
		}
	case SettingChoice:
		return l.cycle(1)
	case SettingAction:
		if item.OnAction != nil {
			return item.OnAction()
		}
	}
	return nil
}
