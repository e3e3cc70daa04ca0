package overlay

import "github.com/charmbracelet/bubbles/key"

// ListKeys moves through and changes the rows of a settings list
type ListKeys struct {
	Up       key.Binding
	Down     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Activate key.Binding
}

// DefaultListKeys returns the vim-style list bindings
func DefaultListKeys() ListKeys {
	return ListKeys{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous choice"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next choice"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle/activate"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k ListKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Next, k.Activate}
}

// FullHelp implements help.KeyMap
func (k ListKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Prev, k.Next, k.Activate},
	}
}

// DialogKeys answer a confirm dialog
type DialogKeys struct {
	Yes    key.Binding
	No     key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
}

// DefaultDialogKeys returns the y/n dialog bindings
func DefaultDialogKeys() DialogKeys {
	return DialogKeys{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "no"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "no"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "yes"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k DialogKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Right, k.Submit, k.No}
}

// FullHelp implements help.KeyMap
func (k DialogKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No}, {k.Left, k.Right, k.Submit}}
}
